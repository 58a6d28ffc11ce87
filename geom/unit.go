package geom

import (
	"math"
	"strconv"
	"strings"
)

// Unit is a unit of angular measure. This package contains the two
// predefined units [Radians] and [Degrees].
type Unit interface {
	// ToRadians converts a value in the unit to radians.
	ToRadians(v float64) float64

	// FromRadians converts a value in radians to the unit.
	FromRadians(rad float64) float64

	// Render returns the textual form of an angle of rad radians,
	// including the unit's suffix.
	Render(rad float64) string
}

// Various predefined Units.
var (
	Radians unitRadians
	Degrees unitDegrees
)

type unitRadians struct{}

func (unitRadians) String() string { return "rad" }

func (unitRadians) ToRadians(v float64) float64 { return v }

func (unitRadians) FromRadians(rad float64) float64 { return rad }

func (unitRadians) Render(rad float64) string {
	return strconv.FormatFloat(rad, 'f', 2, 64) + " rad"
}

type unitDegrees struct{}

func (unitDegrees) String() string { return "deg" }

func (unitDegrees) ToRadians(v float64) float64 { return v * math.Pi / 180 }

func (unitDegrees) FromRadians(rad float64) float64 { return rad * 180 / math.Pi }

func (u unitDegrees) Render(rad float64) string {
	return strconv.FormatFloat(u.FromRadians(rad), 'f', 1, 64) + "°"
}

// LookupUnit returns the unit named by mode. Recognized names are
// "rad", "radians", "deg" and "degrees", matched without regard to
// case or surrounding space.
func LookupUnit(mode string) (Unit, bool) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "rad", "radians":
		return Radians, true
	case "deg", "degrees":
		return Degrees, true
	default:
		return nil, false
	}
}

// UnitFor is like [LookupUnit] but falls back to [Degrees] for
// unrecognized modes.
func UnitFor(mode string) Unit {
	u, ok := LookupUnit(mode)
	if !ok {
		return Degrees
	}
	return u
}
