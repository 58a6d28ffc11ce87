package geom

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// Angle is an oriented rotation. It stores its magnitude in radians
// exactly as constructed, which may be negative or larger than a full
// turn, and derives the normalized representative in [0, 2π) every
// time it is asked for.
//
// The zero Angle is zero radians.
type Angle struct {
	raw float64
}

// New returns an angle of v in unit u. If normalize is true, the
// stored magnitude is reduced into [0, 2π) first. Otherwise it is kept
// as given.
func New(v float64, u Unit, normalize bool) Angle {
	rad := u.ToRadians(v)
	if normalize {
		rad = normalizeRadians(rad)
	}
	return Angle{raw: rad}
}

// Rad is shorthand for New(v, Radians, true).
func Rad[T Scalar](v T) Angle {
	return New(float64(v), Radians, true)
}

// Deg is shorthand for New(v, Degrees, true).
func Deg[T Scalar](v T) Angle {
	return New(float64(v), Degrees, true)
}

// Raw returns an angle of rad radians without normalizing it.
func Raw(rad float64) Angle {
	return Angle{raw: rad}
}

// normalizeRadians reduces rad into [0, 2π) with a floored modulo.
func normalizeRadians(rad float64) float64 {
	n := math.Mod(rad, Tau)
	if n < 0 {
		n += Tau
	}
	if n >= Tau {
		// -tiny + 2π rounds up to 2π.
		n = 0
	}
	if n == 0 {
		n = 0 // drop the sign of -0
	}
	return n
}

// Radians returns the raw magnitude of the angle in radians.
func (a Angle) Radians() float64 {
	return a.raw
}

// Normalized returns the angle reduced into [0, 2π).
func (a Angle) Normalized() float64 {
	return normalizeRadians(a.raw)
}

// Degrees returns the raw magnitude of the angle in degrees.
func (a Angle) Degrees() float64 {
	return Degrees.FromRadians(a.raw)
}

// WithDegrees returns an angle whose raw magnitude is d degrees. The
// result is not normalized.
func (a Angle) WithDegrees(d float64) Angle {
	return Raw(Degrees.ToRadians(d))
}

// In returns the raw magnitude of the angle in unit u.
func (a Angle) In(u Unit) float64 {
	return u.FromRadians(a.raw)
}

// Add returns the rotation a+b. Like every arithmetic method, it
// operates on raw magnitudes and does not normalize the result.
func (a Angle) Add(b Angle) Angle {
	return Raw(a.raw + b.raw)
}

// Sub returns the rotation a-b.
func (a Angle) Sub(b Angle) Angle {
	return Raw(a.raw - b.raw)
}

// Mul returns a scaled by k.
func (a Angle) Mul(k float64) Angle {
	return Raw(a.raw * k)
}

// Div returns a divided by k. Division by zero is not guarded and
// yields an infinite or NaN magnitude.
func (a Angle) Div(k float64) Angle {
	return Raw(a.raw / k)
}

// Neg returns the opposite rotation.
func (a Angle) Neg() Angle {
	return Raw(-a.raw)
}

// Equal reports whether a and b are the same angle modulo a full turn,
// within Epsilon. NaN angles are equal to nothing.
func (a Angle) Equal(b Angle) bool {
	d := math.Abs(a.Normalized() - b.Normalized())
	return scalar.EqualWithinAbs(d, 0, Epsilon) || scalar.EqualWithinAbs(d, Tau, Epsilon)
}

// Less reports whether the normalized value of a is strictly less than
// that of b.
func (a Angle) Less(b Angle) bool {
	return a.Normalized() < b.Normalized()
}

// Compare returns 0 if a and b are Equal, and otherwise -1 or +1
// depending on the order of their normalized values. It is suitable
// for use with slices.SortFunc. Angles that are not comparable, such as
// NaN, compare as 0.
func (a Angle) Compare(b Angle) int {
	if a.Equal(b) {
		return 0
	}
	an, bn := a.Normalized(), b.Normalized()
	switch {
	case an < bn:
		return -1
	case an > bn:
		return 1
	default:
		return 0
	}
}

// Hash returns a hash of the normalized value of a. Equal angles whose
// normalized values differ by less than Epsilon may still hash
// differently.
func (a Angle) Hash() uint64 {
	return math.Float64bits(a.Normalized())
}

// Float32 returns the raw magnitude in radians as a float32.
func (a Angle) Float32() float32 {
	return float32(a.raw)
}

// Int returns the raw magnitude in radians rounded to the nearest
// integer.
func (a Angle) Int() int {
	return int(math.Round(a.raw))
}

// Text returns the angle rendered in the unit named by mode, as
// understood by [UnitFor]. Radians are rendered with two decimals,
// degrees with one.
func (a Angle) Text(mode string) string {
	return UnitFor(mode).Render(a.raw)
}

func (a Angle) String() string {
	return Degrees.Render(a.raw)
}
