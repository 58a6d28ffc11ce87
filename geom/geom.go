// Package geom provides utilities for manipulating circular geometry:
// oriented angles and the arcs swept between them.
//
// Angles remember their raw, unreduced magnitude, so sums of rotations
// can represent more than one full turn. Comparisons, on the other
// hand, work on the normalized representative in [0, 2π). Arcs are
// swept in the positive direction and may themselves span several
// revolutions.
package geom

import (
	"math"

	"golang.org/x/exp/constraints"
)

const (
	// Tau is one full revolution in radians.
	Tau = 2 * math.Pi

	// Epsilon is the absolute tolerance used for every equality and
	// boundary-coincidence decision in this package.
	Epsilon = 1e-9
)

// Scalar is a constraint for the numeric types that the generic
// constructors in this package accept.
type Scalar interface {
	constraints.Float | constraints.Integer
}

// Bounds is a bitmask representing zero or more ends of a Range.
type Bounds uint32

const (
	BoundNone  Bounds = 0
	BoundStart Bounds = 1 << (iota - 1)
	BoundEnd
)

// BoundBoth selects both ends of a range.
const BoundBoth = BoundStart | BoundEnd

func (b Bounds) String() string {
	switch b & BoundBoth {
	case BoundStart:
		return "start"
	case BoundEnd:
		return "end"
	case BoundBoth:
		return "both"
	default:
		return "none"
	}
}
