package geom

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// maxSweepSteps bounds how many single-turn steps Range.Length takes
// before it shifts by a computed number of turns instead.
const maxSweepSteps = 1 << 20

// Range is an arc swept in the positive direction from Start to End.
// Each end may independently be inclusive or exclusive.
//
// The arc occupies the raw interval [Start, Start+Length()], which can
// differ from End's raw value by a multiple of a full turn and can be
// longer than one revolution. Treat the fields as read-only; operations
// that produce arcs return new values.
type Range struct {
	Start, End               Angle
	IncludeStart, IncludeEnd bool
}

// NewRange returns the arc from start to end with the given endpoint
// inclusivity.
func NewRange(start, end Angle, includeStart, includeEnd bool) Range {
	return Range{
		Start:        start,
		End:          end,
		IncludeStart: includeStart,
		IncludeEnd:   includeEnd,
	}
}

// NewRangeBounds is like NewRange but takes the inclusive ends as a
// bitmask.
func NewRangeBounds(start, end Angle, b Bounds) Range {
	return NewRange(start, end, b&BoundStart != 0, b&BoundEnd != 0)
}

// Arc returns the closed arc from start to end.
func Arc(start, end Angle) Range {
	return NewRange(start, end, true, true)
}

// RangeOf returns the arc between two values given in unit u. The
// values are converted without normalization, so multi-turn arcs keep
// their magnitude exactly as given.
func RangeOf(start, end float64, u Unit, includeStart, includeEnd bool) Range {
	return NewRange(
		New(start, u, false),
		New(end, u, false),
		includeStart,
		includeEnd,
	)
}

// Bounds returns a bitmask of the inclusive ends of r.
func (r Range) Bounds() Bounds {
	var b Bounds
	if r.IncludeStart {
		b |= BoundStart
	}
	if r.IncludeEnd {
		b |= BoundEnd
	}
	return b
}

// Length returns the sweep from Start to End in the positive
// direction. Whole turns are added to the raw difference until it is
// non-negative, so the result is never reduced below what the raw
// values describe and may exceed 2π.
func (r Range) Length() float64 {
	return sweep(r.End.raw - r.Start.raw)
}

func sweep(delta float64) float64 {
	if delta < -maxSweepSteps*Tau {
		// Adding single turns would not terminate, or not change the
		// value at all, for magnitudes this large.
		delta += math.Ceil(-delta/Tau) * Tau
	}
	for delta < 0 {
		delta += Tau
	}
	return delta
}

// interval returns the raw interval occupied by r.
func (r Range) interval() (s, e float64) {
	s = r.Start.raw
	return s, s + r.Length()
}

// Degenerate reports whether r has no length. Degenerate ranges contain
// no points and no other ranges.
func (r Range) Degenerate() bool {
	return r.Length() <= Epsilon
}

// Mid returns the angle halfway along r, in raw terms.
func (r Range) Mid() Angle {
	return Raw(r.Start.raw + r.Length()/2)
}

// Contains reports whether the angle a lies on r, modulo full turns.
func (r Range) Contains(a Angle) bool {
	if r.Degenerate() {
		return false
	}
	return r.containsPoint(a.raw)
}

// containsPoint reports whether some shift of x by whole turns lands
// on r, honoring the inclusivity of r's ends.
func (r Range) containsPoint(x float64) bool {
	s, e := r.interval()
	mMin, mMax, ok := shifts(s, e, x)
	if !ok {
		return false
	}
	if mMax-mMin >= 2 {
		// At least one landing is strictly interior.
		return true
	}

	landing := func(m float64) bool {
		sx := x + m*Tau
		switch {
		case scalar.EqualWithinAbs(sx, s, Epsilon):
			return r.IncludeStart
		case scalar.EqualWithinAbs(sx, e, Epsilon):
			return r.IncludeEnd
		default:
			return true
		}
	}
	return landing(mMin) || ((mMax > mMin) && landing(mMax))
}

// shifts returns the range of whole turns m for which x+m·2π lies in
// [s, e], widened by Epsilon at both ends.
func shifts(s, e, x float64) (mMin, mMax float64, ok bool) {
	mMin = math.Ceil((s - x - Epsilon) / Tau)
	mMax = math.Floor((e - x + Epsilon) / Tau)
	return mMin, mMax, mMin <= mMax
}

// ContainsRange reports whether every point of o also lies on r. A nil
// o is not contained in anything.
//
// An inclusive end of o that coincides with an end of r is only
// accepted if r's end is inclusive too. An exclusive end of o may
// coincide with either kind of end of r.
func (r Range) ContainsRange(o *Range) bool {
	if (o == nil) || r.Degenerate() {
		return false
	}

	length := r.Length()
	olength := o.Length()
	if olength > length+Epsilon {
		return false
	}

	s, e := r.interval()
	x := o.Start.raw
	mMin, mMax, ok := shifts(s, e, x)
	if !ok {
		return false
	}

	// Later landings of o's start leave less room for o's end, so only
	// the first one that is accepted at the start needs checking, and a
	// boundary landing can be passed over for the one a turn later.
	for i := range 2 {
		m := mMin + float64(i)
		if m > mMax {
			break
		}

		d := x + m*Tau - s
		if !r.acceptsAt(d, length, o.IncludeStart) {
			continue
		}

		end := d + olength
		if end > length+Epsilon {
			return false
		}
		return r.acceptsAt(end, length, o.IncludeEnd)
	}
	return false
}

// acceptsAt reports whether an endpoint of another range, lying at
// offset d from r's start and inclusive if incl, is covered by r.
func (r Range) acceptsAt(d, length float64, incl bool) bool {
	switch {
	case scalar.EqualWithinAbs(d, 0, Epsilon):
		return r.IncludeStart || !incl
	case scalar.EqualWithinAbs(d, length, Epsilon):
		return r.IncludeEnd || !incl
	default:
		return (d > 0) && (d < length)
	}
}

// Touches reports whether the end of r coincides with the start of o,
// or the end of o with the start of r, modulo full turns.
func (r Range) Touches(o Range) bool {
	return r.End.Equal(o.Start) || o.End.Equal(r.Start)
}

// Text returns r rendered in the unit named by mode, as understood by
// [UnitFor], using brackets for inclusive ends and parentheses for
// exclusive ones.
func (r Range) Text(mode string) string {
	u := UnitFor(mode)

	lb, rb := "(", ")"
	if r.IncludeStart {
		lb = "["
	}
	if r.IncludeEnd {
		rb = "]"
	}
	return lb + u.Render(r.Start.raw) + ", " + u.Render(r.End.raw) + rb
}

func (r Range) String() string {
	return r.Text("")
}
