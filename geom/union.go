package geom

import (
	"iter"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats/scalar"
)

// Union returns the union of a and b as either one merged range or,
// if they are separated by a gap, both of them.
//
// If either range contains the other, the containing range is
// returned as is. Otherwise b is shifted by whole turns to the
// alignments nearest to a and the first shift at which the two raw
// intervals overlap or touch is merged into a single, possibly
// multi-turn, range. Disjoint ranges are returned in the order of
// their starts, with b's start taken at the nearest alignment.
//
// A nil operand yields an empty result.
func Union(a, b *Range) []Range {
	if (a == nil) || (b == nil) {
		return nil
	}

	if a.ContainsRange(b) {
		return []Range{*a}
	}
	if b.ContainsRange(a) {
		return []Range{*b}
	}

	s1, e1 := a.interval()
	s2, e2 := b.interval()

	mCenter := math.Round((s1 - s2) / Tau)
	for _, m := range [...]float64{mCenter - 1, mCenter, mCenter + 1} {
		s2m, e2m := s2+m*Tau, e2+m*Tau
		if (e1 < s2m-Epsilon) || (e2m < s1-Epsilon) {
			continue
		}
		return []Range{merge(a, b, s1, e1, s2m, e2m)}
	}

	if s1 <= s2+mCenter*Tau {
		return []Range{*a, *b}
	}
	return []Range{*b, *a}
}

// merge joins a, occupying [s1, e1], with b, occupying [s2, e2] after
// being shifted.
func merge(a, b *Range, s1, e1, s2, e2 float64) Range {
	start, incStart := s1, a.IncludeStart
	switch {
	case scalar.EqualWithinAbs(s1, s2, Epsilon):
		incStart = a.IncludeStart || b.IncludeStart
	case s2 < s1:
		start, incStart = s2, b.IncludeStart
	}

	end, incEnd := e1, a.IncludeEnd
	switch {
	case scalar.EqualWithinAbs(e1, e2, Epsilon):
		incEnd = a.IncludeEnd || b.IncludeEnd
	case e2 > e1:
		end, incEnd = e2, b.IncludeEnd
	}

	return NewRange(Raw(start), Raw(end), incStart, incEnd)
}

// UnionAll merges every range yielded by seq with Union until no two
// of the results can be merged any further. The disjoint ranges that
// remain are returned ordered by their normalized starts.
func UnionAll(seq iter.Seq[Range]) []Range {
	var out []Range
	for r := range seq {
		for i := 0; i < len(out); {
			u := Union(&out[i], &r)
			if len(u) != 1 {
				i++
				continue
			}

			r = u[0]
			out = slices.Delete(out, i, i+1)
			i = 0
		}
		out = append(out, r)
	}

	slices.SortStableFunc(out, func(r1, r2 Range) int {
		return r1.Start.Compare(r2.Start)
	})
	return out
}
