package geom

import (
	"iter"

	"deedles.dev/xiter"
)

// split splits an arc into two consecutive arcs at offset w from its
// start. The join belongs to the second arc.
func split(r Range, w float64) (first, second Range) {
	s, e := r.interval()
	first = NewRange(Raw(s), Raw(s+w), r.IncludeStart, false)
	second = NewRange(Raw(s+w), Raw(e), true, r.IncludeEnd)
	return first, second
}

// TileEven arranges the elements of tiles so that the result is a
// series of equally long, consecutive arcs that partition r. In other
// words,
//
//	tiles := make([]geom.Range, 3)
//	TileEven(tiles, geom.Arc(geom.Deg(0), geom.Deg(90)))
//
// will produce
//
//	[0°, 30°) [30°, 60°) [60°, 90°]
//
// Inner joins belong to the later arc. The outermost ends keep the
// inclusivity of r.
func TileEven(tiles []Range, r Range) {
	insertTilesFromSeq(tiles, TiledEven(len(tiles), r))
}

// TiledEven is the same as [TileEven] except that it yields the tiles
// from an iterator.
func TiledEven(numtiles int, r Range) iter.Seq[Range] {
	return func(yield func(Range) bool) {
		if numtiles <= 0 {
			return
		}

		w := r.Length() / float64(numtiles)
		c := r
		for range numtiles - 1 {
			var t Range
			t, c = split(c, w)
			if !yield(t) {
				return
			}
		}

		yield(c)
	}
}

// Stack returns an iterator that yields the range provided and then
// copies of it rotated forwards by its length repeatedly, thus
// producing an infinite series of arcs winding around the circle, each
// starting where the previous one ended.
func Stack(first Range) iter.Seq[Range] {
	return func(yield func(Range) bool) {
		shift := Raw(first.Length())
		for {
			if !yield(first) {
				return
			}
			first = first.Rotate(shift)
		}
	}
}

// Rotate returns r with both ends rotated by a, keeping its length.
func (r Range) Rotate(a Angle) Range {
	s := r.Start.Add(a)
	return NewRange(s, Raw(s.raw+r.Length()), r.IncludeStart, r.IncludeEnd)
}

// Resize returns an arc with the same start and inclusivity as r but
// the given length.
func (r Range) Resize(length float64) Range {
	return NewRange(r.Start, Raw(r.Start.raw+length), r.IncludeStart, r.IncludeEnd)
}

// CenterAt returns r rotated so that its midpoint is at c.
func (r Range) CenterAt(c Angle) Range {
	return r.Rotate(c.Sub(r.Mid()))
}

// Align rotates inner so that the specified ends line up with the
// corresponding ends of outer, stretching it if both ends are
// specified. Inner is first centered on outer, so ends that are not
// specified are left centered.
func Align(outer, inner Range, b Bounds) Range {
	inner = inner.CenterAt(outer.Mid())
	os, oe := outer.interval()
	switch {
	case b&BoundStart != 0:
		inner = inner.Rotate(Raw(os - inner.Start.raw))
		if b&BoundEnd != 0 {
			inner = inner.Resize(oe - os)
		}
	case b&BoundEnd != 0:
		_, ie := inner.interval()
		inner = inner.Rotate(Raw(oe - ie))
	}

	return inner
}

func insertTilesFromSeq(tiles []Range, s iter.Seq[Range]) {
	for i, t := range xiter.Enumerate(s) {
		tiles[i] = t
	}
}
