package geom_test

import (
	"math"
	"testing"

	"deedles.dev/xangle/geom"
	"github.com/stretchr/testify/require"
)

func TestTileEven(t *testing.T) {
	r := geom.RangeOf(0, 90, geom.Degrees, false, true)
	tiles := make([]geom.Range, 3)
	geom.TileEven(tiles, r)

	for i, tile := range tiles {
		require.InDelta(t, math.Pi/6, tile.Length(), 1e-12, "tile %v", i)
		require.InDelta(t, float64(i)*math.Pi/6, tile.Start.Radians(), 1e-12, "tile %v", i)
	}

	require.False(t, tiles[0].IncludeStart)
	require.False(t, tiles[0].IncludeEnd)
	require.True(t, tiles[1].IncludeStart)
	require.False(t, tiles[1].IncludeEnd)
	require.True(t, tiles[2].IncludeStart)
	require.True(t, tiles[2].IncludeEnd)

	// Every point of r lands on exactly one tile.
	for deg := 0.0; deg <= 90; deg += 7.5 {
		x := geom.Deg(deg)
		var n int
		for _, tile := range tiles {
			if tile.Contains(x) {
				n++
			}
		}
		if r.Contains(x) {
			require.Equal(t, 1, n, "x = %v", x)
		} else {
			require.Zero(t, n, "x = %v", x)
		}
	}
}

func TestTiledEvenMultiTurn(t *testing.T) {
	r := geom.RangeOf(0, 3*geom.Tau, geom.Radians, true, true)

	var n int
	for tile := range geom.TiledEven(6, r) {
		require.InDelta(t, math.Pi, tile.Length(), 1e-12)
		n++
	}
	require.Equal(t, 6, n)

	for range geom.TiledEven(0, r) {
		t.Fatal("yielded a tile for zero tiles")
	}
}

func TestStack(t *testing.T) {
	first := geom.RangeOf(0, 100, geom.Degrees, true, false)

	var prev geom.Range
	var i int
	for r := range geom.Stack(first) {
		if i > 0 {
			require.InDelta(t, prev.Start.Radians()+prev.Length(), r.Start.Radians(), 1e-9)
			require.True(t, prev.Touches(r))
		}
		require.InDelta(t, first.Length(), r.Length(), 1e-9)
		require.Equal(t, first.Bounds(), r.Bounds())

		prev = r
		i++
		if i == 5 {
			break
		}
	}

	require.InDelta(t, 400*math.Pi/180, prev.Start.Radians(), 1e-9)
}

func TestAlign(t *testing.T) {
	outer := geom.RangeOf(0, 90, geom.Degrees, true, true)
	inner := geom.RangeOf(200, 220, geom.Degrees, true, false)

	tests := []struct {
		name       string
		bounds     geom.Bounds
		start, end float64
	}{
		{"None", geom.BoundNone, 35, 55},
		{"Start", geom.BoundStart, 0, 20},
		{"End", geom.BoundEnd, 70, 90},
		{"Both", geom.BoundBoth, 0, 90},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			r := geom.Align(outer, inner, test.bounds)
			require.True(t, r.Start.Equal(geom.Deg(test.start)), "start = %v", r.Start)
			require.True(t, r.End.Equal(geom.Deg(test.end)), "end = %v", r.End)
			require.Equal(t, inner.Bounds(), r.Bounds())
			require.True(t, outer.ContainsRange(&r))
		})
	}
}

func TestRotate(t *testing.T) {
	r := geom.RangeOf(350, 10, geom.Degrees, true, true)
	rot := r.Rotate(geom.Deg(90))
	require.True(t, rot.Start.Equal(geom.Deg(80)))
	require.True(t, rot.End.Equal(geom.Deg(100)))
	require.InDelta(t, r.Length(), rot.Length(), 1e-12)
}
