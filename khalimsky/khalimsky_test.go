package khalimsky_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ucm/khalimsky"
)

// TestNew_Errors verifies that New rejects degenerate dimensions.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name string
		w, h int
	}{
		{"ZeroWidth", 0, 3},
		{"ZeroHeight", 3, 0},
		{"Negative", -1, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := khalimsky.New(tc.w, tc.h)
			if !errors.Is(err, khalimsky.ErrBadGeometry) {
				t.Errorf("New(%d,%d) error = %v; want ErrBadGeometry", tc.w, tc.h, err)
			}
		})
	}
}

// TestGeometry_Dimensions checks the size relations of a 3×2 grid.
func TestGeometry_Dimensions(t *testing.T) {
	g, err := khalimsky.New(3, 2)
	require.NoError(t, err)

	assert.Equal(t, 7, g.Cols())
	assert.Equal(t, 5, g.Rows())
	assert.Equal(t, 35, g.Len())
	assert.Equal(t, 6, g.Pixels())
}

// TestGeometry_IndexRoundTrip walks every pixel and every Khalimsky cell
// through index and back.
func TestGeometry_IndexRoundTrip(t *testing.T) {
	g, err := khalimsky.New(4, 3)
	require.NoError(t, err)

	for p := 0; p < g.Pixels(); p++ {
		x, y := g.Coordinate(p)
		require.True(t, g.InBounds(x, y))
		require.Equal(t, p, g.PixelIndex(x, y))
	}
	for k := 0; k < g.Len(); k++ {
		kx, ky := g.KCoordinate(k)
		require.True(t, g.KInBounds(kx, ky))
		require.Equal(t, k, g.KIndex(kx, ky))
	}
	assert.False(t, g.InBounds(4, 0))
	assert.False(t, g.InBounds(0, -1))
	assert.False(t, g.KInBounds(9, 0))
}

// TestGeometry_CrackIndex checks the crack encoding on a 2×2 grid:
//
//	(0,0)|(1,0)  -> (2,1) -> 7
//	(0,0)/(0,1)  -> (1,2) -> 11
//	(1,0)/(1,1)  -> (3,2) -> 13
//	(0,1)|(1,1)  -> (2,3) -> 17
func TestGeometry_CrackIndex(t *testing.T) {
	g, err := khalimsky.New(2, 2)
	require.NoError(t, err)

	cases := []struct {
		x, y, nx, ny int
		want         int
	}{
		{0, 0, 1, 0, 7},
		{0, 0, 0, 1, 11},
		{1, 0, 1, 1, 13},
		{0, 1, 1, 1, 17},
	}
	for _, tc := range cases {
		got := g.CrackIndex(tc.x, tc.y, tc.nx, tc.ny)
		assert.Equal(t, tc.want, got, "crack (%d,%d)-(%d,%d)", tc.x, tc.y, tc.nx, tc.ny)
		// symmetric in the two pixels
		assert.Equal(t, got, g.CrackIndex(tc.nx, tc.ny, tc.x, tc.y))

		kx, ky := g.KCoordinate(got)
		assert.True(t, khalimsky.IsCrack(kx, ky))
	}
}

// TestCellClassification checks that every cell is exactly one of
// vertex, crack or pixel.
func TestCellClassification(t *testing.T) {
	g, err := khalimsky.New(3, 3)
	require.NoError(t, err)

	var vertices, cracks, pixels int
	for ky := 0; ky < g.Rows(); ky++ {
		for kx := 0; kx < g.Cols(); kx++ {
			n := 0
			if khalimsky.IsVertex(kx, ky) {
				vertices++
				n++
			}
			if khalimsky.IsCrack(kx, ky) {
				cracks++
				n++
			}
			if khalimsky.IsPixel(kx, ky) {
				pixels++
				n++
			}
			require.Equal(t, 1, n, "cell (%d,%d)", kx, ky)
		}
	}
	assert.Equal(t, 16, vertices) // (w+1)(h+1)
	assert.Equal(t, 24, cracks)   // w(h+1) + h(w+1)
	assert.Equal(t, 9, pixels)
}
