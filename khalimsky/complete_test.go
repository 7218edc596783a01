package khalimsky_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ucm/khalimsky"
)

// TestComplete_BufferSize verifies that a mismatched buffer is rejected untouched.
func TestComplete_BufferSize(t *testing.T) {
	g, err := khalimsky.New(2, 2)
	require.NoError(t, err)

	buf := []float64{1, 2, 3}
	require.ErrorIs(t, g.Complete(buf), khalimsky.ErrBufferSize)
	assert.Equal(t, []float64{1, 2, 3}, buf)
}

// TestComplete_SingleCrack fills the two vertices touching the only crack
// of a 2×1 grid and leaves everything else at zero.
//
//	Khalimsky 5×3:   0 0 v 0 0
//	                 0 p c p 0     c = 0.5 at (2,1)
//	                 0 0 v 0 0
func TestComplete_SingleCrack(t *testing.T) {
	g, err := khalimsky.New(2, 1)
	require.NoError(t, err)

	grid := make([]float64, g.Len())
	grid[g.KIndex(2, 1)] = 0.5
	require.NoError(t, g.Complete(grid))

	for k, v := range grid {
		kx, ky := g.KCoordinate(k)
		switch {
		case kx == 2 && (ky == 0 || ky == 1 || ky == 2):
			assert.Equal(t, 0.5, v, "cell (%d,%d)", kx, ky)
		default:
			assert.Zero(t, v, "cell (%d,%d)", kx, ky)
		}
	}
}

// TestComplete_TakesMaximum checks that an interior vertex keeps the largest
// of its four cracks and that border vertices only see existing neighbors.
func TestComplete_TakesMaximum(t *testing.T) {
	g, err := khalimsky.New(2, 2)
	require.NoError(t, err)

	grid := make([]float64, g.Len())
	grid[g.KIndex(2, 1)] = 0.3
	grid[g.KIndex(1, 2)] = 0.9
	grid[g.KIndex(3, 2)] = 0.1
	grid[g.KIndex(2, 3)] = 0.4
	require.NoError(t, g.Complete(grid))

	assert.Equal(t, 0.9, grid[g.KIndex(2, 2)])
	assert.Equal(t, 0.3, grid[g.KIndex(2, 0)])
	assert.Equal(t, 0.9, grid[g.KIndex(0, 2)])
	assert.Equal(t, 0.1, grid[g.KIndex(4, 2)])
	assert.Equal(t, 0.4, grid[g.KIndex(2, 4)])
	assert.Zero(t, grid[g.KIndex(0, 0)])
	assert.Zero(t, grid[g.KIndex(4, 4)])
}

// TestComplete_Idempotent runs the completion twice over random crack values.
func TestComplete_Idempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	g, err := khalimsky.New(9, 6)
	require.NoError(t, err)

	grid := make([]float64, g.Len())
	for k := range grid {
		kx, ky := g.KCoordinate(k)
		if khalimsky.IsCrack(kx, ky) {
			grid[k] = rng.Float64()
		}
	}
	require.NoError(t, g.Complete(grid))
	once := append([]float64(nil), grid...)

	require.NoError(t, g.Complete(grid))
	assert.Equal(t, once, grid)
}
