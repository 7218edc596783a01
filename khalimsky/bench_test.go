package khalimsky_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/ucm/khalimsky"
)

// BenchmarkComplete measures the vertex pass on a 512×512 grid.
func BenchmarkComplete(b *testing.B) {
	g, _ := khalimsky.New(512, 512)
	rng := rand.New(rand.NewSource(42))
	grid := make([]float64, g.Len())
	for k := range grid {
		grid[k] = rng.Float64()
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Complete(grid)
	}
}

// BenchmarkUpsample measures pixel-to-crack conversion on a 512×512 map.
func BenchmarkUpsample(b *testing.B) {
	g, _ := khalimsky.New(512, 512)
	rng := rand.New(rand.NewSource(42))
	pixels := make([]float64, g.Pixels())
	for p := range pixels {
		pixels[p] = rng.Float64()
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.Upsample(pixels)
	}
}
