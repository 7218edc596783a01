package hierarchy

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/ucm/khalimsky"
	"github.com/katalvlaran/ucm/ucm"
)

// Levels returns the distinct merge energies of r in ascending order.
// A result without merges (single region) has no levels.
func Levels(r *ucm.Result) ([]float64, error) {
	if r == nil {
		return nil, ErrNilResult
	}
	levels := make([]float64, len(r.Merges))
	for i, m := range r.Merges {
		levels[i] = m.Energy
	}
	sort.Float64s(levels)

	out := levels[:0]
	for i, v := range levels {
		if i == 0 || v != levels[i-1] {
			out = append(out, v)
		}
	}

	return out, nil
}

// Cut returns the segmentation of r at scale threshold.
//
// Pixels are flooded breadth-first over 4-neighbors whose separating crack
// is <= threshold; a threshold at or above the largest level yields a single
// label, a threshold below the smallest level yields the connected components
// of the initial partition.
func Cut(r *ucm.Result, threshold float64) (*Segmentation, error) {
	if r == nil {
		return nil, ErrNilResult
	}
	if math.IsNaN(threshold) || threshold < 0 {
		return nil, fmt.Errorf("%w: %v", ErrBadThreshold, threshold)
	}

	g := r.Geometry()
	total := g.Pixels()
	labels := make([]int32, total)
	for i := range labels {
		labels[i] = -1
	}

	var next int32
	queue := make([]int, 0, total)
	for p0 := 0; p0 < total; p0++ {
		if labels[p0] >= 0 {
			continue
		}
		labels[p0] = next
		queue = append(queue[:0], p0)
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			ux, uy := g.Coordinate(u)
			for _, d := range khalimsky.Offsets4 {
				vx, vy := ux+d[0], uy+d[1]
				if !g.InBounds(vx, vy) {
					continue
				}
				v := g.PixelIndex(vx, vy)
				if labels[v] >= 0 || r.Between(ux, uy, vx, vy) > threshold {
					continue
				}
				labels[v] = next
				queue = append(queue, v)
			}
		}
		next++
	}

	return &Segmentation{Width: g.Width, Height: g.Height, Labels: labels, Count: int(next)}, nil
}
