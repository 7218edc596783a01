package khalimsky

// Upsample converts a pixel-resolution strength map (flat, row-major,
// Width·Height values) into a Khalimsky-resolution map. Every crack cell
// receives the mean of the two pixels it separates; pixel and vertex cells
// are left at 0.
//
// Returns ErrBufferSize if len(pixels) != g.Pixels().
// Complexity: O(Width·Height) time, O(Cols·Rows) memory.
func (g Geometry) Upsample(pixels []float64) ([]float64, error) {
	if len(pixels) != g.Pixels() {
		return nil, ErrBufferSize
	}
	out := make([]float64, g.Len())
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			p := g.PixelIndex(x, y)
			if x+1 < g.Width {
				out[g.CrackIndex(x, y, x+1, y)] = (pixels[p] + pixels[p+1]) / 2
			}
			if y+1 < g.Height {
				out[g.CrackIndex(x, y, x, y+1)] = (pixels[p] + pixels[p+g.Width]) / 2
			}
		}
	}

	return out, nil
}
