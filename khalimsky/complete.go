package khalimsky

// Complete fills every vertex cell of grid with the maximum value among its
// in-range crack neighbors (E, S, W, N). Border vertices only look at the
// neighbors that exist; a vertex with no positive neighbor becomes 0.
//
// Only vertex cells are written and only crack cells are read, so applying
// Complete twice yields the same grid as applying it once.
//
// Returns ErrBufferSize if len(grid) != g.Len().
// Complexity: O(Width·Height) time, O(1) extra memory.
func (g Geometry) Complete(grid []float64) error {
	if len(grid) != g.Len() {
		return ErrBufferSize
	}
	cols, rows := g.Cols(), g.Rows()
	for ky := 0; ky < rows; ky += 2 {
		for kx := 0; kx < cols; kx += 2 {
			best := 0.0
			for _, d := range Offsets4 {
				nx, ny := kx+d[0], ky+d[1]
				if nx < 0 || nx >= cols || ny < 0 || ny >= rows {
					continue
				}
				if v := grid[nx+ny*cols]; v > best {
					best = v
				}
			}
			grid[kx+ky*cols] = best
		}
	}

	return nil
}
