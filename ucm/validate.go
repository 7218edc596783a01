package ucm

import (
	"fmt"

	"github.com/katalvlaran/ucm/khalimsky"
)

// shape returns the dimensions of a row-major grid.
// An empty grid has shape 0×0; ragged rows yield ErrInvalidShape.
func shape[T any](grid [][]T) (rows, cols int, err error) {
	rows = len(grid)
	if rows == 0 {
		return 0, 0, nil
	}
	cols = len(grid[0])
	for y, row := range grid {
		if len(row) != cols {
			return 0, 0, fmt.Errorf("%w: row %d has %d columns, want %d", ErrInvalidShape, y, len(row), cols)
		}
	}

	return rows, cols, nil
}

// readPartition validates partition and flattens it row-major.
// It returns the pixel geometry, the flat labels and the number of regions.
func readPartition(partition [][]int32) (khalimsky.Geometry, []int, int, error) {
	ty, tx, err := shape(partition)
	if err != nil {
		return khalimsky.Geometry{}, nil, 0, fmt.Errorf("partition: %w", err)
	}
	g, err := khalimsky.New(tx, ty)
	if err != nil {
		return khalimsky.Geometry{}, nil, 0, fmt.Errorf("%w: empty %dx%d grid", ErrInvalidPartition, ty, tx)
	}

	labels := make([]int, g.Pixels())
	maxID := -1
	for y, row := range partition {
		for x, id := range row {
			if id < 0 {
				return khalimsky.Geometry{}, nil, 0, fmt.Errorf("%w: negative region id %d at (%d,%d)", ErrInvalidPartition, id, x, y)
			}
			if int(id) > maxID {
				maxID = int(id)
			}
			labels[g.PixelIndex(x, y)] = int(id)
		}
	}

	return g, labels, maxID + 1, nil
}

// readStrength samples a rows×cols strength grid through at and returns it at
// Khalimsky resolution for geometry g.
func readStrength(g khalimsky.Geometry, rows, cols int, at func(y, x int) float64) ([]float64, error) {
	switch {
	case rows == g.Height && cols == g.Width:
		pixels := make([]float64, g.Pixels())
		for y := 0; y < rows; y++ {
			for x := 0; x < cols; x++ {
				pixels[g.PixelIndex(x, y)] = at(y, x)
			}
		}
		return g.Upsample(pixels)

	case rows == g.Rows() && cols == g.Cols():
		cells := make([]float64, g.Len())
		for ky := 0; ky < rows; ky++ {
			for kx := 0; kx < cols; kx++ {
				cells[g.KIndex(kx, ky)] = at(ky, kx)
			}
		}
		return cells, nil

	default:
		return nil, fmt.Errorf("%w: boundaries are %dx%d, want %dx%d or %dx%d",
			ErrShapeMismatch, rows, cols, g.Height, g.Width, g.Rows(), g.Cols())
	}
}
