package ucm

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ComputeMatrix is Compute for boundary strengths held in a gonum matrix.
// Rows of b are image rows (y) and columns are image columns (x); the same
// resolution rules and validation order as Compute apply. A nil matrix is
// reported as ErrInvalidShape.
func ComputeMatrix(b mat.Matrix, partition [][]int32, opts ...Option) (*Result, error) {
	cfg := buildOptions(opts)

	if b == nil {
		return nil, fmt.Errorf("boundaries: %w: nil matrix", ErrInvalidShape)
	}
	if d, ok := b.(*mat.Dense); ok && d == nil {
		return nil, fmt.Errorf("boundaries: %w: nil matrix", ErrInvalidShape)
	}
	rows, cols := b.Dims()

	g, labels, totcc, err := readPartition(partition)
	if err != nil {
		return nil, err
	}
	strength, err := readStrength(g, rows, cols, b.At)
	if err != nil {
		return nil, err
	}

	return run(g, strength, labels, totcc, cfg)
}
