package ucm

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/ucm/khalimsky"
)

// Result is a completed Ultrametric Contour Map. It is read-only once
// returned and safe for concurrent readers.
//
// The contour grid has Rows() = 2·Height()+1 rows and Cols() = 2·Width()+1
// columns. Crack cells hold the energy at which the two regions they separate
// merged, vertex cells the maximum of their neighboring cracks, pixel cells 0.
type Result struct {
	// Merges lists accepted merges in acceptance order; energies are non-decreasing.
	Merges []Merge
	// Regions is the number of initial regions, max(id)+1.
	Regions int
	// Candidates is the number of candidates pushed onto the merge queue.
	Candidates int
	// Stale is the number of candidates discarded when popped.
	Stale int

	geom   khalimsky.Geometry
	values []float64
}

// Geometry returns the pixel/Khalimsky geometry of the map.
func (r *Result) Geometry() khalimsky.Geometry { return r.geom }

// Width returns the number of pixel columns of the input.
func (r *Result) Width() int { return r.geom.Width }

// Height returns the number of pixel rows of the input.
func (r *Result) Height() int { return r.geom.Height }

// Cols returns the number of contour grid columns.
func (r *Result) Cols() int { return r.geom.Cols() }

// Rows returns the number of contour grid rows.
func (r *Result) Rows() int { return r.geom.Rows() }

// At returns the contour value at Khalimsky cell (kx,ky).
// It panics if the cell is out of range.
func (r *Result) At(kx, ky int) float64 { return r.values[r.geom.KIndex(kx, ky)] }

// Between returns the contour value of the crack between pixel (x,y) and its
// 4-neighbor (nx,ny). Pixels of the same initial region are separated by 0.
func (r *Result) Between(x, y, nx, ny int) float64 {
	return r.values[r.geom.CrackIndex(x, y, nx, ny)]
}

// Values returns a copy of the flat, row-major contour grid.
func (r *Result) Values() []float64 {
	out := make([]float64, len(r.values))
	copy(out, r.values)

	return out
}

// Grid returns the contour grid as a newly allocated [Rows()][Cols()] slice.
func (r *Result) Grid() [][]float64 {
	cols := r.Cols()
	out := make([][]float64, r.Rows())
	for ky := range out {
		out[ky] = make([]float64, cols)
		copy(out[ky], r.values[ky*cols:(ky+1)*cols])
	}

	return out
}

// Dense returns the contour grid as a newly allocated Rows()×Cols() gonum matrix.
func (r *Result) Dense() *mat.Dense {
	return mat.NewDense(r.Rows(), r.Cols(), r.Values())
}
