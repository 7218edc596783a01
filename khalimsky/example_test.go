package khalimsky_test

import (
	"fmt"

	"github.com/katalvlaran/ucm/khalimsky"
)

// ExampleGeometry_CrackIndex shows where the crack between two horizontally
// adjacent pixels lands in the double-resolution grid.
func ExampleGeometry_CrackIndex() {
	g, _ := khalimsky.New(3, 2)
	k := g.CrackIndex(1, 0, 2, 0)
	kx, ky := g.KCoordinate(k)
	fmt.Printf("index=%d at (%d,%d) of %dx%d\n", k, kx, ky, g.Cols(), g.Rows())
	// Output: index=11 at (4,1) of 7x5
}

// ExampleGeometry_Complete propagates a single crack value to its vertices.
func ExampleGeometry_Complete() {
	g, _ := khalimsky.New(2, 1)
	grid := make([]float64, g.Len())
	grid[g.CrackIndex(0, 0, 1, 0)] = 0.5
	_ = g.Complete(grid)
	for ky := 0; ky < g.Rows(); ky++ {
		fmt.Println(grid[ky*g.Cols() : (ky+1)*g.Cols()])
	}
	// Output:
	// [0 0 0.5 0 0]
	// [0 0 0.5 0 0]
	// [0 0 0.5 0 0]
}
