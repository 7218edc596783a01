package khalimsky

// New returns the Geometry of a width×height pixel grid.
// Returns ErrBadGeometry if either dimension is not positive.
func New(width, height int) (Geometry, error) {
	if width <= 0 || height <= 0 {
		return Geometry{}, ErrBadGeometry
	}

	return Geometry{Width: width, Height: height}, nil
}

// Cols returns the number of Khalimsky columns, 2·Width+1.
func (g Geometry) Cols() int { return 2*g.Width + 1 }

// Rows returns the number of Khalimsky rows, 2·Height+1.
func (g Geometry) Rows() int { return 2*g.Height + 1 }

// Len returns the number of Khalimsky cells.
func (g Geometry) Len() int { return g.Cols() * g.Rows() }

// Pixels returns the number of pixels, Width·Height.
func (g Geometry) Pixels() int { return g.Width * g.Height }

// InBounds reports whether pixel (x,y) lies within the grid.
// Complexity: O(1).
func (g Geometry) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// PixelIndex maps pixel (x,y) to its flat index x + y·Width.
func (g Geometry) PixelIndex(x, y int) int { return x + y*g.Width }

// Coordinate converts a flat pixel index back to (x,y).
func (g Geometry) Coordinate(p int) (x, y int) { return p % g.Width, p / g.Width }

// CrackIndex returns the flat Khalimsky index of the crack between pixel (x,y)
// and its 4-neighbor (nx,ny). The encoding is symmetric in the two pixels.
// Complexity: O(1).
func (g Geometry) CrackIndex(x, y, nx, ny int) int {
	return (x + nx + 1) + (y+ny+1)*g.Cols()
}

// KIndex maps Khalimsky cell (kx,ky) to its flat index.
func (g Geometry) KIndex(kx, ky int) int { return kx + ky*g.Cols() }

// KCoordinate converts a flat Khalimsky index back to (kx,ky).
func (g Geometry) KCoordinate(k int) (kx, ky int) { return k % g.Cols(), k / g.Cols() }

// KInBounds reports whether Khalimsky cell (kx,ky) lies within the embedding.
func (g Geometry) KInBounds(kx, ky int) bool {
	return kx >= 0 && kx < g.Cols() && ky >= 0 && ky < g.Rows()
}

// IsVertex reports whether (kx,ky) is a vertex cell (both coordinates even).
func IsVertex(kx, ky int) bool { return kx%2 == 0 && ky%2 == 0 }

// IsPixel reports whether (kx,ky) is a pixel cell (both coordinates odd).
func IsPixel(kx, ky int) bool { return kx%2 == 1 && ky%2 == 1 }

// IsCrack reports whether (kx,ky) is a crack cell (coordinates of mixed parity).
func IsCrack(kx, ky int) bool { return (kx+ky)%2 == 1 }
