package khalimsky

import "errors"

// Sentinel errors for khalimsky operations.
var (
	// ErrBadGeometry indicates a pixel grid with no rows or no columns.
	ErrBadGeometry = errors.New("khalimsky: width and height must be positive")
	// ErrBufferSize indicates a flat buffer whose length does not match the geometry.
	ErrBufferSize = errors.New("khalimsky: buffer length does not match geometry")
)

// Offsets4 lists the orthogonal neighbor offsets in the order E, S, W, N.
var Offsets4 = [4][2]int{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}

// Geometry describes a Width×Height pixel grid together with its
// (2·Width+1)×(2·Height+1) Khalimsky embedding. It is a small value type
// and safe to copy.
type Geometry struct {
	Width, Height int
}
