package hierarchy

import "errors"

// Sentinel errors for hierarchy operations.
var (
	// ErrNilResult indicates a nil *ucm.Result was passed.
	ErrNilResult = errors.New("hierarchy: nil result")
	// ErrBadThreshold indicates a NaN or negative threshold.
	ErrBadThreshold = errors.New("hierarchy: threshold must be a non-negative number")
)

// Segmentation is a pixel labelling of a Width×Height image.
// Labels are dense from 0, assigned in row-major scan order.
type Segmentation struct {
	Width, Height int
	Labels        []int32 // row-major, len = Width*Height
	Count         int     // number of distinct labels
}

// At returns the label of pixel (x,y).
func (s *Segmentation) At(x, y int) int32 { return s.Labels[x+y*s.Width] }

// Grid returns the labels as a newly allocated Height×Width grid.
func (s *Segmentation) Grid() [][]int32 {
	out := make([][]int32, s.Height)
	for y := range out {
		out[y] = append([]int32(nil), s.Labels[y*s.Width:(y+1)*s.Width]...)
	}

	return out
}

// Sizes returns the number of pixels carrying each label.
func (s *Segmentation) Sizes() []int {
	sizes := make([]int, s.Count)
	for _, l := range s.Labels {
		sizes[l]++
	}

	return sizes
}
