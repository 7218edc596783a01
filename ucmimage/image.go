package ucmimage

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"math"

	"github.com/disintegration/imaging"
	"gonum.org/v1/gonum/floats"

	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder

	"github.com/katalvlaran/ucm/ucm"
)

var (
	// ErrEmptyImage indicates an image with zero width or height.
	ErrEmptyImage = errors.New("ucmimage: image has no pixels")
	// ErrNilResult indicates a nil *ucm.Result was passed to Render.
	ErrNilResult = errors.New("ucmimage: nil result")
)

// RenderOptions controls Render.
type RenderOptions struct {
	// Width and Height select the output size. Zero keeps the native
	// (2·tx+1)×(2·ty+1) size; a single zero keeps the aspect ratio.
	Width, Height int
}

// LoadBoundaries opens an image file and returns its intensity grid.
func LoadBoundaries(path string) ([][]float64, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ucmimage: open boundaries: %w", err)
	}

	return BoundariesFromImage(img)
}

// LoadPartition opens an image file and returns its region id grid.
func LoadPartition(path string) ([][]int32, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ucmimage: open partition: %w", err)
	}

	return PartitionFromImage(img)
}

// BoundariesFromImage converts img to a row-major grid of intensities in [0,1].
func BoundariesFromImage(img image.Image) ([][]float64, error) {
	b, err := bounds(img)
	if err != nil {
		return nil, err
	}
	out := make([][]float64, b.Dy())
	for y := range out {
		row := make([]float64, b.Dx())
		for x := range row {
			g := color.Gray16Model.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.Gray16)
			row[x] = float64(g.Y) / math.MaxUint16
		}
		out[y] = row
	}

	return out, nil
}

// PartitionFromImage converts img to a row-major grid of region ids.
func PartitionFromImage(img image.Image) ([][]int32, error) {
	b, err := bounds(img)
	if err != nil {
		return nil, err
	}

	var at func(x, y int) int32
	switch src := img.(type) {
	case *image.Paletted:
		at = func(x, y int) int32 { return int32(src.ColorIndexAt(x, y)) }
	case *image.Gray:
		at = func(x, y int) int32 { return int32(src.GrayAt(x, y).Y) }
	case *image.Gray16:
		at = func(x, y int) int32 { return int32(src.Gray16At(x, y).Y) }
	default:
		at = func(x, y int) int32 {
			return int32(color.Gray16Model.Convert(img.At(x, y)).(color.Gray16).Y)
		}
	}

	out := make([][]int32, b.Dy())
	for y := range out {
		row := make([]int32, b.Dx())
		for x := range row {
			row[x] = at(b.Min.X+x, b.Min.Y+y)
		}
		out[y] = row
	}

	return out, nil
}

// Render draws the contour grid of r. Cell (kx,ky) maps to pixel (kx,ky);
// values are scaled so that the strongest contour is white. A map without
// contours renders black. Rescaled output goes through imaging.Resize and
// carries 8-bit precision.
func Render(r *ucm.Result, opts RenderOptions) (*image.Gray16, error) {
	if r == nil {
		return nil, ErrNilResult
	}
	values := r.Values()
	scale := 0.0
	if len(values) > 0 {
		if m := floats.Max(values); m > 0 {
			scale = math.MaxUint16 / m
		}
	}

	cols := r.Cols()
	img := image.NewGray16(image.Rect(0, 0, cols, r.Rows()))
	for k, v := range values {
		img.SetGray16(k%cols, k/cols, color.Gray16{Y: uint16(math.Round(v * scale))})
	}
	if opts.Width == 0 && opts.Height == 0 {
		return img, nil
	}

	resized := imaging.Resize(img, opts.Width, opts.Height, imaging.NearestNeighbor)
	out := image.NewGray16(resized.Bounds())
	draw.Draw(out, out.Bounds(), resized, resized.Bounds().Min, draw.Src)

	return out, nil
}

func bounds(img image.Image) (image.Rectangle, error) {
	if img == nil {
		return image.Rectangle{}, ErrEmptyImage
	}
	b := img.Bounds()
	if b.Empty() {
		return b, fmt.Errorf("%w: %dx%d", ErrEmptyImage, b.Dx(), b.Dy())
	}

	return b, nil
}
