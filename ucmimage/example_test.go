package ucmimage_test

import (
	"fmt"
	"image"
	"image/color"

	"github.com/katalvlaran/ucm/ucm"
	"github.com/katalvlaran/ucm/ucmimage"
)

// ExampleRender reads a partition from an in-memory image, computes its
// contour map and renders it at native size.
func ExampleRender() {
	labels := image.NewGray(image.Rect(0, 0, 2, 1))
	labels.SetGray(1, 0, color.Gray{Y: 1})
	partition, _ := ucmimage.PartitionFromImage(labels)

	res, err := ucm.Compute([][]float64{{0.5, 0.5}}, partition)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	img, _ := ucmimage.Render(res, ucmimage.RenderOptions{})
	for y := 0; y < img.Bounds().Dy(); y++ {
		row := make([]uint16, img.Bounds().Dx())
		for x := range row {
			row[x] = img.Gray16At(x, y).Y
		}
		fmt.Println(row)
	}
	// Output:
	// [0 0 65535 0 0]
	// [0 0 65535 0 0]
	// [0 0 65535 0 0]
}
