// Package ucmimage connects the ucm engine to raster images.
//
// Boundary maps are read as grayscale intensity in [0,1]; partition maps are
// read as one region id per pixel (the palette index of paletted images, the
// raw gray value of 8- and 16-bit grayscale images, the 16-bit luminance of
// anything else). Supported formats are PNG, JPEG, GIF, TIFF and BMP.
//
// Render turns a ucm.Result back into a 16-bit grayscale image of the full
// double-resolution grid, normalised by its largest value. Images are only
// produced in memory; encoding them is left to the caller.
//
// Errors:
//
//   - ErrEmptyImage: the image has no pixels.
//   - ErrNilResult:  Render was given a nil result.
package ucmimage
