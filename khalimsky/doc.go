// Package khalimsky models the double-resolution grid on which contour maps live.
//
// What:
//
//   - A Width×Height pixel grid is embedded into a (2·Width+1)×(2·Height+1) grid.
//   - Pixel (x,y) sits at (2x+1, 2y+1) (odd, odd).
//   - The crack between two 4-adjacent pixels sits halfway between them
//     (one odd and one even coordinate).
//   - Vertices, where cracks meet, sit at (even, even).
//
// Layout:
//
//	v c v c v        v = vertex   (even, even)
//	c p c p c        c = crack    (mixed parity)
//	v c v c v        p = pixel    (odd,  odd)
//
// Both grids are row-major: pixel (x,y) has flat index x + y·Width and
// Khalimsky cell (kx,ky) has flat index kx + ky·Cols().
//
// Operations:
//
//   - Geometry.CrackIndex: (x + nx + 1) + (y + ny + 1)·Cols() for adjacent pixels.
//   - Geometry.Complete:   fills every vertex with the maximum of its crack neighbors.
//   - Geometry.Upsample:   turns a pixel-resolution strength map into crack strengths.
//
// Complexity:
//
//   - Complete, Upsample: O(Width·Height) time; Upsample allocates O(Cols·Rows).
//
// Errors:
//
//   - ErrBadGeometry: non-positive width or height.
//   - ErrBufferSize:  a flat buffer does not match the geometry.
package khalimsky
