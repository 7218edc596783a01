// Package ucm turns an over-segmentation and a boundary-strength map into an
// Ultrametric Contour Map: a hierarchy of nested segmentations encoded as one
// contour image.
//
// 🚀 What is in the module?
//
//   - ucm/        greedy merging engine (Compute, ComputeMatrix, Result)
//   - khalimsky/  double-resolution grid geometry (pixels, cracks, vertices)
//   - hierarchy/  a Result read back as segmentations (Levels, Cut)
//   - ucmimage/   boundary and partition maps from images, Render
//
// ✨ How it works:
//
//   - Every pair of adjacent regions is scored by the mean boundary strength
//     along the cracks they share.
//   - The weakest pair is merged, scores around the new region are refreshed,
//     and the crack cells that disappear record the merge energy.
//   - Once a single region per connected component is left, vertices take the
//     largest value of their neighbouring cracks.
//
// Quick ASCII example (1×3 pixels, one region each):
//
//	    regions   0 │ 1 │ 2
//	    cracks     0.2 0.8
//	    merges    0→1 at 0.2, then 1→2 at 0.8
//
// Thresholding the map at k with hierarchy.Cut gives the segmentation the
// engine held after its last merge with energy <= k.
//
//	go get github.com/katalvlaran/ucm
package ucm
