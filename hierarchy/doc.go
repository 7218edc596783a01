// Package hierarchy reads a finished Ultrametric Contour Map as a hierarchy
// of segmentations.
//
// What:
//
//   - Levels lists the distinct merge energies of a ucm.Result in ascending order.
//   - Cut thresholds the contour map: two 4-adjacent pixels share a label iff
//     the crack cell between them is <= threshold.
//
// Because the contour values are ultrametric, Cut(r, k) is the partition that
// the merge loop held right after its last merge with energy <= k, and cuts
// at increasing thresholds are nested.
//
// Complexity:
//
//   - Levels: O(M log M), M = number of merges.
//   - Cut:    O(W×H), Memory: O(W×H).
//
// Errors:
//
//   - ErrNilResult: the result is nil.
//   - ErrBadThreshold: the threshold is NaN or negative.
package hierarchy
