// Package ucm computes Ultrametric Contour Maps (UCM) by greedy agglomerative
// merging of an initial over-segmentation, ranked by mean boundary strength.
//
// Overview:
//
//   - Input: a boundary-strength map and an initial partition of the same
//     tx×ty pixel grid (partition[y][x] = region id, contiguous from 0).
//   - Output: a (2·ty+1)×(2·tx+1) contour grid in Khalimsky layout (see package
//     khalimsky). Every crack between two regions holds the dissimilarity at
//     which those regions were merged; vertices hold the maximum of their cracks.
//   - Thresholding the output at any level k yields the segmentation obtained
//     after all merges of energy ≤ k (see package hierarchy).
//
// Algorithm:
//
//  1. Initialization: one region per id; for every pixel and 4-neighbor in
//     another region, a crack record (coord, neighbor) is added to the pixel's
//     region. Boundaries are sorted by (neighbor, coord) and each run is folded
//     into {energy = mean, totalPB = sum, bdryLength = count}; one candidate
//     per adjacent pair is queued.
//  2. Merging: the candidate with the lowest (energy, region1, region2) is
//     popped. It is valid iff both regions are still roots and its energy
//     equals the current pairwise energy; otherwise it is discarded. A valid
//     candidate merges the lower id (son) into the higher id (father), stamps
//     the son's cracks with the energy, sums the son's boundary totals into the
//     father and queues fresh candidates for all father neighbors.
//  3. Completion: once the queue is empty, vertices are filled by max
//     propagation (khalimsky.Geometry.Complete).
//
// Label store:
//
//	labels[i] is the root region of initial region i and labels[i] == i iff i
//	is a root. Merging relabels every member of the son directly, so no
//	find/compress pass exists; stale queue entries are detected at pop time.
//
// Guarantees:
//
//   - Accepted merge energies are non-decreasing (ultrametric property).
//   - A crack value is only ever raised, never lowered.
//   - Pixels are moved between regions, never duplicated or dropped.
//   - A region that stopped being a root never becomes one again.
//
// Complexity:
//
//   - Time:  O(C log C), C = number of crack cells between distinct regions.
//   - Space: O(tx·ty + C) including stale queue entries.
//
// Options:
//
//   - WithLogger(zerolog.Logger): Debug summaries, Trace per merge.
//   - WithContext(ctx):           interrupts the merge loop on cancellation.
//   - WithOnMerge(fn):            observes every accepted Merge.
//
// Errors (sentinel):
//
//   - ErrInvalidShape:     an input grid is ragged, or the matrix is nil.
//   - ErrInvalidPartition: the partition is empty or holds a negative id.
//   - ErrShapeMismatch:    boundaries are neither pixel nor Khalimsky resolution.
//
// Example:
//
//	res, err := ucm.Compute(boundaries, partition)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	contours := res.Grid() // (2·ty+1)×(2·tx+1)
package ucm
