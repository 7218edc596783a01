package ucm

// neighbor accumulates the shared boundary between two adjacent roots.
// Each side of a pair owns its own neighbor value; the merge keeps both
// copies equal through explicit two-sided updates.
type neighbor struct {
	energy     float64 // totalPB / bdryLength
	totalPB    float64 // summed boundary strength along the shared cracks
	bdryLength float64 // number of shared cracks
}

// crack is one crack cell on the boundary of a region.
type crack struct {
	coord    int // flat Khalimsky index
	neighbor int // root across the crack when the record was inserted
}

// region is the arena slot of one initial region id. Slots are never freed:
// once absorbed, a region keeps its slot with emptied containers.
type region struct {
	head, tail int // pixel chain through runner.next; -1 when empty
	size       int // number of pixels in the chain

	members   []int // initial region ids whose label is this root
	neighbors map[int]*neighbor
	boundary  []crack
}

// merge folds region son into region father at the given saliency:
//
//  1. Boundary: father drops its cracks toward son; every son crack is raised
//     to saliency in the contour grid and re-homed into father unless its far
//     side is father.
//  2. Elements: son members are relabelled to father and the son pixel chain
//     is spliced onto father's.
//  3. Neighbors: father forgets son; son forgets stale entries and father.
//
// The reciprocal updates for son's remaining neighbors are done by the caller.
// Complexity: O(|boundary(father)| + |boundary(son)| + |members(son)| + |neighbors(son)|).
func (r *runner) merge(father, son int, saliency float64) {
	f, s := &r.regions[father], &r.regions[son]

	// 1a) cracks between father and son are now interior
	kept := f.boundary[:0]
	for _, c := range f.boundary {
		if r.labels[c.neighbor] != son {
			kept = append(kept, c)
		}
	}
	f.boundary = kept

	// 1b) stamp and re-home son cracks
	for _, c := range s.boundary {
		if r.contour[c.coord] < saliency {
			r.contour[c.coord] = saliency
		}
		if r.labels[c.neighbor] != father {
			f.boundary = append(f.boundary, c)
		}
	}
	s.boundary = nil

	// 2) elements
	for _, m := range s.members {
		r.labels[m] = father
	}
	f.members = append(f.members, s.members...)
	s.members = nil
	r.splice(f, s)

	// 3) neighbors
	delete(f.neighbors, son)
	for k := range s.neighbors {
		if r.labels[k] != k || r.labels[k] == father {
			delete(s.neighbors, k)
		}
	}
}

// splice moves the whole pixel chain of src to the end of dst in O(1).
func (r *runner) splice(dst, src *region) {
	if src.size == 0 {
		return
	}
	if dst.size == 0 {
		dst.head = src.head
	} else {
		r.next[dst.tail] = src.head
	}
	dst.tail = src.tail
	dst.size += src.size
	src.head, src.tail, src.size = -1, -1, 0
}

// pixels returns the pixel indices owned by region id, in chain order.
func (r *runner) pixels(id int) []int {
	reg := &r.regions[id]
	out := make([]int, 0, reg.size)
	for p := reg.head; p >= 0; p = r.next[p] {
		out = append(out, p)
	}

	return out
}
