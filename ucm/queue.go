package ucm

// candidate is a proposed merge between two initial region ids.
// region1 and region2 need not be roots any more when the candidate is popped.
type candidate struct {
	energy  float64
	region1 int
	region2 int
}

// less orders candidates by ascending energy, then region1, then region2.
func (c candidate) less(o candidate) bool {
	if c.energy != o.energy {
		return c.energy < o.energy
	}
	if c.region1 != o.region1 {
		return c.region1 < o.region1
	}

	return c.region2 < o.region2
}

// mergeQueue is a min-heap of candidates driven by container/heap.
// Superseded candidates are never removed; they are discarded when popped
// (lazy deletion), which keeps every push at O(log n).
type mergeQueue []candidate

// Len returns the number of queued candidates, stale ones included.
func (q mergeQueue) Len() int { return len(q) }

// Less reports whether candidate i must be popped before candidate j.
func (q mergeQueue) Less(i, j int) bool { return q[i].less(q[j]) }

// Swap swaps two candidates.
func (q mergeQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

// Push appends x, which must be a candidate. Called by heap.Push.
func (q *mergeQueue) Push(x interface{}) { *q = append(*q, x.(candidate)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (q *mergeQueue) Pop() interface{} {
	old := *q
	n := len(old)
	c := old[n-1]
	*q = old[:n-1]

	return c
}
