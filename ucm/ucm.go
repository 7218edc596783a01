package ucm

import (
	"container/heap"
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/ucm/khalimsky"
)

// ctxCheckInterval is the number of queue pops between two context checks.
const ctxCheckInterval = 1024

// Compute builds the Ultrametric Contour Map of partition under boundaries.
//
// partition[y][x] is the initial region id of pixel (x,y); ids are expected to
// be contiguous from 0 and the number of regions is max(id)+1 (gaps only
// produce empty regions). boundaries holds non-negative boundary strengths,
// either at pixel resolution (same shape as partition) or at Khalimsky
// resolution ((2·ty+1)×(2·tx+1)). Pixel-resolution strengths are converted with
// khalimsky.Geometry.Upsample.
//
// Validation (in order, all before any output is allocated):
//  1. Both inputs are rectangular (ErrInvalidShape).
//  2. partition is non-empty with no negative id (ErrInvalidPartition).
//  3. boundaries has pixel or Khalimsky resolution (ErrShapeMismatch).
//
// Complexity: O(C log C) time where C is the number of crack cells between
// different regions; O(tx·ty) memory.
func Compute(boundaries [][]float64, partition [][]int32, opts ...Option) (*Result, error) {
	cfg := buildOptions(opts)

	bRows, bCols, err := shape(boundaries)
	if err != nil {
		return nil, fmt.Errorf("boundaries: %w", err)
	}
	g, labels, totcc, err := readPartition(partition)
	if err != nil {
		return nil, err
	}
	strength, err := readStrength(g, bRows, bCols, func(y, x int) float64 { return boundaries[y][x] })
	if err != nil {
		return nil, err
	}

	return run(g, strength, labels, totcc, cfg)
}

// buildOptions applies opts over DefaultOptions.
func buildOptions(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// run executes the three phases on validated, flattened inputs.
func run(g khalimsky.Geometry, strength []float64, partition []int, totcc int, cfg Options) (*Result, error) {
	if err := cfg.Ctx.Err(); err != nil {
		return nil, fmt.Errorf("ucm: %w", err)
	}

	r := newRunner(g, strength, partition, totcc, cfg)
	r.init()
	r.seed()
	r.log.Debug().
		Int("regions", totcc).
		Int("pixels", g.Pixels()).
		Int("cracks", r.cracks).
		Int("candidates", r.candidates).
		Msg("initialized")

	if err := r.process(); err != nil {
		return nil, err
	}
	r.finish()
	r.log.Debug().
		Int("merges", len(r.merges)).
		Int("stale", r.stale).
		Int("candidates", r.candidates).
		Msg("merging complete")

	return r.result(), nil
}

// runner holds the mutable state for a single UCM computation.
type runner struct {
	geom      khalimsky.Geometry
	strength  []float64 // boundary strength per Khalimsky cell (read-only)
	partition []int     // initial region id per pixel (read-only)

	labels  []int     // labels[i] is the root that region i belongs to
	regions []region  // arena indexed by initial region id
	next    []int     // pixel chain links, -1 terminates
	contour []float64 // output, Khalimsky resolution
	queue   mergeQueue

	opts Options
	log  zerolog.Logger

	merges     []Merge
	cracks     int
	candidates int
	stale      int
}

// newRunner allocates all per-computation state.
func newRunner(g khalimsky.Geometry, strength []float64, partition []int, totcc int, cfg Options) *runner {
	return &runner{
		geom:      g,
		strength:  strength,
		partition: partition,
		labels:    make([]int, totcc),
		regions:   make([]region, totcc),
		next:      make([]int, g.Pixels()),
		contour:   make([]float64, g.Len()),
		queue:     make(mergeQueue, 0, totcc),
		opts:      cfg,
		log:       cfg.Logger.With().Str("component", "ucm").Logger(),
	}
}

// init makes every region its own root, chains its pixels and collects one
// crack record per (pixel, 4-neighbor in another region).
func (r *runner) init() {
	for c := range r.regions {
		r.labels[c] = c
		r.regions[c] = region{
			head:      -1,
			tail:      -1,
			members:   []int{c},
			neighbors: make(map[int]*neighbor),
		}
	}

	g := r.geom
	for p := 0; p < g.Pixels(); p++ {
		c := r.partition[p]
		reg := &r.regions[c]
		r.next[p] = -1
		if reg.size == 0 {
			reg.head = p
		} else {
			r.next[reg.tail] = p
		}
		reg.tail = p
		reg.size++

		x, y := g.Coordinate(p)
		for _, d := range khalimsky.Offsets4 {
			nx, ny := x+d[0], y+d[1]
			if !g.InBounds(nx, ny) {
				continue
			}
			n := r.partition[g.PixelIndex(nx, ny)]
			if n == c {
				continue
			}
			reg.boundary = append(reg.boundary, crack{coord: g.CrackIndex(x, y, nx, ny), neighbor: n})
			r.cracks++
		}
	}
}

// seed sorts every boundary by (neighbor, coord), folds each run of equal
// neighbors into one neighbor entry and queues one candidate per pair.
func (r *runner) seed() {
	heap.Init(&r.queue)
	for c := range r.regions {
		reg := &r.regions[c]
		b := reg.boundary
		sort.Slice(b, func(i, j int) bool {
			if b[i].neighbor != b[j].neighbor {
				return b[i].neighbor < b[j].neighbor
			}
			return b[i].coord < b[j].coord
		})

		for i := 0; i < len(b); {
			n := b[i].neighbor
			total := 0.0
			j := i
			for ; j < len(b) && b[j].neighbor == n; j++ {
				total += r.strength[b[j].coord]
			}
			length := float64(j - i)
			e := total / length
			reg.neighbors[n] = &neighbor{energy: e, totalPB: total, bdryLength: length}
			if n > c {
				r.push(candidate{energy: e, region1: c, region2: n})
			}
			i = j
		}
	}
}

// push queues a candidate.
func (r *runner) push(c candidate) {
	heap.Push(&r.queue, c)
	r.candidates++
}

// process drains the queue, checking the context every ctxCheckInterval pops.
func (r *runner) process() error {
	for pops := 1; r.step(); pops++ {
		if pops%ctxCheckInterval != 0 {
			continue
		}
		if err := r.opts.Ctx.Err(); err != nil {
			return fmt.Errorf("ucm: merging interrupted after %d merges: %w", len(r.merges), err)
		}
	}

	return nil
}

// step pops the best candidate and merges it if it is still valid.
// It returns false once the queue is empty.
func (r *runner) step() bool {
	if r.queue.Len() == 0 {
		return false
	}
	c := heap.Pop(&r.queue).(candidate)
	if !r.valid(c) {
		r.stale++
		return true
	}

	son, father := c.region1, c.region2
	if son > father {
		son, father = father, son
	}
	nb := r.regions[c.region1].neighbors[c.region2]
	saliency := nb.totalPB / nb.bdryLength

	r.merge(father, son, saliency)
	r.absorbNeighbors(father, son)
	r.requeue(father)

	m := Merge{Energy: c.energy, Father: father, Son: son, Area: r.regions[father].size}
	r.merges = append(r.merges, m)
	r.log.Trace().
		Float64("energy", m.Energy).
		Int("father", father).
		Int("son", son).
		Int("area", m.Area).
		Msg("merge")
	if r.opts.OnMerge != nil {
		r.opts.OnMerge(m)
	}

	return true
}

// valid reports whether both sides of c are still roots and c carries the
// live dissimilarity of the pair.
func (r *runner) valid(c candidate) bool {
	if r.labels[c.region1] != c.region1 || r.labels[c.region2] != c.region2 {
		return false
	}
	nb, ok := r.regions[c.region1].neighbors[c.region2]

	return ok && nb.energy == c.energy
}

// absorbNeighbors adds the shared boundary totals of son with each of its
// neighbors to father and to the reciprocal entries, then empties son.
func (r *runner) absorbNeighbors(father, son int) {
	f, s := &r.regions[father], &r.regions[son]
	for n, sn := range s.neighbors {
		fn := f.neighbors[n]
		if fn == nil {
			fn = &neighbor{}
			f.neighbors[n] = fn
		}
		fn.totalPB += sn.totalPB
		fn.bdryLength += sn.bdryLength

		nr := &r.regions[n]
		nf := nr.neighbors[father]
		if nf == nil {
			nf = &neighbor{}
			nr.neighbors[father] = nf
		}
		nf.totalPB += sn.totalPB
		nf.bdryLength += sn.bdryLength
		delete(nr.neighbors, son)
	}
	s.neighbors = nil
}

// requeue recomputes the energy between father and every neighbor, on both
// sides, and pushes a fresh candidate for each pair.
func (r *runner) requeue(father int) {
	for n, fn := range r.regions[father].neighbors {
		e := fn.totalPB / fn.bdryLength
		fn.energy = e
		r.regions[n].neighbors[father].energy = e
		r.push(candidate{energy: e, region1: n, region2: father})
	}
}

// finish completes the contour grid; it must run once, after merging.
func (r *runner) finish() {
	// contour is allocated with geom.Len() cells, Complete cannot fail here
	_ = r.geom.Complete(r.contour)
}

// result hands the computed state over to a Result.
func (r *runner) result() *Result {
	return &Result{
		Merges:     r.merges,
		Regions:    len(r.regions),
		Candidates: r.candidates,
		Stale:      r.stale,
		geom:       r.geom,
		values:     r.contour,
	}
}
