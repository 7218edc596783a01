// Package ucm defines sentinel errors, options and result types for
// Ultrametric Contour Map computation.
package ucm

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
)

// Sentinel errors returned by Compute and ComputeMatrix.
// All of them are reported before any output buffer is allocated.
var (
	// ErrInvalidShape indicates an input that is not a rectangular 2-D grid
	// (ragged rows or a nil matrix).
	ErrInvalidShape = errors.New("ucm: input must be a rectangular 2-D grid")

	// ErrInvalidPartition indicates a partition without regions (empty grid or
	// maximum region id < 0) or a partition containing a negative region id.
	ErrInvalidPartition = errors.New("ucm: partition has no valid regions")

	// ErrShapeMismatch indicates boundaries that are neither the pixel resolution
	// (ty×tx) nor the Khalimsky resolution ((2ty+1)×(2tx+1)) of the partition.
	ErrShapeMismatch = errors.New("ucm: boundaries do not match partition shape")
)

// Merge records one accepted merge of the greedy agglomeration.
//
// Son is always the lower region id and is absorbed into Father. Area is the
// number of pixels owned by Father once the merge is done.
type Merge struct {
	Energy float64 // mean boundary strength at which the two regions merged
	Father int     // surviving root
	Son    int     // absorbed root
	Area   int     // pixel count of Father after the merge
}

// Options configures a UCM computation.
//
// Logger  – receives engine events (component=ucm). Default zerolog.Nop().
// Ctx     – checked periodically by the merge loop. Default context.Background().
// OnMerge – optional hook called synchronously after every accepted merge.
type Options struct {
	Logger  zerolog.Logger
	Ctx     context.Context
	OnMerge func(Merge)
}

// Option represents a functional option for configuring Compute.
type Option func(*Options)

// WithLogger routes engine events to l.
// Initialization and completion summaries are logged at Debug level,
// individual merges at Trace level.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithContext attaches a context whose cancellation or deadline interrupts
// the merge loop. A nil ctx keeps context.Background().
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnMerge registers fn to be called after every accepted merge,
// in acceptance order.
func WithOnMerge(fn func(Merge)) Option {
	return func(o *Options) {
		o.OnMerge = fn
	}
}

// DefaultOptions returns an Options struct with a silent logger, a background
// context and no merge hook.
func DefaultOptions() Options {
	return Options{
		Logger: zerolog.Nop(),
		Ctx:    context.Background(),
	}
}
