package dijkstra

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/hardmine/core"
	"github.com/katalvlaran/hardmine/dataset"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNoSource indicates that no Source option was provided.
	ErrNoSource = errors.New("dijkstra: source vertex not set")

	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrUnweightedGraph indicates an unweighted graph without WithUnitWeights.
	ErrUnweightedGraph = errors.New("dijkstra: graph must be weighted (or use WithUnitWeights)")

	// ErrVertexNotFound indicates that the source vertex does not exist.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative or NaN value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero, negative or NaN.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Source           – starting vertex id (must be present in the graph).
// ReturnPath       – if true, return the predecessor map; otherwise prev is nil.
// MaxDistance      – cap on distances to explore. Default +Inf.
// InfEdgeThreshold – edges with weight ≥ this are impassable. Default +Inf.
// Mask             – edges hidden from the search.
// UnitWeights      – count hops instead of summing weights.
type Options struct {
	Ctx              context.Context
	Source           int
	ReturnPath       bool
	MaxDistance      float64
	InfEdgeThreshold float64
	Mask             core.EdgeMask
	UnitWeights      bool

	err error // first invalid option, surfaced by Dijkstra
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex id.
func Source(id int) Option {
	return func(o *Options) { o.Source = id }
}

// WithReturnPath enables generation of the predecessor map in the result.
func WithReturnPath() Option {
	return func(o *Options) { o.ReturnPath = true }
}

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed max are left at +Inf.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if math.IsNaN(max) || max < 0 {
			o.err = fmt.Errorf("%w: %w: %v", ErrBadMaxDistance, dataset.ErrInvalidArgument, max)
			return
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight at or above which edges are skipped.
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) {
		if math.IsNaN(threshold) || threshold <= 0 {
			o.err = fmt.Errorf("%w: %w: %v", ErrBadInfThreshold, dataset.ErrInvalidArgument, threshold)
			return
		}
		o.InfEdgeThreshold = threshold
	}
}

// WithEdgeMask hides the masked edges from the search.
func WithEdgeMask(m core.EdgeMask) Option {
	return func(o *Options) { o.Mask = m }
}

// WithUnitWeights makes every traversable edge cost exactly 1.
func WithUnitWeights() Option {
	return func(o *Options) { o.UnitWeights = true }
}

// WithContext sets a context checked once per extracted vertex.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// DefaultOptions returns Options with no source, no caps and a background context.
func DefaultOptions() Options {
	return Options{
		Ctx:              context.Background(),
		Source:           -1,
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}
