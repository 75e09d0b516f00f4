// Package bfs provides tunable options and error definitions
// for breadth-first search over a core.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/hardmine/core"
	"github.com/katalvlaran/hardmine/dataset"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start id is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	// It always also matches dataset.ErrInvalidArgument.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation when BFS runs.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when visiting a vertex. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(id int, depth int) error

	// MaxDepth, if ≥ 0, stops exploring beyond this depth. Negative means no limit.
	MaxDepth int

	// Mask hides individual edges from the traversal.
	Mask core.EdgeMask

	// FilterNeighbor can skip edges by returning false.
	FilterNeighbor func(curr, neighbor int) bool

	// Target, if ≥ 0, stops the search as soon as that vertex is reached.
	Target int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns BFSOptions with no depth limit, no mask, no filter,
// no target and a background context.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:            context.Background(),
		OnVisit:        func(int, int) error { return nil },
		MaxDepth:       -1,
		FilterNeighbor: func(_, _ int) bool { return true },
		Target:         -1,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(id int, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at depth d (inclusive).
//
//	d ≥ 0: vertices farther than d hops are not reached (d == 0 visits only the start)
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: %w: MaxDepth cannot be negative (%d)", ErrOptionViolation, dataset.ErrInvalidArgument, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithEdgeMask hides the masked edges from the traversal.
func WithEdgeMask(m core.EdgeMask) Option {
	return func(o *BFSOptions) { o.Mask = m }
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor int) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// WithTarget stops the traversal once id has been reached.
func WithTarget(id int) Option {
	return func(o *BFSOptions) {
		if id < 0 {
			o.err = fmt.Errorf("%w: %w: target cannot be negative (%d)", ErrOptionViolation, dataset.ErrInvalidArgument, id)
			return
		}
		o.Target = id
	}
}

// BFSResult holds the outcome of a BFS traversal:
//   - Order: vertices visited, in visit sequence.
//   - Depth: map from vertex id to its distance (in hops) from the start.
//   - Parent: map from vertex id to its predecessor in the BFS tree.
type BFSResult struct {
	Order  []int
	Depth  map[int]int
	Parent map[int]int
}

// PathTo reconstructs the path from the start vertex to dest.
// Returns an error if dest was not reached.
func (r *BFSResult) PathTo(dest int) ([]int, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("bfs: no path to %d", dest)
	}
	path := []int{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// Reached returns the set of vertices the traversal reached.
func (r *BFSResult) Reached() map[int]bool {
	out := make(map[int]bool, len(r.Order))
	for _, id := range r.Order {
		out[id] = true
	}

	return out
}
