// SPDX-License-Identifier: MIT
// Package: hardmine/core
//
// types.go — Vertex, Edge, Graph, WeightKind, options, sentinel errors and
// the NewGraph constructor.
//
// Concurrency: one sync.RWMutex guards vertices, edges and adjacency. The
// graph is mutated while it is being built and is read-only afterwards, so a
// single lock keeps the invariants simple without measurable contention.

package core

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrBadVertexID indicates a negative vertex id.
	ErrBadVertexID = errors.New("core: vertex id must be non-negative")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a NaN or negative weight, or a non-zero weight
	// provided to an unweighted graph.
	ErrBadWeight = errors.New("core: bad edge weight")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a second edge for the same ordered pair.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrNilEdge indicates a nil *Edge was passed to RestoreEdge.
	ErrNilEdge = errors.New("core: edge is nil")
)

// WeightKind records what edge weights mean for a whole graph.
type WeightKind int

const (
	// Unweighted graphs store zero on every edge.
	Unweighted WeightKind = iota
	// Distance graphs store non-negative distances (smaller = closer).
	Distance
	// Similarity graphs store affinities in [0,1] (larger = closer; 0 = beyond
	// the kernel cutoff).
	Similarity
)

// String returns a lower-case name for the kind.
func (k WeightKind) String() string {
	switch k {
	case Unweighted:
		return "unweighted"
	case Distance:
		return "distance"
	case Similarity:
		return "similarity"
	default:
		return fmt.Sprintf("WeightKind(%d)", int(k))
	}
}

// Vertex represents a node in the graph.
type Vertex struct {
	// ID is the row index this vertex stands for.
	ID int

	// Metadata stores arbitrary user data. It is shared, not deep-copied, by Clone.
	Metadata map[string]interface{}
}

// Edge is a directed, weighted connection From → To.
type Edge struct {
	From   int
	To     int
	Weight float64

	// Metadata stores arbitrary per-edge data; RemoveEdge/RestoreEdge keep it intact.
	Metadata map[string]interface{}
}

// Key returns the (From,To) key of the edge.
func (e *Edge) Key() EdgeKey { return EdgeKey{From: e.From, To: e.To} }

// clone returns a copy of e with a copied metadata map.
func (e *Edge) clone() *Edge {
	out := &Edge{From: e.From, To: e.To, Weight: e.Weight}
	if e.Metadata != nil {
		out.Metadata = make(map[string]interface{}, len(e.Metadata))
		for k, v := range e.Metadata {
			out.Metadata[k] = v
		}
	}

	return out
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithWeightKind sets what edge weights mean. Default is Unweighted.
func WithWeightKind(kind WeightKind) GraphOption {
	return func(g *Graph) { g.kind = kind }
}

// WithLoops permits self-loops.
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// EdgeOption configures an individual edge when it is added.
type EdgeOption func(*Edge)

// WithEdgeMetadata attaches a key/value pair to the new edge.
func WithEdgeMetadata(key string, value interface{}) EdgeOption {
	return func(e *Edge) {
		if e.Metadata == nil {
			e.Metadata = make(map[string]interface{})
		}
		e.Metadata[key] = value
	}
}

// Graph is a directed graph over int vertex ids with float64 edge weights.
//
// out[from][to] and in[to][from] point at the same *Edge so that forward and
// reverse lookups are O(1) and always agree.
type Graph struct {
	mu sync.RWMutex

	kind       WeightKind
	allowLoops bool

	vertices map[int]*Vertex
	out      map[int]map[int]*Edge
	in       map[int]map[int]*Edge
	edges    int
}

// NewGraph creates an empty Graph. By default it is unweighted without loops.
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices: make(map[int]*Vertex),
		out:      make(map[int]map[int]*Edge),
		in:       make(map[int]map[int]*Edge),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
