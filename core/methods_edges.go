// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/RestoreEdge/HasEdge/Edge/
//       Neighbors/Edges/EdgeCount.
// Determinism:
//   - Edges() is sorted by (From, To); Neighbors(id) by To.
// AI-HINT (file):
//   - Unweighted graphs MUST add edges with weight==0 (else ErrBadWeight).
//   - RemoveEdge returns the detached *Edge; pass it to RestoreEdge to put it back
//     with weight and metadata untouched.
//   - Read queries hand out copies; mutating them never affects the graph.

package core

import (
	"fmt"
	"math"
	"sort"
)

// AddEdge creates the directed edge from → to with the given weight.
// Missing endpoints are created.
//
// Returns ErrBadVertexID, ErrBadWeight, ErrLoopNotAllowed or ErrMultiEdgeNotAllowed.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to int, weight float64, opts ...EdgeOption) error {
	if from < 0 || to < 0 {
		return fmt.Errorf("AddEdge(%d,%d): %w", from, to, ErrBadVertexID)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.checkWeight(weight); err != nil {
		return fmt.Errorf("AddEdge(%d,%d): %w", from, to, err)
	}
	if from == to && !g.allowLoops {
		return fmt.Errorf("AddEdge(%d,%d): %w", from, to, ErrLoopNotAllowed)
	}
	if _, dup := g.out[from][to]; dup {
		return fmt.Errorf("AddEdge(%d,%d): %w", from, to, ErrMultiEdgeNotAllowed)
	}

	e := &Edge{From: from, To: to, Weight: weight}
	for _, opt := range opts {
		opt(e)
	}
	g.attach(e)

	return nil
}

// checkWeight validates w against the graph's weight kind. Caller holds a lock.
func (g *Graph) checkWeight(w float64) error {
	if math.IsNaN(w) || w < 0 {
		return fmt.Errorf("weight %v: %w", w, ErrBadWeight)
	}
	if g.kind == Unweighted && w != 0 {
		return fmt.Errorf("weight %v on unweighted graph: %w", w, ErrBadWeight)
	}

	return nil
}

// attach wires e into both adjacency indexes. Caller holds the write lock.
func (g *Graph) attach(e *Edge) {
	g.ensureVertex(e.From)
	g.ensureVertex(e.To)
	g.out[e.From][e.To] = e
	g.in[e.To][e.From] = e
	g.edges++
}

// RemoveEdge detaches from → to and returns it unchanged.
// Returns ErrEdgeNotFound if the edge is absent.
// Complexity: O(1).
func (g *Graph) RemoveEdge(from, to int) (*Edge, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	e, ok := g.out[from][to]
	if !ok {
		return nil, fmt.Errorf("RemoveEdge(%d,%d): %w", from, to, ErrEdgeNotFound)
	}
	delete(g.out[from], to)
	delete(g.in[to], from)
	g.edges--

	return e, nil
}

// RestoreEdge re-attaches an edge previously returned by RemoveEdge, keeping
// its weight and metadata exactly. Endpoints are created if needed.
//
// Returns ErrNilEdge, ErrBadVertexID, ErrLoopNotAllowed or ErrMultiEdgeNotAllowed.
func (g *Graph) RestoreEdge(e *Edge) error {
	if e == nil {
		return ErrNilEdge
	}
	if e.From < 0 || e.To < 0 {
		return fmt.Errorf("RestoreEdge(%d,%d): %w", e.From, e.To, ErrBadVertexID)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if e.From == e.To && !g.allowLoops {
		return fmt.Errorf("RestoreEdge(%d,%d): %w", e.From, e.To, ErrLoopNotAllowed)
	}
	if _, dup := g.out[e.From][e.To]; dup {
		return fmt.Errorf("RestoreEdge(%d,%d): %w", e.From, e.To, ErrMultiEdgeNotAllowed)
	}
	g.attach(e)

	return nil
}

// HasEdge reports whether from → to exists.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.out[from][to]

	return ok
}

// Edge returns a copy of from → to, or ErrEdgeNotFound.
func (g *Graph) Edge(from, to int) (*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	e, ok := g.out[from][to]
	if !ok {
		return nil, fmt.Errorf("Edge(%d,%d): %w", from, to, ErrEdgeNotFound)
	}

	return e.clone(), nil
}

// Weight returns the weight of from → to, or ErrEdgeNotFound.
func (g *Graph) Weight(from, to int) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	e, ok := g.out[from][to]
	if !ok {
		return 0, fmt.Errorf("Weight(%d,%d): %w", from, to, ErrEdgeNotFound)
	}

	return e.Weight, nil
}

// Neighbors returns copies of id's outgoing edges sorted by To.
// Returns ErrVertexNotFound if id is absent.
// Complexity: O(d log d).
func (g *Graph) Neighbors(id int) ([]*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	nbrs, ok := g.out[id]
	if !ok {
		return nil, fmt.Errorf("Neighbors(%d): %w", id, ErrVertexNotFound)
	}
	out := make([]*Edge, 0, len(nbrs))
	for _, to := range sortedKeys(nbrs) {
		out = append(out, nbrs[to].clone())
	}

	return out, nil
}

// Edges returns copies of all edges sorted by (From, To).
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	out := make([]*Edge, 0, g.edges)
	for _, nbrs := range g.out {
		for _, e := range nbrs {
			out = append(out, e.clone())
		}
	}
	g.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges
}
