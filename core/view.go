// SPDX-License-Identifier: MIT
//
// File: view.go
// Role: Non-mutating graph views (cloning topology with altered properties).
// AI-HINT (file):
//   - Views do NOT mutate the input Graph.
//   - Reweighted returns a graph of a new WeightKind with every weight mapped by fn.
//   - InducedSubgraph keeps only vertices in 'keep' and edges with both endpoints kept.

package core

import (
	"fmt"
	"math"
)

// Reweighted returns a copy of g tagged with kind whose edge weights are fn(edge).
// Metadata is copied. Returns ErrBadWeight if fn yields an invalid weight for kind.
//
// Complexity: O(V + E). Concurrency: read lock on source.
func Reweighted(g *Graph, kind WeightKind, fn func(e *Edge) float64) (*Graph, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := g.cloneEmptyLocked(kind)
	for _, nbrs := range g.out {
		for _, e := range nbrs {
			ne := e.clone()
			ne.Weight = fn(e)
			if err := out.checkWeight(ne.Weight); err != nil {
				return nil, fmt.Errorf("Reweighted(%d,%d): %w", e.From, e.To, err)
			}
			out.attach(ne)
		}
	}

	return out, nil
}

// InducedSubgraph returns the subgraph induced by the vertices v with keep[v] true.
// Vertex ids are preserved.
//
// Complexity: O(V + E). Concurrency: read lock on source.
func InducedSubgraph(g *Graph, keep map[int]bool) *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	opts := []GraphOption{WithWeightKind(g.kind)}
	if g.allowLoops {
		opts = append(opts, WithLoops())
	}
	out := NewGraph(opts...)
	for id, v := range g.vertices {
		if keep[id] {
			out.vertices[id] = &Vertex{ID: v.ID, Metadata: v.Metadata}
			out.out[id] = make(map[int]*Edge)
			out.in[id] = make(map[int]*Edge)
		}
	}
	for from, nbrs := range g.out {
		if !keep[from] {
			continue
		}
		for to, e := range nbrs {
			if keep[to] {
				out.attach(e.clone())
			}
		}
	}

	return out
}

// Equal reports whether a and b have the same kind, vertex set, edge set and
// weights (within tol; tol ≤ 0 means exact). Edge metadata is compared by key
// presence and value equality for comparable values.
func Equal(a, b *Graph, tol float64) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	a.mu.RLock()
	defer a.mu.RUnlock()
	b.mu.RLock()
	defer b.mu.RUnlock()

	if a.kind != b.kind || len(a.vertices) != len(b.vertices) || a.edges != b.edges {
		return false
	}
	for id := range a.vertices {
		if _, ok := b.vertices[id]; !ok {
			return false
		}
	}
	for from, nbrs := range a.out {
		for to, ea := range nbrs {
			eb, ok := b.out[from][to]
			if !ok {
				return false
			}
			if tol <= 0 && ea.Weight != eb.Weight {
				return false
			}
			if tol > 0 && math.Abs(ea.Weight-eb.Weight) > tol {
				return false
			}
			if !sameMetadata(ea.Metadata, eb.Metadata) {
				return false
			}
		}
	}

	return true
}

func sameMetadata(a, b map[string]interface{}) bool {
	if len(a) != len(b) {
		return false
	}
	for k, va := range a {
		vb, ok := b[k]
		if !ok || !safeEqual(va, vb) {
			return false
		}
	}

	return true
}

// safeEqual compares interface values without panicking on uncomparable types.
func safeEqual(a, b interface{}) (eq bool) {
	defer func() {
		if recover() != nil {
			eq = false
		}
	}()

	return a == b
}
