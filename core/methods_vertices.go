// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex lifecycle and vertex-centric queries.
// Determinism:
//   - Vertices(), NeighborIDs(), Predecessors() return ascending ids.

package core

import (
	"fmt"
	"sort"
)

// AddVertex inserts vertex id. Adding an existing vertex is a no-op.
// Returns ErrBadVertexID for negative ids.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id int) error {
	if id < 0 {
		return fmt.Errorf("AddVertex(%d): %w", id, ErrBadVertexID)
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.ensureVertex(id)

	return nil
}

// ensureVertex inserts id if absent. Caller holds the write lock.
func (g *Graph) ensureVertex(id int) {
	if _, ok := g.vertices[id]; ok {
		return
	}
	g.vertices[id] = &Vertex{ID: id, Metadata: make(map[string]interface{})}
	g.out[id] = make(map[int]*Edge)
	g.in[id] = make(map[int]*Edge)
}

// HasVertex reports whether id exists.
func (g *Graph) HasVertex(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// Vertices returns all vertex ids in ascending order.
// Complexity: O(V log V).
func (g *Graph) Vertices() []int {
	g.mu.RLock()
	ids := make([]int, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	g.mu.RUnlock()
	sort.Ints(ids)

	return ids
}

// NeighborIDs returns the heads of id's outgoing edges in ascending order.
// Returns ErrVertexNotFound if id is absent.
func (g *Graph) NeighborIDs(id int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	nbrs, ok := g.out[id]
	if !ok {
		return nil, fmt.Errorf("NeighborIDs(%d): %w", id, ErrVertexNotFound)
	}

	return sortedKeys(nbrs), nil
}

// Predecessors returns the tails of id's incoming edges in ascending order.
func (g *Graph) Predecessors(id int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	preds, ok := g.in[id]
	if !ok {
		return nil, fmt.Errorf("Predecessors(%d): %w", id, ErrVertexNotFound)
	}

	return sortedKeys(preds), nil
}

// Degree returns the in- and out-degree of id.
func (g *Graph) Degree(id int) (in, out int, err error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return 0, 0, fmt.Errorf("Degree(%d): %w", id, ErrVertexNotFound)
	}

	return len(g.in[id]), len(g.out[id]), nil
}

func sortedKeys(m map[int]*Edge) []int {
	ids := make([]int, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return ids
}
