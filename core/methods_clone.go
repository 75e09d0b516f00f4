// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Cloning graph instances.
// Concurrency:
//   - Read lock on the source; the clone is a fresh, unshared instance.

package core

// CloneEmpty returns a graph with the same configuration and vertices but no edges.
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.cloneEmptyLocked(g.kind)
}

// cloneEmptyLocked copies flags (with the given kind) and vertices. Caller holds a read lock.
func (g *Graph) cloneEmptyLocked(kind WeightKind) *Graph {
	opts := []GraphOption{WithWeightKind(kind)}
	if g.allowLoops {
		opts = append(opts, WithLoops())
	}
	clone := NewGraph(opts...)
	for id, v := range g.vertices {
		clone.vertices[id] = &Vertex{ID: v.ID, Metadata: v.Metadata}
		clone.out[id] = make(map[int]*Edge)
		clone.in[id] = make(map[int]*Edge)
	}

	return clone
}

// Clone returns a deep copy: configuration, vertices, edges and edge metadata maps.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := g.cloneEmptyLocked(g.kind)
	for _, nbrs := range g.out {
		for _, e := range nbrs {
			clone.attach(e.clone())
		}
	}

	return clone
}
