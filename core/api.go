// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only getters over graph configuration and a Stats snapshot.
// Policy:
//   - No algorithms or hidden state here.
//   - Every exported function documents its locking strategy.

package core

// Kind reports what the graph's edge weights mean.
// Complexity: O(1). Takes the read lock.
func (g *Graph) Kind() WeightKind {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.kind
}

// Weighted reports whether edges carry meaningful (non-zero) weights.
func (g *Graph) Weighted() bool { return g.Kind() != Unweighted }

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowLoops
}

// GraphStats is a point-in-time summary of a graph.
type GraphStats struct {
	Kind         WeightKind
	AllowsLoops  bool
	VertexCount  int
	EdgeCount    int
	MaxOutDegree int
	// MutualPairs counts unordered pairs {u,v} with both u→v and v→u present.
	MutualPairs int
}

// Stats returns a deterministic summary of flags and sizes.
// Complexity: O(V+E). Takes the read lock once.
func (g *Graph) Stats() *GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		Kind:        g.kind,
		AllowsLoops: g.allowLoops,
		VertexCount: len(g.vertices),
		EdgeCount:   g.edges,
	}
	for from, nbrs := range g.out {
		if len(nbrs) > stats.MaxOutDegree {
			stats.MaxOutDegree = len(nbrs)
		}
		for to := range nbrs {
			// count each mutual pair once, from its smaller endpoint
			if from < to {
				if _, ok := g.out[to][from]; ok {
					stats.MutualPairs++
				}
			}
		}
	}

	return &stats
}
