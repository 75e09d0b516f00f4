// Package bfs provides breadth-first search over a core.Graph, returning
// hop-count distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing hop distance from a start vertex,
//     following edges in their stored direction (from → to).
//   - Returns a BFSResult containing Order, Depth and Parent.
//   - Honors a depth limit (WithMaxDepth), an edge mask (WithEdgeMask), an
//     arbitrary neighbor filter (WithFilterNeighbor), an early-exit target
//     (WithTarget) and a cancellation context (WithContext).
//   - Edge weights are ignored: every edge counts as one hop, whatever the
//     graph's WeightKind.
//
// Why
//
//   - Ego-networks: all vertices within r hops of a center are exactly the
//     BFS tree truncated at depth r.
//   - Shortest cycle through an edge v→u: one plus the hop distance from u
//     back to v with v→u masked out (see HopDistance).
//
// Determinism
//
//	core.Graph.NeighborIDs returns ascending ids and BFS enqueues neighbors
//	in that order, so the visit sequence is fully reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, 0, bfs.WithMaxDepth(2))
//	d, ok, err := bfs.HopDistance(g, u, v, bfs.WithEdgeMask(core.NewEdgeMask(core.EdgeKey{From: v, To: u})))
package bfs
