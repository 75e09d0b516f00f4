// Package core provides the thread-safe, in-memory directed graph that the
// hardmine builders produce and the miners consume.
//
// The Graph G = (V,E) is specialised for similarity graphs over a dataset:
//
//   - Vertices are non-negative ints (row indices into the feature matrix).
//   - Edges are directed, at most one per ordered (from,to) pair.
//   - Edge weights are float64 and carry a single WeightKind tag per graph:
//     Unweighted (all weights zero), Distance, or Similarity. A graph is never
//     ambiguously both distance- and similarity-weighted.
//   - Self-loops are rejected unless the graph is built WithLoops().
//   - Edges may carry arbitrary metadata which survives RemoveEdge/RestoreEdge.
//   - Deterministic iteration: Vertices(), Edges(), Neighbors() are sorted.
//
// Configuration Options (GraphOption):
//
//	– WithWeightKind(kind)  Distance / Similarity / Unweighted (default).
//	– WithLoops()           permit from == to.
//
// Core Methods:
//
//	AddVertex(id) error                        // O(1)
//	AddEdge(from,to,w,opts...) error           // O(1)
//	RemoveEdge(from,to) (*Edge, error)         // O(1), returns the detached edge
//	RestoreEdge(e) error                       // O(1), re-attaches with original attributes
//	Edge(from,to) (*Edge, error)               // O(1), copy
//	Neighbors(id) ([]*Edge, error)             // O(d log d), sorted by To
//	Predecessors(id) ([]int, error)            // O(d log d)
//	Vertices() []int / Edges() []*Edge         // sorted snapshots
//	Clone() / InducedSubgraph(g, keep) / Reweighted(g, kind, fn)
//	Equal(a, b) bool                           // structural + weight equality
//
// Edge masks:
//
//	EdgeMask is an immutable-by-convention set of (from,to) keys that
//	traversal packages (bfs, dijkstra) treat as absent. It lets shortest-path
//	queries "remove" an edge without mutating the shared graph.
//
// Errors:
//
//	ErrBadVertexID         – negative vertex id.
//	ErrVertexNotFound      – missing vertex.
//	ErrEdgeNotFound        – missing edge.
//	ErrBadWeight           – NaN/negative weight, or non-zero weight on an unweighted graph.
//	ErrLoopNotAllowed      – self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed – second edge for the same ordered pair.
//	ErrNilEdge             – RestoreEdge(nil).
package core
