// Package dijkstra implements Dijkstra's single-source shortest paths and an
// all-pairs driver over a core.Graph with non-negative float64 weights.
//
// Overview:
//
//   - Dijkstra computes geodesic (weighted shortest-path) distances from one
//     source to every vertex in O((V + E) log V) using a lazy min-heap.
//   - AllPairs runs Dijkstra from every vertex and returns a dense V×V gonum
//     matrix, which is what geodesic hard-negative mining needs on sparse kNN
//     graphs (V·(V+E) log V beats the V³ of Floyd–Warshall when E = O(V)).
//   - Unreachable vertices have distance +Inf; "no path" is never an error.
//
// Key features (functional options):
//
//   - Source(id):            the start vertex (required for Dijkstra).
//   - WithReturnPath():      also return the predecessor map.
//   - WithMaxDistance(x):    stop expanding beyond distance x.
//   - WithInfEdgeThreshold:  treat edges with weight ≥ t as impassable.
//   - WithEdgeMask(m):       treat masked edges as absent (no graph mutation).
//   - WithUnitWeights():     every edge costs 1 (hop distances); required for
//     unweighted graphs, optional otherwise.
//   - WithContext(ctx):      cancellation, checked once per heap pop.
//
// Error handling (sentinel errors):
//
//   - ErrNoSource, ErrNilGraph, ErrUnweightedGraph, ErrVertexNotFound.
//   - ErrBadMaxDistance / ErrBadInfThreshold for invalid option values; these
//     are recorded by the option and returned by the call (never panics). Both
//     also match dataset.ErrInvalidArgument.
package dijkstra
