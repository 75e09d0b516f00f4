// Package builder constructs neighborhood graphs over a dataset.Dataset.
//
// The package offers two constructors:
//
//   - KNN(ds, k, opts...): a DIRECTED graph where each row v has an edge to
//     each of its k nearest other rows under Euclidean distance. kNN is not
//     symmetric, so (v,u) may exist without (u,v).
//   - EpsilonBall(ds, eps, opts...): a symmetric graph (both directions stored)
//     connecting every pair at distance ≤ eps.
//
// Edge weights are chosen by options (last option wins):
//
//   - default:          Euclidean distance, graph kind core.Distance.
//   - WithUnweighted(): weight 0, graph kind core.Unweighted.
//   - WithSimilarity(): weights read from similarity.GaussianMatrix, graph
//     kind core.Similarity. Extra similarity options are forwarded.
//
// Guarantees:
//
//   - Every row is a vertex (ids 0..N−1), even if it ends up isolated.
//   - No self-loops, no duplicate edges; out-degree is exactly k in KNN.
//   - Deterministic: equal distances are broken by the lower row index.
//   - The dataset is never mutated.
//
// Errors wrap dataset.ErrInvalidArgument (k outside [1, N−1], eps < 0 or NaN,
// nil dataset, invalid similarity options). Options never panic.
package builder
