// Package spectral splits small graphs in two and scores the split.
//
// Partition runs normalized spectral clustering with two clusters:
//
//  1. Symmetrize the graph into an affinity matrix S = (A + Aᵀ)/2.
//  2. Build L = I − D^{-1/2} S D^{-1/2} (rows of zero-degree vertices are left
//     as identity rows).
//  3. Embed each vertex with the eigenvectors of the two smallest eigenvalues
//     (gonum mat.EigenSym), row-normalized.
//  4. Run a deterministic 2-means on the embedding: the first center is the
//     lowest-id vertex, the second the point farthest from it.
//  5. If a cluster ends up empty, split instead at the largest gap of the
//     sorted Fiedler vector.
//
// The returned Cut always has two non-empty sides; side A holds the lowest
// vertex id. Conductance scores any two-way split as
//
//	φ(A,B) = cut(A,B) / min(vol(A), vol(B))
//
// with cut and vol measured on the same symmetrized affinity. Lower is a
// cleaner separation. φ is symmetric in A and B.
//
// Graphs with fewer than two vertices have no two-way cut and yield
// ErrDegenerateEgoNetwork.
package spectral
