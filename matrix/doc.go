// Package matrix converts core graphs into dense gonum matrices and runs
// dense all-pairs shortest paths.
//
// What:
//
//   - VertexIndex: stable bijection between vertex ids and matrix rows
//     (ascending id order).
//   - Adjacency:    A[i][j] = weight of i→j (1 for unweighted graphs), 0 if absent.
//   - Affinity:     symmetric (A + Aᵀ)/2, the input of spectral clustering.
//   - Distances:    0 on the diagonal, edge weight where an edge exists, +Inf elsewhere.
//   - FloydWarshall: in-place APSP closure with the fixed k → i → j loop order.
//   - AllPairs:     Distances followed by FloydWarshall.
//
// Determinism: rows follow ascending vertex id, loops run in a fixed order.
//
// Errors: ErrGraphNil, ErrNonSquare, ErrNonZeroDiagonal, ErrNaN. Callers
// branch with errors.Is.
package matrix
