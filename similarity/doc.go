// Package similarity converts Euclidean distances into affinities.
//
// Two independent transforms are provided:
//
//   - Reciprocal maps every edge weight of a distance-weighted graph through
//     w → 1/(w+1), producing a NEW similarity-weighted graph with weights in
//     (0, 1]. The input must be core.Distance; anything else is rejected, so
//     the transform is never applied twice.
//   - GaussianMatrix computes a dense N×N matrix S = exp(−D/σ) − I over the
//     whole dataset, where σ is the population standard deviation of the
//     distances above a cutoff, and those far distances get similarity 0.
//
// The builder package uses GaussianMatrix as the weight source of
// similarity-weighted kNN graphs.
package similarity
