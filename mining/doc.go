// Package mining finds hard positive and hard negative pairs on a
// neighborhood graph built over a labeled dataset.
//
// Strategies (all satisfy Miner):
//
//   - CycleMiner: an edge (v,u) is a hard positive when it lies on a short
//     directed cycle, i.e. u reaches v back in few hops. Ordered pairs whose
//     geodesic distance exceeds a threshold are hard negatives.
//   - SpectralMiner: every vertex's ego-network is split in two by a
//     normalized spectral cut; edges touching the center that cross the cut
//     are hard candidates, scored by the cut's conductance.
//   - StrategySVM is recognised but not implemented.
//
// Result sizes are controlled by Limit (All or Top(k)); cycle lengths by
// Bound (Unbounded or AtMost(ell)). No magic -1 values.
//
// Session ties a dataset, its graph, the miners and the evaluator together
// and serialises calls. Miners never mutate the graph: the cycle check hides
// the tested edge with a core.EdgeMask instead of removing it.
//
// Observability: every public mining call opens an OpenTelemetry span and
// logs a summary through log/slog (component "mining.cycle", "mining.spectral"
// or "mining.session").
package mining
