// Package hardmine mines hard example pairs from a labelled dataset by
// looking at the shape of its k-nearest-neighbour graph.
//
// 🚀 What is in the box?
//
//	• Dataset: row-major features + labels, pair kinds, cached distances
//	• Graphs: directed kNN / ε-ball graphs, distance or similarity weights
//	• Traversals & paths: hop-bounded BFS, Dijkstra, Floyd–Warshall APSP
//	• Cycle miner: positives on short cycles, negatives beyond a geodesic threshold
//	• Spectral miner: conductance-scored 2-way cuts of every ego network
//	• Evaluator: class-conditional Gaussians over |x_v − x_u| pair differences
//	• Config: one YAML document describes a whole mining session
//
// Packages:
//
//	dataset/    — Dataset, Pair, PairKind, DistanceCache
//	core/       — thread-safe Graph, weight kinds, edge masks
//	builder/    — KNN and EpsilonBall graph construction
//	similarity/ — Gaussian kernel weights, reciprocal transform
//	bfs/        — breadth-first search with depth limits and masks
//	dijkstra/   — single-source and all-pairs shortest paths
//	matrix/     — adjacency / affinity views, Floyd–Warshall
//	spectral/   — normalized-Laplacian partitions and conductance
//	mining/     — Ranker, CycleMiner, SpectralMiner, Session
//	evaluator/  — Gaussian pair-hardness evaluator
//	config/     — YAML session configuration
//
// Quick start:
//
//	ds, _ := dataset.New(x, labels)
//	g, _ := builder.KNN(ds, 5)
//	s, _ := mining.NewSession(ds, g)
//	report, _ := s.Run(ctx, mining.StrategyCycle, mining.Top(100))
//
//	go get github.com/katalvlaran/hardmine
package hardmine
