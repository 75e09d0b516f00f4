// Package config describes a complete mining session as a YAML document.
//
// Example:
//
//	graph:
//	  k: 5
//	  weighted: true
//	  similarity: false
//	  transform: reciprocal   # "", "none" or "reciprocal"
//	cycle:
//	  ell: 2                  # omit for unbounded cycles
//	  threshold: 3.5          # omit for the mean geodesic distance
//	  apsp: dijkstra          # or floyd-warshall
//	  label_filter: false
//	spectral:
//	  ego_radius: 1
//	  workers: 0              # 0 = GOMAXPROCS
//	evaluator:
//	  ridge: 1.0e-6
//	ranking:
//	  metric: euclidean
//	  cache_size: 4096
//	seed: 1
//
// Absent keys keep their Default() values; unknown keys are rejected.
package config
