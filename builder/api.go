// SPDX-License-Identifier: MIT
// Package: hardmine/builder
//
// api.go — public constructors KNN and EpsilonBall.
//
// Both share one orchestrator (build): validate, resolve config, create the
// graph with every row as a vertex, compute the neighbor lists, then weight
// each edge according to the configured weighting.

package builder

import (
	"math"
	"sort"

	"github.com/katalvlaran/hardmine/core"
	"github.com/katalvlaran/hardmine/dataset"
	"github.com/katalvlaran/hardmine/similarity"
	"gonum.org/v1/gonum/mat"
)

// neighborFn returns the ordered out-neighbors of row v.
type neighborFn func(v int) []int

// KNN returns the directed k-nearest-neighbor graph of ds.
//
// Contract:
//   - 1 ≤ k < ds.Len(), otherwise ErrBadNeighborCount.
//   - Vertex v gets exactly k out-edges to its nearest other rows; ties in
//     distance go to the lower row index.
//
// Complexity: O(N²·(d + log N)) time, O(N) extra space per row (O(N²) with
// WithSimilarity for the similarity matrix).
func KNN(ds *dataset.Dataset, k int, opts ...BuilderOption) (*core.Graph, error) {
	if ds == nil {
		return nil, builderErrorf(MethodKNN, ErrNilDataset, "nil input")
	}
	if n := ds.Len(); k < 1 || k >= n {
		return nil, builderErrorf(MethodKNN, ErrBadNeighborCount, "k=%d with N=%d", k, n)
	}

	return build(MethodKNN, ds, newBuilderConfig(opts...), func(v int) []int {
		return nearest(ds, v, k)
	})
}

// EpsilonBall returns the symmetric graph linking every pair (v,u), v ≠ u,
// with distance(v,u) ≤ eps. Both directions are stored.
//
// Complexity: O(N²·d) time.
func EpsilonBall(ds *dataset.Dataset, eps float64, opts ...BuilderOption) (*core.Graph, error) {
	if ds == nil {
		return nil, builderErrorf(MethodEpsilonBall, ErrNilDataset, "nil input")
	}
	if math.IsNaN(eps) || eps < 0 {
		return nil, builderErrorf(MethodEpsilonBall, ErrBadEpsilon, "eps=%v", eps)
	}

	return build(MethodEpsilonBall, ds, newBuilderConfig(opts...), func(v int) []int {
		var out []int
		for u := 0; u < ds.Len(); u++ {
			if u != v && ds.Distance(v, u) <= eps {
				out = append(out, u)
			}
		}
		return out
	})
}

// build is the shared orchestrator of all constructors.
func build(method string, ds *dataset.Dataset, cfg builderConfig, neighbors neighborFn) (*core.Graph, error) {
	var sim *mat.SymDense
	if cfg.weighting == weightSimilarity {
		var err error
		if sim, err = similarity.GaussianMatrix(ds, cfg.simOpts...); err != nil {
			return nil, builderErrorf(method, err, "similarity weights")
		}
	}

	g := core.NewGraph(core.WithWeightKind(cfg.kind()))
	n := ds.Len()
	var v int
	for v = 0; v < n; v++ {
		if err := g.AddVertex(v); err != nil {
			return nil, builderErrorf(method, err, "AddVertex(%d)", v)
		}
	}
	for v = 0; v < n; v++ {
		for _, u := range neighbors(v) {
			var w float64
			switch cfg.weighting {
			case weightDistance:
				w = ds.Distance(v, u)
			case weightSimilarity:
				w = sim.At(v, u)
			}
			if err := g.AddEdge(v, u, w); err != nil {
				return nil, builderErrorf(method, err, "AddEdge(%d,%d)", v, u)
			}
		}
	}

	return g, nil
}

// nearest returns the k rows closest to v (excluding v), nearest first.
func nearest(ds *dataset.Dataset, v, k int) []int {
	type cand struct {
		id   int
		dist float64
	}
	n := ds.Len()
	cands := make([]cand, 0, n-1)
	for u := 0; u < n; u++ {
		if u != v {
			cands = append(cands, cand{id: u, dist: ds.Distance(v, u)})
		}
	}
	// candidates are generated in ascending id, so a stable sort keeps ties by id
	sort.SliceStable(cands, func(i, j int) bool { return cands[i].dist < cands[j].dist })

	out := make([]int, k)
	for i := 0; i < k; i++ {
		out[i] = cands[i].id
	}

	return out
}
