// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Canonical dense APSP (Floyd–Warshall) implementation with deterministic loop order.
//   - In-place on a gonum *mat.Dense, O(n³) time, O(1) extra space.
//
// Contract:
//   - Square matrix; +Inf means “no path”; diagonal must be 0 before calling.

package matrix

import (
	"math"

	"github.com/katalvlaran/hardmine/core"
	"gonum.org/v1/gonum/mat"
)

const (
	opFloydWarshall = "FloydWarshall"
	opAllPairs      = "AllPairs"
)

// Distances returns the initial distance matrix of g: 0 on the diagonal, the
// edge weight (1 for unweighted graphs) where an edge exists and +Inf elsewhere.
// Self-loops never lower the diagonal below 0.
func Distances(g *core.Graph) (*VertexIndex, *mat.Dense, error) {
	if g == nil {
		return nil, nil, matrixErrorf(opDistances, ErrGraphNil)
	}
	idx := NewVertexIndex(g)
	n := idx.Len()
	if n == 0 {
		return idx, nil, nil
	}
	d := mat.NewDense(n, n, nil)
	inf := math.Inf(1)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i != j {
				d.Set(i, j, inf)
			}
		}
	}
	weighted := g.Weighted()
	for _, e := range g.Edges() {
		if e.From == e.To {
			continue
		}
		i, _ = idx.Row(e.From)
		j, _ = idx.Row(e.To)
		w := 1.0
		if weighted {
			w = e.Weight
		}
		d.Set(i, j, w)
	}

	return idx, d, nil
}

// FloydWarshall computes all-pairs shortest paths in-place on d.
//
// Contract:
//   - d must be square (n×n) with a zero diagonal and no NaN.
//   - +Inf denotes “no edge” off-diagonal.
//
// Determinism: loop order is fixed (k → i → j); only strict improvements are written.
// Complexity: Time O(n³), Extra space O(1).
func FloydWarshall(d *mat.Dense) error {
	r, c := d.Dims()
	if r != c {
		return matrixErrorf(opFloydWarshall, ErrNonSquare)
	}
	raw := d.RawMatrix()
	data, stride := raw.Data, raw.Stride
	n := r

	var i, j int
	for i = 0; i < n; i++ {
		if data[i*stride+i] != 0 {
			return matrixErrorf(opFloydWarshall, ErrNonZeroDiagonal)
		}
		for j = 0; j < n; j++ {
			if math.IsNaN(data[i*stride+j]) {
				return matrixErrorf(opFloydWarshall, ErrNaN)
			}
		}
	}

	var (
		k, baseK, baseI int
		ik, kj, cand    float64
	)
	for k = 0; k < n; k++ {
		baseK = k * stride
		for i = 0; i < n; i++ {
			baseI = i * stride
			ik = data[baseI+k]
			if math.IsInf(ik, 1) {
				continue // i cannot reach k
			}
			for j = 0; j < n; j++ {
				kj = data[baseK+j]
				if math.IsInf(kj, 1) {
					continue
				}
				cand = ik + kj
				if cand < data[baseI+j] {
					data[baseI+j] = cand
				}
			}
		}
	}

	return nil
}

// AllPairs returns the geodesic distance matrix of g (+Inf when unreachable).
func AllPairs(g *core.Graph) (*VertexIndex, *mat.Dense, error) {
	idx, d, err := Distances(g)
	if err != nil {
		return nil, nil, matrixErrorf(opAllPairs, err)
	}
	if d == nil {
		return idx, nil, nil
	}
	if err = FloydWarshall(d); err != nil {
		return nil, nil, matrixErrorf(opAllPairs, err)
	}

	return idx, d, nil
}
