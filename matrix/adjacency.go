// SPDX-License-Identifier: MIT
// Package: matrix
//
// adjacency.go — dense adjacency and affinity views of a core.Graph.
//
// Contract:
//   • Weighted graphs contribute their edge weights; unweighted graphs 1.
//   • Missing edges are 0; the diagonal is 0 unless the graph has loops.
//   • Complexity O(V² + E) time and space.

package matrix

import (
	"github.com/katalvlaran/hardmine/core"
	"gonum.org/v1/gonum/mat"
)

const (
	opAdjacency = "Adjacency"
	opAffinity  = "Affinity"
	opDistances = "Distances"
)

// Adjacency returns the directed adjacency matrix of g.
func Adjacency(g *core.Graph) (*VertexIndex, *mat.Dense, error) {
	if g == nil {
		return nil, nil, matrixErrorf(opAdjacency, ErrGraphNil)
	}
	idx := NewVertexIndex(g)
	n := idx.Len()
	if n == 0 {
		return idx, nil, nil
	}
	a := mat.NewDense(n, n, nil)
	weighted := g.Weighted()
	for _, e := range g.Edges() {
		i, _ := idx.Row(e.From)
		j, _ := idx.Row(e.To)
		w := 1.0
		if weighted {
			w = e.Weight
		}
		a.Set(i, j, w)
	}

	return idx, a, nil
}

// Affinity returns the symmetrized adjacency (A + Aᵀ)/2 of g.
// A mutual pair keeps the mean of both weights, a one-way edge half its weight.
func Affinity(g *core.Graph) (*VertexIndex, *mat.SymDense, error) {
	idx, a, err := Adjacency(g)
	if err != nil {
		return nil, nil, matrixErrorf(opAffinity, err)
	}
	if a == nil {
		return idx, nil, nil
	}
	n := idx.Len()
	s := mat.NewSymDense(n, nil)
	var i, j int
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			s.SetSym(i, j, (a.At(i, j)+a.At(j, i))/2)
		}
	}

	return idx, s, nil
}
