// SPDX-License-Identifier: MIT
// Package: matrix
//
// index.go — VertexIndex, the id ↔ row mapping shared by all adapters.

package matrix

import "github.com/katalvlaran/hardmine/core"

// VertexIndex maps vertex ids to matrix rows in ascending id order.
type VertexIndex struct {
	ids []int
	pos map[int]int
}

// NewVertexIndex indexes the vertices of g.
func NewVertexIndex(g *core.Graph) *VertexIndex {
	return IndexOf(g.Vertices())
}

// IndexOf indexes ids in the given order.
func IndexOf(ids []int) *VertexIndex {
	idx := &VertexIndex{ids: append([]int(nil), ids...), pos: make(map[int]int, len(ids))}
	for i, id := range idx.ids {
		idx.pos[id] = i
	}

	return idx
}

// Len returns the number of indexed vertices.
func (x *VertexIndex) Len() int { return len(x.ids) }

// ID returns the vertex id of row i.
func (x *VertexIndex) ID(i int) int { return x.ids[i] }

// IDs returns a copy of the ids in row order.
func (x *VertexIndex) IDs() []int { return append([]int(nil), x.ids...) }

// Row returns the row of vertex id, or false if it is not indexed.
func (x *VertexIndex) Row(id int) (int, bool) {
	i, ok := x.pos[id]
	return i, ok
}
