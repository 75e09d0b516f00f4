// SPDX-License-Identifier: MIT
//
// File: mask.go
// Role: EdgeMask, a set of edges that traversals must treat as absent.
// AI-HINT (file):
//   - Build a mask once, pass it to bfs.WithEdgeMask / dijkstra.WithEdgeMask.
//   - A nil mask masks nothing; Masked on nil is safe.

package core

// EdgeKey identifies a directed edge by its endpoints.
type EdgeKey struct {
	From int
	To   int
}

// EdgeMask is a set of directed edges hidden from a traversal.
type EdgeMask map[EdgeKey]struct{}

// NewEdgeMask returns a mask hiding the given edges.
func NewEdgeMask(keys ...EdgeKey) EdgeMask {
	m := make(EdgeMask, len(keys))
	for _, k := range keys {
		m[k] = struct{}{}
	}

	return m
}

// Masked reports whether from → to is hidden.
func (m EdgeMask) Masked(from, to int) bool {
	if m == nil {
		return false
	}
	_, ok := m[EdgeKey{From: from, To: to}]

	return ok
}

// Len returns the number of hidden edges.
func (m EdgeMask) Len() int { return len(m) }
