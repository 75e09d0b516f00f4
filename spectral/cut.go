package spectral

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/hardmine/core"
	"github.com/katalvlaran/hardmine/dataset"
	"github.com/katalvlaran/hardmine/matrix"
)

// ErrDegenerateEgoNetwork indicates a graph with no meaningful two-way cut:
// fewer than 2 vertices, or no affinity at all.
var ErrDegenerateEgoNetwork = errors.New("spectral: degenerate graph, no two-way cut")

// Cut is a two-way vertex partition. Both sides are sorted ascending.
type Cut struct {
	A, B []int
}

// Side reports which side id is on: 0 for A, 1 for B, -1 if absent.
func (c Cut) Side(id int) int {
	for _, v := range c.A {
		if v == id {
			return 0
		}
	}
	for _, v := range c.B {
		if v == id {
			return 1
		}
	}

	return -1
}

// Crosses reports whether v and u lie on different sides of the cut.
func (c Cut) Crosses(v, u int) bool {
	sv, su := c.Side(v), c.Side(u)
	return sv >= 0 && su >= 0 && sv != su
}

// Conductance returns φ(a, b) on the symmetrized affinity of g. Volumes are
// weighted degrees in g. If exactly one side has zero volume the cut is empty
// too and φ is 0.
//
// Errors: ErrInvalidArgument for a nil graph, an empty side, an unknown vertex
// or a vertex on both sides; ErrDegenerateEgoNetwork when both sides have zero
// volume (φ would be 0/0).
// Complexity: O(V² + E).
func Conductance(g *core.Graph, a, b []int) (float64, error) {
	if g == nil {
		return 0, fmt.Errorf("spectral: Conductance(nil graph): %w", dataset.ErrInvalidArgument)
	}
	if len(a) == 0 || len(b) == 0 {
		return 0, fmt.Errorf("spectral: Conductance needs two non-empty sides: %w", dataset.ErrInvalidArgument)
	}
	idx, s, err := matrix.Affinity(g)
	if err != nil {
		return 0, fmt.Errorf("spectral: Conductance: %w", err)
	}

	side := make(map[int]int, len(a)+len(b))
	for k, set := range [][]int{a, b} {
		for _, id := range set {
			if _, ok := idx.Row(id); !ok {
				return 0, fmt.Errorf("spectral: Conductance: vertex %d: %w: %w",
					id, core.ErrVertexNotFound, dataset.ErrInvalidArgument)
			}
			if prev, dup := side[id]; dup && prev != k {
				return 0, fmt.Errorf("spectral: Conductance: vertex %d on both sides: %w", id, dataset.ErrInvalidArgument)
			}
			side[id] = k
		}
	}

	n := idx.Len()
	var cut, volA, volB float64
	var i, j int
	for i = 0; i < n; i++ {
		si, inI := side[idx.ID(i)]
		if !inI {
			continue
		}
		for j = 0; j < n; j++ {
			w := s.At(i, j)
			if si == 0 {
				volA += w
			} else {
				volB += w
			}
			if sj, inJ := side[idx.ID(j)]; inJ && si == 0 && sj == 1 {
				cut += w
			}
		}
	}

	if volA+volB == 0 {
		return 0, fmt.Errorf("spectral: Conductance: zero total affinity: %w", ErrDegenerateEgoNetwork)
	}
	den := math.Min(volA, volB)
	if den == 0 {
		return 0, nil
	}

	return cut / den, nil
}
