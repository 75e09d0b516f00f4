package core_test

import (
	"testing"

	"github.com/katalvlaran/hardmine/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClone_IsDeep(t *testing.T) {
	g := buildSquare(t)
	c := g.Clone()
	require.True(t, core.Equal(g, c, 0))

	_, err := c.RemoveEdge(0, 1)
	require.NoError(t, err)
	assert.True(t, g.HasEdge(0, 1), "source untouched")

	empty := g.CloneEmpty()
	assert.Equal(t, 4, empty.VertexCount())
	assert.Equal(t, 0, empty.EdgeCount())
	assert.Equal(t, core.Distance, empty.Kind())
}

func TestReweighted(t *testing.T) {
	g := buildSquare(t)
	sim, err := core.Reweighted(g, core.Similarity, func(e *core.Edge) float64 {
		return 1 / (e.Weight + 1)
	})
	require.NoError(t, err)
	assert.Equal(t, core.Similarity, sim.Kind())
	w, err := sim.Weight(3, 0)
	require.NoError(t, err)
	assert.InDelta(t, 0.2, w, 1e-12)

	src, err := g.Weight(3, 0)
	require.NoError(t, err)
	assert.Equal(t, 4.0, src, "source weights unchanged")

	_, err = core.Reweighted(g, core.Distance, func(*core.Edge) float64 { return -1 })
	require.ErrorIs(t, err, core.ErrBadWeight)
}

func TestInducedSubgraph(t *testing.T) {
	g := buildSquare(t)
	sub := core.InducedSubgraph(g, map[int]bool{0: true, 1: true, 2: true})
	assert.Equal(t, []int{0, 1, 2}, sub.Vertices())
	assert.Equal(t, 3, sub.EdgeCount()) // 0→1, 1→2, 0→2
	assert.False(t, sub.HasEdge(2, 3))
	assert.Equal(t, core.Distance, sub.Kind())
}

func TestEqual(t *testing.T) {
	a := buildSquare(t)
	b := buildSquare(t)
	assert.True(t, core.Equal(a, b, 0))
	assert.True(t, core.Equal(a, a, 0))
	assert.False(t, core.Equal(a, nil, 0))

	c := core.NewGraph(core.WithWeightKind(core.Distance))
	require.NoError(t, c.AddEdge(0, 1, 1.0000001))
	d := core.NewGraph(core.WithWeightKind(core.Distance))
	require.NoError(t, d.AddEdge(0, 1, 1))
	assert.False(t, core.Equal(c, d, 0))
	assert.True(t, core.Equal(c, d, 1e-3))
}
