package spectral_test

import (
	"testing"

	"github.com/katalvlaran/hardmine/core"
	"github.com/katalvlaran/hardmine/dataset"
	"github.com/katalvlaran/hardmine/spectral"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// twoTriangles: {0,1,2} and {3,4,5} fully linked both ways, one weak 2→3 bridge.
func twoTriangles(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithWeightKind(core.Similarity))
	for _, tri := range [][3]int{{0, 1, 2}, {3, 4, 5}} {
		for _, v := range tri {
			for _, u := range tri {
				if v != u {
					require.NoError(t, g.AddEdge(v, u, 1))
				}
			}
		}
	}
	require.NoError(t, g.AddEdge(2, 3, 0.1))
	return g
}

func TestPartition_TwoTriangles(t *testing.T) {
	cut, err := spectral.Partition(twoTriangles(t))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, cut.A)
	assert.Equal(t, []int{3, 4, 5}, cut.B)
	assert.True(t, cut.Crosses(2, 3))
	assert.False(t, cut.Crosses(0, 2))
	assert.Equal(t, -1, cut.Side(42))
}

func TestPartition_Deterministic(t *testing.T) {
	g := twoTriangles(t)
	first, err := spectral.Partition(g)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := spectral.Partition(g)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestPartition_Pair(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(7, 9, 0))
	cut, err := spectral.Partition(g)
	require.NoError(t, err)
	assert.Equal(t, []int{7}, cut.A)
	assert.Equal(t, []int{9}, cut.B)
}

func TestPartition_AlwaysTwoSides(t *testing.T) {
	// isolated vertices only: no affinity at all
	g := core.NewGraph(core.WithWeightKind(core.Similarity))
	for v := 0; v < 4; v++ {
		require.NoError(t, g.AddVertex(v))
	}
	cut, err := spectral.Partition(g)
	require.NoError(t, err)
	assert.NotEmpty(t, cut.A)
	assert.NotEmpty(t, cut.B)
	assert.Equal(t, 4, len(cut.A)+len(cut.B))
	assert.Equal(t, 0, cut.A[0])
}

func TestPartition_Degenerate(t *testing.T) {
	_, err := spectral.Partition(nil)
	require.ErrorIs(t, err, spectral.ErrDegenerateEgoNetwork)

	g := core.NewGraph()
	require.NoError(t, g.AddVertex(1))
	_, err = spectral.Partition(g)
	require.ErrorIs(t, err, spectral.ErrDegenerateEgoNetwork)
}

func TestConductance(t *testing.T) {
	g := twoTriangles(t)
	a, b := []int{0, 1, 2}, []int{3, 4, 5}

	phi, err := spectral.Conductance(g, a, b)
	require.NoError(t, err)
	assert.InDelta(t, 0.05/6.05, phi, 1e-12)

	rev, err := spectral.Conductance(g, b, a)
	require.NoError(t, err)
	assert.InDelta(t, phi, rev, 1e-12, "conductance is symmetric")

	worse, err := spectral.Conductance(g, []int{0, 1, 3}, []int{2, 4, 5})
	require.NoError(t, err)
	assert.Greater(t, worse, phi)
}

func TestConductance_Errors(t *testing.T) {
	g := twoTriangles(t)
	_, err := spectral.Conductance(nil, []int{0}, []int{1})
	require.ErrorIs(t, err, dataset.ErrInvalidArgument)
	_, err = spectral.Conductance(g, nil, []int{1})
	require.ErrorIs(t, err, dataset.ErrInvalidArgument)
	_, err = spectral.Conductance(g, []int{0}, []int{99})
	require.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = spectral.Conductance(g, []int{0, 1}, []int{1})
	require.ErrorIs(t, err, dataset.ErrInvalidArgument)
}

func TestConductance_ZeroVolume(t *testing.T) {
	g := core.NewGraph(core.WithWeightKind(core.Similarity))
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddVertex(2))
	phi, err := spectral.Conductance(g, []int{0, 1}, []int{2})
	require.NoError(t, err)
	assert.Equal(t, 0.0, phi)
}

func TestConductance_NoAffinity(t *testing.T) {
	g := core.NewGraph(core.WithWeightKind(core.Similarity))
	require.NoError(t, g.AddEdge(0, 1, 0))
	require.NoError(t, g.AddEdge(1, 2, 0))
	_, err := spectral.Conductance(g, []int{0, 2}, []int{1})
	require.ErrorIs(t, err, spectral.ErrDegenerateEgoNetwork)
}
