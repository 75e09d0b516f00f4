package mining_test

import (
	"context"
	"sort"
	"testing"

	"github.com/katalvlaran/hardmine/builder"
	"github.com/katalvlaran/hardmine/core"
	"github.com/katalvlaran/hardmine/dataset"
	"github.com/katalvlaran/hardmine/mining"
	"github.com/katalvlaran/hardmine/spectral"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bridged: triangles {0,1,2} and {3,4,5} with a weak 2→3 link.
func bridged(t *testing.T) (*dataset.Dataset, *core.Graph) {
	t.Helper()
	ds, err := dataset.New([][]float64{
		{0, 0}, {0, 1}, {1, 0},
		{4, 4}, {4, 5}, {5, 4},
	}, []int{0, 0, 0, 0, 1, 1})
	require.NoError(t, err)

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
	return ds, g
}

func TestSpectralMiner_Validation(t *testing.T) {
	ds, g := bridged(t)
	_, err := mining.NewSpectralMiner(ds, g, mining.WithEgoRadius(-1))
	require.ErrorIs(t, err, dataset.ErrInvalidArgument)
	_, err = mining.NewSpectralMiner(ds, nil)
	require.ErrorIs(t, err, dataset.ErrInvalidArgument)

	m, err := mining.NewSpectralMiner(ds, g, quiet)
	require.NoError(t, err)
	_, err = m.FindExamples(context.Background(), mining.Top(-2))
	require.ErrorIs(t, err, dataset.ErrInvalidArgument)
}

func TestSpectralMiner_CutCenter(t *testing.T) {
	ds, g := bridged(t)
	m, err := mining.NewSpectralMiner(ds, g, quiet, mining.WithEgoRadius(2))
	require.NoError(t, err)

	cc, err := m.CutCenter(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, cc.Cut.A)
	assert.Equal(t, []int{3, 4, 5}, cc.Cut.B)
	assert.Equal(t, pairs([2]int{2, 3}), cc.Boundary)

	phi, err := spectral.Conductance(g, cc.Cut.A, cc.Cut.B)
	require.NoError(t, err)
	assert.InDelta(t, phi, cc.Conductance, 1e-12)

	// vertex 5 only reaches its own triangle
	ego, err := m.EgoNetwork(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4, 5}, ego.Vertices())
}

func TestSpectralMiner_RadiusZeroSkipsEverything(t *testing.T) {
	ds, g := bridged(t)
	m, err := mining.NewSpectralMiner(ds, g, quiet, mining.WithEgoRadius(0))
	require.NoError(t, err)

	_, err = m.CutCenter(context.Background(), 0)
	require.ErrorIs(t, err, spectral.ErrDegenerateEgoNetwork)

	ex, err := m.FindExamples(context.Background(), mining.All())
	require.NoError(t, err)
	assert.Empty(t, ex.Pairs)
	assert.Empty(t, ex.Centers)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, ex.Skipped)
}

func TestSpectralMiner_ZeroAffinitySkipsEverything(t *testing.T) {
	// neighbours are 3 apart, beyond the default Gaussian cutoff, so every weight is 0
	ds, err := dataset.New([][]float64{
		{0, 0}, {3, 0}, {0, 3},
		{20, 20}, {23, 20}, {20, 23},
	}, []int{0, 0, 0, 1, 1, 1})
	require.NoError(t, err)
	g := knn(t, ds, 2, builder.WithSimilarity())
	for _, e := range g.Edges() {
		require.Zero(t, e.Weight)
	}

	m, err := mining.NewSpectralMiner(ds, g, quiet)
	require.NoError(t, err)
	_, err = m.CutCenter(context.Background(), 0)
	require.ErrorIs(t, err, spectral.ErrDegenerateEgoNetwork)

	ex, err := m.FindExamples(context.Background(), mining.All())
	require.NoError(t, err)
	assert.Empty(t, ex.Pairs)
	assert.Empty(t, ex.Centers)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, ex.Skipped)
}

func TestSpectralMiner_FindExamples(t *testing.T) {
	ds := mixed(t)
	g := knn(t, ds, 3, builder.WithSimilarity(similarityCutoff()))
	ctx := context.Background()

	m, err := mining.NewSpectralMiner(ds, g, quiet, mining.WithEgoRadius(1))
	require.NoError(t, err)
	ex, err := m.FindExamples(ctx, mining.All())
	require.NoError(t, err)
	require.NotEmpty(t, ex.Pairs)
	require.Len(t, ex.PairList(), len(ex.Pairs))

	assert.True(t, sort.Float64sAreSorted(ex.Scores()), "scores ascending")

	seen := make(map[dataset.Pair]bool)
	for _, sp := range ex.Pairs {
		key := sp.Pair.Unordered()
		assert.False(t, seen[key], "duplicate pair %v", sp.Pair)
		seen[key] = true
		assert.Equal(t, ds.Kind(sp.Pair.From, sp.Pair.To), sp.Kind)
		assert.True(t, g.HasEdge(sp.Pair.From, sp.Pair.To), "pairs are graph edges")

		best := -1.0
		for _, cc := range ex.Centers {
			for _, b := range cc.Boundary {
				if b.Unordered() == key && (best < 0 || cc.Conductance < best) {
					best = cc.Conductance
				}
			}
		}
		assert.Equal(t, best, sp.Score, "score is the lowest contributing conductance")
	}

	top, err := m.FindExamples(ctx, mining.Top(3))
	require.NoError(t, err)
	assert.Equal(t, ex.Pairs[:3], top.Pairs)

	pos, err := m.FindPositive(ctx, mining.All())
	require.NoError(t, err)
	neg, err := m.FindNegative(ctx, mining.All())
	require.NoError(t, err)
	assert.Equal(t, len(ex.Pairs), len(pos)+len(neg))
	for _, p := range pos {
		assert.Equal(t, dataset.Positive, ds.Kind(p.From, p.To))
	}
	for _, p := range neg {
		assert.Equal(t, dataset.Negative, ds.Kind(p.From, p.To))
	}
}

func TestSpectralMiner_WorkerCountInvariant(t *testing.T) {
	ds := mixed(t)
	g := knn(t, ds, 3)
	ctx := context.Background()

	one, err := mining.NewSpectralMiner(ds, g, quiet, mining.WithWorkers(1))
	require.NoError(t, err)
	many, err := mining.NewSpectralMiner(ds, g, quiet, mining.WithWorkers(8))
	require.NoError(t, err)
	assert.Equal(t, core.Similarity, one.Graph().Kind(), "distance graphs are converted")
	assert.Equal(t, core.Distance, g.Kind(), "caller graph untouched")

	a, err := one.FindExamples(ctx, mining.All())
	require.NoError(t, err)
	b, err := many.FindExamples(ctx, mining.All())
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestSpectralMiner_Cancelled(t *testing.T) {
	ds, g := bridged(t)
	m, err := mining.NewSpectralMiner(ds, g, quiet)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = m.FindExamples(ctx, mining.All())
	require.ErrorIs(t, err, context.Canceled)
}
