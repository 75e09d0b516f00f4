package mining_test

import (
	"io"
	"log/slog"
	"math"
	"testing"

	"github.com/katalvlaran/hardmine/builder"
	"github.com/katalvlaran/hardmine/core"
	"github.com/katalvlaran/hardmine/dataset"
	"github.com/katalvlaran/hardmine/mining"
	"github.com/katalvlaran/hardmine/similarity"
	"github.com/stretchr/testify/require"
)

var quiet = mining.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

func fourPoints(t *testing.T) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.New([][]float64{{0, 0}, {0, 1}, {5, 5}, {5, 6}}, []int{0, 0, 1, 1})
	require.NoError(t, err)
	return ds
}

// mixed has a b-labelled intruder (row 3) next to the a cluster.
func mixed(t *testing.T) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.New([][]float64{
		{0, 0}, {0, 1}, {1, 0}, {1, 1},
		{5, 5}, {5, 6}, {6, 5}, {6, 6},
	}, []string{"a", "a", "a", "b", "b", "b", "b", "a"})
	require.NoError(t, err)
	return ds
}

func knn(t *testing.T, ds *dataset.Dataset, k int, opts ...builder.BuilderOption) *core.Graph {
	t.Helper()
	g, err := builder.KNN(ds, k, opts...)
	require.NoError(t, err)
	return g
}

func pairs(xs ...[2]int) []dataset.Pair {
	out := make([]dataset.Pair, len(xs))
	for i, x := range xs {
		out[i] = dataset.Pair{From: x[0], To: x[1]}
	}
	return out
}

func inf() float64 { return math.Inf(1) }

// similarityCutoff keeps every kNN edge of the test fixtures non-zero.
func similarityCutoff() similarity.Option { return similarity.WithCutoff(math.Inf(1)) }
