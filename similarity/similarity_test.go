package similarity_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/hardmine/core"
	"github.com/katalvlaran/hardmine/dataset"
	"github.com/katalvlaran/hardmine/similarity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func fourPoints(t *testing.T) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.New([][]float64{{0, 0}, {0, 1}, {5, 5}, {5, 6}}, []int{0, 0, 1, 1})
	require.NoError(t, err)
	return ds
}

func TestReciprocal(t *testing.T) {
	g := core.NewGraph(core.WithWeightKind(core.Distance))
	require.NoError(t, g.AddEdge(0, 1, 0))
	require.NoError(t, g.AddEdge(1, 2, 3))

	s, err := similarity.Reciprocal(g)
	require.NoError(t, err)
	assert.Equal(t, core.Similarity, s.Kind())

	w, err := s.Weight(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 1.0, w)
	w, err = s.Weight(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 0.25, w)

	// source untouched
	w, err = g.Weight(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 3.0, w)
	assert.Equal(t, core.Distance, g.Kind())
}

func TestReciprocal_RejectsNonDistance(t *testing.T) {
	_, err := similarity.Reciprocal(nil)
	require.ErrorIs(t, err, dataset.ErrInvalidArgument)

	g := core.NewGraph(core.WithWeightKind(core.Distance))
	require.NoError(t, g.AddEdge(0, 1, 2))
	s, err := similarity.Reciprocal(g)
	require.NoError(t, err)

	_, err = similarity.Reciprocal(s)
	require.ErrorIs(t, err, dataset.ErrInvalidArgument, "second application must be rejected")

	_, err = similarity.Reciprocal(core.NewGraph())
	require.ErrorIs(t, err, dataset.ErrInvalidArgument)
}

func TestReciprocalWeight_Monotone(t *testing.T) {
	prev := similarity.ReciprocalWeight(0)
	assert.Equal(t, 1.0, prev)
	for _, d := range []float64{0.1, 1, 2, 10, 1e6} {
		cur := similarity.ReciprocalWeight(d)
		assert.Less(t, cur, prev)
		assert.Greater(t, cur, 0.0)
		prev = cur
	}
}

func TestGaussianMatrix(t *testing.T) {
	ds := fourPoints(t)
	s, err := similarity.GaussianMatrix(ds)
	require.NoError(t, err)
	require.Equal(t, 4, s.SymmetricDim())

	sigma := similarity.Bandwidth(ds.Distances(), similarity.DefaultCutoff)
	require.Greater(t, sigma, 0.0)

	for i := 0; i < 4; i++ {
		assert.Equal(t, 0.0, s.At(i, i), "diagonal must be zero")
	}
	// d(0,1) = 1 is within the cutoff.
	assert.InDelta(t, math.Exp(-1/sigma), s.At(0, 1), 1e-12)
	assert.InDelta(t, math.Exp(-1/sigma), s.At(2, 3), 1e-12)
	// cross-cluster distances exceed the cutoff.
	assert.Equal(t, 0.0, s.At(1, 2))
	assert.Equal(t, 0.0, s.At(0, 3))
}

func TestBandwidth_Fallbacks(t *testing.T) {
	// every distance is 1: nothing above the cutoff and zero spread → 1
	d := mat.NewSymDense(3, []float64{
		0, 1, 1,
		1, 0, 1,
		1, 1, 0,
	})
	assert.Equal(t, 1.0, similarity.Bandwidth(d, 1))

	// nothing above the cutoff, spread among all distances
	d = mat.NewSymDense(3, []float64{
		0, 0.2, 0.4,
		0.2, 0, 0.6,
		0.4, 0.6, 0,
	})
	want := math.Sqrt((0.04 + 0 + 0.04) / 3)
	assert.InDelta(t, want, similarity.Bandwidth(d, 1), 1e-12)
}

func TestGaussianMatrix_Options(t *testing.T) {
	ds := fourPoints(t)

	_, err := similarity.GaussianMatrix(ds, similarity.WithCutoff(0))
	require.ErrorIs(t, err, dataset.ErrInvalidArgument)
	_, err = similarity.GaussianMatrix(ds, similarity.WithSigma(-1))
	require.ErrorIs(t, err, dataset.ErrInvalidArgument)
	_, err = similarity.GaussianMatrix(nil)
	require.ErrorIs(t, err, dataset.ErrInvalidArgument)

	s, err := similarity.GaussianMatrix(ds, similarity.WithCutoff(math.Inf(1)), similarity.WithSigma(2))
	require.NoError(t, err)
	assert.InDelta(t, math.Exp(-ds.Distance(1, 2)/2), s.At(1, 2), 1e-12)
}
