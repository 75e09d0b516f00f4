package config_test

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/hardmine/config"
	"github.com/katalvlaran/hardmine/core"
	"github.com/katalvlaran/hardmine/dataset"
	"github.com/katalvlaran/hardmine/mining"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quiet() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func clusters(t *testing.T) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.New([][]float64{
		{0, 0}, {0, 1}, {1, 0}, {1, 1},
		{5, 5}, {5, 6}, {6, 5}, {6, 6},
	}, []string{"a", "a", "a", "a", "b", "b", "b", "b"})
	require.NoError(t, err)
	return ds
}

func TestParseEmptyIsDefault(t *testing.T) {
	cfg, err := config.Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.NoError(t, config.Default().Validate())
}

func TestParseOverridesDefaults(t *testing.T) {
	cfg, err := config.Parse([]byte(`
graph:
  k: 3
cycle:
  ell: 2
  threshold: 1.5
  apsp: floyd-warshall
  label_filter: true
spectral:
  workers: 2
seed: 7
`))
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Graph.K)
	assert.True(t, cfg.Graph.Weighted, "absent key keeps default")
	require.NotNil(t, cfg.Cycle.Ell)
	assert.Equal(t, 2, *cfg.Cycle.Ell)
	require.NotNil(t, cfg.Cycle.Threshold)
	assert.Equal(t, 1.5, *cfg.Cycle.Threshold)
	assert.Equal(t, "floyd-warshall", cfg.Cycle.APSP)
	assert.True(t, cfg.Cycle.LabelFilter)
	assert.Equal(t, 2, cfg.Spectral.Workers)
	assert.Equal(t, mining.DefaultEgoRadius, cfg.Spectral.EgoRadius)
	assert.EqualValues(t, 7, cfg.Seed)
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := config.Parse([]byte("graph:\n  kk: 3\n"))
	assert.ErrorIs(t, err, dataset.ErrInvalidArgument)
}

func TestValidateJoinsErrors(t *testing.T) {
	cfg := config.Default()
	cfg.Graph.K = 0
	cfg.Spectral.EgoRadius = -1
	cfg.Evaluator.Ridge = -1
	ell := -2
	cfg.Cycle.Ell = &ell
	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, dataset.ErrInvalidArgument)
	for _, field := range []string{"graph.k", "spectral.ego_radius", "evaluator.ridge", "cycle.ell"} {
		assert.Contains(t, err.Error(), field)
	}
}

func TestValidateTransformAndMetric(t *testing.T) {
	cfg := config.Default()
	cfg.Graph.Transform = "log"
	assert.ErrorIs(t, cfg.Validate(), dataset.ErrInvalidArgument)

	cfg = config.Default()
	cfg.Graph.Weighted = false
	cfg.Graph.Transform = config.TransformReciprocal
	assert.ErrorIs(t, cfg.Validate(), dataset.ErrInvalidArgument)

	cfg = config.Default()
	cfg.Ranking.Metric = mining.MetricCosine
	assert.ErrorIs(t, cfg.Validate(), dataset.ErrNotImplemented)

	cfg = config.Default()
	cfg.Cycle.APSP = "bellman-ford"
	assert.Error(t, cfg.Validate())
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := config.Default()
	ell, th := 3, 2.5
	cfg.Cycle.Ell, cfg.Cycle.Threshold = &ell, &th
	cfg.Graph.Transform = config.TransformReciprocal

	data, err := cfg.Marshal()
	require.NoError(t, err)
	back, err := config.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, cfg, back)
}

func TestSessionOptions(t *testing.T) {
	opts, err := config.Default().SessionOptions(quiet())
	require.NoError(t, err)
	assert.NotEmpty(t, opts)

	cfg := config.Default()
	cfg.Cycle.APSP = "bellman-ford"
	_, err = cfg.SessionOptions(quiet())
	assert.ErrorIs(t, err, dataset.ErrInvalidArgument)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mine.yaml")
	require.NoError(t, os.WriteFile(path, []byte("graph:\n  k: 2\n"), 0o600))
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Graph.K)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestBuildGraph(t *testing.T) {
	ds := clusters(t)

	cfg := config.Default()
	cfg.Graph.K = 2
	g, err := cfg.BuildGraph(ds)
	require.NoError(t, err)
	assert.Equal(t, core.Distance, g.Kind())
	assert.Equal(t, ds.Len(), g.VertexCount())

	cfg.Graph.Transform = config.TransformReciprocal
	g, err = cfg.BuildGraph(ds)
	require.NoError(t, err)
	assert.Equal(t, core.Similarity, g.Kind())

	cfg = config.Default()
	cfg.Graph.K = ds.Len()
	_, err = cfg.BuildGraph(ds)
	assert.ErrorIs(t, err, dataset.ErrInvalidArgument)
}

func TestNewSessionRuns(t *testing.T) {
	cfg := config.Default()
	cfg.Graph.K = 3
	s, err := cfg.NewSession(clusters(t), quiet())
	require.NoError(t, err)

	pos, err := s.Mine(context.Background(), mining.StrategyCycle, dataset.Positive, mining.All())
	require.NoError(t, err)
	assert.NotEmpty(t, pos)

	cfg.Graph.K = 0
	_, err = cfg.NewSession(clusters(t), quiet())
	assert.ErrorIs(t, err, dataset.ErrInvalidArgument)
}
