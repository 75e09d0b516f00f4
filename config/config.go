package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"

	"github.com/katalvlaran/hardmine/builder"
	"github.com/katalvlaran/hardmine/core"
	"github.com/katalvlaran/hardmine/dataset"
	"github.com/katalvlaran/hardmine/evaluator"
	"github.com/katalvlaran/hardmine/mining"
	"github.com/katalvlaran/hardmine/similarity"
	"gopkg.in/yaml.v3"
)

// Transform names.
const (
	TransformNone       = "none"
	TransformReciprocal = "reciprocal"
)

// Config is a full session description.
type Config struct {
	Graph     Graph     `yaml:"graph"`
	Cycle     Cycle     `yaml:"cycle"`
	Spectral  Spectral  `yaml:"spectral"`
	Evaluator Evaluator `yaml:"evaluator"`
	Ranking   Ranking   `yaml:"ranking"`
	Seed      int64     `yaml:"seed"`
}

// Graph configures the kNN graph.
type Graph struct {
	K          int    `yaml:"k"`
	Weighted   bool   `yaml:"weighted"`
	Similarity bool   `yaml:"similarity"`
	Transform  string `yaml:"transform,omitempty"`
	// Cutoff of the Gaussian similarity; 0 keeps similarity.DefaultCutoff.
	Cutoff float64 `yaml:"cutoff,omitempty"`
}

// Cycle configures the cycle miner. Nil pointers mean "unset".
type Cycle struct {
	Ell         *int     `yaml:"ell,omitempty"`
	Threshold   *float64 `yaml:"threshold,omitempty"`
	APSP        string   `yaml:"apsp"`
	LabelFilter bool     `yaml:"label_filter"`
}

// Spectral configures the spectral miner.
type Spectral struct {
	EgoRadius int `yaml:"ego_radius"`
	Workers   int `yaml:"workers"`
}

// Evaluator configures the pair evaluator.
type Evaluator struct {
	Ridge float64 `yaml:"ridge"`
}

// Ranking configures the shared ranker.
type Ranking struct {
	Metric    string `yaml:"metric"`
	CacheSize int    `yaml:"cache_size"`
}

// Default returns the configuration used when a key is absent.
func Default() Config {
	return Config{
		Graph:     Graph{K: 5, Weighted: true},
		Cycle:     Cycle{APSP: mining.APSPDijkstra.String()},
		Spectral:  Spectral{EgoRadius: mining.DefaultEgoRadius},
		Evaluator: Evaluator{Ridge: evaluator.DefaultRidge},
		Ranking:   Ranking{Metric: mining.MetricEuclidean, CacheSize: dataset.DefaultCacheSize},
		Seed:      mining.DefaultSeed,
	}
}

// Parse decodes a YAML document over Default() and validates the result.
// An empty document yields Default().
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decode: %w: %w", err, dataset.ErrInvalidArgument)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Load reads and parses the YAML file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}

	return cfg, nil
}

// Marshal encodes c as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Validate reports every invalid field, joined. Each problem wraps
// dataset.ErrInvalidArgument, except unsupported metrics which wrap
// dataset.ErrNotImplemented.
func (c Config) Validate() error {
	var errs []error
	bad := func(format string, args ...interface{}) {
		errs = append(errs, fmt.Errorf("config: "+format+": %w", append(args, dataset.ErrInvalidArgument)...))
	}

	if c.Graph.K < 1 {
		bad("graph.k %d must be ≥ 1", c.Graph.K)
	}
	switch c.Graph.Transform {
	case "", TransformNone:
	case TransformReciprocal:
		if !c.Graph.Weighted || c.Graph.Similarity {
			bad("graph.transform %q needs a distance-weighted graph", c.Graph.Transform)
		}
	default:
		bad("graph.transform %q unknown", c.Graph.Transform)
	}
	if c.Graph.Similarity && !c.Graph.Weighted {
		bad("graph.similarity requires graph.weighted")
	}
	if math.IsNaN(c.Graph.Cutoff) || c.Graph.Cutoff < 0 {
		bad("graph.cutoff %v must be ≥ 0", c.Graph.Cutoff)
	}
	if c.Cycle.Ell != nil && *c.Cycle.Ell < 0 {
		bad("cycle.ell %d must be ≥ 0", *c.Cycle.Ell)
	}
	if c.Cycle.Threshold != nil && math.IsNaN(*c.Cycle.Threshold) {
		bad("cycle.threshold is NaN")
	}
	if _, err := mining.ParseAPSPMethod(c.Cycle.APSP); err != nil {
		errs = append(errs, fmt.Errorf("config: cycle.apsp: %w", err))
	}
	if c.Spectral.EgoRadius < 0 {
		bad("spectral.ego_radius %d must be ≥ 0", c.Spectral.EgoRadius)
	}
	if c.Spectral.Workers < 0 {
		bad("spectral.workers %d must be ≥ 0", c.Spectral.Workers)
	}
	if math.IsNaN(c.Evaluator.Ridge) || c.Evaluator.Ridge < 0 {
		bad("evaluator.ridge %v must be ≥ 0", c.Evaluator.Ridge)
	}
	if err := mining.ValidateMetric(c.Ranking.Metric); err != nil {
		errs = append(errs, fmt.Errorf("config: ranking.metric: %w", err))
	}

	return errors.Join(errs...)
}

// BuilderOptions maps the graph section to builder options.
func (c Config) BuilderOptions() []builder.BuilderOption {
	switch {
	case !c.Graph.Weighted:
		return []builder.BuilderOption{builder.WithUnweighted()}
	case c.Graph.Similarity:
		var simOpts []similarity.Option
		if c.Graph.Cutoff > 0 {
			simOpts = append(simOpts, similarity.WithCutoff(c.Graph.Cutoff))
		}
		return []builder.BuilderOption{builder.WithSimilarity(simOpts...)}
	default:
		return []builder.BuilderOption{builder.WithDistanceWeights()}
	}
}

// SessionOptions maps the mining sections to mining options. logger may be nil.
// An unknown cycle.apsp method is reported; the remaining fields are checked
// by the mining constructors.
func (c Config) SessionOptions(logger *slog.Logger) ([]mining.Option, error) {
	apsp, err := mining.ParseAPSPMethod(c.Cycle.APSP)
	if err != nil {
		return nil, fmt.Errorf("config: cycle.apsp: %w", err)
	}
	opts := []mining.Option{
		mining.WithLogger(logger),
		mining.WithSeed(c.Seed),
		mining.WithAPSP(apsp),
		mining.WithEgoRadius(c.Spectral.EgoRadius),
		mining.WithMetric(c.Ranking.Metric),
		mining.WithCacheSize(c.Ranking.CacheSize),
		mining.WithRidge(c.Evaluator.Ridge),
	}
	if c.Spectral.Workers > 0 {
		opts = append(opts, mining.WithWorkers(c.Spectral.Workers))
	}
	if c.Cycle.Ell != nil {
		opts = append(opts, mining.WithBound(mining.AtMost(*c.Cycle.Ell)))
	}
	if c.Cycle.Threshold != nil {
		opts = append(opts, mining.WithThreshold(*c.Cycle.Threshold))
	}
	if c.Cycle.LabelFilter {
		opts = append(opts, mining.WithLabelFilter())
	}

	return opts, nil
}

// BuildGraph builds the configured kNN graph over ds and applies the
// configured transform.
func (c Config) BuildGraph(ds *dataset.Dataset) (*core.Graph, error) {
	g, err := builder.KNN(ds, c.Graph.K, c.BuilderOptions()...)
	if err != nil {
		return nil, err
	}
	if c.Graph.Transform == TransformReciprocal {
		return similarity.Reciprocal(g)
	}

	return g, nil
}

// NewSession validates c, builds the graph over ds and opens a mining session.
func (c Config) NewSession(ds *dataset.Dataset, logger *slog.Logger) (*mining.Session, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	g, err := c.BuildGraph(ds)
	if err != nil {
		return nil, err
	}

	opts, err := c.SessionOptions(logger)
	if err != nil {
		return nil, err
	}

	return mining.NewSession(ds, g, opts...)
}
