package mining

import (
	"fmt"
	"log/slog"
	"math"
	"runtime"

	"github.com/katalvlaran/hardmine/dataset"
	"github.com/katalvlaran/hardmine/evaluator"
)

// APSPMethod selects the all-pairs shortest-path back-end of negative mining.
type APSPMethod int

const (
	// APSPDijkstra runs Dijkstra from every vertex; best on sparse kNN graphs.
	APSPDijkstra APSPMethod = iota
	// APSPFloydWarshall runs the dense O(V³) closure on a gonum matrix.
	APSPFloydWarshall
)

func (m APSPMethod) String() string {
	switch m {
	case APSPDijkstra:
		return "dijkstra"
	case APSPFloydWarshall:
		return "floyd-warshall"
	default:
		return fmt.Sprintf("APSPMethod(%d)", int(m))
	}
}

// ParseAPSPMethod accepts "dijkstra" and "floyd-warshall" (or "floyd").
func ParseAPSPMethod(name string) (APSPMethod, error) {
	switch name {
	case "dijkstra", "":
		return APSPDijkstra, nil
	case "floyd-warshall", "floyd":
		return APSPFloydWarshall, nil
	default:
		return 0, fmt.Errorf("mining: unknown APSP method %q: %w", name, dataset.ErrInvalidArgument)
	}
}

// Defaults.
const (
	DefaultEgoRadius = 1
	DefaultMetric    = MetricEuclidean
	DefaultSeed      = int64(1)
)

// Option configures miners and sessions.
type Option func(*options)

type options struct {
	logger       *slog.Logger
	seed         int64
	apsp         APSPMethod
	workers      int
	egoRadius    int
	metric       string
	cacheSize    int
	bound        Bound
	threshold    float64
	thresholdSet bool
	labelFilter  bool
	ridge        float64

	err error // first invalid option
}

func defaultOptions() options {
	return options{
		seed:      DefaultSeed,
		apsp:      APSPDijkstra,
		workers:   runtime.GOMAXPROCS(0),
		egoRadius: DefaultEgoRadius,
		metric:    DefaultMetric,
		cacheSize: dataset.DefaultCacheSize,
		bound:     Unbounded(),
		ridge:     evaluator.DefaultRidge,
	}
}

func newOptions(opts []Option) (options, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}

func (o *options) fail(format string, args ...interface{}) {
	if o.err == nil {
		o.err = fmt.Errorf("mining: "+format+": %w", append(args, dataset.ErrInvalidArgument)...)
	}
}

// component returns the configured logger tagged with name.
func (o *options) component(name string) *slog.Logger {
	base := o.logger
	if base == nil {
		base = slog.Default()
	}
	return base.With(slog.String("component", name))
}

// WithLogger sets the base logger; nil keeps slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithSeed seeds the sampler used by Top(k) negative mining.
func WithSeed(seed int64) Option {
	return func(o *options) { o.seed = seed }
}

// WithAPSP selects the all-pairs shortest-path back-end.
func WithAPSP(m APSPMethod) Option {
	return func(o *options) {
		if m != APSPDijkstra && m != APSPFloydWarshall {
			o.fail("unknown APSP method %d", int(m))
			return
		}
		o.apsp = m
	}
}

// WithWorkers sets the spectral worker-pool size (n ≥ 1).
func WithWorkers(n int) Option {
	return func(o *options) {
		if n < 1 {
			o.fail("workers %d must be ≥ 1", n)
			return
		}
		o.workers = n
	}
}

// WithEgoRadius sets the hop radius of spectral ego-networks (r ≥ 0).
func WithEgoRadius(r int) Option {
	return func(o *options) {
		if r < 0 {
			o.fail("ego radius %d must be ≥ 0", r)
			return
		}
		o.egoRadius = r
	}
}

// WithMetric selects the ranking metric by name. Validated by NewRanker.
func WithMetric(name string) Option {
	return func(o *options) { o.metric = name }
}

// WithCacheSize sets the ranker's distance-cache capacity (≤ 0 = default).
func WithCacheSize(n int) Option {
	return func(o *options) { o.cacheSize = n }
}

// WithBound sets the cycle bound used by CycleMiner.FindPositive.
func WithBound(b Bound) Option {
	return func(o *options) { o.bound = b }
}

// WithThreshold sets the geodesic threshold used by CycleMiner.FindNegative.
// Unset, the threshold is the mean finite geodesic distance of the graph.
func WithThreshold(t float64) Option {
	return func(o *options) {
		if math.IsNaN(t) {
			o.fail("threshold is NaN")
			return
		}
		o.threshold, o.thresholdSet = t, true
	}
}

// WithLabelFilter restricts cycle-miner positives to same-label pairs and
// negatives to different-label pairs.
func WithLabelFilter() Option {
	return func(o *options) { o.labelFilter = true }
}

// WithRidge sets the covariance ridge of the session's evaluator (≥ 0).
func WithRidge(r float64) Option {
	return func(o *options) {
		if math.IsNaN(r) || r < 0 {
			o.fail("ridge %v must be ≥ 0", r)
			return
		}
		o.ridge = r
	}
}
