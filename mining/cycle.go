package mining

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"sort"
	"time"

	"github.com/katalvlaran/hardmine/bfs"
	"github.com/katalvlaran/hardmine/core"
	"github.com/katalvlaran/hardmine/dataset"
	"github.com/katalvlaran/hardmine/dijkstra"
	"github.com/katalvlaran/hardmine/matrix"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gonum.org/v1/gonum/mat"
)

var inf = math.Inf(1)

// CycleMiner mines pairs from the cycle structure and geodesic distances of
// a directed graph. It only reads the graph.
type CycleMiner struct {
	ds     *dataset.Dataset
	g      *core.Graph
	ranker *Ranker
	opts   options
	logger *slog.Logger
}

var _ Miner = (*CycleMiner)(nil)

// NewCycleMiner returns a CycleMiner over ds and g. Every vertex of g must be
// a row index of ds.
func NewCycleMiner(ds *dataset.Dataset, g *core.Graph, opts ...Option) (*CycleMiner, error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}
	if err = checkInputs(ds, g); err != nil {
		return nil, err
	}
	r, err := newRanker(ds, o)
	if err != nil {
		return nil, err
	}

	return &CycleMiner{ds: ds, g: g, ranker: r, opts: o, logger: o.component("mining.cycle")}, nil
}

// Ranker returns the miner's ranker.
func (m *CycleMiner) Ranker() *Ranker { return m.ranker }

// CycleLength returns the number of edges on the shortest directed cycle
// through edge v→u, or +Inf when u cannot reach v without that edge.
// Returns core.ErrEdgeNotFound if the edge is absent.
func (m *CycleMiner) CycleLength(ctx context.Context, v, u int) (float64, error) {
	if !m.g.HasEdge(v, u) {
		return 0, fmt.Errorf("mining: CycleLength(%d,%d): %w", v, u, core.ErrEdgeNotFound)
	}
	return m.cycleLength(ctx, v, u, -1)
}

// cycleLength runs a hop BFS from u to v with v→u hidden. maxDepth ≥ 0
// stops the search early; cycles longer than maxDepth+1 report +Inf.
func (m *CycleMiner) cycleLength(ctx context.Context, v, u, maxDepth int) (float64, error) {
	if v == u {
		return 1, nil
	}
	opts := []bfs.Option{
		bfs.WithContext(ctx),
		bfs.WithEdgeMask(core.NewEdgeMask(core.EdgeKey{From: v, To: u})),
	}
	if maxDepth >= 0 {
		opts = append(opts, bfs.WithMaxDepth(maxDepth))
	}
	hops, ok, err := bfs.HopDistance(m.g, u, v, opts...)
	if err != nil {
		return 0, err
	}
	if !ok {
		return inf, nil
	}

	return float64(hops + 1), nil
}

// FindPositive returns edges on a cycle admitted by the configured Bound
// (WithBound, default Unbounded).
func (m *CycleMiner) FindPositive(ctx context.Context, limit Limit) ([]dataset.Pair, error) {
	return m.FindPositiveWithin(ctx, limit, m.opts.bound)
}

// FindPositiveWithin returns every edge v→u whose shortest cycle length is
// admitted by bound. With All the pairs come in (from,to) order; with Top(k)
// they are ranked farthest first and truncated.
func (m *CycleMiner) FindPositiveWithin(ctx context.Context, limit Limit, bound Bound) ([]dataset.Pair, error) {
	ctx, span := miningTracer.Start(ctx, "mining.CycleMiner.FindPositive",
		trace.WithAttributes(
			attribute.String("limit", limit.String()),
			attribute.String("bound", bound.String()),
		),
	)
	defer span.End()
	start := time.Now()

	if err := limit.validate(); err != nil {
		return nil, spanError(span, err)
	}

	maxDepth := -1
	if !bound.IsUnbounded() {
		maxDepth = bound.Ell() - 1
	}
	noneFit := !bound.IsUnbounded() && bound.Ell() < 1
	edges := m.g.Edges()
	var found []dataset.Pair
	for _, e := range edges {
		if err := ctx.Err(); err != nil {
			return nil, spanError(span, err)
		}
		p := dataset.Pair{From: e.From, To: e.To}
		if m.opts.labelFilter && m.ds.Kind(p.From, p.To) != dataset.Positive {
			continue
		}
		if noneFit {
			continue // no cycle can be that short
		}
		length, err := m.cycleLength(ctx, e.From, e.To, maxDepth)
		if err != nil {
			return nil, spanError(span, err)
		}
		if !bound.Admits(length) {
			m.logger.Debug("edge rejected", slog.Int("from", e.From), slog.Int("to", e.To), slog.Float64("cycle_length", length))
			continue
		}
		found = append(found, p)
	}

	out := found
	if !limit.IsAll() {
		ranked, err := m.ranker.RankPositive(found)
		if err != nil {
			return nil, spanError(span, err)
		}
		out = ranked[:limit.apply(len(ranked))]
	}

	span.SetAttributes(attribute.Int("count", len(out)))
	m.logger.Info("positive mining finished",
		slog.Int("edges", len(edges)),
		slog.Int("qualifying", len(found)),
		slog.Int("returned", len(out)),
		slog.Duration("took", time.Since(start)),
	)

	return out, nil
}

// GeodesicDistances returns the vertex ids of the graph and the matrix of
// shortest-path distances between them (+Inf when unreachable), computed
// with the configured APSP back-end. Unweighted graphs count hops.
func (m *CycleMiner) GeodesicDistances(ctx context.Context) ([]int, *mat.Dense, error) {
	if m.opts.apsp == APSPFloydWarshall {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}
		idx, d, err := matrix.AllPairs(m.g)
		if err != nil {
			return nil, nil, err
		}
		return idx.IDs(), d, nil
	}
	opts := []dijkstra.Option{dijkstra.WithContext(ctx)}
	if !m.g.Weighted() {
		opts = append(opts, dijkstra.WithUnitWeights())
	}

	return dijkstra.AllPairs(m.g, opts...)
}

// FindNegative returns pairs beyond the configured threshold (WithThreshold),
// or beyond the mean finite geodesic distance when none was set.
func (m *CycleMiner) FindNegative(ctx context.Context, limit Limit) ([]dataset.Pair, error) {
	if m.opts.thresholdSet {
		return m.FindNegativeBeyond(ctx, limit, m.opts.threshold)
	}
	return m.findNegative(ctx, limit, nil)
}

// FindNegativeBeyond returns the ordered pairs (s,t), s ≠ t, whose geodesic
// distance exceeds threshold; unreachable pairs always qualify. With All the
// pairs come in (s,t) order; Top(k) draws a seeded uniform sample of k of
// them, still in (s,t) order.
func (m *CycleMiner) FindNegativeBeyond(ctx context.Context, limit Limit, threshold float64) ([]dataset.Pair, error) {
	if math.IsNaN(threshold) {
		return nil, fmt.Errorf("mining: threshold is NaN: %w", dataset.ErrInvalidArgument)
	}
	return m.findNegative(ctx, limit, &threshold)
}

func (m *CycleMiner) findNegative(ctx context.Context, limit Limit, threshold *float64) ([]dataset.Pair, error) {
	ctx, span := miningTracer.Start(ctx, "mining.CycleMiner.FindNegative",
		trace.WithAttributes(
			attribute.String("limit", limit.String()),
			attribute.String("apsp", m.opts.apsp.String()),
		),
	)
	defer span.End()
	start := time.Now()

	if err := limit.validate(); err != nil {
		return nil, spanError(span, err)
	}
	ids, d, err := m.GeodesicDistances(ctx)
	if err != nil {
		return nil, spanError(span, err)
	}
	var t float64
	if threshold != nil {
		t = *threshold
	} else {
		t = meanFinite(d)
	}
	span.SetAttributes(attribute.Float64("threshold", t))

	var found []dataset.Pair
	for i, s := range ids {
		for j, u := range ids {
			if i == j || d.At(i, j) <= t {
				continue
			}
			if m.opts.labelFilter && m.ds.Kind(s, u) != dataset.Negative {
				continue
			}
			found = append(found, dataset.Pair{From: s, To: u})
		}
	}

	out := found
	if n := limit.apply(len(found)); n < len(found) {
		out = sample(found, n, m.opts.seed)
	}

	span.SetAttributes(attribute.Int("count", len(out)))
	m.logger.Info("negative mining finished",
		slog.Float64("threshold", t),
		slog.Int("qualifying", len(found)),
		slog.Int("returned", len(out)),
		slog.Duration("took", time.Since(start)),
	)

	return out, nil
}

// sample draws n of pairs uniformly without replacement, keeping input order.
func sample(pairs []dataset.Pair, n int, seed int64) []dataset.Pair {
	rng := rand.New(rand.NewSource(seed))
	picked := rng.Perm(len(pairs))[:n]
	sort.Ints(picked)
	out := make([]dataset.Pair, n)
	for i, j := range picked {
		out[i] = pairs[j]
	}
	return out
}

// meanFinite averages the finite off-diagonal entries of d (0 if none).
func meanFinite(d *mat.Dense) float64 {
	if d == nil {
		return 0
	}
	r, _ := d.Dims()
	var sum float64
	var cnt int
	for i := 0; i < r; i++ {
		for j := 0; j < r; j++ {
			if v := d.At(i, j); i != j && !math.IsInf(v, 1) {
				sum += v
				cnt++
			}
		}
	}
	if cnt == 0 {
		return 0
	}
	return sum / float64(cnt)
}
