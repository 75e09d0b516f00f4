package mining

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/katalvlaran/hardmine/bfs"
	"github.com/katalvlaran/hardmine/core"
	"github.com/katalvlaran/hardmine/dataset"
	"github.com/katalvlaran/hardmine/similarity"
	"github.com/katalvlaran/hardmine/spectral"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

// CenterCut is the spectral cut of one center's ego-network.
type CenterCut struct {
	Center      int
	Cut         spectral.Cut
	Conductance float64
	// Boundary holds the ego-network edges incident to Center that cross the cut.
	Boundary []dataset.Pair
}

// ScoredPair is a mined pair with its label relation and conductance score
// (lower = cleaner cut = harder).
type ScoredPair struct {
	Pair  dataset.Pair
	Kind  dataset.PairKind
	Score float64
}

// Examples is the outcome of a spectral scan.
type Examples struct {
	// Pairs are deduplicated boundary pairs, best score first.
	Pairs []ScoredPair
	// Centers lists every successfully cut center in ascending id.
	Centers []CenterCut
	// Skipped lists centers whose ego-network was too small to cut.
	Skipped []int
}

// PairList returns the pairs of e without scores.
func (e *Examples) PairList() []dataset.Pair {
	out := make([]dataset.Pair, len(e.Pairs))
	for i, sp := range e.Pairs {
		out[i] = sp.Pair
	}
	return out
}

// Scores returns the scores of e, parallel to PairList.
func (e *Examples) Scores() []float64 {
	out := make([]float64, len(e.Pairs))
	for i, sp := range e.Pairs {
		out[i] = sp.Score
	}
	return out
}

// SpectralMiner mines pairs crossing the spectral cut of each ego-network.
// It only reads the graph and is safe for concurrent use.
type SpectralMiner struct {
	ds     *dataset.Dataset
	g      *core.Graph
	ranker *Ranker
	opts   options
	logger *slog.Logger
}

var _ Miner = (*SpectralMiner)(nil)

// NewSpectralMiner returns a SpectralMiner over ds and g. A distance-weighted
// g is first turned into affinities with similarity.Reciprocal; similarity and
// unweighted graphs are used as they are.
func NewSpectralMiner(ds *dataset.Dataset, g *core.Graph, opts ...Option) (*SpectralMiner, error) {
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
	logger := o.component("mining.spectral")
	if g.Kind() == core.Distance {
		if g, err = similarity.Reciprocal(g); err != nil {
			return nil, err
		}
		logger.Debug("distance graph converted to reciprocal similarity")
	}

	return &SpectralMiner{ds: ds, g: g, ranker: r, opts: o, logger: logger}, nil
}

// Graph returns the affinity graph the miner cuts.
func (m *SpectralMiner) Graph() *core.Graph { return m.g }

// EgoNetwork returns the subgraph induced by the vertices within the ego
// radius (out-going hops) of center.
func (m *SpectralMiner) EgoNetwork(ctx context.Context, center int) (*core.Graph, error) {
	res, err := bfs.BFS(m.g, center, bfs.WithContext(ctx), bfs.WithMaxDepth(m.opts.egoRadius))
	if err != nil {
		return nil, err
	}
	return core.InducedSubgraph(m.g, res.Reached()), nil
}

// CutCenter cuts the ego-network of center. Returns
// spectral.ErrDegenerateEgoNetwork when it has fewer than two vertices.
func (m *SpectralMiner) CutCenter(ctx context.Context, center int) (*CenterCut, error) {
	ego, err := m.EgoNetwork(ctx, center)
	if err != nil {
		return nil, err
	}
	if ego.VertexCount() < 2 {
		return nil, fmt.Errorf("mining: center %d: %w", center, spectral.ErrDegenerateEgoNetwork)
	}
	cut, err := spectral.Partition(ego)
	if err != nil {
		return nil, fmt.Errorf("mining: center %d: %w", center, err)
	}
	phi, err := spectral.Conductance(ego, cut.A, cut.B)
	if err != nil {
		return nil, fmt.Errorf("mining: center %d: %w", center, err)
	}

	var boundary []dataset.Pair
	for _, e := range ego.Edges() {
		if (e.From == center || e.To == center) && cut.Crosses(e.From, e.To) {
			boundary = append(boundary, dataset.Pair{From: e.From, To: e.To})
		}
	}

	return &CenterCut{Center: center, Cut: cut, Conductance: phi, Boundary: boundary}, nil
}

// FindExamples cuts every center's ego-network on a worker pool
// (WithWorkers) and merges the boundary pairs. A pair reported by several
// centers is kept once (first center wins the orientation) with the lowest
// conductance among them. Pairs are ordered by ascending score, then
// negatives before positives, then ranker hardness, then (from,to).
// The result does not depend on the worker count.
func (m *SpectralMiner) FindExamples(ctx context.Context, limit Limit) (*Examples, error) {
	ctx, span := miningTracer.Start(ctx, "mining.SpectralMiner.FindExamples",
		trace.WithAttributes(
			attribute.String("limit", limit.String()),
			attribute.Int("ego_radius", m.opts.egoRadius),
			attribute.Int("workers", m.opts.workers),
		),
	)
	defer span.End()
	start := time.Now()

	if err := limit.validate(); err != nil {
		return nil, spanError(span, err)
	}

	centers := m.g.Vertices()
	cuts := make([]*CenterCut, len(centers))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(m.opts.workers)
	for i, c := range centers {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			cc, err := m.CutCenter(egCtx, c)
			if errors.Is(err, spectral.ErrDegenerateEgoNetwork) {
				return nil
			}
			if err != nil {
				return err
			}
			cuts[i] = cc
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, spanError(span, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, spanError(span, err)
	}

	ex := &Examples{}
	pos := make(map[dataset.Pair]int)
	for i, cc := range cuts {
		if cc == nil {
			ex.Skipped = append(ex.Skipped, centers[i])
			m.logger.Debug("center skipped", slog.Int("center", centers[i]))
			continue
		}
		ex.Centers = append(ex.Centers, *cc)
		for _, p := range cc.Boundary {
			key := p.Unordered()
			if at, seen := pos[key]; seen {
				if cc.Conductance < ex.Pairs[at].Score {
					ex.Pairs[at].Score = cc.Conductance
				}
				continue
			}
			pos[key] = len(ex.Pairs)
			ex.Pairs = append(ex.Pairs, ScoredPair{Pair: p, Kind: m.ds.Kind(p.From, p.To), Score: cc.Conductance})
		}
	}
	m.order(ex.Pairs)
	ex.Pairs = ex.Pairs[:limit.apply(len(ex.Pairs))]

	span.SetAttributes(
		attribute.Int("count", len(ex.Pairs)),
		attribute.Int("skipped", len(ex.Skipped)),
	)
	m.logger.Info("spectral scan finished",
		slog.Int("centers", len(centers)),
		slog.Int("skipped", len(ex.Skipped)),
		slog.Int("returned", len(ex.Pairs)),
		slog.Duration("took", time.Since(start)),
	)

	return ex, nil
}

// order sorts pairs by score, kind (negatives first), hardness, then (from,to).
func (m *SpectralMiner) order(pairs []ScoredPair) {
	dist := make(map[dataset.Pair]float64, len(pairs))
	for _, sp := range pairs {
		dist[sp.Pair] = m.ranker.cache.Distance(sp.Pair.From, sp.Pair.To)
	}
	sort.SliceStable(pairs, func(i, j int) bool {
		a, b := pairs[i], pairs[j]
		if a.Score != b.Score {
			return a.Score < b.Score
		}
		if a.Kind != b.Kind {
			return a.Kind == dataset.Negative
		}
		da, db := dist[a.Pair], dist[b.Pair]
		if da != db {
			if a.Kind == dataset.Negative {
				return da < db
			}
			return da > db
		}
		return a.Pair.Less(b.Pair)
	})
}

// FindPositive returns the same-label pairs of FindExamples, best first.
func (m *SpectralMiner) FindPositive(ctx context.Context, limit Limit) ([]dataset.Pair, error) {
	return m.filter(ctx, limit, dataset.Positive)
}

// FindNegative returns the different-label pairs of FindExamples, best first.
func (m *SpectralMiner) FindNegative(ctx context.Context, limit Limit) ([]dataset.Pair, error) {
	return m.filter(ctx, limit, dataset.Negative)
}

func (m *SpectralMiner) filter(ctx context.Context, limit Limit, kind dataset.PairKind) ([]dataset.Pair, error) {
	if err := limit.validate(); err != nil {
		return nil, err
	}
	ex, err := m.FindExamples(ctx, All())
	if err != nil {
		return nil, err
	}
	var out []dataset.Pair
	for _, sp := range ex.Pairs {
		if sp.Kind == kind {
			out = append(out, sp.Pair)
		}
	}
	return out[:limit.apply(len(out))], nil
}
