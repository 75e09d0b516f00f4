package mining

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/katalvlaran/hardmine/core"
	"github.com/katalvlaran/hardmine/dataset"
	"github.com/katalvlaran/hardmine/evaluator"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Session owns a dataset, its graph and the miners built on them.
// All mining calls on a Session are serialised.
type Session struct {
	id     uuid.UUID
	ds     *dataset.Dataset
	g      *core.Graph
	opts   []Option
	o      options
	logger *slog.Logger

	mu       sync.Mutex
	cycle    *CycleMiner
	spectral *SpectralMiner
	eval     *evaluator.Evaluator
}

// NewSession validates ds, g and opts and returns a Session with a fresh id.
// Miners and the evaluator are built lazily on first use.
func NewSession(ds *dataset.Dataset, g *core.Graph, opts ...Option) (*Session, error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}
	if err = checkInputs(ds, g); err != nil {
		return nil, err
	}
	if err = ValidateMetric(o.metric); err != nil {
		return nil, err
	}
	id := uuid.New()
	s := &Session{
		id:     id,
		ds:     ds,
		g:      g,
		opts:   append([]Option(nil), opts...),
		o:      o,
		logger: o.component("mining.session").With(slog.String("session", id.String())),
	}
	s.logger.Info("session opened",
		slog.Int("rows", ds.Len()),
		slog.Int("vertices", g.VertexCount()),
		slog.Int("edges", g.EdgeCount()),
		slog.String("graph", g.Kind().String()),
	)

	return s, nil
}

// ID returns the session id.
func (s *Session) ID() uuid.UUID { return s.id }

// Dataset returns the session dataset.
func (s *Session) Dataset() *dataset.Dataset { return s.ds }

// Graph returns the session graph.
func (s *Session) Graph() *core.Graph { return s.g }

// Cycle returns the session's CycleMiner.
func (s *Session) Cycle() (*CycleMiner, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cycleLocked()
}

func (s *Session) cycleLocked() (*CycleMiner, error) {
	if s.cycle == nil {
		m, err := NewCycleMiner(s.ds, s.g, s.opts...)
		if err != nil {
			return nil, err
		}
		s.cycle = m
	}
	return s.cycle, nil
}

// Spectral returns the session's SpectralMiner.
func (s *Session) Spectral() (*SpectralMiner, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.spectralLocked()
}

func (s *Session) spectralLocked() (*SpectralMiner, error) {
	if s.spectral == nil {
		m, err := NewSpectralMiner(s.ds, s.g, s.opts...)
		if err != nil {
			return nil, err
		}
		s.spectral = m
	}
	return s.spectral, nil
}

// Evaluator returns the session's evaluator, fitting it on first use.
func (s *Session) Evaluator(ctx context.Context) (*evaluator.Evaluator, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.evaluatorLocked(ctx)
}

func (s *Session) evaluatorLocked(ctx context.Context) (*evaluator.Evaluator, error) {
	if s.eval == nil {
		ev, err := evaluator.Fit(ctx, s.ds, evaluator.WithRidge(s.o.ridge), evaluator.WithLogger(s.o.logger))
		if err != nil {
			return nil, err
		}
		s.eval = ev
	}
	return s.eval, nil
}

func (s *Session) minerLocked(strategy Strategy) (Miner, error) {
	var (
		m   Miner
		err error
	)
	switch strategy {
	case StrategyCycle:
		if s.cycle, err = s.cycleLocked(); err == nil {
			m = s.cycle
		}
	case StrategySpectral:
		if s.spectral, err = s.spectralLocked(); err == nil {
			m = s.spectral
		}
	default:
		m, err = NewMiner(strategy, s.ds, s.g, s.opts...)
	}
	return m, err
}

// Mine runs one mining call of strategy for kind under the session lock.
func (s *Session) Mine(ctx context.Context, strategy Strategy, kind dataset.PairKind, limit Limit) ([]dataset.Pair, error) {
	ctx, span := miningTracer.Start(ctx, "mining.Session.Mine",
		trace.WithAttributes(
			attribute.String("session", s.id.String()),
			attribute.String("strategy", strategy.String()),
			attribute.String("kind", kind.String()),
		),
	)
	defer span.End()

	if !kind.Valid() {
		return nil, spanError(span, fmt.Errorf("mining: pair kind %s: %w", kind, dataset.ErrInvalidArgument))
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.minerLocked(strategy)
	if err != nil {
		return nil, spanError(span, err)
	}
	var pairs []dataset.Pair
	if kind == dataset.Positive {
		pairs, err = m.FindPositive(ctx, limit)
	} else {
		pairs, err = m.FindNegative(ctx, limit)
	}
	if err != nil {
		return nil, spanError(span, err)
	}
	span.SetAttributes(attribute.Int("count", len(pairs)))

	return pairs, nil
}

// Report is the outcome of Session.Run.
type Report struct {
	Session   uuid.UUID
	Strategy  Strategy
	Positives []dataset.Pair
	Negatives []dataset.Pair
	// Score is the evaluator's mean hardness of Positives and Negatives.
	Score float64
}

// Run mines positives and negatives with strategy and scores them with the
// session evaluator.
func (s *Session) Run(ctx context.Context, strategy Strategy, limit Limit) (*Report, error) {
	pos, err := s.Mine(ctx, strategy, dataset.Positive, limit)
	if err != nil {
		return nil, err
	}
	neg, err := s.Mine(ctx, strategy, dataset.Negative, limit)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	ev, err := s.evaluatorLocked(ctx)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}
	score, err := ev.Evaluate(ctx, pos, neg)
	if err != nil {
		return nil, err
	}
	s.logger.Info("session run finished",
		slog.String("strategy", strategy.String()),
		slog.Int("positives", len(pos)),
		slog.Int("negatives", len(neg)),
		slog.Float64("score", score),
	)

	return &Report{Session: s.id, Strategy: strategy, Positives: pos, Negatives: neg, Score: score}, nil
}
