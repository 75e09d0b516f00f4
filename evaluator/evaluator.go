package evaluator

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/katalvlaran/hardmine/dataset"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distmv"
)

// DefaultRidge is added to every covariance diagonal entry.
const DefaultRidge = 1e-6

// MinBucketSize is the fewest pairs a bucket needs for a covariance.
const MinBucketSize = 2

var evaluatorTracer = otel.Tracer("hardmine.evaluator")

// Option configures Fit.
type Option func(*options)

type options struct {
	ridge  float64
	logger *slog.Logger
	err    error
}

// WithRidge sets the covariance ridge (≥ 0).
func WithRidge(r float64) Option {
	return func(o *options) {
		if math.IsNaN(r) || r < 0 {
			o.err = fmt.Errorf("evaluator: ridge %v must be ≥ 0: %w", r, dataset.ErrInvalidArgument)
			return
		}
		o.ridge = r
	}
}

// WithLogger sets the base logger; nil keeps slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// Evaluator holds the fitted pair-difference models. It is immutable after
// Fit and safe for concurrent use.
type Evaluator struct {
	ds     *dataset.Dataset
	models [2]*distmv.Normal // indexed by PairKind
	counts [2]int
	prior  [2]float64
	logger *slog.Logger
}

// bucket accumulates mean and scatter of difference vectors online.
type bucket struct {
	n       int
	mean    []float64
	scatter *mat.SymDense
	delta   []float64
}

func newBucket(d int) *bucket {
	return &bucket{mean: make([]float64, d), scatter: mat.NewSymDense(d, nil), delta: make([]float64, d)}
}

// add folds x in: M2 += (n−1)/n · δδᵀ with δ = x − mean_old.
func (b *bucket) add(x []float64) {
	b.n++
	n := float64(b.n)
	for i, v := range x {
		b.delta[i] = v - b.mean[i]
		b.mean[i] += b.delta[i] / n
	}
	if b.n > 1 {
		b.scatter.SymRankOne(b.scatter, (n-1)/n, mat.NewVecDense(len(b.delta), b.delta))
	}
}

// normal returns the fitted Gaussian (sample covariance plus ridge).
func (b *bucket) normal(ridge float64) (*distmv.Normal, bool) {
	d := len(b.mean)
	cov := mat.NewSymDense(d, nil)
	cov.ScaleSym(1/float64(b.n-1), b.scatter)
	for i := 0; i < d; i++ {
		cov.SetSym(i, i, cov.At(i, i)+ridge)
	}
	return distmv.NewNormal(append([]float64(nil), b.mean...), cov, nil)
}

// Fit fits the positive and negative pair models on every unordered pair of
// ds. Errors: ErrInvalidArgument for a nil dataset or bad options;
// ErrInsufficientData when a bucket has fewer than MinBucketSize pairs or a
// covariance is not positive definite; ctx.Err() on cancellation.
//
// Complexity: O(N²·d²) time, O(d²) space.
func Fit(ctx context.Context, ds *dataset.Dataset, opts ...Option) (*Evaluator, error) {
	o := options{ridge: DefaultRidge}
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if ds == nil {
		return nil, fmt.Errorf("evaluator: nil dataset: %w", dataset.ErrInvalidArgument)
	}
	base := o.logger
	if base == nil {
		base = slog.Default()
	}
	logger := base.With(slog.String("component", "evaluator"))
	start := time.Now()

	n, d := ds.Len(), ds.Dim()
	buckets := [2]*bucket{newBucket(d), newBucket(d)}
	for v := 0; v < n; v++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for u := v + 1; u < n; u++ {
			buckets[ds.Kind(v, u)].add(ds.AbsDiff(v, u))
		}
	}

	ev := &Evaluator{ds: ds, logger: logger}
	total := float64(n * (n - 1) / 2)
	for _, kind := range []dataset.PairKind{dataset.Positive, dataset.Negative} {
		b := buckets[kind]
		if b.n < MinBucketSize {
			return nil, fmt.Errorf("evaluator: %s bucket has %d pairs, need %d: %w",
				kind, b.n, MinBucketSize, dataset.ErrInsufficientData)
		}
		normal, ok := b.normal(o.ridge)
		if !ok {
			return nil, fmt.Errorf("evaluator: %s covariance not positive definite (ridge %g): %w",
				kind, o.ridge, dataset.ErrInsufficientData)
		}
		ev.models[kind] = normal
		ev.counts[kind] = b.n
		ev.prior[kind] = float64(b.n) / total
	}

	logger.Info("evaluator fitted",
		slog.Int("positive_pairs", ev.counts[dataset.Positive]),
		slog.Int("negative_pairs", ev.counts[dataset.Negative]),
		slog.Duration("took", time.Since(start)),
	)

	return ev, nil
}

// Count returns the number of pairs in the kind's bucket.
func (e *Evaluator) Count(kind dataset.PairKind) int {
	if !kind.Valid() {
		return 0
	}
	return e.counts[kind]
}

// Prior returns the share of all pairs in the kind's bucket.
func (e *Evaluator) Prior(kind dataset.PairKind) float64 {
	if !kind.Valid() {
		return 0
	}
	return e.prior[kind]
}

// Mean returns a copy of the fitted mean difference of kind.
func (e *Evaluator) Mean(kind dataset.PairKind) []float64 {
	if !kind.Valid() {
		return nil
	}
	return e.models[kind].Mean(nil)
}

func (e *Evaluator) checkDiff(diff []float64) error {
	if len(diff) != e.ds.Dim() {
		return fmt.Errorf("evaluator: diff has %d features, want %d: %w", len(diff), e.ds.Dim(), dataset.ErrInvalidArgument)
	}
	return nil
}

// BelongProb returns pdf_kind(diff)·prior_kind, an unnormalized likelihood.
// Errors: ErrInvalidArgument for an invalid kind or a wrong-length diff.
func (e *Evaluator) BelongProb(diff []float64, kind dataset.PairKind) (float64, error) {
	if !kind.Valid() {
		return 0, fmt.Errorf("evaluator: pair kind %s: %w", kind, dataset.ErrInvalidArgument)
	}
	if err := e.checkDiff(diff); err != nil {
		return 0, err
	}
	return e.models[kind].Prob(diff) * e.prior[kind], nil
}

// BelongProbTag is BelongProb with the kind given as "pos" or "neg".
func (e *Evaluator) BelongProbTag(diff []float64, tag string) (float64, error) {
	kind, err := dataset.ParsePairKind(tag)
	if err != nil {
		return 0, err
	}
	return e.BelongProb(diff, kind)
}

// LogRatio returns r(diff) = log(p_pos·π_pos) − log(p_neg·π_neg).
func (e *Evaluator) LogRatio(diff []float64) (float64, error) {
	if err := e.checkDiff(diff); err != nil {
		return 0, err
	}
	pos := e.models[dataset.Positive].LogProb(diff) + math.Log(e.prior[dataset.Positive])
	neg := e.models[dataset.Negative].LogProb(diff) + math.Log(e.prior[dataset.Negative])
	return pos - neg, nil
}

// Hardness scores pair p as a member of kind: σ(−r) for positives, σ(r) for
// negatives. The result lies in [0, 1].
func (e *Evaluator) Hardness(p dataset.Pair, kind dataset.PairKind) (float64, error) {
	if !kind.Valid() {
		return 0, fmt.Errorf("evaluator: pair kind %s: %w", kind, dataset.ErrInvalidArgument)
	}
	if err := e.ds.CheckPair(p); err != nil {
		return 0, err
	}
	r, err := e.LogRatio(e.ds.AbsDiff(p.From, p.To))
	if err != nil {
		return 0, err
	}
	if kind == dataset.Positive {
		r = -r
	}
	return logistic(r), nil
}

// Evaluate returns the mean hardness of pos (scored as positives) and neg
// (scored as negatives). An empty batch scores 0.
func (e *Evaluator) Evaluate(ctx context.Context, pos, neg []dataset.Pair) (float64, error) {
	ctx, span := evaluatorTracer.Start(ctx, "evaluator.Evaluator.Evaluate",
		trace.WithAttributes(
			attribute.Int("positives", len(pos)),
			attribute.Int("negatives", len(neg)),
		),
	)
	defer span.End()

	var sum float64
	batches := []struct {
		kind  dataset.PairKind
		pairs []dataset.Pair
	}{{dataset.Positive, pos}, {dataset.Negative, neg}}
	for _, batch := range batches {
		for _, p := range batch.pairs {
			if err := ctx.Err(); err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, "context cancelled")
				return 0, err
			}
			h, err := e.Hardness(p, batch.kind)
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
				return 0, err
			}
			sum += h
		}
	}
	total := len(pos) + len(neg)
	if total == 0 {
		return 0, nil
	}
	score := sum / float64(total)
	span.SetAttributes(attribute.Float64("score", score))
	e.logger.Debug("batch evaluated", slog.Int("pairs", total), slog.Float64("score", score))

	return score, nil
}

// logistic is σ(x) = 1/(1+e^−x), evaluated without overflow.
func logistic(x float64) float64 {
	if x >= 0 {
		return 1 / (1 + math.Exp(-x))
	}
	z := math.Exp(x)
	return z / (1 + z)
}
