package mining

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/hardmine/dataset"
)

// Metric names understood by ParseMetric.
const (
	MetricEuclidean = "euclidean"
	MetricCosine    = "cosine"
	MetricManhattan = "manhattan"
)

// ValidateMetric accepts MetricEuclidean. Other known or unknown names
// return ErrNotImplemented; the empty name returns ErrInvalidArgument.
func ValidateMetric(name string) error {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "":
		return fmt.Errorf("mining: empty metric name: %w", dataset.ErrInvalidArgument)
	case MetricEuclidean:
		return nil
	default:
		return fmt.Errorf("mining: metric %q: %w", name, dataset.ErrNotImplemented)
	}
}

// Ranker measures pair distances and orders pairs by hardness.
// Distances are memoized in a bounded LRU cache; Ranker is safe for
// concurrent use.
type Ranker struct {
	cache *dataset.DistanceCache
}

// NewRanker builds a Ranker over ds. Honors WithMetric and WithCacheSize.
func NewRanker(ds *dataset.Dataset, opts ...Option) (*Ranker, error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}
	return newRanker(ds, o)
}

func newRanker(ds *dataset.Dataset, o options) (*Ranker, error) {
	if err := ValidateMetric(o.metric); err != nil {
		return nil, err
	}
	cache, err := dataset.NewDistanceCache(ds, o.cacheSize)
	if err != nil {
		return nil, fmt.Errorf("mining: ranker: %w", err)
	}
	return &Ranker{cache: cache}, nil
}

// Distance returns the metric distance between rows v and u.
func (r *Ranker) Distance(v, u int) (float64, error) {
	if err := r.cache.Dataset().CheckPair(dataset.Pair{From: v, To: u}); err != nil {
		return 0, err
	}
	return r.cache.Distance(v, u), nil
}

// RankNegative returns pairs ordered by ascending distance (closest, i.e.
// hardest, negatives first). The sort is stable; the input is not modified.
func (r *Ranker) RankNegative(pairs []dataset.Pair) ([]dataset.Pair, error) {
	return r.rank(pairs, false)
}

// RankPositive returns pairs ordered by descending distance (farthest, i.e.
// hardest, positives first). The sort is stable; the input is not modified.
func (r *Ranker) RankPositive(pairs []dataset.Pair) ([]dataset.Pair, error) {
	return r.rank(pairs, true)
}

func (r *Ranker) rank(pairs []dataset.Pair, desc bool) ([]dataset.Pair, error) {
	ds := r.cache.Dataset()
	keys := make([]float64, len(pairs))
	for i, p := range pairs {
		if err := ds.CheckPair(p); err != nil {
			return nil, err
		}
		keys[i] = r.cache.Distance(p.From, p.To)
	}
	order := make([]int, len(pairs))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		if desc {
			return keys[order[a]] > keys[order[b]]
		}
		return keys[order[a]] < keys[order[b]]
	})
	out := make([]dataset.Pair, len(pairs))
	for i, j := range order {
		out[i] = pairs[j]
	}

	return out, nil
}

// Dataset returns the dataset the ranker measures.
func (r *Ranker) Dataset() *dataset.Dataset { return r.cache.Dataset() }
