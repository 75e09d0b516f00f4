package similarity

import (
	"fmt"

	"github.com/katalvlaran/hardmine/core"
	"github.com/katalvlaran/hardmine/dataset"
)

// ReciprocalWeight is the monotone decreasing map [0, ∞) → (0, 1].
func ReciprocalWeight(distance float64) float64 {
	return 1 / (distance + 1)
}

// Reciprocal returns a copy of g whose weights are ReciprocalWeight(w) and
// whose kind is core.Similarity. g itself is not modified.
//
// Errors: ErrInvalidArgument if g is nil or not distance-weighted.
// Complexity: O(V + E).
func Reciprocal(g *core.Graph) (*core.Graph, error) {
	if g == nil {
		return nil, fmt.Errorf("similarity: Reciprocal(nil): %w", dataset.ErrInvalidArgument)
	}
	if kind := g.Kind(); kind != core.Distance {
		return nil, fmt.Errorf("similarity: Reciprocal needs a %s graph, got %s: %w",
			core.Distance, kind, dataset.ErrInvalidArgument)
	}

	return core.Reweighted(g, core.Similarity, func(e *core.Edge) float64 {
		return ReciprocalWeight(e.Weight)
	})
}
