// SPDX-License-Identifier: MIT
// Package: hardmine/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults: distance weights, no similarity options.
//   • newBuilderConfig applies options in order (later overrides earlier).

package builder

import (
	"github.com/katalvlaran/hardmine/core"
	"github.com/katalvlaran/hardmine/similarity"
)

// weighting selects the edge-weight source.
type weighting int

const (
	weightDistance weighting = iota
	weightNone
	weightSimilarity
)

// Method tokens used as error prefixes.
const (
	MethodKNN         = "KNN"
	MethodEpsilonBall = "EpsilonBall"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	weighting weighting
	simOpts   []similarity.Option
}

// newBuilderConfig constructs a config with defaults and applies opts in order.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{weighting: weightDistance}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// kind maps the weighting to the graph's core.WeightKind.
func (c builderConfig) kind() core.WeightKind {
	switch c.weighting {
	case weightNone:
		return core.Unweighted
	case weightSimilarity:
		return core.Similarity
	default:
		return core.Distance
	}
}
