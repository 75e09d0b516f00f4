// SPDX-License-Identifier: MIT
// Package: hardmine/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • The weight options are mutually exclusive; the last one wins.
//   • Invalid forwarded similarity options surface as errors from the
//     constructor, never as panics.

package builder

import "github.com/katalvlaran/hardmine/similarity"

// BuilderOption customizes a constructor by mutating builderConfig.
type BuilderOption func(*builderConfig)

// WithDistanceWeights weights edges by Euclidean distance (the default).
func WithDistanceWeights() BuilderOption {
	return func(c *builderConfig) {
		c.weighting = weightDistance
		c.simOpts = nil
	}
}

// WithUnweighted builds an unweighted graph.
func WithUnweighted() BuilderOption {
	return func(c *builderConfig) {
		c.weighting = weightNone
		c.simOpts = nil
	}
}

// WithSimilarity weights edges by the Gaussian similarity matrix of the whole
// dataset. opts are forwarded to similarity.GaussianMatrix.
func WithSimilarity(opts ...similarity.Option) BuilderOption {
	return func(c *builderConfig) {
		c.weighting = weightSimilarity
		c.simOpts = opts
	}
}
