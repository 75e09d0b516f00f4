package similarity

import (
	"fmt"
	"math"

	"github.com/katalvlaran/hardmine/dataset"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// DefaultCutoff is the distance above which pairs get similarity 0.
const DefaultCutoff = 1.0

// Option configures GaussianMatrix.
type Option func(*options)

type options struct {
	cutoff float64
	sigma  float64 // 0 means "estimate from the data"
	err    error
}

// WithCutoff sets the far-distance cutoff. It must be positive (+Inf allowed).
func WithCutoff(c float64) Option {
	return func(o *options) {
		if math.IsNaN(c) || c <= 0 {
			o.err = fmt.Errorf("similarity: cutoff %v must be positive: %w", c, dataset.ErrInvalidArgument)
			return
		}
		o.cutoff = c
	}
}

// WithSigma fixes the kernel bandwidth instead of estimating it.
func WithSigma(s float64) Option {
	return func(o *options) {
		if math.IsNaN(s) || math.IsInf(s, 0) || s <= 0 {
			o.err = fmt.Errorf("similarity: sigma %v must be positive and finite: %w", s, dataset.ErrInvalidArgument)
			return
		}
		o.sigma = s
	}
}

// GaussianMatrix returns the symmetric N×N matrix with
//
//	S[i][j] = exp(−d(i,j)/σ)  if d(i,j) ≤ cutoff and i ≠ j
//	S[i][j] = 0               otherwise.
//
// σ is the population standard deviation of the off-diagonal distances
// greater than the cutoff. With no such distances (or zero spread) σ falls
// back to the standard deviation of all off-diagonal distances, then to 1.
//
// Complexity: O(N²·d) time, O(N²) space.
func GaussianMatrix(ds *dataset.Dataset, opts ...Option) (*mat.SymDense, error) {
	if ds == nil {
		return nil, fmt.Errorf("similarity: GaussianMatrix(nil): %w", dataset.ErrInvalidArgument)
	}
	cfg := options{cutoff: DefaultCutoff}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	d := ds.Distances()
	sigma := cfg.sigma
	if sigma == 0 {
		sigma = Bandwidth(d, cfg.cutoff)
	}

	n := d.SymmetricDim()
	out := mat.NewSymDense(n, nil)
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			dist := d.At(i, j)
			if dist > cfg.cutoff {
				continue
			}
			out.SetSym(i, j, math.Exp(-dist/sigma))
		}
	}

	return out, nil
}

// Bandwidth estimates σ from a symmetric distance matrix as described on
// GaussianMatrix. The result is always positive.
func Bandwidth(d mat.Symmetric, cutoff float64) float64 {
	n := d.SymmetricDim()
	far := make([]float64, 0, n)
	all := make([]float64, 0, n*(n-1)/2)
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			v := d.At(i, j)
			all = append(all, v)
			if v > cutoff {
				far = append(far, v)
			}
		}
	}
	for _, xs := range [][]float64{far, all} {
		if len(xs) == 0 {
			continue
		}
		if _, std := stat.PopMeanStdDev(xs, nil); std > 0 {
			return std
		}
	}

	return 1
}
