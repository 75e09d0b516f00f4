// SPDX-License-Identifier: MIT

package dataset

import (
	"fmt"
	"math"

	"github.com/viterin/vek"
	"gonum.org/v1/gonum/mat"
)

// MinRows is the smallest number of samples a Dataset accepts.
const MinRows = 2

// Dataset is an immutable N×d feature matrix with interned class labels.
//
// Storage is a single row-major buffer so that a row view is a cheap
// sub-slice and the whole matrix can be wrapped by gonum without copying.
type Dataset struct {
	rows, cols int
	data       []float64 // row-major, len == rows*cols
	class      []int     // class index per row
	numClasses int
}

// New validates x and labels and returns a Dataset owning deep copies of both.
// Labels are interned into class indices in first-appearance order.
//
// Errors: ErrInvalidArgument (wrapped with the failing check).
// Complexity: O(N·d) time and space.
func New[L comparable](x [][]float64, labels []L) (*Dataset, error) {
	n := len(x)
	if n < MinRows {
		return nil, fmt.Errorf("dataset: need at least %d rows, got %d: %w", MinRows, n, ErrInvalidArgument)
	}
	if len(labels) != n {
		return nil, fmt.Errorf("dataset: %d rows but %d labels: %w", n, len(labels), ErrInvalidArgument)
	}
	d := len(x[0])
	if d == 0 {
		return nil, fmt.Errorf("dataset: rows have no features: %w", ErrInvalidArgument)
	}

	ds := &Dataset{
		rows:  n,
		cols:  d,
		data:  make([]float64, 0, n*d),
		class: make([]int, n),
	}
	for i, row := range x {
		if len(row) != d {
			return nil, fmt.Errorf("dataset: row %d has %d values, want %d: %w", i, len(row), d, ErrInvalidArgument)
		}
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("dataset: non-finite value at (%d,%d): %w", i, j, ErrInvalidArgument)
			}
		}
		ds.data = append(ds.data, row...)
	}

	// Intern labels; first appearance gets the next class index.
	index := make(map[L]int)
	for i, l := range labels {
		c, ok := index[l]
		if !ok {
			c = len(index)
			index[l] = c
		}
		ds.class[i] = c
	}
	ds.numClasses = len(index)

	return ds, nil
}

// Len returns N, the number of samples.
func (ds *Dataset) Len() int { return ds.rows }

// Dim returns d, the number of features per sample.
func (ds *Dataset) Dim() int { return ds.cols }

// NumClasses returns the number of distinct labels.
func (ds *Dataset) NumClasses() int { return ds.numClasses }

// Class returns the interned class index of row i.
// Callers must pass a valid index (see CheckIndex).
func (ds *Dataset) Class(i int) int { return ds.class[i] }

// CheckIndex reports ErrInvalidArgument when i is not a valid row index.
func (ds *Dataset) CheckIndex(i int) error {
	if i < 0 || i >= ds.rows {
		return fmt.Errorf("dataset: index %d out of range [0,%d): %w", i, ds.rows, ErrInvalidArgument)
	}

	return nil
}

// Row returns a copy of row i.
func (ds *Dataset) Row(i int) []float64 {
	out := make([]float64, ds.cols)
	copy(out, ds.view(i))

	return out
}

// view returns row i as a capacity-clipped sub-slice of the backing buffer.
// The result must not be written to.
func (ds *Dataset) view(i int) []float64 {
	lo := i * ds.cols
	hi := lo + ds.cols

	return ds.data[lo:hi:hi]
}

// Kind classifies the pair (v,u) by label equality.
func (ds *Dataset) Kind(v, u int) PairKind {
	if ds.class[v] == ds.class[u] {
		return Positive
	}

	return Negative
}

// Distance returns the Euclidean distance between rows v and u.
func (ds *Dataset) Distance(v, u int) float64 {
	if v == u {
		return 0
	}

	return vek.Distance(ds.view(v), ds.view(u))
}

// AbsDiff returns the per-dimension absolute difference |x_v - x_u|.
func (ds *Dataset) AbsDiff(v, u int) []float64 {
	diff := vek.Sub(ds.view(v), ds.view(u))
	vek.Abs_Inplace(diff)

	return diff
}

// Matrix returns a gonum copy of the feature matrix.
func (ds *Dataset) Matrix() *mat.Dense {
	buf := make([]float64, len(ds.data))
	copy(buf, ds.data)

	return mat.NewDense(ds.rows, ds.cols, buf)
}

// Distances returns the full symmetric N×N Euclidean distance matrix.
// Complexity: O(N²·d) time, O(N²) space.
func (ds *Dataset) Distances() *mat.SymDense {
	n := ds.rows
	out := mat.NewSymDense(n, nil)
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			out.SetSym(i, j, ds.Distance(i, j))
		}
	}

	return out
}
