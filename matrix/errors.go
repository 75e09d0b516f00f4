// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All functions return these sentinels (possibly wrapped with an operation
// tag); tests check them via errors.Is. Nothing here panics on user input.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrGraphNil indicates that a nil *core.Graph was passed into an adapter.
	ErrGraphNil = errors.New("matrix: graph is nil")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNonZeroDiagonal signals a distance matrix whose diagonal is not all zero.
	ErrNonZeroDiagonal = errors.New("matrix: diagonal not zero")

	// ErrNaN signals a NaN entry in a distance matrix.
	ErrNaN = errors.New("matrix: NaN encountered")
)

// matrixErrorf tags err with the operation name.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
