// SPDX-License-Identifier: MIT
// Package: hardmine/dataset
//
// errors.go — sentinel errors shared by every hardmine package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with fmt.Errorf("...: %w", ErrX).
//   • No package in this module panics on bad input; option violations are
//     recorded and surfaced as ErrInvalidArgument when the call runs.

package dataset

import "errors"

var (
	// ErrInvalidArgument indicates malformed input: bad shapes, out-of-range
	// neighbor counts or indices, negative radii, unknown metric names or
	// unknown pair-type tags.
	ErrInvalidArgument = errors.New("hardmine: invalid argument")

	// ErrNotImplemented indicates a recognised variant that this module does
	// not support (non-Euclidean metrics, the Exemplar-SVM strategy).
	ErrNotImplemented = errors.New("hardmine: not implemented")

	// ErrInsufficientData indicates that a statistical model cannot be fit
	// because a bucket has too few samples.
	ErrInsufficientData = errors.New("hardmine: insufficient data")
)
