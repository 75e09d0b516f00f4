// SPDX-License-Identifier: MIT
// Package: hardmine/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Every builder sentinel also matches dataset.ErrInvalidArgument.
//   • Context is attached with builderErrorf(method, ...) so messages read
//     "<Method>: <detail>: <sentinel>".

package builder

import (
	"fmt"

	"github.com/katalvlaran/hardmine/dataset"
)

// ErrBadNeighborCount indicates k outside [1, N−1].
var ErrBadNeighborCount = fmt.Errorf("builder: neighbor count out of range: %w", dataset.ErrInvalidArgument)

// ErrBadEpsilon indicates a negative or NaN ball radius.
var ErrBadEpsilon = fmt.Errorf("builder: epsilon must be non-negative: %w", dataset.ErrInvalidArgument)

// ErrNilDataset indicates that a nil *dataset.Dataset was passed.
var ErrNilDataset = fmt.Errorf("builder: dataset is nil: %w", dataset.ErrInvalidArgument)

// builderErrorf prefixes an error with the constructor name, keeping err in the chain.
func builderErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
