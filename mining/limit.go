package mining

import (
	"fmt"

	"github.com/katalvlaran/hardmine/dataset"
)

// Limit caps the number of pairs returned by a mining call.
type Limit struct {
	k   int
	all bool
}

// All returns every qualifying pair.
func All() Limit { return Limit{all: true} }

// Top returns at most k pairs. k must be non-negative.
func Top(k int) Limit { return Limit{k: k} }

// IsAll reports whether the limit is unbounded.
func (l Limit) IsAll() bool { return l.all }

// K returns the cap; meaningless when IsAll.
func (l Limit) K() int { return l.k }

func (l Limit) String() string {
	if l.all {
		return "all"
	}
	return fmt.Sprintf("top(%d)", l.k)
}

func (l Limit) validate() error {
	if !l.all && l.k < 0 {
		return fmt.Errorf("mining: limit %s: %w", l, dataset.ErrInvalidArgument)
	}
	return nil
}

// apply truncates pairs to the limit.
func (l Limit) apply(n int) int {
	if l.all || l.k >= n {
		return n
	}
	return l.k
}

// Bound caps the length of a cycle.
type Bound struct {
	ell       int
	unbounded bool
}

// Unbounded accepts any finite cycle.
func Unbounded() Bound { return Bound{unbounded: true} }

// AtMost accepts cycles of at most ell edges. Without self-loops the
// shortest cycle has 2 edges, so ell < 2 never matches.
func AtMost(ell int) Bound { return Bound{ell: ell} }

// IsUnbounded reports whether any finite length is accepted.
func (b Bound) IsUnbounded() bool { return b.unbounded }

// Ell returns the cap; meaningless when IsUnbounded.
func (b Bound) Ell() int { return b.ell }

// Admits reports whether a cycle of the given length qualifies.
func (b Bound) Admits(length float64) bool {
	if b.unbounded {
		return length < inf
	}
	return length <= float64(b.ell)
}

func (b Bound) String() string {
	if b.unbounded {
		return "unbounded"
	}
	return fmt.Sprintf("at-most(%d)", b.ell)
}
