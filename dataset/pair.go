// SPDX-License-Identifier: MIT

package dataset

import (
	"fmt"
	"strings"
)

// Pair is an ordered (From, To) tuple of row indices.
type Pair struct {
	From int
	To   int
}

// String renders the pair as "(from,to)".
func (p Pair) String() string { return fmt.Sprintf("(%d,%d)", p.From, p.To) }

// Reversed returns (To, From).
func (p Pair) Reversed() Pair { return Pair{From: p.To, To: p.From} }

// Unordered returns the pair with From ≤ To; used as a symmetric map key.
func (p Pair) Unordered() Pair {
	if p.From > p.To {
		return p.Reversed()
	}

	return p
}

// Less orders pairs by From, then To.
func (p Pair) Less(q Pair) bool {
	if p.From != q.From {
		return p.From < q.From
	}

	return p.To < q.To
}

// PairKind is the semantic class of a pair: same label or different label.
type PairKind int

const (
	// Positive marks a same-label pair.
	Positive PairKind = iota
	// Negative marks a different-label pair.
	Negative
)

// String returns "pos" or "neg"; anything else renders as "PairKind(n)".
func (k PairKind) String() string {
	switch k {
	case Positive:
		return "pos"
	case Negative:
		return "neg"
	default:
		return fmt.Sprintf("PairKind(%d)", int(k))
	}
}

// Valid reports whether k is Positive or Negative.
func (k PairKind) Valid() bool { return k == Positive || k == Negative }

// ParsePairKind maps "pos"/"positive" and "neg"/"negative" (case-insensitive)
// to a PairKind. Any other tag yields ErrInvalidArgument.
func ParsePairKind(tag string) (PairKind, error) {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "pos", "positive":
		return Positive, nil
	case "neg", "negative":
		return Negative, nil
	}

	return 0, fmt.Errorf("dataset: unknown pair type %q: %w", tag, ErrInvalidArgument)
}

// CheckPair validates both endpoints of p against ds.
func (ds *Dataset) CheckPair(p Pair) error {
	if err := ds.CheckIndex(p.From); err != nil {
		return err
	}

	return ds.CheckIndex(p.To)
}

// SplitByKind partitions pairs into same-label and different-label slices,
// preserving input order.
func (ds *Dataset) SplitByKind(pairs []Pair) (pos, neg []Pair) {
	for _, p := range pairs {
		if ds.Kind(p.From, p.To) == Positive {
			pos = append(pos, p)
		} else {
			neg = append(neg, p)
		}
	}

	return pos, neg
}
