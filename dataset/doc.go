// Package dataset holds the immutable labeled feature matrix that every other
// hardmine package reads from, together with the shared pair vocabulary
// (Pair, PairKind) and the cross-package sentinel errors.
//
// A Dataset is an N×d real matrix paired with an N-length categorical label
// vector. Labels may be of any comparable type; they are interned into dense
// class indices (first-appearance order) at construction time, so downstream
// packages never need to be generic over the label type.
//
// Invariants (checked by New):
//
//   - N ≥ 2 rows, d ≥ 1 columns, every row has exactly d values.
//   - len(labels) == N.
//   - Every feature value is finite (no NaN / ±Inf).
//
// The Dataset deep-copies its input and exposes no mutators; it is safe for
// concurrent readers.
//
// Errors:
//
//	ErrInvalidArgument  - malformed input (shape, range, metric or tag).
//	ErrNotImplemented   - a recognised but unsupported variant (e.g. metric).
//	ErrInsufficientData - not enough samples to fit a statistical model.
//
// Distances:
//
//	Distance(v,u) returns the Euclidean distance between rows v and u.
//	DistanceCache memoizes that computation behind a bounded LRU, which the
//	mining ranker uses when it repeatedly sorts the same candidate pairs.
package dataset
