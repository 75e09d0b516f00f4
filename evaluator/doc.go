// Package evaluator scores how "hard" mined pairs are against the pair
// distribution of the whole dataset.
//
// Fit enumerates every unordered pair of rows, buckets it by label relation
// (positive: same label, negative: different labels) and fits one
// multivariate Gaussian per bucket over the absolute per-feature differences
// |x_v − x_u|, plus each bucket's prior (its share of all pairs). Mean and
// covariance are accumulated online (Welford), so memory is O(d²) rather than
// O(N²·d). A small ridge is added to the covariance diagonal.
//
// For a difference vector x the log-likelihood ratio is
//
//	r(x) = log(p_pos(x)·π_pos) − log(p_neg(x)·π_neg).
//
// A positive pair is hard when it looks negative (hardness σ(−r)); a negative
// pair is hard when it looks positive (hardness σ(r)); σ is the logistic
// function. Evaluate averages the hardness of a batch, giving a score in
// [0, 1] where higher means harder pairs.
package evaluator
