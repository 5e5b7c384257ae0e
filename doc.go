// Package biaskit is a toolkit for analyzing spurious-attribute bias in
// classification datasets: co-occurrence statistics between target labels
// and bias labels, plus fetchers for the standard bias benchmarks.
//
// 🚀 What is biaskit?
//
//	A small, deterministic library built around one question: how often
//	does each bias-attribute value co-occur with each target class?
//		• confusion/ — supervised co-occurrence matrices (raw counts and
//		  row-normalized, in both orientations) and the unsupervised
//		  "surprise" estimator for confidence-weighted bias predictions
//		• matrix/    — row-major dense float64 matrices with bounds-safe
//		  accessors and L1 row normalization
//		• dataset/   — download & extract CelebA, UTKFace, Waterbirds and
//		  ImageNet-9 (the numeric packages never touch I/O)
//		• cmd/biasfetch — CLI front end for dataset/
//
// ✨ Why choose biaskit?
//
//   - Pure functions – fresh matrices on every call, no shared state,
//     safe for concurrent use without locking
//   - Explicit edge cases – degenerate rows and never-occurring cells are
//     governed by a documented policy, not silent NaNs
//   - Fail-fast contracts – out-of-range labels and mismatched sequence
//     lengths return sentinel errors before anything is computed
//
// Quick example:
//
//	res, err := confusion.Matrices(numClasses, targets, biases, nil)
//	if err != nil {
//		// ErrLabelOutOfRange, ErrLengthMismatch, ...
//	}
//	// res.Raw counts at [bias][target]; res.Normalized is per-bias-row.
//
// See each subpackage's doc.go for algorithms, complexity, and errors.
package biaskit
