// Package confusion: options and result types.
package confusion

import "github.com/mkravets/biaskit/matrix"

// Options configures row normalization in both builders.
//
// Fields:
//   - ZeroRows — what to do with a row whose sum does not exceed Epsilon:
//     matrix.ZeroRowsAsZero leaves it untouched (all-zero for count
//     matrices), matrix.ZeroRowsNaN divides through and lets 0/0 become
//     NaN, reproducing the historical unguarded division bit-for-bit.
//   - Epsilon — row-sum threshold for the zero-row decision. The default
//     of 0 matches an exact equality check against zero mass.
//
// Example:
//
//	opts := confusion.DefaultOptions()
//	opts.ZeroRows = matrix.ZeroRowsNaN // numerical parity mode
//	res, err := confusion.Matrices(10, targets, biases, &opts)
type Options struct {
	ZeroRows matrix.ZeroRowPolicy
	Epsilon  float64
}

// DefaultOptions returns the canonical configuration: degenerate rows
// stay all-zero, epsilon 0.
func DefaultOptions() Options {
	return Options{ZeroRows: matrix.ZeroRowsAsZero, Epsilon: 0}
}

// Result holds the three matrices produced by Matrices.
//
// Orientation is encoded in the field names and must not be confused:
// Raw and Normalized are bias-as-row / target-as-column; NormalizedByTarget
// is target-as-row / bias-as-column, accumulated independently (it is NOT
// the transpose of Normalized).
type Result struct {
	// Raw counts examples at [bias][target].
	Raw *matrix.Dense

	// Normalized is Raw with each bias row divided by its own sum.
	Normalized *matrix.Dense

	// NormalizedByTarget counts at [target][bias], then row-normalizes
	// over target rows.
	NormalizedByTarget *matrix.Dense
}

// WeightedResult holds the two matrices produced by WeightedMatrices.
// Both are bias-as-row / target-as-column.
type WeightedResult struct {
	// Surprise is the inverse-mean-confidence weighting: cells with high
	// average marginal get low surprise; never-occurring cells are exactly 0.
	Surprise *matrix.Dense

	// Normalized is Surprise with each bias row divided by its own sum.
	Normalized *matrix.Dense
}
