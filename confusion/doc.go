// Package confusion builds label×bias co-occurrence matrices for bias
// analysis in classification datasets, where each example carries a target
// label and a (possibly noisy or model-predicted) bias-attribute label.
//
// What:
//
//   - Matrices counts (target, bias) pairs into a numClasses×numClasses
//     matrix in both orientations (bias-as-row and target-as-row) and
//     row-normalizes each.
//   - WeightedMatrices handles the unsupervised setting where each bias
//     assignment carries a marginal confidence weight: it accumulates
//     confidence-weighted co-occurrences, inverts the per-cell mean
//     confidence into a "surprise" weighting, and row-normalizes it.
//
// Why:
//
//   - Bias-conflict analysis: which spurious attribute values co-occur
//     with which target classes, and how strongly.
//   - Debiased training: the surprise matrix emphasizes rare and
//     under-confident bias-target pairings, counteracting the feedback
//     loop in which a model grows ever more confident in the dominant
//     pairing.
//
// Both operations are pure: fresh matrices on every call, no shared state,
// inputs never mutated, safe for concurrent use from any number of call
// sites without locking.
//
// Complexity:
//
//   - Matrices:         O(n + k²) time, O(k²) memory (n examples, k classes).
//   - WeightedMatrices: O(n + k²) time, O(k²) memory.
//
// Options:
//
//   - Options.ZeroRows: policy for rows whose sum is zero during
//     normalization (leave all-zero, or divide through to NaN).
//   - Options.Epsilon: row-sum threshold below which a row counts as zero.
//
// Errors:
//
//   - ErrBadClassCount: numClasses <= 0.
//   - ErrLengthMismatch: input sequences differ in length.
//   - ErrLabelOutOfRange: a target or bias label is outside [0, numClasses).
//   - ErrNegativeMarginal: a marginal weight is negative.
package confusion
