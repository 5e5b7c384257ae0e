// SPDX-License-Identifier: MIT

package matrix

// ZeroRowPolicy controls how row normalization treats a row whose sum is
// not above the configured epsilon (a class that never occurred).
//
//   - ZeroRowsAsZero — leave the degenerate row all-zero: a defined
//     sentinel that keeps every output value finite.
//   - ZeroRowsNaN — divide unconditionally, so a zero row becomes NaN.
//     This reproduces the historical unguarded division exactly and exists
//     for numerical parity with systems that expect it; callers must guard
//     downstream.
type ZeroRowPolicy int

const (
	// ZeroRowsAsZero mode: degenerate rows stay all-zero. The default.
	ZeroRowsAsZero ZeroRowPolicy = iota

	// ZeroRowsNaN mode: degenerate rows divide through and become NaN.
	ZeroRowsNaN
)

// NormalizeRows returns a copy of m with every row divided by that row's
// own sum (L1 row normalization). Rows whose sum is <= eps are handled
// according to policy; see ZeroRowPolicy.
//
// Stage 1 (Validate): non-nil input.
// Stage 2 (Execute): per row, sum then divide; fixed i→j order.
// Stage 3 (Finalize): return the normalized copy.
//
// The input is never mutated. Complexity: O(r*c) time, O(r*c) memory.
func NormalizeRows(m *Dense, eps float64, policy ZeroRowPolicy) (*Dense, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}

	out := m.Clone()
	for i := 0; i < out.r; i++ {
		base := i * out.c

		var sum float64
		for j := 0; j < out.c; j++ {
			sum += out.data[base+j]
		}
		if sum <= eps && policy == ZeroRowsAsZero {
			continue // degenerate row stays as-is (all-zero for count matrices)
		}
		for j := 0; j < out.c; j++ {
			out.data[base+j] /= sum
		}
	}

	return out, nil
}
