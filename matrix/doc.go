// Package matrix provides the dense numeric primitives backing the
// co-occurrence builders: a row-major Dense matrix of float64 values and
// an L1 row-normalization kernel with an explicit degenerate-row policy.
//
// What:
//
//   - Dense wraps a flat row-major []float64 buffer (offset = i*cols + j).
//   - At/Set/Add are bounds-checked and return sentinel errors; public
//     accessors never panic on user input.
//   - NormalizeRows divides each row by its own sum, producing per-row
//     probability-like distributions.
//
// Why:
//
//   - Co-occurrence counting writes one cell per observed label pair;
//     a flat buffer keeps that hot loop cache-friendly.
//   - Row normalization over count matrices is where zero denominators
//     appear; the ZeroRowPolicy makes that case explicit instead of
//     silently propagating non-finite values.
//
// Complexity:
//
//   - NewDense: O(r·c) zero-init. At/Set/Add: O(1). Clone: O(r·c).
//   - Sum/RowSum: O(r·c) / O(c). NormalizeRows: O(r·c).
//
// Errors:
//
//   - ErrInvalidDimensions: requested shape has a non-positive dimension.
//   - ErrIndexOutOfBounds: a row or column index is outside valid range.
//   - ErrNilMatrix: a nil *Dense was passed where a matrix is required.
package matrix
