// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strings"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Stage 3 (Finalize): return new Dense or ErrInvalidDimensions.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	// Validate dimensions
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	// Allocate flat slice and return initialized Dense
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewSquare creates an n×n Dense matrix initialized to zeros.
// Thin alias of NewDense with an intention-revealing name for the
// class×class matrices this module is built around.
func NewSquare(n int) (*Dense, error) {
	return NewDense(n, n)
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Dense) Rows() int {
	return m.r
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Dense) Cols() int {
	return m.c
}

// indexOf computes the flat index for (row, col) or returns ErrIndexOutOfBounds.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, denseErrorf(method, row, col, ErrIndexOutOfBounds)
	}
	if col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrIndexOutOfBounds)
	}

	// Compute flat offset
	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Returns ErrIndexOutOfBounds (wrapped) on invalid indices.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Returns ErrIndexOutOfBounds (wrapped) on invalid indices.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Add accumulates v into the element at (row, col); the counting loops of
// the co-occurrence builders route every increment through here.
// Returns ErrIndexOutOfBounds (wrapped) on invalid indices.
// Complexity: O(1).
func (m *Dense) Add(row, col int, v float64) error {
	idx, err := m.indexOf("Add", row, col)
	if err != nil {
		return err
	}
	m.data[idx] += v

	return nil
}

// Clone returns a deep copy of the matrix, independent of the original.
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	out := &Dense{r: m.r, c: m.c, data: make([]float64, len(m.data))}
	copy(out.data, m.data)

	return out
}

// Sum returns the sum of all elements.
// Deterministic flat-order accumulation; no pairwise reordering.
// Complexity: O(r*c).
func (m *Dense) Sum() float64 {
	var s float64
	for _, v := range m.data {
		s += v
	}

	return s
}

// RowSum returns the sum of the elements in the given row.
// Returns ErrIndexOutOfBounds (wrapped) on an invalid row.
// Complexity: O(c).
func (m *Dense) RowSum(row int) (float64, error) {
	if row < 0 || row >= m.r {
		return 0, denseErrorf("RowSum", row, 0, ErrIndexOutOfBounds)
	}

	var s float64
	base := row * m.c // cache row base offset
	for j := 0; j < m.c; j++ {
		s += m.data[base+j]
	}

	return s, nil
}

// Row returns a copy of the given row as a []float64.
// The returned slice is independent of the matrix storage.
// Returns ErrIndexOutOfBounds (wrapped) on an invalid row.
// Complexity: O(c).
func (m *Dense) Row(row int) ([]float64, error) {
	if row < 0 || row >= m.r {
		return nil, denseErrorf("Row", row, 0, ErrIndexOutOfBounds)
	}

	out := make([]float64, m.c)
	copy(out, m.data[row*m.c:(row+1)*m.c])

	return out, nil
}

// String renders the matrix one bracketed row per line, e.g. "[1, 0]\n[0, 2]\n".
// Intended for debugging and examples, not for machine parsing.
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString("[")
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
