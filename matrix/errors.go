// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every message is prefixed with "matrix: ..." for grep-ability; callers
// match with errors.Is. Sentinels are never %w-wrapped when returned
// directly; context is attached via fmt.Errorf("ctx: %w", ErrX) at the
// detection site.

package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates that a row or column index is outside valid range.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrNilMatrix indicates that a nil *Dense was used where a matrix is required.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
