// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Algorithms return these sentinels (optionally wrapped with an operation tag)
// and tests match them via errors.Is. No kernel panics on user input.

package matrix

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "matrix: " so it greps cleanly in logs.
// Wrap with matrixErrorf at the detection site; callers still use errors.Is.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive
	// or that a row-slice input is empty or ragged.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates rows of different lengths where a
	// rectangular input was required.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrAsymmetry signals that a matrix expected to be symmetric violated symmetry
	// within the given tolerance.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNegative signals a negative entry where only non-negative values are allowed.
	ErrNegative = errors.New("matrix: negative entry")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrDecompositionFailed indicates that the SVD routine did not converge.
	ErrDecompositionFailed = errors.New("matrix: singular value decomposition failed")
)

// EntryError reports the first offending cell found by an entry-wise validator.
// It unwraps to the sentinel (ErrNaNInf, ErrNegative, ErrAsymmetry) so callers
// can keep using errors.Is while still recovering the coordinates via errors.As.
type EntryError struct {
	Row, Col int     // coordinates of the offending cell
	Value    float64 // value observed at (Row, Col)
	Err      error   // underlying sentinel
}

// Error implements the error interface.
func (e *EntryError) Error() string {
	return fmt.Sprintf("%v at (%d,%d): %g", e.Err, e.Row, e.Col, e.Value)
}

// Unwrap exposes the sentinel for errors.Is.
func (e *EntryError) Unwrap() error { return e.Err }

// matrixErrorf wraps err with an operation tag, preserving it via %w.
// Call only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
