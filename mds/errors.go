// SPDX-License-Identifier: MIT

package mds

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput marks malformed or out-of-range input. It is always
	// detected before the decomposition step and never silently corrected.
	ErrInvalidInput = errors.New("mds: invalid input")

	// ErrInsufficientRank marks a decomposition that yielded fewer usable
	// components than the requested dimensionality.
	ErrInsufficientRank = errors.New("mds: insufficient rank")
)

// Constraint names the input rule an InvalidInputError violated.
type Constraint string

const (
	ConstraintEmpty       Constraint = "empty matrix"
	ConstraintNonSquare   Constraint = "non-square matrix"
	ConstraintNonFinite   Constraint = "non-finite entry"
	ConstraintNegative    Constraint = "negative entry"
	ConstraintAsymmetric  Constraint = "asymmetric matrix"
	ConstraintDimensions  Constraint = "dimensions out of range"
	ConstraintPermutation Constraint = "invalid permutation"
	ConstraintPoints      Constraint = "invalid point set"
)

// InvalidInputError describes which input constraint was violated.
// Row and Col are -1 when the violation is not tied to a single cell.
// It matches ErrInvalidInput via errors.Is, and also the underlying matrix
// sentinel (if any) stored in Cause.
type InvalidInputError struct {
	Constraint Constraint
	Row, Col   int
	Detail     string
	Cause      error
}

// Error implements the error interface.
func (e *InvalidInputError) Error() string {
	msg := fmt.Sprintf("%v (%s)", ErrInvalidInput, e.Constraint)
	if e.Row >= 0 && e.Col >= 0 {
		msg += fmt.Sprintf(" at (%d,%d)", e.Row, e.Col)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}

	return msg
}

// Unwrap exposes ErrInvalidInput and the cause for errors.Is / errors.As.
func (e *InvalidInputError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrInvalidInput}
	}

	return []error{ErrInvalidInput, e.Cause}
}

// InsufficientRankError reports how many components were requested and how
// many the decomposition could supply.
type InsufficientRankError struct {
	Requested int
	Available int
}

// Error implements the error interface.
func (e *InsufficientRankError) Error() string {
	return fmt.Sprintf("%v: requested %d components, %d available", ErrInsufficientRank, e.Requested, e.Available)
}

// Unwrap exposes ErrInsufficientRank for errors.Is.
func (e *InsufficientRankError) Unwrap() error { return ErrInsufficientRank }

// invalid builds an InvalidInputError not tied to a cell.
func invalid(c Constraint, cause error, format string, args ...any) *InvalidInputError {
	return &InvalidInputError{Constraint: c, Row: -1, Col: -1, Detail: fmt.Sprintf(format, args...), Cause: cause}
}

// mdsErrorf wraps err with an operation tag, preserving it via %w.
func mdsErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
