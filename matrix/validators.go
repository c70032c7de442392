// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/nil/value checks here.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.
//  - Entry-wise checks stop at the first offending cell in i→j order.
//
// Note:
//  - Composite validators follow a fixed sequence (NotNil → Shape → Values).

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil, including a typed nil *Dense.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", fmt.Errorf("%dx%d: %w", m.Rows(), m.Cols(), ErrNonSquare))
	}

	return nil
}

// ValidateFinite rejects NaN and ±Inf entries.
// Errors: ErrNilMatrix, or *EntryError wrapping ErrNaNInf at the first offending cell.
// Complexity: O(r*c).
func ValidateFinite(m Matrix) error {
	return scanEntries(m, "ValidateFinite", func(v float64) error {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNaNInf
		}

		return nil
	})
}

// ValidateNonNegative rejects entries strictly below zero.
// NaN is not considered negative here; pair with ValidateFinite.
// Errors: ErrNilMatrix, or *EntryError wrapping ErrNegative.
// Complexity: O(r*c).
func ValidateNonNegative(m Matrix) error {
	return scanEntries(m, "ValidateNonNegative", func(v float64) error {
		if v < 0 {
			return ErrNegative
		}

		return nil
	})
}

// ValidateSymmetric checks |A[i,j] - A[j,i]| ≤ tol for all i<j.
//
// Inputs: square Matrix m, tolerance tol ≥ 0 (negative tol is flipped to |tol|).
// Errors: ErrNilMatrix, ErrNonSquare, ErrNaNInf (bad tol), *EntryError wrapping ErrAsymmetry.
// Complexity: O(n^2) on the strict upper triangle only.
func ValidateSymmetric(m Matrix, tol float64) error {
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSymmetric", err)
	}
	if math.IsNaN(tol) || math.IsInf(tol, 0) {
		return validatorErrorf("ValidateSymmetric", ErrNaNInf)
	}
	tol = math.Abs(tol)

	n := m.Rows()
	var (
		i, j     int
		aij, aji float64
		err      error
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if aij, err = m.At(i, j); err != nil {
				return validatorErrorf("ValidateSymmetric", err)
			}
			if aji, err = m.At(j, i); err != nil {
				return validatorErrorf("ValidateSymmetric", err)
			}
			if math.Abs(aij-aji) > tol {
				return validatorErrorf("ValidateSymmetric", &EntryError{Row: i, Col: j, Value: aij - aji, Err: ErrAsymmetry})
			}
		}
	}

	return nil
}

// MaxAbs returns max |m[i,j]|; useful to scale relative tolerances.
// Complexity: O(r*c).
func MaxAbs(m Matrix) (float64, error) {
	var best float64
	err := scanEntries(m, "MaxAbs", func(v float64) error {
		if a := math.Abs(v); a > best {
			best = a
		}

		return nil
	})

	return best, err
}

// scanEntries walks m in i→j order and stops at the first cell check rejects.
// Dense takes the flat-slice fast path; other implementations go through At.
func scanEntries(m Matrix, tag string, check func(v float64) error) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf(tag, err)
	}
	r, c := m.Rows(), m.Cols()
	var (
		i, j int
		v    float64
		err  error
	)
	if d, ok := m.(*Dense); ok {
		for i = 0; i < r; i++ {
			base := i * c
			for j = 0; j < c; j++ {
				v = d.data[base+j]
				if err = check(v); err != nil {
					return validatorErrorf(tag, &EntryError{Row: i, Col: j, Value: v, Err: err})
				}
			}
		}

		return nil
	}
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return validatorErrorf(tag, err)
			}
			if err = check(v); err != nil {
				return validatorErrorf(tag, &EntryError{Row: i, Col: j, Value: v, Err: err})
			}
		}
	}

	return nil
}
