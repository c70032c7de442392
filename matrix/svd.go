// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Expose a general singular value decomposition A = U·diag(S)·Vᵀ.
//
// Notes:
//   - The factorization is delegated to gonum's LAPACK port (Golub–Kahan
//     bidiagonalization + implicit QR). It accepts any real matrix, including
//     slightly indefinite or rank-deficient ones.

package matrix

import (
	"gonum.org/v1/gonum/mat"
)

// SVDResult holds a thin singular value decomposition of an r×c matrix.
//   - Values: min(r,c) singular values in descending order (non-negative).
//   - U: r×min(r,c), columns are left singular vectors, column j ↔ Values[j].
//   - V: c×min(r,c), columns are right singular vectors.
type SVDResult struct {
	Values []float64
	U      *Dense
	V      *Dense
}

// SVD factorizes m into U·diag(Values)·Vᵀ (thin form).
// Implementation:
//   - Stage 1: ValidateNotNil(m); copy into a gonum dense (m is never aliased).
//   - Stage 2: Factorize with mat.SVDThin; a false return maps to ErrDecompositionFailed.
//   - Stage 3: copy U, V and the values back into package types.
//
// Errors:
//   - ErrNilMatrix, ErrDecompositionFailed (both wrapped with "SVD").
//
// Determinism:
//   - Same input, same output; the LAPACK port has no randomness.
//
// Complexity:
//   - Time O(r*c*min(r,c)), Space O(r*c).
func SVD(m Matrix) (*SVDResult, error) {
	// Stage 1: validate and copy.
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opSVD, err)
	}
	a, err := toGonum(m)
	if err != nil {
		return nil, matrixErrorf(opSVD, err)
	}

	// Stage 2: factorize.
	var svd mat.SVD
	if ok := svd.Factorize(a, mat.SVDThin); !ok {
		return nil, matrixErrorf(opSVD, ErrDecompositionFailed)
	}

	// Stage 3: export.
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	return &SVDResult{
		Values: svd.Values(nil),
		U:      fromGonum(&u),
		V:      fromGonum(&v),
	}, nil
}

// toGonum copies m into a fresh *mat.Dense.
func toGonum(m Matrix) (*mat.Dense, error) {
	r, c := m.Rows(), m.Cols()
	buf := make([]float64, r*c)
	if d, ok := m.(*Dense); ok {
		copy(buf, d.data)

		return mat.NewDense(r, c, buf), nil
	}

	var (
		i, j int
		err  error
	)
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if buf[i*c+j], err = m.At(i, j); err != nil {
				return nil, err
			}
		}
	}

	return mat.NewDense(r, c, buf), nil
}

// fromGonum copies a gonum matrix into a new *Dense.
func fromGonum(g mat.Matrix) *Dense {
	r, c := g.Dims()
	out := &Dense{r: r, c: c, data: make([]float64, r*c)}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.data[i*c+j] = g.At(i, j)
		}
	}

	return out
}
