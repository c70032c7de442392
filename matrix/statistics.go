// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the mean/centering transforms used by classic scaling.
//
// Exposed API:
//   - RowMeans(X)     -> means (len = rows)
//   - ColMeans(X)     -> means (len = cols)
//   - DoubleCenter(X) -> B with B[i,j] = X[i,j] + mean(rowMeans) - rowMean[i] - colMean[j]
//
// Determinism & Performance:
//   - Fixed i→j traversal for all explicit loops.
//   - Dense fast-paths operate on the row-major flat buffer; other implementations use At.

package matrix

// RowMeans returns r where r[i] = (1/c) Σ_j X[i,j].
// Errors: ErrNilMatrix; wrapped At errors on the fallback path.
// Complexity: Time O(r*c), Space O(r).
func RowMeans(X Matrix) ([]float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opRowMeans, err)
	}
	r, c := X.Rows(), X.Cols()
	means := make([]float64, r)

	var (
		i, j int
		v    float64
		err  error
	)
	if d, ok := X.(*Dense); ok {
		for i = 0; i < r; i++ {
			base := i * c
			for j = 0; j < c; j++ {
				means[i] += d.data[base+j]
			}
		}
	} else {
		for i = 0; i < r; i++ {
			for j = 0; j < c; j++ {
				if v, err = X.At(i, j); err != nil {
					return nil, matrixErrorf(opRowMeans, err)
				}
				means[i] += v
			}
		}
	}

	invC := 1.0 / float64(c)
	for i = 0; i < r; i++ {
		means[i] *= invC
	}

	return means, nil
}

// ColMeans returns m where m[j] = (1/r) Σ_i X[i,j].
// Errors: ErrNilMatrix; wrapped At errors on the fallback path.
// Complexity: Time O(r*c), Space O(c).
func ColMeans(X Matrix) ([]float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opColMeans, err)
	}
	r, c := X.Rows(), X.Cols()
	means := make([]float64, c)

	var (
		i, j int
		v    float64
		err  error
	)
	if d, ok := X.(*Dense); ok {
		for i = 0; i < r; i++ {
			base := i * c
			for j = 0; j < c; j++ {
				means[j] += d.data[base+j]
			}
		}
	} else {
		for i = 0; i < r; i++ {
			for j = 0; j < c; j++ {
				if v, err = X.At(i, j); err != nil {
					return nil, matrixErrorf(opColMeans, err)
				}
				means[j] += v
			}
		}
	}

	invR := 1.0 / float64(r)
	for j = 0; j < c; j++ {
		means[j] *= invR
	}

	return means, nil
}

// DoubleCenter removes row and column means and adds back the grand mean.
// Implementation:
//   - Stage 1: rowMean := RowMeans(X), colMean := ColMeans(X).
//   - Stage 2: total := mean(rowMean).
//   - Stage 3: B[i,j] = X[i,j] + total - rowMean[i] - colMean[j] into a fresh Dense.
//
// Behavior highlights:
//   - X is not mutated.
//   - Every row and column of B sums to zero (up to rounding), which removes
//     the translational freedom of a configuration derived from distances.
//
// Errors:
//   - ErrNilMatrix; wrapped At errors on the fallback path.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func DoubleCenter(X Matrix) (Matrix, error) {
	// Stage 1: marginal means.
	rowMean, err := RowMeans(X)
	if err != nil {
		return nil, matrixErrorf(opDoubleCenter, err)
	}
	colMean, err := ColMeans(X)
	if err != nil {
		return nil, matrixErrorf(opDoubleCenter, err)
	}

	// Stage 2: grand mean as the mean of the row means.
	var total float64
	for _, v := range rowMean {
		total += v
	}
	total /= float64(len(rowMean))

	// Stage 3: shifted copy.
	return Apply(X, func(i, j int, v float64) float64 {
		return v + total - rowMean[i] - colMean[j]
	})
}
