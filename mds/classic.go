// SPDX-License-Identifier: MIT

package mds

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/mds/matrix"
)

// Operation tags for error wrapping.
const (
	opClassic       = "Classic"
	opClassicMatrix = "ClassicMatrix"
	opEmbed         = "Embed"
)

// Embed computes a k-dimensional classic MDS embedding of distances.
// It is Classic with WithDimensions(k) appended to opts; k outside [1, N]
// yields an InvalidInputError (ConstraintDimensions).
//
// Example:
//
//	emb, err := mds.Embed(d, 2)
func Embed(distances DistanceMatrix, k int, opts ...Option) (Embedding, error) {
	if k < 1 {
		return nil, mdsErrorf(opEmbed, invalid(ConstraintDimensions, nil, "k=%d, want 1 <= k <= %d", k, len(distances)))
	}
	all := append(append(make([]Option, 0, len(opts)+1), opts...), WithDimensions(k))
	emb, err := Classic(distances, all...)
	if err != nil {
		return nil, mdsErrorf(opEmbed, err)
	}

	return emb, nil
}

// Classic computes the classic MDS embedding of distances with the number of
// axes taken from WithDimensions (default 2).
//
// Validation (before any numeric work):
//   - N ≥ 1 and every row has N entries        → ConstraintEmpty / ConstraintNonSquare
//   - 1 ≤ k ≤ N                                 → ConstraintDimensions
//   - entries finite and non-negative           → ConstraintNonFinite / ConstraintNegative
//   - symmetric within tolerance (unless off)   → ConstraintAsymmetric
//
// Errors:
//   - *InvalidInputError (matches ErrInvalidInput)
//   - *InsufficientRankError (matches ErrInsufficientRank)
//
// Complexity:
//   - Time O(N³), Space O(N²).
func Classic(distances DistanceMatrix, opts ...Option) (Embedding, error) {
	n := len(distances)
	if n == 0 {
		return nil, mdsErrorf(opClassic, invalid(ConstraintEmpty, matrix.ErrInvalidDimensions, "no rows"))
	}
	for i, row := range distances {
		if len(row) != n {
			return nil, mdsErrorf(opClassic, invalid(ConstraintNonSquare, matrix.ErrNonSquare, "row %d has %d entries, want %d", i, len(row), n))
		}
	}

	// Rectangularity is established above, so the copy cannot fail on shape.
	m, err := matrix.NewDenseFromRows(distances)
	if err != nil {
		return nil, mdsErrorf(opClassic, err)
	}

	emb, err := classic(m, gatherOptions(opts...))
	if err != nil {
		return nil, mdsErrorf(opClassic, err)
	}

	return emb, nil
}

// ClassicMatrix is Classic over any matrix.Matrix implementation.
func ClassicMatrix(m matrix.Matrix, opts ...Option) (Embedding, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, mdsErrorf(opClassicMatrix, invalid(ConstraintEmpty, err, "nil matrix"))
	}
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, mdsErrorf(opClassicMatrix, invalid(ConstraintNonSquare, err, "%dx%d", m.Rows(), m.Cols()))
	}

	emb, err := classic(m, gatherOptions(opts...))
	if err != nil {
		return nil, mdsErrorf(opClassicMatrix, err)
	}

	return emb, nil
}

// classic runs validation and the algorithm steps on a square matrix.
func classic(d matrix.Matrix, o Options) (Embedding, error) {
	n, k := d.Rows(), o.dimensions

	// Stage 1 (Validate).
	if k < 1 || k > n {
		return nil, invalid(ConstraintDimensions, nil, "k=%d, want 1 <= k <= %d", k, n)
	}
	maxAbs, err := validateEntries(d, o)
	if err != nil {
		return nil, err
	}

	// Stage 2 (Square): M = -0.5 * (D/s)∘(D/s) with s = max|D|, so squaring
	// cannot overflow. Coordinates are scaled back by s in Stage 5.
	s := maxAbs
	if s == 0 {
		s = 1
	}
	sq, err := matrix.Apply(d, func(_, _ int, v float64) float64 {
		v /= s

		return -0.5 * v * v
	})
	if err != nil {
		return nil, err
	}

	// Stage 3 (Double-center): B = M + mean(rowMean) - rowMean[i] - colMean[j].
	b, err := matrix.DoubleCenter(sq)
	if err != nil {
		return nil, err
	}

	// Stage 4 (Decompose): general SVD, values descending.
	svd, err := matrix.SVD(b)
	if err != nil {
		if errors.Is(err, matrix.ErrDecompositionFailed) {
			return nil, &InsufficientRankError{Requested: k, Available: 0}
		}

		return nil, err
	}
	if avail := usableComponents(svd.Values, o); k > avail {
		return nil, &InsufficientRankError{Requested: k, Available: avail}
	}

	// Stage 5 (Coordinates): X[i][a] = s * U[i][a] * sqrt(S[a]).
	// Singular values are non-negative by definition, but rounding on a
	// near-degenerate B can leave tiny negatives; they are clamped to 0 so the
	// square root stays defined.
	scale := make([]float64, k)
	for a := 0; a < k; a++ {
		scale[a] = s * math.Sqrt(math.Max(svd.Values[a], 0))
	}

	buf := make([]float64, n*k)
	emb := make(Embedding, n)
	var u float64
	for i := 0; i < n; i++ {
		row := buf[i*k : (i+1)*k : (i+1)*k]
		for a := 0; a < k; a++ {
			if u, err = svd.U.At(i, a); err != nil {
				return nil, err
			}
			row[a] = u * scale[a]
		}
		emb[i] = row
	}

	return emb, nil
}

// validateEntries checks finiteness, sign and (optionally) symmetry, and
// returns max|D| for scaling.
func validateEntries(d matrix.Matrix, o Options) (float64, error) {
	if err := matrix.ValidateFinite(d); err != nil {
		return 0, entryInvalid(ConstraintNonFinite, err)
	}
	if err := matrix.ValidateNonNegative(d); err != nil {
		return 0, entryInvalid(ConstraintNegative, err)
	}
	maxAbs, err := matrix.MaxAbs(d)
	if err != nil {
		return 0, err
	}
	if !o.checkSymmetry {
		return maxAbs, nil
	}
	if err = matrix.ValidateSymmetric(d, o.symmetryEps*math.Max(1, maxAbs)); err != nil {
		return 0, entryInvalid(ConstraintAsymmetric, err)
	}

	return maxAbs, nil
}

// entryInvalid converts a matrix validator error into an InvalidInputError,
// carrying the offending cell when the validator reported one.
func entryInvalid(c Constraint, err error) *InvalidInputError {
	out := &InvalidInputError{Constraint: c, Row: -1, Col: -1, Cause: err}
	var entry *matrix.EntryError
	if errors.As(err, &entry) {
		out.Row, out.Col = entry.Row, entry.Col
		out.Detail = fmt.Sprintf("value %g", entry.Value)
	}

	return out
}

// usableComponents counts the components the decomposition can supply.
// By default every returned singular value counts, including zeros: a zero
// axis is a valid (degenerate) coordinate. Strict mode keeps only the leading
// values above rankTol * S[0].
func usableComponents(values []float64, o Options) int {
	if !o.strictRank {
		return len(values)
	}
	if len(values) == 0 || values[0] <= 0 {
		return 0
	}
	cut := o.rankTol * values[0]
	count := 0
	for _, v := range values {
		if v <= cut {
			break
		}
		count++
	}

	return count
}
