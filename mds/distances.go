// SPDX-License-Identifier: MIT

package mds

import "math"

const (
	opEuclidean = "EuclideanDistances"
	opStress    = "Stress"
	opPermute   = "Permute"
)

// EuclideanDistances returns the exact pairwise Euclidean distance matrix of
// a point set. Every point must have the same (positive) number of finite
// coordinates.
//
// Complexity: O(N²·d).
func EuclideanDistances(points [][]float64) (DistanceMatrix, error) {
	n := len(points)
	if n == 0 {
		return nil, mdsErrorf(opEuclidean, invalid(ConstraintPoints, nil, "no points"))
	}
	dim := len(points[0])
	if dim == 0 {
		return nil, mdsErrorf(opEuclidean, invalid(ConstraintPoints, nil, "point 0 has no coordinates"))
	}
	for i, p := range points {
		if len(p) != dim {
			return nil, mdsErrorf(opEuclidean, invalid(ConstraintPoints, nil, "point %d has %d coordinates, want %d", i, len(p), dim))
		}
		for a, v := range p {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, mdsErrorf(opEuclidean, &InvalidInputError{Constraint: ConstraintNonFinite, Row: i, Col: a})
			}
		}
	}

	buf := make([]float64, n*n)
	out := make(DistanceMatrix, n)
	for i := 0; i < n; i++ {
		out[i] = buf[i*n : (i+1)*n : (i+1)*n]
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := euclid(points[i], points[j])
			out[i][j], out[j][i] = d, d
		}
	}

	return out, nil
}

// Stress returns Kruskal's stress-1 of an embedding against the distances it
// was computed from:
//
//	sqrt( Σ_{i<j} (D[i][j] - ‖x_i - x_j‖)² / Σ_{i<j} D[i][j]² )
//
// A perfect reproduction scores 0. When every distance is zero the result is
// the raw residual norm (0 for a collapsed embedding). Stress is a quality
// report only; nothing here minimizes it.
//
// Every embedding row must have the same length.
func Stress(distances DistanceMatrix, emb Embedding) (float64, error) {
	n := len(distances)
	if n == 0 || emb.Len() != n {
		return 0, mdsErrorf(opStress, invalid(ConstraintNonSquare, nil, "%d distance rows vs %d embedding rows", n, emb.Len()))
	}
	for i, row := range distances {
		if len(row) != n {
			return 0, mdsErrorf(opStress, invalid(ConstraintNonSquare, nil, "row %d has %d entries, want %d", i, len(row), n))
		}
	}
	dims := emb.Dims()
	for i, row := range emb {
		if len(row) != dims {
			return 0, mdsErrorf(opStress, invalid(ConstraintNonSquare, nil, "embedding row %d has %d coordinates, want %d", i, len(row), dims))
		}
	}

	// Sums are taken over values divided by the largest distance or residual
	// so squaring stays finite for large magnitudes.
	var s float64
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			r := math.Abs(distances[i][j] - euclid(emb[i], emb[j]))
			s = math.Max(s, math.Max(distances[i][j], r))
		}
	}
	if s == 0 {
		return 0, nil
	}

	var num, den float64
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			r := (distances[i][j] - euclid(emb[i], emb[j])) / s
			dv := distances[i][j] / s
			num += r * r
			den += dv * dv
		}
	}
	if den == 0 {
		return s * math.Sqrt(num), nil
	}

	return math.Sqrt(num / den), nil
}

// Permute relabels a distance matrix: out[i][j] = d[perm[i]][perm[j]].
// perm must be a permutation of 0..N-1. The input is not modified.
func Permute(d DistanceMatrix, perm []int) (DistanceMatrix, error) {
	n := len(d)
	if len(perm) != n {
		return nil, mdsErrorf(opPermute, invalid(ConstraintPermutation, nil, "len(perm)=%d, want %d", len(perm), n))
	}
	seen := make([]bool, n)
	for _, p := range perm {
		if p < 0 || p >= n || seen[p] {
			return nil, mdsErrorf(opPermute, invalid(ConstraintPermutation, nil, "index %d repeated or out of range", p))
		}
		seen[p] = true
	}
	for i, row := range d {
		if len(row) != n {
			return nil, mdsErrorf(opPermute, invalid(ConstraintNonSquare, nil, "row %d has %d entries, want %d", i, len(row), n))
		}
	}

	out := make(DistanceMatrix, n)
	for i := 0; i < n; i++ {
		out[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			out[i][j] = d[perm[i]][perm[j]]
		}
	}

	return out, nil
}

// euclid is the Euclidean distance between equal-length vectors, computed
// on differences scaled by the largest one so it does not overflow.
func euclid(a, b []float64) float64 {
	var m float64
	for i := range a {
		m = math.Max(m, math.Abs(a[i]-b[i]))
	}
	if m == 0 || math.IsInf(m, 0) {
		return m
	}

	var s float64
	for i := range a {
		diff := (a[i] - b[i]) / m
		s += diff * diff
	}

	return m * math.Sqrt(s)
}
