// SPDX-License-Identifier: MIT

package mds_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/mds/mds"
	"github.com/stretchr/testify/require"
)

// unitSquare returns the distance matrix of the corners (0,0) (1,0) (1,1) (0,1).
func unitSquare() mds.DistanceMatrix {
	s := math.Sqrt2
	return mds.DistanceMatrix{
		{0, 1, s, 1},
		{1, 0, 1, s},
		{s, 1, 0, 1},
		{1, s, 1, 0},
	}
}

// randomPoints returns n deterministic points in dim dimensions with a
// per-axis spread that decreases with the axis index, so the spectrum of the
// resulting Gram matrix is well separated.
func randomPoints(seed int64, n, dim int) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	pts := make([][]float64, n)
	for i := range pts {
		pts[i] = make([]float64, dim)
		for a := range pts[i] {
			pts[i][a] = (rng.Float64()*2 - 1) * 10 / float64(1+2*a)
		}
	}

	return pts
}

// mustDistances builds the distance matrix of pts or fails the test.
func mustDistances(t *testing.T, pts [][]float64) mds.DistanceMatrix {
	t.Helper()
	d, err := mds.EuclideanDistances(pts)
	require.NoError(t, err)

	return d
}

// deepCopy clones a distance matrix.
func deepCopy(d mds.DistanceMatrix) mds.DistanceMatrix {
	out := make(mds.DistanceMatrix, len(d))
	for i := range d {
		out[i] = append([]float64(nil), d[i]...)
	}

	return out
}

// requireIsometric asserts that the pairwise distances of emb reproduce d
// within rtol relative (atol absolute for near-zero distances).
func requireIsometric(t *testing.T, d mds.DistanceMatrix, emb mds.Embedding, rtol, atol float64) {
	t.Helper()
	got := mustDistances(t, emb)
	for i := range d {
		for j := range d {
			if math.Abs(got[i][j]-d[i][j]) > atol+rtol*d[i][j] {
				t.Fatalf("distance (%d,%d): got %g want %g", i, j, got[i][j], d[i][j])
			}
		}
	}
}
