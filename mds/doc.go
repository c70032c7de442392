// SPDX-License-Identifier: MIT

// Package mds computes classic (Torgerson) multidimensional scaling.
//
// 🚀 What is classic MDS?
//
//	Given an N×N matrix of pairwise distances, classic MDS finds N points in
//	k dimensions whose Euclidean distances reproduce the input as closely as
//	possible in a least-squares sense. It is closed-form: no iterations, no
//	random starts, no convergence failures.
//
// Algorithm:
//  1. M[i][j] = -0.5 * D[i][j]²
//  2. B = double-centered M (subtract row and column means, add the grand mean)
//  3. B = U·S·Vᵀ via a general SVD (singular values descending)
//  4. X[i][a] = U[i][a] * sqrt(S[a]) for a = 0..k-1
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/mds/mds"
//
//	emb, err := mds.Embed(distances, 2)
//	if err != nil {
//	  // errors.Is(err, mds.ErrInvalidInput) or mds.ErrInsufficientRank
//	}
//	xs, ys := emb.XY() // feed a scatter plot
//
// Guarantees:
//   - The result has exactly N rows and k columns, row i ↔ item i.
//   - The input is never mutated and never aliased by the result.
//   - Every call is independent; concurrent calls on independent inputs are safe.
//
// Performance:
//
//   - Time:   O(N³) (SVD-dominated)
//   - Memory: O(N²)
package mds
