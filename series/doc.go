// SPDX-License-Identifier: MIT

// Package series turns time series into a distance matrix for embedding.
//
// 🚀 What is here?
//
//	DTW measures how far apart two sequences are when they may be shifted,
//	stretched or compressed in time, by finding the cheapest monotone
//	alignment ("warping path") between them. Distances applies it to every
//	pair of a set of sequences and returns an mds.DistanceMatrix, so series
//	of different lengths can be placed on a map with mds.Embed.
//
// ⚙️ Recurrence
//
//	D[0][0] = 0, D[i][0] = D[0][j] = +∞
//	D[i][j] = |a[i-1] - b[j-1]| + min(D[i-1][j] + p, D[i][j-1] + p, D[i-1][j-1])
//
//	where p is the slope penalty. Only two rows are kept, so memory is
//	O(min(n, m)). An optional Sakoe–Chiba band limits |i - j|; it is widened
//	to |n - m| when narrower so that every pair stays alignable.
//
// ✨ Properties
//
//   - DTW(a, a) = 0 and DTW(a, b) = DTW(b, a), so the matrix is symmetric
//     with a zero diagonal.
//   - DTW is not a metric (no triangle inequality); classic MDS still
//     embeds it, with non-zero stress.
//
// Complexity: O(n·m) time per pair; Distances runs pairs on a bounded
// worker pool.
package series
