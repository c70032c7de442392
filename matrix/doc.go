// SPDX-License-Identifier: MIT

// Package matrix is the dense numeric substrate behind the mds package.
//
// What & Why:
//
//	Classic multidimensional scaling needs a handful of well-defined kernels:
//	element-wise transforms, row/column means, double-centering and a general
//	singular value decomposition. This package keeps those kernels together
//	behind a small Matrix interface and a row-major Dense implementation.
//
// The package provides:
//
//   - Dense: row-major float64 storage with bounds-checked At/Set (errors, no panics).
//   - Validators: ValidateNotNil, ValidateSquare, ValidateFinite,
//     ValidateNonNegative, ValidateSymmetric.
//   - Statistics: RowMeans, ColMeans, DoubleCenter.
//   - Element-wise: Apply.
//   - Decomposition: SVD (general, not symmetric-only), backed by gonum.
//
// Determinism:
//
//	Every explicit loop runs in fixed i→j order. Kernels never mutate their
//	inputs; results are freshly allocated.
//
// Complexity quicksheet:
//
//	NewDense O(r*c); At/Set O(1); Clone O(r*c); Apply O(r*c); SVD O(n^3).
package matrix
