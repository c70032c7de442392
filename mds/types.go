// SPDX-License-Identifier: MIT

package mds

import "fmt"

// DistanceMatrix is an N×N matrix of non-negative pairwise distances,
// D[i][j] between item i and item j. It is owned by the caller and never
// mutated by this package.
type DistanceMatrix [][]float64

// Embedding holds one coordinate vector per item, in input order:
// row i is item i, column a is output axis a (x = 0, y = 1).
// Each Embedding is freshly allocated and owned by the caller.
type Embedding [][]float64

// Len returns the number of items (rows).
func (e Embedding) Len() int { return len(e) }

// Dims returns the number of coordinate axes (columns); 0 for an empty embedding.
func (e Embedding) Dims() int {
	if len(e) == 0 {
		return 0
	}

	return len(e[0])
}

// Column returns a copy of axis a across all items.
func (e Embedding) Column(a int) ([]float64, error) {
	if a < 0 || a >= e.Dims() {
		return nil, fmt.Errorf("mds: axis %d out of range [0,%d)", a, e.Dims())
	}
	out := make([]float64, len(e))
	for i, row := range e {
		out[i] = row[a]
	}

	return out, nil
}

// XY returns the parallel x (axis 0) and y (axis 1) sequences expected by a
// scatter-plot renderer. A one-dimensional embedding yields ys of zeros.
func (e Embedding) XY() (xs, ys []float64) {
	xs = make([]float64, len(e))
	ys = make([]float64, len(e))
	dims := e.Dims()
	for i, row := range e {
		if dims > 0 {
			xs[i] = row[0]
		}
		if dims > 1 {
			ys[i] = row[1]
		}
	}

	return xs, ys
}
