// SPDX-License-Identifier: MIT
// Package matrix: element-wise mapping over any Matrix implementation.
// Apply validates fail-fast and never mutates its operand.

package matrix

// Apply returns a new Dense whose cells are f(i, j, m[i,j]).
// Implementation:
//   - Stage 1: ValidateNotNil(m); allocate Dense(rows, cols).
//   - Stage 2: Dense fast-path walks the flat buffer; fallback uses At.
//
// Complexity: Time O(r*c), Space O(r*c).
func Apply(m Matrix, f func(i, j int, v float64) float64) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opApply, err)
	}
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opApply, err)
	}

	var (
		i, j int
		v    float64
	)
	if d, ok := m.(*Dense); ok {
		for i = 0; i < rows; i++ {
			base := i * cols
			for j = 0; j < cols; j++ {
				res.data[base+j] = f(i, j, d.data[base+j])
			}
		}

		return res, nil
	}
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opApply, err)
			}
			res.data[i*cols+j] = f(i, j, v)
		}
	}

	return res, nil
}
