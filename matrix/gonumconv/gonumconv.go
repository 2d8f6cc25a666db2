// SPDX-License-Identifier: MIT

// Package gonumconv converts between matrix.Matrix and gonum's mat types.
//
// gonum indexes (row, col) while matrix indexes (x, y) = (col, row); both are
// row-major, so conversion is a straight buffer copy:
//
//	matrix (width w, height h)  <->  mat.Dense (r = h, c = w)
//
// Converted values are float64 on the gonum side. Every conversion copies; no
// buffer is shared in either direction.
package gonumconv

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/flatmat/matrix"
)

// ToDense copies m into a new *mat.Dense with Height() rows and Width() columns.
// Errors: matrix.ErrNilMatrix.
// Complexity: O(w*h).
func ToDense[E matrix.Element](m *matrix.Matrix[E]) (*mat.Dense, error) {
	if m == nil {
		return nil, fmt.Errorf("ToDense: %w", matrix.ErrNilMatrix)
	}
	src := m.Data()
	buf := make([]float64, len(src))
	for i, v := range src {
		buf[i] = float64(v)
	}

	return mat.NewDense(m.Height(), m.Width(), buf), nil
}

// FromMatrix copies any gonum matrix into a float64 matrix.Matrix.
// A transposed gonum view (a.T()) is materialized as the transpose.
//
// Errors:
//   - matrix.ErrNilMatrix when a is nil, including a typed nil *mat.Dense.
//   - matrix.ErrEmptyMatrix for an empty gonum matrix (Dims() == 0, 0).
//
// Complexity: O(r*c).
func FromMatrix(a mat.Matrix) (*matrix.Matrix[float64], error) {
	if a == nil {
		return nil, fmt.Errorf("FromMatrix: %w", matrix.ErrNilMatrix)
	}
	if d, ok := a.(*mat.Dense); ok {
		if d == nil {
			return nil, fmt.Errorf("FromMatrix: %w", matrix.ErrNilMatrix)
		}
		if d.IsEmpty() {
			return nil, fmt.Errorf("FromMatrix: %w", matrix.ErrEmptyMatrix)
		}
	}
	r, c := a.Dims()
	buf := make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			buf = append(buf, a.At(i, j))
		}
	}
	m, err := matrix.NewFromData(buf, matrix.WithShape(c, r))
	if err != nil {
		return nil, fmt.Errorf("FromMatrix: %w", err)
	}

	return m, nil
}
