// SPDX-License-Identifier: MIT

// Package matrix - constructors.
//
// Three mutually exclusive input shapes build a Matrix:
//   - dimensions only            → NewZero / Zeros (zero-filled),
//   - nested equal-length rows   → NewFromRows,
//   - flat buffer (+ dimensions) → NewFromData with WithWidth / WithHeight.
//
// Every public constructor copies its input; adopt is the internal fast path
// that takes ownership of a buffer the package has just built itself.
package matrix

import (
	"fmt"
	"slices"
)

// ---------- error context tags ----------

const (
	ctxNewZero  = "NewZero"
	ctxNewRows  = "NewFromRows"
	ctxNewData  = "NewFromData"
	ctxConvert  = "Convert"
	ctxIndex    = "Index"
	ctxAt       = "At"
	ctxSlice    = "Slice"
	opTranspose = "Transpose"
	opMul       = "Mul"
)

// adopt wraps buf without copying. The kind is inherited from the buffer's
// element type. Callers guarantee len(buf) == w*h and w, h >= 1.
func adopt[E Element](buf []E, w, h int) *Matrix[E] {
	return &Matrix[E]{data: buf, width: w, height: h, kind: KindOf[E]()}
}

// NewZero creates a width×height matrix of E filled with zeros.
//
// Errors:
//   - ErrInvalidDimension when width <= 0 or height <= 0, or when
//     width*height overflows int.
//
// Complexity:
//   - Time O(w*h), Space O(w*h).
func NewZero[E Element](width, height int) (*Matrix[E], error) {
	if err := validateDimension(ctxNewZero, "width", width); err != nil {
		return nil, err
	}
	if err := validateDimension(ctxNewZero, "height", height); err != nil {
		return nil, err
	}
	if err := validateArea(ctxNewZero, width, height); err != nil {
		return nil, err
	}

	return adopt(make([]E, width*height), width, height), nil
}

// Zeros is NewZero with the default float64 element kind.
func Zeros(width, height int) (*Matrix[float64], error) {
	return NewZero[float64](width, height)
}

// NewFromRows builds a matrix from nested rows: height = len(rows),
// width = len(rows[0]). Rows are flattened row-major into a fresh buffer.
//
// Errors:
//   - ErrRowLengthMismatch when any row's length differs from the first row's.
//   - ErrEmptyMatrix when there are no rows or the rows are empty.
//
// Complexity:
//   - Time O(w*h), Space O(w*h).
func NewFromRows[E Element](rows [][]E) (*Matrix[E], error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: no rows: %w", ctxNewRows, ErrEmptyMatrix)
	}
	width := len(rows[0])
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%s: row %d has %d elements, want %d: %w",
				ctxNewRows, y, len(row), width, ErrRowLengthMismatch)
		}
	}
	if err := validateNonEmpty(ctxNewRows, width, len(rows)); err != nil {
		return nil, err
	}

	buf := make([]E, 0, width*len(rows))
	for _, row := range rows {
		buf = append(buf, row...)
	}

	return adopt(buf, width, len(rows)), nil
}

// NewFromData builds a matrix over a copy of the flat row-major buffer data.
//
// Shape resolution:
//   - WithWidth and WithHeight: their product must equal len(data).
//   - exactly one of them: the other is len(data) divided by it, which must be exact.
//   - neither: width = len(data), height = 1.
//
// Errors:
//   - ErrInvalidDimension for an explicitly given dimension <= 0, or for
//     WithWidth*WithHeight overflowing int.
//   - ErrSizeMismatch when the given dimensions do not fit len(data).
//   - ErrEmptyMatrix when data is empty.
//
// Complexity:
//   - Time O(len(data)), Space O(len(data)).
func NewFromData[E Element](data []E, opts ...Option) (*Matrix[E], error) {
	o := gatherOptions(opts...)
	if o.hasWidth {
		if err := validateDimension(ctxNewData, "width", o.width); err != nil {
			return nil, err
		}
	}
	if o.hasHeight {
		if err := validateDimension(ctxNewData, "height", o.height); err != nil {
			return nil, err
		}
	}

	n := len(data)
	w, h := o.width, o.height
	switch {
	case o.hasWidth && o.hasHeight:
		if err := validateArea(ctxNewData, w, h); err != nil {
			return nil, err
		}
		if w*h != n {
			return nil, fmt.Errorf("%s: data length %d != width %d * height %d: %w",
				ctxNewData, n, w, h, ErrSizeMismatch)
		}
	case o.hasWidth:
		if n%w != 0 {
			return nil, fmt.Errorf("%s: data length %d not divisible by width %d: %w",
				ctxNewData, n, w, ErrSizeMismatch)
		}
		h = n / w
	case o.hasHeight:
		if n%h != 0 {
			return nil, fmt.Errorf("%s: data length %d not divisible by height %d: %w",
				ctxNewData, n, h, ErrSizeMismatch)
		}
		w = n / h
	default:
		w, h = n, 1
	}
	if err := validateNonEmpty(ctxNewData, w, h); err != nil {
		return nil, err
	}

	return adopt(slices.Clone(data), w, h), nil
}

// Convert returns a copy of m with every element converted to R using Go's
// numeric conversion rules (floats truncate toward zero when R is integral).
func Convert[R, E Element](m *Matrix[E]) (*Matrix[R], error) {
	if err := validateNotNil(ctxConvert, m); err != nil {
		return nil, err
	}
	buf := make([]R, len(m.data))
	for i, v := range m.data {
		buf[i] = R(v)
	}

	return adopt(buf, m.width, m.height), nil
}
