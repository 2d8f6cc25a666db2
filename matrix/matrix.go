// SPDX-License-Identifier: MIT

// Package matrix - the Matrix value type.
//
// Purpose:
//   - One flat row-major buffer plus width and height; element (x, y) lives at
//     data[y*width + x].
//   - Immutable after construction: slicing, transpose and multiplication
//     always return a new Matrix that owns a fresh buffer.
//   - Safe for concurrent readers without locking.
//
// Complexity quicksheet:
//   - Width/Height/Kind: O(1); Equal: O(w*h); Data/Rows: O(w*h) copy.
package matrix

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Matrix is a dense width×height matrix of E in row-major order.
// The zero value is not usable; build matrices with the New* constructors.
type Matrix[E Element] struct {
	data   []E  // row-major storage, len == width*height
	width  int  // number of columns (>= 1)
	height int  // number of rows (>= 1)
	kind   Kind // storage tag, fixed at construction
}

var _ fmt.Stringer = (*Matrix[float64])(nil)

// Width returns the number of columns.
func (m *Matrix[E]) Width() int { return m.width }

// Height returns the number of rows.
func (m *Matrix[E]) Height() int { return m.height }

// Shape packs Width() and Height() into a single call.
func (m *Matrix[E]) Shape() (width, height int) { return m.width, m.height }

// Len returns width*height.
func (m *Matrix[E]) Len() int { return len(m.data) }

// Kind returns the storage tag.
func (m *Matrix[E]) Kind() Kind { return m.kind }

// Data returns a copy of the row-major buffer.
func (m *Matrix[E]) Data() []E { return slices.Clone(m.data) }

// Rows returns a copy of the matrix as nested rows.
func (m *Matrix[E]) Rows() [][]E {
	rows := make([][]E, m.height)
	for y := range rows {
		rows[y] = slices.Clone(m.data[y*m.width : (y+1)*m.width])
	}

	return rows
}

// Equal reports whether m and o have the same shape and element-wise equal
// buffers. Comparison is exact (NaN never equals NaN). Two nil matrices are equal.
// Complexity: O(w*h).
func (m *Matrix[E]) Equal(o *Matrix[E]) bool {
	if m == nil || o == nil {
		return m == o
	}

	return m.width == o.width && m.height == o.height && slices.Equal(m.data, o.data)
}

// AllClose checks element-wise |a-b| <= atol + rtol*|b| for identical shapes.
// NaN never matches; infinities match only the same infinity.
// Mismatched shapes or nil operands report false.
//
// Errors:
//   - Panics when rtol or atol is NaN, infinite or negative (programmer error).
//
// Complexity:
//   - Time O(w*h), Space O(1).
func AllClose[E Element](a, b *Matrix[E], rtol, atol float64) bool {
	rtol, atol = mustTolerance(rtol), mustTolerance(atol)
	if a == nil || b == nil || a.width != b.width || a.height != b.height {
		return false
	}
	var x, y float64
	for i := range a.data {
		x, y = float64(a.data[i]), float64(b.data[i])
		if x == y {
			continue // covers equal infinities
		}
		if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
			return false
		}
		if math.Abs(x-y) > atol+rtol*math.Abs(y) {
			return false
		}
	}

	return true
}

// String renders rows as lines with comma-separated values, e.g. "[1, 2]\n[3, 4]\n".
// Intended for diagnostics; not for hot paths.
func (m *Matrix[E]) String() string {
	var b strings.Builder
	var x, base int
	for y := 0; y < m.height; y++ {
		b.WriteString(_fmtRowOpen)
		base = y * m.width
		for x = 0; x < m.width; x++ {
			fmt.Fprint(&b, m.data[base+x])
			if x+1 < m.width {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
