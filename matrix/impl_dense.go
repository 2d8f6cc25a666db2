// SPDX-License-Identifier: MIT

// Package matrix - element and sub-matrix access.
//
// Purpose:
//   - Resolve a scalar / full-range / range index on each axis.
//   - Return the element when both axes are scalar, otherwise copy the window
//     into a fresh Matrix using the fewest contiguous copies.
//
// Extraction order (fastest first):
//  1. X spans the full width: one run data[y0*w : y1*w].
//  2. X or Y has length 1: one run, offset by the fixed index.
//  3. General window: one run per row, merged by joinRuns.
//
// Complexity quicksheet:
//   - At: O(1); Index/Slice: O(len(X)*len(Y)) copy, O(len(Y)) runs at most.
package matrix

import "fmt"

// Selection is the result of Matrix.Index: an element, a sub-matrix, or an
// empty window (one axis resolved to zero length).
type Selection[E Element] struct {
	value         E
	sub           *Matrix[E]
	width, height int
	scalar        bool
}

// IsScalar reports whether both axes selected a single position.
func (s Selection[E]) IsScalar() bool { return s.scalar }

// IsEmpty reports whether one of the axes resolved to an empty range.
func (s Selection[E]) IsEmpty() bool { return !s.scalar && s.sub == nil }

// Value returns the selected element; the zero value unless IsScalar.
func (s Selection[E]) Value() E { return s.value }

// Matrix returns the selected sub-matrix; nil for scalar and empty selections.
func (s Selection[E]) Matrix() *Matrix[E] { return s.sub }

// Shape returns the selected width and height (1×1 for a scalar).
func (s Selection[E]) Shape() (width, height int) { return s.width, s.height }

// axes maps one or two indices onto (x, y). A single index is legal only when
// the matrix is a row (height 1) or a column (width 1).
func (m *Matrix[E]) axes(idx []Index) (x, y Index, err error) {
	switch len(idx) {
	case 2:
		return idx[0], idx[1], nil
	case 1:
		switch {
		case m.height == 1:
			return idx[0], At(0), nil
		case m.width == 1:
			return At(0), idx[0], nil
		}
		return Index{}, Index{}, fmt.Errorf("%s: single index on %dx%d matrix: %w",
			ctxIndex, m.width, m.height, ErrAmbiguousIndex)
	default:
		return Index{}, Index{}, fmt.Errorf("%s: %d indices: %w", ctxIndex, len(idx), ErrAmbiguousIndex)
	}
}

// Index applies one or two axis indices.
//
// Implementation:
//   - Stage 1: map indices onto (x, y); normalize both against width/height.
//   - Stage 2: both scalar → element (no copy).
//   - Stage 3: empty range on either axis → empty Selection (not an error).
//   - Stage 4: extract the window into a fresh Matrix.
//
// Errors:
//   - ErrAmbiguousIndex, ErrUnsupportedStep, ErrOutOfRange (*OrderError).
//
// Complexity:
//   - Time O(len(X)*len(Y)), Space O(len(X)*len(Y)).
func (m *Matrix[E]) Index(idx ...Index) (Selection[E], error) {
	if m == nil {
		return Selection[E]{}, fmt.Errorf("%s: %w", ctxIndex, ErrNilMatrix)
	}
	x, y, err := m.axes(idx)
	if err != nil {
		return Selection[E]{}, err
	}
	xs, err := normalize(x, m.width)
	if err != nil {
		return Selection[E]{}, fmt.Errorf("%s: x %s: %w", ctxIndex, x, err)
	}
	ys, err := normalize(y, m.height)
	if err != nil {
		return Selection[E]{}, fmt.Errorf("%s: y %s: %w", ctxIndex, y, err)
	}

	if x.IsScalar() && y.IsScalar() {
		return Selection[E]{value: m.data[ys.start*m.width+xs.start], width: 1, height: 1, scalar: true}, nil
	}
	if xs.len() == 0 || ys.len() == 0 {
		return Selection[E]{width: xs.len(), height: ys.len()}, nil
	}
	sub := m.extract(xs, ys)

	return Selection[E]{sub: sub, width: sub.width, height: sub.height}, nil
}

// At returns the element at column x, row y. Negative indices wrap once.
// Errors: ErrOutOfRange (*OrderError) when a coordinate is outside the matrix.
// Complexity: O(1).
func (m *Matrix[E]) At(x, y int) (E, error) {
	var zero E
	sel, err := m.Index(At(x), At(y))
	if err != nil {
		return zero, fmt.Errorf("%s(%d,%d): %w", ctxAt, x, y, err)
	}

	return sel.Value(), nil
}

// Slice returns the window selected by (x, y) as a Matrix. A scalar pair
// yields a 1×1 matrix.
// Errors: those of Index, plus ErrEmptyMatrix for an empty window.
func (m *Matrix[E]) Slice(x, y Index) (*Matrix[E], error) {
	sel, err := m.Index(x, y)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxSlice, err)
	}
	switch {
	case sel.IsScalar():
		return adopt([]E{sel.Value()}, 1, 1), nil
	case sel.IsEmpty():
		w, h := sel.Shape()
		return nil, fmt.Errorf("%s: %dx%d window: %w", ctxSlice, w, h, ErrEmptyMatrix)
	}

	return sel.Matrix(), nil
}

// extract copies the non-empty window X×Y into a fresh matrix.
func (m *Matrix[E]) extract(xs, ys span) *Matrix[E] {
	w := m.width
	var runs []run
	switch {
	case xs.start == 0 && xs.stop == w:
		// Full rows are contiguous in row-major order.
		runs = []run{{start: ys.start * w, stop: ys.stop * w, stride: 1}}
	case ys.len() == 1:
		runs = []run{xs.asRun().shift(ys.start * w)}
	case xs.len() == 1:
		// Column: stepping one row at a time.
		runs = []run{run{start: ys.start * w, stop: ys.stop * w, stride: w}.shift(xs.start)}
	default:
		runs = make([]run, 0, ys.len())
		for r := ys.start; r < ys.stop; r++ {
			runs = append(runs, xs.asRun().shift(r*w))
		}
		runs = joinRuns(runs)
	}

	return adopt(gather(m.data, runs, xs.len()*ys.len()), xs.len(), ys.len())
}
