// SPDX-License-Identifier: MIT
// Package matrix provides transpose and multiplication over Matrix values.
//
// Purpose:
//   - Transpose with the fewest discrete copy steps: the outer loop runs over
//     the larger dimension and each step copies one reversed strided run.
//   - Multiply with kind-aware summation: exact for integral operands,
//     compensated (exactly rounded) as soon as either operand is floating point.
//
// Notes:
//   - Inputs are never mutated; every result owns a fresh buffer.
package matrix

import "fmt"

// T returns the transpose of m: width and height swap and result[x,y] = m[y,x].
//
// Implementation:
//   - w >= h: walk source columns from last to first; each column is read as
//     a reversed run (stride -w) and written backwards into its output row.
//   - h > w: walk source rows from last to first; each row is read as a
//     reversed unit-stride run and scattered into its output column.
//
// Behavior highlights:
//   - Identical to the naive nested loop whichever branch runs.
//   - T(T(m)) equals m.
//
// Complexity:
//   - Time O(w*h), Space O(w*h); max(w,h) runs.
func (m *Matrix[E]) T() *Matrix[E] {
	w, h := m.width, m.height
	out := make([]E, len(m.data))
	if w >= h {
		pos := len(out)
		for x := w - 1; x >= 0; x-- {
			col := run{start: (h-1)*w + x, stop: x - w, stride: -w}
			for off := range col.offsets() {
				pos--
				out[pos] = m.data[off]
			}
		}
	} else {
		for y := h - 1; y >= 0; y-- {
			row := run{start: y*w + w - 1, stop: y*w - 1, stride: -1}
			x := w - 1
			for off := range row.offsets() {
				out[x*h+y] = m.data[off]
				x--
			}
		}
	}

	return adopt(out, h, w)
}

// Transpose is the nil-checked form of m.T().
// Errors: ErrNilMatrix.
func Transpose[E Element](m *Matrix[E]) (*Matrix[E], error) {
	if err := validateNotNil(opTranspose, m); err != nil {
		return nil, err
	}

	return m.T(), nil
}

// Mul computes a × b with the result in a's element kind.
// See MulAs for the contract.
func Mul[E, F Element](a *Matrix[E], b *Matrix[F]) (*Matrix[E], error) {
	return MulAs[E](a, b)
}

// MulAs computes a × b with an explicitly requested result kind R.
//
// Implementation:
//   - Stage 1: validate non-nil operands and a.Width() == b.Height().
//   - Stage 2: pick the kernel from the strategy table keyed by both kinds.
//   - Stage 3: result[col,row] = Σ_k a[k,row] * b[col,k], row-major fill.
//
// Behavior highlights:
//   - Either operand float → products in float64, compensated sum per cell,
//     converted to R at the end.
//   - Both integral → products and running sum in R (no overflow handling).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (*DimensionError with both sizes).
//
// Complexity:
//   - Time O(h*w*m), Space O(h*w) (+O(m) partials per cell for floats).
func MulAs[R, E, F Element](a *Matrix[E], b *Matrix[F]) (*Matrix[R], error) {
	if err := validateNotNil(opMul, a); err != nil {
		return nil, err
	}
	if err := validateNotNil(opMul, b); err != nil {
		return nil, err
	}
	if a.width != b.height {
		return nil, &DimensionError{Op: opMul, Left: a.width, Right: b.height}
	}

	kernels := [...]func(a *Matrix[E], b *Matrix[F], out []R){
		exactSum:       mulExact[R, E, F],
		compensatedSum: mulCompensated[R, E, F],
	}
	out := make([]R, a.height*b.width)
	kernels[strategyFor(a.kind, b.kind)](a, b, out)

	return adopt(out, b.width, a.height), nil
}

func mulExact[R, E, F Element](a *Matrix[E], b *Matrix[F], out []R) {
	m, w := a.width, b.width
	var acc R
	for row := 0; row < a.height; row++ {
		left := a.data[row*m : (row+1)*m]
		for col := 0; col < w; col++ {
			acc = 0
			for k, lv := range left {
				acc += R(lv) * R(b.data[k*w+col])
			}
			out[row*w+col] = acc
		}
	}
}

func mulCompensated[R, E, F Element](a *Matrix[E], b *Matrix[F], out []R) {
	m, w := a.width, b.width
	s := fsum{partials: make([]float64, 0, m)}
	for row := 0; row < a.height; row++ {
		left := a.data[row*m : (row+1)*m]
		for col := 0; col < w; col++ {
			s.reset()
			for k, lv := range left {
				s.add(float64(lv) * float64(b.data[k*w+col]))
			}
			out[row*w+col] = R(s.value())
		}
	}
}

// Mul multiplies m by other, which must be a *Matrix of any supported kind.
// The result keeps m's kind.
//
// Errors:
//   - ErrTypeMismatch when other is not a *Matrix.
//   - Everything MulAs returns.
func (m *Matrix[E]) Mul(other any) (*Matrix[E], error) {
	switch o := other.(type) {
	case *Matrix[int]:
		return Mul(m, o)
	case *Matrix[int8]:
		return Mul(m, o)
	case *Matrix[int16]:
		return Mul(m, o)
	case *Matrix[int32]:
		return Mul(m, o)
	case *Matrix[int64]:
		return Mul(m, o)
	case *Matrix[uint]:
		return Mul(m, o)
	case *Matrix[uint8]:
		return Mul(m, o)
	case *Matrix[uint16]:
		return Mul(m, o)
	case *Matrix[uint32]:
		return Mul(m, o)
	case *Matrix[uint64]:
		return Mul(m, o)
	case *Matrix[float32]:
		return Mul(m, o)
	case *Matrix[float64]:
		return Mul(m, o)
	default:
		return nil, fmt.Errorf("%s: right operand %T: %w", opMul, other, ErrTypeMismatch)
	}
}
