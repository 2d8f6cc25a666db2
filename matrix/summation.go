// SPDX-License-Identifier: MIT

// Package matrix - kind-aware summation.
//
// Two strategies, picked once per call from a table keyed by Kind:
//   - exactSum: plain accumulation in the result type (integral kinds; the
//     caller's type must be wide enough, overflow wraps as in Go).
//   - compensatedSum: Shewchuk's running partials, exactly rounded (float kinds).
package matrix

import "math"

// strategy selects a summation algorithm.
type strategy uint8

const (
	exactSum strategy = iota
	compensatedSum
)

// strategyByKind is the dispatch table for summation.
var strategyByKind = [numKinds]strategy{
	KindInt:     exactSum,
	KindInt8:    exactSum,
	KindInt16:   exactSum,
	KindInt32:   exactSum,
	KindInt64:   exactSum,
	KindUint:    exactSum,
	KindUint8:   exactSum,
	KindUint16:  exactSum,
	KindUint32:  exactSum,
	KindUint64:  exactSum,
	KindFloat32: compensatedSum,
	KindFloat64: compensatedSum,
}

// strategyFor returns compensatedSum when either operand kind needs it.
func strategyFor(a, b Kind) strategy {
	return max(strategyByKind[a], strategyByKind[b])
}

// fsum accumulates float64 terms without losing low-order bits.
// partials holds non-overlapping values in increasing magnitude.
type fsum struct {
	partials  []float64
	special   float64 // sum of ±Inf/NaN input terms
	nonFinite bool
	overflow  float64 // ±Inf once a finite partial sum overflowed, else 0
}

func (s *fsum) reset() {
	s.partials = s.partials[:0]
	s.special = 0
	s.nonFinite = false
	s.overflow = 0
}

func (s *fsum) add(x float64) {
	if math.IsInf(x, 0) || math.IsNaN(x) {
		s.special += x
		s.nonFinite = true
		return
	}
	if s.overflow != 0 {
		return
	}
	i := 0
	for _, y := range s.partials {
		if math.Abs(x) < math.Abs(y) {
			x, y = y, x
		}
		hi := x + y
		if math.IsInf(hi, 0) {
			// intermediate overflow: the true sum is out of range
			s.overflow = hi
			return
		}
		lo := y - (hi - x)
		if lo != 0 {
			s.partials[i] = lo
			i++
		}
		x = hi
	}
	s.partials = append(s.partials[:i], x)
}

// value returns the correctly rounded sum of all terms added so far.
// Input infinities win over an intermediate overflow; Inf + -Inf yields NaN.
func (s *fsum) value() float64 {
	if s.nonFinite {
		return s.special
	}
	if s.overflow != 0 {
		return s.overflow
	}
	n := len(s.partials)
	if n == 0 {
		return 0
	}
	n--
	hi := s.partials[n]
	var lo float64
	for n > 0 {
		x := hi
		n--
		y := s.partials[n]
		hi = x + y
		lo = y - (hi - x)
		if lo != 0 {
			break
		}
	}
	// Round half-even: if the remaining partials push lo past the halfway
	// point, hi must move one ulp in lo's direction.
	if n > 0 && ((lo < 0 && s.partials[n-1] < 0) || (lo > 0 && s.partials[n-1] > 0)) {
		y := lo * 2
		x := hi + y
		if y == x-hi {
			hi = x
		}
	}

	return hi
}

// FSum returns the correctly rounded sum of xs.
// Non-finite terms propagate: any NaN or Inf + -Inf gives NaN, and an
// intermediate overflow yields the infinity of its sign.
// Complexity: O(n) amortized; extra space proportional to the partials kept.
func FSum(xs []float64) float64 {
	var s fsum
	for _, x := range xs {
		s.add(x)
	}

	return s.value()
}

// Sum adds xs with the strategy of E's kind: exact for integral kinds,
// compensated for float kinds.
func Sum[E Element](xs []E) E {
	if strategyByKind[KindOf[E]()] == compensatedSum {
		var s fsum
		for _, x := range xs {
			s.add(float64(x))
		}
		return E(s.value())
	}
	var acc E
	for _, x := range xs {
		acc += x
	}

	return acc
}
