// SPDX-License-Identifier: MIT

// Package matrix - index normalization.
//
// An Index is one of three shapes: the full-range marker (All), a scalar (At)
// or a bounded range with unit step (Span, From, Until). normalize turns any of
// them into a half-open span [start, stop) over an axis of a given length.
package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

type indexKind uint8

const (
	indexAll indexKind = iota
	indexScalar
	indexRange
)

// Index selects positions along one axis. Build it with All, At, Span, From or Until.
// The zero Index is the full-range marker.
type Index struct {
	kind     indexKind
	start    int // scalar position or range start
	stop     int
	step     int
	hasStart bool
	hasStop  bool
	hasStep  bool
}

// All is the full-range marker: every position on the axis.
func All() Index { return Index{kind: indexAll} }

// At selects the single position i. Negative values count from the end once:
// At(-1) is the last position.
func At(i int) Index { return Index{kind: indexScalar, start: i, hasStart: true} }

// Span selects the half-open range [start, stop). Negative bounds wrap once.
func Span(start, stop int) Index {
	return Index{kind: indexRange, start: start, stop: stop, hasStart: true, hasStop: true}
}

// From selects [start, axis length).
func From(start int) Index { return Index{kind: indexRange, start: start, hasStart: true} }

// Until selects [0, stop).
func Until(stop int) Index { return Index{kind: indexRange, stop: stop, hasStop: true} }

// Step returns a copy of ix as a range with an explicit step.
// Only a step of 1 normalizes; anything else fails with ErrUnsupportedStep.
// Applied to All it yields the open range [0, length); applied to At(i) it
// yields the one-element range [i, i+1), which is no longer scalar.
func (ix Index) Step(step int) Index {
	switch ix.kind {
	case indexAll:
		ix.kind = indexRange
	case indexScalar:
		ix.kind = indexRange
		ix.stop = ix.start + 1
		ix.hasStop = ix.stop != 0 // At(-1) runs to the end of the axis
	}
	ix.step = step
	ix.hasStep = true

	return ix
}

// IsScalar reports whether ix selects a single position.
func (ix Index) IsScalar() bool { return ix.kind == indexScalar }

// String renders ix in the syntax accepted by ParseIndex.
func (ix Index) String() string {
	switch ix.kind {
	case indexScalar:
		return strconv.Itoa(ix.start)
	case indexRange:
		var b strings.Builder
		if ix.hasStart {
			b.WriteString(strconv.Itoa(ix.start))
		}
		b.WriteByte(':')
		if ix.hasStop {
			b.WriteString(strconv.Itoa(ix.stop))
		}
		if ix.hasStep {
			b.WriteByte(':')
			b.WriteString(strconv.Itoa(ix.step))
		}
		return b.String()
	default:
		return "..."
	}
}

// span is a normalized half-open range, 0 <= start <= stop <= axis length.
type span struct {
	start, stop int
}

func (s span) len() int { return s.stop - s.start }

// asRun views the span as a unit-stride run over a single row.
func (s span) asRun() run { return run{start: s.start, stop: s.stop, stride: 1} }

// wrap adds length once to a negative position.
func wrap(i, length int) int {
	if i < 0 {
		return i + length
	}

	return i
}

// normalize resolves ix over an axis of the given length.
//
// Errors:
//   - ErrUnsupportedStep for a range step other than 1.
//   - *OrderError (unwraps to ErrOutOfRange) naming the first bound that breaks
//     0 <= start <= stop <= axis length.
//
// Complexity: O(1).
func normalize(ix Index, length int) (span, error) {
	var s span
	switch ix.kind {
	case indexAll:
		s = span{start: 0, stop: length}
	case indexScalar:
		s.start = wrap(ix.start, length)
		s.stop = s.start + 1
	default:
		if ix.hasStep && ix.step != 1 {
			return span{}, fmt.Errorf("step %d: %w", ix.step, ErrUnsupportedStep)
		}
		s.stop = length
		if ix.hasStart {
			s.start = wrap(ix.start, length)
		}
		if ix.hasStop {
			s.stop = wrap(ix.stop, length)
		}
	}

	if err := checkOrder(lessEq,
		limit("", 0),
		named("start", s.start),
		named("stop", s.stop),
		limit("axis length", length),
	); err != nil {
		return span{}, err
	}

	return s, nil
}

// ParseIndex parses the textual index forms
//
//	"..." "…" ":" ""  full range
//	"i"               scalar
//	"a:b" "a:" ":b"   range
//	"a:b:s"           range with explicit step
//
// Whitespace around the expression and its parts is ignored.
func ParseIndex(expr string) (Index, error) {
	expr = strings.TrimSpace(expr)
	switch expr {
	case "", ":", "...", "…":
		return All(), nil
	}

	parts := strings.Split(expr, ":")
	if len(parts) > 3 {
		return Index{}, fmt.Errorf("%q: %w", expr, ErrBadIndexSyntax)
	}
	if len(parts) == 1 {
		i, err := strconv.Atoi(parts[0])
		if err != nil {
			return Index{}, fmt.Errorf("%q: %w", expr, ErrBadIndexSyntax)
		}
		return At(i), nil
	}

	ix := Index{kind: indexRange}
	var err error
	if p := strings.TrimSpace(parts[0]); p != "" {
		if ix.start, err = strconv.Atoi(p); err != nil {
			return Index{}, fmt.Errorf("%q: start: %w", expr, ErrBadIndexSyntax)
		}
		ix.hasStart = true
	}
	if p := strings.TrimSpace(parts[1]); p != "" {
		if ix.stop, err = strconv.Atoi(p); err != nil {
			return Index{}, fmt.Errorf("%q: stop: %w", expr, ErrBadIndexSyntax)
		}
		ix.hasStop = true
	}
	if len(parts) == 3 {
		if p := strings.TrimSpace(parts[2]); p != "" {
			if ix.step, err = strconv.Atoi(p); err != nil {
				return Index{}, fmt.Errorf("%q: step: %w", expr, ErrBadIndexSyntax)
			}
			ix.hasStep = true
		}
	}

	return ix, nil
}
