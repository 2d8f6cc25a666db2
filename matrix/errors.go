// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines the package-level sentinel errors and the two detail
// carrying error types. All public operations MUST return these sentinels
// (possibly wrapped) and tests MUST check them via errors.Is / errors.As.
// Panics are reserved for internal consistency failures (see runs.go).

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. Call sites add
// context with fmt.Errorf("Op: %w", ErrX); callers still match with errors.Is.

var (
	// ErrInvalidDimension is returned when an explicitly given width or height is <= 0.
	ErrInvalidDimension = errors.New("matrix: dimensions must be > 0")

	// ErrEmptyMatrix is returned when resolved width*height == 0.
	ErrEmptyMatrix = errors.New("matrix: zero-sized matrix")

	// ErrRowLengthMismatch is returned by NewFromRows when rows differ in length.
	ErrRowLengthMismatch = errors.New("matrix: row length mismatch")

	// ErrSizeMismatch is returned by NewFromData when the data length does not
	// match or divide evenly by the given dimension(s).
	ErrSizeMismatch = errors.New("matrix: data length does not match dimensions")

	// ErrUnsupportedStep is returned for a range index whose step is not 1.
	ErrUnsupportedStep = errors.New("matrix: step must be 1 or unspecified")

	// ErrOutOfRange indicates a normalized bound violates 0 <= start <= stop <= length.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible inner dimensions in Mul.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrTypeMismatch indicates that a multiplication operand is not a Matrix.
	ErrTypeMismatch = errors.New("matrix: operand is not a matrix")

	// ErrAmbiguousIndex is returned when a single index is applied to a matrix
	// whose width and height are both greater than 1, or when the index count
	// is neither 1 nor 2.
	ErrAmbiguousIndex = errors.New("matrix: index must be an (x, y) pair")

	// ErrBadIndexSyntax is returned by ParseIndex for malformed expressions.
	ErrBadIndexSyntax = errors.New("matrix: malformed index expression")

	// ErrNilMatrix indicates that a nil *Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)

// Bound is a named integer taking part in an ordering check.
// Limit marks fixed ends of a chain (0, axis length) as opposed to caller input.
type Bound struct {
	Name  string
	Value int
	Limit bool
}

func (b Bound) String() string {
	if b.Name == "" {
		return fmt.Sprintf("%d", b.Value)
	}

	return fmt.Sprintf("%s (%d)", b.Name, b.Value)
}

// OrderError reports the first adjacent pair of an ordering chain that broke
// order. It unwraps to ErrOutOfRange.
type OrderError struct {
	Lower, Upper Bound
}

func (e *OrderError) Error() string {
	return fmt.Sprintf("matrix: %s <= %s violated", e.Lower, e.Upper)
}

func (e *OrderError) Unwrap() error { return ErrOutOfRange }

// Offender names the bound held responsible: the caller-supplied side of the
// pair, or the upper one when both sides are caller-supplied.
func (e *OrderError) Offender() string {
	if e.Upper.Limit && !e.Lower.Limit {
		return e.Lower.Name
	}

	return e.Upper.Name
}

// DimensionError carries both offending dimensions of an incompatible
// multiplication. It unwraps to ErrDimensionMismatch.
type DimensionError struct {
	Op          string
	Left, Right int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("%s: left width (%d) != right height (%d): %v", e.Op, e.Left, e.Right, ErrDimensionMismatch)
}

func (e *DimensionError) Unwrap() error { return ErrDimensionMismatch }
