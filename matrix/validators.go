// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for ordering and shape checks.
//  - checkOrder backs both index normalization (user errors) and the run-join
//    consistency assertions (programmer errors).
//
// Determinism & Performance:
//  - All checks are pure and allocate only on failure.

package matrix

import (
	"fmt"
	"math"
)

// lessEq is the ordering used by every chain in this package.
func lessEq(a, b int) bool { return a <= b }

// named builds a caller-supplied bound.
func named(name string, v int) Bound { return Bound{Name: name, Value: v} }

// limit builds a fixed end of a chain (0 or an axis length).
func limit(name string, v int) Bound { return Bound{Name: name, Value: v, Limit: true} }

// checkOrder verifies cmp(b[i], b[i+1]) for every adjacent pair, scanning
// left to right, and reports the first pair that fails as *OrderError.
// Complexity: O(len(bounds)).
func checkOrder(cmp func(a, b int) bool, bounds ...Bound) error {
	for i := 1; i < len(bounds); i++ {
		if !cmp(bounds[i-1].Value, bounds[i].Value) {
			return &OrderError{Lower: bounds[i-1], Upper: bounds[i]}
		}
	}

	return nil
}

// validateDimension rejects an explicitly given non-positive dimension.
func validateDimension(tag, name string, v int) error {
	if v <= 0 {
		return fmt.Errorf("%s: %s %d: %w", tag, name, v, ErrInvalidDimension)
	}

	return nil
}

// validateArea rejects positive dimensions whose product does not fit in an int.
func validateArea(tag string, w, h int) error {
	if w > 0 && h > 0 && w > math.MaxInt/h {
		return fmt.Errorf("%s: %dx%d overflows int: %w", tag, w, h, ErrInvalidDimension)
	}

	return nil
}

// validateNonEmpty rejects a resolved zero-area shape.
func validateNonEmpty(tag string, w, h int) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("%s: %dx%d: %w", tag, w, h, ErrEmptyMatrix)
	}

	return nil
}

// validateNotNil is the first step of every binary operation.
func validateNotNil[E Element](tag string, m *Matrix[E]) error {
	if m == nil {
		return fmt.Errorf("%s: %w", tag, ErrNilMatrix)
	}

	return nil
}
