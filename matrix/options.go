// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for flat-buffer construction.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each option changes how NewFromData resolves shape.
//   - Dimension options never panic: a non-positive value is a user error and
//     surfaces as ErrInvalidDimension from the constructor.
package matrix

import "math"

// Numeric policy.
const (
	// DefaultRelTol is the relative tolerance used by AllClose in tests and examples.
	DefaultRelTol = 1e-9

	// DefaultAbsTol is the absolute tolerance used by AllClose in tests and examples.
	DefaultAbsTol = 1e-12
)

const panicTolInvalid = "matrix: tolerance must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly (last wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	width, height       int
	hasWidth, hasHeight bool
}

// WithWidth fixes the matrix width for NewFromData.
// When the height is not also given it is derived as len(data)/width.
func WithWidth(w int) Option {
	return func(o *Options) {
		o.width = w
		o.hasWidth = true
	}
}

// WithHeight fixes the matrix height for NewFromData.
// When the width is not also given it is derived as len(data)/height.
func WithHeight(h int) Option {
	return func(o *Options) {
		o.height = h
		o.hasHeight = true
	}
}

// WithShape is shorthand for WithWidth(w) followed by WithHeight(h).
func WithShape(w, h int) Option {
	return func(o *Options) {
		WithWidth(w)(o)
		WithHeight(h)(o)
	}
}

// gatherOptions applies opts over the zero Options.
// Nil options are skipped.
func gatherOptions(opts ...Option) Options {
	var o Options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// mustTolerance panics on tolerances that are NaN, infinite or negative.
// Tolerances are programmer-supplied constants, so a bad one is a bug.
func mustTolerance(tol float64) float64 {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicTolInvalid)
	}

	return tol
}
