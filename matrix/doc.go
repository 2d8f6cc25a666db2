// Package matrix offers dense, immutable two-dimensional numeric matrices
// stored in a single flat row-major buffer.
//
// The matrix package provides:
//
//   - Three constructors: NewZero (dimensions only), NewFromRows (nested
//     equal-length rows) and NewFromData (flat buffer with WithWidth /
//     WithHeight).
//   - Generalized indexing: each axis takes a scalar (At), the full-range
//     marker (All) or a unit-step range (Span, From, Until). Two scalars yield
//     an element; anything else yields a freshly copied sub-matrix.
//   - Transpose (T) and multiplication (Mul, MulAs, Matrix.Mul) with
//     kind-aware summation: exact for integral kinds, exactly rounded
//     compensated summation as soon as a floating-point operand is involved.
//   - Exact equality (Equal) and tolerance checks (AllClose).
//
// Element (x, y) lives at data[y*width + x]. Matrices never alias each other
// or caller memory, and no operation mutates an existing Matrix, so a Matrix
// can be read from many goroutines without locking.
//
// See the examples in this package for usage patterns.
package matrix
