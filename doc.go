// Package flatmat is a small library of dense, immutable numeric matrices
// backed by a single flat row-major buffer.
//
// What is flatmat?
//
//	A pure-Go toolkit built around one value type, matrix.Matrix[E]:
//		• Construction: zero-filled, from nested rows, from a flat buffer
//		• Indexing: scalar / full-range / unit-step range per axis, with
//		  negative wrap-around and bound-naming range errors
//		• Transpose and multiplication with kind-aware summation
//		  (exact for integers, exactly rounded for floats)
//		• Exact equality and tolerance checks
//
// Layout:
//
//	matrix/           - the Matrix type, index normalizer, run algebra, arithmetic
//	matrix/gonumconv/ - conversion to and from gonum's mat.Dense
//	cmd/flatmat/      - CLI that loads JSONC/YAML operands and applies one operation
//	examples/         - runnable demo program
//
// Quick start:
//
//	m, _ := matrix.NewFromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
//	w, _ := m.Slice(matrix.Span(1, 3), matrix.All()) // columns 1..2
//	p, _ := matrix.Mul(m, m.T())                     // 2×2 Gram matrix
//
// All operations return fresh matrices; nothing is mutated in place, so a
// Matrix may be shared between goroutines freely.
package flatmat
