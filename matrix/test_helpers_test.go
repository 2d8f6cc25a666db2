// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Small deterministic fixtures and naive reference implementations that
//     the optimized paths are compared against.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/flatmat/matrix"
	"github.com/stretchr/testify/require"
)

// mustRows builds a matrix from nested rows or fails the test.
func mustRows[E matrix.Element](tb testing.TB, rows [][]E) *matrix.Matrix[E] {
	tb.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(tb, err)

	return m
}

// scenarioA is [[1,2,3],[4,5,6]]: width 3, height 2.
func scenarioA(tb testing.TB) *matrix.Matrix[float64] {
	tb.Helper()

	return mustRows(tb, [][]float64{{1, 2, 3}, {4, 5, 6}})
}

// randInts fills a w×h int matrix with values in [-9, 9] from a fixed seed.
func randInts(tb testing.TB, w, h int, seed int64) *matrix.Matrix[int] {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	data := make([]int, w*h)
	for i := range data {
		data[i] = rng.Intn(19) - 9
	}
	m, err := matrix.NewFromData(data, matrix.WithShape(w, h))
	require.NoError(tb, err)

	return m
}

// randFloats fills a w×h float64 matrix with values in [-1, 1) from a fixed seed.
func randFloats(tb testing.TB, w, h int, seed int64) *matrix.Matrix[float64] {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	data := make([]float64, w*h)
	for i := range data {
		data[i] = rng.Float64()*2 - 1
	}
	m, err := matrix.NewFromData(data, matrix.WithShape(w, h))
	require.NoError(tb, err)

	return m
}

// naiveWindow copies columns [x0,x1) of rows [y0,y1) element by element.
func naiveWindow[E matrix.Element](m *matrix.Matrix[E], x0, x1, y0, y1 int) [][]E {
	rows := m.Rows()
	out := make([][]E, 0, y1-y0)
	for y := y0; y < y1; y++ {
		row := make([]E, 0, x1-x0)
		for x := x0; x < x1; x++ {
			row = append(row, rows[y][x])
		}
		out = append(out, row)
	}

	return out
}

// naiveTranspose applies result[x,y] = m[y,x] with a nested loop.
func naiveTranspose[E matrix.Element](m *matrix.Matrix[E]) [][]E {
	rows := m.Rows()
	out := make([][]E, m.Width())
	for x := range out {
		out[x] = make([]E, m.Height())
		for y := range out[x] {
			out[x][y] = rows[y][x]
		}
	}

	return out
}
