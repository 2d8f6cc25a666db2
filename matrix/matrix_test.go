// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for Matrix construction,
// accessors and equality.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/flatmat/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewZeroInvalidDimensions ensures NewZero rejects non-positive dimensions.
func TestNewZeroInvalidDimensions(t *testing.T) {
	_, err := matrix.NewZero[int](0, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimension)

	_, err = matrix.NewZero[int](5, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimension)

	_, err = matrix.Zeros(0, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimension)
}

// TestZerosAdditiveIdentity verifies every element of a zero-filled matrix is 0
// for several kinds.
func TestZerosAdditiveIdentity(t *testing.T) {
	for w := 1; w <= 4; w++ {
		for h := 1; h <= 4; h++ {
			f, err := matrix.Zeros(w, h)
			require.NoError(t, err)
			require.Equal(t, matrix.KindFloat64, f.Kind())
			require.Equal(t, make([]float64, w*h), f.Data())

			u, err := matrix.NewZero[uint8](w, h)
			require.NoError(t, err)
			require.Equal(t, matrix.KindUint8, u.Kind())
			require.Equal(t, make([]uint8, w*h), u.Data())
		}
	}
}

// TestNewFromRows covers the nested-rows shape.
func TestNewFromRows(t *testing.T) {
	m := mustRows(t, [][]int{{1, 2, 3}, {4, 5, 6}})
	w, h := m.Shape()
	require.Equal(t, 3, w)
	require.Equal(t, 2, h)
	require.Equal(t, matrix.KindInt, m.Kind())
	require.Equal(t, []int{1, 2, 3, 4, 5, 6}, m.Data())

	v, err := m.At(1, 1)
	require.NoError(t, err)
	require.Equal(t, 5, v)
}

// TestNewFromRowsErrors covers unequal and empty rows.
func TestNewFromRowsErrors(t *testing.T) {
	_, err := matrix.NewFromRows([][]int{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrRowLengthMismatch)

	_, err = matrix.NewFromRows([][]int{{1}, {2, 3}})
	require.ErrorIs(t, err, matrix.ErrRowLengthMismatch)

	_, err = matrix.NewFromRows([][]float64{})
	require.ErrorIs(t, err, matrix.ErrEmptyMatrix)

	_, err = matrix.NewFromRows([][]float64{{}, {}})
	require.ErrorIs(t, err, matrix.ErrEmptyMatrix)
}

// TestNewFromData covers every shape-resolution branch of the flat-buffer path.
func TestNewFromData(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5, 6}
	tests := []struct {
		name    string
		data    []float64
		opts    []matrix.Option
		w, h    int
		wantErr error
	}{
		{"no dims", data, nil, 6, 1, nil},
		{"width", data, []matrix.Option{matrix.WithWidth(3)}, 3, 2, nil},
		{"height", data, []matrix.Option{matrix.WithHeight(3)}, 2, 3, nil},
		{"both", data, []matrix.Option{matrix.WithShape(2, 3)}, 2, 3, nil},
		{"both mismatch", data, []matrix.Option{matrix.WithShape(4, 2)}, 0, 0, matrix.ErrSizeMismatch},
		{"width remainder", data, []matrix.Option{matrix.WithWidth(4)}, 0, 0, matrix.ErrSizeMismatch},
		{"height remainder", data, []matrix.Option{matrix.WithHeight(5)}, 0, 0, matrix.ErrSizeMismatch},
		{"zero width", data, []matrix.Option{matrix.WithWidth(0)}, 0, 0, matrix.ErrInvalidDimension},
		{"negative height", data, []matrix.Option{matrix.WithHeight(-2)}, 0, 0, matrix.ErrInvalidDimension},
		{"empty", nil, nil, 0, 0, matrix.ErrEmptyMatrix},
		{"empty with width", []float64{}, []matrix.Option{matrix.WithWidth(2)}, 0, 0, matrix.ErrEmptyMatrix},
		{"nil option skipped", data, []matrix.Option{nil, matrix.WithWidth(2)}, 2, 3, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, err := matrix.NewFromData(tc.data, tc.opts...)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				require.Nil(t, m)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.w, m.Width())
			require.Equal(t, tc.h, m.Height())
			require.Equal(t, tc.data, m.Data())
		})
	}
}

// TestNoAliasing ensures constructors and accessors copy rather than share.
// TestDimensionOverflow rejects shapes whose area does not fit in an int.
func TestDimensionOverflow(t *testing.T) {
	big := math.MaxInt/2 + 1

	_, err := matrix.NewZero[float64](big, 2)
	require.ErrorIs(t, err, matrix.ErrInvalidDimension)
	_, err = matrix.NewZero[int8](2, big)
	require.ErrorIs(t, err, matrix.ErrInvalidDimension)
	_, err = matrix.Zeros(math.MaxInt, math.MaxInt)
	require.ErrorIs(t, err, matrix.ErrInvalidDimension)

	_, err = matrix.NewFromData([]float64{}, matrix.WithShape(big, 2))
	require.ErrorIs(t, err, matrix.ErrInvalidDimension)
	_, err = matrix.NewFromData([]float64{1, 2}, matrix.WithShape(math.MaxInt, math.MaxInt))
	require.ErrorIs(t, err, matrix.ErrInvalidDimension)

	// The largest products that fit still reach the length check.
	_, err = matrix.NewFromData([]float64{1, 2}, matrix.WithShape(math.MaxInt/2, 2))
	require.ErrorIs(t, err, matrix.ErrSizeMismatch)
}

func TestNoAliasing(t *testing.T) {
	data := []int{1, 2, 3, 4}
	m, err := matrix.NewFromData(data, matrix.WithWidth(2))
	require.NoError(t, err)
	data[0] = 99
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1, v, "caller slice must not alias the matrix")

	out := m.Data()
	out[1] = 42
	rows := m.Rows()
	rows[1][1] = 42
	require.Equal(t, []int{1, 2, 3, 4}, m.Data())

	rowsIn := [][]int{{1, 2}, {3, 4}}
	r := mustRows(t, rowsIn)
	rowsIn[0][0] = -1
	require.Equal(t, []int{1, 2, 3, 4}, r.Data())
}

// TestEqual checks exact equality semantics.
func TestEqual(t *testing.T) {
	a := mustRows(t, [][]float64{{1, 2}, {3, 4}})
	b := mustRows(t, [][]float64{{1, 2}, {3, 4}})
	flat, err := matrix.NewFromData([]float64{1, 2, 3, 4})
	require.NoError(t, err)
	tall, err := matrix.NewFromData([]float64{1, 2, 3, 4}, matrix.WithWidth(1))
	require.NoError(t, err)
	off := mustRows(t, [][]float64{{1, 2}, {3, 4.000001}})

	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))
	assert.False(t, a.Equal(flat), "same buffer, different shape")
	assert.False(t, flat.Equal(tall))
	assert.False(t, a.Equal(off), "no tolerance")
	assert.False(t, a.Equal(nil))

	var n1, n2 *matrix.Matrix[float64]
	assert.True(t, n1.Equal(n2))

	nan := mustRows(t, [][]float64{{math.NaN()}})
	assert.False(t, nan.Equal(nan), "NaN never equals NaN")
}

// TestAllClose checks tolerant comparison and its guards.
func TestAllClose(t *testing.T) {
	a := mustRows(t, [][]float64{{1, 2}, {math.Inf(1), 4}})
	b := mustRows(t, [][]float64{{1 + 1e-12, 2}, {math.Inf(1), 4}})
	c := mustRows(t, [][]float64{{1.1, 2}, {math.Inf(1), 4}})

	assert.True(t, matrix.AllClose(a, b, matrix.DefaultRelTol, matrix.DefaultAbsTol))
	assert.False(t, matrix.AllClose(a, c, matrix.DefaultRelTol, matrix.DefaultAbsTol))
	assert.False(t, matrix.AllClose(a, nil, 0, 0))
	require.Panics(t, func() { matrix.AllClose(a, b, -1, 0) })
}

// TestConvert checks explicit kind conversion.
func TestConvert(t *testing.T) {
	f := mustRows(t, [][]float64{{1.5, -2.7}, {3, 4.9}})
	i, err := matrix.Convert[int](f)
	require.NoError(t, err)
	require.Equal(t, matrix.KindInt, i.Kind())
	require.Equal(t, [][]int{{1, -2}, {3, 4}}, i.Rows())

	var nilM *matrix.Matrix[float64]
	_, err = matrix.Convert[int](nilM)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestKind covers tag names and classes.
func TestKind(t *testing.T) {
	require.Equal(t, matrix.KindInt16, matrix.KindOf[int16]())
	require.Equal(t, matrix.KindUint64, matrix.KindOf[uint64]())
	require.Equal(t, matrix.KindFloat32, matrix.KindOf[float32]())
	require.Equal(t, "uint32", matrix.KindUint32.String())
	require.Equal(t, "invalid", matrix.Kind(200).String())
	require.True(t, matrix.KindFloat32.IsFloat())
	require.False(t, matrix.KindFloat32.IsIntegral())
	require.True(t, matrix.KindInt64.IsIntegral())
	require.False(t, matrix.KindUint.IsFloat())
}

// TestStringOutput checks that String() formats the matrix row by row.
func TestStringOutput(t *testing.T) {
	require.Equal(t, "[1, 2, 3]\n[4, 5, 6]\n", mustRows(t, [][]int{{1, 2, 3}, {4, 5, 6}}).String())
	require.Equal(t, "[0.5, -2]\n", mustRows(t, [][]float64{{0.5, -2}}).String())
}
