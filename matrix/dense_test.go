// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvtensor/matrix"
	"github.com/stretchr/testify/require"
)

func TestNewDense_Shapes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		r, c    int
		wantErr error
	}{
		{"1x1", 1, 1, nil},
		{"3x5", 3, 5, nil},
		{"zero rows", 0, 2, matrix.ErrInvalidDimensions},
		{"zero cols", 2, 0, matrix.ErrInvalidDimensions},
		{"negative", -1, 3, matrix.ErrInvalidDimensions},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			m, err := matrix.NewDense(tc.r, tc.c)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				require.Nil(t, m)
				return
			}
			require.NoError(t, err)
			r, c := m.Shape()
			require.Equal(t, tc.r, r)
			require.Equal(t, tc.c, c)
			require.Len(t, m.RawData(), tc.r*tc.c)
			require.True(t, matrix.ValidatesNaNInf_TestOnly(m))
		})
	}
}

func TestNewDenseFrom_CopiesAndValidates(t *testing.T) {
	t.Parallel()

	vals := []float64{1, 2, 3, 4, 5, 6}
	m, err := matrix.NewDenseFrom(2, 3, vals)
	require.NoError(t, err)
	vals[0] = 100
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v, "constructor must copy its input")
	v, err = m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 6.0, v)

	_, err = matrix.NewDenseFrom(2, 3, vals[:5])
	require.ErrorIs(t, err, matrix.ErrLengthMismatch)
	_, err = matrix.NewDenseFrom(0, 3, nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestDense_AtSetBounds(t *testing.T) {
	t.Parallel()

	m := MustDense(t, 2, 2)
	for _, idx := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		_, err := m.At(idx[0], idx[1])
		require.ErrorIs(t, err, matrix.ErrOutOfRange)
		require.ErrorIs(t, m.Set(idx[0], idx[1], 1), matrix.ErrOutOfRange)
	}
	require.NoError(t, m.Set(1, 0, 7))
	v, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 7.0, v)
}

func TestDense_SetRejectsNonFinite(t *testing.T) {
	t.Parallel()

	m := MustDense(t, 1, 2)
	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Set(0, 1, math.Inf(-1)), matrix.ErrNaNInf)
	require.Equal(t, []float64{0, 0}, m.RawData(), "rejected writes leave the buffer untouched")
}

func TestDense_CloneIsDeep(t *testing.T) {
	t.Parallel()

	m := MustFrom(t, 2, 2, 1, 2, 3, 4)
	c := m.Clone()
	require.NoError(t, c.Set(0, 0, -1))
	v, _ := m.At(0, 0)
	require.Equal(t, 1.0, v)
	require.True(t, matrix.ValidatesNaNInf_TestOnly(c))
}

func TestDense_ColumnHelpers(t *testing.T) {
	t.Parallel()

	m := MustFrom(t, 2, 3,
		1, 2, 3,
		4, 5, 6)

	col, err := m.Col(1)
	require.NoError(t, err)
	require.Equal(t, []float64{2, 5}, col)
	_, err = m.Col(3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	require.NoError(t, m.SetCol(2, []float64{-3, -6}))
	require.ErrorIs(t, m.SetCol(0, []float64{1}), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, m.SetCol(-1, []float64{1, 2}), matrix.ErrOutOfRange)

	s, err := m.SliceCols(1, 3)
	require.NoError(t, err)
	requireClose(t, MustFrom(t, 2, 2, 2, -3, 5, -6), s, 0)
	for _, bad := range [][2]int{{-1, 1}, {0, 4}, {2, 2}} {
		_, err = m.SliceCols(bad[0], bad[1])
		require.ErrorIs(t, err, matrix.ErrOutOfRange)
	}

	require.NoError(t, m.SetCols(0, MustFrom(t, 2, 2, 9, 8, 7, 6)))
	requireClose(t, MustFrom(t, 2, 3, 9, 8, -3, 7, 6, -6), m, 0)
	require.ErrorIs(t, m.SetCols(2, MustDense(t, 2, 2)), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.SetCols(0, MustDense(t, 3, 1)), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, m.SetCols(0, nil), matrix.ErrNilMatrix)

	m.Zero()
	require.Equal(t, make([]float64, 6), m.RawData())
}

func TestDense_Apply(t *testing.T) {
	t.Parallel()

	m := MustFrom(t, 2, 2, 1, 2, 3, 4)
	require.NoError(t, m.Apply(func(i, j int, v float64) float64 { return v + float64(10*i+j) }))
	requireClose(t, MustFrom(t, 2, 2, 1, 3, 13, 15), m, 0)

	err := m.Apply(func(i, j int, v float64) float64 {
		if i == 1 {
			return math.NaN()
		}
		return 0
	})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	requireClose(t, MustFrom(t, 2, 2, 0, 0, 13, 15), m, 0)
}

func TestDense_String(t *testing.T) {
	t.Parallel()

	m := MustFrom(t, 2, 2, 1, 2.5, -3, 4)
	require.Equal(t, "[1, 2.5]\n[-3, 4]\n", m.String())
}
