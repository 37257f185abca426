// SPDX-License-Identifier: MIT

package tensor_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtensor/tensor"
)

func TestNew3_InvalidDimensions(t *testing.T) {
	t.Parallel()
	for _, dims := range [][3]int{{0, 1, 1}, {1, -2, 1}, {1, 1, 0}} {
		_, err := tensor.New3(dims[0], dims[1], dims[2])
		require.ErrorIs(t, err, tensor.ErrInvalidDimensions, "dims %v", dims)
	}
}

func TestNew3From_LengthMismatch(t *testing.T) {
	t.Parallel()
	_, err := tensor.New3From(3, 2, 2, fixtureValues[:11])
	require.ErrorIs(t, err, tensor.ErrLengthMismatch)

	x := MustFixture3(t)
	before := x.Values()
	require.ErrorIs(t, x.SetValues(make([]float64, 13)), tensor.ErrLengthMismatch)
	assert.Equal(t, before, x.Values(), "failed SetValues must not write")
}

func TestTensor3_ValueOrderAndStorage(t *testing.T) {
	t.Parallel()
	x := MustFixture3(t)

	assert.Equal(t, fixtureValues, x.Values())
	// mode 1 fastest
	assert.Equal(t, []float64{0, 2, 4, 1, 3, 5, -1, -2, 3, 4, -5, -6}, x.RawData())

	v, err := x.At(2, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, -6.0, v)
	v, err = x.At(0, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
}

func TestTensor3_AtSet_OutOfRange(t *testing.T) {
	t.Parallel()
	x := MustFixture3(t)

	_, err := x.At(3, 0, 0)
	require.ErrorIs(t, err, tensor.ErrOutOfRange)
	_, err = x.At(0, 0, -1)
	require.ErrorIs(t, err, tensor.ErrOutOfRange)
	require.ErrorIs(t, x.Set(0, 2, 0, 1), tensor.ErrOutOfRange)

	require.NoError(t, x.Set(1, 1, 1, 42))
	v, err := x.At(1, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 42.0, v)
}

func TestTensor3_Reductions(t *testing.T) {
	t.Parallel()
	x := MustFixture3(t)

	assert.InDelta(t, math.Sqrt(146), x.FrobeniusNorm(), 1e-12)
	assert.Equal(t, -6.0, x.Min())
	assert.Equal(t, 5.0, x.Max())
	assert.Equal(t, 11, x.NNZ(0))
	assert.Equal(t, 7, x.NNZ(2))
	assert.Equal(t, 3, x.Order())
	assert.Equal(t, 12, x.Len())
	assert.Equal(t, []int{3, 2, 2}, x.Dims())
}

func TestTensor3_CloneOwnsStorage(t *testing.T) {
	t.Parallel()
	x := MustFixture3(t)
	y := x.Clone()
	require.True(t, x.Equal(y))

	y.RawData()[0] = 100
	assert.False(t, x.Equal(y))
	assert.Equal(t, 0.0, x.RawData()[0])
}

func TestTensor3_SubAndRMSE(t *testing.T) {
	t.Parallel()
	x := MustFixture3(t)
	y := x.Clone()
	y.Fill(1)

	d, err := x.Sub(y)
	require.NoError(t, err)
	for i, v := range d.RawData() {
		assert.Equal(t, x.RawData()[i]-1, v)
	}

	z, err := x.Blank(3, 2, 2)
	require.NoError(t, err)
	r, err := x.RMSE(z)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(146.0/12.0), r, 1e-12)

	other, err := tensor.New3(2, 2, 2)
	require.NoError(t, err)
	_, err = x.Sub(other)
	require.ErrorIs(t, err, tensor.ErrDimensionMismatch)
	_, err = x.RMSE(other)
	require.ErrorIs(t, err, tensor.ErrDimensionMismatch)
	assert.False(t, x.Equal(other))
}

func TestTensor3_Fills(t *testing.T) {
	t.Parallel()
	x, err := tensor.New3(2, 3, 2)
	require.NoError(t, err)

	x.FillIncreasing()
	assert.Equal(t, []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}, x.Values())
	v, err := x.At(1, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, 9.0, v)

	x.FillRandom(tensor.NewRand(7))
	assert.GreaterOrEqual(t, x.Min(), 0.0)
	assert.Less(t, x.Max(), 1.0)

	x.FillRandomSigned(tensor.NewRand(7))
	assert.GreaterOrEqual(t, x.Min(), -1.0)
	assert.Less(t, x.Max(), 1.0)

	y, err := tensor.New3(2, 3, 2)
	require.NoError(t, err)
	y.FillRandomSigned(tensor.NewRand(7))
	assert.True(t, x.Equal(y), "equal seeds must give equal tensors")

	x.Zero()
	assert.Equal(t, 0, x.NNZ(0))
}

func TestTensor3_AllClose(t *testing.T) {
	t.Parallel()
	x := MustFixture3(t)
	y := x.Clone()
	y.RawData()[3] += 1e-10

	ok, err := x.AllClose(y, 0, 1e-9)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = x.AllClose(y, 0, 1e-12)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = x.AllClose(nil, 0, 0)
	assert.True(t, errors.Is(err, tensor.ErrNilTensor))
}

func TestTensor3_String(t *testing.T) {
	t.Parallel()
	x, err := tensor.New3From(2, 2, 1, []float64{1, 2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, "[1, 2]\n[3, 4]\n", x.String())
}
