// SPDX-License-Identifier: MIT

package tensor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtensor/tensor"
)

func TestUnfold_FixtureMatrices(t *testing.T) {
	t.Parallel()
	x := MustFixture3(t)

	cases := []struct {
		name    string
		mode    int
		forward bool
		rows    int
		want    []float64
	}{
		{"backward mode 1", tensor.Mode1, false, 3, []float64{0, 1, -1, 4, 2, 3, -2, -5, 4, 5, 3, -6}},
		{"forward mode 1", tensor.Mode1, true, 3, []float64{0, -1, 1, 4, 2, -2, 3, -5, 4, 3, 5, -6}},
		{"backward mode 2", tensor.Mode2, false, 2, []float64{0, 2, 4, -1, -2, 3, 1, 3, 5, 4, -5, -6}},
		{"forward mode 2", tensor.Mode2, true, 2, []float64{0, -1, 2, -2, 4, 3, 1, 4, 3, -5, 5, -6}},
		{"backward mode 3", tensor.Mode3, false, 2, []float64{0, 2, 4, 1, 3, 5, -1, -2, 3, 4, -5, -6}},
		{"forward mode 3", tensor.Mode3, true, 2, []float64{0, 1, 2, 3, 4, 5, -1, 4, -2, -5, 3, -6}},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if tc.forward {
				u, err := x.UnfoldForward(tc.mode)
				require.NoError(t, err)
				assert.Equal(t, tc.mode, u.Mode())
				assert.Equal(t, tc.rows, u.Matrix().Rows())
				assert.Equal(t, tc.want, u.Matrix().RawData())

				return
			}
			u, err := x.Unfold(tc.mode)
			require.NoError(t, err)
			assert.Equal(t, tc.rows, u.Matrix().Rows())
			assert.Equal(t, tc.want, u.Matrix().RawData())
		})
	}
}

func TestUnfold_NamedUnfoldings(t *testing.T) {
	t.Parallel()
	x := MustFixture3(t)
	named := []func() (*tensor.BackwardUnfolding, error){x.HorizontalUnfolding, x.LateralUnfolding, x.FrontalUnfolding}
	for mode, fn := range named {
		a, err := fn()
		require.NoError(t, err)
		b, err := x.Unfold(mode)
		require.NoError(t, err)
		assert.Equal(t, b.Matrix().RawData(), a.Matrix().RawData())
	}
}

func TestUnfold_RefoldRoundTrip(t *testing.T) {
	t.Parallel()
	x := MustRandom3(t, 4, 3, 5, 21)
	for mode := tensor.Mode1; mode <= tensor.Mode3; mode++ {
		bu, err := x.Unfold(mode)
		require.NoError(t, err)
		back, err := bu.Refold3()
		require.NoError(t, err)
		assert.True(t, x.Equal(back), "backward mode %d", mode)

		fu, err := x.UnfoldForward(mode)
		require.NoError(t, err)
		fback, err := fu.Refold3()
		require.NoError(t, err)
		assert.True(t, x.Equal(fback), "forward mode %d", mode)

		dst, err := x.Blank(4, 3, 5)
		require.NoError(t, err)
		require.NoError(t, bu.RefoldInto(dst))
		assert.True(t, x.Equal(dst))
	}
}

func TestUnfold_Errors(t *testing.T) {
	t.Parallel()
	x := MustFixture3(t)

	_, err := x.Unfold(3)
	require.ErrorIs(t, err, tensor.ErrOutOfRange)
	_, err = x.UnfoldForward(-1)
	require.ErrorIs(t, err, tensor.ErrOutOfRange)

	u, err := x.Unfold(tensor.Mode2)
	require.NoError(t, err)
	wrong, err := tensor.New3(2, 3, 2)
	require.NoError(t, err)
	require.ErrorIs(t, u.RefoldInto(wrong), tensor.ErrDimensionMismatch)
	require.ErrorIs(t, u.RefoldInto((*tensor.Tensor3)(nil)), tensor.ErrNilTensor)
	_, err = u.Refold4()
	require.ErrorIs(t, err, tensor.ErrInvalidDimensions)

	_, err = tensor.NewBackwardUnfolding(MustDense(t, 2, 5, make([]float64, 10)...), tensor.Mode2, []int{3, 2, 2})
	require.ErrorIs(t, err, tensor.ErrDimensionMismatch)
	_, err = tensor.NewForwardUnfolding(nil, tensor.Mode1, []int{3, 2, 2})
	require.ErrorIs(t, err, tensor.ErrNilTensor)
}

func TestNewBackwardUnfolding_RefoldsExternalMatrix(t *testing.T) {
	t.Parallel()
	x := MustFixture3(t)
	u, err := x.Unfold(tensor.Mode3)
	require.NoError(t, err)

	wrapped, err := tensor.NewBackwardUnfolding(u.Matrix().Clone(), tensor.Mode3, []int{3, 2, 2})
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2, 2}, wrapped.TensorDims())
	back, err := wrapped.Refold3()
	require.NoError(t, err)
	assert.True(t, x.Equal(back))
}
