// SPDX-License-Identifier: MIT

package cp_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtensor/cp"
	"github.com/katalvlaran/lvtensor/matrix"
	"github.com/katalvlaran/lvtensor/tensor"
)

func TestModel_DecomposeReduce(t *testing.T) {
	t.Parallel()
	x, _ := mustOrthogonal3(t, 4, orthoLambda, 71)
	m, err := cp.Decompose(context.Background(), x, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, m.Rank())
	assert.Equal(t, []int{4, 4, 4}, m.Dims())
	assert.InDelta(t, 64.0/52.0, m.CompressionRatio(), 1e-12)

	rec, err := m.Reconstruct()
	require.NoError(t, err)
	r, err := rec.RMSE(x)
	require.NoError(t, err)
	assert.Less(t, r, 1e-8)

	small, err := m.Reduce(2)
	require.NoError(t, err)
	assert.Equal(t, 2, small.Rank())
	assert.InDeltaSlice(t, []float64{10, 6}, small.Lambda, 1e-6)
	fit, err := cp.Fit(x, small.Lambda, small.Factors)
	require.NoError(t, err)
	assert.InDelta(t, 1-math.Sqrt(10.0/146.0), fit, 1e-6)
	// The receiver is untouched.
	assert.Equal(t, 4, m.Rank())

	_, err = m.Reduce(5)
	require.ErrorIs(t, err, cp.ErrInvalidRank)
	_, err = m.Reduce(0)
	require.ErrorIs(t, err, cp.ErrInvalidRank)
}

func TestModel_ReduceSortsFirst(t *testing.T) {
	t.Parallel()
	u, err := matrix.NewDenseFrom(2, 3, []float64{1, 0, 0.6, 0, 1, 0.8})
	require.NoError(t, err)
	m, err := cp.NewModel((*tensor.Tensor3)(nil), []float64{1, 2, 3}, []*matrix.Dense{u, u, u})
	require.NoError(t, err)

	r, err := m.Reduce(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{3}, r.Lambda)
	col, err := r.Factors[0].Col(0)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.6, 0.8}, col)
	assert.Equal(t, []float64{1, 2, 3}, m.Lambda)
}

func TestNewModel_Errors(t *testing.T) {
	t.Parallel()
	u, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	_, err = cp.NewModel((*tensor.Tensor3)(nil), []float64{1, 1}, []*matrix.Dense{u, u, u, u})
	require.ErrorIs(t, err, cp.ErrFactorMismatch)
	_, err = cp.NewModel((*tensor.Tensor4)(nil), []float64{1}, []*matrix.Dense{u, u, u, u})
	require.ErrorIs(t, err, cp.ErrFactorMismatch)

	m, err := cp.NewModel((*tensor.Tensor4)(nil), []float64{1, 1}, []*matrix.Dense{u, u, u, u})
	require.NoError(t, err)
	rec, err := m.Reconstruct()
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2, 2, 2}, rec.Dims())
}
