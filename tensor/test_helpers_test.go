// SPDX-License-Identifier: MIT
// Package tensor_test contains shared fixtures.
//
// Purpose:
//   • Small deterministic tensors with hand-checkable unfoldings.
//   • Must* helpers that fail the test instead of returning errors.

package tensor_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtensor/matrix"
	"github.com/katalvlaran/lvtensor/tensor"
)

// fixtureValues is a 3×2×2 tensor in value order (two frontal slices, row by row).
var fixtureValues = []float64{0, 1, 2, 3, 4, 5, -1, 4, -2, -5, 3, -6}

// MustFixture3 returns the 3×2×2 fixture.
func MustFixture3(t testing.TB) *tensor.Tensor3 {
	t.Helper()
	x, err := tensor.New3From(3, 2, 2, fixtureValues)
	require.NoError(t, err)

	return x
}

// MustRandom3 returns an I1×I2×I3 tensor with signed uniform entries.
func MustRandom3(t testing.TB, i1, i2, i3 int, seed int64) *tensor.Tensor3 {
	t.Helper()
	x, err := tensor.New3(i1, i2, i3)
	require.NoError(t, err)
	x.FillRandomSigned(tensor.NewRand(seed))

	return x
}

// MustRandom4 returns an I1×I2×I3×I4 tensor with signed uniform entries.
func MustRandom4(t testing.TB, i1, i2, i3, i4 int, seed int64) *tensor.Tensor4 {
	t.Helper()
	x, err := tensor.New4(i1, i2, i3, i4)
	require.NoError(t, err)
	x.FillRandomSigned(tensor.NewRand(seed))

	return x
}

// MustDense builds an r×c matrix from row-major values.
func MustDense(t testing.TB, r, c int, vals ...float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(r, c, vals)
	require.NoError(t, err)

	return m
}

// MustRandomDense returns an r×c matrix with signed uniform entries.
func MustRandomDense(t testing.TB, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	rng := tensor.NewRand(seed)
	vals := make([]float64, r*c)
	for i := range vals {
		vals[i] = 2*rng.Float64() - 1
	}

	return MustDense(t, r, c, vals...)
}

// MustIdentity returns the n×n identity.
func MustIdentity(t testing.TB, n int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(n, n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		require.NoError(t, m.Set(i, i, 1))
	}

	return m
}
