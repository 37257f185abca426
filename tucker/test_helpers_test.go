// SPDX-License-Identifier: MIT

package tucker_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtensor/matrix"
	"github.com/katalvlaran/lvtensor/tensor"
)

var fixtureValues = []float64{0, 1, 2, 3, 4, 5, -1, 4, -2, -5, 3, -6}

func mustFixture(t testing.TB) *tensor.Tensor3 {
	t.Helper()
	x, err := tensor.New3From(3, 2, 2, fixtureValues)
	require.NoError(t, err)

	return x
}

func mustRandom3(t testing.TB, i1, i2, i3 int, seed int64) *tensor.Tensor3 {
	t.Helper()
	x, err := tensor.New3(i1, i2, i3)
	require.NoError(t, err)
	x.FillRandomSigned(tensor.NewRand(seed))

	return x
}

// mustLowRank3 returns core ×₁ Q1 ×₂ Q2 ×₃ Q3 for a random core of extents
// ranks and random orthonormal bases: an exact rank-ranks tensor.
func mustLowRank3(t testing.TB, dims, ranks []int, seed int64) *tensor.Tensor3 {
	t.Helper()
	core := mustRandom3(t, ranks[0], ranks[1], ranks[2], seed)
	rng := tensor.NewRand(seed + 1)
	bases := make([]*matrix.Dense, 3)
	var err error
	for k := range dims {
		bases[k], err = matrix.RandomOrthonormal(dims[k], ranks[k], rng)
		require.NoError(t, err)
	}
	x, err := tensor.MultiplyAll(core, bases...)
	require.NoError(t, err)

	return x
}

// requireOrthonormal asserts UᵀU ≈ I.
func requireOrthonormal(t testing.TB, u *matrix.Dense, tol float64) {
	t.Helper()
	g, err := matrix.Gram(u)
	require.NoError(t, err)
	id, err := matrix.NewDense(u.Cols(), u.Cols())
	require.NoError(t, err)
	for i := 0; i < u.Cols(); i++ {
		require.NoError(t, id.Set(i, i, 1))
	}
	ok, err := matrix.AllClose(g, id, 0, tol)
	require.NoError(t, err)
	require.True(t, ok, "UᵀU != I:\n%v", g)
}

// mustOuter returns v·vᵀ.
func mustOuter(t testing.TB, v []float64) *matrix.Dense {
	t.Helper()
	n := len(v)
	vals := make([]float64, n*n)
	for i := range v {
		for j := range v {
			vals[i*n+j] = v[i] * v[j]
		}
	}
	m, err := matrix.NewDenseFrom(n, n, vals)
	require.NoError(t, err)

	return m
}

func mustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)

	return m
}
