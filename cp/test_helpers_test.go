// SPDX-License-Identifier: MIT

package cp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtensor/cp"
	"github.com/katalvlaran/lvtensor/matrix"
	"github.com/katalvlaran/lvtensor/tensor"
)

// orthoLambda is the spectrum of the orthogonal reference tensor; ‖X‖² = 146.
var orthoLambda = []float64{10, 6, 3, 1}

// mustOrthogonal3 returns Σ_r λ_r a_r∘b_r∘c_r on n×n×n with random
// orthonormal factor matrices (n ≥ len(lambda)), and the factors.
func mustOrthogonal3(t testing.TB, n int, lambda []float64, seed int64) (*tensor.Tensor3, []*matrix.Dense) {
	t.Helper()
	rng := tensor.NewRand(seed)
	factors := make([]*matrix.Dense, 3)
	var err error
	for k := range factors {
		factors[k], err = matrix.RandomOrthonormal(n, len(lambda), rng)
		require.NoError(t, err)
	}
	x, err := cp.Reconstruct((*tensor.Tensor3)(nil), lambda, factors)
	require.NoError(t, err)

	return x, factors
}

func mustRandom3(t testing.TB, i1, i2, i3 int, seed int64) *tensor.Tensor3 {
	t.Helper()
	x, err := tensor.New3(i1, i2, i3)
	require.NoError(t, err)
	x.FillRandomSigned(tensor.NewRand(seed))

	return x
}

func mustUnit(t testing.TB, v ...float64) *matrix.Dense {
	t.Helper()
	n := 0.0
	for _, x := range v {
		n += x * x
	}
	n = math.Sqrt(n)
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = x / n
	}
	m, err := matrix.NewDenseFrom(len(v), 1, out)
	require.NoError(t, err)

	return m
}

// requireSameColumns asserts |⟨got[:,r], want[:,r]⟩| ≈ 1 for unit columns.
func requireSameColumns(t testing.TB, got, want *matrix.Dense, cols int, tol float64) {
	t.Helper()
	for r := 0; r < cols; r++ {
		g, err := got.Col(r)
		require.NoError(t, err)
		w, err := want.Col(r)
		require.NoError(t, err)
		dot := 0.0
		for i := range g {
			dot += g[i] * w[i]
		}
		require.InDelta(t, 1, math.Abs(dot), tol, "column %d", r)
	}
}
