// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   - Provide small, deterministic fixtures for kernels and factorizations.
//   - Keep all data finite so the numeric policy never interferes.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvtensor/matrix"
	"github.com/stretchr/testify/require"
)

// tol is the absolute tolerance for closed-form comparisons.
const tol = 1e-12

// MustDense allocates an r×c zero matrix or fails the test.
func MustDense(tb testing.TB, r, c int) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(tb, err)

	return m
}

// MustFrom builds an r×c matrix from row-major values or fails the test.
func MustFrom(tb testing.TB, r, c int, vals ...float64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDenseFrom(r, c, vals)
	require.NoError(tb, err)

	return m
}

// fillRand writes uniform samples from [-1, 1) in row-major order.
func fillRand(tb testing.TB, m *matrix.Dense, seed int64) {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	require.NoError(tb, m.Apply(func(_, _ int, _ float64) float64 { return 2*rng.Float64() - 1 }))
}

// requireClose asserts equal shapes and element-wise |got-want| ≤ atol.
func requireClose(tb testing.TB, want, got *matrix.Dense, atol float64) {
	tb.Helper()
	ok, err := matrix.AllClose(got, want, 0, atol)
	require.NoError(tb, err)
	require.Truef(tb, ok, "want\n%vgot\n%v", want, got)
}

// requireOrthonormalColumns asserts QᵀQ = I within atol.
func requireOrthonormalColumns(tb testing.TB, q *matrix.Dense, atol float64) {
	tb.Helper()
	g, err := matrix.Gram(q)
	require.NoError(tb, err)
	ones := make([]float64, q.Cols())
	for i := range ones {
		ones[i] = 1
	}
	requireClose(tb, diag(tb, ones...), g, atol)
}

// diag builds the n×n diagonal matrix of values.
func diag(tb testing.TB, values ...float64) *matrix.Dense {
	tb.Helper()
	n := len(values)
	m := MustDense(tb, n, n)
	for i, v := range values {
		require.NoError(tb, m.Set(i, i, v))
	}

	return m
}
