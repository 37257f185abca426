// SPDX-License-Identifier: MIT
// Package matrix - deterministic initial bases for iterative decompositions.
//
// DCT returns the leading columns of the orthonormal DCT-II basis; Random and
// RandomOrthonormal draw from a caller-supplied *rand.Rand so equal seeds give
// equal starting points.

package matrix

import (
	"math"
	"math/rand"
)

const opDCT = "DCT"

// DCT returns the n×k matrix whose columns are the first k orthonormal DCT-II
// basis vectors of length n:
//
//	c_j(i) = s_j * cos(π(2i+1)j / 2n),  s_0 = √(1/n), s_j = √(2/n).
//
// Errors:
//   - ErrInvalidDimensions (n ≤ 0 or k ≤ 0), ErrOutOfRange (k > n).
func DCT(n, k int) (*Dense, error) {
	if n <= 0 || k <= 0 {
		return nil, matrixErrorf(opDCT, ErrInvalidDimensions)
	}
	if k > n {
		return nil, matrixErrorf(opDCT, ErrOutOfRange)
	}
	out := mustDense(n, k)
	s0, s := math.Sqrt(1/float64(n)), math.Sqrt(2/float64(n))
	var i, j int
	for i = 0; i < n; i++ {
		out.data[i*k] = s0
		for j = 1; j < k; j++ {
			out.data[i*k+j] = s * math.Cos(math.Pi*float64((2*i+1)*j)/float64(2*n))
		}
	}

	return out, nil
}

// Random returns an r×c matrix with entries drawn uniformly from [0, 1).
func Random(r, c int, rng *rand.Rand) (*Dense, error) {
	m, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf("Random", err)
	}
	if err = m.Apply(func(_, _ int, _ float64) float64 { return rng.Float64() }); err != nil {
		return nil, matrixErrorf("Random", err)
	}

	return m, nil
}

// RandomOrthonormal returns an n×k matrix with orthonormal columns spanning a
// random Gaussian subspace. Contract: k ≤ n.
func RandomOrthonormal(n, k int, rng *rand.Rand) (*Dense, error) {
	if k > n {
		return nil, matrixErrorf("RandomOrthonormal", ErrOutOfRange)
	}
	g, err := NewDense(n, k)
	if err != nil {
		return nil, matrixErrorf("RandomOrthonormal", err)
	}
	if err = g.Apply(func(_, _ int, _ float64) float64 { return rng.NormFloat64() }); err != nil {
		return nil, matrixErrorf("RandomOrthonormal", err)
	}

	return OrthonormalColumns(g)
}
