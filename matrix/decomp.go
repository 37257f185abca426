// SPDX-License-Identifier: MIT
// Package matrix - factorizations backed by gonum.
//
// Purpose:
//   - Expose the SVD, symmetric eigendecomposition, QR orthonormalization and
//     Moore–Penrose pseudoinverse the decomposition engines consume.
//   - Convert between the package's row-major Dense and gonum's mat.Dense at a
//     single boundary (toGonum / fromGonum).
//   - Report non-convergence as ErrNonConvergence; never return zeroed output
//     as if it were a valid factorization.
//
// Determinism:
//   - Singular vectors and eigenvectors are sign-ambiguous. Every basis returned
//     here is passed through CanonicalizeSigns, so the largest-magnitude entry of
//     each column is non-negative and independent paths agree bit-for-bit up to
//     floating rounding.

package matrix

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// toGonum wraps m's storage as a gonum matrix (shared, row-major).
// gonum factorizations copy their input, so m is never mutated through it.
func toGonum(m *Dense) *mat.Dense { return mat.NewDense(m.r, m.c, m.data) }

// fromGonum copies any gonum matrix into a fresh Dense.
func fromGonum(g mat.Matrix) *Dense {
	r, c := g.Dims()
	out := mustDense(r, c)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			out.data[i*c+j] = g.At(i, j)
		}
	}

	return out
}

// CanonicalizeSigns flips columns in place so that the entry of largest
// magnitude in each column is non-negative. Ties resolve to the lowest row.
// Complexity: O(r*c).
func CanonicalizeSigns(m *Dense) {
	if m == nil {
		return
	}
	var i, j, best int
	var bestAbs, a float64
	for j = 0; j < m.c; j++ {
		best, bestAbs = 0, -1
		for i = 0; i < m.r; i++ {
			a = math.Abs(m.data[i*m.c+j])
			if a > bestAbs {
				best, bestAbs = i, a
			}
		}
		if m.data[best*m.c+j] < 0 {
			for i = 0; i < m.r; i++ {
				m.data[i*m.c+j] = -m.data[i*m.c+j]
			}
		}
	}
}

// SVD computes the thin singular value decomposition A = U·diag(s)·Vᵀ.
// Shapes: U is r×k, V is c×k with k = min(r,c); s is non-increasing.
//
// Errors:
//   - ErrNilMatrix, ErrNonConvergence.
//
// Complexity:
//   - Time O(r*c*min(r,c)).
func SVD(a *Dense) (u *Dense, s []float64, v *Dense, err error) {
	if err = ValidateNotNil(a); err != nil {
		return nil, nil, nil, matrixErrorf(opSVD, err)
	}
	var svd mat.SVD
	if ok := svd.Factorize(toGonum(a), mat.SVDThin); !ok {
		return nil, nil, nil, matrixErrorf(opSVD, ErrNonConvergence)
	}
	var gu, gv mat.Dense
	svd.UTo(&gu)
	svd.VTo(&gv)

	return fromGonum(&gu), svd.Values(nil), fromGonum(&gv), nil
}

// LeadingLeftSingularVectors returns the k leading left singular vectors of a
// as the columns of an r×k matrix, sign-canonicalized.
// Contract: 1 ≤ k ≤ a.Rows(). When k exceeds the numerical rank the trailing
// columns complete an orthonormal basis of R^r (full U is computed).
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange (k), ErrNonConvergence.
func LeadingLeftSingularVectors(a *Dense, k int) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opLeftVector, err)
	}
	if k < 1 || k > a.r {
		return nil, matrixErrorf(opLeftVector, ErrOutOfRange)
	}
	var svd mat.SVD
	if ok := svd.Factorize(toGonum(a), mat.SVDFullU); !ok {
		return nil, matrixErrorf(opLeftVector, ErrNonConvergence)
	}
	var gu mat.Dense
	svd.UTo(&gu)
	out := fromGonum(gu.Slice(0, a.r, 0, k))
	CanonicalizeSigns(out)

	return out, nil
}

// EigenSym decomposes a symmetric matrix. Eigenvalues are returned in
// non-increasing order and vectors[:, i] belongs to values[i]; vectors are
// sign-canonicalized.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrAsymmetry (beyond WithEpsilon), ErrNonConvergence.
//
// Complexity:
//   - Time O(n^3).
func EigenSym(a *Dense, opts ...Option) ([]float64, *Dense, error) {
	o := gatherOptions(opts...)
	if err := ValidateSymmetric(a, o.eps); err != nil {
		return nil, nil, matrixErrorf(opEigenSym, err)
	}
	n := a.r
	sym := mat.NewSymDense(n, nil)
	var i, j int
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			sym.SetSym(i, j, a.data[i*n+j])
		}
	}
	var es mat.EigenSym
	if ok := es.Factorize(sym, true); !ok {
		return nil, nil, matrixErrorf(opEigenSym, ErrNonConvergence)
	}
	asc := es.Values(nil)
	var gv mat.Dense
	es.VectorsTo(&gv)

	// gonum reports ascending order; flip to non-increasing.
	values := make([]float64, n)
	vectors := mustDense(n, n)
	for j = 0; j < n; j++ {
		src := n - 1 - j
		values[j] = asc[src]
		for i = 0; i < n; i++ {
			vectors.data[i*n+j] = gv.At(i, src)
		}
	}
	CanonicalizeSigns(vectors)

	return values, vectors, nil
}

// TopEigenvectorsByMagnitude returns the k eigenvectors of the symmetric
// matrix a whose eigenvalues have the largest |λ|, ordered by decreasing |λ|.
// Ties keep the EigenSym order (stable sort).
func TopEigenvectorsByMagnitude(a *Dense, k int, opts ...Option) (*Dense, error) {
	values, vectors, err := EigenSym(a, opts...)
	if err != nil {
		return nil, err
	}
	n := len(values)
	if k < 1 || k > n {
		return nil, matrixErrorf(opEigenSym, ErrOutOfRange)
	}
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(x, y int) bool {
		return math.Abs(values[order[x]]) > math.Abs(values[order[y]])
	})
	out := mustDense(n, k)
	var i, j int
	for j = 0; j < k; j++ {
		for i = 0; i < n; i++ {
			out.data[i*k+j] = vectors.data[i*n+order[j]]
		}
	}

	return out, nil
}

// PseudoInverse computes the Moore–Penrose pseudoinverse A⁺ (c×r) through a
// thin SVD. Singular values at or below rcond*max(r,c)*σ_max are treated as zero
// (see WithRCond); the pseudoinverse of a zero matrix is the zero matrix.
//
// Errors:
//   - ErrNilMatrix, ErrNonConvergence.
//
// Complexity:
//   - Time O(r*c*min(r,c)).
func PseudoInverse(a *Dense, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	u, s, v, err := SVD(a)
	if err != nil {
		return nil, matrixErrorf(opPinv, err)
	}
	out := mustDense(a.c, a.r)
	if len(s) == 0 || s[0] == 0 {
		return out, nil
	}
	cutoff := o.rcond * float64(max(a.r, a.c)) * s[0]
	k := len(s)
	var i, j, l int
	var acc float64
	// out[i,j] = Σ_l V[i,l] * (1/s_l) * U[j,l]
	for i = 0; i < a.c; i++ {
		for j = 0; j < a.r; j++ {
			acc = ZeroSum
			for l = 0; l < k; l++ {
				if s[l] <= cutoff {
					break // s is non-increasing
				}
				acc += v.data[i*k+l] * u.data[j*k+l] / s[l]
			}
			out.data[i*a.r+j] = acc
		}
	}

	return out, nil
}

// OrthonormalColumns returns an r×c matrix with orthonormal columns spanning
// the column space of a (QR factorization, thin Q). Contract: r ≥ c.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (r < c).
func OrthonormalColumns(a *Dense) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opOrthonorm, err)
	}
	if a.r < a.c {
		return nil, matrixErrorf(opOrthonorm, ErrDimensionMismatch)
	}
	var qr mat.QR
	qr.Factorize(toGonum(a))
	var q mat.Dense
	qr.QTo(&q)

	return fromGonum(q.Slice(0, a.r, 0, a.c)), nil
}
