// SPDX-License-Identifier: MIT
// Package matrix provides the dense kernels used by the decomposition engines:
// matrix products (plain and with a transposed left operand), transpose,
// Hadamard products, Gram matrices, Khatri–Rao products and column
// normalization. All functions
// perform strict fail-fast validation and return wrapped sentinels on
// dimension mismatches.
//
// Notes:
//   - Every kernel allocates a fresh result; operands are never mutated
//     (NormalizeColumns is the single documented in-place exception).
//   - Loop orders are fixed, so results are bit-reproducible for equal inputs.

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// ZeroSum is the initial accumulator of dot-product style loops.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMul        = "Mul"
	opTMul       = "TMul"
	opTranspose  = "Transpose"
	opHadamard   = "Hadamard"
	opGram       = "Gram"
	opKhatriRao  = "KhatriRao"
	opColNorms   = "ColumnNorms"
	opNormalize  = "NormalizeColumns"
	opAllClose   = "AllClose"
	opSVD        = "SVD"
	opEigenSym   = "EigenSym"
	opPinv       = "PseudoInverse"
	opOrthonorm  = "OrthonormalColumns"
	opLeftVector = "LeadingLeftSingularVectors"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Complexity:
//   - Time O(1), Space O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// isNonFinite reports whether v is NaN or ±Inf.
func isNonFinite(v float64) bool { return math.IsNaN(v) || math.IsInf(v, 0) }

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: i→k→j loop with row-major strides, skipping zero A[i,k].
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	aRows, aCols, bCols := a.r, a.c, b.c
	res := mustDense(aRows, bCols)

	var (
		i, j, k                            int
		av                                 float64
		rowOffsetA, rowOffsetB, rowOffsetR int
	)
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for k = 0; k < aCols; k++ {
			av = a.data[rowOffsetA+k]
			if av == 0 {
				continue // skip zero for performance
			}
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				res.data[rowOffsetR+j] += av * b.data[rowOffsetB+j]
			}
		}
	}

	return res, nil
}

// TMul computes C = Aᵀ × B without materializing Aᵀ.
// Contract: A.Rows == B.Rows. Result shape: A.Cols × B.Cols.
// Complexity: O(A.Rows * A.Cols * B.Cols).
func TMul(a, b *Dense) (*Dense, error) {
	if a == nil || b == nil {
		return nil, matrixErrorf(opTMul, ErrNilMatrix)
	}
	if a.r != b.r {
		return nil, matrixErrorf(opTMul, ErrDimensionMismatch)
	}
	res := mustDense(a.c, b.c)

	var (
		i, k, j int
		av      float64
	)
	for k = 0; k < a.r; k++ { // shared row index
		for i = 0; i < a.c; i++ {
			av = a.data[k*a.c+i]
			if av == 0 {
				continue
			}
			for j = 0; j < b.c; j++ {
				res.data[i*b.c+j] += av * b.data[k*b.c+j]
			}
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Errors: ErrNilMatrix. Complexity: Time O(r*c), Space O(r*c).
func Transpose(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := m.r, m.c
	res := mustDense(cols, rows)
	var i, j, baseSrc int
	for i = 0; i < rows; i++ {
		baseSrc = i * cols
		for j = 0; j < cols; j++ {
			res.data[j*rows+i] = m.data[baseSrc+j]
		}
	}

	return res, nil
}

// Hadamard computes the elementwise product (a ⊙ b) with a fresh Dense result.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c).
func Hadamard(a, b *Dense) (*Dense, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}
	res := mustDense(a.r, a.c)
	floats.MulTo(res.data, a.data, b.data)

	return res, nil
}

// Gram returns the c×c Gram matrix AᵀA. The result is exactly symmetric:
// the upper triangle is computed and mirrored.
// Complexity: O(r*c^2).
func Gram(a *Dense) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opGram, err)
	}
	n := a.c
	res := mustDense(n, n)
	var i, j, k int
	var s float64
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			s = ZeroSum
			for k = 0; k < a.r; k++ {
				s += a.data[k*n+i] * a.data[k*n+j]
			}
			res.data[i*n+j] = s
			res.data[j*n+i] = s
		}
	}

	return res, nil
}

// OuterGram returns the r×r matrix AAᵀ, exactly symmetric.
// Used by the eigen path of HOSVD on mode unfoldings.
// Complexity: O(r^2*c).
func OuterGram(a *Dense) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opGram, err)
	}
	n := a.r
	res := mustDense(n, n)
	var i, j int
	var s float64
	for i = 0; i < n; i++ {
		ri := a.data[i*a.c : (i+1)*a.c]
		for j = i; j < n; j++ {
			s = floats.Dot(ri, a.data[j*a.c:(j+1)*a.c])
			res.data[i*n+j] = s
			res.data[j*n+i] = s
		}
	}

	return res, nil
}

// KhatriRao returns the column-wise Kronecker product A ⊙ B.
// Contract: A.Cols == B.Cols == R. Result shape: (A.Rows*B.Rows) × R, with
// row index ia*B.Rows + ib, i.e. B's row index varies fastest.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (column counts differ).
//
// Complexity:
//   - Time O(Ia*Ib*R), Space O(Ia*Ib*R).
func KhatriRao(a, b *Dense) (*Dense, error) {
	if a == nil || b == nil {
		return nil, matrixErrorf(opKhatriRao, ErrNilMatrix)
	}
	if a.c != b.c {
		return nil, matrixErrorf(opKhatriRao, ErrDimensionMismatch)
	}
	R := a.c
	res := mustDense(a.r*b.r, R)
	var ia, ib, r, row int
	var av float64
	for ia = 0; ia < a.r; ia++ {
		for ib = 0; ib < b.r; ib++ {
			row = (ia*b.r + ib) * R
			for r = 0; r < R; r++ {
				av = a.data[ia*R+r]
				res.data[row+r] = av * b.data[ib*R+r]
			}
		}
	}

	return res, nil
}

// ColumnNorms returns the Euclidean norm of every column.
// Complexity: O(r*c).
func ColumnNorms(m *Dense) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opColNorms, err)
	}
	out := make([]float64, m.c)
	col := make([]float64, m.r)
	var i, j int
	for j = 0; j < m.c; j++ {
		for i = 0; i < m.r; i++ {
			col[i] = m.data[i*m.c+j]
		}
		out[j] = floats.Norm(col, 2)
	}

	return out, nil
}

// NormalizeColumns rescales every column of m to unit 2-norm IN PLACE and
// returns the removed norms. Zero columns are left untouched and report 0.
// Complexity: O(r*c).
func NormalizeColumns(m *Dense) ([]float64, error) {
	norms, err := ColumnNorms(m)
	if err != nil {
		return nil, matrixErrorf(opNormalize, err)
	}
	var i, j int
	for j = 0; j < m.c; j++ {
		if norms[j] == 0 {
			continue
		}
		inv := 1 / norms[j]
		for i = 0; i < m.r; i++ {
			m.data[i*m.c+j] *= inv
		}
	}

	return norms, nil
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// Policy: rtol, atol are treated as |rtol|, |atol|; NaN/Inf tolerances are rejected.
// Time: O(r*c). Space: O(1). Deterministic.
func AllClose(a, b *Dense, rtol, atol float64) (bool, error) {
	if isNonFinite(rtol) || isNonFinite(atol) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	for idx := range a.data {
		if math.Abs(a.data[idx]-b.data[idx]) > atol+rtol*math.Abs(b.data[idx]) {
			return false, nil
		}
	}

	return true, nil
}
