// SPDX-License-Identifier: MIT
// Package matrix provides the dense linear-algebra layer consumed by the
// tensor decomposition engines.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked accessors and
//     column helpers used by factor matrices (Col, SetCol, ColumnNorms).
//   - Kernels with strict shape validation: Mul, TMul, Transpose, Hadamard,
//     Gram, KhatriRao and AllClose.
//   - Factorizations backed by gonum: SVD, EigenSym, OrthonormalColumns (QR)
//     and PseudoInverse. Non-convergence is reported as ErrNonConvergence,
//     never as silently zeroed output.
//
// Zero and random matrices are produced by constructor functions (NewDense,
// Random, RandomOrthonormal, DCT); the package holds no mutable global state.
package matrix
