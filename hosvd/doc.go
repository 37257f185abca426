// SPDX-License-Identifier: MIT

// Package hosvd computes the higher-order SVD of a Tensor3 or Tensor4: one
// orthonormal basis per mode, taken from the mode's backward unfolding.
//
// Two numerically equivalent paths are offered:
//
//   - MethodSVD: the leading left singular vectors of the unfolding A.
//   - MethodEig: the eigenvectors of the I_k×I_k Gram matrix A·Aᵀ with the
//     largest |λ|.
//
// Both paths canonicalize column signs (largest-magnitude entry positive), so
// they agree up to floating rounding whenever the retained singular values are
// distinct.
//
// The per-mode computations are independent; WithParallel runs them on one
// goroutine each and joins before returning.
//
// Failure policy: a factorization that does not converge fails the whole call
// with matrix.ErrNonConvergence. WithZeroFallback instead zeroes that mode's
// basis and lists the mode in Result.Degraded, so a caller can always tell a
// degraded answer from a complete one.
package hosvd
