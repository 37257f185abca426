// SPDX-License-Identifier: MIT

// Package cp implements the Candecomp/PARAFAC (CP) decomposition of Tensor3
// and Tensor4 data by the Higher-Order Power Method (HOPM, CP-ALS), its
// incremental block variant (iHOPM) and a Model wrapper.
//
// A rank-R CP model approximates X by a sum of R rank-1 terms:
//
//	X ≈ Σ_r λ_r · U1[:,r] ∘ U2[:,r] ∘ … ∘ UN[:,r]
//
// with unit-norm factor columns and the scales collected in Lambda.
//
// Per-mode solve. With backward unfoldings the mode-k unfolding of a CP
// model is U_k Λ KRᵀ, where KR is the Khatri–Rao product of the other
// factors taken in DESCENDING mode order (for three modes: X(1) = U1 Λ (U3 ⊙ U2)ᵀ,
// X(2) = U2 Λ (U3 ⊙ U1)ᵀ, X(3) = U3 Λ (U2 ⊙ U1)ᵀ). The least-squares update is
//
//	U_k ← X(k) · KR · pinv(⊛_{j≠k} U_jᵀU_j)
//
// which never forms KRᵀKR: the Hadamard product of the small R×R Gram
// matrices equals it. Columns are renormalized after every solve and the
// removed norms become Lambda.
//
// Stopping. The fit 1 − ‖X − X̂‖/‖X‖ is computed from the explicitly formed
// reconstruction after every sweep; the loop stops when it changes by less
// than the tolerance or after MaxIterations sweeps (NoTolerance runs all of
// them). On return factors and Lambda are jointly sorted by decreasing |λ|.
//
// Restarts. WithRestarts(n) runs n independent fits concurrently, the first
// with the configured init and the others from random starts drawn from
// tensor.DeriveRand, and keeps the best fit. Sweeps within one fit are
// sequential.
package cp
