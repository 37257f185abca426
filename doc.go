// SPDX-License-Identifier: MIT

// Package lvtensor is a toolkit for dense 3-way and 4-way tensors and their
// low-rank decompositions: Tucker (HOSVD, HOOI, incremental HOOI) and
// CP/PARAFAC (HOPM, incremental HOPM).
//
// 🚀 What is in the box?
//
//	• Tensors: Tensor3 and Tensor4 with checked access, slices, regions,
//	  subsampling and integer quantization
//	• Unfoldings: backward (Lathauwer/Kolda) and forward (Kiers) matricizations
//	  as distinct types, plus mode-n products (TTM)
//	• Tucker: HOSVD, HOOI with SVD/eigen/DCT starts, core derivation,
//	  rank reduction and compact export
//	• CP: HOPM with parallel restarts, Khatri–Rao normal equations and
//	  magnitude-sorted components
//	• Incremental variants that split the rank into blocks and fit residuals
//	• Fit curves: record per-sweep fits and render them as PNG/SVG/PDF plots
//
// ✨ Guarantees
//
//   - Deterministic – every random start is driven by an explicit seed
//   - Cancellable – engines check context.Context between sweeps
//   - Typed errors – sentinel errors wrapped with %w, no panics on bad input
//
// Under the hood, everything is organized into subpackages:
//
//	matrix/  row-major Dense, kernels and gonum-backed factorizations
//	tensor/  Tensor3, Tensor4, unfoldings, TTM, regions, quantization
//	hosvd/   truncated higher-order SVD and mode bases
//	tucker/  HOOI, incremental HOOI, Tucker models and export
//	cp/      HOPM, incremental HOPM, CP models
//	fitplot/ fit-history recording and plotting
//
// Quick sketch:
//
//	X (I1×I2×I3) ≈ G ×1 U1 ×2 U2 ×3 U3          (Tucker)
//	X (I1×I2×I3) ≈ Σ_r λ_r · a_r ∘ b_r ∘ c_r     (CP)
//
// Runnable programs live under examples/.
//
//	go get github.com/katalvlaran/lvtensor
package lvtensor
