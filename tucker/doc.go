// SPDX-License-Identifier: MIT

// Package tucker implements the Tucker decomposition of Tensor3 and Tensor4
// data by Higher-Order Orthogonal Iteration (HOOI, Tucker-ALS), its
// incremental block variant (iHOOI) and a Model wrapper with reconstruction,
// rank reduction, subsampling and quantized export.
//
// HOOI state machine:
//
//	INIT ─▶ (OPTIMIZE mode 1 ▶ … ▶ OPTIMIZE mode N) × sweeps ─▶ CONVERGED | MAX_ITERATIONS
//
// Each mode step projects the data onto the current bases of all OTHER modes
// and recomputes the mode's basis from that projection (hosvd.ModeBasis).
// After every sweep the fit
//
//	fit = 1 − √max(0, ‖X‖² − ‖G‖²) / ‖X‖
//
// is tracked, G being the core on the current bases. The loop stops when the
// fit changes by less than the tolerance or after MaxIterations sweeps;
// NoTolerance disables the fit test and always runs MaxIterations sweeps.
//
// All engines are generic over tensor.Tensor, and all unfoldings are backward
// (tensor.BackwardUnfolding). Cancellation through ctx is observed between
// sweeps only, so bases are never left half-updated.
package tucker
