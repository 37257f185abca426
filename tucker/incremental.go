// SPDX-License-Identifier: MIT

package tucker

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvtensor/matrix"
	"github.com/katalvlaran/lvtensor/tensor"
)

// IncrementalHOOI (iHOOI) builds a rank-(R_1, …, R_N) model from nblocks
// sequential HOOI fits of rank R_k/nblocks, each on the residual left by the
// blocks before it.
//
// Block b's bases occupy columns [b·r_k, (b+1)·r_k) of the returned bases and
// its core occupies the b-th diagonal sub-block of the returned core; the rest
// of the core is zero. Bases of different blocks are not mutually orthogonal,
// so the model is a sum of block reconstructions rather than a projection.
// This is a heuristic: it need not reach the fit of a joint HOOI at the same
// rank. With nblocks == 1 it is exactly HOOI.
//
// Result.History holds the overall fit after each block and Result.Iterations
// the total number of sweeps; State is StateConverged only if every block
// converged.
//
// Errors:
//   - ErrRankNotDivisible when nblocks < 1 or some R_k % nblocks != 0.
//   - Any error of HOOI (block ranks must satisfy 1 ≤ r_k ≤ I_k).
func IncrementalHOOI[T tensor.Tensor[T]](ctx context.Context, data T, ranks []int, nblocks int, opts ...Option) (*Result[T], error) {
	dims := data.Dims()
	if len(ranks) != len(dims) {
		return nil, tuckerErrorf("IncrementalHOOI", fmt.Errorf("%d ranks for order %d: %w", len(ranks), len(dims), ErrInvalidRank))
	}
	if nblocks < 1 {
		return nil, tuckerErrorf("IncrementalHOOI", fmt.Errorf("nblocks %d: %w", nblocks, ErrRankNotDivisible))
	}
	blockRanks := make([]int, len(ranks))
	for k, r := range ranks {
		if r%nblocks != 0 {
			return nil, tuckerErrorf("IncrementalHOOI", fmt.Errorf("rank %d of mode %d, nblocks %d: %w", r, k, nblocks, ErrRankNotDivisible))
		}
		blockRanks[k] = r / nblocks
	}
	if nblocks == 1 {
		return HOOI(ctx, data, ranks, opts...)
	}

	bases := make([]*matrix.Dense, len(dims))
	var err error
	for k := range dims {
		if bases[k], err = matrix.NewDense(dims[k], ranks[k]); err != nil {
			return nil, tuckerErrorf("IncrementalHOOI", err)
		}
	}
	core, err := data.Blank(ranks...)
	if err != nil {
		return nil, tuckerErrorf("IncrementalHOOI", err)
	}

	normX := data.FrobeniusNorm()
	residual := data.Clone()
	res := &Result[T]{State: StateConverged}
	origin := make([]int, len(dims))
	offset := make([]int, len(dims))
	for b := 0; b < nblocks; b++ {
		block, err := HOOI(ctx, residual, blockRanks, opts...)
		if err != nil {
			return nil, tuckerErrorf("IncrementalHOOI", fmt.Errorf("block %d: %w", b, err))
		}
		for k := range dims {
			offset[k] = b * blockRanks[k]
			if err = bases[k].SetCols(offset[k], block.Bases[k]); err != nil {
				return nil, tuckerErrorf("IncrementalHOOI", err)
			}
		}
		if err = tensor.CopyRegion(core, block.Core, offset, origin, blockRanks); err != nil {
			return nil, tuckerErrorf("IncrementalHOOI", err)
		}

		approx, err := Reconstruct(block.Core, block.Bases)
		if err != nil {
			return nil, tuckerErrorf("IncrementalHOOI", err)
		}
		if residual, err = residual.Sub(approx); err != nil {
			return nil, tuckerErrorf("IncrementalHOOI", err)
		}

		res.Iterations += block.Iterations
		if !block.Converged() {
			res.State = StateMaxIterations
		}
		res.History = append(res.History, residualFit(normX, residual.FrobeniusNorm()))
	}
	res.Bases, res.Core = bases, core
	res.Fit = res.History[len(res.History)-1]

	return res, nil
}

// residualFit returns 1 − ‖R‖/‖X‖, and 1 for a zero tensor.
func residualFit(normX, normR float64) float64 {
	if normX == 0 {
		return 1
	}

	return 1 - normR/normX
}
