// SPDX-License-Identifier: MIT

package cp

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvtensor/matrix"
	"github.com/katalvlaran/lvtensor/tensor"
)

// IncrementalHOPM (iHOPM) builds a rank-R model from nblocks sequential HOPM
// fits of rank R/nblocks, each on the residual left by the blocks before it
// (deflation).
//
// Block b occupies columns [b·r, (b+1)·r) of every factor and the same range
// of Lambda; components are sorted within a block, not across blocks. With
// nblocks == 1 it is exactly HOPM.
//
// Result.History holds the overall fit after each block and Result.Iterations
// the total number of sweeps; State is StateConverged only if every block
// converged.
//
// Errors:
//   - ErrInvalidRank for rank < 1.
//   - ErrRankNotDivisible when nblocks < 1 or rank % nblocks != 0.
func IncrementalHOPM[T tensor.Tensor[T]](ctx context.Context, data T, rank, nblocks int, opts ...Option) (*Result, error) {
	if rank < 1 {
		return nil, cpErrorf("IncrementalHOPM", fmt.Errorf("rank %d: %w", rank, ErrInvalidRank))
	}
	if nblocks < 1 || rank%nblocks != 0 {
		return nil, cpErrorf("IncrementalHOPM", fmt.Errorf("rank %d, nblocks %d: %w", rank, nblocks, ErrRankNotDivisible))
	}
	if nblocks == 1 {
		return HOPM(ctx, data, rank, opts...)
	}

	r := rank / nblocks
	dims := data.Dims()
	factors := make([]*matrix.Dense, len(dims))
	var err error
	for k, d := range dims {
		if factors[k], err = matrix.NewDense(d, rank); err != nil {
			return nil, cpErrorf("IncrementalHOPM", err)
		}
	}
	lambda := make([]float64, rank)

	normX := data.FrobeniusNorm()
	residual := data.Clone()
	res := &Result{State: StateConverged}
	for b := 0; b < nblocks; b++ {
		block, err := HOPM(ctx, residual, r, opts...)
		if err != nil {
			return nil, cpErrorf("IncrementalHOPM", fmt.Errorf("block %d: %w", b, err))
		}
		copy(lambda[b*r:], block.Lambda)
		for k := range dims {
			if err = factors[k].SetCols(b*r, block.Factors[k]); err != nil {
				return nil, cpErrorf("IncrementalHOPM", err)
			}
		}

		approx, err := Reconstruct(residual, block.Lambda, block.Factors)
		if err != nil {
			return nil, cpErrorf("IncrementalHOPM", err)
		}
		if residual, err = residual.Sub(approx); err != nil {
			return nil, cpErrorf("IncrementalHOPM", err)
		}

		res.Iterations += block.Iterations
		if !block.Converged() {
			res.State = StateMaxIterations
		}
		fit := 1.0
		if normX != 0 {
			fit = 1 - residual.FrobeniusNorm()/normX
		}
		res.History = append(res.History, fit)
	}
	res.Lambda, res.Factors = lambda, factors
	res.Fit = res.History[len(res.History)-1]

	return res, nil
}
