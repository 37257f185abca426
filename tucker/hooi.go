// SPDX-License-Identifier: MIT

package tucker

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/lvtensor/hosvd"
	"github.com/katalvlaran/lvtensor/matrix"
	"github.com/katalvlaran/lvtensor/tensor"
)

// State is the terminal state of an ALS run.
type State int

const (
	// StateMaxIterations means the sweep budget ran out before the fit settled.
	StateMaxIterations State = iota
	// StateConverged means |Δfit| fell below the tolerance (or the input was zero).
	StateConverged
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateConverged:
		return "converged"
	case StateMaxIterations:
		return "max-iterations"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Result is the outcome of HOOI or IncrementalHOOI.
type Result[T tensor.Tensor[T]] struct {
	// Bases[k] is I_k × R_k.
	Bases []*matrix.Dense
	// Core is R_1 × … × R_N.
	Core T
	// Fit is 1 − ‖X − X̂‖/‖X‖ of the returned model.
	Fit float64
	// History holds the fit after each sweep (after each block for iHOOI).
	History []float64
	// Iterations counts completed sweeps.
	Iterations int
	// State tells a converged run from an exhausted budget.
	State State
}

// Converged reports State == StateConverged.
func (r *Result[T]) Converged() bool { return r.State == StateConverged }

// HOOI computes a rank-(R_1, …, R_N) Tucker decomposition of data.
//
// Stages:
//  1. Validate ranks (1 ≤ R_k ≤ I_k) and seed the bases (WithInit).
//  2. Zero data: return fit 1, a zero core and zero sweeps.
//  3. Sweep: for each mode k, project data on the bases of the other modes
//     and replace U_k by the leading R_k basis of the projection's mode-k
//     unfolding; the last projection yields the core and its norm the fit.
//  4. Stop on |Δfit| < tol (never with NoTolerance) or after MaxIterations.
//  5. Derive the final core (transposes, or pseudoinverses when
//     WithPseudoinverseCore is set).
//
// Errors:
//   - ErrInvalidRank; ctx.Err() when cancelled between sweeps;
//     matrix.ErrNonConvergence from a basis computation.
//
// Complexity: per sweep O(N · Π I_k · max R_k) for the projections plus one
// SVD of an I_k × Π_{j≠k} R_j matrix per mode.
func HOOI[T tensor.Tensor[T]](ctx context.Context, data T, ranks []int, opts ...Option) (*Result[T], error) {
	o := gatherOptions(opts...)
	dims := data.Dims()
	if err := hosvd.ValidateRanks(dims, ranks); err != nil {
		return nil, tuckerErrorf("HOOI", err)
	}
	bases, err := initBases(data, ranks, o)
	if err != nil {
		return nil, tuckerErrorf("HOOI", err)
	}

	normX := data.FrobeniusNorm()
	if normX == 0 {
		core, err := data.Blank(ranks...)
		if err != nil {
			return nil, tuckerErrorf("HOOI", err)
		}

		return &Result[T]{Bases: bases, Core: core, Fit: 1, State: StateConverged}, nil
	}

	core, err := DeriveCoreOrthogonal(data, bases)
	if err != nil {
		return nil, tuckerErrorf("HOOI", err)
	}
	res := &Result[T]{State: StateMaxIterations}
	prev := fitFromNorms(normX, core.FrobeniusNorm())
	fit := prev
	n := len(dims)
	for iter := 1; iter <= o.maxIter; iter++ {
		if err = ctx.Err(); err != nil {
			return nil, tuckerErrorf("HOOI", err)
		}
		for k := 0; k < n; k++ {
			if bases[k], core, err = optimizeMode(data, bases, ranks[k], k, o.method); err != nil {
				return nil, tuckerErrorf("HOOI", fmt.Errorf("sweep %d: %w", iter, err))
			}
		}
		fit = fitFromNorms(normX, core.FrobeniusNorm())
		delta := math.Abs(fit - prev)
		res.History = append(res.History, fit)
		res.Iterations = iter
		if o.observer != nil {
			o.observer(Sweep{Iteration: iter, Fit: fit, Delta: delta})
		}
		if o.tol != NoTolerance && delta < o.tol {
			res.State = StateConverged
			break
		}
		prev = fit
	}

	if o.pinvCore {
		core, err = DeriveCore(data, bases)
	} else {
		core, err = DeriveCoreOrthogonal(data, bases)
	}
	if err != nil {
		return nil, tuckerErrorf("HOOI", err)
	}
	res.Bases, res.Core, res.Fit = bases, core, fit

	return res, nil
}

// optimizeMode recomputes the basis of mode k from the projection of data on
// the current bases of the other modes. It also returns that projection
// contracted with the new basis, i.e. the core on the updated bases.
func optimizeMode[T tensor.Tensor[T]](data T, bases []*matrix.Dense, rank, k int, method hosvd.Method) (*matrix.Dense, T, error) {
	var zero T
	proj := data
	for j, u := range bases {
		if j == k {
			continue
		}
		ut, err := matrix.Transpose(u)
		if err != nil {
			return nil, zero, err
		}
		if proj, err = proj.MultiplyMode(j, ut); err != nil {
			return nil, zero, err
		}
	}
	unf, err := proj.Unfold(k)
	if err != nil {
		return nil, zero, err
	}
	basis, err := hosvd.ModeBasis(unf, rank, method)
	if err != nil {
		return nil, zero, err
	}
	// (proj ×_k basisᵀ)_(k) = basisᵀ · proj_(k)
	g, err := matrix.TMul(basis, unf.Matrix())
	if err != nil {
		return nil, zero, err
	}
	dims := proj.Dims()
	dims[k] = basis.Cols()
	gu, err := tensor.NewBackwardUnfolding(g, k, dims)
	if err != nil {
		return nil, zero, err
	}
	core, err := proj.Blank(dims...)
	if err != nil {
		return nil, zero, err
	}
	if err = gu.RefoldInto(core); err != nil {
		return nil, zero, err
	}

	return basis, core, nil
}

// initBases seeds one I_k × R_k basis per mode.
func initBases[T tensor.Tensor[T]](data T, ranks []int, o Options) ([]*matrix.Dense, error) {
	dims := data.Dims()
	bases := make([]*matrix.Dense, len(dims))
	var err error
	switch o.init {
	case InitRandom:
		rng := tensor.NewRand(o.seed)
		for k := range dims {
			if bases[k], err = matrix.RandomOrthonormal(dims[k], ranks[k], rng); err != nil {
				return nil, err
			}
		}
	case InitDCT:
		for k := range dims {
			if bases[k], err = matrix.DCT(dims[k], ranks[k]); err != nil {
				return nil, err
			}
		}
	default:
		res, err := hosvd.Decompose(data, ranks, hosvd.WithMethod(o.method))
		if err != nil {
			return nil, err
		}
		bases = res.Bases
	}

	return bases, nil
}
