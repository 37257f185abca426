// SPDX-License-Identifier: MIT

package hosvd

import (
	"errors"
	"fmt"
	"sync"

	"github.com/katalvlaran/lvtensor/matrix"
	"github.com/katalvlaran/lvtensor/tensor"
)

// Result holds one basis per mode.
type Result struct {
	// Bases[k] is I_k × R_k with orthonormal columns (zero if degraded).
	Bases []*matrix.Dense
	// Degraded lists, in ascending order, the modes whose factorization did
	// not converge and were zero-filled under WithZeroFallback.
	Degraded []int
}

// OK reports whether every basis was computed.
func (r *Result) OK() bool { return len(r.Degraded) == 0 }

// ModeBasis returns the rank leading basis vectors of the unfolding's column
// space as an I_k × rank matrix with orthonormal, sign-canonical columns.
//
// Errors:
//   - ErrInvalidRank when rank ∉ [1, I_k].
//   - matrix.ErrNonConvergence from the factorization.
func ModeBasis(u *tensor.BackwardUnfolding, rank int, method Method) (*matrix.Dense, error) {
	if u == nil {
		return nil, hosvdErrorf("ModeBasis", tensor.ErrNilTensor)
	}
	a := u.Matrix()
	if rank < 1 || rank > a.Rows() {
		return nil, hosvdErrorf("ModeBasis", fmt.Errorf("rank %d for extent %d: %w", rank, a.Rows(), ErrInvalidRank))
	}
	var (
		basis *matrix.Dense
		err   error
	)
	switch method {
	case MethodEig:
		var g *matrix.Dense
		if g, err = matrix.OuterGram(a); err != nil {
			return nil, hosvdErrorf("ModeBasis", err)
		}
		basis, err = matrix.TopEigenvectorsByMagnitude(g, rank)
	default:
		basis, err = matrix.LeadingLeftSingularVectors(a, rank)
	}
	if err != nil {
		return nil, hosvdErrorf("ModeBasis", err)
	}

	return basis, nil
}

// ValidateRanks checks len(ranks) == len(dims) and 1 ≤ ranks[k] ≤ dims[k].
func ValidateRanks(dims, ranks []int) error {
	if len(ranks) != len(dims) {
		return fmt.Errorf("%d ranks for order %d: %w", len(ranks), len(dims), ErrInvalidRank)
	}
	for k, r := range ranks {
		if r < 1 || r > dims[k] {
			return fmt.Errorf("rank %d for mode %d of extent %d: %w", r, k, dims[k], ErrInvalidRank)
		}
	}

	return nil
}

// Decompose computes one basis per mode of data with the given ranks.
//
// Stages:
//  1. Validate ranks against the extents.
//  2. For each mode k (sequentially or one goroutine per mode): unfold, then
//     ModeBasis(unfolding, ranks[k]).
//  3. Join; apply the failure policy to non-converged modes.
//
// Errors:
//   - ErrInvalidRank.
//   - matrix.ErrNonConvergence unless WithZeroFallback is set.
func Decompose[T tensor.Tensor[T]](data T, ranks []int, opts ...Option) (*Result, error) {
	o := gatherOptions(opts...)
	dims := data.Dims()
	if err := ValidateRanks(dims, ranks); err != nil {
		return nil, hosvdErrorf("Decompose", err)
	}

	n := len(dims)
	bases := make([]*matrix.Dense, n)
	errs := make([]error, n)
	mode := func(k int) {
		u, err := data.Unfold(k)
		if err != nil {
			errs[k] = err
			return
		}
		bases[k], errs[k] = o.basis(u, ranks[k], o.method)
	}
	if o.parallel {
		var wg sync.WaitGroup
		wg.Add(n)
		for k := 0; k < n; k++ {
			go func(k int) {
				defer wg.Done()
				mode(k)
			}(k)
		}
		wg.Wait()
	} else {
		for k := 0; k < n; k++ {
			mode(k)
		}
	}

	res := &Result{Bases: bases}
	for k, err := range errs {
		if err == nil {
			continue
		}
		if !o.zeroFallback || !errors.Is(err, matrix.ErrNonConvergence) {
			return nil, hosvdErrorf("Decompose", fmt.Errorf("mode %d: %w", k, err))
		}
		if bases[k], err = matrix.NewDense(dims[k], ranks[k]); err != nil {
			return nil, hosvdErrorf("Decompose", err)
		}
		res.Degraded = append(res.Degraded, k)
	}

	return res, nil
}
