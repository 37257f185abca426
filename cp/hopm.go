// SPDX-License-Identifier: MIT

package cp

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sync"

	"gonum.org/v1/gonum/floats"

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

// Result is the outcome of HOPM or IncrementalHOPM.
type Result struct {
	// Lambda holds the component weights, sorted by decreasing |λ| for HOPM.
	Lambda []float64
	// Factors[k] is I_k × R with unit-norm columns (zero columns stay zero).
	Factors []*matrix.Dense
	// Fit is 1 − ‖X − X̂‖/‖X‖.
	Fit float64
	// History holds the fit after each sweep (after each block for iHOPM).
	History []float64
	// Iterations counts completed sweeps.
	Iterations int
	// Restart is the index of the restart that produced the result.
	Restart int
	State   State
}

// Converged reports State == StateConverged.
func (r *Result) Converged() bool { return r.State == StateConverged }

// HOPM computes a rank-R CP decomposition of data by alternating least squares.
//
// Stages:
//  1. Seed all factors (WithInit), move their column norms into lambda and
//     unfold data once per mode. MaxIterations 0 returns this seed.
//  2. Zero data: return zero lambda, fit 1 and zero sweeps.
//  3. Sweep: solve every mode in ascending order (see the package doc),
//     normalizing columns into lambda; compute the fit.
//  4. Stop on |Δfit| < tol (never with NoTolerance) or after MaxIterations;
//     the first sweep compares against fit 0.
//  5. SortDecreasing.
//
// Errors:
//   - ErrInvalidRank for rank < 1; ctx.Err() when cancelled between sweeps;
//     matrix.ErrNonConvergence from an SVD.
//
// Complexity: per sweep O(N·R·Π I_k) for the unfolding products and the fit,
// plus O(N·R³) for the pseudoinverses.
func HOPM[T tensor.Tensor[T]](ctx context.Context, data T, rank int, opts ...Option) (*Result, error) {
	o := gatherOptions(opts...)
	if rank < 1 {
		return nil, cpErrorf("HOPM", fmt.Errorf("rank %d: %w", rank, ErrInvalidRank))
	}
	if o.restarts == 1 {
		res, err := run(ctx, data, rank, o, 0)
		if err != nil {
			return nil, cpErrorf("HOPM", err)
		}

		return res, nil
	}

	results := make([]*Result, o.restarts)
	errs := make([]error, o.restarts)
	var wg sync.WaitGroup
	for i := 0; i < o.restarts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = run(ctx, data, rank, o, i)
		}(i)
	}
	wg.Wait()

	best := 0
	for i := range results {
		if errs[i] != nil {
			return nil, cpErrorf("HOPM", fmt.Errorf("restart %d: %w", i, errs[i]))
		}
		if results[i].Fit > results[best].Fit {
			best = i
		}
	}

	return results[best], nil
}

// run is one HOPM fit. Restart 0 uses the configured init and seed; restart
// i > 0 starts from random factors drawn from stream i of the seed.
func run[T tensor.Tensor[T]](ctx context.Context, data T, rank int, o Options, restart int) (*Result, error) {
	start, rng := o.init, tensor.NewRand(o.seed)
	if restart > 0 {
		start, rng = InitRandom, tensor.DeriveRand(o.seed, uint64(restart))
	}
	factors, err := initFactors(data, rank, start, rng)
	if err != nil {
		return nil, err
	}
	n := len(factors)
	lambda, err := seedWeights(factors)
	if err != nil {
		return nil, err
	}
	res := &Result{Restart: restart, State: StateMaxIterations}

	normX := data.FrobeniusNorm()
	if normX == 0 {
		res.Lambda, res.Factors, res.Fit, res.State = make([]float64, rank), factors, 1, StateConverged
		return res, nil
	}

	unfoldings := make([]*matrix.Dense, n)
	grams := make([]*matrix.Dense, n)
	for k := 0; k < n; k++ {
		u, err := data.Unfold(k)
		if err != nil {
			return nil, err
		}
		unfoldings[k] = u.Matrix()
		if grams[k], err = matrix.Gram(factors[k]); err != nil {
			return nil, err
		}
	}

	var prev, fit float64
	for iter := 1; iter <= o.maxIter; iter++ {
		if err = ctx.Err(); err != nil {
			return nil, err
		}
		for k := 0; k < n; k++ {
			if lambda, err = optimizeMode(unfoldings[k], factors, grams, k); err != nil {
				return nil, fmt.Errorf("sweep %d mode %d: %w", iter, k, err)
			}
		}
		if fit, err = Fit(data, lambda, factors); err != nil {
			return nil, err
		}
		delta := math.Abs(fit - prev)
		res.History = append(res.History, fit)
		res.Iterations = iter
		if o.observer != nil {
			o.observer(Sweep{Restart: restart, Iteration: iter, Fit: fit, Delta: delta})
		}
		if o.tol != NoTolerance && delta < o.tol {
			res.State = StateConverged
			break
		}
		prev = fit
	}
	if res.Iterations == 0 {
		if fit, err = Fit(data, lambda, factors); err != nil {
			return nil, err
		}
	}

	if err = SortDecreasing(lambda, factors); err != nil {
		return nil, err
	}
	res.Lambda, res.Factors, res.Fit = lambda, factors, fit

	return res, nil
}

// seedWeights normalizes the seed factors in place and returns the per
// component product of the removed column norms.
func seedWeights(factors []*matrix.Dense) ([]float64, error) {
	var lambda []float64
	for _, u := range factors {
		norms, err := matrix.NormalizeColumns(u)
		if err != nil {
			return nil, err
		}
		if lambda == nil {
			lambda = norms
			continue
		}
		floats.Mul(lambda, norms)
	}

	return lambda, nil
}

// optimizeMode replaces factors[k] (and grams[k]) by the least-squares
// solution for mode k and returns the removed column norms.
func optimizeMode(unf *matrix.Dense, factors, grams []*matrix.Dense, k int) ([]float64, error) {
	kr, err := khatriRaoExcept(factors, k)
	if err != nil {
		return nil, err
	}
	v, err := hadamardExcept(grams, k)
	if err != nil {
		return nil, err
	}
	m, err := matrix.Mul(unf, kr)
	if err != nil {
		return nil, err
	}
	p, err := matrix.PseudoInverse(v)
	if err != nil {
		return nil, err
	}
	u, err := matrix.Mul(m, p)
	if err != nil {
		return nil, err
	}
	lambda, err := matrix.NormalizeColumns(u)
	if err != nil {
		return nil, err
	}
	factors[k] = u
	if grams[k], err = matrix.Gram(u); err != nil {
		return nil, err
	}

	return lambda, nil
}

// khatriRaoExcept returns U_{N-1} ⊙ … ⊙ U_{k+1} ⊙ U_{k-1} ⊙ … ⊙ U_0, the
// column basis of the backward mode-k unfolding of a CP model.
func khatriRaoExcept(factors []*matrix.Dense, k int) (*matrix.Dense, error) {
	var acc *matrix.Dense
	var err error
	for j := len(factors) - 1; j >= 0; j-- {
		if j == k {
			continue
		}
		if acc == nil {
			acc = factors[j]
			continue
		}
		if acc, err = matrix.KhatriRao(acc, factors[j]); err != nil {
			return nil, err
		}
	}

	return acc, nil
}

// hadamardExcept returns the elementwise product of every Gram matrix but
// the k-th, which equals KRᵀKR for the khatriRaoExcept product.
func hadamardExcept(grams []*matrix.Dense, k int) (*matrix.Dense, error) {
	var acc *matrix.Dense
	var err error
	for j, g := range grams {
		if j == k {
			continue
		}
		if acc == nil {
			acc = g.Clone()
			continue
		}
		if acc, err = matrix.Hadamard(acc, g); err != nil {
			return nil, err
		}
	}

	return acc, nil
}

// initFactors seeds one I_k × rank factor per mode.
func initFactors[T tensor.Tensor[T]](data T, rank int, start Init, rng *rand.Rand) ([]*matrix.Dense, error) {
	dims := data.Dims()
	factors := make([]*matrix.Dense, len(dims))
	var err error
	for k, d := range dims {
		if start == InitRandom {
			if factors[k], err = matrix.Random(d, rank, rng); err != nil {
				return nil, err
			}
			continue
		}

		lead := min(rank, d)
		var head *matrix.Dense
		if start == InitDCT {
			head, err = matrix.DCT(d, lead)
		} else {
			var u *tensor.BackwardUnfolding
			if u, err = data.Unfold(k); err != nil {
				return nil, err
			}
			head, err = hosvd.ModeBasis(u, lead, hosvd.MethodSVD)
		}
		if err != nil {
			return nil, err
		}
		if lead == rank {
			factors[k] = head
			continue
		}
		if factors[k], err = matrix.Random(d, rank, rng); err != nil {
			return nil, err
		}
		if err = factors[k].SetCols(0, head); err != nil {
			return nil, err
		}
	}

	return factors, nil
}
