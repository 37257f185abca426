// SPDX-License-Identifier: MIT

package cp

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/lvtensor/matrix"
	"github.com/katalvlaran/lvtensor/tensor"
)

// checkModel validates that factors and lambda describe one rank-len(lambda) model.
func checkModel(lambda []float64, factors []*matrix.Dense) error {
	if len(lambda) == 0 || len(factors) == 0 {
		return ErrFactorMismatch
	}
	for k, u := range factors {
		if u == nil || u.Cols() != len(lambda) {
			return fmt.Errorf("factor %d against rank %d: %w", k, len(lambda), ErrFactorMismatch)
		}
	}

	return nil
}

// Reconstruct forms Σ_r λ_r · U1[:,r] ∘ … ∘ UN[:,r] explicitly. like selects
// the tensor type only (its Blank is used, so a typed nil pointer will do).
//
// Complexity: O(N·R·Π I_k).
func Reconstruct[T tensor.Tensor[T]](like T, lambda []float64, factors []*matrix.Dense) (T, error) {
	var zero T
	if err := checkModel(lambda, factors); err != nil {
		return zero, cpErrorf("Reconstruct", err)
	}
	n, R := len(factors), len(lambda)
	dims := make([]int, n)
	raw := make([][]float64, n)
	for k, u := range factors {
		dims[k], raw[k] = u.Rows(), u.RawData()
	}
	out, err := like.Blank(dims...)
	if err != nil {
		return zero, cpErrorf("Reconstruct", fmt.Errorf("%v: %w", err, ErrFactorMismatch))
	}

	data := out.RawData()
	idx := make([]int, n)
	var s, p float64
	var r, k int
	for off := range data {
		s = 0
		for r = 0; r < R; r++ {
			p = lambda[r]
			for k = 0; k < n; k++ {
				p *= raw[k][idx[k]*R+r]
			}
			s += p
		}
		data[off] = s
		for k = 0; k < n; k++ {
			if idx[k]++; idx[k] < dims[k] {
				break
			}
			idx[k] = 0
		}
	}

	return out, nil
}

// Fit returns 1 − ‖data − X̂‖/‖data‖ for the model (lambda, factors), and 1
// for zero data.
func Fit[T tensor.Tensor[T]](data T, lambda []float64, factors []*matrix.Dense) (float64, error) {
	normX := data.FrobeniusNorm()
	if normX == 0 {
		return 1, nil
	}
	rec, err := Reconstruct(data, lambda, factors)
	if err != nil {
		return 0, err
	}
	diff, err := data.Sub(rec)
	if err != nil {
		return 0, cpErrorf("Fit", err)
	}

	return 1 - diff.FrobeniusNorm()/normX, nil
}

// SortDecreasing reorders lambda and the columns of every factor with one
// permutation so that |lambda| is non-increasing. Ties keep their order.
// Both lambda and the factors are modified in place.
func SortDecreasing(lambda []float64, factors []*matrix.Dense) error {
	if err := checkModel(lambda, factors); err != nil {
		return cpErrorf("SortDecreasing", err)
	}
	perm := make([]int, len(lambda))
	for i := range perm {
		perm[i] = i
	}
	sort.SliceStable(perm, func(a, b int) bool {
		return math.Abs(lambda[perm[a]]) > math.Abs(lambda[perm[b]])
	})

	sorted := make([]float64, len(lambda))
	for i, p := range perm {
		sorted[i] = lambda[p]
	}
	copy(lambda, sorted)

	R := len(lambda)
	for _, u := range factors {
		src := u.Clone().RawData()
		dst := u.RawData()
		for row := 0; row < u.Rows(); row++ {
			for j, p := range perm {
				dst[row*R+j] = src[row*R+p]
			}
		}
	}

	return nil
}

// Model is a CP model bound to a tensor type.
type Model[T tensor.Tensor[T]] struct {
	Lambda  []float64
	Factors []*matrix.Dense
	like    T // 1×…×1 prototype
}

// NewModel checks lambda against the factors and that T holds len(factors)
// modes. like selects the tensor type only.
func NewModel[T tensor.Tensor[T]](like T, lambda []float64, factors []*matrix.Dense) (*Model[T], error) {
	if err := checkModel(lambda, factors); err != nil {
		return nil, cpErrorf("NewModel", err)
	}
	ones := make([]int, len(factors))
	for k := range ones {
		ones[k] = 1
	}
	proto, err := like.Blank(ones...)
	if err != nil {
		return nil, cpErrorf("NewModel", fmt.Errorf("%d factors: %w", len(factors), ErrFactorMismatch))
	}

	return &Model[T]{Lambda: lambda, Factors: factors, like: proto}, nil
}

// Decompose runs HOPM and wraps the result.
func Decompose[T tensor.Tensor[T]](ctx context.Context, data T, rank int, opts ...Option) (*Model[T], error) {
	res, err := HOPM(ctx, data, rank, opts...)
	if err != nil {
		return nil, err
	}

	return NewModel(data, res.Lambda, res.Factors)
}

// Rank returns R.
func (m *Model[T]) Rank() int { return len(m.Lambda) }

// Dims returns the extents of the represented tensor.
func (m *Model[T]) Dims() []int {
	dims := make([]int, len(m.Factors))
	for k, u := range m.Factors {
		dims[k] = u.Rows()
	}

	return dims
}

// Reconstruct materializes the represented tensor.
func (m *Model[T]) Reconstruct() (T, error) { return Reconstruct(m.like, m.Lambda, m.Factors) }

// CompressionRatio is Π I_k over R·(1 + Σ I_k).
func (m *Model[T]) CompressionRatio() float64 {
	full, per := 1, 1
	for _, u := range m.Factors {
		full *= u.Rows()
		per += u.Rows()
	}

	return float64(full) / float64(m.Rank()*per)
}

// Reduce keeps the rank components with the largest |λ|. The receiver is not
// modified.
//
// Errors:
//   - ErrInvalidRank when rank ∉ [1, Rank()].
func (m *Model[T]) Reduce(rank int) (*Model[T], error) {
	if rank < 1 || rank > m.Rank() {
		return nil, cpErrorf("Reduce", fmt.Errorf("rank %d of %d: %w", rank, m.Rank(), ErrInvalidRank))
	}
	lambda := append([]float64(nil), m.Lambda...)
	factors := make([]*matrix.Dense, len(m.Factors))
	for k, u := range m.Factors {
		factors[k] = u.Clone()
	}
	if err := SortDecreasing(lambda, factors); err != nil {
		return nil, cpErrorf("Reduce", err)
	}
	var err error
	for k, u := range factors {
		if factors[k], err = u.SliceCols(0, rank); err != nil {
			return nil, cpErrorf("Reduce", err)
		}
	}

	return &Model[T]{Lambda: lambda[:rank], Factors: factors, like: m.like}, nil
}
