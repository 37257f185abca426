// SPDX-License-Identifier: MIT

package tucker

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvtensor/matrix"
	"github.com/katalvlaran/lvtensor/tensor"
)

// Model is a Tucker model: a core tensor and one basis per mode.
// The represented tensor is Core ×₁ Bases[0] ×₂ Bases[1] ….
type Model[T tensor.Tensor[T]] struct {
	Bases []*matrix.Dense
	Core  T
}

// NewModel checks that bases[k] is I_k × R_k with R_k the core extents.
func NewModel[T tensor.Tensor[T]](core T, bases []*matrix.Dense) (*Model[T], error) {
	ranks := core.Dims()
	if len(bases) != len(ranks) {
		return nil, tuckerErrorf("NewModel", fmt.Errorf("%d bases for order %d: %w", len(bases), len(ranks), ErrShapeMismatch))
	}
	for k, u := range bases {
		if u == nil || u.Cols() != ranks[k] {
			return nil, tuckerErrorf("NewModel", fmt.Errorf("basis %d against core extent %d: %w", k, ranks[k], ErrShapeMismatch))
		}
	}

	return &Model[T]{Bases: bases, Core: core}, nil
}

// Decompose runs HOOI and wraps the result.
func Decompose[T tensor.Tensor[T]](ctx context.Context, data T, ranks []int, opts ...Option) (*Model[T], error) {
	res, err := HOOI(ctx, data, ranks, opts...)
	if err != nil {
		return nil, err
	}

	return &Model[T]{Bases: res.Bases, Core: res.Core}, nil
}

// Dims returns the extents of the represented tensor.
func (m *Model[T]) Dims() []int {
	dims := make([]int, len(m.Bases))
	for k, u := range m.Bases {
		dims[k] = u.Rows()
	}

	return dims
}

// Ranks returns the core extents.
func (m *Model[T]) Ranks() []int { return m.Core.Dims() }

// Reconstruct materializes the represented tensor.
func (m *Model[T]) Reconstruct() (T, error) { return Reconstruct(m.Core, m.Bases) }

// CompressionRatio is the element count of the represented tensor over the
// element count of the model (core plus bases).
func (m *Model[T]) CompressionRatio() float64 {
	full, stored := 1, m.Core.Len()
	for _, u := range m.Bases {
		full *= u.Rows()
		stored += u.Rows() * u.Cols()
	}

	return float64(full) / float64(stored)
}

// ReduceRanks keeps the leading ranks[k] basis columns and the matching
// leading core sub-block. With HOSVD-seeded bases the leading columns carry the
// most energy, so this is the usual truncation.
//
// Errors:
//   - ErrInvalidRank when len(ranks) differs or ranks[k] ∉ [1, R_k].
func (m *Model[T]) ReduceRanks(ranks []int) (*Model[T], error) {
	cur := m.Ranks()
	if len(ranks) != len(cur) {
		return nil, tuckerErrorf("ReduceRanks", ErrInvalidRank)
	}
	bases := make([]*matrix.Dense, len(ranks))
	var err error
	for k, r := range ranks {
		if r < 1 || r > cur[k] {
			return nil, tuckerErrorf("ReduceRanks", fmt.Errorf("rank %d of mode %d above %d: %w", r, k, cur[k], ErrInvalidRank))
		}
		if bases[k], err = m.Bases[k].SliceCols(0, r); err != nil {
			return nil, tuckerErrorf("ReduceRanks", err)
		}
	}
	core, err := m.Core.Blank(ranks...)
	if err != nil {
		return nil, tuckerErrorf("ReduceRanks", err)
	}
	origin := make([]int, len(ranks))
	if err = tensor.CopyRegion(core, m.Core, origin, origin, ranks); err != nil {
		return nil, tuckerErrorf("ReduceRanks", err)
	}

	return &Model[T]{Bases: bases, Core: core}, nil
}

// Subsample keeps every factors[k]-th row of each basis (rows 0, f, 2f, …),
// so Reconstruct yields the represented tensor sampled on a coarser grid
// without materializing the full one.
func (m *Model[T]) Subsample(factors []int) (*Model[T], error) {
	if len(factors) != len(m.Bases) {
		return nil, tuckerErrorf("Subsample", ErrShapeMismatch)
	}
	bases := make([]*matrix.Dense, len(m.Bases))
	for k, f := range factors {
		if f < 1 {
			return nil, tuckerErrorf("Subsample", fmt.Errorf("factor %d: %w", f, tensor.ErrOutOfRange))
		}
		u := m.Bases[k]
		rows := (u.Rows() + f - 1) / f
		sub, err := matrix.NewDense(rows, u.Cols())
		if err != nil {
			return nil, tuckerErrorf("Subsample", err)
		}
		src, dst, c := u.RawData(), sub.RawData(), u.Cols()
		for i := 0; i < rows; i++ {
			copy(dst[i*c:(i+1)*c], src[i*f*c:(i*f+1)*c])
		}
		bases[k] = sub
	}

	return &Model[T]{Bases: bases, Core: m.Core.Clone()}, nil
}

// Region reconstructs only the box [from[k], to[k]) of every mode.
func (m *Model[T]) Region(from, to []int) (T, error) {
	var zero T
	if len(from) != len(m.Bases) || len(to) != len(m.Bases) {
		return zero, tuckerErrorf("Region", ErrShapeMismatch)
	}
	bases := make([]*matrix.Dense, len(m.Bases))
	for k, u := range m.Bases {
		if from[k] < 0 || to[k] > u.Rows() || from[k] >= to[k] {
			return zero, tuckerErrorf("Region", fmt.Errorf("mode %d [%d,%d) of %d: %w", k, from[k], to[k], u.Rows(), tensor.ErrOutOfRange))
		}
		r := u.Cols()
		sub, err := matrix.NewDenseFrom(to[k]-from[k], r, u.RawData()[from[k]*r:to[k]*r])
		if err != nil {
			return zero, tuckerErrorf("Region", err)
		}
		bases[k] = sub
	}

	return Reconstruct(m.Core, bases)
}
