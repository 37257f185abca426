// SPDX-License-Identifier: MIT

package tensor

import "github.com/katalvlaran/lvtensor/matrix"

// Tensor is the mode-generic surface the decomposition engines are written
// against. T is the concrete tensor type itself, so operations return the
// same type they were called on:
//
//	func HOOI[T tensor.Tensor[T]](ctx context.Context, data T, ...)
//
// Tensor3 and Tensor4 (as pointers) satisfy Tensor.
type Tensor[T any] interface {
	Storage

	// Order returns the number of modes (3 or 4).
	Order() int
	// Len returns the element count.
	Len() int
	// FrobeniusNorm returns sqrt(Σ x²).
	FrobeniusNorm() float64
	// Unfold returns the backward (Lathauwer) mode-`mode` matricization.
	Unfold(mode int) (*BackwardUnfolding, error)
	// MultiplyMode returns the receiver ×_mode m.
	MultiplyMode(mode int, m *matrix.Dense) (T, error)
	// Sub returns receiver - other.
	Sub(other T) (T, error)
	// Clone returns a deep copy.
	Clone() T
	// Blank allocates a zero tensor of the same order with the given extents.
	Blank(dims ...int) (T, error)
}

var (
	_ Tensor[*Tensor3] = (*Tensor3)(nil)
	_ Tensor[*Tensor4] = (*Tensor4)(nil)
)

// MultiplyAll applies MultiplyMode for every mode in ascending order:
// t ×₁ mats[0] ×₂ mats[1] ... This is the Tucker reconstruction operator
// when t is the core and mats are the bases. A nil entry skips its mode.
//
// Errors:
//   - ErrDimensionMismatch when len(mats) != t.Order() or a matrix does not
//     conform to its mode.
func MultiplyAll[T Tensor[T]](t T, mats ...*matrix.Dense) (T, error) {
	var zero T
	if len(mats) != t.Order() {
		return zero, tensorErrorf("MultiplyAll", ErrDimensionMismatch)
	}
	out := t.Clone()
	var err error
	for k, m := range mats {
		if m == nil {
			continue
		}
		if out, err = out.MultiplyMode(k, m); err != nil {
			return zero, tensorErrorf("MultiplyAll", err)
		}
	}

	return out, nil
}

// MultiplyAllTransposed applies the transpose of every matrix:
// t ×₁ mats[0]ᵀ ×₂ mats[1]ᵀ ... It projects data onto orthonormal bases
// (Tucker core) without the caller materializing the transposes.
func MultiplyAllTransposed[T Tensor[T]](t T, mats ...*matrix.Dense) (T, error) {
	var zero T
	if len(mats) != t.Order() {
		return zero, tensorErrorf("MultiplyAllTransposed", ErrDimensionMismatch)
	}
	ts := make([]*matrix.Dense, len(mats))
	for k, m := range mats {
		if m == nil {
			continue
		}
		mt, err := matrix.Transpose(m)
		if err != nil {
			return zero, tensorErrorf("MultiplyAllTransposed", err)
		}
		ts[k] = mt
	}

	return MultiplyAll(t, ts...)
}
