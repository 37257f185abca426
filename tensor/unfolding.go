// SPDX-License-Identifier: MIT

// Package tensor - matricization types.
//
// BackwardUnfolding and ForwardUnfolding carry the unfolded matrix together
// with the mode and the extents of the tensor it came from. They are distinct
// types with no conversion between them: an algorithm written against one
// convention cannot be handed the other.

package tensor

import (
	"fmt"

	"github.com/katalvlaran/lvtensor/matrix"
)

// Storage is the minimal read/write surface shared by Tensor3 and Tensor4.
type Storage interface {
	Dims() []int
	RawData() []float64
}

// isNilStorage reports a nil interface or a nil *Tensor3/*Tensor4 inside one.
func isNilStorage(s Storage) bool {
	switch v := s.(type) {
	case nil:
		return true
	case *Tensor3:
		return v == nil
	case *Tensor4:
		return v == nil
	default:
		return false
	}
}

// unfolding is the state common to both conventions.
type unfolding struct {
	mode int
	dims []int
	m    *matrix.Dense
}

// Mode returns the zero-based mode whose index selects the row.
func (u *unfolding) Mode() int { return u.mode }

// TensorDims returns a copy of the extents of the folded tensor.
func (u *unfolding) TensorDims() []int {
	out := make([]int, len(u.dims))
	copy(out, u.dims)

	return out
}

// Matrix returns the unfolded matrix (I_mode × Π other extents). It is owned by
// the unfolding; mutate it only to refold the result afterwards.
func (u *unfolding) Matrix() *matrix.Dense { return u.m }

// BackwardUnfolding is a Lathauwer/Kolda matricization: the remaining modes are
// ordered ascending with the lowest one varying fastest along the columns.
type BackwardUnfolding struct{ unfolding }

// ForwardUnfolding is a Kiers matricization: the remaining modes are ordered
// ascending with the highest one varying fastest along the columns.
type ForwardUnfolding struct{ unfolding }

// newUnfolding validates that m has the shape of the mode-`mode` unfolding of
// a tensor with extents dims.
func newUnfolding(tag string, m *matrix.Dense, mode int, dims []int) (unfolding, error) {
	if m == nil {
		return unfolding{}, tensorErrorf(tag, ErrNilTensor)
	}
	for _, d := range dims {
		if d <= 0 {
			return unfolding{}, tensorErrorf(tag, ErrInvalidDimensions)
		}
	}
	if mode < 0 || mode >= len(dims) {
		return unfolding{}, tensorErrorf(tag, fmt.Errorf("mode %d: %w", mode, ErrOutOfRange))
	}
	if m.Rows() != dims[mode] || m.Cols() != product(dims, mode) {
		return unfolding{}, tensorErrorf(tag, fmt.Errorf("matrix %dx%d for mode %d of %v: %w",
			m.Rows(), m.Cols(), mode, dims, ErrDimensionMismatch))
	}
	cp := make([]int, len(dims))
	copy(cp, dims)

	return unfolding{mode: mode, dims: cp, m: m}, nil
}

// NewBackwardUnfolding wraps an externally computed matrix as the backward
// mode-`mode` unfolding of a tensor with extents dims (e.g. U·Λ·KRᵀ in CP).
// The matrix is not copied.
func NewBackwardUnfolding(m *matrix.Dense, mode int, dims []int) (*BackwardUnfolding, error) {
	u, err := newUnfolding("NewBackwardUnfolding", m, mode, dims)
	if err != nil {
		return nil, err
	}

	return &BackwardUnfolding{u}, nil
}

// NewForwardUnfolding is the forward-convention counterpart of NewBackwardUnfolding.
func NewForwardUnfolding(m *matrix.Dense, mode int, dims []int) (*ForwardUnfolding, error) {
	u, err := newUnfolding("NewForwardUnfolding", m, mode, dims)
	if err != nil {
		return nil, err
	}

	return &ForwardUnfolding{u}, nil
}

// unfoldBlock materializes the unfolding of b.
func unfoldBlock(tag string, b *block, mode int, c convention) (unfolding, error) {
	if !b.validMode(mode) {
		return unfolding{}, tensorErrorf(tag, fmt.Errorf("mode %d: %w", mode, ErrOutOfRange))
	}
	m, err := matrix.NewDense(b.dims[mode], product(b.dims, mode))
	if err != nil {
		return unfolding{}, tensorErrorf(tag, err)
	}
	b.unfold(mode, c, m.RawData())

	return unfolding{mode: mode, dims: b.Dims(), m: m}, nil
}

// refoldInto writes u back into dst under convention c.
func (u *unfolding) refoldInto(tag string, dst Storage, c convention) error {
	if isNilStorage(dst) {
		return tensorErrorf(tag, ErrNilTensor)
	}
	dims := dst.Dims()
	if !sameDims(dims, u.dims) {
		return tensorErrorf(tag, fmt.Errorf("target %v, unfolding of %v: %w", dims, u.dims, ErrDimensionMismatch))
	}
	b := block{dims: dims, data: dst.RawData()}
	b.refold(u.mode, c, u.m.RawData())

	return nil
}

// RefoldInto writes the unfolding back into dst, which must have the same
// extents as the tensor it was taken from.
func (u *BackwardUnfolding) RefoldInto(dst Storage) error {
	return u.refoldInto("BackwardUnfolding.RefoldInto", dst, backward)
}

// Refold3 rebuilds the Tensor3 this unfolding describes.
func (u *BackwardUnfolding) Refold3() (*Tensor3, error) {
	t, err := newTensor3FromDims("BackwardUnfolding.Refold3", u.dims)
	if err != nil {
		return nil, err
	}

	return t, u.RefoldInto(t)
}

// Refold4 rebuilds the Tensor4 this unfolding describes.
func (u *BackwardUnfolding) Refold4() (*Tensor4, error) {
	t, err := newTensor4FromDims("BackwardUnfolding.Refold4", u.dims)
	if err != nil {
		return nil, err
	}

	return t, u.RefoldInto(t)
}

// RefoldInto writes the unfolding back into dst under the forward convention.
func (u *ForwardUnfolding) RefoldInto(dst Storage) error {
	return u.refoldInto("ForwardUnfolding.RefoldInto", dst, forward)
}

// Refold3 rebuilds the Tensor3 this unfolding describes.
func (u *ForwardUnfolding) Refold3() (*Tensor3, error) {
	t, err := newTensor3FromDims("ForwardUnfolding.Refold3", u.dims)
	if err != nil {
		return nil, err
	}

	return t, u.RefoldInto(t)
}

// Refold4 rebuilds the Tensor4 this unfolding describes.
func (u *ForwardUnfolding) Refold4() (*Tensor4, error) {
	t, err := newTensor4FromDims("ForwardUnfolding.Refold4", u.dims)
	if err != nil {
		return nil, err
	}

	return t, u.RefoldInto(t)
}
