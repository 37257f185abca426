// SPDX-License-Identifier: MIT

package tensor

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lvtensor/matrix"
)

// Tensor4 is a dense I1×I2×I3×I4 tensor: I4 contiguous Tensor3-shaped blocks
// along mode 4, each stored like a Tensor3.
type Tensor4 struct {
	block
}

// New4 allocates a zero I1×I2×I3×I4 tensor.
func New4(i1, i2, i3, i4 int) (*Tensor4, error) {
	return newTensor4FromDims("New4", []int{i1, i2, i3, i4})
}

// New4From allocates a tensor filled from values in value order: the frontal
// slices of block 0, then of block 1, and so on, each read row by row.
func New4From(i1, i2, i3, i4 int, values []float64) (*Tensor4, error) {
	t, err := newTensor4FromDims("New4From", []int{i1, i2, i3, i4})
	if err != nil {
		return nil, err
	}
	if err = t.setValues(values); err != nil {
		return nil, tensorErrorf("New4From", err)
	}

	return t, nil
}

func newTensor4FromDims(tag string, dims []int) (*Tensor4, error) {
	if len(dims) != 4 {
		return nil, tensorErrorf(tag, fmt.Errorf("%d extents for Tensor4: %w", len(dims), ErrInvalidDimensions))
	}
	b, err := newBlock(dims)
	if err != nil {
		return nil, tensorErrorf(tag, fmt.Errorf("%v: %w", dims, err))
	}

	return &Tensor4{block: b}, nil
}

// Shape returns (I1, I2, I3, I4).
func (t *Tensor4) Shape() (i1, i2, i3, i4 int) { return t.dims[0], t.dims[1], t.dims[2], t.dims[3] }

// At returns the element at (i1, i2, i3, i4).
func (t *Tensor4) At(i1, i2, i3, i4 int) (float64, error) {
	off, err := t.offset(i1, i2, i3, i4)
	if err != nil {
		return 0, tensorErrorf(fmt.Sprintf("Tensor4.At(%d,%d,%d,%d) of %v", i1, i2, i3, i4, t.dims), err)
	}

	return t.data[off], nil
}

// Set stores v at (i1, i2, i3, i4).
func (t *Tensor4) Set(i1, i2, i3, i4 int, v float64) error {
	off, err := t.offset(i1, i2, i3, i4)
	if err != nil {
		return tensorErrorf(fmt.Sprintf("Tensor4.Set(%d,%d,%d,%d) of %v", i1, i2, i3, i4, t.dims), err)
	}
	t.data[off] = v

	return nil
}

// Block copies the Tensor3 at mode-4 index i4.
func (t *Tensor4) Block(i4 int) (*Tensor3, error) {
	if i4 < 0 || i4 >= t.dims[3] {
		return nil, tensorErrorf(fmt.Sprintf("Tensor4.Block(%d)", i4), ErrOutOfRange)
	}
	out, err := newTensor3FromDims("Tensor4.Block", t.dims[:3])
	if err != nil {
		return nil, err
	}
	n := out.Len()
	copy(out.data, t.data[i4*n:(i4+1)*n])

	return out, nil
}

// SetBlock overwrites the block at mode-4 index i4 with src.
func (t *Tensor4) SetBlock(i4 int, src *Tensor3) error {
	tag := fmt.Sprintf("Tensor4.SetBlock(%d)", i4)
	if src == nil {
		return tensorErrorf(tag, ErrNilTensor)
	}
	if i4 < 0 || i4 >= t.dims[3] {
		return tensorErrorf(tag, ErrOutOfRange)
	}
	if !sameDims(src.dims, t.dims[:3]) {
		return tensorErrorf(tag, fmt.Errorf("block %v into %v: %w", src.dims, t.dims, ErrDimensionMismatch))
	}
	n := src.Len()
	copy(t.data[i4*n:(i4+1)*n], src.data)

	return nil
}

// SetValues overwrites every element from values in value order.
func (t *Tensor4) SetValues(values []float64) error {
	if err := t.setValues(values); err != nil {
		return tensorErrorf("Tensor4.SetValues", err)
	}

	return nil
}

// Values returns a copy of the elements in value order.
func (t *Tensor4) Values() []float64 { return t.values() }

// FillIncreasing writes 0, 1, 2, ... in value order.
func (t *Tensor4) FillIncreasing() { fillIncreasing(&t.block) }

// FillRandom writes uniform samples from [0, 1).
func (t *Tensor4) FillRandom(rng *rand.Rand) { fillRandom(&t.block, rng, false) }

// FillRandomSigned writes uniform samples from [-1, 1).
func (t *Tensor4) FillRandomSigned(rng *rand.Rand) { fillRandom(&t.block, rng, true) }

// Clone returns a deep copy.
func (t *Tensor4) Clone() *Tensor4 { return &Tensor4{block: t.clone()} }

// Blank allocates a zero Tensor4 with the given extents.
func (t *Tensor4) Blank(dims ...int) (*Tensor4, error) {
	return newTensor4FromDims("Tensor4.Blank", dims)
}

// Sub returns t - other.
func (t *Tensor4) Sub(other *Tensor4) (*Tensor4, error) {
	if other == nil {
		return nil, tensorErrorf("Tensor4.Sub", ErrNilTensor)
	}
	b, err := sub(&t.block, &other.block)
	if err != nil {
		return nil, tensorErrorf("Tensor4.Sub", err)
	}

	return &Tensor4{block: b}, nil
}

// Equal reports exact element-wise equality with equal extents.
func (t *Tensor4) Equal(other *Tensor4) bool {
	if other == nil {
		return false
	}
	ok, err := allClose(&t.block, &other.block, 0, 0)

	return err == nil && ok
}

// AllClose reports |t-other| ≤ atol + rtol*|other| element-wise.
func (t *Tensor4) AllClose(other *Tensor4, rtol, atol float64) (bool, error) {
	if other == nil {
		return false, tensorErrorf("Tensor4.AllClose", ErrNilTensor)
	}
	ok, err := allClose(&t.block, &other.block, rtol, atol)
	if err != nil {
		return false, tensorErrorf("Tensor4.AllClose", err)
	}

	return ok, nil
}

// RMSE returns the root-mean-square difference to other.
func (t *Tensor4) RMSE(other *Tensor4) (float64, error) {
	if other == nil {
		return 0, tensorErrorf("Tensor4.RMSE", ErrNilTensor)
	}
	v, err := rmse(&t.block, &other.block)
	if err != nil {
		return 0, tensorErrorf("Tensor4.RMSE", err)
	}

	return v, nil
}

// Unfold returns the backward mode-`mode` unfolding. Mode-1 column index is
// i2 + I2*(i3 + I3*i4).
func (t *Tensor4) Unfold(mode int) (*BackwardUnfolding, error) {
	u, err := unfoldBlock("Tensor4.Unfold", &t.block, mode, backward)
	if err != nil {
		return nil, err
	}

	return &BackwardUnfolding{u}, nil
}

// UnfoldForward returns the forward mode-`mode` unfolding. Mode-1 column index
// is (i2*I3 + i3)*I4 + i4.
func (t *Tensor4) UnfoldForward(mode int) (*ForwardUnfolding, error) {
	u, err := unfoldBlock("Tensor4.UnfoldForward", &t.block, mode, forward)
	if err != nil {
		return nil, err
	}

	return &ForwardUnfolding{u}, nil
}

// MultiplyMode returns t ×_mode m for m of shape J × I_mode.
func (t *Tensor4) MultiplyMode(mode int, m *matrix.Dense) (*Tensor4, error) {
	b, err := multiplyModeChecked("Tensor4.MultiplyMode", &t.block, mode, m)
	if err != nil {
		return nil, err
	}

	return &Tensor4{block: b}, nil
}
