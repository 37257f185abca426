// SPDX-License-Identifier: MIT

// Package tensor - Tensor3, the dense 3-way array.
//
// Purpose:
//   - Fixed extents I1×I2×I3 chosen at construction, float64 elements.
//   - Checked addressing: At/Set return ErrOutOfRange, never panic.
//   - Exclusive ownership: constructors copy their input; Clone deep-copies.
//
// Complexity quicksheet:
//   - At/Set: O(1); Unfold/Refold: O(n); MultiplyMode: O(n*J); Clone: O(n).

package tensor

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/katalvlaran/lvtensor/matrix"
)

// Tensor3 is a dense I1×I2×I3 tensor stored with mode 1 fastest, so every
// frontal slice is a contiguous column-major I1×I2 block.
type Tensor3 struct {
	block
}

// New3 allocates a zero I1×I2×I3 tensor.
//
// Errors:
//   - ErrInvalidDimensions when any extent is ≤ 0.
func New3(i1, i2, i3 int) (*Tensor3, error) {
	return newTensor3FromDims("New3", []int{i1, i2, i3})
}

// New3From allocates an I1×I2×I3 tensor and fills it from values in value
// order: frontal slices in sequence, each read row by row.
//
// Errors:
//   - ErrInvalidDimensions for non-positive extents.
//   - ErrLengthMismatch unless len(values) == I1*I2*I3.
func New3From(i1, i2, i3 int, values []float64) (*Tensor3, error) {
	t, err := newTensor3FromDims("New3From", []int{i1, i2, i3})
	if err != nil {
		return nil, err
	}
	if err = t.setValues(values); err != nil {
		return nil, tensorErrorf("New3From", err)
	}

	return t, nil
}

// newTensor3FromDims validates a 3-entry extent list and allocates.
func newTensor3FromDims(tag string, dims []int) (*Tensor3, error) {
	if len(dims) != 3 {
		return nil, tensorErrorf(tag, fmt.Errorf("%d extents for Tensor3: %w", len(dims), ErrInvalidDimensions))
	}
	b, err := newBlock(dims)
	if err != nil {
		return nil, tensorErrorf(tag, fmt.Errorf("%v: %w", dims, err))
	}

	return &Tensor3{block: b}, nil
}

// Shape returns (I1, I2, I3).
func (t *Tensor3) Shape() (i1, i2, i3 int) { return t.dims[0], t.dims[1], t.dims[2] }

// At returns the element at (i1, i2, i3).
func (t *Tensor3) At(i1, i2, i3 int) (float64, error) {
	off, err := t.offset(i1, i2, i3)
	if err != nil {
		return 0, tensorErrorf(fmt.Sprintf("Tensor3.At(%d,%d,%d) of %v", i1, i2, i3, t.dims), err)
	}

	return t.data[off], nil
}

// Set stores v at (i1, i2, i3).
func (t *Tensor3) Set(i1, i2, i3 int, v float64) error {
	off, err := t.offset(i1, i2, i3)
	if err != nil {
		return tensorErrorf(fmt.Sprintf("Tensor3.Set(%d,%d,%d) of %v", i1, i2, i3, t.dims), err)
	}
	t.data[off] = v

	return nil
}

// SetValues overwrites every element from values in value order.
// The length must equal Len(); nothing is written otherwise.
func (t *Tensor3) SetValues(values []float64) error {
	if err := t.setValues(values); err != nil {
		return tensorErrorf("Tensor3.SetValues", err)
	}

	return nil
}

// Values returns a copy of the elements in value order (the inverse of SetValues).
func (t *Tensor3) Values() []float64 { return t.values() }

// FillIncreasing writes 0, 1, 2, ... in value order.
func (t *Tensor3) FillIncreasing() { fillIncreasing(&t.block) }

// FillRandom writes uniform samples from [0, 1). A nil rng uses NewRand(0).
func (t *Tensor3) FillRandom(rng *rand.Rand) { fillRandom(&t.block, rng, false) }

// FillRandomSigned writes uniform samples from [-1, 1). A nil rng uses NewRand(0).
func (t *Tensor3) FillRandomSigned(rng *rand.Rand) { fillRandom(&t.block, rng, true) }

// Clone returns a deep copy.
func (t *Tensor3) Clone() *Tensor3 { return &Tensor3{block: t.clone()} }

// Blank allocates a zero Tensor3 with the given extents.
func (t *Tensor3) Blank(dims ...int) (*Tensor3, error) {
	return newTensor3FromDims("Tensor3.Blank", dims)
}

// Sub returns t - other.
func (t *Tensor3) Sub(other *Tensor3) (*Tensor3, error) {
	if other == nil {
		return nil, tensorErrorf("Tensor3.Sub", ErrNilTensor)
	}
	b, err := sub(&t.block, &other.block)
	if err != nil {
		return nil, tensorErrorf("Tensor3.Sub", err)
	}

	return &Tensor3{block: b}, nil
}

// Equal reports exact element-wise equality with equal extents.
func (t *Tensor3) Equal(other *Tensor3) bool {
	if other == nil {
		return false
	}
	ok, err := allClose(&t.block, &other.block, 0, 0)

	return err == nil && ok
}

// AllClose reports |t-other| ≤ atol + rtol*|other| element-wise.
func (t *Tensor3) AllClose(other *Tensor3, rtol, atol float64) (bool, error) {
	if other == nil {
		return false, tensorErrorf("Tensor3.AllClose", ErrNilTensor)
	}
	ok, err := allClose(&t.block, &other.block, rtol, atol)
	if err != nil {
		return false, tensorErrorf("Tensor3.AllClose", err)
	}

	return ok, nil
}

// RMSE returns the root-mean-square difference to other.
func (t *Tensor3) RMSE(other *Tensor3) (float64, error) {
	if other == nil {
		return 0, tensorErrorf("Tensor3.RMSE", ErrNilTensor)
	}
	v, err := rmse(&t.block, &other.block)
	if err != nil {
		return 0, tensorErrorf("Tensor3.RMSE", err)
	}

	return v, nil
}

// Unfold returns the backward mode-`mode` unfolding (I_mode × product of the
// other extents). Mode-1 column index is i2 + I2*i3.
func (t *Tensor3) Unfold(mode int) (*BackwardUnfolding, error) {
	u, err := unfoldBlock("Tensor3.Unfold", &t.block, mode, backward)
	if err != nil {
		return nil, err
	}

	return &BackwardUnfolding{u}, nil
}

// UnfoldForward returns the forward mode-`mode` unfolding.
// Mode-1 column index is i2*I3 + i3.
func (t *Tensor3) UnfoldForward(mode int) (*ForwardUnfolding, error) {
	u, err := unfoldBlock("Tensor3.UnfoldForward", &t.block, mode, forward)
	if err != nil {
		return nil, err
	}

	return &ForwardUnfolding{u}, nil
}

// HorizontalUnfolding is Unfold(Mode1): horizontal slices side by side.
func (t *Tensor3) HorizontalUnfolding() (*BackwardUnfolding, error) { return t.Unfold(Mode1) }

// LateralUnfolding is Unfold(Mode2): lateral slices side by side.
func (t *Tensor3) LateralUnfolding() (*BackwardUnfolding, error) { return t.Unfold(Mode2) }

// FrontalUnfolding is Unfold(Mode3): frontal slices stacked as rows.
func (t *Tensor3) FrontalUnfolding() (*BackwardUnfolding, error) { return t.Unfold(Mode3) }

// MultiplyMode returns t ×_mode m for m of shape J × I_mode. The result has
// extent J along mode and the receiver's extents elsewhere.
//
// Errors:
//   - ErrOutOfRange for an invalid mode; ErrNilTensor for nil m.
//   - ErrDimensionMismatch when m.Cols() != I_mode.
func (t *Tensor3) MultiplyMode(mode int, m *matrix.Dense) (*Tensor3, error) {
	b, err := multiplyModeChecked("Tensor3.MultiplyMode", &t.block, mode, m)
	if err != nil {
		return nil, err
	}

	return &Tensor3{block: b}, nil
}

// String prints frontal slices as I1×I2 matrices separated by blank lines.
func (t *Tensor3) String() string {
	var sb strings.Builder
	I1, I2, I3 := t.Shape()
	var i1, i2, i3 int
	for i3 = 0; i3 < I3; i3++ {
		if i3 > 0 {
			sb.WriteString("\n")
		}
		for i1 = 0; i1 < I1; i1++ {
			sb.WriteString("[")
			for i2 = 0; i2 < I2; i2++ {
				if i2 > 0 {
					sb.WriteString(", ")
				}
				fmt.Fprintf(&sb, "%g", t.data[i1+I1*(i2+I2*i3)])
			}
			sb.WriteString("]\n")
		}
	}

	return sb.String()
}

// multiplyModeChecked validates (mode, m) against b and runs the slab kernel.
func multiplyModeChecked(tag string, b *block, mode int, m *matrix.Dense) (block, error) {
	if m == nil {
		return block{}, tensorErrorf(tag, ErrNilTensor)
	}
	if !b.validMode(mode) {
		return block{}, tensorErrorf(tag, fmt.Errorf("mode %d: %w", mode, ErrOutOfRange))
	}
	if m.Cols() != b.dims[mode] {
		return block{}, tensorErrorf(tag, fmt.Errorf("matrix %dx%d against extent %d of mode %d: %w",
			m.Rows(), m.Cols(), b.dims[mode], mode, ErrDimensionMismatch))
	}

	return b.multiplyMode(mode, m.RawData(), m.Rows()), nil
}

// fillIncreasing writes 0, 1, 2, ... in value order.
func fillIncreasing(b *block) {
	v := 0.0
	valueOrder(b.dims, func(off int) {
		b.data[off] = v
		v++
	})
}

// fillRandom writes uniform samples in storage order.
func fillRandom(b *block, rng *rand.Rand, signed bool) {
	if rng == nil {
		rng = NewRand(0)
	}
	for i := range b.data {
		if signed {
			b.data[i] = 2*rng.Float64() - 1
		} else {
			b.data[i] = rng.Float64()
		}
	}
}
