// SPDX-License-Identifier: MIT

// Package tensor - slice extraction and insertion for Tensor3.
//
// Fixing one index of a Tensor3 leaves a matrix over the two other modes. The
// forward orientation takes them in cyclic order after the fixed mode:
//
//	Horizontal(i1): I2×I3   (rows i2, cols i3)
//	Lateral(i2):    I3×I1   (rows i3, cols i1)
//	Frontal(i3):    I1×I2   (rows i1, cols i2)
//
// The backward orientation is the transpose of the forward one. Get followed by
// Set with the same orientation is a lossless round trip.

package tensor

import (
	"fmt"

	"github.com/katalvlaran/lvtensor/matrix"
)

// Orientation selects the forward (cyclic) or backward (transposed) layout of a slice.
type Orientation int

const (
	// Forward takes the remaining modes in cyclic order after the fixed one.
	Forward Orientation = iota
	// Backward is the transpose of Forward.
	Backward
)

// String returns the orientation name.
func (o Orientation) String() string {
	switch o {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	default:
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
}

// sliceAxes returns the (row, col) modes of the slice that fixes mode.
func sliceAxes(mode int, o Orientation) (int, int) {
	r, c := (mode+1)%3, (mode+2)%3
	if o == Backward {
		return c, r
	}

	return r, c
}

// checkSlice validates the fixed mode index and the orientation.
func (t *Tensor3) checkSlice(tag string, mode, idx int, o Orientation) error {
	if idx < 0 || idx >= t.dims[mode] {
		return tensorErrorf(tag, fmt.Errorf("index %d of extent %d: %w", idx, t.dims[mode], ErrOutOfRange))
	}
	if o != Forward && o != Backward {
		return tensorErrorf(tag, fmt.Errorf("%v: %w", o, ErrOutOfRange))
	}

	return nil
}

// slice copies the slice fixing mode at idx.
func (t *Tensor3) slice(tag string, mode, idx int, o Orientation) (*matrix.Dense, error) {
	if err := t.checkSlice(tag, mode, idx, o); err != nil {
		return nil, err
	}
	r, c := sliceAxes(mode, o)
	out, err := matrix.NewDense(t.dims[r], t.dims[c])
	if err != nil {
		return nil, tensorErrorf(tag, err)
	}
	dst := out.RawData()
	cols := t.dims[c]
	var at [3]int
	at[mode] = idx
	var a, b int
	for a = 0; a < t.dims[r]; a++ {
		at[r] = a
		for b = 0; b < cols; b++ {
			at[c] = b
			dst[a*cols+b] = t.data[at[0]+t.dims[0]*(at[1]+t.dims[1]*at[2])]
		}
	}

	return out, nil
}

// setSlice writes src into the slice fixing mode at idx.
func (t *Tensor3) setSlice(tag string, mode, idx int, o Orientation, src *matrix.Dense) error {
	if src == nil {
		return tensorErrorf(tag, ErrNilTensor)
	}
	if err := t.checkSlice(tag, mode, idx, o); err != nil {
		return err
	}
	r, c := sliceAxes(mode, o)
	if src.Rows() != t.dims[r] || src.Cols() != t.dims[c] {
		return tensorErrorf(tag, fmt.Errorf("matrix %dx%d for %s slice %dx%d: %w",
			src.Rows(), src.Cols(), o, t.dims[r], t.dims[c], ErrDimensionMismatch))
	}
	in := src.RawData()
	cols := t.dims[c]
	var at [3]int
	at[mode] = idx
	var a, b int
	for a = 0; a < t.dims[r]; a++ {
		at[r] = a
		for b = 0; b < cols; b++ {
			at[c] = b
			t.data[at[0]+t.dims[0]*(at[1]+t.dims[1]*at[2])] = in[a*cols+b]
		}
	}

	return nil
}

// HorizontalSlice copies the slice with i1 fixed (I2×I3 forward).
func (t *Tensor3) HorizontalSlice(i1 int, o Orientation) (*matrix.Dense, error) {
	return t.slice("Tensor3.HorizontalSlice", Mode1, i1, o)
}

// LateralSlice copies the slice with i2 fixed (I3×I1 forward).
func (t *Tensor3) LateralSlice(i2 int, o Orientation) (*matrix.Dense, error) {
	return t.slice("Tensor3.LateralSlice", Mode2, i2, o)
}

// FrontalSlice copies the slice with i3 fixed (I1×I2 forward).
func (t *Tensor3) FrontalSlice(i3 int, o Orientation) (*matrix.Dense, error) {
	return t.slice("Tensor3.FrontalSlice", Mode3, i3, o)
}

// SetHorizontalSlice overwrites the slice with i1 fixed.
func (t *Tensor3) SetHorizontalSlice(i1 int, o Orientation, m *matrix.Dense) error {
	return t.setSlice("Tensor3.SetHorizontalSlice", Mode1, i1, o, m)
}

// SetLateralSlice overwrites the slice with i2 fixed.
func (t *Tensor3) SetLateralSlice(i2 int, o Orientation, m *matrix.Dense) error {
	return t.setSlice("Tensor3.SetLateralSlice", Mode2, i2, o, m)
}

// SetFrontalSlice overwrites the slice with i3 fixed.
func (t *Tensor3) SetFrontalSlice(i3 int, o Orientation, m *matrix.Dense) error {
	return t.setSlice("Tensor3.SetFrontalSlice", Mode3, i3, o, m)
}
