// SPDX-License-Identifier: MIT

// Package tensor - shared N-way storage behind Tensor3 and Tensor4.
//
// Purpose:
//   - Keep a single implementation of addressing, unfolding/refolding, TTM and
//     reductions; Tensor3 and Tensor4 embed block and add their fixed-order API.
//
// Layout:
//   - offset(i1,...,iN) = i1 + I1*(i2 + I2*(i3 + ...)), mode 1 fastest.
//
// Complexity quicksheet:
//   - offset: O(N); unfold/refold: O(len*N); TTM along mode k: O(len/I_k * J_k * I_k).

package tensor

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Mode names a zero-based tensor axis.
const (
	Mode1 = iota // rows, I1
	Mode2        // columns, I2
	Mode3        // tubes, I3
	Mode4        // blocks, I4 (Tensor4 only)
)

// convention selects the column ordering of an unfolding.
type convention int

const (
	backward convention = iota // lowest remaining mode fastest
	forward                    // highest remaining mode fastest
)

// block is the N-way dense storage shared by Tensor3 and Tensor4.
type block struct {
	dims []int     // extents, all > 0
	data []float64 // len == Π dims, mode 1 fastest
}

// newBlock allocates zeroed storage for the given extents.
func newBlock(dims []int) (block, error) {
	n := 1
	for _, d := range dims {
		if d <= 0 {
			return block{}, ErrInvalidDimensions
		}
		n *= d
	}
	cp := make([]int, len(dims))
	copy(cp, dims)

	return block{dims: cp, data: make([]float64, n)}, nil
}

// Order returns the number of modes.
func (b *block) Order() int { return len(b.dims) }

// Dims returns a copy of the extents.
func (b *block) Dims() []int {
	out := make([]int, len(b.dims))
	copy(out, b.dims)

	return out
}

// Len returns the number of elements.
func (b *block) Len() int { return len(b.data) }

// RawData returns the backing slice (mode 1 fastest). Writes mutate the tensor.
func (b *block) RawData() []float64 { return b.data }

// offset validates a full index and returns its linear offset.
func (b *block) offset(idx ...int) (int, error) {
	if len(idx) != len(b.dims) {
		return 0, ErrOutOfRange
	}
	off, stride := 0, 1
	for k, i := range idx {
		if i < 0 || i >= b.dims[k] {
			return 0, ErrOutOfRange
		}
		off += i * stride
		stride *= b.dims[k]
	}

	return off, nil
}

// validMode reports whether mode addresses one of the block's axes.
func (b *block) validMode(mode int) bool { return mode >= 0 && mode < len(b.dims) }

// sameDims reports whether two extent lists are identical.
func sameDims(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// product multiplies extents, skipping the mode `skip` (use -1 to keep all).
func product(dims []int, skip int) int {
	p := 1
	for k, d := range dims {
		if k != skip {
			p *= d
		}
	}

	return p
}

// columnStrides returns, per mode, the stride that mode contributes to the
// column index of the mode-`mode` unfolding under convention c. The unfolded
// mode itself gets stride 0.
func columnStrides(dims []int, mode int, c convention) []int {
	strides := make([]int, len(dims))
	s := 1
	if c == backward {
		for k := 0; k < len(dims); k++ {
			if k == mode {
				continue
			}
			strides[k] = s
			s *= dims[k]
		}

		return strides
	}
	for k := len(dims) - 1; k >= 0; k-- {
		if k == mode {
			continue
		}
		strides[k] = s
		s *= dims[k]
	}

	return strides
}

// advance increments a mode-1-fastest multi-index in place.
func advance(idx, dims []int) {
	for k := range idx {
		idx[k]++
		if idx[k] < dims[k] {
			return
		}
		idx[k] = 0
	}
}

// unfold writes the mode-`mode` matricization into out (row-major,
// dims[mode] rows, product(dims, mode) columns).
func (b *block) unfold(mode int, c convention, out []float64) {
	cols := product(b.dims, mode)
	strides := columnStrides(b.dims, mode, c)
	idx := make([]int, len(b.dims))
	var col, k int
	for _, v := range b.data {
		col = 0
		for k = range strides {
			col += idx[k] * strides[k]
		}
		out[idx[mode]*cols+col] = v
		advance(idx, b.dims)
	}
}

// refold is the exact inverse of unfold for the same mode and convention.
func (b *block) refold(mode int, c convention, in []float64) {
	cols := product(b.dims, mode)
	strides := columnStrides(b.dims, mode, c)
	idx := make([]int, len(b.dims))
	var col, k int
	for off := range b.data {
		col = 0
		for k = range strides {
			col += idx[k] * strides[k]
		}
		b.data[off] = in[idx[mode]*cols+col]
		advance(idx, b.dims)
	}
}

// multiplyMode computes Y = X ×_mode M for M of shape J×I_mode.
// Implementation: the tensor is viewed as `right` slabs of shape left×I_mode
// (left = Π dims[<mode], right = Π dims[>mode]); each slab is multiplied by Mᵀ
// with one scaled-add per (j, i) pair.
func (b *block) multiplyMode(mode int, m []float64, J int) block {
	I := b.dims[mode]
	left, right := 1, 1
	for k := 0; k < mode; k++ {
		left *= b.dims[k]
	}
	for k := mode + 1; k < len(b.dims); k++ {
		right *= b.dims[k]
	}
	outDims := make([]int, len(b.dims))
	copy(outDims, b.dims)
	outDims[mode] = J
	out := block{dims: outDims, data: make([]float64, left*J*right)}

	var r, j, i int
	var mji float64
	for r = 0; r < right; r++ {
		for j = 0; j < J; j++ {
			dst := out.data[left*(j+J*r) : left*(j+J*r+1)]
			for i = 0; i < I; i++ {
				mji = m[j*I+i]
				if mji == 0 {
					continue
				}
				floats.AddScaled(dst, mji, b.data[left*(i+I*r):left*(i+I*r+1)])
			}
		}
	}

	return out
}

// multiplyModeFibers is the fiber-wise reference for multiplyMode: every
// mode-`mode` fiber is extracted, left-multiplied by M and written back.
func (b *block) multiplyModeFibers(mode int, m []float64, J int) block {
	I := b.dims[mode]
	outDims := make([]int, len(b.dims))
	copy(outDims, b.dims)
	outDims[mode] = J
	out := block{dims: outDims, data: make([]float64, product(outDims, -1))}

	left := 1
	for k := 0; k < mode; k++ {
		left *= b.dims[k]
	}
	right := product(b.dims, -1) / (left * I)
	fiber := make([]float64, I)
	var l, r, i, j int
	var acc float64
	for r = 0; r < right; r++ {
		for l = 0; l < left; l++ {
			for i = 0; i < I; i++ {
				fiber[i] = b.data[l+left*(i+I*r)]
			}
			for j = 0; j < J; j++ {
				acc = 0
				for i = 0; i < I; i++ {
					if m[j*I+i] == 0 {
						continue
					}
					acc += m[j*I+i] * fiber[i]
				}
				out.data[l+left*(j+J*r)] = acc
			}
		}
	}

	return out
}

// clone deep-copies the storage.
func (b *block) clone() block {
	dims := make([]int, len(b.dims))
	copy(dims, b.dims)
	data := make([]float64, len(b.data))
	copy(data, b.data)

	return block{dims: dims, data: data}
}

// FrobeniusNorm returns sqrt(Σ x²) over all elements.
func (b *block) FrobeniusNorm() float64 { return floats.Norm(b.data, 2) }

// Min returns the smallest element.
func (b *block) Min() float64 { return floats.Min(b.data) }

// Max returns the largest element.
func (b *block) Max() float64 { return floats.Max(b.data) }

// NNZ counts elements with |x| > threshold. Use 0 for the exact non-zero count.
func (b *block) NNZ(threshold float64) int {
	n := 0
	for _, v := range b.data {
		if math.Abs(v) > threshold {
			n++
		}
	}

	return n
}

// Fill sets every element to v.
func (b *block) Fill(v float64) {
	for i := range b.data {
		b.data[i] = v
	}
}

// Zero sets every element to 0.
func (b *block) Zero() { b.Fill(0) }

// rmse returns sqrt(mean((a-b)²)) for equal extents.
func rmse(a, b *block) (float64, error) {
	if !sameDims(a.dims, b.dims) {
		return 0, ErrDimensionMismatch
	}
	d := floats.Distance(a.data, b.data, 2)

	return d / math.Sqrt(float64(len(a.data))), nil
}

// allClose reports |a-b| ≤ atol + rtol*|b| element-wise for equal extents.
func allClose(a, b *block, rtol, atol float64) (bool, error) {
	if !sameDims(a.dims, b.dims) {
		return false, ErrDimensionMismatch
	}
	for i := range a.data {
		if math.Abs(a.data[i]-b.data[i]) > atol+rtol*math.Abs(b.data[i]) {
			return false, nil
		}
	}

	return true, nil
}

// sub returns a - b for equal extents.
func sub(a, b *block) (block, error) {
	if !sameDims(a.dims, b.dims) {
		return block{}, ErrDimensionMismatch
	}
	out := a.clone()
	floats.Sub(out.data, b.data)

	return out, nil
}

// valueOrder calls fn with the linear offsets of all elements in "value order":
// frontal slices (mode 3, then mode 4) in sequence, each read row by row
// (mode 2 fastest, then mode 1). SetValues, Values and FillIncreasing use it.
func valueOrder(dims []int, fn func(off int)) {
	I1, I2 := dims[0], dims[1]
	sliceLen := I1 * I2
	slices := product(dims, -1) / sliceLen
	var s, i1, i2 int
	for s = 0; s < slices; s++ {
		for i1 = 0; i1 < I1; i1++ {
			for i2 = 0; i2 < I2; i2++ {
				fn(s*sliceLen + i1 + I1*i2)
			}
		}
	}
}

// setValues consumes values in value order; the length must match exactly.
func (b *block) setValues(values []float64) error {
	if len(values) != len(b.data) {
		return fmt.Errorf("%d values for %d elements: %w", len(values), len(b.data), ErrLengthMismatch)
	}
	k := 0
	valueOrder(b.dims, func(off int) {
		b.data[off] = values[k]
		k++
	})

	return nil
}

// values returns the elements in value order.
func (b *block) values() []float64 {
	out := make([]float64, 0, len(b.data))
	valueOrder(b.dims, func(off int) { out = append(out, b.data[off]) })

	return out
}
