// SPDX-License-Identifier: MIT

package tucker

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lvtensor/matrix"
	"github.com/katalvlaran/lvtensor/tensor"
)

// Quantized model layout (little endian, no header):
//
//	for each basis k:  min_k, max_k          float32, float32
//	core:              min_c, max_c          float32, float32
//	for each basis k:  I_k·R_k levels of Q    column-major
//	core:              Π R_k levels of Q      mode 1 fastest
//
// Bases are quantized linearly over their own range; the core uses the
// QuantizeOptions given to Export (e.g. tensor.WithLogScale), which Import must
// repeat. Q must be a fixed-width integer type (int8 … uint64).

// float32Range widens [lo, hi] to float32 bounds that still contain it.
func float32Range(lo, hi float64) (float32, float32) {
	l, h := float32(lo), float32(hi)
	if float64(l) > lo {
		l = math.Nextafter32(l, float32(math.Inf(-1)))
	}
	if float64(h) < hi {
		h = math.Nextafter32(h, float32(math.Inf(1)))
	}
	if !(l < h) {
		h = math.Nextafter32(l, float32(math.Inf(1)))
	}

	return l, h
}

// payloadBounds returns the smallest and largest element of a payload.
func payloadBounds(data []float64) (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range data {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}

	return lo, hi
}

// columnMajor returns the elements of u column by column.
func columnMajor(u *matrix.Dense) []float64 {
	r, c := u.Shape()
	src := u.RawData()
	out := make([]float64, 0, r*c)
	for j := 0; j < c; j++ {
		for i := 0; i < r; i++ {
			out = append(out, src[i*c+j])
		}
	}

	return out
}

// Export writes m in the quantized layout above.
func Export[Q constraints.Integer, T tensor.Tensor[T]](w io.Writer, m *Model[T], coreOpts ...tensor.QuantizeOption) error {
	const tag = "Export"
	n := len(m.Bases)
	ranges := make([]float32, 0, 2*(n+1))
	payloads := make([][]float64, 0, n+1)
	for _, u := range m.Bases {
		payloads = append(payloads, columnMajor(u))
	}
	payloads = append(payloads, m.Core.RawData())
	for _, p := range payloads {
		l, h := float32Range(payloadBounds(p))
		ranges = append(ranges, l, h)
	}
	if err := binary.Write(w, binary.LittleEndian, ranges); err != nil {
		return tuckerErrorf(tag, err)
	}

	for i, p := range payloads {
		var opts []tensor.QuantizeOption
		if i == n {
			opts = coreOpts
		}
		q, err := tensor.NewQuantizer[Q](float64(ranges[2*i]), float64(ranges[2*i+1]), opts...)
		if err != nil {
			return tuckerErrorf(tag, err)
		}
		levels := make([]Q, len(p))
		if err = q.QuantizeSlice(levels, p); err != nil {
			return tuckerErrorf(tag, err)
		}
		if err = binary.Write(w, binary.LittleEndian, levels); err != nil {
			return tuckerErrorf(tag, err)
		}
	}

	return nil
}

// Import reads a model written by Export for a tensor of extents dims at the
// given ranks. like only selects the tensor type (its Blank is used).
func Import[Q constraints.Integer, T tensor.Tensor[T]](r io.Reader, like T, dims, ranks []int, coreOpts ...tensor.QuantizeOption) (*Model[T], error) {
	const tag = "Import"
	if len(dims) != len(ranks) {
		return nil, tuckerErrorf(tag, ErrShapeMismatch)
	}
	n := len(dims)
	ranges := make([]float32, 2*(n+1))
	if err := binary.Read(r, binary.LittleEndian, ranges); err != nil {
		return nil, tuckerErrorf(tag, err)
	}

	read := func(i, count int, opts ...tensor.QuantizeOption) ([]float64, error) {
		q, err := tensor.NewQuantizer[Q](float64(ranges[2*i]), float64(ranges[2*i+1]), opts...)
		if err != nil {
			return nil, err
		}
		levels := make([]Q, count)
		if err = binary.Read(r, binary.LittleEndian, levels); err != nil {
			return nil, err
		}
		out := make([]float64, count)

		return out, q.DequantizeSlice(out, levels)
	}

	bases := make([]*matrix.Dense, n)
	for k := 0; k < n; k++ {
		vals, err := read(k, dims[k]*ranks[k])
		if err != nil {
			return nil, tuckerErrorf(tag, fmt.Errorf("basis %d: %w", k, err))
		}
		u, err := matrix.NewDense(dims[k], ranks[k])
		if err != nil {
			return nil, tuckerErrorf(tag, err)
		}
		dst := u.RawData()
		for j := 0; j < ranks[k]; j++ {
			for i := 0; i < dims[k]; i++ {
				dst[i*ranks[k]+j] = vals[j*dims[k]+i]
			}
		}
		bases[k] = u
	}

	core, err := like.Blank(ranks...)
	if err != nil {
		return nil, tuckerErrorf(tag, err)
	}
	vals, err := read(n, core.Len(), coreOpts...)
	if err != nil {
		return nil, tuckerErrorf(tag, fmt.Errorf("core: %w", err))
	}
	copy(core.RawData(), vals)

	return NewModel(core, bases)
}
