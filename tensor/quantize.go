// SPDX-License-Identifier: MIT

// Package tensor - lossy quantization into integer element types.
//
// A Quantizer maps the closed float range [min, max] onto the full range of an
// integer type Q. Values outside [min, max] clamp to the nearest bound; results
// never wrap. With WithLogScale the map is linear in f(x) = sign(x)*log(1+|x|)
// instead of x, which spends resolution near zero.
//
// The integer bounds of Q are derived from Q itself and all arithmetic is
// carried out in float64, so 64-bit targets do not overflow.
//
// Round trip (linear): |Dequantize(Quantize(x)) - clamp(x)| ≤ Step()/2.

package tensor

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// QuantizeOption configures a Quantizer.
type QuantizeOption func(*quantizeOptions)

type quantizeOptions struct {
	log bool
}

// WithLogScale selects the logarithmic-magnitude mapping.
func WithLogScale() QuantizeOption {
	return func(o *quantizeOptions) { o.log = true }
}

// Quantizer converts between float64 and Q over a fixed range.
// It is immutable and safe for concurrent use.
type Quantizer[Q constraints.Integer] struct {
	min, max   float64 // user range
	fmin, fmax float64 // range in mapped space
	qmin, qmax Q
	log        bool
}

// integerBounds returns the smallest and largest values of Q.
func integerBounds[Q constraints.Integer]() (lo, hi Q) {
	var zero Q
	if ^zero > zero {
		return zero, ^zero // unsigned: all bits set
	}
	hi = 1
	for hi<<1 > 0 {
		hi <<= 1
	}
	hi |= hi - 1

	return -hi - 1, hi
}

// logMap is sign(x)*log1p(|x|).
func logMap(x float64) float64 {
	if x < 0 {
		return -math.Log1p(-x)
	}

	return math.Log1p(x)
}

// logUnmap inverts logMap.
func logUnmap(v float64) float64 {
	if v < 0 {
		return -math.Expm1(-v)
	}

	return math.Expm1(v)
}

// NewQuantizer builds a Quantizer for [min, max].
//
// Errors:
//   - ErrInvalidRange when min >= max or either bound is NaN/±Inf.
func NewQuantizer[Q constraints.Integer](min, max float64, opts ...QuantizeOption) (*Quantizer[Q], error) {
	if math.IsNaN(min) || math.IsNaN(max) || math.IsInf(min, 0) || math.IsInf(max, 0) || min >= max {
		return nil, tensorErrorf("NewQuantizer", fmt.Errorf("[%g, %g]: %w", min, max, ErrInvalidRange))
	}
	var o quantizeOptions
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	q := &Quantizer[Q]{min: min, max: max, fmin: min, fmax: max, log: o.log}
	if o.log {
		q.fmin, q.fmax = logMap(min), logMap(max)
	}
	q.qmin, q.qmax = integerBounds[Q]()

	return q, nil
}

// Range returns the configured [min, max].
func (q *Quantizer[Q]) Range() (min, max float64) { return q.min, q.max }

// LogScale reports whether the logarithmic mapping is active.
func (q *Quantizer[Q]) LogScale() bool { return q.log }

// levels returns qmax - qmin as float64.
func (q *Quantizer[Q]) levels() float64 { return float64(q.qmax) - float64(q.qmin) }

// Step returns the width of one quantization level in the mapped space
// (in value units for the linear mapping).
func (q *Quantizer[Q]) Step() float64 { return (q.fmax - q.fmin) / q.levels() }

// Quantize maps x to the nearest level. NaN maps to the lowest level.
func (q *Quantizer[Q]) Quantize(x float64) Q {
	if math.IsNaN(x) || x <= q.min {
		return q.qmin
	}
	if x >= q.max {
		return q.qmax
	}
	v := x
	if q.log {
		v = logMap(x)
	}
	level := math.Round(float64(q.qmin) + (v-q.fmin)/(q.fmax-q.fmin)*q.levels())
	switch {
	case level <= float64(q.qmin):
		return q.qmin
	case level >= float64(q.qmax):
		return q.qmax
	default:
		return Q(level)
	}
}

// Dequantize maps a level back to the value at its center.
func (q *Quantizer[Q]) Dequantize(level Q) float64 {
	u := (float64(level) - float64(q.qmin)) / q.levels()
	v := q.fmin + u*(q.fmax-q.fmin)
	if q.log {
		v = logUnmap(v)
	}
	// Guard rounding at the ends of the range.
	return math.Min(math.Max(v, q.min), q.max)
}

// QuantizeSlice writes Quantize(src[i]) into dst[i]; lengths must match.
func (q *Quantizer[Q]) QuantizeSlice(dst []Q, src []float64) error {
	if len(dst) != len(src) {
		return tensorErrorf("Quantizer.QuantizeSlice", ErrLengthMismatch)
	}
	for i, x := range src {
		dst[i] = q.Quantize(x)
	}

	return nil
}

// DequantizeSlice writes Dequantize(src[i]) into dst[i]; lengths must match.
func (q *Quantizer[Q]) DequantizeSlice(dst []float64, src []Q) error {
	if len(dst) != len(src) {
		return tensorErrorf("Quantizer.DequantizeSlice", ErrLengthMismatch)
	}
	for i, l := range src {
		dst[i] = q.Dequantize(l)
	}

	return nil
}

// Quantized is a tensor whose elements are stored as levels of Q.
// Data is in storage order (mode 1 fastest).
type Quantized[Q constraints.Integer] struct {
	Dims []int
	Data []Q
	q    *Quantizer[Q]
}

// Quantizer returns the mapping the payload was produced with.
func (qt *Quantized[Q]) Quantizer() *Quantizer[Q] { return qt.q }

// Quantize converts t to levels of Q over [min, max]:
//
//	q, err := tensor.Quantize[uint8](t, -1, 1)
//
// Errors:
//   - ErrInvalidRange (see NewQuantizer).
func Quantize[Q constraints.Integer](t Storage, min, max float64, opts ...QuantizeOption) (*Quantized[Q], error) {
	if isNilStorage(t) {
		return nil, tensorErrorf("Quantize", ErrNilTensor)
	}
	q, err := NewQuantizer[Q](min, max, opts...)
	if err != nil {
		return nil, err
	}
	src := t.RawData()
	out := &Quantized[Q]{Dims: t.Dims(), Data: make([]Q, len(src)), q: q}
	if err = q.QuantizeSlice(out.Data, src); err != nil {
		return nil, err
	}

	return out, nil
}

// QuantizeFull quantizes t over its own [Min(), Max()] range. A constant
// tensor gets the range [v, v+1].
func QuantizeFull[Q constraints.Integer](t Storage, opts ...QuantizeOption) (*Quantized[Q], error) {
	if isNilStorage(t) {
		return nil, tensorErrorf("QuantizeFull", ErrNilTensor)
	}
	lo, hi := widenedRange(t.RawData())

	return Quantize[Q](t, lo, hi, opts...)
}

// widenedRange returns [min, max] of data widened to a non-empty interval.
func widenedRange(data []float64) (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range data {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if !(lo < hi) {
		if math.IsInf(lo, 1) {
			lo = 0
		}
		hi = lo + 1
	}

	return lo, hi
}

// DequantizeInto writes the dequantized payload into dst, which must have
// the quantized extents.
func (qt *Quantized[Q]) DequantizeInto(dst Storage) error {
	if isNilStorage(dst) {
		return tensorErrorf("Quantized.DequantizeInto", ErrNilTensor)
	}
	if !sameDims(dst.Dims(), qt.Dims) {
		return tensorErrorf("Quantized.DequantizeInto", ErrDimensionMismatch)
	}

	return qt.q.DequantizeSlice(dst.RawData(), qt.Data)
}

// Dequantize3 rebuilds a Tensor3 from a 3-way payload.
func (qt *Quantized[Q]) Dequantize3() (*Tensor3, error) {
	t, err := newTensor3FromDims("Quantized.Dequantize3", qt.Dims)
	if err != nil {
		return nil, err
	}

	return t, qt.DequantizeInto(t)
}

// Dequantize4 rebuilds a Tensor4 from a 4-way payload.
func (qt *Quantized[Q]) Dequantize4() (*Tensor4, error) {
	t, err := newTensor4FromDims("Quantized.Dequantize4", qt.Dims)
	if err != nil {
		return nil, err
	}

	return t, qt.DequantizeInto(t)
}
