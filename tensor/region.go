// SPDX-License-Identifier: MIT

package tensor

import "fmt"

// CopyRegion copies the box with the given extent from src, starting at
// srcOff, into dst starting at dstOff. Both tensors must have the same order
// and the box must fit inside each of them.
//
// It places a small tensor inside a larger one (block-diagonal cores) and
// crops a leading sub-block (rank reduction).
//
// Errors:
//   - ErrNilTensor, ErrDimensionMismatch (order or argument lengths differ),
//     ErrOutOfRange (box outside either tensor).
func CopyRegion(dst, src Storage, dstOff, srcOff, extent []int) error {
	const tag = "CopyRegion"
	if isNilStorage(dst) || isNilStorage(src) {
		return tensorErrorf(tag, ErrNilTensor)
	}
	dd, sd := dst.Dims(), src.Dims()
	n := len(dd)
	if len(sd) != n || len(dstOff) != n || len(srcOff) != n || len(extent) != n {
		return tensorErrorf(tag, ErrDimensionMismatch)
	}
	for k := 0; k < n; k++ {
		if extent[k] < 0 || dstOff[k] < 0 || srcOff[k] < 0 ||
			dstOff[k]+extent[k] > dd[k] || srcOff[k]+extent[k] > sd[k] {
			return tensorErrorf(tag, fmt.Errorf("box %v at %v->%v in %v->%v: %w",
				extent, srcOff, dstOff, sd, dd, ErrOutOfRange))
		}
	}

	in, out := src.RawData(), dst.RawData()
	idx := make([]int, n)
	total := product(extent, -1)
	var so, do, ss, ds, k int
	for c := 0; c < total; c++ {
		so, do, ss, ds = 0, 0, 1, 1
		for k = 0; k < n; k++ {
			so += (srcOff[k] + idx[k]) * ss
			do += (dstOff[k] + idx[k]) * ds
			ss *= sd[k]
			ds *= dd[k]
		}
		out[do] = in[so]
		advance(idx, extent)
	}

	return nil
}
