// SPDX-License-Identifier: MIT
// Package tensor: sentinel error set.
// Every message is prefixed with "tensor: ..." for consistency. Operations wrap
// these sentinels with a tag via tensorErrorf; callers match with errors.Is.

package tensor

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions indicates a non-positive extent or a wrong number of extents.
	ErrInvalidDimensions = errors.New("tensor: extents must be > 0")

	// ErrOutOfRange indicates an element, slice or mode index outside its extent.
	ErrOutOfRange = errors.New("tensor: index out of range")

	// ErrDimensionMismatch indicates incompatible shapes between operands, e.g. a
	// TTM matrix whose column count differs from the contracted extent.
	ErrDimensionMismatch = errors.New("tensor: dimension mismatch")

	// ErrLengthMismatch indicates a value slice whose length differs from Len().
	ErrLengthMismatch = errors.New("tensor: value count does not match element count")

	// ErrInvalidRange indicates a quantization range with min >= max or non-finite bounds.
	ErrInvalidRange = errors.New("tensor: invalid quantization range")

	// ErrNilTensor indicates a nil tensor, unfolding or matrix argument.
	ErrNilTensor = errors.New("tensor: nil argument")
)

// tensorErrorf wraps err with an operation tag, preserving it for errors.Is.
func tensorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
