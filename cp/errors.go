// SPDX-License-Identifier: MIT

package cp

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRank indicates a CP rank below 1.
	ErrInvalidRank = errors.New("cp: rank must be >= 1")

	// ErrRankNotDivisible indicates that the rank is not a multiple of the
	// block count of an incremental decomposition (or the count is < 1).
	ErrRankNotDivisible = errors.New("cp: rank not divisible by block count")

	// ErrFactorMismatch indicates factors and lambda that do not describe one
	// model: a nil factor, a column count different from len(lambda), or an
	// order the tensor type cannot hold.
	ErrFactorMismatch = errors.New("cp: factors and lambda do not conform")
)

// cpErrorf wraps err with an operation tag.
func cpErrorf(tag string, err error) error {
	return fmt.Errorf("cp.%s: %w", tag, err)
}
