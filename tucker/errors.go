// SPDX-License-Identifier: MIT

package tucker

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvtensor/hosvd"
)

var (
	// ErrInvalidRank indicates a rank list of the wrong length or a rank
	// outside [1, I_k]. It is the hosvd sentinel, so either can be matched.
	ErrInvalidRank = hosvd.ErrInvalidRank

	// ErrRankNotDivisible indicates that a rank is not a multiple of the block
	// count of an incremental decomposition (or the block count is < 1).
	ErrRankNotDivisible = errors.New("tucker: rank not divisible by block count")

	// ErrShapeMismatch indicates a model whose bases and core do not conform,
	// or an import stream that does not match the expected shape.
	ErrShapeMismatch = errors.New("tucker: bases and core do not conform")
)

// tuckerErrorf wraps err with an operation tag.
func tuckerErrorf(tag string, err error) error {
	return fmt.Errorf("tucker.%s: %w", tag, err)
}
