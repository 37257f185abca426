// SPDX-License-Identifier: MIT

package hosvd

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRank indicates a rank outside [1, I_k] or a rank list whose
	// length differs from the tensor order.
	ErrInvalidRank = errors.New("hosvd: rank out of range")
)

// hosvdErrorf wraps err with an operation tag.
func hosvdErrorf(tag string, err error) error {
	return fmt.Errorf("hosvd.%s: %w", tag, err)
}
