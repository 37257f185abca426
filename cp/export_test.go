// SPDX-License-Identifier: MIT

package cp

import "github.com/katalvlaran/lvtensor/matrix"

// KhatriRaoExcept_TestOnly exposes the column basis used by the mode-k solve.
func KhatriRaoExcept_TestOnly(factors []*matrix.Dense, k int) (*matrix.Dense, error) {
	return khatriRaoExcept(factors, k)
}

// HadamardExcept_TestOnly exposes the Gram product used by the mode-k solve.
func HadamardExcept_TestOnly(grams []*matrix.Dense, k int) (*matrix.Dense, error) {
	return hadamardExcept(grams, k)
}
