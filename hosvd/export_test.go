// SPDX-License-Identifier: MIT

package hosvd

import (
	"github.com/katalvlaran/lvtensor/matrix"
	"github.com/katalvlaran/lvtensor/tensor"
)

// WithBasisFunc_TestOnly replaces the per-mode solver, e.g. to force a failure.
func WithBasisFunc_TestOnly(fn func(*tensor.BackwardUnfolding, int, Method) (*matrix.Dense, error)) Option {
	return func(o *Options) { o.basis = fn }
}
