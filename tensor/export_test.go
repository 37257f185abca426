// SPDX-License-Identifier: MIT

package tensor

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lvtensor/matrix"
)

// MultiplyModeFibers3_TestOnly runs the fiber-wise TTM reference kernel.
func MultiplyModeFibers3_TestOnly(t *Tensor3, mode int, m *matrix.Dense) *Tensor3 {
	return &Tensor3{block: t.multiplyModeFibers(mode, m.RawData(), m.Rows())}
}

// MultiplyModeFibers4_TestOnly runs the fiber-wise TTM reference kernel.
func MultiplyModeFibers4_TestOnly(t *Tensor4, mode int, m *matrix.Dense) *Tensor4 {
	return &Tensor4{block: t.multiplyModeFibers(mode, m.RawData(), m.Rows())}
}

// IntegerBounds_TestOnly exposes the derived range of Q.
func IntegerBounds_TestOnly[Q constraints.Integer]() (Q, Q) {
	return integerBounds[Q]()
}
