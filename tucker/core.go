// SPDX-License-Identifier: MIT

package tucker

import (
	"math"

	"github.com/katalvlaran/lvtensor/matrix"
	"github.com/katalvlaran/lvtensor/tensor"
)

// DeriveCore computes core = data ×₁ U1⁺ ×₂ U2⁺ … with Moore–Penrose
// pseudoinverses. It is the least-squares core for any full-column-rank bases.
func DeriveCore[T tensor.Tensor[T]](data T, bases []*matrix.Dense) (T, error) {
	var zero T
	pinvs := make([]*matrix.Dense, len(bases))
	for k, u := range bases {
		p, err := matrix.PseudoInverse(u)
		if err != nil {
			return zero, tuckerErrorf("DeriveCore", err)
		}
		pinvs[k] = p
	}
	core, err := tensor.MultiplyAll(data, pinvs...)
	if err != nil {
		return zero, tuckerErrorf("DeriveCore", err)
	}

	return core, nil
}

// DeriveCoreOrthogonal computes core = data ×₁ U1ᵀ ×₂ U2ᵀ …, valid when every
// basis has orthonormal columns.
func DeriveCoreOrthogonal[T tensor.Tensor[T]](data T, bases []*matrix.Dense) (T, error) {
	core, err := tensor.MultiplyAllTransposed(data, bases...)
	if err != nil {
		var zero T
		return zero, tuckerErrorf("DeriveCoreOrthogonal", err)
	}

	return core, nil
}

// Reconstruct returns core ×₁ U1 ×₂ U2 … with extents (U1.Rows(), U2.Rows(), …).
func Reconstruct[T tensor.Tensor[T]](core T, bases []*matrix.Dense) (T, error) {
	out, err := tensor.MultiplyAll(core, bases...)
	if err != nil {
		var zero T
		return zero, tuckerErrorf("Reconstruct", err)
	}

	return out, nil
}

// fitFromNorms returns 1 − √max(0, ‖X‖² − ‖G‖²)/‖X‖, and 1 for a zero tensor.
// The identity ‖X − X̂‖² = ‖X‖² − ‖G‖² holds for orthonormal bases with G the
// projected core.
func fitFromNorms(normX, normCore float64) float64 {
	if normX == 0 {
		return 1
	}
	r2 := normX*normX - normCore*normCore

	return 1 - math.Sqrt(math.Max(0, r2))/normX
}
