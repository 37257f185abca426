// SPDX-License-Identifier: MIT

package hosvd_test

import (
	"fmt"

	"github.com/katalvlaran/lvtensor/hosvd"
	"github.com/katalvlaran/lvtensor/tensor"
)

// ExampleDecompose computes the leading mode-3 basis vector of a 3×2×2 tensor.
// Signs are canonical: the largest-magnitude entry is positive.
func ExampleDecompose() {
	x, _ := tensor.New3From(3, 2, 2, []float64{0, 1, 2, 3, 4, 5, -1, 4, -2, -5, 3, -6})
	res, _ := hosvd.Decompose(x, []int{2, 2, 1}, hosvd.WithMethod(hosvd.MethodEig))
	u3, _ := res.Bases[2].Col(0)
	fmt.Printf("%.4f ok=%v\n", u3, res.OK())
	// Output: [-0.5105 0.8599] ok=true
}
