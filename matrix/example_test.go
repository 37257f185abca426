// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/lvtensor/matrix"
)

// ExampleKhatriRao shows the row order of the column-wise Kronecker product:
// the second operand's row index varies fastest.
func ExampleKhatriRao() {
	a, _ := matrix.NewDenseFrom(2, 2, []float64{1, 2, 3, 4})
	b, _ := matrix.NewDenseFrom(2, 2, []float64{5, 6, 7, 8})
	kr, _ := matrix.KhatriRao(a, b)
	fmt.Print(kr)
	// Output:
	// [5, 12]
	// [7, 16]
	// [15, 24]
	// [21, 32]
}

// ExamplePseudoInverse inverts a rank-deficient matrix.
func ExamplePseudoInverse() {
	a, _ := matrix.NewDenseFrom(2, 2, []float64{1, 2, 2, 4})
	p, _ := matrix.PseudoInverse(a)
	for i := 0; i < 2; i++ {
		x, _ := p.At(i, 0)
		y, _ := p.At(i, 1)
		fmt.Printf("%.2f %.2f\n", x, y)
	}
	// Output:
	// 0.04 0.08
	// 0.08 0.16
}

// ExampleEigenSym lists eigenvalues in non-increasing order.
func ExampleEigenSym() {
	a, _ := matrix.NewDenseFrom(2, 2, []float64{2, 1, 1, 2})
	values, _, _ := matrix.EigenSym(a)
	fmt.Printf("%.4f\n", values)
	// Output: [3.0000 1.0000]
}
