// SPDX-License-Identifier: MIT

package matrix_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvcalc/matrix"
)

// ExampleInverse inverts a 2×2 matrix and shows the singular case.
func ExampleInverse() {
	m, _ := matrix.NewFromRows([][]float64{{4, 7}, {2, 6}})
	det, _ := matrix.Determinant(m)
	inv, _ := matrix.Inverse(m)
	fmt.Println("det =", det)
	fmt.Println(inv)

	s, _ := matrix.NewFromRows([][]float64{{1, 2}, {2, 4}})
	_, err := matrix.Inverse(s)
	fmt.Println(errors.Is(err, matrix.ErrSingular))
	// Output:
	// det = 10
	// [0.6, -0.7]
	// [-0.2, 0.4]
	// true
}
