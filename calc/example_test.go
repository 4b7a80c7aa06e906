// SPDX-License-Identifier: MIT

package calc_test

import (
	"fmt"

	"github.com/katalvlaran/lvcalc/calc"
	"github.com/katalvlaran/lvcalc/history"
)

// ExampleAccumulator keys 3 + 4 × 2 = and prints the tape.
func ExampleAccumulator() {
	tape := history.NewDefault()
	acc := calc.NewAccumulator(tape)

	_ = acc.AppendDigit("3")
	_ = acc.AppendOperator(calc.OpAdd)
	_ = acc.AppendDigit("4")
	_ = acc.AppendOperator(calc.OpMul)
	_ = acc.AppendDigit("2")
	result, _ := acc.Calculate()

	fmt.Println(result)
	for _, line := range tape.Entries() {
		fmt.Println(line)
	}
	// Output:
	// 14
	// 7 * 2 = 14
	// 3 + 4 = 7
}
