// SPDX-License-Identifier: MIT

package expr_test

import (
	"fmt"

	"github.com/katalvlaran/lvcalc/angle"
	"github.com/katalvlaran/lvcalc/expr"
	"github.com/katalvlaran/lvcalc/format"
)

// ExampleEvaluate shows precedence, functions in degrees and the ans identifier.
func ExampleEvaluate() {
	env := expr.Env{Unit: angle.Degrees, Ans: 14}
	for _, src := range []string{"3 + 4 * 2", "sin(30) * 4", "ans / 7"} {
		v, _ := expr.Evaluate(src, env)
		fmt.Println(src, "=", format.Display(v))
	}
	// Output:
	// 3 + 4 * 2 = 11
	// sin(30) * 4 = 2
	// ans / 7 = 2
}
