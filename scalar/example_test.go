// SPDX-License-Identifier: MIT

package scalar_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvcalc/angle"
	"github.com/katalvlaran/lvcalc/scalar"
)

// ExampleLookup dispatches keypad names and prints the history lines.
func ExampleLookup() {
	calls := []struct {
		name string
		x    float64
	}{{"sin", 30}, {"sqrt", 30}, {"fact", 6}}
	for _, c := range calls {
		f, _ := scalar.Lookup(c.name)
		r, err := f(c.x, angle.Degrees)
		if err != nil {
			fmt.Println("error:", err)

			continue
		}
		fmt.Println(r.Line)
	}

	_, err := scalar.Factorial(-1)
	fmt.Println(errors.Is(err, scalar.ErrInvalidDomain))
	// Output:
	// sin(30°) = 0.5
	// √(30) = 5.4772255751
	// 6! = 720
	// true
}
