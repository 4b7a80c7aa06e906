// SPDX-License-Identifier: MIT

package session_test

import (
	"fmt"

	"github.com/katalvlaran/lvcalc/session"
)

// ExampleSession drives the keypad and a result pane.
func ExampleSession() {
	s, _ := session.New()
	for _, k := range []string{"1", "2"} {
		s.Digit(k)
	}
	s.Operator("/")
	s.Digit("0")
	out := s.Equals()
	fmt.Println(out.Display, out.ResetAfter)

	s.Clear()
	out = s.Quadratic(1, -3, 2)
	fmt.Println(out.Detail)
	fmt.Println(s.History())
	// Output:
	// Error: Division by zero 2s
	// Equation: 1x² + -3x + 2 = 0
	// Discriminant (Δ) = 1
	//
	// Two distinct real roots:
	// x₁ = 2
	// x₂ = 1
	// [Quadratic: 1x² + -3x + 2 = 0 → x₁=2, x₂=1]
}
