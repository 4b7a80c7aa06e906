// SPDX-License-Identifier: MIT

package calc

import (
	"fmt"
	"math"
)

// Operator is a binary arithmetic operator symbol.
type Operator byte

// Supported operators.
const (
	OpAdd Operator = '+'
	OpSub Operator = '-'
	OpMul Operator = '*'
	OpDiv Operator = '/'
	OpPow Operator = '^'
	OpMod Operator = '%'
)

// String returns the operator symbol.
func (op Operator) String() string { return string(op) }

// Valid reports whether op is one of the supported operators.
func (op Operator) Valid() bool {
	switch op {
	case OpAdd, OpSub, OpMul, OpDiv, OpPow, OpMod:
		return true
	}

	return false
}

// ParseOperator maps a symbol to an Operator. "x", "×", "÷" and "−" are
// accepted as keypad spellings of *, / and -.
func ParseOperator(s string) (Operator, error) {
	switch s {
	case "+":
		return OpAdd, nil
	case "-", "−":
		return OpSub, nil
	case "*", "x", "×":
		return OpMul, nil
	case "/", "÷":
		return OpDiv, nil
	case "^":
		return OpPow, nil
	case "%":
		return OpMod, nil
	}

	return 0, fmt.Errorf("%q: %w", s, ErrUnknownOperation)
}

// Apply evaluates a op b.
//
// Modulo follows the sign of the dividend (math.Mod). Apply itself does not
// reject non-finite results such as 10^400; that is the formatter's job.
//
// Errors:
//   - ErrDivisionByZero, ErrModuloByZero when b == 0.
//   - ErrUnknownOperation for any other operator.
func Apply(a, b float64, op Operator) (float64, error) {
	switch op {
	case OpAdd:
		return a + b, nil
	case OpSub:
		return a - b, nil
	case OpMul:
		return a * b, nil
	case OpDiv:
		if b == 0 {
			return 0, ErrDivisionByZero
		}

		return a / b, nil
	case OpPow:
		return math.Pow(a, b), nil
	case OpMod:
		if b == 0 {
			return 0, ErrModuloByZero
		}

		return math.Mod(a, b), nil
	}

	return 0, fmt.Errorf("%q: %w", string(op), ErrUnknownOperation)
}

// ApplyComplex evaluates z1 op z2 for op in {+, -, *, /}.
//
// Errors:
//   - ErrDivisionByZero when dividing by 0+0i.
//   - ErrUnknownOperation for ^, % and anything else.
func ApplyComplex(z1, z2 complex128, op Operator) (complex128, error) {
	switch op {
	case OpAdd:
		return z1 + z2, nil
	case OpSub:
		return z1 - z2, nil
	case OpMul:
		return z1 * z2, nil
	case OpDiv:
		if z2 == 0 {
			return 0, ErrDivisionByZero
		}

		return z1 / z2, nil
	}

	return 0, fmt.Errorf("%q: %w", string(op), ErrUnknownOperation)
}
