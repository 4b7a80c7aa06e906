// SPDX-License-Identifier: MIT

// Package expr evaluates a typed arithmetic expression with the usual
// precedence, as opposed to the keypad's strict left-to-right chaining.
//
//	3 + 4 * 2          → 11
//	2 ^ 10             → 1024
//	sin(30) + sqrt(16) → 4.5  (degrees)
//	logb(8, 2) * pi    → 9.4247779608
//	ans / 2            → half of the value on the display
//
// Operators: + - * / % ^ and parentheses; "^" is exponentiation. Number
// literals may use scientific notation ("2.5e-3"); a literal outside the
// float64 range is an invalid expression.
// Functions: every name in scalar.Names() with one argument, plus
// logb(x, base), perm(n, r) and comb(n, r). Identifiers: pi, e, ans.
//
// Functions fail with the same sentinel errors as the scalar package, so
// errors.Is works across the boundary. Parse failures, unknown identifiers
// and non-numeric results (comparisons) wrap ErrInvalidExpression.
package expr
