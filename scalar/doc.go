// SPDX-License-Identifier: MIT

// Package scalar is the calculator's stateless function library.
//
// Every function takes plain numbers and returns a Result: the value and the
// history line describing it, e.g. "sin(30°) = 0.5" or "P(5,2) = 20".
// Domain violations are reported with sentinel errors rather than NaN.
//
// ✨ Functions:
//   - trigonometric: Sin, Cos, Tan (angle.Unit on input), Asin, Acos, Atan (on output)
//   - hyperbolic:    Sinh, Cosh, Tanh
//   - exp/log:       Exp, Ln, Log10, Log (arbitrary base), Sqrt
//   - combinatorics: Factorial, Permutation, Combination
//   - trivial:       Negate, Pi, E
//
// Lookup maps keypad names ("sin", "sqrt", "fact", ...) to a Func so that
// callers can dispatch on user input.
package scalar
