// SPDX-License-Identifier: MIT

package scalar

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvcalc/format"
)

// factorial is the iterative product 2·3·…·n. Callers guarantee 0 ≤ n ≤ MaxFactorial.
func factorial(n int) float64 {
	p := 1.0
	for i := 2; i <= n; i++ {
		p *= float64(i)
	}

	return p
}

// Factorial returns x! for a non-negative integer x.
//
// Errors:
//   - ErrInvalidDomain if x is negative or not an integer.
//   - ErrOverflow if x > MaxFactorial.
func Factorial(x float64) (Result, error) {
	label := format.Plain(x) + "!"
	if x < 0 || x != math.Trunc(x) || math.IsInf(x, 0) {
		return Result{}, fmt.Errorf("%s: %w", label, ErrInvalidDomain)
	}
	if x > MaxFactorial {
		return Result{}, fmt.Errorf("%s: %w", label, ErrOverflow)
	}

	return result(factorial(int(x)), label)
}

func checkNR(label string, n, r int) error {
	if n < 0 || r < 0 || r > n {
		return fmt.Errorf("%s: %w", label, ErrInvalidDomain)
	}

	return nil
}

// Permutation returns P(n,r) = n·(n−1)·…·(n−r+1).
//
// Errors:
//   - ErrInvalidDomain if n < 0, r < 0 or r > n.
//   - ErrOverflow as soon as the running product leaves the float64 range,
//     so a huge r fails after a few hundred factors at most.
func Permutation(n, r int) (Result, error) {
	label := fmt.Sprintf("P(%d,%d)", n, r)
	if err := checkNR(label, n, r); err != nil {
		return Result{}, err
	}

	p := 1.0
	for i := 0; i < r; i++ {
		p *= float64(n - i)
		// Every factor is ≥ 1, so once +Inf the product stays there.
		if math.IsInf(p, 0) {
			return Result{}, fmt.Errorf("%s: %w", label, ErrOverflow)
		}
	}

	return result(p, label)
}

// Combination returns C(n,r) = n! / (r!·(n−r)!).
//
// Errors:
//   - ErrInvalidDomain if n < 0, r < 0 or r > n.
//   - ErrOverflow if n > MaxFactorial.
func Combination(n, r int) (Result, error) {
	label := fmt.Sprintf("C(%d,%d)", n, r)
	if err := checkNR(label, n, r); err != nil {
		return Result{}, err
	}
	if n > MaxFactorial {
		return Result{}, fmt.Errorf("%s: %w", label, ErrOverflow)
	}

	return result(math.Round(factorial(n)/(factorial(r)*factorial(n-r))), label)
}
