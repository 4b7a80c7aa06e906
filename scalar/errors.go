// SPDX-License-Identifier: MIT

package scalar

import "errors"

var (
	// ErrNegativeDomain is returned by Sqrt for x < 0.
	ErrNegativeDomain = errors.New("scalar: negative argument")

	// ErrNonPositiveDomain is returned by Ln, Log10 and Log for x ≤ 0.
	ErrNonPositiveDomain = errors.New("scalar: non-positive argument")

	// ErrOverflow is returned when a result would not be finite (Exp x > 700, 171!).
	ErrOverflow = errors.New("scalar: result too large")

	// ErrInvalidDomain covers factorial/permutation/combination arguments and
	// the other argument-range checks (asin/acos, log base).
	ErrInvalidDomain = errors.New("scalar: argument outside function domain")
)
