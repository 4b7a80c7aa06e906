// SPDX-License-Identifier: MIT

package equation

import "errors"

var (
	// ErrInvalidCoefficient is returned by Quadratic when a == 0.
	ErrInvalidCoefficient = errors.New("equation: leading coefficient must be non-zero")

	// ErrNoUniqueSolution is returned by System2x2 when |det| < SingularTolerance.
	ErrNoUniqueSolution = errors.New("equation: no unique solution")

	// ErrNonFinite is returned when a coefficient is NaN or ±Inf.
	ErrNonFinite = errors.New("equation: coefficient is NaN or Inf")
)
