// SPDX-License-Identifier: MIT

package equation

import (
	"fmt"
	"math"
)

// SingularTolerance is the |det| threshold below which a 2×2 system is
// considered to have no unique solution.
const SingularTolerance = 1e-10

// LinearKind classifies the solution set of ax + b = 0.
type LinearKind int

const (
	// LinearUnique: exactly one root X.
	LinearUnique LinearKind = iota

	// LinearAllReals: a = b = 0, every x is a solution.
	LinearAllReals

	// LinearNone: a = 0, b ≠ 0.
	LinearNone
)

// String describes the kind in words.
func (k LinearKind) String() string {
	switch k {
	case LinearAllReals:
		return "all real numbers are solutions"
	case LinearNone:
		return "no solution exists"
	}

	return "unique solution"
}

// LinearSolution is the result of Linear. X is meaningful only for LinearUnique.
type LinearSolution struct {
	Kind LinearKind
	X    float64
}

// Linear solves ax + b = 0.
//
// Errors:
//   - ErrNonFinite if a or b is NaN or ±Inf.
func Linear(a, b float64) (LinearSolution, error) {
	if err := finite(a, b); err != nil {
		return LinearSolution{}, err
	}
	if a == 0 {
		if b == 0 {
			return LinearSolution{Kind: LinearAllReals}, nil
		}

		return LinearSolution{Kind: LinearNone}, nil
	}

	return LinearSolution{Kind: LinearUnique, X: -b / a}, nil
}

// SystemSolution is the unique solution of a 2×2 system and its determinant.
type SystemSolution struct {
	X, Y float64
	Det  float64
}

// System2x2 solves
//
//	a1·x + b1·y = c1
//	a2·x + b2·y = c2
//
// by Cramer's rule.
//
// Errors:
//   - ErrNoUniqueSolution if |a1·b2 − a2·b1| < SingularTolerance
//     (parallel or identical lines).
//   - ErrNonFinite for NaN/Inf coefficients.
func System2x2(a1, b1, c1, a2, b2, c2 float64) (SystemSolution, error) {
	if err := finite(a1, b1, c1, a2, b2, c2); err != nil {
		return SystemSolution{}, err
	}
	det := a1*b2 - a2*b1
	if math.Abs(det) < SingularTolerance {
		return SystemSolution{Det: det}, fmt.Errorf("det=%g: %w", det, ErrNoUniqueSolution)
	}

	return SystemSolution{
		X:   (c1*b2 - c2*b1) / det,
		Y:   (a1*c2 - a2*c1) / det,
		Det: det,
	}, nil
}

func finite(xs ...float64) error {
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return ErrNonFinite
		}
	}

	return nil
}
