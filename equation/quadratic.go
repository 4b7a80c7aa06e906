// SPDX-License-Identifier: MIT

package equation

import "math"

// QuadraticKind classifies the roots of a quadratic by its discriminant.
type QuadraticKind int

const (
	// TwoReal: Δ > 0, two distinct real roots.
	TwoReal QuadraticKind = iota

	// RepeatedReal: Δ = 0, one real root of multiplicity two.
	RepeatedReal

	// ComplexPair: Δ < 0, two complex conjugate roots.
	ComplexPair
)

// String describes the kind the way a result pane would.
func (k QuadraticKind) String() string {
	switch k {
	case RepeatedReal:
		return "One repeated real root"
	case ComplexPair:
		return "Two complex conjugate roots"
	}

	return "Two distinct real roots"
}

// QuadraticSolution holds the discriminant and the roots.
// Roots has two entries, except RepeatedReal which has one.
type QuadraticSolution struct {
	Discriminant float64
	Kind         QuadraticKind
	Roots        []complex128
}

// Quadratic solves ax² + bx + c = 0.
//
// With Δ = b² − 4ac:
//   - Δ > 0: (−b ± √Δ) / 2a, the "+" root first.
//   - Δ = 0: −b / 2a.
//   - Δ < 0: −b/2a ± i·√(−Δ)/2a.
//
// Errors:
//   - ErrInvalidCoefficient if a == 0.
//   - ErrNonFinite for NaN/Inf coefficients.
func Quadratic(a, b, c float64) (QuadraticSolution, error) {
	if err := finite(a, b, c); err != nil {
		return QuadraticSolution{}, err
	}
	if a == 0 {
		return QuadraticSolution{}, ErrInvalidCoefficient
	}

	disc := b*b - 4*a*c
	sol := QuadraticSolution{Discriminant: disc}
	switch {
	case disc > 0:
		sq := math.Sqrt(disc)
		sol.Kind = TwoReal
		sol.Roots = []complex128{
			complex((-b+sq)/(2*a), 0),
			complex((-b-sq)/(2*a), 0),
		}
	case disc == 0:
		sol.Kind = RepeatedReal
		sol.Roots = []complex128{complex(-b/(2*a), 0)}
	default:
		re := -b / (2 * a)
		im := math.Sqrt(-disc) / (2 * a)
		sol.Kind = ComplexPair
		sol.Roots = []complex128{complex(re, im), complex(re, -im)}
	}

	return sol, nil
}
