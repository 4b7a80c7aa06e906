// SPDX-License-Identifier: MIT

package equation

import (
	"math"
	"sort"
)

// Newton scan parameters.
const (
	MaxNewtonIterations  = 50
	ConvergenceTolerance = 1e-10 // |Δx| that counts as converged
	ResidualTolerance    = 1e-6  // |f(x)| a converged x must satisfy
	DuplicateDistance    = 0.01  // roots closer than this are merged
	flatDerivative       = 1e-15 // |f'(x)| below which an iteration is abandoned
)

// cardanoTolerance separates the Cardano discriminant cases.
const cardanoTolerance = 1e-12

// newtonSeeds are the starting points of the Newton scan.
var newtonSeeds = [...]float64{-10, -5, -1, 0, 1, 5, 10}

// Method selects the cubic algorithm.
type Method int

const (
	// Newton scans fixed seeds with Newton–Raphson (real roots only).
	Newton Method = iota

	// Cardano uses the closed form and returns all three roots.
	Cardano
)

// String returns the method name.
func (m Method) String() string {
	if m == Cardano {
		return "cardano"
	}

	return "newton"
}

type cubicOptions struct {
	method Method
}

// CubicOption configures Cubic.
type CubicOption func(*cubicOptions)

// WithMethod selects the cubic algorithm. Unknown values panic.
func WithMethod(m Method) CubicOption {
	if m != Newton && m != Cardano {
		panic("equation: WithMethod: unknown method")
	}

	return func(o *cubicOptions) { o.method = m }
}

// CubicSolution is the result of Cubic.
//
// When a == 0 the equation is delegated to Quadratic: Degree is 2 and
// Quadratic holds the full quadratic result. Fallback is set when the Newton
// scan converged nowhere and Roots is the placeholder [0].
type CubicSolution struct {
	Degree    int
	Method    Method
	Roots     []complex128
	Quadratic *QuadraticSolution
	Fallback  bool
}

// Cubic solves ax³ + bx² + cx + d = 0.
//
// Implementation:
//   - Newton (default): Newton–Raphson from each of the seven seeds, at most
//     MaxNewtonIterations steps each; a root is kept when the step falls below
//     ConvergenceTolerance, |f| < ResidualTolerance and no kept root is within
//     DuplicateDistance. Roots can be missed; none found yields Fallback [0].
//   - Cardano: closed form on the depressed cubic, real roots polished.
//
// Errors:
//   - ErrInvalidCoefficient when a == 0 and b == 0 (from the quadratic delegate).
//   - ErrNonFinite for NaN/Inf coefficients.
//
// Complexity:
//   - Newton: at most 7·MaxNewtonIterations polynomial evaluations. Cardano: O(1).
func Cubic(a, b, c, d float64, opts ...CubicOption) (CubicSolution, error) {
	o := cubicOptions{method: Newton}
	for _, fn := range opts {
		fn(&o)
	}
	if err := finite(a, b, c, d); err != nil {
		return CubicSolution{}, err
	}

	if a == 0 {
		q, err := Quadratic(b, c, d)
		if err != nil {
			return CubicSolution{}, err
		}

		return CubicSolution{Degree: 2, Method: o.method, Roots: q.Roots, Quadratic: &q}, nil
	}

	sol := CubicSolution{Degree: 3, Method: o.method}
	if o.method == Cardano {
		sol.Roots = cardano(a, b, c, d)

		return sol, nil
	}

	found := newtonScan(a, b, c, d)
	if len(found) == 0 {
		sol.Fallback = true
		found = []float64{0}
	}
	sol.Roots = make([]complex128, len(found))
	for i, x := range found {
		sol.Roots[i] = complex(x, 0)
	}

	return sol, nil
}

// newtonScan runs Newton–Raphson from every seed and keeps each converged,
// low-residual, not-yet-seen root in discovery order.
func newtonScan(a, b, c, d float64) []float64 {
	var roots []float64
	for _, x := range newtonSeeds {
		for i := 0; i < MaxNewtonIterations; i++ {
			f := ((a*x+b)*x+c)*x + d
			df := (3*a*x+2*b)*x + c
			if math.Abs(df) < flatDerivative {
				break
			}
			next := x - f/df
			if math.Abs(next-x) < ConvergenceTolerance {
				if math.Abs(f) < ResidualTolerance && isNewRoot(roots, x) {
					roots = append(roots, x)
				}

				break
			}
			x = next
		}
	}

	return roots
}

func isNewRoot(roots []float64, x float64) bool {
	for _, r := range roots {
		if math.Abs(r-x) <= DuplicateDistance {
			return false
		}
	}

	return true
}

// cardano solves the cubic in closed form via the depressed cubic
// t³ + pt + q = 0, x = t − b/3a. Real roots come first, ascending.
func cardano(a, b, c, d float64) []complex128 {
	B, C, D := b/a, c/a, d/a
	p := C - B*B/3
	q := 2*B*B*B/27 - B*C/3 + D
	shift := -B / 3
	disc := q*q/4 + p*p*p/27

	var reals []float64
	var pair []complex128
	switch {
	case math.Abs(p) < cardanoTolerance && math.Abs(q) < cardanoTolerance:
		reals = []float64{shift, shift, shift}
	case disc > cardanoTolerance:
		sq := math.Sqrt(disc)
		u := math.Cbrt(-q/2 + sq)
		v := math.Cbrt(-q/2 - sq)
		reals = []float64{u + v + shift}
		re := -(u+v)/2 + shift
		im := math.Sqrt(3) / 2 * (u - v)
		pair = []complex128{complex(re, im), complex(re, -im)}
	case disc < -cardanoTolerance:
		r := 2 * math.Sqrt(-p/3)
		arg := 3 * q / (2 * p) * math.Sqrt(-3/p)
		phi := math.Acos(math.Max(-1, math.Min(1, arg))) / 3
		for k := 0; k < 3; k++ {
			reals = append(reals, r*math.Cos(phi-2*math.Pi*float64(k)/3)+shift)
		}
	default:
		reals = []float64{3*q/p + shift, -3*q/(2*p) + shift, -3*q/(2*p) + shift}
	}

	for i := range reals {
		reals[i] = polish(a, b, c, d, reals[i])
	}
	sort.Float64s(reals)

	out := make([]complex128, 0, 3)
	for _, x := range reals {
		out = append(out, complex(x, 0))
	}

	return append(out, pair...)
}

// polish applies a few Newton steps to x, keeping a step only when it lowers |f|.
func polish(a, b, c, d, x float64) float64 {
	f := ((a*x+b)*x+c)*x + d
	for i := 0; i < 8 && f != 0; i++ {
		df := (3*a*x+2*b)*x + c
		if math.Abs(df) < flatDerivative {
			break
		}
		next := x - f/df
		fn := ((a*next+b)*next+c)*next + d
		if math.Abs(fn) >= math.Abs(f) {
			break
		}
		x, f = next, fn
	}

	return x
}
