// SPDX-License-Identifier: MIT

package session

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/lvcalc/equation"
	"github.com/katalvlaran/lvcalc/format"
)

var plain = format.Plain

// Linear solves ax + b = 0.
func (s *Session) Linear(a, b float64) Outcome {
	return s.run("linear", func() (Outcome, error) {
		sol, err := equation.Linear(a, b)
		if err != nil {
			return Outcome{}, err
		}
		eq := fmt.Sprintf("%sx + %s = 0", plain(a), plain(b))
		if sol.Kind != equation.LinearUnique {
			s.hist.Add(fmt.Sprintf("Linear: %s → %s", eq, sol.Kind))

			return Outcome{Display: sol.Kind.String(), Detail: eq + "\n" + sol.Kind.String()}, nil
		}
		x, err := format.Format(sol.X)
		if err != nil {
			return Outcome{}, err
		}
		s.hist.Add(fmt.Sprintf("Linear: %s → x = %s", eq, x))

		return Outcome{Display: "x = " + x, Detail: eq + "\nx = " + x}, nil
	})
}

func quadraticText(a, b, c float64, q equation.QuadraticSolution) (display, detail, line string, err error) {
	roots := make([]string, len(q.Roots))
	for i, r := range q.Roots {
		if roots[i], err = format.Complex(r); err != nil {
			return "", "", "", err
		}
	}
	disc, err := format.Format(q.Discriminant)
	if err != nil {
		return "", "", "", err
	}
	eq := fmt.Sprintf("%sx² + %sx + %s = 0", plain(a), plain(b), plain(c))

	var d strings.Builder
	fmt.Fprintf(&d, "Equation: %s\nDiscriminant (Δ) = %s\n\n%s:\n", eq, disc, q.Kind)
	if q.Kind == equation.RepeatedReal {
		d.WriteString("x = " + roots[0])

		return "x = " + roots[0], d.String(), fmt.Sprintf("Quadratic: %s → x=%s (repeated)", eq, roots[0]), nil
	}
	fmt.Fprintf(&d, "x₁ = %s\nx₂ = %s", roots[0], roots[1])
	display = fmt.Sprintf("x₁ = %s, x₂ = %s", roots[0], roots[1])
	if q.Kind == equation.ComplexPair {
		return display, d.String(), "Quadratic complex roots: x₁=" + strings.ReplaceAll(roots[0], " ", ""), nil
	}

	return display, d.String(), fmt.Sprintf("Quadratic: %s → x₁=%s, x₂=%s", eq, roots[0], roots[1]), nil
}

// Quadratic solves ax² + bx + c = 0.
func (s *Session) Quadratic(a, b, c float64) Outcome {
	return s.run("quadratic", func() (Outcome, error) {
		q, err := equation.Quadratic(a, b, c)
		if err != nil {
			return Outcome{}, err
		}
		display, detail, line, err := quadraticText(a, b, c, q)
		if err != nil {
			return Outcome{}, err
		}
		s.hist.Add(line)

		return Outcome{Display: display, Detail: detail}, nil
	})
}

// Cubic solves ax³ + bx² + cx + d = 0 with the session's default method
// unless opts override it. a == 0 is solved as a quadratic.
func (s *Session) Cubic(a, b, c, d float64, opts ...equation.CubicOption) Outcome {
	return s.run("cubic", func() (Outcome, error) {
		all := append([]equation.CubicOption{equation.WithMethod(s.opts.cubicMethod)}, opts...)
		sol, err := equation.Cubic(a, b, c, d, all...)
		if err != nil {
			return Outcome{}, err
		}
		if sol.Quadratic != nil {
			display, detail, line, err := quadraticText(b, c, d, *sol.Quadratic)
			if err != nil {
				return Outcome{}, err
			}
			s.hist.Add(line)

			return Outcome{Display: display, Detail: detail}, nil
		}

		eq := fmt.Sprintf("%sx³ + %sx² + %sx + %s = 0", plain(a), plain(b), plain(c), plain(d))
		var det strings.Builder
		fmt.Fprintf(&det, "Equation: %s\n\n", eq)
		if sol.Method == equation.Cardano {
			det.WriteString("Roots:\n")
		} else {
			det.WriteString("Approximate roots:\n")
		}
		parts := make([]string, len(sol.Roots))
		for i, r := range sol.Roots {
			v, err := format.Complex(r)
			if err != nil {
				return Outcome{}, err
			}
			parts[i] = v
			fmt.Fprintf(&det, "x%d = %s\n", i+1, v)
		}
		if sol.Fallback {
			det.WriteString("(no root converged; 0 is a placeholder)\n")
		}
		s.hist.Add("Cubic solved: " + eq)

		return Outcome{Display: strings.Join(parts, ", "), Detail: strings.TrimSuffix(det.String(), "\n")}, nil
	})
}

// System solves the 2×2 system a1x + b1y = c1, a2x + b2y = c2.
// NoUniqueSolution still carries the system in Detail.
func (s *Session) System(a1, b1, c1, a2, b2, c2 float64) Outcome {
	return s.run("system", func() (Outcome, error) {
		head := fmt.Sprintf("System:\n%sx + %sy = %s\n%sx + %sy = %s\n\n", plain(a1), plain(b1), plain(c1), plain(a2), plain(b2), plain(c2))
		sol, err := equation.System2x2(a1, b1, c1, a2, b2, c2)
		if errors.Is(err, equation.ErrNoUniqueSolution) {
			return Outcome{Detail: head + messages[NoUniqueSolution]}, err
		}
		if err != nil {
			return Outcome{}, err
		}
		x, err := format.Format(sol.X)
		if err != nil {
			return Outcome{}, err
		}
		y, err := format.Format(sol.Y)
		if err != nil {
			return Outcome{}, err
		}
		s.hist.Add(fmt.Sprintf("System: x=%s, y=%s", x, y))

		return Outcome{
			Display: fmt.Sprintf("x = %s, y = %s", x, y),
			Detail:  fmt.Sprintf("%sSolution:\nx = %s\ny = %s", head, x, y),
		}, nil
	})
}
