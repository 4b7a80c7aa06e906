// SPDX-License-Identifier: MIT

package commands

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvcalc/equation"
	"github.com/katalvlaran/lvcalc/input"
	"github.com/katalvlaran/lvcalc/session"
)

// parseCoefficients parses every argument as a finite number.
func parseCoefficients(args []string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, arg := range args {
		x, err := input.ParseNumber(arg)
		if err != nil {
			return nil, err
		}
		out[i] = x
	}

	return out, nil
}

// newCoefficientCommand builds a subcommand taking exactly n numbers.
// Flags must precede the numbers so that "-3" is read as a coefficient.
func newCoefficientCommand(a *app, use, short, op string, n int, solve func(*session.Session, []float64) session.Outcome) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(n),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(s *session.Session) session.Outcome {
				xs, err := parseCoefficients(args)
				if err != nil {
					return s.Report(op, err)
				}

				return solve(s, xs)
			})
		},
	}
	cmd.Flags().SetInterspersed(false)

	return cmd
}

func newSolveCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve linear, quadratic and cubic equations or a 2x2 system",
		Example: `  lvcalc solve linear 2 -4
  lvcalc solve quadratic 1 -3 2
  lvcalc solve cubic 1 -6 11 -6
  lvcalc solve cubic --cardano 1 0 0 -1
  lvcalc solve system 1 1 3 1 -1 1`,
	}

	cmd.AddCommand(newCoefficientCommand(a, "linear A B", "Solve ax + b = 0", "linear", 2,
		func(s *session.Session, x []float64) session.Outcome { return s.Linear(x[0], x[1]) }))
	cmd.AddCommand(newCoefficientCommand(a, "quadratic A B C", "Solve ax² + bx + c = 0", "quadratic", 3,
		func(s *session.Session, x []float64) session.Outcome { return s.Quadratic(x[0], x[1], x[2]) }))
	cmd.AddCommand(newCubicCommand(a))
	cmd.AddCommand(newCoefficientCommand(a, "system A1 B1 C1 A2 B2 C2", "Solve a1·x + b1·y = c1, a2·x + b2·y = c2", "system", 6,
		func(s *session.Session, x []float64) session.Outcome { return s.System(x[0], x[1], x[2], x[3], x[4], x[5]) }))

	return cmd
}

func newCubicCommand(a *app) *cobra.Command {
	var cardano bool

	cmd := newCoefficientCommand(a, "cubic A B C D", "Solve ax³ + bx² + cx + d = 0", "cubic", 4,
		func(s *session.Session, x []float64) session.Outcome {
			if cardano {
				return s.Cubic(x[0], x[1], x[2], x[3], equation.WithMethod(equation.Cardano))
			}

			return s.Cubic(x[0], x[1], x[2], x[3])
		})
	cmd.Long = `Solve a cubic. The default Newton scan reports the distinct real roots it
finds from seven fixed seeds and can miss some; --cardano uses the closed form
and reports all three roots, complex ones included.`
	cmd.Flags().BoolVar(&cardano, "cardano", false, "use the closed-form solver")

	return cmd
}
