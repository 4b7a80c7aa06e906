// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvcalc/input"
	"github.com/katalvlaran/lvcalc/scalar"
	"github.com/katalvlaran/lvcalc/session"
)

func newEvalCommand(a *app) *cobra.Command {
	var complexMode bool

	cmd := &cobra.Command{
		Use:   "eval A OP B",
		Short: "Evaluate one binary operation",
		Long: `Evaluate A OP B where OP is one of + - * / ^ %.

With --complex both operands are complex numbers written as "3+4i" and only
+ - * / are accepted.`,
		Example: `  lvcalc eval 7 / 2
  lvcalc eval -- -3 ^ 2
  lvcalc eval --complex 3+4i / 1-2i`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(s *session.Session) session.Outcome {
				if complexMode {
					z1, err := input.ParseComplex(args[0])
					if err != nil {
						return s.Report("evaluate_complex", err)
					}
					z2, err := input.ParseComplex(args[2])
					if err != nil {
						return s.Report("evaluate_complex", err)
					}

					return s.EvaluateComplex(z1, args[1], z2)
				}
				x, err := input.ParseNumber(args[0])
				if err != nil {
					return s.Report("evaluate", err)
				}
				y, err := input.ParseNumber(args[2])
				if err != nil {
					return s.Report("evaluate", err)
				}

				return s.Evaluate(x, args[1], y)
			})
		},
	}

	cmd.Flags().BoolVar(&complexMode, "complex", false, "treat operands as complex numbers")

	return cmd
}

func newExprCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expr EXPRESSION...",
		Short: "Evaluate an expression with operator precedence",
		Long: `Evaluate a whole expression. Unlike the keypad, * / % bind tighter than + -
and ^ is exponentiation. Functions take parenthesized arguments; logb, perm
and comb take two. pi and e are constants. Arguments are joined with spaces.`,
		Example: `  lvcalc expr "3 + 4 * 2"
  lvcalc expr "sin(30) + logb(8, 2)"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(s *session.Session) session.Outcome {
				return s.Expression(strings.Join(args, " "))
			})
		},
	}

	return cmd
}

func newFnCommand(a *app) *cobra.Command {
	var (
		base float64
		unit string
	)

	cmd := &cobra.Command{
		Use:   "fn NAME [X]",
		Short: "Apply a scientific function",
		Long: fmt.Sprintf(`Apply a one-argument function to X.

Functions: %s, logb (with --base).
Constants: pi, e (no argument).
Trigonometric input and inverse-trig output use --unit, defaulting to angle.trig
from the config.`, strings.Join(scalar.Names(), ", ")),
		Example: `  lvcalc fn sin 30
  lvcalc fn asin 1 --unit rad
  lvcalc fn logb 8 --base 2
  lvcalc fn -- sqrt -1
  lvcalc fn pi`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.ToLower(args[0])
			if unit != "" {
				a.cfg.Angle.Trig = unit
				if err := a.cfg.Validate(); err != nil {
					return err
				}
			}

			return a.run(cmd, func(s *session.Session) session.Outcome {
				if len(args) == 1 {
					return s.Constant(name)
				}
				x, err := input.ParseNumber(args[1])
				if err != nil {
					return s.Report(name, err)
				}
				if out := s.Enter(x); !out.OK() {
					return out
				}
				if name == "logb" {
					return s.LogBase(base)
				}

				return s.Function(name)
			})
		},
	}

	cmd.Flags().Float64Var(&base, "base", 10, "logarithm base for logb")
	cmd.Flags().StringVar(&unit, "unit", "", "angle unit for trigonometric functions (deg or rad)")

	return cmd
}

// newPairCommand builds perm and comb, which differ only in the operation.
func newPairCommand(a *app, use, short, example string, op func(*session.Session, int, int) session.Outcome) *cobra.Command {
	cmd := &cobra.Command{
		Use:     use + " N,R",
		Short:   short,
		Example: example,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(s *session.Session) session.Outcome {
				n, r, err := input.ParsePair(args[0])
				if err != nil {
					return s.Report(use, err)
				}

				return op(s, n, r)
			})
		},
	}
	cmd.Flags().SetInterspersed(false)

	return cmd
}

func newPermCommand(a *app) *cobra.Command {
	return newPairCommand(a, "perm", "Number of ordered arrangements P(n,r)", "  lvcalc perm 5,2",
		(*session.Session).Permutation)
}

func newCombCommand(a *app) *cobra.Command {
	return newPairCommand(a, "comb", "Number of unordered selections C(n,r)", "  lvcalc comb 5,2",
		(*session.Session).Combination)
}
