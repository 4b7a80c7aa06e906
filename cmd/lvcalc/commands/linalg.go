// SPDX-License-Identifier: MIT

package commands

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvcalc/angle"
	"github.com/katalvlaran/lvcalc/input"
	"github.com/katalvlaran/lvcalc/session"
)

func newMatrixCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "matrix",
		Short: "2x2 and 3x3 matrix operations",
		Long: `Matrices are written row by row: entries separated by commas, rows by
semicolons. "1,2;3,4" is the 2x2 matrix [[1,2],[3,4]].`,
		Example: `  lvcalc matrix det "1,2;3,4"
  lvcalc matrix inv "4,7;2,6"
  lvcalc matrix mul "1,2;3,4" "5,6;7,8"`,
	}

	unary := func(use, short, op string, fn func(*session.Session, [][]float64) session.Outcome) *cobra.Command {
		return &cobra.Command{
			Use:   use + " M",
			Short: short,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.run(cmd, func(s *session.Session) session.Outcome {
					m, err := input.ParseMatrix(args[0])
					if err != nil {
						return s.Report(op, err)
					}

					return fn(s, m)
				})
			},
		}
	}

	cmd.AddCommand(unary("det", "Determinant of a 2x2 or 3x3 matrix", "det", (*session.Session).Determinant))
	cmd.AddCommand(unary("inv", "Inverse of a 2x2 matrix", "inverse", (*session.Session).Inverse))
	cmd.AddCommand(unary("transpose", "Transpose of a 2x2 or 3x3 matrix", "transpose", (*session.Session).Transpose))
	cmd.AddCommand(&cobra.Command{
		Use:   "mul A B",
		Short: "Product A×B",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(s *session.Session) session.Outcome {
				m1, err := input.ParseMatrix(args[0])
				if err != nil {
					return s.Report("multiply", err)
				}
				m2, err := input.ParseMatrix(args[1])
				if err != nil {
					return s.Report("multiply", err)
				}

				return s.Multiply(m1, m2)
			})
		},
	})

	return cmd
}

func newVectorCommand(a *app) *cobra.Command {
	var unit string

	cmd := &cobra.Command{
		Use:   "vector",
		Short: "Vector magnitude, dot and cross products, angle",
		Example: `  lvcalc vector mag 3,4
  lvcalc vector dot 1,2,3 4,5,6
  lvcalc vector cross 1,0,0 0,1,0
  lvcalc vector angle 1,0 0,1 --unit rad`,
	}

	binary := func(use, short, op string, fn func(*session.Session, []float64, []float64) session.Outcome) *cobra.Command {
		return &cobra.Command{
			Use:   use + " U V",
			Short: short,
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.run(cmd, func(s *session.Session) session.Outcome {
					u, err := input.ParseVector(args[0])
					if err != nil {
						return s.Report(op, err)
					}
					v, err := input.ParseVector(args[1])
					if err != nil {
						return s.Report(op, err)
					}

					return fn(s, u, v)
				})
			},
		}
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "mag V",
		Short: "Euclidean length",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(s *session.Session) session.Outcome {
				v, err := input.ParseVector(args[0])
				if err != nil {
					return s.Report("magnitude", err)
				}

				return s.Magnitude(v)
			})
		},
	})
	cmd.AddCommand(binary("dot", "Dot product", "dot", (*session.Session).Dot))
	cmd.AddCommand(binary("cross", "Cross product of two 3D vectors", "cross", (*session.Session).Cross))

	angleCmd := binary("angle", "Angle between two vectors", "angle",
		func(s *session.Session, u, v []float64) session.Outcome {
			if unit != "" {
				// Validated in PreRunE.
				au, _ := angle.Parse(unit)
				s.SetVectorUnit(au)
			}

			return s.Angle(u, v)
		})
	angleCmd.Flags().StringVar(&unit, "unit", "", "output unit (deg or rad), defaulting to angle.vector from the config")
	angleCmd.PreRunE = func(*cobra.Command, []string) error {
		if unit == "" {
			return nil
		}
		_, err := angle.Parse(unit)

		return err
	}
	cmd.AddCommand(angleCmd)

	return cmd
}
