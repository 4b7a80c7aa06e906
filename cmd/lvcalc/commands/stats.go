// SPDX-License-Identifier: MIT

package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvcalc/input"
	"github.com/katalvlaran/lvcalc/session"
)

func newStatsCommand(a *app) *cobra.Command {
	names := make([]string, 0, len(session.Statistics()))
	for _, st := range session.Statistics() {
		names = append(names, string(st))
	}

	cmd := &cobra.Command{
		Use:   "stats KIND LIST...",
		Short: "Compute a statistic of a number list",
		Long: `Compute one statistic of a comma-separated number list. Several arguments
are joined with commas, so "1,2 3" and "1,2,3" are the same list.

Kinds: ` + strings.Join(names, ", ") + `.
Variance and standard deviation are population statistics; kurtosis is excess
kurtosis.`,
		Example: `  lvcalc stats mean 2,4,4,4,5,5,7,9
  lvcalc stats describe 2 4 4 4 5 5 7 9
  lvcalc stats sum -1 -2 3`,
		Args:      cobra.MinimumNArgs(2),
		ValidArgs: names,
		RunE: func(cmd *cobra.Command, args []string) error {
			which := session.Statistic(strings.ToLower(args[0]))

			return a.run(cmd, func(s *session.Session) session.Outcome {
				xs, err := input.ParseNumbers(strings.Join(args[1:], ","))
				if err != nil {
					return s.Report("stats_"+string(which), err)
				}

				return s.Stats(which, xs)
			})
		},
	}
	cmd.Flags().SetInterspersed(false)

	return cmd
}
