// SPDX-License-Identifier: MIT

package commands

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvcalc/config"
)

func newConfigCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Print the configuration after defaults, the --config file and flag
overrides have been applied. The output is itself a valid config file.`,
		Example: `  lvcalc config > lvcalc.yaml
  lvcalc -c lvcalc.yaml --log-level debug config`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")

				return enc.Encode(a.cfg)
			}
			data, err := config.Marshal(a.cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)

			return err
		},
	}
}
