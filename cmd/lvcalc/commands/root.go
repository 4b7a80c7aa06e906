// SPDX-License-Identifier: MIT

// Package commands implements the lvcalc command tree.
package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvcalc/config"
	"github.com/katalvlaran/lvcalc/session"
	"github.com/katalvlaran/lvcalc/telemetry"
)

// errReported marks a failure whose Outcome has already been written.
var errReported = errors.New("lvcalc: operation failed")

// IsReported reports whether err is a calculation failure that the command
// has already printed.
func IsReported(err error) bool { return errors.Is(err, errReported) }

// app is the state shared by every subcommand of one invocation.
type app struct {
	configPath string
	logLevel   string
	jsonOutput bool

	cfg     config.Config
	log     zerolog.Logger
	metrics *telemetry.Metrics
}

// Execute runs the root command.
func Execute(ctx context.Context, version, commit, buildDate string) error {
	return NewRootCommand(version, commit, buildDate).ExecuteContext(ctx)
}

// NewRootCommand builds the full command tree.
func NewRootCommand(version, commit, buildDate string) *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "lvcalc",
		Short: "lvcalc - scientific calculator engine",
		Long: `lvcalc evaluates arithmetic, scientific functions, statistics,
polynomial equations, small matrices and vectors.

Every result is printed the way the calculator display shows it: rounded to
ten decimal places with trailing zeros trimmed. Failures print "Error: ..."
and exit with status 1.`,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildDate),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "override logging.level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&a.jsonOutput, "json", false, "output in JSON format")

	rootCmd.AddCommand(newEvalCommand(a))
	rootCmd.AddCommand(newExprCommand(a))
	rootCmd.AddCommand(newFnCommand(a))
	rootCmd.AddCommand(newPermCommand(a))
	rootCmd.AddCommand(newCombCommand(a))
	rootCmd.AddCommand(newStatsCommand(a))
	rootCmd.AddCommand(newSolveCommand(a))
	rootCmd.AddCommand(newMatrixCommand(a))
	rootCmd.AddCommand(newVectorCommand(a))
	rootCmd.AddCommand(newConfigCommand(a))
	rootCmd.AddCommand(newReplCommand(a))

	return rootCmd
}

// init loads the configuration and builds the logger and metrics.
// "stderr" output goes to the command's error stream.
func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
		if err = cfg.Validate(); err != nil {
			return err
		}
	}
	a.cfg = cfg

	switch cfg.Logging.Output {
	case "", "stderr":
		a.log = telemetry.NewWriterLogger(cmd.ErrOrStderr(), cfg.Logging)
	default:
		if a.log, err = telemetry.NewLogger(cfg.Logging); err != nil {
			return err
		}
	}

	a.metrics, err = telemetry.NewMetrics(cfg.Metrics)

	return err
}

func (a *app) newSession() (*session.Session, error) {
	return session.FromConfig(a.cfg, a.log, a.metrics)
}

// result is the JSON shape of one Outcome.
type result struct {
	Op      string `json:"op"`
	Display string `json:"display"`
	Detail  string `json:"detail,omitempty"`
	Kind    string `json:"kind,omitempty"`
	Error   string `json:"error,omitempty"`
}

// print writes out to the command's stdout and turns a failed Outcome into
// errReported.
func (a *app) print(cmd *cobra.Command, out session.Outcome) error {
	return a.write(cmd.OutOrStdout(), out)
}

func (a *app) write(w io.Writer, out session.Outcome) error {
	if a.jsonOutput {
		r := result{Op: out.Op, Display: out.Display, Detail: out.Detail}
		if !out.OK() {
			r.Kind = string(out.Kind)
			r.Error = out.Err.Error()
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(r); err != nil {
			return err
		}
	} else {
		text := out.Display
		if out.OK() && out.Detail != "" {
			text = out.Detail
		}
		fmt.Fprintln(w, text)
	}
	if !out.OK() {
		return fmt.Errorf("%w: %s", errReported, out.Kind)
	}

	return nil
}

// run opens a session, performs fn and prints its Outcome.
func (a *app) run(cmd *cobra.Command, fn func(*session.Session) session.Outcome) error {
	s, err := a.newSession()
	if err != nil {
		return err
	}

	return a.print(cmd, fn(s))
}
