// SPDX-License-Identifier: MIT

package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvcalc/angle"
	"github.com/katalvlaran/lvcalc/input"
	"github.com/katalvlaran/lvcalc/scalar"
	"github.com/katalvlaran/lvcalc/session"
	"github.com/katalvlaran/lvcalc/telemetry"
)

const shutdownTimeout = 5 * time.Second

func newReplCommand(a *app) *cobra.Command {
	var metricsAddr string

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Interactive keypad session",
		Long: `Read keypad tokens from stdin, separated by blanks or newlines, and print the
display after each one.

  0-9 .          type a digit
  12.5           enter a whole number
  + - * / ^ %    arm an operator
  =              calculate
  c              clear the display
  neg            change sign
  pi e           constants
  sin ... tanh   functions (see "lvcalc fn --help")
  deg rad        trigonometric input unit
  vdeg vrad      vector angle unit
  history        print the history, newest first
  hclear         clear the history
  : EXPR         evaluate a whole expression, e.g. ": 3 + 4 * 2"
  quit           leave

After a division or modulo by zero the error stays on the display for
display.reset_delay and the session is then cleared.`,
		Example: `  echo "3 + 4 * 2 =" | lvcalc repl
  lvcalc repl --metrics-addr 127.0.0.1:9102`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if metricsAddr != "" && !a.metrics.Enabled() {
				mcfg := a.cfg.Metrics
				mcfg.Enabled = true
				m, err := telemetry.NewMetrics(mcfg)
				if err != nil {
					return err
				}
				a.metrics = m
			}
			if metricsAddr == "" && a.metrics.Enabled() {
				metricsAddr = a.cfg.Metrics.Addr
			}

			s, err := a.newSession()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if metricsAddr != "" {
				stop := a.serveMetrics(metricsAddr)
				defer stop()
			}

			r := &repl{app: a, s: s, out: cmd.OutOrStdout()}
			defer r.stopTimer()

			next := scanLines(cmd.InOrStdin())
			if f, ok := cmd.InOrStdin().(*os.File); ok && readline.IsTerminal(int(f.Fd())) {
				rl, err := readline.NewEx(&readline.Config{
					Prompt:       "> ",
					AutoComplete: completer(),
					Stdout:       cmd.OutOrStdout(),
				})
				if err != nil {
					return err
				}
				defer rl.Close()
				next = rl.Readline
			}

			return r.loop(ctx, next)
		},
	}

	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address (enables metrics)")

	return cmd
}

// serveMetrics exposes /metrics until the returned function is called.
func (a *app) serveMetrics(addr string) func() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", a.metrics.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.Error().Err(err).Str("addr", addr).Msg("metrics server failed")
		}
	}()
	a.log.Info().Str("addr", addr).Msg("serving metrics")

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			a.log.Warn().Err(err).Msg("metrics server shutdown")
		}
	}
}

// repl drives one session from a token stream.
type repl struct {
	app *app
	s   *session.Session
	out io.Writer

	mu    sync.Mutex
	timer *time.Timer
}

func (r *repl) loop(ctx context.Context, next func() (string, error)) error {
	for ctx.Err() == nil {
		line, err := next()
		if errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
			return nil
		}
		if err != nil {
			return err
		}
		if !r.line(line) {
			return nil
		}
	}

	return nil
}

// line handles one input line and reports whether the loop goes on.
// A line starting with ':' is one expression; anything else is a run of
// keypad tokens.
func (r *repl) line(line string) bool {
	if src, ok := strings.CutPrefix(strings.TrimSpace(line), ":"); ok {
		r.show(r.s.Expression(src))

		return true
	}
	for _, tok := range strings.Fields(line) {
		if tok == "quit" || tok == "exit" {
			return false
		}
		r.token(tok)
	}

	return true
}

// scanLines reads plain lines, for pipes and tests.
func scanLines(in io.Reader) func() (string, error) {
	sc := bufio.NewScanner(in)

	return func() (string, error) {
		if sc.Scan() {
			return sc.Text(), nil
		}
		if err := sc.Err(); err != nil {
			return "", err
		}

		return "", io.EOF
	}
}

// completer offers every keyword of the first token on a line.
func completer() *readline.PrefixCompleter {
	words := []string{"history", "hclear", "deg", "rad", "vdeg", "vrad", "neg", "pi", "quit", "clear"}
	words = append(words, scalar.Names()...)
	items := make([]readline.PrefixCompleterInterface, len(words))
	for i, w := range words {
		items[i] = readline.PcItem(w)
	}

	return readline.NewPrefixCompleter(items...)
}

// token applies one keypad token and prints the result.
func (r *repl) token(tok string) {
	lower := strings.ToLower(tok)
	switch lower {
	case "history":
		for i, line := range r.s.History() {
			fmt.Fprintf(r.out, "%d. %s\n", i+1, line)
		}

		return
	case "hclear":
		r.s.ClearHistory()
		fmt.Fprintln(r.out, "History cleared")

		return
	case "deg", "rad":
		u, _ := angle.Parse(lower)
		r.s.SetTrigUnit(u)
		fmt.Fprintln(r.out, "Trig unit: "+u.String())

		return
	case "vdeg", "vrad":
		u, _ := angle.Parse(lower[1:])
		r.s.SetVectorUnit(u)
		fmt.Fprintln(r.out, "Vector unit: "+u.String())

		return
	}

	r.show(r.apply(tok, lower))
}

func (r *repl) apply(tok, lower string) session.Outcome {
	switch {
	case len(tok) == 1 && (tok == "." || (tok[0] >= '0' && tok[0] <= '9')):
		return r.s.Digit(tok)
	case tok == "=":
		return r.s.Equals()
	case lower == "c" || lower == "clear":
		return r.s.Clear()
	case lower == "neg" || tok == "±":
		return r.s.Negate()
	case lower == "pi" || tok == "π" || lower == "e":
		return r.s.Constant(lower)
	}
	if _, ok := scalar.Lookup(lower); ok {
		return r.s.Function(lower)
	}
	if x, err := input.ParseNumber(tok); err == nil {
		return r.s.Enter(x)
	}
	if len([]rune(tok)) == 1 {
		return r.s.Operator(tok)
	}

	return r.s.Report("repl", fmt.Errorf("%q: %w", tok, session.ErrUnknownFunction))
}

// show prints the display and schedules the delayed clear after a
// division or modulo by zero.
func (r *repl) show(out session.Outcome) {
	// Failures stay in the session; the loop goes on.
	_ = r.app.write(r.out, out)
	if out.ResetAfter <= 0 {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.timer != nil {
		r.timer.Stop()
	}
	r.timer = time.AfterFunc(out.ResetAfter, func() { r.s.Clear() })
}

func (r *repl) stopTimer() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.timer != nil {
		r.timer.Stop()
	}
}
