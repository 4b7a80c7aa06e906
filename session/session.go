// SPDX-License-Identifier: MIT

package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/lvcalc/angle"
	"github.com/katalvlaran/lvcalc/calc"
	"github.com/katalvlaran/lvcalc/config"
	"github.com/katalvlaran/lvcalc/equation"
	"github.com/katalvlaran/lvcalc/history"
	"github.com/katalvlaran/lvcalc/telemetry"
)

const (
	panicCapacityInvalid = "session: WithHistoryCapacity: capacity must be > 0"
	panicDelayInvalid    = "session: WithResetDelay: delay must be >= 0"
)

// Outcome is the result of one action.
//
// On success Display is the one-line value and Detail, when set, is the
// multi-line text of a result pane. On failure Err and Kind are set, Display
// is "Error: <message>" and ResetAfter is non-zero for division and modulo
// by zero.
type Outcome struct {
	Op         string
	Display    string
	Detail     string
	Err        error
	Kind       Kind
	ResetAfter time.Duration
}

// OK reports whether the action succeeded.
func (o Outcome) OK() bool { return o.Err == nil }

// Option configures New.
type Option func(*Options)

// Options is the effective configuration of a Session.
type Options struct {
	logger      zerolog.Logger
	metrics     *telemetry.Metrics
	capacity    int
	trig        angle.Unit
	vector      angle.Unit
	resetDelay  time.Duration
	cubicMethod equation.Method
}

// WithLogger sets the parent logger; the session derives a child from it.
func WithLogger(l zerolog.Logger) Option { return func(o *Options) { o.logger = l } }

// WithMetrics attaches metrics; nil keeps the no-op default.
func WithMetrics(m *telemetry.Metrics) Option { return func(o *Options) { o.metrics = m } }

// WithHistoryCapacity bounds the history log. Panics if n <= 0.
func WithHistoryCapacity(n int) Option {
	if n <= 0 {
		panic(panicCapacityInvalid)
	}

	return func(o *Options) { o.capacity = n }
}

// WithTrigUnit sets the unit trig inputs are read in.
func WithTrigUnit(u angle.Unit) Option { return func(o *Options) { o.trig = u } }

// WithVectorUnit sets the unit vector angles are reported in.
func WithVectorUnit(u angle.Unit) Option { return func(o *Options) { o.vector = u } }

// WithResetDelay sets Outcome.ResetAfter for division/modulo by zero.
// Panics if d < 0.
func WithResetDelay(d time.Duration) Option {
	if d < 0 {
		panic(panicDelayInvalid)
	}

	return func(o *Options) { o.resetDelay = d }
}

// WithCubicMethod selects the default algorithm for Cubic.
// Panics on an unknown method.
func WithCubicMethod(m equation.Method) Option {
	_ = equation.WithMethod(m)

	return func(o *Options) { o.cubicMethod = m }
}

// Session is one user's calculator.
type Session struct {
	mu      sync.Mutex
	id      string
	acc     *calc.Accumulator
	hist    *history.Log
	trig    angle.Unit
	vector  angle.Unit
	opts    Options
	log     zerolog.Logger
	metrics *telemetry.Metrics
}

// New returns a fresh session showing "0" with an empty history.
func New(opts ...Option) (*Session, error) {
	o := Options{
		logger:     zerolog.Nop(),
		capacity:   history.DefaultCapacity,
		resetDelay: config.DefaultResetDelay,
	}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	hist, err := history.New(o.capacity)
	if err != nil {
		return nil, err
	}
	if o.metrics == nil {
		o.metrics = &telemetry.Metrics{}
	}

	id := uuid.NewString()
	s := &Session{
		id:      id,
		hist:    hist,
		acc:     calc.NewAccumulator(hist),
		trig:    o.trig,
		vector:  o.vector,
		opts:    o,
		metrics: o.metrics,
		log:     o.logger.With().Str("component", "session").Str("session_id", id).Logger(),
	}
	s.log.Debug().Int("history_capacity", o.capacity).Msg("session started")

	return s, nil
}

// FromConfig builds a session from a validated configuration.
func FromConfig(cfg config.Config, log zerolog.Logger, m *telemetry.Metrics) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return New(
		WithLogger(log),
		WithMetrics(m),
		WithHistoryCapacity(cfg.History.Capacity),
		WithTrigUnit(cfg.TrigUnit()),
		WithVectorUnit(cfg.VectorUnit()),
		WithResetDelay(cfg.Display.ResetDelay),
	)
}

// ID returns the session's UUID.
func (s *Session) ID() string { return s.id }

// Display returns the accumulator's current operand.
func (s *Session) Display() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.acc.Input()
}

// History returns the records, newest first.
func (s *Session) History() []string { return s.hist.Entries() }

// ClearHistory empties the history log.
func (s *Session) ClearHistory() {
	s.hist.Clear()
	s.metrics.SetHistoryEntries(0)
}

// TrigUnit returns the unit trig inputs are read in.
func (s *Session) TrigUnit() angle.Unit {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.trig
}

// VectorUnit returns the unit vector angles are reported in.
func (s *Session) VectorUnit() angle.Unit {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.vector
}

// SetTrigUnit changes the trig unit.
func (s *Session) SetTrigUnit(u angle.Unit) {
	s.mu.Lock()
	s.trig = u
	s.mu.Unlock()
}

// SetVectorUnit changes the vector-angle unit.
func (s *Session) SetVectorUnit(u angle.Unit) {
	s.mu.Lock()
	s.vector = u
	s.mu.Unlock()
}

// ToggleTrigUnit flips the trig unit and returns the new value.
func (s *Session) ToggleTrigUnit() angle.Unit {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.trig = s.trig.Toggle()

	return s.trig
}

// ToggleVectorUnit flips the vector-angle unit and returns the new value.
func (s *Session) ToggleVectorUnit() angle.Unit {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vector = s.vector.Toggle()

	return s.vector
}

// Report turns a failure that happened outside the engine (typically input
// parsing in a front end) into an Outcome, with the usual logging and metrics.
func (s *Session) Report(op string, err error) Outcome {
	if err == nil {
		err = errors.New("session: Report called without an error")
	}

	return s.run(op, func() (Outcome, error) { return Outcome{}, err })
}

// run executes fn under the session lock and finishes its Outcome.
func (s *Session) run(op string, fn func() (Outcome, error)) Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()
	out, err := fn()
	elapsed := time.Since(start)
	out.Op = op

	if err != nil {
		kind := KindOf(err)
		out.Err = err
		out.Kind = kind
		out.Display = DisplayError(err)
		if kind == DivisionByZero || kind == ModuloByZero {
			out.ResetAfter = s.opts.resetDelay
		}
		s.log.Warn().Str("op", op).Str("kind", string(kind)).Err(err).Msg("operation failed")
		s.metrics.RecordOperation(op, telemetry.StatusError, elapsed)
		s.metrics.RecordFailure(string(kind))

		return out
	}

	s.log.Debug().Str("op", op).Str("result", out.Display).Dur("elapsed", elapsed).Msg("operation done")
	s.metrics.RecordOperation(op, telemetry.StatusOK, elapsed)
	s.metrics.SetHistoryEntries(s.hist.Len())

	return out
}
