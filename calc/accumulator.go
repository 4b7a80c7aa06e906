// SPDX-License-Identifier: MIT

package calc

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvcalc/format"
)

// State names the two states of an Accumulator.
type State int

const (
	// Idle means no operator is pending.
	Idle State = iota

	// PendingOperator means a first operand and operator await a second operand.
	PendingOperator
)

// String returns a short state label.
func (s State) String() string {
	if s == PendingOperator {
		return "pending"
	}

	return "idle"
}

// Recorder receives one human-readable line per completed computation.
// *history.Log satisfies it.
type Recorder interface {
	Add(entry string)
}

// Accumulator is the running state of a basic calculator.
//
// Invariant: previous and op are meaningful exactly when pending is true.
// Accumulator is not safe for concurrent use; sessions serialize access.
type Accumulator struct {
	input    string   // currently displayed operand, always parseable
	previous float64  // first operand, valid when pending
	op       Operator // pending operator, valid when pending
	pending  bool
	fresh    bool // next digit replaces input instead of appending
	rec      Recorder
}

// NewAccumulator returns an Idle accumulator showing "0".
// rec may be nil, in which case computations are not recorded.
func NewAccumulator(rec Recorder) *Accumulator {
	return &Accumulator{input: "0", rec: rec}
}

// Input returns the currently displayed operand string.
func (a *Accumulator) Input() string { return a.input }

// Value returns the displayed operand as a number.
func (a *Accumulator) Value() float64 {
	v, _ := strconv.ParseFloat(a.input, 64)

	return v
}

// State reports Idle or PendingOperator.
func (a *Accumulator) State() State {
	if a.pending {
		return PendingOperator
	}

	return Idle
}

// Pending returns the captured first operand and operator, if any.
func (a *Accumulator) Pending() (float64, Operator, bool) {
	return a.previous, a.op, a.pending
}

// AwaitingOperand reports whether the next digit starts a fresh operand.
func (a *Accumulator) AwaitingOperand() bool { return a.fresh }

// AppendDigit types one character into the current operand.
//
// A fresh operand replaces the display; a lone "0" is replaced rather than
// extended. A decimal point on a fresh operand yields "0.", and a second
// decimal point is rejected.
//
// Errors:
//   - ErrInvalidDigit for anything other than "0".."9" or ".". State is unchanged.
func (a *Accumulator) AppendDigit(d string) error {
	if len(d) != 1 || (d[0] != '.' && (d[0] < '0' || d[0] > '9')) {
		return fmt.Errorf("%q: %w", d, ErrInvalidDigit)
	}

	if a.fresh {
		a.fresh = false
		if d == "." {
			a.input = "0."
		} else {
			a.input = d
		}

		return nil
	}

	switch {
	case d == ".":
		if strings.Contains(a.input, ".") {
			return fmt.Errorf("%q: %w", d, ErrInvalidDigit)
		}
		a.input += d
	case a.input == "0":
		a.input = d
	default:
		a.input += d
	}

	return nil
}

// AppendOperator captures the current operand and arms op.
//
// If an operator is already pending and a second operand has been typed, the
// pending operation is evaluated first (left-to-right chaining). Pressing a
// second operator without typing an operand just replaces the first operand
// with the display and the operator with op.
//
// Errors:
//   - ErrUnknownOperation for an unsupported op.
//   - Any error from the chained Calculate; the new operator is then not applied.
func (a *Accumulator) AppendOperator(op Operator) error {
	if !op.Valid() {
		return fmt.Errorf("%q: %w", string(op), ErrUnknownOperation)
	}
	if a.pending && !a.fresh {
		if _, err := a.Calculate(); err != nil {
			return err
		}
	}

	a.previous = a.Value()
	a.op = op
	a.pending = true
	a.fresh = true

	return nil
}

// Calculate evaluates the pending operation and returns the formatted result.
//
// With no pending operator it is a no-op returning the current display.
// On success the result becomes the display, a line "<prev> <op> <cur> = <result>"
// is recorded, the accumulator returns to Idle and the next digit starts fresh.
//
// Errors:
//   - ErrDivisionByZero, ErrModuloByZero, ErrUnknownOperation from Apply.
//   - format.ErrNotFinite when the result overflows or is NaN.
//
// On error the state is left exactly as it was.
func (a *Accumulator) Calculate() (string, error) {
	if !a.pending {
		return a.input, nil
	}

	cur := a.Value()
	r, err := Apply(a.previous, cur, a.op)
	if err != nil {
		return "", err
	}
	s, err := format.Format(r)
	if err != nil {
		return "", err
	}

	if a.rec != nil {
		a.rec.Add(fmt.Sprintf("%s %s %s = %s", format.Plain(a.previous), a.op, format.Plain(cur), s))
	}
	a.input = s
	a.previous, a.op, a.pending = 0, 0, false
	a.fresh = true

	return s, nil
}

// SetValue replaces the display with the formatted x and marks the next digit
// as fresh. Scalar functions and constants use it to publish their result.
//
// Errors:
//   - format.ErrNotFinite; the display is unchanged.
func (a *Accumulator) SetValue(x float64) (string, error) {
	s, err := format.Format(x)
	if err != nil {
		return "", err
	}
	a.input = s
	a.fresh = true

	return s, nil
}

// Enter replaces the current operand with x as if it had been typed, so a
// following operator chains normally.
//
// Errors:
//   - format.ErrNotFinite for NaN or ±Inf; the display is unchanged.
func (a *Accumulator) Enter(x float64) error {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return format.ErrNotFinite
	}
	a.input = format.Plain(x)
	a.fresh = false

	return nil
}

// Negate flips the sign of the displayed operand without touching the
// fresh-operand flag.
func (a *Accumulator) Negate() string {
	a.input = format.Display(-a.Value())

	return a.input
}

// Clear returns to the initial Idle state showing "0".
func (a *Accumulator) Clear() {
	a.input = "0"
	a.previous, a.op, a.pending = 0, 0, false
	a.fresh = false
}
