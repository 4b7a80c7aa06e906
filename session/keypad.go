// SPDX-License-Identifier: MIT

package session

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvcalc/calc"
	"github.com/katalvlaran/lvcalc/expr"
	"github.com/katalvlaran/lvcalc/format"
	"github.com/katalvlaran/lvcalc/scalar"
)

// Digit types one character ("0".."9" or ".") into the current operand.
func (s *Session) Digit(d string) Outcome {
	return s.run("digit", func() (Outcome, error) {
		if err := s.acc.AppendDigit(d); err != nil {
			return Outcome{}, err
		}

		return Outcome{Display: s.acc.Input()}, nil
	})
}

// Enter types a whole number at once.
func (s *Session) Enter(x float64) Outcome {
	return s.run("enter", func() (Outcome, error) {
		if err := s.acc.Enter(x); err != nil {
			return Outcome{}, err
		}

		return Outcome{Display: s.acc.Input()}, nil
	})
}

// Operator arms a binary operator, evaluating a pending one first.
func (s *Session) Operator(symbol string) Outcome {
	return s.run("operator", func() (Outcome, error) {
		op, err := calc.ParseOperator(symbol)
		if err != nil {
			return Outcome{}, err
		}
		if err = s.acc.AppendOperator(op); err != nil {
			return Outcome{}, err
		}

		return Outcome{Display: s.acc.Input()}, nil
	})
}

// Equals evaluates the pending operation.
func (s *Session) Equals() Outcome {
	return s.run("calculate", func() (Outcome, error) {
		v, err := s.acc.Calculate()
		if err != nil {
			return Outcome{}, err
		}

		return Outcome{Display: v}, nil
	})
}

// Clear resets the accumulator to "0". History is kept.
func (s *Session) Clear() Outcome {
	return s.run("clear", func() (Outcome, error) {
		s.acc.Clear()

		return Outcome{Display: s.acc.Input()}, nil
	})
}

// Negate flips the sign of the current operand.
func (s *Session) Negate() Outcome {
	return s.run("negate", func() (Outcome, error) {
		return Outcome{Display: s.acc.Negate()}, nil
	})
}

// Constant loads "pi" or "e" into the display.
func (s *Session) Constant(name string) Outcome {
	return s.run("constant", func() (Outcome, error) {
		var x float64
		switch strings.ToLower(name) {
		case "pi", "π":
			x = scalar.Pi()
		case "e":
			x = scalar.E()
		default:
			return Outcome{}, fmt.Errorf("%q: %w", name, ErrUnknownFunction)
		}
		v, err := s.acc.SetValue(x)
		if err != nil {
			return Outcome{}, err
		}

		return Outcome{Display: v}, nil
	})
}

// Function applies a registered single-argument function (see scalar.Names)
// to the displayed operand, publishes the result and records it.
func (s *Session) Function(name string) Outcome {
	return s.run(name, func() (Outcome, error) {
		f, ok := scalar.Lookup(name)
		if !ok {
			return Outcome{}, fmt.Errorf("%q: %w", name, ErrUnknownFunction)
		}
		r, err := f(s.acc.Value(), s.trig)
		if err != nil {
			return Outcome{}, err
		}

		return s.publish(r)
	})
}

// LogBase applies log_base to the displayed operand.
func (s *Session) LogBase(base float64) Outcome {
	return s.run("logb", func() (Outcome, error) {
		r, err := scalar.Log(s.acc.Value(), base)
		if err != nil {
			return Outcome{}, err
		}

		return s.publish(r)
	})
}

// Permutation computes P(n,r) into the display.
func (s *Session) Permutation(n, r int) Outcome {
	return s.run("perm", func() (Outcome, error) {
		res, err := scalar.Permutation(n, r)
		if err != nil {
			return Outcome{}, err
		}

		return s.publish(res)
	})
}

// Combination computes C(n,r) into the display.
func (s *Session) Combination(n, r int) Outcome {
	return s.run("comb", func() (Outcome, error) {
		res, err := scalar.Combination(n, r)
		if err != nil {
			return Outcome{}, err
		}

		return s.publish(res)
	})
}

// Evaluate computes a op b without touching the accumulator and records
// "<a> <op> <b> = <result>".
func (s *Session) Evaluate(a float64, symbol string, b float64) Outcome {
	return s.run("evaluate", func() (Outcome, error) {
		op, err := calc.ParseOperator(symbol)
		if err != nil {
			return Outcome{}, err
		}
		r, err := calc.Apply(a, b, op)
		if err != nil {
			return Outcome{}, err
		}
		v, err := format.Format(r)
		if err != nil {
			return Outcome{}, err
		}
		s.hist.Add(fmt.Sprintf("%s %s %s = %s", format.Plain(a), op, format.Plain(b), v))

		return Outcome{Display: v}, nil
	})
}

// EvaluateComplex computes z1 op z2 for + - * /.
func (s *Session) EvaluateComplex(z1 complex128, symbol string, z2 complex128) Outcome {
	return s.run("evaluate_complex", func() (Outcome, error) {
		op, err := calc.ParseOperator(symbol)
		if err != nil {
			return Outcome{}, err
		}
		z, err := calc.ApplyComplex(z1, z2, op)
		if err != nil {
			return Outcome{}, err
		}
		v, err := format.Complex(z)
		if err != nil {
			return Outcome{}, err
		}
		a, _ := format.Complex(z1)
		b, _ := format.Complex(z2)
		s.hist.Add(fmt.Sprintf("(%s) %s (%s) = %s", a, op, b, v))

		return Outcome{Display: v}, nil
	})
}

// Expression evaluates src with operator precedence (see package expr).
// "ans" is the displayed operand; the result replaces it and is recorded
// as "<src> = <result>".
func (s *Session) Expression(src string) Outcome {
	return s.run("expression", func() (Outcome, error) {
		v, err := expr.Evaluate(src, expr.Env{Unit: s.trig, Ans: s.acc.Value()})
		if err != nil {
			return Outcome{}, err
		}
		out, err := format.Format(v)
		if err != nil {
			return Outcome{}, err
		}

		return s.publish(scalar.Result{Value: v, Line: strings.TrimSpace(src) + " = " + out})
	})
}

// publish moves a scalar result into the display and the history.
func (s *Session) publish(r scalar.Result) (Outcome, error) {
	v, err := s.acc.SetValue(r.Value)
	if err != nil {
		return Outcome{}, err
	}
	s.hist.Add(r.Line)

	return Outcome{Display: v}, nil
}
