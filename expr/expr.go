// SPDX-License-Identifier: MIT

package expr

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/Knetic/govaluate"

	"github.com/katalvlaran/lvcalc/angle"
	"github.com/katalvlaran/lvcalc/format"
	"github.com/katalvlaran/lvcalc/scalar"
)

// ErrInvalidExpression wraps every failure that is not a domain error of a
// function: syntax, unknown names, wrong arity, boolean results.
var ErrInvalidExpression = errors.New("expr: invalid expression")

// Env is what an expression can see besides its literals.
type Env struct {
	// Unit is the trigonometric unit of sin/cos/tan input and asin/acos/atan output.
	Unit angle.Unit

	// Ans is bound to the identifier "ans".
	Ans float64
}

// Evaluate parses and evaluates src in env.
func Evaluate(src string, env Env) (float64, error) {
	if strings.TrimSpace(src) == "" {
		return 0, fmt.Errorf("empty: %w", ErrInvalidExpression)
	}
	text, err := expandExponents(src)
	if err != nil {
		return 0, err
	}
	// govaluate spells exponentiation "**"; "^" is its bitwise xor.
	e, err := govaluate.NewEvaluableExpressionWithFunctions(strings.ReplaceAll(text, "^", "**"), functions(env.Unit))
	if err != nil {
		return 0, fmt.Errorf("%q: %w: %v", src, ErrInvalidExpression, err)
	}

	v, err := e.Evaluate(map[string]interface{}{
		"pi":  math.Pi,
		"e":   math.E,
		"ans": env.Ans,
	})
	if err != nil {
		if isDomainError(err) {
			return 0, err
		}

		return 0, fmt.Errorf("%q: %w: %v", src, ErrInvalidExpression, err)
	}
	x, ok := v.(float64)
	if !ok {
		return 0, fmt.Errorf("%q: %w: result is %T", src, ErrInvalidExpression, v)
	}

	return x, nil
}

// exponentLiteral matches a number in scientific notation together with the
// one character before it, which must not continue an identifier or number.
var exponentLiteral = regexp.MustCompile(`(?:^|[^\w.])(?:\d+\.?\d*|\.\d+)[eE][+-]?\d+\b`)

// expandExponents rewrites "1.5e3" as "1500" for the govaluate tokenizer,
// which only reads plain decimals.
func expandExponents(src string) (string, error) {
	var bad error
	out := exponentLiteral.ReplaceAllStringFunc(src, func(m string) string {
		prefix, lit := "", m
		if c := m[0]; c != '.' && (c < '0' || c > '9') {
			prefix, lit = m[:1], m[1:]
		}
		x, err := strconv.ParseFloat(lit, 64)
		if err != nil || math.IsInf(x, 0) {
			bad = fmt.Errorf("%q: %w: number out of range", lit, ErrInvalidExpression)

			return m
		}

		return prefix + strconv.FormatFloat(x, 'f', -1, 64)
	})

	return out, bad
}

func isDomainError(err error) bool {
	for _, e := range []error{
		scalar.ErrNegativeDomain, scalar.ErrNonPositiveDomain,
		scalar.ErrInvalidDomain, scalar.ErrOverflow,
		format.ErrNotFinite, ErrInvalidExpression,
	} {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// functions binds the scalar library for unit u.
func functions(u angle.Unit) map[string]govaluate.ExpressionFunction {
	fns := make(map[string]govaluate.ExpressionFunction, len(scalar.Names())+3)
	for _, name := range scalar.Names() {
		f, _ := scalar.Lookup(name)
		fns[name] = unary(name, f, u)
	}
	fns["logb"] = func(args ...interface{}) (interface{}, error) {
		xs, err := floats("logb", 2, args)
		if err != nil {
			return nil, err
		}
		r, err := scalar.Log(xs[0], xs[1])

		return r.Value, err
	}
	fns["perm"] = pair("perm", scalar.Permutation)
	fns["comb"] = pair("comb", scalar.Combination)

	return fns
}

func unary(name string, f scalar.Func, u angle.Unit) govaluate.ExpressionFunction {
	return func(args ...interface{}) (interface{}, error) {
		xs, err := floats(name, 1, args)
		if err != nil {
			return nil, err
		}
		r, err := f(xs[0], u)

		return r.Value, err
	}
}

func pair(name string, f func(n, r int) (scalar.Result, error)) govaluate.ExpressionFunction {
	return func(args ...interface{}) (interface{}, error) {
		xs, err := floats(name, 2, args)
		if err != nil {
			return nil, err
		}
		if xs[0] != math.Trunc(xs[0]) || xs[1] != math.Trunc(xs[1]) {
			return nil, fmt.Errorf("%s: %w", name, scalar.ErrInvalidDomain)
		}
		r, err := f(int(xs[0]), int(xs[1]))

		return r.Value, err
	}
}

// floats checks arity and converts every argument.
func floats(name string, n int, args []interface{}) ([]float64, error) {
	if len(args) != n {
		return nil, fmt.Errorf("%s: want %d argument(s), got %d: %w", name, n, len(args), ErrInvalidExpression)
	}
	out := make([]float64, n)
	for i, a := range args {
		x, ok := a.(float64)
		if !ok {
			return nil, fmt.Errorf("%s: argument %d is %T: %w", name, i+1, a, ErrInvalidExpression)
		}
		out[i] = x
	}

	return out, nil
}
