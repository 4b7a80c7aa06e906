// SPDX-License-Identifier: MIT

package expr_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcalc/angle"
	"github.com/katalvlaran/lvcalc/expr"
	"github.com/katalvlaran/lvcalc/scalar"
)

func TestEvaluate(t *testing.T) {
	deg := expr.Env{Unit: angle.Degrees, Ans: 10}
	cases := []struct {
		src  string
		want float64
	}{
		{"3 + 4 * 2", 11},
		{"(3 + 4) * 2", 14},
		{"2 ^ 10", 1024},
		{"7 % 3", 1},
		{"-3 + 1", -2},
		{"sin(30) + sqrt(16)", 4.5},
		{"logb(8, 2)", 3},
		{"perm(5, 2) + comb(5, 2)", 30},
		{"fact(5)", 120},
		{"ans / 4", 2.5},
		{"2 * pi", 2 * math.Pi},
		{"ln(e)", 1},
		{"1e5", 1e5},
		{"2.5E-3 * 4", 0.01},
		{"1e+2 + .5e1", 105},
		{"e * 1e0", math.E},
	}
	for _, tc := range cases {
		t.Run(tc.src, func(t *testing.T) {
			got, err := expr.Evaluate(tc.src, deg)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, 1e-12)
		})
	}
}

func TestEvaluate_Radians(t *testing.T) {
	got, err := expr.Evaluate("cos(pi)", expr.Env{Unit: angle.Radians})
	require.NoError(t, err)
	assert.InDelta(t, -1, got, 1e-12)

	got, err = expr.Evaluate("asin(1)", expr.Env{Unit: angle.Degrees})
	require.NoError(t, err)
	assert.InDelta(t, 90, got, 1e-9)
}

func TestEvaluate_DomainErrorsPassThrough(t *testing.T) {
	env := expr.Env{}
	_, err := expr.Evaluate("sqrt(-1)", env)
	assert.ErrorIs(t, err, scalar.ErrNegativeDomain)

	_, err = expr.Evaluate("ln(0)", env)
	assert.ErrorIs(t, err, scalar.ErrNonPositiveDomain)

	_, err = expr.Evaluate("comb(2, 5)", env)
	assert.ErrorIs(t, err, scalar.ErrInvalidDomain)

	_, err = expr.Evaluate("logb(8, 1)", env)
	assert.ErrorIs(t, err, scalar.ErrInvalidDomain)
}

func TestEvaluate_Invalid(t *testing.T) {
	for _, src := range []string{"", "   ", "1e400", "3 +", "foo + 1", "1 < 2", "sqrt(1, 2)", "(1"} {
		_, err := expr.Evaluate(src, expr.Env{})
		assert.ErrorIs(t, err, expr.ErrInvalidExpression, src)
	}
}

func TestEvaluate_ScientificNotationInFunctions(t *testing.T) {
	got, err := expr.Evaluate("sqrt(1e4) + logb(1e3, 10)", expr.Env{})
	require.NoError(t, err)
	assert.InDelta(t, 103, got, 1e-9)

	_, err = expr.Evaluate("perm(1e12, 1e12)", expr.Env{})
	assert.ErrorIs(t, err, scalar.ErrOverflow)
}
