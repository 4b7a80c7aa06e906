// SPDX-License-Identifier: MIT

package calc_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvcalc/calc"
	"github.com/katalvlaran/lvcalc/format"
	"github.com/katalvlaran/lvcalc/history"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// keys types a sequence of digits/operators/"=" into acc and fails on error.
func keys(t *testing.T, acc *calc.Accumulator, seq ...string) {
	t.Helper()
	for _, k := range seq {
		switch k {
		case "=":
			_, err := acc.Calculate()
			require.NoError(t, err, "key %q", k)
		case "+", "-", "*", "/", "^", "%":
			op, err := calc.ParseOperator(k)
			require.NoError(t, err)
			require.NoError(t, acc.AppendOperator(op), "key %q", k)
		default:
			for _, r := range k {
				require.NoError(t, acc.AppendDigit(string(r)), "key %q", k)
			}
		}
	}
}

func TestApply_Table(t *testing.T) {
	cases := []struct {
		a, b float64
		op   calc.Operator
		want float64
	}{
		{3, 4, calc.OpAdd, 7},
		{3, 4, calc.OpSub, -1},
		{3, 4, calc.OpMul, 12},
		{3, 4, calc.OpDiv, 0.75},
		{2, 10, calc.OpPow, 1024},
		{10, 3, calc.OpMod, 1},
		{-10, 3, calc.OpMod, -1},
	}
	for _, tc := range cases {
		got, err := calc.Apply(tc.a, tc.b, tc.op)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "%v %s %v", tc.a, tc.op, tc.b)
	}
}

func TestApply_Failures(t *testing.T) {
	_, err := calc.Apply(1, 0, calc.OpDiv)
	assert.ErrorIs(t, err, calc.ErrDivisionByZero)
	_, err = calc.Apply(1, 0, calc.OpMod)
	assert.ErrorIs(t, err, calc.ErrModuloByZero)
	_, err = calc.Apply(1, 2, calc.Operator('&'))
	assert.ErrorIs(t, err, calc.ErrUnknownOperation)
	_, err = calc.ParseOperator("**")
	assert.ErrorIs(t, err, calc.ErrUnknownOperation)
}

func TestApplyComplex(t *testing.T) {
	z, err := calc.ApplyComplex(complex(1, 2), complex(3, -1), calc.OpMul)
	require.NoError(t, err)
	assert.Equal(t, complex(5, 5), z)

	z, err = calc.ApplyComplex(complex(1, 1), complex(0, 1), calc.OpDiv)
	require.NoError(t, err)
	assert.InDelta(t, 1, real(z), 1e-15)
	assert.InDelta(t, -1, imag(z), 1e-15)

	_, err = calc.ApplyComplex(1, 0, calc.OpDiv)
	assert.ErrorIs(t, err, calc.ErrDivisionByZero)
	_, err = calc.ApplyComplex(1, 1, calc.OpPow)
	assert.ErrorIs(t, err, calc.ErrUnknownOperation)
}

func TestAccumulator_ChainingIsLeftToRight(t *testing.T) {
	log := history.NewDefault()
	acc := calc.NewAccumulator(log)

	keys(t, acc, "3", "+", "4", "*", "2", "=")

	assert.Equal(t, "14", acc.Input())
	assert.Equal(t, calc.Idle, acc.State())
	assert.Equal(t, []string{"7 * 2 = 14", "3 + 4 = 7"}, log.Entries())
}

func TestAccumulator_DigitEntry(t *testing.T) {
	acc := calc.NewAccumulator(nil)
	assert.Equal(t, "0", acc.Input())

	keys(t, acc, "0", "0", "7")
	assert.Equal(t, "7", acc.Input(), "leading zeros are replaced")

	keys(t, acc, ".", "5")
	assert.Equal(t, "7.5", acc.Input())

	err := acc.AppendDigit(".")
	assert.ErrorIs(t, err, calc.ErrInvalidDigit)
	assert.Equal(t, "7.5", acc.Input(), "rejected digit leaves state")

	err = acc.AppendDigit("a")
	assert.ErrorIs(t, err, calc.ErrInvalidDigit)
	err = acc.AppendDigit("12")
	assert.ErrorIs(t, err, calc.ErrInvalidDigit)
}

func TestAccumulator_FreshOperandAfterOperator(t *testing.T) {
	acc := calc.NewAccumulator(nil)
	keys(t, acc, "12", "+")
	assert.True(t, acc.AwaitingOperand())
	prev, op, ok := acc.Pending()
	require.True(t, ok)
	assert.Equal(t, 12.0, prev)
	assert.Equal(t, calc.OpAdd, op)

	keys(t, acc, ".", "5")
	assert.Equal(t, "0.5", acc.Input())
	keys(t, acc, "=")
	assert.Equal(t, "12.5", acc.Input())
}

func TestAccumulator_OperatorReplacementDoesNotChain(t *testing.T) {
	log := history.NewDefault()
	acc := calc.NewAccumulator(log)
	keys(t, acc, "5", "+", "-", "2", "=")

	assert.Equal(t, "3", acc.Input())
	assert.Equal(t, 1, log.Len())
}

func TestAccumulator_CalculateWithoutOperatorIsNoop(t *testing.T) {
	log := history.NewDefault()
	acc := calc.NewAccumulator(log)
	keys(t, acc, "42")

	s, err := acc.Calculate()
	require.NoError(t, err)
	assert.Equal(t, "42", s)
	assert.Equal(t, 0, log.Len())
}

func TestAccumulator_DivisionByZeroKeepsState(t *testing.T) {
	log := history.NewDefault()
	acc := calc.NewAccumulator(log)
	keys(t, acc, "8", "/", "0")

	_, err := acc.Calculate()
	assert.ErrorIs(t, err, calc.ErrDivisionByZero)
	assert.Equal(t, calc.PendingOperator, acc.State())
	assert.Equal(t, "0", acc.Input())
	assert.Equal(t, 0, log.Len())

	acc.Clear()
	assert.Equal(t, calc.Idle, acc.State())
	assert.Equal(t, "0", acc.Input())
}

func TestAccumulator_ChainedFailureBlocksOperator(t *testing.T) {
	acc := calc.NewAccumulator(nil)
	keys(t, acc, "8", "%", "0")

	err := acc.AppendOperator(calc.OpAdd)
	assert.ErrorIs(t, err, calc.ErrModuloByZero)
	_, op, ok := acc.Pending()
	require.True(t, ok)
	assert.Equal(t, calc.OpMod, op)
}

func TestAccumulator_OverflowIsFormatFailure(t *testing.T) {
	acc := calc.NewAccumulator(nil)
	keys(t, acc, "10", "^", "400")

	_, err := acc.Calculate()
	assert.ErrorIs(t, err, format.ErrNotFinite)
	assert.Equal(t, calc.PendingOperator, acc.State())
}

func TestAccumulator_SetValueAndNegate(t *testing.T) {
	acc := calc.NewAccumulator(nil)
	s, err := acc.SetValue(math.Pi)
	require.NoError(t, err)
	assert.Equal(t, "3.1415926536", s)
	assert.True(t, acc.AwaitingOperand())

	assert.Equal(t, "-3.1415926536", acc.Negate())

	_, err = acc.SetValue(math.NaN())
	assert.ErrorIs(t, err, format.ErrNotFinite)
	assert.Equal(t, "-3.1415926536", acc.Input())

	keys(t, acc, "9")
	assert.Equal(t, "9", acc.Input())
}

func TestAccumulator_UnknownOperator(t *testing.T) {
	acc := calc.NewAccumulator(nil)
	err := acc.AppendOperator(calc.Operator('&'))
	assert.ErrorIs(t, err, calc.ErrUnknownOperation)
	assert.Equal(t, calc.Idle, acc.State())
}

func TestAccumulator_EnterChains(t *testing.T) {
	acc := calc.NewAccumulator(nil)
	require.NoError(t, acc.Enter(12.5))
	require.NoError(t, acc.AppendOperator(calc.OpAdd))
	require.NoError(t, acc.Enter(2.5))
	require.NoError(t, acc.AppendOperator(calc.OpMul))
	assert.Equal(t, "15", acc.Input())

	assert.ErrorIs(t, acc.Enter(math.Inf(1)), format.ErrNotFinite)
}
