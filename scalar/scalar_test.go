// SPDX-License-Identifier: MIT

package scalar_test

import (
	"math"
	"testing"
	"time"

	"github.com/katalvlaran/lvcalc/angle"
	"github.com/katalvlaran/lvcalc/format"
	"github.com/katalvlaran/lvcalc/scalar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrig_DegreesAndRadians(t *testing.T) {
	r, err := scalar.Sin(30, angle.Degrees)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, r.Value, 1e-15)
	assert.Equal(t, "sin(30°) = 0.5", r.Line)

	r, err = scalar.Cos(math.Pi, angle.Radians)
	require.NoError(t, err)
	assert.Equal(t, -1.0, r.Value)

	r, err = scalar.Tan(45, angle.Degrees)
	require.NoError(t, err)
	assert.Equal(t, "tan(45°) = 1", r.Line)

	r, err = scalar.Sin(0.5, angle.Radians)
	require.NoError(t, err)
	assert.Equal(t, "sin(0.5) = 0.4794255386", r.Line)
}

func TestInverseTrig(t *testing.T) {
	r, err := scalar.Asin(0.5, angle.Degrees)
	require.NoError(t, err)
	assert.InDelta(t, 30, r.Value, 1e-12)
	assert.Equal(t, "asin(0.5) = 30°", r.Line)

	r, err = scalar.Acos(-1, angle.Radians)
	require.NoError(t, err)
	assert.Equal(t, math.Pi, r.Value)

	r, err = scalar.Atan(1, angle.Degrees)
	require.NoError(t, err)
	assert.InDelta(t, 45, r.Value, 1e-12)

	_, err = scalar.Asin(1.5, angle.Degrees)
	assert.ErrorIs(t, err, scalar.ErrInvalidDomain)
	_, err = scalar.Acos(-2, angle.Radians)
	assert.ErrorIs(t, err, scalar.ErrInvalidDomain)
}

func TestSqrtLogExp(t *testing.T) {
	r, err := scalar.Sqrt(9)
	require.NoError(t, err)
	assert.Equal(t, "√(9) = 3", r.Line)
	_, err = scalar.Sqrt(-1)
	assert.ErrorIs(t, err, scalar.ErrNegativeDomain)

	r, err = scalar.Log10(1000)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, r.Value, 1e-15)
	assert.Equal(t, "log(1000) = 3", r.Line)
	for _, x := range []float64{0, -5} {
		_, err = scalar.Log10(x)
		assert.ErrorIs(t, err, scalar.ErrNonPositiveDomain)
		_, err = scalar.Ln(x)
		assert.ErrorIs(t, err, scalar.ErrNonPositiveDomain)
	}

	r, err = scalar.Ln(math.E)
	require.NoError(t, err)
	assert.Equal(t, "ln(2.718281828459045) = 1", r.Line)

	r, err = scalar.Log(8, 2)
	require.NoError(t, err)
	assert.InDelta(t, 3, r.Value, 1e-15)
	_, err = scalar.Log(8, 1)
	assert.ErrorIs(t, err, scalar.ErrInvalidDomain)
	_, err = scalar.Log(-8, 2)
	assert.ErrorIs(t, err, scalar.ErrNonPositiveDomain)

	r, err = scalar.Exp(1)
	require.NoError(t, err)
	assert.Equal(t, "e^1 = 2.7182818285", r.Line)
	_, err = scalar.Exp(700.5)
	assert.ErrorIs(t, err, scalar.ErrOverflow)
	_, err = scalar.Exp(700)
	assert.NoError(t, err)
}

func TestHyperbolic(t *testing.T) {
	r, err := scalar.Sinh(0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, r.Value)
	r, err = scalar.Cosh(0)
	require.NoError(t, err)
	assert.Equal(t, "cosh(0) = 1", r.Line)
	r, err = scalar.Tanh(100)
	require.NoError(t, err)
	assert.Equal(t, 1.0, r.Value)

	_, err = scalar.Sinh(1000)
	assert.ErrorIs(t, err, format.ErrNotFinite)
}

func TestFactorial(t *testing.T) {
	r, err := scalar.Factorial(5)
	require.NoError(t, err)
	assert.Equal(t, "5! = 120", r.Line)

	r, err = scalar.Factorial(0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, r.Value)

	_, err = scalar.Factorial(-1)
	assert.ErrorIs(t, err, scalar.ErrInvalidDomain)
	_, err = scalar.Factorial(2.5)
	assert.ErrorIs(t, err, scalar.ErrInvalidDomain)
	_, err = scalar.Factorial(171)
	assert.ErrorIs(t, err, scalar.ErrOverflow)

	_, err = scalar.Factorial(170)
	assert.NoError(t, err)
}

func TestPermutationCombination(t *testing.T) {
	r, err := scalar.Permutation(5, 2)
	require.NoError(t, err)
	assert.Equal(t, 20.0, r.Value)
	assert.Equal(t, "P(5,2) = 20", r.Line)

	r, err = scalar.Combination(5, 2)
	require.NoError(t, err)
	assert.Equal(t, 10.0, r.Value)
	assert.Equal(t, "C(5,2) = 10", r.Line)

	r, err = scalar.Combination(52, 5)
	require.NoError(t, err)
	assert.Equal(t, 2598960.0, r.Value)

	bad := [][2]int{{-1, 0}, {3, -1}, {2, 3}}
	for _, nr := range bad {
		_, err = scalar.Permutation(nr[0], nr[1])
		assert.ErrorIs(t, err, scalar.ErrInvalidDomain, "P%v", nr)
		_, err = scalar.Combination(nr[0], nr[1])
		assert.ErrorIs(t, err, scalar.ErrInvalidDomain, "C%v", nr)
	}

	_, err = scalar.Combination(200, 1)
	assert.ErrorIs(t, err, scalar.ErrOverflow)

	_, err = scalar.Permutation(400, 200)
	assert.ErrorIs(t, err, scalar.ErrOverflow)
}

func TestPermutation_HugeArgumentsReturnPromptly(t *testing.T) {
	done := make(chan error, 1)
	go func() {
		_, err := scalar.Permutation(1<<40, 1<<40)
		done <- err
	}()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, scalar.ErrOverflow)
	case <-time.After(5 * time.Second):
		t.Fatal("Permutation(2^40, 2^40) did not return")
	}
}

func TestTrivial(t *testing.T) {
	assert.Equal(t, -4.5, scalar.Negate(4.5))
	assert.Equal(t, math.Pi, scalar.Pi())
	assert.Equal(t, math.E, scalar.E())
}

func TestRegistry(t *testing.T) {
	f, ok := scalar.Lookup("sqrt")
	require.True(t, ok)
	r, err := f(16, angle.Radians)
	require.NoError(t, err)
	assert.Equal(t, 4.0, r.Value)

	f, ok = scalar.Lookup("sin")
	require.True(t, ok)
	r, err = f(90, angle.Degrees)
	require.NoError(t, err)
	assert.Equal(t, 1.0, r.Value)

	_, ok = scalar.Lookup("sec")
	assert.False(t, ok)
	assert.Contains(t, scalar.Names(), "fact")
	assert.IsIncreasing(t, scalar.Names())
}
