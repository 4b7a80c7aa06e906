// SPDX-License-Identifier: MIT

package equation_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvcalc/equation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func realParts(t *testing.T, roots []complex128) []float64 {
	t.Helper()
	out := make([]float64, len(roots))
	for i, r := range roots {
		require.Zero(t, imag(r), "root %d is not real", i)
		out[i] = real(r)
	}

	return out
}

func TestLinear(t *testing.T) {
	s, err := equation.Linear(2, -4)
	require.NoError(t, err)
	assert.Equal(t, equation.LinearUnique, s.Kind)
	assert.Equal(t, 2.0, s.X)

	s, err = equation.Linear(0, 0)
	require.NoError(t, err)
	assert.Equal(t, equation.LinearAllReals, s.Kind)
	assert.Equal(t, "all real numbers are solutions", s.Kind.String())

	s, err = equation.Linear(0, 5)
	require.NoError(t, err)
	assert.Equal(t, equation.LinearNone, s.Kind)

	_, err = equation.Linear(math.NaN(), 1)
	assert.ErrorIs(t, err, equation.ErrNonFinite)
}

func TestQuadratic(t *testing.T) {
	s, err := equation.Quadratic(1, -3, 2)
	require.NoError(t, err)
	assert.Equal(t, equation.TwoReal, s.Kind)
	assert.Equal(t, 1.0, s.Discriminant)
	assert.Equal(t, []float64{2, 1}, realParts(t, s.Roots))

	s, err = equation.Quadratic(1, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, equation.RepeatedReal, s.Kind)
	assert.Equal(t, []float64{-1}, realParts(t, s.Roots))

	s, err = equation.Quadratic(1, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, equation.ComplexPair, s.Kind)
	assert.Equal(t, []complex128{complex(0, 1), complex(0, -1)}, s.Roots)
	assert.Equal(t, "Two complex conjugate roots", s.Kind.String())

	_, err = equation.Quadratic(0, 1, 1)
	assert.ErrorIs(t, err, equation.ErrInvalidCoefficient)
}

func TestQuadratic_RootsSatisfyEquation(t *testing.T) {
	cases := [][3]float64{{1, -5, 6}, {2, 3, -7}, {-1, 4, 1}, {3, 1, 5}}
	for _, c := range cases {
		s, err := equation.Quadratic(c[0], c[1], c[2])
		require.NoError(t, err)
		for _, r := range s.Roots {
			v := complex(c[0], 0)*r*r + complex(c[1], 0)*r + complex(c[2], 0)
			assert.InDelta(t, 0, real(v), 1e-9)
			assert.InDelta(t, 0, imag(v), 1e-9)
		}
	}
}

func TestSystem2x2(t *testing.T) {
	s, err := equation.System2x2(2, 3, 8, 1, -1, -1)
	require.NoError(t, err)
	assert.InDelta(t, 1, s.X, 1e-12)
	assert.InDelta(t, 2, s.Y, 1e-12)
	assert.Equal(t, -5.0, s.Det)

	_, err = equation.System2x2(1, 2, 3, 2, 4, 6)
	assert.ErrorIs(t, err, equation.ErrNoUniqueSolution)

	_, err = equation.System2x2(1, 1, 1, 1, 1+1e-12, 2)
	assert.ErrorIs(t, err, equation.ErrNoUniqueSolution)
}

func TestCubic_NewtonScan(t *testing.T) {
	cases := []struct {
		name       string
		a, b, c, d float64
		want       []float64
	}{
		{"single real", 1, 0, 0, -8, []float64{2}},
		{"one real two complex", 1, 0, 1, 1, []float64{-0.6823278038280485}},
		{"negative root", 1, 0, 0, 1000, []float64{-10}},
		{"three real", 2, -4, -22, 24, []float64{-3, 4, 1}},
		{"irrational", 1, -3, 0, 2, []float64{-0.7320508075743838, 1, 2.7320508075688776}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := equation.Cubic(tc.a, tc.b, tc.c, tc.d)
			require.NoError(t, err)
			assert.Equal(t, 3, s.Degree)
			assert.Equal(t, equation.Newton, s.Method)
			assert.False(t, s.Fallback)
			got := realParts(t, s.Roots)
			require.Len(t, got, len(tc.want))
			for i := range got {
				assert.InDelta(t, tc.want[i], got[i], 1e-8)
			}
		})
	}
}

func TestCubic_NewtonMissesMiddleRoot(t *testing.T) {
	// (x−1)(x−2)(x−3): no seed lands in the basin of 2.
	s, err := equation.Cubic(1, -6, 11, -6)
	require.NoError(t, err)
	got := realParts(t, s.Roots)
	require.Len(t, got, 2)
	assert.InDelta(t, 1, got[0], 1e-8)
	assert.InDelta(t, 3, got[1], 1e-8)
}

func TestCubic_Fallback(t *testing.T) {
	s, err := equation.Cubic(1, 0, 0, 1e18)
	require.NoError(t, err)
	assert.True(t, s.Fallback)
	assert.Equal(t, []complex128{0}, s.Roots)
}

func TestCubic_DelegatesToQuadratic(t *testing.T) {
	s, err := equation.Cubic(0, 1, -3, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, s.Degree)
	require.NotNil(t, s.Quadratic)
	assert.Equal(t, equation.TwoReal, s.Quadratic.Kind)
	assert.Equal(t, []float64{2, 1}, realParts(t, s.Roots))

	_, err = equation.Cubic(0, 0, 1, 1)
	assert.ErrorIs(t, err, equation.ErrInvalidCoefficient)

	_, err = equation.Cubic(1, math.Inf(1), 0, 0)
	assert.ErrorIs(t, err, equation.ErrNonFinite)
}

func TestCubic_Cardano(t *testing.T) {
	cardano := equation.WithMethod(equation.Cardano)

	s, err := equation.Cubic(1, -6, 11, -6, cardano)
	require.NoError(t, err)
	assert.Equal(t, equation.Cardano, s.Method)
	got := realParts(t, s.Roots)
	require.Len(t, got, 3)
	for i, want := range []float64{1, 2, 3} {
		assert.InDelta(t, want, got[i], 1e-9)
	}

	s, err = equation.Cubic(1, 0, 0, -1, cardano)
	require.NoError(t, err)
	require.Len(t, s.Roots, 3)
	assert.InDelta(t, 1, real(s.Roots[0]), 1e-12)
	assert.Zero(t, imag(s.Roots[0]))
	assert.InDelta(t, -0.5, real(s.Roots[1]), 1e-12)
	assert.InDelta(t, math.Sqrt(3)/2, imag(s.Roots[1]), 1e-12)
	assert.InDelta(t, -math.Sqrt(3)/2, imag(s.Roots[2]), 1e-12)

	s, err = equation.Cubic(1, -6, 12, -8, cardano)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 2, 2}, realParts(t, s.Roots))

	s, err = equation.Cubic(1, 0, -3, 2, cardano)
	require.NoError(t, err)
	got = realParts(t, s.Roots)
	require.Len(t, got, 3)
	for i, want := range []float64{-2, 1, 1} {
		assert.InDelta(t, want, got[i], 1e-9)
	}
}

func TestWithMethod_PanicsOnUnknown(t *testing.T) {
	assert.Panics(t, func() { equation.WithMethod(equation.Method(9)) })
	assert.Equal(t, "cardano", equation.Cardano.String())
	assert.Equal(t, "newton", equation.Newton.String())
}
