// SPDX-License-Identifier: MIT

package vector_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvcalc/angle"
	"github.com/katalvlaran/lvcalc/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMagnitude(t *testing.T) {
	m, err := vector.Magnitude([]float64{3, 4})
	require.NoError(t, err)
	assert.Equal(t, 5.0, m)

	m, err = vector.Magnitude([]float64{1, 2, 2, 4})
	require.NoError(t, err)
	assert.Equal(t, 5.0, m)

	_, err = vector.Magnitude(nil)
	assert.ErrorIs(t, err, vector.ErrEmpty)
}

func TestDot(t *testing.T) {
	d, err := vector.Dot([]float64{1, 2, 3}, []float64{4, -5, 6})
	require.NoError(t, err)
	assert.Equal(t, 12.0, d)

	_, err = vector.Dot([]float64{1, 2}, []float64{1, 2, 3})
	assert.ErrorIs(t, err, vector.ErrDimensionMismatch)
}

func TestCross(t *testing.T) {
	c, err := vector.Cross([]float64{1, 0, 0}, []float64{0, 1, 0})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 1}, c)

	u, v := []float64{2, -1, 3}, []float64{0.5, 4, -2}
	c, err = vector.Cross(u, v)
	require.NoError(t, err)
	du, _ := vector.Dot(c, u)
	dv, _ := vector.Dot(c, v)
	assert.InDelta(t, 0, du, 1e-12)
	assert.InDelta(t, 0, dv, 1e-12)

	_, err = vector.Cross([]float64{1, 0}, []float64{0, 1})
	assert.ErrorIs(t, err, vector.ErrDimensionMismatch)
}

func TestAngle(t *testing.T) {
	a, err := vector.Angle([]float64{1, 0}, []float64{0, 1}, angle.Degrees)
	require.NoError(t, err)
	assert.InDelta(t, 90, a, 1e-12)

	a, err = vector.Angle([]float64{1, 0}, []float64{0, 1}, angle.Radians)
	require.NoError(t, err)
	assert.InDelta(t, math.Pi/2, a, 1e-12)

	// Parallel vectors whose cosine rounds above 1 still yield 0.
	a, err = vector.Angle([]float64{0.1, 0.2, 0.3}, []float64{0.3, 0.6, 0.9}, angle.Degrees)
	require.NoError(t, err)
	assert.False(t, math.IsNaN(a))
	assert.InDelta(t, 0, a, 1e-6)

	a, err = vector.Angle([]float64{1, 1}, []float64{-2, -2}, angle.Degrees)
	require.NoError(t, err)
	assert.InDelta(t, 180, a, 1e-6)

	_, err = vector.Angle([]float64{0, 0}, []float64{1, 1}, angle.Degrees)
	assert.ErrorIs(t, err, vector.ErrZeroMagnitude)
	_, err = vector.Angle([]float64{1}, []float64{1, 1}, angle.Degrees)
	assert.ErrorIs(t, err, vector.ErrDimensionMismatch)
}
