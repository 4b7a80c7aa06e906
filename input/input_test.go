// SPDX-License-Identifier: MIT

package input_test

import (
	"testing"

	"github.com/katalvlaran/lvcalc/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNumbers(t *testing.T) {
	xs, err := input.ParseNumbers(" 1, 2.5 ,-3,1e2")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2.5, -3, 100}, xs)

	for _, bad := range []string{"", "   ", "1,,2", "1,a", "NaN", "1,Inf"} {
		_, err = input.ParseNumbers(bad)
		assert.ErrorIs(t, err, input.ErrEmptyOrInvalidInput, bad)
	}
}

func TestParsePair(t *testing.T) {
	n, r, err := input.ParsePair("5, 2")
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, 2, r)

	for _, bad := range []string{"5", "5,2,1", "5.5,2", "a,b", ""} {
		_, _, err = input.ParsePair(bad)
		assert.ErrorIs(t, err, input.ErrInvalidPair, bad)
	}
}

func TestParseMatrix(t *testing.T) {
	m, err := input.ParseMatrix("1,2; 3,4")
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 2}, {3, 4}}, m)

	_, err = input.ParseMatrix("1,2;3")
	assert.ErrorIs(t, err, input.ErrRaggedMatrix)
	_, err = input.ParseMatrix("1,2;x,4")
	assert.ErrorIs(t, err, input.ErrEmptyOrInvalidInput)
	_, err = input.ParseMatrix("")
	assert.ErrorIs(t, err, input.ErrEmptyOrInvalidInput)
}

func TestParseComplex(t *testing.T) {
	z, err := input.ParseComplex("3 + 4i")
	require.NoError(t, err)
	assert.Equal(t, complex(3, 4), z)

	z, err = input.ParseComplex("-2i")
	require.NoError(t, err)
	assert.Equal(t, complex(0, -2), z)

	for _, bad := range []string{"", "3+", "i4", "NaN"} {
		_, err = input.ParseComplex(bad)
		assert.ErrorIs(t, err, input.ErrEmptyOrInvalidInput, bad)
	}
}
