// SPDX-License-Identifier: MIT

// Package vector implements the calculator's vector operations: magnitude,
// dot product, 3D cross product and the angle between two vectors.
//
// Vectors are plain []float64. Binary operations require equal lengths;
// Cross requires exactly three components.
package vector

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvcalc/angle"
)

var (
	// ErrDimensionMismatch is returned for unequal lengths, or a non-3D Cross operand.
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")

	// ErrZeroMagnitude is returned by Angle when either vector has zero norm.
	ErrZeroMagnitude = errors.New("vector: zero magnitude")

	// ErrEmpty is returned for a vector with no components.
	ErrEmpty = errors.New("vector: no components")
)

func sameLen(op string, u, v []float64) error {
	if len(u) == 0 || len(v) == 0 {
		return fmt.Errorf("%s: %w", op, ErrEmpty)
	}
	if len(u) != len(v) {
		return fmt.Errorf("%s: %d vs %d: %w", op, len(u), len(v), ErrDimensionMismatch)
	}

	return nil
}

// Magnitude returns the Euclidean norm of v (any dimension).
func Magnitude(v []float64) (float64, error) {
	if len(v) == 0 {
		return 0, fmt.Errorf("Magnitude: %w", ErrEmpty)
	}
	var sum float64
	for _, x := range v {
		sum += x * x
	}

	return math.Sqrt(sum), nil
}

// Dot returns Σ uᵢvᵢ.
func Dot(u, v []float64) (float64, error) {
	if err := sameLen("Dot", u, v); err != nil {
		return 0, err
	}
	var sum float64
	for i := range u {
		sum += u[i] * v[i]
	}

	return sum, nil
}

// Cross returns u × v for 3D vectors.
func Cross(u, v []float64) ([]float64, error) {
	if len(u) != 3 || len(v) != 3 {
		return nil, fmt.Errorf("Cross: need 3D operands, got %d and %d: %w", len(u), len(v), ErrDimensionMismatch)
	}

	return []float64{
		u[1]*v[2] - u[2]*v[1],
		u[2]*v[0] - u[0]*v[2],
		u[0]*v[1] - u[1]*v[0],
	}, nil
}

// Angle returns the angle between u and v expressed in unit.
// The cosine is clamped to [-1, 1] before arccos.
func Angle(u, v []float64, unit angle.Unit) (float64, error) {
	dot, err := Dot(u, v)
	if err != nil {
		return 0, fmt.Errorf("Angle: %w", err)
	}
	mu, _ := Magnitude(u)
	mv, _ := Magnitude(v)
	if mu == 0 || mv == 0 {
		return 0, fmt.Errorf("Angle: %w", ErrZeroMagnitude)
	}
	c := math.Max(-1, math.Min(1, dot/(mu*mv)))

	return unit.FromRadians(math.Acos(c)), nil
}
