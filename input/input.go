// SPDX-License-Identifier: MIT

// Package input turns the raw text a user types into the numbers the engine
// consumes: comma-separated lists, "n,r" integer pairs and "a,b;c,d" matrices.
package input

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
	"strconv"
	"strings"
)

var (
	// ErrEmptyOrInvalidInput is returned for blank input or a token that is
	// not a finite number.
	ErrEmptyOrInvalidInput = errors.New("input: empty or invalid number list")

	// ErrInvalidPair is returned when ParsePair does not get exactly two integers.
	ErrInvalidPair = errors.New("input: expected two integers \"n,r\"")

	// ErrRaggedMatrix is returned when matrix rows differ in length.
	ErrRaggedMatrix = errors.New("input: matrix rows differ in length")
)

// ParseNumber parses one finite float, ignoring surrounding blanks.
func ParseNumber(s string) (float64, error) {
	x, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, fmt.Errorf("%q: %w", s, ErrEmptyOrInvalidInput)
	}

	return x, nil
}

// ParseComplex parses "3+4i", "-2i" or a plain real. Blanks are ignored.
func ParseComplex(s string) (complex128, error) {
	z, err := strconv.ParseComplex(strings.ReplaceAll(s, " ", ""), 128)
	if err != nil || cmplx.IsNaN(z) || cmplx.IsInf(z) {
		return 0, fmt.Errorf("%q: %w", s, ErrEmptyOrInvalidInput)
	}

	return z, nil
}

// ParseNumbers parses "1, 2.5, -3" into a non-empty slice.
func ParseNumbers(s string) ([]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, ErrEmptyOrInvalidInput
	}
	fields := strings.Split(s, ",")
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		x, err := ParseNumber(f)
		if err != nil {
			return nil, err
		}
		out = append(out, x)
	}

	return out, nil
}

// ParseVector is ParseNumbers under the name the vector commands use.
func ParseVector(s string) ([]float64, error) {
	return ParseNumbers(s)
}

// ParsePair parses "n,r" into two integers.
func ParsePair(s string) (n, r int, err error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%q: %w", s, ErrInvalidPair)
	}
	n, errN := strconv.Atoi(strings.TrimSpace(parts[0]))
	r, errR := strconv.Atoi(strings.TrimSpace(parts[1]))
	if errN != nil || errR != nil {
		return 0, 0, fmt.Errorf("%q: %w", s, ErrInvalidPair)
	}

	return n, r, nil
}

// ParseMatrix parses rows separated by ';' with comma-separated entries,
// e.g. "1,2;3,4".
func ParseMatrix(s string) ([][]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, ErrEmptyOrInvalidInput
	}
	var rows [][]float64
	for i, line := range strings.Split(s, ";") {
		row, err := ParseNumbers(line)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, fmt.Errorf("row %d: %w", i, ErrRaggedMatrix)
		}
		rows = append(rows, row)
	}

	return rows, nil
}
