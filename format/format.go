// SPDX-License-Identifier: MIT

package format

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Decimals is the number of fractional digits kept for non-integer results.
const Decimals = 10

// ErrorToken is what Display returns in place of a non-finite value.
const ErrorToken = "Error"

// ErrNotFinite is returned when a result is NaN or ±Inf.
var ErrNotFinite = errors.New("format: result is not a finite number")

// Format canonicalizes x into its display string.
//
// Integers render with no decimal point; other values are rounded to
// Decimals places with insignificant zeros removed. Negative zero, and values
// that round to zero, render as "0".
//
// Errors:
//   - ErrNotFinite if x is NaN or ±Inf.
func Format(x float64) (string, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return "", ErrNotFinite
	}
	if x == math.Trunc(x) {
		return trimNegativeZero(strconv.FormatFloat(x, 'f', 0, 64)), nil
	}

	s := strconv.FormatFloat(x, 'f', Decimals, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")

	return trimNegativeZero(s), nil
}

// Display is Format with the failure folded into ErrorToken.
func Display(x float64) string {
	s, err := Format(x)
	if err != nil {
		return ErrorToken
	}

	return s
}

// Plain renders x using the shortest decimal that round-trips, without an exponent.
// It is used to echo operands, not results.
func Plain(x float64) string {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return ErrorToken
	}

	return trimNegativeZero(strconv.FormatFloat(x, 'f', -1, 64))
}

// Complex renders re ± im·i, with both parts formatted by Format.
// A zero imaginary part renders as the real part alone.
func Complex(z complex128) (string, error) {
	re, err := Format(real(z))
	if err != nil {
		return "", err
	}
	if imag(z) == 0 {
		return re, nil
	}
	im, err := Format(math.Abs(imag(z)))
	if err != nil {
		return "", err
	}
	if im == "0" {
		return re, nil
	}
	sign := " + "
	if imag(z) < 0 {
		sign = " - "
	}

	return re + sign + im + "i", nil
}

// Vector renders xs as "[a, b, c]".
func Vector(xs []float64) (string, error) {
	var b strings.Builder
	b.WriteByte('[')
	for i, x := range xs {
		s, err := Format(x)
		if err != nil {
			return "", err
		}
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(s)
	}
	b.WriteByte(']')

	return b.String(), nil
}

// Rows renders a matrix one bracketed row per line, without a trailing newline.
func Rows(rows [][]float64) (string, error) {
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		s, err := Vector(row)
		if err != nil {
			return "", err
		}
		lines = append(lines, s)
	}

	return strings.Join(lines, "\n"), nil
}

func trimNegativeZero(s string) string {
	if s == "-0" {
		return "0"
	}

	return s
}
