// SPDX-License-Identifier: MIT

package stats

import (
	"errors"
	"math"
	"sort"
)

var (
	// ErrEmptyInput is returned for an empty data set.
	ErrEmptyInput = errors.New("stats: empty input")

	// ErrDegenerateInput is returned when a zero standard deviation would be used as a divisor.
	ErrDegenerateInput = errors.New("stats: zero standard deviation")
)

// Quartiles holds the index-based quartiles and the interquartile range.
type Quartiles struct {
	Q1, Q2, Q3 float64
	IQR        float64
}

// Summary is every statistic of one data set.
//
// Skewness and Kurtosis are zero and Degenerate is true when StdDev is zero.
type Summary struct {
	Count      int
	Sum        float64
	Mean       float64
	Median     float64
	Variance   float64
	StdDev     float64
	Quartiles  Quartiles
	Skewness   float64
	Kurtosis   float64
	Degenerate bool
}

func check(xs []float64) error {
	if len(xs) == 0 {
		return ErrEmptyInput
	}

	return nil
}

func sorted(xs []float64) []float64 {
	s := make([]float64, len(xs))
	copy(s, xs)
	sort.Float64s(s)

	return s
}

// Count returns len(xs).
func Count(xs []float64) (int, error) {
	if err := check(xs); err != nil {
		return 0, err
	}

	return len(xs), nil
}

// Sum returns Σx.
func Sum(xs []float64) (float64, error) {
	if err := check(xs); err != nil {
		return 0, err
	}
	var s float64
	for _, x := range xs {
		s += x
	}

	return s, nil
}

// Mean returns Σx / n.
func Mean(xs []float64) (float64, error) {
	s, err := Sum(xs)
	if err != nil {
		return 0, err
	}

	return s / float64(len(xs)), nil
}

// median of already sorted data.
func median(s []float64) float64 {
	n := len(s)
	if n%2 == 0 {
		return (s[n/2-1] + s[n/2]) / 2
	}

	return s[n/2]
}

// Median returns the middle value, or the mean of the two middle values for even n.
func Median(xs []float64) (float64, error) {
	if err := check(xs); err != nil {
		return 0, err
	}

	return median(sorted(xs)), nil
}

// Variance returns the population variance Σ(x−μ)² / n.
func Variance(xs []float64) (float64, error) {
	mu, err := Mean(xs)
	if err != nil {
		return 0, err
	}
	var ss float64
	for _, x := range xs {
		d := x - mu
		ss += d * d
	}

	return ss / float64(len(xs)), nil
}

// StdDev returns the population standard deviation.
func StdDev(xs []float64) (float64, error) {
	v, err := Variance(xs)
	if err != nil {
		return 0, err
	}

	return math.Sqrt(v), nil
}

// QuartilesOf returns Q1, Q2, Q3 and IQR.
func QuartilesOf(xs []float64) (Quartiles, error) {
	if err := check(xs); err != nil {
		return Quartiles{}, err
	}
	s := sorted(xs)
	n := len(s)
	q := Quartiles{
		Q1: s[n/4],
		Q2: median(s),
		Q3: s[3*n/4],
	}
	q.IQR = q.Q3 - q.Q1

	return q, nil
}

// standardizedMoment returns mean(((x−μ)/σ)^k).
func standardizedMoment(xs []float64, k float64) (float64, error) {
	mu, err := Mean(xs)
	if err != nil {
		return 0, err
	}
	sd, err := StdDev(xs)
	if err != nil {
		return 0, err
	}
	if sd == 0 {
		return 0, ErrDegenerateInput
	}
	var acc float64
	for _, x := range xs {
		acc += math.Pow((x-mu)/sd, k)
	}

	return acc / float64(len(xs)), nil
}

// Skewness returns the third standardized moment.
//
// Errors:
//   - ErrEmptyInput, ErrDegenerateInput.
func Skewness(xs []float64) (float64, error) {
	return standardizedMoment(xs, 3)
}

// Kurtosis returns the excess kurtosis: fourth standardized moment minus 3.
//
// Errors:
//   - ErrEmptyInput, ErrDegenerateInput.
func Kurtosis(xs []float64) (float64, error) {
	m4, err := standardizedMoment(xs, 4)
	if err != nil {
		return 0, err
	}

	return m4 - 3, nil
}

// Describe computes every statistic in one call.
//
// A zero standard deviation is not an error here: Degenerate is set and
// Skewness and Kurtosis stay zero.
//
// Errors:
//   - ErrEmptyInput.
//
// Complexity:
//   - Time O(n log n) for the two sorts (median and quartiles), Space O(n).
func Describe(xs []float64) (Summary, error) {
	if err := check(xs); err != nil {
		return Summary{}, err
	}
	var (
		out Summary
		err error
	)
	out.Count = len(xs)
	out.Sum, _ = Sum(xs)
	out.Mean = out.Sum / float64(out.Count)
	out.Median, _ = Median(xs)
	out.Variance, _ = Variance(xs)
	out.StdDev = math.Sqrt(out.Variance)
	out.Quartiles, _ = QuartilesOf(xs)

	out.Skewness, err = Skewness(xs)
	if errors.Is(err, ErrDegenerateInput) {
		out.Degenerate = true
		out.Skewness = 0

		return out, nil
	}
	out.Kurtosis, _ = Kurtosis(xs)

	return out, nil
}
