// SPDX-License-Identifier: MIT

// Package stats computes descriptive statistics over a list of numbers.
//
// All dispersion measures are population measures (divide by N, not N−1).
// Quartiles are index-based on the sorted data, not interpolated:
//
//	Q1 = sorted[⌊n/4⌋]   Q2 = median   Q3 = sorted[⌊3n/4⌋]
//
// Skewness and kurtosis divide by the standard deviation and therefore fail
// with ErrDegenerateInput when every value is the same. Inputs are never
// mutated; sorting works on a copy.
package stats
