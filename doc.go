// SPDX-License-Identifier: MIT

// Package lvcalc is the numeric engine of a scientific calculator: keypad
// arithmetic, scientific functions, statistics, polynomial equations and
// small-matrix and vector algebra, with every result rendered the way the
// calculator display shows it.
//
// 🚀 What is in lvcalc?
//
//	A synchronous, dependency-light engine that brings together:
//		• Formatting: 10-decimal rounding, trailing zeros trimmed, non-finite rejected
//		• Keypad state machine: digits, chained left-to-right binary operators
//		• Scientific functions: trig in degrees or radians, logs, exp, factorial, nPr, nCr
//		• Statistics: mean, median, population variance/std dev, quartiles, skewness, kurtosis
//		• Equations: linear, quadratic (complex roots), cubic (Newton scan or Cardano), 2×2 systems
//		• Linear algebra: 2×2/3×3 determinant, 2×2 inverse, transpose, product; vector ops
//
// ✨ Why lvcalc?
//
//   - Every failure is a typed error with one display message ("Error: ...")
//   - Pure functions underneath, one mutex-guarded Session on top
//   - Structured logs (zerolog) and Prometheus metrics at the session boundary
//
// Packages:
//
//	format/    — display rendering of reals, complex numbers, vectors, matrices
//	history/   — bounded newest-first history log
//	angle/     — degree/radian unit
//	calc/      — binary operators and the keypad Accumulator
//	scalar/    — one-argument functions and combinatorics
//	stats/     — statistics over a non-empty list
//	equation/  — linear, quadratic, cubic and 2×2 linear systems
//	matrix/    — Dense 2×2/3×3 matrices and their algebra
//	vector/    — magnitude, dot, cross, angle
//	input/     — parsing of typed numbers, lists, pairs and matrices
//	session/   — the calculator session and its error taxonomy
//	config/    — YAML configuration
//	telemetry/ — logger and metrics
//	cmd/lvcalc — command line and interactive keypad
//
// Quick example:
//
//	s, _ := session.New()
//	s.Digit("3"); s.Operator("+"); s.Digit("4"); s.Operator("*"); s.Digit("2")
//	out := s.Equals() // out.Display == "14", chained left to right
//
//	go install github.com/katalvlaran/lvcalc/cmd/lvcalc@latest
package lvcalc
