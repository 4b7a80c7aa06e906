// SPDX-License-Identifier: MIT

package session

import (
	"errors"

	"github.com/katalvlaran/lvcalc/angle"
	"github.com/katalvlaran/lvcalc/calc"
	"github.com/katalvlaran/lvcalc/equation"
	"github.com/katalvlaran/lvcalc/expr"
	"github.com/katalvlaran/lvcalc/format"
	"github.com/katalvlaran/lvcalc/input"
	"github.com/katalvlaran/lvcalc/matrix"
	"github.com/katalvlaran/lvcalc/scalar"
	"github.com/katalvlaran/lvcalc/stats"
	"github.com/katalvlaran/lvcalc/vector"
)

// Kind classifies a failure for display, logging and metrics.
type Kind string

// The failure taxonomy. Unclassified is reserved for errors that match none
// of the engine sentinels.
const (
	DivisionByZero      Kind = "DivisionByZero"
	ModuloByZero        Kind = "ModuloByZero"
	UnknownOperation    Kind = "UnknownOperation"
	NegativeDomain      Kind = "NegativeDomain"
	NonPositiveDomain   Kind = "NonPositiveDomain"
	Overflow            Kind = "Overflow"
	InvalidDomain       Kind = "InvalidDomain"
	EmptyOrInvalidInput Kind = "EmptyOrInvalidInput"
	DegenerateInput     Kind = "DegenerateInput"
	InvalidCoefficient  Kind = "InvalidCoefficient"
	NoUniqueSolution    Kind = "NoUniqueSolution"
	Singular            Kind = "Singular"
	DimensionMismatch   Kind = "DimensionMismatch"
	ZeroMagnitude       Kind = "ZeroMagnitude"
	FormatFailure       Kind = "FormatFailure"

	Unclassified Kind = "Unclassified"
)

// ErrUnknownFunction is returned by Function and Constant for an unregistered name.
var ErrUnknownFunction = errors.New("session: unknown function")

// kindTable is checked in order; the first sentinel matched by errors.Is wins.
var kindTable = []struct {
	err  error
	kind Kind
}{
	{calc.ErrDivisionByZero, DivisionByZero},
	{calc.ErrModuloByZero, ModuloByZero},
	{calc.ErrUnknownOperation, UnknownOperation},
	{ErrUnknownFunction, UnknownOperation},
	{angle.ErrUnknownUnit, UnknownOperation},
	{scalar.ErrNegativeDomain, NegativeDomain},
	{scalar.ErrNonPositiveDomain, NonPositiveDomain},
	{scalar.ErrOverflow, Overflow},
	{scalar.ErrInvalidDomain, InvalidDomain},
	{calc.ErrInvalidDigit, EmptyOrInvalidInput},
	{input.ErrEmptyOrInvalidInput, EmptyOrInvalidInput},
	{expr.ErrInvalidExpression, EmptyOrInvalidInput},
	{input.ErrInvalidPair, EmptyOrInvalidInput},
	{stats.ErrEmptyInput, EmptyOrInvalidInput},
	{equation.ErrNonFinite, EmptyOrInvalidInput},
	{matrix.ErrNaNInf, EmptyOrInvalidInput},
	{stats.ErrDegenerateInput, DegenerateInput},
	{equation.ErrInvalidCoefficient, InvalidCoefficient},
	{equation.ErrNoUniqueSolution, NoUniqueSolution},
	{matrix.ErrSingular, Singular},
	{matrix.ErrDimensionMismatch, DimensionMismatch},
	{matrix.ErrUnsupportedSize, DimensionMismatch},
	{matrix.ErrBadShape, DimensionMismatch},
	{input.ErrRaggedMatrix, DimensionMismatch},
	{vector.ErrDimensionMismatch, DimensionMismatch},
	{vector.ErrEmpty, EmptyOrInvalidInput},
	{vector.ErrZeroMagnitude, ZeroMagnitude},
	{format.ErrNotFinite, FormatFailure},
}

// KindOf maps err to its Kind. A nil err yields "".
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	for _, e := range kindTable {
		if errors.Is(err, e.err) {
			return e.kind
		}
	}

	return Unclassified
}

var messages = map[Kind]string{
	DivisionByZero:      "Division by zero",
	ModuloByZero:        "Modulo by zero",
	UnknownOperation:    "Unknown operation",
	NegativeDomain:      "Cannot take square root of negative number",
	NonPositiveDomain:   "Logarithm of non-positive number",
	Overflow:            "Result too large to compute",
	InvalidDomain:       "Argument outside the function's domain",
	EmptyOrInvalidInput: "Please enter valid numbers",
	DegenerateInput:     "Standard deviation is zero",
	InvalidCoefficient:  "Coefficient a cannot be zero",
	NoUniqueSolution:    "No unique solution (lines are parallel or identical)",
	Singular:            "Matrix is singular (determinant = 0)",
	DimensionMismatch:   "Dimension mismatch",
	ZeroMagnitude:       "Cannot calculate angle with zero-magnitude vector",
	FormatFailure:       "Result is not a finite number",
}

// Message returns the user-facing text for err; unclassified errors fall
// back to err.Error(). A nil err yields "".
func Message(err error) string {
	if err == nil {
		return ""
	}
	if msg, ok := messages[KindOf(err)]; ok {
		return msg
	}

	return err.Error()
}

// DisplayError renders err the way the display shows it: "Error: <message>".
func DisplayError(err error) string {
	return format.ErrorToken + ": " + Message(err)
}
