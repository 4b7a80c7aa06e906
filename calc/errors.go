// SPDX-License-Identifier: MIT

package calc

import "errors"

var (
	// ErrDivisionByZero is returned for x / 0.
	ErrDivisionByZero = errors.New("calc: division by zero")

	// ErrModuloByZero is returned for x % 0.
	ErrModuloByZero = errors.New("calc: modulo by zero")

	// ErrUnknownOperation is returned for an operator outside the table.
	ErrUnknownOperation = errors.New("calc: unknown operation")

	// ErrInvalidDigit is returned by AppendDigit for anything but 0-9 and a single '.'.
	ErrInvalidDigit = errors.New("calc: invalid digit")
)
