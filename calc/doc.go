// SPDX-License-Identifier: MIT

// Package calc implements the calculator's arithmetic core: a pure binary
// operator table (Apply, ApplyComplex) and the Accumulator state machine that
// chains operators left to right the way a desk calculator does.
//
// ⚙️ States:
//
//	Idle             — no pending operator
//	PendingOperator  — first operand captured, waiting for the second
//
// Keying 3 + 4 × 2 = produces 14, not 11: pressing × while + is pending
// evaluates 3+4 first. There is no operator precedence.
//
// The Accumulator never changes state when an operation fails, so a division
// by zero leaves the operands intact for the caller to show and then clear.
package calc
