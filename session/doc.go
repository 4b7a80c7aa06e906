// SPDX-License-Identifier: MIT

// Package session is the entry-point boundary between a front end and the
// calculator engine.
//
// 🚀 What does a Session do?
//
//   - Owns one calc.Accumulator, one history.Log and the two angle units
//     (trig input and vector-angle output are independent settings).
//   - Exposes one method per calculator action: keypad input, scalar
//     functions, combinatorics, statistics, equations, matrices, vectors and
//     whole expressions (Expression).
//   - Turns every engine failure into an Outcome carrying a Kind and the
//     display text "Error: <message>"; nothing is returned as a bare error
//     and no failure corrupts the accumulator.
//
// ⚙️ Side effects
//
//   - Successful computations append a line to the history log.
//   - Every action is logged (debug on success, warn on failure) with the
//     session_id field and counted in telemetry.Metrics.
//
// ⚠️ Delayed reset
//
// After a division or modulo by zero the Outcome carries ResetAfter (2 s by
// default). Scheduling the Clear is the caller's job; the REPL in
// cmd/lvcalc does it with time.AfterFunc.
//
// A Session serializes its methods with a mutex, so one instance may be
// shared, but separate users should get separate sessions.
package session
