// SPDX-License-Identifier: MIT

// Package format is the single display path for every numeric result in lvcalc.
//
// 🚀 What does it do?
//
//	Every value shown to a user passes through Format:
//	  • NaN and ±Inf are rejected with ErrNotFinite (rendered as "Error")
//	  • mathematical integers render without a decimal point ("14", "-3")
//	  • everything else is rounded to 10 decimal places, trailing zeros
//	    stripped, and written in plain decimal notation (never 1e-7)
//
// Helpers built on top of Format render complex roots ("1 + 2i"),
// vectors ("[0, 0, 1]") and matrix rows ("[1, 2]\n[3, 4]").
//
// Plain is the odd one out: it echoes operands back into history lines using
// the shortest round-trip decimal, so "0.1 + 0.2 = 0.3" keeps the user's input
// intact while the result is canonicalized.
//
//	s, err := format.Format(2.0 / 3.0) // "0.6666666667", nil
//	s = format.Display(math.Inf(1))      // "Error"
package format
