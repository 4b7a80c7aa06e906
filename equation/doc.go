// SPDX-License-Identifier: MIT

// Package equation solves low-degree polynomial equations and 2×2 linear systems.
//
// 🚀 Solvers:
//
//	Linear     ax + b = 0                 closed form; "all reals" / "no solution" cases
//	Quadratic  ax² + bx + c = 0           discriminant; complex pair when Δ < 0
//	Cubic      ax³ + bx² + cx + d = 0     Newton scan (default) or Cardano
//	System2x2  a1x + b1y = c1, a2x + b2y = c2   Cramer's rule
//
// ⚠️ The default cubic method is a Newton–Raphson scan from seven fixed seeds
// {-10, -5, -1, 0, 1, 5, 10}. It reports only the real roots it converges to,
// merges roots closer than 0.01, and when it finds none reports 0 with
// CubicSolution.Fallback set. It can miss roots and never reports complex
// ones. WithMethod(Cardano) selects the closed-form solver, which returns all
// three roots (complex pairs included) with Newton-polished real roots.
//
// Roots are complex128 throughout; real roots have a zero imaginary part.
package equation
