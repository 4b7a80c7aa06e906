// SPDX-License-Identifier: MIT

// Package matrix provides the small dense matrices behind the calculator's
// linear-algebra pane.
//
// 🚀 What is here?
//
//   - Dense: a row-major float64 matrix with safe At/Set accessors.
//   - Determinant for 2×2 and 3×3 (cofactor expansion along the first row).
//   - Inverse for 2×2 via the adjugate, with a singularity guard.
//   - Transpose and Mul for 2×2 and 3×3 operands.
//
// ✨ Numeric policy
//
//   - Dense rejects NaN and ±Inf on ingestion and Set unless
//     WithNoValidateNaNInf is given.
//   - Inverse reports ErrSingular when |det| < eps (DefaultEpsilon = 1e-10,
//     override with WithEpsilon).
//
// ⚠️ Errors
//
// All operations return sentinel errors wrapped with an operation tag
// ("Inverse: matrix: singular matrix"); match them with errors.Is.
//
//	m, _ := matrix.NewFromRows([][]float64{{4, 7}, {2, 6}})
//	inv, err := matrix.Inverse(m)
package matrix
