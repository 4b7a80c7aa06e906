// SPDX-License-Identifier: MIT

package matrix

import "errors"

// Every message is prefixed with "matrix: ". Operations wrap these with an
// operation tag (see matrixErrorf); callers match with errors.Is.
var (
	// ErrBadShape is returned for non-positive or ragged shapes.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operands, e.g. Mul where
	// a.Cols != b.Rows, or a non-square input to Determinant.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrUnsupportedSize is returned when an operation is asked for a size the
	// calculator does not implement (Inverse beyond 2×2, anything beyond 3×3).
	ErrUnsupportedSize = errors.New("matrix: unsupported size")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix was passed.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrSingular is returned by Inverse when |det| is below the configured eps.
	ErrSingular = errors.New("matrix: singular matrix")
)
