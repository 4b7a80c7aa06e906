// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

const (
	opDeterminant = "Determinant"
	opInverse     = "Inverse"
	opTranspose   = "Transpose"
	opMul         = "Mul"
)

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is.
// Call only with a non-nil err.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// dense returns m's backing data, copying through At when m is not a *Dense.
func dense(m Matrix) ([]float64, error) {
	if d, ok := m.(*Dense); ok {
		return d.data, nil
	}
	r, c := m.Rows(), m.Cols()
	out := make([]float64, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, err
			}
			out[i*c+j] = v
		}
	}

	return out, nil
}

// Determinant returns det(m) for a 2×2 or 3×3 matrix.
//
// Implementation:
//   - 2×2: ad − bc.
//   - 3×3: cofactor expansion along the first row.
//
// Errors:
//   - ErrNilMatrix, ErrUnsupportedSize, ErrDimensionMismatch (not square).
//
// Complexity:
//   - Time O(1) for the supported sizes, Space O(1) on the *Dense fast path.
func Determinant(m Matrix) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	if err := ValidateSupported(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	d, err := dense(m)
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	if m.Rows() == 2 {
		return det2(d[0], d[1], d[2], d[3]), nil
	}

	return d[0]*det2(d[4], d[5], d[7], d[8]) -
		d[1]*det2(d[3], d[5], d[6], d[8]) +
		d[2]*det2(d[3], d[4], d[6], d[7]), nil
}

func det2(a, b, c, d float64) float64 { return a*d - b*c }

// Inverse returns m⁻¹ for a 2×2 matrix via the adjugate:
//
//	[a b]⁻¹ = 1/det · [ d −b]
//	[c d]             [−c  a]
//
// Errors:
//   - ErrNilMatrix.
//   - ErrUnsupportedSize for anything but 2×2.
//   - ErrSingular when |det| < eps (DefaultEpsilon unless WithEpsilon).
func Inverse(m Matrix, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if m.Rows() != 2 || m.Cols() != 2 {
		return nil, matrixErrorf(opInverse, fmt.Errorf("%dx%d: %w", m.Rows(), m.Cols(), ErrUnsupportedSize))
	}
	d, err := dense(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	det := det2(d[0], d[1], d[2], d[3])
	if math.Abs(det) < o.eps {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}
	res, _ := NewDense(2, 2)
	res.data[0] = d[3] / det
	res.data[1] = -d[1] / det
	res.data[2] = -d[2] / det
	res.data[3] = d[0] / det

	return res, nil
}

// Transpose returns mᵀ for a supported m.
//
// Errors:
//   - ErrNilMatrix, ErrUnsupportedSize.
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	if err := ValidateSupported(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	d, err := dense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, _ := NewDense(cols, rows)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			res.data[j*rows+i] = d[i*cols+j]
		}
	}

	return res, nil
}

// Mul returns the product a×b.
//
// Implementation:
//   - Stage 1: validate both operands and a.Cols == b.Rows.
//   - Stage 2: accumulate row i of the result as Σₖ a[i,k]·b[k,·].
//     NaN/Inf validation is off on the result; the caller formats it.
//
// Errors:
//   - ErrNilMatrix, ErrUnsupportedSize, ErrDimensionMismatch (a.Cols != b.Rows).
//
// Complexity: O(r·n·c) with the i→k→j loop order.
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, err := dense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := dense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	rows, inner, cols := a.Rows(), a.Cols(), b.Cols()
	res, _ := NewDense(rows, cols, WithNoValidateNaNInf())
	for i := 0; i < rows; i++ {
		for k := 0; k < inner; k++ {
			av := da[i*inner+k]
			for j := 0; j < cols; j++ {
				res.data[i*cols+j] += av * db[k*cols+j]
			}
		}
	}

	return res, nil
}

// AllClose reports whether a and b have the same shape and every pair of
// entries differs by at most tol.
func AllClose(a, b Matrix, tol float64) bool {
	if a == nil || b == nil || a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}
	da, errA := dense(a)
	db, errB := dense(b)
	if errA != nil || errB != nil {
		return false
	}
	for i := range da {
		if math.Abs(da[i]-db[i]) > tol {
			return false
		}
	}

	return true
}
