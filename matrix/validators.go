// SPDX-License-Identifier: MIT

// Shared guards. Validators return tagged sentinels; operations wrap them
// once more with their own tag via matrixErrorf.

package matrix

import "fmt"

// MaxSize is the largest dimension any operation accepts.
const MaxSize = 3

func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil reports ErrNilMatrix for a nil m.
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare reports ErrDimensionMismatch unless m is square.
// Assumes m is non-nil.
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSupported reports ErrUnsupportedSize unless m is between 2×2 and
// MaxSize×MaxSize. Assumes m is non-nil.
func ValidateSupported(m Matrix) error {
	r, c := m.Rows(), m.Cols()
	if r < 2 || c < 2 || r > MaxSize || c > MaxSize {
		return validatorErrorf(fmt.Sprintf("ValidateSupported(%dx%d)", r, c), ErrUnsupportedSize)
	}

	return nil
}

// ValidateMulCompatible checks both operands are non-nil, supported and
// a.Cols == b.Rows.
func ValidateMulCompatible(a, b Matrix) error {
	for _, m := range []Matrix{a, b} {
		if err := ValidateNotNil(m); err != nil {
			return err
		}
		if err := ValidateSupported(m); err != nil {
			return err
		}
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}
