// SPDX-License-Identifier: MIT
// Package: matrix
//
// Validators shared by every kernel. Each returns a bare or tag-wrapped
// sentinel; kernels add their own operation tag on top. Composite validators
// run their checks in a fixed order (nil, then live shape, then the
// operation-specific shape rule) so the reported sentinel is predictable.
// None of them allocates on success.

package matrix

import (
	"fmt"
	"math"
	"reflect"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil, including a typed nil
// pointer stored in the interface (e.g. (*Dense)(nil)).
//
// Errors: ErrNilMatrix.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if isNilMatrix(m) {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateNonEmpty rejects a released (0×0) operand left behind by Move/Release.
// Assumes non-nil.
//
// Errors: ErrInvalidDimensions.
// Complexity: O(1).
func ValidateNonEmpty(m Matrix) error {
	if m.Rows() < 1 || m.Cols() < 1 {
		return validatorErrorf("ValidateNonEmpty", ErrInvalidDimensions)
	}

	return nil
}

// ValidateOperand – Composite: NotNil → NonEmpty. The entry guard of every kernel.
//
// Errors: ErrNilMatrix, ErrInvalidDimensions.
// Complexity: O(1).
func ValidateOperand(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}

	return ValidateNonEmpty(m)
}

// ValidateSameShape checks that a and b have identical shapes. Assumes non-nil.
//
// Returns wrapped ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols). Assumes non-nil.
//
// Errors: ErrNonSquare.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateBinarySameShape – Composite: Operand(a) → Operand(b) → SameShape.
//
// Errors: ErrNilMatrix, ErrInvalidDimensions, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateBinarySameShape(a, b Matrix) error {
	if err := ValidateOperand(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateOperand(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateSquareNonNil – Composite: Operand → Square.
//
// Errors: ErrNilMatrix, ErrInvalidDimensions, ErrNonSquare.
// Complexity: O(1).
func ValidateSquareNonNil(m Matrix) error {
	if err := ValidateOperand(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}

	return nil
}

// ValidateMulCompatible – Composite: Operand(a) → Operand(b) → a.Cols == b.Rows.
//
// Errors: ErrNilMatrix, ErrInvalidDimensions, ErrColumnRowMismatch.
// Complexity: O(1).
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateOperand(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateOperand(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrColumnRowMismatch)
	}

	return nil
}

// ValidateShape checks a requested (rows, cols) pair for construction/resize.
//
// Errors: ErrInvalidDimensions when rows < 1, cols < 1 or rows*cols overflows int.
// Complexity: O(1).
func ValidateShape(rows, cols int) error {
	if rows < 1 || cols < 1 {
		return ErrInvalidDimensions
	}
	if cols > math.MaxInt/rows {
		return validatorErrorf("ValidateShape: rows*cols overflows", ErrInvalidDimensions)
	}

	return nil
}

// isNilMatrix detects both an untyped nil and a typed nil pointer behind the
// interface; the latter would otherwise panic on the first method call.
func isNilMatrix(m Matrix) bool {
	if m == nil {
		return true
	}
	if d, ok := m.(*Dense); ok {
		return d == nil
	}
	v := reflect.ValueOf(m)

	return v.Kind() == reflect.Ptr && v.IsNil()
}
