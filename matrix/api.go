// SPDX-License-Identifier: MIT

// Package matrix - public facade.
//
// Short, operator-flavoured names over the kernels, so call sites read like
// the algebra they express: Sum (+), Diff (−), Product (×), ScaleBy (α·),
// T (ᵀ), Det and InverseOf. Every function here is a thin wrapper; all
// validation and error wrapping happens in the kernel it delegates to.
package matrix

// NewZeros is an alias of NewDense for readability at call sites.
func NewZeros(rows, cols int, opts ...Option) (*Dense, error) {
	return NewDense(rows, cols, opts...)
}

// ZerosLike returns a zero matrix with the shape of m.
// Errors: ErrNilMatrix, ErrInvalidDimensions (released m).
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateOperand(m); err != nil {
		return nil, err
	}

	return NewDense(m.Rows(), m.Cols(), WithValidateNaNInf(policyOf(m)))
}

// IdentityLike returns the identity with the size of the square matrix m.
// Errors: ErrNilMatrix, ErrInvalidDimensions, ErrNonSquare.
func IdentityLike(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, err
	}

	return NewIdentity(m.Rows(), WithValidateNaNInf(policyOf(m)))
}

// Sum returns a + b (operator +).
func Sum(a, b Matrix) (*Dense, error) { return Add(a, b) }

// Diff returns a − b (operator −).
func Diff(a, b Matrix) (*Dense, error) { return Sub(a, b) }

// Product returns a × b (operator *).
func Product(a, b Matrix) (*Dense, error) { return Mul(a, b) }

// ScaleBy returns alpha · m (operator * with a scalar).
func ScaleBy(m Matrix, alpha float64) (*Dense, error) { return Scale(m, alpha) }

// T returns mᵀ.
func T(m Matrix) (*Dense, error) { return Transpose(m) }

// Det returns det(m).
func Det(m Matrix) (float64, error) { return Determinant(m) }

// InverseOf returns m⁻¹ under the default singular epsilon.
func InverseOf(m Matrix) (*Dense, error) { return Inverse(m) }

// CloneMatrix returns a deep copy of m, or nil for a nil input.
func CloneMatrix(m Matrix) Matrix {
	if isNilMatrix(m) {
		return nil
	}

	return m.Clone()
}
