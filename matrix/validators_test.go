// SPDX-License-Identifier: MIT
// Package matrix_test: validators return the documented sentinels.

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmatrix/matrix"
)

func TestValidateNotNil(t *testing.T) {
	require.NoError(t, matrix.ValidateNotNil(MustDense(t, 1, 1)))
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)

	var typed *matrix.Dense
	require.ErrorIs(t, matrix.ValidateNotNil(typed), matrix.ErrNilMatrix)
	require.NoError(t, matrix.ValidateNotNil(hide{MustDense(t, 1, 1)}))
}

func TestValidateOperand(t *testing.T) {
	m := MustDense(t, 2, 2)
	require.NoError(t, matrix.ValidateOperand(m))

	m.Release()
	require.ErrorIs(t, matrix.ValidateNonEmpty(m), matrix.ErrInvalidDimensions)
	require.ErrorIs(t, matrix.ValidateOperand(m), matrix.ErrInvalidDimensions)
	require.ErrorIs(t, matrix.ValidateOperand(nil), matrix.ErrNilMatrix)
}

func TestValidateSameShape(t *testing.T) {
	a := MustDense(t, 2, 3)
	require.NoError(t, matrix.ValidateSameShape(a, MustDense(t, 2, 3)))

	err := matrix.ValidateSameShape(a, MustDense(t, 3, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.Contains(t, err.Error(), "Rows")

	err = matrix.ValidateSameShape(a, MustDense(t, 2, 2))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.Contains(t, err.Error(), "Columns")

	require.ErrorIs(t, matrix.ValidateBinarySameShape(nil, a), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateBinarySameShape(a, nil), matrix.ErrNilMatrix)
}

func TestValidateSquare(t *testing.T) {
	require.NoError(t, matrix.ValidateSquare(MustDense(t, 3, 3)))
	require.ErrorIs(t, matrix.ValidateSquare(MustDense(t, 3, 2)), matrix.ErrNonSquare)
	require.ErrorIs(t, matrix.ValidateSquareNonNil(nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateSquareNonNil(MustDense(t, 1, 2)), matrix.ErrNonSquare)
}

func TestValidateMulCompatible(t *testing.T) {
	require.NoError(t, matrix.ValidateMulCompatible(MustDense(t, 2, 3), MustDense(t, 3, 5)))
	require.ErrorIs(t,
		matrix.ValidateMulCompatible(MustDense(t, 2, 3), MustDense(t, 2, 3)),
		matrix.ErrColumnRowMismatch)
	require.ErrorIs(t, matrix.ValidateMulCompatible(MustDense(t, 2, 3), nil), matrix.ErrNilMatrix)
}

func TestValidateShape(t *testing.T) {
	require.NoError(t, matrix.ValidateShape(1, 1))
	for _, tc := range [][2]int{{0, 1}, {1, 0}, {-1, 5}, {5, -1}} {
		require.ErrorIs(t, matrix.ValidateShape(tc[0], tc[1]), matrix.ErrInvalidDimensions)
	}

	// largest shapes whose element count still fits in int
	require.NoError(t, matrix.ValidateShape(1, math.MaxInt))
	require.NoError(t, matrix.ValidateShape(math.MaxInt, 1))
	require.NoError(t, matrix.ValidateShape(2, math.MaxInt/2))
	require.ErrorIs(t, matrix.ValidateShape(2, math.MaxInt/2+1), matrix.ErrInvalidDimensions)
	require.ErrorIs(t, matrix.ValidateShape(math.MaxInt, math.MaxInt), matrix.ErrInvalidDimensions)
}

// TestErrorPriority pins the documented order nil -> shape -> square.
func TestErrorPriority(t *testing.T) {
	_, err := matrix.Add(nil, MustDense(t, 1, 1))
	AssertErrorIs(t, err, matrix.ErrNilMatrix)

	released := MustDense(t, 2, 2)
	released.Release()
	_, err = matrix.Mul(released, MustDense(t, 3, 3))
	AssertErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.Inverse(MustDense(t, 2, 3))
	AssertErrorIs(t, err, matrix.ErrNonSquare)
}
