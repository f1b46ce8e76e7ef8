// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels (optionally wrapped with %w)
// and tests MUST check them via errors.Is. No kernel panics on user-triggered
// error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Kernels wrap with matrixErrorf(op, ErrX) and
// accessors with denseErrorf(method, row, col, ErrX); callers match with
// errors.Is regardless of the wrapping depth.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape/index -> numeric policy -> singularity.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive
	// (construction or resize with rows < 1 or cols < 1).
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a 1-based (row, col) pair lies outside
	// [1, Rows] × [1, Cols]. Public indexers (At/Set/Get) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of bounds")

	// ErrDimensionMismatch indicates operands of different shapes in Add/Sub
	// (and in approximate comparison).
	ErrDimensionMismatch = errors.New("matrix: different matrix dimensions")

	// ErrColumnRowMismatch indicates a product A×B where A.Cols != B.Rows.
	ErrColumnRowMismatch = errors.New("matrix: columns of the left operand differ from rows of the right")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrSingular is returned by Inverse when |det| falls below the singular epsilon.
	ErrSingular = errors.New("matrix: determinant of the matrix is zero")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNaNInf signals a NaN or ±Inf value under the finite-only numeric policy.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrDataLength indicates a flat data slice whose length is not rows*cols.
	ErrDataLength = errors.New("matrix: data length does not match shape")
)

// ErrIndexOutOfBounds is a synonym of ErrOutOfRange; both match the same errors.
var ErrIndexOutOfBounds = ErrOutOfRange

// ErrNotSquare is a synonym of ErrNonSquare.
var ErrNotSquare = ErrNonSquare
