// Package matrix offers a dense, dynamically-sized float64 matrix with
// standard linear algebra.
//
// The matrix package provides:
//
//   - Dense: an owned row-major buffer with 1-based, bounds-checked At/Set,
//     in-place resizing (ResizeRows/ResizeCols) and explicit ownership
//     transfer (Clone, CopyFrom, Move, Release).
//   - Element-wise Add/Sub, Scale, Mul and Transpose as value-returning
//     kernels, plus AddInPlace/SubInPlace/ScaleInPlace/MulInPlace.
//   - Exact Equal and tolerance-based AllClose.
//   - Determinant (partial-pivoting elimination), Minor, Cofactors, Adjugate
//     and adjugate-based Inverse.
//   - ToGonum/FromGonum converters for handing values to gonum.
//
// Every failure is a sentinel error (ErrInvalidDimensions, ErrOutOfRange,
// ErrDimensionMismatch, ErrColumnRowMismatch, ErrNonSquare, ErrSingular, ...)
// matched with errors.Is. Nothing panics on user input.
//
// A Dense is not safe for concurrent mutation.
//
// See the examples in this package for usage patterns.
package matrix
