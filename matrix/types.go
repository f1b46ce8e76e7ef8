// SPDX-License-Identifier: MIT

// Package matrix: the public Matrix interface.
// This file intentionally contains ONLY the interface shared by kernels; the
// concrete row-major implementation lives in impl_dense.go, errors and options
// in dedicated files.
package matrix

// Matrix represents a two-dimensional mutable array of float64 values with
// 1-based element addressing.
//
// Kernels (Add, Mul, Determinant, ...) accept any Matrix. *Dense operands
// unlock flat-slice fast paths; other implementations go through At/Set.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at 1-based position (row, col).
	// Returns ErrOutOfRange if row<1, row>Rows(), col<1 or col>Cols().
	// Complexity: O(1).
	At(row, col int) (float64, error)

	// Set assigns v at 1-based position (row, col).
	// Returns ErrOutOfRange if indices are invalid.
	// Complexity: O(1).
	Set(row, col int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	// Complexity: O(rows*cols).
	Clone() Matrix
}
