// SPDX-License-Identifier: MIT

// Package matrix - determinant family: Determinant, Minor, Cofactors,
// Adjugate and Inverse.
//
// Purpose:
//   - Determinant: closed forms for 1×1 and 2×2, Gaussian elimination with
//     partial pivoting on a working copy for n ≥ 3.
//   - Cofactors: (-1)^(i+j) · det(minor(i,j)) for every cell.
//   - Inverse: adjugate / det, refused when |det| is below the singular epsilon.
//
// Determinism:
//   - Fixed loop orders; the elimination update goes through an explicit
//     float64 conversion so no architecture fuses it into an FMA.
//
// Complexity quicksheet:
//   - Determinant O(n³); Cofactors/Adjugate/Inverse O(n⁵) (n² minors × O(n³)).

package matrix

import (
	"fmt"
	"math"
)

// Determinant returns det(m) for a square matrix.
// MAIN DESCRIPTION:
//   - 1×1 → the single element; 2×2 → a11·a22 − a12·a21.
//   - n ≥ 3 → partial-pivoting elimination (see determinant).
//
// Behavior highlights:
//   - m is never mutated; elimination runs on a private copy.
//   - An exactly zero pivot short-circuits to 0: partial pivoting picked the
//     largest magnitude in the column, so the whole column below is zero and
//     the matrix is singular.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions (released input), ErrNonSquare.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Determinant(m Matrix) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	d, err := asDense(m)
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return determinant(d.data, d.r), nil
}

// determinant computes det of the n×n row-major block in a (read-only).
// Implementation:
//   - Stage 1: closed forms for n ≤ 2; n == 0 yields 1 (empty product).
//   - Stage 2: copy a into a work buffer.
//   - Stage 3: for each pivot column i in 0..n-2 pick the row with the largest
//     |work[row,i]|, swap it up (negating the sign), then subtract
//     factor·pivotRow from every row below, factor = work[row,i]/work[i,i].
//   - Stage 4: det = sign · Π work[i,i], multiplied in ascending i.
func determinant(a []float64, n int) float64 {
	switch n {
	case 0:
		return 1
	case 1:
		return a[0]
	case 2:
		return float64(a[0]*a[3]) - float64(a[1]*a[2])
	}

	work := make([]float64, n*n)
	copy(work, a)

	det := 1.0
	var (
		i, j, k, maxRow int
		pivot, ratio    float64
		rowI, rowJ      int
	)
	for i = 0; i < n-1; i++ {
		maxRow = i
		for j = i + 1; j < n; j++ {
			if math.Abs(work[j*n+i]) > math.Abs(work[maxRow*n+i]) {
				maxRow = j
			}
		}
		if work[maxRow*n+i] == 0 {
			return 0 // zero column below the diagonal: singular
		}
		if maxRow != i {
			rowI, rowJ = i*n, maxRow*n
			for k = 0; k < n; k++ {
				work[rowI+k], work[rowJ+k] = work[rowJ+k], work[rowI+k]
			}
			det = -det
		}

		rowI = i * n
		pivot = work[rowI+i]
		for j = i + 1; j < n; j++ {
			rowJ = j * n
			ratio = work[rowJ+i] / pivot
			for k = i; k < n; k++ {
				work[rowJ+k] -= float64(ratio * work[rowI+k])
			}
		}
	}
	for i = 0; i < n; i++ {
		det *= work[i*n+i]
	}

	return det
}

// minorInto writes the (n-1)×(n-1) block of a with 0-based row skipR and
// column skipC removed into dst (len(dst) ≥ (n-1)²).
func minorInto(dst, a []float64, n, skipR, skipC int) {
	var row, col, w int
	for row = 0; row < n; row++ {
		if row == skipR {
			continue
		}
		for col = 0; col < n; col++ {
			if col == skipC {
				continue
			}
			dst[w] = a[row*n+col]
			w++
		}
	}
}

// Minor returns the (n-1)×(n-1) matrix obtained by deleting the 1-based row
// and col from the square matrix m.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrOutOfRange (bad row/col),
//     ErrInvalidDimensions (1×1 input: the minor would be 0×0).
//
// Complexity:
//   - Time O(n²), Space O(n²).
func Minor(m Matrix, row, col int) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	n := m.Rows()
	if row < 1 || row > n || col < 1 || col > n {
		return nil, matrixErrorf(opMinor, fmt.Errorf("(%d,%d): %w", row, col, ErrOutOfRange))
	}
	if n == 1 {
		return nil, matrixErrorf(opMinor, ErrInvalidDimensions)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opMinor, err)
	}

	res := newDense(n-1, n-1, d.validateNaNInf)
	minorInto(res.data, d.data, n, row-1, col-1)

	return res, nil
}

// Cofactors returns the cofactor matrix: cof[i,j] = (-1)^(i+j) · det(minor(i,j)).
// Implementation:
//   - Stage 1: validate square; the 1×1 case takes the determinant of the
//     empty 0×0 minor, which is 1, so the result is [[1]].
//   - Stage 2: for every cell build the minor into one reused scratch buffer,
//     take its determinant and apply the checkerboard sign.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions (released input), ErrNonSquare.
//
// Complexity:
//   - Time O(n⁵), Space O(n²).
func Cofactors(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opCofactors, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opCofactors, err)
	}

	n := d.r
	res := newDense(n, n, d.validateNaNInf)
	if n == 1 {
		res.data[0] = determinant(nil, 0)

		return res, nil
	}

	scratch := make([]float64, (n-1)*(n-1))
	var (
		i, j int
		sign float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			minorInto(scratch, d.data, n, i, j)
			sign = 1.0
			if (i+j)%2 != 0 {
				sign = -1.0
			}
			res.data[i*n+j] = sign * determinant(scratch, n-1)
		}
	}

	return res, nil
}

// Adjugate returns the transposed cofactor matrix.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions (released input), ErrNonSquare.
func Adjugate(m Matrix) (*Dense, error) {
	cof, err := Cofactors(m)
	if err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}
	adj, err := Transpose(cof)
	if err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}

	return adj, nil
}

// Inverse returns m⁻¹ = adj(m) / det(m).
// MAIN DESCRIPTION:
//   - Adjugate-based inversion of a square matrix.
//
// Implementation:
//   - Stage 1: validate square; compute det.
//   - Stage 2: refuse when det is NaN, exactly 0, or |det| < singular epsilon
//     (DefaultSingularEpsilon = 1e-100 unless WithSingularEpsilon is given).
//   - Stage 3: build the adjugate and divide every element by det.
//
// Behavior highlights:
//   - The threshold is deliberately minuscule; small but non-zero determinants
//     are inverted. Tighten it with WithSingularEpsilon when inputs may be
//     numerically singular (e.g. det rounding to ~1e-16).
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions, ErrNonSquare, ErrSingular,
//     ErrNaNInf (result under the finite-only policy).
//
// Complexity:
//   - Time O(n⁵), Space O(n²).
func Inverse(m Matrix, opts ...Option) (*Dense, error) {
	det, err := Determinant(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	o := gatherOptions(opts...)
	if math.IsNaN(det) || det == 0 || math.Abs(det) < o.singularEps {
		return nil, matrixErrorf(opInverse, fmt.Errorf("det=%g: %w", det, ErrSingular))
	}

	inv, err := Adjugate(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	for idx := range inv.data {
		inv.data[idx] /= det
	}
	if err = inv.checkPolicy(); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return inv, nil
}
