// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// element-wise addition and subtraction, scalar scaling, matrix multiplication,
// transpose and equality. All functions perform strict fail-fast validation
// and return sentinel errors wrapped with the operation tag.
//
// Purpose:
//   - Value-returning kernels (Add, Sub, Scale, Mul, Transpose) never mutate
//     their operands and always allocate a fresh *Dense.
//   - In-place methods on *Dense (AddInPlace, SubInPlace, ScaleInPlace,
//     MulInPlace) compute the full result first and swap it in only on success.
//
// Notes:
//   - *Dense operands hit flat-slice fast paths; anything else goes through At/Set.
//   - A fresh result inherits the numeric policy of its left operand.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial value for inner-product accumulation.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd         = "Add"
	opSub         = "Sub"
	opMul         = "Mul"
	opTranspose   = "Transpose"
	opScale       = "Scale"
	opAllClose    = "AllClose"
	opDeterminant = "Determinant"
	opMinor       = "Minor"
	opCofactors   = "Cofactors"
	opAdjugate    = "Adjugate"
	opInverse     = "Inverse"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Complexity:
//   - Time O(1), Space O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// policyOf returns the numeric policy a fresh result should inherit from m.
func policyOf(m Matrix) bool {
	if d, ok := m.(*Dense); ok {
		return d.validateNaNInf
	}

	return DefaultValidateNaNInf
}

// checkPolicy scans the buffer for non-finite values when the policy is on.
func (m *Dense) checkPolicy() error {
	if !m.validateNaNInf {
		return nil
	}
	for idx, v := range m.data {
		if isNonFinite(v) {
			return fmt.Errorf("element (%d,%d): %w", idx/m.c+1, idx%m.c+1, ErrNaNInf)
		}
	}

	return nil
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Internal helper for Add/Sub to share validation, allocation, and fast-path.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b). Allocate result Dense(rows, cols).
//   - Stage 2: Fast-path if both are *Dense - single flat loop 0..n-1.
//     Otherwise, fallback At with fixed i→j order.
//   - Stage 3: enforce the inherited numeric policy on the result.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions, ErrDimensionMismatch, ErrNaNInf.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func addSub(a, b Matrix, sign float64, opTag string) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res := newDense(rows, cols, policyOf(a))

	da, okA := a.(*Dense)
	db, okB := b.(*Dense)
	if okA && okB {
		for idx := range res.data { // deterministic 0..n-1
			res.data[idx] = da.data[idx] + sign*db.data[idx]
		}
	} else {
		var (
			i, j   int
			av, bv float64
			err    error
		)
		for i = 1; i <= rows; i++ {
			for j = 1; j <= cols; j++ {
				if av, err = a.At(i, j); err != nil {
					return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
				}
				if bv, err = b.At(i, j); err != nil {
					return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
				}
				res.data[(i-1)*cols+(j-1)] = av + sign*bv
			}
		}
	}

	if err := res.checkPolicy(); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A − B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Sub(a, b Matrix) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Scale returns a new matrix whose elements are alpha * m[i,j].
// The original matrix is never mutated.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions (released input), ErrNaNInf (policy).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Scale(m Matrix, alpha float64) (*Dense, error) {
	if err := ValidateOperand(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	res, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	for idx := range res.data {
		res.data[idx] *= alpha
	}
	if err = res.checkPolicy(); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	return res, nil
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: Validate A,B (not nil, live) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: If A and B are *Dense, use i→k→j with row-major strides;
//     otherwise use i→j→k through At.
//
// Behavior highlights:
//   - C[i,j] = Σ_k A[i,k]·B[k,j], accumulated with k ascending on both paths,
//     so the fast path and the fallback agree bit for bit.
//   - One allocation for C; operands are read-only, so Mul(A, A) is safe.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions, ErrColumnRowMismatch, ErrNaNInf (policy).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res := newDense(aRows, bCols, policyOf(a))
	var (
		i, j, k         int
		av, bv, current float64
		err             error
	)

	da, okA := a.(*Dense)
	db, okB := b.(*Dense)
	if okA && okB {
		// da.data layout: i*aCols + k
		// db.data layout: k*bCols + j
		var rowOffsetA, rowOffsetB, rowOffsetR int
		for i = 0; i < aRows; i++ {
			rowOffsetA = i * aCols
			rowOffsetR = i * bCols
			for k = 0; k < aCols; k++ {
				av = da.data[rowOffsetA+k]
				rowOffsetB = k * bCols
				for j = 0; j < bCols; j++ {
					res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
				}
			}
		}
	} else {
		for i = 1; i <= aRows; i++ {
			for j = 1; j <= bCols; j++ {
				current = ZeroSum
				for k = 1; k <= aCols; k++ {
					if av, err = a.At(i, k); err != nil {
						return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
					}
					if bv, err = b.At(k, j); err != nil {
						return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
					}
					current += av * bv
				}
				res.data[(i-1)*bCols+(j-1)] = current
			}
		}
	}

	if err = res.checkPolicy(); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ):
// result[j,i] = m[i,j]. The original matrix is never mutated.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions (released input).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateOperand(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res := newDense(cols, rows, policyOf(m)) // dims flipped

	var i, j int
	if dm, ok := m.(*Dense); ok {
		// data[i*cols + j] → res.data[j*rows + i]
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}

		return res, nil
	}

	var (
		v   float64
		err error
	)
	for i = 1; i <= rows; i++ {
		for j = 1; j <= cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[(j-1)*rows+(i-1)] = v
		}
	}

	return res, nil
}

// Equal reports whether a and b have the same shape and pairwise exactly
// equal elements (==, no tolerance; NaN never equals NaN). A nil operand is
// never equal to anything. Two released (0×0) matrices compare equal: Equal
// is a predicate and does not reject released operands the way kernels do.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func Equal(a, b Matrix) bool {
	if isNilMatrix(a) || isNilMatrix(b) {
		return false
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}

	da, okA := a.(*Dense)
	db, okB := b.(*Dense)
	if okA && okB {
		for idx := range da.data {
			if da.data[idx] != db.data[idx] {
				return false
			}
		}

		return true
	}

	var (
		i, j       int
		av, bv     float64
		errA, errB error
	)
	for i = 1; i <= a.Rows(); i++ {
		for j = 1; j <= a.Cols(); j++ {
			av, errA = a.At(i, j)
			bv, errB = b.At(i, j)
			if errA != nil || errB != nil || av != bv {
				return false
			}
		}
	}

	return true
}

// Equal is the method form of the package-level Equal.
func (m *Dense) Equal(other Matrix) bool { return Equal(m, other) }

// AllClose reports whether |a[i,j] − b[i,j]| ≤ atol + rtol·|b[i,j]| for every
// element. Intended for results of float-accumulating kernels (Determinant,
// Inverse) where exact Equal is too strict.
//
// Behavior highlights:
//   - Negative tolerances are taken by absolute value.
//   - Any NaN element makes the result false.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions, ErrDimensionMismatch,
//     ErrNaNInf (non-finite tolerance).
//
// Complexity:
//   - Time O(r*c), Space O(1) for *Dense operands.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if isNonFinite(rtol) || isNonFinite(atol) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	da, err := asDense(a)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	db, err := asDense(b)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	var av, bv float64
	for idx := range da.data {
		av, bv = da.data[idx], db.data[idx]
		if math.IsNaN(av) || math.IsNaN(bv) {
			return false, nil
		}
		if av == bv { // covers equal infinities
			continue
		}
		if math.Abs(av-bv) > atol+rtol*math.Abs(bv) {
			return false, nil
		}
	}

	return true, nil
}

// AllCloseWith is AllClose with rtol = 0 and atol taken from WithEpsilon
// (DefaultEpsilon when absent).
func AllCloseWith(a, b Matrix, opts ...Option) (bool, error) {
	o := gatherOptions(opts...)

	return AllClose(a, b, 0, o.eps)
}

// asDense returns m itself when it is a *Dense, otherwise a materialized copy.
// Read-only use only: the result may alias the caller's storage.
func asDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}

	return toDense(m)
}

// ---------- in-place forms ----------

// adopt swaps res's shape and buffer into m (res must not be used afterwards).
func (m *Dense) adopt(res *Dense) {
	m.r, m.c, m.data = res.r, res.c, res.data
}

// AddInPlace performs m += other.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions, ErrDimensionMismatch, ErrNaNInf (policy).
//     On error m is unchanged.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) scratch.
func (m *Dense) AddInPlace(other Matrix) error {
	res, err := Add(m, other)
	if err != nil {
		return err
	}
	m.adopt(res)

	return nil
}

// SubInPlace performs m -= other. Same contract as AddInPlace.
func (m *Dense) SubInPlace(other Matrix) error {
	res, err := Sub(m, other)
	if err != nil {
		return err
	}
	m.adopt(res)

	return nil
}

// ScaleInPlace performs m *= alpha. Under the default numeric policy it
// cannot fail; with WithValidateNaNInf(true) a non-finite product is reported
// as ErrNaNInf and m is left unchanged.
func (m *Dense) ScaleInPlace(alpha float64) error {
	res, err := Scale(m, alpha)
	if err != nil {
		return err
	}
	m.adopt(res)

	return nil
}

// MulInPlace performs m = m × other. The whole product is allocated before
// m's buffer is replaced; afterwards m has shape m.Rows() × other.Cols().
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions, ErrColumnRowMismatch, ErrNaNInf (policy).
//     On error m is unchanged.
func (m *Dense) MulInPlace(other Matrix) error {
	res, err := Mul(m, other)
	if err != nil {
		return err
	}
	m.adopt(res)

	return nil
}
