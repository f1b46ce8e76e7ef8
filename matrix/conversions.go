// SPDX-License-Identifier: MIT

// Package matrix - converters to and from gonum.
//
// ToGonum/FromGonum copy values between a Matrix (1-based) and a
// gonum.org/v1/gonum/mat matrix (0-based). They never share storage, so the
// ownership rules of Dense hold on both sides.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const (
	ctxToGonum   = "ToGonum"
	ctxFromGonum = "FromGonum"
)

// ToGonum copies m into a freshly allocated *mat.Dense.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions (released m), errors from m.At.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func ToGonum(m Matrix) (*mat.Dense, error) {
	if err := ValidateOperand(m); err != nil {
		return nil, matrixErrorf(ctxToGonum, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(ctxToGonum, err)
	}
	buf := make([]float64, len(d.data))
	copy(buf, d.data)

	// mat.NewDense adopts buf as row-major backing data.
	return mat.NewDense(d.r, d.c, buf), nil
}

// FromGonum copies any gonum matrix into a new *Dense.
//
// Errors:
//   - ErrNilMatrix (nil src), ErrInvalidDimensions (empty src),
//     ErrNaNInf (non-finite value under WithValidateNaNInf(true)).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromGonum(src mat.Matrix, opts ...Option) (*Dense, error) {
	if src == nil {
		return nil, matrixErrorf(ctxFromGonum, ErrNilMatrix)
	}
	rows, cols := src.Dims()
	res, err := NewDense(rows, cols, opts...)
	if err != nil {
		return nil, matrixErrorf(ctxFromGonum, err)
	}

	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v = src.At(i, j)
			if res.validateNaNInf && isNonFinite(v) {
				return nil, matrixErrorf(ctxFromGonum, fmt.Errorf("(%d,%d): %w", i+1, j+1, ErrNaNInf))
			}
			res.data[i*cols+j] = v
		}
	}

	return res, nil
}
