// SPDX-License-Identifier: MIT
package matrix_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvmatrix/matrix"
)

// ExampleInverse inverts a 2×2 matrix and checks A·A⁻¹ against the identity.
func ExampleInverse() {
	A, _ := matrix.NewDenseFrom(2, 2, []float64{4, 7, 2, 6})

	inv, err := matrix.Inverse(A)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(inv)

	prod, _ := matrix.Mul(A, inv)
	id, _ := matrix.NewIdentity(2)
	ok, _ := matrix.AllClose(prod, id, 0, 1e-12)
	fmt.Println("A·A⁻¹ ≈ I:", ok)

	// Output:
	// [0.6, -0.7]
	// [-0.2, 0.4]
	// A·A⁻¹ ≈ I: true
}

// ExampleInverse_singular shows how a rank-deficient input is reported.
func ExampleInverse_singular() {
	S, _ := matrix.NewDenseFrom(3, 3, []float64{
		1, 2, 3,
		2, 4, 6, // 2 × row 1
		1, 1, 1,
	})
	_, err := matrix.Inverse(S)
	fmt.Println(errors.Is(err, matrix.ErrSingular))

	// Output:
	// true
}

// ExampleDeterminant uses partial pivoting on a 4×4 input.
func ExampleDeterminant() {
	A, _ := matrix.NewDenseFrom(4, 4, []float64{
		3, -3, -5, 8,
		-3, 2, 4, -6,
		2, -5, -7, 5,
		-4, 3, 5, -6,
	})
	det, _ := matrix.Determinant(A)
	fmt.Printf("det = %.2f\n", det)

	// Output:
	// det = 18.00
}

// ExampleCofactors prints the cofactor matrix of a 3×3 input.
func ExampleCofactors() {
	A, _ := matrix.NewDenseFrom(3, 3, []float64{1, 2, 3, 4, 5, 6, 7, 8, 10})
	cof, _ := matrix.Cofactors(A)
	cof.Do(func(row, col int, v float64) bool {
		fmt.Printf("%6.2f", v)
		if col == cof.Cols() {
			fmt.Println()
		}

		return true
	})

	// Output:
	//   2.00  2.00 -3.00
	//   4.00-11.00  6.00
	//  -3.00  6.00 -3.00
}

// ExampleMul multiplies 2×3 by 3×2.
func ExampleMul() {
	A, _ := matrix.NewDenseFrom(2, 3, []float64{1, 2, 3, 4, 5, 6})
	B, _ := matrix.NewDenseFrom(3, 2, []float64{7, 8, 9, 10, 11, 12})
	C, err := matrix.Mul(A, B)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(C)

	_, err = matrix.Mul(A, A)
	fmt.Println(errors.Is(err, matrix.ErrColumnRowMismatch))

	// Output:
	// [58, 64]
	// [139, 154]
	// true
}

// ExampleDense_ResizeCols grows a matrix and keeps existing values in place.
func ExampleDense_ResizeCols() {
	m, _ := matrix.NewDenseFrom(2, 2, []float64{1, 2, 3, 4})
	_ = m.ResizeCols(3)
	fmt.Print(m)

	// Output:
	// [1, 2, 0]
	// [3, 4, 0]
}

// ExampleDense_Move transfers ownership of the buffer.
func ExampleDense_Move() {
	src, _ := matrix.NewDenseFrom(1, 2, []float64{5, 6})
	dst := src.Move()
	fmt.Print(dst)
	fmt.Println(src.Released(), src.Rows(), src.Cols())

	_, err := src.At(1, 1)
	fmt.Println(err)

	// Output:
	// [5, 6]
	// true 0 0
	// Dense.At(1,1): matrix: index out of bounds
}
