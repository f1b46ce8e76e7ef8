// Package lvmatrix is a small dense-matrix toolkit: one owned float64
// matrix value type with the linear algebra you reach for daily.
//
// 🚀 What is in the box?
//
//	matrix/     Dense type, arithmetic, transpose, determinant, cofactors,
//	            adjugate, inverse, gonum converters
//	examples/   runnable walkthroughs
//
// ✨ Why choose lvmatrix?
//
//   - Beginner-friendly: 1-based indexing that matches textbook notation
//   - Rock-solid guarantees: sentinel errors instead of panics, explicit ownership
//   - Pure Go: no cgo
//
// Quick example:
//
//	A, _ := matrix.NewDenseFrom(2, 2, []float64{4, 7, 2, 6})
//	inv, _ := matrix.Inverse(A)
//	v, _ := inv.At(1, 1) // 0.6
//
//	go get github.com/katalvlaran/lvmatrix/matrix
package lvmatrix
