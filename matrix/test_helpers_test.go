// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures and utilities for kernels.
//   - Keep all data finite and well-formed to avoid numeric-policy interference.
//   - Every coordinate taken or reported by a helper is 1-based, like the API.

package matrix_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvmatrix/matrix"
)

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Implementation:
//   - Embed matrix.Matrix to forward all methods.
//   - Use hide{X} in tests to force non-*Dense (fallback) paths.
//
// Notes:
//   - Useful to assert fast-path == fallback bitwise (or via AllClose).
type hide struct{ matrix.Matrix }

// MustDense ALLOCATES an r×c zero *Dense or fails the test.
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// IdentityDense RETURNS an n×n identity (main diagonal = 1, else 0).
func IdentityDense(t testing.TB, n int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewIdentity(n)
	if err != nil {
		t.Fatalf("NewIdentity(%d): %v", n, err)
	}

	return m
}

// NewFilledDense BUILDS an r×c *Dense from a row-major flat slice.
// Implementation:
//   - Stage 1: Validate len(vals)==r*c.
//   - Stage 2: Allocate Dense and Set(i,j, vals[(i-1)*c+(j-1)]) for 1-based i,j.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// Notes:
//   - Goes through Set on purpose so the public write path is exercised by
//     every fixture; use matrix.NewDenseFrom when that is the code under test.
func NewFilledDense(t testing.TB, r, c int, vals []float64) *matrix.Dense {
	t.Helper()
	if len(vals) != r*c {
		t.Fatalf("NewFilledDense: want %d values, got %d", r*c, len(vals))
	}
	d := MustDense(t, r, c)
	var i, j int // loop iterators
	for i = 1; i <= r; i++ {
		for j = 1; j <= c; j++ {
			MustSet(t, d, i, j, vals[(i-1)*c+(j-1)])
		}
	}

	return d
}

// SequenceDense RETURNS an r×c matrix filled 1, 2, 3, ... in row-major order.
func SequenceDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	vals := make([]float64, r*c)
	for idx := range vals {
		vals[idx] = float64(idx + 1)
	}

	return NewFilledDense(t, r, c, vals)
}

// RandFilledDense RETURNS a new r×c Dense filled with deterministic U(-1,1).
// Deterministic per seed; use identical seeds across fast vs fallback runs.
func RandFilledDense(t testing.TB, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	m := MustDense(t, r, c)
	rng := rand.New(rand.NewSource(seed))
	var i, j int
	for i = 1; i <= r; i++ {
		for j = 1; j <= c; j++ {
			MustSet(t, m, i, j, rng.Float64()*2-1) // 0*2-1=-1 || 1*2-1=1
		}
	}

	return m
}

// MustSet WRITES v to m[i,j] or fails the test.
func MustSet(t testing.TB, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d,%v): %v", i, j, v, err)
	}
}

// MustAt READS m[i,j] or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// CompareExact ASSERTS strict equality between a matrix and a 2D literal.
// Implementation:
//   - Stage 1: Shape checks.
//   - Stage 2: Iterate and compare with == (no tolerances).
//
// Notes:
//   - Use only for integer-like or carefully crafted small matrices.
//     For floats use CompareClose instead.
func CompareExact(t testing.TB, want [][]float64, m matrix.Matrix) {
	t.Helper()
	r, c := m.Rows(), m.Cols()
	if len(want) != r {
		t.Fatalf("CompareExact: Rows = %d; want %d", r, len(want))
	}
	var i, j int // loop iterators
	var v float64
	for i = 1; i <= r; i++ {
		if len(want[i-1]) != c {
			t.Fatalf("CompareExact: Cols = %d; want %d (row %d)", c, len(want[i-1]), i)
		}
		for j = 1; j <= c; j++ {
			if v = MustAt(t, m, i, j); v != want[i-1][j-1] {
				t.Fatalf("m[%d,%d]=%v; want %v", i, j, v, want[i-1][j-1])
			}
		}
	}
}

// CompareClose ASSERTS |m[i,j] - want[i][j]| ≤ tol for every element.
func CompareClose(t testing.TB, want [][]float64, m matrix.Matrix, tol float64) {
	t.Helper()
	r, c := m.Rows(), m.Cols()
	if len(want) != r {
		t.Fatalf("CompareClose: Rows = %d; want %d", r, len(want))
	}
	var (
		i, j    int
		v, diff float64
	)
	for i = 1; i <= r; i++ {
		if len(want[i-1]) != c {
			t.Fatalf("CompareClose: Cols = %d; want %d (row %d)", c, len(want[i-1]), i)
		}
		for j = 1; j <= c; j++ {
			v = MustAt(t, m, i, j)
			diff = v - want[i-1][j-1]
			if diff > tol || diff < -tol {
				t.Fatalf("m[%d,%d]=%v; want %v ± %g", i, j, v, want[i-1][j-1], tol)
			}
		}
	}
}

// AssertErrorIs FAILS unless errors.Is(err, target).
func AssertErrorIs(t testing.TB, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("error = %v; want errors.Is(..., %v)", err, target)
	}
}
