// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe 1-based accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit offset formula
//     (row-1)*cols + (col-1) behind a 1-based public surface.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Make ownership explicit: Clone/CopyFrom are deep, Move transfers the buffer
//     and leaves the source in the released 0×0 state.
//   - Enforce an optional numeric policy (rejection of NaN/Inf) from a single source of truth.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone/CopyFrom: O(r*c); Move/Release: O(1).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"       // method tag used in error wrappers
	ctxSet      = "Set"      // method tag used in error wrappers
	ctxGet      = "Get"      // call-style accessor tag
	ctxApply    = "Apply"    // method tag used in error wrappers
	ctxNew      = "NewDense" // ctor tag
	ctxNewFrom  = "NewDenseFrom"
	ctxCopyFrom = "CopyFrom"
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Format: "Dense.<method>(row,col): %w"; the sentinel is preserved for errors.Is.
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols); both ≥ 1 for a live matrix, both 0 after Move/Release.
//   - data is a flat buffer of length r*c in row-major order.
//   - validateNaNInf enables optional NaN/Inf rejection in Set/Apply.
type Dense struct {
	r, c           int       // row and column counts
	data           []float64 // contiguous row-major storage (len == r*c)
	validateNaNInf bool      // numeric guard: reject NaN/Inf in Set when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an rows×cols zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows ≥ 1 && cols ≥ 1; else ErrInvalidDimensions.
//   - Stage 2: resolve options (numeric policy).
//   - Stage 3: allocate a zero-filled buffer.
//
// Behavior highlights:
//   - No panics on user errors; returns sentinel errors.
//   - A 0×N, N×0 or negative shape can never be constructed.
//
// Inputs:
//   - rows: positive number of rows
//   - cols: positive number of columns
//   - opts: WithValidateNaNInf to stamp the finite-only policy.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	if err := ValidateShape(rows, cols); err != nil {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxNew, rows, cols, err)
	}
	o := gatherOptions(opts...)

	return newDense(rows, cols, o.validateNaNInf), nil
}

// NewDefault returns the default 3×3 zero matrix.
// Complexity: O(1) (fixed 9 elements).
func NewDefault() *Dense {
	return newDense(DefaultRows, DefaultCols, DefaultValidateNaNInf)
}

// NewDenseFrom builds a rows×cols matrix from a row-major slice. The slice is
// copied; later mutations of data do not affect the result.
//
// Errors:
//   - ErrInvalidDimensions (bad shape), ErrDataLength (len(data) != rows*cols),
//     ErrNaNInf (non-finite value under WithValidateNaNInf(true)).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDenseFrom(rows, cols int, data []float64, opts ...Option) (*Dense, error) {
	if err := ValidateShape(rows, cols); err != nil {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxNewFrom, rows, cols, err)
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("%s(%d,%d): got %d values: %w", ctxNewFrom, rows, cols, len(data), ErrDataLength)
	}
	o := gatherOptions(opts...)
	if o.validateNaNInf {
		for idx, v := range data {
			if isNonFinite(v) {
				return nil, denseErrorf(ctxNewFrom, idx/cols+1, idx%cols+1, ErrNaNInf)
			}
		}
	}
	m := newDense(rows, cols, o.validateNaNInf)
	copy(m.data, data)

	return m, nil
}

// NewDenseCopy returns a deep copy of any Matrix as a *Dense.
// Implementation:
//   - Stage 1: validate non-nil and a live shape.
//   - Stage 2: fast path copies a *Dense buffer; otherwise read through At.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions (released source), errors from src.At.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDenseCopy(src Matrix) (*Dense, error) {
	if err := ValidateNotNil(src); err != nil {
		return nil, err
	}
	if err := ValidateShape(src.Rows(), src.Cols()); err != nil {
		return nil, err
	}

	return toDense(src)
}

// NewIdentity returns the n×n identity matrix.
// Errors: ErrInvalidDimensions when n < 1.
// Complexity: O(n²).
func NewIdentity(n int, opts ...Option) (*Dense, error) {
	m, err := NewDense(n, n, opts...)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// newDense allocates without validation. Callers guarantee rows, cols ≥ 0.
func newDense(rows, cols int, validateNaNInf bool) *Dense {
	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols), // make() zero-fills deterministically
		validateNaNInf: validateNaNInf,
	}
}

// toDense materializes an independent *Dense copy of m (assumed non-nil).
func toDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		cp := make([]float64, len(d.data))
		copy(cp, d.data)

		return &Dense{r: d.r, c: d.c, data: cp, validateNaNInf: d.validateNaNInf}, nil
	}

	rows, cols := m.Rows(), m.Cols()
	res := newDense(rows, cols, DefaultValidateNaNInf)
	var (
		i, j int
		v    float64
		err  error
	)
	for i = 1; i <= rows; i++ {
		for j = 1; j <= cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			res.data[(i-1)*cols+(j-1)] = v
		}
	}

	return res, nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// Released reports whether m has been emptied by Move or Release.
func (m *Dense) Released() bool { return m.data == nil }

// indexOf bounds-checks a 1-based (row, col) and computes the row-major offset.
// MAIN DESCRIPTION:
//   - Valid iff 1 ≤ row ≤ r and 1 ≤ col ≤ c; offset = (row-1)*c + (col-1).
//
// Behavior highlights:
//   - Returns the bare sentinel; public methods wrap it with coordinates.
//   - A released (0×0) matrix rejects every index.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 1 || row > m.r {
		return 0, ErrOutOfRange
	}
	if col < 1 || col > m.c {
		return 0, ErrOutOfRange
	}

	return (row-1)*m.c + (col - 1), nil
}

// At returns the value at 1-based (row, col) or ErrOutOfRange.
// MAIN DESCRIPTION:
//   - Safe element read at coordinates.
//
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: load from flat buffer.
//
// Errors:
//   - ErrOutOfRange when out of bounds (wrapped as "Dense.At(row,col): ...").
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Get is the call-style accessor: identical to At, tagged "Get" in errors.
func (m *Dense) Get(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxGet, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at 1-based (row, col) or returns an error (bounds or numeric policy).
// MAIN DESCRIPTION:
//   - Safe element write with optional finite-only policy.
//
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: enforce numeric policy (reject NaN/±Inf when enabled).
//   - Stage 3: write into flat buffer.
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for invalid numbers under the policy.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && isNonFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy (new buffer, same numeric policy).
// Complexity: O(r*c) time and memory.
func (m *Dense) Clone() Matrix {
	return m.clone()
}

// clone is the concrete-typed Clone used by kernels.
func (m *Dense) clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{
		r:              m.r,
		c:              m.c,
		data:           cp,
		validateNaNInf: m.validateNaNInf, // preserve guard policy
	}
}

// CopyFrom replaces m's shape and contents with a deep copy of src
// (assignment semantics). m keeps its own numeric policy; under the finite-only
// policy a non-finite source value is rejected and m is left untouched.
//
// Errors:
//   - ErrNilMatrix (nil receiver or src), ErrInvalidDimensions (released src),
//     ErrNaNInf (policy), errors from src.At.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense) CopyFrom(src Matrix) error {
	if m == nil {
		return fmt.Errorf("%s: %w", ctxCopyFrom, ErrNilMatrix)
	}
	cp, err := NewDenseCopy(src)
	if err != nil {
		return fmt.Errorf("%s: %w", ctxCopyFrom, err)
	}
	if m.validateNaNInf {
		for idx, v := range cp.data {
			if isNonFinite(v) {
				return denseErrorf(ctxCopyFrom, idx/cp.c+1, idx%cp.c+1, ErrNaNInf)
			}
		}
	}
	m.r, m.c, m.data = cp.r, cp.c, cp.data

	return nil
}

// Move transfers ownership of m's buffer to a new Dense and resets m to the
// released state (0×0, nil buffer). The released source rejects every element
// access with ErrOutOfRange and fails shape checks in kernels; it can be
// revived with CopyFrom.
//
// A nil receiver yields nil.
//
// Complexity: O(1); no element is copied.
func (m *Dense) Move() *Dense {
	if m == nil {
		return nil
	}
	dst := &Dense{r: m.r, c: m.c, data: m.data, validateNaNInf: m.validateNaNInf}
	m.Release()

	return dst
}

// Release drops the buffer and resets m to the released 0×0 state.
// No-op on a nil receiver.
func (m *Dense) Release() {
	if m == nil {
		return
	}
	m.data = nil
	m.r = 0
	m.c = 0
}

// String renders rows as "[a, b]\n" lines with %g, for diagnostics only.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Do visits each element in row-major order and calls f(row, col, v) with
// 1-based coordinates; it stops early when f returns false.
// Complexity: O(r*c), no allocations.
func (m *Dense) Do(f func(row, col int, v float64) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i+1, j+1, m.data[base+j]) {
				return
			}
		}
	}
}

// Apply replaces each element with f(row, col, v) in place (1-based coordinates).
//
// Behavior highlights:
//   - Deterministic row-major order.
//   - Respects validateNaNInf; an error aborts and elements written before it
//     stay updated. For all-or-nothing semantics apply to a Clone and CopyFrom it.
//
// Errors:
//   - ErrNaNInf when the transformer produced a non-finite value (policy ON).
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense) Apply(f func(row, col int, v float64) float64) error {
	var i, j, base int
	var nv float64
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			nv = f(i+1, j+1, m.data[base+j])
			if m.validateNaNInf && (math.IsNaN(nv) || math.IsInf(nv, 0)) {
				return denseErrorf(ctxApply, i+1, j+1, ErrNaNInf)
			}
			m.data[base+j] = nv
		}
	}

	return nil
}
