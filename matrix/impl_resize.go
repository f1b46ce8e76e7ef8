// SPDX-License-Identifier: MIT

// Package matrix - in-place reshaping of a Dense.
//
// ResizeRows/ResizeCols keep every element whose (row, col) lies inside both
// the old and the new bounds at its original position, zero-fill new cells
// and drop the rest. Both always reallocate the whole buffer; the receiver is
// untouched when validation fails.

package matrix

import "fmt"

const (
	ctxResizeRows = "ResizeRows"
	ctxResizeCols = "ResizeCols"
)

// ResizeCols changes the column count to cols.
//
// Errors:
//   - ErrInvalidDimensions when cols < 1; ErrNilMatrix on a nil receiver.
//
// Complexity:
//   - Time O(r*cols), Space O(r*cols).
func (m *Dense) ResizeCols(cols int) error {
	if m == nil {
		return fmt.Errorf("Dense.%s: %w", ctxResizeCols, ErrNilMatrix)
	}
	if err := ValidateShape(m.r, cols); err != nil {
		return fmt.Errorf("Dense.%s(%d): %w", ctxResizeCols, cols, err)
	}
	m.reshape(m.r, cols)

	return nil
}

// ResizeRows changes the row count to rows.
//
// Errors:
//   - ErrInvalidDimensions when rows < 1; ErrNilMatrix on a nil receiver.
//
// Complexity:
//   - Time O(rows*c), Space O(rows*c).
func (m *Dense) ResizeRows(rows int) error {
	if m == nil {
		return fmt.Errorf("Dense.%s: %w", ctxResizeRows, ErrNilMatrix)
	}
	if err := ValidateShape(rows, m.c); err != nil {
		return fmt.Errorf("Dense.%s(%d): %w", ctxResizeRows, rows, err)
	}
	m.reshape(rows, m.c)

	return nil
}

// Resize changes both dimensions in one reallocation.
//
// Errors:
//   - ErrInvalidDimensions when rows < 1 or cols < 1; ErrNilMatrix on a nil receiver.
func (m *Dense) Resize(rows, cols int) error {
	if m == nil {
		return fmt.Errorf("Dense.Resize: %w", ErrNilMatrix)
	}
	if err := ValidateShape(rows, cols); err != nil {
		return fmt.Errorf("Dense.Resize(%d,%d): %w", rows, cols, err)
	}
	m.reshape(rows, cols)

	return nil
}

// reshape copies the overlapping top-left block into a fresh zeroed buffer.
// Assumes rows, cols ≥ 1.
func (m *Dense) reshape(rows, cols int) {
	buf := make([]float64, rows*cols)
	keepRows := min(rows, m.r)
	keepCols := min(cols, m.c)
	for i := 0; i < keepRows; i++ {
		copy(buf[i*cols:i*cols+keepCols], m.data[i*m.c:i*m.c+keepCols])
	}
	m.data = buf
	m.r = rows
	m.c = cols
}
