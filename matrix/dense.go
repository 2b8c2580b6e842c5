// SPDX-License-Identifier: MIT
// Package matrix: Dense storage, construction and access.
// Dense is a concrete, row-major matrix of float64 values, storing elements
// in a flat slice for performance and cache friendliness.

package matrix

import "fmt"

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
// The zero value is the canonical empty (0×0) matrix and is ready to use.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// New creates an r×c Dense matrix initialized to the generalized identity:
// element (i,i) is 1 for every i < min(rows, cols), all other elements are 0.
// For square shapes this is the ordinary identity; rectangular shapes degrade
// gracefully.
//
// Stage 1 (Validate): reject negative dimensions with ErrBadShape.
// Stage 2 (Prepare): canonicalize a zero dimension to the empty matrix.
// Stage 3 (Finalize): allocate flat storage and write the diagonal.
// Complexity: O(r*c) time and memory.
func New(rows, cols int) (*Dense, error) {
	// Validate dimensions.
	if rows < 0 || cols < 0 {
		return nil, matrixErrorf(opNew, ErrBadShape)
	}
	// Canonical empty matrix: either dimension zero collapses to 0×0.
	if rows == 0 || cols == 0 {
		return &Dense{}, nil
	}
	// Allocate flat slice (zeroed by the runtime).
	m := &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}

	// Write the generalized-identity diagonal in a fixed i order.
	n := rows
	if cols < n {
		n = cols
	}
	for i := 0; i < n; i++ {
		m.data[i*cols+i] = 1.0
	}

	return m, nil
}

// NewFromRows builds a Dense matrix from a row-major slice of rows.
// All rows must have equal length; ragged input yields ErrBadShape.
// An empty (or nil) input yields the canonical empty matrix.
// Complexity: O(r*c) time and memory.
func NewFromRows(rows [][]float64) (*Dense, error) {
	// Empty input collapses to the canonical empty matrix.
	if len(rows) == 0 || len(rows[0]) == 0 {
		return &Dense{}, nil
	}
	r, c := len(rows), len(rows[0])
	m := &Dense{r: r, c: c, data: make([]float64, r*c)}
	for i := 0; i < r; i++ {
		// Reject ragged input before copying anything from this row.
		if len(rows[i]) != c {
			return nil, matrixErrorf(opNew, ErrBadShape)
		}
		copy(m.data[i*c:(i+1)*c], rows[i])
	}

	return m, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Dense) Rows() int {
	return m.r // return stored row count
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Dense) Cols() int {
	return m.c // return stored column count
}

// At retrieves the element at (row, col).
//
// UNCHECKED: no bounds validation is performed. Passing an out-of-range
// index is a programmer error; the behavior is whatever the runtime does
// with the computed flat offset. This is a deliberate performance contract
// for tight numeric loops, not an oversight.
// Complexity: O(1).
func (m *Dense) At(row, col int) float64 {
	return m.data[row*m.c+col]
}

// Set assigns value v at (row, col).
// UNCHECKED — same contract as At.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) {
	m.data[row*m.c+col] = v
}

// Clone returns a deep copy of the matrix. The returned value shares no
// storage with the receiver.
// Complexity: O(r*c) time and memory.
func (m *Dense) Clone() *Dense {
	// Allocate a fresh slice and copy every element.
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// Swap exchanges the internal state (dimensions and backing storage) of two
// matrices. No element is copied; ownership transfers, it is never shared.
// Complexity: O(1).
func (m *Dense) Swap(other *Dense) {
	m.r, other.r = other.r, m.r
	m.c, other.c = other.c, m.c
	m.data, other.data = other.data, m.data
}

// Zero sets every element to the additive identity without resizing.
// Complexity: O(r*c).
func (m *Dense) Zero() {
	for i := range m.data {
		m.data[i] = 0
	}
}

// String implements fmt.Stringer for easy debugging.
// One bracketed row per line; the exact format is not load-bearing.
// Complexity: O(r*c) for string construction.
func (m *Dense) String() string {
	var s string
	var i, j int
	for i = 0; i < m.r; i++ { // iterate over rows
		s += "["                  // open row
		for j = 0; j < m.c; j++ { // iterate over columns
			// compute flat index directly for performance
			s += fmt.Sprintf("%g", m.data[i*m.c+j])
			if j < m.c-1 {
				s += ", " // separate values with comma
			}
		}
		s += "]\n" // close row
	}

	return s
}
