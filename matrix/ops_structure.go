// SPDX-License-Identifier: MIT
// Package matrix: structural transforms (transpose, minor extraction).

package matrix

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Works for rectangular matrices: an r×c input transposes to c×r.
// The original matrix is never mutated.
//
// Stage 1 (Validate): m non-nil.
// Stage 2 (Execute): flat-index copy data[i*c+j] → res.data[j*r+i].
//
// Errors: ErrNilMatrix.
// Determinism: fixed i→j traversal.
// Complexity: O(r*c) time and space.
func Transpose(m *Dense) (*Dense, error) {
	// Validate input non-nil.
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	// Allocate result with flipped dimensions.
	rows, cols := m.r, m.c
	res := &Dense{r: cols, c: rows, data: make([]float64, len(m.data))}

	// data[i*cols + j] → res.data[j*rows + i]
	var i, j, baseSrc int
	for i = 0; i < rows; i++ {
		baseSrc = i * cols
		for j = 0; j < cols; j++ {
			res.data[j*rows+i] = m.data[baseSrc+j]
		}
	}

	return res, nil
}

// Minor returns the (n-1)×(n-1) matrix formed by deleting the given row and
// column of a square n×n matrix, preserving the relative order of the
// remaining rows and columns. The minor of a 1×1 matrix is the canonical
// empty matrix.
//
// Stage 1 (Validate): m non-nil and square; row/col within range.
// Stage 2 (Execute): two-index copy skipping the deleted row and column.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrOutOfRange.
// Complexity: O(n²).
func Minor(m *Dense, row, col int) (*Dense, error) {
	// Validate squareness (covers nil).
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	// Validate deletion indices; this entry point is shape-level, so it is
	// checked — unlike element access.
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return nil, matrixErrorf(opMinor, ErrOutOfRange)
	}

	return minorOf(m, row, col), nil
}

// minorOf builds the minor without validation. Callers guarantee m is square
// and the indices are in range.
// Complexity: O(n²).
func minorOf(m *Dense, row, col int) *Dense {
	n := m.r
	if n <= 1 {
		return &Dense{} // deleting the only row/column leaves nothing
	}
	res := &Dense{r: n - 1, c: n - 1, data: make([]float64, (n-1)*(n-1))}

	// Copy everything except the deleted row/column, preserving order.
	var i, j, dst int
	for i = 0; i < n; i++ {
		if i == row {
			continue
		}
		base := i * n
		for j = 0; j < n; j++ {
			if j == col {
				continue
			}
			res.data[dst] = m.data[base+j]
			dst++
		}
	}

	return res
}
