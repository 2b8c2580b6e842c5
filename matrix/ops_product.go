// SPDX-License-Identifier: MIT
// Package matrix: matrix product and division kernels.

package matrix

// Mul performs standard matrix multiplication C = A × B (no aliasing).
//
// Stage 1 (Validate): A, B non-nil and inner dimensions agree (A.Cols == B.Rows).
// Stage 2 (Execute): i→k→j loop with row-major strides, skipping zero A[i,k].
//
// Inputs:
//   - a: left matrix with shape (r × n).
//   - b: right matrix with shape (n × c).
//
// Returns:
//   - *Dense: new C with shape (r × c), C[i,j] = Σ_k A[i,k]*B[k,j].
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Determinism: fixed i→k→j order.
// Complexity: O(r*n*c) time, O(r*c) space. Skipping zero A[i,k] avoids
// useless multiplies against whole rows of B.
func Mul(a, b *Dense) (*Dense, error) {
	// Validate inputs via the canonical validator.
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Allocate the zeroed result.
	aRows, aCols, bCols := a.r, a.c, b.c
	res := &Dense{r: aRows, c: bCols, data: make([]float64, aRows*bCols)}

	// Row-major multiplication into res.data.
	// a.data layout: i*aCols + k; b.data layout: k*bCols + j.
	var i, j, k int
	var av float64
	var rowOffsetA, rowOffsetB, rowOffsetR int
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for k = 0; k < aCols; k++ {
			av = a.data[rowOffsetA+k]
			if av == 0 {
				continue // skip zero for performance
			}
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				res.data[rowOffsetR+j] += av * b.data[rowOffsetB+j]
			}
		}
	}

	return res, nil
}

// MulInPlace replaces the receiver with the product m × b, in exactly that
// order (the right-hand operand is never transposed or reordered). The
// receiver may change shape when b is rectangular.
// Errors: ErrNilMatrix, ErrDimensionMismatch; on error m is unchanged.
// Complexity: O(r*n*c).
func (m *Dense) MulInPlace(b *Dense) error {
	res, err := Mul(m, b)
	if err != nil {
		return err
	}
	// Adopt the product's storage in O(1); the old buffer dies with res.
	m.Swap(res)

	return nil
}

// Div computes the matrix quotient C = A × B⁻¹.
// B must be square and invertible; a zero determinant yields ErrSingular,
// which is an expected, recoverable condition (retry policy lives in the
// caller).
//
// Stage 1 (Execute): invert b via cofactor algebra.
// Stage 2 (Finalize): multiply a by the inverse.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrSingular, ErrDimensionMismatch.
// Complexity: dominated by the inversion of b.
func Div(a, b *Dense) (*Dense, error) {
	// Invert the divisor first; Inverse validates b.
	inv, err := Inverse(b)
	if err != nil {
		return nil, matrixErrorf(opDiv, err)
	}

	// Multiply by the inverse; Mul validates conformability with a.
	res, err := Mul(a, inv)
	if err != nil {
		return nil, matrixErrorf(opDiv, err)
	}

	return res, nil
}

// DivInPlace replaces the receiver with m × b⁻¹.
// Errors: as Div; on error m is unchanged.
func (m *Dense) DivInPlace(b *Dense) error {
	res, err := Div(m, b)
	if err != nil {
		return err
	}
	m.Swap(res)

	return nil
}
