// SPDX-License-Identifier: MIT
// Package matrix: cofactor algebra — determinant, adjugate, inversion.
// All three share the recursive Laplace expansion below. The recursion is
// deliberate: this engine targets small matrices (4×4 color transforms above
// all), where naive cofactor expansion is simple, allocation-light per level
// and bit-for-bit deterministic.

package matrix

// ZeroDet is the sentinel value for detecting a singular matrix.
const ZeroDet = 0.0

// Determinant computes det(m) for a square matrix via Laplace expansion
// along the first row.
//
// Base cases:
//   - 0×0: 1 (the empty product; keeps the 1×1 adjugate consistent).
//   - 1×1: the single element.
//   - 2×2: a00*a11 - a10*a01.
//
// General n×n (n > 2): Σ_j (-1)^j * m[0,j] * det(minor(0, j)).
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Determinism: fixed expansion along row 0, columns left to right.
// Complexity: O(n!) through the naive recursion; fine for the small shapes
// this package targets.
func Determinant(m *Dense) (float64, error) {
	// Validate input non-nil and square.
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return laplace(m), nil
}

// laplace is the unvalidated recursive kernel behind Determinant.
// Callers guarantee m is square.
func laplace(m *Dense) float64 {
	switch m.r {
	case 0:
		return 1.0 // empty product
	case 1:
		return m.data[0]
	case 2:
		// a00*a11 - a10*a01 on the flat buffer.
		return m.data[0]*m.data[3] - m.data[2]*m.data[1]
	}

	// Expand along the first row with alternating cofactor signs.
	var det float64
	sign := 1.0
	for j := 0; j < m.c; j++ {
		if a0j := m.data[j]; a0j != 0 { // skip zero for performance
			det += sign * a0j * laplace(minorOf(m, 0, j))
		}
		sign = -sign
	}

	return det
}

// Adjugate returns the transpose of the cofactor matrix of a square m:
// adj[i,j] = (-1)^(i+j) * det(minor(j, i)). The transpose is realized
// implicitly by swapping the minor indices, never materialized.
// For invertible m, adj(m) = det(m) * m⁻¹.
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Determinism: fixed i→j fill order.
// Complexity: n² cofactors, each a Laplace determinant of order n-1.
func Adjugate(m *Dense) (*Dense, error) {
	// Validate input non-nil and square.
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}

	n := m.r
	if n == 0 {
		return &Dense{}, nil
	}
	res := &Dense{r: n, c: n, data: make([]float64, n*n)}

	// res[i,j] = cofactor of (j,i): sign (-1)^(i+j) times the minor's det.
	var i, j int
	var sign float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if (i+j)%2 == 0 {
				sign = 1.0
			} else {
				sign = -1.0
			}
			res.data[i*n+j] = sign * laplace(minorOf(m, j, i))
		}
	}

	return res, nil
}

// Inverse computes m⁻¹ as adj(m) / det(m) and returns a fresh result.
// A zero determinant yields ErrSingular — an expected, recoverable outcome,
// not a programming error; retry policy belongs to the caller.
//
// Stage 1 (Validate): m non-nil and square.
// Stage 2 (Execute): determinant first; bail out on ZeroDet before any
// further work. Then scale the adjugate by 1/det.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrSingular.
// Complexity: one determinant plus n² cofactors.
func Inverse(m *Dense) (*Dense, error) {
	// Validate input non-nil and square.
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	// Singularity gate: compute the determinant before touching anything.
	det := laplace(m)
	if det == ZeroDet {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}

	// adj(m) * (1/det) — Adjugate cannot fail after the validation above.
	adj, err := Adjugate(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return adj.MulScalar(1.0 / det), nil
}

// Invert replaces the receiver with its inverse in place.
// On ErrSingular the receiver is left bit-for-bit unchanged: the inverse is
// fully computed into fresh storage and adopted only on success.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrSingular.
func (m *Dense) Invert() error {
	inv, err := Inverse(m)
	if err != nil {
		return err
	}
	// Adopt the fresh inverse in O(1).
	m.Swap(inv)

	return nil
}
