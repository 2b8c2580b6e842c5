// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin, intention-revealing entry points for common constructions.
//   - Avoid any logic duplication — each facade delegates to the canonical
//     implementation.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying
//     kernels; validation happens in the kernels.

package matrix

// Identity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Thin alias of New with a square shape and an intention-revealing name.
// Complexity: O(n²).
func Identity(n int) (*Dense, error) {
	// New already writes the generalized-identity diagonal.
	return New(n, n)
}

// Zeros returns a zero-initialized rows×cols matrix (no identity diagonal).
// Complexity: O(r*c).
func Zeros(rows, cols int) (*Dense, error) {
	m, err := New(rows, cols)
	if err != nil {
		return nil, err // propagate constructor error unchanged
	}
	// Clear the generalized-identity diagonal written by the constructor.
	m.Zero()

	return m, nil
}

// ZerosLike returns a new zero matrix with the same shape as m.
// Handy to preallocate staging buffers.
// Complexity: O(r*c).
func ZerosLike(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	return Zeros(m.r, m.c)
}

// IdentityLike returns I with dimension = Rows(m); requires a square input.
// Complexity: O(n²).
func IdentityLike(m *Dense) (*Dense, error) {
	// Ensure the input is square using the centralized validator.
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return Identity(m.r)
}
