// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation checks.
//   - Keep kernels/facades minimal by delegating shape/nil checks here.
//   - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.
//
// Note:
//   - Each composite validator follows a fixed sequence (NotNil → Shape).
//   - Element-level indices are NOT validated here; At/Set are unchecked by
//     contract. These validators cover the shape-level preconditions only.

package matrix

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opNew         = "New"
	opAdd         = "Add"
	opSub         = "Sub"
	opMul         = "Mul"
	opDiv         = "Div"
	opTranspose   = "Transpose"
	opMinor       = "Minor"
	opDeterminant = "Determinant"
	opAdjugate    = "Adjugate"
	opInverse     = "Inverse"
)

// matrixErrorf wraps err with an operation tag, preserving the original error
// via %w so callers can still match with errors.Is/errors.As. Use only when
// err != nil.
// Complexity: O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m *Dense) error {
	// If the matrix is nil, fail with the unified sentinel.
	if m == nil {
		return ErrNilMatrix
	}

	return nil
}

// ValidateSameShape ensures matrices a and b are non-nil and have equal
// dimensions. Use for Add/Sub kernels and compatibility guards.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameShape(a, b *Dense) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	// Execute comparisons.
	if a.r != b.r || a.c != b.c {
		return ErrDimensionMismatch
	}

	return nil
}

// ValidateMulCompatible ensures a and b are non-nil and conformable for the
// product a × b (a.Cols == b.Rows).
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulCompatible(a, b *Dense) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	// Inner dimensions must agree.
	if a.c != b.r {
		return ErrDimensionMismatch
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(1).
func ValidateSquare(m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	// Check the square condition explicitly.
	if m.r != m.c {
		return ErrNonSquare
	}

	return nil
}
