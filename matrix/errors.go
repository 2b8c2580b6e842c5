// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Sentinels are returned wrapped with an operation
// tag via matrixErrorf; callers still match with errors.Is.

var (
	// ErrBadShape is returned when a requested shape is invalid (negative
	// dimensions, or ragged row input to NewFromRows).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index passed to a
	// validated entry point (Minor) is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Add/Sub of different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input
	// wasn't (Determinant, Adjugate, Inverse, Minor).
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrSingular is returned when the determinant is exactly zero during
	// inversion or matrix division. This is an expected, recoverable
	// condition — callers may regenerate input and retry.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was
	// passed into a kernel.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
