// SPDX-License-Identifier: MIT
// Package chroma: sentinel error set.
// All builders return these sentinels (possibly wrapped with an operation
// tag); tests match them via errors.Is.

package chroma

import (
	"errors"
	"fmt"
)

var (
	// ErrBadLuma indicates a luma weight that is NaN or ±Inf. Weights are
	// expected to be finite; they conceptually sum to 1.0 but the sum is not
	// enforced — extrapolated or experimental weightings are permitted.
	ErrBadLuma = errors.New("chroma: luma weight is not finite")

	// ErrDegenerateLuma indicates a luma vector whose rotated blue component
	// vanishes, making the hue skew undefined (e.g. all-zero weights).
	ErrDegenerateLuma = errors.New("chroma: degenerate luma vector")

	// ErrNotColorMatrix indicates a matrix that is not 4×4 where a color
	// transform was required.
	ErrNotColorMatrix = errors.New("chroma: matrix is not 4x4")
)

// chromaErrorf wraps err with an operation tag, preserving the original
// error via %w. Use only when err != nil.
func chromaErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
