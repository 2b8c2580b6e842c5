// SPDX-License-Identifier: MIT
// Package chroma: applying a color matrix to a single color value.

package chroma

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/katalvlaran/chromatrix/matrix"
)

// TransformColor applies a 4×4 color matrix to one color, treating it as the
// column vector [R G B 1]ᵀ and clamping the result back into [0,1] per
// channel. The homogeneous fourth component is discarded — transforms built
// by this package keep it at 1.
//
// Errors: ErrNilMatrix (propagated), ErrNotColorMatrix for any other shape.
// Complexity: O(1).
func TransformColor(m *matrix.Dense, c colorful.Color) (colorful.Color, error) {
	// Validate the matrix is present and exactly 4×4.
	if err := matrix.ValidateNotNil(m); err != nil {
		return colorful.Color{}, chromaErrorf("TransformColor", err)
	}
	if m.Rows() != colorDims || m.Cols() != colorDims {
		return colorful.Color{}, chromaErrorf("TransformColor", ErrNotColorMatrix)
	}

	// One affine row per channel: m[i]·[R G B 1]ᵀ.
	out := colorful.Color{
		R: m.At(0, 0)*c.R + m.At(0, 1)*c.G + m.At(0, 2)*c.B + m.At(0, 3),
		G: m.At(1, 0)*c.R + m.At(1, 1)*c.G + m.At(1, 2)*c.B + m.At(1, 3),
		B: m.At(2, 0)*c.R + m.At(2, 1)*c.G + m.At(2, 2)*c.B + m.At(2, 3),
	}

	return out.Clamped(), nil
}

// Luminance returns the luma-weighted brightness of a color under the given
// weights: Lr*R + Lg*G + Lb*B.
// Complexity: O(1).
func Luminance(v LumaVector, c colorful.Color) float64 {
	return v.R*c.R + v.G*c.G + v.B*c.B
}
