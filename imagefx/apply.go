// SPDX-License-Identifier: MIT
// Package imagefx: the per-pixel transform kernel and its builder helpers.

package imagefx

import (
	"image"

	"github.com/anthonynsimon/bild/clone"
	"github.com/anthonynsimon/bild/parallel"

	"github.com/katalvlaran/chromatrix/chroma"
	"github.com/katalvlaran/chromatrix/matrix"
)

// colorDims is the required order of a color-transform matrix.
const colorDims = 4

// Apply transforms every pixel of img by the 4×4 color matrix m, treating
// each pixel as the column vector [R G B 1]ᵀ with channels normalized to
// [0, 1]. Results are clamped per channel; alpha passes through unchanged.
// Rows are processed in parallel bands sized to the machine.
//
// Errors: ErrNilImage, matrix.ErrNilMatrix, chroma.ErrNotColorMatrix.
// Complexity: O(w·h).
func Apply(img image.Image, m *matrix.Dense) (*image.RGBA, error) {
	if img == nil {
		return nil, fxErrorf(opApply, ErrNilImage)
	}
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, fxErrorf(opApply, err)
	}
	if m.Rows() != colorDims || m.Cols() != colorDims {
		return nil, fxErrorf(opApply, chroma.ErrNotColorMatrix)
	}

	src := clone.AsRGBA(img)
	dst := image.NewRGBA(src.Bounds())

	// Hoist the twelve affine coefficients out of the pixel loop; the
	// homogeneous fourth row never contributes to stored channels.
	var coef [3][4]float64
	var i, j int
	for i = 0; i < 3; i++ {
		for j = 0; j < colorDims; j++ {
			coef[i][j] = m.At(i, j)
		}
	}

	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	parallel.Line(h, func(start, end int) {
		var x, y, idx int
		var r, g, b float64
		for y = start; y < end; y++ {
			for x = 0; x < w; x++ {
				idx = y*src.Stride + x*4

				r = float64(src.Pix[idx+0]) / 255.0
				g = float64(src.Pix[idx+1]) / 255.0
				b = float64(src.Pix[idx+2]) / 255.0

				dst.Pix[idx+0] = clampByte(coef[0][0]*r + coef[0][1]*g + coef[0][2]*b + coef[0][3])
				dst.Pix[idx+1] = clampByte(coef[1][0]*r + coef[1][1]*g + coef[1][2]*b + coef[1][3])
				dst.Pix[idx+2] = clampByte(coef[2][0]*r + coef[2][1]*g + coef[2][2]*b + coef[2][3])
				dst.Pix[idx+3] = src.Pix[idx+3] // alpha untouched
			}
		}
	})

	return dst, nil
}

// AdjustBrightness scales every channel of img by factor. Options configure
// the underlying chroma.Builder, though Brightness ignores the luma vector.
func AdjustBrightness(img image.Image, factor float64, opts ...chroma.Option) (*image.RGBA, error) {
	b := chroma.NewBuilder(opts...)

	out, err := Apply(img, b.Brightness(factor))
	if err != nil {
		return nil, fxErrorf(opAdjustBrightness, err)
	}

	return out, nil
}

// AdjustSaturation interpolates img between its luma-weighted grayscale
// (s = 0) and the original (s = 1); s > 1 oversaturates.
func AdjustSaturation(img image.Image, s float64, opts ...chroma.Option) (*image.RGBA, error) {
	b := chroma.NewBuilder(opts...)

	out, err := Apply(img, b.Saturation(s))
	if err != nil {
		return nil, fxErrorf(opAdjustSaturation, err)
	}

	return out, nil
}

// AdjustHue rotates the hue of img by angle radians around the luma axis.
// Greys are preserved for any angle.
func AdjustHue(img image.Image, angle float64, opts ...chroma.Option) (*image.RGBA, error) {
	b := chroma.NewBuilder(opts...)

	m, err := b.Hue(angle)
	if err != nil {
		return nil, fxErrorf(opAdjustHue, err)
	}
	out, err := Apply(img, m)
	if err != nil {
		return nil, fxErrorf(opAdjustHue, err)
	}

	return out, nil
}

// clampByte maps a normalized channel value back to [0, 255], saturating
// outside [0, 1] and rounding to nearest.
func clampByte(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	default:
		return uint8(v*255.0 + 0.5)
	}
}
