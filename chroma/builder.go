// SPDX-License-Identifier: MIT
// Package chroma: the transform Builder and its three matrix factories.
// Colors are treated as column vectors [R G B 1]ᵀ; a transform matrix M maps
// v → M·v. Chained adjustments therefore compose by left-multiplication, or
// equivalently by matrix.Mul in application order.

package chroma

import (
	"math"

	"github.com/katalvlaran/chromatrix/matrix"
)

// colorDims is the order of every color-transform matrix: three channels
// plus the homogeneous coordinate.
const colorDims = 4

// Fixed rotation constants for the hue pipeline: a 45° roll about the red
// axis followed by the green-axis rotation sends the grey vector (1,1,1)
// onto the blue axis.
var (
	invSqrt2   = 1.0 / math.Sqrt2    // sin = cos of the red-axis roll
	invSqrt3   = 1.0 / math.Sqrt(3)  // sin of the green-axis rotation
	sqrt2Over3 = math.Sqrt(2.0 / 3.0) // cos of the green-axis rotation
)

// Builder produces 4×4 color-transform matrices. It carries the luma vector
// consumed by Saturation and Hue, plus the preset that produced it — state
// is per instance, never process-wide. The zero value uses HDTV weights.
type Builder struct {
	luma   LumaVector // active perceptual weights
	preset Preset     // provenance of luma, for diagnostics
}

// NewBuilder returns a Builder configured by the given options.
// With no options it uses the HDTV (BT.709) preset.
func NewBuilder(opts ...Option) *Builder {
	o := gatherOptions(opts...)

	return &Builder{luma: o.luma, preset: o.preset}
}

// Luma returns the active weight vector.
// Complexity: O(1).
func (b *Builder) Luma() LumaVector {
	if b.zeroValue() {
		return DefaultPreset.Luma()
	}

	return b.luma
}

// Preset reports which named preset produced the active weights, or
// PresetCustom for hand-set vectors. This is the per-instance diagnostic
// surface — there is deliberately no package-level "last preset" anywhere.
// Complexity: O(1).
func (b *Builder) Preset() Preset {
	if b.zeroValue() {
		return DefaultPreset
	}

	return b.preset
}

// SetLuma installs explicit weights (red, green, blue). The weights must be
// finite; the conceptual sum-to-1 property is not enforced. The preset
// becomes whatever named triple the weights match, or PresetCustom.
// Errors: ErrBadLuma.
// Complexity: O(1).
func (b *Builder) SetLuma(r, g, blue float64) error {
	v := LumaVector{R: r, G: g, B: blue}
	if !v.finite() {
		return chromaErrorf("SetLuma", ErrBadLuma)
	}
	b.luma = v
	b.preset, _ = MatchPreset(v) // PresetCustom when nothing matches

	return nil
}

// zeroValue reports whether the Builder was used without construction; a
// zero LumaVector would otherwise black out every image.
func (b *Builder) zeroValue() bool {
	return b.luma == (LumaVector{}) && b.preset == PresetHDTV
}

// identity4 builds the 4×4 identity. The shape is a positive constant, so
// the constructor cannot fail.
func identity4() *matrix.Dense {
	m, _ := matrix.Identity(colorDims)

	return m
}

// Brightness returns the 4×4 matrix scaling the three color channels by
// factor: the identity with (0,0), (1,1), (2,2) set to factor and the
// homogeneous (3,3) left at 1. Brightness ignores the luma vector.
//
// Brightness(1) is the identity; Brightness(0) zeroes every channel.
// Complexity: O(1).
func (b *Builder) Brightness(factor float64) *matrix.Dense {
	m := identity4()
	for i := 0; i < colorDims-1; i++ {
		m.Set(i, i, factor)
	}

	return m
}

// Saturation returns the 4×4 matrix interpolating between the luma-weighted
// grayscale projection (s = 0) and the identity (s = 1):
//
//	m[i][j] = Lj*(1-s)        for i ≠ j, i,j < 3
//	m[i][i] = Li*(1-s) + s
//
// Row and column 3 stay identity. Values of s outside [0,1] extrapolate
// linearly — s > 1 oversaturates, s < 0 inverts chroma around the luma axis.
// Complexity: O(1).
func (b *Builder) Saturation(s float64) *matrix.Dense {
	luma := b.Luma()
	weights := [3]float64{luma.R, luma.G, luma.B}

	m := identity4()
	var i, j int
	var base float64
	for i = 0; i < colorDims-1; i++ {
		for j = 0; j < colorDims-1; j++ {
			base = weights[j] * (1.0 - s) // grayscale projection share
			if i == j {
				base += s // identity share on the diagonal
			}
			m.Set(i, j, base)
		}
	}

	return m
}

// Hue returns the 4×4 matrix rotating hue by angle radians around the luma
// axis. Greys stay fixed and the per-pixel luminance is preserved for any
// angle — the two invariants that make hue rotation look right.
//
// The construction runs in the row-vector convention (v → v·M), where the
// classic alignment constants live, and transposes once at the end into
// this package's column convention:
//
//	Stage 1 (Align): two fixed rotations — R_r about the red axis (1/√2
//	constants) and R_g about the green axis (√2/√3, 1/√3 constants) —
//	compose into R_rg = R_r × R_g, sending the grey diagonal onto the blue
//	axis. The luma row w = (Lr, Lg, Lb, 0) maps to sm = w × R_rg, and a
//	skew S (identity except S[0][2] = sm[0]/sm[2], S[1][2] = sm[1]/sm[2])
//	shears the rotated luma vector onto that same axis; P = R_rg × S.
//	Stage 2 (Rotate): R_b rotates the red/green plane by angle — the
//	user-facing hue rotation.
//	Stage 3 (Conjugate): H = P × R_b / P, using the package's
//	matrix-division semantics (right-multiplication by the inverse of P);
//	the returned matrix is Hᵀ.
//
// Hue(0) is the identity within floating tolerance, and Hue(a) composed
// with Hue(-a) cancels for any angle.
//
// Errors: ErrDegenerateLuma when the rotated luma vector has no blue
// component (e.g. all-zero weights); matrix.ErrSingular cannot occur for a
// well-formed alignment but is propagated honestly if it does.
// Complexity: O(1) — a fixed number of 4×4 kernels.
func (b *Builder) Hue(angle float64) (*matrix.Dense, error) {
	// R_r: fixed roll about the red axis by 45°.
	rr := identity4()
	rr.Set(1, 1, invSqrt2)
	rr.Set(1, 2, invSqrt2)
	rr.Set(2, 1, -invSqrt2)
	rr.Set(2, 2, invSqrt2)

	// R_g: fixed rotation about the green axis.
	rg := identity4()
	rg.Set(0, 0, sqrt2Over3)
	rg.Set(0, 2, invSqrt3)
	rg.Set(2, 0, -invSqrt3)
	rg.Set(2, 2, sqrt2Over3)

	// R_rg = R_r × R_g, in exactly that order.
	rot, err := matrix.Mul(rr, rg)
	if err != nil {
		return nil, chromaErrorf("Hue", err)
	}

	// sm = w × R_rg: the luma weights expressed in the rotated basis.
	luma := b.Luma()
	w, err := matrix.NewFromRows([][]float64{{luma.R, luma.G, luma.B, 0}})
	if err != nil {
		return nil, chromaErrorf("Hue", err)
	}
	sm, err := matrix.Mul(w, rot)
	if err != nil {
		return nil, chromaErrorf("Hue", err)
	}
	if sm.At(0, 2) == 0 {
		return nil, chromaErrorf("Hue", ErrDegenerateLuma)
	}

	// S: shear the rotated luma vector onto the blue axis.
	skew := identity4()
	skew.Set(0, 2, sm.At(0, 0)/sm.At(0, 2))
	skew.Set(1, 2, sm.At(0, 1)/sm.At(0, 2))

	// P = R_rg × S.
	p, err := matrix.Mul(rot, skew)
	if err != nil {
		return nil, chromaErrorf("Hue", err)
	}

	// R_b: the user-facing rotation of the red/green plane.
	sin, cos := math.Sincos(angle)
	rb := identity4()
	rb.Set(0, 0, cos)
	rb.Set(0, 1, sin)
	rb.Set(1, 0, -sin)
	rb.Set(1, 1, cos)

	// H = P × R_b / P — conjugation via the matrix-division operator.
	pr, err := matrix.Mul(p, rb)
	if err != nil {
		return nil, chromaErrorf("Hue", err)
	}
	h, err := matrix.Div(pr, p)
	if err != nil {
		return nil, chromaErrorf("Hue", err)
	}

	// Back to the column convention used by every other factory.
	return matrix.Transpose(h)
}
