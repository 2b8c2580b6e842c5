// SPDX-License-Identifier: MIT
// Package chroma: luma vectors and named presets.
// A luma vector holds the three perceptual weights used to compute a
// grayscale-equivalent brightness from color channels; it determines the
// axis along which saturation and hue operate.

package chroma

import "math"

// Named luma weights, one triple per preset. Each triple sums to 1.0; tests
// hold the values to a 1e-4 tolerance.
const (
	// HDTV weights (ITU-R BT.709).
	HDTVLumaR = 0.2126
	HDTVLumaG = 0.7152
	HDTVLumaB = 0.0722

	// LED panel weights.
	LEDLumaR = 0.3086
	LEDLumaG = 0.6094
	LEDLumaB = 0.0820

	// CRT phosphor weights (SMPTE 240M).
	CRTLumaR = 0.212
	CRTLumaG = 0.701
	CRTLumaB = 0.087

	// NTSC weights (ITU-R BT.601).
	NTSCLumaR = 0.299
	NTSCLumaG = 0.587
	NTSCLumaB = 0.114

	// Flat average: every channel contributes equally.
	AverageLumaR = 1.0 / 3.0
	AverageLumaG = 1.0 / 3.0
	AverageLumaB = 1.0 / 3.0
)

// presetMatchTol is the absolute per-channel tolerance used by MatchPreset.
const presetMatchTol = 1e-4

// LumaVector is a triple of perceptual weights (red, green, blue).
type LumaVector struct {
	R, G, B float64
}

// Sum returns R+G+B; well-formed vectors sum to 1.0.
// Complexity: O(1).
func (v LumaVector) Sum() float64 {
	return v.R + v.G + v.B
}

// finite reports whether every weight is a finite number.
func (v LumaVector) finite() bool {
	for _, w := range [3]float64{v.R, v.G, v.B} {
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return false
		}
	}

	return true
}

// Preset names a built-in luma weighting.
type Preset int

// Built-in presets. PresetCustom marks weights set directly via WithLuma or
// SetLuma that match no named triple.
const (
	PresetHDTV Preset = iota
	PresetLED
	PresetCRT
	PresetNTSC
	PresetAverage
	PresetCustom
)

// presetNames maps Preset values to their display names.
var presetNames = [...]string{
	PresetHDTV:    "HDTV",
	PresetLED:     "LED",
	PresetCRT:     "CRT",
	PresetNTSC:    "NTSC",
	PresetAverage: "Average",
	PresetCustom:  "Custom",
}

// String implements fmt.Stringer for diagnostics and logs.
func (p Preset) String() string {
	if p < PresetHDTV || p > PresetCustom {
		return "Unknown"
	}

	return presetNames[p]
}

// lumaByPreset holds the canonical vector of each named preset, in Preset
// declaration order.
var lumaByPreset = [...]LumaVector{
	PresetHDTV:    {R: HDTVLumaR, G: HDTVLumaG, B: HDTVLumaB},
	PresetLED:     {R: LEDLumaR, G: LEDLumaG, B: LEDLumaB},
	PresetCRT:     {R: CRTLumaR, G: CRTLumaG, B: CRTLumaB},
	PresetNTSC:    {R: NTSCLumaR, G: NTSCLumaG, B: NTSCLumaB},
	PresetAverage: {R: AverageLumaR, G: AverageLumaG, B: AverageLumaB},
}

// Luma returns the canonical weight vector of a named preset.
// PresetCustom (or an out-of-range value) yields the HDTV default — custom
// weights live on the Builder, not on the enum.
// Complexity: O(1).
func (p Preset) Luma() LumaVector {
	if p < PresetHDTV || p >= PresetCustom {
		return lumaByPreset[PresetHDTV]
	}

	return lumaByPreset[p]
}

// MatchPreset recovers the named preset a luma vector came from, comparing
// each channel within presetMatchTol. Returns (PresetCustom, false) when no
// named triple matches. This is the per-value replacement for any notion of
// a "last used preset": derive it from the data in hand, never from shared
// state.
// Determinism: fixed declaration-order scan.
// Complexity: O(1) — five candidates.
func MatchPreset(v LumaVector) (Preset, bool) {
	for p, want := range lumaByPreset {
		if math.Abs(v.R-want.R) <= presetMatchTol &&
			math.Abs(v.G-want.G) <= presetMatchTol &&
			math.Abs(v.B-want.B) <= presetMatchTol {
			return Preset(p), true
		}
	}

	return PresetCustom, false
}
