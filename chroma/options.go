// SPDX-License-Identifier: MIT

// Package chroma: functional configuration for the transform Builder.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each option impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: Options fields are unexported; public APIs consume ...Option.

package chroma

// DefaultPreset is the luma weighting a Builder starts with when no option
// says otherwise. HDTV (BT.709) matches the displays most pipelines target.
const DefaultPreset = PresetHDTV

// Internal panic messages (no magic strings).
const (
	panicPresetInvalid = "chroma: WithPreset: unknown preset"
	panicLumaInvalid   = "chroma: WithLuma: weights must be finite"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options carries the resolved Builder configuration.
type Options struct {
	luma   LumaVector // active perceptual weights
	preset Preset     // preset that produced luma, or PresetCustom
}

// WithPreset selects a named luma preset.
// Panics on an unknown preset value — selecting a preset that does not
// exist is a programmer error, not runtime input.
func WithPreset(p Preset) Option {
	if p < PresetHDTV || p >= PresetCustom {
		panic(panicPresetInvalid)
	}

	return func(o *Options) {
		o.preset = p
		o.luma = p.Luma()
	}
}

// WithLuma installs explicit weights. The preset becomes whatever named
// triple the weights match, or PresetCustom.
// Panics on non-finite weights (programmer error); the conceptual sum-to-1
// property is not enforced, so experimental weightings remain expressible.
func WithLuma(v LumaVector) Option {
	if !v.finite() {
		panic(panicLumaInvalid)
	}

	return func(o *Options) {
		o.luma = v
		o.preset, _ = MatchPreset(v) // PresetCustom when nothing matches
	}
}

// gatherOptions folds the defaults and the provided options, in order.
func gatherOptions(opts ...Option) Options {
	o := Options{preset: DefaultPreset, luma: DefaultPreset.Luma()}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
