// Package chroma_test contains unit tests for luma vectors and presets.
package chroma_test

import (
	"testing"

	"github.com/katalvlaran/chromatrix/chroma"
	"github.com/stretchr/testify/require"
)

// tol is the absolute numeric tolerance shared by the package tests.
const tol = 1e-4

// TestPresetWeightsSumToOne verifies every named preset sums to 1.0.
func TestPresetWeightsSumToOne(t *testing.T) {
	presets := []chroma.Preset{
		chroma.PresetHDTV,
		chroma.PresetLED,
		chroma.PresetCRT,
		chroma.PresetNTSC,
		chroma.PresetAverage,
	}
	for _, p := range presets {
		v := p.Luma()
		require.InDelta(t, 1.0, v.Sum(), tol, "preset %s", p) // weights sum to 1
	}
}

// TestPresetConstants spot-checks the published constant triples.
func TestPresetConstants(t *testing.T) {
	hdtv := chroma.PresetHDTV.Luma()
	require.InDelta(t, 0.2126, hdtv.R, tol) // BT.709 red weight
	require.InDelta(t, 0.7152, hdtv.G, tol) // BT.709 green weight
	require.InDelta(t, 0.0722, hdtv.B, tol) // BT.709 blue weight

	ntsc := chroma.PresetNTSC.Luma()
	require.InDelta(t, 0.299, ntsc.R, tol) // BT.601 red weight
	require.InDelta(t, 0.587, ntsc.G, tol) // BT.601 green weight
	require.InDelta(t, 0.114, ntsc.B, tol) // BT.601 blue weight

	avg := chroma.PresetAverage.Luma()
	require.InDelta(t, 1.0/3.0, avg.R, tol) // flat average
}

// TestMatchPresetRoundTrip recovers each preset from its own weights.
func TestMatchPresetRoundTrip(t *testing.T) {
	presets := []chroma.Preset{
		chroma.PresetHDTV,
		chroma.PresetLED,
		chroma.PresetCRT,
		chroma.PresetNTSC,
		chroma.PresetAverage,
	}
	for _, p := range presets {
		got, ok := chroma.MatchPreset(p.Luma()) // derive the name from the data
		require.True(t, ok, "preset %s", p)
		require.Equal(t, p, got)
	}
}

// TestMatchPresetCustom reports no match for arbitrary weights.
func TestMatchPresetCustom(t *testing.T) {
	got, ok := chroma.MatchPreset(chroma.LumaVector{R: 0.5, G: 0.25, B: 0.25})
	require.False(t, ok)                       // nothing matches
	require.Equal(t, chroma.PresetCustom, got) // reported as custom
}

// TestPresetString verifies the display names.
func TestPresetString(t *testing.T) {
	require.Equal(t, "HDTV", chroma.PresetHDTV.String())
	require.Equal(t, "LED", chroma.PresetLED.String())
	require.Equal(t, "CRT", chroma.PresetCRT.String())
	require.Equal(t, "NTSC", chroma.PresetNTSC.String())
	require.Equal(t, "Average", chroma.PresetAverage.String())
	require.Equal(t, "Custom", chroma.PresetCustom.String())
	require.Equal(t, "Unknown", chroma.Preset(99).String())
}
