// SPDX-License-Identifier: MIT

// Package chroma builds 4×4 affine color-transform matrices over the
// channels R, G, B and a homogeneous fourth row/column, for image and video
// pipelines.
//
// The three builders are:
//
//   - Brightness(f): identity with the three channel diagonals set to f.
//   - Saturation(s): linear interpolation between the luma-weighted grayscale
//     projection (s=0) and the identity (s=1); values outside [0,1]
//     extrapolate linearly.
//   - Hue(angle): rotation by angle radians around the luma axis, built from
//     two fixed axis-aligning rotations, a luma-preserving skew, a plane
//     rotation and its conjugation via matrix division.
//
// Saturation and Hue are parameterized by a luma vector — three perceptual
// weights (red, green, blue) summing to 1.0 — carried per Builder instance.
// Named presets (HDTV, LED, CRT, NTSC, Average) are provided as constants;
// the Builder remembers which preset produced its weights, so diagnostics
// never depend on process-wide mutable state.
//
// All matrices come from and compose with package matrix; chain transforms
// by multiplication.
package chroma
