// SPDX-License-Identifier: MIT

// Package imagefx applies 4×4 color-transform matrices to whole images.
//
// Apply is the workhorse: it converts any image.Image to RGBA, runs the
// affine transform over every pixel in parallel row bands, clamps each
// channel back to [0, 255] and leaves alpha untouched. The AdjustBrightness,
// AdjustSaturation and AdjustHue helpers build the matrix with a
// chroma.Builder and apply it in one call; chained adjustments should
// instead multiply the matrices first and Apply once.
package imagefx
