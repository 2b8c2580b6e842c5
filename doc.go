// Package chromatrix is a dense matrix engine with a color-science edge:
// a row-major float64 matrix type with full cofactor algebra, plus 4×4
// color-transform builders for image and video pipelines.
//
// 🚀 What is chromatrix?
//
//	A small, deterministic library that brings together:
//		• Dense matrices: generalized-identity construction, O(1) swap, deep clones
//		• Arithmetic: elementwise & scalar ops, products, division via inverse
//		• Cofactor algebra: Laplace determinant, adjugate, in-place inversion
//		• Color transforms: brightness, saturation and hue-rotation matrices
//		• Luma presets: HDTV, LED, CRT, NTSC and flat-average weights
//		• Image filters: apply any 4×4 color matrix to an image.Image
//
// ✨ Why choose chromatrix?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – fixed loop orders, no hidden global state
//   - Honest errors – sentinel errors matched with errors.Is, never panics
//     on user-triggered conditions
//   - Extensible – matrices compose; chain transforms by multiplication
//
// Under the hood, everything is organized under four subpackages:
//
//	matrix/     — Dense storage, arithmetic, determinant/adjugate/inverse
//	chroma/     — luma presets and 4×4 brightness/saturation/hue builders
//	imagefx/    — per-pixel application of color matrices to images
//	chromaplot/ — channel-gain diagnostics rendered with gonum/plot
//
// Quick example — desaturate an image by half:
//
//	b := chroma.NewBuilder(chroma.WithPreset(chroma.PresetHDTV))
//	out, err := imagefx.Apply(img, b.Saturation(0.5))
//
//	go get github.com/katalvlaran/chromatrix
package chromatrix
