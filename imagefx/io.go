// SPDX-License-Identifier: MIT
// Package imagefx: disk I/O for the transform pipeline.

package imagefx

import (
	"image"

	"github.com/disintegration/imaging"
)

// Open loads an image from path, honoring the EXIF orientation tag so
// camera photos come in upright. The format is sniffed from the content.
func Open(path string) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fxErrorf(opOpen, err)
	}

	return img, nil
}

// Save writes img to path; the encoder is chosen by the file extension
// (png, jpg, gif, tif, bmp).
func Save(img image.Image, path string) error {
	if img == nil {
		return fxErrorf(opSave, ErrNilImage)
	}
	if err := imaging.Save(img, path); err != nil {
		return fxErrorf(opSave, err)
	}

	return nil
}
