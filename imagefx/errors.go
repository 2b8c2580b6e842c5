// SPDX-License-Identifier: MIT
// Package imagefx: sentinel error set and operation tags.

package imagefx

import (
	"errors"
	"fmt"
)

// ErrNilImage indicates a nil source image where pixels were required.
var ErrNilImage = errors.New("imagefx: nil source image")

// Operation tags used in wrapped errors.
const (
	opApply            = "Apply"
	opAdjustBrightness = "AdjustBrightness"
	opAdjustSaturation = "AdjustSaturation"
	opAdjustHue        = "AdjustHue"
	opOpen             = "Open"
	opSave             = "Save"
)

// fxErrorf wraps err with an operation tag, preserving the original error
// via %w. Use only when err != nil.
func fxErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
