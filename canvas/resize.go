// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package canvas

import (
	"image"
	"math"

	"github.com/anthonynsimon/bild/transform"
)

// Resample resizes the given image to exactly width x height
// using the Lanczos filter.
func Resample(img image.Image, width, height int) *image.RGBA {
	return transform.Resize(img, width, height, transform.Lanczos)
}

// FitSize returns the size that an image of size sz should have
// to fit within a box x box square while keeping its aspect ratio.
// The longer edge becomes exactly box and the other edge is rounded,
// with a minimum of 1. Sizes that already fit are returned unchanged.
func FitSize(sz image.Point, box int) image.Point {
	if sz.X <= box && sz.Y <= box {
		return sz
	}
	if sz.X >= sz.Y {
		// x is our limiting size, and we make y in proportion to it
		y := int(math.Round(float64(sz.Y) * float64(box) / float64(sz.X)))
		return image.Pt(box, max(y, 1))
	}
	x := int(math.Round(float64(sz.X) * float64(box) / float64(sz.Y)))
	return image.Pt(max(x, 1), box)
}

// FitWithin resizes the given image so that it fits within a box x box
// square, preserving its aspect ratio. It never upscales: an image that
// already fits is returned as is.
func FitWithin(img image.Image, box int) image.Image {
	sz := img.Bounds().Size()
	fsz := FitSize(sz, box)
	if fsz == sz {
		return img
	}
	return Resample(img, fsz.X, fsz.Y)
}
