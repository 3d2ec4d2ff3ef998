// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package canvas

import (
	"image"

	"golang.org/x/image/draw"
)

// Center returns the point at which inner should be placed
// to be centered within outer, using integer division.
func Center(outer, inner image.Rectangle) image.Point {
	x := (outer.Dx() - inner.Dx()) / 2
	y := (outer.Dy() - inner.Dy()) / 2
	return outer.Min.Add(image.Pt(x, y))
}

// Composite alpha-blends src over dst with the top-left corner
// of src placed at the given point. The alpha of src is the blend mask.
func Composite(dst draw.Image, src image.Image, at image.Point) {
	sb := src.Bounds()
	r := image.Rectangle{Min: at, Max: at.Add(sb.Size())}
	draw.Draw(dst, r, src, sb.Min, draw.Over)
}
