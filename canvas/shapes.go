// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package canvas

import (
	"image"
	"image/color"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/draw"
)

// Box boundaries are inclusive, so a box from 64 to 128 covers 65 pixels,
// and the shape extends to the far edge of its last pixel.

// FillEllipse fills the ellipse inscribed in the given inclusive
// bounding box with the given color.
func FillEllipse(dst draw.Image, box image.Rectangle, c color.Color) {
	f := newFiller(dst, c)
	cx := float64(box.Min.X+box.Max.X+1) / 2
	cy := float64(box.Min.Y+box.Max.Y+1) / 2
	rx := float64(box.Dx()+1) / 2
	ry := float64(box.Dy()+1) / 2
	rasterx.AddEllipse(cx, cy, rx, ry, 0, f)
	f.Draw()
}

// FillRect fills the given inclusive bounding box with the given color.
func FillRect(dst draw.Image, box image.Rectangle, c color.Color) {
	f := newFiller(dst, c)
	rasterx.AddRect(float64(box.Min.X), float64(box.Min.Y), float64(box.Max.X+1), float64(box.Max.Y+1), 0, f)
	f.Draw()
}

func newFiller(dst draw.Image, c color.Color) *rasterx.Filler {
	b := dst.Bounds()
	scanner := rasterx.NewScannerGV(b.Dx(), b.Dy(), dst, b)
	f := rasterx.NewFiller(b.Dx(), b.Dy(), scanner)
	f.SetColor(c)
	return f
}
