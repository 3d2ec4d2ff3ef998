// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package canvas

import (
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/channel"
)

// Alpha returns the alpha channel of the given image as a grayscale image.
func Alpha(img image.Image) *image.Gray {
	return channel.Extract(img, channel.Alpha)
}

// Silhouette returns an image of the same size as the given alpha mask,
// where every pixel has the RGB of c and the alpha of the mask.
// Any alpha in c itself is ignored.
func Silhouette(alpha *image.Gray, c color.Color) *image.NRGBA {
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	b := alpha.Bounds()
	img := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			a := alpha.GrayAt(b.Min.X+x, b.Min.Y+y).Y
			i := img.PixOffset(x, y)
			img.Pix[i+0] = nc.R
			img.Pix[i+1] = nc.G
			img.Pix[i+2] = nc.B
			img.Pix[i+3] = a
		}
	}
	return img
}

// IsOpaque returns whether the given image is known to be fully opaque.
// Images that cannot report their opacity are treated as not opaque.
func IsOpaque(img image.Image) bool {
	o, ok := img.(interface{ Opaque() bool })
	return ok && o.Opaque()
}
