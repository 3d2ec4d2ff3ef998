// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package procedural draws a simple PWA icon set from shapes and text,
// without any input files. The icon is drawn once at a base size and
// the other sizes are resampled from it.
package procedural

import (
	"fmt"
	"image"
	"math"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/logx"
	"cogentcore.org/pwaicons/canvas"
	"cogentcore.org/pwaicons/fontface"
	"cogentcore.org/pwaicons/iconset"
	"cogentcore.org/pwaicons/status"
)

// DesignSize is the edge size of the space that the shape
// coordinates are expressed in.
const DesignSize = 192

var (
	head   = image.Rect(64, 32, 128, 96)
	body   = image.Rect(72, 108, 120, 156)
	label  = image.Pt(96, 170)
	resize = iconset.Set{144, 512}
)

// Config is the configuration for drawing the procedural icon set.
type Config struct {

	// Dir is the directory that the icons are written to.
	Dir string `default:"."`

	// Background is the hex accent color that fills the icon.
	Background string `default:"#1565C0"`

	// Foreground is the hex color of the shapes and text.
	Foreground string `default:"#FFFFFF"`

	// BaseSize is the size that the icon is drawn at.
	BaseSize int `default:"192"`

	// Sizes are the sizes resampled from the base icon.
	// It defaults to 144 and 512.
	Sizes []int

	// Text is drawn centered near the bottom of the icon.
	Text string `default:"CC"`

	// Font is the preferred font, either a font file path or the
	// name of an embedded face such as latin-modern-sans-bold.
	// The built-in default face is used if it cannot be loaded.
	Font string `default:"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf"`

	// FontSize is the size of the text in points at the design size.
	FontSize float64 `default:"16"`
}

// Render draws the base icon described by the given config.
func Render(c *Config) (*image.RGBA, error) {
	bg, err := canvas.ParseHex(c.Background)
	if err != nil {
		return nil, err
	}
	fg, err := canvas.ParseHex(c.Foreground)
	if err != nil {
		return nil, err
	}
	if c.BaseSize <= 0 {
		return nil, fmt.Errorf("procedural.Render: invalid base size %d", c.BaseSize)
	}
	scale := float64(c.BaseSize) / DesignSize

	img := canvas.NewSquare(c.BaseSize, bg)
	canvas.FillEllipse(img, scaleRect(head, scale), fg)
	canvas.FillRect(img, scaleRect(body, scale), fg)

	face, ok := fontface.LoadOrDefault(c.Font, c.FontSize*scale)
	defer func() { errors.Log(face.Close()) }()
	if !ok {
		logx.PrintlnDebug("procedural: drawing text with the default font")
	}
	fontface.DrawAnchored(img, face, c.Text, scalePoint(label, scale), fg)
	return img, nil
}

// Generate draws the base icon and saves it along with
// all of the resampled sizes in [Config.Dir].
func Generate(c *Config) error {
	base, err := Render(c)
	if err != nil {
		return err
	}
	if err := save(base, c.Dir, c.BaseSize); err != nil {
		return err
	}
	for _, sz := range iconset.Set(c.Sizes).Or(resize) {
		if err := save(canvas.Resample(base, sz, sz), c.Dir, sz); err != nil {
			return err
		}
	}
	return nil
}

func save(img image.Image, dir string, size int) error {
	path, err := iconset.Save(img, dir, size)
	if err != nil {
		return err
	}
	logx.PrintlnDebug("procedural: saved", path)
	status.Success("Created %s (%dx%d)", iconset.Filename(size), size, size)
	return nil
}

func scaleRect(r image.Rectangle, scale float64) image.Rectangle {
	return image.Rectangle{Min: scalePoint(r.Min, scale), Max: scalePoint(r.Max, scale)}
}

func scalePoint(p image.Point, scale float64) image.Point {
	return image.Pt(int(math.Round(float64(p.X)*scale)), int(math.Round(float64(p.Y)*scale)))
}
