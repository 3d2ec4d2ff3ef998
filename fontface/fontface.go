// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fontface loads font faces for drawing icon text, with
// a built-in fallback face that is always available.
package fontface

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"os"

	"github.com/go-fonts/latin-modern/lmsans10bold"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// LatinModernSansBold is the name of the embedded bold sans-serif face.
const LatinModernSansBold = "latin-modern-sans-bold"

// Embedded are the font faces that can be loaded by name
// instead of by file path.
var Embedded = map[string][]byte{
	LatinModernSansBold: lmsans10bold.TTF,
}

// Default is the minimal built-in face used when no other face can be loaded.
var Default font.Face = basicfont.Face7x13

// Load loads the font with the given name at the given size in points
// (at 72 DPI, so points are pixels). The name is either the name of an
// [Embedded] face or the path of a TrueType or OpenType font file.
func Load(name string, size float64) (font.Face, error) {
	if name == "" {
		return nil, errors.New("fontface.Load: no font name")
	}
	data, ok := Embedded[name]
	if !ok {
		var err error
		data, err = os.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("fontface.Load: %w", err)
		}
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("fontface.Load: parsing %q: %w", name, err)
	}
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// LoadOrDefault is like [Load], but it returns [Default] if the font
// cannot be loaded for any reason. It returns whether the requested
// font was loaded.
func LoadOrDefault(name string, size float64) (font.Face, bool) {
	face, err := Load(name, size)
	if err != nil {
		slog.Debug("using default font", "font", name, "err", err)
		return Default, false
	}
	return face, true
}

// DrawAnchored draws the given text in the given color with its middle
// at the given point: horizontally centered on its advance width and
// vertically centered between the ascent and descent of the face.
func DrawAnchored(dst draw.Image, face font.Face, text string, at image.Point, c color.Color) {
	m := face.Metrics()
	adv := font.MeasureString(face, text)
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.I(at.X) - adv/2,
			Y: fixed.I(at.Y) + (m.Ascent-m.Descent)/2,
		},
	}
	d.DrawString(text)
}
