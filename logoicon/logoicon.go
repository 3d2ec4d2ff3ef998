// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logoicon generates a PWA icon set from a source logo image:
// a silhouette of the logo in a single color, centered with padding
// on a solid square background.
package logoicon

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"

	"cogentcore.org/core/base/fsx"
	"cogentcore.org/core/base/iox/imagex"
	"cogentcore.org/core/base/logx"
	"cogentcore.org/pwaicons/canvas"
	"cogentcore.org/pwaicons/iconset"
	"cogentcore.org/pwaicons/status"
	"github.com/h2non/filetype"
)

var (
	// ErrNoSource is returned when the source logo file does not exist.
	ErrNoSource = errors.New("source logo not found")

	// ErrNotImage is returned when the source logo file is not an image.
	ErrNotImage = errors.New("source logo is not an image")
)

// Config is the configuration for generating icons from a logo.
type Config struct {

	// Source is the source logo file, relative to Dir.
	// Only its alpha channel is used.
	Source string `default:"uniloop-logo-source.png" posarg:"0" required:"-"`

	// Dir is the directory containing the source logo,
	// which the icons are also written to.
	Dir string `default:"."`

	// Sizes are the icon sizes to generate.
	// It defaults to [iconset.Default].
	Sizes []int

	// LogoScale is the fraction of the icon edge that the logo may occupy;
	// the rest is padding.
	LogoScale float64 `default:"0.7"`

	// Background is the hex color of the icon background.
	Background string `default:"#000000"`

	// Foreground is the hex color that the logo is drawn in.
	Foreground string `default:"#FFFFFF"`
}

// SourcePath returns the path of the source logo.
func (c *Config) SourcePath() string {
	if filepath.IsAbs(c.Source) {
		return c.Source
	}
	return filepath.Join(c.Dir, c.Source)
}

// Load opens the source logo at the given path. It returns an error
// wrapping [ErrNoSource] if there is no such file, and one wrapping
// [ErrNotImage] if its content is not a recognized image type.
func Load(path string) (image.Image, error) {
	ok, err := fsx.FileExists(path)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoSource, path)
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	head := make([]byte, 261)
	n, err := io.ReadFull(file, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if !filetype.IsImage(head[:n]) {
		return nil, fmt.Errorf("%w: %s", ErrNotImage, path)
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	img, _, err := imagex.Read(file)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("source logo %s is empty", path)
	}
	return img, nil
}

// Render returns the size x size icon for the given logo: a bg canvas
// with a fg silhouette of the logo fitted within scale of its edge,
// centered on it.
func Render(logo image.Image, size int, scale float64, bg, fg color.Color) *image.RGBA {
	icon := canvas.NewSquare(size, bg)
	box := int(math.Floor(float64(size) * scale))
	fitted := canvas.FitWithin(logo, box)
	sil := canvas.Silhouette(canvas.Alpha(fitted), fg)
	at := canvas.Center(icon.Bounds(), sil.Bounds())
	logx.PrintlnDebug("logoicon:", size, "logo", sil.Bounds().Size(), "at", at)
	canvas.Composite(icon, sil, at)
	return icon
}

// Generate generates and saves the icon set described by the given config.
// Icons written before an error stay on disk.
func Generate(c *Config) error {
	logo, err := Load(c.SourcePath())
	if err != nil {
		return err
	}
	sz := logo.Bounds().Size()
	status.Success("Loaded source logo: %dx%d", sz.X, sz.Y)
	if canvas.IsOpaque(logo) {
		slog.Warn("source logo has no transparency, so the icons will be solid squares", "source", c.SourcePath())
	}

	bg, err := canvas.ParseHex(c.Background)
	if err != nil {
		return err
	}
	fg, err := canvas.ParseHex(c.Foreground)
	if err != nil {
		return err
	}
	if c.LogoScale <= 0 || c.LogoScale > 1 {
		return fmt.Errorf("logo scale %g is not within (0, 1]", c.LogoScale)
	}

	for _, size := range iconset.Set(c.Sizes).Or(iconset.Default) {
		icon := Render(logo, size, c.LogoScale, bg, fg)
		if _, err := iconset.Save(icon, c.Dir, size); err != nil {
			return err
		}
		status.Success("Created %s (%dx%d)", iconset.Filename(size), size, size)
	}
	return nil
}

// Report prints the outcome of a [Generate] run with the given
// config, and returns whether it succeeded.
func Report(c *Config, err error) bool {
	switch {
	case err == nil:
		status.Success("All PWA icons created successfully!")
		status.Note("Background: %s", c.Background)
		status.Note("Logo: %s", c.Foreground)
		status.Note("%d%% padding around the logo", int(math.Round((1-c.LogoScale)*100)))
		return true
	case errors.Is(err, ErrNoSource):
		status.Failure("Source logo not found. Please ensure %s exists in the icons directory.", c.Source)
	default:
		status.Failure("Error creating icons: %v", err)
	}
	return false
}

// Create generates the icon set and reports the outcome.
// It returns false if anything failed.
func Create(c *Config) bool {
	return Report(c, Generate(c))
}
