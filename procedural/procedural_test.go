// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package procedural

import (
	"image"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/core/base/iox/imagex"
	"cogentcore.org/core/cli"
	"cogentcore.org/pwaicons/iconset"
	"cogentcore.org/pwaicons/status"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	accent = color.RGBA{0x15, 0x65, 0xc0, 255}
	white  = color.RGBA{255, 255, 255, 255}
)

func TestMain(m *testing.M) {
	status.SetOutput(io.Discard)
	os.Exit(m.Run())
}

// newConfig returns a default config writing to a temporary directory.
// The preferred font is missing so that the output does not depend
// on the fonts installed on the system.
func newConfig(t *testing.T) *Config {
	c := &Config{}
	require.NoError(t, cli.SetFromDefaults(c))
	c.Dir = t.TempDir()
	c.Font = filepath.Join(c.Dir, "missing.ttf")
	return c
}

func assertColor(t *testing.T, want color.RGBA, img image.Image, x, y int) {
	t.Helper()
	got := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
	assert.True(t, imagex.CompareColors(want, got, 8), "at (%d, %d): expected %v, got %v", x, y, want, got)
}

func TestDefaults(t *testing.T) {
	c := &Config{}
	require.NoError(t, cli.SetFromDefaults(c))
	assert.Equal(t, ".", c.Dir)
	assert.Equal(t, "#1565C0", c.Background)
	assert.Equal(t, 192, c.BaseSize)
	assert.Equal(t, "CC", c.Text)
	assert.Equal(t, 16.0, c.FontSize)
}

func TestRender(t *testing.T) {
	img, err := Render(newConfig(t))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 192, 192), img.Bounds())
	assertColor(t, accent, img, 5, 5)
	assertColor(t, white, img, 96, 64)
	assertColor(t, white, img, 96, 132)
	assertColor(t, accent, img, 96, 102)
	imagex.Assert(t, img, "render")
}

func TestRenderScaled(t *testing.T) {
	c := newConfig(t)
	c.BaseSize = 384
	img, err := Render(c)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 384, 384), img.Bounds())
	assertColor(t, white, img, 192, 128)
	assertColor(t, white, img, 192, 264)
	assertColor(t, accent, img, 192, 204)
}

func TestRenderInvalid(t *testing.T) {
	c := newConfig(t)
	c.Background = "not a color"
	_, err := Render(c)
	assert.Error(t, err)

	c = newConfig(t)
	c.BaseSize = 0
	_, err = Render(c)
	assert.Error(t, err)
}

func TestGenerate(t *testing.T) {
	c := newConfig(t)
	require.NoError(t, Generate(c))

	// head center, body center, gap, and corner in design coordinates
	points := []struct {
		x, y float64
		want color.RGBA
	}{
		{96, 64, white},
		{96, 132, white},
		{96, 103, accent},
		{5, 5, accent},
	}
	for _, sz := range iconset.Default {
		img, err := iconset.Open(filepath.Join(c.Dir, iconset.Filename(sz)))
		require.NoError(t, err)
		require.Equal(t, image.Pt(sz, sz), img.Bounds().Size())
		scale := float64(sz) / DesignSize
		for _, p := range points {
			assertColor(t, p.want, img, int(p.x*scale), int(p.y*scale))
		}
	}
}

func TestGenerateFontFallback(t *testing.T) {
	c := newConfig(t)
	c.Font = ""
	require.NoError(t, Generate(c))

	c = newConfig(t)
	c.Font = "latin-modern-sans-bold"
	require.NoError(t, Generate(c))
	for _, path := range iconset.Default.Paths(c.Dir) {
		assert.FileExists(t, path)
	}
}

func TestGenerateIdempotent(t *testing.T) {
	c := newConfig(t)
	require.NoError(t, Generate(c))
	first := map[string][]byte{}
	for _, path := range iconset.Default.Paths(c.Dir) {
		b, err := os.ReadFile(path)
		require.NoError(t, err)
		first[path] = b
	}
	require.NoError(t, Generate(c))
	for path, b := range first {
		again, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, b, again, path)
	}
}

func TestGenerateUnwritable(t *testing.T) {
	c := newConfig(t)
	c.Dir = filepath.Join(c.Dir, "missing")
	assert.Error(t, Generate(c))
}
