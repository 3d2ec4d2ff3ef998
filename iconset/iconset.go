// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package iconset defines the set of square PNG files that make up
// a PWA icon set, and handles naming, encoding and saving them.
package iconset

import (
	"bufio"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"cogentcore.org/core/base/iox/imagex"
)

// Set is an ordered list of icon edge sizes in pixels.
type Set []int

// Default is the standard PWA icon set.
var Default = Set{144, 192, 512}

// Or returns the set, or def if the set is empty.
func (s Set) Or(def Set) Set {
	if len(s) == 0 {
		return def
	}
	return s
}

// Paths returns the file paths of the icons in the set within dir.
func (s Set) Paths(dir string) []string {
	paths := make([]string, len(s))
	for i, sz := range s {
		paths[i] = filepath.Join(dir, Filename(sz))
	}
	return paths
}

// Filename returns the file name of the icon with the given size,
// such as "192.png".
func Filename(size int) string {
	return strconv.Itoa(size) + ".png"
}

// encoder uses maximum compression for the smallest files.
var encoder = &png.Encoder{CompressionLevel: png.BestCompression}

// Encode writes the given image to w as a size-optimized PNG.
func Encode(w io.Writer, img image.Image) error {
	return encoder.Encode(w, img)
}

// Save saves the given icon as the size x size file in dir,
// overwriting any existing file of the same name. It returns
// the path of the written file. It is an error for the image
// to not be exactly size x size.
func Save(img image.Image, dir string, size int) (string, error) {
	if sz := img.Bounds().Size(); sz.X != size || sz.Y != size {
		return "", fmt.Errorf("iconset.Save: image is %dx%d, not %dx%d", sz.X, sz.Y, size, size)
	}
	path := filepath.Join(dir, Filename(size))
	file, err := os.Create(path)
	if err != nil {
		return "", err
	}
	bw := bufio.NewWriter(file)
	err = Encode(bw, img)
	if err == nil {
		err = bw.Flush()
	}
	if cerr := file.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return "", fmt.Errorf("iconset.Save: writing %s: %w", path, err)
	}
	return path, nil
}

// Open opens the image at the given path. The format is inferred
// automatically; png, jpeg, gif, tiff, bmp, and webp are supported.
func Open(path string) (image.Image, error) {
	img, _, err := imagex.Open(path)
	return img, err
}
