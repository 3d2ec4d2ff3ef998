// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command drawicons draws a PWA icon set (192, 144 and 512 px PNG files)
// from simple shapes and text, without any input files.
package main

//go:generate core generate -add-funcs

import (
	"cogentcore.org/core/cli"
	"cogentcore.org/pwaicons/procedural"
	"cogentcore.org/pwaicons/status"
)

func main() { //types:skip
	opts := cli.DefaultOptions("drawicons", "Draws a PWA icon set from shapes and text.")
	opts.DefaultFiles = []string{"pwaicons.toml"}
	cli.Run(opts, &procedural.Config{}, Draw)
}

// Draw draws the icon set into the configured directory.
func Draw(c *procedural.Config) error { //cli:cmd -root
	if err := procedural.Generate(c); err != nil {
		return err
	}
	status.Success("Icons created successfully")
	return nil
}
