// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command logoicons generates a PWA icon set (144, 192 and 512 px PNG files)
// with a white silhouette of a source logo centered on a black background.
package main

//go:generate core generate -add-funcs

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"cogentcore.org/core/cli"
	"cogentcore.org/pwaicons/logoicon"
	"cogentcore.org/pwaicons/status"
)

// errReported is returned by commands that have already
// printed their failure.
var errReported = errors.New("failure already reported")

func main() { //types:skip
	opts := cli.DefaultOptions("logoicons", "Generates a PWA icon set from a source logo.")
	opts.DefaultFiles = []string{"pwaicons.toml"}
	opts.Fatal = false
	os.Exit(exitCode(cli.Run(opts, &logoicon.Config{}, Generate, Watch)))
}

// exitCode prints the given command error unless it has
// already been reported, and returns the process exit code.
func exitCode(err error) int { //types:skip
	if err == nil {
		return 0
	}
	if !errors.Is(err, errReported) {
		status.Failure("%v", err)
	}
	return 1
}

// Generate generates the icon set from the source logo.
func Generate(c *logoicon.Config) error { //cli:cmd -root
	if !logoicon.Create(c) {
		return errReported
	}
	return nil
}

// Watch generates the icon set again every time the source logo changes,
// until interrupted.
func Watch(c *logoicon.Config) error { //cli:cmd
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	status.Note("Watching %s (press Ctrl+C to stop)", c.SourcePath())
	return logoicon.Watch(ctx, c, func(err error) {
		logoicon.Report(c, err)
	})
}
