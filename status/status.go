// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package status prints human-readable progress lines for the icon
// generators. Markers are colored when the output is a terminal.
package status

import (
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
)

var (
	out    io.Writer = os.Stdout
	output           = termenv.NewOutput(os.Stdout)
)

// SetOutput sets the writer that status lines are printed to.
func SetOutput(w io.Writer) {
	out = w
	output = termenv.NewOutput(w)
}

// Success prints a line marking something that succeeded.
func Success(format string, args ...any) {
	line(output.String("✅").Foreground(termenv.ANSIGreen), format, args...)
}

// Failure prints a line marking something that failed.
func Failure(format string, args ...any) {
	line(output.String("❌").Foreground(termenv.ANSIRed), format, args...)
}

// Note prints an informational line.
func Note(format string, args ...any) {
	line(output.String("•").Faint(), format, args...)
}

func line(marker termenv.Style, format string, args ...any) {
	fmt.Fprintln(out, marker.String(), fmt.Sprintf(format, args...))
}
