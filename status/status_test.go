// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package status

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLines(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stdout)

	Success("Created %s (%dx%d)", "144.png", 144, 144)
	Failure("Error creating icons: %v", "boom")
	Note("White logo")
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if assert.Len(t, lines, 3) {
		assert.Contains(t, lines[0], "✅")
		assert.True(t, strings.HasSuffix(lines[0], " Created 144.png (144x144)"))
		assert.Contains(t, lines[1], "❌")
		assert.True(t, strings.HasSuffix(lines[1], " Error creating icons: boom"))
		assert.True(t, strings.HasSuffix(lines[2], " White logo"))
	}
}
