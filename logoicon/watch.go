// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logoicon

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"cogentcore.org/core/base/errors"
	"github.com/fsnotify/fsnotify"
)

// settle is how long the source must be quiet after a change
// before the icons are generated again.
const settle = 150 * time.Millisecond

// Watch generates the icon set, and then generates it again every time
// the source logo is created or written, until ctx is done. The result
// of every run is passed to report.
func Watch(ctx context.Context, c *Config, report func(err error)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { errors.Log(w.Close()) }()

	src := filepath.Clean(c.SourcePath())
	if err := w.Add(filepath.Dir(src)); err != nil {
		return fmt.Errorf("watching %s: %w", src, err)
	}
	report(Generate(c))

	var timer <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != src || !(ev.Has(fsnotify.Create) || ev.Has(fsnotify.Write)) {
				continue
			}
			timer = time.After(settle)
		case <-timer:
			timer = nil
			report(Generate(c))
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watching %s: %w", src, err)
		}
	}
}
