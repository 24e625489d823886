// Package content turns markdown folders into nav forests.
// This file implements file watching for live rescans. When markdown files
// under the content directory change, the watcher fires a debounced callback
// so the app can run a fresh Scan; the nav engine itself never re-invokes
// the scanner.
package content

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher watches a content directory tree and invokes a callback after
// changes settle.
type Watcher struct {
	dir     string
	watcher *fsnotify.Watcher

	ctx    context.Context
	cancel context.CancelFunc

	// debounce collapses editor save bursts into one rescan
	debounce time.Duration
	onChange func()
}

// NewWatcher creates a watcher over dir that calls onChange after each burst
// of file events.
func NewWatcher(dir string, onChange func()) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Watcher{
		dir:      dir,
		watcher:  fsw,
		ctx:      ctx,
		cancel:   cancel,
		debounce: 200 * time.Millisecond,
		onChange: onChange,
	}, nil
}

// Start registers the directory tree and begins delivering callbacks. New
// subdirectories created after Start are picked up as their create events
// arrive.
func (w *Watcher) Start() error {
	err := filepath.WalkDir(w.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || !d.IsDir() {
			return err
		}
		return w.watcher.Add(path)
	})
	if err != nil {
		return fmt.Errorf("watch %s: %w", w.dir, err)
	}

	go w.loop()
	return nil
}

// Stop shuts the watcher down. Safe to call more than once.
func (w *Watcher) Stop() {
	w.cancel()
	w.watcher.Close()
}

func (w *Watcher) loop() {
	var timer *time.Timer
	for {
		select {
		case <-w.ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op.Has(fsnotify.Create) {
				// Best effort: a new directory needs its own watch.
				_ = w.watcher.Add(event.Name)
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.debounce, w.onChange)
		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Watch errors are transient on most platforms; keep going.
		}
	}
}
