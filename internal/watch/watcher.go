// Package watch regenerates artifacts whenever declaration files change.
package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// defaultDebounce coalesces the event bursts editors produce on save.
const defaultDebounce = 250 * time.Millisecond

// Watcher observes declaration files and invokes a rebuild callback after
// each burst of changes settles.
type Watcher struct {
	fs       *fsnotify.Watcher
	exts     []string
	debounce time.Duration
	onChange func(paths []string)
	log      zerolog.Logger
}

// New creates a watcher that reacts to files with any of the given
// extensions, e.g. [".yaml", ".yml"].
func New(exts []string, onChange func(paths []string), log zerolog.Logger) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}

	return &Watcher{
		fs:       fs,
		exts:     exts,
		debounce: defaultDebounce,
		onChange: onChange,
		log:      log,
	}, nil
}

// AddDirectory recursively registers dir and its subdirectories.
// Hidden directories are skipped.
func (w *Watcher) AddDirectory(dir string) error {
	return filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if !info.IsDir() {
			return nil
		}

		if name := filepath.Base(path); len(name) > 1 && name[0] == '.' {
			return filepath.SkipDir
		}

		if err := w.fs.Add(path); err != nil {
			return fmt.Errorf("watching directory %s: %w", path, err)
		}

		return nil
	})
}

// Run blocks processing events until the context is cancelled. Changes to
// declaration files are accumulated over the debounce window and then handed
// to the callback as one batch.
func (w *Watcher) Run(ctx context.Context) error {
	var timer *time.Timer
	var fire <-chan time.Time
	pending := map[string]struct{}{}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.fs.Events:
			if !ok {
				return fmt.Errorf("watcher event channel closed")
			}

			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := w.AddDirectory(event.Name); err != nil {
						w.log.Warn().Err(err).Str("dir", event.Name).Msg("failed to watch new directory")
					}
					continue
				}
			}

			if !w.isDeclaration(event.Name) {
				continue
			}

			pending[event.Name] = struct{}{}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			paths := make([]string, 0, len(pending))
			for path := range pending {
				paths = append(paths, path)
			}
			pending = map[string]struct{}{}
			fire = nil

			w.onChange(paths)

		case err, ok := <-w.fs.Errors:
			if !ok {
				return fmt.Errorf("watcher error channel closed")
			}
			if err != nil {
				w.log.Warn().Err(err).Msg("watcher error")
			}
		}
	}
}

func (w *Watcher) isDeclaration(path string) bool {
	ext := filepath.Ext(path)
	for _, want := range w.exts {
		if ext == want {
			return true
		}
	}

	return false
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	return w.fs.Close()
}
