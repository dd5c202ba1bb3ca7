// Package watch reports changes of a fixed set of files.
//
// Package: watch
// Title: File Change Watcher
// Description: Watches the directories of the given files, so that editors
//              which save by rename are seen too, and reports changes of the
//              files themselves after a quiet period.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
package watch

import (
	"context"
	"path/filepath"
	"sort"
	"time"

	"github.com/fsnotify/fsnotify"

	mdwerror "github.com/msto63/st4info/foundation/core/error"
	mdwlog "github.com/msto63/st4info/foundation/core/log"
)

// DefaultDebounce is the quiet period after the last event of a burst
const DefaultDebounce = 200 * time.Millisecond

// Watcher watches a set of files
type Watcher struct {
	watcher  *fsnotify.Watcher
	files    map[string]bool
	debounce time.Duration
	logger   *mdwlog.Logger
}

// New creates a watcher for paths. logger may be nil.
func New(paths []string, logger *mdwlog.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to create file watcher").
			WithCode(mdwerror.CodeIO).
			WithOperation("watch.New")
	}

	w := &Watcher{
		watcher:  fw,
		files:    make(map[string]bool, len(paths)),
		debounce: DefaultDebounce,
		logger:   logger,
	}

	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			abs = filepath.Clean(p)
		}
		w.files[abs] = true
		dirs[filepath.Dir(abs)] = true
	}

	for dir := range dirs {
		if err := fw.Add(dir); err != nil {
			fw.Close()
			return nil, mdwerror.Wrap(err, "failed to watch directory").
				WithCode(mdwerror.CodeIO).
				WithOperation("watch.New").
				WithDetail("dir", dir)
		}
	}
	return w, nil
}

// WithDebounce sets the quiet period
func (w *Watcher) WithDebounce(d time.Duration) *Watcher {
	w.debounce = d
	return w
}

// Run blocks until ctx is done and calls onChange with the sorted paths that
// changed during each burst of events. The watcher is closed when Run returns.
func (w *Watcher) Run(ctx context.Context, onChange func(changed []string)) error {
	defer w.watcher.Close()

	pending := make(map[string]bool)
	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			path, relevant := w.relevant(event)
			if !relevant {
				continue
			}
			w.debug("file changed", mdwlog.String("path", path), mdwlog.String("op", event.Op.String()))

			pending[path] = true
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(w.debounce)
			fire = timer.C

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			if w.logger != nil {
				w.logger.Warn("file watcher error", mdwlog.Err(err))
			}

		case <-fire:
			fire = nil
			changed := make([]string, 0, len(pending))
			for p := range pending {
				changed = append(changed, p)
			}
			sort.Strings(changed)
			pending = make(map[string]bool)

			onChange(changed)
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) (string, bool) {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) &&
		!event.Has(fsnotify.Rename) && !event.Has(fsnotify.Remove) {
		return "", false
	}
	path, err := filepath.Abs(event.Name)
	if err != nil {
		path = filepath.Clean(event.Name)
	}
	return path, w.files[path]
}

func (w *Watcher) debug(message string, fields ...mdwlog.Fields) {
	if w.logger != nil {
		w.logger.Debug(message, fields...)
	}
}
