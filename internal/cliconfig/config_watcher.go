package cliconfig

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// Watcher monitors the config file via fsnotify and reports re-parsed
// contents so the session can pick up tuning changes between commands.
// Editors often replace files atomically, so the watch is on the directory
// and events are filtered by name.
type Watcher struct {
	path     string
	log      zerolog.Logger
	onChange func(FileConfig)

	mu       sync.Mutex
	debounce *time.Timer
}

// NewWatcher creates a watcher for the config file at path.
func NewWatcher(path string, log zerolog.Logger, onChange func(FileConfig)) *Watcher {
	return &Watcher{path: path, log: log, onChange: onChange}
}

// Run blocks until ctx ends, invoking the onChange callback (debounced by
// 100ms) after each write to the config file. The callback runs on the
// watcher's goroutine.
func (w *Watcher) Run(ctx context.Context) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		w.log.Error().Err(err).Msg("config watcher: create failed")
		return
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(w.path)); err != nil {
		w.log.Error().Err(err).Str("path", w.path).Msg("config watcher: watch failed")
		return
	}

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != filepath.Base(w.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.debounceReload(100 * time.Millisecond)

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn().Err(err).Msg("config watcher: error")
		}
	}
}

func (w *Watcher) debounceReload(delay time.Duration) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounce != nil {
		w.debounce.Stop()
	}
	w.debounce = time.AfterFunc(delay, w.reload)
}

func (w *Watcher) reload() {
	fc, err := LoadFileConfig(w.path)
	if err != nil {
		w.log.Warn().Err(err).Str("path", w.path).Msg("config watcher: reload failed")
		return
	}
	w.onChange(fc)
}
