package watchlist

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"coinscope/internal/config/logger"
)

// Watcher reports edits of the watchlist file made by other processes
type Watcher interface {
	Start(ctx context.Context) error
	Close()
}

type watcher struct {
	path      string
	fsWatcher *fsnotify.Watcher
	debouncer Debouncer
	log       logger.Logger
	mu        sync.Mutex
	closed    bool
}

// NewWatcher creates a watcher for path; onChange runs once per debounced burst of edits
func NewWatcher(path string, debounce time.Duration, onChange func(), log logger.Logger) (Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		fsw.Close()
		return nil, err
	}

	w := &watcher{
		path:      absPath,
		fsWatcher: fsw,
		log:       log,
	}

	w.debouncer = NewDebouncer(debounce, func(events int) {
		w.log.Debug().Msgf("Watchlist file changed (%d events)", events)
		onChange()
	})

	return w, nil
}

// Start watches the parent directory so atomic replaces of the file are seen
func (w *watcher) Start(ctx context.Context) error {
	if err := w.fsWatcher.Add(filepath.Dir(w.path)); err != nil {
		return err
	}

	go w.processEvents(ctx)

	w.log.Info().Msgf("Watching %s", w.path)

	return nil
}

// Close stops the watcher and releases resources
func (w *watcher) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}

	w.closed = true
	w.debouncer.Stop()
	w.fsWatcher.Close()
}

func (w *watcher) processEvents(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			w.Close()
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}

			w.handleEvent(event)
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}

			w.log.Error().Err(err).Msg("Watcher error")
		}
	}
}

func (w *watcher) handleEvent(event fsnotify.Event) {
	if !isRelevantEvent(event) {
		return
	}

	name, err := filepath.Abs(event.Name)
	if err != nil || name != w.path {
		return
	}

	w.debouncer.Trigger()
}

// isRelevantEvent returns true if the event may have changed the file content
func isRelevantEvent(event fsnotify.Event) bool {
	return event.Has(fsnotify.Write) ||
		event.Has(fsnotify.Create) ||
		event.Has(fsnotify.Remove) ||
		event.Has(fsnotify.Rename)
}
