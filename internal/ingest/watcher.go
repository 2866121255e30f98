package ingest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultSettleDelay is how long a dropped file must stay quiet before it is read.
const DefaultSettleDelay = 300 * time.Millisecond

// DropHandler receives the files dropped into a watched folder.
type DropHandler func(paths []string)

// DropWatcher turns a folder into a drop zone: every .txt file created or
// rewritten there is handed to the handler as a single-file drop.
type DropWatcher struct {
	dir     string
	handler DropHandler
	logger  *slog.Logger
	watcher *fsnotify.Watcher
	settle  time.Duration

	mu     sync.Mutex
	timers map[string]*time.Timer
}

// NewDropWatcher starts watching dir. Call Run to deliver events and Close to stop.
func NewDropWatcher(dir string, handler DropHandler, logger *slog.Logger) (*DropWatcher, error) {
	if handler == nil {
		return nil, errors.New("drop handler is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	if err := w.Add(dir); err != nil {
		w.Close()
		return nil, fmt.Errorf("failed to watch drop folder %s: %w", dir, err)
	}

	return &DropWatcher{
		dir:     dir,
		handler: handler,
		logger:  logger,
		watcher: w,
		settle:  DefaultSettleDelay,
		timers:  make(map[string]*time.Timer),
	}, nil
}

// Dir returns the watched folder.
func (dw *DropWatcher) Dir() string {
	return dw.dir
}

// Run delivers drops until ctx is done or the watcher is closed.
func (dw *DropWatcher) Run(ctx context.Context) error {
	dw.logger.Debug("Drop folder watcher started", "dir", dw.dir)

	for {
		select {
		case <-ctx.Done():
			dw.stopTimers()
			return ctx.Err()

		case event, ok := <-dw.watcher.Events:
			if !ok {
				dw.stopTimers()
				return nil
			}

			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}

			if !IsTranscriptFile(event.Name) {
				dw.logger.Debug("Ignoring non-transcript file", "path", event.Name)
				continue
			}

			dw.schedule(event.Name)

		case err, ok := <-dw.watcher.Errors:
			if !ok {
				dw.stopTimers()
				return nil
			}
			dw.logger.Error("Drop folder watcher error", "error", err)
		}
	}
}

// Close stops watching.
func (dw *DropWatcher) Close() error {
	return dw.watcher.Close()
}

// schedule delivers path once writes to it have settled. Editors and copies
// emit several events per file, so each new event restarts the timer.
func (dw *DropWatcher) schedule(path string) {
	dw.mu.Lock()
	defer dw.mu.Unlock()

	if t, ok := dw.timers[path]; ok {
		t.Stop()
	}

	dw.timers[path] = time.AfterFunc(dw.settle, func() {
		dw.mu.Lock()
		delete(dw.timers, path)
		dw.mu.Unlock()

		dw.logger.Info("Transcript dropped", "path", path)
		dw.handler([]string{path})
	})
}

func (dw *DropWatcher) stopTimers() {
	dw.mu.Lock()
	defer dw.mu.Unlock()

	for path, t := range dw.timers {
		t.Stop()
		delete(dw.timers, path)
	}
}
