package config

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/katalvlaran/waytour/route"
)

// DefaultDebounce is how long a waypoint file must stay quiet before it is
// reloaded. Editors usually write a file in several steps.
const DefaultDebounce = 150 * time.Millisecond

// WaypointHandler receives every successfully reloaded waypoint list.
type WaypointHandler func([]route.Waypoint)

// WaypointWatcher reloads a waypoint file whenever it changes on disk.
//
// The parent directory is watched rather than the file itself so that
// editors replacing the file by rename are still noticed. Files that fail to
// parse are logged and skipped; the handler only ever sees valid lists.
type WaypointWatcher struct {
	path     string
	handler  WaypointHandler
	debounce time.Duration
	logger   *slog.Logger

	watcher  *fsnotify.Watcher
	done     chan struct{}
	stopOnce sync.Once
}

// NewWaypointWatcher prepares a watcher for path. debounce <= 0 selects
// DefaultDebounce; a nil logger discards output.
func NewWaypointWatcher(path string, handler WaypointHandler, debounce time.Duration, logger *slog.Logger) (*WaypointWatcher, error) {
	if handler == nil {
		return nil, fmt.Errorf("config: nil waypoint handler")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: watch %s: %w", path, err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: watch %s: %w", path, err)
	}

	return &WaypointWatcher{
		path:     abs,
		handler:  handler,
		debounce: debounce,
		logger:   logger.With(slog.String("component", "waypoint_watcher"), slog.String("path", abs)),
		watcher:  w,
		done:     make(chan struct{}),
	}, nil
}

// Start begins watching. Events are processed on a background goroutine
// until ctx is cancelled or Stop is called.
func (w *WaypointWatcher) Start(ctx context.Context) error {
	if err := w.watcher.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("config: watch %s: %w", w.path, err)
	}
	go w.loop(ctx)

	return nil
}

// Stop releases the underlying watcher. Safe to call more than once.
func (w *WaypointWatcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.done)
		_ = w.watcher.Close()
	})
}

func (w *WaypointWatcher) loop(ctx context.Context) {
	defer w.Stop()

	// The timer is created stopped and armed by the first relevant event.
	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.done:
			return
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			timer.Reset(w.debounce)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watch error", slog.Any("error", err))
		case <-timer.C:
			w.reload()
		}
	}
}

func (w *WaypointWatcher) reload() {
	wps, err := LoadWaypoints(w.path)
	if err != nil {
		w.logger.Warn("ignoring waypoint file", slog.Any("error", err))
		return
	}
	w.logger.Info("waypoints reloaded", slog.Int("count", len(wps)))
	w.handler(wps)
}
