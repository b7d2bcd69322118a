package watch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// DefaultDebounce groups the burst of events editors emit on save
const DefaultDebounce = 200 * time.Millisecond

// Watcher reports changes to a single scene file.
// The parent directory is watched so that editors which replace the file
// by rename are still seen.
type Watcher struct {
	fsnotify *fsnotify.Watcher
	path     string
	debounce time.Duration
	logger   core.Logger
	isClosed bool
}

// New starts watching path. A nil logger discards watch errors.
func New(path string, debounce time.Duration, logger core.Logger) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if logger == nil {
		logger = core.NopLogger{}
	}

	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsWatch.Add(filepath.Dir(abs)); err != nil {
		fsWatch.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", path, err)
	}

	return &Watcher{
		fsnotify: fsWatch,
		path:     abs,
		debounce: debounce,
		logger:   logger,
	}, nil
}

// Run calls onChange once per burst of create or write events on the file
// until ctx is done. It returns ctx.Err() on cancellation.
func (w *Watcher) Run(ctx context.Context, onChange func(path string)) error {
	if w.isClosed {
		return errors.New("watcher already closed")
	}

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case e, ok := <-w.fsnotify.Events:
			if !ok {
				return nil
			}
			if !w.matches(e) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			onChange(w.path)

		case err, ok := <-w.fsnotify.Errors:
			if !ok {
				return nil
			}
			w.logger.Printf("watch: %v\n", err)
		}
	}
}

func (w *Watcher) matches(e fsnotify.Event) bool {
	if e.Op&(fsnotify.Create|fsnotify.Write) == 0 {
		return false
	}
	name, err := filepath.Abs(e.Name)
	if err != nil {
		return false
	}
	return name == w.path
}

// Path returns the absolute path being watched
func (w *Watcher) Path() string {
	return w.path
}

// Close stops the underlying watcher
func (w *Watcher) Close() error {
	if w.isClosed {
		return nil
	}
	w.isClosed = true
	return w.fsnotify.Close()
}
