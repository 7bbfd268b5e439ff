package discovery

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/ytget/launchgrid/internal/clock"
)

// DefaultDebounce is the quiet period after the last filesystem event
// before a rescan is requested
const DefaultDebounce = 300 * time.Millisecond

// Watcher reports changes under the discovery roots. Bursts of events are
// coalesced: onChange runs once the roots have been quiet for the debounce
// period.
type Watcher struct {
	fs       *fsnotify.Watcher
	clock    clock.Clock
	debounce time.Duration
	onChange func()
	logger   *zap.Logger

	mu     sync.Mutex
	timer  clock.Timer
	gen    uint64
	closed bool
}

// WatcherOption configures a Watcher
type WatcherOption func(*Watcher)

// WithWatcherClock replaces the real clock used for debouncing
func WithWatcherClock(c clock.Clock) WatcherOption {
	return func(w *Watcher) {
		if c != nil {
			w.clock = c
		}
	}
}

// WithWatcherLogger sets the logger
func WithWatcherLogger(logger *zap.Logger) WatcherOption {
	return func(w *Watcher) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// NewWatcher watches roots and calls onChange after each debounced burst.
// Roots that do not exist are skipped.
func NewWatcher(roots []string, debounce time.Duration, onChange func(), opts ...WatcherOption) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fs watcher: %w", err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	w := &Watcher{
		fs:       fsw,
		clock:    clock.Real(),
		debounce: debounce,
		onChange: onChange,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(w)
	}

	for _, root := range roots {
		if info, err := os.Stat(root); err != nil || !info.IsDir() {
			w.logger.Debug("not watching missing root", zap.String("root", root))
			continue
		}
		if err := fsw.Add(root); err != nil {
			w.logger.Warn("failed to watch root", zap.String("root", root), zap.Error(err))
		}
	}
	return w, nil
}

// Watched returns the roots currently being watched
func (w *Watcher) Watched() []string {
	return w.fs.WatchList()
}

// Run forwards filesystem events to the debounce timer until ctx is done or
// the watcher is closed.
func (w *Watcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.Close()
			return ctx.Err()
		case event, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			w.logger.Debug("fs event", zap.String("name", event.Name), zap.String("op", event.Op.String()))
			w.touch()
		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("fs watcher error", zap.Error(err))
		}
	}
}

// Close stops watching and cancels a pending notification
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	w.mu.Unlock()
	return w.fs.Close()
}

// touch restarts the debounce timer
func (w *Watcher) touch() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.gen++
	gen := w.gen
	w.timer = w.clock.AfterFunc(w.debounce, func() { w.fire(gen) })
}

// fire runs when a debounce period elapses. A timer that was replaced after
// it started firing carries an old generation and is ignored.
func (w *Watcher) fire(gen uint64) {
	w.mu.Lock()
	if w.closed || gen != w.gen {
		w.mu.Unlock()
		return
	}
	w.timer = nil
	onChange := w.onChange
	w.mu.Unlock()

	if onChange != nil {
		onChange()
	}
}
