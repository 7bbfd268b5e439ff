package discovery

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/launchgrid/internal/clock"
)

func TestWatcher_DebouncesBursts(t *testing.T) {
	c := clock.Fake(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	var calls int32
	w, err := NewWatcher(nil, 300*time.Millisecond, func() { atomic.AddInt32(&calls, 1) }, WithWatcherClock(c))
	require.NoError(t, err)
	defer w.Close()

	w.touch()
	c.Advance(200 * time.Millisecond)
	w.touch()
	c.Advance(200 * time.Millisecond)
	w.touch()
	c.Advance(299 * time.Millisecond)
	assert.Equal(t, int32(0), atomic.LoadInt32(&calls))

	c.Advance(time.Millisecond)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))

	c.Advance(time.Second)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestWatcher_CloseCancelsPending(t *testing.T) {
	c := clock.Fake(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	var calls int32
	w, err := NewWatcher(nil, 0, func() { atomic.AddInt32(&calls, 1) }, WithWatcherClock(c))
	require.NoError(t, err)

	w.touch()
	require.NoError(t, w.Close())
	require.NoError(t, w.Close())
	w.touch()
	c.Advance(time.Second)
	assert.Equal(t, int32(0), atomic.LoadInt32(&calls))
}

func TestWatcher_ReportsFilesystemChanges(t *testing.T) {
	root := t.TempDir()
	changed := make(chan struct{}, 1)
	w, err := NewWatcher([]string{root, filepath.Join(root, "missing")}, 20*time.Millisecond, func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	require.NoError(t, err)
	assert.Equal(t, []string{root}, w.Watched())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	require.NoError(t, os.Mkdir(filepath.Join(root, "New.app"), 0o755))

	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}
