package platform

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/gofrs/flock"
)

// ErrLocked is returned when another process holds the instance lock
var ErrLocked = errors.New("another launchgrid instance is running")

// AcquireLock takes the exclusive instance lock at path without blocking.
// The GUI holds it for its whole lifetime; the CLI holds it while it edits
// the saved layout.
func AcquireLock(path string) (*flock.Flock, error) {
	if err := CreateDirectoryIfNotExists(filepath.Dir(path)); err != nil {
		return nil, fmt.Errorf("creating lock directory: %w", err)
	}
	lock := flock.New(path)
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("failed to acquire lock %s: %w", path, err)
	}
	if !locked {
		return nil, ErrLocked
	}
	return lock, nil
}
