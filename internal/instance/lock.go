// pattern: Imperative Shell

// Package instance coordinates demo processes sharing one data directory.
package instance

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

const lockFileName = "popover.lock"

// ErrLocked means another process owns the data directory.
var ErrLocked = errors.New("another popover instance owns the log file")

// Lock takes the exclusive lock that makes this process the log file
// writer. Callers that get ErrLocked keep running without a file log.
func Lock(dataDir string) (*flock.Flock, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	fl := flock.New(filepath.Join(dataDir, lockFileName))
	locked, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("failed to acquire lock: %w", err)
	}
	if !locked {
		return nil, ErrLocked
	}
	return fl, nil
}

// Release unlocks fl. A nil lock is ignored.
func Release(fl *flock.Flock) {
	if fl != nil {
		_ = fl.Unlock()
	}
}
