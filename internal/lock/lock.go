// Package lock serializes release runs per repository. Two concurrent
// 'relgate release' invocations could otherwise both see the tag as
// absent and both invoke the tag helper.
package lock

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/relgate/relgate/internal/logger"
)

const maxLockRetries = 3

// Handle is a held release lock. Release it when tagging is done.
type Handle struct {
	path string
	file *os.File
}

// Release removes the lock.
func (h *Handle) Release() {
	if h.file != nil {
		_ = h.file.Close()
	}
	_ = os.Remove(h.path)
}

// Acquire attempts to take the release lock, with staleness detection.
// If a lock file exists, checks if the owning process is still running.
// Stale locks (from crashed processes) are automatically removed.
func Acquire(lockFile string) (*Handle, error) {
	for attempt := 0; attempt < maxLockRetries; attempt++ {
		handle, done, err := tryAcquire(lockFile, attempt)
		if done {
			return handle, err
		}
	}
	return nil, fmt.Errorf("failed to acquire release lock after %d attempts; if no relgate run is in progress, remove %s", maxLockRetries, lockFile)
}

// tryAcquire makes a single attempt to take the lock.
// Returns (handle, true, nil) on success, (nil, true, err) on permanent failure,
// or (nil, false, nil) if a stale lock was removed and retry is needed.
func tryAcquire(lockFile string, attempt int) (*Handle, bool, error) {
	file, err := os.OpenFile(lockFile, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600) //nolint:gosec // path rooted inside .git
	if err == nil {
		_, _ = file.WriteString(strconv.Itoa(os.Getpid()))
		return &Handle{path: lockFile, file: file}, true, nil
	}

	if !errors.Is(err, os.ErrExist) {
		return nil, true, fmt.Errorf("failed to acquire release lock: %w", err)
	}

	// Lock file exists - check if it's stale
	content, readErr := os.ReadFile(lockFile) //nolint:gosec // path rooted inside .git
	if readErr != nil {
		return nil, true, fmt.Errorf("another release is in progress; if this is wrong, remove %s", lockFile)
	}

	pidStr := strings.TrimSpace(string(content))
	pid, parseErr := strconv.Atoi(pidStr)
	if parseErr != nil {
		// Invalid PID means corrupted lock file - treat as stale and retry
		logger.Debug("lock file contains invalid PID, removing stale lock", "pid", pidStr, "attempt", attempt+1)
		_ = os.Remove(lockFile)
		return nil, false, nil //nolint:nilerr // intentional: invalid PID = stale lock, retry
	}

	if !isProcessRunning(pid) {
		logger.Debug("lock held by terminated process, removing stale lock", "pid", pid, "attempt", attempt+1)
		_ = os.Remove(lockFile)
		return nil, false, nil // Retry
	}

	return nil, true, fmt.Errorf("another release (PID %d) is in progress; if this is wrong, remove %s", pid, lockFile)
}
