//go:build !windows

package lock

import (
	"errors"

	"golang.org/x/sys/unix"
)

// isProcessRunning checks if a process with the given PID is still running.
// Signal 0 performs the permission and existence checks without signaling.
func isProcessRunning(pid int) bool {
	err := unix.Kill(pid, 0)
	if err == nil {
		return true
	}
	// EPERM means the process exists but belongs to another user.
	return errors.Is(err, unix.EPERM)
}
