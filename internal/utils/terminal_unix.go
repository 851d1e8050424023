//go:build !windows

package utils

import (
	"os"

	"golang.org/x/sys/unix"
)

// getTerminalWidthSys attempts to get terminal width using unix system calls.
func getTerminalWidthSys() int {
	// Try stdout first, then stderr, then stdin.
	fds := []int{int(os.Stdout.Fd()), int(os.Stderr.Fd()), int(os.Stdin.Fd())}

	for _, fd := range fds {
		if winsize, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ); err == nil {
			if winsize.Col > 0 {
				return int(winsize.Col)
			}
		}
	}

	return 0
}
