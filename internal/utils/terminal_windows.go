//go:build windows

package utils

import (
	"os"

	"golang.org/x/sys/windows"
)

// getTerminalWidthSys attempts to get terminal width from the console.
func getTerminalWidthSys() int {
	var info windows.ConsoleScreenBufferInfo
	if err := windows.GetConsoleScreenBufferInfo(windows.Handle(os.Stdout.Fd()), &info); err != nil {
		return 0
	}
	return int(info.Window.Right - info.Window.Left + 1)
}
