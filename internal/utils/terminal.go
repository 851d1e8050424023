package utils

import (
	"os"
	"strconv"
)

// DefaultTerminalWidth is the fallback terminal width when detection fails.
const DefaultTerminalWidth = 80

// GetTerminalWidth returns the current terminal width.
// Falls back to DefaultTerminalWidth if detection fails or if not running in a terminal.
func GetTerminalWidth() int {
	// Try to get width from COLUMNS environment variable first (useful for testing).
	if cols := os.Getenv("COLUMNS"); cols != "" {
		if width, err := strconv.Atoi(cols); err == nil && width > 0 {
			return width
		}
	}

	if width := getTerminalWidthSys(); width > 0 {
		return width
	}

	return DefaultTerminalWidth
}

// IsInteractiveTerminal reports whether we're running in an interactive terminal.
func IsInteractiveTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}

	return (fi.Mode() & os.ModeCharDevice) != 0
}

// TruncateMiddle shortens s to at most width runes, replacing the middle
// with an ellipsis. Used for long commit subjects in history output.
func TruncateMiddle(s string, width int) string {
	runes := []rune(s)
	if width <= 0 || len(runes) <= width {
		return s
	}
	if width <= 3 {
		return string(runes[:width])
	}

	keep := width - 3
	front := keep / 2
	back := keep - front
	return string(runes[:front]) + "..." + string(runes[len(runes)-back:])
}
