// Package formatter renders gate results and journal entries for
// terminal output.
package formatter

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/relgate/relgate/internal/config"
	"github.com/relgate/relgate/internal/journal"
	"github.com/relgate/relgate/internal/styles"
	"github.com/relgate/relgate/internal/utils"
)

// Indicator legend (color / plain):
// Pass: green ✓ / ok
// Fail: red ✗ / FAIL
// Skip: dim - / -
const (
	iconPass = "✓"
	iconFail = "✗"
	iconSkip = "-"
)

const (
	asciiPass = "ok"
	asciiFail = "FAIL"
	asciiSkip = "-"
)

// CheckMarker returns the pass/fail indicator for one gate check.
func CheckMarker(ok bool) string {
	if config.IsPlain() {
		if ok {
			return asciiPass
		}
		return asciiFail
	}
	if ok {
		return styles.Render(&styles.Success, iconPass)
	}
	return styles.Render(&styles.Error, iconFail)
}

// SkipMarker returns the indicator for a check that was not reached.
func SkipMarker() string {
	if config.IsPlain() {
		return asciiSkip
	}
	return styles.Render(&styles.Dimmed, iconSkip)
}

// outcomeStyles maps journal outcomes to their display style.
var outcomeStyles = map[string]*lipgloss.Style{
	journal.OutcomeTagged:        &styles.Success,
	journal.OutcomeAlreadyTagged: &styles.Info,
	journal.OutcomeWouldTag:      &styles.Info,
	journal.OutcomeBlocked:       &styles.Warning,
	journal.OutcomeFailed:        &styles.Error,
}

// Outcome renders a journal outcome with its status color.
func Outcome(outcome string) string {
	style, ok := outcomeStyles[outcome]
	if !ok {
		style = &styles.Dimmed
	}
	return styles.Render(style, outcome)
}

// Timestamp renders a journal timestamp as a relative age for recent
// entries and an absolute date otherwise.
func Timestamp(ts time.Time) string {
	if ts.IsZero() {
		return "unknown"
	}

	age := time.Since(ts)
	switch {
	case age < time.Minute:
		return "just now"
	case age < time.Hour:
		return fmt.Sprintf("%dm ago", int(age.Minutes()))
	case age < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(age.Hours()))
	case age < 14*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(age.Hours()/24))
	default:
		return ts.Local().Format("2006-01-02")
	}
}

// Entry renders one journal entry as a single history line, truncating
// long details to the terminal width.
func Entry(e journal.Entry) string {
	line := fmt.Sprintf("%-14s %-12s %s", Outcome(e.Outcome), Timestamp(e.Timestamp), e.Tag)
	if e.Detail != "" {
		detail := utils.TruncateMiddle(e.Detail, utils.GetTerminalWidth()/2)
		line += "  " + styles.Render(&styles.Dimmed, detail)
	}
	return line
}
