// Package validation checks git ref names before they reach git.
// Catching a malformed branch or tag name here gives a precise message
// instead of a raw git error mid-release.
package validation

import (
	"regexp"
	"strings"

	"github.com/relgate/relgate/internal/errors"
)

var (
	// Git rejects refs with special characters that conflict with ref syntax.
	invalidCharsRegex = regexp.MustCompile(`[~^:?*\[\]\\]`)
	// Consecutive dots create ambiguous ref resolution in Git.
	consecutiveDotsRegex = regexp.MustCompile(`\.\.`)
	// Leading/trailing dots and slashes break Git's hierarchical ref structure.
	invalidStartEndRegex = regexp.MustCompile(`^[./]|[./]$`)
	// Control characters would break terminal output and Git commands.
	controlCharsRegex = regexp.MustCompile(`[\x00-\x1f\x7f]`)
)

// ValidateBranchName reports whether name is usable as a git branch name.
func ValidateBranchName(name string) error {
	if name == "HEAD" || name == "@" {
		return errors.ErrInvalidRefName("branch", name, "cannot be 'HEAD' or '@'")
	}
	return validateRefName("branch", name)
}

// ValidateTagName reports whether name is usable as a git tag name.
// Tag names come from version sources and the configured prefix, both of
// which are user input.
func ValidateTagName(name string) error {
	return validateRefName("tag", name)
}

func validateRefName(kind, name string) error {
	if name == "" {
		return errors.ErrInvalidRefName(kind, name, "cannot be empty")
	}

	if strings.Contains(name, " ") {
		return errors.ErrInvalidRefName(kind, name, "cannot contain spaces")
	}

	if strings.HasPrefix(name, "-") {
		return errors.ErrInvalidRefName(kind, name, "cannot start with a dash")
	}

	if invalidCharsRegex.MatchString(name) {
		return errors.ErrInvalidRefName(kind, name, `contains invalid characters (~^:?*[]\)`)
	}

	if consecutiveDotsRegex.MatchString(name) {
		return errors.ErrInvalidRefName(kind, name, "cannot contain consecutive dots (..)")
	}

	if invalidStartEndRegex.MatchString(name) {
		return errors.ErrInvalidRefName(kind, name, "cannot start or end with dots or slashes")
	}

	if controlCharsRegex.MatchString(name) {
		return errors.ErrInvalidRefName(kind, name, "cannot contain control characters")
	}

	if strings.HasSuffix(name, ".lock") {
		return errors.ErrInvalidRefName(kind, name, "cannot end with '.lock'")
	}

	return nil
}
