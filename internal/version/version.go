// Package version resolves the current project version from its
// canonical source: a plain version file, a manifest entry extracted by
// regex, or an external command.
package version

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/relgate/relgate/internal/config"
	"github.com/relgate/relgate/internal/errors"
	"github.com/relgate/relgate/internal/logger"
)

// Resolver reads the current version of the project rooted at root.
// Resolution never mutates repository state.
type Resolver interface {
	// Resolve returns the version string, or an error when the source
	// cannot produce one.
	Resolve(root string) (string, error)

	// Describe names the source for diagnostics, e.g. "file:VERSION".
	Describe() string
}

// FromSettings builds a resolver for the configured version source.
// Settings are validated before this point, so an unknown source is a
// programming error.
func FromSettings(s config.Settings) Resolver {
	switch s.VersionSource {
	case "command":
		return &CommandSource{Command: s.VersionCommand}
	default:
		return &FileSource{File: s.VersionFile, Pattern: s.VersionPattern}
	}
}

// FileSource reads the version from a file relative to the repository
// root. With a Pattern, the first capture group of the first match is
// the version; without one, the first non-empty line is.
type FileSource struct {
	File    string
	Pattern string
}

func (f *FileSource) Describe() string {
	return "file:" + f.File
}

func (f *FileSource) Resolve(root string) (string, error) {
	path := filepath.Join(root, f.File)

	data, err := os.ReadFile(path) // nolint:gosec // Path is rooted at the repository
	if err != nil {
		return "", errors.ErrVersionUnresolved(f.Describe(), err)
	}

	var version string
	if f.Pattern != "" {
		re, err := regexp.Compile(f.Pattern)
		if err != nil {
			return "", errors.ErrVersionUnresolved(f.Describe(), err)
		}
		match := re.FindSubmatch(data)
		if match == nil || len(match) < 2 {
			return "", errors.ErrVersionUnresolved(f.Describe(),
				fmt.Errorf("pattern %q matched nothing in %s", f.Pattern, f.File))
		}
		version = string(match[1])
	} else {
		version = firstNonEmptyLine(string(data))
	}

	version = strings.TrimSpace(version)
	if version == "" {
		return "", errors.ErrVersionUnresolved(f.Describe(), fmt.Errorf("%s is empty", f.File))
	}

	logger.Debug("version resolved", "source", f.Describe(), "version", version)
	return version, nil
}

// CommandSource resolves the version by running a shell command in the
// repository root and taking its trimmed stdout.
type CommandSource struct {
	Command string
}

func (c *CommandSource) Describe() string {
	return "command:" + c.Command
}

func (c *CommandSource) Resolve(root string) (string, error) {
	cmd := exec.Command("sh", "-c", c.Command) // nolint:gosec // User-configured version command is intentionally executed
	cmd.Dir = root

	out, err := cmd.Output()
	if err != nil {
		return "", errors.ErrVersionUnresolved(c.Describe(), err)
	}

	version := strings.TrimSpace(string(out))
	if version == "" {
		return "", errors.ErrVersionUnresolved(c.Describe(), fmt.Errorf("command produced no output"))
	}

	logger.Debug("version resolved", "source", c.Describe(), "version", version)
	return version, nil
}

func firstNonEmptyLine(s string) string {
	for _, line := range strings.Split(s, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
