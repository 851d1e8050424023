package git

import (
	"strings"

	"github.com/relgate/relgate/internal/errors"
	"github.com/relgate/relgate/internal/logger"
)

// ModifiedFiles returns the tracked files with uncommitted changes,
// staged or unstaged. Untracked files do not block a release and are
// excluded.
func ModifiedFiles(c Commander, path string) ([]string, error) {
	out, err := c.Run(path, "status", "--porcelain")
	if err != nil {
		return nil, errors.ErrGitOperation("status", err)
	}

	var files []string
	for _, line := range strings.Split(string(out), "\n") {
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "??") {
			continue
		}
		// Porcelain v1: two status columns, a space, then the path.
		// Renames report as "old -> new"; the new path is what is dirty.
		entry := line
		if len(entry) > 3 {
			entry = entry[3:]
		}
		if idx := strings.Index(entry, " -> "); idx >= 0 {
			entry = entry[idx+4:]
		}
		files = append(files, unquotePath(entry))
	}

	logger.Debug("repository status checked", "modified", len(files), "path", path)
	return files, nil
}

// IsClean reports whether the working tree has no uncommitted changes to
// tracked files.
func IsClean(c Commander, path string) (bool, error) {
	files, err := ModifiedFiles(c, path)
	if err != nil {
		return false, err
	}
	return len(files) == 0, nil
}

// unquotePath strips the quoting git applies to paths with special
// characters. Escape sequences inside are left as git printed them.
func unquotePath(p string) string {
	if len(p) >= 2 && strings.HasPrefix(p, "\"") && strings.HasSuffix(p, "\"") {
		return p[1 : len(p)-1]
	}
	return p
}
