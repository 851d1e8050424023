package git

import (
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/relgate/relgate/internal/errors"
)

// EnsureGitAvailable returns an error if the git binary is not on PATH.
func EnsureGitAvailable() error {
	if _, err := exec.LookPath("git"); err != nil {
		return errors.ErrGitNotFound(err)
	}
	return nil
}

// IsInsideGitRepo reports whether path is inside a git working tree.
func IsInsideGitRepo(c Commander, path string) bool {
	return c.RunQuiet(path, "rev-parse", "--is-inside-work-tree") == nil
}

// RepositoryRoot returns the absolute path of the working tree root for
// the repository containing path.
func RepositoryRoot(c Commander, path string) (string, error) {
	out, err := c.Run(path, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", errors.ErrRepoNotFound(path)
	}
	return strings.TrimSpace(string(out)), nil
}

// ProjectName derives a project name for diagnostics from the repository
// root directory name.
func ProjectName(root string) string {
	return filepath.Base(filepath.Clean(root))
}
