package git

import (
	"strings"

	"github.com/relgate/relgate/internal/errors"
)

// CurrentBranch returns the name of the branch HEAD points at.
// A detached HEAD reports as "HEAD"; callers that care should check
// IsDetachedHead.
func CurrentBranch(c Commander, path string) (string, error) {
	out, err := c.Run(path, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", errors.Wrap(err, "failed to get current branch")
	}
	return strings.TrimSpace(string(out)), nil
}

// IsDetachedHead reports whether HEAD points at a commit rather than a branch.
func IsDetachedHead(c Commander, path string) (bool, error) {
	branch, err := CurrentBranch(c, path)
	if err != nil {
		return false, err
	}
	return branch == "HEAD", nil
}
