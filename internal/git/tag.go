package git

import (
	"fmt"
	"strings"

	"github.com/relgate/relgate/internal/errors"
)

// TagExists reports whether a tag with the given name exists.
// rev-parse --quiet --verify exits 1 for an absent ref; anything else
// (128 for a broken repository, for instance) is surfaced.
func TagExists(c Commander, path, tag string) (bool, error) {
	err := c.RunQuiet(path, "rev-parse", "--quiet", "--verify", "refs/tags/"+tag)
	if err == nil {
		return true, nil
	}

	var gitErr *GitError
	if errors.As(err, &gitErr) && gitErr.ExitCode == 1 {
		return false, nil
	}
	return false, errors.ErrTagLookup(tag, err)
}

// ListTags returns all tag names in the repository, most recent first.
func ListTags(c Commander, path string) ([]string, error) {
	out, err := c.Run(path, "tag", "--sort=-creatordate")
	if err != nil {
		return nil, errors.ErrGitOperation("tag", err)
	}

	var tags []string
	for _, line := range strings.Split(strings.TrimSpace(string(out)), "\n") {
		if line != "" {
			tags = append(tags, line)
		}
	}
	return tags, nil
}

// CreateTag creates a tag pointing at HEAD. With annotate, an annotated
// tag is created with the given message.
func CreateTag(c Commander, path, tag, message string, annotate bool) error {
	var args []string
	if annotate {
		args = []string{"tag", "-a", tag, "-m", message}
	} else {
		args = []string{"tag", tag}
	}

	if _, err := c.Run(path, args...); err != nil {
		return errors.ErrGitOperation("tag", err)
	}
	return nil
}

// HeadCommit returns the hash and subject of the commit HEAD points at.
func HeadCommit(c Commander, path string) (hash, subject string, err error) {
	out, err := c.Run(path, "log", "-1", "--format=%H%x09%s", "HEAD")
	if err != nil {
		return "", "", errors.ErrGitOperation("log", err)
	}

	parts := strings.SplitN(strings.TrimSpace(string(out)), "\t", 2)
	if len(parts) == 0 || parts[0] == "" {
		return "", "", errors.ErrGitOperation("log", fmt.Errorf("unexpected log output: %q", string(out)))
	}

	hash = parts[0]
	if len(parts) > 1 {
		subject = parts[1]
	}
	return hash, subject, nil
}
