package git

import (
	"fmt"
	"strings"
)

// BranchName represents a git branch name.
// Using a distinct type prevents mixing up branch names with other strings.
type BranchName string

// TagName represents a git tag name.
type TagName string

// RepoPath represents an absolute path to a git repository.
type RepoPath string

// GitError captures a failed git invocation with enough detail to
// diagnose it without re-running the command.
type GitError struct {
	Command  string
	Args     []string
	Stderr   string
	ExitCode int
}

func (e *GitError) Error() string {
	stderr := strings.TrimSpace(e.Stderr)
	if stderr != "" {
		return fmt.Sprintf("%s %s failed (exit %d): %s", e.Command, strings.Join(e.Args, " "), e.ExitCode, stderr)
	}
	return fmt.Sprintf("%s %s failed (exit %d)", e.Command, strings.Join(e.Args, " "), e.ExitCode)
}
