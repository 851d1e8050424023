package testutils

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// NewTestRepo creates a new temporary git repository for testing.
// The repository is initialized on branch "master" with a test user
// configured. Cleanup is handled automatically when the test finishes.
func NewTestRepo(t *testing.T) (repoPath string) {
	t.Helper()

	repoPath = t.TempDir()

	err := RunGit(repoPath, "init", "--initial-branch=master")
	require.NoError(t, err, "failed to initialize git repository")

	err = RunGit(repoPath, "config", "user.name", "Test User")
	require.NoError(t, err, "failed to configure git user name")

	err = RunGit(repoPath, "config", "user.email", "test@example.com")
	require.NoError(t, err, "failed to configure git user email")

	err = RunGit(repoPath, "config", "commit.gpgsign", "false")
	require.NoError(t, err, "failed to disable commit signing")

	return repoPath
}

// NewTestRepoWithCommit creates a new git repository with an initial commit.
// Returns the repository path and the hash of the initial commit.
func NewTestRepoWithCommit(t *testing.T) (repoPath, commitHash string) {
	t.Helper()

	repoPath = NewTestRepo(t)

	WriteFile(t, repoPath, "README.md", "# Test Repository\n")

	err := RunGit(repoPath, "add", "README.md")
	require.NoError(t, err, "failed to stage test file")

	err = RunGit(repoPath, "commit", "-m", "Initial commit")
	require.NoError(t, err, "failed to create initial commit")

	commitHash = GetCommitHash(t, repoPath, "HEAD")

	return repoPath, commitHash
}

// NewReleasableRepo creates a repository on branch "master" with a clean
// tree, a VERSION file containing version, and an initial commit.
func NewReleasableRepo(t *testing.T, version string) (repoPath string) {
	t.Helper()

	repoPath = NewTestRepo(t)

	WriteFile(t, repoPath, "VERSION", version+"\n")

	require.NoError(t, RunGit(repoPath, "add", "VERSION"))
	require.NoError(t, RunGit(repoPath, "commit", "-m", "Add version file"))

	return repoPath
}

// WriteFile writes a file inside the repository working tree.
func WriteFile(t *testing.T, repoPath, name, content string) {
	t.Helper()

	path := filepath.Join(repoPath, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// CommitAll stages and commits everything in the working tree.
func CommitAll(t *testing.T, repoPath, message string) {
	t.Helper()

	require.NoError(t, RunGit(repoPath, "add", "-A"))
	require.NoError(t, RunGit(repoPath, "commit", "-m", message))
}

// Checkout switches to a branch, creating it if needed.
func Checkout(t *testing.T, repoPath, branch string) {
	t.Helper()

	if err := RunGit(repoPath, "checkout", branch); err != nil {
		require.NoError(t, RunGit(repoPath, "checkout", "-b", branch))
	}
}

// Tag creates a lightweight tag in the repository.
func Tag(t *testing.T, repoPath, name string) {
	t.Helper()

	require.NoError(t, RunGit(repoPath, "tag", name))
}

// RunGit executes a git command in the specified directory.
// This is a simple helper for test repository setup.
func RunGit(workDir string, args ...string) error {
	cmd := exec.Command("git", args...)
	cmd.Dir = workDir

	// Suppress output for clean test runs
	cmd.Stdout = nil
	cmd.Stderr = nil

	return cmd.Run()
}

// GetCommitHash retrieves the commit hash for the specified ref.
func GetCommitHash(t *testing.T, repoPath, ref string) string {
	t.Helper()

	cmd := exec.Command("git", "rev-parse", ref)
	cmd.Dir = repoPath

	output, err := cmd.Output()
	require.NoError(t, err, "failed to get commit hash")

	return strings.TrimSpace(string(output))
}
