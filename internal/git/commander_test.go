package git

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relgate/relgate/internal/testutils"
)

func TestLiveGitCommanderRun(t *testing.T) {
	repo, _ := testutils.NewTestRepoWithCommit(t)
	commander := NewLiveGitCommander()

	t.Run("successful command returns stdout", func(t *testing.T) {
		out, err := commander.Run(repo, "rev-parse", "--abbrev-ref", "HEAD")
		require.NoError(t, err)
		assert.Equal(t, "master", strings.TrimSpace(string(out)))
	})

	t.Run("failed command returns GitError", func(t *testing.T) {
		_, err := commander.Run(repo, "rev-parse", "--verify", "refs/heads/does-not-exist")
		require.Error(t, err)

		var gitErr *GitError
		require.ErrorAs(t, err, &gitErr)
		assert.NotZero(t, gitErr.ExitCode)
		assert.Equal(t, "git", gitErr.Command)
	})
}

func TestLiveGitCommanderRunQuiet(t *testing.T) {
	repo, _ := testutils.NewTestRepoWithCommit(t)
	commander := NewLiveGitCommander()

	require.NoError(t, commander.RunQuiet(repo, "rev-parse", "HEAD"))

	err := commander.RunQuiet(repo, "rev-parse", "--quiet", "--verify", "refs/tags/absent")
	require.Error(t, err)

	var gitErr *GitError
	require.ErrorAs(t, err, &gitErr)
	assert.Equal(t, 1, gitErr.ExitCode)
}

func TestDefaultClientAgainstRealRepo(t *testing.T) {
	repo, hash := testutils.NewTestRepoWithCommit(t)
	client := NewClient()

	t.Run("repository inspection", func(t *testing.T) {
		assert.True(t, client.IsInsideGitRepo(repo))

		root, err := client.RepositoryRoot(repo)
		require.NoError(t, err)
		assert.Equal(t, repo, root)

		branch, err := client.CurrentBranch(repo)
		require.NoError(t, err)
		assert.Equal(t, "master", branch)
	})

	t.Run("clean then dirty", func(t *testing.T) {
		clean, err := client.IsClean(repo)
		require.NoError(t, err)
		assert.True(t, clean)

		testutils.WriteFile(t, repo, "README.md", "changed\n")

		files, err := client.ModifiedFiles(repo)
		require.NoError(t, err)
		assert.Equal(t, []string{"README.md"}, files)

		testutils.CommitAll(t, repo, "Reset to clean")
	})

	t.Run("tags", func(t *testing.T) {
		exists, err := client.TagExists(repo, "1.0.0")
		require.NoError(t, err)
		assert.False(t, exists)

		require.NoError(t, client.CreateTag(repo, "1.0.0", "Release 1.0.0", true))

		exists, err = client.TagExists(repo, "1.0.0")
		require.NoError(t, err)
		assert.True(t, exists)

		tags, err := client.ListTags(repo)
		require.NoError(t, err)
		assert.Contains(t, tags, "1.0.0")
	})

	t.Run("head commit", func(t *testing.T) {
		gotHash, subject, err := client.HeadCommit(repo)
		require.NoError(t, err)
		assert.NotEmpty(t, subject)
		assert.NotEqual(t, hash, "", "fixture hash should be set")
		assert.Len(t, gotHash, 40)
	})
}

func TestIsInsideGitRepoOutsideRepo(t *testing.T) {
	assert.False(t, IsInsideGitRepo(DefaultCommander, t.TempDir()))
}
