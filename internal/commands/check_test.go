package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relgate/relgate/internal/testutils"
)

func TestCheckReportsWouldTag(t *testing.T) {
	repo := testutils.NewReleasableRepo(t, "1.2.0")
	setupCommandTest(t, repo)

	output, err := executeCommand(t, NewCheckCmd())

	require.NoError(t, err)
	assert.Contains(t, output, "would tag '1.2.0'")
	assert.False(t, tagExists(t, repo, "1.2.0"), "check must never create a tag")
}

func TestCheckAlreadyTagged(t *testing.T) {
	repo := testutils.NewReleasableRepo(t, "1.2.0")
	testutils.Tag(t, repo, "1.2.0")
	setupCommandTest(t, repo)

	output, err := executeCommand(t, NewCheckCmd())

	require.NoError(t, err)
	assert.Contains(t, output, "already tagged")
}

func TestCheckWrongBranch(t *testing.T) {
	repo := testutils.NewReleasableRepo(t, "1.2.0")
	testutils.Checkout(t, repo, "develop")
	setupCommandTest(t, repo)

	_, err := executeCommand(t, NewCheckCmd())

	require.Error(t, err)
	assert.Equal(t, "Checkout branch 'master' before generating release.", err.Error())
}

func TestCheckDirtyTree(t *testing.T) {
	repo := testutils.NewReleasableRepo(t, "1.2.0")
	testutils.WriteFile(t, repo, "VERSION", "changed\n")
	setupCommandTest(t, repo)

	_, err := executeCommand(t, NewCheckCmd())

	require.Error(t, err)
	assert.Equal(t, "VERSION", err.Error())
}

func TestCheckMissingVersionFile(t *testing.T) {
	repo, _ := testutils.NewTestRepoWithCommit(t)
	setupCommandTest(t, repo)

	_, err := executeCommand(t, NewCheckCmd())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to resolve current version")
}

func TestCheckOutsideRepository(t *testing.T) {
	dir := t.TempDir()
	setupCommandTest(t, dir)

	_, err := executeCommand(t, NewCheckCmd())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not inside a git repository")
}
