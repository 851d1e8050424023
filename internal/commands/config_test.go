package commands

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relgate/relgate/internal/config"
	"github.com/relgate/relgate/internal/testutils"
)

func TestConfigListDefaults(t *testing.T) {
	repo := testutils.NewReleasableRepo(t, "1.2.0")
	setupCommandTest(t, repo)

	output, err := executeCommand(t, NewConfigCmd(), "list")

	require.NoError(t, err)
	assert.Contains(t, output, `release.branch = "master"`)
	assert.Contains(t, output, `version.file = "VERSION"`)
	assert.Contains(t, output, "journal.enabled = true")
}

func TestConfigListJSON(t *testing.T) {
	repo := testutils.NewReleasableRepo(t, "1.2.0")
	setupCommandTest(t, repo)

	output, err := executeCommand(t, NewConfigCmd(), "list", "--json")
	require.NoError(t, err)

	var report configReport
	require.NoError(t, json.Unmarshal([]byte(output), &report))

	assert.Equal(t, "master", report.Release.Branch)
	assert.Equal(t, "file", report.Version.Source)
	assert.True(t, report.Journal.Enabled)
	assert.Equal(t, filepath.Join(repo, ".git", "relgate", "journal.db"), report.Journal.Path)
}

func TestConfigListReflectsRepoFile(t *testing.T) {
	repo := testutils.NewReleasableRepo(t, "1.2.0")
	testutils.WriteFile(t, repo, config.FileName, "[release]\nbranch = \"main\"\ntag_prefix = \"v\"\n")
	testutils.CommitAll(t, repo, "Add relgate config")
	setupCommandTest(t, repo)

	output, err := executeCommand(t, NewConfigCmd(), "list")

	require.NoError(t, err)
	assert.Contains(t, output, `release.branch = "main"`)
	assert.Contains(t, output, `release.tag_prefix = "v"`)
}

func TestConfigPath(t *testing.T) {
	repo := testutils.NewReleasableRepo(t, "1.2.0")
	setupCommandTest(t, repo)

	output, err := executeCommand(t, NewConfigCmd(), "path")

	require.NoError(t, err)
	assert.Contains(t, output, filepath.Join(repo, config.FileName))
	assert.Contains(t, output, "not created")
}

func TestConfigInit(t *testing.T) {
	repo := testutils.NewReleasableRepo(t, "1.2.0")
	setupCommandTest(t, repo)

	output, err := executeCommand(t, NewConfigCmd(), "init")

	require.NoError(t, err)
	assert.Contains(t, output, "Created")
	assert.True(t, config.FileConfigExists(repo))

	// The starter file must be valid config.
	_, err = config.ForRepo(repo)
	require.NoError(t, err)
}

func TestConfigInitRefusesOverwrite(t *testing.T) {
	repo := testutils.NewReleasableRepo(t, "1.2.0")
	testutils.WriteFile(t, repo, config.FileName, "[release]\nbranch = \"main\"\n")
	setupCommandTest(t, repo)

	_, err := executeCommand(t, NewConfigCmd(), "init")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}
