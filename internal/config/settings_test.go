package config

import (
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	SetDefaults()
	t.Cleanup(viper.Reset)
}

func TestForRepoDefaults(t *testing.T) {
	resetViper(t)
	repo := t.TempDir()

	s, err := ForRepo(repo)
	require.NoError(t, err)

	assert.Equal(t, "master", s.ReleaseBranch)
	assert.Equal(t, "", s.TagPrefix)
	assert.True(t, s.Annotate)
	assert.Equal(t, "file", s.VersionSource)
	assert.Equal(t, "VERSION", s.VersionFile)
	assert.Equal(t, "", s.TagHook)
	assert.True(t, s.JournalEnabled)
	assert.Equal(t, filepath.Join(repo, ".git", "relgate", "journal.db"), s.JournalPath)
}

func TestForRepoFileOverrides(t *testing.T) {
	resetViper(t)
	repo := t.TempDir()
	writeRepoConfig(t, repo, `
[release]
branch = "main"
tag_prefix = "v"
annotate = false

[version]
source = "file"
file = "pyproject.toml"
pattern = 'version = "([^"]+)"'

[hooks]
tag = "./scripts/tag-release.sh"

[journal]
enabled = false
path = ".relgate/journal.db"
`)

	s, err := ForRepo(repo)
	require.NoError(t, err)

	assert.Equal(t, "main", s.ReleaseBranch)
	assert.Equal(t, "v", s.TagPrefix)
	assert.False(t, s.Annotate)
	assert.Equal(t, "pyproject.toml", s.VersionFile)
	assert.Equal(t, `version = "([^"]+)"`, s.VersionPattern)
	assert.Equal(t, "./scripts/tag-release.sh", s.TagHook)
	assert.False(t, s.JournalEnabled)
	assert.Equal(t, filepath.Join(repo, ".relgate", "journal.db"), s.JournalPath)
}

func TestForRepoViperFallback(t *testing.T) {
	resetViper(t)
	viper.Set("release.branch", "develop")
	repo := t.TempDir()

	s, err := ForRepo(repo)
	require.NoError(t, err)

	assert.Equal(t, "develop", s.ReleaseBranch)
}

func TestForRepoInvalidFile(t *testing.T) {
	resetViper(t)
	repo := t.TempDir()
	writeRepoConfig(t, repo, "not toml [")

	_, err := ForRepo(repo)
	require.Error(t, err)
}

func TestTagName(t *testing.T) {
	tests := []struct {
		name    string
		prefix  string
		version string
		want    string
	}{
		{"literal match", "", "1.2.0", "1.2.0"},
		{"v prefix", "v", "1.2.0", "v1.2.0"},
		{"release prefix", "release-", "2.0.0", "release-2.0.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Settings{TagPrefix: tt.prefix}
			assert.Equal(t, tt.want, s.TagName(tt.version))
		})
	}
}
