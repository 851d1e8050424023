package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "VERSION")
	require.NoError(t, os.WriteFile(file, []byte("1.2.0\n"), FileGit))

	assert.True(t, FileExists(file))
	assert.False(t, FileExists(dir), "directories are not files")
	assert.False(t, FileExists(filepath.Join(dir, "missing")))
}

func TestDirectoryExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "VERSION")
	require.NoError(t, os.WriteFile(file, []byte("1.2.0\n"), FileGit))

	assert.True(t, DirectoryExists(dir))
	assert.False(t, DirectoryExists(file))
	assert.False(t, DirectoryExists(filepath.Join(dir, "missing")))
}

func TestPathExists(t *testing.T) {
	dir := t.TempDir()

	assert.True(t, PathExists(dir))
	assert.False(t, PathExists(filepath.Join(dir, "missing")))
}

func TestCreateDirectory(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "relgate", "journal")

	require.NoError(t, CreateDirectory(nested, DirStrict))
	assert.True(t, DirectoryExists(nested))
}

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "state")

	require.NoError(t, WriteFileAtomic(path, []byte("first"), FileStrict))
	require.NoError(t, WriteFileAtomic(path, []byte("second"), FileStrict))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))

	// No temp files left behind.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
