package fileutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileAndDirectoryExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "a.csv")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0600))

	assert.True(t, FileExists(file))
	assert.False(t, FileExists(dir))
	assert.False(t, FileExists(filepath.Join(dir, "missing")))

	assert.True(t, DirectoryExists(dir))
	assert.False(t, DirectoryExists(file))
}

func TestEnsureDirectoryExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deep")
	require.NoError(t, EnsureDirectoryExists(path))
	assert.True(t, DirectoryExists(path))

	// Idempotent on an existing directory.
	require.NoError(t, EnsureDirectoryExists(path))
}

func TestListCSVFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.csv", "a.CSV", "notes.txt", "c.csv"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0600))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.csv"), 0750))

	files := ListCSVFiles(dir)
	require.Len(t, files, 3)
	assert.Equal(t, filepath.Join(dir, "a.CSV"), files[0])
	assert.Equal(t, filepath.Join(dir, "b.csv"), files[1])
	assert.Equal(t, filepath.Join(dir, "c.csv"), files[2])
}

func TestListCSVFilesMissingFolder(t *testing.T) {
	assert.Empty(t, ListCSVFiles(filepath.Join(t.TempDir(), "absent")))
}
