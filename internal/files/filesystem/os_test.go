package filesystem

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOSFileSystem_ReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dev.yml")
	require.NoError(t, os.WriteFile(path, []byte("database: DEV_DB\n"), 0644))

	provider := NewOSFileSystem()
	content, err := provider.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "database: DEV_DB\n", string(content))
}

func TestOSFileSystem_MissingPathsMatchErrNotExist(t *testing.T) {
	provider := NewOSFileSystem()
	missing := filepath.Join(t.TempDir(), "missing")

	_, err := provider.ReadFile(missing)
	require.ErrorIs(t, err, fs.ErrNotExist)

	_, err = provider.Stat(missing)
	require.ErrorIs(t, err, fs.ErrNotExist)

	_, err = provider.ReadDir(missing)
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestOSFileSystem_ReadDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "02_b.sql"), []byte("SELECT 2;"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "01_a.sql"), []byte("SELECT 1;"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0755))

	provider := NewOSFileSystem()
	entries, err := provider.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	require.Equal(t, "01_a.sql", entries[0].Name())
	require.Equal(t, "02_b.sql", entries[1].Name())
	require.True(t, entries[2].IsDir())
}

func TestOSFileSystem_Stat(t *testing.T) {
	dir := t.TempDir()

	provider := NewOSFileSystem()
	info, err := provider.Stat(dir)
	require.NoError(t, err)
	require.True(t, info.IsDir())
}
