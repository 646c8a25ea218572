package filesystem

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryFileSystem_ReadFile(t *testing.T) {
	mfs := NewMemoryFileSystem("/test/project")

	expectedContent := "SELECT 1;"
	mfs.AddFile("root.sql", expectedContent)

	content, err := mfs.ReadFile("/test/project/root.sql")
	require.NoError(t, err)
	require.Equal(t, expectedContent, string(content))

	// Relative paths resolve against the root
	content, err = mfs.ReadFile("root.sql")
	require.NoError(t, err)
	require.Equal(t, expectedContent, string(content))
}

func TestMemoryFileSystem_ReadFileMissing(t *testing.T) {
	mfs := NewMemoryFileSystem("/test/project")

	_, err := mfs.ReadFile("config/dev.yml")
	require.Error(t, err)
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestMemoryFileSystem_ReadFileOnDirectory(t *testing.T) {
	mfs := NewMemoryFileSystem("/test/project")
	mfs.AddFile("scripts/dev/ddl/01.sql", "SELECT 1;")

	_, err := mfs.ReadFile("scripts/dev/ddl")
	require.Error(t, err)
	require.NotErrorIs(t, err, fs.ErrNotExist)
}

func TestMemoryFileSystem_Stat(t *testing.T) {
	mfs := NewMemoryFileSystem("/test/project")
	mfs.AddFile("root.sql", "SELECT 1;")

	info, err := mfs.Stat("/test/project/root.sql")
	require.NoError(t, err)
	require.False(t, info.IsDir())
	require.Equal(t, "root.sql", info.Name())
	require.Equal(t, int64(len("SELECT 1;")), info.Size())

	info, err = mfs.Stat("/test/project")
	require.NoError(t, err)
	require.True(t, info.IsDir())

	_, err = mfs.Stat("nope")
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestMemoryFileSystem_ParentDirectoriesCreated(t *testing.T) {
	mfs := NewMemoryFileSystem("/test/project")
	mfs.AddFile("scripts/dev/ddl/01_init.sql", "CREATE TABLE t (id INT);")

	for _, dir := range []string{"scripts", "scripts/dev", "scripts/dev/ddl"} {
		info, err := mfs.Stat(dir)
		require.NoError(t, err, dir)
		require.True(t, info.IsDir(), dir)
	}
}

func TestMemoryFileSystem_ReadDirListsDirectChildrenSorted(t *testing.T) {
	mfs := NewMemoryFileSystem("/test/project")
	mfs.AddFile("ddl/b.sql", "")
	mfs.AddFile("ddl/a.sql", "")
	mfs.AddFile("ddl/nested/c.sql", "")
	mfs.AddFile("other/d.sql", "")

	entries, err := mfs.ReadDir("ddl")
	require.NoError(t, err)

	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	require.Equal(t, []string{"a.sql", "b.sql", "nested"}, names)
	require.True(t, entries[2].IsDir())
}

func TestMemoryFileSystem_ReadDirEmptyAndMissing(t *testing.T) {
	mfs := NewMemoryFileSystem("/test/project")
	mfs.AddDir("scripts/dev/tasks")

	entries, err := mfs.ReadDir("scripts/dev/tasks")
	require.NoError(t, err)
	require.Empty(t, entries)

	_, err = mfs.ReadDir("scripts/prod")
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestMemoryFileSystem_WindowsStyleRoot(t *testing.T) {
	mfs := NewMemoryFileSystem(`C:\projects\warehouse`)
	mfs.AddFile(`config\dev.yml`, "database: DEV_DB")

	content, err := mfs.ReadFile("config/dev.yml")
	require.NoError(t, err)
	require.Equal(t, "database: DEV_DB", string(content))

	content, err = mfs.ReadFile(`C:\projects\warehouse\config\dev.yml`)
	require.NoError(t, err)
	require.Equal(t, "database: DEV_DB", string(content))

	entries, err := mfs.ReadDir("config")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "dev.yml", entries[0].Name())
}

func TestMemoryFileSystem_Paths(t *testing.T) {
	mfs := NewMemoryFileSystem("/p")
	mfs.AddFile("b.sql", "")
	mfs.AddFile("a/c.sql", "")

	require.Equal(t, []string{"/p/a/c.sql", "/p/b.sql"}, mfs.Paths())
}
