package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/dwgate/internal/checksum"
	"github.com/vvka-141/dwgate/internal/files/filesystem"
)

func newTestScanner() (*Scanner, *filesystem.MemoryFileSystem) {
	fs := filesystem.NewMemoryFileSystem("/project")
	return NewScannerWithFS(checksum.New(), fs), fs
}

func relativePaths(t *testing.T, s *Scanner, env string) []string {
	t.Helper()
	artifacts, err := s.ScanEnvironment("/project", env)
	require.NoError(t, err)
	paths := make([]string, len(artifacts))
	for i, a := range artifacts {
		paths[i] = a.RelativePath
	}
	return paths
}

func TestNewScanner_NilCalculator(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic for nil calculator")
		}
	}()
	NewScanner(nil)
}

func TestNewScannerWithFS_NilArgs(t *testing.T) {
	calc := checksum.New()
	fs := filesystem.NewMemoryFileSystem("/")

	tests := []struct {
		name string
		fn   func()
	}{
		{"nil calculator", func() { NewScannerWithFS(nil, fs) }},
		{"nil filesystem", func() { NewScannerWithFS(calc, nil) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if r := recover(); r == nil {
					t.Error("Expected panic")
				}
			}()
			tt.fn()
		})
	}
}

func TestScanEnvironment_FolderOrder(t *testing.T) {
	s, fs := newTestScanner()
	// Added in reverse so map iteration or insertion order cannot help
	fs.AddFile("scripts/dev/rbac/01_grants.sql", "GRANT USAGE ON DATABASE d TO ROLE r;")
	fs.AddFile("scripts/dev/tasks/01_refresh.sql", "CREATE TASK t AS SELECT 1;")
	fs.AddFile("scripts/dev/stored_procedures/01_proc.sql", "CREATE PROCEDURE p() AS 'x';")
	fs.AddFile("scripts/dev/ddl/01_tables.sql", "CREATE TABLE a (id INT);")

	assert.Equal(t, []string{
		"scripts/dev/ddl/01_tables.sql",
		"scripts/dev/stored_procedures/01_proc.sql",
		"scripts/dev/tasks/01_refresh.sql",
		"scripts/dev/rbac/01_grants.sql",
	}, relativePaths(t, s, "dev"))
}

func TestScanEnvironment_LexicalOrderWithinFolder(t *testing.T) {
	s, fs := newTestScanner()
	fs.AddFile("scripts/dev/ddl/02_grants.sql", "SELECT 2;")
	fs.AddFile("scripts/dev/ddl/10_late.sql", "SELECT 10;")
	fs.AddFile("scripts/dev/ddl/01_init.sql", "SELECT 1;")

	assert.Equal(t, []string{
		"scripts/dev/ddl/01_init.sql",
		"scripts/dev/ddl/02_grants.sql",
		"scripts/dev/ddl/10_late.sql",
	}, relativePaths(t, s, "dev"))
}

func TestScanEnvironment_FiltersNonSQLAndSubdirectories(t *testing.T) {
	s, fs := newTestScanner()
	fs.AddFile("scripts/dev/ddl/01_init.sql", "SELECT 1;")
	fs.AddFile("scripts/dev/ddl/02_upper.SQL", "SELECT 2;")
	fs.AddFile("scripts/dev/ddl/03_mixed.Sql", "SELECT 3;")
	fs.AddFile("scripts/dev/ddl/04_load.sql", "SELECT 4;")
	fs.AddFile("scripts/dev/ddl/README.md", "docs")
	fs.AddFile("scripts/dev/ddl/archive/00_old.sql", "SELECT 0;")
	fs.AddFile("scripts/dev/other/ignored.sql", "SELECT 3;")

	assert.Equal(t, []string{
		"scripts/dev/ddl/01_init.sql",
		"scripts/dev/ddl/04_load.sql",
	}, relativePaths(t, s, "dev"))
}

func TestScanEnvironment_OnlySelectedEnvironment(t *testing.T) {
	s, fs := newTestScanner()
	fs.AddFile("scripts/dev/ddl/01.sql", "SELECT 1;")
	fs.AddFile("scripts/prod/ddl/01.sql", "SELECT 1;")

	assert.Equal(t, []string{"scripts/prod/ddl/01.sql"}, relativePaths(t, s, "prod"))
}

func TestScanEnvironment_NoScripts(t *testing.T) {
	s, _ := newTestScanner()

	artifacts, err := s.ScanEnvironment("/project", "dev")
	require.NoError(t, err)
	assert.Empty(t, artifacts)
}

func TestScanEnvironment_ArtifactFields(t *testing.T) {
	s, fs := newTestScanner()
	content := "CREATE TABLE {DATABASE_NAME}.PUBLIC.A (ID INT);"
	fs.AddFile("scripts/dev/ddl/01_init.sql", content)

	artifacts, err := s.ScanEnvironment("/project", "dev")
	require.NoError(t, err)
	require.Len(t, artifacts, 1)

	a := artifacts[0]
	assert.Equal(t, "ddl", a.Folder)
	assert.Equal(t, "/project/scripts/dev/ddl/01_init.sql", a.Path)
	assert.Equal(t, content, a.Content, "content must be returned unsubstituted")
	assert.Equal(t, checksum.New().Calculate([]byte(content)), a.Checksum)
}

func TestScanEnvironment_FolderIsFile(t *testing.T) {
	s, fs := newTestScanner()
	fs.AddFile("scripts/dev/ddl", "not a directory")
	fs.AddFile("scripts/dev/tasks/01_task.sql", "SELECT 1;")

	assert.Equal(t, []string{"scripts/dev/tasks/01_task.sql"}, relativePaths(t, s, "dev"))
}
