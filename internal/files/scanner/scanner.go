package scanner

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"sort"

	"github.com/vvka-141/dwgate/internal/checksum"
	"github.com/vvka-141/dwgate/internal/files/filesystem"
	"github.com/vvka-141/dwgate/pkg/dwgate"
)

// Scanner discovers and reads SQL artifacts.
// Scanner is safe for concurrent use by multiple goroutines as long as
// the provided calculator and fsProvider are also thread-safe.
type Scanner struct {
	calculator checksum.Calculator
	fsProvider filesystem.FileSystemProvider
}

// NewScanner creates a new artifact scanner with the given checksum calculator.
// Uses OS filesystem by default.
// Panics if calculator is nil.
func NewScanner(calculator checksum.Calculator) *Scanner {
	if calculator == nil {
		panic("calculator cannot be nil")
	}
	return &Scanner{
		calculator: calculator,
		fsProvider: filesystem.NewOSFileSystem(),
	}
}

// NewScannerWithFS creates a new artifact scanner with a custom filesystem provider.
// This is primarily useful for testing with in-memory filesystems.
// Panics if calculator or fsProvider is nil.
func NewScannerWithFS(calculator checksum.Calculator, fsProvider filesystem.FileSystemProvider) *Scanner {
	if calculator == nil {
		panic("calculator cannot be nil")
	}
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	return &Scanner{
		calculator: calculator,
		fsProvider: fsProvider,
	}
}

// ScanEnvironment returns the artifacts under <projectPath>/scripts/<environment>/
// in deployment order.
func (s *Scanner) ScanEnvironment(projectPath, environment string) ([]dwgate.SQLArtifact, error) {
	var artifacts []dwgate.SQLArtifact

	for _, folder := range dwgate.DeploymentFolders {
		found, err := s.scanFolder(projectPath, environment, folder)
		if err != nil {
			return nil, err
		}
		artifacts = append(artifacts, found...)
	}

	return artifacts, nil
}

func (s *Scanner) scanFolder(projectPath, environment, folder string) ([]dwgate.SQLArtifact, error) {
	dir := folderPath(projectPath, environment, folder)

	info, err := s.fsProvider.Stat(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to access %s: %w", dir, err)
	}
	// A regular file in place of a folder contributes nothing, like a missing one.
	if !info.IsDir() {
		return nil, nil
	}

	entries, err := s.fsProvider.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !isSQLFile(entry.Name()) {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	artifacts := make([]dwgate.SQLArtifact, 0, len(names))
	for _, name := range names {
		artifact, err := s.readArtifact(dir, environment, folder, name)
		if err != nil {
			return nil, err
		}
		artifacts = append(artifacts, artifact)
	}

	return artifacts, nil
}

func (s *Scanner) readArtifact(dir, environment, folder, name string) (dwgate.SQLArtifact, error) {
	filePath := filepath.Join(dir, name)
	relativePath := path.Join(dwgate.ScriptsDir, environment, folder, name)

	content, err := s.fsProvider.ReadFile(filePath)
	if err != nil {
		return dwgate.SQLArtifact{}, fmt.Errorf("failed to read %s: %w", relativePath, err)
	}

	return dwgate.SQLArtifact{
		Folder:       folder,
		Path:         filepath.ToSlash(filePath),
		RelativePath: relativePath,
		Content:      string(content),
		Checksum:     s.calculator.Calculate(content),
	}, nil
}

func folderPath(projectPath, environment, folder string) string {
	return filepath.Join(projectPath, dwgate.ScriptsDir, environment, folder)
}

// isSQLFile matches the lowercase .sql extension only.
func isSQLFile(name string) bool {
	return filepath.Ext(name) == dwgate.ArtifactExt
}

// Verify Scanner implements the interface at compile time
var _ dwgate.ArtifactScanner = (*Scanner)(nil)
