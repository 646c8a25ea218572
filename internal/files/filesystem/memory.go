package filesystem

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"
)

// memoryFileInfo implements fs.FileInfo for in-memory files
type memoryFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
	isDir   bool
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) Mode() fs.FileMode  { return f.mode }
func (f *memoryFileInfo) ModTime() time.Time { return f.modTime }
func (f *memoryFileInfo) IsDir() bool        { return f.isDir }
func (f *memoryFileInfo) Sys() interface{}   { return nil }

type memoryEntry struct {
	content []byte
	info    *memoryFileInfo
}

// MemoryFileSystem implements FileSystemProvider for in-memory testing.
// Relative paths resolve against the root given to NewMemoryFileSystem.
type MemoryFileSystem struct {
	entries map[string]*memoryEntry // absolute slash path -> entry
	root    string
}

// NewMemoryFileSystem creates a new in-memory filesystem.
// The root path is normalized to use forward slashes for virtual filesystem consistency.
func NewMemoryFileSystem(root string) *MemoryFileSystem {
	root = path.Clean(toSlash(root))

	mfs := &MemoryFileSystem{
		entries: make(map[string]*memoryEntry),
		root:    root,
	}
	mfs.addDir(root)
	return mfs
}

// AddFile adds a file to the in-memory filesystem
func (mfs *MemoryFileSystem) AddFile(filePath string, content string) {
	abs := mfs.resolve(filePath)
	mfs.entries[abs] = &memoryEntry{
		content: []byte(content),
		info: &memoryFileInfo{
			name:    path.Base(abs),
			size:    int64(len(content)),
			mode:    0644,
			modTime: time.Now(),
		},
	}
	mfs.ensureDirectoriesExist(abs)
}

// AddDir adds an empty directory to the in-memory filesystem
func (mfs *MemoryFileSystem) AddDir(dirPath string) {
	abs := mfs.resolve(dirPath)
	mfs.addDir(abs)
	mfs.ensureDirectoriesExist(abs)
}

func (mfs *MemoryFileSystem) addDir(abs string) {
	if _, exists := mfs.entries[abs]; exists {
		return
	}
	mfs.entries[abs] = &memoryEntry{
		info: &memoryFileInfo{
			name:    path.Base(abs),
			mode:    0755 | fs.ModeDir,
			modTime: time.Now(),
			isDir:   true,
		},
	}
}

// ensureDirectoriesExist creates directory entries for all parent directories
func (mfs *MemoryFileSystem) ensureDirectoriesExist(p string) {
	dir := path.Dir(p)
	if dir == p {
		return
	}
	if _, exists := mfs.entries[dir]; exists {
		return
	}
	mfs.addDir(dir)
	mfs.ensureDirectoriesExist(dir)
}

// resolve turns p into an absolute, clean, forward-slash path.
func (mfs *MemoryFileSystem) resolve(p string) string {
	p = toSlash(p)
	if p == "" || p == "." {
		return mfs.root
	}
	if !isAbs(p) {
		p = path.Join(mfs.root, p)
	}
	return path.Clean(p)
}

// toSlash converts both separator styles to '/' regardless of the host OS.
func toSlash(p string) string {
	return strings.ReplaceAll(p, `\`, "/")
}

// isAbs also accepts drive-letter paths such as C:/projects.
func isAbs(p string) bool {
	if path.IsAbs(p) {
		return true
	}
	return len(p) >= 3 && p[1] == ':' && p[2] == '/'
}

// ReadFile implements FileSystemProvider.ReadFile
func (mfs *MemoryFileSystem) ReadFile(filePath string) ([]byte, error) {
	entry, exists := mfs.entries[mfs.resolve(filePath)]
	if !exists {
		return nil, &fs.PathError{Op: "open", Path: filePath, Err: fs.ErrNotExist}
	}
	if entry.info.isDir {
		return nil, fmt.Errorf("path is a directory, not a file: %s", filePath)
	}
	return entry.content, nil
}

// ReadDir implements FileSystemProvider.ReadDir
func (mfs *MemoryFileSystem) ReadDir(dirPath string) ([]FileInfo, error) {
	abs := mfs.resolve(dirPath)
	entry, exists := mfs.entries[abs]
	if !exists {
		return nil, fmt.Errorf("failed to read directory: %w", &fs.PathError{Op: "open", Path: dirPath, Err: fs.ErrNotExist})
	}
	if !entry.info.isDir {
		return nil, fmt.Errorf("path is not a directory: %s", dirPath)
	}

	var result []FileInfo
	for p, e := range mfs.entries {
		if p != abs && path.Dir(p) == abs {
			result = append(result, e.info)
		}
	}

	// os.ReadDir returns entries sorted by filename; mirror that
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name() < result[j].Name()
	})
	return result, nil
}

// Stat implements FileSystemProvider.Stat
func (mfs *MemoryFileSystem) Stat(statPath string) (FileInfo, error) {
	entry, exists := mfs.entries[mfs.resolve(statPath)]
	if !exists {
		return nil, &fs.PathError{Op: "stat", Path: statPath, Err: fs.ErrNotExist}
	}
	return entry.info, nil
}

// Paths returns every file path (not directories) in sorted order.
func (mfs *MemoryFileSystem) Paths() []string {
	var paths []string
	for p, e := range mfs.entries {
		if !e.info.isDir {
			paths = append(paths, p)
		}
	}
	sort.Strings(paths)
	return paths
}

var _ FileSystemProvider = (*MemoryFileSystem)(nil)
