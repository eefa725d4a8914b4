package filesystem

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"
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

type memoryFile struct {
	content []byte
	info    *memoryFileInfo
}

// MemoryFileSystem implements FileSystemProvider for in-memory testing.
// It is safe for concurrent use.
type MemoryFileSystem struct {
	mu    sync.RWMutex
	files map[string]*memoryFile // map of absolute path -> file
	root  string                 // root directory path
}

// NewMemoryFileSystem creates a new in-memory filesystem.
// The root path is normalized to use forward slashes for virtual filesystem consistency.
func NewMemoryFileSystem(root string) *MemoryFileSystem {
	root = path.Clean(filepath.ToSlash(root))

	mfs := &MemoryFileSystem{
		files: make(map[string]*memoryFile),
		root:  root,
	}
	mfs.files[root] = newDirEntry(root)
	mfs.ensureDirectoriesExist(root)

	return mfs
}

func newDirEntry(absPath string) *memoryFile {
	return &memoryFile{
		info: &memoryFileInfo{
			name:    path.Base(absPath),
			mode:    dirPerm | fs.ModeDir,
			modTime: time.Now(),
			isDir:   true,
		},
	}
}

// Root returns the normalized root directory.
func (mfs *MemoryFileSystem) Root() string {
	return mfs.root
}

// AddFile adds a file to the in-memory filesystem
func (mfs *MemoryFileSystem) AddFile(path string, content string) {
	mfs.AddFileWithTime(path, content, time.Now())
}

// AddFileWithTime adds a file with a specific modification time
func (mfs *MemoryFileSystem) AddFileWithTime(filePath string, content string, modTime time.Time) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()
	mfs.put(mfs.resolve(filePath), []byte(content), modTime)
}

func (mfs *MemoryFileSystem) put(absPath string, data []byte, modTime time.Time) {
	mfs.files[absPath] = &memoryFile{
		content: data,
		info: &memoryFileInfo{
			name:    path.Base(absPath),
			size:    int64(len(data)),
			mode:    filePerm,
			modTime: modTime,
		},
	}
	mfs.ensureDirectoriesExist(absPath)
}

// resolve maps a caller path to its absolute virtual path
func (mfs *MemoryFileSystem) resolve(p string) string {
	p = filepath.ToSlash(p)
	if p == "" || p == "." {
		return mfs.root
	}
	if !path.IsAbs(p) {
		p = path.Join(mfs.root, p)
	}
	return path.Clean(p)
}

// ensureDirectoriesExist creates directory entries for all parent directories
func (mfs *MemoryFileSystem) ensureDirectoriesExist(filePath string) {
	dir := path.Dir(filePath)
	if dir == filePath {
		return
	}
	if _, exists := mfs.files[dir]; exists {
		return
	}
	mfs.files[dir] = newDirEntry(dir)
	mfs.ensureDirectoriesExist(dir)
}

// ReadFile implements FileSystemProvider.ReadFile
func (mfs *MemoryFileSystem) ReadFile(filePath string) ([]byte, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	file, exists := mfs.files[mfs.resolve(filePath)]
	if !exists {
		return nil, fmt.Errorf("file not found: %s: %w", filePath, fs.ErrNotExist)
	}
	if file.info.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", filePath)
	}

	out := make([]byte, len(file.content))
	copy(out, file.content)
	return out, nil
}

// Stat implements FileSystemProvider.Stat
func (mfs *MemoryFileSystem) Stat(statPath string) (FileInfo, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	file, exists := mfs.files[mfs.resolve(statPath)]
	if !exists {
		return nil, fmt.Errorf("path not found: %s: %w", statPath, fs.ErrNotExist)
	}
	return file.info, nil
}

// WriteFile implements FileSystemProvider.WriteFile.
// The parent directory must already exist.
func (mfs *MemoryFileSystem) WriteFile(filePath string, data []byte) error {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	absPath := mfs.resolve(filePath)
	parent, exists := mfs.files[path.Dir(absPath)]
	if !exists {
		return fmt.Errorf("parent directory not found: %s: %w", filePath, fs.ErrNotExist)
	}
	if !parent.info.IsDir() {
		return fmt.Errorf("parent is not a directory: %s", filePath)
	}
	if existing, ok := mfs.files[absPath]; ok && existing.info.IsDir() {
		return fmt.Errorf("path is a directory, not a file: %s", filePath)
	}

	buf := make([]byte, len(data))
	copy(buf, data)
	mfs.put(absPath, buf, time.Now())
	return nil
}

// MkdirAll implements FileSystemProvider.MkdirAll
func (mfs *MemoryFileSystem) MkdirAll(dirPath string) error {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	absPath := mfs.resolve(dirPath)
	for p := absPath; ; p = path.Dir(p) {
		if existing, ok := mfs.files[p]; ok && !existing.info.IsDir() {
			return fmt.Errorf("path is not a directory: %s", p)
		}
		if path.Dir(p) == p {
			break
		}
	}

	if _, exists := mfs.files[absPath]; !exists {
		mfs.files[absPath] = newDirEntry(absPath)
	}
	mfs.ensureDirectoriesExist(absPath)
	return nil
}

// FilesUnder returns the sorted absolute paths of all regular files under dir.
func (mfs *MemoryFileSystem) FilesUnder(dir string) []string {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	base := mfs.resolve(dir)
	prefix := base + "/"
	if base == "/" {
		prefix = "/"
	}

	var out []string
	for p, file := range mfs.files {
		if file.info.IsDir() {
			continue
		}
		if strings.HasPrefix(p, prefix) {
			out = append(out, p)
		}
	}
	sort.Strings(out)
	return out
}
