package filesystem

import (
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
type FileInfo = fs.FileInfo

// FileSystemProvider is the file access surface used by the checker.
// Inputs are read through it and artifacts are written through it, so the
// whole pipeline can run against an in-memory tree in tests.
type FileSystemProvider interface {
	// ReadFile reads a specific file at the given path
	ReadFile(path string) ([]byte, error)

	// Stat returns file information for the given path
	Stat(path string) (FileInfo, error)

	// WriteFile creates or truncates the file at path
	WriteFile(path string, data []byte) error

	// MkdirAll creates a directory and any missing parents
	MkdirAll(path string) error
}
