// Package filesystem provides the file access abstraction used by gircheck.
//
// Implementations:
//   - OSFileSystem: production implementation backed by the os package
//   - MemoryFileSystem: in-memory implementation for tests
//
// Paths handed to MemoryFileSystem are normalized to forward slashes and
// resolved against its root, so tests can use either absolute or relative
// names.
package filesystem
