// Package files groups the file-related sub-packages:
//   - filesystem: filesystem abstraction with OS and in-memory implementations
//   - filelist: reading the newline-delimited list of GIR documents
//
// # Usage
//
//	import (
//	    "github.com/renesugar/gircheck/internal/files/filelist"
//	    "github.com/renesugar/gircheck/internal/files/filesystem"
//	)
//
//	fsys := filesystem.NewOSFileSystem()
//	list, err := filelist.NewLoader(fsys, workDir).Load("gir-files.txt")
package files
