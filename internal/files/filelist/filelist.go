package filelist

import (
	"bufio"
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/renesugar/gircheck/internal/files/filesystem"
	"github.com/renesugar/gircheck/pkg/gircheck"
)

// List is the ordered, deduplicated set of documents to process.
type List struct {
	Source     string   // path of the list file
	Paths      []string // accepted entries in processing order
	Skipped    []string // entries without the .gir extension
	Duplicates int      // entries dropped because they were already listed
}

// Len returns the number of documents to process.
func (l *List) Len() int {
	return len(l.Paths)
}

// Loader reads file lists through a filesystem provider.
type Loader struct {
	fs  filesystem.FileSystemProvider
	cwd string
}

// NewLoader creates a loader. cwd replaces the $CWD token in entries.
func NewLoader(fs filesystem.FileSystemProvider, cwd string) *Loader {
	return &Loader{fs: fs, cwd: cwd}
}

// Load reads the file list at path and validates every entry.
// A missing list or a missing entry fails the whole load with
// gircheck.ErrMissingInput.
func (l *Loader) Load(path string) (*List, error) {
	entries, err := ReadEntries(l.fs, path)
	if err != nil {
		return nil, err
	}

	list := &List{Source: path}
	seen := make(map[string]struct{}, len(entries))

	for _, entry := range entries {
		if !strings.HasSuffix(entry.Value, gircheck.GIRExtension) {
			list.Skipped = append(list.Skipped, entry.Value)
			continue
		}

		name := filepath.Clean(strings.ReplaceAll(entry.Value, gircheck.CWDToken, l.cwd))
		if _, dup := seen[name]; dup {
			list.Duplicates++
			continue
		}
		seen[name] = struct{}{}

		info, err := l.fs.Stat(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %s line %d: %s: no such file", gircheck.ErrMissingInput, path, entry.Line, name)
		}
		if !info.Mode().IsRegular() {
			return nil, fmt.Errorf("%w: %s line %d: %s is not a regular file", gircheck.ErrMissingInput, path, entry.Line, name)
		}

		list.Paths = append(list.Paths, name)
	}

	return list, nil
}

// Entry is one significant line of a list file.
type Entry struct {
	Value string
	Line  int
}

// ReadEntries returns the trimmed lines of a list file, skipping blank lines
// and comments. A missing file is gircheck.ErrMissingInput.
func ReadEntries(fs filesystem.FileSystemProvider, path string) ([]Entry, error) {
	content, err := fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", gircheck.ErrMissingInput, path, err)
	}

	var entries []Entry
	scanner := bufio.NewScanner(bytes.NewReader(content))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, gircheck.CommentPrefix) {
			continue
		}
		entries = append(entries, Entry{Value: line, Line: lineNo})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return entries, nil
}

// ReadSet returns the entries of a list file as a set.
func ReadSet(fs filesystem.FileSystemProvider, path string) (map[string]struct{}, error) {
	entries, err := ReadEntries(fs, path)
	if err != nil {
		return nil, err
	}
	set := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		set[e.Value] = struct{}{}
	}
	return set, nil
}
