// Package output writes run artifacts into the output directory.
//
// Passthrough writes one GIR file per input under the input's base name.
// Info modes write one table per mode. Merge writes one table named after
// the last merge input. Existing files with other names are left alone.
package output

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/renesugar/gircheck/internal/checksum"
	"github.com/renesugar/gircheck/internal/files/filesystem"
	"github.com/renesugar/gircheck/internal/gir"
	"github.com/renesugar/gircheck/internal/infotable"
	"github.com/renesugar/gircheck/internal/merge"
	"github.com/renesugar/gircheck/internal/retry"
	"github.com/renesugar/gircheck/pkg/gircheck"
)

// Artifact describes one written file.
type Artifact struct {
	Path     string
	Size     int
	Checksum string
}

// Writer writes artifacts through a filesystem provider. Transient write
// failures are retried.
type Writer struct {
	fs       filesystem.FileSystemProvider
	dir      string
	logger   gircheck.Logger
	checksum checksum.Calculator
	retrier  *retry.Executor
}

// NewWriter creates a writer for dir.
func NewWriter(fs filesystem.FileSystemProvider, dir string, logger gircheck.Logger) *Writer {
	w := &Writer{fs: fs, dir: dir, logger: logger, checksum: checksum.New()}
	return w.WithRetry(retry.NewWriteExecutor())
}

// WithRetry replaces the retry executor used for writes.
func (w *Writer) WithRetry(e *retry.Executor) *Writer {
	w.retrier = e.WithOnRetry(func(attempt int, err error, delay time.Duration) {
		w.logger.Warn("Retrying write in %v (attempt %d): %v", delay, attempt+1, err)
	})
	return w
}

// Dir returns the output directory.
func (w *Writer) Dir() string {
	return w.dir
}

// Prepare creates the output directory if it does not exist.
func (w *Writer) Prepare() error {
	if err := w.fs.MkdirAll(w.dir); err != nil {
		return fmt.Errorf("%w: cannot create output directory %s: %v", gircheck.ErrOutputWrite, w.dir, err)
	}
	return nil
}

// DocumentPath is where passthrough output for input is written.
func DocumentPath(dir, input string) string {
	return filepath.Join(dir, filepath.Base(input))
}

// MergedName is the merged table's file name: the last input's base name
// with "-merged" inserted before the extension.
func MergedName(lastInput string) string {
	base := filepath.Base(lastInput)
	ext := filepath.Ext(base)
	return strings.TrimSuffix(base, ext) + gircheck.MergedSuffix + ext
}

// CheckConflicts rejects a passthrough run in which two inputs share a base
// name or an artifact would overwrite one of the inputs.
func CheckConflicts(dir string, inputs []string) error {
	owners := make(map[string]string, len(inputs))
	sources := make(map[string]struct{}, len(inputs))
	for _, in := range inputs {
		sources[filepath.Clean(in)] = struct{}{}
	}

	for _, in := range inputs {
		target := DocumentPath(dir, in)
		if prev, ok := owners[target]; ok {
			return fmt.Errorf("%w: %s and %s both write %s", gircheck.ErrOutputConflict, prev, in, target)
		}
		owners[target] = in
		if _, ok := sources[target]; ok {
			return fmt.Errorf("%w: writing %s would overwrite an input document", gircheck.ErrOutputConflict, target)
		}
	}
	return nil
}

// WriteDocument serializes a filtered document under its input's base name.
func (w *Writer) WriteDocument(ctx context.Context, doc *gir.Document) (Artifact, error) {
	data, err := gir.Encode(doc)
	if err != nil {
		return Artifact{}, fmt.Errorf("%w: encoding %s: %v", gircheck.ErrOutputWrite, doc.Path, err)
	}
	return w.write(ctx, DocumentPath(w.dir, doc.Path), data)
}

// WriteTable writes an info table as <kind>.csv.
func (w *Writer) WriteTable(ctx context.Context, t *infotable.Table) (Artifact, error) {
	var buf bytes.Buffer
	if err := infotable.Write(&buf, t); err != nil {
		return Artifact{}, fmt.Errorf("%w: encoding %s table: %v", gircheck.ErrOutputWrite, t.Kind, err)
	}
	return w.write(ctx, filepath.Join(w.dir, t.Kind.FileName()), buf.Bytes())
}

// WriteMerged writes the merged table named after lastInput.
func (w *Writer) WriteMerged(ctx context.Context, res *merge.Result, lastInput string) (Artifact, error) {
	var buf bytes.Buffer
	if err := merge.Write(&buf, res); err != nil {
		return Artifact{}, fmt.Errorf("%w: encoding merged table: %v", gircheck.ErrOutputWrite, err)
	}
	return w.write(ctx, filepath.Join(w.dir, MergedName(lastInput)), buf.Bytes())
}

func (w *Writer) write(ctx context.Context, path string, data []byte) (Artifact, error) {
	err := w.retrier.Execute(ctx, func(context.Context) error {
		return w.fs.WriteFile(path, data)
	})
	if err != nil {
		return Artifact{}, fmt.Errorf("%w: %s: %v", gircheck.ErrOutputWrite, path, err)
	}
	w.logger.Verbose("Wrote %s (%d bytes)", path, len(data))
	return Artifact{
		Path:     path,
		Size:     len(data),
		Checksum: w.checksum.CalculateRaw(data),
	}, nil
}
