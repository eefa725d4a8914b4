// Package report renders a run summary as a YAML document.
//
// The report records a run ID, the mode, per-document checksums, exclusion
// counts, warnings, and the checksum of every artifact written, so two runs
// over the same corpus can be compared without diffing their outputs.
package report

import (
	"fmt"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/renesugar/gircheck/internal/exclude"
	"github.com/renesugar/gircheck/internal/files/filesystem"
	"github.com/renesugar/gircheck/internal/services"
	"github.com/renesugar/gircheck/pkg/gircheck"
)

// Status values.
const (
	StatusOK      = "ok"
	StatusPartial = "partial" // some documents failed, the rest was written
	StatusFailed  = "failed"
)

type Report struct {
	RunID      string     `yaml:"run_id"`
	Mode       string     `yaml:"mode"`
	Status     string     `yaml:"status"`
	Error      string     `yaml:"error,omitempty"`
	StartedAt  time.Time  `yaml:"started_at"`
	DurationMS int64      `yaml:"duration_ms"`
	Output     string     `yaml:"output"`
	FileList   string     `yaml:"filelist,omitempty"`
	Totals     Totals     `yaml:"totals"`
	Exclusions Exclusions `yaml:"exclusions"`
	Documents  []Document `yaml:"documents,omitempty"`
	Skipped    []string   `yaml:"skipped_entries,omitempty"`
	Merge      *Merge     `yaml:"merge,omitempty"`
	Artifacts  []Artifact `yaml:"artifacts"`
}

type Totals struct {
	Documents    int `yaml:"documents"`
	Failed       int `yaml:"failed"`
	Rows         int `yaml:"rows"`
	Unregistered int `yaml:"unregistered"`
	Warnings     int `yaml:"warnings"`
}

// Exclusions maps a reason to a count.
type Exclusions struct {
	ListSizes map[string]int `yaml:"list_sizes,omitempty"`
	Removed   map[string]int `yaml:"removed,omitempty"`
}

type Document struct {
	Path               string   `yaml:"path"`
	Checksum           string   `yaml:"checksum,omitempty"`
	NormalizedChecksum string   `yaml:"normalized_checksum,omitempty"`
	Entities           int      `yaml:"entities"`
	Rows               int      `yaml:"rows,omitempty"`
	Excluded           int      `yaml:"excluded,omitempty"`
	Warnings           []string `yaml:"warnings,omitempty"`
	Error              string   `yaml:"error,omitempty"`
}

type Merge struct {
	Inputs       []MergeInput `yaml:"inputs"`
	ExcludedKeys []string     `yaml:"excluded_keys,omitempty"`
}

type MergeInput struct {
	Path string `yaml:"path"`
	Kind string `yaml:"kind"`
	Rows int    `yaml:"rows"`
}

type Artifact struct {
	Path     string `yaml:"path"`
	Size     int    `yaml:"size"`
	Checksum string `yaml:"checksum"`
}

// New builds a report from a summary and the error Run returned.
// A nil summary produces a report with only identity and status.
func New(runID uuid.UUID, mode gircheck.Mode, summary *services.Summary, runErr error) *Report {
	r := &Report{
		RunID:  runID.String(),
		Mode:   mode.String(),
		Status: status(runErr),
	}
	if runErr != nil {
		r.Error = runErr.Error()
	}
	if summary == nil {
		r.StartedAt = time.Now().UTC()
		return r
	}

	r.StartedAt = summary.Started.UTC()
	r.DurationMS = summary.Duration.Milliseconds()
	r.Output = summary.Output
	r.FileList = summary.FileList
	r.Skipped = summary.SkippedEntries
	r.Totals = Totals{
		Documents:    len(summary.Documents),
		Failed:       summary.Failed,
		Rows:         summary.Rows,
		Unregistered: summary.Unregistered,
		Warnings:     summary.Warnings,
	}
	r.Exclusions = Exclusions{
		ListSizes: reasonCounts(summary.RegistrySizes),
		Removed:   reasonCounts(summary.Excluded),
	}

	for _, d := range summary.Documents {
		doc := Document{
			Path:               d.Path,
			Checksum:           d.Checksum,
			NormalizedChecksum: d.NormalizedChecksum,
			Entities:           d.Entities,
			Rows:               d.Rows,
			Excluded:           d.Excluded.Total(),
		}
		if d.Err != nil {
			doc.Error = d.Err.Error()
		}
		for _, w := range d.Warnings {
			doc.Warnings = append(doc.Warnings, w.Error())
		}
		r.Documents = append(r.Documents, doc)
	}

	if mode == gircheck.ModeMerge {
		m := &Merge{ExcludedKeys: summary.MergeExcluded}
		for _, in := range summary.MergeInputs {
			m.Inputs = append(m.Inputs, MergeInput{Path: in.Path, Kind: string(in.Kind), Rows: in.Rows})
		}
		r.Merge = m
	}

	r.Artifacts = make([]Artifact, 0, len(summary.Artifacts))
	for _, a := range summary.Artifacts {
		r.Artifacts = append(r.Artifacts, Artifact{Path: a.Path, Size: a.Size, Checksum: a.Checksum})
	}
	sort.Slice(r.Artifacts, func(i, j int) bool { return r.Artifacts[i].Path < r.Artifacts[j].Path })

	return r
}

func status(err error) string {
	switch {
	case err == nil:
		return StatusOK
	case services.IsDocumentFailure(err):
		return StatusPartial
	default:
		return StatusFailed
	}
}

func reasonCounts(m map[exclude.Reason]int) map[string]int {
	if len(m) == 0 {
		return nil
	}
	out := make(map[string]int, len(m))
	for reason, n := range m {
		out[string(reason)] = n
	}
	return out
}

// Marshal encodes the report as YAML.
func (r *Report) Marshal() ([]byte, error) {
	return yaml.Marshal(r)
}

// Write encodes the report to path, creating its directory.
// Failures wrap gircheck.ErrOutputWrite.
func Write(fs filesystem.FileSystemProvider, path string, r *Report) error {
	data, err := r.Marshal()
	if err != nil {
		return fmt.Errorf("%w: encoding report: %v", gircheck.ErrOutputWrite, err)
	}
	if err := fs.MkdirAll(filepath.Dir(path)); err != nil {
		return fmt.Errorf("%w: %s: %v", gircheck.ErrOutputWrite, path, err)
	}
	if err := fs.WriteFile(path, data); err != nil {
		return fmt.Errorf("%w: %s: %v", gircheck.ErrOutputWrite, path, err)
	}
	return nil
}

// Read decodes a report previously written by Write.
func Read(fs filesystem.FileSystemProvider, path string) (*Report, error) {
	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", gircheck.ErrMissingInput, path, err)
	}
	var r Report
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", gircheck.ErrInvalidConfig, path, err)
	}
	return &r, nil
}
