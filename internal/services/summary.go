package services

import (
	"time"

	"github.com/renesugar/gircheck/internal/exclude"
	"github.com/renesugar/gircheck/internal/gir"
	"github.com/renesugar/gircheck/internal/infotable"
	"github.com/renesugar/gircheck/internal/output"
	"github.com/renesugar/gircheck/pkg/gircheck"
)

// DocumentResult is the outcome of one file list entry.
type DocumentResult struct {
	Path               string
	Checksum           string
	NormalizedChecksum string
	Err                error // parse or read failure; the document was skipped
	Entities           int   // entities left after filtering
	Excluded           exclude.Stats
	Unregistered       int // entities skipped by info modes for lacking a GType
	Rows               int
	Warnings           []*gir.UnresolvedReference
	Artifact           *output.Artifact // passthrough output

	document *gir.Document
	table    *infotable.Table
}

// MergeInput describes one table read in merge mode.
type MergeInput struct {
	Path string
	Kind infotable.Kind
	Rows int
}

// Summary is the reduced result of a run.
type Summary struct {
	Mode           gircheck.Mode
	Output         string
	FileList       string
	Started        time.Time
	Duration       time.Duration
	Documents      []*DocumentResult
	SkippedEntries []string
	RegistrySizes  map[exclude.Reason]int
	Excluded       exclude.Stats
	Unregistered   int
	Warnings       int
	Failed         int
	Rows           int
	Artifacts      []output.Artifact
	MergeInputs    []MergeInput
	MergeExcluded  []string
}

// Succeeded returns the number of documents processed without error.
func (s *Summary) Succeeded() int {
	return len(s.Documents) - s.Failed
}
