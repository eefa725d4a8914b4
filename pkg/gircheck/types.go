package gircheck

import (
	"errors"
	"fmt"
)

// RunConfig contains all parameters for one invocation.
type RunConfig struct {
	// Mode selects what the run produces
	Mode Mode

	// OutputDir receives every artifact; created if absent
	OutputDir string

	// FileList is the newline-delimited list of GIR documents (extraction modes)
	FileList string

	// MergeInputs are the info tables to join (merge mode)
	MergeInputs []string

	// Optional exclusion lists, one name per line
	ExcludeRegistered string
	ExcludeGTypes     string
	ExcludeHeaders    string

	// Workers bounds concurrent document processing; 0 means one per CPU
	Workers int

	// WorkDir replaces $CWD in file list entries
	WorkDir string

	// Verbose enables detailed logging
	Verbose bool
}

// Validate checks that the configuration selects a runnable mode.
// Mode and flag problems wrap ErrUsage; bad values wrap ErrInvalidConfig.
func (c *RunConfig) Validate() error {
	var errs []error

	switch {
	case c.Mode == ModeNone:
		errs = append(errs, fmt.Errorf("no mode selected, use one of --passthrough, --typeinfo, --propertyinfo, --signalinfo, --mergeinfo: %w", ErrUsage))
	case c.Mode.IsExtraction():
		if c.FileList == "" {
			errs = append(errs, fmt.Errorf("--filelist is required in %s mode: %w", c.Mode, ErrUsage))
		}
	case c.Mode == ModeMerge:
		if len(c.MergeInputs) < 2 {
			errs = append(errs, fmt.Errorf("--mergeinfo needs at least two tables, got %d: %w", len(c.MergeInputs), ErrUsage))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown mode %s: %w", c.Mode, ErrUsage))
	}

	if c.OutputDir == "" {
		errs = append(errs, fmt.Errorf("--output is required: %w", ErrUsage))
	}

	if c.Workers < 0 {
		errs = append(errs, fmt.Errorf("workers cannot be negative: %w", ErrInvalidConfig))
	}

	return errors.Join(errs...)
}
