package gircheck

import (
	"errors"
	"strings"
)

// Sentinel errors for the failure classes of a run.
// Callers distinguish them with errors.Is().
//
// Example usage:
//
//	err := pipeline.Run(ctx, cfg)
//	if errors.Is(err, gircheck.ErrDocumentsFailed) {
//	    // outputs were written, but at least one GIR file was skipped
//	}
var (
	// ErrUsage indicates bad or conflicting command-line flags.
	ErrUsage = errors.New("usage error")

	// ErrInvalidConfig indicates the configuration file or values are invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrMissingInput indicates a file list entry, exclusion list or merge table does not exist.
	ErrMissingInput = errors.New("missing input")

	// ErrMalformedTable indicates a merge input is not a readable info table.
	ErrMalformedTable = errors.New("malformed info table")

	// ErrMalformedDocument indicates a single GIR document failed to parse.
	// It is recorded per file and never aborts a run on its own.
	ErrMalformedDocument = errors.New("malformed document")

	// ErrDocumentsFailed indicates the run completed but at least one document was skipped.
	ErrDocumentsFailed = errors.New("one or more documents failed")

	// ErrOutputWrite indicates an artifact could not be written.
	ErrOutputWrite = errors.New("output write failed")

	// ErrOutputConflict indicates two inputs would produce the same artifact path.
	ErrOutputConflict = errors.New("output path conflict")
)

// ExitCodeForError returns the exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrUsage):
		return ExitUsageError
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrMissingInput):
		return ExitMissingInput
	case errors.Is(err, ErrMalformedTable):
		return ExitMalformedTable
	case errors.Is(err, ErrOutputWrite), errors.Is(err, ErrOutputConflict):
		return ExitOutputError
	case errors.Is(err, ErrDocumentsFailed):
		return ExitDocumentsFailed
	}

	// cobra reports flag misuse as plain errors
	errStr := err.Error()
	for _, pattern := range usagePatterns {
		if strings.Contains(errStr, pattern) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}

var usagePatterns = []string{
	"unknown flag",
	"unknown shorthand flag",
	"flag needs an argument",
	"invalid argument",
	"unknown command",
}
