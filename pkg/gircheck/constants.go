package gircheck

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess         = 0  // Run completed and every document was processed
	ExitGeneralError    = 1  // Unknown or unclassified error
	ExitUsageError      = 2  // Bad or conflicting flags
	ExitPanic           = 3  // Internal panic (unexpected crash)
	ExitConfigError     = 10 // Invalid configuration file or values
	ExitMissingInput    = 11 // File list entry, exclusion list or merge table missing
	ExitDocumentsFailed = 12 // Run completed but some documents were skipped
	ExitOutputError     = 13 // Output directory or artifact not writable
	ExitMalformedTable  = 14 // Merge input is not a readable info table
)

const (
	// GIRExtension is the only file extension accepted from a file list.
	GIRExtension = ".gir"

	// CWDToken in a file list entry is replaced with the working directory.
	CWDToken = "$CWD"

	// CommentPrefix marks a comment line in file lists and exclusion lists.
	CommentPrefix = "#"

	// MergedSuffix is appended to the base name of the last merge input.
	MergedSuffix = "-merged"

	// TableExtension is the extension of single-mode info tables.
	TableExtension = ".csv"
)
