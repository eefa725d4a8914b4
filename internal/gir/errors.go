package gir

import (
	"encoding/xml"
	"errors"
	"fmt"

	"github.com/renesugar/gircheck/pkg/gircheck"
)

// DocumentError reports why a GIR document could not be parsed.
// It carries the file path and, where known, the line of the failure.
type DocumentError struct {
	FilePath string // Path of the offending document
	Line     int    // Line number (0 if unknown)
	Message  string // Primary error message
	Hint     string // Actionable suggestion for fixing
}

// Error implements the error interface.
func (e *DocumentError) Error() string {
	location := e.FilePath
	if e.Line > 0 {
		location = fmt.Sprintf("%s (line %d)", e.FilePath, e.Line)
	}

	msg := fmt.Sprintf("malformed GIR document %s: %s", location, e.Message)
	if e.Hint != "" {
		msg += "\n\nHint: " + e.Hint
	}
	return msg
}

// Unwrap lets errors.Is match gircheck.ErrMalformedDocument.
func (e *DocumentError) Unwrap() error {
	return gircheck.ErrMalformedDocument
}

// wrapXMLError converts encoding/xml errors to DocumentError with line numbers.
func wrapXMLError(err error, filePath string, line int) error {
	var syntaxErr *xml.SyntaxError
	if errors.As(err, &syntaxErr) {
		return &DocumentError{
			FilePath: filePath,
			Line:     syntaxErr.Line,
			Message:  syntaxErr.Msg,
			Hint:     "Check that all tags are closed and attribute values are quoted.",
		}
	}

	return &DocumentError{
		FilePath: filePath,
		Line:     line,
		Message:  err.Error(),
	}
}

// UnresolvedReference is a parent, implements or prerequisite name that
// does not resolve to a type declared in the same document. It is a warning:
// the referring entity is still emitted with the reference left unresolved.
type UnresolvedReference struct {
	FilePath string
	Entity   string // qualified name of the referring entity
	Relation string // "parent", "implements" or "prerequisite"
	Target   string // reference as written in the document
}

func (u *UnresolvedReference) Error() string {
	return fmt.Sprintf("%s: %s %s %q does not resolve within the document", u.FilePath, u.Entity, u.Relation, u.Target)
}
