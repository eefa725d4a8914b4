package infotable

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/renesugar/gircheck/internal/files/filesystem"
	"github.com/renesugar/gircheck/pkg/gircheck"
)

// ParamSeparator joins signal parameter types inside one column.
const ParamSeparator = "|"

var headers = map[Kind][]string{
	KindType:     {"gtype", "namespace", "name", "ctype", "parent_gtype", "parent_name", "kind", "get_type", "fundamental"},
	KindProperty: {"owner_gtype", "namespace", "property", "type", "ctype", "flags"},
	KindSignal:   {"owner_gtype", "namespace", "signal", "return_type", "param_types", "flags"},
}

// Header returns the column names written for a table kind.
func Header(kind Kind) []string {
	return append([]string(nil), headers[kind]...)
}

// Write encodes t as CSV with a header row.
func Write(w io.Writer, t *Table) error {
	header, ok := headers[t.Kind]
	if !ok {
		return fmt.Errorf("unknown table kind %q", t.Kind)
	}

	rows := make([][]string, 0, t.Len())
	switch t.Kind {
	case KindType:
		for _, r := range t.Types {
			rows = append(rows, []string{r.GType, r.Namespace, r.Name, r.CType, r.ParentGType, r.ParentName, r.Kind, r.GetType, r.Fundamental})
		}
	case KindProperty:
		for _, r := range t.Properties {
			rows = append(rows, []string{r.OwnerGType, r.Namespace, r.Name, r.Type, r.CType, r.Flags})
		}
	case KindSignal:
		for _, r := range t.Signals {
			rows = append(rows, []string{r.OwnerGType, r.Namespace, r.Name, r.ReturnType, strings.Join(r.ParamTypes, ParamSeparator), r.Flags})
		}
	}
	return WriteRows(w, header, rows)
}

// WriteRows writes a header row followed by rows.
func WriteRows(w io.Writer, header []string, rows [][]string) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write rows: %w", err)
	}
	return nil
}

// Read decodes a table. The kind is identified by the header row; a table
// with an unknown header or a short row is gircheck.ErrMalformedTable.
func Read(r io.Reader, source string) (*Table, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %s: empty table, expected a header row", gircheck.ErrMalformedTable, source)
	}
	if err != nil {
		return nil, tableError(source, err)
	}

	kind, ok := kindForHeader(header)
	if !ok {
		return nil, fmt.Errorf("%w: %s: unrecognized header %q", gircheck.ErrMalformedTable, source, strings.Join(header, ","))
	}

	t := &Table{Kind: kind, Source: source}
	for {
		rec, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, tableError(source, err)
		}

		switch kind {
		case KindType:
			t.Types = append(t.Types, TypeInfo{
				GType: rec[0], Namespace: rec[1], Name: rec[2], CType: rec[3],
				ParentGType: rec[4], ParentName: rec[5], Kind: rec[6], GetType: rec[7], Fundamental: rec[8],
			})
		case KindProperty:
			t.Properties = append(t.Properties, PropertyInfo{
				OwnerGType: rec[0], Namespace: rec[1], Name: rec[2], Type: rec[3], CType: rec[4], Flags: rec[5],
			})
		case KindSignal:
			t.Signals = append(t.Signals, SignalInfo{
				OwnerGType: rec[0], Namespace: rec[1], Name: rec[2], ReturnType: rec[3],
				ParamTypes: splitParams(rec[4]), Flags: rec[5],
			})
		}
	}
	return t, nil
}

// ReadFile loads a table from disk. A missing file is gircheck.ErrMissingInput.
func ReadFile(fs filesystem.FileSystemProvider, path string) (*Table, error) {
	content, err := fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: info table %s: %v", gircheck.ErrMissingInput, path, err)
	}
	return Read(bytes.NewReader(content), path)
}

func kindForHeader(header []string) (Kind, bool) {
	for kind, want := range headers {
		if equalFold(header, want) {
			return kind, true
		}
	}
	return "", false
}

func equalFold(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !strings.EqualFold(strings.TrimSpace(a[i]), b[i]) {
			return false
		}
	}
	return true
}

func splitParams(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ParamSeparator)
}

func tableError(source string, err error) error {
	var parseErr *csv.ParseError
	if errors.As(err, &parseErr) {
		return fmt.Errorf("%w: %s line %d: %v", gircheck.ErrMalformedTable, source, parseErr.Line, parseErr.Err)
	}
	return fmt.Errorf("%w: %s: %v", gircheck.ErrMalformedTable, source, err)
}
