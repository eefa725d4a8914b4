package merge

import (
	"io"
	"strings"

	"github.com/renesugar/gircheck/internal/infotable"
)

const (
	memberSeparator = ";"
	fieldSeparator  = ":"
)

// Header is the column layout of a merged table: the typeinfo columns
// followed by one column of properties and one of signals.
func Header() []string {
	return append(infotable.Header(infotable.KindType), "properties", "signals")
}

// Write encodes the merged records as CSV, one row per GType name. Type
// columns are empty for a key no typeinfo table mentioned.
//
// Properties are written as name:type:flags:get-type and signals as
// name:return:param|param:flags, entries separated by ";".
func Write(w io.Writer, res *Result) error {
	rows := make([][]string, 0, len(res.Records))
	for _, rec := range res.Records {
		t := infotable.TypeInfo{GType: rec.GType, Namespace: rec.Namespace()}
		if rec.Type != nil {
			t = *rec.Type
			t.GType = rec.GType
		}

		props := make([]string, len(rec.Properties))
		for i, p := range rec.Properties {
			props[i] = strings.Join([]string{p.Name, p.Type, p.Flags, p.TypeGetType}, fieldSeparator)
		}
		signals := make([]string, len(rec.Signals))
		for i, s := range rec.Signals {
			signals[i] = strings.Join([]string{s.Name, s.ReturnType, strings.Join(s.ParamTypes, infotable.ParamSeparator), s.Flags}, fieldSeparator)
		}

		rows = append(rows, []string{
			t.GType, t.Namespace, t.Name, t.CType, t.ParentGType, t.ParentName, t.Kind, t.GetType, t.Fundamental,
			strings.Join(props, memberSeparator),
			strings.Join(signals, memberSeparator),
		})
	}
	return infotable.WriteRows(w, Header(), rows)
}
