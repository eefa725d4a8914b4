// Package merge joins info tables from separate extraction runs into one
// record per GType name.
package merge

import (
	"fmt"
	"strings"

	"github.com/renesugar/gircheck/internal/exclude"
	"github.com/renesugar/gircheck/internal/infotable"
	"github.com/renesugar/gircheck/pkg/gircheck"
)

// Property get-type markers used when a property type cannot be resolved
// to a get-type function.
const (
	GetTypeExcluded   = "exclude"
	GetTypeUnresolved = "?"
)

// Property is a property row with its type resolved to a get-type function.
type Property struct {
	infotable.PropertyInfo
	TypeGetType string
}

// Record is the union of every row contributed for one GType name.
// Type is nil when no typeinfo table mentioned the key.
type Record struct {
	GType      string
	Type       *infotable.TypeInfo
	Properties []Property
	Signals    []infotable.SignalInfo
}

// Namespace returns the namespace of the first contributing row.
func (r *Record) Namespace() string {
	if r.Type != nil && r.Type.Namespace != "" {
		return r.Type.Namespace
	}
	for _, p := range r.Properties {
		if p.Namespace != "" {
			return p.Namespace
		}
	}
	for _, s := range r.Signals {
		if s.Namespace != "" {
			return s.Namespace
		}
	}
	return ""
}

// Result is the merged record set in first-seen key order.
type Result struct {
	Records  []*Record
	Excluded []string // keys dropped by the GType exclusion set
}

// Keys returns the GType names of the merged records.
func (r *Result) Keys() []string {
	keys := make([]string, len(r.Records))
	for i, rec := range r.Records {
		keys[i] = rec.GType
	}
	return keys
}

// Merge performs a full outer join of tables on GType name.
//
// Keys appear in first-seen order across tables in argument order. Type
// fields come from the first typeinfo row for a key; later rows only fill
// fields that are still empty. Properties and signals are appended and
// deduplicated by name per key. Keys in reg's GType set are dropped.
func Merge(tables []*infotable.Table, reg *exclude.Registry) (*Result, error) {
	if len(tables) < 2 {
		return nil, fmt.Errorf("%w: merge needs at least two tables, got %d", gircheck.ErrUsage, len(tables))
	}

	index := make(map[string]*Record)
	var order []*Record
	record := func(key string) *Record {
		if rec, ok := index[key]; ok {
			return rec
		}
		rec := &Record{GType: key}
		index[key] = rec
		order = append(order, rec)
		return rec
	}

	types := newTypeIndex()
	seenProps := make(map[string]map[string]struct{})
	seenSignals := make(map[string]map[string]struct{})

	for _, t := range tables {
		for _, row := range t.Types {
			rec := record(row.GType)
			if rec.Type == nil {
				copied := row
				rec.Type = &copied
			} else {
				fillType(rec.Type, row)
			}
			types.add(row)
		}
		for _, row := range t.Properties {
			rec := record(row.OwnerGType)
			if markSeen(seenProps, row.OwnerGType, row.Name) {
				rec.Properties = append(rec.Properties, Property{PropertyInfo: row})
			}
		}
		for _, row := range t.Signals {
			rec := record(row.OwnerGType)
			if markSeen(seenSignals, row.OwnerGType, row.Name) {
				rec.Signals = append(rec.Signals, row)
			}
		}
	}

	res := &Result{}
	for _, rec := range order {
		if reg.ExcludesGType(rec.GType) {
			res.Excluded = append(res.Excluded, rec.GType)
			continue
		}
		for i := range rec.Properties {
			rec.Properties[i].TypeGetType = types.resolve(rec.Properties[i].PropertyInfo, reg)
		}
		res.Records = append(res.Records, rec)
	}
	return res, nil
}

// markSeen records name under key and reports whether it was new.
func markSeen(seen map[string]map[string]struct{}, key, name string) bool {
	names, ok := seen[key]
	if !ok {
		names = make(map[string]struct{})
		seen[key] = names
	}
	if _, dup := names[name]; dup {
		return false
	}
	names[name] = struct{}{}
	return true
}

func fillType(dst *infotable.TypeInfo, src infotable.TypeInfo) {
	fill := func(d *string, s string) {
		if *d == "" {
			*d = s
		}
	}
	fill(&dst.Namespace, src.Namespace)
	fill(&dst.Name, src.Name)
	fill(&dst.CType, src.CType)
	fill(&dst.ParentGType, src.ParentGType)
	fill(&dst.ParentName, src.ParentName)
	fill(&dst.Kind, src.Kind)
	fill(&dst.GetType, src.GetType)
	fill(&dst.Fundamental, src.Fundamental)
}

// typeIndex finds type rows by the names a property may use for its type.
type typeIndex struct {
	byGType map[string]infotable.TypeInfo
	byName  map[string]infotable.TypeInfo
	byCType map[string]infotable.TypeInfo
}

func newTypeIndex() *typeIndex {
	return &typeIndex{
		byGType: make(map[string]infotable.TypeInfo),
		byName:  make(map[string]infotable.TypeInfo),
		byCType: make(map[string]infotable.TypeInfo),
	}
}

func (ix *typeIndex) add(row infotable.TypeInfo) {
	put := func(m map[string]infotable.TypeInfo, key string) {
		if key == "" {
			return
		}
		if _, ok := m[key]; !ok {
			m[key] = row
		}
	}
	put(ix.byGType, row.GType)
	put(ix.byName, row.Name)
	put(ix.byCType, row.CType)
}

func (ix *typeIndex) lookup(p infotable.PropertyInfo) (infotable.TypeInfo, bool) {
	if row, ok := ix.byGType[p.Type]; ok {
		return row, true
	}
	if row, ok := ix.byName[p.Type]; ok {
		return row, true
	}
	if !strings.Contains(p.Type, ".") {
		if row, ok := ix.byName[p.Namespace+"."+p.Type]; ok {
			return row, true
		}
	}
	if ctype := strings.TrimRight(p.CType, "*"); ctype != "" {
		if row, ok := ix.byCType[ctype]; ok {
			return row, true
		}
	}
	return infotable.TypeInfo{}, false
}

// resolve returns the get-type function for a property's type: a merged type
// row first, then the built-in fundamentals by C type and by GIR type name.
func (ix *typeIndex) resolve(p infotable.PropertyInfo, reg *exclude.Registry) string {
	if row, ok := ix.lookup(p); ok {
		if reg.ExcludesGType(row.GType) {
			return GetTypeExcluded
		}
		if row.GetType != "" {
			return row.GetType
		}
	}
	if f, ok := infotable.FundamentalByCType(p.CType); ok {
		return f.GetType
	}
	if f, ok := infotable.FundamentalByGType(p.Type); ok {
		return f.GetType
	}
	if reg.ExcludesGType(p.Type) {
		return GetTypeExcluded
	}
	return GetTypeUnresolved
}
