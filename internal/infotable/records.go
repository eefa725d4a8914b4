package infotable

import (
	"fmt"

	"github.com/renesugar/gircheck/pkg/gircheck"
)

// Kind identifies which record type a table holds.
type Kind string

const (
	KindType     Kind = "typeinfo"
	KindProperty Kind = "propertyinfo"
	KindSignal   Kind = "signalinfo"
)

// KindForMode maps an info extraction mode to its table kind.
func KindForMode(mode gircheck.Mode) (Kind, error) {
	switch mode {
	case gircheck.ModeTypeInfo:
		return KindType, nil
	case gircheck.ModePropertyInfo:
		return KindProperty, nil
	case gircheck.ModeSignalInfo:
		return KindSignal, nil
	}
	return "", fmt.Errorf("mode %s does not produce an info table", mode)
}

// FileName is the artifact name for a table of this kind.
func (k Kind) FileName() string {
	return string(k) + gircheck.TableExtension
}

// TypeInfo is one registered type.
type TypeInfo struct {
	GType       string
	Namespace   string
	Name        string // registered-type name, Namespace.Name
	CType       string
	ParentGType string // empty when the parent does not resolve in-document
	ParentName  string // parent reference as written
	Kind        string
	GetType     string
	Fundamental string
}

// PropertyInfo is one property of a registered type.
type PropertyInfo struct {
	OwnerGType string
	Namespace  string
	Name       string
	Type       string
	CType      string
	Flags      string
}

// SignalInfo is one signal of a registered type.
type SignalInfo struct {
	OwnerGType string
	Namespace  string
	Name       string
	ReturnType string
	ParamTypes []string
	Flags      string
}

// Table is the interchange format between single-mode runs and merge.
// Only the slice matching Kind is populated.
type Table struct {
	Kind       Kind
	Source     string
	Types      []TypeInfo
	Properties []PropertyInfo
	Signals    []SignalInfo
}

// NewTable returns an empty table of the given kind.
func NewTable(kind Kind) *Table {
	return &Table{Kind: kind}
}

// Len returns the number of rows.
func (t *Table) Len() int {
	switch t.Kind {
	case KindType:
		return len(t.Types)
	case KindProperty:
		return len(t.Properties)
	case KindSignal:
		return len(t.Signals)
	}
	return 0
}

// Append adds the rows of other, which must be of the same kind.
func (t *Table) Append(other *Table) {
	if other == nil || other.Kind != t.Kind {
		return
	}
	t.Types = append(t.Types, other.Types...)
	t.Properties = append(t.Properties, other.Properties...)
	t.Signals = append(t.Signals, other.Signals...)
}

// Keys returns the distinct GType keys in first-seen order.
func (t *Table) Keys() []string {
	var keys []string
	seen := make(map[string]struct{})
	add := func(k string) {
		if _, ok := seen[k]; !ok {
			seen[k] = struct{}{}
			keys = append(keys, k)
		}
	}
	for _, r := range t.Types {
		add(r.GType)
	}
	for _, r := range t.Properties {
		add(r.OwnerGType)
	}
	for _, r := range t.Signals {
		add(r.OwnerGType)
	}
	return keys
}
