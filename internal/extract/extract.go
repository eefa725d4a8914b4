// Package extract turns a filtered GIR document into the artifact of the
// selected mode. The strategy is chosen once per run; filtering has already
// happened, so strategies never consult the exclusion registry.
package extract

import (
	"fmt"

	"github.com/renesugar/gircheck/internal/gir"
	"github.com/renesugar/gircheck/internal/infotable"
	"github.com/renesugar/gircheck/pkg/gircheck"
)

// Result is the output of one document.
type Result struct {
	Document     *gir.Document    // set in passthrough mode
	Table        *infotable.Table // set in info modes
	Unregistered int              // entities skipped for lacking a GType name
}

// Strategy produces the artifact for one mode.
type Strategy interface {
	Mode() gircheck.Mode
	Extract(doc *gir.Document) *Result
}

// ForMode returns the strategy for an extraction mode.
func ForMode(mode gircheck.Mode) (Strategy, error) {
	switch mode {
	case gircheck.ModePassthrough:
		return passthrough{}, nil
	case gircheck.ModeTypeInfo:
		return typeInfo{}, nil
	case gircheck.ModePropertyInfo:
		return propertyInfo{}, nil
	case gircheck.ModeSignalInfo:
		return signalInfo{}, nil
	}
	return nil, fmt.Errorf("%w: %s is not an extraction mode", gircheck.ErrUsage, mode)
}

type passthrough struct{}

func (passthrough) Mode() gircheck.Mode { return gircheck.ModePassthrough }

func (passthrough) Extract(doc *gir.Document) *Result {
	return &Result{Document: doc}
}

type typeInfo struct{}

func (typeInfo) Mode() gircheck.Mode { return gircheck.ModeTypeInfo }

func (typeInfo) Extract(doc *gir.Document) *Result {
	res := &Result{Table: infotable.NewTable(infotable.KindType)}
	for _, e := range doc.Entities() {
		if !e.Registered() {
			res.Unregistered++
			continue
		}
		res.Table.Types = append(res.Table.Types, TypeRow(doc, e))
	}
	return res
}

// TypeRow builds the typeinfo row of a registered entity.
func TypeRow(doc *gir.Document, e *gir.TypeEntity) infotable.TypeInfo {
	ctype := e.CType
	if ctype == "" {
		ctype = e.GTypeName
	}

	var parentGType string
	if parent, ok := doc.Lookup().Resolve(e.Parent, e.Namespace); ok {
		parentGType = parent.GTypeName
	}

	fundamental := e.Kind.Fundamental()
	return infotable.TypeInfo{
		GType:       e.GTypeName,
		Namespace:   e.Namespace,
		Name:        e.QualifiedName(),
		CType:       ctype,
		ParentGType: parentGType,
		ParentName:  e.Parent,
		Kind:        string(e.Kind),
		GetType:     infotable.RenderGetType(e.GetType, e.GTypeName, fundamental),
		Fundamental: fundamental,
	}
}

type propertyInfo struct{}

func (propertyInfo) Mode() gircheck.Mode { return gircheck.ModePropertyInfo }

func (propertyInfo) Extract(doc *gir.Document) *Result {
	res := &Result{Table: infotable.NewTable(infotable.KindProperty)}
	for _, e := range doc.Entities() {
		if !e.Registered() {
			res.Unregistered++
			continue
		}
		for _, p := range e.Properties {
			res.Table.Properties = append(res.Table.Properties, infotable.PropertyInfo{
				OwnerGType: e.GTypeName,
				Namespace:  e.Namespace,
				Name:       p.Name,
				Type:       p.Type.String(),
				CType:      p.Type.CType,
				Flags:      p.Flags(),
			})
		}
	}
	return res
}

type signalInfo struct{}

func (signalInfo) Mode() gircheck.Mode { return gircheck.ModeSignalInfo }

func (signalInfo) Extract(doc *gir.Document) *Result {
	res := &Result{Table: infotable.NewTable(infotable.KindSignal)}
	for _, e := range doc.Entities() {
		if !e.Registered() {
			res.Unregistered++
			continue
		}
		for _, s := range e.Signals {
			res.Table.Signals = append(res.Table.Signals, infotable.SignalInfo{
				OwnerGType: e.GTypeName,
				Namespace:  e.Namespace,
				Name:       s.Name,
				ReturnType: s.Return.String(),
				ParamTypes: s.ParamTypes(),
				Flags:      s.Flags(),
			})
		}
	}
	return res
}
