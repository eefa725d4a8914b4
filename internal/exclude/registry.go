// Package exclude holds the three exclusion sets and the single decision
// of whether a type is suppressed from extraction and output.
package exclude

import (
	"fmt"

	"github.com/renesugar/gircheck/internal/files/filelist"
	"github.com/renesugar/gircheck/internal/files/filesystem"
	"github.com/renesugar/gircheck/internal/gir"
)

// Reason names the criterion that excluded an entity.
type Reason string

const (
	ReasonRegistered Reason = "registered"
	ReasonGType      Reason = "gtype"
	ReasonHeader     Reason = "header"
)

// Reasons lists every reason in the order they are checked.
var Reasons = []Reason{ReasonRegistered, ReasonGType, ReasonHeader}

// Sources are the optional list files a registry is loaded from.
// Empty paths are skipped.
type Sources struct {
	Registered string
	GTypes     string
	Headers    string
}

// Registry is the immutable set of exclusion rules for one run.
// Matching is by exact string only.
type Registry struct {
	registered map[string]struct{}
	gtypes     map[string]struct{}
	headers    map[string]struct{}
}

// NewRegistry builds a registry from in-memory names.
func NewRegistry(registered, gtypes, headers []string) *Registry {
	return &Registry{
		registered: toSet(registered),
		gtypes:     toSet(gtypes),
		headers:    toSet(headers),
	}
}

// Empty returns a registry that excludes nothing.
func Empty() *Registry {
	return NewRegistry(nil, nil, nil)
}

// Load reads each configured list. A configured list that does not exist
// fails with gircheck.ErrMissingInput.
func Load(fs filesystem.FileSystemProvider, src Sources) (*Registry, error) {
	reg := Empty()
	targets := []struct {
		path string
		set  *map[string]struct{}
		flag string
	}{
		{src.Registered, &reg.registered, "excluderegistered"},
		{src.GTypes, &reg.gtypes, "excludegtypes"},
		{src.Headers, &reg.headers, "excludeheaders"},
	}

	for _, t := range targets {
		if t.path == "" {
			continue
		}
		set, err := filelist.ReadSet(fs, t.path)
		if err != nil {
			return nil, fmt.Errorf("failed to load --%s list: %w", t.flag, err)
		}
		*t.set = set
	}
	return reg, nil
}

// Excluded reports whether e is suppressed and by which criterion.
// Registered name is checked first, then GType name, then header paths.
func (r *Registry) Excluded(e *gir.TypeEntity) (Reason, bool) {
	if r == nil {
		return "", false
	}
	if _, ok := r.registered[e.QualifiedName()]; ok {
		return ReasonRegistered, true
	}
	if e.GTypeName != "" && r.ExcludesGType(e.GTypeName) {
		return ReasonGType, true
	}
	for _, h := range e.HeaderPaths {
		if _, ok := r.headers[h]; ok {
			return ReasonHeader, true
		}
	}
	return "", false
}

// ExcludesGType reports whether name is in the GType set.
func (r *Registry) ExcludesGType(name string) bool {
	if r == nil {
		return false
	}
	_, ok := r.gtypes[name]
	return ok
}

// Sizes returns the number of names in each set.
func (r *Registry) Sizes() map[Reason]int {
	return map[Reason]int{
		ReasonRegistered: len(r.registered),
		ReasonGType:      len(r.gtypes),
		ReasonHeader:     len(r.headers),
	}
}

// IsEmpty reports whether the registry excludes nothing.
func (r *Registry) IsEmpty() bool {
	return r == nil || len(r.registered)+len(r.gtypes)+len(r.headers) == 0
}

func toSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}
