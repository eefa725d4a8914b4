package gir

import "strings"

// Lookup maps qualified names to the entities of one document.
// It is a lookup relation only; entities never point at each other.
type Lookup struct {
	byQualified map[string]*TypeEntity
}

func newLookup() *Lookup {
	return &Lookup{byQualified: make(map[string]*TypeEntity)}
}

func (l *Lookup) add(e *TypeEntity) {
	if _, exists := l.byQualified[e.QualifiedName()]; !exists {
		l.byQualified[e.QualifiedName()] = e
	}
}

// Resolve finds ref as written inside namespace ns. Unqualified names are
// looked up in ns; "Other.Name" is looked up as given.
func (l *Lookup) Resolve(ref, ns string) (*TypeEntity, bool) {
	if l == nil || ref == "" {
		return nil, false
	}
	key := ref
	if !strings.Contains(ref, ".") && ns != "" {
		key = ns + "." + ref
	}
	e, ok := l.byQualified[key]
	return e, ok
}

// Len returns the number of names in the table.
func (l *Lookup) Len() int {
	if l == nil {
		return 0
	}
	return len(l.byQualified)
}

// Unresolved returns a warning for every parent, implements and prerequisite
// reference of the document's current entities that Resolve cannot satisfy.
func (d *Document) Unresolved() []*UnresolvedReference {
	var out []*UnresolvedReference
	check := func(e *TypeEntity, relation, ref string) {
		if ref == "" {
			return
		}
		if _, ok := d.lookup.Resolve(ref, e.Namespace); !ok {
			out = append(out, &UnresolvedReference{
				FilePath: d.Path,
				Entity:   e.QualifiedName(),
				Relation: relation,
				Target:   ref,
			})
		}
	}

	for _, e := range d.Entities() {
		check(e, "parent", e.Parent)
		for _, ref := range e.Implements {
			check(e, "implements", ref)
		}
		for _, ref := range e.Prerequisites {
			check(e, "prerequisite", ref)
		}
	}
	return out
}
