package gir

import "strings"

// Kind is the variant of a TypeEntity.
type Kind string

const (
	KindClass       Kind = "class"
	KindInterface   Kind = "interface"
	KindRecord      Kind = "record"
	KindEnumeration Kind = "enum"
	KindBitfield    Kind = "bitfield"
	KindUnion       Kind = "union"
	KindBoxed       Kind = "boxed"
)

// Fundamental returns the GType fundamental a registered type of this kind derives from.
func (k Kind) Fundamental() string {
	switch k {
	case KindClass:
		return "G_TYPE_OBJECT"
	case KindInterface:
		return "G_TYPE_INTERFACE"
	case KindRecord, KindUnion, KindBoxed:
		return "G_TYPE_BOXED"
	case KindEnumeration:
		return "G_TYPE_ENUM"
	case KindBitfield:
		return "G_TYPE_FLAGS"
	}
	return "G_TYPE_INVALID"
}

// kindElements maps namespace-level element names to entity kinds.
var kindElements = map[Name]Kind{
	{Local: "class"}:                 KindClass,
	{Local: "interface"}:             KindInterface,
	{Local: "record"}:                KindRecord,
	{Local: "enumeration"}:           KindEnumeration,
	{Local: "bitfield"}:              KindBitfield,
	{Local: "union"}:                 KindUnion,
	{Prefix: "glib", Local: "boxed"}: KindBoxed,
}

// TypeRef is a type as written on a property, signal return or parameter.
type TypeRef struct {
	Name  string // GIR type name, e.g. "utf8" or "Gtk.Widget"
	CType string // c:type, may be empty
	Array bool
}

func (t TypeRef) String() string {
	name := t.Name
	if name == "" {
		name = t.CType
	}
	if name == "" {
		name = "none"
	}
	if t.Array {
		return name + "[]"
	}
	return name
}

// Property is a GObject property owned by exactly one TypeEntity.
type Property struct {
	Name          string
	Type          TypeRef
	Readable      bool
	Writable      bool
	Construct     bool
	ConstructOnly bool
}

// Flags renders the property flags using one character per flag.
func (p Property) Flags() string {
	var b strings.Builder
	if p.Readable {
		b.WriteByte('r')
	}
	if p.Writable {
		b.WriteByte('w')
	}
	if p.Construct {
		b.WriteByte('x')
	}
	if p.ConstructOnly {
		b.WriteByte('X')
	}
	return b.String()
}

// Parameter is one signal parameter.
type Parameter struct {
	Name string
	Type TypeRef
}

// Signal is a GObject signal owned by exactly one TypeEntity.
type Signal struct {
	Name       string
	Return     TypeRef
	Parameters []Parameter
	When       string // "first", "last", "cleanup" or ""
	NoRecurse  bool
	Detailed   bool
	Action     bool
	NoHooks    bool
}

// Flags renders the emission flags using one character per flag.
func (s Signal) Flags() string {
	var b strings.Builder
	switch s.When {
	case "first":
		b.WriteByte('f')
	case "last":
		b.WriteByte('l')
	case "cleanup":
		b.WriteByte('c')
	}
	if s.NoRecurse {
		b.WriteByte('r')
	}
	if s.Detailed {
		b.WriteByte('d')
	}
	if s.Action {
		b.WriteByte('a')
	}
	if s.NoHooks {
		b.WriteByte('h')
	}
	return b.String()
}

// ParamTypes returns the parameter types in declaration order.
func (s Signal) ParamTypes() []string {
	out := make([]string, len(s.Parameters))
	for i, p := range s.Parameters {
		out[i] = p.Type.String()
	}
	return out
}

// TypeEntity is a class, interface, record, enumeration, bitfield, union or boxed declaration.
// Parent, Implements and Prerequisites hold names; resolve them through Document.Lookup.
type TypeEntity struct {
	Kind          Kind
	Namespace     string
	Name          string
	CType         string
	GTypeName     string
	GetType       string
	Parent        string
	Implements    []string
	Prerequisites []string
	HeaderPaths   []string
	Properties    []Property
	Signals       []Signal
	Line          int

	node      *Node
	container *Node
}

// QualifiedName is the registered-type name, Namespace.Name.
func (e *TypeEntity) QualifiedName() string {
	if e.Namespace == "" {
		return e.Name
	}
	return e.Namespace + "." + e.Name
}

// Registered reports whether the entity carries a GType name.
func (e *TypeEntity) Registered() bool {
	return e.GTypeName != ""
}

// Namespace is one <namespace> of a document.
type Namespace struct {
	Name                string
	Version             string
	SharedLibrary       string
	CIdentifierPrefixes string
	Entities            []*TypeEntity

	node *Node
}

// Document is a parsed GIR file: the raw tree used for passthrough output
// plus the typed model used for extraction.
type Document struct {
	Path       string
	Tree       *Node
	CIncludes  []string
	Packages   []string
	Namespaces []*Namespace

	lookup *Lookup
}

// Entities returns all entities in document order.
func (d *Document) Entities() []*TypeEntity {
	var out []*TypeEntity
	for _, ns := range d.Namespaces {
		out = append(out, ns.Entities...)
	}
	return out
}

// Lookup returns the name table built when the document was parsed.
// Entities removed by filtering stay resolvable.
func (d *Document) Lookup() *Lookup {
	return d.lookup
}

// RemoveEntity detaches e and everything it owns from the tree and the model.
func (d *Document) RemoveEntity(e *TypeEntity) bool {
	removed := false
	if e.container != nil && e.node != nil {
		removed = e.container.RemoveChild(e.node)
	}
	for _, ns := range d.Namespaces {
		for i, cur := range ns.Entities {
			if cur == e {
				ns.Entities = append(ns.Entities[:i], ns.Entities[i+1:]...)
				return true
			}
		}
	}
	return removed
}
