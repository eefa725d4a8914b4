// Package gir parses GObject-Introspection-Repository documents.
//
// # Model
//
// Parse produces a Document holding two views of one file:
//   - Tree: the raw element tree, with literal prefixes (c:type, glib:type-name),
//     attribute order, comments and whitespace preserved for passthrough output
//   - Namespaces: the typed model of TypeEntity values (class, interface,
//     record, enumeration, bitfield, union, glib:boxed) with their Property
//     and Signal members
//
// Parent, implements and prerequisite links are names. Document.Lookup
// resolves them on demand; references that stay unresolved are reported by
// Document.Unresolved as warnings, never as errors.
//
// # Strictness
//
// Well-formedness problems return *DocumentError, which matches
// gircheck.ErrMalformedDocument with errors.Is. There is no recovery: a
// malformed file is skipped by the caller.
//
// # Usage
//
//	doc, err := gir.Parse(content, "Gtk-3.0.gir")
//	if err != nil {
//	    return err
//	}
//	for _, e := range doc.Entities() {
//	    fmt.Println(e.QualifiedName(), e.GTypeName)
//	}
//	out, err := gir.Encode(doc)
package gir
