package gir

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Parse reads a GIR document strictly. The raw tree keeps every prefix,
// attribute order, comment and text node so it can be written back; the
// typed model is built from that tree.
//
// Error cases (all *DocumentError, matching gircheck.ErrMalformedDocument):
//   - XML syntax errors, with the decoder's line number
//   - mismatched or unclosed elements
//   - no root element, more than one root element, text outside the root
//   - a root other than <repository>, or a namespace/type without a name
func Parse(content []byte, filePath string) (*Document, error) {
	tree, err := parseTree(content, filePath)
	if err != nil {
		return nil, err
	}

	doc := &Document{
		Path: filePath,
		Tree: tree,
	}
	if err := buildModel(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func parseTree(content []byte, filePath string) (*Node, error) {
	decoder := xml.NewDecoder(bytes.NewReader(content))
	decoder.Strict = true

	doc := &Node{Kind: DocumentNode}
	stack := []*Node{doc}
	hasRoot := false

	for {
		line, _ := decoder.InputPos()
		tok, err := decoder.RawToken()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, wrapXMLError(err, filePath, line)
		}

		top := stack[len(stack)-1]

		switch t := tok.(type) {
		case xml.StartElement:
			if top == doc {
				if hasRoot {
					return nil, &DocumentError{FilePath: filePath, Line: line, Message: "more than one root element"}
				}
				hasRoot = true
			}
			node := &Node{
				Kind: ElementNode,
				Name: Name{Prefix: t.Name.Space, Local: t.Name.Local},
				Line: line,
			}
			for _, a := range t.Attr {
				node.Attrs = append(node.Attrs, Attr{
					Name:  Name{Prefix: a.Name.Space, Local: a.Name.Local},
					Value: a.Value,
				})
			}
			top.Children = append(top.Children, node)
			stack = append(stack, node)

		case xml.EndElement:
			name := Name{Prefix: t.Name.Space, Local: t.Name.Local}
			if top == doc {
				return nil, &DocumentError{FilePath: filePath, Line: line, Message: fmt.Sprintf("unexpected end element </%s>", name)}
			}
			if top.Name != name {
				return nil, &DocumentError{
					FilePath: filePath,
					Line:     line,
					Message:  fmt.Sprintf("element <%s> opened on line %d is closed by </%s>", top.Name, top.Line, name),
				}
			}
			stack = stack[:len(stack)-1]

		case xml.CharData:
			text := string(t)
			if top == doc && strings.TrimSpace(text) != "" {
				return nil, &DocumentError{FilePath: filePath, Line: line, Message: "text outside the root element"}
			}
			top.Children = append(top.Children, &Node{Kind: TextNode, Data: text, Line: line})

		case xml.Comment:
			top.Children = append(top.Children, &Node{Kind: CommentNode, Data: string(t), Line: line})

		case xml.ProcInst:
			top.Children = append(top.Children, &Node{
				Kind: ProcInstNode,
				Name: Name{Local: t.Target},
				Data: string(t.Inst),
				Line: line,
			})

		case xml.Directive:
			top.Children = append(top.Children, &Node{Kind: DirectiveNode, Data: string(t), Line: line})
		}
	}

	if len(stack) > 1 {
		open := stack[len(stack)-1]
		return nil, &DocumentError{
			FilePath: filePath,
			Line:     open.Line,
			Message:  fmt.Sprintf("unexpected end of document: <%s> is not closed", open.Name),
		}
	}
	if !hasRoot {
		return nil, &DocumentError{FilePath: filePath, Message: "document has no root element"}
	}
	return doc, nil
}

func buildModel(doc *Document) error {
	root := doc.Tree.Root()
	if !root.Is("", "repository") {
		return &DocumentError{
			FilePath: doc.Path,
			Line:     root.Line,
			Message:  fmt.Sprintf("root element is <%s>, expected <repository>", root.Name),
			Hint:     "Only GObject-Introspection repository files are accepted.",
		}
	}

	// headers and packages first: they may follow the namespace in the file
	for _, child := range root.Elements() {
		switch {
		case child.Is("c", "include"):
			if name := child.AttrValue("", "name"); name != "" {
				doc.CIncludes = append(doc.CIncludes, name)
			}
		case child.Is("", "package"):
			if name := child.AttrValue("", "name"); name != "" {
				doc.Packages = append(doc.Packages, name)
			}
		}
	}

	doc.lookup = newLookup()
	for _, child := range root.Elements() {
		if !child.Is("", "namespace") {
			continue
		}
		ns, err := parseNamespace(doc, child)
		if err != nil {
			return err
		}
		doc.Namespaces = append(doc.Namespaces, ns)
		for _, e := range ns.Entities {
			doc.lookup.add(e)
		}
	}
	return nil
}

func parseNamespace(doc *Document, node *Node) (*Namespace, error) {
	name, ok := node.Attr("", "name")
	if !ok || name == "" {
		return nil, &DocumentError{FilePath: doc.Path, Line: node.Line, Message: "<namespace> has no name attribute"}
	}

	ns := &Namespace{
		Name:                name,
		Version:             node.AttrValue("", "version"),
		SharedLibrary:       node.AttrValue("", "shared-library"),
		CIdentifierPrefixes: node.AttrValue("c", "identifier-prefixes"),
		node:                node,
	}

	for _, child := range node.Elements() {
		kind, ok := kindElements[child.Name]
		if !ok {
			continue
		}
		e, err := parseEntity(doc, ns, child, kind)
		if err != nil {
			return nil, err
		}
		ns.Entities = append(ns.Entities, e)
	}
	return ns, nil
}

func parseEntity(doc *Document, ns *Namespace, node *Node, kind Kind) (*TypeEntity, error) {
	name := node.AttrValue("", "name")
	if kind == KindBoxed {
		name = node.AttrValue("glib", "name")
	}
	if name == "" {
		return nil, &DocumentError{FilePath: doc.Path, Line: node.Line, Message: fmt.Sprintf("<%s> has no name", node.Name)}
	}

	e := &TypeEntity{
		Kind:      kind,
		Namespace: ns.Name,
		Name:      name,
		CType:     node.AttrValue("c", "type"),
		GTypeName: node.AttrValue("glib", "type-name"),
		GetType:   node.AttrValue("glib", "get-type"),
		Parent:    node.AttrValue("", "parent"),
		Line:      node.Line,
		node:      node,
		container: ns.node,
	}

	for _, child := range node.Elements() {
		switch {
		case child.Is("", "implements"):
			if ref := child.AttrValue("", "name"); ref != "" {
				e.Implements = append(e.Implements, ref)
			}
		case child.Is("", "prerequisite"):
			if ref := child.AttrValue("", "name"); ref != "" {
				e.Prerequisites = append(e.Prerequisites, ref)
			}
		case child.Is("", "source-position"):
			if file := child.AttrValue("", "filename"); file != "" && len(e.HeaderPaths) == 0 {
				e.HeaderPaths = []string{file}
			}
		case child.Is("", "property"):
			e.Properties = append(e.Properties, parseProperty(child))
		case child.Is("glib", "signal"):
			e.Signals = append(e.Signals, parseSignal(child))
		}
	}

	if len(e.HeaderPaths) == 0 && len(doc.CIncludes) > 0 {
		e.HeaderPaths = append([]string(nil), doc.CIncludes...)
	}
	return e, nil
}

func parseProperty(node *Node) Property {
	readable, hasReadable := node.Attr("", "readable")
	return Property{
		Name:          node.AttrValue("", "name"),
		Type:          parseTypeRef(node),
		Readable:      !hasReadable || isTrue(readable),
		Writable:      isTrue(node.AttrValue("", "writable")),
		Construct:     isTrue(node.AttrValue("", "construct")),
		ConstructOnly: isTrue(node.AttrValue("", "construct-only")),
	}
}

func parseSignal(node *Node) Signal {
	s := Signal{
		Name:      node.AttrValue("", "name"),
		When:      node.AttrValue("", "when"),
		NoRecurse: isTrue(node.AttrValue("", "no-recurse")),
		Detailed:  isTrue(node.AttrValue("", "detailed")),
		Action:    isTrue(node.AttrValue("", "action")),
		NoHooks:   isTrue(node.AttrValue("", "no-hooks")),
	}
	if ret := node.Child("", "return-value"); ret != nil {
		s.Return = parseTypeRef(ret)
	}
	if params := node.Child("", "parameters"); params != nil {
		for _, p := range params.Elements() {
			if !p.Is("", "parameter") {
				continue
			}
			s.Parameters = append(s.Parameters, Parameter{
				Name: p.AttrValue("", "name"),
				Type: parseTypeRef(p),
			})
		}
	}
	return s
}

// parseTypeRef reads the <type>, <array> or <varargs> child of a typed element.
func parseTypeRef(node *Node) TypeRef {
	for _, child := range node.Elements() {
		switch {
		case child.Is("", "type"):
			return TypeRef{Name: child.AttrValue("", "name"), CType: child.AttrValue("c", "type")}
		case child.Is("", "array"):
			elem := parseTypeRef(child)
			ctype := child.AttrValue("c", "type")
			if ctype == "" {
				ctype = elem.CType
			}
			name := elem.Name
			if arrayName := child.AttrValue("", "name"); arrayName != "" {
				name = arrayName
			}
			return TypeRef{Name: name, CType: ctype, Array: true}
		case child.Is("", "varargs"):
			return TypeRef{Name: "varargs"}
		}
	}
	return TypeRef{}
}

func isTrue(v string) bool {
	return v == "1" || v == "true"
}
