package gir

import "strings"

// NodeKind identifies what a Node holds.
type NodeKind int

const (
	DocumentNode NodeKind = iota
	ElementNode
	TextNode
	CommentNode
	ProcInstNode
	DirectiveNode
)

// Name is an XML name with its literal prefix kept, so c:type stays c:type on output.
type Name struct {
	Prefix string
	Local  string
}

func (n Name) String() string {
	if n.Prefix == "" {
		return n.Local
	}
	return n.Prefix + ":" + n.Local
}

// Attr is one attribute in source order.
type Attr struct {
	Name  Name
	Value string
}

// Node is one item of the raw document tree. Elements own their children;
// text, comments, processing instructions and directives keep their data verbatim.
type Node struct {
	Kind     NodeKind
	Name     Name // element name, or processing instruction target in Name.Local
	Attrs    []Attr
	Children []*Node
	Data     string
	Line     int
}

// Attr returns the value of the attribute prefix:local.
func (n *Node) Attr(prefix, local string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name.Prefix == prefix && a.Name.Local == local {
			return a.Value, true
		}
	}
	return "", false
}

// AttrValue returns the attribute value or "" when absent.
func (n *Node) AttrValue(prefix, local string) string {
	v, _ := n.Attr(prefix, local)
	return v
}

// Is reports whether n is an element named prefix:local.
func (n *Node) Is(prefix, local string) bool {
	return n.Kind == ElementNode && n.Name.Prefix == prefix && n.Name.Local == local
}

// Elements returns the element children of n.
func (n *Node) Elements() []*Node {
	var out []*Node
	for _, c := range n.Children {
		if c.Kind == ElementNode {
			out = append(out, c)
		}
	}
	return out
}

// Child returns the first element child named prefix:local.
func (n *Node) Child(prefix, local string) *Node {
	for _, c := range n.Children {
		if c.Is(prefix, local) {
			return c
		}
	}
	return nil
}

// RemoveChild detaches child from n, together with the whitespace text
// node that indented it. Returns false if child is not a direct child of n.
func (n *Node) RemoveChild(child *Node) bool {
	for i, c := range n.Children {
		if c != child {
			continue
		}
		start := i
		if i > 0 && isWhitespace(n.Children[i-1]) {
			start = i - 1
		}
		n.Children = append(n.Children[:start], n.Children[i+1:]...)
		return true
	}
	return false
}

// Root returns the single root element of a document node.
func (n *Node) Root() *Node {
	for _, c := range n.Children {
		if c.Kind == ElementNode {
			return c
		}
	}
	return nil
}

func isWhitespace(n *Node) bool {
	return n.Kind == TextNode && strings.TrimSpace(n.Data) == ""
}
