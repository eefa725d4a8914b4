package gir

import (
	"bufio"
	"bytes"
	"io"
	"strings"
)

var (
	textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	attrEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"\n", "&#10;",
		"\r", "&#13;",
		"\t", "&#9;",
	)
)

// Write serializes the document tree. Prefixes, attribute order, comments and
// whitespace are emitted as parsed; removed subtrees are simply absent.
// Empty elements are written self-closed.
func Write(w io.Writer, doc *Document) error {
	bw := bufio.NewWriter(w)
	for _, child := range doc.Tree.Children {
		writeNode(bw, child)
	}
	if len(doc.Tree.Children) > 0 {
		last := doc.Tree.Children[len(doc.Tree.Children)-1]
		if last.Kind != TextNode {
			bw.WriteByte('\n')
		}
	}
	return bw.Flush()
}

// Encode returns the serialized document.
func Encode(doc *Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeNode(w *bufio.Writer, n *Node) {
	switch n.Kind {
	case ElementNode:
		w.WriteByte('<')
		w.WriteString(n.Name.String())
		for _, a := range n.Attrs {
			w.WriteByte(' ')
			w.WriteString(a.Name.String())
			w.WriteString(`="`)
			w.WriteString(attrEscaper.Replace(a.Value))
			w.WriteByte('"')
		}
		if len(n.Children) == 0 {
			w.WriteString("/>")
			return
		}
		w.WriteByte('>')
		for _, c := range n.Children {
			writeNode(w, c)
		}
		w.WriteString("</")
		w.WriteString(n.Name.String())
		w.WriteByte('>')
	case TextNode:
		w.WriteString(textEscaper.Replace(n.Data))
	case CommentNode:
		w.WriteString("<!--")
		w.WriteString(n.Data)
		w.WriteString("-->")
	case ProcInstNode:
		w.WriteString("<?")
		w.WriteString(n.Name.Local)
		if n.Data != "" {
			w.WriteByte(' ')
			w.WriteString(n.Data)
		}
		w.WriteString("?>")
	case DirectiveNode:
		w.WriteString("<!")
		w.WriteString(n.Data)
		w.WriteByte('>')
	}
}
