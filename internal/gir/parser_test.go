package gir_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renesugar/gircheck/internal/gir"
	"github.com/renesugar/gircheck/internal/testing/fixtures"
	"github.com/renesugar/gircheck/pkg/gircheck"
)

func entityByName(t *testing.T, doc *gir.Document, name string) *gir.TypeEntity {
	t.Helper()
	for _, e := range doc.Entities() {
		if e.Name == name {
			return e
		}
	}
	t.Fatalf("entity %q not found", name)
	return nil
}

func TestParse_FooDocument(t *testing.T) {
	doc, err := gir.Parse([]byte(fixtures.FooGIR), "A.gir")
	require.NoError(t, err)

	require.Len(t, doc.Namespaces, 1)
	ns := doc.Namespaces[0]
	assert.Equal(t, "Foo", ns.Name)
	assert.Equal(t, "1.0", ns.Version)
	assert.Equal(t, "libfoo.so", ns.SharedLibrary)
	assert.Equal(t, "Foo", ns.CIdentifierPrefixes)
	assert.Equal(t, []string{"foo/foo.h"}, doc.CIncludes)
	assert.Equal(t, []string{"foo-1.0"}, doc.Packages)
	assert.Len(t, doc.Entities(), 5)

	foo := entityByName(t, doc, "Foo")
	assert.Equal(t, gir.KindClass, foo.Kind)
	assert.Equal(t, "Foo.Foo", foo.QualifiedName())
	assert.Equal(t, "FooFoo", foo.CType)
	assert.Equal(t, "FOO_TYPE", foo.GTypeName)
	assert.Equal(t, "foo_foo_get_type", foo.GetType)
	assert.Equal(t, "Base", foo.Parent)
	assert.Equal(t, []string{"Iface"}, foo.Implements)
	assert.Equal(t, []string{"foo/foo-object.h"}, foo.HeaderPaths)
	assert.True(t, foo.Registered())

	require.Len(t, foo.Properties, 2)
	bar := foo.Properties[0]
	assert.Equal(t, "bar", bar.Name)
	assert.Equal(t, "utf8", bar.Type.Name)
	assert.Equal(t, "gchar*", bar.Type.CType)
	assert.Equal(t, "rwx", bar.Flags())
	assert.Equal(t, "wX", foo.Properties[1].Flags())

	require.Len(t, foo.Signals, 1)
	changed := foo.Signals[0]
	assert.Equal(t, "changed", changed.Name)
	assert.Equal(t, "none", changed.Return.String())
	assert.Equal(t, []string{"gint", "Foo"}, changed.ParamTypes())
	assert.Equal(t, "ld", changed.Flags())

	iface := entityByName(t, doc, "Iface")
	assert.Equal(t, gir.KindInterface, iface.Kind)
	assert.Equal(t, []string{"GObject.Object"}, iface.Prerequisites)

	plain := entityByName(t, doc, "Plain")
	assert.False(t, plain.Registered())
	assert.Equal(t, []string{"foo/foo.h"}, plain.HeaderPaths, "falls back to c:include")

	color := entityByName(t, doc, "Color")
	assert.Equal(t, gir.KindEnumeration, color.Kind)
	assert.Equal(t, "G_TYPE_ENUM", color.Kind.Fundamental())
}

func TestParse_BoxedAndBitfield(t *testing.T) {
	doc, err := gir.Parse([]byte(fixtures.BarGIR), "B.gir")
	require.NoError(t, err)

	blob := entityByName(t, doc, "Blob")
	assert.Equal(t, gir.KindBoxed, blob.Kind)
	assert.Equal(t, "BarBlob", blob.GTypeName)
	assert.Equal(t, "G_TYPE_BOXED", blob.Kind.Fundamental())

	flags := entityByName(t, doc, "Flags")
	assert.Equal(t, gir.KindBitfield, flags.Kind)
	assert.Equal(t, "intern", flags.GetType)
	assert.Equal(t, "G_TYPE_FLAGS", flags.Kind.Fundamental())
}

func TestParse_MalformedDocuments(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantLine int
		contains string
	}{
		{
			name:     "mismatched end tag",
			content:  fixtures.MalformedGIR,
			wantLine: 5,
			contains: "opened on line 4",
		},
		{
			name:     "syntax error",
			content:  "<repository>\n<namespace name=Foo/>\n</repository>",
			wantLine: 2,
		},
		{
			name:     "unclosed root",
			content:  "<repository>\n<namespace name=\"Foo\">\n</namespace>\n",
			wantLine: 1,
			contains: "not closed",
		},
		{
			name:     "two roots",
			content:  "<repository/>\n<repository/>",
			wantLine: 2,
			contains: "more than one root",
		},
		{
			name:     "text outside root",
			content:  "<repository/>trailing",
			contains: "text outside",
		},
		{
			name:     "empty document",
			content:  "",
			contains: "no root element",
		},
		{
			name:     "wrong root",
			content:  "<module/>",
			wantLine: 1,
			contains: "expected <repository>",
		},
		{
			name:     "namespace without name",
			content:  "<repository>\n  <namespace version=\"1.0\"/>\n</repository>",
			wantLine: 2,
			contains: "no name attribute",
		},
		{
			name:     "class without name",
			content:  "<repository><namespace name=\"X\"><class c:type=\"XY\"/></namespace></repository>",
			wantLine: 1,
			contains: "<class> has no name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := gir.Parse([]byte(tt.content), "bad.gir")
			require.Error(t, err)
			assert.Nil(t, doc)
			assert.True(t, errors.Is(err, gircheck.ErrMalformedDocument))

			var docErr *gir.DocumentError
			require.True(t, errors.As(err, &docErr))
			assert.Equal(t, "bad.gir", docErr.FilePath)
			if tt.wantLine > 0 {
				assert.Equal(t, tt.wantLine, docErr.Line)
			}
			if tt.contains != "" {
				assert.Contains(t, err.Error(), tt.contains)
			}
		})
	}
}

func TestParse_OrderIndependence(t *testing.T) {
	content := `<repository xmlns:c="c" xmlns:glib="glib">
  <namespace name="X">
    <class glib:get-type="x_w_get_type" glib:type-name="XW" c:type="XW" name="W" parent="V">
      <glib:signal name="poke" action="1"><return-value><type name="gboolean" c:type="gboolean"/></return-value></glib:signal>
      <field name="a"/>
      <property construct-only="1" name="p" readable="0"><type c:type="gint" name="gint"/></property>
      <field name="b"/>
      <implements name="I"/>
      <property name="q"><array c:type="gchar**"><type name="utf8"/></array></property>
    </class>
  </namespace>
</repository>`

	doc, err := gir.Parse([]byte(content), "x.gir")
	require.NoError(t, err)

	w := entityByName(t, doc, "W")
	assert.Equal(t, "XW", w.GTypeName)
	assert.Equal(t, "V", w.Parent)
	assert.Equal(t, []string{"I"}, w.Implements)
	require.Len(t, w.Properties, 2)
	assert.Equal(t, "X", w.Properties[0].Flags())
	assert.Equal(t, "utf8[]", w.Properties[1].Type.String())
	assert.Equal(t, "gchar**", w.Properties[1].Type.CType)
	require.Len(t, w.Signals, 1)
	assert.Equal(t, "a", w.Signals[0].Flags())
	assert.Equal(t, "gboolean", w.Signals[0].Return.String())
	assert.Empty(t, w.Signals[0].ParamTypes())
	assert.Empty(t, w.HeaderPaths)
}

func TestParse_NamespaceCount(t *testing.T) {
	t.Run("zero namespaces", func(t *testing.T) {
		doc, err := gir.Parse([]byte(`<repository><include name="GLib"/></repository>`), "z.gir")
		require.NoError(t, err)
		assert.Empty(t, doc.Namespaces)
		assert.Empty(t, doc.Entities())
	})

	t.Run("two namespaces", func(t *testing.T) {
		content := `<repository>
  <namespace name="A"><record name="R"/></namespace>
  <namespace name="B"><record name="R"/><union name="U"/></namespace>
</repository>`
		doc, err := gir.Parse([]byte(content), "m.gir")
		require.NoError(t, err)
		require.Len(t, doc.Namespaces, 2)

		var names []string
		for _, e := range doc.Entities() {
			names = append(names, e.QualifiedName())
		}
		assert.Equal(t, []string{"A.R", "B.R", "B.U"}, names)
		assert.Equal(t, 3, doc.Lookup().Len())
	})
}

func TestDocument_Unresolved(t *testing.T) {
	doc, err := gir.Parse([]byte(fixtures.FooGIR), "A.gir")
	require.NoError(t, err)

	base, ok := doc.Lookup().Resolve("Base", "Foo")
	require.True(t, ok)
	assert.Equal(t, "FooBase", base.GTypeName)

	_, ok = doc.Lookup().Resolve("Foo.Iface", "Other")
	assert.True(t, ok, "qualified references ignore the current namespace")

	unresolved := doc.Unresolved()
	require.Len(t, unresolved, 2)
	assert.Equal(t, "Foo.Base", unresolved[0].Entity)
	assert.Equal(t, "parent", unresolved[0].Relation)
	assert.Equal(t, "GObject.Object", unresolved[0].Target)
	assert.Equal(t, "prerequisite", unresolved[1].Relation)
	assert.Contains(t, unresolved[0].Error(), "does not resolve")
}

func TestDocument_RemoveEntity(t *testing.T) {
	doc, err := gir.Parse([]byte(fixtures.FooGIR), "A.gir")
	require.NoError(t, err)

	foo := entityByName(t, doc, "Foo")
	require.True(t, doc.RemoveEntity(foo))
	assert.False(t, doc.RemoveEntity(foo), "second removal is a no-op")
	assert.Len(t, doc.Entities(), 4)

	_, ok := doc.Lookup().Resolve("Foo", "Foo")
	assert.True(t, ok, "removed entities stay resolvable")

	out, err := gir.Encode(doc)
	require.NoError(t, err)
	assert.NotContains(t, string(out), "FOO_TYPE")
	assert.NotContains(t, string(out), `name="bar"`)
	assert.NotContains(t, string(out), "changed")

	reparsed, err := gir.Parse(out, "A.gir")
	require.NoError(t, err)
	assert.Len(t, reparsed.Entities(), 4)
}
