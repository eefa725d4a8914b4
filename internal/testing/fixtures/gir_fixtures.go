package fixtures

import (
	"sort"
	"strings"

	"github.com/renesugar/gircheck/internal/files/filesystem"
)

// FooGIR declares class Foo (FOO_TYPE) with property bar and signal changed,
// interface Iface, an unregistered record, and a class whose parent lives in
// another repository.
const FooGIR = `<?xml version="1.0"?>
<!-- generated for tests -->
<repository version="1.2"
            xmlns="http://www.gtk.org/introspection/core/1.0"
            xmlns:c="http://www.gtk.org/introspection/c/1.0"
            xmlns:glib="http://www.gtk.org/introspection/glib/1.0">
  <include name="GObject" version="2.0"/>
  <package name="foo-1.0"/>
  <c:include name="foo/foo.h"/>
  <namespace name="Foo" version="1.0" shared-library="libfoo.so" c:identifier-prefixes="Foo" c:symbol-prefixes="foo">
    <class name="Foo" c:type="FooFoo" parent="Base" glib:type-name="FOO_TYPE" glib:get-type="foo_foo_get_type">
      <implements name="Iface"/>
      <source-position filename="foo/foo-object.h" line="12"/>
      <field name="parent_instance"><type name="Base" c:type="FooBase"/></field>
      <property name="bar" writable="1" construct="1" transfer-ownership="none">
        <type name="utf8" c:type="gchar*"/>
      </property>
      <glib:signal name="changed" when="last" detailed="1">
        <return-value transfer-ownership="none"><type name="none" c:type="void"/></return-value>
        <parameters>
          <parameter name="what" transfer-ownership="none"><type name="gint" c:type="gint"/></parameter>
          <parameter name="who" transfer-ownership="none"><type name="Foo" c:type="FooFoo*"/></parameter>
        </parameters>
      </glib:signal>
      <property name="count" readable="0" writable="1" construct-only="1">
        <type name="guint" c:type="guint"/>
      </property>
    </class>
    <class name="Base" c:type="FooBase" parent="GObject.Object" glib:type-name="FooBase" glib:get-type="foo_base_get_type">
    </class>
    <interface name="Iface" c:type="FooIface" glib:type-name="FooIface" glib:get-type="foo_iface_get_type">
      <prerequisite name="GObject.Object"/>
      <property name="label" writable="1"><type name="utf8" c:type="gchar*"/></property>
    </interface>
    <record name="Plain" c:type="FooPlain">
      <field name="x"><type name="gint" c:type="gint"/></field>
    </record>
    <enumeration name="Color" c:type="FooColor" glib:type-name="FooColor" glib:get-type="foo_color_get_type">
      <member name="red" value="0" c:identifier="FOO_COLOR_RED"/>
    </enumeration>
  </namespace>
</repository>
`

// BarGIR declares class Bar (BAR_TYPE), a boxed type and a bitfield.
const BarGIR = `<?xml version="1.0"?>
<repository version="1.2" xmlns="http://www.gtk.org/introspection/core/1.0" xmlns:c="http://www.gtk.org/introspection/c/1.0" xmlns:glib="http://www.gtk.org/introspection/glib/1.0">
  <c:include name="bar/bar.h"/>
  <namespace name="Bar" version="1.0">
    <class name="Bar" c:type="BarBar" parent="Missing" glib:type-name="BAR_TYPE" glib:get-type="bar_bar_get_type">
      <property name="size" writable="1"><type name="gint" c:type="gint"/></property>
    </class>
    <glib:boxed glib:name="Blob" c:type="BarBlob" glib:type-name="BarBlob" glib:get-type="bar_blob_get_type"/>
    <bitfield name="Flags" c:type="BarFlags" glib:type-name="BarFlags" glib:get-type="intern"/>
  </namespace>
</repository>
`

// MalformedGIR is not well-formed: <class> is closed by </namespace>.
const MalformedGIR = `<?xml version="1.0"?>
<repository xmlns="http://www.gtk.org/introspection/core/1.0">
  <namespace name="Broken" version="1.0">
    <class name="Oops">
  </namespace>
</repository>
`

// CorpusBuilder builds an in-memory corpus of GIR files, exclusion lists
// and a file list.
//
// Example usage:
//
//	fs := NewCorpusBuilder("/corpus").
//	    AddGIR("A.gir", FooGIR).
//	    AddGIR("B.gir", MalformedGIR).
//	    AddLines("exclude-gtypes.txt", "FOO_TYPE").
//	    WithFileList("files.txt").
//	    Build()
type CorpusBuilder struct {
	root     string
	files    map[string]string
	girs     []string
	fileList string
}

// NewCorpusBuilder creates an empty corpus rooted at root.
func NewCorpusBuilder(root string) *CorpusBuilder {
	return &CorpusBuilder{root: root, files: make(map[string]string)}
}

// AddGIR adds a GIR document and appends it to the file list.
func (b *CorpusBuilder) AddGIR(name, content string) *CorpusBuilder {
	b.files[name] = content
	b.girs = append(b.girs, b.Path(name))
	return b
}

// AddLines adds a newline-delimited list file.
func (b *CorpusBuilder) AddLines(name string, lines ...string) *CorpusBuilder {
	b.files[name] = strings.Join(lines, "\n") + "\n"
	return b
}

// AddFile adds an arbitrary file.
func (b *CorpusBuilder) AddFile(name, content string) *CorpusBuilder {
	b.files[name] = content
	return b
}

// WithFileList writes the GIR paths added so far to name.
func (b *CorpusBuilder) WithFileList(name string) *CorpusBuilder {
	b.fileList = name
	return b
}

// Path returns the absolute path of name inside the corpus.
func (b *CorpusBuilder) Path(name string) string {
	return strings.TrimSuffix(b.root, "/") + "/" + name
}

// GIRPaths returns the GIR paths in insertion order.
func (b *CorpusBuilder) GIRPaths() []string {
	return append([]string(nil), b.girs...)
}

// Build creates the in-memory filesystem.
func (b *CorpusBuilder) Build() *filesystem.MemoryFileSystem {
	mfs := filesystem.NewMemoryFileSystem(b.root)

	names := make([]string, 0, len(b.files))
	for name := range b.files {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		mfs.AddFile(name, b.files[name])
	}

	if b.fileList != "" {
		mfs.AddFile(b.fileList, strings.Join(b.girs, "\n")+"\n")
	}
	return mfs
}
