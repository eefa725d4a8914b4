package exclude

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renesugar/gircheck/internal/gir"
	"github.com/renesugar/gircheck/internal/testing/fixtures"
)

func parseFoo(t *testing.T) *gir.Document {
	t.Helper()
	doc, err := gir.Parse([]byte(fixtures.FooGIR), "A.gir")
	require.NoError(t, err)
	return doc
}

func names(doc *gir.Document) []string {
	var out []string
	for _, e := range doc.Entities() {
		out = append(out, e.Name)
	}
	return out
}

func TestFilter_EmptyRegistryIsIdentity(t *testing.T) {
	doc := parseFoo(t)
	before, err := gir.Encode(doc)
	require.NoError(t, err)

	stats := Filter(doc, Empty())
	assert.Equal(t, 0, stats.Total())

	after, err := gir.Encode(doc)
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after))
}

func TestFilter_RemovesWholeSubtrees(t *testing.T) {
	doc := parseFoo(t)
	reg := NewRegistry([]string{"Foo.Iface"}, []string{"FOO_TYPE"}, []string{"foo/foo.h"})

	stats := Filter(doc, reg)

	// Base, Plain and Color come from foo/foo.h via c:include
	assert.Equal(t, Stats{ReasonRegistered: 1, ReasonGType: 1, ReasonHeader: 3}, stats)
	assert.Equal(t, 5, stats.Total())
	assert.Empty(t, names(doc))

	out, err := gir.Encode(doc)
	require.NoError(t, err)
	for _, gone := range []string{"FOO_TYPE", "<property", "glib:signal", "FooIface", "FooPlain"} {
		assert.NotContains(t, string(out), gone)
	}
	assert.Contains(t, string(out), `<namespace name="Foo"`)
}

func TestFilter_GTypeOnly(t *testing.T) {
	doc := parseFoo(t)

	stats := Filter(doc, NewRegistry(nil, []string{"FOO_TYPE"}, nil))

	assert.Equal(t, Stats{ReasonGType: 1}, stats)
	assert.Equal(t, []string{"Base", "Iface", "Plain", "Color"}, names(doc))

	_, ok := doc.Lookup().Resolve("Foo", "Foo")
	assert.True(t, ok)
}

func TestStats_Add(t *testing.T) {
	total := Stats{}
	total.Add(Stats{ReasonGType: 2})
	total.Add(Stats{ReasonGType: 1, ReasonHeader: 4})
	assert.Equal(t, Stats{ReasonGType: 3, ReasonHeader: 4}, total)
	assert.Equal(t, 7, total.Total())
}
