package infotable

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFundamentalLookups(t *testing.T) {
	f, ok := FundamentalByCType("gint")
	assert.True(t, ok)
	assert.Equal(t, "G_TYPE_INT", f.GetType, "first declaration wins")

	f, ok = FundamentalByCType("gchar*")
	assert.True(t, ok)
	assert.Equal(t, "G_TYPE_STRING", f.GetType)

	f, ok = FundamentalByGType("GVariant")
	assert.True(t, ok)
	assert.Equal(t, "G_TYPE_VARIANT", f.GetType)

	_, ok = FundamentalByGType("FooFoo")
	assert.False(t, ok)
}

func TestRenderGetType(t *testing.T) {
	tests := []struct {
		name     string
		getType  string
		gtype    string
		fallback string
		want     string
	}{
		{"function", "foo_foo_get_type", "FOO_TYPE", "G_TYPE_OBJECT", "foo_foo_get_type()"},
		{"macro kept", "G_TYPE_STRV", "GStrv", "G_TYPE_BOXED", "G_TYPE_STRV"},
		{"intern known", "intern", "GParam", "G_TYPE_OBJECT", "G_TYPE_PARAM"},
		{"intern unknown", "intern", "BarFlags", "G_TYPE_FLAGS", "G_TYPE_FLAGS"},
		{"absent", "", "X", "G_TYPE_BOXED", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RenderGetType(tt.getType, tt.gtype, tt.fallback))
		})
	}
}
