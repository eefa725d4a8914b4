package exclude

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renesugar/gircheck/internal/gir"
	"github.com/renesugar/gircheck/internal/testing/fixtures"
	"github.com/renesugar/gircheck/pkg/gircheck"
)

func TestRegistry_Excluded(t *testing.T) {
	entity := &gir.TypeEntity{
		Namespace:   "Foo",
		Name:        "Foo",
		GTypeName:   "FOO_TYPE",
		HeaderPaths: []string{"foo/foo-object.h"},
	}

	tests := []struct {
		name       string
		reg        *Registry
		wantReason Reason
		wantOK     bool
	}{
		{"empty registry", Empty(), "", false},
		{"nil registry", nil, "", false},
		{"registered name", NewRegistry([]string{"Foo.Foo"}, nil, nil), ReasonRegistered, true},
		{"bare name is not a registered name", NewRegistry([]string{"Foo"}, nil, nil), "", false},
		{"gtype", NewRegistry(nil, []string{"FOO_TYPE"}, nil), ReasonGType, true},
		{"gtype is exact match", NewRegistry(nil, []string{"foo_type", "FOO_TYPE "}, nil), "", false},
		{"header", NewRegistry(nil, nil, []string{"foo/foo-object.h"}), ReasonHeader, true},
		{"header basename does not match", NewRegistry(nil, nil, []string{"foo-object.h"}), "", false},
		{"registered wins", NewRegistry([]string{"Foo.Foo"}, []string{"FOO_TYPE"}, nil), ReasonRegistered, true},
		{"unknown names", NewRegistry([]string{"Nope.Nope"}, []string{"NOPE"}, []string{"nope.h"}), "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reason, ok := tt.reg.Excluded(entity)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantReason, reason)
		})
	}
}

func TestRegistry_UnregisteredEntityIgnoresGTypeSet(t *testing.T) {
	reg := NewRegistry(nil, []string{""}, nil)
	_, ok := reg.Excluded(&gir.TypeEntity{Namespace: "X", Name: "Plain"})
	assert.False(t, ok)
}

func TestLoad(t *testing.T) {
	mfs := fixtures.NewCorpusBuilder("/corpus").
		AddLines("registered.txt", "# registered types", "Foo.Iface").
		AddLines("gtypes.txt", "FOO_TYPE", "", "BAR_TYPE").
		Build()

	reg, err := Load(mfs, Sources{
		Registered: "/corpus/registered.txt",
		GTypes:     "/corpus/gtypes.txt",
	})
	require.NoError(t, err)

	assert.Equal(t, map[Reason]int{ReasonRegistered: 1, ReasonGType: 2, ReasonHeader: 0}, reg.Sizes())
	assert.True(t, reg.ExcludesGType("BAR_TYPE"))
	assert.False(t, reg.IsEmpty())
}

func TestLoad_NoSources(t *testing.T) {
	reg, err := Load(fixtures.NewCorpusBuilder("/corpus").Build(), Sources{})
	require.NoError(t, err)
	assert.True(t, reg.IsEmpty())
}

func TestLoad_MissingList(t *testing.T) {
	mfs := fixtures.NewCorpusBuilder("/corpus").Build()

	_, err := Load(mfs, Sources{Headers: "/corpus/headers.txt"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, gircheck.ErrMissingInput))
	assert.Contains(t, err.Error(), "--excludeheaders")
}
