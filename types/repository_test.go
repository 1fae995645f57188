package types

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRepositoryPrePopulatesBuiltins(t *testing.T) {
	r := NewRepository()
	all := r.All()
	require.Len(t, all, len(AllBuiltinKinds))
	for i, k := range AllBuiltinKinds {
		assert.Equal(t, k, all[i].Kind)
		assert.Empty(t, all[i].Name)
	}
}

func TestRepositoryFindBuiltinByKeyword(t *testing.T) {
	r := NewRepository()
	for kw, kind := range BuiltinKeyword {
		found := r.Find(kw)
		require.NotNilf(t, found, "keyword %q", kw)
		assert.Equal(t, kind, found.Kind)
	}
}

func TestRepositoryFindUnknownReturnsNil(t *testing.T) {
	r := NewRepository()
	assert.Nil(t, r.Find("m.DoesNotExist"))
}

func TestRepositoryAddAndFindUserType(t *testing.T) {
	r := NewRepository()
	et := &Type{Kind: KindEnum, Name: "m.E", Elements: []string{"A", "B"}}
	r.Add(et)

	found := r.Find("m.E")
	require.NotNil(t, found)
	if diff := cmp.Diff(et, found); diff != "" {
		t.Fatalf("Find returned a different descriptor (-want +got):\n%s", diff)
	}
	assert.True(t, r.HasName("m.E"))
}

func TestRepositoryInsertionOrderIsStable(t *testing.T) {
	r := NewRepository()
	names := []string{"m.A", "m.B", "m.C"}
	for _, n := range names {
		r.Add(&Type{Kind: KindEnum, Name: n, Elements: []string{"X"}})
	}
	all := r.All()
	got := make([]string, 0, len(names))
	for _, t := range all[len(AllBuiltinKinds):] {
		got = append(got, t.Name)
	}
	assert.Equal(t, names, got)
}

func TestQualifiedName(t *testing.T) {
	assert.Equal(t, "E", QualifiedName(nil, "E"))
	assert.Equal(t, "a.b.E", QualifiedName([]string{"a", "b"}, "E"))
}
