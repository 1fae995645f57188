package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lukeod/xcomidl/types"
)

func TestBasicTypesAreNeverComplex(t *testing.T) {
	e := New()
	for _, k := range []types.Kind{types.KindBool, types.KindInt, types.KindLong, types.KindFloat, types.KindDouble, types.KindChar, types.KindWChar, types.KindOctet, types.KindShort, types.KindVoid} {
		r := e.For(&types.Type{Kind: k})
		assert.False(t, r.IsComplex(), k.String())
	}
}

func TestEnumIsNotComplex(t *testing.T) {
	e := New()
	r := e.For(&types.Type{Kind: types.KindEnum, Name: "m.E", Elements: []string{"A"}})
	assert.False(t, r.IsComplex())
	assert.Equal(t, "xcom.Int", r.NormalType())
}

func TestStringIsComplex(t *testing.T) {
	e := New()
	assert.True(t, e.For(&types.Type{Kind: types.KindString}).IsComplex())
	assert.True(t, e.For(&types.Type{Kind: types.KindWString}).IsComplex())
}

func TestArrayOfStringIsComplexArrayOfIntIsNot(t *testing.T) {
	e := New()
	strType := &types.Type{Kind: types.KindString}
	intType := &types.Type{Kind: types.KindInt}

	complexArray := &types.Type{Kind: types.KindArray, Name: "m.S", Element: strType, Size: 4}
	simpleArray := &types.Type{Kind: types.KindArray, Name: "m.T", Element: intType, Size: 4}

	assert.True(t, e.For(complexArray).IsComplex())
	assert.False(t, e.For(simpleArray).IsComplex())
}

func TestSequenceIsAlwaysComplex(t *testing.T) {
	e := New()
	seq := &types.Type{Kind: types.KindSequence, Name: "m.S", Element: &types.Type{Kind: types.KindInt}}
	assert.True(t, e.For(seq).IsComplex())
}

func TestStructComplexityIsTransitive(t *testing.T) {
	e := New()
	intField := types.Member{Name: "n", Type: &types.Type{Kind: types.KindInt}}
	strField := types.Member{Name: "s", Type: &types.Type{Kind: types.KindString}}

	simple := &types.Type{Kind: types.KindStruct, Name: "m.Simple", Members: []types.Member{intField}}
	complex_ := &types.Type{Kind: types.KindStruct, Name: "m.Complex", Members: []types.Member{intField, strField}}

	assert.False(t, e.For(simple).IsComplex())
	assert.True(t, e.For(complex_).IsComplex())
}

func TestNestedStructComplexityPropagates(t *testing.T) {
	e := New()
	inner := &types.Type{Kind: types.KindStruct, Name: "m.Inner", Members: []types.Member{
		{Name: "s", Type: &types.Type{Kind: types.KindString}},
	}}
	outer := &types.Type{Kind: types.KindStruct, Name: "m.Outer", Members: []types.Member{
		{Name: "inner", Type: inner},
	}}
	assert.True(t, e.For(outer).IsComplex())
}

func TestInterfaceIsAlwaysComplex(t *testing.T) {
	e := New()
	itf := &types.Type{Kind: types.KindInterface, Name: "m.I", GUID: "01234567-89ab-cdef-0123-456789abcdef"}
	r := e.For(itf)
	assert.True(t, r.IsComplex())
	assert.Equal(t, "m.IRaw*", r.RawType())
}

func TestDelegateIsAlwaysComplex(t *testing.T) {
	e := New()
	del := &types.Type{Kind: types.KindDelegate, Name: "m.D"}
	assert.True(t, e.For(del).IsComplex())
}

func TestEngineCachesByIdentity(t *testing.T) {
	e := New()
	tp := &types.Type{Kind: types.KindInt}
	first := e.For(tp)
	second := e.For(tp)
	require.Same(t, first, second)
}

func TestBasicMakeParamRenderings(t *testing.T) {
	e := New()
	r := e.For(&types.Type{Kind: types.KindInt})
	assert.Equal(t, "xcom.Int n", r.MakeParam(types.ModeIn, "n"))
	assert.Equal(t, "xcom.Int& n", r.MakeParam(types.ModeOut, "n"))
	assert.Equal(t, "xcom.Int* n", r.MakeRawParam(types.ModeOut, "n"))
}

func TestStringMakeParamRenderings(t *testing.T) {
	e := New()
	r := e.For(&types.Type{Kind: types.KindString})
	assert.Equal(t, "const xcom.Char* s", r.MakeParam(types.ModeIn, "s"))
	assert.Equal(t, "xcom.String& s", r.MakeParam(types.ModeOut, "s"))
}
