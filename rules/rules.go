// Package rules implements the ABI-rule engine of spec.md §4.6: for any
// type descriptor it computes the dual representation (owning/raw
// forms, parameter and return renderings, complexity) that a downstream
// code emitter would use. Grounded on RangelReale/xcomidl's
// cppgen/Rules.cpp and cppgen/RuleBase.cpp, re-expressed as a small
// table of per-kind decoration functions per spec.md §9's guidance,
// mirroring how the teacher keeps a Symbols table mapping token kind to
// behavior instead of a class hierarchy.
package rules

import (
	"fmt"

	"github.com/lukeod/xcomidl/types"
)

// Rule exposes the queries spec.md §4.6 lists for a single type. Values
// are plain strings intended for a textual emitter; their meaning is
// language-agnostic from this package's point of view.
type Rule interface {
	IsComplex() bool
	NormalType() string
	RawType() string
	MakeParam(mode types.PassMode, name string) string
	AsParam(mode types.PassMode, name string) string
	MakeRawParam(mode types.PassMode, name string) string
	AsRawParam(mode types.PassMode, name string) string
	ReturnType() string
	RawReturnType() string
}

// Engine caches one Rule per distinct source descriptor (identity by
// pointer), so repeated lookups are idempotent. Composite rules query
// the engine for their members' rules when computing complexity; that
// recursion ends at leaf types because the IDL grammar cannot produce a
// self-referential composite (spec.md §4.6).
type Engine struct {
	cache map[*types.Type]Rule
}

// New returns an Engine with an empty cache.
func New() *Engine {
	return &Engine{cache: make(map[*types.Type]Rule)}
}

// For returns the Rule for t, building and caching it on first use.
func (e *Engine) For(t *types.Type) Rule {
	if r, ok := e.cache[t]; ok {
		return r
	}
	// build does not recurse; the rule is cached once built. Complexity
	// is not cached: a composite's IsComplex asks the engine again on
	// every call, so a self-referential composite would not terminate.
	// The IDL grammar cannot produce one (spec.md §4.6).
	r := e.build(t)
	e.cache[t] = r
	return r
}

func (e *Engine) build(t *types.Type) Rule {
	switch t.Kind {
	case types.KindVoid, types.KindBool, types.KindOctet, types.KindShort,
		types.KindInt, types.KindLong, types.KindFloat, types.KindDouble,
		types.KindChar, types.KindWChar, types.KindEnum:
		return newBasicRule(t)
	case types.KindString, types.KindWString:
		return newStringRule(t)
	case types.KindAny:
		return newAnyRule(t)
	case types.KindStruct, types.KindArray, types.KindSequence, types.KindException:
		return newCompositeRule(t, e)
	case types.KindInterface:
		return newInterfaceRule(t)
	case types.KindDelegate:
		return newDelegateRule(t)
	default:
		panic(fmt.Sprintf("xcomidl/rules: unhandled type kind %v", t.Kind))
	}
}

const invalid = "<<invalid>>"
