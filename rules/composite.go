package rules

import "github.com/lukeod/xcomidl/types"

// compositeRule covers Struct, Exception, Array and Sequence: the raw
// form's name and the complexity computation both depend on the
// element/member types, so this rule holds a back-reference to the
// Engine to query them recursively, grounded on Rules.cpp's
// StructTypeRules.
type compositeRule struct {
	t    *types.Type
	e    *Engine
	name string
}

func newCompositeRule(t *types.Type, e *Engine) Rule {
	return &compositeRule{t: t, e: e, name: t.Name}
}

// IsComplex recurses through the engine itself: a struct/exception is
// complex iff at least one member is complex (spec.md §8's Complexity
// transitivity property), an array is complex iff its element is, and
// a sequence is always complex (it owns a variable-length buffer across
// the ABI boundary). The recursion ends at leaf types because the
// grammar cannot produce a self-referential composite; the result is
// not memoised (spec.md §4.6).
func (r *compositeRule) IsComplex() bool {
	switch r.t.Kind {
	case types.KindStruct, types.KindException:
		for _, m := range r.t.Members {
			if r.e.For(m.Type).IsComplex() {
				return true
			}
		}
		return false
	case types.KindArray:
		return r.e.For(r.t.Element).IsComplex()
	case types.KindSequence:
		return true
	default:
		panic("xcomidl/rules: compositeRule used with unsupported kind")
	}
}

func (r *compositeRule) RawType() string {
	switch r.t.Kind {
	case types.KindStruct:
		if r.IsComplex() {
			return r.name + "Data"
		}
		return r.name
	case types.KindArray:
		if r.IsComplex() {
			return r.name + ".RawType"
		}
		return r.name
	case types.KindSequence:
		return r.name + ".RawType"
	case types.KindException:
		return r.name + "Data"
	default:
		return invalid
	}
}

func (r *compositeRule) NormalType() string    { return r.name }
func (r *compositeRule) ReturnType() string    { return r.name }
func (r *compositeRule) RawReturnType() string { return r.RawType() }

func (r *compositeRule) MakeParam(mode types.PassMode, name string) string {
	switch mode {
	case types.ModeIn:
		return r.name + " const& " + name
	case types.ModeOut, types.ModeInOut:
		return r.name + "& " + name
	default:
		return invalid
	}
}

func (r *compositeRule) AsParam(mode types.PassMode, name string) string {
	switch mode {
	case types.ModeIn, types.ModeOut, types.ModeInOut:
		return "*(" + r.name + "*)" + name
	default:
		return invalid
	}
}

func (r *compositeRule) MakeRawParam(mode types.PassMode, name string) string {
	raw := r.RawType()
	switch mode {
	case types.ModeIn:
		return raw + " const* " + name
	case types.ModeOut, types.ModeInOut:
		return raw + "* " + name
	default:
		return invalid
	}
}

func (r *compositeRule) AsRawParam(mode types.PassMode, name string) string {
	raw := r.RawType()
	switch mode {
	case types.ModeIn:
		return "(" + raw + " const*)&" + name
	case types.ModeOut, types.ModeInOut:
		return "(" + raw + "*)&" + name
	default:
		return invalid
	}
}
