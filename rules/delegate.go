package rules

import "github.com/lukeod/xcomidl/types"

// delegateRule covers Delegate: spec.md §4.6 lists delegates among the
// kinds that are unconditionally complex (they cross the ABI as a
// refcounted callback, like an interface), unlike struct/array whose
// complexity depends on their element/member types. Grounded on
// Rules.cpp's StructTypeRules (which the source also uses for
// Delegate), adjusted per spec.md's explicit complexity rule.
type delegateRule struct {
	name string
}

func newDelegateRule(t *types.Type) Rule {
	return &delegateRule{name: t.Name}
}

func (r *delegateRule) IsComplex() bool       { return true }
func (r *delegateRule) NormalType() string    { return r.name }
func (r *delegateRule) RawType() string       { return r.name }
func (r *delegateRule) ReturnType() string    { return r.name }
func (r *delegateRule) RawReturnType() string { return r.name }

func (r *delegateRule) MakeParam(mode types.PassMode, name string) string {
	switch mode {
	case types.ModeIn:
		return r.name + " const& " + name
	case types.ModeOut, types.ModeInOut:
		return r.name + "& " + name
	default:
		return invalid
	}
}

func (r *delegateRule) AsParam(mode types.PassMode, name string) string {
	switch mode {
	case types.ModeIn, types.ModeOut, types.ModeInOut:
		return "*(" + r.name + "*)" + name
	default:
		return invalid
	}
}

func (r *delegateRule) MakeRawParam(mode types.PassMode, name string) string {
	switch mode {
	case types.ModeIn:
		return r.name + " const* " + name
	case types.ModeOut, types.ModeInOut:
		return r.name + "* " + name
	default:
		return invalid
	}
}

func (r *delegateRule) AsRawParam(mode types.PassMode, name string) string {
	switch mode {
	case types.ModeIn:
		return "(" + r.name + " const*)&" + name
	case types.ModeOut, types.ModeInOut:
		return "(" + r.name + "*)&" + name
	default:
		return invalid
	}
}
