package rules

import "github.com/lukeod/xcomidl/types"

// stringRule covers string/wstring: always complex, owning form differs
// from the raw C-string-like layout, grounded on Rules.cpp's
// StringTypeRules.
type stringRule struct {
	name, rawName string
}

func newStringRule(t *types.Type) Rule {
	switch t.Kind {
	case types.KindString:
		return &stringRule{name: "xcom.String", rawName: "xcom.Char*"}
	case types.KindWString:
		return &stringRule{name: "xcom.WString", rawName: "xcom.WChar*"}
	default:
		panic("xcomidl/rules: newStringRule called with non-string kind")
	}
}

func (r *stringRule) IsComplex() bool       { return true }
func (r *stringRule) NormalType() string    { return r.name }
func (r *stringRule) RawType() string       { return r.rawName }
func (r *stringRule) ReturnType() string    { return r.name }
func (r *stringRule) RawReturnType() string { return r.rawName }

func (r *stringRule) MakeParam(mode types.PassMode, name string) string {
	switch mode {
	case types.ModeIn:
		return "const " + r.rawName + " " + name
	case types.ModeOut, types.ModeInOut:
		return r.name + "& " + name
	default:
		return invalid
	}
}

func (r *stringRule) AsParam(mode types.PassMode, name string) string {
	switch mode {
	case types.ModeIn:
		return name
	case types.ModeOut, types.ModeInOut:
		return "*(" + r.name + "*)" + name
	default:
		return invalid
	}
}

func (r *stringRule) MakeRawParam(mode types.PassMode, name string) string {
	switch mode {
	case types.ModeIn:
		return "const " + r.rawName + " " + name
	case types.ModeOut, types.ModeInOut:
		return r.rawName + "* " + name
	default:
		return invalid
	}
}

func (r *stringRule) AsRawParam(mode types.PassMode, name string) string {
	switch mode {
	case types.ModeIn:
		return name
	case types.ModeOut, types.ModeInOut:
		return "(" + r.rawName + "*)&" + name
	default:
		return invalid
	}
}
