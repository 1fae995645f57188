package rules

import "github.com/lukeod/xcomidl/types"

// basicRule covers built-in numerics, bool, char/wchar, void and enums —
// always non-complex, owning and raw forms coincide, grounded on
// Rules.cpp's BasicTypeRules.
type basicRule struct {
	name string
}

func basicName(t *types.Type) string {
	switch t.Kind {
	case types.KindOctet:
		return "xcom.Octet"
	case types.KindBool:
		return "xcom.Bool"
	case types.KindChar:
		return "xcom.Char"
	case types.KindWChar:
		return "xcom.WChar"
	case types.KindShort:
		return "xcom.Short"
	case types.KindInt:
		return "xcom.Int"
	case types.KindLong:
		return "xcom.Long"
	case types.KindFloat:
		return "xcom.Float"
	case types.KindDouble:
		return "xcom.Double"
	case types.KindEnum:
		return "xcom.Int"
	case types.KindVoid:
		return "void"
	default:
		return invalid
	}
}

func newBasicRule(t *types.Type) Rule {
	return &basicRule{name: basicName(t)}
}

func (r *basicRule) IsComplex() bool     { return false }
func (r *basicRule) NormalType() string  { return r.name }
func (r *basicRule) RawType() string     { return r.name }
func (r *basicRule) ReturnType() string  { return r.name }
func (r *basicRule) RawReturnType() string { return r.name }

func (r *basicRule) MakeParam(mode types.PassMode, name string) string {
	switch mode {
	case types.ModeIn:
		return r.name + " " + name
	case types.ModeOut, types.ModeInOut:
		return r.name + "& " + name
	default:
		return invalid
	}
}

func (r *basicRule) AsParam(mode types.PassMode, name string) string {
	switch mode {
	case types.ModeIn:
		return name
	case types.ModeOut, types.ModeInOut:
		return "*" + name
	default:
		return invalid
	}
}

func (r *basicRule) MakeRawParam(mode types.PassMode, name string) string {
	switch mode {
	case types.ModeIn:
		return r.name + " " + name
	case types.ModeOut, types.ModeInOut:
		return r.name + "* " + name
	default:
		return invalid
	}
}

func (r *basicRule) AsRawParam(mode types.PassMode, name string) string {
	switch mode {
	case types.ModeIn:
		return name
	case types.ModeOut, types.ModeInOut:
		return "&" + name
	default:
		return invalid
	}
}

// anyRule covers the `any` built-in. Unlike the other basic kinds, `any`
// is complex (it carries an owned payload across the ABI boundary), so
// it gets its own small rule instead of sharing basicRule.
type anyRule struct{}

func newAnyRule(*types.Type) Rule { return &anyRule{} }

func (r *anyRule) IsComplex() bool       { return true }
func (r *anyRule) NormalType() string    { return "xcom.Any" }
func (r *anyRule) RawType() string       { return "xcom.AnyData" }
func (r *anyRule) ReturnType() string    { return "xcom.Any" }
func (r *anyRule) RawReturnType() string { return "xcom.AnyData" }

func (r *anyRule) MakeParam(mode types.PassMode, name string) string {
	switch mode {
	case types.ModeIn:
		return "const xcom.Any& " + name
	case types.ModeOut, types.ModeInOut:
		return "xcom.Any& " + name
	default:
		return invalid
	}
}

func (r *anyRule) AsParam(mode types.PassMode, name string) string {
	switch mode {
	case types.ModeIn:
		return name
	case types.ModeOut, types.ModeInOut:
		return "*(xcom.Any*)" + name
	default:
		return invalid
	}
}

func (r *anyRule) MakeRawParam(mode types.PassMode, name string) string {
	switch mode {
	case types.ModeIn:
		return "const xcom.AnyData " + name
	case types.ModeOut, types.ModeInOut:
		return "xcom.AnyData* " + name
	default:
		return invalid
	}
}

func (r *anyRule) AsRawParam(mode types.PassMode, name string) string {
	switch mode {
	case types.ModeIn:
		return name
	case types.ModeOut, types.ModeInOut:
		return "&" + name
	default:
		return invalid
	}
}
