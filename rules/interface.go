package rules

import "github.com/lukeod/xcomidl/types"

// interfaceRule covers Interface: always complex (a refcounted vtable
// pointer crossing the ABI needs detach/adopt), grounded on Rules.cpp's
// InterfaceRules.
type interfaceRule struct {
	name, rawName string
}

func newInterfaceRule(t *types.Type) Rule {
	name := t.Name
	return &interfaceRule{name: name, rawName: name + "Raw*"}
}

func (r *interfaceRule) IsComplex() bool       { return true }
func (r *interfaceRule) NormalType() string    { return r.name }
func (r *interfaceRule) RawType() string       { return r.rawName }
func (r *interfaceRule) ReturnType() string    { return r.name }
func (r *interfaceRule) RawReturnType() string { return r.rawName }

func (r *interfaceRule) MakeParam(mode types.PassMode, name string) string {
	switch mode {
	case types.ModeIn:
		return r.name + " const& " + name
	case types.ModeOut, types.ModeInOut:
		return r.name + "& " + name
	default:
		return invalid
	}
}

func (r *interfaceRule) AsParam(mode types.PassMode, name string) string {
	switch mode {
	case types.ModeIn:
		return "*(" + r.name + "*)&" + name
	case types.ModeOut, types.ModeInOut:
		return "*(" + r.name + "*)" + name
	default:
		return invalid
	}
}

func (r *interfaceRule) MakeRawParam(mode types.PassMode, name string) string {
	switch mode {
	case types.ModeIn:
		return r.rawName + " " + name
	case types.ModeOut, types.ModeInOut:
		return r.rawName + "* " + name
	default:
		return invalid
	}
}

func (r *interfaceRule) AsRawParam(mode types.PassMode, name string) string {
	switch mode {
	case types.ModeIn:
		return "(" + r.rawName + ")" + name + ".detach()"
	case types.ModeOut, types.ModeInOut:
		return "(" + r.rawName + "*)&" + name
	default:
		return invalid
	}
}
