// Package types holds the xcomidl type repository: the closed family of
// type descriptors (spec.md §3) and the insertion-ordered, deduplicated
// catalogue that owns them, grounded on the teacher's types model and on
// RangelReale/xcomidl's Repository.hpp/ParserTypes.hpp.
package types

import "fmt"

// Kind is the closed set of type kinds a descriptor can carry.
type Kind int

const (
	KindVoid Kind = iota
	KindBool
	KindOctet
	KindShort
	KindInt
	KindLong
	KindFloat
	KindDouble
	KindChar
	KindWChar
	KindString
	KindWString
	KindAny

	KindEnum
	KindArray
	KindSequence
	KindStruct
	KindException
	KindInterface
	KindDelegate
)

func (k Kind) String() string {
	switch k {
	case KindVoid:
		return "void"
	case KindBool:
		return "bool"
	case KindOctet:
		return "octet"
	case KindShort:
		return "short"
	case KindInt:
		return "int"
	case KindLong:
		return "long"
	case KindFloat:
		return "float"
	case KindDouble:
		return "double"
	case KindChar:
		return "char"
	case KindWChar:
		return "wchar"
	case KindString:
		return "string"
	case KindWString:
		return "wstring"
	case KindAny:
		return "any"
	case KindEnum:
		return "enum"
	case KindArray:
		return "array"
	case KindSequence:
		return "sequence"
	case KindStruct:
		return "struct"
	case KindException:
		return "exception"
	case KindInterface:
		return "interface"
	case KindDelegate:
		return "delegate"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// IsBuiltin reports whether k is one of the pre-populated primitive
// kinds rather than a user-declared composite.
func (k Kind) IsBuiltin() bool {
	return k <= KindAny
}

// BuiltinKeyword maps the IDL spelling of each built-in type to its
// Kind, per spec.md §4.4's find() requirement.
var BuiltinKeyword = map[string]Kind{
	"void":    KindVoid,
	"boolean": KindBool,
	"octet":   KindOctet,
	"short":   KindShort,
	"int":     KindInt,
	"long":    KindLong,
	"float":   KindFloat,
	"double":  KindDouble,
	"char":    KindChar,
	"wchar":   KindWChar,
	"string":  KindString,
	"wstring": KindWString,
	"any":     KindAny,
}

// AllBuiltinKinds lists every built-in kind in a fixed, deterministic
// order — the order a freshly constructed Repository pre-populates them
// in (spec.md §4.4).
var AllBuiltinKinds = []Kind{
	KindVoid, KindBool, KindOctet, KindShort, KindInt, KindLong,
	KindFloat, KindDouble, KindChar, KindWChar, KindString, KindWString, KindAny,
}

// PassMode is the closed enum of parameter passing modes (spec.md §3).
type PassMode int

const (
	ModeIn PassMode = iota
	ModeOut
	ModeInOut
	ModeReturn
)

func (m PassMode) String() string {
	switch m {
	case ModeIn:
		return "in"
	case ModeOut:
		return "out"
	case ModeInOut:
		return "inout"
	case ModeReturn:
		return "return"
	default:
		return fmt.Sprintf("PassMode(%d)", int(m))
	}
}

// ReturnParamName is the fixed name stored in parameter slot 0 of every
// method and delegate, which carries the return type (spec.md §3).
const ReturnParamName = "<<return>>"

// Ref is a non-owning reference to a Type living in some Repository: a
// descriptor passed to Repository.Add or returned by Repository.Find,
// valid for the repository's lifetime (spec.md §3's Lifecycle).
type Ref = *Type

// Member is a (name, type) pair used by structs and exceptions.
type Member struct {
	Name string
	Type Ref
}

// Parameter is a method/delegate parameter. Index 0 of a method's or
// delegate's Params is always the return pseudo-parameter: Mode ==
// ModeReturn, Name == ReturnParamName.
type Parameter struct {
	Mode PassMode
	Type Ref
	Name string
}

// Method is an interface member: a name plus an ordered parameter list
// whose slot 0 carries the return type.
type Method struct {
	Name   string
	Params []Parameter
}

// Type is the tagged variant covering every descriptor kind spec.md §3
// defines. Only the fields relevant to Kind are populated; the zero
// value of an unused field is never inspected by callers that first
// switch on Kind.
type Type struct {
	Kind Kind

	// Name is empty for built-ins; fully qualified (dot-separated) for
	// every user-declared kind.
	Name string

	// Enum
	Elements []string

	// Struct / Exception
	Members []Member

	// Exception base (nil means no base) and Interface base (nil means
	// root interface). Shared field since a descriptor is only ever one
	// kind at a time.
	Base Ref

	// Array / Sequence
	Element Ref
	Size    int // Array only; zero for Sequence.

	// Interface
	GUID    string
	Forward bool

	// Interface / Delegate
	Methods []Method
	Params  []Parameter // Delegate's own parameter list (slot 0 = return).
}

// IsUserDeclared reports whether t came from IDL source rather than
// being a pre-populated built-in.
func (t *Type) IsUserDeclared() bool {
	return !t.Kind.IsBuiltin()
}

// RootInterfaceName is the one interface permitted to have no base
// (spec.md §3/§4.5.8).
const RootInterfaceName = "xcom.IUnknown"
