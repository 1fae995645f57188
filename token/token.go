// Package token defines the lexical tokens produced by the xcomidl lexer.
package token

import (
	"fmt"

	"github.com/alecthomas/participle/v2/lexer"
)

// Kind identifies the lexical category of a Token.
type Kind int

const (
	Invalid Kind = iota
	Eof
	Comma
	Semicolon
	LParen
	RParen
	LCurly
	RCurly
	LessThan
	GreaterThan
	PositiveInt
	StringLiteral
	Identifier

	// Keywords
	Void
	Namespace
	Interface
	Array
	Sequence
	Struct
	Extends
	Bool
	Octet
	Short
	Int
	Long
	Char
	WChar
	Exception
	Float
	Double
	In
	Out
	InOut
	String
	WString
	Enum
	Import
	NoThrow
	Any
	Delegate
)

var names = map[Kind]string{
	Invalid:       "Invalid",
	Eof:           "Eof",
	Comma:         "Comma",
	Semicolon:     "Semicolon",
	LParen:        "LParen",
	RParen:        "RParen",
	LCurly:        "LCurly",
	RCurly:        "RCurly",
	LessThan:      "LessThan",
	GreaterThan:   "GreaterThan",
	PositiveInt:   "PositiveInt",
	StringLiteral: "StringLiteral",
	Identifier:    "Identifier",
	Void:          "void",
	Namespace:     "namespace",
	Interface:     "interface",
	Array:         "array",
	Sequence:      "sequence",
	Struct:        "struct",
	Extends:       "extends",
	Bool:          "boolean",
	Octet:         "octet",
	Short:         "short",
	Int:           "int",
	Long:          "long",
	Char:          "char",
	WChar:         "wchar",
	Exception:     "exception",
	Float:         "float",
	Double:        "double",
	In:            "in",
	Out:           "out",
	InOut:         "inout",
	String:        "string",
	WString:       "wstring",
	Enum:          "enum",
	Import:        "import",
	NoThrow:       "nothrow",
	Any:           "any",
	Delegate:      "delegate",
}

// Keywords maps every reserved spelling to its Kind. Identifiers and
// built-in type names are looked up here before falling back to a
// generic Identifier token.
var Keywords = map[string]Kind{
	"void":      Void,
	"namespace": Namespace,
	"interface": Interface,
	"array":     Array,
	"sequence":  Sequence,
	"struct":    Struct,
	"extends":   Extends,
	"boolean":   Bool,
	"octet":     Octet,
	"short":     Short,
	"int":       Int,
	"long":      Long,
	"char":      Char,
	"wchar":     WChar,
	"exception": Exception,
	"float":     Float,
	"double":    Double,
	"in":        In,
	"out":       Out,
	"inout":     InOut,
	"string":    String,
	"wstring":   WString,
	"enum":      Enum,
	"import":    Import,
	"nothrow":   NoThrow,
	"any":       Any,
	"delegate":  Delegate,
}

// String renders a human-readable name for k, used in diagnostics.
func (k Kind) String() string {
	if name, ok := names[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Pos locates a token in its source file. It embeds participle's
// lexer.Position so diagnostics and callers that already understand that
// type can use it directly.
type Pos struct {
	lexer.Position
}

// Token is a single lexical unit: a Kind, the line it started on, and
// an optional payload carried by string- or integer-valued kinds.
type Token struct {
	Kind Kind
	Pos  Pos

	// Str holds the payload for Invalid, StringLiteral and Identifier.
	Str string
	// Int holds the payload for PositiveInt.
	Int int
}

// Line reports the 1-based source line the token started on.
func (t Token) Line() int {
	return t.Pos.Line
}

// Text renders the token's offending/display text for diagnostics: the
// string payload when present, the integer payload rendered decimal, or
// the kind's canonical spelling otherwise.
func (t Token) Text() string {
	switch t.Kind {
	case Invalid, StringLiteral, Identifier:
		return t.Str
	case PositiveInt:
		return fmt.Sprintf("%d", t.Int)
	default:
		return t.Kind.String()
	}
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q) @ line %d", t.Kind, t.Text(), t.Line())
}

// NewPos builds a Pos for filename/line, matching the shape the lexer
// stamps on every emitted token.
func NewPos(filename string, line int) Pos {
	return Pos{lexer.Position{Filename: filename, Line: line}}
}
