package parser

import (
	"fmt"

	"github.com/lukeod/xcomidl/lexer"
)

// IoOpenError reports a root or imported IDL file that could not be opened.
type IoOpenError struct {
	Path string
	Err  error
}

func (e *IoOpenError) Error() string {
	return fmt.Sprintf("cannot open %q: %v", e.Path, e.Err)
}

func (e *IoOpenError) Unwrap() error { return e.Err }

// LexError and SyntaxError are aliases onto the lexer package's own
// error types: a token is classified Invalid or kind-mismatched at the
// point it is read, so the lexer is where those two of spec.md §7's
// five error kinds naturally originate. Aliasing rather than wrapping
// keeps a single errors.As target for callers regardless of which
// layer raised the diagnostic.
type LexError = lexer.LexError
type SyntaxError = lexer.SyntaxError

// SemanticError covers name resolution, duplicate definitions, bad bases,
// empty aggregates, malformed GUIDs and similar domain-level violations.
type SemanticError struct {
	Filename string
	Line     int
	Message  string
	Text     string
}

func (e *SemanticError) Error() string {
	if e.Text == "" {
		return fmt.Sprintf("%s:%d: error: %s", e.Filename, e.Line, e.Message)
	}
	return fmt.Sprintf("%s:%d: error: %s: %s", e.Filename, e.Line, e.Message, e.Text)
}

// InternalError reports an invariant violation: a programmer error rather
// than a malformed input.
type InternalError struct {
	Message string
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("internal error: %s", e.Message)
}
