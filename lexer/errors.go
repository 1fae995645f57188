package lexer

import (
	"fmt"

	"github.com/lukeod/xcomidl/token"
)

// LexError reports an Invalid token surfaced while scanning, per
// spec.md §7's "Lex" error kind.
type LexError struct {
	Filename string
	Line     int
	Text     string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%s:%d: error: invalid token: %s", e.Filename, e.Line, e.Text)
}

// SyntaxError reports a token kind that did not match what a caller
// required, per spec.md §7's "Syntax" error kind.
type SyntaxError struct {
	Filename string
	Line     int
	Expected string
	Found    token.Token
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d: error: expected %s: %s", e.Filename, e.Line, e.Expected, e.Found.Text())
}
