package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lukeod/xcomidl/token"
)

func tokensOf(t *testing.T, source string) []token.Token {
	t.Helper()
	l := NewFromString("test.idl", source)
	var toks []token.Token
	for {
		tok := l.Next()
		toks = append(toks, tok)
		if tok.Kind == token.Eof {
			return toks
		}
	}
}

func TestLexerPunctuation(t *testing.T) {
	toks := tokensOf(t, ",;(){}<>")
	kinds := make([]token.Kind, 0, len(toks))
	for _, tok := range toks {
		kinds = append(kinds, tok.Kind)
	}
	assert.Equal(t, []token.Kind{
		token.Comma, token.Semicolon, token.LParen, token.RParen,
		token.LCurly, token.RCurly, token.LessThan, token.GreaterThan, token.Eof,
	}, kinds)
}

func TestLexerKeywords(t *testing.T) {
	toks := tokensOf(t, "interface struct extends array sequence delegate enum import nothrow any")
	want := []token.Kind{
		token.Interface, token.Struct, token.Extends, token.Array, token.Sequence,
		token.Delegate, token.Enum, token.Import, token.NoThrow, token.Any, token.Eof,
	}
	for i, k := range want {
		require.Equalf(t, k, toks[i].Kind, "token %d", i)
	}
}

func TestLexerIdentifierWithScope(t *testing.T) {
	toks := tokensOf(t, "m::SubType ::Root x:y")
	require.Equal(t, token.Identifier, toks[0].Kind)
	assert.Equal(t, "m::SubType", toks[0].Str)
	require.Equal(t, token.Identifier, toks[1].Kind)
	assert.Equal(t, "::Root", toks[1].Str)
	require.Equal(t, token.Invalid, toks[2].Kind)
}

func TestLexerPositiveInt(t *testing.T) {
	toks := tokensOf(t, "42 7")
	require.Equal(t, token.PositiveInt, toks[0].Kind)
	assert.Equal(t, 42, toks[0].Int)
	require.Equal(t, token.PositiveInt, toks[1].Kind)
	assert.Equal(t, 7, toks[1].Int)
}

func TestLexerLeadingZeroIsIdentifier(t *testing.T) {
	toks := tokensOf(t, "0")
	require.Equal(t, token.Identifier, toks[0].Kind)
	assert.Equal(t, "0", toks[0].Str)
}

func TestLexerInvalidIntegerAbsorbsRun(t *testing.T) {
	toks := tokensOf(t, "12x3;")
	require.Equal(t, token.Invalid, toks[0].Kind)
	assert.Equal(t, "12x3", toks[0].Str)
	require.Equal(t, token.Semicolon, toks[1].Kind)
}

func TestLexerStringLiteral(t *testing.T) {
	toks := tokensOf(t, `"hello world"`)
	require.Equal(t, token.StringLiteral, toks[0].Kind)
	assert.Equal(t, "hello world", toks[0].Str)
}

func TestLexerStringLiteralMultiline(t *testing.T) {
	l := NewFromString("test.idl", "\"a\nb\" x")
	tok := l.Next()
	require.Equal(t, token.StringLiteral, tok.Kind)
	assert.Equal(t, "a\nb", tok.Str)
	next := l.Next()
	assert.Equal(t, 2, next.Line())
}

func TestLexerUnterminatedString(t *testing.T) {
	toks := tokensOf(t, `"abc`)
	require.Equal(t, token.Invalid, toks[0].Kind)
	assert.Equal(t, `"abc`, toks[0].Str)
}

func TestLexerLineComment(t *testing.T) {
	toks := tokensOf(t, "// comment\nstruct")
	require.Equal(t, token.Struct, toks[0].Kind)
	assert.Equal(t, 2, toks[0].Line())
}

func TestLexerBlockCommentMultiline(t *testing.T) {
	toks := tokensOf(t, "/* a\nb\nc */ struct")
	require.Equal(t, token.Struct, toks[0].Kind)
	assert.Equal(t, 3, toks[0].Line())
}

func TestLexerUnterminatedBlockComment(t *testing.T) {
	toks := tokensOf(t, "/* never closes")
	require.Equal(t, token.Invalid, toks[0].Kind)
	assert.Equal(t, "/* never closes", toks[0].Str)
}

func TestLexerUngetIsSingleSlot(t *testing.T) {
	l := NewFromString("test.idl", "a b")
	first := l.Next()
	l.Unget(first)
	assert.Panics(t, func() { l.Unget(first) })
}

func TestLexerUngetRoundTrips(t *testing.T) {
	l := NewFromString("test.idl", "a b")
	first := l.Next()
	l.Unget(first)
	again := l.Next()
	assert.Equal(t, first, again)
	second := l.Next()
	assert.Equal(t, "b", second.Str)
}

func TestLexerExpectAnyRejectsInvalidAndEof(t *testing.T) {
	l := NewFromString("test.idl", "")
	_, err := l.ExpectAny()
	assert.Error(t, err)

	l = NewFromString("test.idl", "12x")
	_, err = l.ExpectAny()
	assert.Error(t, err)
}

func TestLexerExpectMismatch(t *testing.T) {
	l := NewFromString("test.idl", "struct")
	_, err := l.Expect(token.Enum)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "test.idl:1")
}

func TestLexerExpectAnyReturnsLexErrorForInvalid(t *testing.T) {
	l := NewFromString("test.idl", `"unterminated`)
	_, err := l.ExpectAny()
	var lexErr *LexError
	require.ErrorAs(t, err, &lexErr)
}

func TestLexerExpectReturnsSyntaxErrorOnMismatch(t *testing.T) {
	l := NewFromString("test.idl", "struct")
	_, err := l.Expect(token.Enum)
	var syntaxErr *SyntaxError
	require.ErrorAs(t, err, &syntaxErr)
	assert.Equal(t, "enum", syntaxErr.Expected)
}

func TestCharBufferDoubleUngetPanics(t *testing.T) {
	b := NewCharBufferString("ab")
	b.get()
	b.unget()
	assert.Panics(t, func() { b.unget() })
}
