package parser

import (
	"strings"

	"github.com/lukeod/xcomidl/token"
	"github.com/lukeod/xcomidl/types"
)

// isBuiltinOrIdentifier reports whether a token can start a type
// reference: either a built-in keyword or a plain Identifier.
func isBuiltinOrIdentifier(kind token.Kind) bool {
	switch kind {
	case token.Void, token.Bool, token.Char, token.WChar, token.Octet,
		token.Short, token.Int, token.Long, token.Float, token.Double,
		token.Any, token.String, token.WString, token.Identifier:
		return true
	}
	return false
}

// readTypeOrIdentifier reads the next token and requires it to be
// usable as a type reference (spec.md §4.5's "type-or-ident").
func (p *Parser) readTypeOrIdentifier() (token.Token, error) {
	tok, err := p.lex().ExpectAny()
	if err != nil {
		return tok, err
	}
	if !isBuiltinOrIdentifier(tok.Kind) {
		return tok, &SyntaxError{
			Filename: p.lex().Filename(),
			Line:     tok.Line(),
			Expected: "type or identifier",
			Found:    tok,
		}
	}
	return tok, nil
}

// splitScopedName splits a `::`-separated identifier into its segments,
// stripping a leading `::` (rooted name) first. A built-in keyword's
// rendered text never contains `::` and splits into a single segment.
func splitScopedName(text string) []string {
	rooted := strings.HasPrefix(text, "::")
	if rooted {
		text = text[2:]
	}
	return strings.Split(text, "::")
}

func isRootedName(text string) bool {
	return strings.HasPrefix(text, "::")
}

// typeMustBeDefined resolves tok (a built-in keyword or identifier
// token) against the repository, per spec.md §4.5's "Name resolution
// (type_must_be_defined)":
//
//  1. Rooted identifiers and built-in keywords resolve as-is.
//  2. Otherwise walk the namespace stack innermost-to-outermost,
//     trying `stack[0..=level] + identifier` at each level.
//  3. If every scoped lookup misses, fall back to a bare lookup.
func (p *Parser) typeMustBeDefined(tok token.Token) (*types.Type, error) {
	text := tok.Text()
	segments := splitScopedName(text)
	dotted := strings.Join(segments, ".")

	if isRootedName(text) || tok.Kind != token.Identifier {
		if t := p.repo.Find(dotted); t != nil {
			return t, nil
		}
		return nil, p.typeNotFound(tok)
	}

	for level := len(p.namespace); level > 0; level-- {
		candidate := types.QualifiedName(p.namespace[:level], dotted)
		if t := p.repo.Find(candidate); t != nil {
			return t, nil
		}
	}

	if t := p.repo.Find(dotted); t != nil {
		return t, nil
	}

	return nil, p.typeNotFound(tok)
}

func (p *Parser) typeNotFound(tok token.Token) error {
	return &SemanticError{
		Filename: p.lex().Filename(),
		Line:     tok.Line(),
		Message:  "type not found",
		Text:     tok.Text(),
	}
}

// canBeDataMember reports whether kind can be used as a struct/array/
// sequence/exception member (spec.md §4.5.4/.6/.7). Method and delegate
// parameter types are not checked against it.
func canBeDataMember(t *types.Type) bool {
	return t.Kind != types.KindVoid && t.Kind != types.KindException
}

// checkDataMember enforces canBeDataMember, raising a SemanticError
// attributed to tok otherwise.
func (p *Parser) checkDataMember(t *types.Type, tok token.Token) error {
	if canBeDataMember(t) {
		return nil
	}
	return &SemanticError{
		Filename: p.lex().Filename(),
		Line:     tok.Line(),
		Message:  "type cannot be used as a data member",
		Text:     tok.Text(),
	}
}

// checkDuplicateDefinition enforces spec.md §4.5's "Duplicate-definition
// check": resolving current-namespace-prefix+name must miss before a
// new named user type can be added.
func (p *Parser) checkDuplicateDefinition(name string, tok token.Token) error {
	qualified := p.qualify(name)
	if p.repo.HasName(qualified) {
		return &SemanticError{
			Filename: p.lex().Filename(),
			Line:     tok.Line(),
			Message:  "type already defined",
			Text:     qualified,
		}
	}
	return nil
}
