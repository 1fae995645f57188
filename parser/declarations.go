package parser

import (
	"github.com/lukeod/xcomidl/token"
	"github.com/lukeod/xcomidl/types"
)

// parseImport handles `import "path" ;` (spec.md §4.5.1).
func (p *Parser) parseImport() error {
	wasMainFile := p.inMainFile()

	pathTok, err := p.lex().Expect(token.StringLiteral)
	if err != nil {
		return err
	}
	if err := p.lex().Discard(token.Semicolon); err != nil {
		return err
	}

	resolved, err := p.resolveIncludePath(pathTok.Str)
	if err != nil {
		return &SemanticError{
			Filename: p.lex().Filename(),
			Line:     pathTok.Line(),
			Message:  "cannot find imported idl file",
			Text:     pathTok.Str,
		}
	}

	if p.processed[resolved] {
		return nil
	}

	if err := p.openAndPush(resolved); err != nil {
		return err
	}
	p.processed[resolved] = true

	if wasMainFile {
		p.emit(GenImport, pathTok.Str)
	}
	return nil
}

// parseNamespaceOpen handles `namespace Ident {` (spec.md §4.5.2).
func (p *Parser) parseNamespaceOpen() error {
	nameTok, err := p.lex().Expect(token.Identifier)
	if err != nil {
		return err
	}
	if err := p.lex().Discard(token.LCurly); err != nil {
		return err
	}
	p.namespace = append(p.namespace, nameTok.Str)
	if p.inMainFile() {
		p.emit(EnterNamespace, nameTok.Str)
	}
	return nil
}

// parseNamespaceClose handles an unmatched `}` at top level, closing
// the deepest open namespace (spec.md §4.5.3).
func (p *Parser) parseNamespaceClose(closeTok token.Token) error {
	if len(p.namespace) == 0 {
		return &SyntaxError{
			Filename: p.lex().Filename(),
			Line:     closeTok.Line(),
			Expected: "a top-level declaration",
			Found:    closeTok,
		}
	}
	name := p.namespace[len(p.namespace)-1]
	p.namespace = p.namespace[:len(p.namespace)-1]
	if p.inMainFile() {
		p.emit(LeaveNamespace, name)
	}
	return nil
}

// parseArray handles `array < element-type , positive-int > Ident ;`
// (spec.md §4.5.4).
func (p *Parser) parseArray() error {
	if err := p.lex().Discard(token.LessThan); err != nil {
		return err
	}
	elemTok, err := p.readTypeOrIdentifier()
	if err != nil {
		return err
	}
	if err := p.lex().Discard(token.Comma); err != nil {
		return err
	}
	sizeTok, err := p.lex().Expect(token.PositiveInt)
	if err != nil {
		return err
	}
	if err := p.lex().Discard(token.GreaterThan); err != nil {
		return err
	}
	nameTok, err := p.lex().Expect(token.Identifier)
	if err != nil {
		return err
	}
	if err := p.lex().Discard(token.Semicolon); err != nil {
		return err
	}

	elem, err := p.typeMustBeDefined(elemTok)
	if err != nil {
		return err
	}
	if err := p.checkDataMember(elem, elemTok); err != nil {
		return err
	}
	if err := p.checkDuplicateDefinition(nameTok.Str, nameTok); err != nil {
		return err
	}

	qualified := p.qualify(nameTok.Str)
	p.repo.Add(&types.Type{
		Kind:    types.KindArray,
		Name:    qualified,
		Element: elem,
		Size:    sizeTok.Int,
	})
	if p.inMainFile() {
		p.emit(GenType, qualified)
	}
	return nil
}

// parseSequence handles `sequence < element-type > Ident ;` (spec.md
// §4.5.5).
func (p *Parser) parseSequence() error {
	if err := p.lex().Discard(token.LessThan); err != nil {
		return err
	}
	elemTok, err := p.readTypeOrIdentifier()
	if err != nil {
		return err
	}
	elem, err := p.typeMustBeDefined(elemTok)
	if err != nil {
		return err
	}
	if err := p.lex().Discard(token.GreaterThan); err != nil {
		return err
	}
	nameTok, err := p.lex().Expect(token.Identifier)
	if err != nil {
		return err
	}
	if err := p.checkDataMember(elem, elemTok); err != nil {
		return err
	}
	if err := p.checkDuplicateDefinition(nameTok.Str, nameTok); err != nil {
		return err
	}
	if err := p.lex().Discard(token.Semicolon); err != nil {
		return err
	}

	qualified := p.qualify(nameTok.Str)
	p.repo.Add(&types.Type{
		Kind:    types.KindSequence,
		Name:    qualified,
		Element: elem,
	})
	if p.inMainFile() {
		p.emit(GenType, qualified)
	}
	return nil
}

// readMembers reads `{ member* }` where each member is
// `type-or-ident Ident ;`, shared by struct and exception (spec.md
// §4.5.6/.7's readStructMembers).
func (p *Parser) readMembers() ([]types.Member, error) {
	var members []types.Member
	if err := p.lex().Discard(token.LCurly); err != nil {
		return nil, err
	}
	for {
		tok, err := p.lex().ExpectAny()
		if err != nil {
			return nil, err
		}
		if tok.Kind == token.RCurly {
			return members, nil
		}
		if !isBuiltinOrIdentifier(tok.Kind) {
			return nil, &SyntaxError{
				Filename: p.lex().Filename(),
				Line:     tok.Line(),
				Expected: "a member type or '}'",
				Found:    tok,
			}
		}
		memberType, err := p.typeMustBeDefined(tok)
		if err != nil {
			return nil, err
		}
		if err := p.checkDataMember(memberType, tok); err != nil {
			return nil, err
		}
		nameTok, err := p.lex().Expect(token.Identifier)
		if err != nil {
			return nil, err
		}
		if err := p.lex().Discard(token.Semicolon); err != nil {
			return nil, err
		}
		members = append(members, types.Member{Name: nameTok.Str, Type: memberType})
	}
}

// parseStruct handles `struct Ident { member* }` (spec.md §4.5.6). At
// least one member is required.
func (p *Parser) parseStruct() error {
	nameTok, err := p.lex().Expect(token.Identifier)
	if err != nil {
		return err
	}
	if err := p.checkDuplicateDefinition(nameTok.Str, nameTok); err != nil {
		return err
	}
	members, err := p.readMembers()
	if err != nil {
		return err
	}
	if len(members) == 0 {
		return &SemanticError{
			Filename: p.lex().Filename(),
			Line:     nameTok.Line(),
			Message:  "structs with no elements are not allowed",
			Text:     nameTok.Str,
		}
	}

	qualified := p.qualify(nameTok.Str)
	p.repo.Add(&types.Type{
		Kind:    types.KindStruct,
		Name:    qualified,
		Members: members,
	})
	if p.inMainFile() {
		p.emit(GenType, qualified)
	}
	return nil
}

// parseException handles `exception Ident (extends type-ident)? { member* }`
// (spec.md §4.5.7). Exceptions may be empty.
func (p *Parser) parseException() error {
	nameTok, err := p.lex().Expect(token.Identifier)
	if err != nil {
		return err
	}
	if err := p.checkDuplicateDefinition(nameTok.Str, nameTok); err != nil {
		return err
	}

	var base *types.Type
	tok, err := p.lex().ExpectAny()
	if err != nil {
		return err
	}
	if tok.Kind == token.Extends {
		baseTok, err := p.readTypeOrIdentifier()
		if err != nil {
			return err
		}
		baseType, err := p.typeMustBeDefined(baseTok)
		if err != nil {
			return err
		}
		if baseType.Kind != types.KindException {
			return &SemanticError{
				Filename: p.lex().Filename(),
				Line:     baseTok.Line(),
				Message:  "type not found",
				Text:     baseTok.Text(),
			}
		}
		base = baseType
	} else {
		p.lex().Unget(tok)
	}

	members, err := p.readMembers()
	if err != nil {
		return err
	}

	qualified := p.qualify(nameTok.Str)
	p.repo.Add(&types.Type{
		Kind:    types.KindException,
		Name:    qualified,
		Base:    base,
		Members: members,
	})
	if p.inMainFile() {
		p.emit(GenType, qualified)
	}
	return nil
}

// parseEnum handles `enum Ident { Ident (, Ident)* }` (spec.md
// §4.5.10). At least one enumerator is required.
func (p *Parser) parseEnum() error {
	nameTok, err := p.lex().Expect(token.Identifier)
	if err != nil {
		return err
	}
	if err := p.checkDuplicateDefinition(nameTok.Str, nameTok); err != nil {
		return err
	}

	var elements []string
	if err := p.lex().Discard(token.LCurly); err != nil {
		return err
	}
	tok, err := p.lex().ExpectAny()
	if err != nil {
		return err
	}
	if tok.Kind != token.RCurly {
		p.lex().Unget(tok)
		for {
			elemTok, err := p.lex().Expect(token.Identifier)
			if err != nil {
				return err
			}
			elements = append(elements, elemTok.Str)

			next, err := p.lex().ExpectAny()
			if err != nil {
				return err
			}
			if next.Kind != token.Comma {
				p.lex().Unget(next)
				if _, err := p.lex().Expect(token.RCurly); err != nil {
					return err
				}
				break
			}
		}
	}

	if len(elements) == 0 {
		return &SemanticError{
			Filename: p.lex().Filename(),
			Line:     nameTok.Line(),
			Message:  "an enumeration with no element",
			Text:     nameTok.Str,
		}
	}

	qualified := p.qualify(nameTok.Str)
	p.repo.Add(&types.Type{
		Kind:     types.KindEnum,
		Name:     qualified,
		Elements: elements,
	})
	if p.inMainFile() {
		p.emit(GenType, qualified)
	}
	return nil
}
