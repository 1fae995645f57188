package parser

import (
	"github.com/lukeod/xcomidl/token"
	"github.com/lukeod/xcomidl/types"
)

// methodSignature is the shared shape produced by readMethod: used both
// for a full interface's methods and for a delegate's own signature
// (spec.md §4.5.8/.9 — "structurally identical to one interface
// method").
type methodSignature struct {
	name   string
	params []types.Parameter
}

// readParameter handles one method parameter: an optional mode keyword
// (default In), a type-or-ident, and a name (spec.md §4.5.8's readParameter).
func (p *Parser) readParameter() (types.Parameter, error) {
	mode := types.ModeIn

	tok, err := p.lex().ExpectAny()
	if err != nil {
		return types.Parameter{}, err
	}
	switch tok.Kind {
	case token.In:
		mode = types.ModeIn
	case token.Out:
		mode = types.ModeOut
	case token.InOut:
		mode = types.ModeInOut
	default:
		p.lex().Unget(tok)
	}

	typeTok, err := p.readTypeOrIdentifier()
	if err != nil {
		return types.Parameter{}, err
	}
	paramType, err := p.typeMustBeDefined(typeTok)
	if err != nil {
		return types.Parameter{}, err
	}
	nameTok, err := p.lex().Expect(token.Identifier)
	if err != nil {
		return types.Parameter{}, err
	}

	return types.Parameter{Mode: mode, Type: paramType, Name: nameTok.Str}, nil
}

// readMethod reads a return-type, name, and parenthesized parameter
// list: `return-type Ident ( params ) ;`. Parameter slot 0 of the
// returned signature carries the return type (spec.md §4.5.8's
// readMethod).
func (p *Parser) readMethod() (methodSignature, error) {
	retTok, err := p.readTypeOrIdentifier()
	if err != nil {
		return methodSignature{}, err
	}
	retType, err := p.typeMustBeDefined(retTok)
	if err != nil {
		return methodSignature{}, err
	}

	nameTok, err := p.lex().Expect(token.Identifier)
	if err != nil {
		return methodSignature{}, err
	}

	params := []types.Parameter{{Mode: types.ModeReturn, Type: retType, Name: types.ReturnParamName}}

	if err := p.lex().Discard(token.LParen); err != nil {
		return methodSignature{}, err
	}
	for {
		tok, err := p.lex().ExpectAny()
		if err != nil {
			return methodSignature{}, err
		}
		if tok.Kind == token.RParen {
			break
		}
		p.lex().Unget(tok)

		param, err := p.readParameter()
		if err != nil {
			return methodSignature{}, err
		}
		params = append(params, param)

		tok, err = p.lex().ExpectAny()
		if err != nil {
			return methodSignature{}, err
		}
		if tok.Kind == token.RParen {
			break
		}
		if tok.Kind != token.Comma {
			return methodSignature{}, &SyntaxError{
				Filename: p.lex().Filename(),
				Line:     tok.Line(),
				Expected: "',' or ')'",
				Found:    tok,
			}
		}
	}
	if err := p.lex().Discard(token.Semicolon); err != nil {
		return methodSignature{}, err
	}

	return methodSignature{name: nameTok.Str, params: params}, nil
}

// findForward returns the forward-declared interface named name, or
// nil.
func (p *Parser) findForward(name string) *types.Type {
	for _, t := range p.forward {
		if t.Name == name {
			return t
		}
	}
	return nil
}

func (p *Parser) removeForward(t *types.Type) {
	for i, f := range p.forward {
		if f == t {
			p.forward = append(p.forward[:i], p.forward[i+1:]...)
			return
		}
	}
}

// parseInterface handles both forms from spec.md §4.5.8:
// `interface Ident ;` (forward) and
// `interface Ident ( "guid" ) (extends type-ident)? { method* }` (full).
func (p *Parser) parseInterface() error {
	nameTok, err := p.lex().Expect(token.Identifier)
	if err != nil {
		return err
	}
	qualified := p.qualify(nameTok.Str)

	// A type with the same name present but of some other kind always
	// conflicts; this mirrors the reference parser's unconditional
	// pre-check (Parser::handleInterface's oldDef.getKind() test), run
	// once here before the forward/full branches diverge.
	existing := p.repo.Find(qualified)
	if existing != nil && existing.Kind != types.KindInterface {
		return &SemanticError{
			Filename: p.lex().Filename(),
			Line:     nameTok.Line(),
			Message:  "type already defined",
			Text:     qualified,
		}
	}

	tok, err := p.lex().ExpectAny()
	if err != nil {
		return err
	}

	if tok.Kind == token.Semicolon {
		return p.parseInterfaceForward(nameTok, qualified, existing)
	}
	p.lex().Unget(tok)
	return p.parseInterfaceFull(nameTok, qualified, existing)
}

// parseInterfaceForward handles the `interface Ident ;` form. A prior
// interface descriptor for this name must still be forward.
func (p *Parser) parseInterfaceForward(nameTok token.Token, qualified string, existing *types.Type) error {
	if existing != nil && !existing.Forward {
		return &SemanticError{
			Filename: p.lex().Filename(),
			Line:     nameTok.Line(),
			Message:  "type already defined",
			Text:     qualified,
		}
	}
	if existing == nil {
		itf := &types.Type{Kind: types.KindInterface, Name: qualified, Forward: true}
		p.forward = append(p.forward, itf)
		p.repo.Add(itf)
	}
	if p.inMainFile() {
		p.emit(GenForward, qualified)
	}
	return nil
}

// parseInterfaceFull handles the `interface Ident ( "guid" ) ...` form.
// A prior descriptor for this name must still be forward; a second full
// definition of an already-satisfied interface is rejected the same way.
func (p *Parser) parseInterfaceFull(nameTok token.Token, qualified string, existing *types.Type) error {
	if existing != nil && !existing.Forward {
		return &SemanticError{
			Filename: p.lex().Filename(),
			Line:     nameTok.Line(),
			Message:  "type already defined",
			Text:     qualified,
		}
	}

	var itf *types.Type
	if existing != nil {
		itf = existing
	} else {
		itf = &types.Type{Kind: types.KindInterface, Name: qualified, Forward: true}
		p.repo.Add(itf)
		p.forward = append(p.forward, itf)
	}

	if err := p.lex().Discard(token.LParen); err != nil {
		return err
	}
	guidTok, err := p.lex().Expect(token.StringLiteral)
	if err != nil {
		return err
	}
	if !validGUID(guidTok.Str) {
		return &SemanticError{
			Filename: p.lex().Filename(),
			Line:     guidTok.Line(),
			Message:  "the guid string is not a valid guid",
			Text:     guidTok.Str,
		}
	}
	if err := p.lex().Discard(token.RParen); err != nil {
		return err
	}

	var base *types.Type
	tok, err := p.lex().ExpectAny()
	if err != nil {
		return err
	}
	if tok.Kind == token.Extends {
		baseTok, err := p.lex().Expect(token.Identifier)
		if err != nil {
			return err
		}
		baseType, err := p.typeMustBeDefined(baseTok)
		if err != nil {
			return err
		}
		if baseType.Kind != types.KindInterface {
			return &SemanticError{
				Filename: p.lex().Filename(),
				Line:     baseTok.Line(),
				Message:  "base must be an interface",
				Text:     baseTok.Text(),
			}
		}
		if baseType.Forward {
			return &SemanticError{
				Filename: p.lex().Filename(),
				Line:     baseTok.Line(),
				Message:  "cannot inherit from a forward declared interface",
				Text:     baseTok.Text(),
			}
		}
		base = baseType
	} else {
		p.lex().Unget(tok)
	}

	if base == nil && qualified != types.RootInterfaceName {
		return &SemanticError{
			Filename: p.lex().Filename(),
			Line:     nameTok.Line(),
			Message:  "must specify base interface",
			Text:     qualified,
		}
	}

	itf.GUID = guidTok.Str
	itf.Base = base
	itf.Forward = false
	p.removeForward(itf)

	if err := p.lex().Discard(token.LCurly); err != nil {
		return err
	}
	var methods []types.Method
	for {
		tok, err := p.lex().ExpectAny()
		if err != nil {
			return err
		}
		if tok.Kind == token.RCurly {
			break
		}
		p.lex().Unget(tok)

		sig, err := p.readMethod()
		if err != nil {
			return err
		}
		methods = append(methods, types.Method{Name: sig.name, Params: sig.params})
	}
	itf.Methods = methods

	if p.inMainFile() {
		p.emit(GenType, qualified)
	}
	return nil
}

// validGUID checks the canonical 36-character dashed hex form
// XXXXXXXX-XXXX-XXXX-XXXX-XXXXXXXXXXXX (spec.md §6).
func validGUID(s string) bool {
	if len(s) != 36 {
		return false
	}
	groups := []int{8, 4, 4, 4, 12}
	pos := 0
	for i, g := range groups {
		for j := 0; j < g; j++ {
			if !isHexDigit(s[pos]) {
				return false
			}
			pos++
		}
		if i < len(groups)-1 {
			if s[pos] != '-' {
				return false
			}
			pos++
		}
	}
	return pos == len(s)
}

func isHexDigit(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}
