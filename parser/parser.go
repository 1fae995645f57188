// Package parser implements the xcomidl recursive-descent parser and
// semantic analyzer of spec.md §4.5: it drives the lexer stack through
// an import closure, populates a type repository, and produces a linear
// generation-hint stream for a downstream code emitter. Grounded on the
// teacher's hand-written Parse(lex *lexer.PeekingLexer) escape-hatch
// methods (parser/type.go, parser/macro.go, parser/compliance.go),
// generalized here into the whole grammar since the IDL's forward
// declarations and namespace scoping are not expressible as a
// declarative participle grammar.
package parser

import (
	"os"
	"path/filepath"

	"github.com/lukeod/xcomidl/lexer"
	"github.com/lukeod/xcomidl/token"
	"github.com/lukeod/xcomidl/types"
)

// Parser holds every piece of state spec.md §4.5 lists: include search
// path, the repository it populates, the lexer stack driving the import
// closure, the active namespace path, the accumulated hint stream, the
// set of already-processed file paths, and interfaces still waiting on
// a full definition.
type Parser struct {
	includePaths []string
	repo         *types.Repository

	stack     *lexer.Stack
	namespace []string

	hints     []Hint
	processed map[string]bool
	forward   []*types.Type
}

// New constructs a Parser over repo, searching includePaths in order
// when resolving `import` statements (spec.md §4.5.1).
func New(includePaths []string, repo *types.Repository) *Parser {
	return &Parser{
		includePaths: includePaths,
		repo:         repo,
	}
}

// Repository returns the repository this parser populates.
func (p *Parser) Repository() *types.Repository {
	return p.repo
}

// lex returns the active (top-of-stack) lexer.
func (p *Parser) lex() *lexer.Lexer {
	return p.stack.Top()
}

// inMainFile reports whether the declaration currently being parsed
// lies textually in the root file (spec.md §4.3's depth() == 1).
func (p *Parser) inMainFile() bool {
	return p.stack.Depth() == 1
}

// emit appends a hint, unconditionally; callers gate on inMainFile
// themselves since a few hints (GenImport) are gated on the depth seen
// at the start of the declaration rather than at emit time.
func (p *Parser) emit(kind HintKind, param string) {
	p.hints = append(p.hints, Hint{Kind: kind, Param: param})
}

// qualify prefixes name with the current namespace path.
func (p *Parser) qualify(name string) string {
	return types.QualifiedName(p.namespace, name)
}

// Parse runs the parser over rootPath, the entry point of spec.md
// §4.5's "Entry point parse(root_idl_path)". It resets all per-parse
// state, opens the root file, and drives top-level dispatch until the
// lexer stack drains.
func (p *Parser) Parse(rootPath string) ([]Hint, error) {
	p.stack = lexer.NewStack()
	p.namespace = nil
	p.hints = nil
	p.processed = make(map[string]bool)
	p.forward = nil
	defer p.stack.Close()

	if err := p.openAndPush(rootPath); err != nil {
		return nil, err
	}

	for p.stack.Depth() > 0 {
		tok := p.lex().Next()
		if tok.Kind == token.Eof {
			if err := p.stack.Pop(); err != nil {
				return nil, err
			}
			continue
		}
		if err := p.dispatch(tok); err != nil {
			return nil, err
		}
	}

	if len(p.forward) > 0 {
		bad := p.forward[0]
		return nil, &SemanticError{
			Filename: rootPath,
			Line:     0,
			Message:  "unsatisfied forward declaration",
			Text:     bad.Name,
		}
	}

	return p.hints, nil
}

// openAndPush opens path for reading and pushes a new lexer for it. It
// neither checks nor updates the processed set — parseImport checks it
// first and records the path after a successful push (4.5.1).
func (p *Parser) openAndPush(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return &IoOpenError{Path: path, Err: err}
	}
	buf, err := lexer.NewCharBuffer(f)
	if err != nil {
		f.Close()
		return &IoOpenError{Path: path, Err: err}
	}
	p.stack.Push(buf, path, f)
	return nil
}

// dispatch drives on the leading keyword of a top-level declaration,
// spec.md §4.5's "Top-level dispatch".
func (p *Parser) dispatch(tok token.Token) error {
	switch tok.Kind {
	case token.Import:
		return p.parseImport()
	case token.Namespace:
		return p.parseNamespaceOpen()
	case token.RCurly:
		return p.parseNamespaceClose(tok)
	case token.Array:
		return p.parseArray()
	case token.Sequence:
		return p.parseSequence()
	case token.Struct:
		return p.parseStruct()
	case token.Exception:
		return p.parseException()
	case token.Interface:
		return p.parseInterface()
	case token.Delegate:
		return p.parseDelegate()
	case token.Enum:
		return p.parseEnum()
	default:
		return &SyntaxError{
			Filename: p.lex().Filename(),
			Line:     tok.Line(),
			Expected: "a top-level declaration",
			Found:    tok,
		}
	}
}

// resolveIncludePath resolves a literal import path against the
// include search path, returning the first existing, openable match in
// order (spec.md §4.5.1).
//
// Caveat: re-import detection compares the returned path strings, which
// are not canonicalized, so one file reached through two different
// include paths is processed twice.
func (p *Parser) resolveIncludePath(literal string) (string, error) {
	for _, dir := range p.includePaths {
		candidate := filepath.Join(dir, literal)
		if f, err := os.Open(candidate); err == nil {
			f.Close()
			return candidate, nil
		}
	}
	return "", &IoOpenError{Path: literal, Err: os.ErrNotExist}
}
