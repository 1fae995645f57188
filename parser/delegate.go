package parser

import "github.com/lukeod/xcomidl/types"

// parseDelegate handles `delegate return-type Ident ( params ) ;`
// (spec.md §4.5.9): structurally one method signature stored as a
// first-class type.
func (p *Parser) parseDelegate() error {
	sig, err := p.readMethod()
	if err != nil {
		return err
	}

	qualified := p.qualify(sig.name)
	p.repo.Add(&types.Type{
		Kind:   types.KindDelegate,
		Name:   qualified,
		Params: sig.params,
	})
	if p.inMainFile() {
		p.emit(GenType, qualified)
	}
	return nil
}
