package parser

import (
	"github.com/zero-lang/zc/internal/ast"
	"github.com/zero-lang/zc/internal/token"
)

// parsePragma parses `pragma <identifier>;` into a Pragma marker node
// (SPEC_FULL.md's pragma supplement, grounded on original_source's
// Keyword::Pragma entry in Tokenizer.hpp — listed as a keyword but given
// no parse semantics by spec.md §4.6, which this fills in).
func (p *Parser) parsePragma() ast.Expression {
	p.expect(token.Identifier, "pragma name")
	name := p.idents.Intern(p.cur.Payload.Text())
	p.advance()
	p.accept(token.Semicolon)
	return ast.NewPragma(name, nil)
}
