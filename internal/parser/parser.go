// Package parser implements Zero's recursive-descent parser (spec.md
// §4.6): one token of look-ahead, no operator-precedence climbing, local
// identifier interning, a scope stack, and return-type inference over
// function bodies.
//
// Grounded on mcgru-funxy/internal/parser/parser.go's structural shape —
// a Parser struct carrying curToken/peekToken plus a nextToken that pulls
// from the lexer — but NOT its Pratt/precedence-climbing dispatch, which
// spec.md §4.6.4 explicitly forbids ("No operator-precedence climbing —
// the grammar is right-associative by construction"): parse_factors below
// is a flat continuation, not a precedence loop.
package parser

import (
	"github.com/google/uuid"

	"github.com/zero-lang/zc/internal/ast"
	"github.com/zero-lang/zc/internal/diagnostics"
	"github.com/zero-lang/zc/internal/ident"
	"github.com/zero-lang/zc/internal/lexer"
	"github.com/zero-lang/zc/internal/scope"
	"github.com/zero-lang/zc/internal/token"
)

// Module is the parser's sole output: a single top-level Scope (spec.md
// §6 "module = a single top-level Scope").
type Module struct {
	Root        *ast.Scope
	Identifiers *ident.Table
}

// Parser consumes a token stream and builds a Module (spec.md §4.6).
type Parser struct {
	lex *lexer.Lexer

	cur    token.Token
	peek   token.Token
	primed bool

	idents *ident.Table
	scopes *scope.Stack

	session uuid.UUID
}

// New constructs a Parser over source and initialises its tokenizer. No
// token is read here: the first call to advance primes the one-token
// look-ahead, so a lexical error in the first tokens is raised inside
// ParseFile's recover boundary.
func New(source string) *Parser {
	session := diagnostics.Session()
	return &Parser{
		lex:     lexer.New(source, session),
		idents:  ident.NewTable(),
		scopes:  scope.NewStack(),
		session: session,
	}
}

// ParseFile repeatedly calls Parse and appends non-empty expressions to
// the module's global scope until Parse reports the empty expression
// (spec.md §4.6.1 parse_file). The single recover boundary for
// diagnostics.Abort lives here, turning the source's terminating failure
// into a returned error (spec.md §7 "Implementers targeting a library
// context should replace the terminating failure with an unwinding one").
func (p *Parser) ParseFile() (m Module, err error) {
	defer func() {
		if r := recover(); r != nil {
			abort, ok := r.(diagnostics.Abort)
			if !ok {
				panic(r)
			}
			err = abort
		}
	}()

	var exprs []ast.Expression
	for {
		e := p.Parse()
		if e == nil {
			break
		}
		exprs = append(exprs, e)
	}
	return Module{Root: ast.NewScope(exprs), Identifiers: p.idents}, nil
}

// ParseString is a convenience wrapper matching spec.md §6's library API
// (`Parser::new(source) → Parser`, `Parser::parse_file() → Module`).
func ParseString(source string) (Module, error) {
	return New(source).ParseFile()
}

// --- Token discipline (spec.md §4.6.2) ---

func (p *Parser) advance() token.Token {
	if !p.primed {
		p.primed = true
		p.cur = p.lex.Next()
		p.peek = p.lex.Next()
	}
	t := p.cur
	p.cur = p.peek
	p.peek = p.lex.Next()
	return t
}

// accept consumes the current token iff it has kind k, reporting whether
// it did.
func (p *Parser) accept(k token.Kind) bool {
	if p.cur.Kind == k {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) error(code diagnostics.Code, args ...any) {
	diagnostics.Raise(diagnostics.New(p.session, diagnostics.Syntax, code, p.cur.Position, args...))
}

// expect aborts if the current token does not have kind k.
func (p *Parser) expect(k token.Kind, msg string) {
	if p.cur.Kind != k {
		p.error(diagnostics.CodeExpectedToken, msg, p.cur.Kind.String())
	}
}

// expectAndAdvance is expect followed by advance (spec.md §4.6.2).
func (p *Parser) expectAndAdvance(k token.Kind, msg string) token.Token {
	p.expect(k, msg)
	return p.advance()
}

func (p *Parser) diagSession() *ast.DiagnosticSession {
	return &ast.DiagnosticSession{ID: p.session, Pos: p.cur.Position}
}

// register inserts decl into the current scope (spec.md §4.6.6
// "register_declaration(d, local)"): local when a nested scope is open,
// global at module top level.
func (p *Parser) register(decl *ast.Declaration) *ast.Declaration {
	p.scopes.Register(decl.Name, decl, p.scopes.Depth() > 1)
	return decl
}

// --- Dispatch (spec.md §4.6.3) ---

// Parse returns one top-level or nested expression, or nil at end of
// input (the Go analogue of the source's "empty expression").
func (p *Parser) Parse() ast.Expression {
	tok := p.advance()

	switch tok.Kind {
	case token.Keyword:
		return p.parseKeyword(tok)

	case token.Identifier:
		id := p.idents.Intern(tok.Payload.Text())
		return p.parseFactors(ast.Identifier{ID: id})

	case token.LiteralInt:
		return p.parseFactors(ast.LiteralInt{Value: int64(tok.Payload.U64)})
	case token.LiteralReal:
		return p.parseFactors(ast.LiteralReal{Value: tok.Payload.F64})

	case token.Operator:
		op := tok.Payload.Operator
		if !op.IsPrefixable() {
			p.errorAt(tok, diagnostics.CodeUnexpectedToken, tok.Kind.String())
		}
		return ast.NewUnaryExpression(op, p.Parse())

	case token.Wildcard:
		return ast.Wildcard{}

	case token.BraceLeft:
		return p.parseScope()
	case token.BracketLeft:
		return p.parseBracket()
	case token.ParenLeft:
		return p.parseParen()

	// Comma, Colon, Semicolon, TraitsOf and Address are non-productive at
	// dispatch and abort (spec.md §4.6.3), matching
	// original_source/zcc_core/Parser.cpp's ParseExpression, whose cases
	// for these all fall straight into its error path.
	case token.Comma, token.Colon, token.Semicolon, token.TraitsOf, token.Address:
		p.errorAt(tok, diagnostics.CodeUnexpectedToken, tok.Kind.String())
		return nil

	// Everything else unmatched at dispatch — EOF/None, LiteralChar,
	// LiteralString, Hash, NoOp, and the closing brackets — terminates the
	// parse rather than aborting it: the original's ParseExpression falls
	// through to its default case for exactly this set, returning an
	// empty expression instead of reaching its Error() call. LiteralChar
	// and LiteralString accordingly have no expression form in this
	// grammar; NoOp is a closed-sum member the grammar never constructs
	// directly (reserved, like TraitsOf, for a later pass).
	default:
		return nil
	}
}

func (p *Parser) errorAt(tok token.Token, code diagnostics.Code, args ...any) {
	diagnostics.Raise(diagnostics.New(p.session, diagnostics.Syntax, code, tok.Position, args...))
}

func (p *Parser) parseKeyword(tok token.Token) ast.Expression {
	switch tok.Payload.Keyword {
	case token.KwPragma:
		return p.parsePragma()
	case token.KwUse:
		return p.parseUse()
	case token.KwNamespace:
		return p.parseNamespace()
	case token.KwType:
		return p.parseType()
	case token.KwEnum:
		return p.parseEnum()
	case token.KwTrue:
		return p.parseFactors(ast.LiteralBool{Value: true})
	case token.KwFalse:
		return p.parseFactors(ast.LiteralBool{Value: false})
	case token.KwNil:
		return p.parseFactors(ast.LiteralNil{})
	case token.KwVoid:
		return p.parseTypeDecl(ast.TypeValue{T: ast.VoidType{}})
	case token.KwLet:
		return p.parseTypeDecl(ast.TypeValue{T: ast.MetaTypeValue{}})
	case token.KwBool:
		return p.parseTypeDecl(ast.TypeValue{T: ast.BoolType{}})
	case token.KwInt:
		return p.parseTypeDecl(ast.TypeValue{T: ast.NewIntType(p.parseFundamentalTypeBits())})
	case token.KwUInt:
		return p.parseTypeDecl(ast.TypeValue{T: ast.NewUIntType(p.parseFundamentalTypeBits())})
	case token.KwFloat:
		return p.parseTypeDecl(ast.TypeValue{T: ast.NewFloatType(p.parseFundamentalTypeBits())})
	case token.KwIf:
		return p.parseBranch()
	case token.KwSelect:
		return p.parseSelect()
	case token.KwDo:
		return p.parseDoWhile()
	case token.KwWhile:
		return p.parseWhile()
	case token.KwFor:
		return p.parseFor()
	case token.KwBreak:
		return ast.Break{}
	case token.KwContinue:
		return ast.Continue{}
	case token.KwDefer:
		return ast.NewDefer(p.Parse())
	case token.KwReturn:
		return ast.NewReturn(p.parseOptionalValue())
	case token.KwYield:
		return ast.NewYield(p.parseOptionalValue())
	default:
		p.errorAt(tok, diagnostics.CodeUnexpectedToken, tok.Payload.Keyword.String())
		return nil
	}
}

// parseOptionalValue parses the operand of return/yield; a bare
// terminator (`;`, `}`, EOF) means the value is absent.
func (p *Parser) parseOptionalValue() ast.Expression {
	switch p.cur.Kind {
	case token.Semicolon, token.BraceRight, token.EOF, token.None:
		return nil
	default:
		return p.Parse()
	}
}

// parseFactors is the continuation parser invoked after every leaf
// (spec.md §4.6.4). Deliberately flat: no operator-precedence climbing,
// since the grammar is right-associative by construction.
func (p *Parser) parseFactors(lhs ast.Expression) ast.Expression {
	var r ast.Expression

	switch p.cur.Kind {
	case token.Keyword:
		if p.cur.Payload.Keyword != token.KwAs {
			r = lhs
			break
		}
		p.advance()
		r = ast.NewCast(lhs, p.Parse())

	case token.Identifier:
		name := p.idents.Intern(p.cur.Payload.Text())
		p.advance()
		var init ast.Expression
		if p.cur.Kind == token.Operator && p.cur.Payload.Operator == token.OpAssign {
			p.advance()
			init = p.Parse()
		} else if p.cur.Kind == token.Identifier {
			p.error(diagnostics.CodeAdjacentIdentifiers, p.cur.Payload.Text())
		}
		r = p.register(ast.NewDeclaration(lhs, name, init))

	case token.Operator:
		op := p.cur.Payload.Operator
		p.advance()
		r = ast.NewBinaryExpression(op, lhs, p.Parse())

	case token.ParenLeft:
		p.advance()
		if id, ok := lhs.(ast.Identifier); ok {
			r = p.parseFunction(&id.ID)
		} else {
			r = lhs
		}

	case token.Semicolon:
		p.advance()
		r = lhs

	default:
		r = lhs
	}

	p.accept(token.Semicolon)
	return r
}

// parseFundamentalTypeBits parses the optional `(bits)` suffix on a
// primitive type keyword (spec.md §4.6.3 "parse_fundamental_type_bits").
func (p *Parser) parseFundamentalTypeBits() uint64 {
	if !p.accept(token.ParenLeft) {
		return ast.DefaultBitWidth
	}
	lit := p.expectAndAdvance(token.LiteralInt, "bit width")
	p.expectAndAdvance(token.ParenRight, ")")
	return lit.Payload.U64
}
