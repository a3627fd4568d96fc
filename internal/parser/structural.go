package parser

// Structural sub-parsers (spec.md §4.6.5), grounded on
// original_source/zcc_core/Parser.cpp's ParseByUse/ParseByNamespace/
// ParseType/ParseRecord/ParseByEnum/ParseTypeDecl/ParseBranch/
// ParseSelect/ParseWhile/ParseDoWhile/ParseFor/ParseScope/ParseBracket/
// ParseParenthesis/ParseFunction, translated token-for-token into the
// Parser's advance/accept/expect discipline.

import (
	"github.com/zero-lang/zc/internal/ast"
	"github.com/zero-lang/zc/internal/diagnostics"
	"github.com/zero-lang/zc/internal/ident"
	"github.com/zero-lang/zc/internal/lexer"
	"github.com/zero-lang/zc/internal/token"
)

// asType unwraps an expression into a Type when it denotes one, either
// directly (an Expression that is itself a Type, e.g. a composite type
// produced by parse_record/parse_enum) or via the TypeValue wrapper that
// parse_type_decl and the primitive-type dispatch entries use to make a
// bare type keyword usable as an Expression (spec.md §3's "TypeValue is a
// transparent pass-through").
func asType(e ast.Expression) (ast.Type, bool) {
	if tv, ok := e.(ast.TypeValue); ok {
		return tv.T, true
	}
	if t, ok := e.(ast.Type); ok {
		return t, true
	}
	return nil, false
}

// parseExpressionsUntil gathers expressions separated by an optional
// trailing semicolon until terminator, then consumes terminator.
func (p *Parser) parseExpressionsUntil(terminator token.Kind) []ast.Expression {
	var r []ast.Expression
	for p.cur.Kind != terminator {
		r = append(r, p.Parse())
		p.accept(token.Semicolon)
	}
	p.advance()
	return r
}

// parseCommaSeparated gathers expressions separated by Comma until
// terminator, then consumes terminator. An immediate terminator yields an
// empty, non-nil-checked slice.
func (p *Parser) parseCommaSeparated(terminator token.Kind) []ast.Expression {
	var r []ast.Expression
	if p.cur.Kind == terminator {
		p.advance()
		return r
	}
	for {
		r = append(r, p.Parse())
		if p.cur.Kind == terminator {
			p.advance()
			return r
		}
		p.expectAndAdvance(token.Comma, ",")
	}
}

// parseControlFlowBody parses the body shared by every control-flow form:
// either a brace-delimited block or `do` followed by a single expression.
func (p *Parser) parseControlFlowBody() ast.Expression {
	switch p.cur.Kind {
	case token.Keyword:
		if p.cur.Payload.Keyword != token.KwDo {
			p.error(diagnostics.CodeExpectedToken, "do", p.cur.Kind.String())
		}
		p.advance()
		return p.Parse()
	case token.BraceLeft:
		return p.Parse()
	default:
		p.error(diagnostics.CodeExpectedToken, "control-flow body", p.cur.Kind.String())
		return nil
	}
}

// parseUse parses `use <path>(, <path>)*;` (spec.md §4.6.5), building a
// QualifiedIdentifier per dotted module path rather than routing through
// the general Parse() dispatch — SPEC_FULL.md's qualified-identifier
// supplement, grounded on original_source/zcc_core/Parser.cpp's
// ParseByUse together with the dot-inclusive identifier tokenizing rule
// (spec.md §4.3): a module path is lexed as a single Identifier token
// whose text parse_use splits back into segments.
func (p *Parser) parseUse() ast.Expression {
	var modules []ast.Expression
	for {
		modules = append(modules, p.parseModulePath())
		if p.cur.Kind != token.Comma {
			break
		}
		p.advance()
	}
	p.accept(token.Semicolon)
	return ast.NewUse(modules)
}

func (p *Parser) parseModulePath() ast.Expression {
	p.expect(token.Identifier, "module path")
	segments := lexer.SplitQualified(p.cur.Payload.Text())
	p.advance()

	if len(segments) == 1 {
		return ast.Identifier{ID: p.idents.Intern(segments[0])}
	}
	ids := make([]ident.ID, len(segments))
	for i, s := range segments {
		ids[i] = p.idents.Intern(s)
	}
	return ast.NewQualifiedIdentifier(ids)
}

func (p *Parser) parseNamespace() ast.Expression {
	p.expect(token.Identifier, "namespace name")
	name := p.idents.Intern(p.cur.Payload.Text())
	p.advance()
	p.expectAndAdvance(token.BraceLeft, "{")
	elements := p.parseExpressionsUntil(token.BraceRight)
	return ast.NewNamespace(name, elements)
}

func (p *Parser) parseType() ast.Expression {
	var name ident.ID
	haveName := false
	if p.cur.Kind == token.Identifier {
		name = p.idents.Intern(p.cur.Payload.Text())
		haveName = true
		p.advance()
	}

	switch p.cur.Kind {
	case token.Operator:
		if p.cur.Payload.Operator != token.OpAssign {
			p.error(diagnostics.CodeExpectedToken, "=", p.cur.Kind.String())
		}
		p.advance()
		init := p.Parse()
		p.accept(token.Semicolon)
		return p.register(ast.NewDeclaration(ast.TypeValue{T: ast.MetaTypeValue{}}, name, ast.TypeValue{T: ast.TypeOf(init)}))
	case token.BraceLeft:
		p.advance()
		var namePtr *ident.ID
		if haveName {
			namePtr = &name
		}
		return p.parseRecord(namePtr)
	case token.ParenLeft:
		p.advance()
		diagnostics.Raise(diagnostics.New(p.session, diagnostics.Unimplemented, diagnostics.CodeParametricRecord, p.cur.Position))
		return nil
	default:
		p.accept(token.Semicolon)
		if !haveName {
			p.error(diagnostics.CodeExpectedToken, "identifier", "type declaration")
		}
		return p.register(ast.NewDeclaration(ast.TypeValue{T: ast.MetaTypeValue{}}, name, nil))
	}
}

// parseRecord gathers a `{}`-delimited sequence of Declaration
// expressions; the opening brace has already been consumed by the
// caller. If name is non-nil the record is wrapped in a MetaType-typed
// declaration whose initialiser is the record type (spec.md §4.6.5).
func (p *Parser) parseRecord(name *ident.ID) ast.Expression {
	var fields []ast.RecordField
	for p.cur.Kind != token.BraceRight {
		e := p.Parse()
		decl, ok := e.(*ast.Declaration)
		if !ok {
			p.error(diagnostics.CodeUnexpectedToken, "declaration in record body")
		}
		fields = append(fields, ast.RecordField{Decl: decl})
		p.accept(token.Semicolon)
	}
	p.advance()

	rt := ast.NewRecordType()
	rt.Fields = fields
	for _, f := range fields {
		if _, isFunc := f.Decl.Init.(*ast.Function); isFunc {
			rt.Indexes.Functions[f.Decl.Name] = f.Decl
		} else {
			rt.Indexes.Variables[f.Decl.Name] = f.Decl
		}
	}

	if name == nil {
		return ast.TypeValue{T: rt}
	}
	return p.register(ast.NewDeclaration(ast.TypeValue{T: ast.MetaTypeValue{}}, *name, ast.TypeValue{T: rt}))
}

func (p *Parser) parseEnum() ast.Expression {
	p.expect(token.Identifier, "enum name")
	name := p.idents.Intern(p.cur.Payload.Text())
	p.advance()

	var underlying ast.Type
	if p.accept(token.Colon) {
		u, ok := asType(p.Parse())
		if !ok {
			p.error(diagnostics.CodeUnexpectedToken, "enum underlying type")
		}
		underlying = u
	}

	p.expectAndAdvance(token.BraceLeft, "{")
	var values []ast.EnumValue
	for p.cur.Kind != token.BraceRight {
		p.expect(token.Identifier, "enum member name")
		memberName := p.idents.Intern(p.cur.Payload.Text())
		p.advance()
		p.expect(token.Operator, "=")
		if p.cur.Payload.Operator != token.OpAssign {
			p.error(diagnostics.CodeExpectedToken, "=", p.cur.Kind.String())
		}
		p.advance()
		init := p.Parse()
		values = append(values, ast.EnumValue{Name: memberName, Init: init})
		p.accept(token.Comma)
	}
	p.advance()

	return p.register(ast.NewDeclaration(ast.TypeValue{T: ast.MetaTypeValue{}}, name, ast.TypeValue{T: ast.NewEnumType(underlying, values)}))
}

// parseTypeDecl builds a Declaration of static type typ, or returns typ
// unchanged when no identifier follows it (spec.md §4.6.5
// "parse_type_decl(T)"). A present initialiser with an empty static type
// triggers return-type-style inference via ast.TypeOf.
func (p *Parser) parseTypeDecl(typ ast.Expression) ast.Expression {
	if p.cur.Kind != token.Identifier {
		return typ
	}
	name := p.idents.Intern(p.cur.Payload.Text())
	p.advance()

	var init ast.Expression
	if p.cur.Kind == token.Operator && p.cur.Payload.Operator == token.OpAssign {
		p.advance()
		init = p.Parse()
	}
	p.accept(token.Semicolon)

	declType := typ
	if tv, ok := typ.(ast.TypeValue); ok {
		if _, isMeta := tv.T.(ast.MetaTypeValue); isMeta && init != nil {
			declType = ast.TypeValue{T: ast.TypeOf(init)}
		}
	}
	return p.register(ast.NewDeclaration(declType, name, init))
}

func (p *Parser) parseBranch() ast.Expression {
	cond := p.Parse()
	onTrue := p.parseControlFlowBody()

	var onFalse ast.Expression
	if p.cur.Kind == token.Keyword {
		switch p.cur.Payload.Keyword {
		case token.KwElif:
			p.advance()
			onFalse = p.parseBranch()
		case token.KwElse:
			p.advance()
			onFalse = p.Parse()
		}
	}
	return ast.NewBranch(cond, onTrue, onFalse)
}

func (p *Parser) parseSelect() ast.Expression {
	key := p.Parse()
	p.expectAndAdvance(token.BraceLeft, "{")

	var cases []ast.SelectCase
	var def ast.Expression
	haveDefault := false
	for p.cur.Kind != token.BraceRight {
		p.expect(token.Keyword, "if or else")
		switch p.cur.Payload.Keyword {
		case token.KwIf:
			p.advance()
			k := p.Parse()
			p.expectAndAdvance(token.Colon, ":")
			v := p.Parse()
			cases = append(cases, ast.SelectCase{Key: k, Value: v})
		case token.KwElse:
			if haveDefault {
				p.error(diagnostics.CodeUnexpectedToken, "duplicate select else")
			}
			haveDefault = true
			p.advance()
			p.expectAndAdvance(token.Colon, ":")
			def = p.Parse()
		default:
			p.error(diagnostics.CodeUnexpectedToken, p.cur.Payload.Keyword.String())
		}
	}
	p.advance()

	return ast.NewSelect(key, cases, def)
}

func (p *Parser) parseWhile() ast.Expression {
	cond := p.Parse()
	body := p.parseControlFlowBody()
	return ast.NewWhile(cond, body)
}

func (p *Parser) parseDoWhile() ast.Expression {
	p.expect(token.BraceLeft, "{")
	body := p.Parse()
	p.expect(token.Keyword, "while")
	if p.cur.Payload.Keyword != token.KwWhile {
		p.error(diagnostics.CodeExpectedToken, "while", p.cur.Kind.String())
	}
	p.advance()
	cond := p.Parse()
	return ast.NewDoWhile(cond, body)
}

func (p *Parser) parseFor() ast.Expression {
	first := p.Parse()
	if p.cur.Kind == token.Colon {
		p.advance()
		collection := p.Parse()
		body := p.parseControlFlowBody()
		return ast.NewForEach(first, collection, body)
	}
	cond := p.Parse()
	update := p.Parse()
	body := p.parseControlFlowBody()
	return ast.NewFor(first, cond, update, body)
}

func (p *Parser) parseScope() ast.Expression {
	p.scopes.Enter()
	exprs := p.parseExpressionsUntil(token.BraceRight)
	p.scopes.Leave()
	return ast.NewScope(exprs)
}

// parseBracket parses a comma-separated list inside `[]` (spec.md §4.6.5
// "used for tuple/array forms"). original_source/zcc_core/Parser.cpp's
// ParseBracket tracks whether any element is a Type vs a value but then
// returns an uninitialised result on every path — the third Open
// Question spec.md §9 calls out. We resolve it by always building a
// Tuple type over the elements' types, matching the fix spec.md
// prescribes ("the branch [should] produce a Tuple type declaration
// symmetrical to the all-types branch"); there is no value-carrying
// array/tuple literal in the closed sum for the alternative to produce.
func (p *Parser) parseBracket() ast.Expression {
	contents := p.parseCommaSeparated(token.BracketRight)
	p.accept(token.Semicolon)

	elemTypes := make([]ast.Type, len(contents))
	for i, e := range contents {
		if t, ok := asType(e); ok {
			elemTypes[i] = t
			continue
		}
		elemTypes[i] = ast.TypeOf(e)
	}
	return ast.TypeValue{T: ast.NewTupleType(elemTypes)}
}

// parseParen disambiguates a parenthesised expression from a function
// definition: the form is a function iff a Colon or Arrow follows the
// closing paren (spec.md §4.6.5).
func (p *Parser) parseParen() ast.Expression {
	params := p.parseCommaSeparated(token.ParenRight)

	if p.cur.Kind != token.Colon && p.cur.Kind != token.Arrow {
		if len(params) != 1 {
			p.error(diagnostics.CodeUnexpectedToken, "single parenthesised expression")
		}
		return params[0]
	}

	var returnType ast.Expression
	if p.accept(token.Arrow) {
		returnType = p.Parse()
	}
	p.expectAndAdvance(token.Colon, ":")
	body := p.Parse()
	returnType = p.inferredReturnType(returnType, body)

	return ast.NewFunction(params, returnType, body)
}

// inferredReturnType fills in returnType from body via §4.5 inference
// when the parser saw no explicit `=> T`.
func (p *Parser) inferredReturnType(returnType, body ast.Expression) ast.Expression {
	if returnType != nil {
		return returnType
	}
	if s, ok := body.(*ast.Scope); ok {
		_, t, diag := ast.InferReturnType(p.diagSession(), s)
		if diag != nil {
			diagnostics.Raise(diag)
		}
		return ast.TypeValue{T: t}
	}
	return ast.TypeValue{T: ast.TypeOf(body)}
}

// parseFunction parses a parameter list already opened by a preceding
// Identifier-then-ParenLeft (spec.md §4.6.4's function-declaration
// continuation): either a full definition (`: body`) or, with no body, a
// call site (spec.md §4.6.5 "parse_function(name?)").
func (p *Parser) parseFunction(name *ident.ID) ast.Expression {
	params := p.parseCommaSeparated(token.ParenRight)

	var returnType ast.Expression
	if p.accept(token.Arrow) {
		returnType = p.Parse()
	}

	if p.cur.Kind != token.Colon {
		if name == nil {
			p.error(diagnostics.CodeUnexpectedToken, "function body")
		}
		return ast.NewFunctionCall(ast.Identifier{ID: *name}, params)
	}
	p.advance()
	body := p.Parse()
	returnType = p.inferredReturnType(returnType, body)

	fn := ast.NewFunction(params, returnType, body)
	if name == nil {
		return fn
	}
	return p.register(ast.NewDeclaration(ast.TypeValue{T: ast.TypeOf(fn)}, *name, fn))
}
