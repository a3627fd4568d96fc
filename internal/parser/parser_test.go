package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zero-lang/zc/internal/ast"
	"github.com/zero-lang/zc/internal/parser"
)

// Scenario 1 (spec.md §8): `int x = 3;`
func TestDeclarationWithInitializer(t *testing.T) {
	mod, err := parser.ParseString("int x = 3;")
	require.NoError(t, err)
	require.Len(t, mod.Root.Expressions, 1)

	decl, ok := mod.Root.Expressions[0].(*ast.Declaration)
	require.True(t, ok)
	assert.Equal(t, "x", mod.Identifiers.Name(decl.Name))

	tv, ok := decl.Type.(ast.TypeValue)
	require.True(t, ok)
	assert.Equal(t, ast.TypeInt, tv.TypeKind())

	lit, ok := decl.Init.(ast.LiteralInt)
	require.True(t, ok)
	assert.Equal(t, int64(3), lit.Value)
}

// Scenario 2 (spec.md §8): a line comment followed by a hex literal.
func TestCommentThenHexLiteral(t *testing.T) {
	mod, err := parser.ParseString("`` a line comment\n0xFF")
	require.NoError(t, err)
	require.Len(t, mod.Root.Expressions, 1)

	lit, ok := mod.Root.Expressions[0].(ast.LiteralInt)
	require.True(t, ok)
	assert.Equal(t, int64(255), lit.Value)
}

// Scenario 3 (spec.md §8): `if/else` branch.
func TestIfElseBranch(t *testing.T) {
	mod, err := parser.ParseString("if true do 1 else 2")
	require.NoError(t, err)
	require.Len(t, mod.Root.Expressions, 1)

	branch, ok := mod.Root.Expressions[0].(*ast.Branch)
	require.True(t, ok)
	assert.Equal(t, ast.LiteralBool{Value: true}, branch.Condition)
	assert.Equal(t, ast.LiteralInt{Value: 1}, branch.OnTrue)
	assert.Equal(t, ast.LiteralInt{Value: 2}, branch.OnFalse)
}

// Scenario 4 (spec.md §8): function with no explicit return type, which
// is inferred from its body.
func TestFunctionWithInferredReturnType(t *testing.T) {
	mod, err := parser.ParseString("(x) : { return 1; }")
	require.NoError(t, err)
	require.Len(t, mod.Root.Expressions, 1)

	fn, ok := mod.Root.Expressions[0].(*ast.Function)
	require.True(t, ok)
	require.Len(t, fn.Params, 1)

	tv, ok := fn.ReturnType.(ast.TypeValue)
	require.True(t, ok)
	assert.Equal(t, ast.TypeInt, tv.TypeKind())
}

// Scenario 5 (spec.md §8): `for i : xs do i` ForEach.
func TestForEachLoop(t *testing.T) {
	mod, err := parser.ParseString("for i : xs do i")
	require.NoError(t, err)
	require.Len(t, mod.Root.Expressions, 1)

	fe, ok := mod.Root.Expressions[0].(*ast.ForEach)
	require.True(t, ok)
	assert.Equal(t, "i", mod.Identifiers.Name(fe.Iterator.(ast.Identifier).ID))
	assert.Equal(t, "xs", mod.Identifiers.Name(fe.Collection.(ast.Identifier).ID))
	assert.Equal(t, "i", mod.Identifiers.Name(fe.Body.(ast.Identifier).ID))
}

// Scenario 6 (spec.md §8): `type Pair { ... }` record declaration, hash and
// equality stable across two independent parses of the same source.
func TestRecordDeclarationHashStableAcrossParses(t *testing.T) {
	source := "type Pair { int a; int b; }"

	modA, err := parser.ParseString(source)
	require.NoError(t, err)
	modB, err := parser.ParseString(source)
	require.NoError(t, err)

	declA, ok := modA.Root.Expressions[0].(*ast.Declaration)
	require.True(t, ok)
	declB, ok := modB.Root.Expressions[0].(*ast.Declaration)
	require.True(t, ok)

	assert.True(t, declA.Equal(declB))
	assert.Equal(t, declA.Hash(), declB.Hash())

	recA := declA.Init.(ast.TypeValue).T.(*ast.RecordType)
	require.Len(t, recA.Fields, 2)
	assert.Len(t, recA.Indexes.Variables, 2)
}

func TestUseWithDottedModulePath(t *testing.T) {
	mod, err := parser.ParseString("use a.b.c;")
	require.NoError(t, err)
	use, ok := mod.Root.Expressions[0].(*ast.Use)
	require.True(t, ok)
	require.Len(t, use.Modules, 1)

	q, ok := use.Modules[0].(*ast.QualifiedIdentifier)
	require.True(t, ok)
	names := make([]string, len(q.Names))
	for i, n := range q.Names {
		names[i] = mod.Identifiers.Name(n)
	}
	assert.Equal(t, []string{"a", "b", "c"}, names)
}

func TestPragmaDeclaration(t *testing.T) {
	mod, err := parser.ParseString("pragma inline;")
	require.NoError(t, err)
	p, ok := mod.Root.Expressions[0].(*ast.Pragma)
	require.True(t, ok)
	assert.Equal(t, "inline", mod.Identifiers.Name(p.Name))
}

func TestWhileLoop(t *testing.T) {
	mod, err := parser.ParseString("while true do 1")
	require.NoError(t, err)
	w, ok := mod.Root.Expressions[0].(*ast.While)
	require.True(t, ok)
	assert.Equal(t, ast.LiteralBool{Value: true}, w.Condition)
}

func TestDoWhileLoop(t *testing.T) {
	mod, err := parser.ParseString("do { 1 } while true")
	require.NoError(t, err)
	_, ok := mod.Root.Expressions[0].(*ast.DoWhile)
	require.True(t, ok)
}

func TestBracketTupleType(t *testing.T) {
	mod, err := parser.ParseString("[int, bool]")
	require.NoError(t, err)
	tv, ok := mod.Root.Expressions[0].(ast.TypeValue)
	require.True(t, ok)
	tup, ok := tv.T.(*ast.TupleType)
	require.True(t, ok)
	require.Len(t, tup.Elems, 2)
	assert.Equal(t, ast.TypeInt, tup.Elems[0].TypeKind())
	assert.Equal(t, ast.TypeBool, tup.Elems[1].TypeKind())
}

func TestAdjacentIdentifiersIsSyntaxError(t *testing.T) {
	_, err := parser.ParseString("Pair x y;")
	require.Error(t, err)
}

func TestFunctionCallSite(t *testing.T) {
	mod, err := parser.ParseString("foo(1, 2);")
	require.NoError(t, err)
	call, ok := mod.Root.Expressions[0].(*ast.FunctionCall)
	require.True(t, ok)
	require.Len(t, call.Params, 2)
}

func TestNestedScopeParsesAsScopeExpression(t *testing.T) {
	mod, err := parser.ParseString("{ int x = 1; }")
	require.NoError(t, err)
	s, ok := mod.Root.Expressions[0].(*ast.Scope)
	require.True(t, ok)
	require.Len(t, s.Expressions, 1)
}
