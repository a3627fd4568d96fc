package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zero-lang/zc/internal/ast"
	"github.com/zero-lang/zc/internal/ident"
)

// Property 1 (spec.md §8): Kind() round-trips through its String() table
// without falling back to "Invalid" for each of the variants listed below.
func TestKindStringRoundTrip(t *testing.T) {
	kinds := []ast.Kind{
		ast.KindUse, ast.KindDeclaration, ast.KindIdentifier, ast.KindLiteralInt,
		ast.KindScope, ast.KindBranch, ast.KindFunction, ast.KindPragma,
	}
	for _, k := range kinds {
		assert.NotEqual(t, "Invalid", k.String())
	}
}

func TestUnknownKindStringsAsInvalid(t *testing.T) {
	assert.Equal(t, "Invalid", ast.Kind(9999).String())
}

// Property 2 (spec.md §8): hashing is stable across independent values
// built the same way.
func TestLiteralHashStable(t *testing.T) {
	a := ast.LiteralInt{Value: 42}
	b := ast.LiteralInt{Value: 42}
	assert.Equal(t, a.Hash(), b.Hash())
}

func TestDifferentLiteralsHashDifferently(t *testing.T) {
	a := ast.LiteralInt{Value: 1}
	b := ast.LiteralInt{Value: 2}
	assert.NotEqual(t, a.Hash(), b.Hash())
}

// Property 3 (spec.md §8): Equal implies Hash equality.
func TestEqualImpliesHashEqual(t *testing.T) {
	tbl := ident.NewTable()
	id := tbl.Intern("x")
	a := &ast.Declaration{Name: id, Init: ast.LiteralInt{Value: 1}}
	b := &ast.Declaration{Name: id, Init: ast.LiteralInt{Value: 1}}
	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash())
}

func TestDeclarationNotEqualWhenInitDiffers(t *testing.T) {
	tbl := ident.NewTable()
	id := tbl.Intern("x")
	a := &ast.Declaration{Name: id, Init: ast.LiteralInt{Value: 1}}
	b := &ast.Declaration{Name: id, Init: ast.LiteralInt{Value: 2}}
	assert.False(t, a.Equal(b))
}

// Property 4 (spec.md §8): constness composes — a Declaration is const iff
// its type, name, and initialiser all are.
func TestDeclarationConstComposition(t *testing.T) {
	tbl := ident.NewTable()
	id := tbl.Intern("x")

	constDecl := &ast.Declaration{Name: id, Init: ast.LiteralInt{Value: 1}}
	assert.True(t, constDecl.IsConst())

	call := &ast.FunctionCall{Callable: ast.Identifier{ID: id}}
	require := assert.New(t)
	require.False(call.IsConst())

	nonConstDecl := &ast.Declaration{Name: id, Init: call}
	assert.False(t, nonConstDecl.IsConst())
}

// Observable-effect nodes are never const regardless of their operand
// (spec.md §4.4: "Control-flow whose body contains observable effects
// (Return, Yield, FunctionCall, Defer) is non-constant").
func TestObservableEffectNodesAreNeverConst(t *testing.T) {
	assert.False(t, (&ast.Return{Value: ast.LiteralInt{Value: 1}}).IsConst())
	assert.False(t, (&ast.Return{}).IsConst())
	assert.False(t, (&ast.Yield{Value: ast.LiteralInt{Value: 1}}).IsConst())
	assert.False(t, (&ast.Yield{}).IsConst())
	assert.False(t, (&ast.Cast{Value: ast.LiteralInt{Value: 1}, NewType: ast.TypeValue{T: ast.NewIntType(64)}}).IsConst())
}

// Function.IsConst requires every parameter, the return type, and the body
// to all be const, not just the parameters.
func TestFunctionConstRequiresReturnTypeAndBody(t *testing.T) {
	constFn := &ast.Function{
		ReturnType: ast.TypeValue{T: ast.NewIntType(32)},
		Body:       ast.LiteralInt{Value: 1},
	}
	assert.True(t, constFn.IsConst())

	nonConstBody := &ast.Function{
		ReturnType: ast.TypeValue{T: ast.NewIntType(32)},
		Body:       &ast.Return{Value: ast.LiteralInt{Value: 1}},
	}
	assert.False(t, nonConstBody.IsConst())
}

func TestUseEqualityIsOrderSensitive(t *testing.T) {
	a := &ast.Use{Modules: []ast.Expression{ast.LiteralInt{Value: 1}, ast.LiteralInt{Value: 2}}}
	b := &ast.Use{Modules: []ast.Expression{ast.LiteralInt{Value: 2}, ast.LiteralInt{Value: 1}}}
	assert.False(t, a.Equal(b))
}

func TestTypeValueWrapsIntType(t *testing.T) {
	tv := ast.TypeValue{T: ast.NewIntType(64)}
	assert.Equal(t, ast.KindTypeValue, tv.Kind())
	assert.Equal(t, ast.TypeInt, tv.TypeKind())
}

func TestIntTypeDefaultsBitWidth(t *testing.T) {
	assert.Equal(t, uint64(ast.DefaultBitWidth), ast.NewIntType(0).Bits)
	assert.Equal(t, uint64(64), ast.NewIntType(64).Bits)
}

func TestIntTypeEqualTypeComparesBits(t *testing.T) {
	a := ast.NewIntType(32)
	b := ast.NewIntType(32)
	c := ast.NewIntType(64)
	assert.True(t, a.EqualType(b))
	assert.False(t, a.EqualType(c))
}

func TestRecordTypeIndexesPreInitialized(t *testing.T) {
	r := ast.NewRecordType()
	assert.NotNil(t, r.Indexes.Variables)
	assert.NotNil(t, r.Indexes.StaticVariables)
	assert.NotNil(t, r.Indexes.Functions)
	assert.NotNil(t, r.Indexes.StaticFunctions)
	assert.NotNil(t, r.Indexes.Operators)
}

func TestQualifiedIdentifierEquality(t *testing.T) {
	tbl := ident.NewTable()
	a := tbl.Intern("a")
	b := tbl.Intern("b")
	q1 := &ast.QualifiedIdentifier{Names: []ident.ID{a, b}}
	q2 := &ast.QualifiedIdentifier{Names: []ident.ID{a, b}}
	q3 := &ast.QualifiedIdentifier{Names: []ident.ID{b, a}}
	assert.True(t, q1.Equal(q2))
	assert.False(t, q1.Equal(q3))
}

func TestPragmaHashIncludesArgs(t *testing.T) {
	tbl := ident.NewTable()
	name := tbl.Intern("inline")
	withArg := &ast.Pragma{Name: name, Args: []ast.Expression{ast.LiteralBool{Value: true}}}
	withoutArg := &ast.Pragma{Name: name}
	assert.NotEqual(t, withArg.Hash(), withoutArg.Hash())
}
