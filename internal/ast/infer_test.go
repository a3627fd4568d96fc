package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zero-lang/zc/internal/ast"
)

func TestTypeOfLiterals(t *testing.T) {
	assert.Equal(t, ast.NilType{}, ast.TypeOf(ast.LiteralNil{}))
	assert.Equal(t, ast.BoolType{}, ast.TypeOf(ast.LiteralBool{Value: true}))
	assert.Equal(t, ast.NewIntType(ast.DefaultBitWidth), ast.TypeOf(ast.LiteralInt{Value: 1}))
	assert.Equal(t, ast.NewFloatType(ast.DefaultBitWidth), ast.TypeOf(ast.LiteralReal{Value: 1.5}))
}

func TestInferReturnTypeFromReturn(t *testing.T) {
	found, typ, err := ast.InferReturnType(nil, &ast.Return{Value: ast.LiteralInt{Value: 1}})
	require.Nil(t, err)
	require.True(t, found)
	assert.Equal(t, ast.TypeInt, typ.TypeKind())
}

func TestInferReturnTypeVoidReturn(t *testing.T) {
	found, typ, err := ast.InferReturnType(nil, &ast.Return{})
	require.Nil(t, err)
	require.True(t, found)
	assert.Equal(t, ast.TypeVoid, typ.TypeKind())
}

func TestInferReturnTypeBranchAgreeingArms(t *testing.T) {
	branch := &ast.Branch{
		Condition: ast.LiteralBool{Value: true},
		OnTrue:    &ast.Return{Value: ast.LiteralInt{Value: 1}},
		OnFalse:   &ast.Return{Value: ast.LiteralInt{Value: 2}},
	}
	found, typ, err := ast.InferReturnType(nil, branch)
	require.Nil(t, err)
	require.True(t, found)
	assert.Equal(t, ast.TypeInt, typ.TypeKind())
}

func TestInferReturnTypeBranchDisagreeingArmsIsAmbiguous(t *testing.T) {
	branch := &ast.Branch{
		Condition: ast.LiteralBool{Value: true},
		OnTrue:    &ast.Return{Value: ast.LiteralInt{Value: 1}},
		OnFalse:   &ast.Return{Value: ast.LiteralBool{Value: true}},
	}
	found, _, err := ast.InferReturnType(nil, branch)
	assert.True(t, found)
	require.NotNil(t, err)
	assert.Equal(t, ast.Ambiguity, err.Category)
}

func TestInferReturnTypeScopeCollectsNestedReturns(t *testing.T) {
	scope := &ast.Scope{Expressions: []ast.Expression{
		ast.LiteralInt{Value: 1},
		&ast.Return{Value: ast.LiteralInt{Value: 2}},
	}}
	found, typ, err := ast.InferReturnType(nil, scope)
	require.Nil(t, err)
	require.True(t, found)
	assert.Equal(t, ast.TypeInt, typ.TypeKind())
}

func TestInferReturnTypeNoReturnFound(t *testing.T) {
	scope := &ast.Scope{Expressions: []ast.Expression{ast.LiteralInt{Value: 1}}}
	found, _, err := ast.InferReturnType(nil, scope)
	assert.Nil(t, err)
	assert.False(t, found)
}

func TestInferReturnTypeSelectDisagreeingCasesIsAmbiguous(t *testing.T) {
	sel := &ast.Select{
		Key: ast.LiteralInt{Value: 1},
		Cases: []ast.SelectCase{
			{Key: ast.LiteralInt{Value: 1}, Value: &ast.Return{Value: ast.LiteralInt{Value: 1}}},
			{Key: ast.LiteralInt{Value: 2}, Value: &ast.Return{Value: ast.LiteralBool{Value: false}}},
		},
	}
	found, _, err := ast.InferReturnType(nil, sel)
	assert.True(t, found)
	require.NotNil(t, err)
}

func TestInferReturnTypePassesThroughLoops(t *testing.T) {
	w := &ast.While{Condition: ast.LiteralBool{Value: true}, Body: &ast.Return{Value: ast.LiteralInt{Value: 9}}}
	found, typ, err := ast.InferReturnType(nil, w)
	require.Nil(t, err)
	require.True(t, found)
	assert.Equal(t, ast.TypeInt, typ.TypeKind())
}
