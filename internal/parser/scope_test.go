package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zero-lang/zc/internal/ast"
)

// spec.md §3's invariant ("A Declaration registered in a scope is present
// in exactly one scope") and §2 item 7 ("manages a scope stack, registers
// declarations") require every Declaration the parser builds to land in
// the scope stack, not just the returned tree.
func TestTopLevelDeclarationIsRegisteredGlobally(t *testing.T) {
	p := New("int x = 3;")
	_, err := p.ParseFile()
	require.NoError(t, err)

	name := p.idents.Intern("x")
	decl, ok := p.scopes.Lookup(name)
	require.True(t, ok)
	_, isDecl := decl.(*ast.Declaration)
	assert.True(t, isDecl)
}

func TestNestedDeclarationIsRegisteredLocally(t *testing.T) {
	p := New("{ int y = 1; }")
	_, err := p.ParseFile()
	require.NoError(t, err)

	// the nested scope that held y has already been left by the time
	// ParseFile returns, so the name no longer resolves from the top.
	name := p.idents.Intern("y")
	_, ok := p.scopes.Lookup(name)
	assert.False(t, ok)
}

func TestRecordDeclarationIsRegistered(t *testing.T) {
	p := New("type Pair { int a; int b; }")
	_, err := p.ParseFile()
	require.NoError(t, err)

	name := p.idents.Intern("Pair")
	_, ok := p.scopes.Lookup(name)
	assert.True(t, ok)
}

func TestFunctionDeclarationIsRegistered(t *testing.T) {
	p := New("add(x, y) : { return x; }")
	_, err := p.ParseFile()
	require.NoError(t, err)

	name := p.idents.Intern("add")
	decl, ok := p.scopes.Lookup(name)
	require.True(t, ok)
	d := decl.(*ast.Declaration)
	_, isFn := d.Init.(*ast.Function)
	assert.True(t, isFn)
}
