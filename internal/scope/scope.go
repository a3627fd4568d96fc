// Package scope implements the parser's declaration bookkeeping (spec.md
// §4.6.6): a stack of open lexical scopes plus an always-open module-level
// global scope.
//
// Grounded on mcgru-funxy/internal/symbols.SymbolTable's `outer
// *SymbolTable` linked-scope-chain shape, narrowed to the pure
// name-to-declaration registry spec.md describes; funxy's richer
// kind/trait bookkeeping is out of scope here (that lives in the excluded
// semantic-analysis layer).
package scope

import "github.com/zero-lang/zc/internal/ident"

// Declaration is the minimal shape scope needs to register and look up: a
// name and an opaque payload the caller supplies (internal/ast's
// *ast.Declaration in practice, kept as `any` here so scope has no import
// dependency on ast).
type Declaration = any

// Scope is one lexical scope: a flat map of interned names to their
// declarations, plus a link to the enclosing scope.
type Scope struct {
	outer   *Scope
	members map[ident.ID]Declaration
}

func newScope(outer *Scope) *Scope {
	return &Scope{outer: outer, members: make(map[ident.ID]Declaration)}
}

// Stack holds the parser's open-scope chain and its always-open global
// scope (spec.md §4.6.6 "The parser maintains a stack of pointers to open
// scopes and an always-open module-level global scope").
type Stack struct {
	global *Scope
	top    *Scope
}

// NewStack returns a Stack with only the global scope open.
func NewStack() *Stack {
	g := newScope(nil)
	return &Stack{global: g, top: g}
}

// Enter pushes a fresh scope onto the stack, nested inside the current
// top.
func (s *Stack) Enter() {
	s.top = newScope(s.top)
}

// Leave pops the innermost scope. Leaving the global scope is a
// programming error in the caller and is a no-op here; the parser never
// calls Leave without a matching prior Enter.
func (s *Stack) Leave() {
	if s.top == s.global {
		return
	}
	s.top = s.top.outer
}

// Register inserts decl under name into the innermost open scope when
// local is true, otherwise into the global scope (spec.md §4.6.6
// "register_declaration(d, local)").
func (s *Stack) Register(name ident.ID, decl Declaration, local bool) {
	if local {
		s.top.members[name] = decl
	} else {
		s.global.members[name] = decl
	}
}

// Lookup searches the scope chain from innermost to the global scope.
func (s *Stack) Lookup(name ident.ID) (Declaration, bool) {
	for sc := s.top; sc != nil; sc = sc.outer {
		if d, ok := sc.members[name]; ok {
			return d, true
		}
	}
	return nil, false
}

// Depth reports how many scopes are open, including the global scope
// (1 means only the global scope is open).
func (s *Stack) Depth() int {
	n := 0
	for sc := s.top; sc != nil; sc = sc.outer {
		n++
	}
	return n
}
