package ast

import (
	"github.com/zero-lang/zc/internal/hashutil"
	"github.com/zero-lang/zc/internal/ident"
)

// Use is `use <expr>(, <expr>)*;` (spec.md §4.6.5 parse_use).
type Use struct {
	Modules []Expression
}

func (*Use) Kind() Kind      { return KindUse }
func (u *Use) IsConst() bool { return true }
func (u *Use) Hash() uint64 {
	h := hashutil.Mix64(hashutil.SeedUse)
	for _, m := range u.Modules {
		h = hashutil.Combine(h, m.Hash())
	}
	return h
}
func (u *Use) Equal(o Expression) bool {
	ou, ok := o.(*Use)
	if !ok || len(u.Modules) != len(ou.Modules) {
		return false
	}
	for i := range u.Modules {
		if !u.Modules[i].Equal(ou.Modules[i]) {
			return false
		}
	}
	return true
}

// Namespace is `namespace <ident> { <expr>* }` (spec.md §4.6.5
// parse_namespace).
type Namespace struct {
	Name     ident.ID
	Elements []Expression
}

func (*Namespace) Kind() Kind      { return KindNamespace }
func (n *Namespace) IsConst() bool { return true }
func (n *Namespace) Hash() uint64 {
	h := hashutil.CombineSeed(hashutil.SeedNamespace, hashutil.U64(uint64(uint32(n.Name))))
	for _, e := range n.Elements {
		h = hashutil.Combine(h, e.Hash())
	}
	return h
}
func (n *Namespace) Equal(o Expression) bool {
	on, ok := o.(*Namespace)
	if !ok || n.Name != on.Name || len(n.Elements) != len(on.Elements) {
		return false
	}
	for i := range n.Elements {
		if !n.Elements[i].Equal(on.Elements[i]) {
			return false
		}
	}
	return true
}

// Declaration binds a name of a given type to an optional initialiser
// (spec.md §4.6.4 "this is a declaration T x [= init]").
type Declaration struct {
	Type Expression
	Name ident.ID
	Init Expression
}

func (*Declaration) Kind() Kind { return KindDeclaration }

// IsConst reports whether type, name, and initialiser are all constant
// (spec.md §4.4 "A Declaration is constant iff its type, name, and
// initialiser are constant"). The identifier handle itself is always
// constant once interned; only type and init can fail the test.
func (d *Declaration) IsConst() bool {
	if d.Type != nil && !d.Type.IsConst() {
		return false
	}
	if d.Init != nil && !d.Init.IsConst() {
		return false
	}
	return true
}
func (d *Declaration) Hash() uint64 {
	h := hashutil.CombineSeed(hashutil.SeedDeclaration, hashutil.U64(uint64(uint32(d.Name))))
	return exprHash(exprHash(h, d.Type), d.Init)
}
func (d *Declaration) Equal(o Expression) bool {
	od, ok := o.(*Declaration)
	if !ok || d.Name != od.Name {
		return false
	}
	return exprEqual(d.Type, od.Type) && exprEqual(d.Init, od.Init)
}

// Identifier is an interned, unqualified name reference (spec.md §3
// "Identifier{id}").
type Identifier struct {
	ID ident.ID
}

func (Identifier) Kind() Kind      { return KindIdentifier }
func (Identifier) IsConst() bool   { return true }
func (i Identifier) Hash() uint64  { return hashutil.CombineSeed(hashutil.SeedIdentifier, hashutil.U64(uint64(uint32(i.ID)))) }
func (i Identifier) Equal(o Expression) bool {
	oi, ok := o.(Identifier)
	return ok && i.ID == oi.ID
}

// QualifiedIdentifier is a dotted sequence of interned names (spec.md §3
// "QualifiedIdentifier{names[]}"; SPEC_FULL.md's `use a.b.c` supplement).
type QualifiedIdentifier struct {
	Names []ident.ID
}

func (*QualifiedIdentifier) Kind() Kind    { return KindQualifiedIdentifier }
func (*QualifiedIdentifier) IsConst() bool { return true }
func (q *QualifiedIdentifier) Hash() uint64 {
	h := hashutil.Mix64(hashutil.SeedQualifiedIdentifier)
	for _, n := range q.Names {
		h = hashutil.Combine(h, hashutil.U64(uint64(uint32(n))))
	}
	return h
}
func (q *QualifiedIdentifier) Equal(o Expression) bool {
	oq, ok := o.(*QualifiedIdentifier)
	if !ok || len(q.Names) != len(oq.Names) {
		return false
	}
	for i := range q.Names {
		if q.Names[i] != oq.Names[i] {
			return false
		}
	}
	return true
}

// TypeValue wraps a Type so it can appear wherever an Expression is
// expected (spec.md §3 "Types-as-values: Type (see above), MetaType"): a
// bare Type already satisfies Expression, so TypeValue exists purely to
// distinguish "a type used as a value" call sites (e.g. Cast.NewType,
// Declaration.Type) from "a type describing a value" in doc comments; at
// the representation level it is a transparent pass-through.
type TypeValue struct {
	T Type
}

func (TypeValue) Kind() Kind           { return KindTypeValue }
func (t TypeValue) TypeKind() TypeKind { return t.T.TypeKind() }
func (t TypeValue) IsConst() bool      { return true }
func (t TypeValue) Hash() uint64       { return t.T.Hash() }
func (t TypeValue) Equal(o Expression) bool {
	if ot, ok := o.(TypeValue); ok {
		return t.T.EqualType(ot.T)
	}
	if ot, ok := o.(Type); ok {
		return t.T.EqualType(ot)
	}
	return false
}
func (t TypeValue) EqualType(o Type) bool { return t.T.EqualType(o) }

// LiteralNil is the nil literal.
type LiteralNil struct{}

func (LiteralNil) Kind() Kind              { return KindLiteralNil }
func (LiteralNil) IsConst() bool           { return true }
func (LiteralNil) Hash() uint64            { return hashutil.Mix64(hashutil.SeedNil) }
func (LiteralNil) Equal(o Expression) bool { _, ok := o.(LiteralNil); return ok }

// LiteralBool is a boolean literal.
type LiteralBool struct{ Value bool }

func (LiteralBool) Kind() Kind    { return KindLiteralBool }
func (LiteralBool) IsConst() bool { return true }
func (l LiteralBool) Hash() uint64 {
	v := uint64(0)
	if l.Value {
		v = 1
	}
	return hashutil.CombineSeed(hashutil.SeedLiteralBool, hashutil.U64(v))
}
func (l LiteralBool) Equal(o Expression) bool {
	ol, ok := o.(LiteralBool)
	return ok && l.Value == ol.Value
}

// LiteralInt is a signed 64-bit integer literal.
type LiteralInt struct{ Value int64 }

func (LiteralInt) Kind() Kind      { return KindLiteralInt }
func (LiteralInt) IsConst() bool   { return true }
func (l LiteralInt) Hash() uint64  { return hashutil.CombineSeed(hashutil.SeedLiteralInt, hashutil.U64(uint64(l.Value))) }
func (l LiteralInt) Equal(o Expression) bool {
	ol, ok := o.(LiteralInt)
	return ok && l.Value == ol.Value
}

// LiteralUint is an unsigned 64-bit integer literal.
type LiteralUint struct{ Value uint64 }

func (LiteralUint) Kind() Kind     { return KindLiteralUint }
func (LiteralUint) IsConst() bool  { return true }
func (l LiteralUint) Hash() uint64 { return hashutil.CombineSeed(hashutil.SeedLiteralUint, hashutil.U64(l.Value)) }
func (l LiteralUint) Equal(o Expression) bool {
	ol, ok := o.(LiteralUint)
	return ok && l.Value == ol.Value
}

// LiteralReal is an IEEE 754 double literal.
type LiteralReal struct{ Value float64 }

func (LiteralReal) Kind() Kind    { return KindLiteralReal }
func (LiteralReal) IsConst() bool { return true }
func (l LiteralReal) Hash() uint64 {
	return hashutil.CombineSeed(hashutil.SeedLiteralReal, hashutil.U64(floatBits(l.Value)))
}
func (l LiteralReal) Equal(o Expression) bool {
	ol, ok := o.(LiteralReal)
	return ok && l.Value == ol.Value
}

// NoOp is the empty expression. The parser does not build it: a `;;`
// token at dispatch ends the parse instead.
type NoOp struct{}

func (NoOp) Kind() Kind              { return KindNoOp }
func (NoOp) IsConst() bool           { return true }
func (NoOp) Hash() uint64            { return hashutil.Mix64(hashutil.SeedNoOp) }
func (NoOp) Equal(o Expression) bool { _, ok := o.(NoOp); return ok }

// Wildcard is the `$` token parsed standalone.
type Wildcard struct{}

func (Wildcard) Kind() Kind              { return KindWildcard }
func (Wildcard) IsConst() bool           { return true }
func (Wildcard) Hash() uint64            { return hashutil.Mix64(hashutil.SeedWildcard) }
func (Wildcard) Equal(o Expression) bool { _, ok := o.(Wildcard); return ok }

// TraitsOf is `?value` (spec.md §3 "TraitsOf{value}").
type TraitsOf struct {
	Value Expression
}

func (*TraitsOf) Kind() Kind      { return KindTraitsOf }
func (*TraitsOf) IsConst() bool   { return true }
func (t *TraitsOf) Hash() uint64  { return exprHash(hashutil.Mix64(hashutil.SeedTraitsOf), t.Value) }
func (t *TraitsOf) Equal(o Expression) bool {
	ot, ok := o.(*TraitsOf)
	return ok && exprEqual(t.Value, ot.Value)
}

// Pragma is a compiler directive (SPEC_FULL.md supplemented feature,
// grounded on original_source's `pragma` keyword and zcc_core/Keyword.hpp).
// It carries the directive name plus an optional argument list, mirroring
// Use's module-list shape.
type Pragma struct {
	Name ident.ID
	Args []Expression
}

func (*Pragma) Kind() Kind      { return KindPragma }
func (*Pragma) IsConst() bool   { return true }
func (p *Pragma) Hash() uint64 {
	h := hashutil.CombineSeed(hashutil.SeedPragma, hashutil.U64(uint64(uint32(p.Name))))
	for _, a := range p.Args {
		h = hashutil.Combine(h, a.Hash())
	}
	return h
}
func (p *Pragma) Equal(o Expression) bool {
	op, ok := o.(*Pragma)
	if !ok || p.Name != op.Name || len(p.Args) != len(op.Args) {
		return false
	}
	for i := range p.Args {
		if !p.Args[i].Equal(op.Args[i]) {
			return false
		}
	}
	return true
}
