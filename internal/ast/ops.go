package ast

import (
	"github.com/zero-lang/zc/internal/hashutil"
	"github.com/zero-lang/zc/internal/token"
)

// UnaryExpression is a prefix operator applied to one operand (spec.md
// §4.6.3 "wrap parse() in UnaryExpression{op, operand}").
type UnaryExpression struct {
	Op      token.Operator
	Operand Expression
}

func (*UnaryExpression) Kind() Kind      { return KindUnaryExpression }
func (u *UnaryExpression) IsConst() bool { return u.Operand.IsConst() }
func (u *UnaryExpression) Hash() uint64 {
	h := hashutil.CombineSeed(hashutil.SeedUnaryExpression, hashutil.U64(uint64(u.Op)))
	return hashutil.Combine(h, u.Operand.Hash())
}
func (u *UnaryExpression) Equal(o Expression) bool {
	ou, ok := o.(*UnaryExpression)
	return ok && u.Op == ou.Op && u.Operand.Equal(ou.Operand)
}

// BinaryExpression is `lhs op rhs` built without precedence climbing
// (spec.md §4.6.4: "No operator-precedence climbing — the grammar is
// right-associative by construction").
type BinaryExpression struct {
	Op  token.Operator
	LHS Expression
	RHS Expression
}

func (*BinaryExpression) Kind() Kind      { return KindBinaryExpression }
func (b *BinaryExpression) IsConst() bool { return b.LHS.IsConst() && b.RHS.IsConst() }
func (b *BinaryExpression) Hash() uint64 {
	h := hashutil.CombineSeed(hashutil.SeedBinaryExpression, hashutil.U64(uint64(b.Op)))
	h = hashutil.Combine(h, b.LHS.Hash())
	return hashutil.Combine(h, b.RHS.Hash())
}
func (b *BinaryExpression) Equal(o Expression) bool {
	ob, ok := o.(*BinaryExpression)
	return ok && b.Op == ob.Op && b.LHS.Equal(ob.LHS) && b.RHS.Equal(ob.RHS)
}

// Cast is `value as new_type` (spec.md §4.6.4 "Cast{lhs, parse() as
// new_type}").
type Cast struct {
	Value   Expression
	NewType Expression
}

func (*Cast) Kind() Kind    { return KindCast }
func (*Cast) IsConst() bool { return false }
func (c *Cast) Hash() uint64 {
	return hashutil.Combine(hashutil.Combine(hashutil.Mix64(hashutil.SeedCast), c.Value.Hash()), c.NewType.Hash())
}
func (c *Cast) Equal(o Expression) bool {
	oc, ok := o.(*Cast)
	return ok && c.Value.Equal(oc.Value) && c.NewType.Equal(oc.NewType)
}

// Function is a definition: parameters, optional declared return type, and
// a body (spec.md §4.6.5 parse_function / parse_paren).
type Function struct {
	Params     []Expression
	ReturnType Expression // nil until resolved; may be inferred (spec.md §4.5)
	Body       Expression
}

func (*Function) Kind() Kind { return KindFunction }

// IsConst mirrors original_source's Function::IsConst, which treats a
// function literal as constant only when every parameter declaration,
// its return type, and its body all are.
func (f *Function) IsConst() bool {
	for _, p := range f.Params {
		if !p.IsConst() {
			return false
		}
	}
	if f.ReturnType != nil && !f.ReturnType.IsConst() {
		return false
	}
	return f.Body == nil || f.Body.IsConst()
}
func (f *Function) Hash() uint64 {
	h := hashutil.Mix64(hashutil.SeedFunction)
	for _, p := range f.Params {
		h = hashutil.Combine(h, p.Hash())
	}
	h = exprHash(h, f.ReturnType)
	return exprHash(h, f.Body)
}
func (f *Function) Equal(o Expression) bool {
	of, ok := o.(*Function)
	if !ok || len(f.Params) != len(of.Params) {
		return false
	}
	for i := range f.Params {
		if !f.Params[i].Equal(of.Params[i]) {
			return false
		}
	}
	return exprEqual(f.ReturnType, of.ReturnType) && exprEqual(f.Body, of.Body)
}

// FunctionCall is a call site: `callable(params...)` (spec.md §4.6.5
// parse_function's no-body branch).
type FunctionCall struct {
	Callable Expression
	Params   []Expression
}

func (*FunctionCall) Kind() Kind { return KindFunctionCall }

// IsConst mirrors original_source's FunctionCall::IsConst: a call is never
// treated as constant, since calling is an observable effect (spec.md
// §4.4 "Control-flow whose body contains observable effects... is
// non-constant").
func (f *FunctionCall) IsConst() bool { return false }
func (f *FunctionCall) Hash() uint64 {
	h := hashutil.Combine(hashutil.Mix64(hashutil.SeedFunctionCall), f.Callable.Hash())
	for _, p := range f.Params {
		h = hashutil.Combine(h, p.Hash())
	}
	return h
}
func (f *FunctionCall) Equal(o Expression) bool {
	of, ok := o.(*FunctionCall)
	if !ok || !f.Callable.Equal(of.Callable) || len(f.Params) != len(of.Params) {
		return false
	}
	for i := range f.Params {
		if !f.Params[i].Equal(of.Params[i]) {
			return false
		}
	}
	return true
}

// ConstructorCall invokes a record's constructor (spec.md §3 "Functions:
// ..., ConstructorCall, DestructorCall").
type ConstructorCall struct {
	Object     Expression
	Parameters []Expression
}

func (*ConstructorCall) Kind() Kind    { return KindConstructorCall }
func (*ConstructorCall) IsConst() bool { return true }
func (c *ConstructorCall) Hash() uint64 {
	h := hashutil.Combine(hashutil.Mix64(hashutil.SeedConstructorCall), c.Object.Hash())
	for _, p := range c.Parameters {
		h = hashutil.Combine(h, p.Hash())
	}
	return h
}
func (c *ConstructorCall) Equal(o Expression) bool {
	oc, ok := o.(*ConstructorCall)
	if !ok || !c.Object.Equal(oc.Object) || len(c.Parameters) != len(oc.Parameters) {
		return false
	}
	for i := range c.Parameters {
		if !c.Parameters[i].Equal(oc.Parameters[i]) {
			return false
		}
	}
	return true
}

// DestructorCall invokes a record's destructor.
type DestructorCall struct {
	Object Expression
}

func (*DestructorCall) Kind() Kind      { return KindDestructorCall }
func (*DestructorCall) IsConst() bool   { return true }
func (d *DestructorCall) Hash() uint64  { return exprHash(hashutil.Mix64(hashutil.SeedDestructorCall), d.Object) }
func (d *DestructorCall) Equal(o Expression) bool {
	od, ok := o.(*DestructorCall)
	return ok && d.Object.Equal(od.Object)
}

// Break is the `break` statement.
type Break struct{}

func (Break) Kind() Kind              { return KindBreak }
func (Break) IsConst() bool           { return true }
func (Break) Hash() uint64            { return hashutil.Mix64(hashutil.SeedBreak) }
func (Break) Equal(o Expression) bool { _, ok := o.(Break); return ok }

// Continue is the `continue` statement.
type Continue struct{}

func (Continue) Kind() Kind              { return KindContinue }
func (Continue) IsConst() bool           { return true }
func (Continue) Hash() uint64            { return hashutil.Mix64(hashutil.SeedContinue) }
func (Continue) Equal(o Expression) bool { _, ok := o.(Continue); return ok }

// Return is `return [value]` (spec.md §4.6.3 "return/yield wrap the next
// expression").
type Return struct {
	Value Expression // nil when absent
}

func (*Return) Kind() Kind     { return KindReturn }
func (*Return) IsConst() bool  { return false }
func (r *Return) Hash() uint64 { return exprHash(hashutil.Mix64(hashutil.SeedReturn), r.Value) }
func (r *Return) Equal(o Expression) bool {
	or, ok := o.(*Return)
	return ok && exprEqual(r.Value, or.Value)
}

// Yield is `yield [value]`.
type Yield struct {
	Value Expression // nil when absent
}

func (*Yield) Kind() Kind     { return KindYield }
func (*Yield) IsConst() bool  { return false }
func (y *Yield) Hash() uint64 { return exprHash(hashutil.Mix64(hashutil.SeedYield), y.Value) }
func (y *Yield) Equal(o Expression) bool {
	oy, ok := o.(*Yield)
	return ok && exprEqual(y.Value, oy.Value)
}

// Defer is `defer body`, always deferring an observable effect and so
// never constant.
type Defer struct {
	Body Expression
}

func (*Defer) Kind() Kind      { return KindDefer }
func (*Defer) IsConst() bool   { return false }
func (d *Defer) Hash() uint64  { return exprHash(hashutil.Mix64(hashutil.SeedDefer), d.Body) }
func (d *Defer) Equal(o Expression) bool {
	od, ok := o.(*Defer)
	return ok && d.Body.Equal(od.Body)
}
