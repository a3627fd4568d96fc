package ast

// This file wires every composite (pointer-receiver) node variant to its
// own arena (spec.md §4.1 "one pool per node type"). Leaf value variants
// (Identifier, the literals, Break/Continue/NoOp/Wildcard) are
// plain values and never go through a pool — there is nothing for a pool
// to amortise when the Go compiler can already stack-allocate or inline
// them, and spec.md's design notes sanction a general-purpose allocator
// as an equally valid trade-off (§9 "Pools vs general allocators").
//
// Release walks a tree post-order, recursing into every owned child
// before returning the node itself to its pool — the Go-idiomatic
// analogue of the source's recursive handle-destructor chain (spec.md §3
// "deletion is recursive via handle destruction"), expressed as an
// explicit function instead of an RAII destructor because Go has none.

import (
	"github.com/zero-lang/zc/internal/ident"
	"github.com/zero-lang/zc/internal/pool"
	"github.com/zero-lang/zc/internal/token"
)

var (
	declarationPool     = pool.New[Declaration]()
	usePool              = pool.New[Use]()
	namespacePool         = pool.New[Namespace]()
	qualifiedIdentPool    = pool.New[QualifiedIdentifier]()
	scopePool             = pool.New[Scope]()
	branchPool            = pool.New[Branch]()
	selectPool            = pool.New[Select]()
	whilePool             = pool.New[While]()
	doWhilePool           = pool.New[DoWhile]()
	forPool               = pool.New[For]()
	forEachPool           = pool.New[ForEach]()
	unaryPool             = pool.New[UnaryExpression]()
	binaryPool            = pool.New[BinaryExpression]()
	castPool              = pool.New[Cast]()
	functionPool          = pool.New[Function]()
	functionCallPool      = pool.New[FunctionCall]()
	constructorCallPool   = pool.New[ConstructorCall]()
	destructorCallPool    = pool.New[DestructorCall]()
	traitsOfPool          = pool.New[TraitsOf]()
	pragmaPool            = pool.New[Pragma]()
	returnPool            = pool.New[Return]()
	yieldPool             = pool.New[Yield]()
	deferPool             = pool.New[Defer]()
	enumTypePool          = pool.New[EnumType]()
	arrayTypePool         = pool.New[ArrayType]()
	tupleTypePool         = pool.New[TupleType]()
	recordTypePool        = pool.New[RecordType]()
	nestedTypePool        = pool.New[NestedType]()
	functionTypeValuePool = pool.New[FunctionTypeValue]()
)

func NewDeclaration(typ Expression, name ident.ID, init Expression) *Declaration {
	d := declarationPool.Acquire()
	*d = Declaration{Type: typ, Name: name, Init: init}
	return d
}

func NewUse(modules []Expression) *Use {
	u := usePool.Acquire()
	*u = Use{Modules: modules}
	return u
}

func NewNamespace(name ident.ID, elements []Expression) *Namespace {
	n := namespacePool.Acquire()
	*n = Namespace{Name: name, Elements: elements}
	return n
}

func NewQualifiedIdentifier(names []ident.ID) *QualifiedIdentifier {
	q := qualifiedIdentPool.Acquire()
	*q = QualifiedIdentifier{Names: names}
	return q
}

func NewScope(expressions []Expression) *Scope {
	s := scopePool.Acquire()
	*s = Scope{Expressions: expressions}
	return s
}

func NewBranch(cond, onTrue, onFalse Expression) *Branch {
	b := branchPool.Acquire()
	*b = Branch{Condition: cond, OnTrue: onTrue, OnFalse: onFalse}
	return b
}

func NewSelect(key Expression, cases []SelectCase, def Expression) *Select {
	s := selectPool.Acquire()
	*s = Select{Key: key, Cases: cases, Default: def}
	return s
}

func NewWhile(cond, body Expression) *While {
	w := whilePool.Acquire()
	*w = While{Condition: cond, Body: body}
	return w
}

func NewDoWhile(cond, body Expression) *DoWhile {
	d := doWhilePool.Acquire()
	*d = DoWhile{Condition: cond, Body: body}
	return d
}

func NewFor(init, cond, update, body Expression) *For {
	f := forPool.Acquire()
	*f = For{Init: init, Condition: cond, Update: update, Body: body}
	return f
}

func NewForEach(iterator, collection, body Expression) *ForEach {
	f := forEachPool.Acquire()
	*f = ForEach{Iterator: iterator, Collection: collection, Body: body}
	return f
}

func NewUnaryExpression(op token.Operator, operand Expression) *UnaryExpression {
	u := unaryPool.Acquire()
	*u = UnaryExpression{Op: op, Operand: operand}
	return u
}

func NewBinaryExpression(op token.Operator, lhs, rhs Expression) *BinaryExpression {
	b := binaryPool.Acquire()
	*b = BinaryExpression{Op: op, LHS: lhs, RHS: rhs}
	return b
}

func NewCast(value, newType Expression) *Cast {
	c := castPool.Acquire()
	*c = Cast{Value: value, NewType: newType}
	return c
}

func NewFunction(params []Expression, returnType, body Expression) *Function {
	f := functionPool.Acquire()
	*f = Function{Params: params, ReturnType: returnType, Body: body}
	return f
}

func NewFunctionCall(callable Expression, params []Expression) *FunctionCall {
	f := functionCallPool.Acquire()
	*f = FunctionCall{Callable: callable, Params: params}
	return f
}

func NewConstructorCall(object Expression, params []Expression) *ConstructorCall {
	c := constructorCallPool.Acquire()
	*c = ConstructorCall{Object: object, Parameters: params}
	return c
}

func NewDestructorCall(object Expression) *DestructorCall {
	d := destructorCallPool.Acquire()
	*d = DestructorCall{Object: object}
	return d
}

func NewTraitsOf(value Expression) *TraitsOf {
	t := traitsOfPool.Acquire()
	*t = TraitsOf{Value: value}
	return t
}

func NewPragma(name ident.ID, args []Expression) *Pragma {
	p := pragmaPool.Acquire()
	*p = Pragma{Name: name, Args: args}
	return p
}

func NewReturn(value Expression) *Return {
	r := returnPool.Acquire()
	*r = Return{Value: value}
	return r
}

func NewYield(value Expression) *Yield {
	y := yieldPool.Acquire()
	*y = Yield{Value: value}
	return y
}

func NewDefer(body Expression) *Defer {
	d := deferPool.Acquire()
	*d = Defer{Body: body}
	return d
}

func NewEnumType(underlying Type, values []EnumValue) *EnumType {
	e := enumTypePool.Acquire()
	*e = EnumType{Underlying: underlying, Values: values}
	return e
}

func NewArrayType(elem Type, size uint64) *ArrayType {
	a := arrayTypePool.Acquire()
	*a = ArrayType{Elem: elem, Size: size}
	return a
}

func NewTupleType(elems []Type) *TupleType {
	t := tupleTypePool.Acquire()
	*t = TupleType{Elems: elems}
	return t
}

func NewNestedType(inner Type) *NestedType {
	n := nestedTypePool.Acquire()
	*n = NestedType{Inner: inner}
	return n
}

func NewFunctionTypeValue(returnType Type, params []Type) *FunctionTypeValue {
	f := functionTypeValuePool.Acquire()
	*f = FunctionTypeValue{ReturnType: returnType, ParamTypes: params}
	return f
}

// Release returns e, and every node it owns, to their respective pools.
// Safe to call on any Expression, including the zero-size leaf values that
// own nothing.
func Release(e Expression) {
	if e == nil {
		return
	}
	switch v := e.(type) {
	case *Declaration:
		Release(v.Type)
		Release(v.Init)
		*v = Declaration{}
		declarationPool.Release(v)
	case *Use:
		for _, m := range v.Modules {
			Release(m)
		}
		*v = Use{}
		usePool.Release(v)
	case *Namespace:
		for _, el := range v.Elements {
			Release(el)
		}
		*v = Namespace{}
		namespacePool.Release(v)
	case *QualifiedIdentifier:
		*v = QualifiedIdentifier{}
		qualifiedIdentPool.Release(v)
	case *Scope:
		for _, child := range v.Expressions {
			Release(child)
		}
		*v = Scope{}
		scopePool.Release(v)
	case *Branch:
		Release(v.Condition)
		Release(v.OnTrue)
		Release(v.OnFalse)
		*v = Branch{}
		branchPool.Release(v)
	case *Select:
		Release(v.Key)
		for _, c := range v.Cases {
			Release(c.Key)
			Release(c.Value)
		}
		Release(v.Default)
		*v = Select{}
		selectPool.Release(v)
	case *While:
		Release(v.Condition)
		Release(v.Body)
		*v = While{}
		whilePool.Release(v)
	case *DoWhile:
		Release(v.Condition)
		Release(v.Body)
		*v = DoWhile{}
		doWhilePool.Release(v)
	case *For:
		Release(v.Init)
		Release(v.Condition)
		Release(v.Update)
		Release(v.Body)
		*v = For{}
		forPool.Release(v)
	case *ForEach:
		Release(v.Iterator)
		Release(v.Collection)
		Release(v.Body)
		*v = ForEach{}
		forEachPool.Release(v)
	case *UnaryExpression:
		Release(v.Operand)
		*v = UnaryExpression{}
		unaryPool.Release(v)
	case *BinaryExpression:
		Release(v.LHS)
		Release(v.RHS)
		*v = BinaryExpression{}
		binaryPool.Release(v)
	case *Cast:
		Release(v.Value)
		Release(v.NewType)
		*v = Cast{}
		castPool.Release(v)
	case *Function:
		for _, p := range v.Params {
			Release(p)
		}
		Release(v.ReturnType)
		Release(v.Body)
		*v = Function{}
		functionPool.Release(v)
	case *FunctionCall:
		Release(v.Callable)
		for _, p := range v.Params {
			Release(p)
		}
		*v = FunctionCall{}
		functionCallPool.Release(v)
	case *ConstructorCall:
		Release(v.Object)
		for _, p := range v.Parameters {
			Release(p)
		}
		*v = ConstructorCall{}
		constructorCallPool.Release(v)
	case *DestructorCall:
		Release(v.Object)
		*v = DestructorCall{}
		destructorCallPool.Release(v)
	case *TraitsOf:
		Release(v.Value)
		*v = TraitsOf{}
		traitsOfPool.Release(v)
	case *Pragma:
		for _, a := range v.Args {
			Release(a)
		}
		*v = Pragma{}
		pragmaPool.Release(v)
	case *Defer:
		Release(v.Body)
		*v = Defer{}
		deferPool.Release(v)
	case *Return:
		Release(v.Value)
		*v = Return{}
		returnPool.Release(v)
	case *Yield:
		Release(v.Value)
		*v = Yield{}
		yieldPool.Release(v)
	case *EnumType:
		if v.Underlying != nil {
			Release(v.Underlying)
		}
		for _, val := range v.Values {
			Release(val.Init)
		}
		*v = EnumType{}
		enumTypePool.Release(v)
	case *ArrayType:
		if v.Elem != nil {
			Release(v.Elem)
		}
		*v = ArrayType{}
		arrayTypePool.Release(v)
	case *TupleType:
		for _, t := range v.Elems {
			Release(t)
		}
		*v = TupleType{}
		tupleTypePool.Release(v)
	case *RecordType:
		for _, f := range v.Fields {
			Release(f.Decl)
		}
		*v = RecordType{}
		recordTypePool.Release(v)
	case *NestedType:
		Release(v.Inner)
		*v = NestedType{}
		nestedTypePool.Release(v)
	case *FunctionTypeValue:
		Release(v.ReturnType)
		for _, p := range v.ParamTypes {
			Release(p)
		}
		*v = FunctionTypeValue{}
		functionTypeValuePool.Release(v)
	case TypeValue:
		Release(v.T)
	}
	// Value-typed leaves (Identifier, literals, Break, Continue, NoOp,
	// Wildcard, the zero-size Type leaves) own nothing and need no pool
	// interaction. TypeValue is a transparent wrapper (handled above) and
	// not itself pooled.
}
