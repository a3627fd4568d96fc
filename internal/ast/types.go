package ast

import (
	"github.com/zero-lang/zc/internal/hashutil"
	"github.com/zero-lang/zc/internal/ident"
	"github.com/zero-lang/zc/internal/langspec"
	"github.com/zero-lang/zc/internal/token"
)

// DefaultBitWidth is the implicit width for Int/UInt/Float when the
// source omits a `(bits)` suffix (spec.md §3).
const DefaultBitWidth = langspec.DefaultBitWidth

// MetaTypeValue is the type of types: the type a type-alias declaration's
// name carries (spec.md §3 Types; original_source AST.hpp MetaType).
type MetaTypeValue struct{}

func (MetaTypeValue) Kind() Kind             { return KindTypeValue }
func (MetaTypeValue) TypeKind() TypeKind     { return TypeMeta }
func (MetaTypeValue) IsConst() bool          { return true }
func (MetaTypeValue) Hash() uint64           { return hashutil.Mix64(hashutil.SeedMetaType) }
func (t MetaTypeValue) Equal(o Expression) bool {
	ot, ok := o.(Type)
	return ok && t.EqualType(ot)
}
func (MetaTypeValue) EqualType(o Type) bool { _, ok := o.(MetaTypeValue); return ok }

// VoidType is the absence of a value (spec.md §3, §4.5 "Void" default).
type VoidType struct{}

func (VoidType) Kind() Kind         { return KindTypeValue }
func (VoidType) TypeKind() TypeKind { return TypeVoid }
func (VoidType) IsConst() bool      { return true }
func (VoidType) Hash() uint64       { return hashutil.Mix64(hashutil.SeedVoid) }
func (t VoidType) Equal(o Expression) bool {
	ot, ok := o.(Type)
	return ok && t.EqualType(ot)
}
func (VoidType) EqualType(o Type) bool { _, ok := o.(VoidType); return ok }

// NilType is the type of the nil literal.
type NilType struct{}

func (NilType) Kind() Kind         { return KindTypeValue }
func (NilType) TypeKind() TypeKind { return TypeNil }
func (NilType) IsConst() bool      { return true }
func (NilType) Hash() uint64       { return hashutil.Mix64(hashutil.SeedNil) }
func (t NilType) Equal(o Expression) bool {
	ot, ok := o.(Type)
	return ok && t.EqualType(ot)
}
func (NilType) EqualType(o Type) bool { _, ok := o.(NilType); return ok }

// BoolType is the boolean type.
type BoolType struct{}

func (BoolType) Kind() Kind         { return KindTypeValue }
func (BoolType) TypeKind() TypeKind { return TypeBool }
func (BoolType) IsConst() bool      { return true }
func (BoolType) Hash() uint64       { return hashutil.Mix64(hashutil.SeedBool) }
func (t BoolType) Equal(o Expression) bool {
	ot, ok := o.(Type)
	return ok && t.EqualType(ot)
}
func (BoolType) EqualType(o Type) bool { _, ok := o.(BoolType); return ok }

// IntType is a signed integer of the given bit width (spec.md §3
// "Int{bits}").
type IntType struct{ Bits uint64 }

func NewIntType(bits uint64) IntType {
	if bits == 0 {
		bits = DefaultBitWidth
	}
	return IntType{Bits: bits}
}

func (IntType) Kind() Kind         { return KindTypeValue }
func (IntType) TypeKind() TypeKind { return TypeInt }
func (IntType) IsConst() bool      { return true }
func (t IntType) Hash() uint64 {
	h := hashutil.Mix64(hashutil.SeedInt)
	if t.Bits != DefaultBitWidth {
		h = hashutil.Combine(h, hashutil.U64(t.Bits))
	}
	return h
}
func (t IntType) Equal(o Expression) bool {
	ot, ok := o.(Type)
	return ok && t.EqualType(ot)
}
func (t IntType) EqualType(o Type) bool { ot, ok := o.(IntType); return ok && ot.Bits == t.Bits }

// UIntType is an unsigned integer of the given bit width.
type UIntType struct{ Bits uint64 }

func NewUIntType(bits uint64) UIntType {
	if bits == 0 {
		bits = DefaultBitWidth
	}
	return UIntType{Bits: bits}
}

func (UIntType) Kind() Kind         { return KindTypeValue }
func (UIntType) TypeKind() TypeKind { return TypeUInt }
func (UIntType) IsConst() bool      { return true }
func (t UIntType) Hash() uint64 {
	h := hashutil.Mix64(hashutil.SeedUInt)
	if t.Bits != DefaultBitWidth {
		h = hashutil.Combine(h, hashutil.U64(t.Bits))
	}
	return h
}
func (t UIntType) Equal(o Expression) bool {
	ot, ok := o.(Type)
	return ok && t.EqualType(ot)
}
func (t UIntType) EqualType(o Type) bool { ot, ok := o.(UIntType); return ok && ot.Bits == t.Bits }

// FloatType is a float of the given bit width.
type FloatType struct{ Bits uint64 }

func NewFloatType(bits uint64) FloatType {
	if bits == 0 {
		bits = DefaultBitWidth
	}
	return FloatType{Bits: bits}
}

func (FloatType) Kind() Kind         { return KindTypeValue }
func (FloatType) TypeKind() TypeKind { return TypeFloat }
func (FloatType) IsConst() bool      { return true }
func (t FloatType) Hash() uint64 {
	h := hashutil.Mix64(hashutil.SeedFloat)
	if t.Bits != DefaultBitWidth {
		h = hashutil.Combine(h, hashutil.U64(t.Bits))
	}
	return h
}
func (t FloatType) Equal(o Expression) bool {
	ot, ok := o.(Type)
	return ok && t.EqualType(ot)
}
func (t FloatType) EqualType(o Type) bool { ot, ok := o.(FloatType); return ok && ot.Bits == t.Bits }

// EnumValue pairs a declared enumerator name with its value expression.
type EnumValue struct {
	Name ident.ID
	Init Expression
}

// EnumType is a named set of enumerators over an underlying integral type
// (spec.md §3 "Enum"; §4.6.5 parse_enum).
type EnumType struct {
	Underlying Type
	Values     []EnumValue
}

func (*EnumType) Kind() Kind         { return KindTypeValue }
func (*EnumType) TypeKind() TypeKind { return TypeEnum }
func (t *EnumType) IsConst() bool    { return true }
func (t *EnumType) Hash() uint64 {
	h := hashutil.Mix64(hashutil.SeedEnum)
	if t.Underlying != nil {
		h = hashutil.Combine(h, t.Underlying.Hash())
	}
	for _, v := range t.Values {
		h = hashutil.Combine(h, hashutil.U64(uint64(uint32(v.Name))))
		if v.Init != nil {
			h = hashutil.Combine(h, v.Init.Hash())
		}
	}
	return h
}
func (t *EnumType) Equal(o Expression) bool {
	ot, ok := o.(Type)
	return ok && t.EqualType(ot)
}
func (t *EnumType) EqualType(o Type) bool {
	ot, ok := o.(*EnumType)
	if !ok || len(t.Values) != len(ot.Values) {
		return false
	}
	if (t.Underlying == nil) != (ot.Underlying == nil) {
		return false
	}
	if t.Underlying != nil && !t.Underlying.EqualType(ot.Underlying) {
		return false
	}
	for i, v := range t.Values {
		if v.Name != ot.Values[i].Name {
			return false
		}
		if !exprEqual(v.Init, ot.Values[i].Init) {
			return false
		}
	}
	return true
}

// ArrayType is a fixed-length homogeneous array (spec.md §3 "Array{elem,
// size}").
type ArrayType struct {
	Elem Type
	Size uint64
}

func (*ArrayType) Kind() Kind         { return KindTypeValue }
func (*ArrayType) TypeKind() TypeKind { return TypeArray }
func (t *ArrayType) IsConst() bool    { return true }
func (t *ArrayType) Hash() uint64 {
	h := hashutil.Mix64(hashutil.SeedArray)
	if t.Elem != nil {
		h = hashutil.Combine(h, t.Elem.Hash())
	}
	return hashutil.Combine(h, hashutil.U64(t.Size))
}
func (t *ArrayType) Equal(o Expression) bool {
	ot, ok := o.(Type)
	return ok && t.EqualType(ot)
}
func (t *ArrayType) EqualType(o Type) bool {
	ot, ok := o.(*ArrayType)
	if !ok || t.Size != ot.Size {
		return false
	}
	if (t.Elem == nil) != (ot.Elem == nil) {
		return false
	}
	return t.Elem == nil || t.Elem.EqualType(ot.Elem)
}

// TupleType is a fixed, heterogeneous sequence of types (spec.md §3
// "Tuple{elems}").
type TupleType struct {
	Elems []Type
}

func (*TupleType) Kind() Kind         { return KindTypeValue }
func (*TupleType) TypeKind() TypeKind { return TypeTuple }
func (t *TupleType) IsConst() bool    { return true }
func (t *TupleType) Hash() uint64 {
	h := hashutil.Mix64(hashutil.SeedTuple)
	for _, e := range t.Elems {
		h = hashutil.Combine(h, e.Hash())
	}
	return h
}
func (t *TupleType) Equal(o Expression) bool {
	ot, ok := o.(Type)
	return ok && t.EqualType(ot)
}
func (t *TupleType) EqualType(o Type) bool {
	ot, ok := o.(*TupleType)
	if !ok || len(t.Elems) != len(ot.Elems) {
		return false
	}
	for i := range t.Elems {
		if !t.Elems[i].EqualType(ot.Elems[i]) {
			return false
		}
	}
	return true
}

// RecordField is one declared member of a Record.
type RecordField struct {
	Decl *Declaration
}

// RecordIndexes are the side-tables spec.md §3 mandates "agree with its
// fields list": every resolved Declaration pointer also appears in Fields.
type RecordIndexes struct {
	Variables       map[ident.ID]*Declaration
	StaticVariables map[ident.ID]*Declaration
	Functions       map[ident.ID]*Declaration
	StaticFunctions map[ident.ID]*Declaration
	Operators       map[token.Operator]*Declaration
}

// RecordType is a user-defined aggregate type (spec.md §3 "Record{fields,
// members...}").
type RecordType struct {
	Fields  []RecordField
	Indexes RecordIndexes
}

func NewRecordType() *RecordType {
	r := recordTypePool.Acquire()
	*r = RecordType{Indexes: RecordIndexes{
		Variables:       map[ident.ID]*Declaration{},
		StaticVariables: map[ident.ID]*Declaration{},
		Functions:       map[ident.ID]*Declaration{},
		StaticFunctions: map[ident.ID]*Declaration{},
		Operators:       map[token.Operator]*Declaration{},
	}}
	return r
}

func (*RecordType) Kind() Kind         { return KindTypeValue }
func (*RecordType) TypeKind() TypeKind { return TypeRecord }
func (t *RecordType) IsConst() bool {
	for _, f := range t.Fields {
		if !f.Decl.IsConst() {
			return false
		}
	}
	return true
}
func (t *RecordType) Hash() uint64 {
	h := hashutil.Mix64(hashutil.SeedRecord)
	for _, f := range t.Fields {
		h = hashutil.Combine(h, f.Decl.Hash())
	}
	return h
}
func (t *RecordType) Equal(o Expression) bool {
	ot, ok := o.(Type)
	return ok && t.EqualType(ot)
}
func (t *RecordType) EqualType(o Type) bool {
	ot, ok := o.(*RecordType)
	if !ok || len(t.Fields) != len(ot.Fields) {
		return false
	}
	for i := range t.Fields {
		if !t.Fields[i].Decl.Equal(ot.Fields[i].Decl) {
			return false
		}
	}
	return true
}

// NestedType wraps another Type behind a type-level indirection. spec.md
// §3 lists a "nested Type handle" entry in the Type sum that
// original_source/AST.hpp's TypeCategory enum names ("Type") but whose own
// variant list omits; kept here for closed-sum completeness per spec.md.
type NestedType struct {
	Inner Type
}

func (*NestedType) Kind() Kind         { return KindTypeValue }
func (*NestedType) TypeKind() TypeKind { return TypeNested }
func (t *NestedType) IsConst() bool    { return true }
func (t *NestedType) Hash() uint64 {
	h := hashutil.Mix64(hashutil.SeedNestedType)
	if t.Inner != nil {
		h = hashutil.Combine(h, t.Inner.Hash())
	}
	return h
}
func (t *NestedType) Equal(o Expression) bool {
	ot, ok := o.(Type)
	return ok && t.EqualType(ot)
}
func (t *NestedType) EqualType(o Type) bool {
	ot, ok := o.(*NestedType)
	return ok && t.Inner.EqualType(ot.Inner)
}

// FunctionTypeValue is a function signature used as a type (spec.md §3
// "FunctionType{return_type, param_types}").
type FunctionTypeValue struct {
	ReturnType Type
	ParamTypes []Type
}

func (*FunctionTypeValue) Kind() Kind         { return KindTypeValue }
func (*FunctionTypeValue) TypeKind() TypeKind { return TypeFunction }
func (t *FunctionTypeValue) IsConst() bool    { return true }
func (t *FunctionTypeValue) Hash() uint64 {
	h := hashutil.Mix64(hashutil.SeedFunctionType)
	if t.ReturnType != nil {
		h = hashutil.Combine(h, t.ReturnType.Hash())
	}
	for _, p := range t.ParamTypes {
		h = hashutil.Combine(h, p.Hash())
	}
	return h
}
func (t *FunctionTypeValue) Equal(o Expression) bool {
	ot, ok := o.(Type)
	return ok && t.EqualType(ot)
}
func (t *FunctionTypeValue) EqualType(o Type) bool {
	ot, ok := o.(*FunctionTypeValue)
	if !ok || len(t.ParamTypes) != len(ot.ParamTypes) {
		return false
	}
	if !t.ReturnType.EqualType(ot.ReturnType) {
		return false
	}
	for i := range t.ParamTypes {
		if !t.ParamTypes[i].EqualType(ot.ParamTypes[i]) {
			return false
		}
	}
	return true
}
