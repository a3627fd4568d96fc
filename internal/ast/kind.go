// Package ast implements Zero's closed Expression/Type sum (spec.md §3):
// value equality, structural hashing, constness classification, and the
// bounded return-type inference over control-flow expressions.
//
// Grounded on mcgru-funxy/internal/ast.go's shape (Node/Expression
// interfaces, one concrete struct per variant, Accept(Visitor)) with the
// dispatch carried by a Kind() discriminator instead of funxy's visitor,
// following spec.md §9's preference for "a hand-written visit-per-variant
// dispatch... the readable factoring is a single match per operation":
// Hash/IsConst/Equal are small methods on each variant, and
// InferReturnType is a single type switch in infer.go; there are no
// Accept implementations.
package ast

// Kind is the small, stable integer discriminator spec.md §3 requires
// ("id() — a small integer discriminator, stable across runs"). Values
// are fixed by position in this list and must never be renumbered once
// assigned, the Go equivalent of the source's ExpressionCategory-derived
// per-variant ID.
type Kind int

const (
	KindInvalid Kind = iota

	// Module-level
	KindUse
	KindNamespace
	KindDeclaration

	// Identifiers
	KindIdentifier
	KindQualifiedIdentifier

	// Types-as-values
	KindTypeValue

	// Literals
	KindLiteralNil
	KindLiteralBool
	KindLiteralInt
	KindLiteralUint
	KindLiteralReal

	// Blocks/flow
	KindScope
	KindBranch
	KindSelect
	KindWhile
	KindDoWhile
	KindFor
	KindForEach

	// Operators
	KindUnaryExpression
	KindBinaryExpression
	KindCast

	// Functions
	KindFunction
	KindFunctionCall
	KindConstructorCall
	KindDestructorCall

	// Jumps/effects
	KindBreak
	KindContinue
	KindReturn
	KindYield
	KindDefer

	// Misc
	KindNoOp
	KindWildcard
	KindTraitsOf

	// Supplemented (SPEC_FULL.md "Pragma keyword")
	KindPragma
)

// TypeKind is the discriminator for the Type sum (spec.md §3 "Types").
type TypeKind int

const (
	TypeInvalid TypeKind = iota
	TypeMeta
	TypeVoid
	TypeNil
	TypeBool
	TypeInt
	TypeUInt
	TypeFloat
	TypeEnum
	TypeArray
	TypeTuple
	TypeRecord
	TypeNested
	TypeFunction
)

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return "Invalid"
}

var kindNames = map[Kind]string{
	KindUse:                 "Use",
	KindNamespace:           "Namespace",
	KindDeclaration:         "Declaration",
	KindIdentifier:          "Identifier",
	KindQualifiedIdentifier: "QualifiedIdentifier",
	KindTypeValue:           "Type",
	KindLiteralNil:          "LiteralNil",
	KindLiteralBool:         "LiteralBool",
	KindLiteralInt:          "LiteralInt",
	KindLiteralUint:         "LiteralUint",
	KindLiteralReal:         "LiteralReal",
	KindScope:               "Scope",
	KindBranch:              "Branch",
	KindSelect:              "Select",
	KindWhile:               "While",
	KindDoWhile:             "DoWhile",
	KindFor:                 "For",
	KindForEach:             "ForEach",
	KindUnaryExpression:     "UnaryExpression",
	KindBinaryExpression:    "BinaryExpression",
	KindCast:                "Cast",
	KindFunction:            "Function",
	KindFunctionCall:        "FunctionCall",
	KindConstructorCall:     "ConstructorCall",
	KindDestructorCall:      "DestructorCall",
	KindBreak:               "Break",
	KindContinue:            "Continue",
	KindReturn:              "Return",
	KindYield:               "Yield",
	KindDefer:               "Defer",
	KindNoOp:                "NoOp",
	KindWildcard:            "Wildcard",
	KindTraitsOf:            "TraitsOf",
	KindPragma:              "Pragma",
}

func (k TypeKind) String() string {
	if n, ok := typeKindNames[k]; ok {
		return n
	}
	return "Invalid"
}

var typeKindNames = map[TypeKind]string{
	TypeMeta:     "MetaType",
	TypeVoid:     "Void",
	TypeNil:      "Nil",
	TypeBool:     "Bool",
	TypeInt:      "Int",
	TypeUInt:     "UInt",
	TypeFloat:    "Float",
	TypeEnum:     "Enum",
	TypeArray:    "Array",
	TypeTuple:    "Tuple",
	TypeRecord:   "Record",
	TypeNested:   "Type",
	TypeFunction: "FunctionType",
}

// Expression is the sealed interface every AST expression variant
// implements (spec.md §3 "Expression is a closed sum"). The interface
// itself is small and exhaustive switches over Kind() do the work that
// the source expressed with variant visitation.
type Expression interface {
	Kind() Kind
	Hash() uint64
	IsConst() bool
	Equal(other Expression) bool
}

// Type is the sealed interface for the nested Type sum (spec.md §3
// "Types"). A Type is also always a valid Expression: wrap it in TypeValue
// to use it where an Expression is expected (spec.md's "Types-as-values"
// expression variant).
type Type interface {
	Expression
	TypeKind() TypeKind
	EqualType(other Type) bool
}
