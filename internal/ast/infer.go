package ast

import (
	"github.com/google/uuid"

	"github.com/zero-lang/zc/internal/diagnostics"
	"github.com/zero-lang/zc/internal/token"
)

// DiagnosticSession carries the identity InferReturnType needs to tag a
// raised SemanticAmbiguity diagnostic (spec.md §4.5, §7): the owning
// parse's session id and the position of the ambiguous construct. The
// parser package constructs one per parse and threads it through so ast
// stays free of a dependency on the parser's mutable token cursor.
type DiagnosticSession struct {
	ID  uuid.UUID
	Pos token.Position
}

// TypeOf is the light, parser-local `type_of` spec.md §4.5 leans on to
// seed return-type inference from a literal `Return`/`Yield` value. Full
// type checking is explicitly out of scope (spec.md §1 "Deliberately
// excluded... type checking"); TypeOf only resolves what a single node
// can answer about itself without a symbol table, mirroring how deep the
// source's own un-genericised `GetType` methods reach.
func TypeOf(e Expression) Type {
	switch v := e.(type) {
	case LiteralNil:
		return NilType{}
	case LiteralBool:
		return BoolType{}
	case LiteralInt:
		return NewIntType(DefaultBitWidth)
	case LiteralUint:
		return NewUIntType(DefaultBitWidth)
	case LiteralReal:
		return NewFloatType(DefaultBitWidth)
	case TypeValue:
		return MetaTypeValue{}
	case Type:
		return MetaTypeValue{}
	case *Cast:
		if t, ok := v.NewType.(Type); ok {
			return t
		}
		if tv, ok := v.NewType.(TypeValue); ok {
			return tv.T
		}
		return VoidType{}
	case *Function:
		if v.ReturnType != nil {
			if t, ok := v.ReturnType.(Type); ok {
				return t
			}
			if tv, ok := v.ReturnType.(TypeValue); ok {
				return tv.T
			}
		}
		if found, t, _ := InferReturnType(nil, v.Body); found {
			return t
		}
		return VoidType{}
	default:
		return VoidType{}
	}
}

// InferReturnType implements spec.md §4.5's composition rules. session is
// used only to tag the SemanticAmbiguity diagnostic returned when the
// return types collected by a Scope, Branch or Select disagree (spec.md
// §7); it is nil-safe so callers without an active parse session (tests,
// TypeOf above) can still probe the rule, in which case a diagnostic
// carries a freshly minted session and a zero position.
func InferReturnType(session *DiagnosticSession, e Expression) (bool, Type, *diagnostics.Diagnostic) {
	switch v := e.(type) {
	case *Return:
		if v.Value == nil {
			return true, VoidType{}, nil
		}
		return true, TypeOf(v.Value), nil
	case *Yield:
		if v.Value == nil {
			return true, VoidType{}, nil
		}
		return true, TypeOf(v.Value), nil
	case *Scope:
		return inferScope(session, v)
	case *Branch:
		foundTrue, tTrue, err := InferReturnType(session, v.OnTrue)
		if err != nil {
			return false, VoidType{}, err
		}
		if v.OnFalse == nil {
			return foundTrue, tTrue, nil
		}
		foundFalse, tFalse, err := InferReturnType(session, v.OnFalse)
		if err != nil {
			return false, VoidType{}, err
		}
		switch {
		case foundTrue && foundFalse:
			if !tTrue.EqualType(tFalse) {
				return true, tTrue, ambiguous(session, e)
			}
			return true, tTrue, nil
		case foundTrue:
			return true, tTrue, nil
		case foundFalse:
			return true, tFalse, nil
		default:
			return false, VoidType{}, nil
		}
	case *Select:
		return inferSelect(session, v)
	case *While:
		return InferReturnType(session, v.Body)
	case *DoWhile:
		return InferReturnType(session, v.Body)
	case *For:
		return InferReturnType(session, v.Body)
	case *ForEach:
		return InferReturnType(session, v.Body)
	default:
		return false, VoidType{}, nil
	}
}

func inferScope(session *DiagnosticSession, s *Scope) (bool, Type, *diagnostics.Diagnostic) {
	var collected []Type
	for _, child := range s.Expressions {
		switch child.(type) {
		case *Return, *Yield, *Scope:
			found, t, err := InferReturnType(session, child)
			if err != nil {
				return false, VoidType{}, err
			}
			if found {
				collected = append(collected, t)
			}
		}
	}
	if len(collected) == 0 {
		return false, VoidType{}, nil
	}
	first := collected[0]
	for _, t := range collected[1:] {
		if !first.EqualType(t) {
			return true, first, ambiguous(session, s)
		}
	}
	return true, first, nil
}

func inferSelect(session *DiagnosticSession, s *Select) (bool, Type, *diagnostics.Diagnostic) {
	var collected []Type
	anyFound := false
	for _, c := range s.Cases {
		found, t, err := InferReturnType(session, c.Value)
		if err != nil {
			return false, VoidType{}, err
		}
		if found {
			anyFound = true
			collected = append(collected, t)
		}
	}
	if s.Default != nil {
		if found, t, err := InferReturnType(session, s.Default); err != nil {
			return false, VoidType{}, err
		} else if found {
			anyFound = true
			collected = append(collected, t)
		}
	}
	if !anyFound {
		return false, VoidType{}, nil
	}
	first := collected[0]
	for _, t := range collected[1:] {
		if !first.EqualType(t) {
			return true, first, ambiguous(session, s)
		}
	}
	return true, first, nil
}

func ambiguous(session *DiagnosticSession, _ Expression) *diagnostics.Diagnostic {
	if session == nil {
		return diagnostics.New(diagnostics.Session(), diagnostics.Ambiguity, diagnostics.CodeAmbiguousReturnType, token.Position{})
	}
	return diagnostics.New(session.ID, diagnostics.Ambiguity, diagnostics.CodeAmbiguousReturnType, session.Pos)
}
