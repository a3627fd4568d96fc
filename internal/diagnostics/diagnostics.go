// Package diagnostics implements Zero's error taxonomy (spec.md §7):
// LexicalError, SyntaxError, SemanticAmbiguity, and UnimplementedForm, all
// fatal, all funnelled through a single Diagnostic value.
//
// Grounded closely on mcgru-funxy/internal/diagnostics/diagnostics.go's
// ErrorCode/Phase/template-map/DiagnosticError shape, narrowed to the
// categories spec.md §7 actually names.
package diagnostics

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/zero-lang/zc/internal/token"
)

// Category is the top-level error taxonomy from spec.md §7.
type Category string

const (
	Lexical     Category = "LexicalError"
	Syntax      Category = "SyntaxError"
	Ambiguity   Category = "SemanticAmbiguity"
	Unimplemented Category = "UnimplementedForm"
	Internal    Category = "InternalError"
)

// Code identifies one specific diagnosable condition within a Category.
type Code string

const (
	CodeUnterminatedString Code = "L001"
	CodeUnterminatedChar   Code = "L002"
	CodeOverlongToken      Code = "L003"
	CodeUnknownSign        Code = "L004"
	CodeInvalidRadix       Code = "L005"

	CodeUnexpectedToken     Code = "S001"
	CodeExpectedToken       Code = "S002"
	CodeAdjacentIdentifiers Code = "S003"
	CodeUnexpectedEOF       Code = "S004"
	CodeInvalidLValue       Code = "S005"

	CodeAmbiguousReturnType Code = "A001"

	CodeParametricRecord Code = "U001"

	CodeInternal Code = "I001"
)

var templates = map[Code]string{
	CodeUnterminatedString:  "unterminated string literal",
	CodeUnterminatedChar:    "unterminated character literal",
	CodeOverlongToken:       "token exceeds %d bytes",
	CodeUnknownSign:         "unexpected character %q",
	CodeInvalidRadix:        "invalid radix literal: %s",
	CodeUnexpectedToken:     "unexpected token %s",
	CodeExpectedToken:       "expected %s, got %s",
	CodeAdjacentIdentifiers: "two adjacent identifiers in declaration continuation",
	CodeUnexpectedEOF:       "unexpected end of input",
	CodeInvalidLValue:       "invalid form in this position",
	CodeAmbiguousReturnType: "Ambiguous function return type.",
	CodeParametricRecord:    "parametric record types are not implemented",
	CodeInternal:            "internal error: %s",
}

// Diagnostic is the single error value Zero ever produces (spec.md §7
// "There is no structured error value" in the C++ original; this Go port
// keeps the structure but routes it through Go's error interface instead
// of terminating the process directly, per spec.md §5's guidance for
// library contexts).
type Diagnostic struct {
	Category  Category
	Code      Code
	Position  token.Position
	Args      []any
	SessionID uuid.UUID
}

func (d *Diagnostic) Error() string {
	template, ok := templates[d.Code]
	message := string(d.Code)
	if ok {
		message = fmt.Sprintf(template, d.Args...)
	}
	return fmt.Sprintf("%s [%s/%s]: %s", d.Position, d.Category, d.Code, message)
}

// New builds a Diagnostic. session identifies the parse this diagnostic
// came from (see Session), letting log aggregation distinguish
// diagnostics from concurrently running, independent parses — the one use
// this repo makes of github.com/google/uuid, re-homed here from the
// teacher's evaluator-only dependency on the same library.
func New(session uuid.UUID, category Category, code Code, pos token.Position, args ...any) *Diagnostic {
	return &Diagnostic{Category: category, Code: code, Position: pos, Args: args, SessionID: session}
}

// InternalErrorf builds a Diagnostic for an assertion the parser expects
// can never fail (mirrors mcgru-funxy's diagnostics.InternalError
// "should never happen" helper).
func InternalErrorf(session uuid.UUID, pos token.Position, format string, args ...any) *Diagnostic {
	return New(session, Internal, CodeInternal, pos, fmt.Sprintf(format, args...))
}

// Session mints a fresh per-parse correlation id.
func Session() uuid.UUID { return uuid.New() }

// Abort is the panic payload Parser.error raises. It carries a *Diagnostic
// so that the single recover point in parser.ParseString/parser.ParseFile
// can turn a first-failure abort back into a returned error, the
// idiomatic-Go shape of spec.md's "print and exit" batch-compiler
// contract (§5).
type Abort struct {
	Diagnostic *Diagnostic
}

func (a Abort) Error() string { return a.Diagnostic.Error() }

// Raise panics with an Abort wrapping d. Only the parser's own recover
// boundary may catch this; it must never be caught elsewhere.
func Raise(d *Diagnostic) {
	panic(Abort{Diagnostic: d})
}
