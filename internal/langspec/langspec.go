// Package langspec is the single source of truth for Zero's lexical
// constants: the keyword table, numeric-literal bit widths, and the radix
// bounds for 0r<N>:<digits> literals. Grounded on the centralized-table
// pattern of mcgru-funxy/internal/config (BuiltinTypes/BuiltinTraits/
// UserOperators): every value the lexer or parser would otherwise
// hardcode twice lives here instead.
package langspec

import "github.com/zero-lang/zc/internal/token"

// Keywords maps the reserved-word spelling to its Keyword tag (spec.md §6).
var Keywords = map[string]token.Keyword{
	"pragma":    token.KwPragma,
	"use":       token.KwUse,
	"namespace": token.KwNamespace,
	"type":      token.KwType,
	"enum":      token.KwEnum,
	"void":      token.KwVoid,
	"nil":       token.KwNil,
	"true":      token.KwTrue,
	"false":     token.KwFalse,
	"let":       token.KwLet,
	"bool":      token.KwBool,
	"int":       token.KwInt,
	"uint":      token.KwUInt,
	"float":     token.KwFloat,
	"if":        token.KwIf,
	"elif":      token.KwElif,
	"else":      token.KwElse,
	"select":    token.KwSelect,
	"do":        token.KwDo,
	"while":     token.KwWhile,
	"for":       token.KwFor,
	"as":        token.KwAs,
	"break":     token.KwBreak,
	"continue":  token.KwContinue,
	"defer":     token.KwDefer,
	"return":    token.KwReturn,
	"yield":     token.KwYield,
}

// LookupKeyword reports whether ident names a keyword.
func LookupKeyword(ident string) (token.Keyword, bool) {
	kw, ok := Keywords[ident]
	return kw, ok
}

const (
	// DefaultBitWidth is the implicit width of int/uint/float when no
	// explicit (bits) suffix is given (spec.md §3 "Types").
	DefaultBitWidth = 32

	// MaxTokenBytes bounds any single scanned token; exceeding it aborts
	// the scan with a LexicalError (spec.md §4.3 "Overlong tokens").
	MaxTokenBytes = 256

	// MinRadix and MaxRadix bound the N in a 0rN:digits literal
	// (spec.md §4.3 "arbitrary radix 2-36").
	MinRadix = 2
	MaxRadix = 36
)
