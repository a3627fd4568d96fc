package lexer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zero-lang/zc/internal/diagnostics"
	"github.com/zero-lang/zc/internal/lexer"
	"github.com/zero-lang/zc/internal/token"
)

func allTokens(source string) []token.Token {
	l := lexer.New(source, diagnostics.Session())
	var toks []token.Token
	for {
		tok := l.Next()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks
		}
	}
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func TestScansIdentifiersAndKeywords(t *testing.T) {
	toks := allTokens("int x while")
	assert.Equal(t, []token.Kind{token.Keyword, token.Identifier, token.Keyword, token.EOF}, kinds(toks))
}

func TestScansDecimalIntAndReal(t *testing.T) {
	toks := allTokens("3 3.5")
	require.Len(t, toks, 3)
	assert.Equal(t, token.LiteralInt, toks[0].Kind)
	assert.Equal(t, uint64(3), toks[0].Payload.U64)
	assert.Equal(t, token.LiteralReal, toks[1].Kind)
	assert.Equal(t, 3.5, toks[1].Payload.F64)
}

func TestScansHexAndBinaryLiterals(t *testing.T) {
	toks := allTokens("0xFF 0b101")
	require.Len(t, toks, 3)
	assert.Equal(t, uint64(255), toks[0].Payload.U64)
	assert.Equal(t, uint64(5), toks[1].Payload.U64)
}

func TestScansArbitraryRadixLiteral(t *testing.T) {
	toks := allTokens("0r16:ff")
	require.Len(t, toks, 2)
	assert.Equal(t, token.LiteralInt, toks[0].Kind)
	assert.Equal(t, uint64(255), toks[0].Payload.U64)
}

func TestScansStringAndCharLiterals(t *testing.T) {
	toks := allTokens(`"hi" 'a'`)
	require.Len(t, toks, 3)
	assert.Equal(t, token.LiteralString, toks[0].Kind)
	assert.Equal(t, "hi", toks[0].Payload.Text())
	assert.Equal(t, token.LiteralChar, toks[1].Kind)
}

func TestGreedyMultiCharOperators(t *testing.T) {
	toks := allTokens("<<<= >>>= <=> ==")
	require.Len(t, toks, 5)
	for _, tok := range toks[:4] {
		assert.Equal(t, token.Operator, tok.Kind)
	}
	assert.Equal(t, token.OpRotlAssign, toks[0].Payload.Operator)
	assert.Equal(t, token.OpRotrAssign, toks[1].Payload.Operator)
	assert.Equal(t, token.OpSpaceship, toks[2].Payload.Operator)
	assert.Equal(t, token.OpEq, toks[3].Payload.Operator)
}

func TestSkipsLineAndBlockComments(t *testing.T) {
	toks := allTokens("x `` trailing line comment\ny `block ` z")
	assert.Equal(t, []token.Kind{token.Identifier, token.Identifier, token.Identifier, token.EOF}, kinds(toks))
}

func TestDottedIdentifierScansAsOneToken(t *testing.T) {
	toks := allTokens("a.b.c")
	require.Len(t, toks, 2)
	assert.Equal(t, token.Identifier, toks[0].Kind)
	assert.Equal(t, "a.b.c", toks[0].Payload.Text())
	assert.Equal(t, []string{"a", "b", "c"}, lexer.SplitQualified(toks[0].Payload.Text()))
}

func TestOverlongTokenAborts(t *testing.T) {
	long := strings.Repeat("a", 300)
	defer func() {
		r := recover()
		require.NotNil(t, r)
		abort, ok := r.(diagnostics.Abort)
		require.True(t, ok)
		assert.Equal(t, diagnostics.CodeOverlongToken, abort.Diagnostic.Code)
	}()
	allTokens(long)
}

func TestUnterminatedStringAborts(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r)
		abort, ok := r.(diagnostics.Abort)
		require.True(t, ok)
		assert.Equal(t, diagnostics.CodeUnterminatedString, abort.Diagnostic.Code)
	}()
	allTokens(`"unterminated`)
}

// Property 7 (spec.md §8): every token in a run has a monotonically
// non-decreasing source position, so the tokenizer never moves backwards.
func TestTokenPositionsAreMonotonic(t *testing.T) {
	toks := allTokens("int x = 3 + 4;\ny = x * 2;")
	for i := 1; i < len(toks); i++ {
		prev, cur := toks[i-1].Position, toks[i].Position
		if cur.Line == prev.Line {
			assert.GreaterOrEqual(t, cur.Column, prev.Column)
		} else {
			assert.Greater(t, cur.Line, prev.Line)
		}
	}
}
