package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zero-lang/zc/internal/token"
)

func TestHasPayload(t *testing.T) {
	assert.True(t, token.Identifier.HasPayload())
	assert.True(t, token.Operator.HasPayload())
	assert.False(t, token.None.HasPayload())
	assert.False(t, token.BraceLeft.HasPayload())
	assert.False(t, token.EOF.HasPayload())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "Identifier", token.Identifier.String())
	assert.Equal(t, "EOF", token.EOF.String())
}

func TestKeywordStringRoundTrip(t *testing.T) {
	for name, kw := range map[string]token.Keyword{
		"pragma": token.KwPragma,
		"use":    token.KwUse,
		"if":     token.KwIf,
		"yield":  token.KwYield,
	} {
		assert.Equal(t, name, kw.String())
	}
}

func TestOperatorIsPrefixable(t *testing.T) {
	prefixable := []token.Operator{token.OpAdd, token.OpSub, token.OpBitNot, token.OpInc, token.OpDec, token.OpLogNot}
	for _, op := range prefixable {
		assert.Truef(t, op.IsPrefixable(), "%s should be prefixable", op)
	}

	notPrefixable := []token.Operator{token.OpAssign, token.OpMul, token.OpDiv, token.OpDot, token.OpEq}
	for _, op := range notPrefixable {
		assert.Falsef(t, op.IsPrefixable(), "%s should not be prefixable", op)
	}
}

func TestPayloadConstructorsTagCorrectly(t *testing.T) {
	assert.Equal(t, token.PayloadU64, token.U64Payload(3).Tag)
	assert.Equal(t, token.PayloadF64, token.F64Payload(3.5).Tag)
	assert.Equal(t, token.PayloadBool, token.BoolPayload(true).Tag)
	assert.Equal(t, token.PayloadBytes, token.BytesPayload([]byte("x")).Tag)
	assert.Equal(t, token.PayloadKeyword, token.KeywordPayload(token.KwIf).Tag)
	assert.Equal(t, token.PayloadOperator, token.OperatorPayload(token.OpAdd).Tag)
}

func TestPayloadText(t *testing.T) {
	assert.Equal(t, "hello", token.BytesPayload([]byte("hello")).Text())
	assert.Equal(t, "", token.U64Payload(5).Text())
}

func TestPositionString(t *testing.T) {
	assert.Equal(t, "3:7", token.Position{Line: 3, Column: 7}.String())
}
