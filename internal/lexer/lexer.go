// Package lexer implements Zero's stateful tokenizer (spec.md §4.3):
// comment/whitespace skipping, identifier/keyword classification, numeric
// literal decoding in four radix forms, string/char literal scanning, and
// greedy multi-character operator dispatch.
//
// Grounded on mcgru-funxy/internal/lexer/lexer.go's byte-cursor shape
// (position/readPosition/ch/line/column, readChar/peekChar, a big
// first-character switch building multi-char operators greedily) adapted
// to Zero's own token table and literal grammar (spec.md §6), which
// differs from funxy's in nearly every particular.
package lexer

import (
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/zero-lang/zc/internal/diagnostics"
	"github.com/zero-lang/zc/internal/langspec"
	"github.com/zero-lang/zc/internal/token"
)

// maxTokenBytes bounds a single token's source span (spec.md §4.3
// "Overlong tokens (>=256 bytes) abort").
const maxTokenBytes = langspec.MaxTokenBytes

// Lexer is a stateful scanner over one source buffer. Not safe for
// concurrent use; spec.md §5 only requires the node pools to be
// concurrency-safe, not the tokenizer itself.
type Lexer struct {
	input        string
	position     int
	readPosition int
	ch           byte
	line         int
	column       int

	session uuid.UUID
}

// New constructs a Lexer over source, ready to emit its first token.
func New(source string, session uuid.UUID) *Lexer {
	l := &Lexer{input: source, line: 1, column: 0, session: session}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}
	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
	l.column++
}

func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

func (l *Lexer) pos() token.Position { return token.Position{Line: l.line, Column: l.column} }

func (l *Lexer) abort(code diagnostics.Code, args ...any) {
	diagnostics.Raise(diagnostics.New(l.session, diagnostics.Lexical, code, l.pos(), args...))
}

// skipWhitespaceAndComments discards runs of whitespace and backtick
// comments before the next token (spec.md §4.3 "Skipping"). A doubled
// backtick runs to end-of-line; a single backtick runs to the next lone
// backtick, and end-of-input inside a comment is accepted without error.
func (l *Lexer) skipWhitespaceAndComments() {
	for {
		switch l.ch {
		case ' ', '\t', '\n', '\r', '\f', '\v':
			l.readChar()
			continue
		case '`':
			l.readChar()
			if l.ch == '`' {
				l.readChar()
				for l.ch != '\n' && l.ch != 0 {
					l.readChar()
				}
			} else {
				for l.ch != '`' && l.ch != 0 {
					l.readChar()
				}
				if l.ch == '`' {
					l.readChar()
				}
			}
			continue
		}
		return
	}
}

func isAlpha(ch byte) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isDigit(ch byte) bool { return ch >= '0' && ch <= '9' }

func isIdentBody(ch byte) bool { return isAlpha(ch) || isDigit(ch) || ch == '.' }

// Next returns the next token from the source (spec.md §4.3). Returns a
// token.EOF token at end of input.
func (l *Lexer) Next() token.Token {
	l.skipWhitespaceAndComments()

	start := l.pos()

	switch {
	case l.ch == 0:
		return token.Token{Kind: token.EOF, Position: start}
	case isAlpha(l.ch):
		return l.scanIdentifier(start)
	case isDigit(l.ch):
		return l.scanNumber(start)
	default:
		return l.scanOperator(start)
	}
}

func (l *Lexer) scanIdentifier(start token.Position) token.Token {
	begin := l.position
	for isIdentBody(l.ch) {
		l.readChar()
	}
	text := l.input[begin:l.position]
	l.checkLength(begin, start)

	if kw, ok := langspec.LookupKeyword(text); ok {
		return token.Token{Kind: token.Keyword, Payload: token.KeywordPayload(kw), Position: start}
	}
	return token.Token{Kind: token.Identifier, Payload: token.BytesPayload([]byte(text)), Position: start}
}

func (l *Lexer) checkLength(begin int, start token.Position) {
	if l.position-begin >= maxTokenBytes {
		diagnostics.Raise(diagnostics.New(l.session, diagnostics.Lexical, diagnostics.CodeOverlongToken, start, maxTokenBytes))
	}
}

// scanNumber implements spec.md §4.3 "Numeric literals": a leading 0
// followed by b/B, x/X, or r/R selects a non-decimal form; otherwise a
// decimal run where a single '.' promotes LiteralInt to LiteralReal.
func (l *Lexer) scanNumber(start token.Position) token.Token {
	begin := l.position

	if l.ch == '0' {
		switch l.peekChar() {
		case 'b', 'B':
			l.readChar()
			l.readChar()
			return l.finishRadixLiteral(begin, start, 2, isBinDigit)
		case 'x', 'X':
			l.readChar()
			l.readChar()
			return l.finishRadixLiteral(begin, start, 16, isHexDigit)
		case 'r', 'R':
			return l.scanArbitraryRadix(start)
		}
	}

	sawDot := false
	for isDigit(l.ch) || (l.ch == '.' && !sawDot && isDigit(l.peekChar())) {
		if l.ch == '.' {
			sawDot = true
		}
		l.readChar()
	}
	l.checkLength(begin, start)
	text := l.input[begin:l.position]

	if sawDot {
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			l.abort(diagnostics.CodeInvalidRadix, text)
		}
		return token.Token{Kind: token.LiteralReal, Payload: token.F64Payload(v), Position: start}
	}
	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		l.abort(diagnostics.CodeInvalidRadix, text)
	}
	return token.Token{Kind: token.LiteralInt, Payload: token.U64Payload(uint64(v)), Position: start}
}

func isBinDigit(ch byte) bool { return ch == '0' || ch == '1' }
func isHexDigit(ch byte) bool {
	return isDigit(ch) || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

func (l *Lexer) finishRadixLiteral(begin int, start token.Position, radix int, accept func(byte) bool) token.Token {
	digitsStart := l.position
	for accept(l.ch) {
		l.readChar()
	}
	l.checkLength(begin, start)
	digits := l.input[digitsStart:l.position]
	if digits == "" {
		l.abort(diagnostics.CodeInvalidRadix, l.input[begin:l.position])
	}
	v, err := strconv.ParseUint(digits, radix, 64)
	if err != nil {
		l.abort(diagnostics.CodeInvalidRadix, digits)
	}
	return token.Token{Kind: token.LiteralInt, Payload: token.U64Payload(v), Position: start}
}

// scanArbitraryRadix handles `0r<radix>:<digits>` with 2 <= radix <= 36
// (spec.md §4.3, §4.6 literal grammar).
func (l *Lexer) scanArbitraryRadix(start token.Position) token.Token {
	begin := l.position
	l.readChar() // '0'
	l.readChar() // 'r'/'R'

	radixStart := l.position
	for isDigit(l.ch) {
		l.readChar()
	}
	radixText := l.input[radixStart:l.position]
	if l.ch != ':' || radixText == "" {
		l.abort(diagnostics.CodeInvalidRadix, l.input[begin:l.position])
	}
	radix, err := strconv.Atoi(radixText)
	if err != nil || radix < langspec.MinRadix || radix > langspec.MaxRadix {
		l.abort(diagnostics.CodeInvalidRadix, radixText)
	}
	l.readChar() // ':'

	digitsStart := l.position
	for isRadixDigit(l.ch, radix) {
		l.readChar()
	}
	l.checkLength(begin, start)
	digits := l.input[digitsStart:l.position]
	if digits == "" {
		l.abort(diagnostics.CodeInvalidRadix, l.input[begin:l.position])
	}
	v, err := strconv.ParseUint(digits, radix, 64)
	if err != nil {
		l.abort(diagnostics.CodeInvalidRadix, digits)
	}
	return token.Token{Kind: token.LiteralInt, Payload: token.U64Payload(v), Position: start}
}

func isRadixDigit(ch byte, radix int) bool {
	var v int
	switch {
	case ch >= '0' && ch <= '9':
		v = int(ch - '0')
	case ch >= 'a' && ch <= 'z':
		v = int(ch-'a') + 10
	case ch >= 'A' && ch <= 'Z':
		v = int(ch-'A') + 10
	default:
		return false
	}
	return v < radix
}

// scanCharLiteral handles `'c'` and `"..."` (spec.md §4.3
// "String/char literals").
func (l *Lexer) scanCharLiteral(start token.Position) token.Token {
	begin := l.position
	l.readChar() // opening '
	if l.ch == 0 {
		l.abort(diagnostics.CodeUnterminatedChar)
	}
	var r rune
	if l.ch == '\\' && l.peekChar() == '\'' {
		l.readChar()
		r = rune(l.ch)
		l.readChar()
	} else {
		r = rune(l.ch)
		l.readChar()
	}
	if l.ch != '\'' {
		l.abort(diagnostics.CodeUnterminatedChar)
	}
	l.readChar() // closing '
	l.checkLength(begin, start)
	return token.Token{Kind: token.LiteralChar, Payload: token.Char32Payload(r), Position: start}
}

func (l *Lexer) scanStringLiteral(start token.Position) token.Token {
	begin := l.position
	l.readChar() // opening "
	contentStart := l.position
	for l.ch != '"' {
		if l.ch == 0 {
			l.abort(diagnostics.CodeUnterminatedString)
		}
		l.readChar()
	}
	text := l.input[contentStart:l.position]
	l.readChar() // closing "
	l.checkLength(begin, start)
	return token.Token{Kind: token.LiteralString, Payload: token.BytesPayload([]byte(text)), Position: start}
}

// scanOperator dispatches the first-character switch of spec.md §4.3
// "Operators/punctuators", extending up to three characters greedily.
func (l *Lexer) scanOperator(start token.Position) token.Token {
	ch := l.ch

	switch ch {
	case '\'':
		return l.scanCharLiteral(start)
	case '"':
		return l.scanStringLiteral(start)
	case '(':
		l.readChar()
		return token.Token{Kind: token.ParenLeft, Position: start}
	case ')':
		l.readChar()
		return token.Token{Kind: token.ParenRight, Position: start}
	case '[':
		l.readChar()
		return token.Token{Kind: token.BracketLeft, Position: start}
	case ']':
		l.readChar()
		return token.Token{Kind: token.BracketRight, Position: start}
	case '{':
		l.readChar()
		return token.Token{Kind: token.BraceLeft, Position: start}
	case '}':
		l.readChar()
		return token.Token{Kind: token.BraceRight, Position: start}
	case ',':
		l.readChar()
		return token.Token{Kind: token.Comma, Position: start}
	case ':':
		l.readChar()
		return token.Token{Kind: token.Colon, Position: start}
	case ';':
		l.readChar()
		if l.ch == ';' {
			l.readChar()
			return token.Token{Kind: token.NoOp, Position: start}
		}
		return token.Token{Kind: token.Semicolon, Position: start}
	case '?':
		l.readChar()
		return token.Token{Kind: token.TraitsOf, Position: start}
	case '@':
		l.readChar()
		return token.Token{Kind: token.Address, Position: start}
	case '$':
		l.readChar()
		return token.Token{Kind: token.Wildcard, Position: start}
	case '#':
		l.readChar()
		return token.Token{Kind: token.Hash, Position: start}
	case '.':
		l.readChar()
		return l.op(start, token.OpDot)

	case '=':
		l.readChar()
		if l.ch == '=' {
			l.readChar()
			return l.op(start, token.OpEq)
		}
		if l.ch == '>' {
			l.readChar()
			return token.Token{Kind: token.Arrow, Position: start}
		}
		return l.op(start, token.OpAssign)
	case '+':
		l.readChar()
		if l.ch == '=' {
			l.readChar()
			return l.op(start, token.OpAddAssign)
		}
		if l.ch == '+' {
			l.readChar()
			return l.op(start, token.OpInc)
		}
		return l.op(start, token.OpAdd)
	case '-':
		l.readChar()
		if l.ch == '=' {
			l.readChar()
			return l.op(start, token.OpSubAssign)
		}
		if l.ch == '-' {
			l.readChar()
			return l.op(start, token.OpDec)
		}
		return l.op(start, token.OpSub)
	case '*':
		l.readChar()
		if l.ch == '=' {
			l.readChar()
			return l.op(start, token.OpMulAssign)
		}
		return l.op(start, token.OpMul)
	case '/':
		l.readChar()
		if l.ch == '=' {
			l.readChar()
			return l.op(start, token.OpDivAssign)
		}
		return l.op(start, token.OpDiv)
	case '%':
		l.readChar()
		if l.ch == '=' {
			l.readChar()
			return l.op(start, token.OpModAssign)
		}
		return l.op(start, token.OpMod)
	case '&':
		l.readChar()
		if l.ch == '=' {
			l.readChar()
			return l.op(start, token.OpBitAndAssign)
		}
		if l.ch == '&' {
			l.readChar()
			return l.op(start, token.OpLogAnd)
		}
		return l.op(start, token.OpBitAnd)
	case '|':
		l.readChar()
		if l.ch == '=' {
			l.readChar()
			return l.op(start, token.OpBitOrAssign)
		}
		if l.ch == '|' {
			l.readChar()
			return l.op(start, token.OpLogOr)
		}
		return l.op(start, token.OpBitOr)
	case '^':
		l.readChar()
		if l.ch == '=' {
			l.readChar()
			return l.op(start, token.OpBitXorAssign)
		}
		return l.op(start, token.OpBitXor)
	case '~':
		l.readChar()
		return l.op(start, token.OpBitNot)
	case '!':
		l.readChar()
		if l.ch == '=' {
			l.readChar()
			return l.op(start, token.OpNotEq)
		}
		return l.op(start, token.OpLogNot)
	case '<':
		return l.scanLessFamily(start)
	case '>':
		return l.scanGreaterFamily(start)
	default:
		l.readChar()
		return token.Token{Kind: token.None, Position: start}
	}
}

func (l *Lexer) op(start token.Position, o token.Operator) token.Token {
	return token.Token{Kind: token.Operator, Payload: token.OperatorPayload(o), Position: start}
}

// scanLessFamily handles `< <= <<= <<< <<<= <=>`.
func (l *Lexer) scanLessFamily(start token.Position) token.Token {
	l.readChar() // consume '<'
	if l.ch == '<' {
		l.readChar()
		if l.ch == '<' {
			l.readChar()
			if l.ch == '=' {
				l.readChar()
				return l.op(start, token.OpRotlAssign)
			}
			return l.op(start, token.OpRotl)
		}
		if l.ch == '=' {
			l.readChar()
			return l.op(start, token.OpShlAssign)
		}
		return l.op(start, token.OpShl)
	}
	if l.ch == '=' {
		l.readChar()
		if l.ch == '>' {
			l.readChar()
			return l.op(start, token.OpSpaceship)
		}
		return l.op(start, token.OpLte)
	}
	return l.op(start, token.OpLt)
}

// scanGreaterFamily handles `> >= >>= >>> >>>=`.
func (l *Lexer) scanGreaterFamily(start token.Position) token.Token {
	l.readChar() // consume '>'
	if l.ch == '>' {
		l.readChar()
		if l.ch == '>' {
			l.readChar()
			if l.ch == '=' {
				l.readChar()
				return l.op(start, token.OpRotrAssign)
			}
			return l.op(start, token.OpRotr)
		}
		if l.ch == '=' {
			l.readChar()
			return l.op(start, token.OpShrAssign)
		}
		return l.op(start, token.OpShr)
	}
	if l.ch == '=' {
		l.readChar()
		return l.op(start, token.OpGte)
	}
	return l.op(start, token.OpGt)
}

// SplitQualified splits a dotted identifier's source text into its dot
// separated parts (SPEC_FULL.md's qualified-identifier supplement): the
// tokenizer scans `a.b.c` as a single Identifier per spec.md §4.3's
// `[A-Za-z0-9_.]` identifier body, so splitting happens one layer up, in
// the parser, when it decides an Identifier contains a dot.
func SplitQualified(text string) []string {
	return strings.Split(text, ".")
}
