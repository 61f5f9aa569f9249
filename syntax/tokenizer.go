package syntax

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

const eof rune = -1

type tokenizer struct {
	source string
	offset int
	pos    Pos

	start       int
	startPos    Pos
	spaceBefore bool

	tokens []Token
}

// Tokenize scans the whole source. It never fails: problems are reported as
// TokenInvalid tokens, and the result always ends with exactly one TokenEOF.
func Tokenize(source string) []Token {
	t := &tokenizer{
		source: source,
		tokens: make([]Token, 0, len(source)/4+1),
	}
	for {
		tok := t.next()
		t.tokens = append(t.tokens, tok)
		if tok.Kind == TokenEOF {
			return t.tokens
		}
	}
}

func (t *tokenizer) peek() rune {
	return t.peekAt(0)
}

func (t *tokenizer) peekAt(n int) rune {
	offset := t.offset
	for {
		if offset >= len(t.source) {
			return eof
		}
		r, size := utf8.DecodeRuneInString(t.source[offset:])
		if n == 0 {
			return r
		}
		offset += size
		n--
	}
}

func (t *tokenizer) advance() rune {
	if t.offset >= len(t.source) {
		return eof
	}
	r, size := utf8.DecodeRuneInString(t.source[t.offset:])
	t.offset += size
	if r == '\n' {
		t.pos.Line++
		t.pos.Column = 0
	} else {
		t.pos.Column++
	}
	return r
}

func (t *tokenizer) emit(kind TokenKind) Token {
	return Token{
		Kind:  kind,
		Text:  t.source[t.start:t.offset],
		Start: t.startPos,
		End:   t.pos,
	}
}

func (t *tokenizer) invalid(reason InvalidReason) Token {
	tok := t.emit(TokenInvalid)
	tok.Invalid = reason
	return tok
}

func (t *tokenizer) skipSpaces() {
	t.spaceBefore = false
	for {
		switch t.peek() {
		case ' ', '\t':
		case '\r':
			if t.peekAt(1) == '\n' {
				return
			}
		default:
			return
		}
		t.advance()
		t.spaceBefore = true
	}
}

func (t *tokenizer) next() Token {
	t.skipSpaces()
	t.start = t.offset
	t.startPos = t.pos

	r := t.advance()
	switch {
	case r == eof:
		return Token{
			Kind:  TokenEOF,
			Start: t.pos,
			End:   t.pos,
		}
	case r == '\n' || r == '\f':
		return t.emit(TokenNewLine)
	case r == '\r':
		t.advance()
		return t.emit(TokenNewLine)
	case isDigit(r):
		return t.number(r)
	case r == '.' && isDigit(t.peek()) && t.dotStartsNumber():
		return t.number(r)
	case r == '"':
		return t.string()
	case r == '_':
		return t.emit(TokenSpecial)
	case r == '@':
		if !unicode.IsLetter(t.peek()) {
			return t.invalid(InvalidCharacter)
		}
		t.identifierRun()
		return t.emit(TokenBinding)
	case r == '$':
		if !isIdentifierPart(t.peek()) {
			return t.invalid(InvalidCharacter)
		}
		t.identifierRun()
		return t.emit(TokenPositional)
	case unicode.IsLetter(r):
		t.identifierRun()
		tok := t.emit(TokenIdentifier)
		if kind, ok := keywords[tok.Text]; ok {
			tok.Kind = kind
		}
		return tok
	}

	switch r {
	case '+':
		return t.emit(TokenPlus)
	case '*':
		return t.emit(TokenTimes)
	case '%':
		return t.emit(TokenMod)
	case '^':
		return t.emit(TokenExponent)
	case '~':
		return t.emit(TokenBnot)
	case '?':
		return t.emit(TokenPropagate)
	case '=':
		return t.emit(TokenEq)
	case '(':
		return t.emit(TokenLparen)
	case ')':
		return t.emit(TokenRparen)
	case '[':
		return t.emit(TokenLbracket)
	case ']':
		return t.emit(TokenRbracket)
	case '{':
		return t.emit(TokenLbrace)
	case '}':
		return t.emit(TokenRbrace)
	case ',':
		return t.emit(TokenComma)
	case '\\':
		return t.emit(TokenBackslash)
	case '\'':
		return t.emit(TokenApostrophe)
	case ':':
		return t.emit(TokenColon)

	case '-':
		if t.peek() == '>' {
			t.advance()
			return t.emit(TokenArrow)
		}
		return t.emit(TokenMinus)
	case '/':
		if t.peek() == '/' {
			for p := t.peek(); p != '\n' && p != eof; p = t.peek() {
				t.advance()
			}
			return t.emit(TokenComment)
		}
		return t.emit(TokenBy)
	case '>':
		switch t.peek() {
		case '=':
			t.advance()
			return t.emit(TokenGe)
		case '>':
			t.advance()
			return t.emit(TokenRshift)
		}
		return t.emit(TokenGt)
	case '<':
		switch t.peek() {
		case '=':
			t.advance()
			return t.emit(TokenLe)
		case '<':
			t.advance()
			return t.emit(TokenLshift)
		}
		return t.emit(TokenLt)
	case '.':
		switch t.peek() {
		case '&':
			t.advance()
			return t.emit(TokenBand)
		case '|':
			t.advance()
			return t.emit(TokenBor)
		case '^':
			t.advance()
			return t.emit(TokenBxor)
		}
		return t.emit(TokenDot)
	case '|':
		if t.peek() == '>' {
			t.advance()
			return t.emit(TokenPipe)
		}
		return t.emit(TokenBar)
	}

	return t.invalid(InvalidCharacter)
}

func (t *tokenizer) identifierRun() {
	for isIdentifierPart(t.peek()) {
		t.advance()
	}
}

// dotStartsNumber decides whether a '.' followed by a digit begins a float
// like ".5" or is member access like "s.1".
func (t *tokenizer) dotStartsNumber() bool {
	if t.spaceBefore || len(t.tokens) == 0 {
		return true
	}
	return !canBeLeftOperand(t.tokens[len(t.tokens)-1].Kind)
}

func canBeLeftOperand(kind TokenKind) bool {
	switch kind {
	case TokenInt, TokenFloat, TokenImaginary, TokenString,
		TokenIdentifier, TokenSpecial, TokenBinding, TokenPositional,
		TokenRparen, TokenRbracket, TokenRbrace:
		return true
	}
	return false
}

func (t *tokenizer) digitRun() {
	for p := t.peek(); isDigit(p) || p == '_'; p = t.peek() {
		t.advance()
	}
}

func (t *tokenizer) number(first rune) Token {
	if first == '0' {
		base := 0
		switch t.peek() {
		case 'x':
			base = 16
		case 'o':
			base = 8
		case 'b':
			base = 2
		}
		if base != 0 {
			t.advance()
			digitsStart := t.offset
			t.identifierRun()
			return t.radixLiteral(t.source[digitsStart:t.offset], base)
		}
	}

	isFloat := first == '.'
	t.digitRun()
	if !isFloat && t.peek() == '.' && t.dotContinuesNumber() {
		t.advance()
		t.digitRun()
		isFloat = true
	}
	if isFloat && t.exponentFollows() {
		t.advance()
		if p := t.peek(); p == '+' || p == '-' {
			t.advance()
		}
		t.digitRun()
	}

	imaginary := t.peek() == 'i' && !isIdentifierPart(t.peekAt(1))
	text := strings.ReplaceAll(t.source[t.start:t.offset], "_", "")
	if imaginary {
		t.advance()
	}

	if !isFloat && !imaginary {
		v, err := strconv.ParseUint(text, 10, 64)
		if err != nil {
			return t.invalid(numberErrorReason(err))
		}
		tok := t.emit(TokenInt)
		tok.Int = v
		return tok
	}

	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return t.invalid(numberErrorReason(err))
	}
	tok := t.emit(TokenFloat)
	if imaginary {
		tok.Kind = TokenImaginary
	}
	tok.Float = v
	return tok
}

// dotContinuesNumber reports whether the '.' after an integer digit run is a
// decimal point. It is not when it starts a bitwise operator or a member name.
func (t *tokenizer) dotContinuesNumber() bool {
	switch next := t.peekAt(1); {
	case next == '&' || next == '|' || next == '^' || next == '.':
		return false
	case next == 'e' || next == 'E':
		after := t.peekAt(2)
		if after == '+' || after == '-' {
			after = t.peekAt(3)
		}
		return isDigit(after)
	case unicode.IsLetter(next) || next == '_':
		return false
	}
	return true
}

func (t *tokenizer) exponentFollows() bool {
	if p := t.peek(); p != 'e' && p != 'E' {
		return false
	}
	next := t.peekAt(1)
	if next == '+' || next == '-' {
		next = t.peekAt(2)
	}
	return isDigit(next)
}

func (t *tokenizer) radixLiteral(digits string, base int) Token {
	digits = strings.ReplaceAll(digits, "_", "")
	if digits == "" {
		return t.invalid(InvalidNumber)
	}
	v, err := strconv.ParseUint(digits, base, 64)
	if err != nil {
		return t.invalid(numberErrorReason(err))
	}
	tok := t.emit(TokenInt)
	tok.Int = v
	return tok
}

func numberErrorReason(err error) InvalidReason {
	if errors.Is(err, strconv.ErrRange) {
		return InvalidNumberOverflow
	}
	return InvalidNumber
}

func (t *tokenizer) string() Token {
	if t.peek() == '"' {
		t.advance()
		if t.peek() != '"' {
			// ""
			tok := t.emit(TokenString)
			return tok
		}
		// """ runs to the end of the line
		t.advance()
		contentStart := t.offset
		for p := t.peek(); p != '\n' && p != eof; p = t.peek() {
			t.advance()
		}
		tok := t.emit(TokenString)
		tok.Str = t.source[contentStart:t.offset]
		return tok
	}

	var buf strings.Builder
	reason := InvalidNone
	for {
		r := t.peek()
		switch r {
		case eof, '\n':
			return t.invalid(InvalidUnterminatedString)
		case '"':
			t.advance()
			if reason != InvalidNone {
				return t.invalid(reason)
			}
			tok := t.emit(TokenString)
			tok.Str = buf.String()
			return tok
		case '\\':
			t.advance()
			escaped, ok := unescape(t.peek())
			if t.peek() == eof || t.peek() == '\n' {
				return t.invalid(InvalidUnterminatedString)
			}
			t.advance()
			if !ok {
				reason = InvalidEscape
				continue
			}
			buf.WriteRune(escaped)
		default:
			t.advance()
			buf.WriteRune(r)
		}
	}
}

func unescape(r rune) (rune, bool) {
	switch r {
	case '"':
		return '"', true
	case '\\':
		return '\\', true
	case 'b':
		return '\b', true
	case 'f':
		return '\f', true
	case 'n':
		return '\n', true
	case 'r':
		return '\r', true
	case 't':
		return '\t', true
	}
	return 0, false
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isIdentifierPart(r rune) bool {
	return r == '_' || isDigit(r) || unicode.IsLetter(r) || unicode.IsDigit(r)
}
