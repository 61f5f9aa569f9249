package syntax

import "fmt"

type Token struct {
	Kind TokenKind
	// Text is the exact source slice matched. It is empty for TokenEOF.
	Text  string
	Start Pos
	End   Pos

	// decoded literal values
	Int   uint64  // TokenInt
	Float float64 // TokenFloat, TokenImaginary (value before the marker)
	Str   string  // TokenString, unescaped, quotes stripped

	Invalid InvalidReason // TokenInvalid
}

func (t Token) Span() Span {
	return Span{
		Start: t.Start,
		End:   t.End,
	}
}

func (t Token) String() string {
	if t.Kind == TokenEOF {
		return "end of input"
	}
	if t.Kind == TokenNewLine {
		return "newline"
	}
	return fmt.Sprintf("%v %q", t.Kind, t.Text)
}

type TokenKind uint8

const (
	TokenInvalid TokenKind = iota
	TokenEOF
	TokenNewLine
	TokenComment

	// literals
	TokenInt
	TokenFloat
	TokenImaginary
	TokenString
	TokenIdentifier
	TokenSpecial    // _
	TokenBinding    // @name
	TokenPositional // $name

	// keywords
	TokenIf
	TokenComp
	TokenFn
	TokenAnd
	TokenOr
	TokenNot

	// arithmetic
	TokenPlus
	TokenMinus
	TokenTimes
	TokenBy
	TokenMod
	TokenExponent

	// bitwise
	TokenLshift
	TokenRshift
	TokenBand
	TokenBor
	TokenBxor
	TokenBnot

	TokenDot
	TokenPipe
	TokenPropagate

	// comparison
	TokenEq
	TokenGe
	TokenGt
	TokenLe
	TokenLt

	// delimiters
	TokenLparen
	TokenRparen
	TokenLbracket
	TokenRbracket
	TokenLbrace
	TokenRbrace

	TokenComma
	TokenBar
	TokenBackslash
	TokenApostrophe
	TokenColon
	TokenArrow

	numTokenKinds
)

var tokenKindNames = [numTokenKinds]string{
	TokenInvalid:    "invalid",
	TokenEOF:        "eof",
	TokenNewLine:    "newline",
	TokenComment:    "comment",
	TokenInt:        "int",
	TokenFloat:      "float",
	TokenImaginary:  "imaginary",
	TokenString:     "string",
	TokenIdentifier: "identifier",
	TokenSpecial:    "_",
	TokenBinding:    "binding",
	TokenPositional: "positional",
	TokenIf:         "if",
	TokenComp:       "comp",
	TokenFn:         "fn",
	TokenAnd:        "and",
	TokenOr:         "or",
	TokenNot:        "not",
	TokenPlus:       "+",
	TokenMinus:      "-",
	TokenTimes:      "*",
	TokenBy:         "/",
	TokenMod:        "%",
	TokenExponent:   "^",
	TokenLshift:     "<<",
	TokenRshift:     ">>",
	TokenBand:       ".&",
	TokenBor:        ".|",
	TokenBxor:       ".^",
	TokenBnot:       "~",
	TokenDot:        ".",
	TokenPipe:       "|>",
	TokenPropagate:  "?",
	TokenEq:         "=",
	TokenGe:         ">=",
	TokenGt:         ">",
	TokenLe:         "<=",
	TokenLt:         "<",
	TokenLparen:     "(",
	TokenRparen:     ")",
	TokenLbracket:   "[",
	TokenRbracket:   "]",
	TokenLbrace:     "{",
	TokenRbrace:     "}",
	TokenComma:      ",",
	TokenBar:        "|",
	TokenBackslash:  `\`,
	TokenApostrophe: "'",
	TokenColon:      ":",
	TokenArrow:      "->",
}

func (k TokenKind) String() string {
	if k < numTokenKinds {
		return tokenKindNames[k]
	}
	return fmt.Sprintf("TokenKind(%d)", k)
}

var keywords = map[string]TokenKind{
	"if":   TokenIf,
	"comp": TokenComp,
	"fn":   TokenFn,
	"and":  TokenAnd,
	"or":   TokenOr,
	"not":  TokenNot,
}

// InvalidReason tells why the lexer produced a TokenInvalid.
type InvalidReason uint8

const (
	InvalidNone InvalidReason = iota
	InvalidCharacter
	InvalidUnterminatedString
	InvalidEscape
	InvalidNumber
	InvalidNumberOverflow
)

func (r InvalidReason) String() string {
	switch r {
	case InvalidCharacter:
		return "unrecognized character"
	case InvalidUnterminatedString:
		return "unterminated string"
	case InvalidEscape:
		return "invalid escape sequence"
	case InvalidNumber:
		return "malformed number"
	case InvalidNumberOverflow:
		return "number overflows 64 bits"
	}
	return "none"
}

// IsLiteral reports whether the reason concerns a literal rather than a stray character.
func (r InvalidReason) IsLiteral() bool {
	return r != InvalidNone && r != InvalidCharacter
}
