package syntax

import "fmt"

type Operator uint8

const (
	OpInvalid Operator = iota
	OpExponent
	OpTimes
	OpBy
	OpMod
	OpPlus
	OpMinus
	OpLshift
	OpRshift
	OpBitAnd
	OpBitOr
	OpBitXor
	OpEq
	OpGe
	OpGt
	OpLe
	OpLt
	OpLogicalAnd
	OpLogicalOr
	OpLogicalNot
	OpBitNot
	OpPipe

	numOperators
)

type operatorInfo struct {
	symbol string
	token  TokenKind
	binary bool
	unary  bool
}

var operators = [numOperators]operatorInfo{
	OpExponent:   {"^", TokenExponent, true, false},
	OpTimes:      {"*", TokenTimes, true, false},
	OpBy:         {"/", TokenBy, true, false},
	OpMod:        {"%", TokenMod, true, false},
	OpPlus:       {"+", TokenPlus, true, true},
	OpMinus:      {"-", TokenMinus, true, true},
	OpLshift:     {"<<", TokenLshift, true, false},
	OpRshift:     {">>", TokenRshift, true, false},
	OpBitAnd:     {".&", TokenBand, true, false},
	OpBitOr:      {".|", TokenBor, true, false},
	OpBitXor:     {".^", TokenBxor, true, false},
	OpEq:         {"=", TokenEq, true, false},
	OpGe:         {">=", TokenGe, true, false},
	OpGt:         {">", TokenGt, true, false},
	OpLe:         {"<=", TokenLe, true, false},
	OpLt:         {"<", TokenLt, true, false},
	OpLogicalAnd: {"and", TokenAnd, true, false},
	OpLogicalOr:  {"or", TokenOr, true, false},
	OpLogicalNot: {"not", TokenNot, false, true},
	OpBitNot:     {"~", TokenBnot, false, true},
	OpPipe:       {"|>", TokenPipe, true, false},
}

var tokenOperators = func() map[TokenKind]Operator {
	ret := make(map[TokenKind]Operator, numOperators)
	for op := OpExponent; op < numOperators; op++ {
		ret[operators[op].token] = op
	}
	return ret
}()

// OperatorOf returns the operator spelled by a token kind.
func OperatorOf(kind TokenKind) (Operator, bool) {
	op, ok := tokenOperators[kind]
	return op, ok
}

func (o Operator) String() string {
	if o > OpInvalid && o < numOperators {
		return operators[o].symbol
	}
	return fmt.Sprintf("Operator(%d)", o)
}

func (o Operator) IsBinary() bool {
	return o < numOperators && operators[o].binary
}

func (o Operator) IsUnary() bool {
	return o < numOperators && operators[o].unary
}

// Precedence levels, higher binds tighter. precError marks a token that
// cannot continue an expression; precStop marks closers and end of input.
const (
	precError = iota - 1
	precStop
	precComma
	precTag
	precPipe
	precOr
	precAnd
	precRelational
	precBitOr
	precBitXor
	precBitAnd
	precShift
	precAdditive
	precMultiplicative
	precExponent
	precNot
	precBitNot
	precCall
	precAccess
	precQualifier
)

func precedence(kind TokenKind) int {
	switch kind {
	case TokenBackslash:
		return precQualifier
	case TokenDot:
		return precAccess
	case TokenLparen, TokenLbracket, TokenLbrace:
		return precCall
	case TokenBnot:
		return precBitNot
	case TokenNot:
		return precNot
	case TokenExponent:
		return precExponent
	case TokenTimes, TokenBy, TokenMod:
		return precMultiplicative
	case TokenPlus, TokenMinus:
		return precAdditive
	case TokenLshift, TokenRshift:
		return precShift
	case TokenBand:
		return precBitAnd
	case TokenBxor:
		return precBitXor
	case TokenBor:
		return precBitOr
	case TokenEq, TokenGe, TokenGt, TokenLe, TokenLt:
		return precRelational
	case TokenAnd:
		return precAnd
	case TokenOr:
		return precOr
	case TokenPipe:
		return precPipe
	case TokenColon:
		return precTag
	case TokenComma, TokenNewLine:
		return precComma
	case TokenRparen, TokenRbracket, TokenRbrace, TokenEOF:
		return precStop
	}
	return precError
}

// Precedence returns the binding strength of a binary-capable operator.
func (o Operator) Precedence() int {
	if o <= OpInvalid || o >= numOperators {
		return precError
	}
	return precedence(operators[o].token)
}
