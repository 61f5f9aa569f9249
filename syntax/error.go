package syntax

import (
	"errors"
	"fmt"
)

var (
	ErrUnexpectedToken        = errors.New("unexpected token")
	ErrUnclosedContainer      = errors.New("unclosed container")
	ErrMismatchedCloser       = errors.New("mismatched closer")
	ErrIllegalUnaryOperator   = errors.New("illegal unary operator")
	ErrTaggedLhsNotIdentifier = errors.New("tagged expression requires an identifier left-hand side")
	ErrAccessRhsNotIdentifier = errors.New("access requires an identifier member name")
	ErrQualifierNotIdentifier = errors.New("qualified identifier segments must be identifiers")
	ErrInvalidLiteral         = errors.New("invalid literal")
	ErrMaxNestingExceeded     = errors.New("maximum nesting depth exceeded")
)

// ParseError is the single diagnostic of a failed parse. Err is one of the
// Err* values above; Token is the offending token and Pos its start.
type ParseError struct {
	Err    error
	Pos    Pos
	Token  Token
	Detail string
}

func (p *ParseError) Error() string {
	if p.Detail != "" {
		return fmt.Sprintf("%s at %s: %s", p.Err.Error(), p.Pos, p.Detail)
	}
	return fmt.Sprintf("%s at %s: %v", p.Err.Error(), p.Pos, p.Token)
}

func (p *ParseError) Unwrap() error {
	return p.Err
}

func newParseError(err error, tok Token, detailFormat string, args ...any) *ParseError {
	ret := &ParseError{
		Err:   err,
		Pos:   tok.Start,
		Token: tok,
	}
	if detailFormat != "" {
		ret.Detail = fmt.Sprintf(detailFormat, args...)
	}
	return ret
}
