package syntax

import "fmt"

type Container uint8

const (
	ContainerFile Container = iota
	ContainerParen
	ContainerBracket
	ContainerBrace
)

func (c Container) String() string {
	switch c {
	case ContainerFile:
		return "file"
	case ContainerParen:
		return "paren"
	case ContainerBracket:
		return "bracket"
	case ContainerBrace:
		return "brace"
	}
	return fmt.Sprintf("Container(%d)", c)
}

func (c Container) closer() TokenKind {
	switch c {
	case ContainerParen:
		return TokenRparen
	case ContainerBracket:
		return TokenRbracket
	case ContainerBrace:
		return TokenRbrace
	}
	return TokenEOF
}

// newlineSeparates reports whether a newline between two expressions acts as
// a list separator inside the container.
func (c Container) newlineSeparates() bool {
	return c == ContainerFile || c == ContainerBrace
}

func containerOpenedBy(kind TokenKind) (Container, bool) {
	switch kind {
	case TokenLparen:
		return ContainerParen, true
	case TokenLbracket:
		return ContainerBracket, true
	case TokenLbrace:
		return ContainerBrace, true
	}
	return 0, false
}

func isCloser(kind TokenKind) bool {
	switch kind {
	case TokenRparen, TokenRbracket, TokenRbrace, TokenEOF:
		return true
	}
	return false
}

// Expression is a node of the syntax tree. The set of implementations is closed.
type Expression interface {
	Range() Span
	String() string
	expression()
}

type IntLiteral struct {
	Span
	Value uint64
}

type FloatLiteral struct {
	Span
	Value float64
}

type ImaginaryLiteral struct {
	Span
	Value float64
}

type StringLiteral struct {
	Span
	Value string
}

type Identifier struct {
	Span
	Name string
}

type QualifiedIdentifier struct {
	Span
	Segments []string
}

// Placeholder is the special name _.
type Placeholder struct {
	Span
}

// Binding is @Name.
type Binding struct {
	Span
	Name string
}

// Positional is $Name, where Name may be all digits.
type Positional struct {
	Span
	Name string
}

type Unary struct {
	Span
	Op      Operator
	Operand Expression
}

type Binary struct {
	Span
	Op    Operator
	Left  Expression
	Right Expression
}

type List struct {
	Span
	Container Container
	Elements  []Expression

	// sealed lists no longer absorb comma-separated siblings
	sealed bool
}

type Access struct {
	Span
	Base   Expression
	Member string
}

// Tagged binds a name to a value. Tag is an *Identifier or a *QualifiedIdentifier.
type Tagged struct {
	Span
	Tag   Expression
	Value Expression
}

// Call applies Callee to the content of a bracket container written right after it.
type Call struct {
	Span
	Callee    Expression
	Container Container
	Argument  Expression
}

type Empty struct {
	Span
	Container Container
}

func (*IntLiteral) expression()          {}
func (*FloatLiteral) expression()        {}
func (*ImaginaryLiteral) expression()    {}
func (*StringLiteral) expression()       {}
func (*Identifier) expression()          {}
func (*QualifiedIdentifier) expression() {}
func (*Placeholder) expression()         {}
func (*Binding) expression()             {}
func (*Positional) expression()          {}
func (*Unary) expression()               {}
func (*Binary) expression()              {}
func (*List) expression()                {}
func (*Access) expression()              {}
func (*Tagged) expression()              {}
func (*Call) expression()                {}
func (*Empty) expression()               {}

func (e *IntLiteral) String() string          { return Format(e) }
func (e *FloatLiteral) String() string        { return Format(e) }
func (e *ImaginaryLiteral) String() string    { return Format(e) }
func (e *StringLiteral) String() string       { return Format(e) }
func (e *Identifier) String() string          { return Format(e) }
func (e *QualifiedIdentifier) String() string { return Format(e) }
func (e *Placeholder) String() string         { return Format(e) }
func (e *Binding) String() string             { return Format(e) }
func (e *Positional) String() string          { return Format(e) }
func (e *Unary) String() string               { return Format(e) }
func (e *Binary) String() string              { return Format(e) }
func (e *List) String() string                { return Format(e) }
func (e *Access) String() string              { return Format(e) }
func (e *Tagged) String() string              { return Format(e) }
func (e *Call) String() string                { return Format(e) }
func (e *Empty) String() string               { return Format(e) }

// Walk calls fn for expr and each of its descendants in depth-first pre-order.
// Returning false from fn skips the children of that node.
func Walk(expr Expression, fn func(Expression) bool) {
	if expr == nil || !fn(expr) {
		return
	}
	switch expr := expr.(type) {
	case *Unary:
		Walk(expr.Operand, fn)
	case *Binary:
		Walk(expr.Left, fn)
		Walk(expr.Right, fn)
	case *List:
		for _, elem := range expr.Elements {
			Walk(elem, fn)
		}
	case *Access:
		Walk(expr.Base, fn)
	case *Tagged:
		Walk(expr.Tag, fn)
		Walk(expr.Value, fn)
	case *Call:
		Walk(expr.Callee, fn)
		Walk(expr.Argument, fn)
	}
}

// Count returns the number of nodes in the tree rooted at expr.
func Count(expr Expression) int {
	n := 0
	Walk(expr, func(Expression) bool {
		n++
		return true
	})
	return n
}
