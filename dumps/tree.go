package dumps

import (
	"fmt"
	"strings"

	"github.com/reusee/peopl/syntax"
	"github.com/samber/lo"
)

// Node is the encoding-neutral form of an Expression. Field order is the
// key order of every encoding.
type Node struct {
	Kind      string  `yaml:"kind" json:"kind" toml:"kind"`
	Span      string  `yaml:"span" json:"span" toml:"span"`
	Op        string  `yaml:"op,omitempty" json:"op,omitempty" toml:"op,omitempty"`
	Container string  `yaml:"container,omitempty" json:"container,omitempty" toml:"container,omitempty"`
	Name      string  `yaml:"name,omitempty" json:"name,omitempty" toml:"name,omitempty"`
	Value     any     `yaml:"value,omitempty" json:"value,omitempty" toml:"value,omitempty"`
	Children  []*Node `yaml:"children,omitempty" json:"children,omitempty" toml:"children,omitempty"`
}

func spanString(span syntax.Span) string {
	return span.Start.String() + "-" + span.End.String()
}

func Tree(expr syntax.Expression) *Node {
	node := &Node{
		Span: spanString(expr.Range()),
	}

	switch expr := expr.(type) {

	case *syntax.IntLiteral:
		node.Kind = "int"
		node.Value = expr.Value
	case *syntax.FloatLiteral:
		node.Kind = "float"
		node.Value = expr.Value
	case *syntax.ImaginaryLiteral:
		node.Kind = "imaginary"
		node.Value = expr.Value
	case *syntax.StringLiteral:
		node.Kind = "string"
		node.Value = expr.Value

	case *syntax.Identifier:
		node.Kind = "identifier"
		node.Name = expr.Name
	case *syntax.QualifiedIdentifier:
		node.Kind = "qualified"
		node.Name = strings.Join(expr.Segments, `\`)
	case *syntax.Placeholder:
		node.Kind = "placeholder"
		node.Name = "_"
	case *syntax.Binding:
		node.Kind = "binding"
		node.Name = expr.Name
	case *syntax.Positional:
		node.Kind = "positional"
		node.Name = expr.Name

	case *syntax.Unary:
		node.Kind = "unary"
		node.Op = expr.Op.String()
		node.Children = trees(expr.Operand)
	case *syntax.Binary:
		node.Kind = "binary"
		node.Op = expr.Op.String()
		node.Children = trees(expr.Left, expr.Right)

	case *syntax.List:
		node.Kind = "list"
		node.Container = expr.Container.String()
		node.Children = trees(expr.Elements...)
	case *syntax.Empty:
		node.Kind = "empty"
		node.Container = expr.Container.String()

	case *syntax.Access:
		node.Kind = "access"
		node.Name = expr.Member
		node.Children = trees(expr.Base)
	case *syntax.Tagged:
		node.Kind = "tagged"
		node.Name = syntax.Format(expr.Tag)
		node.Children = trees(expr.Value)
	case *syntax.Call:
		node.Kind = "call"
		node.Container = expr.Container.String()
		node.Children = trees(expr.Callee, expr.Argument)

	default:
		panic(fmt.Errorf("unknown expression %T", expr))
	}

	return node
}

func trees(exprs ...syntax.Expression) []*Node {
	return lo.Map(exprs, func(expr syntax.Expression, _ int) *Node {
		return Tree(expr)
	})
}
