package syntax

import (
	"strconv"
	"strings"
)

// Format renders expr as an s-expression, e.g. (+ 1 (* 2 x)).
func Format(expr Expression) string {
	var b strings.Builder
	format(&b, expr)
	return b.String()
}

func format(b *strings.Builder, expr Expression) {
	switch expr := expr.(type) {
	case nil:
		b.WriteString("<nil>")
	case *IntLiteral:
		b.WriteString(strconv.FormatUint(expr.Value, 10))
	case *FloatLiteral:
		b.WriteString(FormatFloat(expr.Value))
	case *ImaginaryLiteral:
		b.WriteString(strconv.FormatFloat(expr.Value, 'g', -1, 64))
		b.WriteString("i")
	case *StringLiteral:
		b.WriteString(strconv.Quote(expr.Value))
	case *Identifier:
		b.WriteString(expr.Name)
	case *QualifiedIdentifier:
		b.WriteString(strings.Join(expr.Segments, `\`))
	case *Placeholder:
		b.WriteString("_")
	case *Binding:
		b.WriteString("@")
		b.WriteString(expr.Name)
	case *Positional:
		b.WriteString("$")
		b.WriteString(expr.Name)
	case *Unary:
		b.WriteString("(")
		b.WriteString(expr.Op.String())
		b.WriteString(" ")
		format(b, expr.Operand)
		b.WriteString(")")
	case *Binary:
		b.WriteString("(")
		b.WriteString(expr.Op.String())
		b.WriteString(" ")
		format(b, expr.Left)
		b.WriteString(" ")
		format(b, expr.Right)
		b.WriteString(")")
	case *List:
		b.WriteString("(list ")
		b.WriteString(expr.Container.String())
		for _, elem := range expr.Elements {
			b.WriteString(" ")
			format(b, elem)
		}
		b.WriteString(")")
	case *Access:
		b.WriteString("(. ")
		format(b, expr.Base)
		b.WriteString(" ")
		b.WriteString(expr.Member)
		b.WriteString(")")
	case *Tagged:
		b.WriteString("(: ")
		format(b, expr.Tag)
		b.WriteString(" ")
		format(b, expr.Value)
		b.WriteString(")")
	case *Call:
		b.WriteString("(call ")
		b.WriteString(expr.Container.String())
		b.WriteString(" ")
		format(b, expr.Callee)
		b.WriteString(" ")
		format(b, expr.Argument)
		b.WriteString(")")
	case *Empty:
		b.WriteString("(empty ")
		b.WriteString(expr.Container.String())
		b.WriteString(")")
	}
}

// FormatFloat prints v so that it never reads back as an integer.
func FormatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if strings.ContainsAny(s, ".eInN") {
		return s
	}
	return s + ".0"
}
