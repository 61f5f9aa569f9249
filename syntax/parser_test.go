package syntax

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"sync"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", "(empty file)"},
		{"\n\n", "(empty file)"},
		{"1", "1"},
		{"1.0", "1.0"},
		{`"s"`, `"s"`},
		{"foo", "foo"},
		{"1, 0x12, 3.4", "(list file 1 18 3.4)"},

		// precedence and associativity
		{"1 + 2 * 3", "(+ 1 (* 2 3))"},
		{"1 * 2 + 3", "(+ (* 1 2) 3)"},
		{"1 - 2 + 3", "(+ (- 1 2) 3)"},
		{"2 ^ 3 ^ 4", "(^ (^ 2 3) 4)"},
		{"a or b and c", "(or a (and b c))"},
		{"a .| b .^ c .& d", "(.| a (.^ b (.& c d)))"},
		{"1 << 2 + 3", "(<< 1 (+ 2 3))"},
		{"a = b and c < d", "(and (= a b) (< c d))"},
		{"x |> f or g", "(|> x (or f g))"},
		{`- 1 * 4 > 3 - 2 and v = "s"`, `(and (> (- (* 1 4)) (- 3 2)) (= v "s"))`},
		{"2i + 1.5", "(+ 2i 1.5)"},

		// unary
		{"not a and b", "(and (not a) b)"},
		{"~a + b", "(+ (~ a) b)"},
		{"-a.b", "(- (. a b))"},
		{"- -1", "(- (- 1))"},
		{"+x", "(+ x)"},

		// tags
		{"c: 1 + 2", "(: c (+ 1 2))"},
		{"a: b: 1", "(: a (: b 1))"},
		{"x: 1, y: 2", "(list file (: x 1) (: y 2))"},
		{`a\b: 1`, `(: a\b 1)`},

		// access and qualified names
		{"s.a", "(. s a)"},
		{"s.a.b", "(. (. s a) b)"},
		{`a\b\c`, `a\b\c`},
		{`a\b.c`, `(. a\b c)`},

		// calls
		{"a.b(1)", "(call paren (. a b) 1)"},
		{"f(1, 2)", "(call paren f (list paren 1 2))"},
		{"f()", "(call paren f (empty paren))"},
		{"f[1]", "(call bracket f (list bracket 1))"},
		{"f{a: 1}", "(call brace f (list brace (: a 1)))"},
		{"f(1)(2)", "(call paren (call paren f 1) 2)"},

		// containers
		{"()", "(empty paren)"},
		{"[]", "(empty bracket)"},
		{"{}", "(empty brace)"},
		{"(1)", "1"},
		{"((1))", "1"},
		{"[1]", "(list bracket 1)"},
		{"[1, 2, 3]", "(list bracket 1 2 3)"},
		{"{a: 1}", "(list brace (: a 1))"},
		{"((1, 2), 3)", "(list paren (list paren 1 2) 3)"},
		{"(1, 2), 3", "(list file (list paren 1 2) 3)"},
		{"[(1, 2)]", "(list bracket (list paren 1 2))"},
		{"[[1], [2, 3]]", "(list bracket (list bracket 1) (list bracket 2 3))"},
		{"[1, 2,]", "(list bracket 1 2)"},
		{"(1,)", "(list paren 1)"},
		{"1, 2,", "(list file 1 2)"},

		// placeholders, bindings and positionals
		{"_", "_"},
		{"$0 + $1", "(+ $0 $1)"},
		{"f(_, @x)", "(call paren f (list paren _ @x))"},
		{"x: @value.name", "(: x (. @value name))"},
		{"{\n @a\n _\n $b\n}", "(list brace @a _ $b)"},

		// newlines
		{"1\n2\n\n3", "(list file 1 2 3)"},
		{"\n\n1 +\n2\n\n", "(+ 1 2)"},
		{"(1\n+ 2)", "(+ 1 2)"},
		{"[1,\n2]", "(list bracket 1 2)"},
		{"{\n a: 1\n b: 2\n}", "(list brace (: a 1) (: b 2))"},
		{"a\n.b", "(. a b)"},
		{"a\n-b", "(list file a (- b))"},
		{"1 // comment\n2", "(list file 1 2)"},
		{"1,\n2", "(list file 1 2)"},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			expr, err := Parse(test.input)
			if err != nil {
				t.Fatal(err)
			}
			if got := Format(expr); got != test.expected {
				t.Fatalf("got %s, expected %s", got, test.expected)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input string
		err   error
	}{
		{"1: 2", ErrTaggedLhsNotIdentifier},
		{"x.y: 1", ErrTaggedLhsNotIdentifier},
		{"s.1", ErrAccessRhsNotIdentifier},
		{`a\1`, ErrQualifierNotIdentifier},
		{"(1]", ErrMismatchedCloser},
		{"f(1]", ErrMismatchedCloser},
		{"1)", ErrMismatchedCloser},
		{"]", ErrMismatchedCloser},
		{"(1", ErrUnclosedContainer},
		{"[1, (2", ErrUnclosedContainer},
		{"* 3", ErrIllegalUnaryOperator},
		{"a not b", ErrIllegalUnaryOperator},
		{"a ~ b", ErrIllegalUnaryOperator},
		{"1 +", ErrUnexpectedToken},
		{"1 2", ErrUnexpectedToken},
		{"fn", ErrUnexpectedToken},
		{",", ErrUnexpectedToken},
		{"(1 + )", ErrUnexpectedToken},
		{"[1\n2]", ErrUnexpectedToken},
		{"#", ErrUnexpectedToken},
		{"0x", ErrInvalidLiteral},
		{`"abc`, ErrInvalidLiteral},
		{`"\q"`, ErrInvalidLiteral},
		{"99999999999999999999", ErrInvalidLiteral},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			expr, err := Parse(test.input)
			if err == nil {
				t.Fatalf("expected error, got %v", expr)
			}
			if !errors.Is(err, test.err) {
				t.Fatalf("got %v", err)
			}
			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("got %T", err)
			}
		})
	}
}

func TestParseErrorPosition(t *testing.T) {
	tests := []struct {
		input string
		pos   Pos
	}{
		{"(1]", Pos{0, 2}},
		{"1: 2", Pos{0, 0}},
		{"s.1", Pos{0, 2}},
		{"a +\n  * b", Pos{1, 2}},
		{"(1", Pos{0, 2}},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			_, err := Parse(test.input)
			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("got %v", err)
			}
			if parseErr.Pos != test.pos {
				t.Fatalf("got %v", parseErr.Pos)
			}
			if !strings.Contains(err.Error(), test.pos.String()) {
				t.Fatalf("got %s", err.Error())
			}
		})
	}
}

func TestParseMaxDepth(t *testing.T) {
	nested := func(n int) string {
		return strings.Repeat("(", n) + "1" + strings.Repeat(")", n)
	}

	_, err := Options{MaxDepth: 10}.Parse(nested(20))
	if !errors.Is(err, ErrMaxNestingExceeded) {
		t.Fatalf("got %v", err)
	}

	_, err = Options{MaxDepth: 10}.Parse(strings.Repeat("- ", 50) + "1")
	if !errors.Is(err, ErrMaxNestingExceeded) {
		t.Fatalf("got %v", err)
	}

	// tags nest to the right and count as nesting
	_, err = Options{MaxDepth: 10}.Parse(strings.Repeat("a: ", 50) + "1")
	if !errors.Is(err, ErrMaxNestingExceeded) {
		t.Fatalf("got %v", err)
	}
	_, err = Options{MaxDepth: 10}.Parse(strings.Repeat("a: - ", 20) + "1")
	if !errors.Is(err, ErrMaxNestingExceeded) {
		t.Fatalf("got %v", err)
	}
	expr, err := Options{MaxDepth: 10}.Parse("a: b: c: 1")
	if err != nil {
		t.Fatal(err)
	}
	if got := Format(expr); got != "(: a (: b (: c 1)))" {
		t.Fatalf("got %s", got)
	}
	_, err = Parse(strings.Repeat("a:", 300000) + "1")
	if !errors.Is(err, ErrMaxNestingExceeded) {
		t.Fatalf("got %v", err)
	}

	expr, err = Parse(nested(100))
	if err != nil {
		t.Fatal(err)
	}
	if Format(expr) != "1" {
		t.Fatalf("got %v", expr)
	}

	// deep input fails cleanly instead of exhausting the stack
	_, err = Parse(nested(100000))
	if !errors.Is(err, ErrMaxNestingExceeded) {
		t.Fatalf("got %v", err)
	}
}

func binaryOperators() []Operator {
	var ret []Operator
	for op := OpExponent; op < numOperators; op++ {
		if op.IsBinary() {
			ret = append(ret, op)
		}
	}
	return ret
}

func TestPrecedenceLaw(t *testing.T) {
	ops := binaryOperators()
	for _, op1 := range ops {
		for _, op2 := range ops {
			input := fmt.Sprintf("a %s b %s c", op1, op2)
			var expected string
			if op1.Precedence() >= op2.Precedence() {
				expected = fmt.Sprintf("(%s (%s a b) c)", op2, op1)
			} else {
				expected = fmt.Sprintf("(%s a (%s b c))", op1, op2)
			}
			expr, err := Parse(input)
			if err != nil {
				t.Fatalf("%s: %v", input, err)
			}
			if got := Format(expr); got != expected {
				t.Fatalf("%s: got %s, expected %s", input, got, expected)
			}
		}
	}
}

func TestParenIsTransparent(t *testing.T) {
	inputs := []string{
		"1",
		"a + b * c",
		"not x or y",
		"c: 1 + 2",
		"s.a.b",
		"f(1, 2)",
		"[1, 2]",
		`a\b`,
		"()",
	}
	for _, input := range inputs {
		bare, err := Parse(input)
		if err != nil {
			t.Fatal(err)
		}
		wrapped, err := Parse("(" + input + ")")
		if err != nil {
			t.Fatal(err)
		}
		if Format(bare) != Format(wrapped) {
			t.Fatalf("%s: got %v and %v", input, bare, wrapped)
		}
	}

	// a comma list keeps its elements but records the container that built it
	for _, input := range []string{
		"1, 2",
		"a: 1, b: [2]",
		"x,",
	} {
		bare, err := Parse(input)
		if err != nil {
			t.Fatal(err)
		}
		wrapped, err := Parse("(" + input + ")")
		if err != nil {
			t.Fatal(err)
		}
		bareList, ok := bare.(*List)
		if !ok || bareList.Container != ContainerFile {
			t.Fatalf("%s: got %v", input, bare)
		}
		wrappedList, ok := wrapped.(*List)
		if !ok || wrappedList.Container != ContainerParen {
			t.Fatalf("%s: got %v", input, wrapped)
		}
		if len(bareList.Elements) != len(wrappedList.Elements) {
			t.Fatalf("%s: got %v and %v", input, bare, wrapped)
		}
		for i := range bareList.Elements {
			if Format(bareList.Elements[i]) != Format(wrappedList.Elements[i]) {
				t.Fatalf("%s: got %v and %v", input, bare, wrapped)
			}
		}
	}
	if got := Format(mustParse(t, "(1, 2)")); got != "(list paren 1 2)" {
		t.Fatalf("got %s", got)
	}
}

func mustParse(t *testing.T, source string) Expression {
	t.Helper()
	expr, err := Parse(source)
	if err != nil {
		t.Fatal(err)
	}
	return expr
}

func TestParseRadixLiterals(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	prefixes := map[int]string{
		2:  "0b",
		8:  "0o",
		10: "",
		16: "0x",
	}
	for range 100 {
		var values []uint64
		var parts []string
		for base, prefix := range prefixes {
			v := r.Uint64()
			values = append(values, v)
			parts = append(parts, prefix+strconv.FormatUint(v, base))
		}
		input := strings.Join(parts, ", ")
		expr, err := Parse(input)
		if err != nil {
			t.Fatalf("%s: %v", input, err)
		}
		list, ok := expr.(*List)
		if !ok || len(list.Elements) != len(values) {
			t.Fatalf("%s: got %v", input, expr)
		}
		for i, elem := range list.Elements {
			lit, ok := elem.(*IntLiteral)
			if !ok || lit.Value != values[i] {
				t.Fatalf("%s: element %d: got %v, expected %d", input, i, elem, values[i])
			}
		}
	}
}

func TestParseSpans(t *testing.T) {
	tests := []struct {
		input string
		span  Span
	}{
		{"a + bc", Span{Pos{0, 0}, Pos{0, 6}}},
		{"[1, 2]", Span{Pos{0, 0}, Pos{0, 6}}},
		{"  x: y", Span{Pos{0, 2}, Pos{0, 6}}},
		{"-1", Span{Pos{0, 0}, Pos{0, 2}}},
		{"f(1)\n", Span{Pos{0, 0}, Pos{0, 4}}},
		{"1,\n2", Span{Pos{0, 0}, Pos{1, 1}}},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			expr, err := Parse(test.input)
			if err != nil {
				t.Fatal(err)
			}
			if got := expr.Range(); got != test.span {
				t.Fatalf("got %v", got)
			}
		})
	}
}

func TestParseCommentsOnly(t *testing.T) {
	expr, err := Parse("// nothing here\n// or here")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := expr.(*Empty); !ok {
		t.Fatalf("got %v", expr)
	}
}

func TestParserReuse(t *testing.T) {
	p := NewParser(Tokenize("a, b"), Options{})
	first, err := p.Parse()
	if err != nil {
		t.Fatal(err)
	}
	second, err := p.Parse()
	if err != nil {
		t.Fatal(err)
	}
	if Format(first) != Format(second) {
		t.Fatalf("got %v and %v", first, second)
	}
}

func TestNewParserWithoutEOF(t *testing.T) {
	tokens := Tokenize("1 + 2")
	p := NewParser(tokens[:len(tokens)-1], Options{})
	expr, err := p.Parse()
	if err != nil {
		t.Fatal(err)
	}
	if Format(expr) != "(+ 1 2)" {
		t.Fatalf("got %v", expr)
	}
}

func TestParseConcurrently(t *testing.T) {
	inputs := map[string]string{
		"1 + 2 * 3":    "(+ 1 (* 2 3))",
		"[a, b]":       "(list bracket a b)",
		"c: f(x)":      "(: c (call paren f x))",
		"s.a\ns.b":     "(list file (. s a) (. s b))",
		"not a or b":   "(or (not a) b)",
		"{k: v, w: 1}": "(list brace (: k v) (: w 1))",
	}
	var wg sync.WaitGroup
	errs := make(chan error, len(inputs)*10)
	for range 10 {
		for input, expected := range inputs {
			wg.Go(func() {
				expr, err := Parse(input)
				if err != nil {
					errs <- err
					return
				}
				if got := Format(expr); got != expected {
					errs <- fmt.Errorf("%s: got %s", input, got)
				}
			})
		}
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatal(err)
	}
}

func TestWalk(t *testing.T) {
	expr, err := Parse("f(a + 1, [b, c.d])")
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	Walk(expr, func(expr Expression) bool {
		if ident, ok := expr.(*Identifier); ok {
			names = append(names, ident.Name)
		}
		return true
	})
	if strings.Join(names, ",") != "f,a,b,c" {
		t.Fatalf("got %v", names)
	}
	// call, f, list paren, +, a, 1, list bracket, b, access, c
	if n := Count(expr); n != 10 {
		t.Fatalf("got %d", n)
	}
}
