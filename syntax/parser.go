package syntax

// DefaultMaxDepth is the nesting limit used when Options.MaxDepth is zero.
const DefaultMaxDepth = 512

type Options struct {
	// MaxDepth bounds how deeply containers and operands may nest.
	MaxDepth int
}

// Parse tokenizes and parses source with default options.
func Parse(source string) (Expression, error) {
	return Options{}.Parse(source)
}

func (o Options) Parse(source string) (Expression, error) {
	return NewParser(Tokenize(source), o).Parse()
}

// Parser turns a token sequence into one root Expression by precedence
// climbing. A Parser is not safe for concurrent use; separate Parsers share
// nothing.
type Parser struct {
	tokens   []Token
	cursor   int
	depth    int
	maxDepth int
	opens    []Token
}

func NewParser(tokens []Token, options Options) *Parser {
	filtered := make([]Token, 0, len(tokens)+1)
	for _, tok := range tokens {
		if tok.Kind == TokenComment {
			continue
		}
		filtered = append(filtered, tok)
		if tok.Kind == TokenEOF {
			break
		}
	}
	if len(filtered) == 0 || filtered[len(filtered)-1].Kind != TokenEOF {
		var end Pos
		if len(filtered) > 0 {
			end = filtered[len(filtered)-1].End
		}
		filtered = append(filtered, Token{
			Kind:  TokenEOF,
			Start: end,
			End:   end,
		})
	}

	maxDepth := options.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	return &Parser{
		tokens:   filtered,
		maxDepth: maxDepth,
	}
}

// Parse parses the whole token sequence as the implicit file container.
func (p *Parser) Parse() (Expression, error) {
	p.cursor = 0
	p.depth = 0
	p.opens = p.opens[:0]
	return p.parseBody(ContainerFile, Token{})
}

func (p *Parser) current() Token {
	return p.tokens[p.cursor]
}

func (p *Parser) advance() {
	if p.tokens[p.cursor].Kind != TokenEOF {
		p.cursor++
	}
}

func (p *Parser) skipNewLines() {
	for p.tokens[p.cursor].Kind == TokenNewLine {
		p.cursor++
	}
}

func (p *Parser) peekPastNewLines() Token {
	i := p.cursor
	for p.tokens[i].Kind == TokenNewLine {
		i++
	}
	return p.tokens[i]
}

// parseBody parses the content of container c up to and including its
// closer. open is the already consumed opening token.
func (p *Parser) parseBody(c Container, open Token) (Expression, error) {
	if c != ContainerFile {
		p.opens = append(p.opens, open)
		defer func() {
			p.opens = p.opens[:len(p.opens)-1]
		}()
	}

	p.skipNewLines()
	if tok := p.current(); tok.Kind == c.closer() {
		p.advance()
		empty := &Empty{
			Span:      spanOf(open.Span(), tok.Span()),
			Container: c,
		}
		if c == ContainerFile {
			empty.Span = Span{End: tok.End}
		}
		return empty, nil
	}

	primary, err := p.parsePrimary(c)
	if err != nil {
		return nil, err
	}
	expr, err := p.parseExtend(precStop, primary, c)
	if err != nil {
		return nil, err
	}

	closer := p.current()
	if closer.Kind != c.closer() {
		return nil, p.closerError(closer, c)
	}
	p.advance()

	list, isList := expr.(*List)
	builtHere := isList && list.Container == c && !list.sealed
	if builtHere {
		list.sealed = true
	}
	if c == ContainerFile {
		return expr, nil
	}
	if c == ContainerParen {
		if builtHere {
			list.Span = spanOf(open.Span(), closer.Span())
		}
		return expr, nil
	}

	// brackets and braces always produce a list of their own kind
	if builtHere {
		list.Span = spanOf(open.Span(), closer.Span())
		return list, nil
	}
	return &List{
		Span:      spanOf(open.Span(), closer.Span()),
		Container: c,
		Elements:  []Expression{expr},
		sealed:    true,
	}, nil
}

func (p *Parser) parsePrimary(c Container) (Expression, error) {
	p.depth++
	defer func() {
		p.depth--
	}()
	p.skipNewLines()
	tok := p.current()
	if p.depth > p.maxDepth {
		return nil, newParseError(ErrMaxNestingExceeded, tok, "limit is %d", p.maxDepth)
	}

	switch tok.Kind {
	case TokenInt:
		p.advance()
		return &IntLiteral{Span: tok.Span(), Value: tok.Int}, nil
	case TokenFloat:
		p.advance()
		return &FloatLiteral{Span: tok.Span(), Value: tok.Float}, nil
	case TokenImaginary:
		p.advance()
		return &ImaginaryLiteral{Span: tok.Span(), Value: tok.Float}, nil
	case TokenString:
		p.advance()
		return &StringLiteral{Span: tok.Span(), Value: tok.Str}, nil
	case TokenIdentifier:
		p.advance()
		return &Identifier{Span: tok.Span(), Name: tok.Text}, nil
	case TokenSpecial:
		p.advance()
		return &Placeholder{Span: tok.Span()}, nil
	case TokenBinding:
		p.advance()
		return &Binding{Span: tok.Span(), Name: tok.Text[1:]}, nil
	case TokenPositional:
		p.advance()
		return &Positional{Span: tok.Span(), Name: tok.Text[1:]}, nil
	case TokenLparen, TokenLbracket, TokenLbrace:
		inner, _ := containerOpenedBy(tok.Kind)
		p.advance()
		return p.parseBody(inner, tok)
	case TokenInvalid:
		if tok.Invalid.IsLiteral() {
			return nil, newParseError(ErrInvalidLiteral, tok, "%v %q", tok.Invalid, tok.Text)
		}
		return nil, newParseError(ErrUnexpectedToken, tok, "%v %q", tok.Invalid, tok.Text)
	}

	if isCloser(tok.Kind) {
		return nil, p.closerError(tok, c)
	}

	if op, ok := OperatorOf(tok.Kind); ok {
		if !op.IsUnary() {
			return nil, newParseError(ErrIllegalUnaryOperator, tok, "%v cannot be used as a prefix operator", op)
		}
		p.advance()
		operand, err := p.parsePrimary(c)
		if err != nil {
			return nil, err
		}
		operand, err = p.parseExtend(precedence(tok.Kind)+1, operand, c)
		if err != nil {
			return nil, err
		}
		return &Unary{
			Span:    Span{Start: tok.Start, End: operand.Range().End},
			Op:      op,
			Operand: operand,
		}, nil
	}

	return nil, newParseError(ErrUnexpectedToken, tok, "expecting an operand, got %v", tok)
}

// continuation returns the token that would extend the current expression
// and its precedence. Newlines that do not separate elements are skipped.
func (p *Parser) continuation(c Container) (Token, int) {
	tok := p.current()
	if tok.Kind != TokenNewLine {
		return tok, precedence(tok.Kind)
	}
	next := p.peekPastNewLines()
	if !c.newlineSeparates() || isCloser(next.Kind) || !beginsOperand(next.Kind) {
		p.skipNewLines()
		tok = p.current()
		return tok, precedence(tok.Kind)
	}
	return tok, precComma
}

func beginsOperand(kind TokenKind) bool {
	switch kind {
	case TokenInt, TokenFloat, TokenImaginary, TokenString, TokenIdentifier,
		TokenSpecial, TokenBinding, TokenPositional,
		TokenLparen, TokenLbracket, TokenLbrace,
		TokenInvalid:
		return true
	}
	op, ok := OperatorOf(kind)
	return ok && op.IsUnary()
}

func (p *Parser) parseExtend(minPrecedence int, left Expression, c Container) (Expression, error) {
	for {
		tok, prec := p.continuation(c)

		if isCloser(tok.Kind) {
			if tok.Kind == c.closer() {
				return left, nil
			}
			return nil, p.closerError(tok, c)
		}
		if prec == precError {
			return nil, newParseError(ErrUnexpectedToken, tok, "expecting an operator or separator, got %v", tok)
		}
		if prec < minPrecedence {
			return left, nil
		}
		if op, ok := OperatorOf(tok.Kind); ok && !op.IsBinary() {
			return nil, newParseError(ErrIllegalUnaryOperator, tok, "%v cannot be used as a binary operator", op)
		}
		p.advance()

		// call
		if inner, ok := containerOpenedBy(tok.Kind); ok {
			if p.depth+1 > p.maxDepth {
				return nil, newParseError(ErrMaxNestingExceeded, tok, "limit is %d", p.maxDepth)
			}
			p.depth++
			argument, err := p.parseBody(inner, tok)
			p.depth--
			if err != nil {
				return nil, err
			}
			left = &Call{
				Span:      spanOf(left.Range(), p.tokens[p.cursor-1].Span()),
				Callee:    left,
				Container: inner,
				Argument:  argument,
			}
			continue
		}

		// trailing separator
		if tok.Kind == TokenComma {
			if next := p.peekPastNewLines(); next.Kind == c.closer() {
				p.skipNewLines()
				left = appendElement(left, nil, c)
				continue
			}
		}

		rightMin := prec + 1
		if tok.Kind == TokenColon {
			// tags nest to the right
			rightMin = prec
		}
		right, err := p.parseOperand(tok, rightMin, c)
		if err != nil {
			return nil, err
		}

		left, err = combine(tok, left, right, c)
		if err != nil {
			return nil, err
		}
	}
}

// parseOperand parses the right side of the continuation tok one nesting
// level deeper, so right-nested chains such as a: b: c: 1 count against the
// depth limit.
func (p *Parser) parseOperand(tok Token, minPrecedence int, c Container) (Expression, error) {
	if p.depth+1 > p.maxDepth {
		return nil, newParseError(ErrMaxNestingExceeded, tok, "limit is %d", p.maxDepth)
	}
	p.depth++
	defer func() {
		p.depth--
	}()
	right, err := p.parsePrimary(c)
	if err != nil {
		return nil, err
	}
	return p.parseExtend(minPrecedence, right, c)
}

func combine(tok Token, left, right Expression, c Container) (Expression, error) {
	switch tok.Kind {

	case TokenComma, TokenNewLine:
		return appendElement(left, right, c), nil

	case TokenColon:
		switch left.(type) {
		case *Identifier, *QualifiedIdentifier:
		default:
			err := newParseError(ErrTaggedLhsNotIdentifier, tok, "got %v", left)
			err.Pos = left.Range().Start
			return nil, err
		}
		return &Tagged{
			Span:  spanOf(left.Range(), right.Range()),
			Tag:   left,
			Value: right,
		}, nil

	case TokenDot:
		member, ok := right.(*Identifier)
		if !ok {
			err := newParseError(ErrAccessRhsNotIdentifier, tok, "got %v", right)
			err.Pos = right.Range().Start
			return nil, err
		}
		return &Access{
			Span:   spanOf(left.Range(), right.Range()),
			Base:   left,
			Member: member.Name,
		}, nil

	case TokenBackslash:
		segment, ok := right.(*Identifier)
		if !ok {
			err := newParseError(ErrQualifierNotIdentifier, tok, "got %v", right)
			err.Pos = right.Range().Start
			return nil, err
		}
		switch left := left.(type) {
		case *Identifier:
			return &QualifiedIdentifier{
				Span:     spanOf(left.Range(), right.Range()),
				Segments: []string{left.Name, segment.Name},
			}, nil
		case *QualifiedIdentifier:
			left.Segments = append(left.Segments, segment.Name)
			left.End = segment.End
			return left, nil
		}
		err := newParseError(ErrQualifierNotIdentifier, tok, "got %v", left)
		err.Pos = left.Range().Start
		return nil, err
	}

	op, _ := OperatorOf(tok.Kind)
	return &Binary{
		Span:  spanOf(left.Range(), right.Range()),
		Op:    op,
		Left:  left,
		Right: right,
	}, nil
}

// appendElement extends the list being built in container c, or starts one.
// A nil element only turns left into a list.
func appendElement(left, elem Expression, c Container) Expression {
	if list, ok := left.(*List); ok && list.Container == c && !list.sealed {
		if elem != nil {
			list.Elements = append(list.Elements, elem)
			list.End = elem.Range().End
		}
		return list
	}
	list := &List{
		Span:      left.Range(),
		Container: c,
		Elements:  []Expression{left},
	}
	if elem != nil {
		list.Elements = append(list.Elements, elem)
		list.End = elem.Range().End
	}
	return list
}

func (p *Parser) closerError(tok Token, c Container) error {
	if tok.Kind == c.closer() {
		return newParseError(ErrUnexpectedToken, tok, "expecting an operand, got %v", tok)
	}
	if c == ContainerFile {
		return newParseError(ErrMismatchedCloser, tok, "%q has no matching opener", tok.Text)
	}
	open := p.opens[len(p.opens)-1]
	if tok.Kind == TokenEOF {
		return newParseError(ErrUnclosedContainer, tok, "%q opened at %s is never closed", open.Text, open.Start)
	}
	return newParseError(ErrMismatchedCloser, tok, "expecting %q to close %q opened at %s, got %q", c.closer().String(), open.Text, open.Start, tok.Text)
}
