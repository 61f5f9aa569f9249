package syntax

import "fmt"

// Pos is a zero-based line and column in source text. Columns count runes.
type Pos struct {
	Line   int
	Column int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line+1, p.Column+1)
}

func (p Pos) Compare(other Pos) int {
	switch {
	case p.Line < other.Line:
		return -1
	case p.Line > other.Line:
		return 1
	case p.Column < other.Column:
		return -1
	case p.Column > other.Column:
		return 1
	}
	return 0
}

func (p Pos) Before(other Pos) bool {
	return p.Compare(other) < 0
}

// Span bounds a token or expression in source.
type Span struct {
	Start Pos
	End   Pos
}

func (s Span) Range() Span {
	return s
}

func spanOf(start, end Span) Span {
	return Span{
		Start: start.Start,
		End:   end.End,
	}
}
