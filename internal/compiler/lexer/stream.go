package lexer

import (
	"unicode/utf8"

	"github.com/edwingeng/deque"

	"github.com/arnavsurve/fidel/internal/compiler/token"
)

// Stream is a consume-once queue of tokens. Once drained it keeps returning
// an EOF token positioned after the last real token.
type Stream struct {
	q   deque.Deque
	eof token.Token
}

func NewStream(toks []token.Token) *Stream {
	s := &Stream{q: deque.NewDeque(), eof: token.Token{Type: token.TokenEOF, Line: 1, Column: 1}}
	for _, t := range toks {
		s.q.PushBack(t)
	}
	if n := len(toks); n > 0 {
		last := toks[n-1]
		cols, width := utf8.RuneCountInString(last.Literal), len(last.Literal)
		if last.Type == token.TokenString {
			// the literal has lost its quotes
			cols, width = cols+2, width+2
		}
		s.eof = token.Token{
			Type:   token.TokenEOF,
			Line:   last.Line,
			Column: last.Column + cols,
			Offset: last.Offset + width,
		}
	}
	return s
}

// Next removes and returns the front token.
func (s *Stream) Next() token.Token {
	if s.q.Empty() {
		return s.eof
	}
	return s.q.PopFront().(token.Token)
}
