package lexer

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/arnavsurve/fidel/internal/compiler/token"
)

// Error is returned when no lexical rule matches at the current position.
type Error struct {
	Char   rune
	Line   int
	Column int
	Offset int
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d:%d: Lex Error: Unexpected character %q", e.Line, e.Column, e.Char)
}

type Lexer struct {
	input    string
	position int // current byte index

	line   int // current line number (1-indexed)
	column int // current column number (1-indexed, in runes)
}

func New(input string) *Lexer {
	return &Lexer{input: input, line: 1, column: 1}
}

// NextToken scans forward until a token is produced. Whitespace and comments
// are consumed silently. At end of input it returns an EOF token.
func (l *Lexer) NextToken() (token.Token, error) {
	for l.position < len(l.input) {
		rest := l.input[l.position:]

		matched := false
		for _, r := range rules {
			n := r.match(rest)
			if n == 0 {
				continue
			}
			matched = true
			tok := token.Token{Type: r.tokenType, Literal: rest[:n], Line: l.line, Column: l.column, Offset: l.position}
			l.advance(n)
			if r.skip {
				break
			}
			switch tok.Type {
			case token.TokenString:
				tok.Literal = tok.Literal[1 : len(tok.Literal)-1]
			case token.TokenIdent:
				// equivalent spellings of a name must bind the same variable
				tok.Literal = norm.NFC.String(tok.Literal)
			}
			return tok, nil
		}

		if !matched {
			ch, _ := utf8.DecodeRuneInString(rest)
			return token.Token{}, &Error{Char: ch, Line: l.line, Column: l.column, Offset: l.position}
		}
	}
	return token.Token{Type: token.TokenEOF, Line: l.line, Column: l.column, Offset: l.position}, nil
}

// Tokenize returns every token in the input, without the trailing EOF.
func (l *Lexer) Tokenize() ([]token.Token, error) {
	toks := []token.Token{}
	for {
		tok, err := l.NextToken()
		if err != nil {
			return nil, err
		}
		if tok.Type == token.TokenEOF {
			return toks, nil
		}
		toks = append(toks, tok)
	}
}

// Stream tokenizes the whole input and hands it to the parser as a queue.
func (l *Lexer) Stream() (*Stream, error) {
	toks, err := l.Tokenize()
	if err != nil {
		return nil, err
	}
	s := NewStream(toks)
	s.eof = token.Token{Type: token.TokenEOF, Line: l.line, Column: l.column, Offset: l.position}
	return s, nil
}

// advance moves past n bytes, keeping line and column in step.
func (l *Lexer) advance(n int) {
	consumed := l.input[l.position : l.position+n]
	if i := strings.LastIndexByte(consumed, '\n'); i >= 0 {
		l.line += strings.Count(consumed, "\n")
		l.column = 1 + utf8.RuneCountInString(consumed[i+1:])
	} else {
		l.column += utf8.RuneCountInString(consumed)
	}
	l.position += n
}

func isLetter(ch rune) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z') || ch == '_' || isEthiopic(ch)
}

// isEthiopic covers the syllables of the Ethiopic block (U+1200..U+135A).
// Ethiopic punctuation and numerals sit above this range.
func isEthiopic(ch rune) bool {
	return ch >= 0x1200 && ch <= 0x135A
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}
