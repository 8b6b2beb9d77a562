package parser

import (
	"errors"
	"fmt"

	"github.com/arnavsurve/fidel/internal/compiler/token"
)

type ErrorKind int

const (
	// ErrExpectedToken: a required token kind was absent.
	ErrExpectedToken ErrorKind = iota
	// ErrUnexpectedToken: no grammar rule starts with the current token.
	ErrUnexpectedToken
	// ErrInvalidAssignmentTarget: the left of =, += or -= is not a variable or index.
	ErrInvalidAssignmentTarget
	// ErrInvalidLiteral: a number literal does not fit in 64 bits.
	ErrInvalidLiteral
)

func (k ErrorKind) String() string {
	switch k {
	case ErrExpectedToken:
		return "expected token"
	case ErrUnexpectedToken:
		return "unexpected token"
	case ErrInvalidAssignmentTarget:
		return "invalid assignment target"
	case ErrInvalidLiteral:
		return "invalid literal"
	}
	return "syntax error"
}

// Error is a syntax error. Token is where parsing stopped.
type Error struct {
	Kind     ErrorKind
	Token    token.Token
	Expected token.TokenType // set for ErrExpectedToken
	Msg      string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d:%d: Syntax Error: %s", e.Token.Line, e.Token.Column, e.Msg)
}

// IsIncomplete reports whether err was caused by the input ending early,
// i.e. more source could still make it parse.
func IsIncomplete(err error) bool {
	var perr *Error
	return errors.As(err, &perr) && perr.Token.Type == token.TokenEOF
}

func describe(tok token.Token) string {
	if tok.Type == token.TokenEOF {
		return "end of input"
	}
	return fmt.Sprintf("%s ('%s')", tok.Type, tok.Literal)
}
