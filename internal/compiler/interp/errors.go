package interp

import (
	"errors"
	"fmt"

	"github.com/arnavsurve/fidel/internal/compiler/token"
)

// Runtime error kinds. Match them with errors.Is.
var (
	ErrUndefinedVariable = errors.New("undefined variable")
	ErrUndefinedFunction = errors.New("undefined function")
	ErrIndexOutOfRange   = errors.New("index out of range")
	ErrTypeMismatch      = errors.New("type mismatch")
	ErrDivisionByZero    = errors.New("division by zero")
	ErrOverflow          = errors.New("integer overflow")
	ErrSizeLimit         = errors.New("size limit exceeded")
	ErrOutput            = errors.New("output unavailable")
	ErrInput             = errors.New("input unavailable")
	ErrCallDepth         = errors.New("call depth exceeded")
	ErrCanceled          = errors.New("run canceled")
	ErrInternal          = errors.New("internal error")
)

// RuntimeError aborts a run. Token is the node that failed.
type RuntimeError struct {
	Kind  error
	Token token.Token
	Msg   string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%d:%d: Runtime Error: %s", e.Token.Line, e.Token.Column, e.Msg)
}

func (e *RuntimeError) Unwrap() error {
	return e.Kind
}

func newError(kind error, tok token.Token, format string, args ...any) *RuntimeError {
	return &RuntimeError{Kind: kind, Token: tok, Msg: fmt.Sprintf(format, args...)}
}
