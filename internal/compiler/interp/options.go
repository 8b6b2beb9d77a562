package interp

import (
	"context"
	"io"
)

const DefaultMaxCallDepth = 1000

type Option func(*Interpreter)

// WithOutput sets the print channel.
func WithOutput(w io.Writer) Option {
	return func(i *Interpreter) { i.out = w }
}

// WithInput reads input lines from r, echoing prompts to the print channel.
func WithInput(r io.Reader) Option {
	return func(i *Interpreter) { i.inReader = r }
}

// WithPrompter replaces the input channel entirely.
func WithPrompter(p Prompter) Option {
	return func(i *Interpreter) { i.prompter = p }
}

// WithReturnPropagation makes return leave the enclosing function and become
// the call's value. Without it every call evaluates to none.
func WithReturnPropagation(on bool) Option {
	return func(i *Interpreter) { i.propagateReturn = on }
}

// WithMaxCallDepth bounds nested calls; n <= 0 disables the limit.
func WithMaxCallDepth(n int) Option {
	return func(i *Interpreter) { i.maxDepth = n }
}

// WithMaxStringLen bounds the byte length of strings built by +; n <= 0
// disables the limit.
func WithMaxStringLen(n int) Option {
	return func(i *Interpreter) { i.maxString = n }
}

// WithContext lets the caller stop a run. It is checked on every loop
// iteration and function call.
func WithContext(ctx context.Context) Option {
	return func(i *Interpreter) { i.ctx = ctx }
}
