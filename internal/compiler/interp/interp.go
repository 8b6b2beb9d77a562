package interp

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/arnavsurve/fidel/internal/compiler/ast"
	"github.com/arnavsurve/fidel/internal/compiler/lib"
	"github.com/arnavsurve/fidel/internal/compiler/object"
	"github.com/arnavsurve/fidel/internal/compiler/scope"
	"github.com/arnavsurve/fidel/internal/compiler/symbols"
	"github.com/arnavsurve/fidel/internal/compiler/token"
)

// Interpreter evaluates a program tree directly. It owns the global
// environment and the function table for one run.
type Interpreter struct {
	Globals *scope.Environment
	Funcs   *symbols.Table

	out      io.Writer
	inReader io.Reader
	prompter Prompter

	propagateReturn bool
	maxDepth        int
	maxString       int
	depth           int
	ctx             context.Context
}

func New(opts ...Option) *Interpreter {
	i := &Interpreter{
		Globals:  scope.NewEnvironment("global"),
		Funcs:    symbols.NewTable(),
		out:      os.Stdout,
		maxDepth: DefaultMaxCallDepth,
	}
	for _, opt := range opts {
		opt(i)
	}
	if i.prompter == nil {
		r := i.inReader
		if r == nil {
			r = os.Stdin
		}
		i.prompter = NewLinePrompter(r, i.out)
	}
	return i
}

// Exec runs program in the global environment. Calling it again continues
// with the same globals and functions, which is how the REPL keeps a session.
func (i *Interpreter) Exec(program *ast.Block) error {
	_, err := i.Eval(program, i.Globals)
	return err
}

// Eval evaluates node in env.
func (i *Interpreter) Eval(node ast.Node, env *scope.Environment) (object.Value, error) {
	switch n := node.(type) {
	case *ast.NumberLiteral:
		return object.Integer(n.Value), nil

	case *ast.StringLiteral:
		return object.String(n.Value), nil

	case *ast.BooleanLiteral:
		return object.Boolean(n.Value), nil

	case *ast.ListLiteral:
		elements := make([]object.Value, 0, len(n.Elements))
		for _, el := range n.Elements {
			v, err := i.Eval(el, env)
			if err != nil {
				return nil, err
			}
			elements = append(elements, v)
		}
		return object.NewList(elements), nil

	case *ast.Variable:
		v, ok := env.Get(n.Name)
		if !ok {
			return nil, undefined(ErrUndefinedVariable, n.Token, "variable", n.Name, env.Names())
		}
		return v, nil

	case *ast.Index:
		base, err := i.Eval(n.Base, env)
		if err != nil {
			return nil, err
		}
		idx, err := i.Eval(n.Index, env)
		if err != nil {
			return nil, err
		}
		return index(n.Token, base, idx)

	case *ast.Input:
		prompt, err := i.Eval(n.Prompt, env)
		if err != nil {
			return nil, err
		}
		line, err := i.prompter.Prompt(object.Format(prompt))
		if err != nil {
			return nil, newError(ErrInput, n.Token, "Could not read input: %v", err)
		}
		return object.String(line), nil

	case *ast.BinaryOp:
		left, err := i.Eval(n.Left, env)
		if err != nil {
			return nil, err
		}
		right, err := i.Eval(n.Right, env)
		if err != nil {
			return nil, err
		}
		return binary(n.Token, n.Operator, left, right, i.maxString)

	case *ast.Assign:
		v, err := i.Eval(n.Value, env)
		if err != nil {
			return nil, err
		}
		env.Set(n.Name, v)
		return v, nil

	case *ast.AssignIndex:
		return i.evalAssignIndex(n, env)

	case *ast.Print:
		v, err := i.Eval(n.Value, env)
		if err != nil {
			return nil, err
		}
		if _, err := fmt.Fprintln(i.out, object.Format(v)); err != nil {
			return nil, newError(ErrOutput, n.Token, "Could not write output: %v", err)
		}
		return object.NoValue, nil

	case *ast.If:
		cond, err := i.Eval(n.Condition, env)
		if err != nil {
			return nil, err
		}
		if object.Truthy(cond) {
			return i.Eval(n.Consequence, env)
		}
		if n.Alternative != nil {
			return i.Eval(n.Alternative, env)
		}
		return object.NoValue, nil

	case *ast.While:
		return i.evalWhile(n, env)

	case *ast.For:
		return i.evalFor(n, env)

	case *ast.Block:
		return i.evalBlock(n, env)

	case *ast.FunctionDef:
		i.Funcs.Define(n)
		return object.NoValue, nil

	case *ast.FunctionCall:
		return i.evalCall(n, env)

	case *ast.Return:
		v, err := i.Eval(n.Value, env)
		if err != nil {
			return nil, err
		}
		return &object.ReturnValue{Value: v}, nil
	}

	if node == nil {
		return nil, newError(ErrInternal, token.Token{}, "Cannot evaluate a nil node")
	}
	return nil, newError(ErrInternal, node.Pos(), "Cannot evaluate node of type %T", node)
}

// evalBlock runs each statement in env itself; blocks never open a scope.
func (i *Interpreter) evalBlock(b *ast.Block, env *scope.Environment) (object.Value, error) {
	for _, stmt := range b.Statements {
		v, err := i.Eval(stmt, env)
		if err != nil {
			return nil, err
		}
		if rv, ok := v.(*object.ReturnValue); ok && i.propagateReturn {
			return rv, nil
		}
	}
	return object.NoValue, nil
}

func (i *Interpreter) evalWhile(n *ast.While, env *scope.Environment) (object.Value, error) {
	for {
		if err := i.checkContext(n.Token); err != nil {
			return nil, err
		}
		cond, err := i.Eval(n.Condition, env)
		if err != nil {
			return nil, err
		}
		if !object.Truthy(cond) {
			return object.NoValue, nil
		}
		v, err := i.Eval(n.Body, env)
		if err != nil {
			return nil, err
		}
		if _, ok := v.(*object.ReturnValue); ok {
			return v, nil
		}
	}
}

func (i *Interpreter) evalFor(n *ast.For, env *scope.Environment) (object.Value, error) {
	if _, err := i.Eval(n.Init, env); err != nil {
		return nil, err
	}
	for {
		if err := i.checkContext(n.Token); err != nil {
			return nil, err
		}
		cond, err := i.Eval(n.Condition, env)
		if err != nil {
			return nil, err
		}
		if !object.Truthy(cond) {
			return object.NoValue, nil
		}
		v, err := i.Eval(n.Body, env)
		if err != nil {
			return nil, err
		}
		if _, ok := v.(*object.ReturnValue); ok {
			return v, nil
		}
		if _, err := i.Eval(n.Step, env); err != nil {
			return nil, err
		}
	}
}

func (i *Interpreter) evalAssignIndex(n *ast.AssignIndex, env *scope.Environment) (object.Value, error) {
	base, err := i.Eval(n.Base, env)
	if err != nil {
		return nil, err
	}
	idx, err := i.Eval(n.Index, env)
	if err != nil {
		return nil, err
	}
	v, err := i.Eval(n.Value, env)
	if err != nil {
		return nil, err
	}

	list, ok := base.(*object.List)
	if !ok {
		return nil, newError(ErrTypeMismatch, n.Token, "Cannot assign to an element of %s", base.Kind())
	}
	pos, err := checkIndex(n.Token, idx, len(list.Elements))
	if err != nil {
		return nil, err
	}
	list.Elements[pos] = v
	return v, nil
}

// evalCall binds arguments into a shallow copy of the caller's environment
// and runs the body there. Scalar writes stay in the copy; list writes are
// shared.
func (i *Interpreter) evalCall(n *ast.FunctionCall, env *scope.Environment) (object.Value, error) {
	def, ok := i.Funcs.Lookup(n.Name)
	if !ok {
		return nil, undefined(ErrUndefinedFunction, n.Token, "function", n.Name, i.Funcs.Names())
	}

	args := make([]object.Value, 0, len(n.Arguments))
	for _, arg := range n.Arguments {
		v, err := i.Eval(arg, env)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}

	if err := i.checkContext(n.Token); err != nil {
		return nil, err
	}
	if i.maxDepth > 0 && i.depth >= i.maxDepth {
		return nil, newError(ErrCallDepth, n.Token, "Call depth exceeded %d calling '%s'", i.maxDepth, n.Name)
	}
	i.depth++
	defer func() { i.depth-- }()

	local := env.CloneShallow(n.Name)
	for idx, param := range def.Parameters {
		if idx >= len(args) {
			break
		}
		local.Set(param, args[idx])
	}

	result, err := i.Eval(def.Body, local)
	if err != nil {
		return nil, err
	}
	if rv, ok := result.(*object.ReturnValue); ok && i.propagateReturn {
		return rv.Value, nil
	}
	return object.NoValue, nil
}

func (i *Interpreter) checkContext(tok token.Token) error {
	if i.ctx == nil {
		return nil
	}
	if err := i.ctx.Err(); err != nil {
		return newError(ErrCanceled, tok, "Run stopped: %v", err)
	}
	return nil
}

func undefined(kind error, tok token.Token, what, name string, known []string) *RuntimeError {
	if s, ok := lib.Suggest(name, known); ok {
		return newError(kind, tok, "Undefined %s '%s' (did you mean '%s'?)", what, name, s)
	}
	return newError(kind, tok, "Undefined %s '%s'", what, name)
}
