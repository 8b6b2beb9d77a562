package emitter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arnavsurve/fidel/internal/compiler/ast"
	"github.com/arnavsurve/fidel/internal/compiler/token"
)

const indentUnit = "    " // 4 spaces

// Emitter renders a program tree back to canonical source. Parsing the output
// yields a tree with the same shape as the input.
type Emitter struct {
	builder strings.Builder
	errors  []string
	depth   int
}

func New() *Emitter {
	return &Emitter{errors: []string{}}
}

func (e *Emitter) addError(format string, args ...any) {
	e.errors = append(e.errors, fmt.Sprintf(format, args...))
}

func (e *Emitter) Errors() []string {
	return e.errors
}

// --- Emit Helpers ---

func (e *Emitter) line(s string) {
	e.builder.WriteString(strings.Repeat(indentUnit, e.depth))
	e.builder.WriteString(s)
	e.builder.WriteString("\n")
}

// Emit renders program. Top-level function definitions are set apart by a
// blank line.
func (e *Emitter) Emit(program *ast.Block) string {
	e.builder.Reset()
	e.depth = 0

	for i, stmt := range program.Statements {
		_, isDef := stmt.(*ast.FunctionDef)
		_, prevDef := prevStatement(program.Statements, i).(*ast.FunctionDef)
		if i > 0 && (isDef || prevDef) {
			e.builder.WriteString("\n")
		}
		e.emitStatement(stmt)
	}
	return e.builder.String()
}

func prevStatement(stmts []ast.Node, i int) ast.Node {
	if i == 0 {
		return nil
	}
	return stmts[i-1]
}

// --- Statements ---

func (e *Emitter) emitStatement(node ast.Node) {
	switch n := node.(type) {
	case *ast.Print:
		e.line(token.KeywordPrint + " " + e.expr(n.Value) + ";")

	case *ast.Return:
		e.line(token.KeywordReturn + " " + e.expr(n.Value) + ";")

	case *ast.Assign:
		e.line(e.binding(n) + ";")

	case *ast.If:
		e.line(token.KeywordIf + " (" + e.expr(n.Condition) + ") {")
		e.emitBody(n.Consequence)
		if n.Alternative != nil {
			e.line("} " + token.KeywordElse + " {")
			e.emitBody(n.Alternative)
		}
		e.line("}")

	case *ast.While:
		e.line(token.KeywordWhile + " (" + e.expr(n.Condition) + ") {")
		e.emitBody(n.Body)
		e.line("}")

	case *ast.For:
		var init string
		if a, ok := n.Init.(*ast.Assign); ok {
			init = e.binding(a)
		} else {
			init = e.expr(n.Init)
		}
		e.line(fmt.Sprintf("%s (%s; %s; %s) {", token.KeywordFor, init, e.expr(n.Condition), e.expr(n.Step)))
		e.emitBody(n.Body)
		e.line("}")

	case *ast.FunctionDef:
		e.line(fmt.Sprintf("%s %s(%s) {", token.KeywordFunc, n.Name, strings.Join(n.Parameters, ", ")))
		e.emitBody(n.Body)
		e.line("}")

	case *ast.Block:
		e.addError("Unsupported nested block at %d:%d", n.Token.Line, n.Token.Column)

	default:
		e.line(e.expr(node) + ";")
	}
}

func (e *Emitter) emitBody(b *ast.Block) {
	e.depth++
	for _, stmt := range b.Statements {
		e.emitStatement(stmt)
	}
	e.depth--
}

// binding renders an assignment in statement position, keeping the let
// keyword when the source used one.
func (e *Emitter) binding(a *ast.Assign) string {
	if a.Token.Type == token.TokenLet {
		return token.KeywordLet + " " + a.Name + " = " + e.expr(a.Value)
	}
	return e.expr(a)
}

// --- Expressions ---

func (e *Emitter) expr(node ast.Node) string {
	switch n := node.(type) {
	case *ast.NumberLiteral:
		return strconv.FormatInt(n.Value, 10)

	case *ast.StringLiteral:
		return `"` + n.Value + `"`

	case *ast.BooleanLiteral:
		return n.String()

	case *ast.Variable:
		return n.Name

	case *ast.ListLiteral:
		return "[" + e.exprList(n.Elements) + "]"

	case *ast.Index:
		return e.expr(n.Base) + "[" + e.expr(n.Index) + "]"

	case *ast.FunctionCall:
		return n.Name + "(" + e.exprList(n.Arguments) + ")"

	case *ast.Input:
		return token.KeywordInput + "(" + e.expr(n.Prompt) + ")"

	case *ast.BinaryOp:
		// Left-associative at a single level: only the right side needs
		// grouping when it is itself an operation.
		return e.operand(n.Left, false) + " " + n.Operator + " " + e.operand(n.Right, true)

	case *ast.Assign:
		if op, rhs, ok := compound(n.Value, &ast.Variable{Name: n.Name}); ok {
			return n.Name + " " + op + " " + e.expr(rhs)
		}
		return n.Name + " = " + e.expr(n.Value)

	case *ast.AssignIndex:
		target := e.expr(n.Base) + "[" + e.expr(n.Index) + "]"
		if op, rhs, ok := compound(n.Value, &ast.Index{Base: n.Base, Index: n.Index}); ok {
			return target + " " + op + " " + e.expr(rhs)
		}
		return target + " = " + e.expr(n.Value)
	}

	if node == nil {
		e.addError("Missing expression")
		return ""
	}
	e.addError("Unsupported expression %T at %d:%d", node, node.Pos().Line, node.Pos().Column)
	return ""
}

func (e *Emitter) operand(node ast.Node, right bool) string {
	switch node.(type) {
	case *ast.Assign, *ast.AssignIndex:
		return "(" + e.expr(node) + ")"
	case *ast.BinaryOp:
		if right {
			return "(" + e.expr(node) + ")"
		}
	}
	return e.expr(node)
}

func (e *Emitter) exprList(nodes []ast.Node) string {
	parts := make([]string, 0, len(nodes))
	for _, n := range nodes {
		parts = append(parts, e.expr(n))
	}
	return strings.Join(parts, ", ")
}

// compound recognizes the desugared form of += and -= so it can be written
// back in its short form.
func compound(value ast.Node, target ast.Node) (string, ast.Node, bool) {
	bo, ok := value.(*ast.BinaryOp)
	if !ok || bo.Left.String() != target.String() {
		return "", nil, false
	}
	switch bo.Token.Type {
	case token.TokenPlusAssign:
		return "+=", bo.Right, true
	case token.TokenMinusAssign:
		return "-=", bo.Right, true
	}
	return "", nil, false
}
