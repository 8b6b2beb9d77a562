package ast

import (
	"bytes"
	"strings"

	"github.com/arnavsurve/fidel/internal/compiler/token"
)

// --- Interfaces ---

// Node is implemented only by the types in this package; the evaluator and
// the emitter switch over that closed set.
type Node interface {
	TokenLiteral() string
	String() string
	Pos() token.Token
	node()
}

// --- Literals ---

// NumberLiteral -> 42
type NumberLiteral struct {
	Token token.Token
	Value int64
}

func (nl *NumberLiteral) node()                {}
func (nl *NumberLiteral) Pos() token.Token     { return nl.Token }
func (nl *NumberLiteral) TokenLiteral() string { return nl.Token.Literal }
func (nl *NumberLiteral) String() string       { return nl.Token.Literal }

// StringLiteral -> "ሰላም"
type StringLiteral struct {
	Token token.Token
	Value string
}

func (sl *StringLiteral) node()                {}
func (sl *StringLiteral) Pos() token.Token     { return sl.Token }
func (sl *StringLiteral) TokenLiteral() string { return sl.Token.Literal }
func (sl *StringLiteral) String() string       { return `"` + sl.Value + `"` }

// BooleanLiteral -> እውነት | ሐሰት
type BooleanLiteral struct {
	Token token.Token
	Value bool
}

func (bl *BooleanLiteral) node()                {}
func (bl *BooleanLiteral) Pos() token.Token     { return bl.Token }
func (bl *BooleanLiteral) TokenLiteral() string { return bl.Token.Literal }
func (bl *BooleanLiteral) String() string {
	if bl.Value {
		return token.LiteralTrue
	}
	return token.LiteralFalse
}

// ListLiteral -> [a, b, c]
type ListLiteral struct {
	Token    token.Token // [
	Elements []Node
}

func (ll *ListLiteral) node()                {}
func (ll *ListLiteral) Pos() token.Token     { return ll.Token }
func (ll *ListLiteral) TokenLiteral() string { return ll.Token.Literal }
func (ll *ListLiteral) String() string {
	return "[" + joinNodes(ll.Elements) + "]"
}

// --- Expressions ---

// Variable -> name
type Variable struct {
	Token token.Token
	Name  string
}

func (v *Variable) node()                {}
func (v *Variable) Pos() token.Token     { return v.Token }
func (v *Variable) TokenLiteral() string { return v.Token.Literal }
func (v *Variable) String() string       { return v.Name }

// Index -> base[index]
type Index struct {
	Token token.Token // [
	Base  Node
	Index Node
}

func (ix *Index) node()                {}
func (ix *Index) Pos() token.Token     { return ix.Token }
func (ix *Index) TokenLiteral() string { return ix.Token.Literal }
func (ix *Index) String() string {
	return ix.Base.String() + "[" + ix.Index.String() + "]"
}

// BinaryOp -> (left op right)
type BinaryOp struct {
	Token    token.Token // the operator
	Left     Node
	Operator string
	Right    Node
}

func (bo *BinaryOp) node()                {}
func (bo *BinaryOp) Pos() token.Token     { return bo.Token }
func (bo *BinaryOp) TokenLiteral() string { return bo.Token.Literal }
func (bo *BinaryOp) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(bo.Left.String())
	out.WriteString(" " + bo.Operator + " ")
	out.WriteString(bo.Right.String())
	out.WriteString(")")
	return out.String()
}

// Assign -> name = value. Declaration and reassignment are the same node.
type Assign struct {
	Token token.Token // ይዘው, = or the compound operator
	Name  string
	Value Node
}

func (a *Assign) node()                {}
func (a *Assign) Pos() token.Token     { return a.Token }
func (a *Assign) TokenLiteral() string { return a.Token.Literal }
func (a *Assign) String() string       { return a.Name + " = " + a.Value.String() }

// AssignIndex -> base[index] = value
type AssignIndex struct {
	Token token.Token
	Base  Node
	Index Node
	Value Node
}

func (ai *AssignIndex) node()                {}
func (ai *AssignIndex) Pos() token.Token     { return ai.Token }
func (ai *AssignIndex) TokenLiteral() string { return ai.Token.Literal }
func (ai *AssignIndex) String() string {
	return ai.Base.String() + "[" + ai.Index.String() + "] = " + ai.Value.String()
}

// Input -> ጠይቅ(prompt)
type Input struct {
	Token  token.Token
	Prompt Node
}

func (in *Input) node()                {}
func (in *Input) Pos() token.Token     { return in.Token }
func (in *Input) TokenLiteral() string { return in.Token.Literal }
func (in *Input) String() string       { return token.KeywordInput + "(" + in.Prompt.String() + ")" }

// FunctionCall -> name(args...)
type FunctionCall struct {
	Token     token.Token // the function name token
	Name      string
	Arguments []Node
}

func (fc *FunctionCall) node()                {}
func (fc *FunctionCall) Pos() token.Token     { return fc.Token }
func (fc *FunctionCall) TokenLiteral() string { return fc.Token.Literal }
func (fc *FunctionCall) String() string {
	return fc.Name + "(" + joinNodes(fc.Arguments) + ")"
}

// --- Statements ---

// Print -> አትም(value)
type Print struct {
	Token token.Token
	Value Node
}

func (p *Print) node()                {}
func (p *Print) Pos() token.Token     { return p.Token }
func (p *Print) TokenLiteral() string { return p.Token.Literal }
func (p *Print) String() string       { return token.KeywordPrint + "(" + p.Value.String() + ")" }

// If -> ከሆነ (cond) { ... } ካልሆነ { ... }
type If struct {
	Token       token.Token
	Condition   Node
	Consequence *Block
	Alternative *Block // nil when there is no else branch
}

func (i *If) node()                {}
func (i *If) Pos() token.Token     { return i.Token }
func (i *If) TokenLiteral() string { return i.Token.Literal }
func (i *If) String() string {
	var out bytes.Buffer
	out.WriteString(token.KeywordIf + " (" + i.Condition.String() + ") ")
	out.WriteString(i.Consequence.String())
	if i.Alternative != nil {
		out.WriteString(" " + token.KeywordElse + " ")
		out.WriteString(i.Alternative.String())
	}
	return out.String()
}

// While -> በማዘጋጀት (cond) { ... }
type While struct {
	Token     token.Token
	Condition Node
	Body      *Block
}

func (w *While) node()                {}
func (w *While) Pos() token.Token     { return w.Token }
func (w *While) TokenLiteral() string { return w.Token.Literal }
func (w *While) String() string {
	return token.KeywordWhile + " (" + w.Condition.String() + ") " + w.Body.String()
}

// For -> ለ (init; cond; step) { ... }
type For struct {
	Token     token.Token
	Init      Node
	Condition Node
	Step      Node
	Body      *Block
}

func (f *For) node()                {}
func (f *For) Pos() token.Token     { return f.Token }
func (f *For) TokenLiteral() string { return f.Token.Literal }
func (f *For) String() string {
	return token.KeywordFor + " (" + f.Init.String() + "; " + f.Condition.String() + "; " + f.Step.String() + ") " + f.Body.String()
}

// Block -> { statement1 statement2 }. The program root is also a Block.
type Block struct {
	Token      token.Token // { (zero for the program root)
	Statements []Node
}

func (b *Block) node()                {}
func (b *Block) Pos() token.Token     { return b.Token }
func (b *Block) TokenLiteral() string { return b.Token.Literal }
func (b *Block) String() string {
	var out bytes.Buffer
	out.WriteString("{\n")
	for _, s := range b.Statements {
		out.WriteString("\t" + s.String() + "\n")
	}
	out.WriteString("}")
	return out.String()
}

// FunctionDef -> ፋንክሽን name(params) { ... }
type FunctionDef struct {
	Token      token.Token
	Name       string
	Parameters []string
	Body       *Block
}

func (fd *FunctionDef) node()                {}
func (fd *FunctionDef) Pos() token.Token     { return fd.Token }
func (fd *FunctionDef) TokenLiteral() string { return fd.Token.Literal }
func (fd *FunctionDef) String() string {
	return token.KeywordFunc + " " + fd.Name + "(" + strings.Join(fd.Parameters, ", ") + ") " + fd.Body.String()
}

// Return -> መመለስ value
type Return struct {
	Token token.Token
	Value Node
}

func (r *Return) node()                {}
func (r *Return) Pos() token.Token     { return r.Token }
func (r *Return) TokenLiteral() string { return r.Token.Literal }
func (r *Return) String() string       { return token.KeywordReturn + " " + r.Value.String() }

// --- Program ---

// Program renders the root block's statements one per line, without braces.
func Program(root *Block) string {
	var out bytes.Buffer
	for _, s := range root.Statements {
		out.WriteString(s.String())
		out.WriteString("\n")
	}
	return out.String()
}

func joinNodes(nodes []Node) string {
	parts := make([]string, 0, len(nodes))
	for _, n := range nodes {
		parts = append(parts, n.String())
	}
	return strings.Join(parts, ", ")
}
