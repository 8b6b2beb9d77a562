package ast

import (
	"fmt"
	"io"
)

// Fprint writes an indented outline of the tree rooted at node.
func Fprint(w io.Writer, node Node, indent string) {
	child := indent + "  "
	switch n := node.(type) {
	case *Block:
		fmt.Fprintln(w, indent+"Block")
		for _, stmt := range n.Statements {
			Fprint(w, stmt, child)
		}

	case *NumberLiteral:
		fmt.Fprintln(w, indent+"NumberLiteral:", n.Value)

	case *StringLiteral:
		fmt.Fprintf(w, "%sStringLiteral: %q\n", indent, n.Value)

	case *BooleanLiteral:
		fmt.Fprintln(w, indent+"BooleanLiteral:", n.Value)

	case *Variable:
		fmt.Fprintln(w, indent+"Variable:", n.Name)

	case *ListLiteral:
		fmt.Fprintln(w, indent+"ListLiteral")
		for i, el := range n.Elements {
			fmt.Fprintf(w, "%s[%d]:\n", child, i)
			Fprint(w, el, child+"  ")
		}

	case *Index:
		fmt.Fprintln(w, indent+"Index")
		fmt.Fprintln(w, child+"Base:")
		Fprint(w, n.Base, child+"  ")
		fmt.Fprintln(w, child+"Index:")
		Fprint(w, n.Index, child+"  ")

	case *BinaryOp:
		fmt.Fprintln(w, indent+"BinaryOp")
		fmt.Fprintln(w, child+"Operator:", n.Operator)
		fmt.Fprintln(w, child+"Left:")
		Fprint(w, n.Left, child+"  ")
		fmt.Fprintln(w, child+"Right:")
		Fprint(w, n.Right, child+"  ")

	case *Assign:
		fmt.Fprintln(w, indent+"Assign")
		fmt.Fprintln(w, child+"Name:", n.Name)
		fmt.Fprintln(w, child+"Value:")
		Fprint(w, n.Value, child+"  ")

	case *AssignIndex:
		fmt.Fprintln(w, indent+"AssignIndex")
		fmt.Fprintln(w, child+"Base:")
		Fprint(w, n.Base, child+"  ")
		fmt.Fprintln(w, child+"Index:")
		Fprint(w, n.Index, child+"  ")
		fmt.Fprintln(w, child+"Value:")
		Fprint(w, n.Value, child+"  ")

	case *Print:
		fmt.Fprintln(w, indent+"Print")
		Fprint(w, n.Value, child)

	case *Input:
		fmt.Fprintln(w, indent+"Input")
		Fprint(w, n.Prompt, child)

	case *If:
		fmt.Fprintln(w, indent+"If")
		fmt.Fprintln(w, child+"Condition:")
		Fprint(w, n.Condition, child+"  ")
		fmt.Fprintln(w, child+"Then:")
		Fprint(w, n.Consequence, child+"  ")
		if n.Alternative != nil {
			fmt.Fprintln(w, child+"Else:")
			Fprint(w, n.Alternative, child+"  ")
		}

	case *While:
		fmt.Fprintln(w, indent+"While")
		fmt.Fprintln(w, child+"Condition:")
		Fprint(w, n.Condition, child+"  ")
		Fprint(w, n.Body, child)

	case *For:
		fmt.Fprintln(w, indent+"For")
		fmt.Fprintln(w, child+"Init:")
		Fprint(w, n.Init, child+"  ")
		fmt.Fprintln(w, child+"Condition:")
		Fprint(w, n.Condition, child+"  ")
		fmt.Fprintln(w, child+"Step:")
		Fprint(w, n.Step, child+"  ")
		Fprint(w, n.Body, child)

	case *FunctionDef:
		fmt.Fprintln(w, indent+"FunctionDef")
		fmt.Fprintln(w, child+"Name:", n.Name)
		fmt.Fprintln(w, child+"Params:", n.Parameters)
		Fprint(w, n.Body, child)

	case *FunctionCall:
		fmt.Fprintln(w, indent+"FunctionCall")
		fmt.Fprintln(w, child+"Name:", n.Name)
		for i, arg := range n.Arguments {
			fmt.Fprintf(w, "%sArg[%d]:\n", child, i)
			Fprint(w, arg, child+"  ")
		}

	case *Return:
		fmt.Fprintln(w, indent+"Return")
		Fprint(w, n.Value, child)

	default:
		fmt.Fprintf(w, "%s<unknown node type: %T>\n", indent, n)
	}
}
