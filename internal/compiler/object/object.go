package object

import (
	"strconv"
	"strings"

	"github.com/arnavsurve/fidel/internal/compiler/token"
)

type Kind int

const (
	KindNone Kind = iota
	KindInteger
	KindString
	KindBoolean
	KindList
	KindReturn
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindInteger:
		return "integer"
	case KindString:
		return "string"
	case KindBoolean:
		return "boolean"
	case KindList:
		return "list"
	case KindReturn:
		return "return"
	}
	return "unknown"
}

// Value is a runtime value. Lists are the only mutable, reference-shared kind.
type Value interface {
	Kind() Kind
}

type Integer int64

func (Integer) Kind() Kind { return KindInteger }

type String string

func (String) Kind() Kind { return KindString }

type Boolean bool

func (Boolean) Kind() Kind { return KindBoolean }

// List is always handled through a pointer so every holder sees the same
// elements.
type List struct {
	Elements []Value
}

func (*List) Kind() Kind { return KindList }

func NewList(elements []Value) *List {
	return &List{Elements: elements}
}

// None is the result of statements and of calls that produce nothing.
type None struct{}

func (None) Kind() Kind { return KindNone }

var NoValue Value = None{}

// ReturnValue wraps the value of an executed return statement while it
// travels up the tree. It never escapes into a variable.
type ReturnValue struct {
	Value Value
}

func (*ReturnValue) Kind() Kind { return KindReturn }

// Format renders v the way print shows it.
func Format(v Value) string {
	var sb strings.Builder
	format(&sb, v, false, map[*List]bool{})
	return sb.String()
}

// format writes v; nested strings are quoted so list contents stay readable.
// seen guards against lists that contain themselves.
func format(sb *strings.Builder, v Value, nested bool, seen map[*List]bool) {
	switch v := v.(type) {
	case Integer:
		sb.WriteString(strconv.FormatInt(int64(v), 10))
	case String:
		if nested {
			sb.WriteString(`"` + string(v) + `"`)
		} else {
			sb.WriteString(string(v))
		}
	case Boolean:
		if v {
			sb.WriteString(token.LiteralTrue)
		} else {
			sb.WriteString(token.LiteralFalse)
		}
	case *List:
		if seen[v] {
			sb.WriteString("[...]")
			return
		}
		seen[v] = true
		sb.WriteString("[")
		for i, el := range v.Elements {
			if i > 0 {
				sb.WriteString(", ")
			}
			format(sb, el, true, seen)
		}
		sb.WriteString("]")
		delete(seen, v)
	case *ReturnValue:
		format(sb, v.Value, nested, seen)
	default:
		sb.WriteString("none")
	}
}

// Truthy: non-zero integers, non-empty strings and lists, and true.
func Truthy(v Value) bool {
	switch v := v.(type) {
	case Integer:
		return v != 0
	case String:
		return v != ""
	case Boolean:
		return bool(v)
	case *List:
		return len(v.Elements) > 0
	}
	return false
}

// Equal compares by value; lists compare element by element. Values of
// different kinds are never equal.
func Equal(a, b Value) bool {
	return equal(a, b, map[[2]*List]bool{})
}

func equal(a, b Value, seen map[[2]*List]bool) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	switch a := a.(type) {
	case *List:
		bl := b.(*List)
		if a == bl {
			return true
		}
		if len(a.Elements) != len(bl.Elements) {
			return false
		}
		pair := [2]*List{a, bl}
		if seen[pair] {
			return true
		}
		seen[pair] = true
		for i := range a.Elements {
			if !equal(a.Elements[i], bl.Elements[i], seen) {
				return false
			}
		}
		return true
	case None:
		return true
	default:
		return a == b
	}
}
