package interp

import (
	"math"
	"strings"

	"github.com/arnavsurve/fidel/internal/compiler/lib"
	"github.com/arnavsurve/fidel/internal/compiler/object"
	"github.com/arnavsurve/fidel/internal/compiler/token"
)

// binary applies op. maxString bounds the length in bytes of a concatenation;
// zero means no bound.
func binary(tok token.Token, op string, left, right object.Value, maxString int) (object.Value, error) {
	switch op {
	case "+":
		_, ls := left.(object.String)
		_, rs := right.(object.String)
		if ls || rs {
			l, r := object.Format(left), object.Format(right)
			if maxString > 0 && len(l)+len(r) > maxString {
				return nil, newError(ErrSizeLimit, tok, "String of %d bytes exceeds the limit of %d", len(l)+len(r), maxString)
			}
			return object.String(l + r), nil
		}
	case "==":
		return object.Boolean(object.Equal(left, right)), nil
	case "!=":
		return object.Boolean(!object.Equal(left, right)), nil
	case "<", ">", "<=", ">=":
		return compare(tok, op, left, right)
	}

	l, lok := left.(object.Integer)
	r, rok := right.(object.Integer)
	if !lok || !rok {
		return nil, newError(ErrTypeMismatch, tok, "Unsupported operand types for %s: %s and %s", op, left.Kind(), right.Kind())
	}

	var (
		v  int64
		ok = true
	)
	switch op {
	case "+":
		v, ok = lib.Add(int64(l), int64(r))
	case "-":
		v, ok = lib.Sub(int64(l), int64(r))
	case "*":
		v, ok = lib.Mul(int64(l), int64(r))
	case "/":
		if r == 0 {
			return nil, newError(ErrDivisionByZero, tok, "Division by zero")
		}
		if r == -1 && l == math.MinInt64 {
			ok = false
			break
		}
		v = lib.FloorDiv(int64(l), int64(r))
	case "%":
		if r == 0 {
			return nil, newError(ErrDivisionByZero, tok, "Modulo by zero")
		}
		v = lib.FloorMod(int64(l), int64(r))
	default:
		return nil, newError(ErrInternal, tok, "Unknown operator %s", op)
	}
	if !ok {
		return nil, newError(ErrOverflow, tok, "Integer overflow: %d %s %d", l, op, r)
	}
	return object.Integer(v), nil
}

// compare orders two integers or two strings.
func compare(tok token.Token, op string, left, right object.Value) (object.Value, error) {
	var c int
	switch l := left.(type) {
	case object.Integer:
		r, ok := right.(object.Integer)
		if !ok {
			return nil, mismatch(tok, op, left, right)
		}
		switch {
		case l < r:
			c = -1
		case l > r:
			c = 1
		}
	case object.String:
		r, ok := right.(object.String)
		if !ok {
			return nil, mismatch(tok, op, left, right)
		}
		c = strings.Compare(string(l), string(r))
	default:
		return nil, mismatch(tok, op, left, right)
	}

	switch op {
	case "<":
		return object.Boolean(c < 0), nil
	case ">":
		return object.Boolean(c > 0), nil
	case "<=":
		return object.Boolean(c <= 0), nil
	}
	return object.Boolean(c >= 0), nil
}

func mismatch(tok token.Token, op string, left, right object.Value) *RuntimeError {
	return newError(ErrTypeMismatch, tok, "Cannot compare %s %s %s", left.Kind(), op, right.Kind())
}

// index reads an element of a list, or a single character of a string.
func index(tok token.Token, base, idx object.Value) (object.Value, error) {
	switch b := base.(type) {
	case *object.List:
		pos, err := checkIndex(tok, idx, len(b.Elements))
		if err != nil {
			return nil, err
		}
		return b.Elements[pos], nil
	case object.String:
		runes := []rune(string(b))
		pos, err := checkIndex(tok, idx, len(runes))
		if err != nil {
			return nil, err
		}
		return object.String(string(runes[pos])), nil
	}
	return nil, newError(ErrTypeMismatch, tok, "Cannot index %s", base.Kind())
}

func checkIndex(tok token.Token, idx object.Value, length int) (int, error) {
	n, ok := idx.(object.Integer)
	if !ok {
		return 0, newError(ErrTypeMismatch, tok, "Index must be an integer, got %s", idx.Kind())
	}
	if n < 0 || int64(n) >= int64(length) {
		return 0, newError(ErrIndexOutOfRange, tok, "Index %d out of range for length %d", n, length)
	}
	return int(n), nil
}
