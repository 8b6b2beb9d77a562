package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	self := NewList(nil)
	self.Elements = []Value{Integer(1), self}

	tests := []struct {
		name string
		v    Value
		want string
	}{
		{"integer", Integer(-42), "-42"},
		{"string", String("ሰላም"), "ሰላም"},
		{"true", Boolean(true), "እውነት"},
		{"false", Boolean(false), "ሐሰት"},
		{"none", NoValue, "none"},
		{"list", NewList([]Value{Integer(1), String("a"), NewList([]Value{})}), `[1, "a", []]`},
		{"cycle", self, "[1, [...]]"},
		{"return", &ReturnValue{Value: Integer(3)}, "3"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Format(tc.v))
		})
	}
}

func TestFormatSharedListIsNotACycle(t *testing.T) {
	inner := NewList([]Value{Integer(1)})
	outer := NewList([]Value{inner, inner})
	assert.Equal(t, "[[1], [1]]", Format(outer))
}

func TestTruthy(t *testing.T) {
	assert.False(t, Truthy(Integer(0)))
	assert.True(t, Truthy(Integer(-1)))
	assert.False(t, Truthy(String("")))
	assert.True(t, Truthy(String(" ")))
	assert.False(t, Truthy(Boolean(false)))
	assert.True(t, Truthy(Boolean(true)))
	assert.False(t, Truthy(NewList(nil)))
	assert.True(t, Truthy(NewList([]Value{NoValue})))
	assert.False(t, Truthy(NoValue))
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal(Integer(1), Integer(1)))
	assert.False(t, Equal(Integer(1), String("1")))
	assert.True(t, Equal(NoValue, None{}))
	assert.True(t, Equal(
		NewList([]Value{Integer(1), NewList([]Value{String("x")})}),
		NewList([]Value{Integer(1), NewList([]Value{String("x")})}),
	))
	assert.False(t, Equal(NewList([]Value{Integer(1)}), NewList([]Value{Integer(2)})))
	assert.False(t, Equal(NewList([]Value{Integer(1)}), NewList(nil)))

	a := NewList(nil)
	a.Elements = []Value{a}
	b := NewList(nil)
	b.Elements = []Value{b}
	assert.True(t, Equal(a, b))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "integer", Integer(1).Kind().String())
	assert.Equal(t, "list", NewList(nil).Kind().String())
	assert.Equal(t, "none", NoValue.Kind().String())
}
