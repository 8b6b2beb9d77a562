package scope

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arnavsurve/fidel/internal/compiler/object"
)

func TestSetOverwrites(t *testing.T) {
	env := NewEnvironment("global")
	env.Set("x", object.Integer(1))
	env.Set("x", object.String("two"))

	v, ok := env.Get("x")
	require.True(t, ok)
	assert.Equal(t, object.String("two"), v)

	_, ok = env.Get("y")
	assert.False(t, ok)
}

func TestCloneShallow(t *testing.T) {
	list := object.NewList([]object.Value{object.Integer(1)})
	env := NewEnvironment("global")
	env.Set("n", object.Integer(1))
	env.Set("xs", list)

	clone := env.CloneShallow("f")
	assert.Equal(t, "f", clone.Name)

	// scalar writes stay local to the clone
	clone.Set("n", object.Integer(2))
	clone.Set("only", object.Boolean(true))
	v, _ := env.Get("n")
	assert.Equal(t, object.Integer(1), v)
	_, ok := env.Get("only")
	assert.False(t, ok)

	// lists are shared
	cv, _ := clone.Get("xs")
	cv.(*object.List).Elements[0] = object.Integer(9)
	assert.Equal(t, object.Integer(9), list.Elements[0])
	assert.Same(t, list, cv)
}

func TestNames(t *testing.T) {
	env := NewEnvironment("global")
	env.Set("b", object.NoValue)
	env.Set("a", object.NoValue)
	assert.Equal(t, []string{"a", "b"}, env.Names())
}
