package scope

import (
	"sort"

	"github.com/arnavsurve/fidel/internal/compiler/object"
)

// --- Environment ---

// Environment is a single flat level of bindings. Blocks, loops and branches
// do not open a new one; only function calls get a copy.
type Environment struct {
	Values map[string]object.Value
	Name   string
}

func NewEnvironment(name string) *Environment {
	return &Environment{
		Values: make(map[string]object.Value),
		Name:   name,
	}
}

// Get looks name up in this environment only.
func (e *Environment) Get(name string) (object.Value, bool) {
	v, ok := e.Values[name]
	return v, ok
}

// Set creates or overwrites a binding. Rebinding is always allowed.
func (e *Environment) Set(name string, v object.Value) {
	e.Values[name] = v
}

// CloneShallow copies every binding into a new environment. Lists are copied
// by reference, so element writes made through the clone are visible to the
// original.
func (e *Environment) CloneShallow(name string) *Environment {
	clone := &Environment{
		Values: make(map[string]object.Value, len(e.Values)),
		Name:   name,
	}
	for k, v := range e.Values {
		clone.Values[k] = v
	}
	return clone
}

// Names returns the bound names in sorted order.
func (e *Environment) Names() []string {
	names := make([]string, 0, len(e.Values))
	for k := range e.Values {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
