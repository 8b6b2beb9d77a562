package symbols

import (
	"sort"

	"github.com/arnavsurve/fidel/internal/compiler/ast"
)

// Table maps function names to their definitions for one run.
type Table struct {
	funcs map[string]*ast.FunctionDef
}

func NewTable() *Table {
	return &Table{funcs: make(map[string]*ast.FunctionDef)}
}

// Define registers def under its name. A later definition replaces an
// earlier one.
func (t *Table) Define(def *ast.FunctionDef) {
	t.funcs[def.Name] = def
}

func (t *Table) Lookup(name string) (*ast.FunctionDef, bool) {
	def, ok := t.funcs[name]
	return def, ok
}

// Names returns the defined function names in sorted order.
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.funcs))
	for k := range t.funcs {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
