package compiler

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/arnavsurve/fidel/internal/compiler/ast"
	"github.com/arnavsurve/fidel/internal/compiler/emitter"
	"github.com/arnavsurve/fidel/internal/compiler/interp"
	"github.com/arnavsurve/fidel/internal/compiler/lexer"
	"github.com/arnavsurve/fidel/internal/compiler/parser"
	"github.com/arnavsurve/fidel/internal/compiler/token"
)

// Extension is the source file extension.
const Extension = ".fdl"

// Run lexes, parses and executes src with a fresh interpreter. The first
// lexical, syntax or runtime error is returned as is.
func Run(src string, opts ...interp.Option) error {
	prog, err := parseProgram(src)
	if err != nil {
		return err
	}
	return interp.New(opts...).Exec(prog)
}

// RunFile reads path and runs it.
func RunFile(path string, opts ...interp.Option) error {
	src, err := ReadSource(path)
	if err != nil {
		return err
	}
	return Run(src, opts...)
}

// Check lexes and parses src without running it.
func Check(src string) error {
	_, err := parseProgram(src)
	return err
}

// Parse returns the program tree for src.
func Parse(src string) (*ast.Block, error) {
	return parseProgram(src)
}

// Tokens returns every token of src, without the trailing EOF.
func Tokens(src string) ([]token.Token, error) {
	return lexer.New(src).Tokenize()
}

// Format returns src in canonical layout.
func Format(src string) (string, error) {
	prog, err := parseProgram(src)
	if err != nil {
		return "", err
	}
	em := emitter.New()
	out := em.Emit(prog)
	if errs := em.Errors(); len(errs) > 0 {
		return "", errors.Errorf("emitter errors: %v", errs)
	}
	return out, nil
}

// ReadSource reads a source file, requiring the .fdl extension.
func ReadSource(path string) (string, error) {
	if err := validateExtension(path); err != nil {
		return "", err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "reading %s", path)
	}
	return string(b), nil
}

func validateExtension(path string) error {
	if filepath.Ext(path) != Extension {
		return errors.Errorf("source must have %s extension: %s", Extension, path)
	}
	return nil
}

func parseProgram(src string) (*ast.Block, error) {
	s, err := lexer.New(src).Stream()
	if err != nil {
		return nil, err
	}
	return parser.New(s).ParseProgram()
}
