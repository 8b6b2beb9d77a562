package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/arnavsurve/fidel/internal/compiler"
	"github.com/arnavsurve/fidel/internal/compiler/ast"
	"github.com/arnavsurve/fidel/internal/compiler/interp"
	"github.com/arnavsurve/fidel/internal/compiler/object"
	"github.com/arnavsurve/fidel/internal/compiler/parser"
)

const (
	replHistoryFile = ".fidel_history"
	promptMain      = "ፊደል> "
	promptCont      = "...> "
)

// repl: interactive session
var ReplCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRepl()
	},
}

func runRepl() error {
	fmt.Println("Fidel REPL. Type :quit to exit, :vars or :funcs to inspect the session.")

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, replHistoryFile)
	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	// input() inside the session shares the line editor
	ip := interp.New(append(interpOptions(),
		interp.WithOutput(os.Stdout),
		interp.WithPrompter(&sharedLiner{ln}),
	)...)

	for {
		code, ok := readStatement(ln)
		if !ok {
			fmt.Println()
			return nil
		}
		trimmed := strings.TrimSpace(code)
		if trimmed == "" {
			continue
		}
		ln.AppendHistory(strings.ReplaceAll(code, "\n", " "))

		if strings.HasPrefix(trimmed, ":") {
			if replCommand(ip, trimmed) {
				return nil
			}
			continue
		}

		if err := evalInSession(ip, code); err != nil {
			printError(err)
		}
	}
}

// replCommand handles a :command and reports whether the session should end.
func replCommand(ip *interp.Interpreter, c string) bool {
	switch strings.ToLower(c) {
	case ":quit", ":q", ":exit":
		return true
	case ":vars":
		for _, name := range ip.Globals.Names() {
			v, _ := ip.Globals.Get(name)
			fmt.Printf("%s = %s\n", name, object.Format(v))
		}
	case ":funcs":
		for _, name := range ip.Funcs.Names() {
			def, _ := ip.Funcs.Lookup(name)
			fmt.Printf("%s(%s)\n", name, strings.Join(def.Parameters, ", "))
		}
	default:
		fmt.Println("unknown command. Type :quit to exit.")
	}
	return false
}

// evalInSession runs code against the session globals and echoes the value
// of a trailing bare expression.
func evalInSession(ip *interp.Interpreter, code string) error {
	prog, err := compiler.Parse(code)
	if err != nil {
		return err
	}
	for i, stmt := range prog.Statements {
		v, err := ip.Eval(stmt, ip.Globals)
		if err != nil {
			return err
		}
		if i == len(prog.Statements)-1 && isBareExpression(stmt) && v.Kind() != object.KindNone {
			fmt.Println(dim(object.Format(v)))
		}
	}
	return nil
}

func isBareExpression(n ast.Node) bool {
	switch n.(type) {
	case *ast.NumberLiteral, *ast.StringLiteral, *ast.BooleanLiteral, *ast.ListLiteral,
		*ast.Variable, *ast.Index, *ast.BinaryOp, *ast.FunctionCall:
		return true
	}
	return false
}

// readStatement keeps prompting while the buffered source is only
// incomplete, not wrong.
func readStatement(ln *liner.State) (string, bool) {
	var b strings.Builder
	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			return "", false
		}
		if err != nil {
			return "", true
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if strings.HasPrefix(strings.TrimSpace(src), ":") {
			return src, true
		}
		perr := compiler.Check(src)
		if perr != nil && parser.IsIncomplete(perr) && strings.TrimSpace(line) != "" {
			continue
		}
		return src, true
	}
}

type sharedLiner struct {
	ln *liner.State
}

func (s *sharedLiner) Prompt(prompt string) (string, error) {
	return s.ln.Prompt(prompt)
}
