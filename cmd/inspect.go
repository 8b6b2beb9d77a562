package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arnavsurve/fidel/internal/compiler"
	"github.com/arnavsurve/fidel/internal/compiler/ast"
)

// tokens: lexer dump
var TokensCmd = &cobra.Command{
	Use:   "tokens <file.fdl>",
	Short: "Dump the tokens of a file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := compiler.ReadSource(args[0])
		if err != nil {
			return err
		}
		toks, err := compiler.Tokens(src)
		if err != nil {
			return err
		}
		for _, tok := range toks {
			fmt.Printf("%s %s\n", dim(fmt.Sprintf("%4d:%-3d", tok.Line, tok.Column)), tok)
		}
		return nil
	},
}

// ast: parser dump
var AstCmd = &cobra.Command{
	Use:   "ast <file.fdl>",
	Short: "Dump the syntax tree of a file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := compiler.ReadSource(args[0])
		if err != nil {
			return err
		}
		prog, err := compiler.Parse(src)
		if err != nil {
			return err
		}
		ast.Fprint(os.Stdout, prog, "")
		return nil
	},
}
