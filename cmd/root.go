package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/arnavsurve/fidel/internal/compiler/interp"
	"github.com/arnavsurve/fidel/internal/config"
)

var (
	configPath string
	cfg        *config.Config
	logger     *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "fidel",
	Short: "Run, inspect and serve Fidel programs",
	Long: `Fidel is a small language written with Ethiopic keywords.

Commands:
  run      Run a (.fdl) source file or a sample by name
  list     List sample programs
  repl     Start an interactive session
  watch    Re-run a file whenever it changes
  serve    Start the HTTP playground
  history  Show recent runs
  check    Run golden good/bad test programs
  fmt      Format source files
  tokens   Dump the tokens of a file
  ast      Dump the syntax tree of a file
  init     Scaffold a new Fidel project
`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
		c, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = c
		return nil
	},
}

func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		printError(err)
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to fidel.yml (default ./fidel.yml if present)")

	rootCmd.AddCommand(InitCmd, RunCmd, ListCmd, ReplCmd, WatchCmd, ServeCmd,
		HistoryCmd, CheckCmd, FmtCmd, TokensCmd, AstCmd)
}

// interpOptions turns the interpreter section of the config into options.
func interpOptions() []interp.Option {
	return []interp.Option{
		interp.WithMaxCallDepth(cfg.Interpreter.MaxCallDepth),
		interp.WithReturnPropagation(cfg.Interpreter.ReturnPropagation),
	}
}
