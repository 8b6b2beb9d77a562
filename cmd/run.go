package cmd

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/arnavsurve/fidel/internal/compiler"
	"github.com/arnavsurve/fidel/internal/compiler/interp"
	"github.com/arnavsurve/fidel/internal/history"
	"github.com/arnavsurve/fidel/internal/samples"
)

var runNoHistory bool

// run: execute a source file or sample
var RunCmd = &cobra.Command{
	Use:   "run <file.fdl|sample>",
	Short: "Run a (.fdl) source file or a sample by name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		origin, src, err := resolveSource(args[0])
		if err != nil {
			return err
		}

		var captured bytes.Buffer
		out := io.MultiWriter(os.Stdout, &captured)
		prompter, closePrompter := stdinPrompter(out)
		defer closePrompter()

		opts := append(interpOptions(),
			interp.WithOutput(out),
			interp.WithPrompter(prompter),
		)

		start := time.Now()
		runErr := compiler.Run(src, opts...)
		elapsed := time.Since(start)

		if !runNoHistory {
			recordRun(&history.Run{
				Origin:     origin,
				Source:     src,
				Output:     captured.String(),
				Error:      errString(runErr),
				DurationMs: elapsed.Milliseconds(),
			})
		}
		return runErr
	},
}

func init() {
	RunCmd.Flags().BoolVar(&runNoHistory, "no-history", false, "do not record this run")
}

// resolveSource reads arg as a file when it names one, otherwise looks it up
// in the sample catalog.
func resolveSource(arg string) (origin, src string, err error) {
	if filepath.Ext(arg) == compiler.Extension {
		if _, statErr := os.Stat(arg); statErr == nil {
			src, err = compiler.ReadSource(arg)
			return arg, src, err
		}
	}
	sample, src, err := samples.New(cfg.Samples.Dir, cfg.Samples.Extension).Read(arg)
	if err != nil {
		return "", "", err
	}
	step("running sample %q (%s)", sample.Name, sample.Path)
	return sample.Path, src, nil
}

func openHistory() (*history.Store, error) {
	return history.Open(cfg.History.DB)
}

// recordRun stores run when history is enabled. Failures are logged, never
// fatal.
func recordRun(run *history.Run) {
	if !cfg.History.Enabled {
		return
	}
	store, err := openHistory()
	if err != nil {
		logger.Warn("history unavailable", "err", err)
		return
	}
	defer store.Close()
	if err := store.Record(context.Background(), run); err != nil {
		logger.Warn("recording run failed", "err", err)
	}
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
