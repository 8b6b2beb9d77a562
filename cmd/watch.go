package cmd

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/arnavsurve/fidel/internal/compiler"
	"github.com/arnavsurve/fidel/internal/compiler/interp"
)

const watchDebounce = 100 * time.Millisecond

// watch: re-run a file on every write
var WatchCmd = &cobra.Command{
	Use:   "watch <file.fdl>",
	Short: "Re-run a file whenever it changes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := filepath.Abs(args[0])
		if err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return watchFile(ctx, path)
	},
}

func watchFile(ctx context.Context, path string) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "creating watcher")
	}
	defer w.Close()

	// Editors often replace the file instead of writing it, so watch the
	// directory and filter by name.
	if err := w.Add(filepath.Dir(path)); err != nil {
		return errors.Wrapf(err, "watching %s", filepath.Dir(path))
	}
	logger.Info("watching", "file", path)

	runWatched(path)

	var debounce <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			logger.Info("watch stopped")
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != path {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
				debounce = time.After(watchDebounce)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Error("watch error", "err", err)
		case <-debounce:
			debounce = nil
			runWatched(path)
		}
	}
}

func runWatched(path string) {
	step("running %s", filepath.Base(path))
	start := time.Now()
	opts := append(interpOptions(),
		interp.WithOutput(os.Stdout),
		interp.WithInput(os.Stdin),
	)
	if err := compiler.RunFile(path, opts...); err != nil {
		printError(err)
		return
	}
	success("done in %s", time.Since(start).Round(time.Millisecond))
}
