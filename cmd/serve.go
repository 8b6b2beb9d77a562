package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/arnavsurve/fidel/internal/history"
	"github.com/arnavsurve/fidel/internal/playground"
	"github.com/arnavsurve/fidel/internal/samples"
)

var serveAddr string

// serve: HTTP playground
var ServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP playground",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr := cfg.Serve.Addr
		if serveAddr != "" {
			addr = serveAddr
		}

		var store *history.Store
		if cfg.History.Enabled {
			s, err := openHistory()
			if err != nil {
				return err
			}
			defer s.Close()
			store = s

			if cfg.History.Retention > 0 && cfg.History.PruneInterval > 0 {
				pruner := history.NewPruner(store, cfg.History.Retention, logger)
				if err := pruner.Start(cfg.History.PruneInterval); err != nil {
					return err
				}
				defer pruner.Stop()
			}
		}

		srv := playground.New(
			samples.New(cfg.Samples.Dir, cfg.Samples.Extension),
			store,
			playground.Options{
				Timeout:     cfg.Serve.Timeout,
				MaxBodySize: cfg.Serve.MaxBodySize,
				MaxOutput:   cfg.Serve.MaxOutputSize,
				Interp:      interpOptions(),
			},
			logger,
		)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		errc := make(chan error, 1)
		go func() { errc <- srv.ListenAndServe(addr) }()

		select {
		case err := <-errc:
			return err
		case <-ctx.Done():
			logger.Info("shutting down playground")
			return srv.Shutdown()
		}
	},
}

func init() {
	ServeCmd.Flags().StringVarP(&serveAddr, "addr", "a", "", "listen address (overrides serve.addr)")
}
