package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/arnavsurve/fidel/internal/compiler"
	"github.com/arnavsurve/fidel/internal/history"
)

var (
	historyLimit  int
	historyPrune  bool
	historyPurge  bool
	historyDigest string
)

// history: inspect recorded runs
var HistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent runs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openHistory()
		if err != nil {
			return err
		}
		defer store.Close()
		ctx := context.Background()

		if historyPrune {
			n, err := store.Prune(ctx, time.Now().Add(-cfg.History.Retention))
			if err != nil {
				return err
			}
			success("pruned %s older than %s", plural(int(n), "run"), cfg.History.Retention)
		}
		if historyPurge {
			n, err := store.Purge(ctx)
			if err != nil {
				return err
			}
			success("purged %s", plural(int(n), "run"))
		}
		if historyPrune || historyPurge {
			return nil
		}

		var runs []*history.Run
		if historyDigest != "" {
			digest, err := resolveDigest(historyDigest)
			if err != nil {
				return err
			}
			runs, err = store.ByDigest(ctx, digest)
			if err != nil {
				return err
			}
		} else {
			runs, err = store.Recent(ctx, historyLimit)
			if err != nil {
				return err
			}
		}
		if len(runs) == 0 {
			step("no runs recorded in %s", cfg.History.DB)
			return nil
		}
		for _, r := range runs {
			status := okColor.Sprint("✔︎")
			if r.Failed() {
				status = failColor.Sprint("✗")
			}
			when := time.Unix(r.CreatedAt, 0).Format(time.DateTime)
			fmt.Printf("%s %s %s %s %s\n", status, dim(when), r.Digest[:12], r.Origin, dim(fmt.Sprintf("%dms", r.DurationMs)))
			if r.Failed() {
				fmt.Println("    " + failColor.Sprint(firstLine(r.Error)))
			}
		}
		return nil
	},
}

func init() {
	HistoryCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "number of runs to show")
	HistoryCmd.Flags().BoolVar(&historyPrune, "prune", false, "soft-delete runs older than history.retention")
	HistoryCmd.Flags().StringVarP(&historyDigest, "digest", "d", "", "show only runs of this source: a digest or a .fdl file")
	HistoryCmd.Flags().BoolVar(&historyPurge, "purge", false, "permanently remove soft-deleted runs")
}

// resolveDigest accepts a source file, whose contents are hashed, or a digest.
func resolveDigest(arg string) (string, error) {
	if filepath.Ext(arg) == compiler.Extension {
		src, err := compiler.ReadSource(arg)
		if err != nil {
			return "", err
		}
		return history.Digest(src), nil
	}
	return strings.ToLower(arg), nil
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
