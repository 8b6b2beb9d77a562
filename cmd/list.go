package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arnavsurve/fidel/internal/samples"
)

// list: show the sample catalog
var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "List sample programs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		all, err := samples.New(cfg.Samples.Dir, cfg.Samples.Extension).List()
		if err != nil {
			return err
		}
		if len(all) == 0 {
			step("no samples in %s", cfg.Samples.Dir)
			return nil
		}
		for _, s := range all {
			fmt.Printf("%-20s %s\n", s.Name, dim(s.Path))
		}
		return nil
	},
}
