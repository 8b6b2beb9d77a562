package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arnavsurve/fidel/internal/compiler"
)

var (
	fmtWrite bool
	fmtCheck bool
)

// fmt: canonical source layout
var FmtCmd = &cobra.Command{
	Use:   "fmt <file.fdl>...",
	Short: "Format source files",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		unformatted := 0
		for _, path := range args {
			src, err := compiler.ReadSource(path)
			if err != nil {
				return err
			}
			out, err := compiler.Format(src)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			switch {
			case fmtCheck:
				if out != src {
					failure("%s is not formatted", path)
					unformatted++
				}
			case fmtWrite:
				if out == src {
					continue
				}
				if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
					return err
				}
				success("formatted %s", path)
			default:
				fmt.Print(out)
			}
		}
		if unformatted > 0 {
			return fmt.Errorf("%s need formatting", plural(unformatted, "file"))
		}
		return nil
	},
}

func init() {
	FmtCmd.Flags().BoolVarP(&fmtWrite, "write", "w", false, "write result to the source file instead of stdout")
	FmtCmd.Flags().BoolVar(&fmtCheck, "check", false, "exit non-zero if any file is not formatted")
}
