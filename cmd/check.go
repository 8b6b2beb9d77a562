package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/arnavsurve/fidel/internal/compiler"
)

// check: golden good/bad runner
var CheckCmd = &cobra.Command{
	Use:   "check [dir]",
	Short: "Run golden good/bad test programs",
	Long: `Runs every program in DIR/good and DIR/bad (DIR defaults to testdata).

A good program must succeed and print exactly the contents of its .out file,
reading input lines from its .in file if present. A bad program must fail, and
its error must contain the contents of its .err file if present.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "testdata"
		if len(args) == 1 {
			dir = args[0]
		}

		step("running golden programs in %s ...", dir)
		results, err := compiler.RunGolden(dir, interpOptions()...)
		if err != nil {
			return err
		}

		var goodPassed, goodFailed, badPassed, badFailed int
		var failed []compiler.CaseResult
		for _, res := range results {
			name := filepath.Base(res.File)
			switch {
			case res.Passed && res.IsGood:
				goodPassed++
				success("%s", name)
			case res.Passed:
				badPassed++
				success("%s (failed as expected)", name)
			case res.IsGood:
				goodFailed++
				failure("%s", name)
				failed = append(failed, res)
			default:
				badFailed++
				failure("%s (unexpected result)", name)
				failed = append(failed, res)
			}
		}

		if len(failed) > 0 {
			fmt.Println("\n--- Detailed Failures ---")
			for _, res := range failed {
				kind := map[bool]string{true: "good", false: "bad"}[res.IsGood]
				fmt.Printf("\n✗ %s (%s)\n%s\n---\n", res.File, kind, res.Reason)
			}
		}

		fmt.Println("\n--------------------")
		fmt.Printf("Good: ✔︎ %d passed | ✗ %d failed\n", goodPassed, goodFailed)
		fmt.Printf("Bad:  ✔︎ %d passed | ✗ %d failed\n", badPassed, badFailed)
		fmt.Println("--------------------")

		if goodFailed+badFailed > 0 {
			return fmt.Errorf("%s failed", plural(goodFailed+badFailed, "golden program"))
		}
		return nil
	},
}
