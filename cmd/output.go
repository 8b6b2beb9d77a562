package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

var (
	stepColor = color.New(color.FgCyan)
	okColor   = color.New(color.FgGreen)
	failColor = color.New(color.FgRed)
	dimColor  = color.New(color.Faint)
)

func step(format string, args ...any) {
	stepColor.Fprintf(os.Stderr, "↪ "+format+"\n", args...)
}

func success(format string, args ...any) {
	okColor.Fprintf(os.Stderr, "✔︎ "+format+"\n", args...)
}

func failure(format string, args ...any) {
	failColor.Fprintf(os.Stderr, "✗ "+format+"\n", args...)
}

func printError(err error) {
	failColor.Fprintln(os.Stderr, err.Error())
}

func dim(s string) string {
	return dimColor.Sprint(s)
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
