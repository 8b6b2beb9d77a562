package cmd

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"

	"github.com/arnavsurve/fidel/internal/compiler/interp"
)

// linerPrompter reads program input with line editing. The liner state is
// created on first use so programs that never ask for input leave the
// terminal alone.
type linerPrompter struct {
	state *liner.State
}

func (p *linerPrompter) Prompt(prompt string) (string, error) {
	if p.state == nil {
		p.state = liner.NewLiner()
		p.state.SetCtrlCAborts(true)
	}
	line, err := p.state.Prompt(prompt)
	if err == liner.ErrPromptAborted {
		return "", io.EOF
	}
	return line, err
}

func (p *linerPrompter) Close() error {
	if p.state == nil {
		return nil
	}
	return p.state.Close()
}

// stdinPrompter picks liner on a terminal and plain line reading otherwise.
// The returned close func must be called when the run ends.
func stdinPrompter(out io.Writer) (interp.Prompter, func()) {
	if isatty.IsTerminal(os.Stdin.Fd()) {
		p := &linerPrompter{}
		return p, func() { p.Close() }
	}
	return interp.NewLinePrompter(os.Stdin, out), func() {}
}
