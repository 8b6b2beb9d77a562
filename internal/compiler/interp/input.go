package interp

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Prompter supplies one line of text for the input operation.
type Prompter interface {
	Prompt(prompt string) (string, error)
}

// LinePrompter writes the prompt to w and reads one line from r.
type LinePrompter struct {
	r *bufio.Reader
	w io.Writer
}

func NewLinePrompter(r io.Reader, w io.Writer) *LinePrompter {
	return &LinePrompter{r: bufio.NewReader(r), w: w}
}

func (p *LinePrompter) Prompt(prompt string) (string, error) {
	if _, err := fmt.Fprint(p.w, prompt); err != nil {
		return "", err
	}
	line, err := p.r.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Lines answers prompts from a fixed list, one entry per call. The prompt is
// still echoed to w so captured output matches an interactive run.
type Lines struct {
	lines []string
	w     io.Writer
}

func NewLines(lines []string, w io.Writer) *Lines {
	return &Lines{lines: lines, w: w}
}

func (l *Lines) Prompt(prompt string) (string, error) {
	if l.w != nil {
		if _, err := fmt.Fprint(l.w, prompt); err != nil {
			return "", err
		}
	}
	if len(l.lines) == 0 {
		return "", io.EOF
	}
	line := l.lines[0]
	l.lines = l.lines[1:]
	return line, nil
}
