package compiler

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/arnavsurve/fidel/internal/compiler/interp"
)

// CaseResult is the outcome of one golden program.
type CaseResult struct {
	File   string
	IsGood bool // true for good cases, false for bad cases
	Passed bool
	Reason string // why the case failed
}

// RunGolden runs every program under dir/good and dir/bad.
//
// A good case NAME.fdl must run without error and print exactly NAME.out.
// Input lines, if any, come from NAME.in. A bad case must fail; if NAME.err
// exists, the error text must contain its trimmed contents.
func RunGolden(dir string, opts ...interp.Option) ([]CaseResult, error) {
	goodFiles, err := filepath.Glob(filepath.Join(dir, "good", "*"+Extension))
	if err != nil {
		return nil, errors.Wrap(err, "listing good cases")
	}
	badFiles, err := filepath.Glob(filepath.Join(dir, "bad", "*"+Extension))
	if err != nil {
		return nil, errors.Wrap(err, "listing bad cases")
	}

	results := make([]CaseResult, 0, len(goodFiles)+len(badFiles))
	for _, file := range goodFiles {
		results = append(results, runGoodCase(file, opts))
	}
	for _, file := range badFiles {
		results = append(results, runBadCase(file, opts))
	}
	return results, nil
}

func runGoodCase(file string, opts []interp.Option) CaseResult {
	res := CaseResult{File: file, IsGood: true}
	base := strings.TrimSuffix(file, Extension)

	expected, err := os.ReadFile(base + ".out")
	if err != nil {
		res.Reason = "missing expected output: " + base + ".out"
		return res
	}

	out, runErr := runCase(file, base, opts)
	if runErr != nil {
		res.Reason = "unexpected error: " + runErr.Error()
		return res
	}

	// Normalize line endings before comparison
	want := bytes.ReplaceAll(expected, []byte("\r\n"), []byte("\n"))
	if !bytes.Equal(want, []byte(out)) {
		res.Reason = "output mismatch\nexpected:\n" + string(want) + "\nactual:\n" + out
		return res
	}
	res.Passed = true
	return res
}

func runBadCase(file string, opts []interp.Option) CaseResult {
	res := CaseResult{File: file}
	base := strings.TrimSuffix(file, Extension)

	out, runErr := runCase(file, base, opts)
	if runErr == nil {
		res.Reason = "expected failure but got success\noutput:\n" + out
		return res
	}

	if want, err := os.ReadFile(base + ".err"); err == nil {
		fragment := strings.TrimSpace(string(want))
		if !strings.Contains(runErr.Error(), fragment) {
			res.Reason = "error " + runErr.Error() + " does not contain " + fragment
			return res
		}
	}
	res.Passed = true
	return res
}

func runCase(file, base string, opts []interp.Option) (string, error) {
	var out bytes.Buffer
	var lines []string
	if in, err := os.ReadFile(base + ".in"); err == nil {
		lines = strings.Split(strings.TrimRight(strings.ReplaceAll(string(in), "\r\n", "\n"), "\n"), "\n")
	}

	all := append([]interp.Option{}, opts...)
	all = append(all,
		interp.WithOutput(&out),
		interp.WithPrompter(interp.NewLines(lines, nil)),
	)
	err := RunFile(file, all...)
	return out.String(), err
}
