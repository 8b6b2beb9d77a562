package compiler

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arnavsurve/fidel/internal/compiler/interp"
	"github.com/arnavsurve/fidel/internal/compiler/lexer"
	"github.com/arnavsurve/fidel/internal/compiler/parser"
	"github.com/arnavsurve/fidel/internal/compiler/token"
)

func TestGolden(t *testing.T) {
	results, err := RunGolden("testdata")
	require.NoError(t, err)
	require.NotEmpty(t, results)

	for _, res := range results {
		t.Run(filepath.Base(res.File), func(t *testing.T) {
			assert.True(t, res.Passed, res.Reason)
		})
	}
}

func TestRunReturnsTypedErrors(t *testing.T) {
	var out bytes.Buffer

	err := Run("x = 1 @ 2;", interp.WithOutput(&out))
	var lexErr *lexer.Error
	assert.True(t, errors.As(err, &lexErr))

	err = Run("x = ;", interp.WithOutput(&out))
	var parseErr *parser.Error
	assert.True(t, errors.As(err, &parseErr))

	err = Run("አትም y;", interp.WithOutput(&out))
	var runErr *interp.RuntimeError
	assert.True(t, errors.As(err, &runErr))
	assert.True(t, errors.Is(err, interp.ErrUndefinedVariable))

	assert.Empty(t, out.String())
}

func TestRunsDoNotShareState(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Run("ይዘው x = 1; ፋንክሽን f() { }", interp.WithOutput(&out)))

	err := Run("አትም x;", interp.WithOutput(&out))
	assert.True(t, errors.Is(err, interp.ErrUndefinedVariable))

	err = Run("f();", interp.WithOutput(&out))
	assert.True(t, errors.Is(err, interp.ErrUndefinedFunction))
}

func TestRunFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hello.fdl")
	require.NoError(t, os.WriteFile(path, []byte(`አትም "ሰላም";`), 0o644))

	var out bytes.Buffer
	require.NoError(t, RunFile(path, interp.WithOutput(&out)))
	assert.Equal(t, "ሰላም\n", out.String())

	err := RunFile(filepath.Join(dir, "hello.txt"))
	assert.ErrorContains(t, err, "must have .fdl extension")

	err = RunFile(filepath.Join(dir, "missing.fdl"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestCheck(t *testing.T) {
	assert.NoError(t, Check("አትም undefined_at_runtime;"))
	assert.Error(t, Check("አትም ;"))
}

func TestTokens(t *testing.T) {
	toks, err := Tokens("12+3")
	require.NoError(t, err)
	require.Len(t, toks, 3)
	assert.Equal(t, token.TokenNumber, toks[0].Type)
	assert.Equal(t, "OP(+)", toks[1].String())
}

func TestFormat(t *testing.T) {
	out, err := Format("ይዘው x=1;አትም x;")
	require.NoError(t, err)
	assert.Equal(t, "ይዘው x = 1;\nአትም x;\n", out)

	_, err = Format("ይዘው x =")
	assert.Error(t, err)
}

func TestRunGoldenReportsFailures(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "good"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "bad"), 0o755))

	write := func(name, body string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	write("good/wrong.fdl", "አትም 1;")
	write("good/wrong.out", "2\n")
	write("good/no_out.fdl", "አትም 1;")
	write("bad/succeeds.fdl", "አትም 1;")
	write("bad/other_error.fdl", "አትም x;")
	write("bad/other_error.err", "Division by zero")

	results, err := RunGolden(dir)
	require.NoError(t, err)
	require.Len(t, results, 4)

	reasons := map[string]string{}
	for _, res := range results {
		assert.False(t, res.Passed, res.File)
		reasons[filepath.Base(res.File)] = res.Reason
	}
	assert.Contains(t, reasons["wrong.fdl"], "output mismatch")
	assert.Contains(t, reasons["no_out.fdl"], "missing expected output")
	assert.Contains(t, reasons["succeeds.fdl"], "expected failure")
	assert.Contains(t, reasons["other_error.fdl"], "does not contain")
}

func TestRunPrintsStringLiteralsVerbatim(t *testing.T) {
	// e + combining acute must not be composed into U+00E9
	var out bytes.Buffer
	require.NoError(t, Run("አትም \"e\u0301\";", interp.WithOutput(&out)))
	assert.Equal(t, "e\u0301\n", out.String())
}
