package parser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arnavsurve/fidel/internal/compiler/lexer"
)

func mustStream(t *testing.T, src string) *lexer.Stream {
	t.Helper()
	s, err := lexer.New(src).Stream()
	require.NoError(t, err)
	return s
}

func perrKind(t *testing.T, src string) ErrorKind {
	t.Helper()
	return parseErr(t, src).Kind
}
