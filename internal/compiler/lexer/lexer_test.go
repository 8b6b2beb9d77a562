package lexer

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arnavsurve/fidel/internal/compiler/token"
)

type tt struct {
	Type    token.TokenType
	Literal string
}

// kinds drops positions so tests can compare kind and lexeme only.
func kinds(toks []token.Token) []tt {
	out := make([]tt, len(toks))
	for i, t := range toks {
		out[i] = tt{t.Type, t.Literal}
	}
	return out
}

func tokenize(t *testing.T, src string) []token.Token {
	t.Helper()
	toks, err := New(src).Tokenize()
	require.NoError(t, err)
	return toks
}

func TestTokenizeArithmetic(t *testing.T) {
	toks := tokenize(t, "12+3")

	want := []tt{
		{token.TokenNumber, "12"},
		{token.TokenOp, "+"},
		{token.TokenNumber, "3"},
	}
	if diff := cmp.Diff(want, kinds(toks)); diff != "" {
		t.Fatalf("tokens mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "NUMBER(12)", toks[0].String())
}

func TestTokenizeKeywordsAndPunctuation(t *testing.T) {
	src := `ይዘው x = [1, "ሰላም"];
ፋንክሽን f(a) { መመለስ a; }
ከሆነ (x >= 1) { አትም x; } ካልሆነ { x -= 1; }
በማዘጋጀት (x != 0) { x += 1; }
ለ (ይዘው i = 0; i <= 2; i = i + 1) { ጠይቅ("?"); }
እውነት == ሐሰት; a < b; a > b; 7 % 2;`

	want := []tt{
		{token.TokenLet, "ይዘው"}, {token.TokenIdent, "x"}, {token.TokenAssign, "="},
		{token.TokenLBracket, "["}, {token.TokenNumber, "1"}, {token.TokenComma, ","},
		{token.TokenString, "ሰላም"}, {token.TokenRBracket, "]"}, {token.TokenSemicolon, ";"},

		{token.TokenFunc, "ፋንክሽን"}, {token.TokenIdent, "f"}, {token.TokenLParen, "("},
		{token.TokenIdent, "a"}, {token.TokenRParen, ")"}, {token.TokenLBrace, "{"},
		{token.TokenReturn, "መመለስ"}, {token.TokenIdent, "a"}, {token.TokenSemicolon, ";"},
		{token.TokenRBrace, "}"},

		{token.TokenIf, "ከሆነ"}, {token.TokenLParen, "("}, {token.TokenIdent, "x"},
		{token.TokenGe, ">="}, {token.TokenNumber, "1"}, {token.TokenRParen, ")"},
		{token.TokenLBrace, "{"}, {token.TokenPrint, "አትም"}, {token.TokenIdent, "x"},
		{token.TokenSemicolon, ";"}, {token.TokenRBrace, "}"}, {token.TokenElse, "ካልሆነ"},
		{token.TokenLBrace, "{"}, {token.TokenIdent, "x"}, {token.TokenMinusAssign, "-="},
		{token.TokenNumber, "1"}, {token.TokenSemicolon, ";"}, {token.TokenRBrace, "}"},

		{token.TokenWhile, "በማዘጋጀት"}, {token.TokenLParen, "("}, {token.TokenIdent, "x"},
		{token.TokenNe, "!="}, {token.TokenNumber, "0"}, {token.TokenRParen, ")"},
		{token.TokenLBrace, "{"}, {token.TokenIdent, "x"}, {token.TokenPlusAssign, "+="},
		{token.TokenNumber, "1"}, {token.TokenSemicolon, ";"}, {token.TokenRBrace, "}"},

		{token.TokenFor, "ለ"}, {token.TokenLParen, "("}, {token.TokenLet, "ይዘው"},
		{token.TokenIdent, "i"}, {token.TokenAssign, "="}, {token.TokenNumber, "0"},
		{token.TokenSemicolon, ";"}, {token.TokenIdent, "i"}, {token.TokenLe, "<="},
		{token.TokenNumber, "2"}, {token.TokenSemicolon, ";"}, {token.TokenIdent, "i"},
		{token.TokenAssign, "="}, {token.TokenIdent, "i"}, {token.TokenOp, "+"},
		{token.TokenNumber, "1"}, {token.TokenRParen, ")"}, {token.TokenLBrace, "{"},
		{token.TokenInput, "ጠይቅ"}, {token.TokenLParen, "("}, {token.TokenString, "?"},
		{token.TokenRParen, ")"}, {token.TokenSemicolon, ";"}, {token.TokenRBrace, "}"},

		{token.TokenBoolean, "እውነት"}, {token.TokenEq, "=="}, {token.TokenBoolean, "ሐሰት"},
		{token.TokenSemicolon, ";"},
		{token.TokenIdent, "a"}, {token.TokenLt, "<"}, {token.TokenIdent, "b"}, {token.TokenSemicolon, ";"},
		{token.TokenIdent, "a"}, {token.TokenGt, ">"}, {token.TokenIdent, "b"}, {token.TokenSemicolon, ";"},
		{token.TokenNumber, "7"}, {token.TokenOp, "%"}, {token.TokenNumber, "2"}, {token.TokenSemicolon, ";"},
	}
	if diff := cmp.Diff(want, kinds(tokenize(t, src))); diff != "" {
		t.Fatalf("tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestCommentsAndWhitespaceAreSkipped(t *testing.T) {
	src := "/* block\ncomment */ x // line\n# hash comment\n\t y"
	want := []tt{{token.TokenIdent, "x"}, {token.TokenIdent, "y"}}
	if diff := cmp.Diff(want, kinds(tokenize(t, src))); diff != "" {
		t.Fatalf("tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestUnterminatedBlockCommentFallsToOperators(t *testing.T) {
	want := []tt{{token.TokenOp, "/"}, {token.TokenOp, "*"}, {token.TokenIdent, "x"}}
	if diff := cmp.Diff(want, kinds(tokenize(t, "/* x"))); diff != "" {
		t.Fatalf("tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestKeywordsMatchAsPrefixes(t *testing.T) {
	// ለ is tried before identifiers, so it splits a word that starts with it.
	want := []tt{{token.TokenFor, "ለ"}, {token.TokenIdent, "ምሳሌ"}}
	if diff := cmp.Diff(want, kinds(tokenize(t, "ለምሳሌ"))); diff != "" {
		t.Fatalf("tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestEthiopicIdentifiers(t *testing.T) {
	toks := tokenize(t, "ስም_1 = ቁጥር2;")
	want := []tt{
		{token.TokenIdent, "ስም_1"}, {token.TokenAssign, "="},
		{token.TokenIdent, "ቁጥር2"}, {token.TokenSemicolon, ";"},
	}
	if diff := cmp.Diff(want, kinds(toks)); diff != "" {
		t.Fatalf("tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestPositions(t *testing.T) {
	toks := tokenize(t, "ይዘው x = 1;\n  አትም x;")

	type pos struct{ Line, Column, Offset int }
	got := make([]pos, len(toks))
	for i, tok := range toks {
		got[i] = pos{tok.Line, tok.Column, tok.Offset}
	}
	// ይዘው is three runes but nine bytes
	want := []pos{
		{1, 1, 0}, {1, 5, 10}, {1, 7, 12}, {1, 9, 14}, {1, 10, 15},
		{2, 3, 19}, {2, 7, 29}, {2, 8, 30},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("positions mismatch (-want +got):\n%s", diff)
	}
}

func TestStringLiteralsAreVerbatim(t *testing.T) {
	toks := tokenize(t, "\"e\u0301\" \"\u00e9\"")
	require.Len(t, toks, 2)
	assert.Equal(t, "e\u0301", toks[0].Literal)
	assert.Equal(t, "\u00e9", toks[1].Literal)
}

func TestIdentifiersAreNormalized(t *testing.T) {
	// e followed by a combining acute is one identifier, stored composed.
	toks := tokenize(t, "e\u0301 = 1;")
	if diff := cmp.Diff([]tt{
		{token.TokenIdent, "\u00e9"}, {token.TokenAssign, "="},
		{token.TokenNumber, "1"}, {token.TokenSemicolon, ";"},
	}, kinds(toks)); diff != "" {
		t.Fatalf("tokens mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 4, toks[1].Column)
}

func TestLoneCombiningMarkIsUnexpected(t *testing.T) {
	_, err := New("\u0301").Tokenize()
	var lexErr *Error
	require.True(t, errors.As(err, &lexErr))
	assert.Equal(t, '\u0301', lexErr.Char)
	assert.Equal(t, 1, lexErr.Column)
}

func TestUnexpectedCharacter(t *testing.T) {
	_, err := New("x = 1 @ 2;").Tokenize()
	require.Error(t, err)

	var lexErr *Error
	require.True(t, errors.As(err, &lexErr))
	assert.Equal(t, '@', lexErr.Char)
	assert.Equal(t, 1, lexErr.Line)
	assert.Equal(t, 7, lexErr.Column)
	assert.Equal(t, `1:7: Lex Error: Unexpected character '@'`, err.Error())
}

func TestUnterminatedString(t *testing.T) {
	_, err := New(`አትም "abc;`).Tokenize()
	var lexErr *Error
	require.True(t, errors.As(err, &lexErr))
	assert.Equal(t, '"', lexErr.Char)
}

func TestNextTokenEndsWithEOF(t *testing.T) {
	l := New("x")
	tok, err := l.NextToken()
	require.NoError(t, err)
	assert.Equal(t, token.TokenIdent, tok.Type)

	for i := 0; i < 2; i++ {
		tok, err = l.NextToken()
		require.NoError(t, err)
		assert.Equal(t, token.TokenEOF, tok.Type)
	}
}

func TestStreamDrainsOnce(t *testing.T) {
	s, err := New("a b").Stream()
	require.NoError(t, err)

	got := []token.Token{s.Next(), s.Next(), s.Next(), s.Next()}
	want := []tt{
		{token.TokenIdent, "a"}, {token.TokenIdent, "b"},
		{token.TokenEOF, ""}, {token.TokenEOF, ""},
	}
	if diff := cmp.Diff(want, kinds(got)); diff != "" {
		t.Fatalf("stream mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 4, got[2].Column)
}

func TestNewStreamComputesEOFPosition(t *testing.T) {
	s := NewStream([]token.Token{{Type: token.TokenIdent, Literal: "ስም", Line: 2, Column: 3, Offset: 5}})
	s.Next()
	eof := s.Next()

	want := token.Token{Type: token.TokenEOF, Line: 2, Column: 5, Offset: 11}
	if diff := cmp.Diff(want, eof, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("eof mismatch (-want +got):\n%s", diff)
	}
}

func TestNewStreamCountsStringQuotes(t *testing.T) {
	toks := tokenize(t, `አትም "ሰላም"`)
	s := NewStream(toks)
	for range toks {
		s.Next()
	}
	eof := s.Next()

	// the same position the lexer itself reports at end of input
	lexed, err := New(`አትም "ሰላም"`).Stream()
	require.NoError(t, err)
	for range toks {
		lexed.Next()
	}
	want := lexed.Next()

	assert.Equal(t, want, eof)
	assert.Equal(t, 10, eof.Column)
	assert.Equal(t, 21, eof.Offset)
}
