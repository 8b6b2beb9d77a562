package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/arnavsurve/fidel/internal/compiler/token"
)

// matcher returns the length in bytes of the match at the start of src, or 0.
type matcher func(src string) int

type rule struct {
	name      string
	tokenType token.TokenType
	match     matcher
	skip      bool // recognized but produces no token
}

// rules is tried top to bottom and the first match wins. Several entries are
// prefixes of later ones (= vs ==, the ለ keyword vs identifiers), so the order
// is part of the language definition.
var rules = buildRules()

func buildRules() []rule {
	rs := []rule{
		{name: "block comment", match: matchBlockComment, skip: true},
		{name: "line comment", match: matchLineComment, skip: true},
		{name: "+=", tokenType: token.TokenPlusAssign, match: literal("+=")},
		{name: "-=", tokenType: token.TokenMinusAssign, match: literal("-=")},
		{name: "number", tokenType: token.TokenNumber, match: matchNumber},
		{name: "string", tokenType: token.TokenString, match: matchString},
	}
	for _, kw := range token.Keywords {
		rs = append(rs, rule{name: string(kw.Type), tokenType: kw.Type, match: literal(kw.Lexeme)})
	}
	rs = append(rs,
		rule{name: "boolean", tokenType: token.TokenBoolean, match: oneOf(token.LiteralTrue, token.LiteralFalse)},
		rule{name: "[", tokenType: token.TokenLBracket, match: literal("[")},
		rule{name: "]", tokenType: token.TokenRBracket, match: literal("]")},
		rule{name: "==", tokenType: token.TokenEq, match: literal("==")},
		rule{name: "!=", tokenType: token.TokenNe, match: literal("!=")},
		rule{name: ">=", tokenType: token.TokenGe, match: literal(">=")},
		rule{name: "<=", tokenType: token.TokenLe, match: literal("<=")},
		rule{name: ">", tokenType: token.TokenGt, match: literal(">")},
		rule{name: "<", tokenType: token.TokenLt, match: literal("<")},
		rule{name: "=", tokenType: token.TokenAssign, match: literal("=")},
		rule{name: "operator", tokenType: token.TokenOp, match: oneOf("+", "-", "*", "/", "%")},
		rule{name: "(", tokenType: token.TokenLParen, match: literal("(")},
		rule{name: ")", tokenType: token.TokenRParen, match: literal(")")},
		rule{name: "{", tokenType: token.TokenLBrace, match: literal("{")},
		rule{name: "}", tokenType: token.TokenRBrace, match: literal("}")},
		rule{name: ",", tokenType: token.TokenComma, match: literal(",")},
		rule{name: ";", tokenType: token.TokenSemicolon, match: literal(";")},
		rule{name: "identifier", tokenType: token.TokenIdent, match: matchIdent},
		rule{name: "whitespace", match: matchSpace, skip: true},
	)
	return rs
}

func literal(s string) matcher {
	return func(src string) int {
		if strings.HasPrefix(src, s) {
			return len(s)
		}
		return 0
	}
}

func oneOf(alts ...string) matcher {
	return func(src string) int {
		for _, s := range alts {
			if strings.HasPrefix(src, s) {
				return len(s)
			}
		}
		return 0
	}
}

// matchBlockComment matches /* ... */. An unterminated comment does not
// match, leaving / and * to the operator rule.
func matchBlockComment(src string) int {
	if !strings.HasPrefix(src, "/*") {
		return 0
	}
	end := strings.Index(src[2:], "*/")
	if end < 0 {
		return 0
	}
	return 2 + end + 2
}

func matchLineComment(src string) int {
	if !strings.HasPrefix(src, "//") && !strings.HasPrefix(src, "#") {
		return 0
	}
	if i := strings.IndexByte(src, '\n'); i >= 0 {
		return i
	}
	return len(src)
}

func matchNumber(src string) int {
	n := 0
	for n < len(src) && isDigit(rune(src[n])) {
		n++
	}
	return n
}

// matchString matches "..." with no escape processing.
func matchString(src string) int {
	if !strings.HasPrefix(src, `"`) {
		return 0
	}
	end := strings.IndexByte(src[1:], '"')
	if end < 0 {
		return 0
	}
	return end + 2
}

// matchIdent matches a letter followed by letters, digits and combining
// marks (Ethiopic U+135D..U+135F among them).
func matchIdent(src string) int {
	n := 0
	for i, ch := range src {
		if i == 0 {
			if !isLetter(ch) {
				return 0
			}
		} else if !isLetter(ch) && !isDigit(ch) && !unicode.Is(unicode.Mn, ch) {
			break
		}
		n += utf8.RuneLen(ch)
	}
	return n
}

func matchSpace(src string) int {
	n := 0
	for _, ch := range src {
		if !unicode.IsSpace(ch) {
			break
		}
		n += utf8.RuneLen(ch)
	}
	return n
}
