package token

import "fmt"

type TokenType string

const (
	// Literals & Identifiers
	TokenNumber  TokenType = "NUMBER"  // 42
	TokenString  TokenType = "STRING"  // "..."
	TokenBoolean TokenType = "BOOLEAN" // እውነት / ሐሰት
	TokenIdent   TokenType = "IDENT"   // Identifier (e.g. variable name)

	// Keywords
	TokenLet    TokenType = "LET"    // ይዘው
	TokenFunc   TokenType = "FUNC"   // ፋንክሽን
	TokenReturn TokenType = "RETURN" // መመለስ
	TokenIf     TokenType = "IF"     // ከሆነ
	TokenElse   TokenType = "ELSE"   // ካልሆነ
	TokenWhile  TokenType = "WHILE"  // በማዘጋጀት
	TokenFor    TokenType = "FOR"    // ለ
	TokenPrint  TokenType = "PRINT"  // አትም
	TokenInput  TokenType = "INPUT"  // ጠይቅ

	// Punctuation
	TokenLBracket  TokenType = "LBRACKET"  // [
	TokenRBracket  TokenType = "RBRACKET"  // ]
	TokenLParen    TokenType = "LPAREN"    // (
	TokenRParen    TokenType = "RPAREN"    // )
	TokenLBrace    TokenType = "LBRACE"    // {
	TokenRBrace    TokenType = "RBRACE"    // }
	TokenComma     TokenType = "COMMA"     // ,
	TokenSemicolon TokenType = "SEMICOLON" // ;

	// Operators
	TokenEq          TokenType = "EQ"           // ==
	TokenNe          TokenType = "NE"           // !=
	TokenGe          TokenType = "GE"           // >=
	TokenLe          TokenType = "LE"           // <=
	TokenGt          TokenType = "GT"           // >
	TokenLt          TokenType = "LT"           // <
	TokenAssign      TokenType = "ASSIGN"       // =
	TokenPlusAssign  TokenType = "PLUS_ASSIGN"  // +=
	TokenMinusAssign TokenType = "MINUS_ASSIGN" // -=
	TokenOp          TokenType = "OP"           // + - * / %

	// Special
	TokenEOF TokenType = "EOF"
)

// Keyword lexemes. The lexer tries them in the order of Keywords.
const (
	KeywordLet    = "ይዘው"
	KeywordFunc   = "ፋንክሽን"
	KeywordReturn = "መመለስ"
	KeywordIf     = "ከሆነ"
	KeywordElse   = "ካልሆነ"
	KeywordWhile  = "በማዘጋጀት"
	KeywordFor    = "ለ"
	KeywordPrint  = "አትም"
	KeywordInput  = "ጠይቅ"

	LiteralTrue  = "እውነት"
	LiteralFalse = "ሐሰት"
)

type Keyword struct {
	Lexeme string
	Type   TokenType
}

var Keywords = []Keyword{
	{KeywordLet, TokenLet},
	{KeywordFunc, TokenFunc},
	{KeywordReturn, TokenReturn},
	{KeywordIf, TokenIf},
	{KeywordElse, TokenElse},
	{KeywordWhile, TokenWhile},
	{KeywordFor, TokenFor},
	{KeywordPrint, TokenPrint},
	{KeywordInput, TokenInput},
}

type Token struct {
	Type    TokenType
	Literal string
	Line    int
	Column  int
	Offset  int // byte offset into the normalized source
}

func (t Token) String() string {
	if t.Type == TokenEOF {
		return "EOF"
	}
	return fmt.Sprintf("%s(%s)", t.Type, t.Literal)
}

func (t Token) Pos() string {
	return fmt.Sprintf("%d:%d", t.Line, t.Column)
}

// IsBinaryOperator reports whether the token continues an operator chain
// in an expression. All of them share one precedence level.
func (t Token) IsBinaryOperator() bool {
	switch t.Type {
	case TokenOp, TokenEq, TokenNe, TokenGt, TokenLt, TokenGe, TokenLe:
		return true
	}
	return false
}

// IsAssignment reports whether the token is one of =, += or -=.
func (t Token) IsAssignment() bool {
	return t.Type == TokenAssign || t.Type == TokenPlusAssign || t.Type == TokenMinusAssign
}
