package parser

import (
	"fmt"

	"github.com/arnavsurve/fidel/internal/compiler/ast"
	"github.com/arnavsurve/fidel/internal/compiler/lexer"
	"github.com/arnavsurve/fidel/internal/compiler/token"
)

// Parser is a recursive-descent parser with one token of lookahead. All binary
// operators share a single, left-associative precedence level: 1 + 2 * 3 is
// (1 + 2) * 3.
type Parser struct {
	s      *lexer.Stream
	curTok token.Token
	errors []*Error
}

func New(s *lexer.Stream) *Parser {
	p := &Parser{s: s, errors: []*Error{}}
	p.nextToken()
	return p
}

// Parse lexes and parses src into the program's root block.
func Parse(src string) (*ast.Block, error) {
	s, err := lexer.New(src).Stream()
	if err != nil {
		return nil, err
	}
	return New(s).ParseProgram()
}

// --- Token Handling ---

func (p *Parser) nextToken() {
	p.curTok = p.s.Next()
}

func (p *Parser) curTokenIs(t token.TokenType) bool {
	return p.curTok.Type == t
}

// match consumes the current token if it has type t.
func (p *Parser) match(t token.TokenType) bool {
	if p.curTok.Type != t {
		return false
	}
	p.nextToken()
	return true
}

// expect consumes and returns the current token if it has type t; otherwise
// it records an error naming t.
func (p *Parser) expect(t token.TokenType) (token.Token, bool) {
	tok := p.curTok
	if tok.Type != t {
		p.errors = append(p.errors, &Error{
			Kind:     ErrExpectedToken,
			Token:    tok,
			Expected: t,
			Msg:      fmt.Sprintf("Expected %s, got %s", t, describe(tok)),
		})
		return tok, false
	}
	p.nextToken()
	return tok, true
}

// --- Error Handling ---

func (p *Parser) addError(kind ErrorKind, tok token.Token, format string, args ...any) {
	p.errors = append(p.errors, &Error{Kind: kind, Token: tok, Msg: fmt.Sprintf(format, args...)})
}

// Errors returns every recorded syntax error. Parsing stops at the first one,
// so in practice there is at most one.
func (p *Parser) Errors() []*Error {
	return p.errors
}

// --- Program Parsing ---

func (p *Parser) ParseProgram() (*ast.Block, error) {
	program := &ast.Block{Statements: []ast.Node{}}

	for !p.curTokenIs(token.TokenEOF) {
		stmt := p.parseStatement()
		if stmt == nil {
			break
		}
		program.Statements = append(program.Statements, stmt)
	}

	if len(p.errors) > 0 {
		return nil, p.errors[0]
	}
	return program, nil
}

// --- Statements ---

func (p *Parser) parseStatement() ast.Node {
	switch p.curTok.Type {
	case token.TokenLet:
		return p.parseLetStatement()
	case token.TokenPrint:
		return p.parsePrintStatement()
	case token.TokenIf:
		return p.parseIfStatement()
	case token.TokenWhile:
		return p.parseWhileStatement()
	case token.TokenFor:
		return p.parseForStatement()
	case token.TokenFunc:
		return p.parseFunctionDefinition()
	case token.TokenReturn:
		return p.parseReturnStatement()
	default:
		return p.parseExpressionStatement()
	}
}

// parseLetStatement parses `ይዘው name = value;`
func (p *Parser) parseLetStatement() ast.Node {
	assign := p.parseLetBinding()
	if assign == nil {
		return nil
	}
	if _, ok := p.expect(token.TokenSemicolon); !ok {
		return nil
	}
	return assign
}

// parseLetBinding parses `ይዘው name = value` without the terminator; it is
// shared with the for-loop initializer.
func (p *Parser) parseLetBinding() *ast.Assign {
	letTok := p.curTok
	p.nextToken() // Consume 'ይዘው'

	name, ok := p.expect(token.TokenIdent)
	if !ok {
		return nil
	}
	if _, ok := p.expect(token.TokenAssign); !ok {
		return nil
	}
	value := p.parseAssignment()
	if value == nil {
		return nil
	}
	return &ast.Assign{Token: letTok, Name: name.Literal, Value: value}
}

func (p *Parser) parsePrintStatement() ast.Node {
	stmt := &ast.Print{Token: p.curTok}
	p.nextToken() // Consume 'አትም'

	if stmt.Value = p.parseAssignment(); stmt.Value == nil {
		return nil
	}
	if _, ok := p.expect(token.TokenSemicolon); !ok {
		return nil
	}
	return stmt
}

// parseCondition parses `( expr )` after if/while.
func (p *Parser) parseCondition() ast.Node {
	if _, ok := p.expect(token.TokenLParen); !ok {
		return nil
	}
	cond := p.parseAssignment()
	if cond == nil {
		return nil
	}
	if _, ok := p.expect(token.TokenRParen); !ok {
		return nil
	}
	return cond
}

func (p *Parser) parseIfStatement() ast.Node {
	stmt := &ast.If{Token: p.curTok}
	p.nextToken() // Consume 'ከሆነ'

	if stmt.Condition = p.parseCondition(); stmt.Condition == nil {
		return nil
	}
	if stmt.Consequence = p.parseBlock(); stmt.Consequence == nil {
		return nil
	}
	if p.match(token.TokenElse) {
		if stmt.Alternative = p.parseBlock(); stmt.Alternative == nil {
			return nil
		}
	}
	return stmt
}

func (p *Parser) parseWhileStatement() ast.Node {
	stmt := &ast.While{Token: p.curTok}
	p.nextToken() // Consume 'በማዘጋጀት'

	if stmt.Condition = p.parseCondition(); stmt.Condition == nil {
		return nil
	}
	if stmt.Body = p.parseBlock(); stmt.Body == nil {
		return nil
	}
	return stmt
}

// parseForStatement parses `ለ (init; cond; step) { ... }` where init is either
// a let binding or an ordinary expression.
func (p *Parser) parseForStatement() ast.Node {
	stmt := &ast.For{Token: p.curTok}
	p.nextToken() // Consume 'ለ'

	if _, ok := p.expect(token.TokenLParen); !ok {
		return nil
	}

	if p.curTokenIs(token.TokenLet) {
		init := p.parseLetBinding()
		if init == nil {
			return nil
		}
		stmt.Init = init
	} else if stmt.Init = p.parseAssignment(); stmt.Init == nil {
		return nil
	}
	if _, ok := p.expect(token.TokenSemicolon); !ok {
		return nil
	}

	if stmt.Condition = p.parseAssignment(); stmt.Condition == nil {
		return nil
	}
	if _, ok := p.expect(token.TokenSemicolon); !ok {
		return nil
	}

	if stmt.Step = p.parseAssignment(); stmt.Step == nil {
		return nil
	}
	if _, ok := p.expect(token.TokenRParen); !ok {
		return nil
	}

	if stmt.Body = p.parseBlock(); stmt.Body == nil {
		return nil
	}
	return stmt
}

// parseFunctionDefinition parses `ፋንክሽን name(a, b) { ... }`
func (p *Parser) parseFunctionDefinition() ast.Node {
	def := &ast.FunctionDef{Token: p.curTok, Parameters: []string{}}
	p.nextToken() // Consume 'ፋንክሽን'

	name, ok := p.expect(token.TokenIdent)
	if !ok {
		return nil
	}
	def.Name = name.Literal

	if _, ok := p.expect(token.TokenLParen); !ok {
		return nil
	}
	if p.curTokenIs(token.TokenIdent) {
		def.Parameters = append(def.Parameters, p.curTok.Literal)
		p.nextToken()
		for p.match(token.TokenComma) {
			param, ok := p.expect(token.TokenIdent)
			if !ok {
				return nil
			}
			def.Parameters = append(def.Parameters, param.Literal)
		}
	}
	if _, ok := p.expect(token.TokenRParen); !ok {
		return nil
	}

	if def.Body = p.parseBlock(); def.Body == nil {
		return nil
	}
	return def
}

func (p *Parser) parseReturnStatement() ast.Node {
	stmt := &ast.Return{Token: p.curTok}
	p.nextToken() // Consume 'መመለስ'

	if stmt.Value = p.parseAssignment(); stmt.Value == nil {
		return nil
	}
	if _, ok := p.expect(token.TokenSemicolon); !ok {
		return nil
	}
	return stmt
}

func (p *Parser) parseExpressionStatement() ast.Node {
	expr := p.parseAssignment()
	if expr == nil {
		return nil
	}
	if _, ok := p.expect(token.TokenSemicolon); !ok {
		return nil
	}
	return expr
}

func (p *Parser) parseBlock() *ast.Block {
	lbrace, ok := p.expect(token.TokenLBrace)
	if !ok {
		return nil
	}
	block := &ast.Block{Token: lbrace, Statements: []ast.Node{}}

	for !p.match(token.TokenRBrace) {
		if p.curTokenIs(token.TokenEOF) {
			p.expect(token.TokenRBrace)
			return nil
		}
		stmt := p.parseStatement()
		if stmt == nil {
			return nil
		}
		block.Statements = append(block.Statements, stmt)
	}
	return block
}
