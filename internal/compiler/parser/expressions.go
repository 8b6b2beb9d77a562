package parser

import (
	"strconv"

	"github.com/arnavsurve/fidel/internal/compiler/ast"
	"github.com/arnavsurve/fidel/internal/compiler/token"
)

// parseAssignment parses `target (= | += | -=) value`, right-associative.
// Compound forms desugar to `target = target OP value`.
func (p *Parser) parseAssignment() ast.Node {
	left := p.parseEquality()
	if left == nil {
		return nil
	}
	if !p.curTok.IsAssignment() {
		return left
	}

	opTok := p.curTok
	p.nextToken() // Consume the assignment operator

	value := p.parseAssignment()
	if value == nil {
		return nil
	}

	switch opTok.Type {
	case token.TokenPlusAssign:
		value = &ast.BinaryOp{Token: opTok, Left: left, Operator: "+", Right: value}
	case token.TokenMinusAssign:
		value = &ast.BinaryOp{Token: opTok, Left: left, Operator: "-", Right: value}
	}

	switch target := left.(type) {
	case *ast.Variable:
		return &ast.Assign{Token: opTok, Name: target.Name, Value: value}
	case *ast.Index:
		return &ast.AssignIndex{Token: opTok, Base: target.Base, Index: target.Index, Value: value}
	}

	p.addError(ErrInvalidAssignmentTarget, opTok, "Invalid assignment target %s", left.String())
	return nil
}

// parseEquality folds every binary operator left to right at one level.
func (p *Parser) parseEquality() ast.Node {
	left := p.parseTerm()
	if left == nil {
		return nil
	}

	for p.curTok.IsBinaryOperator() {
		opTok := p.curTok
		p.nextToken() // Consume operator

		right := p.parseTerm()
		if right == nil {
			return nil
		}
		left = &ast.BinaryOp{Token: opTok, Left: left, Operator: opTok.Literal, Right: right}
	}
	return left
}

func (p *Parser) parseTerm() ast.Node {
	tok := p.curTok

	switch tok.Type {
	case token.TokenNumber:
		val, err := strconv.ParseInt(tok.Literal, 10, 64)
		if err != nil {
			p.addError(ErrInvalidLiteral, tok, "Integer literal %s does not fit in 64 bits", tok.Literal)
			return nil
		}
		p.nextToken()
		return &ast.NumberLiteral{Token: tok, Value: val}

	case token.TokenString:
		p.nextToken()
		return &ast.StringLiteral{Token: tok, Value: tok.Literal}

	case token.TokenBoolean:
		p.nextToken()
		return &ast.BooleanLiteral{Token: tok, Value: tok.Literal == token.LiteralTrue}

	case token.TokenInput:
		p.nextToken() // Consume 'ጠይቅ'
		if _, ok := p.expect(token.TokenLParen); !ok {
			return nil
		}
		prompt := p.parseAssignment()
		if prompt == nil {
			return nil
		}
		if _, ok := p.expect(token.TokenRParen); !ok {
			return nil
		}
		return &ast.Input{Token: tok, Prompt: prompt}

	case token.TokenIdent:
		return p.parseIdentifier()

	case token.TokenLBracket:
		p.nextToken() // Consume '['
		elements, ok := p.parseExpressionList(token.TokenRBracket)
		if !ok {
			return nil
		}
		return &ast.ListLiteral{Token: tok, Elements: elements}

	case token.TokenLParen:
		p.nextToken() // Consume '('
		expr := p.parseAssignment()
		if expr == nil {
			return nil
		}
		if _, ok := p.expect(token.TokenRParen); !ok {
			return nil
		}
		return expr

	case token.TokenEOF:
		p.addError(ErrUnexpectedToken, tok, "Unexpected end of input")
		return nil
	}

	p.addError(ErrUnexpectedToken, tok, "Unexpected token %s", describe(tok))
	return nil
}

// parseIdentifier parses a call `name(args)` or a variable with any number of
// index suffixes `name[i][j]`.
func (p *Parser) parseIdentifier() ast.Node {
	nameTok := p.curTok
	p.nextToken() // Consume identifier

	if p.match(token.TokenLParen) {
		args, ok := p.parseExpressionList(token.TokenRParen)
		if !ok {
			return nil
		}
		return &ast.FunctionCall{Token: nameTok, Name: nameTok.Literal, Arguments: args}
	}

	var expr ast.Node = &ast.Variable{Token: nameTok, Name: nameTok.Literal}
	for p.curTokenIs(token.TokenLBracket) {
		lbracket := p.curTok
		p.nextToken() // Consume '['

		index := p.parseAssignment()
		if index == nil {
			return nil
		}
		if _, ok := p.expect(token.TokenRBracket); !ok {
			return nil
		}
		expr = &ast.Index{Token: lbracket, Base: expr, Index: index}
	}
	return expr
}

// parseExpressionList parses `a, b, c END` after the opening token has been
// consumed. An immediately closing END yields an empty list.
func (p *Parser) parseExpressionList(end token.TokenType) ([]ast.Node, bool) {
	list := []ast.Node{}
	if p.match(end) {
		return list, true
	}

	expr := p.parseAssignment()
	if expr == nil {
		return nil, false
	}
	list = append(list, expr)

	for p.match(token.TokenComma) {
		expr := p.parseAssignment()
		if expr == nil {
			return nil, false
		}
		list = append(list, expr)
	}

	if _, ok := p.expect(end); !ok {
		return nil, false
	}
	return list, true
}
