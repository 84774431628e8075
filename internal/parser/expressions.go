package parser

import (
	"github.com/Ant-Tonmay/penguine/internal/ast"
	"github.com/Ant-Tonmay/penguine/internal/lexer"
)

// parseExpression parses an expression with the given minimum precedence.
// This is the heart of the Pratt parser: a prefix function produces the
// left operand, then infix functions fold in operators of higher
// precedence, left-associatively.
func (p *Parser) parseExpression(precedence int) ast.Expression {
	prefix := p.prefixParseFns[p.curToken.Type]
	if prefix == nil {
		p.noPrefixParseFnError(p.curToken)
		return nil
	}
	left := prefix()

	for left != nil && precedence < p.peekPrecedence() {
		infix := p.infixParseFns[p.peekToken.Type]
		if infix == nil {
			return left
		}
		p.nextToken()
		left = infix(left)
	}

	return left
}

// ParseExpression parses a single standalone expression and requires the
// input to be fully consumed. Used for string interpolation segments.
func (p *Parser) ParseExpression() ast.Expression {
	expr := p.parseExpression(LOWEST)
	if expr == nil {
		return nil
	}
	if !p.peekTokenIs(lexer.EOF) {
		p.peekError(lexer.EOF)
		return nil
	}
	return expr
}

// parseIdentifier parses a variable reference.
func (p *Parser) parseIdentifier() ast.Expression {
	return &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
}

// parseNumberLiteral parses a numeric literal, keeping the textual form.
func (p *Parser) parseNumberLiteral() ast.Expression {
	return &ast.NumberLiteral{Token: p.curToken, Value: p.curToken.Literal}
}

// parseStringLiteral parses a string literal.
func (p *Parser) parseStringLiteral() ast.Expression {
	return &ast.StringLiteral{Token: p.curToken, Value: p.curToken.Literal}
}

// parseKeywordExpression parses the keywords that are valid in expression
// position: the boolean literals. Any other keyword here is an error.
func (p *Parser) parseKeywordExpression() ast.Expression {
	switch p.curToken.Literal {
	case "true":
		return &ast.BooleanLiteral{Token: p.curToken, Value: true}
	case "false":
		return &ast.BooleanLiteral{Token: p.curToken, Value: false}
	default:
		p.addError("unexpected keyword '" + p.curToken.Literal + "' in expression")
		return nil
	}
}

// parseUnaryExpression parses a prefix operator (! or -) and its operand.
func (p *Parser) parseUnaryExpression() ast.Expression {
	expr := &ast.UnaryExpression{
		Token:    p.curToken,
		Operator: p.curToken.Literal,
	}

	p.nextToken()
	expr.Right = p.parseExpression(PREFIX)
	if expr.Right == nil {
		return nil
	}

	return expr
}

// parseGroupedExpression parses a parenthesized expression. The
// parentheses only affect grouping; no wrapper node is produced.
func (p *Parser) parseGroupedExpression() ast.Expression {
	p.nextToken()

	expr := p.parseExpression(LOWEST)
	if expr == nil {
		return nil
	}

	if !p.expectPeek(lexer.RPAREN) {
		return nil
	}

	return expr
}

// parseArrayLiteral parses an array literal: [e1, e2, ...].
func (p *Parser) parseArrayLiteral() ast.Expression {
	arr := &ast.ArrayLiteral{Token: p.curToken}

	elements, ok := p.parseExpressionList(lexer.RBRACK)
	if !ok {
		return nil
	}
	arr.Elements = elements

	return arr
}

// parseBinaryExpression parses an infix binary operator. Left operand has
// already been parsed; the operator is the current token.
func (p *Parser) parseBinaryExpression(left ast.Expression) ast.Expression {
	expr := &ast.BinaryExpression{
		Token:    p.curToken,
		Left:     left,
		Operator: p.curToken.Literal,
	}

	precedence := p.curPrecedence()
	p.nextToken()
	expr.Right = p.parseExpression(precedence)
	if expr.Right == nil {
		return nil
	}

	return expr
}

// parseCallExpression parses a call's argument list; the callee has
// already been parsed and the current token is '('.
func (p *Parser) parseCallExpression(callee ast.Expression) ast.Expression {
	call := &ast.CallExpression{Token: p.curToken, Callee: callee}

	args, ok := p.parseExpressionList(lexer.RPAREN)
	if !ok {
		return nil
	}
	call.Arguments = args

	return call
}

// parseIndexExpression parses an index operation; the array expression
// has already been parsed and the current token is '['.
func (p *Parser) parseIndexExpression(array ast.Expression) ast.Expression {
	expr := &ast.IndexExpression{Token: p.curToken, Array: array}

	p.nextToken()
	expr.Index = p.parseExpression(LOWEST)
	if expr.Index == nil {
		return nil
	}

	if !p.expectPeek(lexer.RBRACK) {
		return nil
	}

	return expr
}

// parseMemberExpression parses a member access; the object expression
// has already been parsed and the current token is '.'.
func (p *Parser) parseMemberExpression(object ast.Expression) ast.Expression {
	expr := &ast.MemberExpression{Token: p.curToken, Object: object}

	if !p.expectPeek(lexer.IDENT) {
		return nil
	}
	expr.Name = p.curToken.Literal

	return expr
}

// parseExpressionList parses a comma-separated expression list terminated
// by the given token type. The current token is the opening delimiter on
// entry and the terminator on exit.
func (p *Parser) parseExpressionList(end lexer.TokenType) ([]ast.Expression, bool) {
	list := []ast.Expression{}

	if p.peekTokenIs(end) {
		p.nextToken()
		return list, true
	}

	p.nextToken()
	expr := p.parseExpression(LOWEST)
	if expr == nil {
		return nil, false
	}
	list = append(list, expr)

	for p.peekTokenIs(lexer.COMMA) {
		p.nextToken() // consume comma
		p.nextToken() // move to next expression
		expr := p.parseExpression(LOWEST)
		if expr == nil {
			return nil, false
		}
		list = append(list, expr)
	}

	if !p.expectPeek(end) {
		return nil, false
	}

	return list, true
}
