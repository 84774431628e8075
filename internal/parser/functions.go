package parser

import (
	"github.com/Ant-Tonmay/penguine/internal/ast"
	"github.com/Ant-Tonmay/penguine/internal/lexer"
)

// ParseProgram parses an entire program: the required outer { ... }
// framing enclosing zero or more function definitions.
func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{}

	if !p.curTokenIs(lexer.LBRACE) {
		p.addError("expected '{' to open program, got " + describeToken(p.curToken))
		return program
	}

	p.nextToken()
	for !p.curTokenIs(lexer.RBRACE) && !p.curTokenIs(lexer.EOF) {
		fn := p.parseFunctionDecl()
		if fn == nil {
			return program
		}
		program.Functions = append(program.Functions, fn)
		p.nextToken()
	}

	if !p.curTokenIs(lexer.RBRACE) {
		p.addError("expected '}' to close program, got end of input")
		return program
	}

	if !p.peekTokenIs(lexer.EOF) {
		p.peekError(lexer.EOF)
	}

	return program
}

// parseFunctionDecl parses a single function definition:
// func name(params) { ... }
func (p *Parser) parseFunctionDecl() *ast.FunctionDecl {
	if !p.curKeywordIs("func") {
		p.addError("expected 'func', got " + describeToken(p.curToken))
		return nil
	}
	fn := &ast.FunctionDecl{Token: p.curToken}

	if !p.expectPeek(lexer.IDENT) {
		return nil
	}
	fn.Name = p.curToken.Literal

	if !p.expectPeek(lexer.LPAREN) {
		return nil
	}
	params, ok := p.parseParams()
	if !ok {
		return nil
	}
	fn.Params = params

	if !p.expectPeek(lexer.LBRACE) {
		return nil
	}
	fn.Body = p.parseBlockStatement()
	if fn.Body == nil {
		return nil
	}

	return fn
}

// parseParams parses a function's parameter list. The current token is
// '(' on entry and ')' on exit. Each parameter is a name optionally
// preceded by the `ref:` marker.
func (p *Parser) parseParams() ([]ast.Param, bool) {
	params := []ast.Param{}

	if p.peekTokenIs(lexer.RPAREN) {
		p.nextToken()
		return params, true
	}

	for {
		p.nextToken() // move to first token of the parameter

		isRef := false
		if p.curTokenIs(lexer.IDENT) && p.curToken.Literal == "ref" && p.peekTokenIs(lexer.COLON) {
			isRef = true
			p.nextToken() // consume ':'
			p.nextToken() // move to parameter name
		}

		if !p.curTokenIs(lexer.IDENT) {
			p.addError("expected parameter name, got " + describeToken(p.curToken))
			return nil, false
		}
		params = append(params, ast.Param{Name: p.curToken.Literal, IsRef: isRef})

		if !p.peekTokenIs(lexer.COMMA) {
			break
		}
		p.nextToken() // consume comma
	}

	if !p.expectPeek(lexer.RPAREN) {
		return nil, false
	}

	return params, true
}
