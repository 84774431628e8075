package parser

import (
	"github.com/Ant-Tonmay/penguine/internal/ast"
	"github.com/Ant-Tonmay/penguine/internal/lexer"
)

// parseStatement dispatches on the current token to the statement parsers.
// Every statement parser leaves the current token on the statement's final
// token (the semicolon or the closing brace).
//
// print and println are plain identifiers recognized by lexeme; if, while,
// for, return, break, and continue are reserved words. Assignment and
// expression statements are the fallback.
func (p *Parser) parseStatement() ast.Statement {
	switch {
	case p.curTokenIs(lexer.LBRACE):
		if block := p.parseBlockStatement(); block != nil {
			return block
		}
		return nil

	case p.curKeywordIs("if"):
		if stmt := p.parseIfStatement(); stmt != nil {
			return stmt
		}
		return nil

	case p.curKeywordIs("while"):
		if stmt := p.parseWhileStatement(); stmt != nil {
			return stmt
		}
		return nil

	case p.curKeywordIs("for"):
		if stmt := p.parseForStatement(); stmt != nil {
			return stmt
		}
		return nil

	case p.curKeywordIs("return"):
		if stmt := p.parseReturnStatement(); stmt != nil {
			return stmt
		}
		return nil

	case p.curKeywordIs("break"):
		stmt := &ast.BreakStatement{Token: p.curToken}
		if !p.expectPeek(lexer.SEMICOLON) {
			return nil
		}
		return stmt

	case p.curKeywordIs("continue"):
		stmt := &ast.ContinueStatement{Token: p.curToken}
		if !p.expectPeek(lexer.SEMICOLON) {
			return nil
		}
		return stmt

	case p.curTokenIs(lexer.IDENT) && p.curToken.Literal == "print" && p.peekTokenIs(lexer.LPAREN):
		if stmt := p.parsePrintStatement(); stmt != nil {
			return stmt
		}
		return nil

	case p.curTokenIs(lexer.IDENT) && p.curToken.Literal == "println" && p.peekTokenIs(lexer.LPAREN):
		if stmt := p.parsePrintlnStatement(); stmt != nil {
			return stmt
		}
		return nil

	default:
		return p.parseAssignmentOrExpressionStatement()
	}
}

// parseBlockStatement parses a { ... } block. The current token is '{' on
// entry and '}' on exit.
func (p *Parser) parseBlockStatement() *ast.BlockStatement {
	block := &ast.BlockStatement{Token: p.curToken}

	p.nextToken()
	for !p.curTokenIs(lexer.RBRACE) && !p.curTokenIs(lexer.EOF) {
		stmt := p.parseStatement()
		if stmt == nil {
			return nil
		}
		block.Statements = append(block.Statements, stmt)
		p.nextToken()
	}

	if !p.curTokenIs(lexer.RBRACE) {
		p.addError("expected '}' to close block, got end of input")
		return nil
	}

	return block
}

// parsePrintStatement parses print(expr);
func (p *Parser) parsePrintStatement() *ast.PrintStatement {
	stmt := &ast.PrintStatement{Token: p.curToken}

	p.nextToken() // move to '('
	p.nextToken() // move to expression
	stmt.Value = p.parseExpression(LOWEST)
	if stmt.Value == nil {
		return nil
	}

	if !p.expectPeek(lexer.RPAREN) {
		return nil
	}
	if !p.expectPeek(lexer.SEMICOLON) {
		return nil
	}

	return stmt
}

// parsePrintlnStatement parses println(expr);
func (p *Parser) parsePrintlnStatement() *ast.PrintlnStatement {
	stmt := &ast.PrintlnStatement{Token: p.curToken}

	p.nextToken() // move to '('
	p.nextToken() // move to expression
	stmt.Value = p.parseExpression(LOWEST)
	if stmt.Value == nil {
		return nil
	}

	if !p.expectPeek(lexer.RPAREN) {
		return nil
	}
	if !p.expectPeek(lexer.SEMICOLON) {
		return nil
	}

	return stmt
}

// parseIfStatement parses if (cond) { ... } with an optional else branch,
// which may itself be another if.
func (p *Parser) parseIfStatement() *ast.IfStatement {
	stmt := &ast.IfStatement{Token: p.curToken}

	if !p.expectPeek(lexer.LPAREN) {
		return nil
	}
	p.nextToken()
	stmt.Condition = p.parseExpression(LOWEST)
	if stmt.Condition == nil {
		return nil
	}
	if !p.expectPeek(lexer.RPAREN) {
		return nil
	}

	if !p.expectPeek(lexer.LBRACE) {
		return nil
	}
	stmt.Then = p.parseBlockStatement()
	if stmt.Then == nil {
		return nil
	}

	if p.peekKeywordIs("else") {
		p.nextToken() // move to 'else'

		if p.peekKeywordIs("if") {
			p.nextToken()
			elseIf := p.parseIfStatement()
			if elseIf == nil {
				return nil
			}
			stmt.Else = elseIf
		} else {
			if !p.expectPeek(lexer.LBRACE) {
				return nil
			}
			elseBlock := p.parseBlockStatement()
			if elseBlock == nil {
				return nil
			}
			stmt.Else = elseBlock
		}
	}

	return stmt
}

// parseWhileStatement parses while (cond) { ... }.
func (p *Parser) parseWhileStatement() *ast.WhileStatement {
	stmt := &ast.WhileStatement{Token: p.curToken}

	if !p.expectPeek(lexer.LPAREN) {
		return nil
	}
	p.nextToken()
	stmt.Condition = p.parseExpression(LOWEST)
	if stmt.Condition == nil {
		return nil
	}
	if !p.expectPeek(lexer.RPAREN) {
		return nil
	}

	if !p.expectPeek(lexer.LBRACE) {
		return nil
	}
	stmt.Body = p.parseBlockStatement()
	if stmt.Body == nil {
		return nil
	}

	return stmt
}

// parseForStatement parses for (init; cond; incr) { ... }.
// Init, condition, and increment are each optional; the semicolons are not.
func (p *Parser) parseForStatement() *ast.ForStatement {
	stmt := &ast.ForStatement{Token: p.curToken}

	if !p.expectPeek(lexer.LPAREN) {
		return nil
	}

	// Init assignment
	if p.peekTokenIs(lexer.SEMICOLON) {
		p.nextToken() // empty init; current token is ';'
	} else {
		p.nextToken()
		stmt.Init = p.parseHeaderAssignment()
		if stmt.Init == nil {
			return nil
		}
		if !p.expectPeek(lexer.SEMICOLON) {
			return nil
		}
	}

	// Condition
	if p.peekTokenIs(lexer.SEMICOLON) {
		p.nextToken() // empty condition; always true
	} else {
		p.nextToken()
		stmt.Condition = p.parseExpression(LOWEST)
		if stmt.Condition == nil {
			return nil
		}
		if !p.expectPeek(lexer.SEMICOLON) {
			return nil
		}
	}

	// Increment assignment
	if p.peekTokenIs(lexer.RPAREN) {
		p.nextToken() // empty increment; current token is ')'
	} else {
		p.nextToken()
		stmt.Increment = p.parseHeaderAssignment()
		if stmt.Increment == nil {
			return nil
		}
		if !p.expectPeek(lexer.RPAREN) {
			return nil
		}
	}

	if !p.expectPeek(lexer.LBRACE) {
		return nil
	}
	stmt.Body = p.parseBlockStatement()
	if stmt.Body == nil {
		return nil
	}

	return stmt
}

// parseReturnStatement parses return; or return expr;
func (p *Parser) parseReturnStatement() *ast.ReturnStatement {
	stmt := &ast.ReturnStatement{Token: p.curToken}

	if p.peekTokenIs(lexer.SEMICOLON) {
		p.nextToken()
		return stmt
	}

	p.nextToken()
	stmt.Value = p.parseExpression(LOWEST)
	if stmt.Value == nil {
		return nil
	}

	if !p.expectPeek(lexer.SEMICOLON) {
		return nil
	}

	return stmt
}

// parseAssignmentOrExpressionStatement parses the statement fallback: an
// expression which either stands alone or is the first target of an
// assignment chain.
func (p *Parser) parseAssignmentOrExpressionStatement() ast.Statement {
	stmtToken := p.curToken

	expr := p.parseExpression(LOWEST)
	if expr == nil {
		return nil
	}

	if p.peekToken.Type.IsAssignOp() {
		stmt := p.parseAssignmentTail(stmtToken, expr)
		if stmt == nil {
			return nil
		}
		if !p.expectPeek(lexer.SEMICOLON) {
			return nil
		}
		return stmt
	}

	stmt := &ast.ExpressionStatement{Token: stmtToken, Expression: expr}
	if !p.expectPeek(lexer.SEMICOLON) {
		return nil
	}
	return stmt
}

// parseHeaderAssignment parses an assignment chain inside a for-loop
// header, where no trailing semicolon is consumed. The current token is
// the first token of the first target on entry and the last token of the
// last value on exit.
func (p *Parser) parseHeaderAssignment() *ast.AssignmentStatement {
	stmtToken := p.curToken

	target := p.parseExpression(LOWEST)
	if target == nil {
		return nil
	}

	return p.parseAssignmentTail(stmtToken, target)
}

// parseAssignmentTail parses the remainder of an assignment chain given
// its already-parsed first target. The peek token is the first assignment
// operator on entry; the current token is the last token of the last
// value on exit.
func (p *Parser) parseAssignmentTail(stmtToken lexer.Token, firstTarget ast.Expression) *ast.AssignmentStatement {
	stmt := &ast.AssignmentStatement{Token: stmtToken}
	target := firstTarget

	for {
		if !isAssignTarget(target) {
			p.addError("invalid assignment target: " + target.String())
			return nil
		}
		if !p.peekToken.Type.IsAssignOp() {
			p.peekError(lexer.EQ)
			return nil
		}
		p.nextToken() // move to operator
		opToken := p.curToken

		p.nextToken() // move to value expression
		value := p.parseExpression(LOWEST)
		if value == nil {
			return nil
		}

		stmt.Assignments = append(stmt.Assignments, ast.Assignment{
			Target:   target,
			Operator: opToken.Type,
			OpToken:  opToken,
			Value:    value,
		})

		if !p.peekTokenIs(lexer.COMMA) {
			break
		}
		p.nextToken() // consume comma
		p.nextToken() // move to next target
		target = p.parseExpression(LOWEST)
		if target == nil {
			return nil
		}
	}

	return stmt
}

// isAssignTarget reports whether an expression is a legal assignment
// target: a variable reference or an index expression. Member assignment
// is not supported.
func isAssignTarget(expr ast.Expression) bool {
	switch expr.(type) {
	case *ast.Identifier, *ast.IndexExpression:
		return true
	}
	return false
}
