package ast

import (
	"bytes"
	"strings"

	"github.com/Ant-Tonmay/penguine/internal/lexer"
)

// ExpressionStatement represents a statement that consists of a single
// expression followed by a semicolon.
type ExpressionStatement struct {
	Token      lexer.Token // The first token of the expression
	Expression Expression
}

func (es *ExpressionStatement) statementNode()       {}
func (es *ExpressionStatement) TokenLiteral() string { return es.Token.Literal }
func (es *ExpressionStatement) Pos() lexer.Position  { return es.Token.Pos }
func (es *ExpressionStatement) String() string {
	if es.Expression != nil {
		return es.Expression.String() + ";"
	}
	return ""
}

// BlockStatement represents a { ... } block introducing a new scope.
type BlockStatement struct {
	Token      lexer.Token // The '{' token
	Statements []Statement
}

func (bs *BlockStatement) statementNode()       {}
func (bs *BlockStatement) TokenLiteral() string { return bs.Token.Literal }
func (bs *BlockStatement) Pos() lexer.Position  { return bs.Token.Pos }
func (bs *BlockStatement) String() string {
	var out bytes.Buffer

	out.WriteString("{ ")
	for _, stmt := range bs.Statements {
		out.WriteString(stmt.String())
		out.WriteString(" ")
	}
	out.WriteString("}")

	return out.String()
}

// PrintStatement represents the print statement: print(expr);
// It renders the value without a trailing newline, applying string
// interpolation to string values.
type PrintStatement struct {
	Token lexer.Token // The 'print' token
	Value Expression
}

func (ps *PrintStatement) statementNode()       {}
func (ps *PrintStatement) TokenLiteral() string { return ps.Token.Literal }
func (ps *PrintStatement) Pos() lexer.Position  { return ps.Token.Pos }
func (ps *PrintStatement) String() string {
	return "print(" + ps.Value.String() + ");"
}

// PrintlnStatement represents the println statement: println(expr);
// Identical to print but appends a newline.
type PrintlnStatement struct {
	Token lexer.Token // The 'println' token
	Value Expression
}

func (ps *PrintlnStatement) statementNode()       {}
func (ps *PrintlnStatement) TokenLiteral() string { return ps.Token.Literal }
func (ps *PrintlnStatement) Pos() lexer.Position  { return ps.Token.Pos }
func (ps *PrintlnStatement) String() string {
	return "println(" + ps.Value.String() + ");"
}

// Assignment is a single target/operator/value triple inside an
// assignment statement. The operator is the plain `=` or one of the
// compound forms.
type Assignment struct {
	Target   Expression      // Identifier or IndexExpression
	Operator lexer.TokenType // EQ or a compound assignment operator
	OpToken  lexer.Token     // The operator token (for diagnostics)
	Value    Expression
}

func (a Assignment) String() string {
	return a.Target.String() + " " + a.OpToken.Literal + " " + a.Value.String()
}

// AssignmentStatement represents one or more comma-separated assignments:
// x = 1, y += 2;
type AssignmentStatement struct {
	Token       lexer.Token // The first token of the first target
	Assignments []Assignment
}

func (as *AssignmentStatement) statementNode()       {}
func (as *AssignmentStatement) TokenLiteral() string { return as.Token.Literal }
func (as *AssignmentStatement) Pos() lexer.Position  { return as.Token.Pos }
func (as *AssignmentStatement) String() string {
	parts := make([]string, 0, len(as.Assignments))
	for _, a := range as.Assignments {
		parts = append(parts, a.String())
	}
	return strings.Join(parts, ", ") + ";"
}

// IfStatement represents an if statement with an optional else branch.
// The else branch is either a BlockStatement or another IfStatement.
type IfStatement struct {
	Token     lexer.Token // The 'if' token
	Condition Expression
	Then      *BlockStatement
	Else      Statement // nil, *BlockStatement, or *IfStatement
}

func (is *IfStatement) statementNode()       {}
func (is *IfStatement) TokenLiteral() string { return is.Token.Literal }
func (is *IfStatement) Pos() lexer.Position  { return is.Token.Pos }
func (is *IfStatement) String() string {
	var out bytes.Buffer

	out.WriteString("if (")
	out.WriteString(is.Condition.String())
	out.WriteString(") ")
	out.WriteString(is.Then.String())
	if is.Else != nil {
		out.WriteString(" else ")
		out.WriteString(is.Else.String())
	}

	return out.String()
}

// ForStatement represents a C-style for loop. Init, Condition, and
// Increment are each optional; a missing condition is always true.
type ForStatement struct {
	Token     lexer.Token // The 'for' token
	Init      *AssignmentStatement
	Condition Expression
	Increment *AssignmentStatement
	Body      *BlockStatement
}

func (fs *ForStatement) statementNode()       {}
func (fs *ForStatement) TokenLiteral() string { return fs.Token.Literal }
func (fs *ForStatement) Pos() lexer.Position  { return fs.Token.Pos }
func (fs *ForStatement) String() string {
	var out bytes.Buffer

	out.WriteString("for (")
	if fs.Init != nil {
		out.WriteString(strings.TrimSuffix(fs.Init.String(), ";"))
	}
	out.WriteString("; ")
	if fs.Condition != nil {
		out.WriteString(fs.Condition.String())
	}
	out.WriteString("; ")
	if fs.Increment != nil {
		out.WriteString(strings.TrimSuffix(fs.Increment.String(), ";"))
	}
	out.WriteString(") ")
	out.WriteString(fs.Body.String())

	return out.String()
}

// WhileStatement represents a while loop.
type WhileStatement struct {
	Token     lexer.Token // The 'while' token
	Condition Expression
	Body      *BlockStatement
}

func (ws *WhileStatement) statementNode()       {}
func (ws *WhileStatement) TokenLiteral() string { return ws.Token.Literal }
func (ws *WhileStatement) Pos() lexer.Position  { return ws.Token.Pos }
func (ws *WhileStatement) String() string {
	var out bytes.Buffer

	out.WriteString("while (")
	out.WriteString(ws.Condition.String())
	out.WriteString(") ")
	out.WriteString(ws.Body.String())

	return out.String()
}

// ReturnStatement represents a return statement with an optional value.
type ReturnStatement struct {
	Token lexer.Token // The 'return' token
	Value Expression  // nil when no value is returned
}

func (rs *ReturnStatement) statementNode()       {}
func (rs *ReturnStatement) TokenLiteral() string { return rs.Token.Literal }
func (rs *ReturnStatement) Pos() lexer.Position  { return rs.Token.Pos }
func (rs *ReturnStatement) String() string {
	if rs.Value != nil {
		return "return " + rs.Value.String() + ";"
	}
	return "return;"
}

// BreakStatement represents a break statement.
type BreakStatement struct {
	Token lexer.Token // The 'break' token
}

func (bs *BreakStatement) statementNode()       {}
func (bs *BreakStatement) TokenLiteral() string { return bs.Token.Literal }
func (bs *BreakStatement) Pos() lexer.Position  { return bs.Token.Pos }
func (bs *BreakStatement) String() string       { return "break;" }

// ContinueStatement represents a continue statement.
type ContinueStatement struct {
	Token lexer.Token // The 'continue' token
}

func (cs *ContinueStatement) statementNode()       {}
func (cs *ContinueStatement) TokenLiteral() string { return cs.Token.Literal }
func (cs *ContinueStatement) Pos() lexer.Position  { return cs.Token.Pos }
func (cs *ContinueStatement) String() string       { return "continue;" }
