package ast

import (
	"bytes"
	"strings"

	"github.com/Ant-Tonmay/penguine/internal/lexer"
)

// Param is a function parameter: a name plus the by-reference flag.
// Reference parameters are declared as `ref: name`; they share the
// caller's array handle instead of receiving a deep copy.
type Param struct {
	Name  string
	IsRef bool
}

func (p Param) String() string {
	if p.IsRef {
		return "ref: " + p.Name
	}
	return p.Name
}

// FunctionDecl represents a function definition.
type FunctionDecl struct {
	Token  lexer.Token // The 'func' token
	Name   string
	Params []Param
	Body   *BlockStatement
}

func (fd *FunctionDecl) TokenLiteral() string { return fd.Token.Literal }
func (fd *FunctionDecl) Pos() lexer.Position  { return fd.Token.Pos }
func (fd *FunctionDecl) String() string {
	var out bytes.Buffer

	params := make([]string, 0, len(fd.Params))
	for _, p := range fd.Params {
		params = append(params, p.String())
	}

	out.WriteString("func ")
	out.WriteString(fd.Name)
	out.WriteString("(")
	out.WriteString(strings.Join(params, ", "))
	out.WriteString(") ")
	out.WriteString(fd.Body.String())

	return out.String()
}

// Program is the root node of the AST: the ordered list of function
// definitions inside the required outer { ... } framing.
type Program struct {
	Functions []*FunctionDecl
}

func (p *Program) TokenLiteral() string {
	if len(p.Functions) > 0 {
		return p.Functions[0].TokenLiteral()
	}
	return ""
}

func (p *Program) Pos() lexer.Position {
	if len(p.Functions) > 0 {
		return p.Functions[0].Pos()
	}
	return lexer.Position{Line: 1, Column: 1, Offset: 0}
}

func (p *Program) String() string {
	var out bytes.Buffer

	out.WriteString("{ ")
	for _, fn := range p.Functions {
		out.WriteString(fn.String())
		out.WriteString(" ")
	}
	out.WriteString("}")

	return out.String()
}
