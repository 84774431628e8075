// Package parser implements the Penguin parser using Pratt parsing.
//
// Key patterns:
//   - Two-token window: curToken/peekToken advanced via nextToken()
//   - Pratt dispatch: prefixParseFns/infixParseFns keyed by token type
//   - Errors are accumulated in p.errors; a nil return from a parse
//     function means parsing halted at that construct
package parser

import (
	"fmt"

	"github.com/Ant-Tonmay/penguine/internal/ast"
	"github.com/Ant-Tonmay/penguine/internal/lexer"
)

// Precedence levels for operators (lowest to highest).
const (
	_ int = iota
	LOWEST
	LOGIC_OR    // ||
	LOGIC_AND   // &&
	BIT_OR      // |
	BIT_XOR     // ^
	BIT_AND     // &
	EQUALS      // == !=
	LESSGREATER // < <= > >=
	SHIFT       // << >>
	SUM         // + -
	PRODUCT     // * / %
	PREFIX      // -x, !x
	POSTFIX     // function(args), array[index], obj.member
)

// precedences maps token types to their precedence levels.
var precedences = map[lexer.TokenType]int{
	lexer.PIPE_PIPE:       LOGIC_OR,
	lexer.AMP_AMP:         LOGIC_AND,
	lexer.PIPE:            BIT_OR,
	lexer.CARET:           BIT_XOR,
	lexer.AMP:             BIT_AND,
	lexer.EQ_EQ:           EQUALS,
	lexer.NOT_EQ:          EQUALS,
	lexer.LESS:            LESSGREATER,
	lexer.LESS_EQ:         LESSGREATER,
	lexer.GREATER:         LESSGREATER,
	lexer.GREATER_EQ:      LESSGREATER,
	lexer.LESS_LESS:       SHIFT,
	lexer.GREATER_GREATER: SHIFT,
	lexer.PLUS:            SUM,
	lexer.MINUS:           SUM,
	lexer.ASTERISK:        PRODUCT,
	lexer.SLASH:           PRODUCT,
	lexer.PERCENT:         PRODUCT,
	lexer.LPAREN:          POSTFIX,
	lexer.LBRACK:          POSTFIX,
	lexer.DOT:             POSTFIX,
	// Note: Assignment operators (=, +=, -=, ...) are NOT in this table
	// because they are statement-level operators, not expression operators.
	// They are handled in parseAssignmentTail() in statements.go.
}

// prefixParseFn parses prefix expressions (literals, unary ops, grouping).
type prefixParseFn func() ast.Expression

// infixParseFn parses infix expressions (binary ops, calls, index, member).
type infixParseFn func(ast.Expression) ast.Expression

// Parser represents the Penguin parser.
type Parser struct {
	l              *lexer.Lexer
	prefixParseFns map[lexer.TokenType]prefixParseFn
	infixParseFns  map[lexer.TokenType]infixParseFn
	errors         []*ParserError

	curToken  lexer.Token
	peekToken lexer.Token
}

// New creates a new Parser reading tokens from the given lexer.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}

	p.prefixParseFns = make(map[lexer.TokenType]prefixParseFn)
	p.registerPrefix(lexer.IDENT, p.parseIdentifier)
	p.registerPrefix(lexer.NUMBER, p.parseNumberLiteral)
	p.registerPrefix(lexer.STRING, p.parseStringLiteral)
	p.registerPrefix(lexer.KEYWORD, p.parseKeywordExpression)
	p.registerPrefix(lexer.EXCLAMATION, p.parseUnaryExpression)
	p.registerPrefix(lexer.MINUS, p.parseUnaryExpression)
	p.registerPrefix(lexer.LPAREN, p.parseGroupedExpression)
	p.registerPrefix(lexer.LBRACK, p.parseArrayLiteral)

	p.infixParseFns = make(map[lexer.TokenType]infixParseFn)
	for _, tt := range []lexer.TokenType{
		lexer.PIPE_PIPE, lexer.AMP_AMP,
		lexer.PIPE, lexer.CARET, lexer.AMP,
		lexer.EQ_EQ, lexer.NOT_EQ,
		lexer.LESS, lexer.LESS_EQ, lexer.GREATER, lexer.GREATER_EQ,
		lexer.LESS_LESS, lexer.GREATER_GREATER,
		lexer.PLUS, lexer.MINUS,
		lexer.ASTERISK, lexer.SLASH, lexer.PERCENT,
	} {
		p.registerInfix(tt, p.parseBinaryExpression)
	}
	p.registerInfix(lexer.LPAREN, p.parseCallExpression)
	p.registerInfix(lexer.LBRACK, p.parseIndexExpression)
	p.registerInfix(lexer.DOT, p.parseMemberExpression)

	// Read two tokens so curToken and peekToken are both set
	p.nextToken()
	p.nextToken()

	return p
}

// Errors returns the list of parsing errors.
func (p *Parser) Errors() []*ParserError {
	return p.errors
}

// LexerErrors returns all lexer errors accumulated during tokenization.
// This should be checked in addition to parser errors for complete
// error reporting.
func (p *Parser) LexerErrors() []lexer.LexerError {
	return p.l.Errors()
}

// nextToken advances the two-token window.
func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

// curTokenIs checks if the current token is of the given type.
func (p *Parser) curTokenIs(t lexer.TokenType) bool {
	return p.curToken.Type == t
}

// peekTokenIs checks if the peek token is of the given type.
func (p *Parser) peekTokenIs(t lexer.TokenType) bool {
	return p.peekToken.Type == t
}

// curKeywordIs checks if the current token is the given reserved word.
func (p *Parser) curKeywordIs(word string) bool {
	return p.curToken.Type == lexer.KEYWORD && p.curToken.Literal == word
}

// peekKeywordIs checks if the peek token is the given reserved word.
func (p *Parser) peekKeywordIs(word string) bool {
	return p.peekToken.Type == lexer.KEYWORD && p.peekToken.Literal == word
}

// expectPeek advances if the peek token matches, otherwise adds an error
// and returns false.
func (p *Parser) expectPeek(t lexer.TokenType) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.peekError(t)
	return false
}

// peekError adds an error about an unexpected peek token.
func (p *Parser) peekError(t lexer.TokenType) {
	msg := fmt.Sprintf("expected next token to be %s, got %s instead",
		t, describeToken(p.peekToken))
	p.errors = append(p.errors, NewParserError(p.peekToken.Pos, p.peekToken.Length(), msg))
}

// addError adds a generic error message anchored at the current token.
func (p *Parser) addError(msg string) {
	p.errors = append(p.errors, NewParserError(p.curToken.Pos, p.curToken.Length(), msg))
}

// noPrefixParseFnError adds an error for a token that cannot start an expression.
func (p *Parser) noPrefixParseFnError(tok lexer.Token) {
	msg := fmt.Sprintf("unexpected token %s in expression", describeToken(tok))
	p.errors = append(p.errors, NewParserError(tok.Pos, tok.Length(), msg))
}

// registerPrefix registers a prefix parse function for a token type.
func (p *Parser) registerPrefix(tokenType lexer.TokenType, fn prefixParseFn) {
	p.prefixParseFns[tokenType] = fn
}

// registerInfix registers an infix parse function for a token type.
func (p *Parser) registerInfix(tokenType lexer.TokenType, fn infixParseFn) {
	p.infixParseFns[tokenType] = fn
}

// peekPrecedence returns the precedence of the peek token (LOWEST if none).
func (p *Parser) peekPrecedence() int {
	if prec, ok := precedences[p.peekToken.Type]; ok {
		return prec
	}
	return LOWEST
}

// curPrecedence returns the precedence of the current token (LOWEST if none).
func (p *Parser) curPrecedence() int {
	if prec, ok := precedences[p.curToken.Type]; ok {
		return prec
	}
	return LOWEST
}

// describeToken renders a token for error messages: the lexeme when there
// is one, the type name otherwise.
func describeToken(tok lexer.Token) string {
	switch tok.Type {
	case lexer.EOF:
		return "end of input"
	case lexer.STRING:
		return fmt.Sprintf("%q", tok.Literal)
	default:
		if tok.Literal != "" {
			return fmt.Sprintf("'%s'", tok.Literal)
		}
		return tok.Type.String()
	}
}

// ParserError represents an error encountered during parsing, carrying
// the offending lexeme's position and span.
type ParserError struct {
	Message string
	Pos     lexer.Position
	Length  int
}

// NewParserError creates a new ParserError.
func NewParserError(pos lexer.Position, length int, message string) *ParserError {
	return &ParserError{Message: message, Pos: pos, Length: length}
}

func (e *ParserError) Error() string {
	return fmt.Sprintf("%s at %d:%d", e.Message, e.Pos.Line, e.Pos.Column)
}
