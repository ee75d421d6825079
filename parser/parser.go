package parser

import (
	"fmt"
)

// TraceListener receives rule-level events while the parser runs
type TraceListener interface {
	EnterRule(rule string, lt Token)
	ConsumeToken(tok Token, rule string)
	ExitRule(rule string, lt Token)
}

// Parser parses LittleCalc source into a Program. One Parser can be
// reused for many inputs with Reset.
type Parser struct {
	lexer  *Lexer
	tokens *TokenStream
	pos    int // index of the current default-channel token
	errors SyntaxErrors
	trace  TraceListener
	rules  []string
}

// NewParser creates a new Parser instance
func NewParser(input string) *Parser {
	p := &Parser{}
	p.Reset(input)
	return p
}

// Reset points the parser at new input. The lexer's token hook and the
// trace listener survive the reset.
func (p *Parser) Reset(input string) {
	var hook func(Token)
	if p.lexer != nil {
		hook = p.lexer.hook
	}
	p.lexer = NewLexer(input)
	p.lexer.hook = hook
	p.lexer.report = p.addError
	p.tokens = NewTokenStream(p.lexer)
	p.pos = 0
	p.errors = nil
	p.rules = nil
}

// Lexer returns the lexer feeding the parser
func (p *Parser) Lexer() *Lexer {
	return p.lexer
}

// Tokens returns the token stream of the current input
func (p *Parser) Tokens() *TokenStream {
	return p.tokens
}

// SetTrace installs a listener for rule events; nil turns tracing off
func (p *Parser) SetTrace(l TraceListener) {
	p.trace = l
}

// NumberOfSyntaxErrors returns the count of errors from the last parse
func (p *Parser) NumberOfSyntaxErrors() int {
	return len(p.errors)
}

// Errors returns the syntax errors from the last parse
func (p *Parser) Errors() SyntaxErrors {
	return p.errors
}

func (p *Parser) addError(err *SyntaxError) {
	p.errors = append(p.errors, err)
}

func (p *Parser) errorf(tok Token, format string, args ...interface{}) *SyntaxError {
	return &SyntaxError{
		Pos:   tok.Position,
		Msg:   fmt.Sprintf(format, args...),
		AtEOF: tok.Type == TOKEN_EOF,
	}
}

// nextDefault returns the index of the first default-channel token at or
// after i
func (p *Parser) nextDefault(i int) int {
	for {
		tok := p.tokens.Get(i)
		if !tok.Hidden() || tok.Type == TOKEN_EOF {
			return tok.Index
		}
		i++
	}
}

func (p *Parser) cur() Token {
	return p.tokens.Get(p.pos)
}

// peek returns the default-channel token after the current one
func (p *Parser) peek() Token {
	if p.cur().Type == TOKEN_EOF {
		return p.cur()
	}
	return p.tokens.Get(p.nextDefault(p.pos + 1))
}

// consume returns the current token and advances past it
func (p *Parser) consume() Token {
	tok := p.cur()
	if p.trace != nil {
		p.trace.ConsumeToken(tok, p.rule())
	}
	if tok.Type != TOKEN_EOF {
		p.pos = p.nextDefault(p.pos + 1)
	}
	return tok
}

// match consumes a token of type t or fails
func (p *Parser) match(t TokenType) (Token, error) {
	tok := p.cur()
	if tok.Type != t {
		return tok, p.errorf(tok, "mismatched input '%s' expecting %s", tok.displayText(), t.DisplayName())
	}
	return p.consume(), nil
}

func (p *Parser) rule() string {
	if len(p.rules) == 0 {
		return ""
	}
	return p.rules[len(p.rules)-1]
}

func (p *Parser) enter(rule string) {
	p.rules = append(p.rules, rule)
	if p.trace != nil {
		p.trace.EnterRule(rule, p.cur())
	}
}

func (p *Parser) exit(rule string) {
	if p.trace != nil {
		p.trace.ExitRule(rule, p.cur())
	}
	p.rules = p.rules[:len(p.rules)-1]
}

// token returns the token at index i of the current stream
func (p *Parser) token(i int) Token {
	return p.tokens.Get(i)
}

// lastToken returns the final token of n
func (p *Parser) lastToken(n Node) Token {
	_, last := n.Interval()
	return p.token(last)
}

// firstToken returns the first token of n
func (p *Parser) firstToken(n Node) Token {
	first, _ := n.Interval()
	return p.token(first)
}
