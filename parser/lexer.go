package parser

import (
	"fmt"
)

// Lexer tokenizes LittleCalc source. Every character of the input ends up
// in exactly one token; whitespace and comments are emitted on the hidden
// channel.
type Lexer struct {
	input        string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           byte // current char under examination
	line         int
	column       int
	index        int // index of the next token

	hook   func(Token)
	report func(*SyntaxError)
	errors []*SyntaxError
}

// NewLexer creates a new Lexer instance
func NewLexer(input string) *Lexer {
	l := &Lexer{
		input: input,
		line:  1,
	}
	l.report = func(err *SyntaxError) { l.errors = append(l.errors, err) }
	l.readChar()
	return l
}

// SetTokenHook installs a function called with every token as it is
// created. Passing nil removes the hook.
func (l *Lexer) SetTokenHook(hook func(Token)) {
	l.hook = hook
}

// Errors returns token recognition errors not claimed by a parser
func (l *Lexer) Errors() []*SyntaxError {
	return l.errors
}

// readChar reads the next character and advances position
func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	} else if l.readPosition > 0 {
		l.column++
	}
	if l.readPosition >= len(l.input) {
		l.ch = 0 // ASCII NUL
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
}

// peekChar returns the next character without advancing
func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

func (l *Lexer) atEnd() bool {
	return l.position >= len(l.input)
}

func (l *Lexer) here() Position {
	return Position{Line: l.line, Column: l.column, Offset: l.position}
}

// NextToken returns the next token from the input
func (l *Lexer) NextToken() Token {
	for {
		tok, ok := l.scan()
		if !ok {
			continue
		}
		tok.Index = l.index
		l.index++
		if l.hook != nil {
			l.hook(tok)
		}
		return tok
	}
}

// scan reads one token. It returns false after skipping an unrecognized
// character.
func (l *Lexer) scan() (Token, bool) {
	start := l.here()
	tok := Token{Position: start}

	if l.atEnd() {
		tok.Type = TOKEN_EOF
		return tok, true
	}

	switch l.ch {
	case ' ', '\t', '\n', '\r':
		for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
			l.readChar()
		}
		tok.Type = TOKEN_WS
		tok.Channel = HiddenChannel
	case '"', '\'':
		return l.readString(), true
	case '(':
		tok.Type = TOKEN_LPAREN
		l.readChar()
	case ')':
		tok.Type = TOKEN_RPAREN
		l.readChar()
	case '{':
		tok.Type = TOKEN_LBRACE
		l.readChar()
	case '}':
		tok.Type = TOKEN_RBRACE
		l.readChar()
	case '+':
		tok.Type = TOKEN_PLUS
		l.readChar()
	case '-':
		tok.Type = TOKEN_MINUS
		l.readChar()
	case '*':
		tok.Type = TOKEN_STAR
		l.readChar()
	case '/':
		if l.peekChar() == '/' {
			for l.ch != '\n' && !l.atEnd() {
				l.readChar()
			}
			tok.Type = TOKEN_COMMENT
			tok.Channel = HiddenChannel
		} else {
			tok.Type = TOKEN_SLASH
			l.readChar()
		}
	case '^':
		tok.Type = TOKEN_CARET
		l.readChar()
	case '?':
		tok.Type = TOKEN_QUESTION
		l.readChar()
	case ':':
		tok.Type = TOKEN_COLON
		l.readChar()
	case '=':
		tok.Type = l.twoChar('=', TOKEN_EQ, TOKEN_ASSIGN)
	case '!':
		tok.Type = l.twoChar('=', TOKEN_NE, TOKEN_NOT)
	case '<':
		tok.Type = l.twoChar('=', TOKEN_LE, TOKEN_LT)
	case '>':
		tok.Type = l.twoChar('=', TOKEN_GE, TOKEN_GT)
	case '&':
		if l.peekChar() != '&' {
			return l.unrecognized(start), false
		}
		l.readChar()
		l.readChar()
		tok.Type = TOKEN_AND
	case '|':
		if l.peekChar() != '|' {
			return l.unrecognized(start), false
		}
		l.readChar()
		l.readChar()
		tok.Type = TOKEN_OR
	default:
		switch {
		case isDigit(l.ch) || (l.ch == '.' && isDigit(l.peekChar())):
			return l.readNumber(), true
		case isLetter(l.ch):
			for isLetter(l.ch) || isDigit(l.ch) {
				l.readChar()
			}
			tok.Value = l.input[start.Offset:l.position]
			tok.Type = LookupKeyword(tok.Value)
			return tok, true
		default:
			return l.unrecognized(start), false
		}
	}

	tok.Value = l.input[start.Offset:l.position]
	return tok, true
}

// twoChar consumes the current char, and the next one if it is second
func (l *Lexer) twoChar(second byte, double, single TokenType) TokenType {
	if l.peekChar() == second {
		l.readChar()
		l.readChar()
		return double
	}
	l.readChar()
	return single
}

func (l *Lexer) unrecognized(at Position) Token {
	l.report(&SyntaxError{
		Pos: at,
		Msg: fmt.Sprintf("token recognition error at: '%c'", l.ch),
	})
	l.readChar()
	return Token{}
}

// readNumber reads digits with optional '_' separators and fraction
func (l *Lexer) readNumber() Token {
	tok := Token{Type: TOKEN_NUMBER, Position: l.here()}
	start := l.position
	for isDigit(l.ch) || l.ch == '_' {
		l.readChar()
	}
	if l.ch == '.' && isDigit(l.peekChar()) {
		l.readChar()
		for isDigit(l.ch) || l.ch == '_' {
			l.readChar()
		}
	}
	tok.Value = l.input[start:l.position]
	return tok
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}
