package parser

import "strings"

// TokenStream buffers the tokens of one source text, hidden ones included.
// Tokens are pulled from the lexer on demand, so token hooks fire in step
// with parsing.
type TokenStream struct {
	lexer  *Lexer
	tokens []Token
	done   bool
}

// NewTokenStream creates a stream reading from l
func NewTokenStream(l *Lexer) *TokenStream {
	return &TokenStream{lexer: l}
}

func (ts *TokenStream) fill(i int) {
	for !ts.done && len(ts.tokens) <= i {
		tok := ts.lexer.NextToken()
		ts.tokens = append(ts.tokens, tok)
		if tok.Type == TOKEN_EOF {
			ts.done = true
		}
	}
}

// Get returns token i. Indexes past the end return the EOF token.
func (ts *TokenStream) Get(i int) Token {
	ts.fill(i)
	if i >= len(ts.tokens) {
		return ts.tokens[len(ts.tokens)-1]
	}
	return ts.tokens[i]
}

// Fill lexes the rest of the input
func (ts *TokenStream) Fill() {
	for !ts.done {
		ts.fill(len(ts.tokens))
	}
}

// Size returns the number of tokens lexed so far
func (ts *TokenStream) Size() int {
	return len(ts.tokens)
}

// Range returns tokens start through stop inclusive
func (ts *TokenStream) Range(start, stop int) []Token {
	if start < 0 {
		start = 0
	}
	ts.fill(stop)
	if stop >= len(ts.tokens) {
		stop = len(ts.tokens) - 1
	}
	if start > stop {
		return nil
	}
	return ts.tokens[start : stop+1]
}

// Text returns the source text of tokens start through stop inclusive,
// hidden tokens included.
func (ts *TokenStream) Text(start, stop int) string {
	var sb strings.Builder
	for _, tok := range ts.Range(start, stop) {
		if tok.Type != TOKEN_EOF {
			sb.WriteString(tok.Value)
		}
	}
	return sb.String()
}

// NodeText returns the text of n's tokens with hidden tokens left out,
// so "( 1 + 2 )" becomes "(1+2)".
func (ts *TokenStream) NodeText(n Node) string {
	var sb strings.Builder
	first, last := n.Interval()
	for _, tok := range ts.Range(first, last) {
		if !tok.Hidden() && tok.Type != TOKEN_EOF {
			sb.WriteString(tok.Value)
		}
	}
	return sb.String()
}
