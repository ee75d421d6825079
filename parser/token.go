package parser

import (
	"fmt"
	"strings"

	"littlecalc/types"
)

// TokenType represents different types of lexical tokens
type TokenType int

const (
	// Special tokens
	TOKEN_EOF TokenType = iota
	TOKEN_WS
	TOKEN_COMMENT

	// Literals
	TOKEN_NUMBER // 42, 1_000.5
	TOKEN_STRING // "hello", 'hello'
	TOKEN_TRUE
	TOKEN_FALSE

	// Identifiers
	TOKEN_IDENTIFIER

	// Keywords
	TOKEN_PRINT
	TOKEN_VARS
	TOKEN_TREE
	TOKEN_TOKENS
	TOKEN_GUI
	TOKEN_REFACTOR

	// Operators
	TOKEN_PLUS  // +
	TOKEN_MINUS // -
	TOKEN_STAR  // *
	TOKEN_SLASH // /
	TOKEN_CARET // ^

	TOKEN_EQ // ==
	TOKEN_NE // !=
	TOKEN_LT // <
	TOKEN_GT // >
	TOKEN_LE // <=
	TOKEN_GE // >=

	TOKEN_AND // &&
	TOKEN_OR  // ||
	TOKEN_NOT // !

	TOKEN_ASSIGN   // =
	TOKEN_QUESTION // ?
	TOKEN_COLON    // :

	// Delimiters
	TOKEN_LPAREN // (
	TOKEN_RPAREN // )
	TOKEN_LBRACE // {
	TOKEN_RBRACE // }
)

var tokenNames = map[TokenType]string{
	TOKEN_EOF:        "EOF",
	TOKEN_WS:         "WS",
	TOKEN_COMMENT:    "COMMENT",
	TOKEN_NUMBER:     "NUMBER",
	TOKEN_STRING:     "STRING",
	TOKEN_TRUE:       "TRUE",
	TOKEN_FALSE:      "FALSE",
	TOKEN_IDENTIFIER: "ID",
	TOKEN_PRINT:      "PRINT",
	TOKEN_VARS:       "VARS",
	TOKEN_TREE:       "TREE",
	TOKEN_TOKENS:     "TOKENS",
	TOKEN_GUI:        "GUI",
	TOKEN_REFACTOR:   "REFACTOR",
	TOKEN_PLUS:       "ADD",
	TOKEN_MINUS:      "SUB",
	TOKEN_STAR:       "MUL",
	TOKEN_SLASH:      "DIV",
	TOKEN_CARET:      "EXP",
	TOKEN_EQ:         "EQ",
	TOKEN_NE:         "NE",
	TOKEN_LT:         "LT",
	TOKEN_GT:         "GT",
	TOKEN_LE:         "LE",
	TOKEN_GE:         "GE",
	TOKEN_AND:        "AND",
	TOKEN_OR:         "OR",
	TOKEN_NOT:        "NOT",
	TOKEN_ASSIGN:     "ASSIGN",
	TOKEN_QUESTION:   "QUESTION",
	TOKEN_COLON:      "COLON",
	TOKEN_LPAREN:     "O_PAREN",
	TOKEN_RPAREN:     "C_PAREN",
	TOKEN_LBRACE:     "O_CURLY",
	TOKEN_RBRACE:     "C_CURLY",
}

// literalNames holds the fixed source text of tokens that have one
var literalNames = map[TokenType]string{
	TOKEN_TRUE:     "true",
	TOKEN_FALSE:    "false",
	TOKEN_VARS:     "vars",
	TOKEN_TREE:     "tree",
	TOKEN_TOKENS:   "tokens",
	TOKEN_GUI:      "gui",
	TOKEN_REFACTOR: "refactor",
	TOKEN_PLUS:     "+",
	TOKEN_MINUS:    "-",
	TOKEN_STAR:     "*",
	TOKEN_SLASH:    "/",
	TOKEN_CARET:    "^",
	TOKEN_EQ:       "==",
	TOKEN_NE:       "!=",
	TOKEN_LT:       "<",
	TOKEN_GT:       ">",
	TOKEN_LE:       "<=",
	TOKEN_GE:       ">=",
	TOKEN_AND:      "&&",
	TOKEN_OR:       "||",
	TOKEN_NOT:      "!",
	TOKEN_ASSIGN:   "=",
	TOKEN_QUESTION: "?",
	TOKEN_COLON:    ":",
	TOKEN_LPAREN:   "(",
	TOKEN_RPAREN:   ")",
	TOKEN_LBRACE:   "{",
	TOKEN_RBRACE:   "}",
}

// String returns the symbolic name of the token type
func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TOKEN(%d)", int(t))
}

// DisplayName returns the quoted literal for fixed tokens ('=') and the
// symbolic name otherwise (ID).
func (t TokenType) DisplayName() string {
	if lit, ok := literalNames[t]; ok {
		return "'" + lit + "'"
	}
	return t.String()
}

// Channels. Whitespace and comments are kept in the stream on the hidden
// channel so that source text can be rebuilt from tokens.
const (
	DefaultChannel = 0
	HiddenChannel  = 1
)

// Position represents a location in source code
type Position struct {
	Line   int // 1-based
	Column int // 0-based
	Offset int // byte offset into the source
}

// Pos converts the position for use in values and diagnostics
func (p Position) Pos() types.Pos {
	return types.Pos{Line: p.Line, Column: p.Column}
}

// Token represents a lexical token
type Token struct {
	Type     TokenType
	Value    string // source text
	Literal  string // decoded content for strings
	Position Position
	Index    int // position in the token stream
	Channel  int
}

// Stop returns the offset of the token's last byte
func (t Token) Stop() int {
	return t.Position.Offset + len(t.Value) - 1
}

// Hidden reports whether the token is off the parser's channel
func (t Token) Hidden() bool {
	return t.Channel != DefaultChannel
}

// String renders the token as [@index,start:stop='text',<TYPE>,line:col]
func (t Token) String() string {
	text := t.Value
	if t.Type == TOKEN_EOF {
		text = "<EOF>"
	}
	text = strings.NewReplacer("\n", "\\n", "\r", "\\r", "\t", "\\t").Replace(text)
	channel := ""
	if t.Channel != DefaultChannel {
		channel = fmt.Sprintf("channel=%d,", t.Channel)
	}
	return fmt.Sprintf("[@%d,%d:%d='%s',<%s>,%s%d:%d]",
		t.Index, t.Position.Offset, t.Stop(), text, t.Type, channel,
		t.Position.Line, t.Position.Column)
}

// displayText is how error messages quote a token
func (t Token) displayText() string {
	if t.Type == TOKEN_EOF {
		return "<EOF>"
	}
	return strings.NewReplacer("\n", "\\n", "\r", "\\r", "\t", "\\t").Replace(t.Value)
}

var keywords = map[string]TokenType{
	"true":     TOKEN_TRUE,
	"false":    TOKEN_FALSE,
	"vars":     TOKEN_VARS,
	"tree":     TOKEN_TREE,
	"tokens":   TOKEN_TOKENS,
	"gui":      TOKEN_GUI,
	"refactor": TOKEN_REFACTOR,
}

// LookupKeyword returns the keyword token type for ident, or
// TOKEN_IDENTIFIER. "print" is matched without regard to case.
func LookupKeyword(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	if strings.EqualFold(ident, "print") {
		return TOKEN_PRINT
	}
	return TOKEN_IDENTIFIER
}
