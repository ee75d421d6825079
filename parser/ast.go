package parser

import "littlecalc/types"

// Node is the base interface for all AST nodes
type Node interface {
	Position() Position
	// Interval returns the indexes of the node's first and last tokens
	Interval() (int, int)
}

// Expr represents an expression node
type Expr interface {
	Node
	exprNode()
}

// Stmt represents a statement node
type Stmt interface {
	Node
	stmtNode()
}

// Span records the first and last token of a node
type Span struct {
	First Token
	Last  Token
}

func (s Span) Position() Position   { return s.First.Position }
func (s Span) Interval() (int, int) { return s.First.Index, s.Last.Index }

// Program is the result of a parse: statements plus the token stream they
// were built from.
type Program struct {
	Span
	Stmts  []Stmt
	Tokens *TokenStream
}

// LiteralExpr is a number, string or boolean literal
type LiteralExpr struct {
	Span
	Value types.Value
}

func (e *LiteralExpr) exprNode() {}

// IdentifierExpr represents a variable reference
type IdentifierExpr struct {
	Span
	Name string
}

func (e *IdentifierExpr) exprNode() {}

// UnaryExpr is ! or unary minus
type UnaryExpr struct {
	Span
	Operator TokenType
	Operand  Expr
}

func (e *UnaryExpr) exprNode() {}

// BinaryExpr represents arithmetic, comparison, equality and logical
// operations
type BinaryExpr struct {
	Span
	Left     Expr
	Operator TokenType
	OpToken  Token
	Right    Expr
}

func (e *BinaryExpr) exprNode() {}

// TernaryExpr represents cond ? then : else
type TernaryExpr struct {
	Span
	Condition Expr
	ThenExpr  Expr
	ElseExpr  Expr
}

func (e *TernaryExpr) exprNode() {}

// ParenExpr keeps explicit parentheses so source text can be recovered
type ParenExpr struct {
	Span
	Expr Expr
}

func (e *ParenExpr) exprNode() {}

// AssignStmt represents name = expr
type AssignStmt struct {
	Span
	Name  string
	Value Expr
}

func (s *AssignStmt) stmtNode() {}

// PrintStmt represents print e1 e2 ...
type PrintStmt struct {
	Span
	Args []Expr
}

func (s *PrintStmt) stmtNode() {}

// ExprStmt is a bare expression; its value is printed
type ExprStmt struct {
	Span
	Expr Expr
}

func (s *ExprStmt) stmtNode() {}

// VarsStmt dumps the visible variables
type VarsStmt struct {
	Span
}

func (s *VarsStmt) stmtNode() {}

// MetaStmt is one of tree, tokens, gui or refactor. Its content is either
// a braced statement block (Body, between Open and Close) or another meta
// statement (Inner).
type MetaStmt struct {
	Span
	Kind  TokenType
	Open  Token
	Body  []Stmt
	Close Token
	Inner *MetaStmt
}

func (s *MetaStmt) stmtNode() {}

// Braced reports whether the content is a { ... } block
func (s *MetaStmt) Braced() bool {
	return s.Inner == nil
}

// ContentInterval returns the first and last token of the content. For a
// braced block that is everything strictly between the braces.
func (s *MetaStmt) ContentInterval() (int, int) {
	if s.Inner != nil {
		return s.Inner.Interval()
	}
	return s.Open.Index + 1, s.Close.Index - 1
}

// BodyInterval returns the first and last token of the content's
// statements, without the whitespace that surrounds them inside the
// braces. An empty block yields an empty interval (first > last).
func (s *MetaStmt) BodyInterval() (int, int) {
	if s.Inner != nil {
		return s.Inner.Interval()
	}
	if len(s.Body) == 0 {
		return s.Open.Index + 1, s.Open.Index
	}
	first, _ := s.Body[0].Interval()
	_, last := s.Body[len(s.Body)-1].Interval()
	return first, last
}
