package refactor

import (
	"fmt"

	"littlecalc/parser"
	"littlecalc/types"
)

// Simplify applies the simplification patterns to the statements of a
// refactor block and returns the new text of everything between its
// braces. The token stream itself is never modified.
//
// Patterns, where X is any expression:
//
//	X == true, X != false        -> X
//	X != true, X == false        -> !X
//	X + 0, 0 + X, X * 1, 1 * X   -> X
//	X * 0, 0 * X                 -> 0
func Simplify(tokens *parser.TokenStream, block *parser.MetaStmt) (string, error) {
	s := &simplifier{
		rw:      NewRewriter(tokens),
		program: fmt.Sprintf("simplify%d", block.First.Index),
	}
	for _, stmt := range block.Body {
		s.walkStmt(stmt)
	}
	first, last := block.ContentInterval()
	return s.rw.Text(s.program, first, last)
}

type simplifier struct {
	rw      *Rewriter
	program string
}

func (s *simplifier) walkStmt(stmt parser.Stmt) {
	switch st := stmt.(type) {
	case *parser.AssignStmt:
		s.walkExpr(st.Value)
	case *parser.PrintStmt:
		for _, arg := range st.Args {
			s.walkExpr(arg)
		}
	case *parser.ExprStmt:
		s.walkExpr(st.Expr)
	case *parser.MetaStmt:
		if st.Inner != nil {
			s.walkStmt(st.Inner)
		}
		for _, inner := range st.Body {
			s.walkStmt(inner)
		}
	}
}

// walkExpr visits children before parents, so edits inside an operand
// are recorded before edits that span it.
func (s *simplifier) walkExpr(expr parser.Expr) {
	switch e := expr.(type) {
	case *parser.ParenExpr:
		s.walkExpr(e.Expr)
	case *parser.UnaryExpr:
		s.walkExpr(e.Operand)
	case *parser.TernaryExpr:
		s.walkExpr(e.Condition)
		s.walkExpr(e.ThenExpr)
		s.walkExpr(e.ElseExpr)
	case *parser.BinaryExpr:
		s.walkExpr(e.Left)
		s.walkExpr(e.Right)
		s.simplify(e)
	}
}

func (s *simplifier) simplify(e *parser.BinaryExpr) {
	switch e.Operator {
	case parser.TOKEN_EQ:
		if isBool(e.Right, true) {
			s.dropRight(e)
		} else if isBool(e.Right, false) {
			s.negate(e.Left)
			s.dropRight(e)
		}
	case parser.TOKEN_NE:
		if isBool(e.Right, true) {
			s.negate(e.Left)
			s.dropRight(e)
		} else if isBool(e.Right, false) {
			s.dropRight(e)
		}
	case parser.TOKEN_PLUS:
		if isNumber(e.Right, 0) {
			s.dropRight(e)
		} else if isNumber(e.Left, 0) {
			s.dropLeft(e)
		}
	case parser.TOKEN_STAR:
		switch {
		case isNumber(e.Right, 0), isNumber(e.Left, 0):
			first, last := e.Interval()
			s.rw.Replace(s.program, first, last, "0")
		case isNumber(e.Right, 1):
			s.dropRight(e)
		case isNumber(e.Left, 1):
			s.dropLeft(e)
		}
	}
}

// dropRight deletes the operator and right operand, keeping the left
func (s *simplifier) dropRight(e *parser.BinaryExpr) {
	_, last := e.Right.Interval()
	s.rw.Delete(s.program, e.OpToken.Index, last)
}

// dropLeft deletes the left operand and operator, plus any whitespace
// up to the right operand
func (s *simplifier) dropLeft(e *parser.BinaryExpr) {
	first, _ := e.Left.Interval()
	rightFirst, _ := e.Right.Interval()
	s.rw.Delete(s.program, first, rightFirst-1)
}

// negate prefixes x with !, wrapping it in parentheses unless it already
// binds tighter than !
func (s *simplifier) negate(x parser.Expr) {
	first, last := x.Interval()
	switch x.(type) {
	case *parser.LiteralExpr, *parser.IdentifierExpr, *parser.ParenExpr, *parser.UnaryExpr:
		s.rw.InsertBefore(s.program, first, "!")
	default:
		s.rw.InsertBefore(s.program, first, "!(")
		s.rw.InsertAfter(s.program, last, ")")
	}
}

func isBool(expr parser.Expr, want bool) bool {
	lit, ok := expr.(*parser.LiteralExpr)
	if !ok {
		return false
	}
	b, ok := lit.Value.(types.BoolValue)
	return ok && b.Val == want
}

func isNumber(expr parser.Expr, want float64) bool {
	lit, ok := expr.(*parser.LiteralExpr)
	if !ok {
		return false
	}
	n, ok := lit.Value.(types.NumberValue)
	return ok && n.Val == want
}
