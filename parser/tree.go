package parser

import "strings"

// ToStringTree renders statements as a LISP-style tree: each node is
// "(ruleName children...)" and tokens appear as their source text.
func ToStringTree(stmts []Stmt) string {
	parts := []string{"stmts"}
	for _, s := range stmts {
		parts = append(parts, treeStmt(s))
	}
	return "(" + strings.Join(parts, " ") + ")"
}

// StmtTree renders a single statement the way ToStringTree does
func StmtTree(stmt Stmt) string {
	return treeStmt(stmt)
}

func treeNode(rule string, children ...string) string {
	return "(" + rule + " " + strings.Join(children, " ") + ")"
}

func treeStmt(stmt Stmt) string {
	switch s := stmt.(type) {
	case *AssignStmt:
		return treeNode("assignmentStmt", s.Name, "=", treeExpr(s.Value))
	case *PrintStmt:
		children := []string{s.First.Value}
		for _, arg := range s.Args {
			children = append(children, treeExpr(arg))
		}
		return treeNode("printStmt", children...)
	case *ExprStmt:
		return treeNode("implicitPrintStmt", treeExpr(s.Expr))
	case *VarsStmt:
		return treeNode("varsStmt", s.First.Value)
	case *MetaStmt:
		return treeMeta(s)
	default:
		return "(?)"
	}
}

func metaRuleName(kind TokenType) string {
	switch kind {
	case TOKEN_TREE:
		return "treeUtil"
	case TOKEN_TOKENS:
		return "tokensUtil"
	case TOKEN_GUI:
		return "guiUtil"
	default:
		return "refactorUtil"
	}
}

func treeMeta(s *MetaStmt) string {
	if s.Inner != nil {
		return treeNode(metaRuleName(s.Kind), s.First.Value, treeMeta(s.Inner))
	}
	return treeNode(metaRuleName(s.Kind), s.First.Value, "{", ToStringTree(s.Body), "}")
}

func treeExpr(expr Expr) string {
	switch e := expr.(type) {
	case *LiteralExpr:
		switch e.First.Type {
		case TOKEN_NUMBER:
			return treeNode("numberExpr", e.First.Value)
		case TOKEN_STRING:
			return treeNode("stringExpr", e.First.Value)
		default:
			return treeNode("booleanExpr", e.First.Value)
		}
	case *IdentifierExpr:
		return treeNode("idExpr", e.Name)
	case *ParenExpr:
		return treeNode("parenExpr", "(", treeExpr(e.Expr), ")")
	case *UnaryExpr:
		if e.Operator == TOKEN_NOT {
			return treeNode("notExpr", "!", treeExpr(e.Operand))
		}
		return treeNode("negateExpr", "-", treeExpr(e.Operand))
	case *BinaryExpr:
		return treeNode(binaryRuleName(e.Operator), treeExpr(e.Left), e.OpToken.Value, treeExpr(e.Right))
	case *TernaryExpr:
		return treeNode("ternaryExpr", treeExpr(e.Condition), "?", treeExpr(e.ThenExpr), ":", treeExpr(e.ElseExpr))
	default:
		return "(?)"
	}
}

func binaryRuleName(op TokenType) string {
	switch op {
	case TOKEN_CARET:
		return "expExpr"
	case TOKEN_STAR, TOKEN_SLASH:
		return "mulDivExpr"
	case TOKEN_PLUS, TOKEN_MINUS:
		return "addSubExpr"
	case TOKEN_LT, TOKEN_LE, TOKEN_GT, TOKEN_GE:
		return "compareExpr"
	case TOKEN_EQ, TOKEN_NE:
		return "equalityExpr"
	case TOKEN_AND:
		return "andExpr"
	default:
		return "orExpr"
	}
}
