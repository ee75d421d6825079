package eval

import (
	"fmt"
	"strings"

	"littlecalc/parser"
	"littlecalc/refactor"
	"littlecalc/types"
)

func (e *Executor) execStmt(stmt parser.Stmt) error {
	switch s := stmt.(type) {
	case *parser.AssignStmt:
		return e.execAssign(s)
	case *parser.PrintStmt:
		return e.execPrint(s)
	case *parser.ExprStmt:
		if err := e.evalExpr(s.Expr); err != nil {
			return err
		}
		fmt.Fprintln(e.out, e.values.pop().String())
		return nil
	case *parser.VarsStmt:
		e.printVars()
		return nil
	case *parser.MetaStmt:
		return e.execMeta(s)
	default:
		types.Invariantf("executor: unexpected statement %T", stmt)
		return nil
	}
}

// execAssign binds a variable, or runs the session command when the
// target is a reserved name
func (e *Executor) execAssign(s *parser.AssignStmt) error {
	if err := e.evalExpr(s.Value); err != nil {
		return err
	}
	val := e.values.pop()
	if IsReserved(s.Name) {
		return e.commands.Dispatch(s.Name, val)
	}
	e.tracer.Debugf("assignment to %s", s.Name)
	e.symbols.Set(s.Name, val)
	return nil
}

// execPrint stringifies each operand on its own and prints them joined
// on one line
func (e *Executor) execPrint(s *parser.PrintStmt) error {
	var sb strings.Builder
	for _, arg := range s.Args {
		if err := e.evalExpr(arg); err != nil {
			return err
		}
		sb.WriteString(e.values.pop().String())
	}
	fmt.Fprintln(e.out, sb.String())
	return nil
}

// printVars lists every visible binding as "\tname : value"
func (e *Executor) printVars() {
	for _, name := range e.symbols.Keys() {
		val, _ := e.symbols.Get(name)
		fmt.Fprintf(e.out, "\t%s : %s\n", name, val)
	}
}

// execMeta handles tree, tokens, gui and refactor. None of them runs or
// changes the statements they contain.
func (e *Executor) execMeta(s *parser.MetaStmt) error {
	switch s.Kind {
	case parser.TOKEN_TREE:
		if s.Inner != nil {
			fmt.Fprintln(e.out, parser.StmtTree(s.Inner))
		} else {
			fmt.Fprintln(e.out, parser.ToStringTree(s.Body))
		}
	case parser.TOKEN_TOKENS:
		first, last := s.BodyInterval()
		for _, tok := range e.tokens.Range(first, last) {
			fmt.Fprintln(e.out, tok)
		}
	case parser.TOKEN_GUI:
		e.tracer.Debugf("gui: no tree viewer in this build, skipping")
	case parser.TOKEN_REFACTOR:
		text, err := refactor.Simplify(e.tokens, s)
		if err != nil {
			return err
		}
		fmt.Fprintln(e.out, text)
	default:
		types.Invariantf("executor: unexpected meta statement %s", s.Kind)
	}
	return nil
}
