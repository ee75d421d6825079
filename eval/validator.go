package eval

import (
	"fmt"

	"littlecalc/parser"
	"littlecalc/types"
)

// Validator type-checks a program before it runs. It walks the tree in
// post-order with a stack of static types, reporting every problem it
// finds rather than stopping at the first. Declared types persist across
// programs so a REPL session can validate one chunk at a time.
type Validator struct {
	stack    *stack[types.TypeCode]
	symbols  *Environment[types.TypeCode]
	errors   []string
	suppress int // > 0 while inside a meta statement
	tokens   *parser.TokenStream
	reporter *Reporter
}

// NewValidator creates a validator. Diagnostics are printed through
// reporter as they are found; reporter may be nil.
func NewValidator(reporter *Reporter) *Validator {
	return &Validator{
		stack:    newStack[types.TypeCode](),
		symbols:  NewEnvironment[types.TypeCode](),
		reporter: reporter,
	}
}

// Symbols returns the declared-type table
func (v *Validator) Symbols() *Environment[types.TypeCode] {
	return v.symbols
}

// HasErrors reports whether any diagnostic was recorded since Reset
func (v *Validator) HasErrors() bool {
	return len(v.errors) > 0
}

// Errors returns the diagnostics recorded since Reset
func (v *Validator) Errors() []string {
	return v.errors
}

// Reset clears diagnostics. Declared types are kept.
func (v *Validator) Reset() {
	v.errors = nil
	v.suppress = 0
	v.stack.clear()
}

// Validate checks every statement of prog and reports whether it is free
// of errors.
func (v *Validator) Validate(prog *parser.Program) bool {
	v.tokens = prog.Tokens
	for _, stmt := range prog.Stmts {
		v.walkStmt(stmt)
	}
	if v.stack.len() != 0 {
		types.Invariantf("type stack holds %d entries after validation", v.stack.len())
	}
	return !v.HasErrors()
}

func (v *Validator) report(at parser.Position, format string, args ...interface{}) {
	if v.suppress > 0 {
		return
	}
	msg := fmt.Sprintf("%s -- %s", at.Pos(), fmt.Sprintf(format, args...))
	v.errors = append(v.errors, msg)
	if v.reporter != nil {
		v.reporter.Report(msg)
	}
}

func (v *Validator) text(n parser.Node) string {
	return v.tokens.NodeText(n)
}

func (v *Validator) walkStmt(stmt parser.Stmt) {
	switch s := stmt.(type) {
	case *parser.AssignStmt:
		v.walkExpr(s.Value)
		t := v.stack.pop()
		if IsReserved(s.Name) {
			if t != types.BOOLEAN && t != types.UNKNOWN {
				v.report(s.Position(), "%s requires a BOOLEAN value", s.Name)
			}
			return
		}
		v.symbols.Set(s.Name, t)

	case *parser.PrintStmt:
		for _, arg := range s.Args {
			v.walkExpr(arg)
			v.stack.pop()
		}

	case *parser.ExprStmt:
		v.walkExpr(s.Expr)
		v.stack.pop()

	case *parser.VarsStmt:

	case *parser.MetaStmt:
		// Meta content is never executed: check it quietly, in a scope
		// of its own so its assignments do not leak.
		v.suppress++
		outer := v.symbols
		v.symbols = NewNestedEnvironment(outer)
		if s.Inner != nil {
			v.walkStmt(s.Inner)
		}
		for _, inner := range s.Body {
			v.walkStmt(inner)
		}
		v.symbols = outer
		v.suppress--

	default:
		types.Invariantf("validator: unexpected statement %T", stmt)
	}
}

func (v *Validator) walkExpr(expr parser.Expr) {
	switch e := expr.(type) {
	case *parser.LiteralExpr:
		v.stack.push(e.Value.Type())

	case *parser.IdentifierExpr:
		if IsReserved(e.Name) {
			v.stack.push(types.BOOLEAN)
			return
		}
		t, ok := v.symbols.Get(e.Name)
		if !ok {
			v.report(e.Position(), "%s has not been assigned a value", e.Name)
			t = types.UNKNOWN
		}
		v.stack.push(t)

	case *parser.ParenExpr:
		v.walkExpr(e.Expr)

	case *parser.UnaryExpr:
		op := lookupUnary(e.Operator)
		v.walkExpr(e.Operand)
		v.requireType(e.Operand, v.stack.pop(), op.class)
		v.stack.push(op.result)

	case *parser.BinaryExpr:
		op := lookupBinary(e.Operator)
		v.walkExpr(e.Left)
		v.walkExpr(e.Right)
		right := v.stack.pop()
		left := v.stack.pop()
		switch op.class {
		case numericOperands, booleanOperands:
			v.requireType(e.Left, left, op.class)
			v.requireType(e.Right, right, op.class)
		case orderedOperands:
			v.checkOrdering(e, left, right)
		case equatableOperands:
			if left != types.UNKNOWN && right != types.UNKNOWN && !left.CanEquateTo(right) {
				v.report(e.Position(), "can not compare %s to %s", left, right)
			}
		}
		v.stack.push(op.result)

	case *parser.TernaryExpr:
		v.walkExpr(e.Condition)
		v.walkExpr(e.ThenExpr)
		v.walkExpr(e.ElseExpr)
		elseType := v.stack.pop()
		thenType := v.stack.pop()
		condType := v.stack.pop()
		v.requireType(e.Condition, condType, booleanOperands)
		if thenType != types.UNKNOWN && elseType != types.UNKNOWN && thenType != elseType {
			v.report(e.Position(), "true and false branches must share the same type (%s,%s)", elseType, thenType)
		}
		if thenType == types.UNKNOWN {
			thenType = elseType
		}
		v.stack.push(thenType)

	default:
		types.Invariantf("validator: unexpected expression %T", expr)
	}
}

// requireType reports operand when its type is not the single type class
// demands. UNKNOWN was already reported where it came from.
func (v *Validator) requireType(operand parser.Expr, t types.TypeCode, class operandClass) {
	if t == types.UNKNOWN || t == classType(class) {
		return
	}
	v.report(operand.Position(), "%s is not %s", v.text(operand), classNoun(class))
}

func (v *Validator) checkOrdering(e *parser.BinaryExpr, left, right types.TypeCode) {
	if left == types.UNKNOWN || right == types.UNKNOWN {
		return
	}
	if left == types.BOOLEAN {
		if right == types.BOOLEAN {
			v.report(e.Position(), "comparison operator ('%s') is not valid for BOOLEAN values", e.OpToken.Value)
		} else {
			v.report(e.Position(), "can not compare %s to %s", left, right)
		}
		return
	}
	if !left.CanCompareTo(right) {
		v.report(e.Position(), "can not compare %s to %s", left, right)
	}
}
