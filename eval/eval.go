package eval

import (
	"io"

	"littlecalc/parser"
	"littlecalc/trace"
	"littlecalc/types"
)

// Executor runs validated programs. Expressions are evaluated in
// post-order onto a value stack; &&, || and ?: decide which children to
// visit. Bindings persist across programs.
type Executor struct {
	values   *stack[types.Value]
	symbols  *Environment[types.Value]
	commands *Commands
	tokens   *parser.TokenStream
	out      io.Writer
	tracer   *trace.Tracer
}

// NewExecutor creates an executor printing program output to out. The
// tracer receives debug messages and is switched by tracing commands.
func NewExecutor(out io.Writer, tracer *trace.Tracer) *Executor {
	if tracer == nil {
		tracer = trace.New(out)
	}
	return &Executor{
		values:   newStack[types.Value](),
		symbols:  NewEnvironment[types.Value](),
		commands: NewCommands(tracer, out),
		out:      out,
		tracer:   tracer,
	}
}

// Symbols returns the value table
func (e *Executor) Symbols() *Environment[types.Value] {
	return e.symbols
}

// Exec runs each statement of prog in order. The first runtime error
// aborts the rest and is returned.
func (e *Executor) Exec(prog *parser.Program) error {
	e.tokens = prog.Tokens
	for _, stmt := range prog.Stmts {
		e.values.clear()
		if err := e.execStmt(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Eval evaluates one expression parsed from tokens
func (e *Executor) Eval(expr parser.Expr, tokens *parser.TokenStream) (types.Value, error) {
	e.tokens = tokens
	e.values.clear()
	if err := e.evalExpr(expr); err != nil {
		return nil, err
	}
	return e.values.pop(), nil
}

func (e *Executor) evalExpr(expr parser.Expr) error {
	switch n := expr.(type) {
	case *parser.LiteralExpr:
		e.values.push(n.Value)
		return nil
	case *parser.IdentifierExpr:
		return e.evalIdentifier(n)
	case *parser.ParenExpr:
		return e.evalExpr(n.Expr)
	case *parser.UnaryExpr:
		return e.evalUnary(n)
	case *parser.BinaryExpr:
		if lookupBinary(n.Operator).shortCircuit {
			return e.evalLogical(n)
		}
		return e.evalBinary(n)
	case *parser.TernaryExpr:
		return e.evalTernary(n)
	default:
		types.Invariantf("executor: unexpected expression %T", expr)
		return nil
	}
}

// evalIdentifier pushes the variable's value. Reserved names read the
// session setting they control.
func (e *Executor) evalIdentifier(n *parser.IdentifierExpr) error {
	pos := n.Position().Pos()
	if IsReserved(n.Name) {
		e.values.push(e.commands.Value(n.Name, pos))
		return nil
	}
	val, ok := e.symbols.Get(n.Name)
	if !ok {
		return types.NewRuntimeError(types.E_UNBOUND, pos, "%s has not been assigned a value", n.Name)
	}
	e.values.push(val)
	return nil
}

func (e *Executor) evalUnary(n *parser.UnaryExpr) error {
	op := lookupUnary(n.Operator)
	if err := e.evalExpr(n.Operand); err != nil {
		return err
	}
	operand := e.values.pop()
	if err := e.requireValue(n.Operand, operand, op.class); err != nil {
		return err
	}
	e.values.push(op.apply(operand, n.Position().Pos()))
	return nil
}

func (e *Executor) evalBinary(n *parser.BinaryExpr) error {
	op := lookupBinary(n.Operator)
	if err := e.evalExpr(n.Left); err != nil {
		return err
	}
	if err := e.evalExpr(n.Right); err != nil {
		return err
	}
	right := e.values.pop()
	left := e.values.pop()
	if op.class == numericOperands {
		if err := e.requireValue(n.Left, left, op.class); err != nil {
			return err
		}
		if err := e.requireValue(n.Right, right, op.class); err != nil {
			return err
		}
	}
	result, err := op.apply(left, right, n.Position().Pos())
	if err != nil {
		return err
	}
	e.values.push(result)
	return nil
}

// evalLogical implements && and || with short-circuit: the right operand
// is only evaluated when the left does not decide the result.
func (e *Executor) evalLogical(n *parser.BinaryExpr) error {
	op := lookupBinary(n.Operator)
	if err := e.evalExpr(n.Left); err != nil {
		return err
	}
	left := e.values.pop()
	if err := e.requireValue(n.Left, left, booleanOperands); err != nil {
		return err
	}
	decided := left.(types.BoolValue).Val
	if n.Operator == parser.TOKEN_AND {
		decided = !decided
	}
	if decided {
		e.values.push(types.NewBool(left.(types.BoolValue).Val, n.Position().Pos()))
		return nil
	}

	if err := e.evalExpr(n.Right); err != nil {
		return err
	}
	right := e.values.pop()
	if err := e.requireValue(n.Right, right, booleanOperands); err != nil {
		return err
	}
	result, err := op.apply(left, right, n.Position().Pos())
	if err != nil {
		return err
	}
	e.values.push(result)
	return nil
}

// evalTernary evaluates only the branch the condition selects
func (e *Executor) evalTernary(n *parser.TernaryExpr) error {
	if err := e.evalExpr(n.Condition); err != nil {
		return err
	}
	cond := e.values.pop()
	if err := e.requireValue(n.Condition, cond, booleanOperands); err != nil {
		return err
	}
	if cond.(types.BoolValue).Val {
		return e.evalExpr(n.ThenExpr)
	}
	return e.evalExpr(n.ElseExpr)
}

// requireValue is the runtime form of the validator's operand check, for
// trees that were executed without validation.
func (e *Executor) requireValue(operand parser.Expr, v types.Value, class operandClass) error {
	if v.Type() == classType(class) {
		return nil
	}
	return types.NewRuntimeError(types.E_TYPE, operand.Position().Pos(),
		"%s is not %s", e.tokens.NodeText(operand), classNoun(class))
}
