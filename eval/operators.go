package eval

import (
	"math"

	"littlecalc/parser"
	"littlecalc/types"
)

// operandClass says which operand types an operator accepts. The validator
// checks it against static types, the executor against values.
type operandClass int

const (
	numericOperands   operandClass = iota // NUMBER only
	booleanOperands                       // BOOLEAN only
	orderedOperands                       // same type, never BOOLEAN
	equatableOperands                     // same type
)

// binaryOp describes one binary operator for both passes
type binaryOp struct {
	class        operandClass
	result       types.TypeCode
	shortCircuit bool // right operand is evaluated only when needed
	apply        func(left, right types.Value, at types.Pos) (types.Value, error)
}

// unaryOp describes one prefix operator
type unaryOp struct {
	class  operandClass
	result types.TypeCode
	apply  func(operand types.Value, at types.Pos) types.Value
}

var binaryOps = map[parser.TokenType]binaryOp{
	parser.TOKEN_PLUS:  {class: numericOperands, result: types.NUMBER, apply: arithmetic(evalAdd)},
	parser.TOKEN_MINUS: {class: numericOperands, result: types.NUMBER, apply: arithmetic(evalSubtract)},
	parser.TOKEN_STAR:  {class: numericOperands, result: types.NUMBER, apply: arithmetic(evalMultiply)},
	parser.TOKEN_SLASH: {class: numericOperands, result: types.NUMBER, apply: arithmetic(evalDivide)},
	parser.TOKEN_CARET: {class: numericOperands, result: types.NUMBER, apply: arithmetic(math.Pow)},

	parser.TOKEN_LT: {class: orderedOperands, result: types.BOOLEAN, apply: ordering(types.OP_LT)},
	parser.TOKEN_LE: {class: orderedOperands, result: types.BOOLEAN, apply: ordering(types.OP_LE)},
	parser.TOKEN_GT: {class: orderedOperands, result: types.BOOLEAN, apply: ordering(types.OP_GT)},
	parser.TOKEN_GE: {class: orderedOperands, result: types.BOOLEAN, apply: ordering(types.OP_GE)},

	parser.TOKEN_EQ: {class: equatableOperands, result: types.BOOLEAN, apply: equality(types.OP_EQ)},
	parser.TOKEN_NE: {class: equatableOperands, result: types.BOOLEAN, apply: equality(types.OP_NE)},

	parser.TOKEN_AND: {class: booleanOperands, result: types.BOOLEAN, shortCircuit: true, apply: logical(false)},
	parser.TOKEN_OR:  {class: booleanOperands, result: types.BOOLEAN, shortCircuit: true, apply: logical(true)},
}

var unaryOps = map[parser.TokenType]unaryOp{
	parser.TOKEN_NOT:   {class: booleanOperands, result: types.BOOLEAN, apply: evalNot},
	parser.TOKEN_MINUS: {class: numericOperands, result: types.NUMBER, apply: evalNegate},
}

// lookupBinary returns the table entry for op. Every operator the parser
// can produce has one.
func lookupBinary(op parser.TokenType) binaryOp {
	entry, ok := binaryOps[op]
	if !ok {
		types.Invariantf("no binary operator entry for %s", op)
	}
	return entry
}

func lookupUnary(op parser.TokenType) unaryOp {
	entry, ok := unaryOps[op]
	if !ok {
		types.Invariantf("no unary operator entry for %s", op)
	}
	return entry
}

// classType is the single type a numeric or boolean operand must have
func classType(class operandClass) types.TypeCode {
	if class == numericOperands {
		return types.NUMBER
	}
	return types.BOOLEAN
}

// classNoun names the required type in diagnostics ("is not numeric")
func classNoun(class operandClass) string {
	if class == numericOperands {
		return "numeric"
	}
	return "boolean"
}

// ============================================================================
// ARITHMETIC OPERATORS
// ============================================================================

func evalAdd(a, b float64) float64      { return a + b }
func evalSubtract(a, b float64) float64 { return a - b }
func evalMultiply(a, b float64) float64 { return a * b }

// evalDivide follows IEEE-754: x/0 is +-Inf, 0/0 is NaN
func evalDivide(a, b float64) float64 { return a / b }

func arithmetic(fn func(a, b float64) float64) func(left, right types.Value, at types.Pos) (types.Value, error) {
	return func(left, right types.Value, at types.Pos) (types.Value, error) {
		l := left.(types.NumberValue)
		r := right.(types.NumberValue)
		return types.NewNumber(fn(l.Val, r.Val), at), nil
	}
}

func evalNegate(operand types.Value, at types.Pos) types.Value {
	return types.NewNumber(-operand.(types.NumberValue).Val, at)
}

// ============================================================================
// COMPARISON OPERATORS
// ============================================================================

func ordering(op types.CompareOp) func(left, right types.Value, at types.Pos) (types.Value, error) {
	return func(left, right types.Value, at types.Pos) (types.Value, error) {
		result, err := types.Compare(left, right, op)
		if err != nil {
			return nil, err
		}
		return types.NewBool(result.Val, at), nil
	}
}

func equality(op types.CompareOp) func(left, right types.Value, at types.Pos) (types.Value, error) {
	return func(left, right types.Value, at types.Pos) (types.Value, error) {
		return types.NewBool(types.Equals(left, right, op).Val, at), nil
	}
}

// ============================================================================
// LOGICAL OPERATORS
// ============================================================================

// logical combines two already-evaluated booleans; the executor only
// reaches it when the left operand did not decide the result.
func logical(isOr bool) func(left, right types.Value, at types.Pos) (types.Value, error) {
	return func(left, right types.Value, at types.Pos) (types.Value, error) {
		l := left.(types.BoolValue).Val
		r := right.(types.BoolValue).Val
		if isOr {
			return types.NewBool(l || r, at), nil
		}
		return types.NewBool(l && r, at), nil
	}
}

func evalNot(operand types.Value, at types.Pos) types.Value {
	return types.NewBool(!operand.(types.BoolValue).Val, at)
}
