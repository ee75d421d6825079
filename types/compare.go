package types

// CompareOp is a comparison or equality operator
type CompareOp int

const (
	OP_LT CompareOp = iota
	OP_LE
	OP_GT
	OP_GE
	OP_EQ
	OP_NE
)

// String returns the operator's source text
func (op CompareOp) String() string {
	switch op {
	case OP_LT:
		return "<"
	case OP_LE:
		return "<="
	case OP_GT:
		return ">"
	case OP_GE:
		return ">="
	case OP_EQ:
		return "=="
	case OP_NE:
		return "!="
	default:
		return "?"
	}
}

// IsEquality reports whether op is == or !=
func (op CompareOp) IsEquality() bool {
	return op == OP_EQ || op == OP_NE
}

// Compare applies an ordering operator. Both operands must share a type,
// and that type must not be BOOLEAN.
func Compare(a, b Value, op CompareOp) (BoolValue, error) {
	if op.IsEquality() {
		Invariantf("Compare called with equality operator %s", op)
	}
	if a.Type() != b.Type() {
		return BoolValue{}, NewRuntimeError(E_TYPE, a.Pos(),
			"Cannot compare %s to %s", a.Type(), b.Type())
	}

	var cmp int
	switch av := a.(type) {
	case NumberValue:
		bv := b.(NumberValue)
		switch {
		case av.Val < bv.Val:
			cmp = -1
		case av.Val > bv.Val:
			cmp = 1
		case av.Val == bv.Val:
			cmp = 0
		default:
			// NaN: every ordering is false
			return NewBool(false, a.Pos()), nil
		}
	case StrValue:
		bv := b.(StrValue)
		switch {
		case av.Val < bv.Val:
			cmp = -1
		case av.Val > bv.Val:
			cmp = 1
		}
	case BoolValue:
		return BoolValue{}, NewRuntimeError(E_UNSUPPORTED, a.Pos(),
			"Comparison operator ('%s') is not valid for BOOLEAN values", op)
	}

	var result bool
	switch op {
	case OP_LT:
		result = cmp < 0
	case OP_LE:
		result = cmp <= 0
	case OP_GT:
		result = cmp > 0
	case OP_GE:
		result = cmp >= 0
	}
	return NewBool(result, a.Pos()), nil
}

// Equals applies == or !=. It is total: values of different types are
// never equal.
func Equals(a, b Value, op CompareOp) BoolValue {
	eq := a.Equal(b)
	switch op {
	case OP_EQ:
		return NewBool(eq, a.Pos())
	case OP_NE:
		return NewBool(!eq, a.Pos())
	}
	Invariantf("Equals called with ordering operator %s", op)
	return BoolValue{}
}
