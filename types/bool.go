package types

// BoolValue is a LittleCalc boolean
type BoolValue struct {
	Val bool
	At  Pos
}

// NewBool creates a new BoolValue
func NewBool(val bool, at Pos) BoolValue {
	return BoolValue{Val: val, At: at}
}

// Type returns the type code for booleans
func (b BoolValue) Type() TypeCode {
	return BOOLEAN
}

// String returns the literal representation
func (b BoolValue) String() string {
	if b.Val {
		return "true"
	}
	return "false"
}

// Equal checks boolean equality
func (b BoolValue) Equal(other Value) bool {
	o, ok := other.(BoolValue)
	if !ok {
		return false
	}
	return b.Val == o.Val
}

func (b BoolValue) Pos() Pos { return b.At }

func (BoolValue) value() {}
