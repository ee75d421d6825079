package types

// StrValue is a LittleCalc string. Its text has quotes and escapes removed.
type StrValue struct {
	Val string
	At  Pos
}

// NewStr creates a new string value
func NewStr(s string, at Pos) StrValue {
	return StrValue{Val: s, At: at}
}

// String returns the raw content, without quotes
func (s StrValue) String() string {
	return s.Val
}

// Type returns the type code for strings
func (s StrValue) Type() TypeCode {
	return STRING
}

// Equal checks string equality
func (s StrValue) Equal(other Value) bool {
	o, ok := other.(StrValue)
	if !ok {
		return false
	}
	return s.Val == o.Val
}

func (s StrValue) Pos() Pos { return s.At }

func (StrValue) value() {}
