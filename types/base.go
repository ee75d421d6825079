package types

import "fmt"

// Pos locates a value or node in source: Line is 1-based, Column 0-based.
type Pos struct {
	Line   int
	Column int
}

// String renders the position the way diagnostics show it (1-based column).
func (p Pos) String() string {
	return fmt.Sprintf("line:%d col:%d", p.Line, p.Column+1)
}

// Value is a LittleCalc runtime value. The set of variants is closed:
// NumberValue, StrValue and BoolValue.
type Value interface {
	Type() TypeCode
	String() string
	Equal(other Value) bool
	Pos() Pos
	value()
}
