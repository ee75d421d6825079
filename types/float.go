package types

import (
	"math"
	"strconv"
	"strings"
)

// NumberValue is a LittleCalc number, always an IEEE-754 double
type NumberValue struct {
	Val float64
	At  Pos
}

// NewNumber creates a new NumberValue
func NewNumber(val float64, at Pos) NumberValue {
	return NumberValue{Val: val, At: at}
}

// Type returns the type code for numbers
func (n NumberValue) Type() TypeCode {
	return NUMBER
}

// String renders the number in decimal form when 1e-3 <= |v| < 1e7, with
// whole numbers keeping a trailing ".0" (15.0, 1000000.0). Other
// magnitudes use a mantissa and exponent (1.2345678E7, 1.0E-4).
func (n NumberValue) String() string {
	if math.IsNaN(n.Val) {
		return "NaN"
	}
	if math.IsInf(n.Val, 1) {
		return "Inf"
	}
	if math.IsInf(n.Val, -1) {
		return "-Inf"
	}
	if abs := math.Abs(n.Val); n.Val == 0 || (abs >= 1e-3 && abs < 1e7) {
		s := strconv.FormatFloat(n.Val, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	}
	mant, exp, _ := strings.Cut(strconv.FormatFloat(n.Val, 'E', -1, 64), "E")
	if !strings.Contains(mant, ".") {
		mant += ".0"
	}
	e, _ := strconv.Atoi(exp)
	return mant + "E" + strconv.Itoa(e)
}

// Equal checks numeric equality (NaN is never equal to anything)
func (n NumberValue) Equal(other Value) bool {
	o, ok := other.(NumberValue)
	if !ok {
		return false
	}
	return n.Val == o.Val
}

func (n NumberValue) Pos() Pos { return n.At }

func (NumberValue) value() {}
