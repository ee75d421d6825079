package types

import (
	"errors"
	"math"
	"testing"
)

func num(v float64) Value  { return NewNumber(v, Pos{Line: 1}) }
func str(s string) Value   { return NewStr(s, Pos{Line: 1}) }
func boolean(b bool) Value { return NewBool(b, Pos{Line: 1}) }

func TestCompareNumbers(t *testing.T) {
	pairs := [][2]float64{{1, 2}, {2, 1}, {3, 3}, {-1.5, 0.25}, {0, 0}}
	for _, p := range pairs {
		a, b := p[0], p[1]
		want := map[CompareOp]bool{
			OP_LT: a < b,
			OP_LE: a <= b,
			OP_GT: a > b,
			OP_GE: a >= b,
		}
		for op, w := range want {
			got, err := Compare(num(a), num(b), op)
			if err != nil {
				t.Fatalf("Compare(%v %s %v): %v", a, op, b, err)
			}
			if got.Val != w {
				t.Errorf("Compare(%v %s %v) = %v, want %v", a, op, b, got.Val, w)
			}
		}
	}
}

func TestCompareNaN(t *testing.T) {
	for _, op := range []CompareOp{OP_LT, OP_LE, OP_GT, OP_GE} {
		got, err := Compare(num(math.NaN()), num(1), op)
		if err != nil {
			t.Fatal(err)
		}
		if got.Val {
			t.Errorf("NaN %s 1 = true, want false", op)
		}
	}
}

func TestCompareStrings(t *testing.T) {
	tests := []struct {
		a, b string
		op   CompareOp
		want bool
	}{
		{"a", "b", OP_LT, true},
		{"b", "a", OP_LT, false},
		{"abc", "abc", OP_LE, true},
		{"abc", "abd", OP_GE, false},
		{"Z", "a", OP_LT, true},
		{"", "a", OP_GT, false},
	}

	for _, tt := range tests {
		t.Run(tt.a+tt.op.String()+tt.b, func(t *testing.T) {
			got, err := Compare(str(tt.a), str(tt.b), tt.op)
			if err != nil {
				t.Fatal(err)
			}
			if got.Val != tt.want {
				t.Errorf("got %v, want %v", got.Val, tt.want)
			}
		})
	}
}

func TestCompareErrors(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Value
		op       CompareOp
		wantKind ErrorKind
		wantMsg  string
	}{
		{"number vs string", num(1), str("3"), OP_LT, E_TYPE, "Cannot compare NUMBER to STRING"},
		{"string vs boolean", str("x"), boolean(true), OP_GE, E_TYPE, "Cannot compare STRING to BOOLEAN"},
		{"boolean lt", boolean(true), boolean(false), OP_LT, E_UNSUPPORTED, "Comparison operator ('<') is not valid for BOOLEAN values"},
		{"boolean le", boolean(true), boolean(true), OP_LE, E_UNSUPPORTED, "Comparison operator ('<=') is not valid for BOOLEAN values"},
		{"boolean gt", boolean(false), boolean(false), OP_GT, E_UNSUPPORTED, "Comparison operator ('>') is not valid for BOOLEAN values"},
		{"boolean ge", boolean(false), boolean(true), OP_GE, E_UNSUPPORTED, "Comparison operator ('>=') is not valid for BOOLEAN values"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compare(tt.a, tt.b, tt.op)
			var rerr *RuntimeError
			if !errors.As(err, &rerr) {
				t.Fatalf("expected RuntimeError, got %v", err)
			}
			if rerr.Kind != tt.wantKind {
				t.Errorf("kind = %s, want %s", rerr.Kind, tt.wantKind)
			}
			if rerr.Msg != tt.wantMsg {
				t.Errorf("msg = %q, want %q", rerr.Msg, tt.wantMsg)
			}
		})
	}
}

func TestEquals(t *testing.T) {
	values := []Value{num(1), num(2), str("1"), str("a"), boolean(true), boolean(false)}
	for _, a := range values {
		for _, b := range values {
			eq := Equals(a, b, OP_EQ).Val
			ne := Equals(a, b, OP_NE).Val
			if eq == ne {
				t.Errorf("%v == %v and != agree (%v)", a, b, eq)
			}
			if eq != Equals(b, a, OP_EQ).Val {
				t.Errorf("equality of %v and %v is not symmetric", a, b)
			}
			if a.Type() != b.Type() && eq {
				t.Errorf("cross-type %v == %v is true", a, b)
			}
		}
		if !Equals(a, a, OP_EQ).Val {
			t.Errorf("%v == %v is false", a, a)
		}
	}
}

func TestEqualsNaN(t *testing.T) {
	n := num(math.NaN())
	if Equals(n, n, OP_EQ).Val {
		t.Error("NaN == NaN is true")
	}
	if !Equals(n, n, OP_NE).Val {
		t.Error("NaN != NaN is false")
	}
}
