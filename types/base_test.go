package types

import (
	"math"
	"testing"
)

func TestNumberString(t *testing.T) {
	tests := []struct {
		val  float64
		want string
	}{
		{15, "15.0"},
		{0.5, "0.5"},
		{10, "10.0"},
		{-3, "-3.0"},
		{4, "4.0"},
		{0, "0.0"},
		{1000000, "1000000.0"},
		{5000000.5, "5000000.5"},
		{9999999, "9999999.0"},
		{12345678, "1.2345678E7"},
		{1e21, "1.0E21"},
		{-2.5e10, "-2.5E10"},
		{0.001, "0.001"},
		{0.0001, "1.0E-4"},
		{math.NaN(), "NaN"},
		{math.Inf(1), "Inf"},
		{math.Inf(-1), "-Inf"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := NewNumber(tt.val, Pos{}).String(); got != tt.want {
				t.Errorf("NumberValue(%v).String() = %q, want %q", tt.val, got, tt.want)
			}
		})
	}
}

func TestValueStringAndType(t *testing.T) {
	tests := []struct {
		name     string
		val      Value
		wantStr  string
		wantType TypeCode
	}{
		{"number", NewNumber(2, Pos{}), "2.0", NUMBER},
		{"string", NewStr("Test", Pos{}), "Test", STRING},
		{"empty string", NewStr("", Pos{}), "", STRING},
		{"true", NewBool(true, Pos{}), "true", BOOLEAN},
		{"false", NewBool(false, Pos{}), "false", BOOLEAN},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.val.String(); got != tt.wantStr {
				t.Errorf("String() = %q, want %q", got, tt.wantStr)
			}
			if got := tt.val.Type(); got != tt.wantType {
				t.Errorf("Type() = %s, want %s", got, tt.wantType)
			}
		})
	}
}

func TestPosString(t *testing.T) {
	p := Pos{Line: 1, Column: 4}
	if got := p.String(); got != "line:1 col:5" {
		t.Errorf("Pos.String() = %q, want %q", got, "line:1 col:5")
	}
}

func TestRuntimeErrorFormat(t *testing.T) {
	err := NewRuntimeError(E_UNBOUND, Pos{Line: 3, Column: 0}, "%s has not been assigned a value", "x")
	want := "line:3 col:1 -- x has not been assigned a value"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
