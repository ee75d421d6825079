package eval

import (
	"bytes"
	"strings"
	"testing"

	"littlecalc/parser"
	"littlecalc/types"
)

func mustParse(t *testing.T, src string) *parser.Program {
	t.Helper()
	prog, err := parser.NewParser(src).ParseProgram()
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	return prog
}

func TestValidatorDiagnostics(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{`a= true ? 2 : "3"`, []string{"line:1 col:4 -- true and false branches must share the same type (STRING,NUMBER)"}},
		{`a =  2 + "3"`, []string{`line:1 col:10 -- "3" is not numeric`}},
		{`a = true && 3`, []string{"line:1 col:13 -- 3 is not boolean"}},
		{`a = 1 < "3"`, []string{"line:1 col:5 -- can not compare NUMBER to STRING"}},
		{`a = b`, []string{"line:1 col:5 -- b has not been assigned a value"}},
		{`a = true < false`, []string{"line:1 col:5 -- comparison operator ('<') is not valid for BOOLEAN values"}},
		{`a = 1 == "1"`, []string{"line:1 col:5 -- can not compare NUMBER to STRING"}},
		{`a = !1`, []string{"line:1 col:6 -- 1 is not boolean"}},
		{`a = -"x"`, []string{`line:1 col:6 -- "x" is not numeric`}},
		{`a = 1 ? 2 : 3`, []string{"line:1 col:5 -- 1 is not boolean"}},
		{`parserTracing = 1`, []string{"line:1 col:1 -- parserTracing requires a BOOLEAN value"}},
		{"a = 1 + \"x\"\nb = c", []string{
			`line:1 col:9 -- "x" is not numeric`,
			"line:2 col:5 -- c has not been assigned a value",
		}},
		{`a = (1 + 2) * 3 > 4 == true ? "yes" : "no"`, nil},
		{`fullTracing = !lexerTracing`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var buf bytes.Buffer
			v := NewValidator(NewReporter(&buf, false))
			ok := v.Validate(mustParse(t, tt.input))
			if ok != (len(tt.want) == 0) {
				t.Errorf("Validate = %v, diagnostics %v", ok, v.Errors())
			}
			if strings.Join(v.Errors(), "\n") != strings.Join(tt.want, "\n") {
				t.Errorf("diagnostics =\n%s\nwant\n%s", strings.Join(v.Errors(), "\n"), strings.Join(tt.want, "\n"))
			}
			reported := strings.TrimRight(buf.String(), "\n")
			if reported != strings.Join(tt.want, "\n") {
				t.Errorf("reported %q", reported)
			}
		})
	}
}

func TestValidatorKeepsTypesAcrossPrograms(t *testing.T) {
	v := NewValidator(nil)
	if !v.Validate(mustParse(t, `a = "text"`)) {
		t.Fatalf("first program rejected: %v", v.Errors())
	}
	v.Reset()
	if v.Validate(mustParse(t, `b = a + 1`)) {
		t.Fatal("string operand accepted after Reset")
	}
	if got, _ := v.Symbols().Get("a"); got != types.STRING {
		t.Errorf("a declared as %s, want STRING", got)
	}
	v.Reset()
	if v.HasErrors() {
		t.Error("Reset kept diagnostics")
	}
}

func TestValidatorReservedNamesAreNotBound(t *testing.T) {
	v := NewValidator(nil)
	v.Validate(mustParse(t, "parserTracing = true\nx = lexerTracing"))
	if _, ok := v.Symbols().Get("parserTracing"); ok {
		t.Error("reserved name was declared")
	}
	if got, _ := v.Symbols().Get("x"); got != types.BOOLEAN {
		t.Errorf("x declared as %s, want BOOLEAN", got)
	}
}

func TestValidatorMetaIsQuiet(t *testing.T) {
	tests := []string{
		"tree { a = 1 + \"x\" }",
		"tokens { print q }",
		"gui tree { b = true < false }",
		"refactor { a + 0 }",
	}
	for _, src := range tests {
		t.Run(src, func(t *testing.T) {
			v := NewValidator(nil)
			if !v.Validate(mustParse(t, src)) {
				t.Errorf("meta content reported: %v", v.Errors())
			}
			if len(v.Symbols().Keys()) != 0 {
				t.Errorf("meta content declared %v", v.Symbols().Keys())
			}
		})
	}
}
