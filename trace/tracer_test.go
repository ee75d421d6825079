package trace

import (
	"bytes"
	"strings"
	"testing"

	"littlecalc/parser"
)

func TestTracerLexer(t *testing.T) {
	var buf bytes.Buffer
	tr := New(&buf)
	tr.SetLexer(true)

	p := parser.NewParser("lexerTracing = false")
	tr.Apply(p)
	if _, err := p.ParseReplInput(); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	wantPrefixes := []string{"ID : ", "WS : ", "'=' : ", "WS : ", "'false' : ", "EOF : "}
	if len(lines) != len(wantPrefixes) {
		t.Fatalf("got %d lines, want %d:\n%s", len(lines), len(wantPrefixes), buf.String())
	}
	for i, prefix := range wantPrefixes {
		if !strings.HasPrefix(lines[i], prefix) {
			t.Errorf("line %d = %q, want prefix %q", i, lines[i], prefix)
		}
	}
	if lines[0] != "ID : [@0,0:11='lexerTracing',<ID>,1:0]" {
		t.Errorf("line 0 = %q", lines[0])
	}
}

func TestTracerParser(t *testing.T) {
	var buf bytes.Buffer
	tr := New(&buf)
	tr.SetParser(true)

	p := parser.NewParser("x")
	tr.Apply(p)
	if _, err := p.ParseReplInput(); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	for _, want := range []string{
		"enter   replIn, LT(1)=x\n",
		"consume [@0,0:0='x',<ID>,1:0] rule primary\n",
		"exit    replIn, LT(1)=<EOF>\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestTracerApplyOff(t *testing.T) {
	var buf bytes.Buffer
	tr := New(&buf)
	tr.SetLexer(true)
	tr.SetParser(true)

	p := parser.NewParser("1")
	tr.Apply(p)
	tr.SetLexer(false)
	tr.SetParser(false)
	p.Reset("2")
	tr.Apply(p)
	if _, err := p.ParseReplInput(); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output, got:\n%s", buf.String())
	}
}

func TestDebugf(t *testing.T) {
	var buf bytes.Buffer
	tr := New(&buf)
	tr.Debugf("hidden %d", 1)
	tr.SetDebug(true)
	tr.Debugf("shown %d", 2)
	if buf.String() != "[DEBUG] shown 2\n" {
		t.Errorf("output = %q", buf.String())
	}
}
