package refactor

import (
	"testing"

	"littlecalc/parser"
)

func simplifySource(t *testing.T, src string) string {
	t.Helper()
	prog, err := parser.NewParser(src).ParseProgram()
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	block, ok := prog.Stmts[0].(*parser.MetaStmt)
	if !ok || block.Kind != parser.TOKEN_REFACTOR {
		t.Fatalf("%q is not a refactor statement", src)
	}
	out, err := Simplify(prog.Tokens, block)
	if err != nil {
		t.Fatalf("Simplify(%q): %v", src, err)
	}
	return out
}

func TestSimplify(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"refactor { a + 0 - 5 }", " a  - 5 "},
		{"refactor { 0 + a - 5 }", " a - 5 "},
		{"refactor { a * 1 - 5 }", " a  - 5 "},
		{"refactor { 1 * a - 5 }", " a - 5 "},
		{"refactor { a * 0 - 5 }", " 0 - 5 "},
		{"refactor { 0 * a - 5 }", " 0 - 5 "},
		{"refactor { a == true }", " a  "},
		{"refactor { a != true }", " !a  "},
		{"refactor { a == false }", " !a  "},
		{"refactor { a != false }", " a  "},
		{"refactor { a < b == false }", " !(a < b)  "},
		{"refactor {a<b==false}", "!(a<b)"},
		{"refactor { (a < b) == false }", " !(a < b)  "},
		{"refactor { a == true == true }", " a   "},
		{"refactor { (x + 0) * 0 }", " 0 "},
		{"refactor { x = y * 1 + 0\nprint z == true }", " x = y  \nprint z  "},
		{"refactor { a - 5 }", " a - 5 "},
		{"refactor {}", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := simplifySource(t, tt.input); got != tt.want {
				t.Errorf("Simplify = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSimplifyLeavesTokensAlone(t *testing.T) {
	src := "refactor { a + 0 }"
	prog, err := parser.NewParser(src).ParseProgram()
	if err != nil {
		t.Fatal(err)
	}
	block := prog.Stmts[0].(*parser.MetaStmt)
	if _, err := Simplify(prog.Tokens, block); err != nil {
		t.Fatal(err)
	}
	first, last := prog.Interval()
	if got := prog.Tokens.Text(first, last); got != src {
		t.Errorf("token stream text = %q, want %q", got, src)
	}
}

func TestRewriterOperations(t *testing.T) {
	// tokens: 0:a 1:' ' 2:+ 3:' ' 4:b 5:' ' 6:* 7:' ' 8:c 9:EOF
	prog, err := parser.NewParser("a + b * c").ParseProgram()
	if err != nil {
		t.Fatal(err)
	}
	tokens := prog.Tokens

	tests := []struct {
		name  string
		edits func(r *Rewriter)
		want  string
	}{
		{"no edits", func(r *Rewriter) {}, "a + b * c"},
		{"insert", func(r *Rewriter) { r.InsertBefore("p", 4, "(") }, "a + (b * c"},
		{"insert after", func(r *Rewriter) { r.InsertAfter("p", 8, ")") }, "a + b * c)"},
		{"replace", func(r *Rewriter) { r.Replace("p", 4, 8, "x") }, "a + x"},
		{"delete", func(r *Rewriter) { r.Delete("p", 1, 2) }, "a b * c"},
		{"later inserts first", func(r *Rewriter) {
			r.InsertBefore("p", 0, "1")
			r.InsertBefore("p", 0, "2")
		}, "21a + b * c"},
		{"insert folds into replace", func(r *Rewriter) {
			r.Replace("p", 4, 8, "x")
			r.InsertBefore("p", 4, "!")
		}, "a + !x"},
		{"replace swallows contained edits", func(r *Rewriter) {
			r.Delete("p", 5, 6)
			r.InsertBefore("p", 8, "!")
			r.Replace("p", 4, 8, "0")
		}, "a + 0"},
		{"overlapping deletes merge", func(r *Rewriter) {
			r.Delete("p", 1, 3)
			r.Delete("p", 2, 5)
		}, "a* c"},
		{"programs are separate", func(r *Rewriter) {
			r.Delete("other", 0, 8)
		}, "a + b * c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRewriter(tokens)
			tt.edits(r)
			got, err := r.Text("p", 0, 9)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("Text = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRewriterOverlap(t *testing.T) {
	prog, err := parser.NewParser("a + b * c").ParseProgram()
	if err != nil {
		t.Fatal(err)
	}
	r := NewRewriter(prog.Tokens)
	r.Replace("p", 0, 4, "x")
	r.Replace("p", 2, 8, "y")
	if _, err := r.Text("p", 0, 9); err == nil {
		t.Error("expected an overlap error")
	}
}
