package eval

import (
	"fmt"
	"io"

	"littlecalc/trace"
	"littlecalc/types"
)

// Names whose assignment is a session command rather than a binding
const (
	ParserTracing = "parserTracing"
	LexerTracing  = "lexerTracing"
	FullTracing   = "fullTracing"
)

// IsReserved reports whether name is a session command name
func IsReserved(name string) bool {
	switch name {
	case ParserTracing, LexerTracing, FullTracing:
		return true
	}
	return false
}

type command struct {
	label string
	set   func(on bool)
	get   func() bool
}

// Commands dispatches assignments to reserved names. They switch the
// session tracer and never touch the symbol table.
type Commands struct {
	table map[string]command
	out   io.Writer
}

// NewCommands binds the tracing commands to tracer
func NewCommands(tracer *trace.Tracer, out io.Writer) *Commands {
	return &Commands{
		out: out,
		table: map[string]command{
			ParserTracing: {label: "Parser Tracing", set: tracer.SetParser, get: tracer.Parser},
			LexerTracing:  {label: "Lexer Tracing", set: tracer.SetLexer, get: tracer.Lexer},
			FullTracing: {
				label: "Full Tracing",
				set: func(on bool) {
					tracer.SetParser(on)
					tracer.SetLexer(on)
				},
				get: func() bool { return tracer.Parser() && tracer.Lexer() },
			},
		},
	}
}

func (c *Commands) lookup(name string) command {
	cmd, ok := c.table[name]
	if !ok {
		types.Invariantf("%s is not a command name", name)
	}
	return cmd
}

// Dispatch runs the command for name with value v and prints its
// confirmation ("Parser Tracing On").
func (c *Commands) Dispatch(name string, v types.Value) error {
	cmd := c.lookup(name)
	on, ok := v.(types.BoolValue)
	if !ok {
		return types.NewRuntimeError(types.E_TYPE, v.Pos(), "%s requires a BOOLEAN value", name)
	}
	cmd.set(on.Val)
	state := "Off"
	if on.Val {
		state = "On"
	}
	fmt.Fprintf(c.out, "%s %s\n", cmd.label, state)
	return nil
}

// Value returns the current setting behind name
func (c *Commands) Value(name string, at types.Pos) types.Value {
	return types.NewBool(c.lookup(name).get(), at)
}
