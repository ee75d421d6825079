package trace

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/tevino/abool/v2"

	"littlecalc/parser"
)

// Tracer writes interpreter tracing: tokens as the lexer creates them,
// parser rule events, and debug messages. Each kind has its own switch.
type Tracer struct {
	lexer  *abool.AtomicBool
	parser *abool.AtomicBool
	debug  *abool.AtomicBool
	writer io.Writer
	mu     sync.Mutex
}

// New creates a tracer with every kind of tracing off
func New(writer io.Writer) *Tracer {
	if writer == nil {
		writer = os.Stdout
	}
	return &Tracer{
		lexer:  abool.New(),
		parser: abool.New(),
		debug:  abool.New(),
		writer: writer,
	}
}

// Global tracer instance, used by the drivers for debug logging
var globalTracer = New(os.Stderr)

// Init sets up the global tracer
func Init(debug bool, writer io.Writer) {
	if writer == nil {
		writer = os.Stderr
	}
	globalTracer = New(writer)
	globalTracer.debug.SetTo(debug)
}

// Default returns the global tracer
func Default() *Tracer {
	return globalTracer
}

func (t *Tracer) SetLexer(on bool)  { t.lexer.SetTo(on) }
func (t *Tracer) SetParser(on bool) { t.parser.SetTo(on) }
func (t *Tracer) SetDebug(on bool)  { t.debug.SetTo(on) }
func (t *Tracer) Lexer() bool       { return t.lexer.IsSet() }
func (t *Tracer) Parser() bool      { return t.parser.IsSet() }
func (t *Tracer) Debug() bool       { return t.debug.IsSet() }

func (t *Tracer) printf(format string, args ...interface{}) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.writer, format, args...)
}

// Apply installs or removes the lexer and parser hooks on p according to
// the current switches. Call it before each parse.
func (t *Tracer) Apply(p *parser.Parser) {
	if t.Lexer() {
		p.Lexer().SetTokenHook(t.Token)
	} else {
		p.Lexer().SetTokenHook(nil)
	}
	if t.Parser() {
		p.SetTrace(t)
	} else {
		p.SetTrace(nil)
	}
}

// Token logs a token as it is created
func (t *Tracer) Token(tok parser.Token) {
	t.printf("%s : %s\n", tok.Type.DisplayName(), tok)
}

func lookahead(tok parser.Token) string {
	if tok.Type == parser.TOKEN_EOF {
		return "<EOF>"
	}
	return tok.Value
}

// EnterRule logs entry into a parser rule
func (t *Tracer) EnterRule(rule string, lt parser.Token) {
	t.printf("enter   %s, LT(1)=%s\n", rule, lookahead(lt))
}

// ConsumeToken logs a token being matched
func (t *Tracer) ConsumeToken(tok parser.Token, rule string) {
	t.printf("consume %s rule %s\n", tok, rule)
}

// ExitRule logs exit from a parser rule
func (t *Tracer) ExitRule(rule string, lt parser.Token) {
	t.printf("exit    %s, LT(1)=%s\n", rule, lookahead(lt))
}

// Debugf logs a debug message when debug tracing is on
func (t *Tracer) Debugf(format string, args ...interface{}) {
	if !t.Debug() {
		return
	}
	t.printf("[DEBUG] "+format+"\n", args...)
}

// Debugf logs through the global tracer
func Debugf(format string, args ...interface{}) {
	globalTracer.Debugf(format, args...)
}
