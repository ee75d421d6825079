package repl

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"

	"littlecalc/eval"
	"littlecalc/parser"
	"littlecalc/trace"
)

// ErrAborted is returned by a LineReader when the user abandons the line
// being edited (Ctrl-C). The session drops any pending input.
var ErrAborted = errors.New("input aborted")

// LineReader supplies input lines. Prompt shows prompt and returns the
// next line without its terminator, or io.EOF at end of input.
type LineReader interface {
	Prompt(prompt string) (string, error)
}

// Options configure a Session
type Options struct {
	Prompt         string // default "> "
	ContinuePrompt string // default "| "
	Continuation   string // line suffix that asks for another line, default "\"
	Out            io.Writer
	Err            io.Writer
	Tracer         *trace.Tracer
	Color          bool
}

// Session is one interactive run. Input is collected into a buffer until
// it parses as a complete unit, which is then validated and executed.
// Variables persist for the life of the session.
type Session struct {
	reader LineReader
	parser *parser.Parser
	interp *eval.Interpreter
	tracer *trace.Tracer
	out    io.Writer

	prompt       string
	contPrompt   string
	continuation string

	buffer string
}

// NewSession creates a session reading from reader
func NewSession(reader LineReader, opts Options) *Session {
	if opts.Prompt == "" {
		opts.Prompt = "> "
	}
	if opts.ContinuePrompt == "" {
		opts.ContinuePrompt = "| "
	}
	if opts.Continuation == "" {
		opts.Continuation = `\`
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Err == nil {
		opts.Err = os.Stderr
	}
	if opts.Tracer == nil {
		opts.Tracer = trace.New(opts.Out)
	}
	return &Session{
		reader: reader,
		parser: parser.NewParser(""),
		interp: eval.NewInterpreter(eval.Options{
			Out:    opts.Out,
			Err:    opts.Err,
			Tracer: opts.Tracer,
			Color:  opts.Color,
		}),
		tracer:       opts.Tracer,
		out:          opts.Out,
		prompt:       opts.Prompt,
		contPrompt:   opts.ContinuePrompt,
		continuation: opts.Continuation,
	}
}

// Interpreter returns the session's validator/executor pair
func (s *Session) Interpreter() *eval.Interpreter {
	return s.interp
}

// Pending reports whether input is buffered awaiting completion
func (s *Session) Pending() bool {
	return s.buffer != ""
}

func (s *Session) currentPrompt() string {
	if s.Pending() {
		return s.contPrompt
	}
	return s.prompt
}

// Run reads and processes lines until quit or end of input
func (s *Session) Run() error {
	for {
		line, err := s.reader.Prompt(s.currentPrompt())
		if err == io.EOF {
			return nil
		}
		if err == ErrAborted {
			s.buffer = ""
			continue
		}
		if err != nil {
			return errors.Wrap(err, "reading input")
		}
		if s.Feed(line) {
			return nil
		}
	}
}

// Feed processes one input line and reports whether the session should
// end.
func (s *Session) Feed(line string) bool {
	if strings.TrimSpace(line) == "quit" {
		fmt.Fprintln(s.out, "Exiting...")
		return true
	}

	text := s.buffer + line + "\n"
	if trimmed := strings.TrimRight(text, " \t\r\n"); strings.HasSuffix(trimmed, s.continuation) {
		s.buffer = strings.TrimSuffix(trimmed, s.continuation)
		return false
	}
	if strings.TrimSpace(text) == "" {
		s.buffer = ""
		return false
	}

	s.parser.Reset(text)
	s.tracer.Apply(s.parser)
	prog, err := s.parser.ParseReplInput()
	if err != nil {
		if parser.IsIncomplete(err) && onlyHidden(s.parser.Tokens()) {
			// comments and blanks only
			s.buffer = ""
			return false
		}
		if parser.IsIncomplete(err) {
			trace.Debugf("incomplete input, %d syntax errors", s.parser.NumberOfSyntaxErrors())
			s.buffer = text
			return false
		}
		for _, serr := range s.parser.Errors() {
			s.interp.Reporter.Report(serr.Error())
		}
		s.buffer = ""
		return false
	}

	s.buffer = ""
	// Diagnostics and runtime errors are reported by the interpreter
	_ = s.interp.Run(prog)
	s.interp.Validator.Reset()
	return false
}

func onlyHidden(ts *parser.TokenStream) bool {
	ts.Fill()
	for i := 0; i < ts.Size(); i++ {
		tok := ts.Get(i)
		if tok.Type != parser.TOKEN_EOF && !tok.Hidden() {
			return false
		}
	}
	return true
}
