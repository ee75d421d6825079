package eval

import (
	"io"
	"os"

	"github.com/pkg/errors"

	"littlecalc/parser"
	"littlecalc/trace"
)

// ErrInvalid is returned when validation rejects a program. The
// diagnostics themselves have already been reported.
var ErrInvalid = errors.New("program has semantic errors")

// Options configure an Interpreter
type Options struct {
	Out    io.Writer     // program output, default os.Stdout
	Err    io.Writer     // diagnostics, default os.Stderr
	Tracer *trace.Tracer // default: a new tracer writing to Out
	Color  bool          // color diagnostics
}

// Interpreter pairs a validator and an executor that share a session:
// bindings made by one program are visible to the next.
type Interpreter struct {
	Validator *Validator
	Executor  *Executor
	Reporter  *Reporter
	Tracer    *trace.Tracer
}

// NewInterpreter creates an Interpreter
func NewInterpreter(opts Options) *Interpreter {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Err == nil {
		opts.Err = os.Stderr
	}
	if opts.Tracer == nil {
		opts.Tracer = trace.New(opts.Out)
	}
	reporter := NewReporter(opts.Err, opts.Color)
	return &Interpreter{
		Validator: NewValidator(reporter),
		Executor:  NewExecutor(opts.Out, opts.Tracer),
		Reporter:  reporter,
		Tracer:    opts.Tracer,
	}
}

// Run validates prog and, when it is clean, executes it. Runtime errors
// are reported and returned.
func (in *Interpreter) Run(prog *parser.Program) error {
	if !in.Validator.Validate(prog) {
		return ErrInvalid
	}
	if err := in.Executor.Exec(prog); err != nil {
		in.Reporter.Report(err.Error())
		return err
	}
	return nil
}

// RunSource parses src as a whole program and runs it. Syntax errors are
// reported and returned; nothing is executed when there are any.
func (in *Interpreter) RunSource(src string) error {
	p := parser.NewParser(src)
	in.Tracer.Apply(p)
	prog, err := p.ParseProgram()
	if err != nil {
		for _, serr := range p.Errors() {
			in.Reporter.Report(serr.Error())
		}
		return err
	}
	defer in.Validator.Reset()
	return in.Run(prog)
}
