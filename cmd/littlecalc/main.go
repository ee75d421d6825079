package main

import (
	"fmt"
	"log"
	"os"

	"git.sr.ht/~sircmpwn/getopt"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"

	"littlecalc/config"
	"littlecalc/eval"
	"littlecalc/repl"
	"littlecalc/trace"
	"littlecalc/types"
)

const usage = `usage: littlecalc [-d] [-c config.yaml] [-f file | file]

  -c FILE  read settings from FILE (YAML)
  -d       print debug messages
  -f FILE  run FILE instead of starting the REPL
  -h       show this help
`

func main() {
	log.SetFlags(0)
	log.SetPrefix("littlecalc: ")

	opts, optind, err := getopt.Getopts(os.Args, "c:df:h")
	if err != nil {
		log.Fatalln(err)
	}
	var configPath, file string
	debug := false
	for _, opt := range opts {
		switch opt.Option {
		case 'c':
			configPath = opt.Value
		case 'd':
			debug = true
		case 'f':
			file = opt.Value
		case 'h':
			fmt.Print(usage)
			return
		}
	}
	args := os.Args[optind:]
	if file == "" && len(args) > 0 {
		file = args[0]
		args = args[1:]
	}
	if len(args) > 0 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("%v", err)
	}
	trace.Init(debug || cfg.Debug, os.Stderr)

	defer reportImplementationError()

	tracer := trace.New(os.Stdout)
	tracer.SetDebug(debug || cfg.Debug)
	tracer.SetLexer(cfg.Tracing.Lexer)
	tracer.SetParser(cfg.Tracing.Parser)
	color := cfg.Color && isatty.IsTerminal(os.Stderr.Fd())

	if file != "" {
		os.Exit(runFile(file, tracer, color))
	}
	if err := runREPL(cfg, tracer, color); err != nil {
		log.Fatalf("%v", err)
	}
}

// runFile runs a whole program and returns the exit status
func runFile(path string, tracer *trace.Tracer, color bool) int {
	src, err := os.ReadFile(path)
	if err != nil {
		log.Printf("%v", err)
		return 1
	}
	trace.Debugf("running %s (%d bytes)", path, len(src))
	in := eval.NewInterpreter(eval.Options{Out: os.Stdout, Err: os.Stderr, Tracer: tracer, Color: color})
	if err := in.RunSource(string(src)); err != nil {
		return 1
	}
	return 0
}

func runREPL(cfg *config.Config, tracer *trace.Tracer, color bool) error {
	var reader repl.LineReader
	if isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd()) {
		editor := repl.NewLineEditor(cfg.HistoryPath())
		defer func() {
			if err := editor.Close(); err != nil {
				log.Printf("%v", err)
			}
		}()
		reader = editor
	} else {
		reader = repl.NewScanReader(os.Stdin, os.Stdout, true)
	}

	session := repl.NewSession(reader, repl.Options{
		Prompt:         cfg.Prompt,
		ContinuePrompt: cfg.ContinuePrompt,
		Continuation:   cfg.Continuation,
		Out:            os.Stdout,
		Err:            os.Stderr,
		Tracer:         tracer,
		Color:          color,
	})
	return session.Run()
}

// reportImplementationError prints an internal invariant failure with its
// stack before crashing
func reportImplementationError() {
	r := recover()
	if r == nil {
		return
	}
	if err, ok := r.(error); ok {
		var impl *types.ImplementationError
		if errors.As(err, &impl) {
			fmt.Fprintf(os.Stderr, "%+v\n", err)
			os.Exit(70)
		}
	}
	panic(r)
}
