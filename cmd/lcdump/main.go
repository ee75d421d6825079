package main

import (
	"fmt"
	"log"
	"os"

	"git.sr.ht/~sircmpwn/getopt"

	"littlecalc/parser"
)

// lcdump prints the parse tree or the token list of a LittleCalc file
func main() {
	log.SetFlags(0)
	log.SetPrefix("lcdump: ")

	opts, optind, err := getopt.Getopts(os.Args, "th")
	if err != nil {
		log.Fatalln(err)
	}
	tokens := false
	for _, opt := range opts {
		switch opt.Option {
		case 't':
			tokens = true
		case 'h':
			fmt.Println("usage: lcdump [-t] file")
			return
		}
	}
	args := os.Args[optind:]
	if len(args) != 1 {
		log.Fatalln("usage: lcdump [-t] file")
	}

	src, err := os.ReadFile(args[0])
	if err != nil {
		log.Fatalf("%v", err)
	}

	p := parser.NewParser(string(src))
	prog, err := p.ParseProgram()
	if err != nil {
		for _, serr := range p.Errors() {
			fmt.Fprintln(os.Stderr, serr)
		}
		os.Exit(1)
	}

	if tokens {
		prog.Tokens.Fill()
		for _, tok := range prog.Tokens.Range(0, prog.Tokens.Size()-1) {
			fmt.Println(tok)
		}
		return
	}
	fmt.Println(parser.ToStringTree(prog.Stmts))
}
