package parser

import (
	"errors"
	"fmt"
	"strings"
)

// SyntaxError is a lexing or parsing failure
type SyntaxError struct {
	Pos   Position
	Msg   string
	AtEOF bool // offending token was end of input
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d:%d %s", e.Pos.Line, e.Pos.Column, e.Msg)
}

// SyntaxErrors is every syntax error found in one parse, in order
type SyntaxErrors []*SyntaxError

func (errs SyntaxErrors) Error() string {
	lines := make([]string, len(errs))
	for i, err := range errs {
		lines[i] = err.Error()
	}
	return strings.Join(lines, "\n")
}

// IsIncomplete reports whether err means the input ended too early: the
// first syntax error was raised at end of input, so more text could still
// make the input valid.
func IsIncomplete(err error) bool {
	var errs SyntaxErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		return errs[0].AtEOF
	}
	var one *SyntaxError
	if errors.As(err, &one) {
		return one.AtEOF
	}
	return false
}
