package repl

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
	"github.com/pkg/errors"
)

// ScanReader reads lines from a non-interactive stream. It writes each
// prompt and, when echo is on, the line it read, so a piped session reads
// like a terminal transcript.
type ScanReader struct {
	scanner *bufio.Scanner
	out     io.Writer
	echo    bool
}

// NewScanReader creates a reader over in that prompts to out
func NewScanReader(in io.Reader, out io.Writer, echo bool) *ScanReader {
	return &ScanReader{scanner: bufio.NewScanner(in), out: out, echo: echo}
}

// Prompt implements LineReader
func (r *ScanReader) Prompt(prompt string) (string, error) {
	if r.out != nil {
		fmt.Fprint(r.out, prompt)
	}
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", err
		}
		if r.out != nil {
			fmt.Fprintln(r.out)
		}
		return "", io.EOF
	}
	line := r.scanner.Text()
	if r.echo && r.out != nil {
		fmt.Fprintln(r.out, line)
	}
	return line, nil
}

// LineEditor reads from the terminal with line editing and history
type LineEditor struct {
	state   *liner.State
	history string
}

// NewLineEditor starts line editing on the terminal. History is loaded
// from historyPath when it is set; a missing file is not an error.
func NewLineEditor(historyPath string) *LineEditor {
	state := liner.NewLiner()
	state.SetCtrlCAborts(true)
	if historyPath != "" {
		if f, err := os.Open(historyPath); err == nil {
			_, _ = state.ReadHistory(f)
			_ = f.Close()
		}
	}
	return &LineEditor{state: state, history: historyPath}
}

// Prompt implements LineReader
func (e *LineEditor) Prompt(prompt string) (string, error) {
	line, err := e.state.Prompt(prompt)
	if err == liner.ErrPromptAborted {
		return "", ErrAborted
	}
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(line) != "" {
		e.state.AppendHistory(line)
	}
	return line, nil
}

// Close restores the terminal and saves history
func (e *LineEditor) Close() error {
	defer e.state.Close()
	if e.history == "" {
		return nil
	}
	f, err := os.Create(e.history)
	if err != nil {
		return errors.Wrapf(err, "saving history to %s", e.history)
	}
	defer f.Close()
	if _, err := e.state.WriteHistory(f); err != nil {
		return errors.Wrapf(err, "saving history to %s", e.history)
	}
	return nil
}
