package conformance

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"littlecalc/eval"
	"littlecalc/repl"
	"littlecalc/trace"
)

// TestResult represents the outcome of running a single test
type TestResult struct {
	Test       LoadedTest
	Passed     bool
	Skipped    bool
	SkipReason string
	Error      error
	Stdout     string
	Stderr     string
}

// Runner executes conformance tests. Every test gets a fresh session.
type Runner struct {
	// Echo makes REPL tests write prompts and input lines to stdout, so
	// expected output reads like a terminal transcript
	Echo bool
}

// NewRunner creates a new test runner
func NewRunner() *Runner {
	return &Runner{}
}

// Run executes a single test case
func (r *Runner) Run(test LoadedTest) TestResult {
	if skipped, reason := test.Test.IsSkipped(); skipped {
		return TestResult{
			Test:       test,
			Skipped:    true,
			SkipReason: reason,
		}
	}

	var stdout, stderr bytes.Buffer
	tracer := trace.New(&stdout)
	var runErr error

	switch test.Test.Mode {
	case "", "repl":
		reader := repl.NewScanReader(strings.NewReader(test.Test.Input), nil, false)
		if r.Echo {
			reader = repl.NewScanReader(strings.NewReader(test.Test.Input), &stdout, true)
		}
		session := repl.NewSession(reader, repl.Options{Out: &stdout, Err: &stderr, Tracer: tracer})
		if err := session.Run(); err != nil {
			return TestResult{Test: test, Error: fmt.Errorf("session: %w", err)}
		}
	case "file":
		in := eval.NewInterpreter(eval.Options{Out: &stdout, Err: &stderr, Tracer: tracer})
		runErr = in.RunSource(test.Test.Input)
	default:
		return TestResult{Test: test, Error: fmt.Errorf("unknown mode %q", test.Test.Mode)}
	}

	err := checkExpectation(test.Test.Expect, stdout.String(), stderr.String(), runErr)
	return TestResult{
		Test:   test,
		Passed: err == nil,
		Error:  err,
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}
}

// RunAll executes all loaded tests
func (r *Runner) RunAll(tests []LoadedTest) []TestResult {
	results := make([]TestResult, len(tests))
	for i, test := range tests {
		results[i] = r.Run(test)
	}
	return results
}

// SummaryStats computes statistics from test results
type SummaryStats struct {
	Total   int
	Passed  int
	Failed  int
	Skipped int
}

// ComputeStats generates statistics from test results
func ComputeStats(results []TestResult) SummaryStats {
	stats := SummaryStats{Total: len(results)}
	for _, r := range results {
		if r.Skipped {
			stats.Skipped++
		} else if r.Passed {
			stats.Passed++
		} else {
			stats.Failed++
		}
	}
	return stats
}

// FormatStats returns a human-readable summary
func FormatStats(stats SummaryStats) string {
	return fmt.Sprintf("%d passed, %d failed, %d skipped (%d total)",
		stats.Passed, stats.Failed, stats.Skipped, stats.Total)
}

// checkExpectation compares what a session printed against expect
func checkExpectation(expect Expectation, stdout, stderr string, runErr error) error {
	if expect.Output != nil && stdout != *expect.Output {
		return fmt.Errorf("stdout = %q, want %q", stdout, *expect.Output)
	}
	if expect.Errors != nil && stderr != *expect.Errors {
		return fmt.Errorf("stderr = %q, want %q", stderr, *expect.Errors)
	}
	for _, want := range expect.Contains {
		if !strings.Contains(stdout, want) {
			return fmt.Errorf("stdout %q does not contain %q", stdout, want)
		}
	}
	for _, want := range expect.Reports {
		if !strings.Contains(stderr, want) {
			return fmt.Errorf("stderr %q does not contain %q", stderr, want)
		}
	}
	if expect.Match != "" {
		re, err := regexp.Compile(expect.Match)
		if err != nil {
			return fmt.Errorf("bad match pattern %q: %w", expect.Match, err)
		}
		if !re.MatchString(stdout) {
			return fmt.Errorf("stdout %q does not match %q", stdout, expect.Match)
		}
	}
	if expect.Fails != (runErr != nil) {
		return fmt.Errorf("run error = %v, want failure %v", runErr, expect.Fails)
	}
	return nil
}
