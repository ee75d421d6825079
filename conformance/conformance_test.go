package conformance

import (
	"testing"
)

func TestConformance(t *testing.T) {
	tests, err := LoadAllTests(TestPath)
	if err != nil {
		t.Fatalf("Failed to load tests: %v", err)
	}
	if len(tests) == 0 {
		t.Fatal("No tests loaded")
	}

	runner := NewRunner()
	results := runner.RunAll(tests)
	stats := ComputeStats(results)

	// Group results by file for organized output
	fileGroups := make(map[string][]TestResult)
	for _, result := range results {
		fileGroups[result.Test.File] = append(fileGroups[result.Test.File], result)
	}

	for file, fileResults := range fileGroups {
		t.Run(file, func(t *testing.T) {
			for _, result := range fileResults {
				t.Run(result.Test.Test.Name, func(t *testing.T) {
					if result.Skipped {
						t.Skipf("Skipped: %s", result.SkipReason)
					} else if !result.Passed {
						t.Errorf("Test failed: %v\nstderr: %s", result.Error, result.Stderr)
					}
				})
			}
		})
	}

	t.Logf("\n=== Summary ===\n%s", FormatStats(stats))
}

func TestYAMLParsing(t *testing.T) {
	tests, err := LoadAllTests(TestPath)
	if err != nil {
		t.Fatalf("YAML parsing failed: %v", err)
	}

	names := make(map[string]bool)
	for i, test := range tests {
		if test.Test.Name == "" {
			t.Errorf("Test %d in %s has no name", i, test.File)
		}
		key := test.File + "/" + test.Test.Name
		if names[key] {
			t.Errorf("Duplicate test %s", key)
		}
		names[key] = true

		if test.Test.Expect.IsEmpty() {
			t.Errorf("Test %s in %s has no expectation", test.Test.Name, test.File)
		}
	}
	t.Logf("All %d tests parsed successfully", len(tests))
}

func TestRunnerEcho(t *testing.T) {
	runner := &Runner{Echo: true}
	want := "> 1\n1.0\n> quit\nExiting...\n"
	result := runner.Run(LoadedTest{Test: TestCase{
		Name:   "echo",
		Input:  "1\nquit\n",
		Expect: Expectation{Output: &want},
	}})
	if !result.Passed {
		t.Errorf("echo transcript: %v", result.Error)
	}
}

func TestRunnerReportsMismatch(t *testing.T) {
	want := "16.0\n"
	result := NewRunner().Run(LoadedTest{Test: TestCase{
		Name:   "wrong",
		Input:  "7 + 8\n",
		Expect: Expectation{Output: &want},
	}})
	if result.Passed || result.Error == nil {
		t.Fatal("mismatched output passed")
	}
	if result.Stdout != "15.0\n" {
		t.Errorf("Stdout = %q", result.Stdout)
	}
}

func TestRunnerSkip(t *testing.T) {
	tests := []struct {
		skip   interface{}
		want   bool
		reason string
	}{
		{nil, false, ""},
		{false, false, ""},
		{true, true, "skipped"},
		{"not yet", true, "not yet"},
	}
	for _, tt := range tests {
		tc := TestCase{Skip: tt.skip}
		skipped, reason := tc.IsSkipped()
		if skipped != tt.want || reason != tt.reason {
			t.Errorf("IsSkipped(%v) = %v, %q; want %v, %q", tt.skip, skipped, reason, tt.want, tt.reason)
		}
	}
}

func TestStats(t *testing.T) {
	stats := ComputeStats([]TestResult{{Passed: true}, {Skipped: true}, {}, {Passed: true}})
	if got := FormatStats(stats); got != "2 passed, 1 failed, 1 skipped (4 total)" {
		t.Errorf("FormatStats = %q", got)
	}
}
