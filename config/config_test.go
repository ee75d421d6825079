package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kr/pretty"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "littlecalc.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	for _, path := range []string{"", filepath.Join(t.TempDir(), "missing.yaml")} {
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load(%q): %v", path, err)
		}
		if diff := pretty.Diff(Default(), cfg); len(diff) > 0 {
			t.Errorf("Load(%q) differs from defaults: %v", path, diff)
		}
	}
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
prompt: "calc> "
continuation: "..."
history_file: ""
color: false
debug: true
tracing:
  parser: true
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	want := &Config{
		Prompt:         "calc> ",
		ContinuePrompt: "| ",
		Continuation:   "...",
		Debug:          true,
		Tracing:        Tracing{Parser: true},
	}
	if diff := pretty.Diff(want, cfg); len(diff) > 0 {
		t.Errorf("config differs: %v", diff)
	}
	if cfg.HistoryPath() != "" {
		t.Errorf("HistoryPath = %q with history off", cfg.HistoryPath())
	}
}

func TestLoadEmptyFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Prompt != "> " {
		t.Errorf("Prompt = %q", cfg.Prompt)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		body string
		msg  string
	}{
		{"promt: x\n", "field promt not found"},
		{"color: [1\n", "config: parse"},
		{"continuation: \" \"\n", "continuation must not be blank"},
		{"prompt: \"a\\nb\"\n", "prompts must fit on one line"},
	}
	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			if err == nil || !strings.Contains(err.Error(), tt.msg) {
				t.Errorf("error = %v, want it to mention %q", err, tt.msg)
			}
		})
	}
}

func TestHistoryPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	cfg := Default()
	if got, want := cfg.HistoryPath(), filepath.Join(home, ".littlecalc_history"); got != want {
		t.Errorf("HistoryPath = %q, want %q", got, want)
	}
	cfg.HistoryFile = "/tmp/h"
	if cfg.HistoryPath() != "/tmp/h" {
		t.Errorf("HistoryPath = %q", cfg.HistoryPath())
	}
}
