package config

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds the settings of an interpreter session
type Config struct {
	Prompt         string  `yaml:"prompt"`
	ContinuePrompt string  `yaml:"continue_prompt"`
	Continuation   string  `yaml:"continuation"`
	HistoryFile    string  `yaml:"history_file"`
	Color          bool    `yaml:"color"`
	Debug          bool    `yaml:"debug"`
	Tracing        Tracing `yaml:"tracing"`
}

// Tracing is the tracing state a session starts with
type Tracing struct {
	Lexer  bool `yaml:"lexer"`
	Parser bool `yaml:"parser"`
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		Prompt:         "> ",
		ContinuePrompt: "| ",
		Continuation:   `\`,
		HistoryFile:    "~/.littlecalc_history",
		Color:          true,
	}
}

// Load reads the YAML file at path over the defaults. An empty path or a
// file that does not exist yields the defaults. Unknown keys are errors.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "config: open %s", path)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return nil, errors.Wrapf(err, "config: parse %s", path)
	}
	if err := cfg.validate(); err != nil {
		return nil, errors.Wrapf(err, "config: %s", path)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.Continuation) == "" {
		return errors.New("continuation must not be blank")
	}
	if strings.ContainsAny(c.Prompt+c.ContinuePrompt, "\r\n") {
		return errors.New("prompts must fit on one line")
	}
	return nil
}

// HistoryPath returns HistoryFile with a leading "~" expanded, or "" when
// history is off.
func (c *Config) HistoryPath() string {
	if c.HistoryFile == "" {
		return ""
	}
	if c.HistoryFile == "~" || strings.HasPrefix(c.HistoryFile, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		return filepath.Join(home, strings.TrimPrefix(c.HistoryFile[1:], "/"))
	}
	return c.HistoryFile
}
