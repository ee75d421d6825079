package conformance

// TestSuite represents a complete YAML test file
type TestSuite struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description,omitempty"`
	Tests       []TestCase `yaml:"tests"`
}

// TestCase is one session: the lines typed at the REPL, or a whole
// program run in file mode
type TestCase struct {
	Name        string      `yaml:"name"`
	Description string      `yaml:"description,omitempty"`
	Skip        interface{} `yaml:"skip,omitempty"` // bool or string
	Mode        string      `yaml:"mode,omitempty"` // repl (default) | file
	Input       string      `yaml:"input"`
	Expect      Expectation `yaml:"expect"`
}

// Expectation defines what a session must print
type Expectation struct {
	Output   *string  `yaml:"output,omitempty"`   // exact stdout
	Errors   *string  `yaml:"errors,omitempty"`   // exact stderr
	Contains []string `yaml:"contains,omitempty"` // stdout substrings
	Reports  []string `yaml:"reports,omitempty"`  // stderr substrings
	Match    string   `yaml:"match,omitempty"`    // regex over stdout
	Fails    bool     `yaml:"fails,omitempty"`    // file mode returns an error
}

// IsEmpty reports whether the expectation checks nothing
func (e Expectation) IsEmpty() bool {
	return e.Output == nil && e.Errors == nil && len(e.Contains) == 0 && len(e.Reports) == 0 && e.Match == "" && !e.Fails
}

// IsSkipped returns true if this test should be skipped
func (tc *TestCase) IsSkipped() (bool, string) {
	if tc.Skip == nil {
		return false, ""
	}

	switch v := tc.Skip.(type) {
	case bool:
		if v {
			return true, "skipped"
		}
		return false, ""
	case string:
		return true, v
	default:
		return false, ""
	}
}
