package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario defines one conformance test: an input stylesheet and
// exactly one expectation, either generated SQL or a translation
// error.
type Scenario struct {
	// Name uniquely identifies this scenario. It is also the golden
	// file name for scenarios that expect SQL.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Input is the stylesheet source text. May be empty: the empty
	// stylesheet is itself a specified case (empty output, no error).
	Input string `yaml:"input"`

	// WantSQL is the exact expected output blob. Set for scenarios
	// that must translate cleanly; nil when WantError is set.
	WantSQL *string `yaml:"want_sql,omitempty"`

	// WantError describes the expected failure. Set for scenarios
	// that must be rejected; nil when WantSQL is set.
	WantError *ErrorExpectation `yaml:"want_error,omitempty"`
}

// ErrorExpectation pins down a translation failure exactly.
type ErrorExpectation struct {
	// Code is the structured error code, e.g. "UNTERMINATED_RULE".
	Code string `yaml:"code"`

	// Line and Column are the expected 1-based error position.
	// Zero means "don't check" for that coordinate.
	Line   int `yaml:"line,omitempty"`
	Column int `yaml:"column,omitempty"`
}

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	// Parse YAML with strict field validation (catches typos like "want_err:")
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// validateScenario checks that required fields are present and that
// exactly one expectation is declared.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if s.WantSQL == nil && s.WantError == nil {
		return fmt.Errorf("one of want_sql or want_error is required")
	}
	if s.WantSQL != nil && s.WantError != nil {
		return fmt.Errorf("want_sql and want_error are mutually exclusive")
	}

	if s.WantError != nil {
		if s.WantError.Code == "" {
			return fmt.Errorf("want_error.code is required")
		}
		if s.WantError.Line < 0 || s.WantError.Column < 0 {
			return fmt.Errorf("want_error position must be non-negative")
		}
	}

	return nil
}
