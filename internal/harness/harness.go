package harness

import (
	"errors"
	"fmt"

	"github.com/roach88/qss/internal/lexer"
	"github.com/roach88/qss/internal/parser"
	"github.com/roach88/qss/internal/token"
	"github.com/roach88/qss/internal/translate"
)

// Result captures one scenario execution.
type Result struct {
	// SQL is the generated output when translation succeeded.
	SQL string

	// TranslateErr is the core error when translation failed.
	TranslateErr error
}

// Run executes a scenario's input through the full pipeline and
// checks it against the scenario's expectation. The returned error
// is a conformance failure (or nil); the raw outcome is in Result
// either way, so callers can print what actually happened.
func Run(s *Scenario) (*Result, error) {
	sql, err := translate.Translate(s.Input)
	result := &Result{SQL: sql, TranslateErr: err}

	if s.WantError != nil {
		return result, checkError(s, err)
	}

	if err != nil {
		return result, fmt.Errorf("expected success, got error: %v", err)
	}
	if sql != *s.WantSQL {
		return result, fmt.Errorf("SQL mismatch:\n  want: %q\n  got:  %q", *s.WantSQL, sql)
	}
	return result, nil
}

// checkError verifies a failure matches the scenario's expectation.
func checkError(s *Scenario, err error) error {
	if err == nil {
		return fmt.Errorf("expected error %s, translation succeeded", s.WantError.Code)
	}

	code, pos, ok := classify(err)
	if !ok {
		return fmt.Errorf("expected error %s, got unclassified error: %v", s.WantError.Code, err)
	}

	if code != s.WantError.Code {
		return fmt.Errorf("error code mismatch: want %s, got %s (%v)", s.WantError.Code, code, err)
	}
	if s.WantError.Line != 0 && pos.Line != s.WantError.Line {
		return fmt.Errorf("error line mismatch: want %d, got %d (%v)", s.WantError.Line, pos.Line, err)
	}
	if s.WantError.Column != 0 && pos.Column != s.WantError.Column {
		return fmt.Errorf("error column mismatch: want %d, got %d (%v)", s.WantError.Column, pos.Column, err)
	}
	return nil
}

// classify extracts the structured code and position from a core error.
func classify(err error) (string, token.Pos, bool) {
	var lexErr *lexer.LexError
	if errors.As(err, &lexErr) {
		return string(lexErr.Code), lexErr.Pos, true
	}
	var parseErr *parser.ParseError
	if errors.As(err, &parseErr) {
		return string(parseErr.Code), parseErr.Pos, true
	}
	return "", token.Pos{}, false
}
