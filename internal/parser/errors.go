package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/roach88/qss/internal/token"
)

// ParseError represents a structural grammar violation.
//
// Parse errors are fatal to the whole run: there is no partial or
// recovered document, and the parser surfaces the first error it
// encounters. ParseError includes structured fields so callers can
// render exact, position-annotated diagnostics.
type ParseError struct {
	// Code identifies the error category.
	Code ParseErrorCode

	// Message is a human-readable description.
	Message string

	// Pos locates the failure. For unterminated rules this is the
	// position of the `{` that opened the block, not end of input.
	Pos token.Pos

	// Rule names the affected rule (unterminated rules only).
	Rule string

	// Expected lists the token kinds that would have been accepted
	// (unexpected-token errors only).
	Expected []token.Kind

	// Found is the token actually encountered.
	Found token.Token
}

// ParseErrorCode categorizes parse errors.
type ParseErrorCode string

const (
	// ErrCodeUnterminatedRule indicates end of input was reached
	// before a rule's closing brace.
	ErrCodeUnterminatedRule ParseErrorCode = "UNTERMINATED_RULE"

	// ErrCodeUnexpectedToken indicates a token that does not fit the
	// grammar at its position.
	ErrCodeUnexpectedToken ParseErrorCode = "UNEXPECTED_TOKEN"

	// ErrCodeExpectedSelector indicates a top-level token that is
	// neither a selector start nor end of input.
	ErrCodeExpectedSelector ParseErrorCode = "EXPECTED_SELECTOR"
)

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Pos, e.Code, e.Message)
}

// IsUnterminatedRule returns true if the error is an unterminated
// rule error. Uses errors.As to handle wrapped errors.
func IsUnterminatedRule(err error) bool {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Code == ErrCodeUnterminatedRule
	}
	return false
}

// IsParseError returns true if the error is a ParseError.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}

// NewUnterminatedRuleError creates a ParseError for a rule whose
// block never closes. open is the position of the opening brace.
func NewUnterminatedRuleError(rule string, open token.Pos) *ParseError {
	return &ParseError{
		Code:    ErrCodeUnterminatedRule,
		Message: fmt.Sprintf("unterminated rule %q: block opened here is never closed", rule),
		Pos:     open,
		Rule:    rule,
	}
}

// NewUnexpectedTokenError creates a ParseError describing what was
// expected versus what was found.
func NewUnexpectedTokenError(expected []token.Kind, found token.Token) *ParseError {
	return &ParseError{
		Code:     ErrCodeUnexpectedToken,
		Message:  fmt.Sprintf("expected %s, found %s", kindList(expected), describe(found)),
		Pos:      found.Pos,
		Expected: expected,
		Found:    found,
	}
}

// NewExpectedSelectorError creates a ParseError for a top-level
// token that cannot start a rule.
func NewExpectedSelectorError(found token.Token) *ParseError {
	return &ParseError{
		Code:     ErrCodeExpectedSelector,
		Message:  fmt.Sprintf("expected selector name, found %s", describe(found)),
		Pos:      found.Pos,
		Expected: []token.Kind{token.DOT},
		Found:    found,
	}
}

// kindList renders expected kinds as "IDENT or RBRACE".
func kindList(kinds []token.Kind) string {
	parts := make([]string, len(kinds))
	for i, k := range kinds {
		parts[i] = string(k)
	}
	return strings.Join(parts, " or ")
}

// describe renders a found token for diagnostics.
func describe(tok token.Token) string {
	if tok.Kind == token.EOF {
		return "end of input"
	}
	return fmt.Sprintf("%s %q", tok.Kind, tok.Literal)
}
