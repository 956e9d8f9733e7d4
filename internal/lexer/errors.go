package lexer

import (
	"errors"
	"fmt"

	"github.com/roach88/qss/internal/token"
)

// LexError represents a character-level failure: input that cannot
// start or continue any valid token. It is the only error kind the
// lexer raises, and it is fatal to the whole run.
type LexError struct {
	// Code identifies the error category.
	Code LexErrorCode

	// Message is a human-readable description.
	Message string

	// Char is the offending character, if any. Zero for errors that
	// are not tied to a single character (unterminated comment).
	Char rune

	// Pos locates the failure in the source text.
	Pos token.Pos
}

// LexErrorCode categorizes lexer errors.
type LexErrorCode string

const (
	// ErrCodeUnexpectedChar indicates a character that cannot start
	// or continue any token.
	ErrCodeUnexpectedChar LexErrorCode = "UNEXPECTED_CHAR"

	// ErrCodeUnterminatedComment indicates a comment opened with /*
	// that never closes before end of input.
	ErrCodeUnterminatedComment LexErrorCode = "UNTERMINATED_COMMENT"
)

// Error implements the error interface.
func (e *LexError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Pos, e.Code, e.Message)
}

// IsLexError returns true if the error is a LexError.
// Uses errors.As to handle wrapped errors.
func IsLexError(err error) bool {
	var le *LexError
	return errors.As(err, &le)
}

// NewUnexpectedCharError creates a LexError for an unrecognized character.
func NewUnexpectedCharError(ch rune, pos token.Pos) *LexError {
	return &LexError{
		Code:    ErrCodeUnexpectedChar,
		Message: fmt.Sprintf("unexpected character %q", ch),
		Char:    ch,
		Pos:     pos,
	}
}

// NewUnterminatedCommentError creates a LexError for a comment that
// reaches end of input unclosed. Pos is the comment opening.
func NewUnterminatedCommentError(pos token.Pos) *LexError {
	return &LexError{
		Code:    ErrCodeUnterminatedComment,
		Message: "comment opened here is never closed",
		Pos:     pos,
	}
}
