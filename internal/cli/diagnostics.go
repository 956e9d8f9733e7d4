package cli

import (
	"errors"
	"fmt"

	"github.com/roach88/qss/internal/lexer"
	"github.com/roach88/qss/internal/parser"
	"github.com/roach88/qss/internal/token"
)

// Diagnostic is the position-annotated form of a core error,
// shared by the compile, check, and tokens commands.
type Diagnostic struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Line    int    `json:"line,omitempty"`
	Column  int    `json:"column,omitempty"`
	Offset  int    `json:"offset,omitempty"`
}

// diagnose converts a lexer or parser error into a Diagnostic.
// Unknown error types map to the generic code with no position.
func diagnose(err error) Diagnostic {
	var lexErr *lexer.LexError
	if errors.As(err, &lexErr) {
		return Diagnostic{
			Code:    string(lexErr.Code),
			Message: lexErr.Message,
			Line:    lexErr.Pos.Line,
			Column:  lexErr.Pos.Column,
			Offset:  lexErr.Pos.Offset,
		}
	}

	var parseErr *parser.ParseError
	if errors.As(err, &parseErr) {
		return Diagnostic{
			Code:    string(parseErr.Code),
			Message: parseErr.Message,
			Line:    parseErr.Pos.Line,
			Column:  parseErr.Pos.Column,
			Offset:  parseErr.Pos.Offset,
		}
	}

	return Diagnostic{Code: ErrCodeGeneric, Message: err.Error()}
}

// pos reconstructs the token position of a diagnostic.
func (d Diagnostic) pos() token.Pos {
	return token.Pos{Offset: d.Offset, Line: d.Line, Column: d.Column}
}

// render formats the diagnostic as "path:line:col  CODE: message".
func (d Diagnostic) render(path string) string {
	if d.pos().IsValid() {
		return fmt.Sprintf("%s:%d:%d\n  %s: %s", displayPath(path), d.Line, d.Column, d.Code, d.Message)
	}
	return fmt.Sprintf("%s: %s: %s", displayPath(path), d.Code, d.Message)
}

// outputDiagnostic emits a core error in the configured format and
// returns the command's ExitError.
func outputDiagnostic(formatter *OutputFormatter, path string, err error, exitCode int) error {
	d := diagnose(err)
	if formatter.Format == "json" {
		_ = formatter.Error(d.Code, d.Message, d)
	} else {
		fmt.Fprintln(formatter.Writer, d.render(path))
	}
	return WrapExitError(exitCode, fmt.Sprintf("%s: %s", d.Code, d.Message), err)
}
