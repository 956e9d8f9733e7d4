package cli

import (
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// LoadError represents an error that occurred while obtaining source text.
type LoadError struct {
	Code    string
	Message string
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Error code constants - unified across all CLI commands.
const (
	ErrCodeGeneric     = "E001" // Generic/unknown error
	ErrCodeNotFound    = "E002" // Source path not found
	ErrCodeReadFailed  = "E003" // Source read error
	ErrCodeNotUTF8     = "E004" // Source is not valid UTF-8
	ErrCodeWriteFailed = "E005" // Output write error
	ErrCodeDBFailed    = "E006" // Database open/query error
)

// StdinPath is the conventional argument meaning "read from stdin".
const StdinPath = "-"

// ReadSource obtains the full stylesheet text for one invocation.
// path names a file, or StdinPath to read stdin to exhaustion.
//
// The text must be valid UTF-8 and is normalized to Unicode NFC
// before it reaches the lexer, so visually identical source spells
// the same identifiers regardless of how an editor encoded them.
// The core itself never touches files or streams; everything is
// read here, up front, into one in-memory blob.
func ReadSource(path string, stdin io.Reader) (string, error) {
	var data []byte
	var err error

	if path == StdinPath {
		data, err = io.ReadAll(stdin)
		if err != nil {
			return "", &LoadError{Code: ErrCodeReadFailed, Message: fmt.Sprintf("reading stdin: %v", err)}
		}
	} else {
		data, err = os.ReadFile(path)
		if os.IsNotExist(err) {
			return "", &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("source file not found: %s", path)}
		}
		if err != nil {
			return "", &LoadError{Code: ErrCodeReadFailed, Message: fmt.Sprintf("reading %s: %v", path, err)}
		}
	}

	if !utf8.Valid(data) {
		return "", &LoadError{Code: ErrCodeNotUTF8, Message: fmt.Sprintf("source is not valid UTF-8: %s", displayPath(path))}
	}

	return norm.NFC.String(string(data)), nil
}

// displayPath renders the source path for diagnostics.
func displayPath(path string) string {
	if path == StdinPath {
		return "<stdin>"
	}
	return path
}
