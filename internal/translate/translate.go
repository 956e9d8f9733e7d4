// Package translate is the pipeline facade: source text in, SQL text
// out, in one synchronous pass with no side effects.
//
// The pipeline is strictly linear:
//
//	source → lexer → tokens → parser → document → sqlgen → SQL
//
// Each stage owns its output exclusively and hands it to the next by
// value; nothing is shared, cached, or retained between calls. Any
// lexer or parser error aborts the run with no output - there is no
// partial-success mode.
package translate

import (
	"github.com/roach88/qss/internal/parser"
	"github.com/roach88/qss/internal/sqlgen"
)

// Translate compiles one stylesheet source blob to SQL text.
//
// Errors are the structured types from the lexer and parser
// packages (*lexer.LexError, *parser.ParseError), each carrying an
// exact source position; callers render them, the core does not.
func Translate(src string) (string, error) {
	doc, err := parser.Parse(src)
	if err != nil {
		return "", err
	}
	return sqlgen.New().Generate(doc)
}
