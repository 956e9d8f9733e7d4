package token

import "fmt"

// Kind classifies a lexical token.
type Kind string

const (
	// DOT marks the start of a selector (".users").
	DOT Kind = "DOT"

	// IDENT is a selector or field name: a letter or underscore followed
	// by letters, digits, hyphens, or underscores.
	IDENT Kind = "IDENT"

	// LBRACE and RBRACE delimit a rule's field list.
	LBRACE Kind = "LBRACE"
	RBRACE Kind = "RBRACE"

	// COMMA separates fields inside a rule.
	COMMA Kind = "COMMA"

	// EOF is emitted exactly once, after the last real token, so the
	// parser can detect completion without relying on exhaustion.
	EOF Kind = "EOF"
)

// Pos locates a token (or error) in the source text.
// Offset is a 0-based byte offset; Line and Column are 1-based,
// with Column counting runes, not bytes.
type Pos struct {
	Offset int
	Line   int
	Column int
}

// IsValid reports whether the position has been set.
// The zero Pos (line 0) is not a real source position.
func (p Pos) IsValid() bool {
	return p.Line > 0
}

// String renders the position as "line:column" for diagnostics.
func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token is a single classified lexical unit. Tokens are values:
// the lexer produces them, the parser consumes and discards them.
type Token struct {
	Kind    Kind
	Literal string
	Pos     Pos
}

// String renders the token for debug output (the tokens command).
func (t Token) String() string {
	if t.Kind == EOF {
		return fmt.Sprintf("%s %s", t.Pos, t.Kind)
	}
	return fmt.Sprintf("%s %s %q", t.Pos, t.Kind, t.Literal)
}
