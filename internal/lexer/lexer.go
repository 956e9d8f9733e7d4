package lexer

import (
	"unicode"
	"unicode/utf8"

	"github.com/roach88/qss/internal/token"
)

// Lexer converts stylesheet source text into a token stream.
//
// The lexer is a pure function of its input: it holds no external
// state and performs no I/O. It is restartable from scratch (New a
// fresh one) but not resumable mid-stream. Whitespace and comment
// regions are skipped without emitting tokens. After the last real
// token, Next returns an explicit EOF token forever.
type Lexer struct {
	input   string
	pos     int  // byte offset of ch
	readPos int  // byte offset just past ch
	ch      rune // current rune; 0 means end of input
	line    int  // 1-based line of ch
	col     int  // 1-based rune column of ch
}

// New creates a Lexer positioned at the start of input.
// The input is assumed to be well-formed UTF-8; the caller (the CLI
// loader) rejects and normalizes input before lexing.
func New(input string) *Lexer {
	l := &Lexer{input: input, line: 1}
	l.readChar()
	return l
}

// Next returns the next token, or a *LexError if the input contains
// a character that cannot start any token, or a comment that is
// never closed. Once EOF is reached, Next keeps returning EOF.
func (l *Lexer) Next() (token.Token, error) {
	if err := l.skipSpaceAndComments(); err != nil {
		return token.Token{}, err
	}

	pos := l.position()

	switch {
	case l.ch == 0:
		return token.Token{Kind: token.EOF, Pos: pos}, nil
	case l.ch == '.':
		l.readChar()
		return token.Token{Kind: token.DOT, Literal: ".", Pos: pos}, nil
	case l.ch == '{':
		l.readChar()
		return token.Token{Kind: token.LBRACE, Literal: "{", Pos: pos}, nil
	case l.ch == '}':
		l.readChar()
		return token.Token{Kind: token.RBRACE, Literal: "}", Pos: pos}, nil
	case l.ch == ',':
		l.readChar()
		return token.Token{Kind: token.COMMA, Literal: ",", Pos: pos}, nil
	case isIdentStart(l.ch):
		return token.Token{Kind: token.IDENT, Literal: l.readIdent(), Pos: pos}, nil
	default:
		return token.Token{}, NewUnexpectedCharError(l.ch, pos)
	}
}

// Tokens lexes the entire input, EOF token included.
// On error it returns the tokens read so far plus the error.
func (l *Lexer) Tokens() ([]token.Token, error) {
	var toks []token.Token
	for {
		tok, err := l.Next()
		if err != nil {
			return toks, err
		}
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks, nil
		}
	}
}

// position captures the location of the current rune.
func (l *Lexer) position() token.Pos {
	return token.Pos{Offset: l.pos, Line: l.line, Column: l.col}
}

// readChar advances to the next rune, maintaining line/column.
func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.col = 0
	}
	if l.readPos >= len(l.input) {
		if l.pos < len(l.input) || l.col == 0 {
			l.col++
		}
		l.ch = 0
		l.pos = len(l.input)
		return
	}
	r, w := utf8.DecodeRuneInString(l.input[l.readPos:])
	l.ch = r
	l.pos = l.readPos
	l.readPos += w
	l.col++
}

// peekChar returns the rune after the current one without advancing.
func (l *Lexer) peekChar() rune {
	if l.readPos >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPos:])
	return r
}

// skipSpaceAndComments consumes whitespace and /* ... */ comment
// regions. A comment that reaches end of input unclosed is a
// LexError positioned at the comment opening.
func (l *Lexer) skipSpaceAndComments() error {
	for {
		switch {
		case unicode.IsSpace(l.ch):
			l.readChar()
		case l.ch == '/' && l.peekChar() == '*':
			open := l.position()
			l.readChar() // consume '/'
			l.readChar() // consume '*'
			for {
				if l.ch == 0 {
					return NewUnterminatedCommentError(open)
				}
				if l.ch == '*' && l.peekChar() == '/' {
					l.readChar()
					l.readChar()
					break
				}
				l.readChar()
			}
		default:
			return nil
		}
	}
}

// readIdent consumes an identifier run starting at the current rune.
func (l *Lexer) readIdent() string {
	start := l.pos
	for isIdentPart(l.ch) {
		l.readChar()
	}
	return l.input[start:l.pos]
}

// isIdentStart reports whether r can begin an identifier.
func isIdentStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

// isIdentPart reports whether r can continue an identifier.
// Hyphens are legal mid-identifier, matching selector naming.
func isIdentPart(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_'
}
