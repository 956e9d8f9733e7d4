package parser

import (
	"github.com/roach88/qss/internal/ast"
	"github.com/roach88/qss/internal/lexer"
	"github.com/roach88/qss/internal/token"
)

// Parser recognizes the grammar
//
//	Document  := Rule*
//	Rule      := '.' Ident '{' FieldList '}'
//	FieldList := (Ident (',' Ident)* ','?)?
//
// as a single-pass predictive parse with one token of lookahead.
// The grammar is LL(1): a dot at top level always starts a rule, an
// identifier inside a block is always a field, and a closing brace
// always ends the field list, so no backtracking is needed.
//
// Policy decisions (fixed, tested):
//   - Trailing commas in a field list are accepted.
//   - An empty field list is accepted, producing a zero-field rule.
//   - Duplicate field names are accepted and preserved in order.
type Parser struct {
	lx *lexer.Lexer

	// cur is the lookahead token every decision is made on.
	cur token.Token
}

// New creates a Parser over src. Returns an error if the first
// token cannot be lexed.
func New(src string) (*Parser, error) {
	p := &Parser{lx: lexer.New(src)}
	if err := p.next(); err != nil {
		return nil, err
	}
	return p, nil
}

// Parse lexes and parses src in one call.
func Parse(src string) (*ast.Document, error) {
	p, err := New(src)
	if err != nil {
		return nil, err
	}
	return p.ParseDocument()
}

// ParseDocument consumes the whole token stream and returns the
// ordered rule list. The first lexer or grammar error aborts the
// parse; there is no recovery and no partial document.
func (p *Parser) ParseDocument() (*ast.Document, error) {
	doc := &ast.Document{}

	for p.cur.Kind != token.EOF {
		if p.cur.Kind != token.DOT {
			return nil, NewExpectedSelectorError(p.cur)
		}
		rule, err := p.parseRule()
		if err != nil {
			return nil, err
		}
		doc.Rules = append(doc.Rules, rule)
	}

	return doc, nil
}

// parseRule parses one `.name { fields }` block. cur is the dot.
func (p *Parser) parseRule() (ast.Rule, error) {
	if err := p.next(); err != nil { // past '.'
		return ast.Rule{}, err
	}

	if p.cur.Kind != token.IDENT {
		return ast.Rule{}, NewUnexpectedTokenError([]token.Kind{token.IDENT}, p.cur)
	}
	rule := ast.Rule{Name: p.cur.Literal}
	if err := p.next(); err != nil {
		return ast.Rule{}, err
	}

	if p.cur.Kind != token.LBRACE {
		return ast.Rule{}, NewUnexpectedTokenError([]token.Kind{token.LBRACE}, p.cur)
	}
	open := p.cur.Pos
	rule.OpenOffset = open.Offset
	if err := p.next(); err != nil {
		return ast.Rule{}, err
	}

	fields, err := p.parseFieldList(rule.Name, open)
	if err != nil {
		return ast.Rule{}, err
	}
	rule.Fields = fields

	// cur is the closing brace; step past it.
	if err := p.next(); err != nil {
		return ast.Rule{}, err
	}
	return rule, nil
}

// parseFieldList parses identifiers up to (not past) the closing
// brace. ruleName and open feed the unterminated-rule diagnostic.
func (p *Parser) parseFieldList(ruleName string, open token.Pos) ([]string, error) {
	var fields []string

	for p.cur.Kind != token.RBRACE {
		switch p.cur.Kind {
		case token.EOF:
			return nil, NewUnterminatedRuleError(ruleName, open)
		case token.IDENT:
			fields = append(fields, p.cur.Literal)
		default:
			return nil, NewUnexpectedTokenError([]token.Kind{token.IDENT, token.RBRACE}, p.cur)
		}
		if err := p.next(); err != nil {
			return nil, err
		}

		// After a field: a comma continues the list (possibly as a
		// tolerated trailing comma), a brace ends it.
		switch p.cur.Kind {
		case token.COMMA:
			if err := p.next(); err != nil {
				return nil, err
			}
		case token.RBRACE:
			// Loop condition ends the list.
		case token.EOF:
			return nil, NewUnterminatedRuleError(ruleName, open)
		default:
			return nil, NewUnexpectedTokenError([]token.Kind{token.COMMA, token.RBRACE}, p.cur)
		}
	}

	return fields, nil
}

// next advances the lookahead by one token.
func (p *Parser) next() error {
	tok, err := p.lx.Next()
	if err != nil {
		return err
	}
	p.cur = tok
	return nil
}
