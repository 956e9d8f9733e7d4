package sqlgen

import (
	"fmt"
	"strings"

	"github.com/roach88/qss/internal/ast"
)

// Generator renders a parsed document as SQL projection statements.
//
// Generation is a single pass in document order: no reordering, no
// deduplication, no sorting of rules or fields. Identifiers pass
// through unchanged - no quoting or escaping is performed, matching
// the trusted-input contract of the pipeline. The generator never
// writes anywhere itself; it returns text and the caller owns the
// sink.
type Generator struct{}

// New creates a Generator.
func New() *Generator {
	return &Generator{}
}

// Generate renders each rule as one statement of the form
//
//	SELECT <f1>, <f2>, ... FROM <name>;
//
// with fields joined by ", " in declared order. Statements are
// joined by single newlines with no trailing newline; an empty
// document yields an empty string.
func (g *Generator) Generate(doc *ast.Document) (string, error) {
	if doc == nil {
		return "", fmt.Errorf("cannot generate from nil document")
	}

	stmts := make([]string, len(doc.Rules))
	for i, rule := range doc.Rules {
		stmts[i] = g.generateRule(rule)
	}

	return strings.Join(stmts, "\n"), nil
}

// generateRule renders a single rule.
//
// Zero-field policy: a rule with no fields emits the degenerate
// statement `SELECT FROM <name>;` verbatim rather than failing.
// Fields are explicit projections, so no implicit wildcard is
// substituted; whatever consumes the SQL decides what a projection
// of nothing means.
func (g *Generator) generateRule(rule ast.Rule) string {
	if len(rule.Fields) == 0 {
		return fmt.Sprintf("SELECT FROM %s;", rule.Name)
	}
	return fmt.Sprintf("SELECT %s FROM %s;", strings.Join(rule.Fields, ", "), rule.Name)
}
