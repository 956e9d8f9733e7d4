package ast

import "strings"

// Rule is the unit of translation: one `.name { fields }` block.
// Name is the selector identifier (the query source name). Fields
// holds the declared identifiers in declaration order; duplicates
// are permitted and preserved.
type Rule struct {
	Name string

	// Fields are the declared field identifiers, in order.
	// A nil or empty slice is a valid, zero-field rule.
	Fields []string

	// OpenOffset is the byte offset of the `{` that opened this
	// rule's block. Diagnostics for unterminated rules point here.
	OpenOffset int
}

// Selector renders the rule's selector as written in source.
func (r Rule) Selector() string {
	return "." + r.Name
}

// String renders the rule in source form, one field per comma.
// Used for debug output only; generation lives in sqlgen.
func (r Rule) String() string {
	var b strings.Builder
	b.WriteString(r.Selector())
	b.WriteString(" { ")
	b.WriteString(strings.Join(r.Fields, ", "))
	b.WriteString(" }")
	return b.String()
}

// Document is the top-level parse result: an ordered sequence of
// rules. Order is significant and must be preserved by consumers.
type Document struct {
	Rules []Rule
}

// Empty reports whether the document contains no rules.
func (d *Document) Empty() bool {
	return len(d.Rules) == 0
}
