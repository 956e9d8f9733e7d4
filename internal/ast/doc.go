// Package ast defines the structural representation of a parsed
// stylesheet: an ordered list of rules, each mapping a selector name
// to an ordered list of field identifiers.
//
// The tree is deliberately minimal. There are no expression nodes,
// no nesting, and no cross-references: the grammar is flat, so the
// document is a flat list. Values are immutable by convention once
// the parser returns them; nothing in this package mutates a built
// Document.
//
// ORDER IS MEANING:
//
// Rule order in a Document determines statement order in the output.
// Field order in a Rule determines column order in the generated
// projection. Duplicates are preserved, not collapsed - the tree
// records exactly what was declared, and semantic judgement is left
// to whatever consumes the generated SQL.
package ast
