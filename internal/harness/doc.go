// Package harness runs declarative conformance scenarios for the
// translation pipeline.
//
// A scenario is a YAML file naming one input stylesheet and either
// the exact SQL it must produce or the exact error (code, line,
// column) it must fail with. Scenarios live in testdata/scenarios
// and are executed by the package tests; successful scenarios are
// additionally pinned with golden files under testdata/golden.
//
// Scenarios are the end-to-end layer: the lexer, parser, and
// generator packages each carry their own unit tests, while the
// harness asserts the whole pipe behaves as documented from text in
// to text out.
package harness
