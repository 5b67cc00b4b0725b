// Package pyliteral parses Python literal expressions into an
// immutable Value tree and formats Values back into canonical literal
// text. It covers what Python's ast.literal_eval accepts: strings,
// bytes, numbers (including complex), tuples, lists, dicts, sets,
// booleans, and None, without ever running a Python interpreter.
package pyliteral

import (
	"github.com/jturner314/py-literal/parser"
	"github.com/jturner314/py-literal/value"
)

// Parse reads a single Python literal from src. On failure the error
// is a *parser.ParseError carrying the failure kind and position.
func Parse(src string) (value.Value, error) {
	return parser.Parse(src)
}

// Format renders v as canonical Python literal text. For every v that
// Parse can produce, Parse(Format(v)) yields a structurally equal
// value.
func Format(v value.Value) string {
	return value.Format(v)
}
