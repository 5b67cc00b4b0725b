package parser

import "fmt"

// ErrorKind classifies parse failures.
type ErrorKind string

const (
	MalformedNumber      = ErrorKind("malformed number")
	MalformedString      = ErrorKind("malformed string")
	MalformedCollection  = ErrorKind("malformed collection")
	UnexpectedToken      = ErrorKind("unexpected token")
	TrailingInput        = ErrorKind("trailing input")
	UnexpectedEndOfInput = ErrorKind("unexpected end of input")
)

// Position is a byte offset into the source and the 1-based line and
// column it falls on.
type Position struct {
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// ParseError reports where and why a parse failed. No partial Value
// accompanies a ParseError.
type ParseError struct {
	Kind    ErrorKind
	Pos     Position
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at %s: %s", e.Kind, e.Pos, e.Message)
}
