package parser

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/jturner314/py-literal/value"
)

// Parse reads exactly one Python literal from src: a number, string,
// bytes, boolean, or None, or a tuple, list, set, or dict of literals.
// Surrounding whitespace, comments, and line continuations are
// ignored; anything else left over is a TrailingInput error. Failures
// are reported as *ParseError.
func Parse(src string) (value.Value, error) {
	p := &parser{src: src}
	p.skipSpace()
	v, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if !p.eof() {
		r, _ := utf8.DecodeRuneInString(p.src[p.off:])
		return nil, p.errf(TrailingInput, p.off, "unexpected %q after literal", r)
	}
	return v, nil
}

// The parser is a cursor over the source text. Each parseXXX method
// handles one grammar production and leaves the cursor after the text
// it consumed.
type parser struct {
	src string
	off int
}

func (p *parser) eof() bool {
	return p.off >= len(p.src)
}

func (p *parser) peek() byte {
	if p.eof() {
		return 0
	}
	return p.src[p.off]
}

// position resolves an offset to a line and column. Errors are rare,
// so lines are counted on demand instead of being tracked per token.
func (p *parser) position(off int) Position {
	pre := p.src[:off]
	return Position{
		Offset: off,
		Line:   strings.Count(pre, "\n") + 1,
		Column: off - strings.LastIndexByte(pre, '\n'),
	}
}

func (p *parser) errf(kind ErrorKind, off int, format string, args ...any) *ParseError {
	return &ParseError{
		Kind:    kind,
		Pos:     p.position(off),
		Message: fmt.Sprintf(format, args...),
	}
}

func (p *parser) unclosed(open int, what byte) *ParseError {
	return p.errf(UnexpectedEndOfInput, open, "%q was never closed", what)
}

// skipSpace advances past whitespace, # comments, and backslash line
// continuations, none of which are significant between tokens.
func (p *parser) skipSpace() {
	for !p.eof() {
		switch c := p.src[p.off]; c {
		case ' ', '\t', '\n', '\r', '\v', '\f':
			p.off++
		case '#':
			for !p.eof() && p.src[p.off] != '\n' {
				p.off++
			}
		case '\\':
			switch {
			case strings.HasPrefix(p.src[p.off+1:], "\r\n"):
				p.off += 3
			case strings.HasPrefix(p.src[p.off+1:], "\n"), strings.HasPrefix(p.src[p.off+1:], "\r"):
				p.off += 2
			default:
				return
			}
		default:
			return
		}
	}
}

// parseValue parses one atom: a scalar literal or a fully bracketed
// collection.
func (p *parser) parseValue() (value.Value, error) {
	if p.eof() {
		return nil, p.errf(UnexpectedEndOfInput, p.off, "expected a literal")
	}
	switch p.peek() {
	case '(':
		return p.parseTuple()
	case '[':
		return p.parseList()
	case '{':
		return p.parseSetOrDict()
	case '\'', '"':
		return p.parseStrings()
	}
	switch {
	case p.atWord("None"):
		p.off += len("None")
		return value.Null{}, nil
	case p.atWord("True"):
		p.off += len("True")
		return value.True, nil
	case p.atWord("False"):
		p.off += len("False")
		return value.False, nil
	case p.atStringStart():
		return p.parseStrings()
	case p.atNumberStart():
		return p.parseNumberExpr()
	}
	r, _ := utf8.DecodeRuneInString(p.src[p.off:])
	return nil, p.errf(UnexpectedToken, p.off, "unexpected character %q", r)
}

// parseNumberExpr handles an optional chain of unary signs, one
// numeric literal, and the real+/-imaginary composition that spells a
// full complex value.
func (p *parser) parseNumberExpr() (value.Value, error) {
	neg := p.scanSigns()
	first, err := p.scanNumber()
	if err != nil {
		return nil, err
	}
	if neg {
		first = negate(first)
	}

	switch first.Kind() {
	case value.IntKind, value.FloatKind:
	default:
		return first, nil
	}
	save := p.off
	p.skipSpace()
	if p.eof() || (p.peek() != '+' && p.peek() != '-') {
		p.off = save
		return first, nil
	}

	opOff := p.off
	op := p.peek()
	sub := op == '-'
	p.off++
	p.skipSpace()
	if p.scanSigns() {
		sub = !sub
	}
	right, err := p.scanNumber()
	if err != nil {
		return nil, err
	}
	c, ok := right.(value.Complex)
	if !ok {
		return nil, p.errf(MalformedNumber, opOff, "operand after %q must be an imaginary literal", op)
	}
	im := c.Imag()
	if sub {
		im = -im
	}
	re, err := p.realFloat(first, opOff)
	if err != nil {
		return nil, err
	}
	return value.NewComplex(re, im), nil
}

// scanSigns consumes a run of unary + and - signs, reporting whether
// the result should be negated.
func (p *parser) scanSigns() (neg bool) {
	for !p.eof() {
		switch p.peek() {
		case '+':
		case '-':
			neg = !neg
		default:
			return neg
		}
		p.off++
		p.skipSpace()
	}
	return neg
}

func (p *parser) realFloat(v value.Value, off int) (float64, error) {
	switch v := v.(type) {
	case value.Int:
		f, ok := v.Float64()
		if !ok {
			return 0, p.errf(MalformedNumber, off, "integer too large for the real part of a complex number")
		}
		return f, nil
	case value.Float:
		return v.Float64(), nil
	}
	return 0, p.errf(MalformedNumber, off, "expected a real number")
}

func negate(v value.Value) value.Value {
	switch v := v.(type) {
	case value.Int:
		return v.Neg()
	case value.Float:
		return value.Float(-v.Float64())
	case value.Complex:
		return value.Complex(-complex128(v))
	}
	return v
}

// parseTuple also handles grouping: a parenthesized atom without a
// trailing comma is that atom, not a 1-tuple.
func (p *parser) parseTuple() (value.Value, error) {
	open := p.off
	p.off++
	p.skipSpace()
	if p.eof() {
		return nil, p.unclosed(open, '(')
	}
	switch p.peek() {
	case ')':
		p.off++
		return value.Tuple{}, nil
	case ',':
		return nil, p.errf(MalformedCollection, p.off, "unexpected ',' in tuple")
	}
	first, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.eof() {
		return nil, p.unclosed(open, '(')
	}
	switch p.peek() {
	case ')':
		p.off++
		return first, nil
	case ',':
		p.off++
		rest, err := p.parseSeq(open, ')', "tuple")
		if err != nil {
			return nil, err
		}
		return append(value.Tuple{first}, rest...), nil
	}
	return nil, p.seqDelimErr(p.off, ')', "tuple")
}

func (p *parser) parseList() (value.Value, error) {
	open := p.off
	p.off++
	elems, err := p.parseSeq(open, ']', "list")
	if err != nil {
		return nil, err
	}
	return value.List(elems), nil
}

// parseSeq parses comma-separated atoms up to close, allowing a
// trailing comma. The cursor starts just past the opener or a
// separator.
func (p *parser) parseSeq(open int, close byte, context string) ([]value.Value, error) {
	var elems []value.Value
	for {
		p.skipSpace()
		if p.eof() {
			return nil, p.unclosed(open, openerOf(close))
		}
		switch p.peek() {
		case close:
			p.off++
			return elems, nil
		case ',':
			return nil, p.errf(MalformedCollection, p.off, "unexpected ',' in %s", context)
		}
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		elems = append(elems, v)
		p.skipSpace()
		if p.eof() {
			return nil, p.unclosed(open, openerOf(close))
		}
		switch p.peek() {
		case close:
			p.off++
			return elems, nil
		case ',':
			p.off++
		default:
			return nil, p.seqDelimErr(p.off, close, context)
		}
	}
}

func (p *parser) seqDelimErr(off int, close byte, context string) *ParseError {
	c := p.src[off]
	if c == ')' || c == ']' || c == '}' {
		return p.errf(MalformedCollection, off, "mismatched %q in %s, expected %q", c, context, close)
	}
	return p.errf(MalformedCollection, off, "missing ',' in %s", context)
}

func openerOf(close byte) byte {
	switch close {
	case ')':
		return '('
	case ']':
		return '['
	}
	return '{'
}

// parseSetOrDict disambiguates on the first top-level colon or comma:
// {} is an empty dict, {k: v} a dict, {v} a set.
func (p *parser) parseSetOrDict() (value.Value, error) {
	open := p.off
	p.off++
	p.skipSpace()
	if p.eof() {
		return nil, p.unclosed(open, '{')
	}
	switch p.peek() {
	case '}':
		p.off++
		return value.Dict{}, nil
	case ',':
		return nil, p.errf(MalformedCollection, p.off, "unexpected ','")
	case ':':
		return nil, p.errf(MalformedCollection, p.off, "unexpected ':'")
	}
	first, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.eof() {
		return nil, p.unclosed(open, '{')
	}
	if p.peek() == ':' {
		p.off++
		return p.parseDict(open, first)
	}
	return p.parseSet(open, first)
}

// parseDict parses the remaining entries after the first key and its
// colon. A repeated key keeps its first position but takes the last
// value.
func (p *parser) parseDict(open int, firstKey value.Value) (value.Value, error) {
	var d value.Dict
	key := firstKey
	for {
		p.skipSpace()
		val, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		d = d.Put(key, val)
		p.skipSpace()
		if p.eof() {
			return nil, p.unclosed(open, '{')
		}
		switch p.peek() {
		case '}':
			p.off++
			return d, nil
		case ',':
			p.off++
		default:
			return nil, p.seqDelimErr(p.off, '}', "dict")
		}
		p.skipSpace()
		if p.eof() {
			return nil, p.unclosed(open, '{')
		}
		switch p.peek() {
		case '}':
			p.off++
			return d, nil
		case ',':
			return nil, p.errf(MalformedCollection, p.off, "unexpected ',' in dict")
		}
		key, err = p.parseValue()
		if err != nil {
			return nil, err
		}
		p.skipSpace()
		if p.eof() {
			return nil, p.unclosed(open, '{')
		}
		if p.peek() != ':' {
			return nil, p.errf(MalformedCollection, p.off, "missing ':' in dict entry")
		}
		p.off++
	}
}

// parseSet parses the remaining elements after the first one.
// Structural duplicates collapse to the first occurrence.
func (p *parser) parseSet(open int, first value.Value) (value.Value, error) {
	s := value.Set{}.Add(first)
	for {
		p.skipSpace()
		if p.eof() {
			return nil, p.unclosed(open, '{')
		}
		switch p.peek() {
		case '}':
			p.off++
			return s, nil
		case ':':
			return nil, p.errf(MalformedCollection, p.off, "unexpected ':' in set")
		case ',':
			p.off++
			p.skipSpace()
			if p.eof() {
				return nil, p.unclosed(open, '{')
			}
			switch p.peek() {
			case '}':
				p.off++
				return s, nil
			case ',':
				return nil, p.errf(MalformedCollection, p.off, "unexpected ',' in set")
			}
			v, err := p.parseValue()
			if err != nil {
				return nil, err
			}
			s = s.Add(v)
		default:
			return nil, p.seqDelimErr(p.off, '}', "set")
		}
	}
}

// atWord reports whether the keyword w starts at the cursor and ends
// at a token boundary.
func (p *parser) atWord(w string) bool {
	if !strings.HasPrefix(p.src[p.off:], w) {
		return false
	}
	rest := p.src[p.off+len(w):]
	return rest == "" || !isIdentChar(rest[0])
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentChar(c byte) bool {
	return isLetter(c) || isDigit(c) || c == '_' || c >= 0x80
}

func lower(c byte) byte {
	return c | 0x20
}
