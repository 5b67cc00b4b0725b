package parser

import (
	"strings"
	"unicode/utf8"

	"github.com/jturner314/py-literal/value"
)

// parseStrings parses one string or bytes literal plus any adjacent
// literals, concatenating them into a single value. Adjacent literals
// must agree on kind: 'a' 'b' and b'a' b'b' concatenate, a mix fails.
func (p *parser) parseStrings() (value.Value, error) {
	result, err := p.scanString()
	if err != nil {
		return nil, err
	}
	for {
		save := p.off
		p.skipSpace()
		if !p.atStringStart() {
			p.off = save
			return result, nil
		}
		kindOff := p.off
		next, err := p.scanString()
		if err != nil {
			return nil, err
		}
		switch r := result.(type) {
		case value.String:
			n, ok := next.(value.String)
			if !ok {
				return nil, p.errf(MalformedString, kindOff, "cannot concatenate string and bytes literals")
			}
			result = r + n
		case value.Bytes:
			n, ok := next.(value.Bytes)
			if !ok {
				return nil, p.errf(MalformedString, kindOff, "cannot concatenate string and bytes literals")
			}
			result = value.Bytes(append(append([]byte(nil), r...), n...))
		}
	}
}

// atStringStart reports whether the cursor sits at an opening quote,
// optionally behind one or two prefix letters.
func (p *parser) atStringStart() bool {
	i := p.off
	for i < len(p.src) && i-p.off < 2 && isLetter(p.src[i]) {
		i++
	}
	return i < len(p.src) && (p.src[i] == '\'' || p.src[i] == '"')
}

// scanString lexes a single quoted literal: optional prefix, opening
// delimiter (short or triple), body, closing delimiter.
func (p *parser) scanString() (value.Value, error) {
	start := p.off
	for !p.eof() && isLetter(p.peek()) {
		p.off++
	}
	var raw, isBytes bool
	switch strings.ToLower(p.src[start:p.off]) {
	case "", "u":
	case "r":
		raw = true
	case "b":
		isBytes = true
	case "rb", "br":
		raw, isBytes = true, true
	default:
		return nil, p.errf(MalformedString, start, "invalid string prefix %q", p.src[start:p.off])
	}
	if p.eof() || (p.peek() != '\'' && p.peek() != '"') {
		return nil, p.errf(MalformedString, start, "expected quote after string prefix")
	}
	q := p.peek()
	p.off++
	triple := false
	if p.off+1 < len(p.src) && p.src[p.off] == q && p.src[p.off+1] == q {
		triple = true
		p.off += 2
	}

	var sb strings.Builder
	var bb []byte
	emit := func(c byte) {
		if isBytes {
			bb = append(bb, c)
		} else {
			sb.WriteByte(c)
		}
	}
	for {
		if p.eof() {
			return nil, p.errf(MalformedString, start, "unterminated string literal")
		}
		switch c := p.src[p.off]; {
		case c == q:
			if !triple {
				p.off++
				return p.finishString(start, isBytes, &sb, bb)
			}
			if p.off+2 < len(p.src) && p.src[p.off+1] == q && p.src[p.off+2] == q {
				p.off += 3
				return p.finishString(start, isBytes, &sb, bb)
			}
			emit(c)
			p.off++
		case c == '\n' || c == '\r':
			if !triple {
				return nil, p.errf(MalformedString, p.off, "newline before closing quote")
			}
			emit(c)
			p.off++
		case c == '\\' && raw:
			// raw literals keep the backslash, but it still shields
			// the next character from terminating the literal
			if p.off+1 >= len(p.src) {
				return nil, p.errf(MalformedString, start, "unterminated string literal")
			}
			nxt := p.src[p.off+1]
			if isBytes && nxt >= 0x80 {
				return nil, p.errf(MalformedString, p.off+1, "bytes literal can only contain ASCII characters")
			}
			emit('\\')
			emit(nxt)
			p.off += 2
		case c == '\\':
			if err := p.decodeEscape(isBytes, &sb, &bb); err != nil {
				return nil, err
			}
		default:
			if isBytes && c >= 0x80 {
				return nil, p.errf(MalformedString, p.off, "bytes literal can only contain ASCII characters")
			}
			emit(c)
			p.off++
		}
	}
}

// finishString closes out a scanned literal. String content must be
// valid UTF-8; source bytes that are not, such as a stray \xff, are
// rejected the way CPython rejects non-UTF-8 source.
func (p *parser) finishString(start int, isBytes bool, sb *strings.Builder, bb []byte) (value.Value, error) {
	if isBytes {
		return value.Bytes(bb), nil
	}
	s := sb.String()
	if !utf8.ValidString(s) {
		return nil, p.errf(MalformedString, start, "string literal is not valid UTF-8")
	}
	return value.String(s), nil
}

// decodeEscape interprets one backslash escape. An escape the current
// literal kind does not recognize is an error, never a passthrough.
func (p *parser) decodeEscape(isBytes bool, sb *strings.Builder, bb *[]byte) error {
	slash := p.off
	p.off++
	if p.eof() {
		return p.errf(MalformedString, slash, "unterminated string literal")
	}
	emit := func(c byte) {
		if isBytes {
			*bb = append(*bb, c)
		} else {
			sb.WriteByte(c)
		}
	}
	switch c := p.src[p.off]; {
	case c == '\n':
		p.off++
	case c == '\r':
		p.off++
		if !p.eof() && p.peek() == '\n' {
			p.off++
		}
	case c == '\\' || c == '\'' || c == '"':
		emit(c)
		p.off++
	case c == 'a':
		emit(0x07)
		p.off++
	case c == 'b':
		emit(0x08)
		p.off++
	case c == 'f':
		emit(0x0c)
		p.off++
	case c == 'n':
		emit('\n')
		p.off++
	case c == 'r':
		emit('\r')
		p.off++
	case c == 't':
		emit('\t')
		p.off++
	case c == 'v':
		emit(0x0b)
		p.off++
	case isOctalDigit(c):
		v := 0
		for n := 0; n < 3 && !p.eof() && isOctalDigit(p.peek()); n++ {
			v = v*8 + int(p.peek()-'0')
			p.off++
		}
		if isBytes {
			if v > 0xff {
				return p.errf(MalformedString, slash, "octal escape value %o out of range for bytes", v)
			}
			emit(byte(v))
		} else {
			sb.WriteRune(rune(v))
		}
	case c == 'x':
		p.off++
		v, err := p.scanHex(slash, 2, `\x`)
		if err != nil {
			return err
		}
		if isBytes {
			emit(byte(v))
		} else {
			sb.WriteRune(rune(v))
		}
	case c == 'u' && !isBytes:
		p.off++
		v, err := p.scanHex(slash, 4, `\u`)
		if err != nil {
			return err
		}
		return p.emitRune(slash, sb, rune(v))
	case c == 'U' && !isBytes:
		p.off++
		v, err := p.scanHex(slash, 8, `\U`)
		if err != nil {
			return err
		}
		return p.emitRune(slash, sb, rune(v))
	case c == 'N' && !isBytes:
		return p.errf(MalformedString, slash, "unicode name escapes are not supported")
	default:
		return p.errf(MalformedString, slash, `invalid escape sequence '\%c'`, c)
	}
	return nil
}

func (p *parser) emitRune(slash int, sb *strings.Builder, r rune) error {
	if !utf8.ValidRune(r) {
		return p.errf(MalformedString, slash, "escape %#x is not a valid code point", r)
	}
	sb.WriteRune(r)
	return nil
}

func (p *parser) scanHex(slash, n int, what string) (int, error) {
	v := 0
	for i := 0; i < n; i++ {
		if p.eof() || !isHexDigit(p.peek()) {
			return 0, p.errf(MalformedString, slash, "truncated %s escape", what)
		}
		v = v*16 + hexVal(p.peek())
		p.off++
	}
	return v, nil
}

func hexVal(c byte) int {
	if isDigit(c) {
		return int(c - '0')
	}
	return int(lower(c)-'a') + 10
}
