package parser

import (
	"errors"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/jturner314/py-literal/value"
)

// scanNumber lexes one unsigned numeric literal at the cursor: an
// integer in any radix, a float, or an imaginary (j-suffixed) number.
// Signs are the grammar driver's job.
func (p *parser) scanNumber() (value.Value, error) {
	if p.eof() {
		return nil, p.errf(UnexpectedEndOfInput, p.off, "expected a number")
	}
	if v, ok, err := p.scanFloatWord(); ok || err != nil {
		return v, err
	}

	start := p.off
	if p.peek() == '0' && p.off+1 < len(p.src) {
		switch lower(p.src[p.off+1]) {
		case 'x':
			return p.scanRadix(start, 16, isHexDigit)
		case 'o':
			return p.scanRadix(start, 8, isOctalDigit)
		case 'b':
			return p.scanRadix(start, 2, isBinaryDigit)
		}
	}

	intPart, err := p.scanDigits(isDigit, false)
	if err != nil {
		return nil, err
	}
	isFloat := false
	fracPart := ""
	if p.peek() == '.' {
		p.off++
		isFloat = true
		fracPart, err = p.scanDigits(isDigit, false)
		if err != nil {
			return nil, err
		}
		if intPart == "" && fracPart == "" {
			return nil, p.errf(MalformedNumber, start, "float literal needs digits around '.'")
		}
	}
	if intPart == "" && fracPart == "" {
		return nil, p.errf(MalformedNumber, start, "expected digits")
	}
	if c := lower(p.peek()); c == 'e' {
		expOff := p.off
		p.off++
		if p.peek() == '+' || p.peek() == '-' {
			p.off++
		}
		expDigits, err := p.scanDigits(isDigit, false)
		if err != nil {
			return nil, err
		}
		if expDigits == "" {
			return nil, p.errf(MalformedNumber, expOff, "exponent has no digits")
		}
		isFloat = true
	}
	isImag := false
	if c := lower(p.peek()); c == 'j' {
		p.off++
		isImag = true
	}
	if err := p.checkNumberEnd(); err != nil {
		return nil, err
	}

	text := strings.ReplaceAll(p.src[start:p.off], "_", "")
	switch {
	case isImag:
		f, err := p.parseFloatText(start, strings.TrimRight(text, "jJ"))
		if err != nil {
			return nil, err
		}
		return value.NewComplex(0, f), nil
	case isFloat:
		f, err := p.parseFloatText(start, text)
		if err != nil {
			return nil, err
		}
		return value.Float(f), nil
	}
	// CPython rejects decimal integers with leading zeros
	if len(intPart) > 1 && intPart[0] == '0' && strings.Trim(intPart, "0") != "" {
		return nil, p.errf(MalformedNumber, start, "leading zeros in decimal integer literal are not permitted")
	}
	n, ok := new(big.Int).SetString(intPart, 10)
	if !ok {
		return nil, p.errf(MalformedNumber, start, "invalid integer literal %q", text)
	}
	return value.NewInt(n), nil
}

func (p *parser) scanRadix(start, base int, valid func(byte) bool) (value.Value, error) {
	p.off += 2
	digits, err := p.scanDigits(valid, true)
	if err != nil {
		return nil, err
	}
	if digits == "" {
		return nil, p.errf(MalformedNumber, start, "missing digits after %q", p.src[start:start+2])
	}
	if err := p.checkNumberEnd(); err != nil {
		return nil, err
	}
	n, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return nil, p.errf(MalformedNumber, start, "invalid base-%d literal %q", base, p.src[start:p.off])
	}
	return value.NewInt(n), nil
}

// scanDigits consumes a run of digits with single interior underscore
// separators and returns the run with underscores stripped. An
// underscore directly after a radix prefix is the one place a leading
// separator is legal.
func (p *parser) scanDigits(valid func(byte) bool, afterPrefix bool) (string, error) {
	var b strings.Builder
	for !p.eof() {
		c := p.peek()
		if c == '_' {
			if b.Len() == 0 && !afterPrefix {
				return "", p.errf(MalformedNumber, p.off, "underscore must follow a digit")
			}
			if p.off+1 >= len(p.src) || !valid(p.src[p.off+1]) {
				return "", p.errf(MalformedNumber, p.off, "underscore must precede a digit")
			}
			p.off++
			continue
		}
		if !valid(c) {
			break
		}
		b.WriteByte(c)
		p.off++
	}
	return b.String(), nil
}

// checkNumberEnd rejects identifier characters glued to the end of a
// numeric literal, such as 123abc or 0b102.
func (p *parser) checkNumberEnd() error {
	if !p.eof() && isIdentChar(p.peek()) {
		return p.errf(MalformedNumber, p.off, "invalid character %q in number", rune(p.peek()))
	}
	return nil
}

func (p *parser) parseFloatText(start int, text string) (float64, error) {
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		// overflow follows Python: 1e999 is inf
		var ne *strconv.NumError
		if errors.As(err, &ne) && errors.Is(ne.Err, strconv.ErrRange) {
			return f, nil
		}
		return 0, p.errf(MalformedNumber, start, "invalid float literal %q", text)
	}
	return f, nil
}

var floatWords = []struct {
	word string
	val  float64
}{
	{"inf", math.Inf(1)},
	{"nan", math.NaN()},
}

// matchFloatWord recognizes the inf and nan spellings (with an
// optional j suffix) at the cursor and returns their length. They are
// not Python source literals, but the formatter emits them for
// overflowed or NaN floats and re-parsing canonical output has to
// succeed.
func (p *parser) matchFloatWord() (n int, val float64, imag bool) {
	for _, w := range floatWords {
		if !strings.HasPrefix(p.src[p.off:], w.word) {
			continue
		}
		end := p.off + len(w.word)
		imag = false
		if end < len(p.src) && lower(p.src[end]) == 'j' {
			imag = true
			end++
		}
		if end < len(p.src) && isIdentChar(p.src[end]) {
			continue
		}
		return end - p.off, w.val, imag
	}
	return 0, 0, false
}

func (p *parser) scanFloatWord() (value.Value, bool, error) {
	n, val, imag := p.matchFloatWord()
	if n == 0 {
		return nil, false, nil
	}
	p.off += n
	if imag {
		return value.NewComplex(0, val), true, nil
	}
	return value.Float(val), true, nil
}

func (p *parser) atNumberStart() bool {
	switch c := p.peek(); {
	case c == '+' || c == '-' || isDigit(c):
		return true
	case c == '.':
		return p.off+1 < len(p.src) && isDigit(p.src[p.off+1])
	}
	n, _, _ := p.matchFloatWord()
	return n > 0
}

func isHexDigit(c byte) bool {
	return isDigit(c) || (lower(c) >= 'a' && lower(c) <= 'f')
}

func isOctalDigit(c byte) bool {
	return c >= '0' && c <= '7'
}

func isBinaryDigit(c byte) bool {
	return c == '0' || c == '1'
}
