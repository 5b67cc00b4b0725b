package value

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Format renders v as canonical Python literal text. Formatting is
// total: every Value has a rendering. The one spelling that does not
// survive a re-parse is the empty set, which renders as set() because
// the literal grammar has no empty-set form ({} is an empty dict).
func Format(v Value) string {
	var b strings.Builder
	writeValue(&b, v)
	return b.String()
}

func writeValue(b *strings.Builder, v Value) {
	switch v := v.(type) {
	case Null:
		b.WriteString("None")
	case Boolean:
		if v {
			b.WriteString("True")
		} else {
			b.WriteString("False")
		}
	case Int:
		b.WriteString(v.n.String())
	case Float:
		b.WriteString(formatFloat((float64)(v)))
	case Complex:
		writeComplex(b, v)
	case String:
		writeString(b, (string)(v))
	case Bytes:
		writeBytes(b, v)
	case Tuple:
		writeTuple(b, v)
	case List:
		b.WriteByte('[')
		writeElems(b, v)
		b.WriteByte(']')
	case Set:
		if len(v) == 0 {
			b.WriteString("set()")
			return
		}
		b.WriteByte('{')
		writeElems(b, v)
		b.WriteByte('}')
	case Dict:
		b.WriteByte('{')
		for i, e := range v.Entries {
			if i > 0 {
				b.WriteString(", ")
			}
			writeValue(b, e.Key)
			b.WriteString(": ")
			writeValue(b, e.Value)
		}
		b.WriteByte('}')
	default:
		// Foreign Value implementations are outside the contract but
		// should still render something.
		fmt.Fprintf(b, "%v", v.NativeValue())
	}
}

// formatFloat keeps a decimal point or exponent in the rendering so
// the text re-parses as a float, not an int.
func formatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		if math.Signbit(f) {
			return "-nan"
		}
		return "nan"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// writeComplex emits <real><sign><imag>j, omitting a positive-zero
// real part the way Python spells purely imaginary numbers. The real
// part stays when the imaginary rendering opens with '-': re-parsing
// a bare "-5.0j" would negate the whole value and flip the implicit
// zero real part to -0.0.
func writeComplex(b *strings.Builder, c Complex) {
	im := formatFloat(c.Imag())
	if math.Float64bits(c.Real()) == 0 && !strings.HasPrefix(im, "-") {
		b.WriteString(im)
		b.WriteByte('j')
		return
	}
	b.WriteString(formatFloat(c.Real()))
	if !strings.HasPrefix(im, "-") {
		b.WriteByte('+')
	}
	b.WriteString(im)
	b.WriteByte('j')
}

func writeString(b *strings.Builder, s string) {
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			switch {
			case r < 0x20 || r == 0x7f:
				fmt.Fprintf(b, `\x%02x`, r)
			case r < 0x80 || strconv.IsPrint(r):
				b.WriteRune(r)
			case r <= 0xffff:
				fmt.Fprintf(b, `\u%04x`, r)
			default:
				fmt.Fprintf(b, `\U%08x`, r)
			}
		}
	}
	b.WriteByte('"')
}

func writeBytes(b *strings.Builder, data []byte) {
	b.WriteString(`b"`)
	for _, c := range data {
		switch c {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if c < 0x20 || c > 0x7e {
				fmt.Fprintf(b, `\x%02x`, c)
			} else {
				b.WriteByte(c)
			}
		}
	}
	b.WriteByte('"')
}

// writeTuple keeps the trailing comma on single-element tuples so they
// re-parse as tuples rather than grouped atoms.
func writeTuple(b *strings.Builder, t Tuple) {
	b.WriteByte('(')
	writeElems(b, t)
	if len(t) == 1 {
		b.WriteByte(',')
	}
	b.WriteByte(')')
}

func writeElems(b *strings.Builder, vals []Value) {
	for i, v := range vals {
		if i > 0 {
			b.WriteString(", ")
		}
		writeValue(b, v)
	}
}
