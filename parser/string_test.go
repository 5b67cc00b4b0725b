package parser

import (
	"testing"

	"github.com/jturner314/py-literal/value"
	"github.com/stretchr/testify/require"
)

func TestParseStringEscapes(t *testing.T) {
	tests := []struct {
		input  string
		expect string
	}{
		{input: `'\x41B\U00000043'`, expect: "ABC"},
		{input: `'\101'`, expect: "A"},
		{input: `'\60'`, expect: "0"},
		{input: `'\777'`, expect: "ǿ"},
		{input: `'\a\b\f\v'`, expect: "\a\b\x0c\v"},
		{input: `'\n\r\t'`, expect: "\n\r\t"},
		{input: `'\\\'\"'`, expect: `\'"`},
		{input: `'é'`, expect: "é"},
		{input: "'a\\\nb'", expect: "ab"},
		{input: "'a\\\r\nb'", expect: "ab"},
		{input: `u'x'`, expect: "x"},
		{input: "'héllo'", expect: "héllo"},
	}

	for _, test := range tests {
		v, err := Parse(test.input)
		require.NoError(t, err, "input %q", test.input)
		require.Equal(t, value.String(test.expect), v, "input %q", test.input)
	}
}

func TestParseBytesEscapes(t *testing.T) {
	tests := []struct {
		input  string
		expect []byte
	}{
		{input: `b'\x00\xff'`, expect: []byte{0x00, 0xff}},
		{input: `b'\377'`, expect: []byte{0xff}},
		{input: `b'ab\n'`, expect: []byte("ab\n")},
		{input: `B"hi"`, expect: []byte("hi")},
		{input: `b''`, expect: []byte{}},
	}

	for _, test := range tests {
		v, err := Parse(test.input)
		require.NoError(t, err, "input %q", test.input)
		require.Equal(t, value.Bytes(test.expect), v, "input %q", test.input)
	}
}

func TestParseRawStrings(t *testing.T) {
	tests := []struct {
		input  string
		expect value.Value
	}{
		{input: `r'\n'`, expect: value.String(`\n`)},
		{input: `r'\'a'`, expect: value.String(`\'a`)},
		{input: `r'\\'`, expect: value.String(`\\`)},
		{input: `rb'\x41'`, expect: value.Bytes(`\x41`)},
		{input: `Rb'\q'`, expect: value.Bytes(`\q`)},
	}

	for _, test := range tests {
		v, err := Parse(test.input)
		require.NoError(t, err, "input %q", test.input)
		require.Equal(t, test.expect, v, "input %q", test.input)
	}
}

func TestParseTripleQuoted(t *testing.T) {
	tests := []struct {
		input  string
		expect string
	}{
		{input: `'''it's'''`, expect: "it's"},
		{input: "'''a\nb'''", expect: "a\nb"},
		{input: `"""say "hi" now"""`, expect: `say "hi" now`},
		{input: `''''''`, expect: ""},
	}

	for _, test := range tests {
		v, err := Parse(test.input)
		require.NoError(t, err, "input %q", test.input)
		require.Equal(t, value.String(test.expect), v, "input %q", test.input)
	}
}

func TestParseStringConcatenation(t *testing.T) {
	tests := []struct {
		input  string
		expect value.Value
	}{
		{input: `'a' 'b'`, expect: value.String("ab")},
		{input: "'a'\n'b' 'c'", expect: value.String("abc")},
		{input: "'a' # comment\n 'b'", expect: value.String("ab")},
		{input: "'a' \\\n 'b'", expect: value.String("ab")},
		{input: `'a' r'\n'`, expect: value.String(`a\n`)},
		{input: `b'a' b'b'`, expect: value.Bytes("ab")},
	}

	for _, test := range tests {
		v, err := Parse(test.input)
		require.NoError(t, err, "input %q", test.input)
		require.Equal(t, test.expect, v, "input %q", test.input)
	}
}

func TestParseStringErrors(t *testing.T) {
	tests := []struct {
		input string
		kind  ErrorKind
	}{
		{input: `'a`, kind: MalformedString},
		{input: "'a\nb'", kind: MalformedString},
		{input: `'''a`, kind: MalformedString},
		{input: `'\q'`, kind: MalformedString},
		{input: `'\x4'`, kind: MalformedString},
		{input: `'\u12'`, kind: MalformedString},
		{input: `'\N{LATIN SMALL LETTER A}'`, kind: MalformedString},
		{input: `'\U00110000'`, kind: MalformedString},
		{input: `f'x'`, kind: MalformedString},
		{input: `b'é'`, kind: MalformedString},
		{input: "'\xff'", kind: MalformedString},
		{input: "'a\x80b'", kind: MalformedString},
		{input: "b'\\u0041'", kind: MalformedString},
		{input: `b'\777777'`, kind: MalformedString},
		{input: `'a' b'b'`, kind: MalformedString},
		{input: `b'a' 'b'`, kind: MalformedString},
	}

	for _, test := range tests {
		_, err := Parse(test.input)
		var perr *ParseError
		require.ErrorAs(t, err, &perr, "input %q", test.input)
		require.Equal(t, test.kind, perr.Kind, "input %q", test.input)
	}
}
