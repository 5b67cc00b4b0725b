package pyliteral

import (
	"testing"

	"github.com/jturner314/py-literal/parser"
	"github.com/jturner314/py-literal/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	inputs := []string{
		"None",
		"True",
		"[1, 2.5, -3, 'x']",
		"(1,)",
		"()",
		"{}",
		"{'a': 1, 2: [3]}",
		"{1, 2.0, 'three'}",
		"2.0-5.0j",
		"-0.0-5.0j",
		"0.0-5.0j",
		"0.0-0.0j",
		"nanj",
		"b'\\x00hi'",
		"'a\\nb'",
		"123456789012345678901234567890",
		"1e999",
	}

	for _, input := range inputs {
		first, err := Parse(input)
		require.NoError(t, err, "input %q", input)

		text := Format(first)
		second, err := Parse(text)
		require.NoError(t, err, "formatted %q", text)
		assert.True(t, value.Equal(first, second), "input %q formatted as %q", input, text)

		// formatting is a fixed point after one pass
		assert.Equal(t, text, Format(second), "input %q", input)
	}
}

func TestUnmarshalUntyped(t *testing.T) {
	var out any
	err := Unmarshal([]byte("{'descr': '<i8', 'shape': (3, 4), 'fortran_order': False}"), &out)
	require.NoError(t, err)
	require.Equal(t, map[string]any{
		"descr":         "<i8",
		"shape":         []any{float64(3), float64(4)},
		"fortran_order": false,
	}, out)
}

func TestUnmarshalStruct(t *testing.T) {
	header := struct {
		Descr        string `json:"descr"`
		FortranOrder bool   `json:"fortran_order"`
		Shape        []int  `json:"shape"`
	}{}
	err := Unmarshal([]byte("{'descr': '<f8', 'fortran_order': True, 'shape': (2, 3)}"), &header)
	require.NoError(t, err)
	assert.Equal(t, "<f8", header.Descr)
	assert.True(t, header.FortranOrder)
	assert.Equal(t, []int{2, 3}, header.Shape)
}

func TestUnmarshalValue(t *testing.T) {
	var out value.Value
	err := Unmarshal([]byte("{1: 2.0-5.0j}"), &out)
	require.NoError(t, err)

	d, ok := out.(value.Dict)
	require.True(t, ok)
	v, ok := d.Lookup(value.NewInt64(1))
	require.True(t, ok)
	assert.True(t, value.Equal(value.NewComplex(2, -5), v))
}

func TestUnmarshalError(t *testing.T) {
	var out any
	err := Unmarshal([]byte("[1, @]"), &out, Option{SourceName: "header.py"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "header.py")

	var perr *parser.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, parser.UnexpectedToken, perr.Kind)
}
