package pyliteral

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/jturner314/py-literal/parser"
	"github.com/jturner314/py-literal/value"
)

type Option struct {
	SourceName string
}

func (o Option) Complete() Option {
	if o.SourceName == "" {
		o.SourceName = "<inline>"
	}
	return o
}

type Options []Option

func (o Options) Merge() (result Option) {
	for _, opt := range o {
		if opt.SourceName != "" {
			result.SourceName = opt.SourceName
		}
	}
	return
}

type Decoder struct {
	opts  Option
	input io.Reader
}

func NewDecoder(input io.Reader, opts ...Option) *Decoder {
	return &Decoder{
		opts:  Options(opts).Merge().Complete(),
		input: input,
	}
}

// Decode parses the input literal and stores the result in out. A
// *value.Value receives the parsed tree directly; anything else is
// filled from the native representation through a JSON round trip, so
// ints beyond float64 precision arrive truncated in untyped
// destinations.
func (d *Decoder) Decode(out any) error {
	data, err := io.ReadAll(d.input)
	if err != nil {
		return err
	}

	val, err := parser.Parse(string(data))
	if err != nil {
		return fmt.Errorf("%s: %w", d.opts.SourceName, err)
	}

	switch n := out.(type) {
	case *value.Value:
		*n = val
		return nil
	}

	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(val.NativeValue()); err != nil {
		return fmt.Errorf("encoding value from source %s: %w", d.opts.SourceName, err)
	}

	return json.NewDecoder(buf).Decode(out)
}

func Unmarshal(data []byte, v any, opts ...Option) error {
	return NewDecoder(bytes.NewReader(data), opts...).Decode(v)
}
