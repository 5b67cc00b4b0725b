package value

type String string

func (s String) Kind() Kind {
	return StringKind
}

func (s String) NativeValue() any {
	return (string)(s)
}

func (s String) String() string {
	return Format(s)
}

// Bytes is a Python bytes literal value.
type Bytes []byte

// NewBytes copies b so later writes to the argument cannot reach the
// Value.
func NewBytes(b []byte) Bytes {
	return Bytes(append([]byte(nil), b...))
}

func (b Bytes) Kind() Kind {
	return BytesKind
}

func (b Bytes) Bytes() []byte {
	return append([]byte(nil), b...)
}

func (b Bytes) NativeValue() any {
	return b.Bytes()
}

func (b Bytes) String() string {
	return Format(b)
}
