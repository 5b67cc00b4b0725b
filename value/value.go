package value

const (
	NullKind    = Kind("null")
	BoolKind    = Kind("bool")
	IntKind     = Kind("int")
	FloatKind   = Kind("float")
	ComplexKind = Kind("complex")
	StringKind  = Kind("string")
	BytesKind   = Kind("bytes")
	TupleKind   = Kind("tuple")
	ListKind    = Kind("list")
	SetKind     = Kind("set")
	DictKind    = Kind("dict")
)

type Kind string

// Value is an in-memory Python literal. A Value tree is immutable once
// constructed; containers own their elements outright and never cycle.
// String returns the canonical literal text of the value.
type Value interface {
	Kind() Kind
	NativeValue() any
	String() string
}
