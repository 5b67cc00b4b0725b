package value

// Null is the None literal.
type Null struct{}

func (n Null) Kind() Kind {
	return NullKind
}

func (n Null) NativeValue() any {
	return nil
}

func (n Null) String() string {
	return Format(n)
}
