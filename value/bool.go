package value

var (
	True  = Boolean(true)
	False = Boolean(false)
)

type Boolean bool

func (b Boolean) Kind() Kind {
	return BoolKind
}

func (b Boolean) NativeValue() any {
	return (bool)(b)
}

func (b Boolean) String() string {
	return Format(b)
}
