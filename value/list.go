package value

// List is an ordered sequence of values.
type List []Value

func (l List) Kind() Kind {
	return ListKind
}

func (l List) Len() int {
	return len(l)
}

func (l List) Index(i int) (Value, bool) {
	if i < 0 || i >= len(l) {
		return nil, false
	}
	return l[i], true
}

func (l List) NativeValue() any {
	return nativeSlice(l)
}

func (l List) String() string {
	return Format(l)
}

// Tuple is an ordered sequence of values with fixed arity.
type Tuple []Value

func (t Tuple) Kind() Kind {
	return TupleKind
}

func (t Tuple) Len() int {
	return len(t)
}

func (t Tuple) Index(i int) (Value, bool) {
	if i < 0 || i >= len(t) {
		return nil, false
	}
	return t[i], true
}

func (t Tuple) NativeValue() any {
	return nativeSlice(t)
}

func (t Tuple) String() string {
	return Format(t)
}

func nativeSlice(vals []Value) []any {
	result := make([]any, 0, len(vals))
	for _, v := range vals {
		result = append(result, v.NativeValue())
	}
	return result
}
