package value

// Set is a collection of structurally distinct values. Element order is
// first-insertion order, which keeps formatting stable.
type Set []Value

// NewSet drops structural duplicates, keeping the first occurrence.
func NewSet(vals []Value) Set {
	var s Set
	for _, v := range vals {
		s = s.Add(v)
	}
	return s
}

// Add returns a set extended with v, or the receiver if an equal
// element is already present.
func (s Set) Add(v Value) Set {
	if s.Contains(v) {
		return s
	}
	out := make(Set, 0, len(s)+1)
	out = append(out, s...)
	return append(out, v)
}

func (s Set) Contains(v Value) bool {
	for _, e := range s {
		if Equal(e, v) {
			return true
		}
	}
	return false
}

func (s Set) Kind() Kind {
	return SetKind
}

func (s Set) Len() int {
	return len(s)
}

func (s Set) NativeValue() any {
	return nativeSlice(s)
}

func (s Set) String() string {
	return Format(s)
}
