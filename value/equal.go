package value

import (
	"bytes"
	"math"
)

// Equal reports deep structural equality of two value trees. Floats
// compare by bit pattern, so NaN equals NaN and 0.0 differs from -0.0;
// this keeps set membership and dict key comparison total and
// deterministic.
func Equal(left, right Value) bool {
	if left.Kind() != right.Kind() {
		return false
	}
	switch l := left.(type) {
	case Null:
		return true
	case Boolean:
		return l == right.(Boolean)
	case Int:
		return l.Cmp(right.(Int)) == 0
	case Float:
		return floatBitsEqual((float64)(l), (float64)(right.(Float)))
	case Complex:
		r := right.(Complex)
		return floatBitsEqual(l.Real(), r.Real()) && floatBitsEqual(l.Imag(), r.Imag())
	case String:
		return l == right.(String)
	case Bytes:
		return bytes.Equal(l, right.(Bytes))
	case Tuple:
		return equalSlices(l, right.(Tuple))
	case List:
		return equalSlices(l, right.(List))
	case Set:
		return equalSets(l, right.(Set))
	case Dict:
		return equalDicts(l, right.(Dict))
	}
	return false
}

func floatBitsEqual(a, b float64) bool {
	return math.Float64bits(a) == math.Float64bits(b)
}

func equalSlices(left, right []Value) bool {
	if len(left) != len(right) {
		return false
	}
	for i := range left {
		if !Equal(left[i], right[i]) {
			return false
		}
	}
	return true
}

// equalSets ignores element order. Both sides are already
// duplicate-free, so matching lengths plus one-way containment is
// enough.
func equalSets(left, right Set) bool {
	if len(left) != len(right) {
		return false
	}
	for _, e := range left {
		if !right.Contains(e) {
			return false
		}
	}
	return true
}

func equalDicts(left, right Dict) bool {
	if len(left.Entries) != len(right.Entries) {
		return false
	}
	for i, e := range left.Entries {
		o := right.Entries[i]
		if !Equal(e.Key, o.Key) || !Equal(e.Value, o.Value) {
			return false
		}
	}
	return true
}
