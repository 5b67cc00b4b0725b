package value

// Dict is an ordered sequence of key/value pairs. Keys are structurally
// distinct; a repeated key keeps its first-seen position and its
// last-seen value.
type Dict struct {
	Entries []Entry
}

type Entry struct {
	Key   Value
	Value Value
}

// Put returns a dict with key bound to val. An existing entry with a
// structurally equal key is replaced in place.
func (d Dict) Put(key, val Value) Dict {
	result := make([]Entry, len(d.Entries))
	copy(result, d.Entries)
	for i, e := range result {
		if Equal(e.Key, key) {
			result[i] = Entry{Key: key, Value: val}
			return Dict{Entries: result}
		}
	}
	return Dict{Entries: append(result, Entry{Key: key, Value: val})}
}

// Lookup finds the value bound to a structurally equal key.
func (d Dict) Lookup(key Value) (Value, bool) {
	for _, e := range d.Entries {
		if Equal(e.Key, key) {
			return e.Value, true
		}
	}
	return nil, false
}

func (d Dict) Kind() Kind {
	return DictKind
}

func (d Dict) Len() int {
	return len(d.Entries)
}

func (d Dict) Keys() []Value {
	result := make([]Value, 0, len(d.Entries))
	for _, e := range d.Entries {
		result = append(result, e.Key)
	}
	return result
}

// NativeValue returns a map keyed by the native string of string keys.
// Non-string keys fall back to their canonical literal text, which
// keeps the conversion total for JSON and YAML encoding. Distinct dict
// keys can collide as native keys (Int 1 and String "1" both become
// "1"); the later entry wins. Decode into a *Value to keep every
// entry.
func (d Dict) NativeValue() any {
	result := map[string]any{}
	for _, e := range d.Entries {
		if s, ok := e.Key.(String); ok {
			result[(string)(s)] = e.Value.NativeValue()
		} else {
			result[Format(e.Key)] = e.Value.NativeValue()
		}
	}
	return result
}

func (d Dict) String() string {
	return Format(d)
}
