package value

// Kind identifies the variant held by a [Value].
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindArray
	KindObject
)

// String returns a human-readable name for k, used in error messages.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Member is one key/value pair of an object, in insertion order.
type Member struct {
	Key   string
	Value Value
}

// Value is a JSON value: null, bool, int64, float64, string, array, or
// object. Exactly one field is meaningful, selected by Kind. Objects
// preserve the insertion order of their members.
type Value struct {
	Kind Kind
	Bool bool
	Int  int64
	Flt  float64
	Str  string
	Arr  []Value
	Obj  []Member
}

// Null returns the JSON null value.
func Null() Value { return Value{Kind: KindNull} }

// Bool returns a JSON boolean value.
func Bool(b bool) Value { return Value{Kind: KindBool, Bool: b} }

// Int returns a JSON integer value.
func Int(i int64) Value { return Value{Kind: KindInt, Int: i} }

// Float returns a JSON float value.
func Float(f float64) Value { return Value{Kind: KindFloat, Flt: f} }

// Str returns a JSON string value.
func Str(s string) Value { return Value{Kind: KindString, Str: s} }

// Array returns a JSON array value wrapping items.
func Array(items ...Value) Value {
	if items == nil {
		items = []Value{}
	}

	return Value{Kind: KindArray, Arr: items}
}

// Object returns an empty JSON object value. Use [Value.Set] to append
// members in the order they should be serialized.
func Object() Value {
	return Value{Kind: KindObject, Obj: []Member{}}
}

// Set appends a key/value member to an object value, or overwrites the
// value of an existing member with the same key in place (preserving its
// original position). Set panics if v is not an object; callers always
// know statically which values they are building.
func (v *Value) Set(key string, val Value) {
	if v.Kind != KindObject {
		panic("value: Set on non-object value")
	}

	for i := range v.Obj {
		if v.Obj[i].Key == key {
			v.Obj[i].Value = val

			return
		}
	}

	v.Obj = append(v.Obj, Member{Key: key, Value: val})
}

// Get returns the value stored under key and true, or the zero [Value] and
// false if v is not an object or has no such member.
func (v Value) Get(key string) (Value, bool) {
	if v.Kind != KindObject {
		return Value{}, false
	}

	for _, m := range v.Obj {
		if m.Key == key {
			return m.Value, true
		}
	}

	return Value{}, false
}

// Has reports whether v is an object with a member named key.
func (v Value) Has(key string) bool {
	_, ok := v.Get(key)

	return ok
}

// Keys returns the member keys of an object value, in insertion order. It
// returns nil for non-object values.
func (v Value) Keys() []string {
	if v.Kind != KindObject {
		return nil
	}

	keys := make([]string, len(v.Obj))
	for i, m := range v.Obj {
		keys[i] = m.Key
	}

	return keys
}

// HasOnlyKeys reports whether v is an object whose member set is exactly
// the given keys (order-independent, no extras, no omissions).
func (v Value) HasOnlyKeys(keys ...string) bool {
	if v.Kind != KindObject || len(v.Obj) != len(keys) {
		return false
	}

	for _, k := range keys {
		if !v.Has(k) {
			return false
		}
	}

	return true
}

// Equal reports whether a and b are the same JSON value, including the
// int/float distinction and object key order.
func Equal(a, b Value) bool {
	if a.Kind != b.Kind {
		return false
	}

	switch a.Kind {
	case KindNull:
		return true
	case KindBool:
		return a.Bool == b.Bool
	case KindInt:
		return a.Int == b.Int
	case KindFloat:
		return a.Flt == b.Flt
	case KindString:
		return a.Str == b.Str
	case KindArray:
		if len(a.Arr) != len(b.Arr) {
			return false
		}

		for i := range a.Arr {
			if !Equal(a.Arr[i], b.Arr[i]) {
				return false
			}
		}

		return true
	case KindObject:
		if len(a.Obj) != len(b.Obj) {
			return false
		}

		for i := range a.Obj {
			if a.Obj[i].Key != b.Obj[i].Key || !Equal(a.Obj[i].Value, b.Obj[i].Value) {
				return false
			}
		}

		return true
	default:
		return false
	}
}
