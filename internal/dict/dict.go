// Package dict implements the key dictionary builder described in
// spec.md §4.2: an append-only, insertion-ordered map from every object
// key string encountered while encoding to a short base62 token, grounded
// on the "vector plus a hash index" shape spec.md §9 recommends for
// language-neutral ports of an append-only ordered map.
package dict

import "go.jacobcolvin.com/jton/value"

// alphabet is the base62 digit set, most-significant-digit-first encoding
// rule fixed arbitrarily (spec.md §4.2 allows either convention as long as both
// sides agree; this package is the only place either side needs to agree
// with).
const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// reserved holds the descriptor grammar's reserved single-character keys.
// A generated token equal to one of these is skipped (spec.md §4.6) so
// that inside "d", object keys can always be told apart from descriptor
// tags without positional context.
var reserved = map[string]bool{
	"s": true, "d": true, "n": true, "c": true,
	"p": true, "x": true, "a": true, "k": true, "S": true,
}

// IsReserved reports whether tok collides with a reserved descriptor key.
func IsReserved(tok string) bool { return reserved[tok] }

// Dict is an append-only, insertion-ordered interning table from original
// object key strings to base62 tokens. The zero value is not usable; use
// [New].
type Dict struct {
	tokens map[string]string
	keys   []string // insertion order, for Map()
	next   int
}

// New returns an empty [Dict].
func New() *Dict {
	return &Dict{tokens: make(map[string]string)}
}

// Intern returns the token assigned to key, assigning a fresh one (the
// next base62 integer that isn't a reserved word) on first encounter.
func (d *Dict) Intern(key string) string {
	if tok, ok := d.tokens[key]; ok {
		return tok
	}

	tok := d.allocate()
	d.tokens[key] = tok
	d.keys = append(d.keys, key)

	return tok
}

// Len returns the number of distinct keys interned so far.
func (d *Dict) Len() int { return len(d.keys) }

// allocate returns the next unused, non-reserved base62 token and advances
// the counter past it.
func (d *Dict) allocate() string {
	for {
		tok := Token(d.next)
		d.next++

		if !reserved[tok] {
			return tok
		}
	}
}

// Token base62-encodes n using [0-9A-Za-z], most significant digit first,
// with no padding. Token(0) == "0", Token(61) == "z", Token(62) == "10".
func Token(n int) string {
	if n == 0 {
		return "0"
	}

	var buf [11]byte // enough digits for any non-negative int on 64-bit.

	i := len(buf)
	for n > 0 {
		i--
		buf[i] = alphabet[n%62]
		n /= 62
	}

	return string(buf[i:])
}

// Map renders the dictionary as the envelope's "m" value: an object
// mapping each original key string to its assigned token, in the order
// keys were first encountered.
func (d *Dict) Map() value.Value {
	m := value.Object()
	for _, k := range d.keys {
		m.Set(k, value.Str(d.tokens[k]))
	}

	return m
}

// Invert reads an envelope's "m" value and returns the token -> original
// key map the decoder needs. It reports ok=false if m is not an object of
// string values.
func Invert(m value.Value) (map[string]string, bool) {
	if m.Kind != value.KindObject {
		return nil, false
	}

	inv := make(map[string]string, len(m.Obj))

	for _, member := range m.Obj {
		if member.Value.Kind != value.KindString {
			return nil, false
		}

		inv[member.Value.Str] = member.Key
	}

	return inv, true
}
