package jton

import (
	"fmt"
	"math"

	"go.jacobcolvin.com/jton/internal/column"
	"go.jacobcolvin.com/jton/internal/dict"
	"go.jacobcolvin.com/jton/internal/jsontext"
	"go.jacobcolvin.com/jton/internal/pack"
	"go.jacobcolvin.com/jton/value"
)

// Compress transforms v into its JTON form: either an envelope
// {"d":...,"m":...} whose text is strictly shorter than the canonical
// JSON of v, or v itself unchanged when no encoding wins. opts defaults
// to [DefaultOptions] when omitted; only the first element is used.
func Compress(v value.Value, opts ...Options) (value.Value, error) {
	o := firstOr(opts, DefaultOptions())

	e := &encoder{
		dict:     dict.New(),
		opts:     o.packOptions(),
		maxDepth: o.maxDepth(),
	}

	root, err := e.encodeValue(v, 0)
	if err != nil {
		return value.Value{}, err
	}

	envelope := value.Object()
	envelope.Set("d", root)
	envelope.Set("m", e.dict.Map())

	if len(jsontext.Marshal(envelope)) >= len(jsontext.Marshal(v)) {
		return v, nil
	}

	return envelope, nil
}

// CompressJSON is [Compress] specialized to the library surface described
// in spec §6: it takes a parsed value and returns minified JSON text.
func CompressJSON(v value.Value, opts ...Options) (string, error) {
	out, err := Compress(v, opts...)
	if err != nil {
		return "", err
	}

	return jsontext.MarshalString(out), nil
}

// CompressText parses text as JSON and compresses the result, returning
// [ErrInvalidJSON] if text does not parse. This is a convenience wrapper
// around [jsontext.Parse] and [CompressJSON] for callers that start from
// raw text rather than an already-parsed value.
func CompressText(text string, opts ...Options) (string, error) {
	v, err := jsontext.Parse([]byte(text))
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidJSON, err)
	}

	return CompressJSON(v, opts...)
}

type encoder struct {
	dict     *dict.Dict
	opts     pack.Options
	maxDepth int
	err      error
}

func (e *encoder) encodeValue(v value.Value, depth int) (value.Value, error) {
	if depth > e.maxDepth {
		return value.Value{}, fmt.Errorf("%w: at depth %d", ErrDepthExceeded, depth)
	}

	switch v.Kind {
	case value.KindNull, value.KindBool, value.KindInt:
		return v, nil

	case value.KindFloat:
		if math.IsNaN(v.Flt) || math.IsInf(v.Flt, 0) {
			return value.Value{}, fmt.Errorf("%w: non-finite float", ErrUnsupportedValue)
		}

		return v, nil

	case value.KindString:
		return e.encodeString(v), nil

	case value.KindObject:
		return e.encodeObject(v, depth)

	case value.KindArray:
		return e.encodeArray(v.Arr, depth)

	default:
		return value.Value{}, fmt.Errorf("%w: unknown value kind %v", ErrUnsupportedValue, v.Kind)
	}
}

// encodeString wraps a literal at risk of being mistaken for a packed
// sequence (spec §4.4's "prefix collision escape") as {"S": s}.
func (e *encoder) encodeString(v value.Value) value.Value {
	if !pack.IsAtRisk(v.Str) {
		return v
	}

	wrapped := value.Object()
	wrapped.Set("S", v)

	return wrapped
}

func (e *encoder) encodeObject(v value.Value, depth int) (value.Value, error) {
	out := value.Object()

	for _, m := range v.Obj {
		tok := e.dict.Intern(m.Key)

		child, err := e.encodeValue(m.Value, depth+1)
		if err != nil {
			return value.Value{}, err
		}

		out.Set(tok, child)
	}

	return out, nil
}

// encodeChild adapts encodeValue to the error-less callback shape
// [column.Try] and [pack.TryAll] expect, latching the first error onto e
// so the caller can check it once after the packer call returns.
func (e *encoder) encodeChild(v value.Value, depth int) value.Value {
	if e.err != nil {
		return value.Null()
	}

	child, err := e.encodeValue(v, depth)
	if err != nil {
		e.err = err
		return value.Null()
	}

	return child
}

func (e *encoder) encodeArray(arr []value.Value, depth int) (value.Value, error) {
	if len(arr) == 0 {
		return value.Array(), nil
	}

	cellEncode := func(v value.Value) value.Value { return e.encodeChild(v, depth+1) }
	keyEncode := func(k string) string { return e.dict.Intern(k) }

	if colDesc, ok := column.Try(arr, e.opts, keyEncode, cellEncode); ok {
		if e.err != nil {
			return value.Value{}, e.err
		}

		return colDesc, nil
	}

	if e.err != nil {
		return value.Value{}, e.err
	}

	elems := make([]value.Value, len(arr))

	for i, item := range arr {
		elems[i] = e.encodeChild(item, depth+1)
		if e.err != nil {
			return value.Value{}, e.err
		}
	}

	plain := value.Array(elems...)

	if packed, ok := pack.TryAll(arr, e.opts, cellEncode); ok {
		if e.err != nil {
			return value.Value{}, e.err
		}

		if len(jsontext.Marshal(packed)) < len(jsontext.Marshal(plain)) {
			return packed, nil
		}
	}

	return plain, nil
}

func firstOr(opts []Options, def Options) Options {
	if len(opts) > 0 {
		return opts[0]
	}

	return def
}
