package jsontext

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"go.jacobcolvin.com/jton/value"
)

// ErrTrailingData is returned when input contains a complete JSON value
// followed by further non-whitespace bytes.
var ErrTrailingData = errors.New("jsontext: trailing data after JSON value")

// ErrBadObjectKey is returned when a decoded object member's key token is
// not a string, which [encoding/json.Decoder] never actually produces for
// well-formed input but which this package checks defensively before the
// type assertion.
var ErrBadObjectKey = errors.New("jsontext: object key is not a string")

// Parse decodes exactly one JSON value from data, preserving object key
// order and the lexical int/float distinction of every number. It rejects
// any trailing non-whitespace content after the value.
//
// Parsing walks [encoding/json.Decoder.Token] rather than unmarshaling into
// interface{}, following the approach in rsms/go-json's Reader: Token()
// is the one standard-library primitive that both reports object keys in
// source order and, combined with [encoding/json.Decoder.UseNumber],
// preserves a number's original text long enough to classify it before any
// precision is lost to a float64 conversion.
func Parse(data []byte) (value.Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := parseValue(dec)
	if err != nil {
		return value.Value{}, err
	}

	_, err = dec.Token()
	switch {
	case errors.Is(err, io.EOF):
		return v, nil
	case err == nil:
		return value.Value{}, ErrTrailingData
	default:
		return value.Value{}, err
	}
}

func parseValue(dec *json.Decoder) (value.Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return value.Value{}, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return parseObject(dec)
		case '[':
			return parseArray(dec)
		default:
			return value.Value{}, fmt.Errorf("jsontext: unexpected delimiter %q", t)
		}
	case nil:
		return value.Null(), nil
	case bool:
		return value.Bool(t), nil
	case json.Number:
		return numberValue(t)
	case string:
		return value.Str(t), nil
	default:
		return value.Value{}, fmt.Errorf("jsontext: unexpected token type %T", tok)
	}
}

func parseObject(dec *json.Decoder) (value.Value, error) {
	obj := value.Object()

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return value.Value{}, err
		}

		key, ok := keyTok.(string)
		if !ok {
			return value.Value{}, fmt.Errorf("%w: %v", ErrBadObjectKey, keyTok)
		}

		val, err := parseValue(dec)
		if err != nil {
			return value.Value{}, err
		}

		obj.Obj = append(obj.Obj, value.Member{Key: key, Value: val})
	}

	// Consume the closing '}'.
	if _, err := dec.Token(); err != nil {
		return value.Value{}, err
	}

	return obj, nil
}

func parseArray(dec *json.Decoder) (value.Value, error) {
	var items []value.Value

	for dec.More() {
		v, err := parseValue(dec)
		if err != nil {
			return value.Value{}, err
		}

		items = append(items, v)
	}

	// Consume the closing ']'.
	if _, err := dec.Token(); err != nil {
		return value.Value{}, err
	}

	return value.Array(items...), nil
}

// numberValue classifies a decoded JSON number as an integer or a float.
// A number is an integer iff its source text contains no '.', 'e', or 'E'
// and fits in a signed 64-bit range; everything else is a float. Integers
// outside the int64 range are out of this codec's value domain (spec.md
// §3 defines Int as a signed-64-bit variant) and are represented as the
// nearest float64, the same fallback [encoding/json] itself uses.
func numberValue(n json.Number) (value.Value, error) {
	s := string(n)
	if looksIntegral(s) {
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return value.Int(i), nil
		}
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return value.Value{}, fmt.Errorf("jsontext: invalid number %q: %w", s, err)
	}

	if math.IsInf(f, 0) || math.IsNaN(f) {
		return value.Value{}, fmt.Errorf("jsontext: non-finite number %q", s)
	}

	return value.Float(f), nil
}

func looksIntegral(s string) bool {
	for _, c := range s {
		if c == '.' || c == 'e' || c == 'E' {
			return false
		}
	}

	return true
}
