package jsontext

import (
	"strconv"
	"strings"

	"go.jacobcolvin.com/jton/value"
)

// Marshal renders v as minified, order-preserving JSON text: compact
// separators, no whitespace, integers without a decimal point, floats
// with the shortest decimal representation that reparses to the exact
// same float64, and object members in their original insertion order.
//
// This is the "canonical JSON" referenced throughout spec.md: the
// baseline every encoded candidate's length is measured against, and the
// exact output produced on global or local fallback.
func Marshal(v value.Value) []byte {
	var sb strings.Builder

	writeValue(&sb, v)

	return []byte(sb.String())
}

// MarshalString is [Marshal] returning a string directly, used wherever
// the caller wants text rather than bytes (e.g. the public API).
func MarshalString(v value.Value) string {
	var sb strings.Builder

	writeValue(&sb, v)

	return sb.String()
}

func writeValue(sb *strings.Builder, v value.Value) {
	switch v.Kind {
	case value.KindNull:
		sb.WriteString("null")
	case value.KindBool:
		if v.Bool {
			sb.WriteString("true")
		} else {
			sb.WriteString("false")
		}
	case value.KindInt:
		sb.WriteString(strconv.FormatInt(v.Int, 10))
	case value.KindFloat:
		writeFloat(sb, v.Flt)
	case value.KindString:
		writeString(sb, v.Str)
	case value.KindArray:
		sb.WriteByte('[')

		for i, item := range v.Arr {
			if i > 0 {
				sb.WriteByte(',')
			}

			writeValue(sb, item)
		}

		sb.WriteByte(']')
	case value.KindObject:
		sb.WriteByte('{')

		for i, m := range v.Obj {
			if i > 0 {
				sb.WriteByte(',')
			}

			writeString(sb, m.Key)
			sb.WriteByte(':')
			writeValue(sb, m.Value)
		}

		sb.WriteByte('}')
	}
}

// writeFloat emits the shortest decimal text that parses back to f exactly,
// forced to contain a '.' or an exponent marker so a later parse always
// classifies it as a float and never as an integer (spec.md §3's
// int/float-distinction invariant). strconv's shortest-round-trip mode
// ('g', precision -1) occasionally produces an integral-looking string
// for whole-number floats (11.0 -> "11"); appending ".0" in that case
// changes no bit of the value, only its lexical shape.
func writeFloat(sb *strings.Builder, f float64) {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}

	sb.WriteString(s)
}

const hexDigits = "0123456789abcdef"

// writeString emits v as a minimal JSON string literal: only '"', '\\',
// and control characters are escaped; everything else (including
// multi-byte UTF-8) passes through verbatim, per spec.md §6's "UTF-8 byte
// output" requirement and in the interest of keeping encoded text short.
func writeString(sb *strings.Builder, s string) {
	sb.WriteByte('"')

	for i := 0; i < len(s); i++ {
		c := s[i]

		switch {
		case c == '"':
			sb.WriteString(`\"`)
		case c == '\\':
			sb.WriteString(`\\`)
		case c == '\n':
			sb.WriteString(`\n`)
		case c == '\r':
			sb.WriteString(`\r`)
		case c == '\t':
			sb.WriteString(`\t`)
		case c == '\b':
			sb.WriteString(`\b`)
		case c == '\f':
			sb.WriteString(`\f`)
		case c < 0x20:
			sb.WriteString(`\u00`)
			sb.WriteByte(hexDigits[c>>4])
			sb.WriteByte(hexDigits[c&0xf])
		default:
			sb.WriteByte(c)
		}
	}

	sb.WriteByte('"')
}
