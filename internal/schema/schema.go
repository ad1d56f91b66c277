package schema

import (
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"

	"go.jacobcolvin.com/jton"
	"go.jacobcolvin.com/jton/internal/dict"
	"go.jacobcolvin.com/jton/internal/pack"
	"go.jacobcolvin.com/jton/value"
)

// Describe compresses v and returns a JSON Schema describing the shape of
// the result: every array that a packer rewrote carries a Description
// naming which one (arithmetic progression, constant run, prefix factor,
// columnar, or one of the binary packs) instead of just "array".
func Describe(v value.Value, opts jton.Options) (*jsonschema.Schema, error) {
	out, err := jton.Compress(v, opts)
	if err != nil {
		return nil, err
	}

	root, mv, ok := envelopeParts(out)
	if !ok {
		s := describeLiteral(v)
		s.Description = "no envelope: global fallback, canonical JSON already shortest"

		return s, nil
	}

	inv, ok := dict.Invert(mv)
	if !ok {
		return nil, fmt.Errorf("%w: \"m\" is not a string-valued object", jton.ErrMalformedInput)
	}

	return describeDescriptor(root, inv), nil
}

func envelopeParts(v value.Value) (d, m value.Value, ok bool) {
	if v.Kind != value.KindObject || !v.HasOnlyKeys("d", "m") {
		return value.Value{}, value.Value{}, false
	}

	d, _ = v.Get("d")
	m, _ = v.Get("m")

	return d, m, true
}

func describeDescriptor(x value.Value, inv map[string]string) *jsonschema.Schema {
	switch {
	case x.Kind == value.KindObject && x.HasOnlyKeys("S"):
		return &jsonschema.Schema{Type: "string", Description: "escaped literal (prefix-collision wrap)"}

	case x.Kind == value.KindObject && x.HasOnlyKeys("s", "d", "n"):
		n, _ := x.Get("n")

		return &jsonschema.Schema{
			Type:        "array",
			Description: fmt.Sprintf("arithmetic progression, %d elements", n.Int),
		}

	case x.Kind == value.KindObject && x.HasOnlyKeys("c", "n"):
		c, _ := x.Get("c")
		n, _ := x.Get("n")

		return &jsonschema.Schema{
			Type:        "array",
			Items:       describeDescriptor(c, inv),
			Description: fmt.Sprintf("constant run, %d elements", n.Int),
		}

	case x.Kind == value.KindObject && x.HasOnlyKeys("p", "x"):
		return &jsonschema.Schema{
			Type:        "array",
			Items:       &jsonschema.Schema{Type: "string"},
			Description: "prefix-factored strings",
		}

	case x.Kind == value.KindObject && x.Has("a"):
		return describeColumnar(x, inv)

	case x.Kind == value.KindString && pack.IsAtRisk(x.Str):
		return &jsonschema.Schema{Type: "array", Description: binaryPackerName(x.Str[0])}

	case x.Kind == value.KindArray:
		return &jsonschema.Schema{
			Type:        "array",
			Description: fmt.Sprintf("plain list, %d elements", len(x.Arr)),
		}

	case x.Kind == value.KindObject:
		props := make(map[string]*jsonschema.Schema, len(x.Obj))

		for _, m := range x.Obj {
			key := m.Key
			if orig, ok := inv[m.Key]; ok {
				key = orig
			}

			props[key] = describeDescriptor(m.Value, inv)
		}

		return &jsonschema.Schema{Type: "object", Properties: props}

	default:
		return describeLiteral(x)
	}
}

func describeColumnar(x value.Value, inv map[string]string) *jsonschema.Schema {
	k, _ := x.Get("k")
	d, _ := x.Get("d")

	props := make(map[string]*jsonschema.Schema, len(k.Arr))

	for i, tok := range k.Arr {
		key := tok.Str
		if orig, ok := inv[tok.Str]; ok {
			key = orig
		}

		var col value.Value
		if i < len(d.Arr) {
			col = d.Arr[i]
		}

		props[key] = describeDescriptor(col, inv)
	}

	return &jsonschema.Schema{
		Type:        "array",
		Description: "columnar array of uniform-schema objects",
		Items:       &jsonschema.Schema{Type: "object", Properties: props},
	}
}

func binaryPackerName(prefix byte) string {
	switch prefix {
	case 'T':
		return "bit-packed booleans"
	case 'U':
		return "8-bit unsigned integers, base64"
	case 'B':
		return "8-bit signed integers, base64"
	case 'V':
		return "16-bit unsigned integers, base64"
	case 'H':
		return "16-bit signed integers, base64"
	case 'I':
		return "32-bit signed integers, base64"
	case 'L':
		return "64-bit signed integers, base64"
	case 'F':
		return "scale-100 fixed-point floats, base64"
	case 'G':
		return "scale-1000 fixed-point floats, base64"
	case 'D':
		return "raw IEEE-754 doubles, base64"
	default:
		return "unknown binary pack"
	}
}

func describeLiteral(v value.Value) *jsonschema.Schema {
	switch v.Kind {
	case value.KindNull:
		return &jsonschema.Schema{Type: "null"}
	case value.KindBool:
		return &jsonschema.Schema{Type: "boolean"}
	case value.KindInt:
		return &jsonschema.Schema{Type: "integer"}
	case value.KindFloat:
		return &jsonschema.Schema{Type: "number"}
	case value.KindString:
		return &jsonschema.Schema{Type: "string"}
	case value.KindArray:
		return &jsonschema.Schema{Type: "array"}
	default:
		return &jsonschema.Schema{Type: "object"}
	}
}
