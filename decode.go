package jton

import (
	"fmt"

	"go.jacobcolvin.com/jton/internal/dict"
	"go.jacobcolvin.com/jton/internal/jsontext"
	"go.jacobcolvin.com/jton/internal/pack"
	"go.jacobcolvin.com/jton/value"
)

// Decompress inverts [Compress]. v that is not a recognizable envelope
// (both "d" and "m" present at the root, "m" an all-string object) is
// returned unchanged, on the assumption it is plain external JSON
// (spec §7: "decode-side errors on a document that does not look like an
// envelope are suppressed"). A document that does look like an envelope
// but violates the descriptor grammar returns an error wrapping
// [ErrMalformedInput].
func Decompress(v value.Value, opts ...Options) (value.Value, error) {
	o := firstOr(opts, DefaultOptions())

	if !isEnvelope(v) {
		return v, nil
	}

	m, _ := v.Get("m")

	inv, ok := dict.Invert(m)
	if !ok {
		return value.Value{}, fmt.Errorf("%w: \"m\" is not a string-valued object", ErrMalformedInput)
	}

	root, _ := v.Get("d")

	dec := &decoder{inv: inv, maxDepth: o.maxDepth()}

	return dec.decTree(root, 0)
}

// DecompressJSON parses text as JSON and decompresses the result. Per
// spec §6 this fails with [ErrInvalidJSON] on text that isn't JSON at
// all, distinct from [ErrMalformedInput] for text that parses but
// violates the envelope's descriptor grammar.
func DecompressJSON(text string, opts ...Options) (value.Value, error) {
	v, err := jsontext.Parse([]byte(text))
	if err != nil {
		return value.Value{}, fmt.Errorf("%w: %s", ErrInvalidJSON, err)
	}

	return Decompress(v, opts...)
}

func isEnvelope(v value.Value) bool {
	if v.Kind != value.KindObject || !v.HasOnlyKeys("d", "m") {
		return false
	}

	m, _ := v.Get("m")
	if m.Kind != value.KindObject {
		return false
	}

	for _, member := range m.Obj {
		if member.Value.Kind != value.KindString {
			return false
		}
	}

	return true
}

type decoder struct {
	inv      map[string]string
	maxDepth int
}

func (d *decoder) decTree(x value.Value, depth int) (value.Value, error) {
	if depth > d.maxDepth {
		return value.Value{}, fmt.Errorf("%w: at depth %d", ErrDepthExceeded, depth)
	}

	switch x.Kind {
	case value.KindObject:
		return d.decObject(x, depth)

	case value.KindArray:
		elems := make([]value.Value, len(x.Arr))

		for i, item := range x.Arr {
			child, err := d.decTree(item, depth+1)
			if err != nil {
				return value.Value{}, err
			}

			elems[i] = child
		}

		return value.Array(elems...), nil

	case value.KindString:
		if !pack.IsAtRisk(x.Str) {
			return x, nil
		}

		seq, err := d.decColumn(x, depth)
		if err != nil {
			return value.Value{}, err
		}

		return value.Array(seq...), nil

	default:
		return x, nil
	}
}

func (d *decoder) decObject(x value.Value, depth int) (value.Value, error) {
	switch {
	case x.HasOnlyKeys("S"):
		s, _ := x.Get("S")
		if s.Kind != value.KindString {
			return value.Value{}, fmt.Errorf(`%w: "S" wrapper value is not a string`, ErrMalformedInput)
		}

		return s, nil

	case x.HasOnlyKeys("s", "d", "n"):
		seq, err := decArithmetic(x)
		if err != nil {
			return value.Value{}, err
		}

		return value.Array(seq...), nil

	case x.HasOnlyKeys("c", "n"):
		seq, err := d.decConstant(x, depth)
		if err != nil {
			return value.Value{}, err
		}

		return value.Array(seq...), nil

	case x.HasOnlyKeys("p", "x"):
		seq, err := decPrefix(x)
		if err != nil {
			return value.Value{}, err
		}

		return value.Array(seq...), nil

	case x.Has("a"):
		return d.decColumnarArray(x, depth)

	default:
		out := value.Object()

		for _, m := range x.Obj {
			key, ok := d.inv[m.Key]
			if !ok {
				return value.Value{}, fmt.Errorf("%w: key token %q not present in dictionary", ErrMalformedInput, m.Key)
			}

			child, err := d.decTree(m.Value, depth+1)
			if err != nil {
				return value.Value{}, err
			}

			out.Set(key, child)
		}

		return out, nil
	}
}

// decColumn expands one column encoding into its row values (spec §4.7
// dec_column). Unlike decTree, an object here must be one of the three
// sequence descriptors (arithmetic, constant, prefix) or a plain array of
// per-cell descriptors: it can never be an ordinary keyed object, because
// a column is always homogeneous leaf data or nested columns/arrays.
func (d *decoder) decColumn(x value.Value, depth int) ([]value.Value, error) {
	switch {
	case x.Kind == value.KindObject && x.HasOnlyKeys("s", "d", "n"):
		return decArithmetic(x)

	case x.Kind == value.KindObject && x.HasOnlyKeys("c", "n"):
		return d.decConstant(x, depth)

	case x.Kind == value.KindObject && x.HasOnlyKeys("p", "x"):
		return decPrefix(x)

	case x.Kind == value.KindArray:
		out := make([]value.Value, len(x.Arr))

		for i, item := range x.Arr {
			child, err := d.decTree(item, depth+1)
			if err != nil {
				return nil, err
			}

			out[i] = child
		}

		return out, nil

	case x.Kind == value.KindString && pack.IsAtRisk(x.Str):
		return decPackedBinary(x.Str)

	default:
		return nil, fmt.Errorf("%w: unrecognized column shape", ErrMalformedInput)
	}
}

func decPackedBinary(s string) ([]value.Value, error) {
	switch s[0] {
	case 'T':
		bs, err := pack.DecodeBools(s)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrMalformedInput, err)
		}

		out := make([]value.Value, len(bs))
		for i, b := range bs {
			out[i] = value.Bool(b)
		}

		return out, nil

	case 'U', 'B', 'V', 'H', 'I', 'L':
		vs, err := pack.DecodeInts(s)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrMalformedInput, err)
		}

		out := make([]value.Value, len(vs))
		for i, v := range vs {
			out[i] = value.Int(v)
		}

		return out, nil

	case 'F', 'G', 'D':
		fs, err := pack.DecodeScaledOrRawFloats(s)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrMalformedInput, err)
		}

		out := make([]value.Value, len(fs))
		for i, f := range fs {
			out[i] = value.Float(f)
		}

		return out, nil

	default:
		return nil, fmt.Errorf("%w: unknown packed-sequence prefix %q", ErrMalformedInput, s[0])
	}
}

func decArithmetic(x value.Value) ([]value.Value, error) {
	s, _ := x.Get("s")
	dl, _ := x.Get("d")
	n, _ := x.Get("n")

	count, err := countField(n)
	if err != nil {
		return nil, err
	}

	if s.Kind == value.KindInt && dl.Kind == value.KindInt {
		out := make([]value.Value, count)
		for i := range out {
			out[i] = value.Int(s.Int + int64(i)*dl.Int)
		}

		return out, nil
	}

	start, ok1 := asFloat(s)
	delta, ok2 := asFloat(dl)

	if !ok1 || !ok2 {
		return nil, fmt.Errorf(`%w: arithmetic progression "s"/"d" must both be numeric`, ErrMalformedInput)
	}

	out := make([]value.Value, count)
	for i := range out {
		out[i] = value.Float(start + float64(i)*delta)
	}

	return out, nil
}

func (d *decoder) decConstant(x value.Value, depth int) ([]value.Value, error) {
	c, _ := x.Get("c")
	n, _ := x.Get("n")

	count, err := countField(n)
	if err != nil {
		return nil, err
	}

	decoded, err := d.decTree(c, depth+1)
	if err != nil {
		return nil, err
	}

	out := make([]value.Value, count)
	for i := range out {
		out[i] = decoded
	}

	return out, nil
}

func decPrefix(x value.Value) ([]value.Value, error) {
	p, _ := x.Get("p")
	suffixes, _ := x.Get("x")

	if p.Kind != value.KindString || suffixes.Kind != value.KindArray {
		return nil, fmt.Errorf(`%w: prefix-factored list needs string "p" and array "x"`, ErrMalformedInput)
	}

	out := make([]value.Value, len(suffixes.Arr))

	for i, sfx := range suffixes.Arr {
		if sfx.Kind != value.KindString {
			return nil, fmt.Errorf(`%w: prefix-factored "x" entry %d is not a string`, ErrMalformedInput, i)
		}

		out[i] = value.Str(p.Str + sfx.Str)
	}

	return out, nil
}

func (d *decoder) decColumnarArray(x value.Value, depth int) (value.Value, error) {
	if !x.HasOnlyKeys("a", "k", "d") {
		return value.Value{}, fmt.Errorf(`%w: columnar array must have exactly "a", "k", "d"`, ErrMalformedInput)
	}

	a, _ := x.Get("a")
	if a.Kind != value.KindInt || a.Int != 1 {
		return value.Value{}, fmt.Errorf(`%w: columnar array "a" must be the integer 1`, ErrMalformedInput)
	}

	k, _ := x.Get("k")
	dcols, _ := x.Get("d")

	if k.Kind != value.KindArray || dcols.Kind != value.KindArray || len(k.Arr) != len(dcols.Arr) {
		return value.Value{}, fmt.Errorf(`%w: columnar array "k"/"d" must be equal-length arrays`, ErrMalformedInput)
	}

	keys := make([]string, len(k.Arr))

	for i, tok := range k.Arr {
		if tok.Kind != value.KindString {
			return value.Value{}, fmt.Errorf(`%w: columnar array "k" entry %d is not a string`, ErrMalformedInput, i)
		}

		key, ok := d.inv[tok.Str]
		if !ok {
			return value.Value{}, fmt.Errorf("%w: column key token %q not present in dictionary", ErrMalformedInput, tok.Str)
		}

		keys[i] = key
	}

	columns := make([][]value.Value, len(dcols.Arr))
	rowCount := -1

	for i, colDesc := range dcols.Arr {
		col, err := d.decColumn(colDesc, depth+1)
		if err != nil {
			return value.Value{}, err
		}

		if rowCount == -1 {
			rowCount = len(col)
		} else if len(col) != rowCount {
			return value.Value{}, fmt.Errorf("%w: columnar array column %d has %d rows, want %d", ErrMalformedInput, i, len(col), rowCount)
		}

		columns[i] = col
	}

	rows := make([]value.Value, rowCount)

	for r := 0; r < rowCount; r++ {
		obj := value.Object()

		for c, key := range keys {
			obj.Set(key, columns[c][r])
		}

		rows[r] = obj
	}

	return value.Array(rows...), nil
}

func countField(n value.Value) (int64, error) {
	if n.Kind != value.KindInt || n.Int < 2 {
		return 0, fmt.Errorf(`%w: "n" must be an integer >= 2`, ErrMalformedInput)
	}

	return n.Int, nil
}

func asFloat(v value.Value) (float64, bool) {
	switch v.Kind {
	case value.KindFloat:
		return v.Flt, true
	case value.KindInt:
		return float64(v.Int), true
	default:
		return 0, false
	}
}
