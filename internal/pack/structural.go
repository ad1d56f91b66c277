package pack

import (
	"unicode/utf8"

	"go.jacobcolvin.com/jton/value"
)

// TryArithmetic recognizes a sequence of all-integer or all-float values
// forming an arithmetic progression (constant step, including step 0) and
// returns the {"s": start, "d": delta, "n": count} descriptor spec.md §4.4
// defines for it. A float progression only qualifies if every element is
// bit-exact after recomputation as start + i*delta.
func TryArithmetic(seq []value.Value) (value.Value, bool) {
	if len(seq) < 2 {
		return value.Value{}, false
	}

	switch {
	case allKind(seq, value.KindInt):
		return tryArithmeticInt(seq)
	case allKind(seq, value.KindFloat):
		return tryArithmeticFloat(seq)
	default:
		return value.Value{}, false
	}
}

func allKind(seq []value.Value, k value.Kind) bool {
	for _, v := range seq {
		if v.Kind != k {
			return false
		}
	}

	return true
}

func tryArithmeticInt(seq []value.Value) (value.Value, bool) {
	start := seq[0].Int
	delta := seq[1].Int - seq[0].Int

	for i := 1; i < len(seq); i++ {
		if seq[i].Int-seq[i-1].Int != delta {
			return value.Value{}, false
		}
	}

	desc := value.Object()
	desc.Set("s", value.Int(start))
	desc.Set("d", value.Int(delta))
	desc.Set("n", value.Int(int64(len(seq))))

	return desc, true
}

func tryArithmeticFloat(seq []value.Value) (value.Value, bool) {
	start := seq[0].Flt
	delta := seq[1].Flt - seq[0].Flt

	for i, v := range seq {
		if v.Flt != start+float64(i)*delta {
			return value.Value{}, false
		}
	}

	desc := value.Object()
	desc.Set("s", value.Float(start))
	desc.Set("d", value.Float(delta))
	desc.Set("n", value.Int(int64(len(seq))))

	return desc, true
}

// TryConstantRun recognizes a sequence in which every element is equal
// (per [value.Equal]) and returns the {"c": value, "n": count} descriptor.
// encode runs the normal recursive encoding on the repeated element, so a
// constant run of objects or arrays still benefits from their own
// compression.
func TryConstantRun(seq []value.Value, encode func(value.Value) value.Value) (value.Value, bool) {
	if len(seq) < 2 {
		return value.Value{}, false
	}

	for i := 1; i < len(seq); i++ {
		if !value.Equal(seq[i], seq[0]) {
			return value.Value{}, false
		}
	}

	desc := value.Object()
	desc.Set("c", encode(seq[0]))
	desc.Set("n", value.Int(int64(len(seq))))

	return desc, true
}

// TryPrefixFactor recognizes a sequence of strings sharing a common prefix
// at least minLen bytes long and returns the {"p": prefix, "x": [suffixes]}
// descriptor. The byte-wise common prefix is truncated to the last full
// UTF-8 rune boundary so prefix and suffixes both stay valid UTF-8 text.
func TryPrefixFactor(seq []value.Value, minLen int) (value.Value, bool) {
	if len(seq) < 2 {
		return value.Value{}, false
	}

	for _, v := range seq {
		if v.Kind != value.KindString {
			return value.Value{}, false
		}
	}

	prefix := commonPrefix(seq)
	prefix = truncateToRuneBoundary(prefix)

	if len(prefix) < minLen {
		return value.Value{}, false
	}

	suffixes := make([]value.Value, len(seq))
	for i, v := range seq {
		suffixes[i] = value.Str(v.Str[len(prefix):])
	}

	desc := value.Object()
	desc.Set("p", value.Str(prefix))
	desc.Set("x", value.Array(suffixes...))

	return desc, true
}

func commonPrefix(seq []value.Value) string {
	prefix := seq[0].Str

	for _, v := range seq[1:] {
		prefix = sharedPrefix(prefix, v.Str)
		if prefix == "" {
			break
		}
	}

	return prefix
}

func sharedPrefix(a, b string) string {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	i := 0
	for i < n && a[i] == b[i] {
		i++
	}

	return a[:i]
}

// truncateToRuneBoundary shortens s, if necessary, to end at a valid UTF-8
// rune boundary, so splitting a string at len(prefix) never cuts a
// multi-byte rune in half.
func truncateToRuneBoundary(s string) string {
	for len(s) > 0 {
		r, size := utf8.DecodeLastRuneInString(s)
		if r != utf8.RuneError || size != 1 {
			return s
		}

		s = s[:len(s)-size]
	}

	return s
}
