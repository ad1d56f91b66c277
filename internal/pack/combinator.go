package pack

import (
	"go.jacobcolvin.com/jton/internal/jsontext"
	"go.jacobcolvin.com/jton/value"
)

const (
	scaledFloatScale1 = 100
	scaledFloatScale2 = 1000
)

// TryBinary recognizes a homogeneous sequence of booleans, integers, or
// floats and base64-packs it per spec.md §4.4. It returns false for mixed
// or non-packable sequences, for sequences shorter than
// [Options.BoolPackMinLen] when the element type is bool, and whenever
// [Options.DisableBinaryPackers] is set.
func TryBinary(seq []value.Value, opts Options) (value.Value, bool) {
	if opts.DisableBinaryPackers || len(seq) == 0 {
		return value.Value{}, false
	}

	switch seq[0].Kind {
	case value.KindBool:
		if len(seq) < opts.BoolPackMinLen {
			return value.Value{}, false
		}

		bs := make([]bool, len(seq))

		for i, v := range seq {
			if v.Kind != value.KindBool {
				return value.Value{}, false
			}

			bs[i] = v.Bool
		}

		return value.Str(encodeBools(bs)), true

	case value.KindInt:
		vs := make([]int64, len(seq))

		for i, v := range seq {
			if v.Kind != value.KindInt {
				return value.Value{}, false
			}

			vs[i] = v.Int
		}

		return value.Str(encodeInts(vs)), true

	case value.KindFloat:
		fs := make([]float64, len(seq))

		for i, v := range seq {
			if v.Kind != value.KindFloat {
				return value.Value{}, false
			}

			fs[i] = v.Flt
		}

		return tryScaledOrRawFloats(fs, opts), true

	default:
		return value.Value{}, false
	}
}

// tryScaledOrRawFloats prefers the narrowest scaled-integer encoding that
// round-trips within tolerance (scale 100 packed as int16, then scale
// 1000 packed as int32) before falling back to raw IEEE-754 doubles.
func tryScaledOrRawFloats(fs []float64, opts Options) value.Value {
	if vs, ok := scaledFloatFits(fs, scaledFloatScale1, -32768, 32767, opts.ScaledFloatTolerance); ok {
		return value.Str(encodeScaledFloats('F', vs, 2))
	}

	if vs, ok := scaledFloatFits(fs, scaledFloatScale2, -2147483648, 2147483647, opts.ScaledFloatTolerance); ok {
		return value.Str(encodeScaledFloats('G', vs, 4))
	}

	return value.Str(encodeRawDoubles(fs))
}

// DecodeScaledOrRawFloats dispatches a packed float-sequence string (tag
// 'F', 'G', or 'D') to the matching decoder.
func DecodeScaledOrRawFloats(s string) ([]float64, error) {
	switch s[0] {
	case 'F':
		return decodeScaledFloats(s, 2, scaledFloatScale1)
	case 'G':
		return decodeScaledFloats(s, 4, scaledFloatScale2)
	case 'D':
		return decodeRawDoubles(s)
	default:
		return nil, ErrMalformed
	}
}

// DecodeBools decodes a boolean bit-pack string produced by TryBinary.
func DecodeBools(s string) ([]bool, error) { return decodeBools(s) }

// DecodeInts decodes an integer-width pack string produced by TryBinary.
func DecodeInts(s string) ([]int64, error) { return decodeInts(s) }

// candidate pairs a descriptor Value with its marshaled length, so TryAll
// can pick the shortest without re-marshaling during comparison.
type candidate struct {
	val value.Value
	len int
}

// TryAll runs the structural packers (arithmetic progression, constant
// run, prefix factoring) applicable to seq and returns the shortest of
// their descriptors; a prefix-factored candidate counts only when it
// marshals shorter than the plain list. The binary packers are tried only
// when no structural packer applies, so a structural descriptor is kept
// even where a packed string would be shorter. encode is used by
// [TryConstantRun] to recursively compress the repeated element. It
// returns false if no packer applies.
func TryAll(seq []value.Value, opts Options, encode func(value.Value) value.Value) (value.Value, bool) {
	var candidates []candidate

	add := func(v value.Value, ok bool) {
		if ok {
			candidates = append(candidates, candidate{val: v, len: len(jsontext.Marshal(v))})
		}
	}

	add(TryArithmetic(seq))
	add(TryConstantRun(seq, encode))

	if v, ok := TryPrefixFactor(seq, opts.PrefixMinLen); ok &&
		len(jsontext.Marshal(v)) < len(jsontext.Marshal(value.Array(seq...))) {
		add(v, true)
	}

	if len(candidates) == 0 {
		add(TryBinary(seq, opts))
	}

	if len(candidates) == 0 {
		return value.Value{}, false
	}

	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.len < best.len {
			best = c
		}
	}

	return best.val, true
}
