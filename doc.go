// Package jton implements a lossless JSON re-encoding codec that rewrites
// a JSON value into a semantically equivalent but token-sparser JSON
// value. The encoder detects columnar structure, numeric ranges, boolean
// density, string prefixes, and arithmetic progressions inside arrays and
// emits a descriptor-driven document; the decoder is the exact inverse.
//
// [CompressJSON] and [DecompressJSON] operate on JSON text. [Compress] and
// [Decompress] operate on [value.Value] directly for callers that already
// have a parsed tree and want to skip a parse/serialize round trip.
//
// Every encoded document round-trips byte-for-byte through decode, and
// [CompressJSON] never returns a document longer than the canonical JSON
// of its input: when the descriptor form doesn't win, the encoder falls
// back to canonical JSON verbatim.
package jton

import (
	"go.jacobcolvin.com/jton/internal/pack"
)

// Options tunes the packer thresholds used during compression. The zero
// value is not meaningful; use [DefaultOptions].
type Options struct {
	// BoolPackMinLen is the minimum run length before boolean sequences
	// are bit-packed instead of left as a plain array.
	BoolPackMinLen int
	// PrefixMinLen is the minimum shared byte length before strings are
	// prefix-factored instead of left as a plain array.
	PrefixMinLen int
	// ScaledFloatTolerance is the maximum absolute error tolerated when
	// packing floats as scaled integers.
	ScaledFloatTolerance float64
	// DisableBinaryPackers turns off every base64 packer (boolean,
	// integer, scaled float, raw double), producing the "human-readable"
	// variant that still benefits from arithmetic, constant, prefix, and
	// columnar compression.
	DisableBinaryPackers bool
	// MaxDepth bounds input nesting depth. Compress and Decompress both
	// fail with an error wrapping [ErrDepthExceeded] once exceeded. Zero
	// means use [DefaultMaxDepth].
	MaxDepth int
}

// DefaultMaxDepth is the recursion guard applied when [Options.MaxDepth]
// is left at zero.
const DefaultMaxDepth = 10000

// DefaultOptions returns this revision's fixed packer thresholds.
func DefaultOptions() Options {
	d := pack.Default()

	return Options{
		BoolPackMinLen:       d.BoolPackMinLen,
		PrefixMinLen:         d.PrefixMinLen,
		ScaledFloatTolerance: d.ScaledFloatTolerance,
		MaxDepth:             DefaultMaxDepth,
	}
}

func (o Options) packOptions() pack.Options {
	return pack.Options{
		BoolPackMinLen:       o.BoolPackMinLen,
		PrefixMinLen:         o.PrefixMinLen,
		ScaledFloatTolerance: o.ScaledFloatTolerance,
		DisableBinaryPackers: o.DisableBinaryPackers,
	}
}

func (o Options) maxDepth() int {
	if o.MaxDepth <= 0 {
		return DefaultMaxDepth
	}

	return o.MaxDepth
}
