package pack

// Options tunes the thresholds spec.md §9 leaves to implementer discretion.
// Every field has a documented default in [Default]; callers retune via
// jton.Options, which this type mirrors field-for-field (see
// jton.Options.packOptions).
type Options struct {
	// BoolPackMinLen is the minimum sequence length before the boolean
	// bit-packer is attempted at all (spec.md §4.4: "threshold at
	// implementer's discretion but fixed per version").
	BoolPackMinLen int
	// PrefixMinLen is the minimum common-prefix length, in bytes, before
	// the prefix-factored string packer is attempted.
	PrefixMinLen int
	// ScaledFloatTolerance is the maximum absolute error allowed between
	// a float and its nearest scaled integer for the scaled-float packer
	// to apply.
	ScaledFloatTolerance float64
	// DisableBinaryPackers turns off the boolean/integer/scaled-float/
	// raw-double base64 packers, leaving arithmetic progression, constant
	// runs, prefix-factoring, and columnar grouping active. This is
	// spec.md §9's "human-readable variant" expressed as a configuration
	// of the same core rather than a separate component.
	DisableBinaryPackers bool
}

// Default returns this revision's fixed packer thresholds (spec.md §1 of
// SPEC_FULL.md documents the rationale for each constant).
func Default() Options {
	return Options{
		BoolPackMinLen:       8,
		PrefixMinLen:         2,
		ScaledFloatTolerance: 1e-9,
	}
}
