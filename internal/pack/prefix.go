package pack

// reservedPrefixes are the one-character tags a packed-sequence string can
// start with: boolean bit-pack (T), integer widths (U, B, V, H, I, L),
// scaled floats (F, G), and raw doubles (D). spec.md §4.4's "prefix
// collision escape" rule requires any literal string that could be
// mistaken for one of these to be wrapped as {"S": ...} wherever it
// appears at a position a packed string would also be legal.
const reservedPrefixes = "TUBVHILFGD"

// IsAtRisk reports whether s begins with a reserved packed-sequence
// prefix character and therefore needs {"S": s} wrapping at any position
// where a packed descriptor string is also legal.
//
// spec.md phrases the risk test as "begins with such a prefix character
// followed by characters that could be a valid base64 body". Precisely
// recognizing "could be a valid base64 body" buys little: the unnecessary
// wrap of a safe-looking string like "Uh-oh" costs at most a handful of
// bytes, and that cost is already priced in by the encoder's own
// net-shorter-or-fallback comparison (spec.md §4.6). So this package uses
// the simpler, always-safe over-approximation of "starts with a reserved
// prefix character", documented as a deliberate Open Question resolution
// in DESIGN.md.
func IsAtRisk(s string) bool {
	return len(s) > 0 && containsByte(reservedPrefixes, s[0])
}

func containsByte(set string, b byte) bool {
	for i := 0; i < len(set); i++ {
		if set[i] == b {
			return true
		}
	}

	return false
}
