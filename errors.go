package jton

import "errors"

// Sentinel errors returned by Compress, CompressJSON, Decompress, and
// DecompressJSON. Wrap with fmt.Errorf("%w: ...", ErrX, detail) for
// context; callers should match with errors.Is.
var (
	// ErrUnsupportedValue reports a value outside the JSON domain this
	// codec operates on: NaN, Infinity, or a float that can't round-trip
	// as finite IEEE-754.
	ErrUnsupportedValue = errors.New("jton: value outside supported domain")

	// ErrInvalidJSON reports text that CompressText or DecompressJSON
	// could not parse as JSON at all.
	ErrInvalidJSON = errors.New("jton: invalid json")

	// ErrMalformedInput reports a document that presents as a JTON
	// envelope (both "d" and "m" present at the root) but violates the
	// descriptor grammar: an unknown packed-sequence prefix, truncated
	// base64, a missing "n", a key token absent from "m", and so on.
	ErrMalformedInput = errors.New("jton: malformed envelope")

	// ErrDepthExceeded reports that the input nested deeper than
	// Options.MaxDepth during encode or decode.
	ErrDepthExceeded = errors.New("jton: maximum nesting depth exceeded")
)
