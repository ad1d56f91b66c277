// Package pack implements the sequence-level compression strategies
// spec.md §4.4 applies to arrays of structurally uniform values: arithmetic
// progressions, constant runs, prefix-factored strings, and (unless
// [Options.DisableBinaryPackers] is set) base64-packed booleans, narrow
// integers, scaled floats, and raw doubles.
//
// Every packer is pure: given a []value.Value sequence it either returns a
// candidate replacement and true, or false if the sequence doesn't fit the
// shape that packer recognizes. [TryAll] keeps the shortest marshaled
// structural descriptor (arithmetic, constant, or prefix-factored) and
// falls back to the binary packers only when no structural packer applies.
package pack

import "errors"

// ErrMalformed reports a packed-sequence string that doesn't match the
// grammar its own prefix or tag promises, encountered while decoding.
var ErrMalformed = errors.New("pack: malformed packed sequence")
