// Package column implements the columnar array transform from spec.md
// §4.5: an array of objects that all share the same keys in the same
// order is rewritten as one key list plus one value sequence per column,
// so that per-column packers in [go.jacobcolvin.com/jton/internal/pack]
// can compress each column independently (e.g. a column of monotonically
// increasing ids becomes an arithmetic-progression descriptor instead of
// n repeated small integers).
package column
