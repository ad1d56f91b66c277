package column

import (
	"go.jacobcolvin.com/jton/internal/pack"
	"go.jacobcolvin.com/jton/value"
)

// minRows is the smallest array length worth attempting columnar
// extraction on. Two rows is the break-even point below which the
// {"a":1,"k":...,"d":...} envelope cannot pay for itself.
const minRows = 2

// Try recognizes an array every element of which is an object with the
// same keys in the same order, and returns the columnar descriptor
// {"a": 1, "k": [encoded keys], "d": [per-column values]}. The "a" field
// is a fixed version/sentinel for this revision, not a row count; row
// count is recovered on decode from the length of the "d" columns.
//
// encodeKey tokenizes an object key the same way the rest of the document
// does (so the dictionary sees exactly one set of key strings regardless
// of whether a given object ends up columnar or not). encodeValue
// recursively compresses a single cell. packOpts controls the per-column
// packers tried via [pack.TryAll]; a column that no packer accepts falls
// back to an ordinary array of encoded cells.
func Try(
	arr []value.Value,
	packOpts pack.Options,
	encodeKey func(string) string,
	encodeValue func(value.Value) value.Value,
) (value.Value, bool) {
	if len(arr) < minRows {
		return value.Value{}, false
	}

	keys, ok := uniformKeys(arr)
	if !ok {
		return value.Value{}, false
	}

	columns := make([][]value.Value, len(keys))
	for i := range columns {
		columns[i] = make([]value.Value, len(arr))
	}

	for row, obj := range arr {
		for col := range keys {
			columns[col][row] = obj.Obj[col].Value
		}
	}

	encodedKeys := make([]value.Value, len(keys))
	for i, k := range keys {
		encodedKeys[i] = value.Str(encodeKey(k))
	}

	encodedColumns := make([]value.Value, len(columns))

	for i, col := range columns {
		cells := make([]value.Value, len(col))
		for j, cell := range col {
			cells[j] = encodeValue(cell)
		}

		encodedColumns[i] = value.Array(cells...)

		if packed, ok := pack.TryAll(col, packOpts, encodeValue); ok {
			encodedColumns[i] = packed
		}
	}

	desc := value.Object()
	desc.Set("a", value.Int(1))
	desc.Set("k", value.Array(encodedKeys...))
	desc.Set("d", value.Array(encodedColumns...))

	return desc, true
}

// uniformKeys returns the first row's key list if every row is an object
// with exactly that key sequence, in that order.
func uniformKeys(arr []value.Value) ([]string, bool) {
	if arr[0].Kind != value.KindObject || len(arr[0].Obj) == 0 {
		return nil, false
	}

	keys := make([]string, len(arr[0].Obj))
	for i, m := range arr[0].Obj {
		keys[i] = m.Key
	}

	for _, row := range arr {
		if row.Kind != value.KindObject || len(row.Obj) != len(keys) {
			return nil, false
		}

		for i, m := range row.Obj {
			if m.Key != keys[i] {
				return nil, false
			}
		}
	}

	return keys, true
}
