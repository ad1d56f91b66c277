package column_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/jton/internal/column"
	"go.jacobcolvin.com/jton/internal/pack"
	"go.jacobcolvin.com/jton/value"
)

func row(id int64, name string) value.Value {
	obj := value.Object()
	obj.Set("id", value.Int(id))
	obj.Set("name", value.Str(name))

	return obj
}

func identity(v value.Value) value.Value { return v }
func identityKey(k string) string        { return k }

func TestTryColumnarUniform(t *testing.T) {
	arr := []value.Value{row(1, "alice"), row(2, "bob"), row(3, "carol")}

	got, ok := column.Try(arr, pack.Default(), identityKey, identity)
	require.True(t, ok)

	a, _ := got.Get("a")
	k, _ := got.Get("k")
	d, _ := got.Get("d")

	assert.Equal(t, int64(1), a.Int)
	require.Len(t, k.Arr, 2)
	assert.Equal(t, "id", k.Arr[0].Str)
	assert.Equal(t, "name", k.Arr[1].Str)
	require.Len(t, d.Arr, 2)

	// The id column is an arithmetic progression and should be packed
	// down to a descriptor rather than left as a plain 3-element array.
	assert.True(t, d.Arr[0].Has("s"))
}

func TestTryColumnarRejectsNonUniformKeys(t *testing.T) {
	other := value.Object()
	other.Set("id", value.Int(4))
	other.Set("label", value.Str("x"))

	arr := []value.Value{row(1, "alice"), other}

	_, ok := column.Try(arr, pack.Default(), identityKey, identity)
	assert.False(t, ok)
}

func TestTryColumnarRejectsTooFewRows(t *testing.T) {
	_, ok := column.Try([]value.Value{row(1, "alice")}, pack.Default(), identityKey, identity)
	assert.False(t, ok)
}

func TestTryColumnarRejectsNonObjects(t *testing.T) {
	arr := []value.Value{value.Int(1), value.Int(2)}

	_, ok := column.Try(arr, pack.Default(), identityKey, identity)
	assert.False(t, ok)
}
