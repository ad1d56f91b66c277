package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/jton"
	"go.jacobcolvin.com/jton/internal/jsontext"
	"go.jacobcolvin.com/jton/internal/schema"
)

func TestDescribeArithmeticProgression(t *testing.T) {
	v, err := jsontext.Parse([]byte(`{"ids":[1,2,3,4,5,6,7,8,9,10,11,12,13,14,15,16,17,18,19,20]}`))
	require.NoError(t, err)

	s, err := schema.Describe(v, jton.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, "object", s.Type)

	ids, ok := s.Properties["ids"]
	require.True(t, ok)
	assert.Equal(t, "array", ids.Type)
	assert.Contains(t, ids.Description, "arithmetic progression")
}

func TestDescribeGlobalFallback(t *testing.T) {
	v, err := jsontext.Parse([]byte(`{"id":1,"name":"Alice"}`))
	require.NoError(t, err)

	s, err := schema.Describe(v, jton.DefaultOptions())
	require.NoError(t, err)
	assert.Contains(t, s.Description, "global fallback")
}
