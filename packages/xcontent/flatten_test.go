package xcontent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flattenDoc(t *testing.T, doc string) *StringMap {
	t.Helper()
	s := NewStream([]byte(doc))
	tok, err := s.Next()
	require.NoError(t, err)
	require.Equal(t, ObjectStart, tok.Kind)
	m, err := s.ReadMap()
	require.NoError(t, err)
	return Flatten(m)
}

func TestFlatten_NestedKeys(t *testing.T) {
	flat := flattenDoc(t, `{"a":{"b":{"c":"v"}},"top":"t"}`)

	assert.Equal(t, []string{"a.b.c", "top"}, flat.Keys())
	v, ok := flat.Get("a.b.c")
	require.True(t, ok)
	assert.Equal(t, "v", v)
}

func TestFlatten_ArraysIndexed(t *testing.T) {
	flat := flattenDoc(t, `{"tags":["alpha","beta"],"mixed":[{"k":"v"},2]}`)

	assert.Equal(t, []string{"tags.0", "tags.1", "mixed.0.k", "mixed.1"}, flat.Keys())
	v, _ := flat.Get("mixed.1")
	assert.Equal(t, "2", v)
}

func TestFlatten_ScalarLiterals(t *testing.T) {
	flat := flattenDoc(t, `{"n":1.5,"b":true,"empty":null}`)

	n, _ := flat.Get("n")
	assert.Equal(t, "1.5", n)
	b, _ := flat.Get("b")
	assert.Equal(t, "true", b)
	e, _ := flat.Get("empty")
	assert.Equal(t, "", e)
}
