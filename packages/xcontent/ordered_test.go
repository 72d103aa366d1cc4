package xcontent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringMap_FirstInsertionWinsPosition(t *testing.T) {
	m := NewStringMap()
	m.Set("a", "1")
	m.Set("b", "2")
	m.Set("a", "9")

	assert.Equal(t, []string{"a", "b"}, m.Keys())
	v, ok := m.Get("a")
	require.True(t, ok)
	assert.Equal(t, "9", v)
}

func TestStringMap_EqualIgnoresOrder(t *testing.T) {
	a := NewStringMap()
	a.Set("x", "1")
	a.Set("y", "2")

	b := NewStringMap()
	b.Set("y", "2")
	b.Set("x", "1")

	assert.True(t, a.Equal(b))

	b.Set("z", "3")
	assert.False(t, a.Equal(b))
}

func TestStringMap_CloneSharesNothing(t *testing.T) {
	m := NewStringMap()
	m.Set("k", "v")

	c := m.Clone()
	m.Set("k", "changed")
	m.Set("extra", "1")

	v, _ := c.Get("k")
	assert.Equal(t, "v", v)
	assert.Equal(t, 1, c.Len())
}

func TestStringMap_MarshalJSONInsertionOrder(t *testing.T) {
	m := NewStringMap()
	m.Set("z", "last first")
	m.Set("a", "second")

	b, err := m.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"z":"last first","a":"second"}`, string(b))
}

func TestMap_Unordered(t *testing.T) {
	inner := NewMap()
	inner.Set("deep", "v")

	m := NewMap()
	m.Set("s", "str")
	m.Set("nested", inner)
	m.Set("list", []any{"a", inner})

	plain := m.Unordered()
	assert.Equal(t, "str", plain["s"])
	assert.Equal(t, map[string]any{"deep": "v"}, plain["nested"])
	assert.Equal(t, []any{"a", map[string]any{"deep": "v"}}, plain["list"])
}
