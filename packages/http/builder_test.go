package http

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/watchhook/watchhook/packages/xcontent"
)

func TestBuilder_SetParamsMergesNotReplaces(t *testing.T) {
	first := xcontent.NewStringMap()
	first.Set("a", "1")
	second := xcontent.NewStringMap()
	second.Set("b", "2")

	b := NewBuilder("example.com", 80)
	b.SetParams(first)
	b.SetParams(second)
	b.SetParam("a", "9")

	r := b.Build()
	a, ok := r.Params().Get("a")
	require.True(t, ok)
	assert.Equal(t, "9", a)
	bv, ok := r.Params().Get("b")
	require.True(t, ok)
	assert.Equal(t, "2", bv)
	assert.Equal(t, []string{"a", "b"}, r.Params().Keys())
}

func TestBuilder_SetHeadersMergesNotReplaces(t *testing.T) {
	b := NewBuilder("example.com", 80)
	b.SetHeader("Content-Type", "application/json")

	extra := xcontent.NewStringMap()
	extra.Set("X-Token", "abc")
	b.SetHeaders(extra)

	r := b.Build()
	assert.Equal(t, 2, r.Headers().Len())
	assert.Equal(t, []string{"Content-Type", "X-Token"}, r.Headers().Keys())
}

func TestBuilder_BuildCopiesMaps(t *testing.T) {
	b := NewBuilder("example.com", 80)
	b.SetParam("k", "v")
	r := b.Build()

	// later builder mutation must not reach the built request
	b.SetParam("k", "changed")
	b.SetParam("added", "1")

	v, _ := r.Params().Get("k")
	assert.Equal(t, "v", v)
	assert.Equal(t, 1, r.Params().Len())
}

func TestBuilder_IsPermissive(t *testing.T) {
	// the builder itself never validates; only the parser does
	r := EmptyBuilder().Build()
	assert.Equal(t, "", r.Host())
	assert.Equal(t, -1, r.Port())
}

func TestBuilder_OptionalFieldsStayAbsent(t *testing.T) {
	r := NewBuilder("example.com", 9200).Build()

	assert.Equal(t, SchemeHTTP, r.Scheme())
	assert.Equal(t, MethodGet, r.Method())
	assert.Equal(t, "", r.Path())
	assert.False(t, r.HasBody())
	assert.Equal(t, "", r.Body())
	_, ok := r.ConnectionTimeout()
	assert.False(t, ok)
	_, ok = r.ReadTimeout()
	assert.False(t, ok)
	assert.Nil(t, r.Auth())
}

func TestBuilder_LastWriteWins(t *testing.T) {
	r := NewBuilder("example.com", 80).
		Scheme(SchemeHTTP).
		Scheme(SchemeHTTPS).
		Method(MethodPost).
		Method(MethodPut).
		ReadTimeout(10 * time.Second).
		ReadTimeout(20 * time.Second).
		Build()

	assert.Equal(t, SchemeHTTPS, r.Scheme())
	assert.Equal(t, MethodPut, r.Method())
	d, ok := r.ReadTimeout()
	require.True(t, ok)
	assert.Equal(t, 20*time.Second, d)
}
