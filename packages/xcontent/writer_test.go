package xcontent

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter_FieldOrder(t *testing.T) {
	w := NewWriter()
	w.BeginObject()
	w.StringField("scheme", "https")
	w.StringField("host", "example.com")
	w.IntField("port", 443)
	w.EndObject()

	assert.Equal(t, `{"scheme":"https","host":"example.com","port":443}`, w.String())
}

func TestWriter_NestedObjectsAndArrays(t *testing.T) {
	w := NewWriter()
	w.BeginObject()
	w.Field("outer")
	w.BeginObject()
	w.StringField("k", "v")
	w.EndObject()
	w.Field("list")
	w.BeginArray()
	w.StringValue("a")
	w.IntValue(2)
	w.BoolValue(true)
	w.NullValue()
	w.EndArray()
	w.EndObject()

	assert.Equal(t, `{"outer":{"k":"v"},"list":["a",2,true,null]}`, w.String())
}

func TestWriter_EscapesStrings(t *testing.T) {
	w := NewWriter()
	w.BeginObject()
	w.StringField("body", `{"x":1}`)
	w.EndObject()

	assert.True(t, json.Valid(w.Bytes()))

	var decoded map[string]string
	require.NoError(t, json.Unmarshal(w.Bytes(), &decoded))
	assert.Equal(t, `{"x":1}`, decoded["body"])
}

func TestWriter_MapValueRoundTrips(t *testing.T) {
	m := NewMap()
	m.Set("name", "cpu")
	m.Set("count", json.Number("3"))
	m.Set("enabled", true)
	nested := NewMap()
	nested.Set("inner", "x")
	m.Set("nested", nested)

	w := NewWriter()
	w.MapValue(m)

	s := NewStream(w.Bytes())
	tok, err := s.Next()
	require.NoError(t, err)
	require.Equal(t, ObjectStart, tok.Kind)
	back, err := s.ReadMap()
	require.NoError(t, err)

	assert.Equal(t, m.Keys(), back.Keys())
	assert.Equal(t, m.Unordered(), back.Unordered())
}
