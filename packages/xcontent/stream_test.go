package xcontent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStream_TokenSequence(t *testing.T) {
	doc := `{"host":"example.com","port":80,"secure":false,"tags":["a","b"],"extra":null}`
	s := NewStream([]byte(doc))

	expect := []Token{
		{Kind: ObjectStart},
		{Kind: FieldName, Field: "host"},
		{Kind: String, Str: "example.com"},
		{Kind: FieldName, Field: "port"},
		{Kind: Number, Num: 80, Str: "80"},
		{Kind: FieldName, Field: "secure"},
		{Kind: Boolean, Bool: false},
		{Kind: FieldName, Field: "tags"},
		{Kind: ArrayStart},
		{Kind: String, Str: "a"},
		{Kind: String, Str: "b"},
		{Kind: ArrayEnd},
		{Kind: FieldName, Field: "extra"},
		{Kind: Null},
		{Kind: ObjectEnd},
		{Kind: EOF},
	}
	for i, want := range expect {
		tok, err := s.Next()
		require.NoError(t, err, "token %d", i)
		assert.Equal(t, want, tok, "token %d", i)
	}
}

func TestStream_NestedObjects(t *testing.T) {
	doc := `{"outer":{"inner":{"k":"v"}},"after":"x"}`
	s := NewStream([]byte(doc))

	kinds := []TokenKind{}
	for {
		tok, err := s.Next()
		require.NoError(t, err)
		kinds = append(kinds, tok.Kind)
		if tok.Kind == EOF {
			break
		}
	}
	assert.Equal(t, []TokenKind{
		ObjectStart,
		FieldName, ObjectStart, FieldName, ObjectStart, FieldName, String, ObjectEnd, ObjectEnd,
		FieldName, String,
		ObjectEnd, EOF,
	}, kinds)
}

func TestStream_RawObjectVerbatim(t *testing.T) {
	doc := `{"body": {"x": 1,  "y": [true, null]}}`
	s := NewStream([]byte(doc))

	mustNext(t, s, ObjectStart)
	tok := mustNext(t, s, FieldName)
	assert.Equal(t, "body", tok.Field)
	mustNext(t, s, ObjectStart)

	raw, err := s.RawObject()
	require.NoError(t, err)
	assert.Equal(t, `{"x": 1,  "y": [true, null]}`, raw)

	// the stream continues cleanly after the captured object
	mustNext(t, s, ObjectEnd)
	mustNext(t, s, EOF)
}

func TestStream_ReadMapKeepsOrder(t *testing.T) {
	doc := `{"z":"1","a":{"b":"2","c":3},"m":true}`
	s := NewStream([]byte(doc))
	mustNext(t, s, ObjectStart)

	m, err := s.ReadMap()
	require.NoError(t, err)
	assert.Equal(t, []string{"z", "a", "m"}, m.Keys())

	nested, ok := m.Get("a")
	require.True(t, ok)
	inner, ok := nested.(*Map)
	require.True(t, ok)
	assert.Equal(t, []string{"b", "c"}, inner.Keys())

	mustNext(t, s, EOF)
}

func TestStream_SkipChildren(t *testing.T) {
	doc := `{"skip":{"deep":{"er":[1,2,3]}},"keep":"yes"}`
	s := NewStream([]byte(doc))
	mustNext(t, s, ObjectStart)
	mustNext(t, s, FieldName)
	mustNext(t, s, ObjectStart)
	require.NoError(t, s.SkipChildren())

	tok := mustNext(t, s, FieldName)
	assert.Equal(t, "keep", tok.Field)
	mustNext(t, s, String)
	mustNext(t, s, ObjectEnd)
}

func TestStream_TruncatedDocument(t *testing.T) {
	s := NewStream([]byte(`{"host":"example.com"`))
	mustNext(t, s, ObjectStart)
	mustNext(t, s, FieldName)
	mustNext(t, s, String)
	_, err := s.Next()
	assert.Error(t, err)
}

func mustNext(t *testing.T, s *Stream, kind TokenKind) Token {
	t.Helper()
	tok, err := s.Next()
	require.NoError(t, err)
	require.Equal(t, kind, tok.Kind)
	return tok
}
