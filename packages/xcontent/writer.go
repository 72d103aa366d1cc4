package xcontent

import (
	"bytes"
	"encoding/json"
	"strconv"
)

type wframe struct {
	array bool
	n     int
}

// Writer builds a JSON document with explicit field ordering. Callers are
// responsible for pairing Begin/End calls and for emitting exactly one
// value after each Field call.
type Writer struct {
	buf   bytes.Buffer
	stack []wframe
}

func NewWriter() *Writer {
	return &Writer{}
}

func (w *Writer) BeginObject() {
	w.beginValue()
	w.buf.WriteByte('{')
	w.stack = append(w.stack, wframe{})
}

func (w *Writer) EndObject() {
	w.stack = w.stack[:len(w.stack)-1]
	w.buf.WriteByte('}')
}

func (w *Writer) BeginArray() {
	w.beginValue()
	w.buf.WriteByte('[')
	w.stack = append(w.stack, wframe{array: true})
}

func (w *Writer) EndArray() {
	w.stack = w.stack[:len(w.stack)-1]
	w.buf.WriteByte(']')
}

// Field writes the key for the next value in the enclosing object.
func (w *Writer) Field(name string) {
	top := &w.stack[len(w.stack)-1]
	if top.n > 0 {
		w.buf.WriteByte(',')
	}
	top.n++
	w.writeQuoted(name)
	w.buf.WriteByte(':')
}

func (w *Writer) StringValue(s string) {
	w.beginValue()
	w.writeQuoted(s)
}

func (w *Writer) IntValue(i int) {
	w.beginValue()
	w.buf.WriteString(strconv.Itoa(i))
}

func (w *Writer) BoolValue(b bool) {
	w.beginValue()
	w.buf.WriteString(strconv.FormatBool(b))
}

func (w *Writer) NullValue() {
	w.beginValue()
	w.buf.WriteString("null")
}

// RawValue writes pre-encoded JSON verbatim.
func (w *Writer) RawValue(raw string) {
	w.beginValue()
	w.buf.WriteString(raw)
}

func (w *Writer) StringField(name, value string) {
	w.Field(name)
	w.StringValue(value)
}

func (w *Writer) IntField(name string, value int) {
	w.Field(name)
	w.IntValue(value)
}

// StringMapField writes an ordered string map as a nested object.
func (w *Writer) StringMapField(name string, m *StringMap) {
	w.Field(name)
	w.BeginObject()
	for _, k := range m.Keys() {
		v, _ := m.Get(k)
		w.StringField(k, v)
	}
	w.EndObject()
}

// MapValue writes an ordered map as an object, recursively.
func (w *Writer) MapValue(m *Map) {
	w.BeginObject()
	for _, k := range m.Keys() {
		w.Field(k)
		w.AnyValue(m.Value(k))
	}
	w.EndObject()
}

// AnyValue writes a value of any kind a Stream can read back: strings,
// json.Number, bools, nil, nested *Map and []any.
func (w *Writer) AnyValue(v any) {
	switch t := v.(type) {
	case *Map:
		w.MapValue(t)
	case []any:
		w.BeginArray()
		for _, item := range t {
			w.AnyValue(item)
		}
		w.EndArray()
	case string:
		w.StringValue(t)
	case json.Number:
		w.RawValue(t.String())
	case bool:
		w.BoolValue(t)
	case int:
		w.IntValue(t)
	case float64:
		b, _ := json.Marshal(t)
		w.RawValue(string(b))
	case nil:
		w.NullValue()
	default:
		b, _ := json.Marshal(t)
		w.RawValue(string(b))
	}
}

// Bytes returns the document built so far.
func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}

func (w *Writer) String() string {
	return w.buf.String()
}

func (w *Writer) beginValue() {
	if n := len(w.stack); n > 0 && w.stack[n-1].array {
		if w.stack[n-1].n > 0 {
			w.buf.WriteByte(',')
		}
		w.stack[n-1].n++
	}
}

func (w *Writer) writeQuoted(s string) {
	b, _ := json.Marshal(s)
	w.buf.Write(b)
}
