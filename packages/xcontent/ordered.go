package xcontent

import "encoding/json"

// Map is a string-keyed map that remembers first-insertion order of its
// keys. Overwriting an existing key keeps the key's original position.
// Values are arbitrary (string, bool, json.Number, nil, *Map, []any).
type Map struct {
	keys []string
	vals map[string]any
}

func NewMap() *Map {
	return &Map{vals: make(map[string]any)}
}

func (m *Map) Set(key string, val any) {
	if _, exists := m.vals[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.vals[key] = val
}

func (m *Map) Get(key string) (any, bool) {
	v, ok := m.vals[key]
	return v, ok
}

// Value returns the value for key, or nil when absent.
func (m *Map) Value(key string) any {
	return m.vals[key]
}

// Keys returns the keys in first-insertion order. The returned slice is
// the map's own backing slice and must not be mutated.
func (m *Map) Keys() []string {
	return m.keys
}

func (m *Map) Len() int {
	return len(m.keys)
}

// Unordered converts the map, recursively, into plain Go maps and slices.
// json.Number values are kept as-is.
func (m *Map) Unordered() map[string]any {
	out := make(map[string]any, len(m.keys))
	for _, k := range m.keys {
		out[k] = unordered(m.vals[k])
	}
	return out
}

func unordered(v any) any {
	switch t := v.(type) {
	case *Map:
		return t.Unordered()
	case []any:
		items := make([]any, len(t))
		for i, item := range t {
			items[i] = unordered(item)
		}
		return items
	default:
		return v
	}
}

// StringMap is a string-to-string map with the same first-insertion order
// semantics as Map. It backs request params and headers, where document
// order matters for serialization but not for equality.
type StringMap struct {
	keys []string
	vals map[string]string
}

func NewStringMap() *StringMap {
	return &StringMap{vals: make(map[string]string)}
}

func (m *StringMap) Set(key, val string) {
	if _, exists := m.vals[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.vals[key] = val
}

func (m *StringMap) Get(key string) (string, bool) {
	v, ok := m.vals[key]
	return v, ok
}

func (m *StringMap) Keys() []string {
	return m.keys
}

func (m *StringMap) Len() int {
	return len(m.keys)
}

// Clone returns a deep copy sharing no storage with the receiver.
func (m *StringMap) Clone() *StringMap {
	out := NewStringMap()
	for _, k := range m.keys {
		out.Set(k, m.vals[k])
	}
	return out
}

// Equal reports whether both maps hold the same entries, ignoring
// insertion order.
func (m *StringMap) Equal(other *StringMap) bool {
	if m.Len() != other.Len() {
		return false
	}
	for k, v := range m.vals {
		ov, ok := other.vals[k]
		if !ok || ov != v {
			return false
		}
	}
	return true
}

// MarshalJSON emits the entries as a JSON object in insertion order.
func (m *StringMap) MarshalJSON() ([]byte, error) {
	w := NewWriter()
	w.BeginObject()
	for _, k := range m.keys {
		w.StringField(k, m.vals[k])
	}
	w.EndObject()
	return w.Bytes(), nil
}

var _ json.Marshaler = (*StringMap)(nil)
