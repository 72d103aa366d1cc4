package xcontent

import (
	"encoding/json"
	"strconv"
)

// Flatten converts a nested object into a flat string-to-string map using
// dotted-path keys. Array elements are keyed by their index ("tags.0").
// Scalars are rendered with their document literal form.
func Flatten(m *Map) *StringMap {
	out := NewStringMap()
	flattenInto(out, "", m)
	return out
}

func flattenInto(out *StringMap, prefix string, m *Map) {
	for _, k := range m.Keys() {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		flattenValue(out, key, m.Value(k))
	}
}

func flattenValue(out *StringMap, key string, v any) {
	switch t := v.(type) {
	case *Map:
		flattenInto(out, key, t)
	case []any:
		for i, item := range t {
			flattenValue(out, key+"."+strconv.Itoa(i), item)
		}
	case string:
		out.Set(key, t)
	case json.Number:
		out.Set(key, t.String())
	case bool:
		out.Set(key, strconv.FormatBool(t))
	case nil:
		out.Set(key, "")
	}
}
