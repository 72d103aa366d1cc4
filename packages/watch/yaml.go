package watch

import (
	"fmt"
	"strconv"

	"github.com/watchhook/watchhook/packages/xcontent"
	"gopkg.in/yaml.v3"
)

// yamlToJSON converts a YAML document into JSON, preserving mapping key
// order so that params and headers keep their document order.
func yamlToJSON(data []byte) ([]byte, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, fmt.Errorf("empty yaml document")
	}
	w := xcontent.NewWriter()
	if err := writeYAMLNode(w, root.Content[0]); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

func writeYAMLNode(w *xcontent.Writer, n *yaml.Node) error {
	switch n.Kind {
	case yaml.AliasNode:
		return writeYAMLNode(w, n.Alias)
	case yaml.MappingNode:
		w.BeginObject()
		for i := 0; i+1 < len(n.Content); i += 2 {
			w.Field(n.Content[i].Value)
			if err := writeYAMLNode(w, n.Content[i+1]); err != nil {
				return err
			}
		}
		w.EndObject()
		return nil
	case yaml.SequenceNode:
		w.BeginArray()
		for _, item := range n.Content {
			if err := writeYAMLNode(w, item); err != nil {
				return err
			}
		}
		w.EndArray()
		return nil
	case yaml.ScalarNode:
		switch n.Tag {
		case "!!int":
			var i int64
			if err := n.Decode(&i); err != nil {
				return err
			}
			w.RawValue(strconv.FormatInt(i, 10))
		case "!!float":
			var f float64
			if err := n.Decode(&f); err != nil {
				return err
			}
			w.RawValue(strconv.FormatFloat(f, 'f', -1, 64))
		case "!!bool":
			var b bool
			if err := n.Decode(&b); err != nil {
				return err
			}
			w.BoolValue(b)
		case "!!null":
			w.NullValue()
		default:
			w.StringValue(n.Value)
		}
		return nil
	}
	return fmt.Errorf("unsupported yaml node kind [%d]", n.Kind)
}
