package watch

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
	whttp "github.com/watchhook/watchhook/packages/http"
	"github.com/watchhook/watchhook/packages/input"
	"github.com/watchhook/watchhook/packages/xcontent"
)

var placeholderPattern = regexp.MustCompile(`\{\{([^}]+)\}\}`)

// Loader parses watch definition files.
type Loader struct {
	inputs   *input.Registry
	requests *whttp.RequestParser
}

func NewLoader(inputs *input.Registry, requests *whttp.RequestParser) *Loader {
	return &Loader{inputs: inputs, requests: requests}
}

// Load reads and parses a definition file. Files ending in .yaml or .yml
// are converted to JSON first.
func (l *Loader) Load(path string) (*Watch, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".yaml" || ext == ".yml" {
		return l.ParseYAML(data)
	}
	return l.Parse(data)
}

// ParseYAML converts a YAML definition to JSON and parses it.
func (l *Loader) ParseYAML(data []byte) (*Watch, error) {
	converted, err := yamlToJSON(data)
	if err != nil {
		return nil, fmt.Errorf("could not parse watch definition: %w", err)
	}
	return l.Parse(converted)
}

// Parse parses a JSON definition document. {{NAME}} placeholders are
// resolved from the environment first; an unset variable is an error.
func (l *Loader) Parse(data []byte) (*Watch, error) {
	resolved, err := resolvePlaceholders(data)
	if err != nil {
		return nil, err
	}
	s := xcontent.NewStream(resolved)
	tok, err := s.Next()
	if err != nil {
		return nil, fmt.Errorf("could not parse watch definition: %w", err)
	}
	if tok.Kind != xcontent.ObjectStart {
		return nil, fmt.Errorf("could not parse watch definition. expected an object but found [%s]", tok.Kind)
	}

	w := &Watch{}
	var field string
	for {
		tok, err = s.Next()
		if err != nil {
			return nil, fmt.Errorf("could not parse watch definition: %w", err)
		}
		if tok.Kind == xcontent.ObjectEnd {
			break
		}
		switch {
		case tok.Kind == xcontent.FieldName:
			field = tok.Field
		case field == "id" && tok.Kind == xcontent.String:
			w.ID = tok.Str
		case field == "name" && tok.Kind == xcontent.String:
			w.Name = tok.Str
		case field == "interval":
			d, err := xcontent.ParseDuration(tok, field)
			if err != nil {
				return nil, fmt.Errorf("could not parse watch definition: %w", err)
			}
			w.Interval = d
		case field == "input" && tok.Kind == xcontent.ObjectStart:
			in, err := l.inputs.Parse(s)
			if err != nil {
				return nil, fmt.Errorf("could not parse watch definition [input] field: %w", err)
			}
			w.Input = in
		case field == "webhook" && tok.Kind == xcontent.ObjectStart:
			req, err := l.requests.Parse(s)
			if err != nil {
				return nil, fmt.Errorf("could not parse watch definition [webhook] field: %w", err)
			}
			w.Webhook = req
		default:
			return nil, fmt.Errorf("could not parse watch definition. unexpected token [%s] for field [%s]", tok.Kind, field)
		}
	}

	if w.Input == nil {
		return nil, fmt.Errorf("could not parse watch definition. missing required [input] field")
	}
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	return w, nil
}

// resolvePlaceholders substitutes {{NAME}} with the value of the NAME
// environment variable, verbatim.
func resolvePlaceholders(data []byte) ([]byte, error) {
	var missing []string
	out := placeholderPattern.ReplaceAllFunc(data, func(match []byte) []byte {
		name := strings.TrimSpace(string(placeholderPattern.FindSubmatch(match)[1]))
		val, ok := os.LookupEnv(name)
		if !ok {
			missing = append(missing, name)
			return match
		}
		return []byte(val)
	})
	if len(missing) > 0 {
		return nil, fmt.Errorf("could not parse watch definition. unresolved variables: %s", strings.Join(missing, ", "))
	}
	return out, nil
}
