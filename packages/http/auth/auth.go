package auth

import (
	"fmt"
	"net/http"

	"github.com/watchhook/watchhook/packages/xcontent"
)

// Redacted is the marker substituted for secret values in any
// human-readable rendering of a request.
const Redacted = "******"

// Auth is an authentication descriptor attached to a request definition.
// Implementations parse and serialize their own sub-document and know how
// to apply themselves to an outgoing request.
type Auth interface {
	// Type returns the scheme's discriminator string.
	Type() string

	// Apply sets the scheme's credentials on an outgoing request.
	Apply(req *http.Request)

	// WriteTo emits the tagged document form {"<type>": {...}}. When
	// redact is true, secret values are replaced with Redacted.
	WriteTo(w *xcontent.Writer, redact bool) error

	// Equal reports structural equality with another descriptor.
	Equal(other Auth) bool
}

// ParseFunc parses a scheme's sub-document. The stream is positioned just
// before the scheme's value token (normally an ObjectStart).
type ParseFunc func(s *xcontent.Stream) (Auth, error)

// Registry maps type discriminators to scheme parsers.
type Registry struct {
	schemes map[string]ParseFunc
}

func NewRegistry() *Registry {
	return &Registry{schemes: make(map[string]ParseFunc)}
}

// Register adds or replaces the parser for a discriminator.
func (r *Registry) Register(typ string, fn ParseFunc) {
	r.schemes[typ] = fn
}

// DefaultRegistry returns a registry with the built-in schemes: basic,
// bearer and apikey.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(TypeBasic, parseBasic)
	r.Register(TypeBearer, parseBearer)
	r.Register(TypeAPIKey, parseAPIKey)
	return r
}

// Parse consumes an auth sub-document of the form {"<type>": {...}}. The
// stream must be positioned just after the sub-document's ObjectStart.
func (r *Registry) Parse(s *xcontent.Stream) (Auth, error) {
	tok, err := s.Next()
	if err != nil {
		return nil, err
	}
	if tok.Kind != xcontent.FieldName {
		return nil, fmt.Errorf("expected an auth type but found [%s]", tok.Kind)
	}
	fn, ok := r.schemes[tok.Field]
	if !ok {
		return nil, fmt.Errorf("unknown auth type [%s]", tok.Field)
	}
	a, err := fn(s)
	if err != nil {
		return nil, err
	}
	end, err := s.Next()
	if err != nil {
		return nil, err
	}
	if end.Kind != xcontent.ObjectEnd {
		return nil, fmt.Errorf("expected the end of the auth object but found [%s]", end.Kind)
	}
	return a, nil
}

// readStringFields consumes an ObjectStart-delimited sub-document whose
// values must all be strings, handing each key/value pair to set. Shared
// by the built-in scheme parsers.
func readStringFields(s *xcontent.Stream, typ string, set func(field, value string) error) error {
	tok, err := s.Next()
	if err != nil {
		return err
	}
	if tok.Kind != xcontent.ObjectStart {
		return fmt.Errorf("could not parse [%s] auth. expected an object but found [%s]", typ, tok.Kind)
	}
	var field string
	for {
		tok, err = s.Next()
		if err != nil {
			return err
		}
		switch tok.Kind {
		case xcontent.ObjectEnd:
			return nil
		case xcontent.FieldName:
			field = tok.Field
		case xcontent.String:
			if err := set(field, tok.Str); err != nil {
				return err
			}
		default:
			return fmt.Errorf("could not parse [%s] auth. unexpected token [%s]", typ, tok.Kind)
		}
	}
}
