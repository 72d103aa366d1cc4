package auth

import (
	"fmt"
	"net/http"

	"github.com/watchhook/watchhook/packages/xcontent"
)

// TypeAPIKey is the discriminator for header-based API key authentication.
const TypeAPIKey = "apikey"

// APIKey sends a key in a configurable request header.
type APIKey struct {
	Header string
	Key    string
}

func (a *APIKey) Type() string {
	return TypeAPIKey
}

func (a *APIKey) Apply(req *http.Request) {
	req.Header.Set(a.Header, a.Key)
}

func (a *APIKey) WriteTo(w *xcontent.Writer, redact bool) error {
	key := a.Key
	if redact {
		key = Redacted
	}
	w.BeginObject()
	w.Field(TypeAPIKey)
	w.BeginObject()
	w.StringField("header", a.Header)
	w.StringField("key", key)
	w.EndObject()
	w.EndObject()
	return nil
}

func (a *APIKey) Equal(other Auth) bool {
	o, ok := other.(*APIKey)
	return ok && o.Header == a.Header && o.Key == a.Key
}

func parseAPIKey(s *xcontent.Stream) (Auth, error) {
	a := &APIKey{}
	err := readStringFields(s, TypeAPIKey, func(field, value string) error {
		switch field {
		case "header":
			a.Header = value
		case "key":
			a.Key = value
		default:
			return fmt.Errorf("could not parse [apikey] auth. unexpected field [%s]", field)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if a.Header == "" {
		return nil, fmt.Errorf("could not parse [apikey] auth. missing required [header] field")
	}
	if a.Key == "" {
		return nil, fmt.Errorf("could not parse [apikey] auth. missing required [key] field")
	}
	return a, nil
}
