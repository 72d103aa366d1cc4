package auth

import (
	"fmt"
	"net/http"

	"github.com/watchhook/watchhook/packages/xcontent"
)

// TypeBasic is the discriminator for HTTP basic authentication.
const TypeBasic = "basic"

// Basic carries username/password credentials for HTTP basic auth.
type Basic struct {
	Username string
	Password string
}

func (b *Basic) Type() string {
	return TypeBasic
}

func (b *Basic) Apply(req *http.Request) {
	req.SetBasicAuth(b.Username, b.Password)
}

func (b *Basic) WriteTo(w *xcontent.Writer, redact bool) error {
	password := b.Password
	if redact {
		password = Redacted
	}
	w.BeginObject()
	w.Field(TypeBasic)
	w.BeginObject()
	w.StringField("username", b.Username)
	w.StringField("password", password)
	w.EndObject()
	w.EndObject()
	return nil
}

func (b *Basic) Equal(other Auth) bool {
	o, ok := other.(*Basic)
	return ok && o.Username == b.Username && o.Password == b.Password
}

func parseBasic(s *xcontent.Stream) (Auth, error) {
	b := &Basic{}
	err := readStringFields(s, TypeBasic, func(field, value string) error {
		switch field {
		case "username":
			b.Username = value
		case "password":
			b.Password = value
		default:
			return fmt.Errorf("could not parse [basic] auth. unexpected field [%s]", field)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if b.Username == "" {
		return nil, fmt.Errorf("could not parse [basic] auth. missing required [username] field")
	}
	return b, nil
}
