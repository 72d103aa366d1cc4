package auth

import (
	"fmt"
	"net/http"

	"github.com/watchhook/watchhook/packages/xcontent"
)

// TypeBearer is the discriminator for bearer token authentication.
const TypeBearer = "bearer"

// Bearer carries a token sent as "Authorization: Bearer <token>".
type Bearer struct {
	Token string
}

func (b *Bearer) Type() string {
	return TypeBearer
}

func (b *Bearer) Apply(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+b.Token)
}

func (b *Bearer) WriteTo(w *xcontent.Writer, redact bool) error {
	token := b.Token
	if redact {
		token = Redacted
	}
	w.BeginObject()
	w.Field(TypeBearer)
	w.BeginObject()
	w.StringField("token", token)
	w.EndObject()
	w.EndObject()
	return nil
}

func (b *Bearer) Equal(other Auth) bool {
	o, ok := other.(*Bearer)
	return ok && o.Token == b.Token
}

func parseBearer(s *xcontent.Stream) (Auth, error) {
	b := &Bearer{}
	err := readStringFields(s, TypeBearer, func(field, value string) error {
		if field != "token" {
			return fmt.Errorf("could not parse [bearer] auth. unexpected field [%s]", field)
		}
		b.Token = value
		return nil
	})
	if err != nil {
		return nil, err
	}
	if b.Token == "" {
		return nil, fmt.Errorf("could not parse [bearer] auth. missing required [token] field")
	}
	return b, nil
}
