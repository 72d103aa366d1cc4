package http

import (
	"github.com/watchhook/watchhook/packages/http/auth"
	"github.com/watchhook/watchhook/packages/xcontent"
)

// RequestParser reconstructs a Request from a token stream, delegating
// auth sub-documents to a scheme registry. Field dispatch is strict: an
// unknown field, or a known field with the wrong value type, fails the
// parse at that token.
type RequestParser struct {
	auths *auth.Registry
}

func NewRequestParser(auths *auth.Registry) *RequestParser {
	return &RequestParser{auths: auths}
}

// ParseDocument parses a complete request document from raw bytes.
func (p *RequestParser) ParseDocument(data []byte) (*Request, error) {
	s := xcontent.NewStream(data)
	tok, err := s.Next()
	if err != nil {
		return nil, structuralError("", "invalid document: %s", err)
	}
	if tok.Kind != xcontent.ObjectStart {
		return nil, structuralError("", "expected an object but found [%s]", tok.Kind)
	}
	return p.Parse(s)
}

// Parse consumes one request object from the stream. The caller has
// already consumed the object's opening token, as the request is always
// nested inside a larger definition document. The built request is
// validated for the required host and port fields after the object is
// fully consumed.
func (p *RequestParser) Parse(s *xcontent.Stream) (*Request, error) {
	b := EmptyBuilder()
	var currentField string
	for {
		tok, err := s.Next()
		if err != nil {
			return nil, structuralError(currentField, "invalid document: %s", err)
		}
		if tok.Kind == xcontent.ObjectEnd {
			break
		}
		switch {
		case tok.Kind == xcontent.FieldName:
			currentField = tok.Field
		case currentField == "auth":
			if tok.Kind != xcontent.ObjectStart {
				return nil, structuralError(currentField, "unexpected token [%s] for [auth] field", tok.Kind)
			}
			a, err := p.auths.Parse(s)
			if err != nil {
				return nil, delegatedError(currentField, err, "could not parse [auth] field")
			}
			b.Auth(a)
		case currentField == "connection_timeout":
			d, err := xcontent.ParseDuration(tok, currentField)
			if err != nil {
				return nil, delegatedError(currentField, err, "invalid time value for [connection_timeout] field")
			}
			b.ConnectionTimeout(d)
		case currentField == "read_timeout":
			d, err := xcontent.ParseDuration(tok, currentField)
			if err != nil {
				return nil, delegatedError(currentField, err, "invalid time value for [read_timeout] field")
			}
			b.ReadTimeout(d)
		case tok.Kind == xcontent.ObjectStart:
			switch currentField {
			case "headers":
				m, err := s.ReadMap()
				if err != nil {
					return nil, delegatedError(currentField, err, "could not read [headers] field")
				}
				b.SetHeaders(xcontent.Flatten(m))
			case "params":
				m, err := s.ReadMap()
				if err != nil {
					return nil, delegatedError(currentField, err, "could not read [params] field")
				}
				b.SetParams(xcontent.Flatten(m))
			case "body":
				raw, err := s.RawObject()
				if err != nil {
					return nil, delegatedError(currentField, err, "could not read [body] field")
				}
				b.Body(raw)
			default:
				return nil, structuralError(currentField, "unexpected object field [%s]", currentField)
			}
		case tok.Kind == xcontent.String:
			switch currentField {
			case "scheme":
				scheme, err := ParseScheme(tok.Str)
				if err != nil {
					return nil, err
				}
				b.Scheme(scheme)
			case "method":
				method, err := ParseMethod(tok.Str)
				if err != nil {
					return nil, err
				}
				b.Method(method)
			case "host":
				b.host = tok.Str
			case "path":
				b.Path(tok.Str)
			case "body":
				b.Body(tok.Str)
			default:
				return nil, structuralError(currentField, "unexpected string field [%s]", currentField)
			}
		case tok.Kind == xcontent.Number:
			if currentField != "port" {
				return nil, structuralError(currentField, "unexpected numeric field [%s]", currentField)
			}
			b.port = tok.Int()
		default:
			return nil, structuralError(currentField, "unexpected token [%s]", tok.Kind)
		}
	}

	if b.host == "" {
		return nil, missingFieldError("host")
	}
	if b.port < 0 {
		return nil, missingFieldError("port")
	}
	return b.Build(), nil
}
