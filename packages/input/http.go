package input

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
	whttp "github.com/watchhook/watchhook/packages/http"
	"github.com/watchhook/watchhook/packages/xcontent"
)

// TypeHTTP is the discriminator for the HTTP data-fetch input.
const TypeHTTP = "http"

// HTTP is an input that executes a request and builds its payload from
// the response body. When extract paths are configured, only those paths
// are looked up in the body; otherwise a JSON body becomes the payload
// as-is and any other body is kept whole under "body".
type HTTP struct {
	request *whttp.Request
	extract []string
	client  *whttp.Client
}

// NewHTTP returns an http input executing the given request.
func NewHTTP(request *whttp.Request, extract []string, client *whttp.Client) *HTTP {
	return &HTTP{request: request, extract: extract, client: client}
}

func (h *HTTP) Type() string {
	return TypeHTTP
}

// Request returns the request this input executes.
func (h *HTTP) Request() *whttp.Request {
	return h.request
}

func (h *HTTP) Execute(ctx context.Context) (*Result, error) {
	resp, err := h.client.Do(ctx, h.request)
	if err != nil {
		return nil, fmt.Errorf("could not execute [http] input: %w", err)
	}
	payload := Payload{"status_code": resp.StatusCode}
	switch {
	case len(h.extract) > 0:
		for _, path := range h.extract {
			payload[path] = gjson.Get(resp.Body, path).Value()
		}
	case resp.IsJSON():
		var data map[string]any
		if err := json.Unmarshal([]byte(resp.Body), &data); err != nil {
			return nil, fmt.Errorf("could not parse [http] input response body: %w", err)
		}
		for k, v := range data {
			payload[k] = v
		}
	default:
		payload["body"] = resp.Body
	}
	return newResult(TypeHTTP, payload), nil
}

func (h *HTTP) WriteTo(w *xcontent.Writer, redact bool) error {
	w.BeginObject()
	w.Field(TypeHTTP)
	w.BeginObject()
	w.Field("request")
	writeRequest := h.request.WriteTo
	if redact {
		writeRequest = h.request.WriteRedactedTo
	}
	if err := writeRequest(w); err != nil {
		return err
	}
	if len(h.extract) > 0 {
		w.Field("extract")
		w.BeginArray()
		for _, path := range h.extract {
			w.StringValue(path)
		}
		w.EndArray()
	}
	w.EndObject()
	w.EndObject()
	return nil
}

// DefaultRegistry returns a registry with the built-in inputs wired to
// the given request parser and client.
func DefaultRegistry(requests *whttp.RequestParser, client *whttp.Client) *Registry {
	r := NewRegistry()
	r.Register(TypeSimple, parseSimple)
	r.Register(TypeHTTP, parseHTTPFunc(requests, client))
	return r
}

func parseHTTPFunc(requests *whttp.RequestParser, client *whttp.Client) ParseFunc {
	return func(s *xcontent.Stream) (Input, error) {
		tok, err := s.Next()
		if err != nil {
			return nil, err
		}
		if tok.Kind != xcontent.ObjectStart {
			return nil, fmt.Errorf("could not parse [http] input. expected an object but found [%s]", tok.Kind)
		}
		var (
			request *whttp.Request
			extract []string
			field   string
		)
		for {
			tok, err = s.Next()
			if err != nil {
				return nil, err
			}
			switch {
			case tok.Kind == xcontent.ObjectEnd:
				if request == nil {
					return nil, fmt.Errorf("could not parse [http] input. missing required [request] field")
				}
				return NewHTTP(request, extract, client), nil
			case tok.Kind == xcontent.FieldName:
				field = tok.Field
			case field == "request" && tok.Kind == xcontent.ObjectStart:
				request, err = requests.Parse(s)
				if err != nil {
					return nil, fmt.Errorf("could not parse [http] input: %w", err)
				}
			case field == "extract" && tok.Kind == xcontent.ArrayStart:
				extract, err = readStringArray(s)
				if err != nil {
					return nil, fmt.Errorf("could not parse [http] input [extract] field: %w", err)
				}
			default:
				return nil, fmt.Errorf("could not parse [http] input. unexpected token [%s] for field [%s]", tok.Kind, field)
			}
		}
	}
}

func readStringArray(s *xcontent.Stream) ([]string, error) {
	var out []string
	for {
		tok, err := s.Next()
		if err != nil {
			return nil, err
		}
		switch tok.Kind {
		case xcontent.ArrayEnd:
			return out, nil
		case xcontent.String:
			out = append(out, tok.Str)
		default:
			return nil, fmt.Errorf("expected a string but found [%s]", tok.Kind)
		}
	}
}
