package input

import (
	"context"
	"fmt"

	"github.com/watchhook/watchhook/packages/xcontent"
)

// TypeSimple is the discriminator for the static payload input.
const TypeSimple = "simple"

// Simple is an input whose payload is the literal object from its own
// definition. Useful for wiring static data into a watch and for testing
// downstream actions without a live endpoint.
type Simple struct {
	data *xcontent.Map
}

// NewSimple returns a simple input over the given ordered data.
func NewSimple(data *xcontent.Map) *Simple {
	return &Simple{data: data}
}

func (s *Simple) Type() string {
	return TypeSimple
}

func (s *Simple) Execute(ctx context.Context) (*Result, error) {
	return newResult(TypeSimple, Payload(s.data.Unordered())), nil
}

func (s *Simple) WriteTo(w *xcontent.Writer, redact bool) error {
	w.BeginObject()
	w.Field(TypeSimple)
	w.MapValue(s.data)
	w.EndObject()
	return nil
}

func parseSimple(s *xcontent.Stream) (Input, error) {
	tok, err := s.Next()
	if err != nil {
		return nil, err
	}
	if tok.Kind != xcontent.ObjectStart {
		return nil, fmt.Errorf("could not parse [simple] input. expected an object but found [%s]", tok.Kind)
	}
	data, err := s.ReadMap()
	if err != nil {
		return nil, fmt.Errorf("could not parse [simple] input: %w", err)
	}
	return NewSimple(data), nil
}
