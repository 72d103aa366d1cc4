package input

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/watchhook/watchhook/packages/xcontent"
)

// Payload is the data an input produced for one execution.
type Payload map[string]any

// Result is the outcome of executing an input once. ExecutionID is unique
// per execution so downstream consumers can correlate log lines and
// actions triggered by the same run.
type Result struct {
	Type        string
	ExecutionID string
	Payload     Payload
}

func newResult(typ string, payload Payload) *Result {
	return &Result{
		Type:        typ,
		ExecutionID: uuid.NewString(),
		Payload:     payload,
	}
}

// Input loads a payload. Implementations are immutable once parsed and
// safe for concurrent Execute calls.
type Input interface {
	// Type returns the input's discriminator string.
	Type() string

	// Execute produces a payload.
	Execute(ctx context.Context) (*Result, error)

	// WriteTo emits the tagged document form {"<type>": {...}}. When
	// redact is true, any embedded secrets are replaced with the
	// redaction marker; the output is then for display only.
	WriteTo(w *xcontent.Writer, redact bool) error
}

// ParseFunc parses an input's sub-document. The stream is positioned just
// before the input's value token.
type ParseFunc func(s *xcontent.Stream) (Input, error)

// Registry maps input type discriminators to parsers.
type Registry struct {
	inputs map[string]ParseFunc
}

func NewRegistry() *Registry {
	return &Registry{inputs: make(map[string]ParseFunc)}
}

func (r *Registry) Register(typ string, fn ParseFunc) {
	r.inputs[typ] = fn
}

// Parse consumes an input sub-document of the form {"<type>": {...}}. The
// stream must be positioned just after the sub-document's ObjectStart.
func (r *Registry) Parse(s *xcontent.Stream) (Input, error) {
	tok, err := s.Next()
	if err != nil {
		return nil, err
	}
	if tok.Kind != xcontent.FieldName {
		return nil, fmt.Errorf("could not parse input. expected an input type but found [%s]", tok.Kind)
	}
	fn, ok := r.inputs[tok.Field]
	if !ok {
		return nil, fmt.Errorf("could not parse input. unknown input type [%s]", tok.Field)
	}
	in, err := fn(s)
	if err != nil {
		return nil, err
	}
	end, err := s.Next()
	if err != nil {
		return nil, err
	}
	if end.Kind != xcontent.ObjectEnd {
		return nil, fmt.Errorf("could not parse input. expected the end of the input object but found [%s]", end.Kind)
	}
	return in, nil
}
