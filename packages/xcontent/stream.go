package xcontent

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

type frame struct {
	array   bool
	keyNext bool
}

// Stream is a pull parser over a single in-memory JSON document. Next
// yields structural tokens one at a time; the helpers RawObject, ReadMap
// and SkipChildren operate on an object whose ObjectStart token was just
// returned.
//
// A Stream is single-use and must be consumed by one caller; it performs no
// I/O of its own beyond reading the buffered document.
type Stream struct {
	data         []byte
	dec          *json.Decoder
	stack        []frame
	lastObjStart int64
}

// NewStream returns a Stream over the given document bytes.
func NewStream(data []byte) *Stream {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return &Stream{data: data, dec: dec}
}

// Next returns the next token in the document. At end of input it returns
// a token with Kind EOF and a nil error.
func (s *Stream) Next() (Token, error) {
	if n := len(s.stack); n > 0 && !s.stack[n-1].array && s.stack[n-1].keyNext {
		tok, err := s.dec.Token()
		if err == io.EOF {
			return Token{}, io.ErrUnexpectedEOF
		}
		if err != nil {
			return Token{}, err
		}
		if d, ok := tok.(json.Delim); ok {
			if d == '}' {
				s.stack = s.stack[:n-1]
				return Token{Kind: ObjectEnd}, nil
			}
			return Token{}, fmt.Errorf("unexpected delimiter [%v] where a field name was expected", d)
		}
		key, ok := tok.(string)
		if !ok {
			return Token{}, fmt.Errorf("unexpected token [%v] where a field name was expected", tok)
		}
		s.stack[n-1].keyNext = false
		return Token{Kind: FieldName, Field: key}, nil
	}

	tok, err := s.dec.Token()
	if err == io.EOF {
		if len(s.stack) > 0 {
			return Token{}, io.ErrUnexpectedEOF
		}
		return Token{Kind: EOF}, nil
	}
	if err != nil {
		return Token{}, err
	}
	if n := len(s.stack); n > 0 && !s.stack[n-1].array {
		s.stack[n-1].keyNext = true
	}
	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			s.lastObjStart = s.dec.InputOffset() - 1
			s.stack = append(s.stack, frame{keyNext: true})
			return Token{Kind: ObjectStart}, nil
		case '[':
			s.stack = append(s.stack, frame{array: true})
			return Token{Kind: ArrayStart}, nil
		case ']':
			s.stack = s.stack[:len(s.stack)-1]
			return Token{Kind: ArrayEnd}, nil
		case '}':
			s.stack = s.stack[:len(s.stack)-1]
			return Token{Kind: ObjectEnd}, nil
		}
		return Token{}, fmt.Errorf("unexpected delimiter [%v]", v)
	case string:
		return Token{Kind: String, Str: v}, nil
	case json.Number:
		f, _ := v.Float64()
		return Token{Kind: Number, Num: f, Str: v.String()}, nil
	case bool:
		return Token{Kind: Boolean, Bool: v}, nil
	case nil:
		return Token{Kind: Null}, nil
	}
	return Token{}, fmt.Errorf("unexpected token [%v]", tok)
}

// RawObject captures the raw document text of the object whose ObjectStart
// token was just returned, verbatim as it appears in the input, and
// consumes the object through its closing brace.
func (s *Stream) RawObject() (string, error) {
	start := s.lastObjStart
	if err := s.skip(); err != nil {
		return "", err
	}
	end := s.dec.InputOffset()
	return string(s.data[start:end]), nil
}

// SkipChildren consumes the remainder of the object or array whose start
// token was just returned.
func (s *Stream) SkipChildren() error {
	return s.skip()
}

func (s *Stream) skip() error {
	depth := 1
	for depth > 0 {
		tok, err := s.dec.Token()
		if err == io.EOF {
			return io.ErrUnexpectedEOF
		}
		if err != nil {
			return err
		}
		if d, ok := tok.(json.Delim); ok {
			switch d {
			case '{', '[':
				depth++
			case '}', ']':
				depth--
			}
		}
	}
	s.stack = s.stack[:len(s.stack)-1]
	return nil
}

// ReadMap reads the object whose ObjectStart token was just returned into
// an insertion-ordered map. Nested objects become *Map values, arrays
// become []any, numbers stay json.Number so their literal form survives.
func (s *Stream) ReadMap() (*Map, error) {
	m := NewMap()
	for {
		tok, err := s.Next()
		if err != nil {
			return nil, err
		}
		switch tok.Kind {
		case ObjectEnd:
			return m, nil
		case FieldName:
			val, err := s.readValue()
			if err != nil {
				return nil, err
			}
			m.Set(tok.Field, val)
		default:
			return nil, fmt.Errorf("expected a field name but found [%s]", tok.Kind)
		}
	}
}

func (s *Stream) readValue() (any, error) {
	tok, err := s.Next()
	if err != nil {
		return nil, err
	}
	return s.valueFromToken(tok)
}

func (s *Stream) valueFromToken(tok Token) (any, error) {
	switch tok.Kind {
	case String:
		return tok.Str, nil
	case Number:
		return json.Number(tok.Str), nil
	case Boolean:
		return tok.Bool, nil
	case Null:
		return nil, nil
	case ObjectStart:
		return s.ReadMap()
	case ArrayStart:
		items := []any{}
		for {
			next, err := s.Next()
			if err != nil {
				return nil, err
			}
			if next.Kind == ArrayEnd {
				return items, nil
			}
			item, err := s.valueFromToken(next)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
	}
	return nil, fmt.Errorf("expected a value but found [%s]", tok.Kind)
}
