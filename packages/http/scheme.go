package http

import "strings"

// Scheme is the transport scheme of a request. The zero value means
// "unset"; Request falls back to SchemeHTTP at read time.
type Scheme string

const (
	SchemeHTTP  Scheme = "http"
	SchemeHTTPS Scheme = "https"
)

// ParseScheme matches a literal against the closed scheme set,
// case-insensitively. No prefix or partial matching.
func ParseScheme(text string) (Scheme, error) {
	switch strings.ToLower(text) {
	case "http":
		return SchemeHTTP, nil
	case "https":
		return SchemeHTTPS, nil
	}
	return "", &ParseError{
		Kind:    ErrUnknownLiteral,
		Field:   "scheme",
		Message: "unknown scheme [" + text + "]",
	}
}

// String returns the canonical lower-case literal.
func (s Scheme) String() string {
	return string(s)
}
