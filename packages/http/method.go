package http

import "strings"

// Method is the HTTP method of a request. The zero value means "unset";
// Request falls back to MethodGet at read time.
type Method string

const (
	MethodGet    Method = "get"
	MethodPost   Method = "post"
	MethodPut    Method = "put"
	MethodDelete Method = "delete"
	MethodHead   Method = "head"
)

// ParseMethod matches a literal against the closed method set,
// case-insensitively. No prefix or partial matching.
func ParseMethod(text string) (Method, error) {
	switch strings.ToLower(text) {
	case "get":
		return MethodGet, nil
	case "post":
		return MethodPost, nil
	case "put":
		return MethodPut, nil
	case "delete":
		return MethodDelete, nil
	case "head":
		return MethodHead, nil
	}
	return "", &ParseError{
		Kind:    ErrUnknownLiteral,
		Field:   "method",
		Message: "unknown method [" + text + "]",
	}
}

// String returns the canonical lower-case literal.
func (m Method) String() string {
	return string(m)
}
