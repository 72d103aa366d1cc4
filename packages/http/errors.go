package http

import "fmt"

// ErrorKind classifies request parse failures.
type ErrorKind int

const (
	// ErrStructural marks an unexpected token, field, or value type.
	ErrStructural ErrorKind = iota
	// ErrMissingField marks a required field absent at end of parse.
	ErrMissingField
	// ErrDelegated wraps a failure from a collaborator (auth registry,
	// duration parser, flattening), scoped to the enclosing field.
	ErrDelegated
	// ErrUnknownLiteral marks a scheme or method literal outside its
	// closed value set.
	ErrUnknownLiteral
)

// ParseError is the single error type produced while parsing a request
// document. Field names the document field that triggered the failure;
// Cause carries a collaborator error when Kind is ErrDelegated.
type ParseError struct {
	Kind    ErrorKind
	Field   string
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	msg := "could not parse http request. " + e.Message
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

func structuralError(field, format string, args ...any) *ParseError {
	return &ParseError{Kind: ErrStructural, Field: field, Message: fmt.Sprintf(format, args...)}
}

func missingFieldError(field string) *ParseError {
	return &ParseError{
		Kind:    ErrMissingField,
		Field:   field,
		Message: fmt.Sprintf("missing required [%s] field", field),
	}
}

func delegatedError(field string, cause error, format string, args ...any) *ParseError {
	return &ParseError{
		Kind:    ErrDelegated,
		Field:   field,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}
